// Package timex implements UTC instants and calendar helpers for bizclock.
//
// Package: timex
// Title: Instants, Units and Formats
// Description: Instant is an immutable point on the UTC timeline. The package
//              also provides calendar boundaries (start and end of a unit),
//              multi-format parsing with an optional layout hint, named output
//              formats and business-friendly duration parsing.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive time operations
// - 2025-01-26 v0.1.1: Enhanced documentation with comprehensive examples
// - 2026-10-17 v0.2.0: Instant type, Unit boundaries, UTC normalization; business
//                       day helpers moved to pkg/businesstime
//
// # Instants
//
// Every Instant is normalized to UTC on construction. Offsets present in the
// input are honoured while parsing and then discarded:
//
//	i, err := timex.ParseInstant("2018-05-21T11:00:00+02:00", "")
//	i.String() // "2018-05-21T09:00:00.000Z"
//
// A layout hint may be a Go reference layout or one of the named formats
// below:
//
//	i, err := timex.ParseInstant("21.05.2018 09:00", "02.01.2006 15:04")
//	i, err := timex.ParseInstant("2018-05-21 09:00:00", "business")
//
// # Units
//
// StartOf and EndOf snap an instant to the boundaries of a Second, Minute,
// Hour, Day, Week (Monday based), Month or Year. EndOf is the last
// representable nanosecond of the unit:
//
//	i.EndOf(timex.Day).String() // "2018-05-21T23:59:59.999Z"
//
// # Named formats
//
//	iso8601, iso8601-date, iso8601-time, iso8601-millis,
//	business, business-date, business-time,
//	display, display-date, display-time,
//	short, short-date, short-time,
//	compact, compact-date, compact-time, log
//
// # Durations
//
// ParseDuration accepts Go durations ("90m") and phrases such as "1 hour" or
// "15 minutes". FormatDurationCompact renders "8h 0m 0s" style output.
package timex
