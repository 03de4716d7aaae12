// File: timex.go
// Title: Core Time Utilities
// Description: Parsing with layout hints, named formats, calendar unit
//              boundaries and duration helpers. All results are in UTC.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive time utilities
// - 2025-07-26 v0.1.1: Added FormatDurationCompact function, fixed business day logic
// - 2026-10-17 v0.2.0: UTC normalization, Unit boundaries, layout hints for parsing

package timex

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	bizerror "github.com/msto63/bizclock/foundation/core/error"
)

// Common time formats
const (
	// ISO formats
	ISO8601         = "2006-01-02T15:04:05Z07:00"
	ISO8601Date     = "2006-01-02"
	ISO8601Time     = "15:04:05"
	ISO8601DateTime = "2006-01-02T15:04:05"
	ISO8601Millis   = "2006-01-02T15:04:05.000Z07:00"

	// Common business formats
	BusinessDate     = "2006-01-02"
	BusinessDateTime = "2006-01-02 15:04:05"
	BusinessTime     = "15:04:05"

	// Display formats
	DisplayDate     = "January 2, 2006"
	DisplayDateTime = "January 2, 2006 at 3:04 PM"
	DisplayTime     = "3:04 PM"

	// Short formats
	ShortDate     = "01/02/2006"
	ShortDateTime = "01/02/2006 15:04"
	ShortTime     = "15:04"

	// Compact formats
	CompactDate     = "20060102"
	CompactDateTime = "20060102150405"
	CompactTime     = "150405"

	// Log formats
	LogTimestamp = "2006-01-02 15:04:05.000"
)

// namedFormats maps format names to layouts
var namedFormats = map[string]string{
	"iso8601":        ISO8601,
	"iso8601-date":   ISO8601Date,
	"iso8601-time":   ISO8601Time,
	"iso8601-millis": ISO8601Millis,
	"business":       BusinessDateTime,
	"business-date":  BusinessDate,
	"business-time":  BusinessTime,
	"display":        DisplayDateTime,
	"display-date":   DisplayDate,
	"display-time":   DisplayTime,
	"short":          ShortDateTime,
	"short-date":     ShortDate,
	"short-time":     ShortTime,
	"compact":        CompactDateTime,
	"compact-date":   CompactDate,
	"compact-time":   CompactTime,
	"log":            LogTimestamp,
}

// parseFormats are tried in order when no layout hint is given
var parseFormats = []string{
	time.RFC3339Nano,
	ISO8601DateTime,
	BusinessDateTime,
	LogTimestamp,
	BusinessDate,
	ShortDateTime,
	ShortDate,
	DisplayDateTime,
	DisplayDate,
	CompactDateTime,
	CompactDate,
	time.RFC1123Z,
	time.RFC1123,
	time.RFC822Z,
	time.RFC822,
	time.RFC850,
}

// ResolveLayout returns the layout for a named format, or name itself
func ResolveLayout(name string) string {
	if layout, ok := namedFormats[strings.ToLower(name)]; ok {
		return layout
	}
	return name
}

// ===============================
// Parsing Functions
// ===============================

// Parse attempts to parse a time string using common formats. The result is
// normalized to UTC; inputs without an offset are read as UTC.
func Parse(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, invalidTimestamp(value, "", "empty time string")
	}

	for _, format := range parseFormats {
		if t, err := time.Parse(format, value); err == nil {
			return t.UTC(), nil
		}
	}

	if secs, err := strconv.ParseInt(value, 10, 64); err == nil && len(value) > len(CompactDate) {
		return time.Unix(secs, 0).UTC(), nil
	}

	return time.Time{}, invalidTimestamp(value, "", "unable to parse time string")
}

// ParseWithLayout parses value with layout, which may be a named format.
// An empty layout falls back to Parse.
func ParseWithLayout(value, layout string) (time.Time, error) {
	if layout == "" {
		return Parse(value)
	}
	t, err := time.Parse(ResolveLayout(layout), strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, invalidTimestamp(value, layout, err.Error())
	}
	return t.UTC(), nil
}

func invalidTimestamp(value, layout, reason string) error {
	err := bizerror.Newf("invalid timestamp %q: %s", value, reason).
		WithCode(bizerror.CodeInvalidTimestamp).
		WithOperation("timex.Parse").
		WithDetail("input", value)
	if layout != "" {
		err = err.WithDetail("layout", layout)
	}
	return err
}

// ParseDuration parses duration strings with extended formats such as
// "1 hour" or "15 minutes". Negative durations are rejected.
func ParseDuration(value string) (time.Duration, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, invalidDuration(value, "empty duration string")
	}

	if strings.HasPrefix(value, "-") {
		return 0, invalidDuration(value, "negative durations are not supported")
	}

	if d, err := time.ParseDuration(value); err == nil {
		return d, nil
	}

	parts := strings.Fields(strings.ToLower(value))
	if len(parts) == 2 {
		if num, err := strconv.ParseFloat(parts[0], 64); err == nil {
			unit := parts[1]
			if len(unit) > 2 {
				unit = strings.TrimSuffix(unit, "s")
			}
			switch unit {
			case "millisecond", "ms":
				return time.Duration(num * float64(time.Millisecond)), nil
			case "second", "sec":
				return time.Duration(num * float64(time.Second)), nil
			case "minute", "min":
				return time.Duration(num * float64(time.Minute)), nil
			case "hour", "hr":
				return time.Duration(num * float64(time.Hour)), nil
			case "day":
				return time.Duration(num * float64(24*time.Hour)), nil
			case "week":
				return time.Duration(num * float64(7*24*time.Hour)), nil
			}
		}
	}

	return 0, invalidDuration(value, "unable to parse duration string")
}

func invalidDuration(value, reason string) error {
	return bizerror.Newf("invalid duration %q: %s", value, reason).
		WithCode(bizerror.CodeInvalidDuration).
		WithOperation("timex.ParseDuration").
		WithDetail("input", value)
}

// ===============================
// Formatting Functions
// ===============================

// Format formats a time using a named format or a custom layout
func Format(t time.Time, format string) string {
	return t.Format(ResolveLayout(format))
}

// FormatDurationCompact formats a duration in compact format (1d 2h 30m 45s)
func FormatDurationCompact(d time.Duration) string {
	if d == 0 {
		return "0s"
	}

	if d < 0 {
		return "-" + FormatDurationCompact(-d)
	}

	var parts []string

	if days := d / (24 * time.Hour); days > 0 {
		parts = append(parts, fmt.Sprintf("%dd", days))
		d -= days * 24 * time.Hour
	}

	if hours := d / time.Hour; hours > 0 || len(parts) > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
		d -= hours * time.Hour
	}

	if minutes := d / time.Minute; minutes > 0 || len(parts) > 0 {
		parts = append(parts, fmt.Sprintf("%dm", minutes))
		d -= minutes * time.Minute
	}

	if seconds := d / time.Second; seconds > 0 || len(parts) > 0 {
		parts = append(parts, fmt.Sprintf("%ds", seconds))
		d -= seconds * time.Second
	}

	if ms := d / time.Millisecond; ms > 0 {
		parts = append(parts, fmt.Sprintf("%dms", ms))
		d -= ms * time.Millisecond
	}

	if d > 0 {
		parts = append(parts, fmt.Sprintf("%dns", int64(d)))
	}

	return strings.Join(parts, " ")
}

// ===============================
// Calendar Units
// ===============================

// Unit is a calendar granularity used for boundaries and comparisons
type Unit int

const (
	Second Unit = iota
	Minute
	Hour
	Day
	Week
	Month
	Year
)

var unitNames = []string{"second", "minute", "hour", "day", "week", "month", "year"}

// String returns the lower-case unit name
func (u Unit) String() string {
	if u < Second || u > Year {
		return fmt.Sprintf("Unit(%d)", int(u))
	}
	return unitNames[u]
}

// ParseUnit parses a unit name; plural forms are accepted
func ParseUnit(s string) (Unit, error) {
	name := strings.TrimSuffix(strings.ToLower(strings.TrimSpace(s)), "s")
	for i, n := range unitNames {
		if n == name {
			return Unit(i), nil
		}
	}
	return 0, bizerror.Newf("unknown calendar unit %q", s).
		WithCode(bizerror.CodeInvalidInput).
		WithOperation("timex.ParseUnit").
		WithDetail("input", s)
}

// StartOf returns the first instant of the unit containing t
func StartOf(t time.Time, u Unit) time.Time {
	t = t.UTC()
	switch u {
	case Second:
		return t.Truncate(time.Second)
	case Minute:
		return t.Truncate(time.Minute)
	case Hour:
		return t.Truncate(time.Hour)
	case Day:
		return StartOfDay(t)
	case Week:
		return StartOfWeek(t)
	case Month:
		return StartOfMonth(t)
	case Year:
		return StartOfYear(t)
	default:
		return t
	}
}

// EndOf returns the last nanosecond of the unit containing t
func EndOf(t time.Time, u Unit) time.Time {
	start := StartOf(t, u)
	var next time.Time
	switch u {
	case Second:
		next = start.Add(time.Second)
	case Minute:
		next = start.Add(time.Minute)
	case Hour:
		next = start.Add(time.Hour)
	case Day:
		next = start.AddDate(0, 0, 1)
	case Week:
		next = start.AddDate(0, 0, 7)
	case Month:
		next = start.AddDate(0, 1, 0)
	case Year:
		next = start.AddDate(1, 0, 0)
	default:
		return t.UTC()
	}
	return next.Add(-time.Nanosecond)
}

// StartOfDay returns 00:00:00 of the day containing t
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// StartOfWeek returns Monday 00:00:00 of the week containing t
func StartOfWeek(t time.Time) time.Time {
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	return StartOfDay(t.AddDate(0, 0, -(weekday - 1)))
}

// StartOfMonth returns the first day of the month at 00:00:00
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// StartOfYear returns January 1st at 00:00:00
func StartOfYear(t time.Time) time.Time {
	return time.Date(t.Year(), 1, 1, 0, 0, 0, 0, t.Location())
}
