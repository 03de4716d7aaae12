// File: instant.go
// Title: UTC Instant
// Description: Immutable point on the UTC timeline with calendar arithmetic,
//              unit boundaries and comparison at a granularity.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.2.0: Initial implementation

package timex

import "time"

// CanonicalLayout is the rendering used by Instant.String
const CanonicalLayout = "2006-01-02T15:04:05.000Z07:00"

// Instant is an immutable point in time, always held in UTC
type Instant struct {
	t time.Time
}

// NewInstant converts t to UTC
func NewInstant(t time.Time) Instant {
	return Instant{t: t.UTC()}
}

// ParseInstant parses raw with an optional layout hint. An empty layout
// tries the common formats accepted by Parse.
func ParseInstant(raw, layout string) (Instant, error) {
	t, err := ParseWithLayout(raw, layout)
	if err != nil {
		return Instant{}, err
	}
	return Instant{t: t}, nil
}

// Time returns the underlying UTC time
func (i Instant) Time() time.Time {
	return i.t
}

// Add returns i shifted by d
func (i Instant) Add(d time.Duration) Instant {
	return Instant{t: i.t.Add(d)}
}

// Sub returns i shifted back by d
func (i Instant) Sub(d time.Duration) Instant {
	return Instant{t: i.t.Add(-d)}
}

// AddDays moves i by n calendar days, keeping the time of day
func (i Instant) AddDays(n int) Instant {
	return Instant{t: i.t.AddDate(0, 0, n)}
}

// Before reports whether i is strictly before other
func (i Instant) Before(other Instant) bool {
	return i.t.Before(other.t)
}

// After reports whether i is strictly after other
func (i Instant) After(other Instant) bool {
	return i.t.After(other.t)
}

// Equal reports whether i and other are the same instant
func (i Instant) Equal(other Instant) bool {
	return i.t.Equal(other.t)
}

// IsSame reports whether i and other fall into the same unit
func (i Instant) IsSame(other Instant, u Unit) bool {
	return StartOf(i.t, u).Equal(StartOf(other.t, u))
}

// StartOf returns the first instant of the unit containing i
func (i Instant) StartOf(u Unit) Instant {
	return Instant{t: StartOf(i.t, u)}
}

// EndOf returns the last nanosecond of the unit containing i
func (i Instant) EndOf(u Unit) Instant {
	return Instant{t: EndOf(i.t, u)}
}

// Format renders i with a named format or layout. An empty layout yields
// the canonical form.
func (i Instant) Format(layout string) string {
	if layout == "" {
		return i.String()
	}
	return Format(i.t, layout)
}

// String renders i as ISO 8601 with milliseconds, e.g. 2018-05-21T09:00:00.000Z
func (i Instant) String() string {
	return i.t.Format(CanonicalLayout)
}
