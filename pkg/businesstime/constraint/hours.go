// ============================================================================
// bizclock - Business Time Arithmetic
// ============================================================================
//
// Package:     constraint
// Description: Hour-of-day window rule
// Author:      Mike Stoffels
// Created:     2026-10-17
// License:     MIT
// ============================================================================

package constraint

import (
	"fmt"
	"strings"
	"time"

	bizerror "github.com/msto63/bizclock/foundation/core/error"
)

// HourWindow accepts instants whose UTC hour h satisfies From <= h < To.
// A window with From > To wraps midnight, e.g. 22..6 for a night shift.
type HourWindow struct {
	From int
	To   int
}

// NewHourWindow validates the bounds. From is in [0, 23], To in [0, 24] and
// the window must not be empty.
func NewHourWindow(from, to int) (HourWindow, error) {
	if from < 0 || from > 23 || to < 0 || to > 24 || from == to {
		return HourWindow{}, bizerror.Newf("invalid hour window %d..%d", from, to).
			WithCode(bizerror.CodeInvalidConstraint).
			WithOperation("constraint.NewHourWindow").
			WithDetail("from", from).
			WithDetail("to", to)
	}
	return HourWindow{From: from, To: to}, nil
}

// MustHourWindow is NewHourWindow for literals; it panics on invalid bounds
func MustHourWindow(from, to int) HourWindow {
	w, err := NewHourWindow(from, to)
	if err != nil {
		panic(err)
	}
	return w
}

// IsBusinessTime implements the engine's constraint contract
func (w HourWindow) IsBusinessTime(t time.Time) bool {
	h := t.UTC().Hour()
	if w.From <= w.To {
		return h >= w.From && h < w.To
	}
	return h >= w.From || h < w.To
}

// Hours returns the number of hours the window covers per day
func (w HourWindow) Hours() int {
	if w.From <= w.To {
		return w.To - w.From
	}
	return 24 - w.From + w.To
}

func (w HourWindow) String() string {
	return fmt.Sprintf("%02d:00-%02d:00", w.From, w.To)
}

// Rule is the single method every constraint in this package implements
type Rule interface {
	IsBusinessTime(t time.Time) bool
}

// AnyOf accepts an instant when at least one rule does. It joins split
// opening hours such as 09:00-12:00 and 13:00-17:00.
type AnyOf []Rule

// IsBusinessTime implements the engine's constraint contract
func (a AnyOf) IsBusinessTime(t time.Time) bool {
	for _, r := range a {
		if r.IsBusinessTime(t) {
			return true
		}
	}
	return false
}

func (a AnyOf) String() string {
	parts := make([]string, len(a))
	for i, r := range a {
		if s, ok := r.(fmt.Stringer); ok {
			parts[i] = s.String()
		} else {
			parts[i] = fmt.Sprintf("%T", r)
		}
	}
	return strings.Join(parts, "|")
}
