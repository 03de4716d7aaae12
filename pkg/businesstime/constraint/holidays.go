// ============================================================================
// bizclock - Business Time Arithmetic
// ============================================================================
//
// Package:     constraint
// Description: Whole-day exclusions by calendar date
// Author:      Mike Stoffels
// Created:     2026-10-17
// License:     MIT
// ============================================================================

package constraint

import (
	"sort"
	"strings"
	"time"

	bizerror "github.com/msto63/bizclock/foundation/core/error"
)

const dateLayout = "2006-01-02"

// Holidays rejects every instant on one of its UTC calendar dates. The set
// is immutable once built.
type Holidays struct {
	dates map[string]struct{}
}

// NewHolidays builds a set from the calendar dates of the given times
func NewHolidays(dates ...time.Time) Holidays {
	h := Holidays{dates: make(map[string]struct{}, len(dates))}
	for _, d := range dates {
		h.dates[d.UTC().Format(dateLayout)] = struct{}{}
	}
	return h
}

// ParseHolidays builds a set from YYYY-MM-DD strings
func ParseHolidays(values ...string) (Holidays, error) {
	dates := make([]time.Time, 0, len(values))
	for _, v := range values {
		d, err := time.Parse(dateLayout, strings.TrimSpace(v))
		if err != nil {
			return Holidays{}, bizerror.Newf("invalid holiday date %q", v).
				WithCode(bizerror.CodeInvalidConstraint).
				WithOperation("constraint.ParseHolidays").
				WithDetail("input", v)
		}
		dates = append(dates, d)
	}
	return NewHolidays(dates...), nil
}

// IsBusinessTime implements the engine's constraint contract
func (h Holidays) IsBusinessTime(t time.Time) bool {
	_, closed := h.dates[t.UTC().Format(dateLayout)]
	return !closed
}

// Len returns the number of dates in the set
func (h Holidays) Len() int {
	return len(h.dates)
}

// Dates returns the dates in ascending order
func (h Holidays) Dates() []string {
	out := make([]string, 0, len(h.dates))
	for d := range h.dates {
		out = append(out, d)
	}
	sort.Strings(out)
	return out
}

func (h Holidays) String() string {
	return "holidays[" + strings.Join(h.Dates(), ",") + "]"
}
