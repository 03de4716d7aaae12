// ============================================================================
// bizclock - Business Time Arithmetic
// ============================================================================
//
// Package:     constraint
// Description: Weekday set rule with name parsing
// Author:      Mike Stoffels
// Created:     2026-10-17
// License:     MIT
// ============================================================================

package constraint

import (
	"strings"
	"time"

	bizerror "github.com/msto63/bizclock/foundation/core/error"
)

// WeekdaySet accepts instants whose UTC weekday is a member of the set
type WeekdaySet struct {
	mask uint8
}

// Weekdays builds a set from the given days
func Weekdays(days ...time.Weekday) WeekdaySet {
	var s WeekdaySet
	for _, d := range days {
		s.mask |= 1 << uint(d%7)
	}
	return s
}

// WorkWeek returns Monday through Friday
func WorkWeek() WeekdaySet {
	return Weekdays(time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday)
}

var weekdayNames = map[string]time.Weekday{
	"sun": time.Sunday, "sunday": time.Sunday,
	"mon": time.Monday, "monday": time.Monday,
	"tue": time.Tuesday, "tues": time.Tuesday, "tuesday": time.Tuesday,
	"wed": time.Wednesday, "wednesday": time.Wednesday,
	"thu": time.Thursday, "thur": time.Thursday, "thurs": time.Thursday, "thursday": time.Thursday,
	"fri": time.Friday, "friday": time.Friday,
	"sat": time.Saturday, "saturday": time.Saturday,
}

// ParseWeekday parses a weekday name such as "mon" or "Monday"
func ParseWeekday(name string) (time.Weekday, error) {
	d, ok := weekdayNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, bizerror.Newf("unknown weekday %q", name).
			WithCode(bizerror.CodeInvalidConstraint).
			WithOperation("constraint.ParseWeekday").
			WithDetail("input", name)
	}
	return d, nil
}

// ParseWeekdays parses day names and ranges. A range such as "mon-fri" runs
// forward through the week and may wrap, so "fri-mon" covers four days.
func ParseWeekdays(names ...string) (WeekdaySet, error) {
	var s WeekdaySet
	for _, name := range names {
		from, to, isRange := strings.Cut(name, "-")
		if !isRange {
			d, err := ParseWeekday(name)
			if err != nil {
				return WeekdaySet{}, err
			}
			s.mask |= 1 << uint(d)
			continue
		}

		start, err := ParseWeekday(from)
		if err != nil {
			return WeekdaySet{}, err
		}
		end, err := ParseWeekday(to)
		if err != nil {
			return WeekdaySet{}, err
		}
		for d := start; ; d = (d + 1) % 7 {
			s.mask |= 1 << uint(d)
			if d == end {
				break
			}
		}
	}
	if s.mask == 0 {
		return WeekdaySet{}, bizerror.New("weekday set is empty").
			WithCode(bizerror.CodeInvalidConstraint).
			WithOperation("constraint.ParseWeekdays")
	}
	return s, nil
}

// IsBusinessTime implements the engine's constraint contract
func (s WeekdaySet) IsBusinessTime(t time.Time) bool {
	return s.Contains(t.UTC().Weekday())
}

// Contains reports whether d is in the set
func (s WeekdaySet) Contains(d time.Weekday) bool {
	return s.mask&(1<<uint(d%7)) != 0
}

// Days returns the members in week order starting on Monday
func (s WeekdaySet) Days() []time.Weekday {
	days := make([]time.Weekday, 0, 7)
	for i := 1; i <= 7; i++ {
		d := time.Weekday(i % 7)
		if s.Contains(d) {
			days = append(days, d)
		}
	}
	return days
}

func (s WeekdaySet) String() string {
	days := s.Days()
	names := make([]string, len(days))
	for i, d := range days {
		names[i] = d.String()[:3]
	}
	return strings.Join(names, ",")
}
