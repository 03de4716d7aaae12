// ============================================================================
// bizclock - Business Time Arithmetic
// ============================================================================
//
// Package:     businesstime
// Description: Lazily derived and cached length of one business day
// Author:      Mike Stoffels
// Created:     2026-10-17
// License:     MIT
// ============================================================================

package businesstime

import (
	"time"

	bizerror "github.com/msto63/bizclock/foundation/core/error"
	"github.com/msto63/bizclock/foundation/utils/timex"
)

// referenceSearchDays is how many days from the reference day are tried
// before giving up on finding business time
const referenceSearchDays = 7

// LengthOfBusinessDay returns how much business time one calendar day holds.
//
// The value comes from, in order: the cache set by SetLengthOfBusinessDay or
// an earlier call, WithLengthOfBusinessDay, or the span between start and
// end of business day on the reference day. If the reference day has no
// business time the following days of its week are tried. Concurrent first
// calls may both compute; the result is identical.
func (e *Engine) LengthOfBusinessDay() (time.Duration, error) {
	if cached := e.dayLength.Load(); cached != nil {
		return *cached, nil
	}

	var length time.Duration
	if e.cfg.dayLengthSet {
		length = e.cfg.dayLength
	} else {
		resolved, err := e.resolveDayLength()
		if err != nil {
			return 0, err
		}
		length = resolved
	}

	e.dayLength.Store(&length)
	return length, nil
}

// SetLengthOfBusinessDay returns a copy of e whose business day length is d.
// The receiver is unchanged and engines derived from the copy resolve the
// length again.
func (e *Engine) SetLengthOfBusinessDay(d time.Duration) (*Engine, error) {
	if err := validateDayLength(d, "businesstime.SetLengthOfBusinessDay"); err != nil {
		return nil, err
	}
	out := e.at(e.instant)
	out.dayLength.Store(&d)
	return out, nil
}

func (e *Engine) resolveDayLength() (time.Duration, error) {
	reference := timex.NewInstant(e.cfg.referenceDay)

	for i := 0; i < referenceSearchDays; i++ {
		day := e.at(reference.AddDays(i))
		if !day.hasBusinessTime() {
			continue
		}

		start, err := day.StartOfBusinessDay()
		if err != nil {
			return 0, err
		}
		end, err := day.EndOfBusinessDay()
		if err != nil {
			return 0, err
		}

		length := start.DiffBusiness(end, true)
		if err := validateDayLength(length, "businesstime.LengthOfBusinessDay"); err != nil {
			return 0, err
		}

		e.cfg.logger.Debug().
			Str("reference_day", day.Format(timex.ISO8601Date)).
			Str("start", start.ISOString()).
			Str("end", end.ISOString()).
			Dur("length", length).
			Msg("resolved business day length")
		return length, nil
	}

	return 0, bizerror.Newf("no business time within %d days of the reference day", referenceSearchDays).
		WithCode(bizerror.CodeNoBusinessTime).
		WithOperation("businesstime.LengthOfBusinessDay").
		WithDetail("reference_day", reference.Format(timex.ISO8601Date)).
		WithDetail("precision", e.cfg.precision.String())
}

// hasBusinessTime reports whether any step of the calendar day is business time
func (e *Engine) hasBusinessTime() bool {
	first := e.instant.StartOf(timex.Day)
	last := e.instant.EndOf(timex.Day)
	for x := first; !x.After(last); x = x.Add(e.cfg.precision) {
		if e.isBusinessTime(x) {
			return true
		}
	}
	return false
}

func validateDayLength(d time.Duration, op string) error {
	switch {
	case d <= 0:
		return bizerror.Newf("business day length must be positive, got %s", d).
			WithCode(bizerror.CodeZeroLengthBusinessDay).
			WithOperation(op).
			WithDetail("duration", d.String())
	case d > maxDayLength:
		return bizerror.Newf("business day length %s exceeds %s", d, maxDayLength).
			WithCode(bizerror.CodeBusinessDayTooLong).
			WithOperation(op).
			WithDetail("duration", d.String()).
			WithDetail("max", maxDayLength.String())
	}
	return nil
}
