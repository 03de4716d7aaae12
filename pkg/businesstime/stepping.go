// ============================================================================
// bizclock - Business Time Arithmetic
// ============================================================================
//
// Package:     businesstime
// Description: Stepping algorithms: add, subtract, diff, business day bounds
// Author:      Mike Stoffels
// Created:     2026-10-17
// License:     MIT
// ============================================================================

package businesstime

import (
	"math"
	"time"

	bizerror "github.com/msto63/bizclock/foundation/core/error"
	"github.com/msto63/bizclock/foundation/utils/mathx"
	"github.com/msto63/bizclock/foundation/utils/timex"
)

type direction int

const (
	forward  direction = 1
	backward direction = -1
)

// AddBusinessDay adds one business day
func (e *Engine) AddBusinessDay() (*Engine, error) {
	return e.AddBusinessDays(mathx.One())
}

// SubBusinessDay subtracts one business day
func (e *Engine) SubBusinessDay() (*Engine, error) {
	return e.SubBusinessDays(mathx.One())
}

// AddBusinessDays adds n business days; n may be fractional or negative.
//
// The instant first jumps round(n) calendar days (ties away from zero), then
// steps one precision at a time until the business time covered by the jump
// plus the steps reaches n. When the jump already covers more than n no
// correction is made, so Monday 09:00 plus 0.5 days lands on Tuesday 09:00.
//
// Counting the business time of the jump and the fine steps after it share
// one budget of WithMaxSteps precision steps; a shift that needs more fails
// with ErrStepLimitExceeded before any counting starts or as soon as the fine
// steps run out.
func (e *Engine) AddBusinessDays(n mathx.Decimal) (*Engine, error) {
	if n.IsNegative() {
		return e.shiftBusinessDays(n.Abs(), backward)
	}
	return e.shiftBusinessDays(n, forward)
}

// SubBusinessDays subtracts n business days; see AddBusinessDays
func (e *Engine) SubBusinessDays(n mathx.Decimal) (*Engine, error) {
	if n.IsNegative() {
		return e.shiftBusinessDays(n.Abs(), forward)
	}
	return e.shiftBusinessDays(n, backward)
}

func (e *Engine) shiftBusinessDays(n mathx.Decimal, dir direction) (*Engine, error) {
	if n.IsZero() {
		return e.Clone(), nil
	}

	op := "businesstime.AddBusinessDays"
	if dir == backward {
		op = "businesstime.SubBusinessDays"
	}

	days, err := n.RoundToInt().Int64()
	if err != nil {
		return nil, bizerror.Wrap(err, "business day count too large").WithOperation(op)
	}
	jumped := e.at(e.instant.AddDays(int(days) * int(dir)))

	p := e.cfg.precision
	steps := spanSteps(e.instant, jumped.instant, p)
	if steps > e.cfg.maxSteps {
		return nil, e.stepLimitExceeded(op, n, n)
	}

	covered, err := e.DiffInPartialBusinessDays(jumped, true)
	if err != nil {
		return nil, err
	}
	residual := n.Subtract(covered)

	decrement, err := e.stepFraction()
	if err != nil {
		return nil, err
	}

	x := jumped.instant
	for residual.IsPositive() {
		if steps >= e.cfg.maxSteps {
			return nil, e.stepLimitExceeded(op, n, residual)
		}
		steps++

		if dir == forward {
			if e.isBusinessTime(x) {
				residual = residual.Subtract(decrement)
			}
			x = x.Add(p)
		} else {
			x = x.Sub(p)
			if e.isBusinessTime(x) {
				residual = residual.Subtract(decrement)
			}
		}
	}

	return e.at(x), nil
}

// spanSteps is the number of precision steps countBusinessSteps takes
// between a and b. time.Time.Sub saturates, so far jumps stay positive.
func spanSteps(a, b timex.Instant, p time.Duration) int64 {
	d := b.Time().Sub(a.Time())
	if d < 0 {
		d = -d
	}
	if d < 0 {
		// the negated minimum duration overflows
		return math.MaxInt64
	}
	steps := int64(d / p)
	if d%p != 0 {
		steps++
	}
	return steps
}

func (e *Engine) stepLimitExceeded(op string, n, residual mathx.Decimal) error {
	e.cfg.logger.Warn().
		Str("operation", op).
		Str("instant", e.instant.String()).
		Str("days", n.String()).
		Int64("max_steps", e.cfg.maxSteps).
		Msg("business day shift exceeded step limit")
	return bizerror.Newf("no result within %d steps", e.cfg.maxSteps).
		WithCode(bizerror.CodeStepLimitExceeded).
		WithOperation(op).
		WithDetail("instant", e.instant.String()).
		WithDetail("days", n.String()).
		WithDetail("residual", residual.String())
}

// DiffInBusinessTime counts the precision steps between e and other that
// are business time. Steps start at the earlier instant and stop before the
// later one. The result is negative when other is before e and absolute is
// false. Instants within the same minute are 0 apart.
func (e *Engine) DiffInBusinessTime(other *Engine, absolute bool) int64 {
	if e.instant.IsSame(other.instant, timex.Minute) {
		return 0
	}

	start, end := e.instant, other.instant
	swapped := false
	if start.After(end) {
		start, end = end, start
		swapped = true
	}

	n := e.countBusinessSteps(start, end)
	if swapped && !absolute {
		return -n
	}
	return n
}

// DiffInBusinessTimeNow is DiffInBusinessTime against the engine clock
func (e *Engine) DiffInBusinessTimeNow(absolute bool) int64 {
	return e.DiffInBusinessTime(e.now(), absolute)
}

func (e *Engine) now() *Engine {
	return e.at(timex.NewInstant(e.cfg.clock()))
}

func (e *Engine) countBusinessSteps(start, end timex.Instant) int64 {
	var n int64
	for x := start; x.Before(end); x = x.Add(e.cfg.precision) {
		if e.isBusinessTime(x) {
			n++
		}
	}
	return n
}

// DiffInPartialBusinessDays converts DiffInBusinessTime into business days
func (e *Engine) DiffInPartialBusinessDays(other *Engine, absolute bool) (mathx.Decimal, error) {
	steps := e.DiffInBusinessTime(other, absolute)
	if steps == 0 {
		return mathx.Zero(), nil
	}
	perStep, err := e.stepFraction()
	if err != nil {
		return mathx.Decimal{}, err
	}
	return mathx.NewDecimalFromInt(steps).Multiply(perStep), nil
}

// DiffInBusinessDays rounds DiffInPartialBusinessDays half away from zero
func (e *Engine) DiffInBusinessDays(other *Engine, absolute bool) (int64, error) {
	partial, err := e.DiffInPartialBusinessDays(other, absolute)
	if err != nil {
		return 0, err
	}
	return partial.RoundToInt().Int64()
}

// DiffBusiness returns the business time between e and other as a duration
func (e *Engine) DiffBusiness(other *Engine, absolute bool) time.Duration {
	return time.Duration(e.DiffInBusinessTime(other, absolute)) * e.cfg.precision
}

// DiffBusinessNow is DiffBusiness against the engine clock
func (e *Engine) DiffBusinessNow(absolute bool) time.Duration {
	return e.DiffBusiness(e.now(), absolute)
}

// StartOfBusinessDay returns the first business time step of the calendar
// day, walking forward from midnight.
func (e *Engine) StartOfBusinessDay() (*Engine, error) {
	first := e.instant.StartOf(timex.Day)
	last := e.instant.EndOf(timex.Day)
	for x := first; !x.After(last); x = x.Add(e.cfg.precision) {
		if e.isBusinessTime(x) {
			return e.at(x), nil
		}
	}
	return nil, e.noBusinessTime("businesstime.StartOfBusinessDay")
}

// EndOfBusinessDay returns the last business time step of the calendar day,
// walking backward from 23:59:59.999999999. The result is exact only to the
// precision: with hourly steps and a 17:00 close it is the 16:00 hour, which
// it reports as that hour's last instant 16:59:59.999999999. Compare it with
// IsSame at the precision's unit rather than by equality.
func (e *Engine) EndOfBusinessDay() (*Engine, error) {
	first := e.instant.StartOf(timex.Day)
	last := e.instant.EndOf(timex.Day)
	for x := last; !x.Before(first); x = x.Sub(e.cfg.precision) {
		if e.isBusinessTime(x) {
			return e.at(x), nil
		}
	}
	return nil, e.noBusinessTime("businesstime.EndOfBusinessDay")
}

func (e *Engine) noBusinessTime(op string) error {
	day := e.instant.Format(timex.ISO8601Date)
	e.cfg.logger.Warn().
		Str("operation", op).
		Str("day", day).
		Dur("precision", e.cfg.precision).
		Msg("calendar day has no business time")
	return bizerror.Newf("no business time on %s", day).
		WithCode(bizerror.CodeNoBusinessTime).
		WithOperation(op).
		WithDetail("day", day).
		WithDetail("precision", e.cfg.precision.String())
}

// stepFraction is the share of one business day a single step represents
func (e *Engine) stepFraction() (mathx.Decimal, error) {
	length, err := e.LengthOfBusinessDay()
	if err != nil {
		return mathx.Decimal{}, err
	}
	return mathx.NewDecimalFromRatio(int64(e.cfg.precision), int64(length))
}
