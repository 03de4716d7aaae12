// ============================================================================
// bizclock - Business Time Arithmetic
// ============================================================================
//
// Package:     businesstime
// Description: Calendar arithmetic measured in business time
// Author:      Mike Stoffels
// Created:     2026-10-17
// License:     MIT
// ============================================================================

// Package businesstime answers whether an instant is business time and adds,
// subtracts and diffs instants in units of business time.
//
// An Engine is an immutable value: an instant, a step size (precision) and
// an ordered list of constraints. An instant is business time when every
// constraint accepts it. All arithmetic reduces to two primitives:
//
//   - stepping through time one precision at a time, testing each step
//   - converting a step count to and from business days using the length of
//     one business day
//
// The length of a business day is derived lazily from a fixed reference day
// (Wednesday 2018-05-23) and cached on the Engine that computed it. Derived
// engines never inherit the cache.
//
// Defaults are a precision of one hour and the constraints 09:00-17:00 on
// Monday to Friday, which yields an eight hour business day:
//
//	e, _ := businesstime.New("2018-05-25T16:00:00Z")
//	next, _ := e.AddBusinessDay()
//	next.ISOString() // "2018-05-28T16:00:00.000Z"
//
// Stepping costs one constraint evaluation per precision step, so a very
// fine precision over a long span is proportionally slow. Add and subtract
// fail with ErrStepLimitExceeded when the whole day jump and the fine steps
// after it would take more than WithMaxSteps precision steps; start and end
// of business day are bounded to their calendar day and fail with
// ErrNoBusinessTime when the day has no business time.
//
// All instants are UTC. Time zone aware business hours are out of scope.
package businesstime
