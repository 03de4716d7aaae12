// ============================================================================
// bizclock - Business Time Arithmetic
// ============================================================================
//
// Package:     businesstime
// Description: Engine value type, construction and calendar passthroughs
// Author:      Mike Stoffels
// Created:     2026-10-17
// License:     MIT
// ============================================================================

package businesstime

import (
	"sync/atomic"
	"time"

	bizerror "github.com/msto63/bizclock/foundation/core/error"
	"github.com/msto63/bizclock/foundation/utils/timex"
)

// Engine is an instant together with the rules that define business time.
// Engines are immutable; every transformation returns a new Engine that
// carries the precision, constraints and options forward but not the cached
// business day length.
type Engine struct {
	instant   timex.Instant
	cfg       *settings
	dayLength atomic.Pointer[time.Duration]
}

// New parses raw into an instant and builds an Engine. Without WithFormat
// the common ISO 8601 and business formats are tried.
func New(raw string, opts ...Option) (*Engine, error) {
	cfg, err := buildSettings(opts)
	if err != nil {
		return nil, err
	}

	instant, err := timex.ParseInstant(raw, cfg.layout)
	if err != nil {
		return nil, bizerror.Wrap(err, "creating business time engine").
			WithOperation("businesstime.New").
			WithDetail("input", raw)
	}

	return &Engine{instant: instant, cfg: cfg}, nil
}

// FromTime builds an Engine from an already resolved time
func FromTime(t time.Time, opts ...Option) (*Engine, error) {
	cfg, err := buildSettings(opts)
	if err != nil {
		return nil, err
	}
	return &Engine{instant: timex.NewInstant(t), cfg: cfg}, nil
}

func buildSettings(opts []Option) (*settings, error) {
	cfg := defaultSettings()
	for _, opt := range opts {
		opt(cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// at derives an Engine at i with the same settings and an empty cache
func (e *Engine) at(i timex.Instant) *Engine {
	return &Engine{instant: i, cfg: e.cfg}
}

// IsBusinessTime reports whether every constraint accepts the instant
func (e *Engine) IsBusinessTime() bool {
	return e.isBusinessTime(e.instant)
}

func (e *Engine) isBusinessTime(i timex.Instant) bool {
	return allOf(e.cfg.constraints, i.Time())
}

// Precision returns the step size
func (e *Engine) Precision() time.Duration {
	return e.cfg.precision
}

// Constraints returns a copy of the constraint list in evaluation order
func (e *Engine) Constraints() []Constraint {
	return append([]Constraint(nil), e.cfg.constraints...)
}

// Time returns the instant as a UTC time.Time
func (e *Engine) Time() time.Time {
	return e.instant.Time()
}

// Instant returns the instant
func (e *Engine) Instant() timex.Instant {
	return e.instant
}

// Clone returns an Engine at the same instant without the cached day length
func (e *Engine) Clone() *Engine {
	return e.at(e.instant)
}

// Add moves the instant by calendar time
func (e *Engine) Add(d time.Duration) *Engine {
	return e.at(e.instant.Add(d))
}

// Subtract moves the instant back by calendar time
func (e *Engine) Subtract(d time.Duration) *Engine {
	return e.at(e.instant.Sub(d))
}

// AddDays moves the instant by whole calendar days
func (e *Engine) AddDays(n int) *Engine {
	return e.at(e.instant.AddDays(n))
}

// IsAfter reports whether e is strictly after other
func (e *Engine) IsAfter(other *Engine) bool {
	return e.instant.After(other.instant)
}

// IsBefore reports whether e is strictly before other
func (e *Engine) IsBefore(other *Engine) bool {
	return e.instant.Before(other.instant)
}

// IsSame reports whether e and other fall into the same calendar unit
func (e *Engine) IsSame(other *Engine, u timex.Unit) bool {
	return e.instant.IsSame(other.instant, u)
}

// StartOf snaps to the start of the calendar unit
func (e *Engine) StartOf(u timex.Unit) *Engine {
	return e.at(e.instant.StartOf(u))
}

// EndOf snaps to the last nanosecond of the calendar unit
func (e *Engine) EndOf(u timex.Unit) *Engine {
	return e.at(e.instant.EndOf(u))
}

// Format renders the instant with a layout or named format. An empty layout
// yields ISOString.
func (e *Engine) Format(layout string) string {
	return e.instant.Format(layout)
}

// ISOString renders the instant as 2006-01-02T15:04:05.000Z
func (e *Engine) ISOString() string {
	return e.instant.String()
}

func (e *Engine) String() string {
	return e.instant.String()
}
