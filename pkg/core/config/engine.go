package config

import (
	"time"

	"github.com/rs/zerolog"

	bizerror "github.com/msto63/bizclock/foundation/core/error"
	"github.com/msto63/bizclock/pkg/businesstime"
	"github.com/msto63/bizclock/pkg/businesstime/constraint"
)

// Constraints builds the rule list described by the engine and holiday
// sections. Dates from a holiday store can be passed as extraHolidays.
func (c *Config) Constraints(extraHolidays ...string) ([]businesstime.Constraint, error) {
	var rules []businesstime.Constraint

	windows := make(constraint.AnyOf, 0, len(c.Engine.HourWindows))
	for _, w := range c.Engine.HourWindows {
		hw, err := constraint.NewHourWindow(w.From, w.To)
		if err != nil {
			return nil, invalidEngineConfig(err, "engine.hour_windows")
		}
		windows = append(windows, hw)
	}
	switch len(windows) {
	case 0:
	case 1:
		rules = append(rules, windows[0])
	default:
		rules = append(rules, windows)
	}

	days, err := constraint.ParseWeekdays(c.Engine.Weekdays...)
	if err != nil {
		return nil, invalidEngineConfig(err, "engine.weekdays")
	}
	rules = append(rules, days)

	dates := append(append([]string(nil), c.Holidays.Dates...), extraHolidays...)
	if len(dates) > 0 {
		holidays, err := constraint.ParseHolidays(dates...)
		if err != nil {
			return nil, invalidEngineConfig(err, "holidays.dates")
		}
		rules = append(rules, holidays)
	}

	return rules, nil
}

// EngineOptions converts the configuration into engine options
func (c *Config) EngineOptions(logger zerolog.Logger, extraHolidays ...string) ([]businesstime.Option, error) {
	rules, err := c.Constraints(extraHolidays...)
	if err != nil {
		return nil, err
	}

	opts := []businesstime.Option{
		businesstime.WithPrecision(c.Engine.Precision.Duration),
		businesstime.WithConstraints(rules...),
		businesstime.WithMaxSteps(c.Engine.MaxSteps),
		businesstime.WithLogger(logger),
	}
	if c.Engine.Layout != "" {
		opts = append(opts, businesstime.WithFormat(c.Engine.Layout))
	}
	if c.Engine.LengthOfBusinessDay.Duration > 0 {
		opts = append(opts, businesstime.WithLengthOfBusinessDay(c.Engine.LengthOfBusinessDay.Duration))
	}
	if c.Engine.ReferenceDay != "" {
		day, err := time.Parse("2006-01-02", c.Engine.ReferenceDay)
		if err != nil {
			return nil, invalidEngineConfig(err, "engine.reference_day")
		}
		opts = append(opts, businesstime.WithReferenceDay(day))
	}
	return opts, nil
}

func invalidEngineConfig(err error, field string) error {
	return bizerror.Wrap(err, "invalid engine configuration").
		WithCode(bizerror.CodeInvalidConfig).
		WithOperation("config.EngineOptions").
		WithDetail("field", field)
}
