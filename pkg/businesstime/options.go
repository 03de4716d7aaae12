package businesstime

import (
	"time"

	"github.com/rs/zerolog"

	bizerror "github.com/msto63/bizclock/foundation/core/error"
)

const (
	// DefaultPrecision is the step size used when none is configured
	DefaultPrecision = time.Hour

	// DefaultMaxSteps bounds the precision steps of one add or subtract
	DefaultMaxSteps int64 = 10_000_000

	// maxDayLength is the upper bound for the length of a business day
	maxDayLength = 24 * time.Hour
)

// DefaultReferenceDay anchors business day length resolution
var DefaultReferenceDay = time.Date(2018, 5, 23, 0, 0, 0, 0, time.UTC)

// settings are shared read-only by an Engine and every Engine derived from it
type settings struct {
	layout       string
	precision    time.Duration
	constraints  []Constraint
	referenceDay time.Time
	dayLength    time.Duration
	dayLengthSet bool
	maxSteps     int64
	clock        func() time.Time
	logger       zerolog.Logger
}

// Option configures an Engine at construction
type Option func(*settings)

func defaultSettings() *settings {
	return &settings{
		precision:    DefaultPrecision,
		constraints:  DefaultConstraints(),
		referenceDay: DefaultReferenceDay,
		maxSteps:     DefaultMaxSteps,
		clock:        time.Now,
		logger:       zerolog.Nop(),
	}
}

// WithFormat sets the layout hint used to parse the raw timestamp. Named
// formats such as "business" are accepted.
func WithFormat(layout string) Option {
	return func(s *settings) {
		s.layout = layout
	}
}

// WithPrecision sets the step size of every stepping algorithm
func WithPrecision(d time.Duration) Option {
	return func(s *settings) {
		s.precision = d
	}
}

// WithConstraints replaces the default constraints. Calling it without
// arguments makes every instant business time.
func WithConstraints(c ...Constraint) Option {
	return func(s *settings) {
		s.constraints = append([]Constraint(nil), c...)
	}
}

// WithReferenceDay sets the calendar day from which the business day length
// is derived
func WithReferenceDay(day time.Time) Option {
	return func(s *settings) {
		s.referenceDay = day.UTC()
	}
}

// WithLengthOfBusinessDay fixes the business day length instead of deriving
// it. Unlike SetLengthOfBusinessDay it applies to every derived Engine.
func WithLengthOfBusinessDay(d time.Duration) Option {
	return func(s *settings) {
		s.dayLength = d
		s.dayLengthSet = true
	}
}

// WithMaxSteps bounds the precision steps add and subtract may take, the
// whole day jump included
func WithMaxSteps(n int64) Option {
	return func(s *settings) {
		s.maxSteps = n
	}
}

// WithClock replaces the wall clock used by DiffInBusinessTimeNow
func WithClock(clock func() time.Time) Option {
	return func(s *settings) {
		s.clock = clock
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

func (s *settings) validate() error {
	if s.precision <= 0 {
		return bizerror.Newf("precision must be positive, got %s", s.precision).
			WithCode(bizerror.CodeInvalidPrecision).
			WithOperation("businesstime.New").
			WithDetail("precision", s.precision.String())
	}
	for i, c := range s.constraints {
		if c == nil {
			return bizerror.Newf("constraint %d is nil", i).
				WithCode(bizerror.CodeInvalidConstraint).
				WithOperation("businesstime.New").
				WithDetail("index", i)
		}
	}
	if s.dayLengthSet {
		if err := validateDayLength(s.dayLength, "businesstime.New"); err != nil {
			return err
		}
	}
	if s.maxSteps <= 0 {
		return bizerror.Newf("max steps must be positive, got %d", s.maxSteps).
			WithCode(bizerror.CodeInvalidInput).
			WithOperation("businesstime.New").
			WithDetail("max_steps", s.maxSteps)
	}
	if s.clock == nil {
		s.clock = time.Now
	}
	return nil
}
