package businesstime

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bizerror "github.com/msto63/bizclock/foundation/core/error"
	"github.com/msto63/bizclock/foundation/utils/timex"
	"github.com/msto63/bizclock/pkg/businesstime/constraint"
)

var (
	_ Constraint = constraint.HourWindow{}
	_ Constraint = constraint.WeekdaySet{}
	_ Constraint = constraint.Holidays{}
	_ Constraint = ConstraintFunc(nil)
)

func mustNew(t *testing.T, raw string, opts ...Option) *Engine {
	t.Helper()
	e, err := New(raw, opts...)
	require.NoError(t, err)
	return e
}

func TestNew(t *testing.T) {
	e := mustNew(t, "2018-05-21T11:00:00+02:00")
	assert.Equal(t, "2018-05-21T09:00:00.000Z", e.ISOString())
	assert.Equal(t, time.Hour, e.Precision())
	assert.Len(t, e.Constraints(), 2)

	withLayout := mustNew(t, "21.05.2018 09:00", WithFormat("02.01.2006 15:04"))
	assert.True(t, withLayout.Time().Equal(e.Time()))
}

func TestNewInvalidTimestamp(t *testing.T) {
	_, err := New("next tuesday-ish")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidTimestamp)

	var be *bizerror.Error
	require.True(t, errors.As(err, &be))
	input, ok := be.Detail("input")
	require.True(t, ok)
	assert.Equal(t, "next tuesday-ish", input)
	assert.Equal(t, "businesstime.New", be.Operation())

	_, err = New("2018-05-21", WithFormat("02.01.2006"))
	assert.ErrorIs(t, err, ErrInvalidTimestamp)
}

func TestOptionValidation(t *testing.T) {
	tests := []struct {
		name string
		opt  Option
		want error
	}{
		{"zero precision", WithPrecision(0), ErrInvalidPrecision},
		{"negative precision", WithPrecision(-time.Minute), ErrInvalidPrecision},
		{"nil constraint", WithConstraints(nil), ErrInvalidConstraint},
		{"zero day length", WithLengthOfBusinessDay(0), ErrZeroLengthBusinessDay},
		{"long day length", WithLengthOfBusinessDay(25 * time.Hour), ErrBusinessDayTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New("2018-05-21T09:00:00Z", tt.opt)
			assert.ErrorIs(t, err, tt.want)

			_, err = FromTime(time.Now(), tt.opt)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	_, err := New("2018-05-21T09:00:00Z", WithMaxSteps(0))
	assert.True(t, bizerror.HasCode(err, bizerror.CodeInvalidInput))
}

func TestIsBusinessTimeDefaults(t *testing.T) {
	tests := []struct {
		raw  string
		want bool
	}{
		{"2018-05-21T08:59:59Z", false},
		{"2018-05-21T09:00:00Z", true},
		{"2018-05-21T16:59:59Z", true},
		{"2018-05-21T17:00:00Z", false},
		{"2018-05-26T12:00:00Z", false},
		{"2018-05-27T12:00:00Z", false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, mustNew(t, tt.raw).IsBusinessTime())
		})
	}
}

func TestIsBusinessTimeIsOrderedConjunction(t *testing.T) {
	var calls []string
	record := func(name string, result bool) Constraint {
		return ConstraintFunc(func(time.Time) bool {
			calls = append(calls, name)
			return result
		})
	}

	e := mustNew(t, "2018-05-21T09:00:00Z", WithConstraints(record("a", true), record("b", false), record("c", true)))
	assert.False(t, e.IsBusinessTime())
	assert.Equal(t, []string{"a", "b"}, calls)

	calls = nil
	e = mustNew(t, "2018-05-21T09:00:00Z", WithConstraints(record("a", true), record("c", true)))
	assert.True(t, e.IsBusinessTime())
	assert.Equal(t, []string{"a", "c"}, calls)
}

func TestEmptyConstraintsAcceptEverything(t *testing.T) {
	e := mustNew(t, "2018-05-27T03:00:00Z", WithConstraints())
	assert.True(t, e.IsBusinessTime())
	assert.Empty(t, e.Constraints())
}

func TestHolidayConstraint(t *testing.T) {
	holidays, err := constraint.ParseHolidays("2018-05-28")
	require.NoError(t, err)

	constraints := append(DefaultConstraints(), holidays)
	e := mustNew(t, "2018-05-25T16:00:00Z", WithConstraints(constraints...))

	next, err := e.AddBusinessDay()
	require.NoError(t, err)
	// Monday is closed, the remaining seven hours are taken from Tuesday
	assert.Equal(t, "2018-05-29T16:00:00.000Z", next.ISOString())
}

func TestCalendarPassthroughs(t *testing.T) {
	e := mustNew(t, "2018-05-21T12:34:56Z")

	assert.Equal(t, "2018-05-21T14:34:56.000Z", e.Add(2*time.Hour).ISOString())
	assert.Equal(t, "2018-05-21T12:04:56.000Z", e.Subtract(30*time.Minute).ISOString())
	assert.Equal(t, "2018-05-24T12:34:56.000Z", e.AddDays(3).ISOString())
	assert.Equal(t, "2018-05-21T00:00:00.000Z", e.StartOf(timex.Day).ISOString())
	assert.Equal(t, "2018-05-21T12:59:59.999Z", e.EndOf(timex.Hour).ISOString())
	assert.Equal(t, "2018-05-21", e.Format("iso8601-date"))
	assert.Equal(t, e.ISOString(), e.Format(""))
	assert.Equal(t, e.ISOString(), e.String())

	later := e.Add(time.Minute)
	assert.True(t, later.IsAfter(e))
	assert.True(t, e.IsBefore(later))
	assert.True(t, e.IsSame(later, timex.Hour))
	assert.False(t, e.IsSame(later, timex.Minute))

	clone := e.Clone()
	assert.NotSame(t, e, clone)
	assert.True(t, clone.Instant().Equal(e.Instant()))
	assert.Equal(t, e.Precision(), clone.Precision())
}

func TestConstraintsAreCopied(t *testing.T) {
	list := []Constraint{constraint.WorkWeek()}
	e := mustNew(t, "2018-05-26T12:00:00Z", WithConstraints(list...))
	list[0] = ConstraintFunc(func(time.Time) bool { return true })
	assert.False(t, e.IsBusinessTime())

	got := e.Constraints()
	got[0] = nil
	assert.NotNil(t, e.Constraints()[0])
}

func TestLoggerReceivesWarnings(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	e := mustNew(t, "2018-05-26T12:00:00Z", WithLogger(logger))
	_, err := e.StartOfBusinessDay()
	require.ErrorIs(t, err, ErrNoBusinessTime)
	assert.Contains(t, buf.String(), "calendar day has no business time")
	assert.Contains(t, buf.String(), `"day":"2018-05-26"`)
}
