package constraint

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bizerror "github.com/msto63/bizclock/foundation/core/error"
)

func at(day, hour int) time.Time {
	// May 2018: the 21st is a Monday
	return time.Date(2018, 5, day, hour, 30, 0, 0, time.UTC)
}

func TestHourWindow(t *testing.T) {
	tests := []struct {
		name   string
		window HourWindow
		hour   int
		want   bool
	}{
		{"before open", MustHourWindow(9, 17), 8, false},
		{"at open", MustHourWindow(9, 17), 9, true},
		{"last hour", MustHourWindow(9, 17), 16, true},
		{"at close", MustHourWindow(9, 17), 17, false},
		{"overnight late", MustHourWindow(22, 6), 23, true},
		{"overnight early", MustHourWindow(22, 6), 5, true},
		{"overnight gap", MustHourWindow(22, 6), 12, false},
		{"until midnight", MustHourWindow(18, 24), 23, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.window.IsBusinessTime(at(21, tt.hour)))
		})
	}
}

func TestHourWindowUsesUTC(t *testing.T) {
	// 08:30 UTC is 10:30 in a +02:00 zone
	local := time.Date(2018, 5, 21, 10, 30, 0, 0, time.FixedZone("CEST", 2*3600))
	assert.False(t, MustHourWindow(9, 17).IsBusinessTime(local))
}

func TestNewHourWindowValidation(t *testing.T) {
	for _, bounds := range [][2]int{{-1, 5}, {24, 2}, {9, 25}, {9, 9}} {
		_, err := NewHourWindow(bounds[0], bounds[1])
		require.Error(t, err, "%v", bounds)
		assert.True(t, bizerror.HasCode(err, bizerror.CodeInvalidConstraint))
	}
	assert.Panics(t, func() { MustHourWindow(3, 3) })

	w := MustHourWindow(22, 6)
	assert.Equal(t, 8, w.Hours())
	assert.Equal(t, "22:00-06:00", w.String())
	assert.Equal(t, 8, MustHourWindow(9, 17).Hours())
}

func TestWorkWeek(t *testing.T) {
	ww := WorkWeek()
	for day := 21; day <= 25; day++ {
		assert.True(t, ww.IsBusinessTime(at(day, 12)), "May %d", day)
	}
	assert.False(t, ww.IsBusinessTime(at(26, 12)))
	assert.False(t, ww.IsBusinessTime(at(27, 12)))
	assert.Equal(t, "Mon,Tue,Wed,Thu,Fri", ww.String())
}

func TestParseWeekdays(t *testing.T) {
	tests := []struct {
		input []string
		want  string
	}{
		{[]string{"mon-fri"}, "Mon,Tue,Wed,Thu,Fri"},
		{[]string{"Monday", "wed", "FRI"}, "Mon,Wed,Fri"},
		{[]string{"fri-mon"}, "Mon,Fri,Sat,Sun"},
		{[]string{"sun"}, "Sun"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			s, err := ParseWeekdays(tt.input...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, s.String())
		})
	}

	for _, bad := range [][]string{{"funday"}, {"mon-xyz"}, {}} {
		_, err := ParseWeekdays(bad...)
		require.Error(t, err)
		assert.True(t, bizerror.HasCode(err, bizerror.CodeInvalidConstraint))
	}
}

func TestHolidays(t *testing.T) {
	h, err := ParseHolidays("2018-05-21", " 2018-12-25 ", "2018-05-21")
	require.NoError(t, err)

	assert.Equal(t, 2, h.Len())
	assert.Equal(t, []string{"2018-05-21", "2018-12-25"}, h.Dates())
	assert.False(t, h.IsBusinessTime(at(21, 0)))
	assert.False(t, h.IsBusinessTime(at(21, 23)))
	assert.True(t, h.IsBusinessTime(at(22, 12)))
	assert.Equal(t, "holidays[2018-05-21,2018-12-25]", h.String())

	_, err = ParseHolidays("21.05.2018")
	assert.True(t, bizerror.HasCode(err, bizerror.CodeInvalidConstraint))
}

func TestZeroHolidaysAcceptEverything(t *testing.T) {
	var h Holidays
	assert.True(t, h.IsBusinessTime(at(21, 12)))
	assert.Equal(t, 0, h.Len())
}

func TestAnyOf(t *testing.T) {
	split := AnyOf{MustHourWindow(9, 12), MustHourWindow(13, 17)}

	assert.True(t, split.IsBusinessTime(at(21, 9)))
	assert.False(t, split.IsBusinessTime(at(21, 12)))
	assert.True(t, split.IsBusinessTime(at(21, 16)))
	assert.False(t, AnyOf{}.IsBusinessTime(at(21, 10)))
	assert.Equal(t, "09:00-12:00|13:00-17:00", split.String())
}
