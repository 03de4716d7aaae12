package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bizerror "github.com/msto63/bizclock/foundation/core/error"
	"github.com/msto63/bizclock/pkg/businesstime"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDuration_UnmarshalText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Duration
		wantErr  bool
	}{
		{"seconds", "30s", 30 * time.Second, false},
		{"minutes", "5m", 5 * time.Minute, false},
		{"hours", "2h", 2 * time.Hour, false},
		{"complex", "1h30m", 90 * time.Minute, false},
		{"phrase", "15 minutes", 15 * time.Minute, false},
		{"invalid", "invalid", 0, true},
		{"negative", "-1h", 0, true},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := d.UnmarshalText([]byte(tt.input))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, d.Duration)
		})
	}
}

func TestDuration_MarshalText(t *testing.T) {
	out, err := Duration{Duration: 90 * time.Minute}.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "1h30m0s", string(out))
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "bizclock", cfg.General.Name)
	assert.Equal(t, "warn", cfg.General.LogLevel)
	assert.Equal(t, "console", cfg.General.LogFormat)
	assert.Equal(t, time.Hour, cfg.Engine.Precision.Duration)
	assert.Equal(t, []HourWindowConfig{{From: 9, To: 17}}, cfg.Engine.HourWindows)
	assert.Equal(t, []string{"mon-fri"}, cfg.Engine.Weekdays)
	assert.Equal(t, int64(10_000_000), cfg.Engine.MaxSteps)
	assert.Equal(t, "default", cfg.Holidays.Calendar)
	assert.NoError(t, cfg.Validate())
}

func TestLoadTOML(t *testing.T) {
	t.Setenv("BIZCLOCK_TEST_DIR", "/var/lib/bizclock")
	path := writeFile(t, "bizclock.toml", `
[general]
log_level = "debug"
log_format = "json"

[engine]
precision = "30m"
weekdays = ["mon-thu"]
length_of_business_day = "7h"
reference_day = "2018-05-23"

[[engine.hour_windows]]
from = 9
to = 12

[[engine.hour_windows]]
from = 13
to = 17

[holidays]
dates = ["2018-12-25", "2018-12-26"]
use_store = true
store_path = "${BIZCLOCK_TEST_DIR}/holidays.db"
calendar = "de-by"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.General.LogLevel)
	assert.Equal(t, 30*time.Minute, cfg.Engine.Precision.Duration)
	assert.Len(t, cfg.Engine.HourWindows, 2)
	assert.Equal(t, 7*time.Hour, cfg.Engine.LengthOfBusinessDay.Duration)
	assert.Equal(t, "/var/lib/bizclock/holidays.db", cfg.Holidays.StorePath)
	assert.Equal(t, "de-by", cfg.Holidays.Calendar)
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "bizclock.yaml", `
general:
  log_level: info
engine:
  precision: 15m
  hour_windows:
    - from: 8
      to: 16
  weekdays: [mon, tue, wed, thu, fri, sat]
holidays:
  dates: ["2018-05-21"]
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 15*time.Minute, cfg.Engine.Precision.Duration)
	assert.Equal(t, []HourWindowConfig{{From: 8, To: 16}}, cfg.Engine.HourWindows)
	assert.Len(t, cfg.Engine.Weekdays, 6)
	assert.Equal(t, "console", cfg.General.LogFormat)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.True(t, bizerror.HasCode(err, bizerror.CodeMissingConfig))

	_, err = Load(writeFile(t, "broken.toml", "[engine\nprecision ="))
	assert.True(t, bizerror.HasCode(err, bizerror.CodeConfigError))

	_, err = Load(writeFile(t, "unknown.toml", "[engine]\nprecission = \"1h\"\n"))
	assert.True(t, bizerror.HasCode(err, bizerror.CodeConfigError))

	_, err = Load(writeFile(t, "unknown.yaml", "engine:\n  precission: 1h\n"))
	assert.True(t, bizerror.HasCode(err, bizerror.CodeConfigError))

	_, err = Load(writeFile(t, "badduration.toml", "[engine]\nprecision = \"soon\"\n"))
	assert.True(t, bizerror.HasCode(err, bizerror.CodeConfigError))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"log level", func(c *Config) { c.General.LogLevel = "chatty" }, "general.log_level"},
		{"log format", func(c *Config) { c.General.LogFormat = "xml" }, "general.log_format"},
		{"window start", func(c *Config) { c.Engine.HourWindows = []HourWindowConfig{{From: 24, To: 2}} }, "engine.hour_windows[0].from"},
		{"empty window", func(c *Config) { c.Engine.HourWindows = []HourWindowConfig{{From: 9, To: 9}} }, "engine.hour_windows[0].to"},
		{"day too long", func(c *Config) { c.Engine.LengthOfBusinessDay.Duration = 25 * time.Hour }, "engine.length_of_business_day"},
		{"reference day", func(c *Config) { c.Engine.ReferenceDay = "23.05.2018" }, "engine.reference_day"},
		{"holiday date", func(c *Config) { c.Holidays.Dates = []string{"tomorrow"} }, "holidays.dates[0]"},
		{"store path", func(c *Config) { c.Holidays.UseStore = true; c.Holidays.StorePath = "" }, "holidays.store_path"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, bizerror.HasCode(err, bizerror.CodeInvalidConfig))

			be, ok := err.(*bizerror.Error)
			require.True(t, ok)
			fields, ok := be.Detail("fields")
			require.True(t, ok)
			assert.Contains(t, fields, tt.field)
		})
	}
}

func TestLoadFromEnv(t *testing.T) {
	path := writeFile(t, "env.toml", "[general]\nlog_level = \"error\"\n")
	t.Setenv(EnvConfigPath, path)

	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.General.LogLevel)

	t.Setenv(EnvConfigPath, filepath.Join(t.TempDir(), "nope.toml"))
	_, err = LoadFromEnv()
	assert.True(t, bizerror.HasCode(err, bizerror.CodeMissingConfig))
}

func TestEngineOptionsDefaults(t *testing.T) {
	opts, err := Default().EngineOptions(zerolog.Nop())
	require.NoError(t, err)

	e, err := businesstime.New("2018-05-25T16:00:00Z", opts...)
	require.NoError(t, err)
	next, err := e.AddBusinessDay()
	require.NoError(t, err)
	assert.Equal(t, "2018-05-28T16:00:00.000Z", next.ISOString())
}

func TestEngineOptionsSplitWindowsAndHolidays(t *testing.T) {
	cfg := Default()
	cfg.Engine.HourWindows = []HourWindowConfig{{From: 9, To: 12}, {From: 13, To: 17}}
	cfg.Holidays.Dates = []string{"2018-05-22"}

	opts, err := cfg.EngineOptions(zerolog.Nop(), "2018-05-23")
	require.NoError(t, err)

	lunch, err := businesstime.New("2018-05-21T12:30:00Z", opts...)
	require.NoError(t, err)
	assert.False(t, lunch.IsBusinessTime())

	length, err := lunch.LengthOfBusinessDay()
	require.NoError(t, err)
	// the reference Wednesday is closed so Thursday is used
	assert.Equal(t, 7*time.Hour, length)

	holiday, err := businesstime.New("2018-05-22T10:00:00Z", opts...)
	require.NoError(t, err)
	assert.False(t, holiday.IsBusinessTime())
}

func TestEngineOptionsOverrides(t *testing.T) {
	cfg := Default()
	cfg.Engine.Layout = "02.01.2006 15:04"
	cfg.Engine.LengthOfBusinessDay.Duration = 4 * time.Hour
	cfg.Engine.Precision.Duration = 30 * time.Minute

	opts, err := cfg.EngineOptions(zerolog.Nop())
	require.NoError(t, err)

	e, err := businesstime.New("21.05.2018 09:00", opts...)
	require.NoError(t, err)
	assert.Equal(t, 30*time.Minute, e.Precision())
	length, err := e.LengthOfBusinessDay()
	require.NoError(t, err)
	assert.Equal(t, 4*time.Hour, length)
}

func TestEngineOptionsInvalidRules(t *testing.T) {
	cfg := Default()
	cfg.Engine.Weekdays = []string{"someday"}
	_, err := cfg.EngineOptions(zerolog.Nop())
	assert.True(t, bizerror.HasCode(err, bizerror.CodeInvalidConfig))

	cfg = Default()
	_, err = cfg.EngineOptions(zerolog.Nop(), "not-a-date")
	assert.True(t, bizerror.HasCode(err, bizerror.CodeInvalidConfig))
}
