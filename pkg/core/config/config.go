// ============================================================================
// bizclock - Business Time Arithmetic
// ============================================================================
//
// Package:     config
// Description: Profile configuration loaded from TOML or YAML
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package config

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	bizerror "github.com/msto63/bizclock/foundation/core/error"
	"github.com/msto63/bizclock/foundation/utils/timex"
)

// EnvConfigPath names the environment variable holding the config path
const EnvConfigPath = "BIZCLOCK_CONFIG"

// Config holds the complete application configuration
type Config struct {
	General  GeneralConfig  `toml:"general" yaml:"general"`
	Engine   EngineConfig   `toml:"engine" yaml:"engine"`
	Holidays HolidaysConfig `toml:"holidays" yaml:"holidays"`
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	Name      string `toml:"name" yaml:"name"`
	LogLevel  string `toml:"log_level" yaml:"log_level" validate:"oneof=trace debug info warn warning error disabled"`
	LogFormat string `toml:"log_format" yaml:"log_format" validate:"oneof=json console"`
}

// EngineConfig holds the business time rules
type EngineConfig struct {
	Precision           Duration           `toml:"precision" yaml:"precision" validate:"gt=0"`
	Layout              string             `toml:"layout" yaml:"layout"`
	HourWindows         []HourWindowConfig `toml:"hour_windows" yaml:"hour_windows" validate:"dive"`
	Weekdays            []string           `toml:"weekdays" yaml:"weekdays" validate:"dive,required"`
	LengthOfBusinessDay Duration           `toml:"length_of_business_day" yaml:"length_of_business_day" validate:"gte=0,lte=86400000000000"`
	ReferenceDay        string             `toml:"reference_day" yaml:"reference_day" validate:"omitempty,datetime=2006-01-02"`
	MaxSteps            int64              `toml:"max_steps" yaml:"max_steps" validate:"gt=0"`
}

// HourWindowConfig is one opening window; several windows are joined
type HourWindowConfig struct {
	From int `toml:"from" yaml:"from" validate:"min=0,max=23"`
	To   int `toml:"to" yaml:"to" validate:"min=0,max=24,nefield=From"`
}

// HolidaysConfig holds closed calendar dates
type HolidaysConfig struct {
	Dates     []string `toml:"dates" yaml:"dates" validate:"dive,datetime=2006-01-02"`
	UseStore  bool     `toml:"use_store" yaml:"use_store"`
	StorePath string   `toml:"store_path" yaml:"store_path" validate:"required_if=UseStore true"`
	Calendar  string   `toml:"calendar" yaml:"calendar" validate:"required"`
}

// Duration wraps time.Duration for TOML and YAML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string such as "1h" or "15 minutes"
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = timex.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// UnmarshalYAML parses a scalar duration node
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	return d.UnmarshalText([]byte(s))
}

// MarshalYAML formats the duration as a string
func (d Duration) MarshalYAML() (interface{}, error) {
	return d.Duration.String(), nil
}

// Default returns the configuration used when no file is present
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML or YAML file. The format follows the
// file extension; anything but .yaml and .yml is read as TOML.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, bizerror.Newf("config file not found: %s", path).
				WithCode(bizerror.CodeMissingConfig).
				WithOperation("config.Load").
				WithDetail("path", path)
		}
		return nil, bizerror.Wrap(err, "failed to read config").
			WithCode(bizerror.CodeConfigError).
			WithOperation("config.Load").
			WithDetail("path", path)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = decodeYAML(data, &cfg)
	default:
		err = decodeTOML(data, &cfg)
	}
	if err != nil {
		return nil, bizerror.Wrap(err, "failed to parse config").
			WithCode(bizerror.CodeConfigError).
			WithOperation("config.Load").
			WithDetail("path", path)
	}

	// Apply defaults
	cfg.applyDefaults()

	// Expand environment variables in paths
	cfg.expandEnvVars()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func decodeTOML(data []byte, cfg *Config) error {
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return bizerror.Newf("unknown keys: %s", strings.Join(keys, ", ")).
			WithCode(bizerror.CodeInvalidConfig)
	}
	return nil
}

func decodeYAML(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// DefaultPaths lists the locations LoadFromEnv tries in order
func DefaultPaths() []string {
	paths := []string{
		"./configs/bizclock.toml",
		"./bizclock.toml",
		"./bizclock.yaml",
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "bizclock", "config.toml"))
	}
	return paths
}

// LoadFromEnv loads configuration from the BIZCLOCK_CONFIG environment
// variable or the first existing default path
func LoadFromEnv() (*Config, error) {
	path := os.Getenv(EnvConfigPath)
	if path == "" {
		for _, p := range DefaultPaths() {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path == "" {
		return nil, bizerror.New("no config file found, set BIZCLOCK_CONFIG or create configs/bizclock.toml").
			WithCode(bizerror.CodeMissingConfig).
			WithOperation("config.LoadFromEnv")
	}

	return Load(path)
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	// General
	if c.General.Name == "" {
		c.General.Name = "bizclock"
	}
	if c.General.LogLevel == "" {
		c.General.LogLevel = "warn"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "console"
	}

	// Engine
	if c.Engine.Precision.Duration == 0 {
		c.Engine.Precision.Duration = time.Hour
	}
	if len(c.Engine.HourWindows) == 0 {
		c.Engine.HourWindows = []HourWindowConfig{{From: 9, To: 17}}
	}
	if len(c.Engine.Weekdays) == 0 {
		c.Engine.Weekdays = []string{"mon-fri"}
	}
	if c.Engine.MaxSteps == 0 {
		c.Engine.MaxSteps = 10_000_000
	}

	// Holidays
	if c.Holidays.Calendar == "" {
		c.Holidays.Calendar = "default"
	}
	if c.Holidays.StorePath == "" && c.Holidays.UseStore {
		c.Holidays.StorePath = "./data/holidays.db"
	}
}

// expandEnvVars expands environment variables in configuration values
func (c *Config) expandEnvVars() {
	c.Holidays.StorePath = os.ExpandEnv(c.Holidays.StorePath)
}
