package config

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the application configuration, loaded from a YAML file. Every
// field has a usable default so a missing file means a default setup rather
// than an error.
type Config struct {
	// Listen is the HTTP listen address for the calendar API.
	Listen string `yaml:"listen"`

	// Timezone is the label preselected in the timezone picker. It is
	// display state only; event times are never converted.
	Timezone string `yaml:"timezone"`

	// WeekStart controls the first day of the week in the month and week
	// grids: "monday" (default) or "sunday".
	WeekStart string `yaml:"week_start"`

	// DefaultLanguage selects the label catalog ("fr" or "en").
	DefaultLanguage string `yaml:"default_language"`

	// SeedDemo fills an empty session with the demo schedule on startup.
	SeedDemo bool `yaml:"seed_demo"`
}

func DefaultConfig() *Config {
	return &Config{
		Listen:          "127.0.0.1:8080",
		Timezone:        "Europe/Paris",
		WeekStart:       "monday",
		DefaultLanguage: "fr",
		SeedDemo:        true,
	}
}

// Normalize fills missing or unknown values with defaults so partially
// filled configs still behave.
func (cfg *Config) Normalize() {
	if cfg.Listen == "" {
		cfg.Listen = "127.0.0.1:8080"
	}
	if cfg.Timezone == "" {
		cfg.Timezone = "Europe/Paris"
	}
	switch cfg.WeekStart {
	case "monday", "sunday":
	default:
		cfg.WeekStart = "monday"
	}
	if cfg.DefaultLanguage == "" {
		cfg.DefaultLanguage = "fr"
	}
}

// WeekStartDay maps the configured week start onto a time.Weekday.
func (cfg *Config) WeekStartDay() time.Weekday {
	if cfg.WeekStart == "sunday" {
		return time.Sunday
	}
	return time.Monday
}

// Load reads the YAML config at path. A missing file yields the default
// configuration; a malformed one is an error.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.Normalize()

	return &cfg, nil
}
