package config

import (
	"fmt"
	"time"
)

// Config holds the process-wide options for both entry points. It replaces
// the constants that used to live in the drivers, so every knob is explicit
// and testable.
type Config struct {
	// Namespace is the Docker Hub namespace the tracked repositories live in.
	Namespace string

	// Repositories is the ordered list of repository names to track.
	Repositories []string

	// TablePath is the append-only CSV table of collected samples.
	TablePath string

	// ChartDir is the directory chart PNGs are written into.
	ChartDir string

	// TimeZone is the IANA name of the zone timestamps are normalized to
	// on load and display.
	TimeZone string
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Namespace:    "lmcache",
		Repositories: []string{"vllm-openai", "lmstack-router"},
		TablePath:    "pull_counts.csv",
		ChartDir:     ".",
		TimeZone:     "America/Los_Angeles",
	}
}

// Validate checks the config for missing or unresolvable values.
func (c Config) Validate() error {
	if c.Namespace == "" {
		return fmt.Errorf("namespace is required")
	}
	if len(c.Repositories) == 0 {
		return fmt.Errorf("at least one repository is required")
	}
	for _, repo := range c.Repositories {
		if repo == "" {
			return fmt.Errorf("repository names must not be empty")
		}
	}
	if c.TablePath == "" {
		return fmt.Errorf("table path is required")
	}
	if c.ChartDir == "" {
		return fmt.Errorf("chart directory is required")
	}
	if _, err := time.LoadLocation(c.TimeZone); err != nil {
		return fmt.Errorf("invalid time zone %q: %w", c.TimeZone, err)
	}
	return nil
}

// Location resolves the configured time zone.
func (c Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid time zone %q: %w", c.TimeZone, err)
	}
	return loc, nil
}
