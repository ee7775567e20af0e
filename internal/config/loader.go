package config

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// dateLayout validates the random date window bounds.
const dateLayout = "2006-01-02"

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if COMBINE_CONFIG is set
//  3. env (prefix COMBINE_)
func Load(_ context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("COMBINE_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: COMBINE_TRIALS, COMBINE_DATE_START, ...
	// Keys keep their underscores to match the koanf tags on the struct.
	envProvider := env.Provider("COMBINE_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "combine_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validate rejects settings that would make every run fail later.
func (c *Config) validate() error {
	if c.Trials < 1 {
		return fmt.Errorf("%w: trials must be at least 1", ErrInvalidConfig)
	}
	if c.RandomDates < 1 {
		return fmt.Errorf("%w: random_dates must be at least 1", ErrInvalidConfig)
	}
	start, err := time.Parse(dateLayout, c.DateStart)
	if err != nil {
		return fmt.Errorf("%w: date_start: %w", ErrInvalidConfig, err)
	}
	end, err := time.Parse(dateLayout, c.DateEnd)
	if err != nil {
		return fmt.Errorf("%w: date_end: %w", ErrInvalidConfig, err)
	}
	if end.Before(start) {
		return fmt.Errorf("%w: date_end precedes date_start", ErrInvalidConfig)
	}
	return nil
}

// Window returns the parsed random date window. Call after Load has
// validated the config.
func (c *Config) Window() (time.Time, time.Time) {
	start, _ := time.Parse(dateLayout, c.DateStart)
	end, _ := time.Parse(dateLayout, c.DateEnd)
	return start, end
}
