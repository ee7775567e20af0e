// Package config defines process configuration structures and loading hooks.
//
// Conventions:
// - Ambient settings live here; per-run inputs (roster path, output path,
//   explicit dates) stay CLI flags.
// - Provide New() to build a Config with defaults.
// - External errors must be wrapped via this package's error helpers.
package config

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// MetricsAddr exposes Prometheus metrics while a run is in flight,
	// e.g. ":9090". Empty disables the endpoint.
	MetricsAddr string `koanf:"metrics_addr"`

	// Trials is the default number of trials per metric per date.
	Trials int `koanf:"trials"`

	// Seed is the default random seed for reproducible runs.
	Seed int64 `koanf:"seed"`

	// RandomDates is how many random dates to draw when none are given.
	RandomDates int `koanf:"random_dates"`

	// DateStart and DateEnd bound the random date window (YYYY-MM-DD).
	DateStart string `koanf:"date_start"`
	DateEnd   string `koanf:"date_end"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:    "info",
		MetricsAddr: "",
		Trials:      3,
		Seed:        42,
		RandomDates: 1,
		DateStart:   "2025-01-01",
		DateEnd:     "2025-12-31",
	}
}
