package generator

import (
	"github.com/fieldlab/combine/internal/domain/catalog"
	"github.com/fieldlab/combine/pkg/logger"
	"github.com/fieldlab/combine/pkg/metrics"
)

// Option applies a configuration option to the Runner.
type Option func(*Runner)

// WithTrials sets the number of trials per metric per date.
func WithTrials(n int) Option {
	return func(r *Runner) {
		if n > 0 {
			r.trials = n
		}
	}
}

// WithSeed sets the random seed for the run.
func WithSeed(seed int64) Option {
	return func(r *Runner) {
		r.seed = seed
	}
}

// WithCatalog replaces the default metric catalog.
func WithCatalog(cat *catalog.Catalog) Option {
	return func(r *Runner) {
		if cat != nil {
			r.cat = cat
		}
	}
}

// WithLogger sets the logger used by the run.
func WithLogger(log logger.Logger) Option {
	return func(r *Runner) {
		if log != nil {
			r.log = log
		}
	}
}

// WithMetrics sets the metrics manager used by the run.
func WithMetrics(m *metrics.Manager) Option {
	return func(r *Runner) {
		if m != nil {
			r.metrics = m
		}
	}
}

// WithNotes overrides the annotation written to every output row.
func WithNotes(notes string) Option {
	return func(r *Runner) {
		if notes != "" {
			r.notes = notes
		}
	}
}
