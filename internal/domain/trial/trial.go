// Package trial samples individual attempt values around a session anchor.
package trial

import (
	"math"
	"math/rand"

	"github.com/fieldlab/combine/internal/domain/catalog"
	"github.com/fieldlab/combine/internal/domain/progression"
)

// Tuning constants carried over from the measurement model. Trials get
// wider noise than anchors, and only half the progression enforcement, so
// single attempts can wobble while the session stays on a believable
// improvement trend.
const (
	defaultTrialJitterScale = 0.4
	defaultRelaxScale       = 0.5
)

// roundFactor rounds output values to three decimal places.
const roundFactor = 1000

// Option applies a configuration option to the Sampler.
type Option func(*Sampler)

// WithTrialJitterScale overrides the trial noise scale relative to the
// metric's spread.
func WithTrialJitterScale(scale float64) Option {
	return func(s *Sampler) {
		if scale > 0 {
			s.jitterScale = scale
		}
	}
}

// WithRelaxScale overrides the fraction of the required delta a trial may
// regress past the previous anchor.
func WithRelaxScale(scale float64) Option {
	return func(s *Sampler) {
		if scale >= 0 {
			s.relaxScale = scale
		}
	}
}

// Sampler draws trial values from the run's shared random stream. Like the
// progression engine it is owned by a single run and is not safe for
// concurrent use.
type Sampler struct {
	rng         *rand.Rand
	jitterScale float64
	relaxScale  float64
}

// New creates a sampler over the run's random stream.
func New(rng *rand.Rand, opts ...Option) *Sampler {
	s := &Sampler{
		rng:         rng,
		jitterScale: defaultTrialJitterScale,
		relaxScale:  defaultRelaxScale,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Draw samples one trial around the session anchor, applies the relaxed
// progression constraint when a previous session exists, clamps to the
// metric's bounds, and rounds for output. The second return reports
// whether the constraint had to cap the raw draw.
func (s *Sampler) Draw(spec catalog.Spec, anchor progression.Anchor) (float64, bool) {
	value := s.rng.NormFloat64()*spec.SD*s.jitterScale + anchor.Value

	limited := false
	if anchor.HasPrev {
		worstAllowed := anchor.PrevValue + anchor.RequiredDelta*s.relaxScale
		switch spec.Direction {
		case catalog.LowerIsBetter:
			if value > worstAllowed {
				value = worstAllowed
				limited = true
			}
		case catalog.HigherIsBetter:
			if value < worstAllowed {
				value = worstAllowed
				limited = true
			}
		}
	}

	return round(spec.Clamp(value)), limited
}

// round truncates a value to three decimal places for output.
func round(v float64) float64 {
	return math.Round(v*roundFactor) / roundFactor
}
