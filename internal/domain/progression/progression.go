// Package progression computes session anchor values that drift with time
// and never regress past the metric's required improvement rate.
package progression

import (
	"math"
	"math/rand"
	"time"

	"github.com/fieldlab/combine/internal/domain/adjust"
	"github.com/fieldlab/combine/internal/domain/catalog"
	"github.com/fieldlab/combine/internal/domain/model"
)

// Tuning constants carried over from the measurement model. The overshoot
// margin keeps an enforced anchor visibly, not marginally, ahead of the
// minimum required improvement.
const (
	defaultAnchorJitterScale = 0.2
	defaultOvershootScale    = 0.3
)

const hoursPerDay = 24

// Option applies a configuration option to the Engine.
type Option func(*Engine)

// WithAnchorJitterScale overrides the anchor noise scale relative to the
// metric's spread.
func WithAnchorJitterScale(scale float64) Option {
	return func(e *Engine) {
		if scale > 0 {
			e.jitterScale = scale
		}
	}
}

// WithOvershootScale overrides the enforcement overshoot margin.
func WithOvershootScale(scale float64) Option {
	return func(e *Engine) {
		if scale >= 0 {
			e.overshootScale = scale
		}
	}
}

// Session describes one athlete/metric/date visit. Visits for a given
// athlete and metric must arrive in strictly ascending date order.
type Session struct {
	Athlete   model.Key
	Date      time.Time
	FirstDate time.Time // earliest requested date of the run
	Age       adjust.Age
	Gender    string
	Level     adjust.Level
	Offset    float64 // the athlete's baseline bias for this metric
}

// Anchor is the representative value for one session, along with the
// previous-session context the trial sampler needs for its relaxed
// constraint.
type Anchor struct {
	Value         float64
	PrevValue     float64 // previous session's anchor, valid when HasPrev
	HasPrev       bool
	RequiredDelta float64 // minimum improvement owed since the previous session
	Enforced      bool    // the raw draw violated the progression constraint
	Clamped       bool    // the anchor hit a physiological bound
}

type stateKey struct {
	athlete model.Key
	metric  string
}

type state struct {
	value float64
	date  time.Time
}

// Engine tracks per athlete/metric progression state across the dates of a
// single run. It is owned by that run and is not safe for concurrent use;
// all randomness comes from the run's shared stream.
type Engine struct {
	adj            *adjust.Model
	rng            *rand.Rand
	jitterScale    float64
	overshootScale float64
	states         map[stateKey]state
}

// New creates an engine over the run's adjustment model and random stream.
func New(adj *adjust.Model, rng *rand.Rand, opts ...Option) *Engine {
	e := &Engine{
		adj:            adj,
		rng:            rng,
		jitterScale:    defaultAnchorJitterScale,
		overshootScale: defaultOvershootScale,
		states:         make(map[stateKey]state),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Next computes the session anchor for one visit and records it as the
// previous anchor for the athlete's next date.
func (e *Engine) Next(spec catalog.Spec, s Session) Anchor {
	adjustedCenter := e.adj.AdjustedCenter(s.Age, s.Gender, s.Level, spec)
	daysSinceStart := daysBetween(s.FirstDate, s.Date)
	target := adjustedCenter + s.Offset + spec.DriftPerDay*float64(daysSinceStart)
	value := e.rng.NormFloat64()*spec.SD*e.jitterScale + target

	key := stateKey{athlete: s.Athlete, metric: spec.Name}
	prev, hasPrev := e.states[key]

	out := Anchor{HasPrev: hasPrev}
	if hasPrev {
		daysSincePrev := daysBetween(prev.date, s.Date)
		if daysSincePrev < 1 {
			daysSincePrev = 1
		}
		out.PrevValue = prev.value
		out.RequiredDelta = spec.ProgressPerDay * float64(daysSincePrev)

		limit := prev.value + out.RequiredDelta
		margin := math.Abs(out.RequiredDelta) * e.overshootScale
		switch spec.Direction {
		case catalog.LowerIsBetter:
			if value > limit {
				value = limit - margin
				out.Enforced = true
			}
		case catalog.HigherIsBetter:
			if value < limit {
				value = limit + margin
				out.Enforced = true
			}
		}
	}

	clamped := spec.Clamp(value)
	out.Clamped = clamped != value
	out.Value = clamped

	e.states[key] = state{value: clamped, date: s.Date}
	return out
}

// daysBetween returns whole days from a to b.
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / hoursPerDay)
}
