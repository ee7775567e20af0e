// Package generator orchestrates a full measurement-generation run: resolve
// test dates, assign athlete baselines, then walk athlete by athlete, date
// by date, metric by metric, emitting one row per trial.
//
// The whole run is strictly sequential. Every random draw comes
// from one seeded stream in a fixed order, so the output is a deterministic
// function of (seed, roster, dates, trial count). Parallelizing any of the
// loops would reorder the draws and break reproducibility.
package generator

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/fieldlab/combine/internal/domain/adjust"
	"github.com/fieldlab/combine/internal/domain/baseline"
	"github.com/fieldlab/combine/internal/domain/catalog"
	"github.com/fieldlab/combine/internal/domain/model"
	"github.com/fieldlab/combine/internal/domain/progression"
	"github.com/fieldlab/combine/internal/domain/trial"
	"github.com/fieldlab/combine/pkg/logger"
	"github.com/fieldlab/combine/pkg/metrics"
)

// Default run configuration constants.
const (
	defaultTrials = 3
	defaultSeed   = 42
)

const (
	dateLayout   = "2006-01-02"
	hoursPerDay  = 24
	defaultNotes = "Auto-generated"
)

// Sink receives generated measurement rows in emission order.
type Sink interface {
	Write(model.Measurement) error
}

// Request carries the per-run inputs. Either Dates is non-empty, or
// RandomDates dates are drawn from [WindowStart, WindowEnd] using the run's
// random stream.
type Request struct {
	Roster      []model.Athlete
	Dates       []time.Time
	RandomDates int
	WindowStart time.Time
	WindowEnd   time.Time
}

// Stats summarizes a completed run.
type Stats struct {
	RunID     string
	Athletes  int
	Rows      int
	DatesUsed []time.Time
	Duration  time.Duration
}

// Runner generates measurements for rosters. A Runner is reusable; each Run
// builds fresh per-run state (random stream, baselines, progression).
type Runner struct {
	cat     *catalog.Catalog
	trials  int
	seed    int64
	notes   string
	log     logger.Logger
	metrics *metrics.Manager
}

// New creates a Runner with configuration options.
func New(opts ...Option) *Runner {
	r := &Runner{
		cat:     catalog.Default(),
		trials:  defaultTrials,
		seed:    defaultSeed,
		notes:   defaultNotes,
		log:     logger.Nop(),
		metrics: metrics.Get(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run generates all measurements for the request and writes them to sink.
// An empty roster is the one fatal input.
func (r *Runner) Run(ctx context.Context, req Request, sink Sink) (Stats, error) {
	start := time.Now()
	if len(req.Roster) == 0 {
		return Stats{}, ErrEmptyRoster
	}

	runID := uuid.New().String()
	rng := rand.New(rand.NewSource(r.seed)) //nolint:gosec // deterministic seed is the contract

	dates, err := r.resolveDates(rng, req)
	if err != nil {
		return Stats{}, err
	}

	r.log.Info(ctx, "starting generation run",
		logger.String("run_id", runID),
		logger.Int("athletes", len(req.Roster)),
		logger.Int("dates", len(dates)),
		logger.Int("trials", r.trials),
		logger.Int64("seed", r.seed),
	)
	r.metrics.SetRosterSize(len(req.Roster))
	r.metrics.SetTestDates(len(dates))

	// Baselines are drawn once, before any date or trial, in roster order.
	offsets := baseline.Assign(rng, req.Roster, r.cat)

	adj := adjust.New()
	engine := progression.New(adj, rng)
	sampler := trial.New(rng)

	stats := Stats{RunID: runID, Athletes: len(req.Roster), DatesUsed: dates}
	firstDate := dates[0]

	for _, athlete := range req.Roster {
		if err := ctx.Err(); err != nil {
			return stats, fmt.Errorf("generation cancelled: %w", err)
		}

		key := athlete.Key()
		level := adjust.ParseLevel(athlete.CompetitiveLevel)

		for _, date := range dates {
			age, ageLabel := ageOn(athlete, date)

			for _, spec := range r.cat.Specs() {
				anchor := engine.Next(spec, progression.Session{
					Athlete:   key,
					Date:      date,
					FirstDate: firstDate,
					Age:       age,
					Gender:    athlete.Gender,
					Level:     level,
					Offset:    offsets.Get(key, spec.Name),
				})
				r.metrics.IncAnchorsComputed()
				if anchor.Enforced {
					r.metrics.IncAnchorsEnforced()
				}
				if anchor.Clamped {
					r.metrics.IncAnchorsClamped()
				}

				for t := 0; t < r.trials; t++ {
					value, limited := sampler.Draw(spec, anchor)
					if limited {
						r.metrics.IncTrialsLimited()
					}

					row := model.Measurement{
						FirstName:     key.First,
						LastName:      key.Last,
						Gender:        athlete.Gender,
						TeamName:      athlete.TeamName,
						Date:          date.Format(dateLayout),
						Age:           ageLabel,
						Metric:        spec.Name,
						Value:         value,
						Units:         spec.Units,
						FlyInDistance: flyInLabel(spec),
						Notes:         r.notes,
					}
					if err := sink.Write(row); err != nil {
						return stats, fmt.Errorf("write measurement: %w", err)
					}
					stats.Rows++
				}
			}
		}
		r.metrics.IncAthletesProcessed()
	}

	stats.Duration = time.Since(start)
	r.metrics.IncRowsWritten(stats.Rows)
	r.metrics.ObserveRunDuration(stats.Duration)
	r.log.Info(ctx, "generation run complete",
		logger.String("run_id", runID),
		logger.Int("rows", stats.Rows),
		logger.Int64("duration_ms", stats.Duration.Milliseconds()),
	)
	return stats, nil
}

// resolveDates returns the run's test dates in ascending order, drawing
// random unique dates from the window when none were supplied.
func (r *Runner) resolveDates(rng *rand.Rand, req Request) ([]time.Time, error) {
	if len(req.Dates) > 0 {
		dates := make([]time.Time, len(req.Dates))
		copy(dates, req.Dates)
		sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
		return dates, nil
	}

	if req.RandomDates < 1 {
		return nil, ErrNoDates
	}
	span := int(req.WindowEnd.Sub(req.WindowStart).Hours() / hoursPerDay)
	if span < 0 {
		return nil, ErrBadDateWindow
	}
	if req.RandomDates > span+1 {
		return nil, fmt.Errorf("%w: cannot fit %d unique dates in a %d-day window", ErrBadDateWindow, req.RandomDates, span+1)
	}

	// Draw day offsets until enough unique ones exist; duplicates still
	// consume draws, which keeps the stream position deterministic.
	seen := make(map[int]struct{}, req.RandomDates)
	offsets := make([]int, 0, req.RandomDates)
	for len(offsets) < req.RandomDates {
		day := rng.Intn(span + 1)
		if _, dup := seen[day]; dup {
			continue
		}
		seen[day] = struct{}{}
		offsets = append(offsets, day)
	}
	sort.Ints(offsets)

	dates := make([]time.Time, len(offsets))
	for i, day := range offsets {
		dates[i] = req.WindowStart.AddDate(0, 0, day)
	}
	return dates, nil
}

// ageOn derives the athlete's age for a date, as both the adjustment input
// and the output cell (empty when the birth date is unusable).
func ageOn(a model.Athlete, date time.Time) (adjust.Age, string) {
	years, ok := a.AgeOn(date)
	if !ok {
		return adjust.Unknown(), ""
	}
	return adjust.Years(years), strconv.Itoa(years)
}

// flyInLabel renders the auxiliary fly-in distance cell.
func flyInLabel(spec catalog.Spec) string {
	if spec.FlyInDistance == 0 {
		return ""
	}
	return strconv.Itoa(spec.FlyInDistance)
}
