// Package baseline assigns each athlete a stable per-metric bias so their
// numbers stay consistent across every test date in a run.
package baseline

import (
	"math/rand"

	"github.com/fieldlab/combine/internal/domain/catalog"
	"github.com/fieldlab/combine/internal/domain/model"
)

// spreadScale sizes the per-athlete bias relative to the metric's
// population spread.
const spreadScale = 0.5

// Offsets maps athlete identity to a per-metric additive bias.
type Offsets map[model.Key]map[string]float64

// Get returns the bias for one athlete and metric, zero when absent.
func (o Offsets) Get(key model.Key, metric string) float64 {
	per, ok := o[key]
	if !ok {
		return 0
	}
	return per[metric]
}

// Assign draws one Gaussian bias per roster entry per metric from the run's
// shared random stream. It must run exactly once per run, before any date
// or trial generation: the draw order follows roster order then catalog
// order, which is what makes a seeded run reproducible. Duplicate athlete
// keys still consume draws but end up sharing the last entry's biases.
func Assign(rng *rand.Rand, roster []model.Athlete, cat *catalog.Catalog) Offsets {
	offsets := make(Offsets, len(roster))
	for _, a := range roster {
		per := make(map[string]float64, cat.Len())
		for _, spec := range cat.Specs() {
			per[spec.Name] = rng.NormFloat64() * spec.SD * spreadScale
		}
		offsets[a.Key()] = per
	}
	return offsets
}
