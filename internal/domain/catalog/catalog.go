// Package catalog defines the static registry of test metric definitions.
//
// The catalog is constructed once at process start and never mutated. Its
// iteration order is fixed: generation walks metrics in registration order
// so that the sequence of random draws is reproducible under a fixed seed.
package catalog

// Direction states whether smaller or larger values mean better performance.
type Direction int

const (
	// LowerIsBetter marks time-based metrics such as sprints.
	LowerIsBetter Direction = iota
	// HigherIsBetter marks output-based metrics such as jump height.
	HigherIsBetter
)

// Metric name constants.
const (
	Fly10Time    = "FLY10_TIME"
	VerticalJump = "VERTICAL_JUMP"
	Agility505   = "AGILITY_505"
	RSI          = "RSI"
	TTest        = "T_TEST"
)

// flyInDistanceYards is the fixed fly-in distance reported with the fly
// sprint metric.
const flyInDistanceYards = 20

// Spec describes one test metric. Center and SD are for the college-aged
// male baseline; Min/Max are expanded to accommodate all ages and genders.
type Spec struct {
	Name           string
	Units          string
	Direction      Direction
	Center         float64 // population baseline
	SD             float64 // population spread
	DriftPerDay    float64 // secular trend applied to the baseline
	ProgressPerDay float64 // minimum required improvement rate
	Min            float64 // physiological lower bound
	Max            float64 // physiological upper bound
	FlyInDistance  int     // auxiliary attribute; zero when not applicable
}

// Clamp bounds v to the metric's physiological range.
func (s Spec) Clamp(v float64) float64 {
	if v < s.Min {
		return s.Min
	}
	if v > s.Max {
		return s.Max
	}
	return v
}

// Catalog is an ordered, immutable set of metric specs.
type Catalog struct {
	specs []Spec
	index map[string]int
}

// New builds a catalog from the given specs, preserving order.
func New(specs ...Spec) *Catalog {
	c := &Catalog{
		specs: make([]Spec, len(specs)),
		index: make(map[string]int, len(specs)),
	}
	copy(c.specs, specs)
	for i, s := range c.specs {
		c.index[s.Name] = i
	}
	return c
}

// Default returns the standard five-metric testing catalog.
func Default() *Catalog {
	return New(
		Spec{
			Name:           Fly10Time,
			Units:          "s",
			Direction:      LowerIsBetter,
			Center:         1.22,
			SD:             0.06,
			DriftPerDay:    -0.0004,
			ProgressPerDay: -0.0012,
			Min:            1.00,
			Max:            1.70,
			FlyInDistance:  flyInDistanceYards,
		},
		Spec{
			Name:           VerticalJump,
			Units:          "in",
			Direction:      HigherIsBetter,
			Center:         23.5,
			SD:             2.0,
			DriftPerDay:    0.006,
			ProgressPerDay: 0.12,
			Min:            12.0,
			Max:            32.0,
		},
		Spec{
			Name:           Agility505,
			Units:          "s",
			Direction:      LowerIsBetter,
			Center:         2.55,
			SD:             0.07,
			DriftPerDay:    -0.0005,
			ProgressPerDay: -0.0016,
			Min:            2.1,
			Max:            3.5,
		},
		Spec{
			Name:           RSI,
			Units:          "",
			Direction:      HigherIsBetter,
			Center:         2.4,
			SD:             0.25,
			DriftPerDay:    0.001,
			ProgressPerDay: 0.02,
			Min:            1.0,
			Max:            4.5,
		},
		Spec{
			Name:           TTest,
			Units:          "s",
			Direction:      LowerIsBetter,
			Center:         9.8,
			SD:             0.4,
			DriftPerDay:    -0.0008,
			ProgressPerDay: -0.0025,
			Min:            7.5,
			Max:            13.5,
		},
	)
}

// Specs returns the metric specs in registration order. Callers must not
// modify the returned slice.
func (c *Catalog) Specs() []Spec {
	return c.specs
}

// Lookup returns the spec registered under name.
func (c *Catalog) Lookup(name string) (Spec, bool) {
	i, ok := c.index[name]
	if !ok {
		return Spec{}, false
	}
	return c.specs[i], true
}

// Len reports the number of registered metrics.
func (c *Catalog) Len() int {
	return len(c.specs)
}
