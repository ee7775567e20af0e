// Package adjust converts athlete demographics into a multiplicative factor
// against a metric's population baseline.
//
// Age and competitive-level tables store capability multipliers relative to
// the college-aged intermediate baseline: values above 1.0 mean a stronger
// demographic. For output metrics (jump height) the factor multiplies the
// baseline directly; for time metrics the age and level capabilities divide
// it, so a weaker demographic raises the expected time. Gender multipliers
// encode the expected value shift directly and apply the same way in both
// directions. Every lookup is total: unknown keys fall back to 1.0 and no
// input can produce an error or a non-positive factor.
package adjust

import (
	"strconv"
	"strings"

	"github.com/fieldlab/combine/internal/domain/catalog"
)

// neutralFactor is the multiplier applied when demographics are unknown.
const neutralFactor = 1.0

// Age bracket boundaries in whole years. Ages outside the valid range map
// to the adult baseline.
const (
	middleSchoolMaxAge = 14
	youngHSMaxAge      = 16
	olderHSMaxAge      = 18
	minValidAge        = 0
	maxValidAge        = 100
)

// Bracket is one of four ordered age categories.
type Bracket int

const (
	MiddleSchool Bracket = iota
	YoungHS
	OlderHS
	CollegePlus
)

func (b Bracket) String() string {
	switch b {
	case MiddleSchool:
		return "middle_school"
	case YoungHS:
		return "young_hs"
	case OlderHS:
		return "older_hs"
	case CollegePlus:
		return "college_plus"
	default:
		return "college_plus"
	}
}

// BracketFor maps an age in years to its bracket. Out-of-range ages map to
// CollegePlus, the safe adult default.
func BracketFor(age float64) Bracket {
	years := int(age)
	if years < minValidAge || years > maxValidAge {
		return CollegePlus
	}
	switch {
	case years < middleSchoolMaxAge:
		return MiddleSchool
	case years < youngHSMaxAge:
		return YoungHS
	case years < olderHSMaxAge:
		return OlderHS
	default:
		return CollegePlus
	}
}

// BracketForRaw maps a raw age cell ("18", "16.5", blank, garbage) to a
// bracket. Any value that does not parse as a number maps to CollegePlus.
func BracketForRaw(raw string) Bracket {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return CollegePlus
	}
	age, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return CollegePlus
	}
	return BracketFor(age)
}

// Age is an optionally-known age in whole years. Records with a blank or
// malformed birth date carry an unknown age and are treated as
// demographically neutral.
type Age struct {
	years int
	known bool
}

// Years builds a known age.
func Years(n int) Age { return Age{years: n, known: true} }

// Unknown builds an unknown age.
func Unknown() Age { return Age{} }

// Known reports whether the age was derivable from the roster.
func (a Age) Known() bool { return a.known }

// Bracket returns the age bracket, defaulting to CollegePlus when unknown.
func (a Age) Bracket() Bracket {
	if !a.known {
		return CollegePlus
	}
	return BracketFor(float64(a.years))
}

// Level is a competitive level: 1 (elite) through 5 (beginner).
type Level int

const (
	LevelElite        Level = 1
	LevelAdvanced     Level = 2
	LevelIntermediate Level = 3
	LevelRecreational Level = 4
	LevelBeginner     Level = 5
)

// DefaultLevel is assumed when the roster carries no usable level.
const DefaultLevel = LevelIntermediate

// ParseLevel maps a raw competitive-level cell to a Level. Blank,
// non-numeric, or out-of-range values map to DefaultLevel.
func ParseLevel(raw string) Level {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultLevel
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return DefaultLevel
	}
	if n < int(LevelElite) || n > int(LevelBeginner) {
		return DefaultLevel
	}
	return Level(n)
}

// ageCapability holds per-bracket, per-metric capability multipliers tuned
// against normative ranges. CollegePlus is the 1.00 baseline.
var ageCapability = map[Bracket]map[string]float64{
	MiddleSchool: {
		catalog.Fly10Time:    0.87,
		catalog.VerticalJump: 0.65,
		catalog.Agility505:   0.89,
		catalog.RSI:          0.60,
		catalog.TTest:        0.88,
	},
	YoungHS: {
		catalog.Fly10Time:    0.91,
		catalog.VerticalJump: 0.75,
		catalog.Agility505:   0.93,
		catalog.RSI:          0.72,
		catalog.TTest:        0.93,
	},
	OlderHS: {
		catalog.Fly10Time:    0.94,
		catalog.VerticalJump: 0.85,
		catalog.Agility505:   0.96,
		catalog.RSI:          0.82,
		catalog.TTest:        0.95,
	},
	CollegePlus: {
		catalog.Fly10Time:    1.00,
		catalog.VerticalJump: 1.00,
		catalog.Agility505:   1.00,
		catalog.RSI:          1.00,
		catalog.TTest:        1.00,
	},
}

// femaleMultiplier holds per-metric expected value shifts for female
// athletes relative to the male baseline.
var femaleMultiplier = map[string]float64{
	catalog.Fly10Time:    1.08, // ~8% slower
	catalog.VerticalJump: 0.75, // ~25% lower jump
	catalog.Agility505:   1.05, // ~5% slower
	catalog.RSI:          0.85, // ~15% lower RSI
	catalog.TTest:        1.08, // ~8% slower
}

// Model computes adjustment factors from the static demographic tables.
type Model struct{}

// New returns an adjustment model over the built-in tables.
func New() *Model { return &Model{} }

// ageMultiplier looks up the bracket capability for metric, defaulting to
// neutral when the metric has no tuned row.
func ageMultiplier(b Bracket, metric string) float64 {
	row, ok := ageCapability[b]
	if !ok {
		return neutralFactor
	}
	mult, ok := row[metric]
	if !ok {
		return neutralFactor
	}
	return mult
}

// genderMultiplier resolves the gender shift for metric. Only "Male" and
// "Female" are recognized; anything else is neutral.
func genderMultiplier(gender, metric string) float64 {
	switch strings.TrimSpace(gender) {
	case "Male":
		return neutralFactor
	case "Female":
		mult, ok := femaleMultiplier[metric]
		if !ok {
			return neutralFactor
		}
		return mult
	default:
		return neutralFactor
	}
}

// levelCapability resolves the competitive-level capability multiplier.
func levelCapability(l Level) float64 {
	switch l {
	case LevelElite:
		return 1.08
	case LevelAdvanced:
		return 1.04
	case LevelIntermediate:
		return 1.00
	case LevelRecreational:
		return 0.95
	case LevelBeginner:
		return 0.88
	default:
		return neutralFactor
	}
}

// Factor returns the multiplier applied to spec's baseline center for the
// given demographics. An unknown age makes the whole record neutral. The
// result is always strictly positive.
func (m *Model) Factor(age Age, gender string, level Level, spec catalog.Spec) float64 {
	if !age.Known() {
		return neutralFactor
	}

	ageMult := ageMultiplier(age.Bracket(), spec.Name)
	genderMult := genderMultiplier(gender, spec.Name)
	levelMult := levelCapability(level)

	var factor float64
	switch spec.Direction {
	case catalog.HigherIsBetter:
		factor = ageMult * genderMult * levelMult
	case catalog.LowerIsBetter:
		// Stronger demographics shrink a time metric, so capabilities divide.
		factor = genderMult
		if ageMult > 0 {
			factor /= ageMult
		}
		if levelMult > 0 {
			factor /= levelMult
		}
	default:
		factor = neutralFactor
	}

	if factor <= 0 {
		return neutralFactor
	}
	return factor
}

// AdjustedCenter applies the demographic factor to spec's baseline center.
func (m *Model) AdjustedCenter(age Age, gender string, level Level, spec catalog.Spec) float64 {
	return spec.Center * m.Factor(age, gender, level, spec)
}
