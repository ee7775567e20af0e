// Package rostergen synthesizes roster CSV files for the measurement
// generator. Output is deterministic under a fixed seed.
package rostergen

import (
	"encoding/csv"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Competitive level bounds.
const (
	levelElite    = 1
	levelBeginner = 5
	levelDefault  = 3 // intermediate baseline
)

// Roster body parameters.
const (
	nameAttempts     = 100
	graduationAge    = 18
	inchesPerMeter   = 0.0254
	poundsPerKg      = 0.453592
	minWeightPounds  = 110
	maxWeightPounds  = 190
	outDirPermission = 0o755
)

// Age groups selectable for a synthesized roster.
const (
	AgeGroupMiddleSchool = "middle_school"
	AgeGroupHighSchool   = "high_school"
	AgeGroupCollege      = "college"
	AgeGroupPro          = "pro"
)

// ageGroups is the closed set of groups, in selection order.
var ageGroups = []string{AgeGroupMiddleSchool, AgeGroupHighSchool, AgeGroupCollege, AgeGroupPro}

// header is the roster CSV column order.
var header = []string{
	"firstName", "lastName", "birthDate", "birthYear", "graduationYear", "gender",
	"emails", "phoneNumbers", "sports", "height", "weight", "school", "teamName", "competitiveLevel",
}

// ErrInvalidCount rejects non-positive roster sizes.
var ErrInvalidCount = errors.New("roster size must be positive")

// Config controls roster synthesis. Zero values mean "pick for me".
type Config struct {
	Num              int
	Gender           string // Male, Female, or Not Specified; empty picks randomly
	Sport            string // default Soccer
	AgeGroup         string // one of the AgeGroup constants; empty picks randomly
	BirthYearMin     int    // explicit birth years override AgeGroup
	BirthYearMax     int
	TeamName         string // empty auto-generates a level-themed name
	CompetitiveLevel int    // 1..5; zero auto-assigns from the age group
	Seed             int64
	CurrentYear      int // defaults to the wall-clock year
}

// Entry is one synthesized roster row, already formatted for CSV.
type Entry struct {
	FirstName        string
	LastName         string
	BirthDate        string
	BirthYear        int
	GraduationYear   int
	Gender           string
	Email            string
	Phone            string
	Sport            string
	HeightInches     int
	WeightPounds     int
	School           string
	TeamName         string
	CompetitiveLevel int
}

// Roster is a complete synthesized team.
type Roster struct {
	Team             string
	Gender           string
	Sport            string
	AgeGroup         string // empty when explicit birth years were given
	CompetitiveLevel int
	BirthYearMin     int
	BirthYearMax     int
	Entries          []Entry
}

// Generate synthesizes a roster from the config.
func Generate(cfg Config) (Roster, error) {
	if cfg.Num < 1 {
		return Roster{}, ErrInvalidCount
	}
	rng := rand.New(rand.NewSource(cfg.Seed)) //nolint:gosec // deterministic seed is the contract

	gender := cfg.Gender
	if gender == "" {
		gender = pick(rng, []string{"Male", "Female"})
	}
	sport := cfg.Sport
	if sport == "" {
		sport = "Soccer"
	}
	currentYear := cfg.CurrentYear
	if currentYear == 0 {
		currentYear = time.Now().Year()
	}

	ageGroup := cfg.AgeGroup
	var yearMin, yearMax int
	switch {
	case cfg.BirthYearMin != 0 && cfg.BirthYearMax != 0:
		yearMin, yearMax = cfg.BirthYearMin, cfg.BirthYearMax
		ageGroup = ""
	case ageGroup != "":
		yearMin, yearMax = birthYears(ageGroup, currentYear)
	default:
		ageGroup = pick(rng, ageGroups)
		yearMin, yearMax = birthYears(ageGroup, currentYear)
	}
	if yearMin > yearMax {
		yearMin, yearMax = yearMax, yearMin
	}

	level := cfg.CompetitiveLevel
	switch {
	case level >= levelElite && level <= levelBeginner:
		// explicit level wins
	case ageGroup != "":
		level = autoLevel(rng, ageGroup)
	default:
		level = levelDefault
	}

	team := cfg.TeamName
	if team == "" {
		team = teamName(rng, gender, level, yearMin, yearMax)
	}

	roster := Roster{
		Team:             team,
		Gender:           gender,
		Sport:            sport,
		AgeGroup:         ageGroup,
		CompetitiveLevel: level,
		BirthYearMin:     yearMin,
		BirthYearMax:     yearMax,
		Entries:          make([]Entry, 0, cfg.Num),
	}

	used := make(map[[2]string]struct{}, cfg.Num)
	for i := 0; i < cfg.Num; i++ {
		first, last := pickName(rng, gender, used)

		birthYear := yearMin + rng.Intn(yearMax-yearMin+1)
		birthDate := dateInYear(rng, birthYear)
		height := heightInches(rng, gender)

		roster.Entries = append(roster.Entries, Entry{
			FirstName:        first,
			LastName:         last,
			BirthDate:        birthDate.Format("2006-01-02"),
			BirthYear:        birthYear,
			GraduationYear:   birthYear + graduationAge,
			Gender:           gender,
			Email:            email(rng, first, last),
			Phone:            phone(rng),
			Sport:            sport,
			HeightInches:     height,
			WeightPounds:     weightPounds(rng, height, gender),
			School:           pick(rng, schools),
			TeamName:         team,
			CompetitiveLevel: level,
		})
	}
	return roster, nil
}

// WriteCSV writes the roster to path, creating parent directories as needed.
func (r Roster) WriteCSV(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, outDirPermission); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create roster file: %w", err)
	}
	defer f.Close() //nolint:errcheck // flush errors surface via Write/Error

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, e := range r.Entries {
		record := []string{
			e.FirstName, e.LastName, e.BirthDate,
			strconv.Itoa(e.BirthYear), strconv.Itoa(e.GraduationYear), e.Gender,
			e.Email, e.Phone, e.Sport,
			strconv.Itoa(e.HeightInches), strconv.Itoa(e.WeightPounds),
			e.School, e.TeamName, strconv.Itoa(e.CompetitiveLevel),
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("write record: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush roster: %w", err)
	}
	return nil
}

// birthYears maps an age group to an inclusive birth year range.
func birthYears(ageGroup string, currentYear int) (int, int) {
	var minAge, maxAge int
	switch ageGroup {
	case AgeGroupMiddleSchool:
		minAge, maxAge = 11, 14
	case AgeGroupHighSchool:
		minAge, maxAge = 14, 18
	case AgeGroupCollege:
		minAge, maxAge = 18, 22
	case AgeGroupPro:
		minAge, maxAge = 22, 35
	default:
		minAge, maxAge = 18, 22
	}
	return currentYear - maxAge, currentYear - minAge
}

// autoLevel draws a competitive level from the age group's distribution:
// pros are all elite, college skews advanced, middle school skews
// developmental.
func autoLevel(rng *rand.Rand, ageGroup string) int {
	var weights []float64
	switch ageGroup {
	case AgeGroupPro:
		return levelElite
	case AgeGroupCollege:
		weights = []float64{0.30, 0.30, 0.30, 0.07, 0.03}
	case AgeGroupHighSchool:
		weights = []float64{0.20, 0.20, 0.20, 0.25, 0.15}
	default:
		weights = []float64{0.05, 0.05, 0.30, 0.35, 0.25}
	}
	return levelElite + weightedIndex(rng, weights)
}

// weightedIndex draws an index proportionally to weights.
func weightedIndex(rng *rand.Rand, weights []float64) int {
	var total float64
	for _, w := range weights {
		total += w
	}
	target := rng.Float64() * total
	for i, w := range weights {
		target -= w
		if target < 0 {
			return i
		}
	}
	return len(weights) - 1
}

// teamName builds a level-themed team name like "Elite Storm 2008B".
func teamName(rng *rand.Rand, gender string, level, yearMin, yearMax int) string {
	cohort := yearMin + rng.Intn(yearMax-yearMin+1)
	suffix := "X"
	switch gender {
	case "Male":
		suffix = "B"
	case "Female":
		suffix = "G"
	}
	return fmt.Sprintf("%s %s %d%s", pick(rng, teamPrefixes[level]), pick(rng, teamSuffixes[level]), cohort, suffix)
}

// pickName draws a first/last pair, retrying a bounded number of times for
// variety within the roster.
func pickName(rng *rand.Rand, gender string, used map[[2]string]struct{}) (string, string) {
	var first, last string
	for i := 0; i < nameAttempts; i++ {
		switch gender {
		case "Male":
			first = pick(rng, firstNamesMale)
		case "Female":
			first = pick(rng, firstNamesFemale)
		default:
			all := make([]string, 0, len(firstNamesMale)+len(firstNamesFemale))
			all = append(all, firstNamesMale...)
			all = append(all, firstNamesFemale...)
			first = pick(rng, all)
		}
		last = pick(rng, lastNames)
		key := [2]string{first, last}
		if _, dup := used[key]; !dup {
			used[key] = struct{}{}
			break
		}
	}
	return first, last
}

// dateInYear draws a uniform date within the year.
func dateInYear(rng *rand.Rand, year int) time.Time {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
	span := int(end.Sub(start).Hours() / 24)
	return start.AddDate(0, 0, rng.Intn(span+1))
}

// heightInches draws a plausible height for the gender.
func heightInches(rng *rand.Rand, gender string) int {
	var lo, hi int
	switch gender {
	case "Female":
		lo, hi = 60, 70
	case "Male":
		lo, hi = 64, 74
	default:
		lo, hi = 62, 72
	}
	return lo + rng.Intn(hi-lo+1)
}

// weightPounds draws a BMI-based weight converted to pounds and clamped to
// a plausible teen range.
func weightPounds(rng *rand.Rand, height int, gender string) int {
	meanBMI := 21.0
	if gender == "Male" {
		meanBMI = 22.0
	}
	bmi := rng.NormFloat64()*2 + meanBMI
	meters := float64(height) * inchesPerMeter
	pounds := bmi * meters * meters / poundsPerKg
	if pounds < minWeightPounds {
		pounds = minWeightPounds
	}
	if pounds > maxWeightPounds {
		pounds = maxWeightPounds
	}
	return int(pounds + 0.5)
}

// phone synthesizes a local phone number.
func phone(rng *rand.Rand) string {
	return fmt.Sprintf("512-555-%04d", 1000+rng.Intn(9000))
}

// email synthesizes a tagged address from the athlete's name.
func email(rng *rand.Rand, first, last string) string {
	tag := 10 + rng.Intn(90)
	return fmt.Sprintf("%s.%s%d@%s", strings.ToLower(first), strings.ToLower(last), tag, pick(rng, emailDomains))
}

// pick draws one element uniformly.
func pick[T any](rng *rand.Rand, items []T) T {
	return items[rng.Intn(len(items))]
}
