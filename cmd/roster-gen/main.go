// Command roster-gen synthesizes a roster CSV for use with the
// measurements generator.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fieldlab/combine/internal/rostergen"
)

// defaultSeed matches the measurements generator default.
const defaultSeed = 42

func main() {
	if err := run(); err != nil {
		os.Stderr.WriteString("roster-gen: " + err.Error() + "\n")
		os.Exit(1)
	}
}

func run() error {
	var (
		out          = flag.String("out", "", "Output CSV path (required)")
		num          = flag.Int("num", 0, "Number of players (required)")
		gender       = flag.String("gender", "", "Gender for all players: Male, Female, Not Specified (default: random)")
		sport        = flag.String("sport", "", "Sport name (default: Soccer)")
		ageGroup     = flag.String("age-group", "", "Age group: middle_school, high_school, college, pro (default: random)")
		birthYearMin = flag.Int("birth-year-min", 0, "Min birth year, inclusive (overrides -age-group with -birth-year-max)")
		birthYearMax = flag.Int("birth-year-max", 0, "Max birth year, inclusive")
		teamName     = flag.String("team-name", "", "Team name (default: auto-generated)")
		level        = flag.Int("competitive-level", 0, "Competitive level 1 (elite) to 5 (beginner); default auto-assigned from age group")
		seed         = flag.Int64("seed", defaultSeed, "Random seed")
	)
	flag.Parse()

	if *out == "" || *num < 1 {
		flag.Usage()
		return fmt.Errorf("-out and a positive -num are required")
	}

	roster, err := rostergen.Generate(rostergen.Config{
		Num:              *num,
		Gender:           *gender,
		Sport:            *sport,
		AgeGroup:         *ageGroup,
		BirthYearMin:     *birthYearMin,
		BirthYearMax:     *birthYearMax,
		TeamName:         *teamName,
		CompetitiveLevel: *level,
		Seed:             *seed,
	})
	if err != nil {
		return err
	}
	if err := roster.WriteCSV(*out); err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Wrote roster: %s\n", *out)
	fmt.Fprintf(os.Stdout, "Team: %s | Players: %d | Gender: %s | Sport: %s\n",
		roster.Team, len(roster.Entries), roster.Gender, roster.Sport)
	fmt.Fprintf(os.Stdout, "Competitive level: %d | Birth years: %d-%d\n",
		roster.CompetitiveLevel, roster.BirthYearMin, roster.BirthYearMax)
	return nil
}
