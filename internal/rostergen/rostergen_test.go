package rostergen_test

import (
	"testing"

	"github.com/fieldlab/combine/internal/rostergen"
	. "github.com/smartystreets/goconvey/convey"
)

func TestGenerate(t *testing.T) {
	Convey("Given a high school girls config", t, func() {
		cfg := rostergen.Config{
			Num:         16,
			Gender:      "Female",
			AgeGroup:    rostergen.AgeGroupHighSchool,
			Seed:        42,
			CurrentYear: 2025,
		}

		Convey("When generating", func() {
			roster, err := rostergen.Generate(cfg)

			Convey("Then the roster is complete and internally consistent", func() {
				So(err, ShouldBeNil)
				So(len(roster.Entries), ShouldEqual, 16)
				So(roster.Team, ShouldNotBeEmpty)
				So(roster.CompetitiveLevel, ShouldBeBetweenOrEqual, 1, 5)

				for _, e := range roster.Entries {
					So(e.Gender, ShouldEqual, "Female")
					So(e.TeamName, ShouldEqual, roster.Team)
					So(e.BirthYear, ShouldBeBetweenOrEqual, roster.BirthYearMin, roster.BirthYearMax)
					So(e.GraduationYear, ShouldEqual, e.BirthYear+18)
					So(e.BirthDate, ShouldNotBeEmpty)
					So(e.HeightInches, ShouldBeBetweenOrEqual, 60, 70)
					So(e.WeightPounds, ShouldBeBetweenOrEqual, 110, 190)
					So(e.Email, ShouldContainSubstring, "@")
					So(e.Phone, ShouldStartWith, "512-555-")
					So(e.Sport, ShouldEqual, "Soccer")
					So(e.CompetitiveLevel, ShouldEqual, roster.CompetitiveLevel)
				}
			})

			Convey("Then the same seed reproduces the roster exactly", func() {
				again, err := rostergen.Generate(cfg)
				So(err, ShouldBeNil)
				So(again, ShouldResemble, roster)
			})
		})
	})

	Convey("Given explicit birth years", t, func() {
		roster, err := rostergen.Generate(rostergen.Config{
			Num:          5,
			Gender:       "Male",
			BirthYearMin: 2008,
			BirthYearMax: 2010,
			Seed:         7,
		})

		Convey("Then birth years override the age group", func() {
			So(err, ShouldBeNil)
			So(roster.AgeGroup, ShouldBeEmpty)
			So(roster.BirthYearMin, ShouldEqual, 2008)
			So(roster.BirthYearMax, ShouldEqual, 2010)
			for _, e := range roster.Entries {
				So(e.BirthYear, ShouldBeBetweenOrEqual, 2008, 2010)
			}
		})
	})

	Convey("Given a pro config without an explicit level", t, func() {
		roster, err := rostergen.Generate(rostergen.Config{
			Num:      3,
			AgeGroup: rostergen.AgeGroupPro,
			Seed:     3,
		})

		Convey("Then the team is elite", func() {
			So(err, ShouldBeNil)
			So(roster.CompetitiveLevel, ShouldEqual, 1)
		})
	})

	Convey("Given an explicit team name and level", t, func() {
		roster, err := rostergen.Generate(rostergen.Config{
			Num:              4,
			AgeGroup:         rostergen.AgeGroupCollege,
			TeamName:         "Longhorns",
			CompetitiveLevel: 2,
			Seed:             11,
		})

		Convey("Then both pass through untouched", func() {
			So(err, ShouldBeNil)
			So(roster.Team, ShouldEqual, "Longhorns")
			So(roster.CompetitiveLevel, ShouldEqual, 2)
		})
	})

	Convey("Given a non-positive roster size", t, func() {
		_, err := rostergen.Generate(rostergen.Config{Num: 0, Seed: 1})

		Convey("Then generation fails", func() {
			So(err, ShouldWrap, rostergen.ErrInvalidCount)
		})
	})
}

func TestWriteCSV(t *testing.T) {
	Convey("Given a generated roster", t, func() {
		roster, err := rostergen.Generate(rostergen.Config{
			Num:      6,
			Gender:   "Male",
			AgeGroup: rostergen.AgeGroupMiddleSchool,
			Seed:     42,
		})
		So(err, ShouldBeNil)

		Convey("When writing to a nested path", func() {
			path := t.TempDir() + "/rosters/team.csv"
			So(roster.WriteCSV(path), ShouldBeNil)
		})
	})
}
