package roster_test

import (
	"strings"
	"testing"

	"github.com/fieldlab/combine/internal/adapters/roster"
	. "github.com/smartystreets/goconvey/convey"
)

const fullRoster = `firstName,lastName,birthDate,birthYear,graduationYear,gender,emails,phoneNumbers,sports,height,weight,school,teamName,competitiveLevel
Ethan,Garcia,2009-04-02,2009,2027,Male,ethan.garcia11@email.com,512-555-1234,Soccer,70,150,Westlake HS,Academy FC 2009B,2
Sofia,Nguyen,2007-11-20,2007,2025,Female,sofia.nguyen42@mail.com,512-555-9876,Soccer,65,130,Bowie HS,Academy FC 2009B,3
`

func TestRead(t *testing.T) {
	Convey("Given a well-formed roster CSV", t, func() {
		athletes, err := roster.Read(strings.NewReader(fullRoster))

		Convey("Then all rows parse with their cells mapped by header", func() {
			So(err, ShouldBeNil)
			So(len(athletes), ShouldEqual, 2)
			So(athletes[0].FirstName, ShouldEqual, "Ethan")
			So(athletes[0].BirthDate, ShouldEqual, "2009-04-02")
			So(athletes[0].CompetitiveLevel, ShouldEqual, "2")
			So(athletes[1].Gender, ShouldEqual, "Female")
			So(athletes[1].School, ShouldEqual, "Bowie HS")
		})
	})

	Convey("Given a roster with missing and reordered columns", t, func() {
		partial := "lastName,firstName,teamName\nReyes,Ava,Select Storm 2008G\n"
		athletes, err := roster.Read(strings.NewReader(partial))

		Convey("Then known columns map and the rest stay blank", func() {
			So(err, ShouldBeNil)
			So(len(athletes), ShouldEqual, 1)
			So(athletes[0].FirstName, ShouldEqual, "Ava")
			So(athletes[0].LastName, ShouldEqual, "Reyes")
			So(athletes[0].TeamName, ShouldEqual, "Select Storm 2008G")
			So(athletes[0].BirthDate, ShouldBeEmpty)
			So(athletes[0].Gender, ShouldBeEmpty)
		})
	})

	Convey("Given ragged rows", t, func() {
		ragged := "firstName,lastName,gender\nMia,Kim\n"
		athletes, err := roster.Read(strings.NewReader(ragged))

		Convey("Then short rows still parse with blanks", func() {
			So(err, ShouldBeNil)
			So(len(athletes), ShouldEqual, 1)
			So(athletes[0].Gender, ShouldBeEmpty)
		})
	})

	Convey("Given a header-only file", t, func() {
		athletes, err := roster.Read(strings.NewReader("firstName,lastName\n"))

		Convey("Then the roster is empty without error", func() {
			So(err, ShouldBeNil)
			So(athletes, ShouldBeEmpty)
		})
	})

	Convey("Given a completely empty file", t, func() {
		_, err := roster.Read(strings.NewReader(""))

		Convey("Then reading fails with the no-header error", func() {
			So(err, ShouldWrap, roster.ErrNoHeader)
		})
	})
}

func TestReadFile(t *testing.T) {
	Convey("Given a missing file", t, func() {
		_, err := roster.ReadFile("/nonexistent/roster.csv")

		Convey("Then reading fails", func() {
			So(err, ShouldNotBeNil)
		})
	})
}
