package baseline_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/fieldlab/combine/internal/domain/baseline"
	"github.com/fieldlab/combine/internal/domain/catalog"
	"github.com/fieldlab/combine/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func testRoster() []model.Athlete {
	return []model.Athlete{
		{FirstName: "Ava", LastName: "Reyes", TeamName: "Academy Stars 2009G"},
		{FirstName: "Mia", LastName: "Kim", TeamName: "Academy Stars 2009G"},
		{FirstName: "Nora", LastName: "Diaz", TeamName: "Academy Stars 2009G"},
	}
}

func TestAssign(t *testing.T) {
	Convey("Given a roster and the default catalog", t, func() {
		cat := catalog.Default()
		roster := testRoster()

		Convey("When assigning baselines", func() {
			offsets := baseline.Assign(rand.New(rand.NewSource(7)), roster, cat)

			Convey("Then every athlete gets a bias for every metric", func() {
				So(len(offsets), ShouldEqual, len(roster))
				for _, a := range roster {
					per := offsets[a.Key()]
					So(len(per), ShouldEqual, cat.Len())
				}
			})

			Convey("Then biases stay within a plausible multiple of the spread", func() {
				for _, a := range roster {
					for _, spec := range cat.Specs() {
						So(math.Abs(offsets.Get(a.Key(), spec.Name)), ShouldBeLessThan, spec.SD*5)
					}
				}
			})
		})

		Convey("When assigning twice with the same seed", func() {
			first := baseline.Assign(rand.New(rand.NewSource(42)), roster, cat)
			second := baseline.Assign(rand.New(rand.NewSource(42)), roster, cat)

			Convey("Then the offsets are identical", func() {
				So(second, ShouldResemble, first)
			})
		})

		Convey("When assigning with different seeds", func() {
			first := baseline.Assign(rand.New(rand.NewSource(1)), roster, cat)
			second := baseline.Assign(rand.New(rand.NewSource(2)), roster, cat)

			Convey("Then the offsets differ", func() {
				So(second, ShouldNotResemble, first)
			})
		})

		Convey("When the roster order changes", func() {
			reversed := []model.Athlete{roster[2], roster[1], roster[0]}
			first := baseline.Assign(rand.New(rand.NewSource(9)), roster, cat)
			second := baseline.Assign(rand.New(rand.NewSource(9)), reversed, cat)

			Convey("Then draws follow roster order, so athletes get different biases", func() {
				So(second[roster[0].Key()], ShouldNotResemble, first[roster[0].Key()])
			})
		})
	})
}

func TestOffsetsGet(t *testing.T) {
	Convey("Given empty offsets", t, func() {
		offsets := baseline.Offsets{}

		Convey("Then unknown athletes and metrics read as zero bias", func() {
			So(offsets.Get(model.Key{First: "X"}, catalog.RSI), ShouldEqual, 0)
		})
	})
}
