package insight_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/okian/compass/internal/domain/insight"
	. "github.com/smartystreets/goconvey/convey"
)

// vectorFor builds a complete score vector for a test type, assigning
// descending values so every routine sees strengths and weaknesses.
func vectorFor(testType string) insight.ScoreVector {
	dims, ok := insight.Dimensions(testType)
	if !ok {
		panic("unknown test type in test fixture: " + testType)
	}
	values := []float64{90, 75, 55, 35, 20, 15, 10, 5}
	scores := make(insight.ScoreVector, len(dims))
	for i, d := range dims {
		scores[d] = values[i%len(values)]
	}
	return scores
}

func TestAnalyzeDispatch(t *testing.T) {
	Convey("Given the full set of recognized test types", t, func() {
		for _, testType := range insight.Types() {
			Convey("When analyzing "+testType, func() {
				bundle, err := insight.Analyze(testType, vectorFor(testType), 0)

				Convey("Then it should return a fully populated bundle", func() {
					So(err, ShouldBeNil)
					So(bundle.PersonalityInsights, ShouldNotBeEmpty)
					So(bundle.CareerRecommendations, ShouldNotBeEmpty)
					So(bundle.LearningPathways, ShouldNotBeNil)
					So(bundle.StrengthWeaknessAnalysis, ShouldNotBeNil)
					So(bundle.DevelopmentSuggestions, ShouldNotBeNil)
					So(bundle.ConfidenceScore, ShouldEqual, insight.DefaultConfidence)
				})
			})
		}
	})
}

func TestAnalyzeNormalization(t *testing.T) {
	Convey("Given hyphenated and mixed-case test type tags", t, func() {
		Convey("When analyzing with alias spellings", func() {
			canonical, err1 := insight.Analyze("learning_style", vectorFor("learning_style"), 0)
			hyphenated, err2 := insight.Analyze("Learning-Style", vectorFor("learning_style"), 0)

			Convey("Then both spellings should dispatch to the same routine", func() {
				So(err1, ShouldBeNil)
				So(err2, ShouldBeNil)
				So(reflect.DeepEqual(canonical, hyphenated), ShouldBeTrue)
			})
		})
	})
}

func TestAnalyzeDeterminism(t *testing.T) {
	Convey("Given a fixed test type and score vector", t, func() {
		scores := vectorFor(insight.TypeRIASEC)

		Convey("When analyzing repeatedly", func() {
			first, err1 := insight.Analyze(insight.TypeRIASEC, scores, 77)
			second, err2 := insight.Analyze(insight.TypeRIASEC, scores, 77)

			Convey("Then outputs should be identical across calls", func() {
				So(err1, ShouldBeNil)
				So(err2, ShouldBeNil)
				So(reflect.DeepEqual(first, second), ShouldBeTrue)
			})
		})
	})
}

func TestAnalyzeConfidence(t *testing.T) {
	Convey("Given a caller-supplied confidence score", t, func() {
		Convey("When a positive confidence is supplied", func() {
			bundle, err := insight.Analyze(insight.TypeEmotional, vectorFor(insight.TypeEmotional), 92)

			Convey("Then it should be carried through unchanged", func() {
				So(err, ShouldBeNil)
				So(bundle.ConfidenceScore, ShouldEqual, 92)
			})
		})

		Convey("When no confidence is supplied", func() {
			bundle, err := insight.Analyze(insight.TypeEmotional, vectorFor(insight.TypeEmotional), 0)

			Convey("Then the default should apply", func() {
				So(err, ShouldBeNil)
				So(bundle.ConfidenceScore, ShouldEqual, insight.DefaultConfidence)
			})
		})
	})
}

func TestAnalyzeUnsupportedType(t *testing.T) {
	Convey("Given an unrecognized test type", t, func() {
		Convey("When analyzing", func() {
			bundle, err := insight.Analyze("not_a_real_type", insight.ScoreVector{}, 0)

			Convey("Then it should fail with ErrUnsupportedTestType and no partial bundle", func() {
				So(err, ShouldNotBeNil)
				So(errors.Is(err, insight.ErrUnsupportedTestType), ShouldBeTrue)
				So(bundle.PersonalityInsights, ShouldBeEmpty)
				So(bundle.CareerRecommendations, ShouldBeEmpty)
				So(bundle.ConfidenceScore, ShouldEqual, 0)
			})
		})
	})
}

func TestAnalyzeMissingDimension(t *testing.T) {
	Convey("Given a score vector missing a declared dimension", t, func() {
		scores := vectorFor(insight.TypeRIASEC)
		delete(scores, "conventional")

		Convey("When analyzing", func() {
			bundle, err := insight.Analyze(insight.TypeRIASEC, scores, 0)

			Convey("Then it should fail fast with ErrMissingDimension", func() {
				So(err, ShouldNotBeNil)
				So(errors.Is(err, insight.ErrMissingDimension), ShouldBeTrue)
				So(err.Error(), ShouldContainSubstring, "conventional")
				So(bundle.PersonalityInsights, ShouldBeEmpty)
			})
		})
	})
}

func TestFallback(t *testing.T) {
	Convey("Given the generic fallback bundle", t, func() {
		bundle := insight.Fallback()

		Convey("Then it should carry the apology and low confidence", func() {
			So(bundle.PersonalityInsights, ShouldHaveLength, 1)
			So(bundle.CareerRecommendations, ShouldHaveLength, 1)
			So(bundle.ConfidenceScore, ShouldEqual, insight.FallbackConfidence)
			So(bundle.LearningPathways, ShouldBeEmpty)
			So(bundle.StrengthWeaknessAnalysis, ShouldBeEmpty)
			So(bundle.DevelopmentSuggestions, ShouldBeEmpty)
		})
	})
}

func TestDimensions(t *testing.T) {
	Convey("Given the dimension accessor", t, func() {
		Convey("When querying a known type", func() {
			dims, ok := insight.Dimensions("multiple-intelligence")

			Convey("Then it should return the declared set", func() {
				So(ok, ShouldBeTrue)
				So(dims, ShouldHaveLength, 8)
				So(dims[0], ShouldEqual, "linguistic")
			})
		})

		Convey("When querying an unknown type", func() {
			dims, ok := insight.Dimensions("astrology")

			Convey("Then it should report false", func() {
				So(ok, ShouldBeFalse)
				So(dims, ShouldBeNil)
			})
		})
	})
}
