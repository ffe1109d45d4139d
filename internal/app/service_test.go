package service_test

import (
	"context"
	"errors"
	"testing"

	service "github.com/okian/compass/internal/app"
	"github.com/okian/compass/internal/domain/insight"
	"github.com/okian/compass/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	// Initialize logging for tests
	if err := logger.Init(); err != nil {
		panic(err)
	}
}

func riasecScores() insight.ScoreVector {
	return insight.ScoreVector{
		"realistic":     80,
		"investigative": 75,
		"artistic":      30,
		"social":        45,
		"enterprising":  55,
		"conventional":  25,
	}
}

func TestServiceLifecycle(t *testing.T) {
	ctx := context.Background()

	Convey("Given a new service", t, func() {
		svc := service.New(
			service.WithDemoSchema("sandbox"),
			service.WithAuditBufferSize(16),
		)

		Convey("When starting it", func() {
			So(svc.Start(ctx), ShouldBeNil)
			defer svc.Stop()

			Convey("Then its components should be wired", func() {
				So(svc.Classifier(), ShouldNotBeNil)
				So(svc.AuditRecorder(), ShouldNotBeNil)
			})

			Convey("And starting again should be a no-op", func() {
				So(svc.Start(ctx), ShouldBeNil)
			})

			Convey("And stats should reflect the running state", func() {
				stats := svc.GetStats()
				So(stats["started"], ShouldBeTrue)
				So(stats["demoSchema"], ShouldEqual, "sandbox")
				So(stats["supportedTypes"], ShouldResemble, insight.Types())
				So(stats, ShouldContainKey, "uptimeSeconds")
			})
		})

		Convey("When stopping without starting", func() {
			Convey("Then it should be a no-op", func() {
				So(svc.Stop, ShouldNotPanic)
			})
		})
	})
}

func TestServiceAnalyze(t *testing.T) {
	ctx := context.Background()

	Convey("Given a started service", t, func() {
		svc := service.New()
		So(svc.Start(ctx), ShouldBeNil)
		defer svc.Stop()

		Convey("When analyzing a valid vector without confidence", func() {
			bundle, err := svc.Analyze(ctx, "riasec", riasecScores(), 0)

			Convey("Then the default confidence should be applied", func() {
				So(err, ShouldBeNil)
				So(bundle.ConfidenceScore, ShouldEqual, insight.DefaultConfidence)
				So(bundle.PersonalityInsights, ShouldNotBeEmpty)
			})
		})

		Convey("When analyzing with an explicit confidence", func() {
			bundle, err := svc.Analyze(ctx, "riasec", riasecScores(), 70)

			Convey("Then it should carry through", func() {
				So(err, ShouldBeNil)
				So(bundle.ConfidenceScore, ShouldEqual, 70)
			})
		})

		Convey("When analyzing an unsupported type", func() {
			_, err := svc.Analyze(ctx, "not_a_real_type", insight.ScoreVector{"a": 1}, 0)

			Convey("Then the domain error should propagate", func() {
				So(errors.Is(err, insight.ErrUnsupportedTestType), ShouldBeTrue)
			})
		})

		Convey("When analyzing an incomplete vector", func() {
			scores := riasecScores()
			delete(scores, "conventional")
			_, err := svc.Analyze(ctx, "riasec", scores, 0)

			Convey("Then the missing dimension should be reported", func() {
				So(errors.Is(err, insight.ErrMissingDimension), ShouldBeTrue)
				So(err.Error(), ShouldContainSubstring, "conventional")
			})
		})

		Convey("When stats are read after a mix of outcomes", func() {
			_, _ = svc.Analyze(ctx, "riasec", riasecScores(), 0)
			_, _ = svc.Analyze(ctx, "bogus", insight.ScoreVector{"a": 1}, 0)
			stats := svc.GetStats()

			Convey("Then the counters should reflect them", func() {
				So(stats["analyses"], ShouldBeGreaterThanOrEqualTo, 1)
				So(stats["analysisFailures"], ShouldBeGreaterThanOrEqualTo, 1)
			})
		})
	})
}

func TestServiceConfiguredDefaultConfidence(t *testing.T) {
	ctx := context.Background()

	Convey("Given a service with a custom default confidence", t, func() {
		svc := service.New(service.WithDefaultConfidence(60))
		So(svc.Start(ctx), ShouldBeNil)
		defer svc.Stop()

		Convey("When analyzing without confidence", func() {
			bundle, err := svc.Analyze(ctx, "emotional", insight.ScoreVector{
				"selfAwareness":  50,
				"selfRegulation": 50,
				"motivation":     50,
				"empathy":        50,
				"socialSkills":   50,
			}, 0)

			Convey("Then the configured default should be applied", func() {
				So(err, ShouldBeNil)
				So(bundle.ConfidenceScore, ShouldEqual, 60)
			})
		})
	})
}
