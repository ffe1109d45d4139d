package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMetricsOptions(t *testing.T) {
	Convey("Given metrics options", t, func() {
		Convey("When creating options", func() {
			namespaceOpt := WithNamespace("test-namespace")
			subsystemOpt := WithSubsystem("test-subsystem")
			histogramBucketsOpt := WithHistogramBuckets([]float64{0.1, 0.5, 1.0})
			metricsEnabledOpt := WithMetricsEnabled(true)
			refreshIntervalOpt := WithRefreshInterval(5 * time.Second)

			Convey("Then they should be valid functions", func() {
				So(namespaceOpt, ShouldNotBeNil)
				So(subsystemOpt, ShouldNotBeNil)
				So(histogramBucketsOpt, ShouldNotBeNil)
				So(metricsEnabledOpt, ShouldNotBeNil)
				So(refreshIntervalOpt, ShouldNotBeNil)
			})
		})
	})
}

func TestManagerCreation(t *testing.T) {
	Convey("Given metrics manager creation", t, func() {
		Convey("When creating with default options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(WithPrometheusRegistry(registry))

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
			})
		})

		Convey("When creating with custom options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(
				WithNamespace("test-namespace"),
				WithSubsystem("test-subsystem"),
				WithHistogramBuckets([]float64{0.1, 0.5, 1.0}),
				WithMetricsEnabled(true),
				WithRefreshInterval(10*time.Second),
				WithPrometheusRegistry(registry),
			)

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
			})
		})
	})
}

func TestMetricsRecording(t *testing.T) {
	Convey("Given metrics recording", t, func() {
		Convey("When recording analysis metrics", func() {
			Convey("Then it should record analyses by test type", func() {
				So(func() {
					RecordAnalysis("riasec")
					RecordAnalysis("emotional")
					RecordAnalysis("riasec")
				}, ShouldNotPanic)
			})

			Convey("And it should record analysis latency", func() {
				So(func() {
					RecordAnalysisLatency(1.0)
					RecordAnalysisLatency(2.5)
				}, ShouldNotPanic)
			})

			Convey("And it should record analysis errors and fallbacks", func() {
				So(func() {
					RecordAnalysisError("unsupported_type")
					RecordAnalysisError("missing_dimension")
					RecordFallbackBundle()
				}, ShouldNotPanic)
			})
		})

		Convey("When recording tenant metrics", func() {
			Convey("Then it should record request modes and signals", func() {
				So(func() {
					RecordRequestMode("demo")
					RecordRequestMode("production")
					RecordDemoSignal("header")
					RecordDemoSignal("token")
					RecordDemoSignal("cookie")
					RecordSimulatedWrite()
				}, ShouldNotPanic)
			})
		})

		Convey("When recording audit metrics", func() {
			Convey("Then it should record buffer activity", func() {
				So(func() {
					RecordAuditRecord()
					RecordAuditDropped()
					RecordAuditSinkError()
					UpdateAuditBufferSize(42)
				}, ShouldNotPanic)
			})
		})

		Convey("When recording HTTP metrics", func() {
			Convey("Then it should record requests and durations", func() {
				So(func() {
					RecordHTTPRequest("analyze", "POST", "200")
					RecordHTTPRequestDuration("analyze", "POST", "200", 3.2)
				}, ShouldNotPanic)
			})
		})

		Convey("When recording error metrics", func() {
			Convey("Then it should record error breakdowns", func() {
				So(func() {
					RecordErrorByComponent("insight", "unsupported_type")
					RecordErrorByType("unsupported_type", "medium")
					RecordErrorByEndpoint("analyze", "POST", "server_error")
					RecordErrorLatency("http", "server_error", 4.0)
				}, ShouldNotPanic)
			})
		})

		Convey("When recording system metrics", func() {
			Convey("Then it should update system gauges", func() {
				So(func() {
					UpdateSystemMemoryUsage(1024 * 1024)
					UpdateSystemGoroutineCount(12)
					RecordSystemGCPauseTime(0.4)
				}, ShouldNotPanic)
			})
		})
	})
}

func TestRegistry(t *testing.T) {
	Convey("Given the metrics registry", t, func() {
		Convey("When gathering metrics", func() {
			RecordAnalysis("riasec")
			families, err := GetRegistry().Gather()

			Convey("Then gathering should succeed and include our metrics", func() {
				So(err, ShouldBeNil)
				names := make(map[string]bool, len(families))
				for _, f := range families {
					names[f.GetName()] = true
				}
				So(names["compass_core_analyses_total"], ShouldBeTrue)
			})
		})
	})
}
