package config_test

import (
	"testing"

	"github.com/okian/compass/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config with default options", t, func() {
		cfg := config.New()

		convey.Convey("Then it should have sensible defaults", func() {
			convey.So(cfg.Addr, convey.ShouldEqual, ":9080")
			convey.So(cfg.DemoSchema, convey.ShouldEqual, "demo")
			convey.So(cfg.ProductionSchema, convey.ShouldEqual, "production")
			convey.So(cfg.DemoWritePrefix, convey.ShouldEqual, "demo_")
			convey.So(cfg.MockWrites, convey.ShouldBeTrue)
			convey.So(cfg.AuditEnabled, convey.ShouldBeTrue)
			convey.So(cfg.LogDemoRequests, convey.ShouldBeTrue)
			convey.So(cfg.AuditBufferSize, convey.ShouldEqual, 1000)
			convey.So(cfg.DefaultConfidence, convey.ShouldEqual, 85)
		})
	})
}
