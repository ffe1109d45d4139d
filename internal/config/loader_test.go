package config_test

import (
	"context"
	"os"
	"testing"

	"github.com/okian/compass/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()

		convey.Convey("When loading config with defaults only", func() {
			clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9080")
				convey.So(cfg.DemoSchema, convey.ShouldEqual, "demo")
				convey.So(cfg.ProductionSchema, convey.ShouldEqual, "production")
				convey.So(cfg.MockWrites, convey.ShouldBeTrue)
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			_ = os.Setenv("COMPASS_ADDR", ":8080")
			_ = os.Setenv("COMPASS_DEMO_SCHEMA", "sandbox")
			_ = os.Setenv("COMPASS_MOCK_WRITES", "false")
			_ = os.Setenv("COMPASS_AUDIT_BUFFER_SIZE", "250")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.DemoSchema, convey.ShouldEqual, "sandbox")
				convey.So(cfg.MockWrites, convey.ShouldBeFalse)
				convey.So(cfg.AuditBufferSize, convey.ShouldEqual, 250)
			})
		})

		convey.Convey("When loading config with YAML file", func() {
			yamlContent := `
addr: ":9090"
demo_schema: "trial"
demo_write_prefix: "trial_"
audit_buffer_size: 500
token_secret: "file-secret"
`
			tmpFile := createTempConfigFile(yamlContent)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("COMPASS_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load from YAML file", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9090")
				convey.So(cfg.DemoSchema, convey.ShouldEqual, "trial")
				convey.So(cfg.DemoWritePrefix, convey.ShouldEqual, "trial_")
				convey.So(cfg.AuditBufferSize, convey.ShouldEqual, 500)
				convey.So(cfg.TokenSecret, convey.ShouldEqual, "file-secret")
			})
		})

		convey.Convey("When loading config with both file and environment variables", func() {
			yamlContent := `
addr: ":9090"
demo_schema: "trial"
audit_buffer_size: 500
`
			tmpFile := createTempConfigFile(yamlContent)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("COMPASS_CONFIG", tmpFile)
			_ = os.Setenv("COMPASS_ADDR", ":8080") // This should override the file
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then environment variables should override file values", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")      // Overridden by env
				convey.So(cfg.DemoSchema, convey.ShouldEqual, "trial") // From file
				convey.So(cfg.AuditBufferSize, convey.ShouldEqual, 500)
			})
		})

		convey.Convey("When loading config with invalid YAML file", func() {
			invalidYaml := `invalid: yaml: content: [`
			tmpFile := createTempConfigFile(invalidYaml)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("COMPASS_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return an error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When the schema names collide", func() {
			_ = os.Setenv("COMPASS_DEMO_SCHEMA", "public")
			_ = os.Setenv("COMPASS_PRODUCTION_SCHEMA", "public")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should reject the config", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})
	})
}

// clearConfigEnvVars removes all COMPASS_ environment variables set by tests.
func clearConfigEnvVars() {
	for _, key := range []string{
		"COMPASS_CONFIG",
		"COMPASS_ADDR",
		"COMPASS_DEMO_SCHEMA",
		"COMPASS_PRODUCTION_SCHEMA",
		"COMPASS_DEMO_WRITE_PREFIX",
		"COMPASS_MOCK_WRITES",
		"COMPASS_AUDIT_ENABLED",
		"COMPASS_LOG_DEMO_REQUESTS",
		"COMPASS_AUDIT_BUFFER_SIZE",
		"COMPASS_TOKEN_SECRET",
		"COMPASS_DEFAULT_CONFIDENCE",
	} {
		_ = os.Unsetenv(key)
	}
}

// createTempConfigFile writes content to a temp YAML file and returns its path.
func createTempConfigFile(content string) string {
	f, err := os.CreateTemp("", "compass-config-*.yaml")
	if err != nil {
		panic(err)
	}
	if _, err := f.WriteString(content); err != nil {
		panic(err)
	}
	if err := f.Close(); err != nil {
		panic(err)
	}
	return f.Name()
}
