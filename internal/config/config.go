// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults; Load layers file and env on top.
// - External errors must be wrapped via this package's error helpers.
package config

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// DemoSchema names the isolated data partition demo requests target.
	DemoSchema string `koanf:"demo_schema"`

	// ProductionSchema names the partition everything else targets.
	ProductionSchema string `koanf:"production_schema"`

	// DemoWritePrefix is prepended to names created under demo mode.
	DemoWritePrefix string `koanf:"demo_write_prefix"`

	// MockWrites wraps non-GET demo responses in the simulated-write envelope.
	MockWrites bool `koanf:"mock_writes"`

	// AuditEnabled records demo activity into the bounded audit buffer.
	AuditEnabled bool `koanf:"audit_enabled"`

	// LogDemoRequests emits a structured log line per demo request.
	LogDemoRequests bool `koanf:"log_demo_requests"`

	// AuditBufferSize caps the in-memory audit buffer; oldest records drop first.
	AuditBufferSize int `koanf:"audit_buffer_size"`

	// TokenSecret verifies HS256 bearer tokens carrying the demo_mode claim.
	// Empty disables the token signal; header and cookie checks still apply.
	TokenSecret string `koanf:"token_secret"`

	// DefaultConfidence is used when an analysis request carries no confidence score.
	DefaultConfidence float64 `koanf:"default_confidence"`
}

// New creates a Config populated with defaults.
func New() *Config {
	c := &Config{
		LogLevel:          "info",
		Addr:              ":9080",
		DemoSchema:        "demo",
		ProductionSchema:  "production",
		DemoWritePrefix:   "demo_",
		MockWrites:        true,
		AuditEnabled:      true,
		LogDemoRequests:   true,
		AuditBufferSize:   1000,
		TokenSecret:       "",
		DefaultConfidence: 85,
	}
	return c
}
