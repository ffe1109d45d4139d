// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/okian/compass/internal/adapters/audit"
	"github.com/okian/compass/internal/domain/insight"
	"github.com/okian/compass/internal/domain/tenant"
	"github.com/okian/compass/pkg/logger"
	"github.com/okian/compass/pkg/metrics"
)

// auditShutdownTimeout bounds the final audit flush on Stop.
const auditShutdownTimeout = 5 * time.Second

// Service implements the API dependencies for the insight platform.
type Service struct {
	mu sync.RWMutex

	// Core components
	classifier *tenant.Classifier
	recorder   audit.Recorder

	// Configuration
	demoSchema        string
	productionSchema  string
	writePrefix       string
	tokenSecret       string
	mockWrites        bool
	auditEnabled      bool
	logDemoRequests   bool
	auditBufferSize   int
	defaultConfidence float64

	// Counters
	analyses atomic.Int64
	failures atomic.Int64

	// State
	started   bool
	startedAt time.Time
	cancelRun context.CancelFunc

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithDemoSchema sets the schema name demo requests target.
func WithDemoSchema(schema string) Option {
	return func(s *Service) {
		if schema != "" {
			s.demoSchema = schema
		}
	}
}

// WithProductionSchema sets the schema name production requests target.
func WithProductionSchema(schema string) Option {
	return func(s *Service) {
		if schema != "" {
			s.productionSchema = schema
		}
	}
}

// WithWritePrefix sets the naming prefix applied to demo-mode writes.
func WithWritePrefix(prefix string) Option {
	return func(s *Service) {
		s.writePrefix = prefix
	}
}

// WithTokenSecret sets the HS256 secret for bearer-token verification.
func WithTokenSecret(secret string) Option {
	return func(s *Service) {
		s.tokenSecret = secret
	}
}

// WithMockWrites toggles simulated responses for demo-mode writes.
func WithMockWrites(enabled bool) Option {
	return func(s *Service) {
		s.mockWrites = enabled
	}
}

// WithAuditEnabled toggles audit recording for demo requests.
func WithAuditEnabled(enabled bool) Option {
	return func(s *Service) {
		s.auditEnabled = enabled
	}
}

// WithDemoRequestLogging toggles per-request logging of demo traffic.
func WithDemoRequestLogging(enabled bool) Option {
	return func(s *Service) {
		s.logDemoRequests = enabled
	}
}

// WithAuditBufferSize sets the audit ring buffer capacity.
func WithAuditBufferSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.auditBufferSize = size
		}
	}
}

// WithDefaultConfidence sets the confidence applied when a request carries none.
func WithDefaultConfidence(confidence float64) Option {
	return func(s *Service) {
		if confidence > 0 {
			s.defaultConfidence = confidence
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(logger logger.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		demoSchema:        "demo",
		productionSchema:  "production",
		writePrefix:       "demo_",
		mockWrites:        true,
		auditEnabled:      true,
		logDemoRequests:   true,
		auditBufferSize:   1000,
		defaultConfidence: insight.DefaultConfidence,
		logger:            nil, // Will be replaced when service starts
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start initializes and starts the service components.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "starting insight service...")

	s.classifier = tenant.NewClassifier(
		tenant.WithDemoSchema(s.demoSchema),
		tenant.WithProductionSchema(s.productionSchema),
		tenant.WithWritePrefix(s.writePrefix),
		tenant.WithTokenSecret(s.tokenSecret),
	)

	s.recorder = audit.NewInMemoryRecorder(
		audit.WithCapacity(s.auditBufferSize),
		audit.WithLogger(s.logger.Named("audit")),
	)

	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	s.cancelRun = cancel
	go s.recorder.Run(runCtx)

	s.started = true
	s.startedAt = time.Now()
	s.logger.Info(ctx, "insight service started",
		logger.String("demoSchema", s.demoSchema),
		logger.String("productionSchema", s.productionSchema),
		logger.Bool("mockWrites", s.mockWrites),
		logger.Bool("auditEnabled", s.auditEnabled),
		logger.Int("auditBufferSize", s.auditBufferSize),
	)

	return nil
}

// Stop gracefully shuts down the service.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	ctx := context.Background()
	s.logger.Info(ctx, "stopping insight service...")

	if s.recorder != nil {
		shutdownCtx, cancel := context.WithTimeout(ctx, auditShutdownTimeout)
		if err := s.recorder.Shutdown(shutdownCtx); err != nil {
			s.logger.Warn(ctx, "audit recorder shutdown incomplete", logger.Error(err))
		}
		cancel()
	}
	if s.cancelRun != nil {
		s.cancelRun()
	}

	s.started = false
	s.logger.Info(ctx, "insight service stopped")
}

// Analyze maps a submitted score vector to an insight bundle. A zero
// confidence selects the configured default.
func (s *Service) Analyze(ctx context.Context, testType string, scores insight.ScoreVector, confidence float64) (insight.Bundle, error) {
	if confidence <= 0 {
		confidence = s.defaultConfidence
	}

	bundle, err := insight.Analyze(testType, scores, confidence)
	if err != nil {
		s.failures.Add(1)
		metrics.RecordAnalysisError(analysisErrorReason(err))
		s.logger.Warn(ctx, "analysis failed",
			logger.String("testType", testType),
			logger.Error(err))
		return insight.Bundle{}, err
	}

	s.analyses.Add(1)
	s.logger.Debug(ctx, "analysis completed",
		logger.String("testType", insight.Normalize(testType)),
		logger.Int("dimensions", len(scores)))
	return bundle, nil
}

// analysisErrorReason maps a domain error to a metrics label.
func analysisErrorReason(err error) string {
	switch {
	case errors.Is(err, insight.ErrUnsupportedTestType):
		return "unsupported_test_type"
	case errors.Is(err, insight.ErrMissingDimension):
		return "missing_dimension"
	default:
		return "internal"
	}
}

// Classifier returns the request mode classifier.
func (s *Service) Classifier() *tenant.Classifier {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.classifier
}

// AuditRecorder returns the audit recorder.
func (s *Service) AuditRecorder() audit.Recorder {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.recorder
}

// MockWrites reports whether demo-mode writes are simulated.
func (s *Service) MockWrites() bool {
	return s.mockWrites
}

// AuditEnabled reports whether demo requests are audited.
func (s *Service) AuditEnabled() bool {
	return s.auditEnabled
}

// LogDemoRequests reports whether demo traffic is logged per request.
func (s *Service) LogDemoRequests() bool {
	return s.logDemoRequests
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"started":          s.started,
		"demoSchema":       s.demoSchema,
		"productionSchema": s.productionSchema,
		"mockWrites":       s.mockWrites,
		"auditEnabled":     s.auditEnabled,
		"analyses":         s.analyses.Load(),
		"analysisFailures": s.failures.Load(),
		"supportedTypes":   insight.Types(),
	}

	if s.started {
		stats["uptimeSeconds"] = int64(time.Since(s.startedAt).Seconds())
		stats["auditBuffered"] = s.recorder.Len()
		metrics.UpdateAuditBufferSize(s.recorder.Len())
	}

	return stats
}
