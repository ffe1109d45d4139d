package api

import (
	"github.com/okian/compass/internal/adapters/audit"
	"github.com/okian/compass/internal/domain/tenant"
	"github.com/okian/compass/pkg/logger"
)

// ServerOption applies a configuration option to the Server.
type ServerOption func(*Server)

// WithClassifier sets the request mode classifier.
func WithClassifier(classifier *tenant.Classifier) ServerOption {
	return func(s *Server) {
		if classifier != nil {
			s.classifier = classifier
		}
	}
}

// WithAuditRecorder sets the audit recorder used for demo requests.
func WithAuditRecorder(recorder audit.Recorder) ServerOption {
	return func(s *Server) {
		s.recorder = recorder
	}
}

// WithMockWrites toggles simulated responses for demo-mode writes.
func WithMockWrites(enabled bool) ServerOption {
	return func(s *Server) {
		s.mockWrites = enabled
	}
}

// WithAuditEnabled toggles audit recording for demo requests.
func WithAuditEnabled(enabled bool) ServerOption {
	return func(s *Server) {
		s.auditEnabled = enabled
	}
}

// WithDemoRequestLogging toggles per-request logging of demo traffic.
func WithDemoRequestLogging(enabled bool) ServerOption {
	return func(s *Server) {
		s.logDemoRequests = enabled
	}
}

// WithLogger sets the server's logger.
func WithLogger(log logger.Logger) ServerOption {
	return func(s *Server) {
		if log != nil {
			s.logger = log
		}
	}
}
