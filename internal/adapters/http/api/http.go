// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/okian/compass/internal/adapters/audit"
	"github.com/okian/compass/internal/domain/insight"
	"github.com/okian/compass/internal/domain/tenant"
	"github.com/okian/compass/pkg/logger"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// Analyze maps a submitted score vector to an insight bundle.
	Analyze(ctx context.Context, testType string, scores insight.ScoreVector, confidence float64) (insight.Bundle, error)
}

// Server wires HTTP routes for the business API.
type Server struct {
	analyzeHandler *AnalyzeHandler
	healthHandler  *HealthHandler
	statsHandler   *StatsHandler

	classifier      *tenant.Classifier
	recorder        audit.Recorder
	mockWrites      bool
	auditEnabled    bool
	logDemoRequests bool
	logger          logger.Logger
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider, opts ...ServerOption) *Server {
	s := &Server{
		analyzeHandler: NewAnalyzeHandler(deps),
		healthHandler:  NewHealthHandler(),
		statsHandler:   NewStatsHandler(statsProvider),
		classifier:     tenant.NewClassifier(),
		mockWrites:     true,
		auditEnabled:   true,
		logger:         logger.Get().Named("api"),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Register attaches all HTTP routes to mux. Every route passes through the
// mode middleware so downstream handlers always see a classified context.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", s.ModeMiddleware(MetricsMiddleware(s.healthHandler.HandleHealth, "healthz")))
	mux.HandleFunc("/stats", s.ModeMiddleware(MetricsMiddleware(s.statsHandler.HandleStats, "stats")))
	mux.HandleFunc("/analyze", s.ModeMiddleware(MetricsMiddleware(s.analyzeHandler.HandleAnalyze, "analyze")))
}

// analyzeRequest mirrors the OpenAPI schema for POST /analyze.
type analyzeRequest struct {
	TestType        string              `json:"testType"`
	Results         insight.ScoreVector `json:"results"`
	ConfidenceScore float64             `json:"confidenceScore"`
}

func (a analyzeRequest) validate() error {
	switch {
	case a.TestType == "":
		return NewKind("api.analyze", ErrMissingTestType)
	case len(a.Results) == 0:
		return NewKind("api.analyze", ErrMissingResults)
	}
	return nil
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// fallbackResponse is the degraded analysis envelope returned with a 500
// status when a score vector cannot be analyzed.
type fallbackResponse struct {
	PersonalityInsights   []string `json:"personalityInsights"`
	CareerRecommendations []string `json:"careerRecommendations"`
	ConfidenceScore       float64  `json:"confidenceScore"`
	Error                 string   `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
