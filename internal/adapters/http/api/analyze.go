package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/okian/compass/internal/domain/insight"
	"github.com/okian/compass/pkg/metrics"
)

// AnalyzeHandler handles score analysis requests.
type AnalyzeHandler struct {
	deps Dependencies
}

// NewAnalyzeHandler creates a new analyze handler.
func NewAnalyzeHandler(deps Dependencies) *AnalyzeHandler {
	return &AnalyzeHandler{deps: deps}
}

// HandleAnalyze handles POST /analyze requests. Malformed requests get a
// 400 error envelope; an unanalyzable score vector gets the 500 fallback
// envelope with a generic apology and the underlying error message.
func (h *AnalyzeHandler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	const op = "api.analyze"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}

	testType := insight.Normalize(req.TestType)

	start := time.Now()
	bundle, err := h.deps.Analyze(r.Context(), req.TestType, req.Results, req.ConfidenceScore)
	metrics.RecordAnalysisLatency(float64(time.Since(start).Milliseconds()))

	if err != nil {
		metrics.RecordFallbackBundle()
		fallback := insight.Fallback()
		writeJSON(w, http.StatusInternalServerError, fallbackResponse{
			PersonalityInsights:   fallback.PersonalityInsights,
			CareerRecommendations: fallback.CareerRecommendations,
			ConfidenceScore:       fallback.ConfidenceScore,
			Error:                 err.Error(),
		})
		return
	}

	metrics.RecordAnalysis(testType)
	writeJSON(w, http.StatusOK, bundle)
}
