package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/okian/compass/internal/adapters/audit"
	"github.com/okian/compass/internal/domain/tenant"
	"github.com/okian/compass/pkg/logger"
	"github.com/okian/compass/pkg/metrics"
)

// HTTP status code constants.
const (
	statusBadRequest      = 400
	statusNotFound        = 404
	statusTooManyRequests = 429
	statusInternalError   = 500
)

// simulatedWriteMessage is the envelope message for intercepted demo writes.
const simulatedWriteMessage = "Operation simulated in demo mode"

// ModeMiddleware classifies the request as demo or production, attaches the
// result to the request context, audits demo traffic, and intercepts
// demo-mode writes with a simulated success envelope. GET requests pass
// through unmodified regardless of mode.
func (s *Server) ModeMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tc := s.classifier.Classify(r)
		ctx := tenant.NewContext(r.Context(), tc)
		r = r.WithContext(ctx)

		mode := "production"
		if tc.IsDemoMode {
			mode = "demo"
			metrics.RecordDemoSignal(string(tc.Signal))
		}
		metrics.RecordRequestMode(mode)

		simulated := tc.IsDemoMode && s.mockWrites && r.Method != http.MethodGet

		if tc.IsDemoMode && s.logDemoRequests {
			s.logger.Info(ctx, "demo request",
				logger.String("method", r.Method),
				logger.String("path", r.URL.Path),
				logger.String("user_id", tc.UserID),
				logger.String("signal", string(tc.Signal)),
				logger.Bool("simulated", simulated))
		}

		if tc.IsDemoMode && s.auditEnabled && s.recorder != nil {
			s.recorder.Record(ctx, audit.Record{
				UserID:     tc.UserID,
				Method:     r.Method,
				Path:       r.URL.Path,
				DemoMode:   true,
				Signal:     string(tc.Signal),
				Simulated:  simulated,
				RemoteAddr: r.RemoteAddr,
				UserAgent:  r.UserAgent(),
			})
		}

		if !simulated {
			next.ServeHTTP(w, r)
			return
		}

		// Buffer the downstream response so its payload can be re-emitted
		// inside the simulation envelope. Nothing reaches the client until
		// the handler returns.
		buf := &bufferingResponseWriter{statusCode: http.StatusOK}
		next.ServeHTTP(buf, r)

		metrics.RecordSimulatedWrite()
		writeSimulated(w, buf)
	}
}

// writeSimulated emits the buffered payload wrapped in the demo envelope,
// preserving the handler's status code.
func writeSimulated(w http.ResponseWriter, buf *bufferingResponseWriter) {
	body := buf.body.Bytes()

	var data json.RawMessage
	switch {
	case len(bytes.TrimSpace(body)) == 0:
		data = json.RawMessage("null")
	case json.Valid(body):
		data = json.RawMessage(body)
	default:
		// Non-JSON payloads are carried as a JSON string.
		quoted, _ := json.Marshal(string(body))
		data = quoted
	}

	writeJSON(w, buf.statusCode, simulatedResponse{
		Success:  true,
		DemoMode: true,
		Message:  simulatedWriteMessage,
		Data:     data,
	})
}

// simulatedResponse is the envelope emitted in place of demo-mode writes.
type simulatedResponse struct {
	Success  bool            `json:"success"`
	DemoMode bool            `json:"demo_mode"`
	Message  string          `json:"message"`
	Data     json.RawMessage `json:"data"`
}

// bufferingResponseWriter captures the downstream response without
// forwarding anything to the client.
type bufferingResponseWriter struct {
	header     http.Header
	body       bytes.Buffer
	statusCode int
}

func (b *bufferingResponseWriter) Header() http.Header {
	if b.header == nil {
		b.header = make(http.Header)
	}
	return b.header
}

func (b *bufferingResponseWriter) WriteHeader(code int) {
	b.statusCode = code
}

func (b *bufferingResponseWriter) Write(p []byte) (int, error) {
	return b.body.Write(p)
}

// MetricsMiddleware wraps HTTP handlers to record Prometheus metrics.
func MetricsMiddleware(next http.HandlerFunc, endpoint string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Create a response writer wrapper to capture status code
		wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(wrapped, r)

		durationMs := float64(time.Since(start).Milliseconds())
		statusCodeStr := strconv.Itoa(wrapped.statusCode)

		metrics.RecordHTTPRequest(endpoint, r.Method, statusCodeStr)
		metrics.RecordHTTPRequestDuration(endpoint, r.Method, statusCodeStr, durationMs)

		// Record error metrics if status indicates an error
		if wrapped.statusCode >= statusBadRequest {
			errorType := getErrorType(wrapped.statusCode)
			severity := getErrorSeverity(wrapped.statusCode)
			metrics.RecordErrorByEndpoint(endpoint, r.Method, errorType)
			metrics.RecordErrorByType(errorType, severity)
			metrics.RecordErrorLatency("http", errorType, durationMs)
		}
	}
}

// getErrorType returns a standardized error type based on HTTP status code.
func getErrorType(statusCode int) string {
	switch {
	case statusCode >= statusInternalError:
		return "server_error"
	case statusCode == statusTooManyRequests:
		return "rate_limit"
	case statusCode == statusNotFound:
		return "not_found"
	case statusCode >= statusBadRequest:
		return "client_error"
	default:
		return "unknown"
	}
}

// getErrorSeverity returns error severity based on HTTP status code.
func getErrorSeverity(statusCode int) string {
	switch {
	case statusCode >= statusInternalError:
		return "high"
	case statusCode >= statusBadRequest:
		return "medium"
	default:
		return "low"
	}
}

// responseWriter wraps http.ResponseWriter to capture status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	n, err := rw.ResponseWriter.Write(b)
	if err != nil {
		return n, fmt.Errorf("failed to write response: %w", err)
	}
	return n, nil
}
