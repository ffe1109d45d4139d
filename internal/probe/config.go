package probe

import "time"

// Config holds configuration for the synthetic probe run
type Config struct {
	BaseURL     string        // Base URL of the service
	NumRequests int           // Number of analysis requests to generate
	Workers     int           // Number of concurrent workers
	Timeout     time.Duration // HTTP request timeout
	DemoShare   float64       // Fraction of requests sent in demo mode (0.0 - 1.0)
	LogFile     string        // Log file for probe output
	Verbose     bool          // Enable verbose logging
}

// Request represents a single synthetic analysis submission
type Request struct {
	ID       string             `json:"id"`
	TestType string             `json:"testType"`
	Results  map[string]float64 `json:"results"`
	DemoMode bool               `json:"demoMode"`
}

// Result captures the outcome of one submitted request
type Result struct {
	Request    Request
	StatusCode int
	Body       []byte
	Err        error
}

// Stats holds probe statistics
type Stats struct {
	RequestsGenerated int
	RequestsSubmitted int
	RequestsFailed    int
	DemoRequests      int
	EnvelopesVerified int
	BundlesVerified   int
	StartTime         time.Time
	EndTime           time.Time
	Duration          time.Duration
}
