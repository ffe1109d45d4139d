package probe

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"sync"
	"sync/atomic"
	"time"
)

// demoModeHeader forces demo classification on submitted requests.
const demoModeHeader = "X-Demo-Mode"

// HTTPClient wraps http.Client with timeout
type HTTPClient struct {
	client *http.Client
}

// newHTTPClient creates a new HTTP client with timeout
func newHTTPClient(timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// Get performs a GET request
func (c *HTTPClient) Get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	return c.client.Do(req)
}

// Post performs a POST request with a JSON body; demo requests carry the
// demo-mode header so the service classifies them accordingly.
func (c *HTTPClient) Post(ctx context.Context, url string, body interface{}, demo bool) (*http.Response, error) {
	jsonData, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if demo {
		req.Header.Set(demoModeHeader, "true")
	}
	return c.client.Do(req)
}

// readResponseBody reads and closes the response body
func readResponseBody(resp *http.Response) ([]byte, error) {
	defer resp.Body.Close()
	return io.ReadAll(resp.Body)
}

// analyzePayload is the wire shape for POST /analyze.
type analyzePayload struct {
	TestType string             `json:"testType"`
	Results  map[string]float64 `json:"results"`
}

// submitRequests submits analysis requests concurrently using a worker pool
func submitRequests(ctx context.Context, config *Config, requests []Request, stats *Stats) ([]Result, error) {
	log.Printf("submitting %d requests with %d workers...", len(requests), config.Workers)

	client := newHTTPClient(config.Timeout)
	url := config.BaseURL + "/analyze"

	var (
		submitted int64
		failed    int64
		demo      int64
	)

	requestChan := make(chan int, config.Workers*WorkerChannelMultiplier)
	results := make([]Result, len(requests))
	var wg sync.WaitGroup

	for w := 0; w < config.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for idx := range requestChan {
				select {
				case <-ctx.Done():
					return
				default:
				}

				req := requests[idx]
				resp, err := client.Post(ctx, url, analyzePayload{
					TestType: req.TestType,
					Results:  req.Results,
				}, req.DemoMode)
				if err != nil {
					atomic.AddInt64(&failed, 1)
					results[idx] = Result{Request: req, Err: err}
					continue
				}

				body, err := readResponseBody(resp)
				if err != nil {
					atomic.AddInt64(&failed, 1)
					results[idx] = Result{Request: req, StatusCode: resp.StatusCode, Err: err}
					continue
				}

				atomic.AddInt64(&submitted, 1)
				if req.DemoMode {
					atomic.AddInt64(&demo, 1)
				}
				results[idx] = Result{Request: req, StatusCode: resp.StatusCode, Body: body}

				if config.Verbose {
					log.Printf("submitted %s (%s, demo=%v): %d",
						req.ID, req.TestType, req.DemoMode, resp.StatusCode)
				}
			}
		}()
	}

	for i := range requests {
		select {
		case <-ctx.Done():
			close(requestChan)
			wg.Wait()
			return nil, fmt.Errorf("submission canceled: %w", ctx.Err())
		case requestChan <- i:
		}
	}
	close(requestChan)
	wg.Wait()

	stats.RequestsSubmitted = int(submitted)
	stats.RequestsFailed = int(failed)
	stats.DemoRequests = int(demo)

	log.Printf("submission complete: %d ok, %d failed, %d demo", submitted, failed, demo)
	return results, nil
}
