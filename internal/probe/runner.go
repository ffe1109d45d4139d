package probe

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/okian/compass/pkg/logger"
)

// Run executes the complete synthetic probe against a running service.
func Run(ctx context.Context, config *Config) error {
	stats := &Stats{
		StartTime: time.Now(),
	}

	logger.Get().Info(ctx, "starting compass probe",
		logger.String("baseURL", config.BaseURL),
		logger.Int("requests", config.NumRequests),
		logger.Int("workers", config.Workers),
		logger.String("timeout", config.Timeout.String()),
		logger.Float64("demoShare", config.DemoShare),
		logger.Any("verbose", config.Verbose))

	// Step 1: Check service health
	if err := checkServiceHealth(ctx, config); err != nil {
		return fmt.Errorf("service health check failed: %w", err)
	}

	// Step 2: Generate requests
	requests := generateRequests(ctx, config, stats)

	// Step 3: Submit requests concurrently
	results, err := submitRequests(ctx, config, requests, stats)
	if err != nil {
		return fmt.Errorf("request submission failed: %w", err)
	}

	// Step 4: Verify responses against their submitted mode
	if err := verifyResults(config, results, stats); err != nil {
		return fmt.Errorf("result verification failed: %w", err)
	}

	// Final statistics
	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)

	displayFinalStats(stats)

	logger.Get().Info(ctx, "probe completed successfully")
	return nil
}

// checkServiceHealth verifies the service is running.
func checkServiceHealth(ctx context.Context, config *Config) error {
	logger.Get().Info(ctx, "checking service health")

	client := newHTTPClient(config.Timeout)
	url := config.BaseURL + "/healthz"

	resp, err := client.Get(ctx, url)
	if err != nil {
		return fmt.Errorf("failed to connect to service: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logger.Get().Error(context.Background(), "failed to close response body", logger.Error(err))
		}
	}()

	if resp.StatusCode != StatusOK {
		return fmt.Errorf("service unhealthy: status %d", resp.StatusCode)
	}

	logger.Get().Info(ctx, "service is healthy")
	return nil
}

// displayFinalStats prints the final probe statistics.
func displayFinalStats(stats *Stats) {
	successRate := 0.0
	if stats.RequestsSubmitted+stats.RequestsFailed > 0 {
		successRate = float64(stats.RequestsSubmitted) /
			float64(stats.RequestsSubmitted+stats.RequestsFailed) * PercentageMultiplier
	}

	log.Printf(`probe statistics:
   Requests generated:  %d
   Requests submitted:  %d
   Requests failed:     %d
   Demo requests:       %d
   Envelopes verified:  %d
   Bundles verified:    %d
   Success rate:        %.1f%%
   Duration:            %s
`,
		stats.RequestsGenerated,
		stats.RequestsSubmitted,
		stats.RequestsFailed,
		stats.DemoRequests,
		stats.EnvelopesVerified,
		stats.BundlesVerified,
		successRate,
		stats.Duration,
	)
}
