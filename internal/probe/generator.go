package probe

import (
	"context"
	"crypto/rand"
	"math/big"

	"github.com/google/uuid"
	"github.com/okian/compass/internal/domain/insight"
	"github.com/okian/compass/pkg/logger"
)

// Constants for random number generation.
const (
	randomFloatDivisor = 1000000
	maxScore           = 100.0
)

// getRandomFloat returns a random float64 between 0.0 and 1.0 using crypto/rand.
func getRandomFloat() float64 {
	n, _ := rand.Int(rand.Reader, big.NewInt(randomFloatDivisor))
	return float64(n.Int64()) / float64(randomFloatDivisor)
}

// generateRequests creates synthetic analysis requests cycling through
// every supported test type with fully populated score vectors.
func generateRequests(ctx context.Context, config *Config, stats *Stats) []Request {
	logger.Get().Info(ctx, "generating analysis requests",
		logger.Int("numRequests", config.NumRequests),
		logger.Float64("demoShare", config.DemoShare))

	types := insight.Types()
	requests := make([]Request, config.NumRequests)

	for i := 0; i < config.NumRequests; i++ {
		testType := types[i%len(types)]
		dims, _ := insight.Dimensions(testType)

		scores := make(map[string]float64, len(dims))
		for _, dim := range dims {
			scores[dim] = getRandomFloat() * maxScore
		}

		requests[i] = Request{
			ID:       uuid.New().String(),
			TestType: testType,
			Results:  scores,
			DemoMode: getRandomFloat() < config.DemoShare,
		}
	}

	stats.RequestsGenerated = len(requests)
	return requests
}
