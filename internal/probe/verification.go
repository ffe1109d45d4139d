package probe

import (
	"encoding/json"
	"fmt"
	"log"
)

// envelope mirrors the demo write-interception response shape.
type envelope struct {
	Success  bool            `json:"success"`
	DemoMode bool            `json:"demo_mode"`
	Message  string          `json:"message"`
	Data     json.RawMessage `json:"data"`
}

// bundle mirrors the fields a populated insight bundle must carry.
type bundle struct {
	PersonalityInsights   []string `json:"personalityInsights"`
	CareerRecommendations []string `json:"careerRecommendations"`
	ConfidenceScore       float64  `json:"confidenceScore"`
}

// verifyResults checks every response against the mode it was submitted in:
// demo responses must carry the simulation envelope around a populated
// bundle, production responses must be bare populated bundles.
func verifyResults(config *Config, results []Result, stats *Stats) error {
	log.Println("verifying results...")

	var problems int
	for i := range results {
		res := &results[i]
		if res.Err != nil {
			continue
		}
		if res.StatusCode != StatusOK {
			problems++
			log.Printf("unexpected status for %s: %d", res.Request.ID, res.StatusCode)
			continue
		}

		if err := verifyResult(res, stats); err != nil {
			problems++
			log.Printf("verification failed for %s (%s): %v",
				res.Request.ID, res.Request.TestType, err)
		}
	}

	if problems > 0 {
		return fmt.Errorf("%d of %d responses failed verification", problems, len(results))
	}

	log.Println("result verification completed")
	return nil
}

// verifyResult validates a single response body.
func verifyResult(res *Result, stats *Stats) error {
	payload := res.Body

	if res.Request.DemoMode {
		var env envelope
		if err := json.Unmarshal(res.Body, &env); err != nil {
			return fmt.Errorf("malformed envelope: %w", err)
		}
		switch {
		case !env.Success:
			return fmt.Errorf("envelope success is false")
		case !env.DemoMode:
			return fmt.Errorf("envelope demo_mode is false")
		case env.Message == "":
			return fmt.Errorf("envelope message is empty")
		case len(env.Data) == 0:
			return fmt.Errorf("envelope data is empty")
		}
		stats.EnvelopesVerified++
		payload = env.Data
	}

	var b bundle
	if err := json.Unmarshal(payload, &b); err != nil {
		return fmt.Errorf("malformed bundle: %w", err)
	}
	switch {
	case len(b.PersonalityInsights) == 0:
		return fmt.Errorf("bundle has no personality insights")
	case len(b.CareerRecommendations) == 0:
		return fmt.Errorf("bundle has no career recommendations")
	case b.ConfidenceScore <= 0:
		return fmt.Errorf("bundle has no confidence score")
	}
	stats.BundlesVerified++
	return nil
}
