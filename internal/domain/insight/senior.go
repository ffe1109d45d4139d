package insight

import "fmt"

// Declared senior employment dimensions, ranking tie-break order.
var seniorDimensions = []string{
	"experienceValue",
	"adaptability",
	"digitalComfort",
	"flexibility",
	"mentoring",
}

var seniorLabels = map[string]string{
	"experienceValue": "depth of experience",
	"adaptability":    "adaptability",
	"digitalComfort":  "digital comfort",
	"flexibility":     "schedule flexibility",
	"mentoring":       "mentoring ability",
}

// Senior employment threshold constants.
const (
	seniorStrongThreshold = 70
	seniorWeakThreshold   = 40
)

func analyzeSeniorEmployment(scores ScoreVector) Bundle {
	b := newBundle()

	strongest := highestDimension(scores, seniorDimensions)
	b.PersonalityInsights = append(b.PersonalityInsights, fmt.Sprintf(
		"In today's market your strongest card is your %s.", seniorLabels[strongest]))

	if bothIn(topDimensions(scores, seniorDimensions, 2), "experienceValue", "mentoring") {
		b.PersonalityInsights = append(b.PersonalityInsights,
			"Experience you can transmit is doubly valuable: employers pay for the judgment and for its transfer to younger teams.")
		b.CareerRecommendations = append(b.CareerRecommendations,
			"Position yourself explicitly as a mentor-practitioner: senior expert roles, onboarding programs, and trade instruction.")
	}

	b.CareerRecommendations = append(b.CareerRecommendations,
		"Part-time, consulting, and interim assignments absorb senior profiles faster than open-ended full-time postings.")
	if scores["digitalComfort"] > seniorStrongThreshold {
		b.CareerRecommendations = append(b.CareerRecommendations,
			"Your digital comfort removes the most common objection to senior candidates; say so on the first page of your CV.")
	}

	b.LearningPathways = append(b.LearningPathways,
		"Short tool-specific refreshers signal currency; one recent certification outweighs a long list of dated ones.")
	if scores["digitalComfort"] < seniorWeakThreshold {
		b.LearningPathways = append(b.LearningPathways,
			"Prioritize a hands-on digital skills course now; it is the single highest-return investment on this profile.")
	}

	// Threshold rules in declared dimension order.
	for _, dim := range seniorDimensions {
		label := seniorLabels[dim]
		switch {
		case scores[dim] > seniorStrongThreshold:
			b.StrengthWeaknessAnalysis = append(b.StrengthWeaknessAnalysis, fmt.Sprintf(
				"Asset: %s is a differentiator against younger candidates.", label))
		case scores[dim] < seniorWeakThreshold:
			b.StrengthWeaknessAnalysis = append(b.StrengthWeaknessAnalysis, fmt.Sprintf(
				"Exposure: %s is where screening processes will probe hardest.", label))
			b.DevelopmentSuggestions = append(b.DevelopmentSuggestions, fmt.Sprintf(
				"Prepare a concrete, recent example that counters doubts about your %s.", label))
		}
	}

	return b
}
