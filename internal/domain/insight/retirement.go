package insight

import "fmt"

// Declared retirement readiness dimensions, ranking tie-break order.
var retirementDimensions = []string{
	"financialPlanning",
	"healthManagement",
	"socialEngagement",
	"purposeClarity",
	"activityStructure",
}

var retirementLabels = map[string]string{
	"financialPlanning": "financial planning",
	"healthManagement":  "health management",
	"socialEngagement":  "social engagement",
	"purposeClarity":    "clarity of purpose",
	"activityStructure": "activity planning",
}

// Retirement readiness threshold constants.
const (
	retirementStrongThreshold = 70
	retirementWeakThreshold   = 40
)

func analyzeRetirementReadiness(scores ScoreVector) Bundle {
	b := newBundle()

	strongest := highestDimension(scores, retirementDimensions)
	b.PersonalityInsights = append(b.PersonalityInsights, fmt.Sprintf(
		"Your retirement preparation is most advanced in %s.", retirementLabels[strongest]))

	if scores["purposeClarity"] > retirementStrongThreshold {
		b.PersonalityInsights = append(b.PersonalityInsights,
			"You already know what you want this chapter to be about, which predicts satisfaction better than savings do.")
	} else if scores["purposeClarity"] < retirementWeakThreshold {
		b.PersonalityInsights = append(b.PersonalityInsights,
			"The biggest open question is what will replace work as a source of meaning; it deserves attention before the finances.")
	}

	b.CareerRecommendations = append(b.CareerRecommendations,
		"Consider a phased exit: reduced hours, advisory work, or mentoring keep income and identity while freeing time.")
	if scores["socialEngagement"] > retirementStrongThreshold {
		b.CareerRecommendations = append(b.CareerRecommendations,
			"Your social network is an asset; board seats, association roles, and volunteering will come to you through it.")
	}

	b.LearningPathways = append(b.LearningPathways,
		"Pre-retirement workshops and financial planning courses pay for themselves; take one this year rather than at the deadline.")

	// Threshold rules in declared dimension order.
	for _, dim := range retirementDimensions {
		label := retirementLabels[dim]
		switch {
		case scores[dim] > retirementStrongThreshold:
			b.StrengthWeaknessAnalysis = append(b.StrengthWeaknessAnalysis, fmt.Sprintf(
				"On track: %s is well in hand.", label))
		case scores[dim] < retirementWeakThreshold:
			b.StrengthWeaknessAnalysis = append(b.StrengthWeaknessAnalysis, fmt.Sprintf(
				"Attention needed: %s is lagging and compounds the longer it waits.", label))
			b.DevelopmentSuggestions = append(b.DevelopmentSuggestions, fmt.Sprintf(
				"Book one concrete step on %s this month, however small.", label))
		}
	}

	return b
}
