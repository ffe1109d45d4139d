package insight

import "fmt"

// Declared career transition dimensions, ranking tie-break order.
var transitionDimensions = []string{
	"adaptability",
	"riskTolerance",
	"transferableSkills",
	"networking",
	"financialReadiness",
}

var transitionLabels = map[string]string{
	"adaptability":       "adaptability",
	"riskTolerance":      "risk tolerance",
	"transferableSkills": "transferable skills",
	"networking":         "professional network",
	"financialReadiness": "financial readiness",
}

// Career transition threshold constants.
const (
	transitionStrongThreshold = 70
	transitionWeakThreshold   = 40
)

func analyzeCareerTransition(scores ScoreVector) Bundle {
	b := newBundle()

	strongest := highestDimension(scores, transitionDimensions)
	b.PersonalityInsights = append(b.PersonalityInsights, fmt.Sprintf(
		"Your greatest transition asset is your %s.", transitionLabels[strongest]))

	// Readiness posture from the two gating dimensions.
	switch {
	case scores["financialReadiness"] > transitionStrongThreshold && scores["riskTolerance"] > transitionStrongThreshold:
		b.PersonalityInsights = append(b.PersonalityInsights,
			"With both a financial cushion and appetite for risk, you can afford a bold move, including a full retrain.")
		b.CareerRecommendations = append(b.CareerRecommendations,
			"A direct switch into the target field, or founding your own practice, is realistic for you now.")
	case scores["financialReadiness"] < transitionWeakThreshold:
		b.PersonalityInsights = append(b.PersonalityInsights,
			"Your finances argue for a staged transition rather than a clean break.")
		b.CareerRecommendations = append(b.CareerRecommendations,
			"Keep your current income while building the new direction on evenings and weekends.")
	default:
		b.PersonalityInsights = append(b.PersonalityInsights,
			"A bridging move, such as a hybrid role touching both fields, matches your current readiness.")
		b.CareerRecommendations = append(b.CareerRecommendations,
			"Target roles in your current sector that border the destination field, then step across.")
	}

	if scores["transferableSkills"] > transitionStrongThreshold {
		b.CareerRecommendations = append(b.CareerRecommendations,
			"Lead your applications with transferable achievements; your experience travels better than you may assume.")
	}

	b.LearningPathways = append(b.LearningPathways,
		"Prefer short, stackable certifications over multi-year programs; transitions reward fast, visible progress.")
	if scores["networking"] < transitionWeakThreshold {
		b.LearningPathways = append(b.LearningPathways,
			"Join one professional association in the target field before enrolling in anything; doors open through people.")
	}

	// Threshold rules in declared dimension order.
	for _, dim := range transitionDimensions {
		label := transitionLabels[dim]
		switch {
		case scores[dim] > transitionStrongThreshold:
			b.StrengthWeaknessAnalysis = append(b.StrengthWeaknessAnalysis, fmt.Sprintf(
				"Strength: your %s is solid enough to build the transition on.", label))
		case scores[dim] < transitionWeakThreshold:
			b.StrengthWeaknessAnalysis = append(b.StrengthWeaknessAnalysis, fmt.Sprintf(
				"Risk: your %s is currently thin and could stall the move.", label))
			b.DevelopmentSuggestions = append(b.DevelopmentSuggestions, fmt.Sprintf(
				"Strengthen your %s before committing; set a measurable three-month target.", label))
		}
	}

	return b
}
