package insight

import "fmt"

// Declared no-diploma career dimensions, ranking tie-break order.
var noDiplomaDimensions = []string{
	"practicalSkills",
	"selfLearning",
	"persistence",
	"entrepreneurialSpirit",
	"opportunityRecognition",
}

var noDiplomaLabels = map[string]string{
	"practicalSkills":        "practical skills",
	"selfLearning":           "self-directed learning",
	"persistence":            "persistence",
	"entrepreneurialSpirit":  "entrepreneurial spirit",
	"opportunityRecognition": "eye for opportunity",
}

// No-diploma career threshold constants.
const (
	noDiplomaStrongThreshold = 70
	noDiplomaWeakThreshold   = 40
)

func analyzeNoDiplomaCareer(scores ScoreVector) Bundle {
	b := newBundle()

	strongest := highestDimension(scores, noDiplomaDimensions)
	b.PersonalityInsights = append(b.PersonalityInsights, fmt.Sprintf(
		"Without formal credentials, your %s is what you sell; the assessment shows it is your strongest dimension.",
		noDiplomaLabels[strongest]))

	if bothIn(topDimensions(scores, noDiplomaDimensions, 2), "entrepreneurialSpirit", "opportunityRecognition") {
		b.PersonalityInsights = append(b.PersonalityInsights,
			"Spotting openings and acting on them is an entrepreneurial pairing; self-employment may beat job hunting for you.")
		b.CareerRecommendations = append(b.CareerRecommendations,
			"Small trade businesses, resale, services, and franchising reward this pairing without asking for diplomas.")
	}

	if scores["practicalSkills"] > noDiplomaStrongThreshold {
		b.CareerRecommendations = append(b.CareerRecommendations,
			"Skilled manual sectors hire on demonstrated ability: construction, mechanics, catering, and logistics.")
	}
	b.CareerRecommendations = append(b.CareerRecommendations,
		"Target employers that run their own entry tests or trial periods; they substitute for the missing certificate.")

	b.LearningPathways = append(b.LearningPathways,
		"Recognition-of-prior-learning schemes can convert your experience into a formal qualification; start the file early.")
	if scores["selfLearning"] > noDiplomaStrongThreshold {
		b.LearningPathways = append(b.LearningPathways,
			"You learn well on your own: free online courses plus a public portfolio are a credible substitute credential.")
	}

	// Threshold rules in declared dimension order.
	for _, dim := range noDiplomaDimensions {
		label := noDiplomaLabels[dim]
		switch {
		case scores[dim] > noDiplomaStrongThreshold:
			b.StrengthWeaknessAnalysis = append(b.StrengthWeaknessAnalysis, fmt.Sprintf(
				"Strength: %s compensates directly for the absence of formal credentials.", label))
		case scores[dim] < noDiplomaWeakThreshold:
			b.StrengthWeaknessAnalysis = append(b.StrengthWeaknessAnalysis, fmt.Sprintf(
				"Vulnerability: weak %s narrows the non-credentialed paths available to you.", label))
			b.DevelopmentSuggestions = append(b.DevelopmentSuggestions, fmt.Sprintf(
				"Build %s through small commitments you can finish and show.", label))
		}
	}

	return b
}
