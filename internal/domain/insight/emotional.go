package insight

import "fmt"

// Declared emotional intelligence dimensions, ranking tie-break order.
var emotionalDimensions = []string{
	"selfAwareness",
	"selfRegulation",
	"motivation",
	"empathy",
	"socialSkills",
}

var emotionalLabels = map[string]string{
	"selfAwareness":  "self-awareness",
	"selfRegulation": "self-regulation",
	"motivation":     "motivation",
	"empathy":        "empathy",
	"socialSkills":   "social skills",
}

// Emotional threshold constants.
const (
	emotionalStrengthThreshold = 70
	emotionalGrowthThreshold   = 40
)

func analyzeEmotional(scores ScoreVector) Bundle {
	b := newBundle()

	highest := highestDimension(scores, emotionalDimensions)
	b.PersonalityInsights = append(b.PersonalityInsights, fmt.Sprintf(
		"Your strongest emotional dimension is %s.", emotionalLabels[highest]))

	switch highest {
	case "selfAwareness":
		b.PersonalityInsights = append(b.PersonalityInsights,
			"You read your own reactions accurately, which makes your decisions and feedback conversations unusually grounded.")
		b.CareerRecommendations = append(b.CareerRecommendations,
			"Coaching, counseling, and reflective leadership roles reward strong self-awareness.")
	case "selfRegulation":
		b.PersonalityInsights = append(b.PersonalityInsights,
			"You stay composed under pressure and recover quickly from setbacks.")
		b.CareerRecommendations = append(b.CareerRecommendations,
			"Crisis management, negotiation, and operations roles reward strong self-regulation.")
	case "motivation":
		b.PersonalityInsights = append(b.PersonalityInsights,
			"You sustain effort toward long-term goals without needing external rewards.")
		b.CareerRecommendations = append(b.CareerRecommendations,
			"Entrepreneurship, research, and long-cycle project work reward strong intrinsic motivation.")
	case "empathy":
		b.PersonalityInsights = append(b.PersonalityInsights,
			"You sense what others feel and need, often before they say it.")
		b.CareerRecommendations = append(b.CareerRecommendations,
			"Health care, human resources, teaching, and client-facing roles reward strong empathy.")
	case "socialSkills":
		b.PersonalityInsights = append(b.PersonalityInsights,
			"You build rapport easily and move groups toward agreement.")
		b.CareerRecommendations = append(b.CareerRecommendations,
			"Sales, team leadership, public relations, and mediation reward strong social skills.")
	}

	// Combination rule: empathy plus social skills in the top two marks a
	// people-first profile.
	topTwo := topDimensions(scores, emotionalDimensions, 2)
	if bothIn(topTwo, "empathy", "socialSkills") {
		b.PersonalityInsights = append(b.PersonalityInsights,
			"With empathy and social skills leading together, you are at your best in roles built entirely around people.")
	}

	b.LearningPathways = append(b.LearningPathways,
		"Emotional competencies grow through deliberate practice: seek settings with regular interpersonal feedback.")

	// Threshold rules in declared dimension order.
	for _, dim := range emotionalDimensions {
		label := emotionalLabels[dim]
		switch {
		case scores[dim] > emotionalStrengthThreshold:
			b.StrengthWeaknessAnalysis = append(b.StrengthWeaknessAnalysis, fmt.Sprintf(
				"Strength: %s is well developed and others likely rely on you for it.", label))
		case scores[dim] < emotionalGrowthThreshold:
			b.StrengthWeaknessAnalysis = append(b.StrengthWeaknessAnalysis, fmt.Sprintf(
				"Growth area: %s scores low and may limit you in emotionally demanding situations.", label))
			b.DevelopmentSuggestions = append(b.DevelopmentSuggestions, fmt.Sprintf(
				"Practice %s in low-stakes settings first, then ask a trusted colleague for honest observations.", label))
		}
	}

	return b
}
