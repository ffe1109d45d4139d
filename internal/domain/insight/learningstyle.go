package insight

import "fmt"

// Declared learning style dimensions, ranking tie-break order.
var learningStyleDimensions = []string{
	"visual",
	"auditory",
	"kinesthetic",
	"readingWriting",
}

var learningStyleLabels = map[string]string{
	"visual":         "visual",
	"auditory":       "auditory",
	"kinesthetic":    "kinesthetic",
	"readingWriting": "reading/writing",
}

// Learning style threshold constants.
const (
	learningStrongThreshold = 70
	learningWeakThreshold   = 40
)

func analyzeLearningStyle(scores ScoreVector) Bundle {
	b := newBundle()

	ranked := rankDimensions(scores, learningStyleDimensions)
	primary, secondary := ranked[0], ranked[1]

	b.PersonalityInsights = append(b.PersonalityInsights, fmt.Sprintf(
		"Your primary learning style is %s, supported by a %s secondary preference.",
		learningStyleLabels[primary], learningStyleLabels[secondary]))

	switch primary {
	case "visual":
		b.LearningPathways = append(b.LearningPathways,
			"Choose formats rich in diagrams, charts, and demonstrations; sketch concepts as you study.",
			"Video courses and mind-mapping tools will serve you better than audio lectures.")
		b.CareerRecommendations = append(b.CareerRecommendations,
			"Fields that think in images, such as design, architecture, and data visualization, play to a visual learner.")
	case "auditory":
		b.LearningPathways = append(b.LearningPathways,
			"Choose lectures, podcasts, and discussion groups; explain material aloud to consolidate it.",
			"Recording and replaying key sessions will serve you better than silent reading.")
		b.CareerRecommendations = append(b.CareerRecommendations,
			"Fields built on listening and speaking, such as languages, law, and radio, play to an auditory learner.")
	case "kinesthetic":
		b.LearningPathways = append(b.LearningPathways,
			"Choose labs, workshops, and apprenticeships; learn through building, not watching.",
			"Short practice cycles with immediate application will serve you better than long theory blocks.")
		b.CareerRecommendations = append(b.CareerRecommendations,
			"Fields practiced with the hands, such as health care, crafts, and sports coaching, play to a kinesthetic learner.")
	case "readingWriting":
		b.LearningPathways = append(b.LearningPathways,
			"Choose text-based courses and take extensive notes; rewrite material in your own words.",
			"Written summaries and lists will serve you better than diagrams or discussion.")
		b.CareerRecommendations = append(b.CareerRecommendations,
			"Fields centered on text, such as research, journalism, and documentation, play to a reading/writing learner.")
	}

	// Threshold rules in declared dimension order.
	for _, dim := range learningStyleDimensions {
		label := learningStyleLabels[dim]
		switch {
		case scores[dim] > learningStrongThreshold:
			b.StrengthWeaknessAnalysis = append(b.StrengthWeaknessAnalysis, fmt.Sprintf(
				"Strength: the %s channel works well for you; lean on it when material gets hard.", label))
		case scores[dim] < learningWeakThreshold:
			b.StrengthWeaknessAnalysis = append(b.StrengthWeaknessAnalysis, fmt.Sprintf(
				"Weak channel: %s input alone will rarely stick; pair it with your primary style.", label))
		}
	}

	b.DevelopmentSuggestions = append(b.DevelopmentSuggestions,
		"Tell instructors and mentors how you learn best; most formats can be adapted once asked.")
	if scores[ranked[len(ranked)-1]] < learningWeakThreshold {
		b.DevelopmentSuggestions = append(b.DevelopmentSuggestions, fmt.Sprintf(
			"Deliberately exercise the %s channel occasionally; versatile learners adapt faster to new workplaces.",
			learningStyleLabels[ranked[len(ranked)-1]]))
	}

	return b
}
