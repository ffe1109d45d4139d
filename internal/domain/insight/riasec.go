package insight

import (
	"fmt"
	"strings"
)

// Declared RIASEC dimensions. Order matters: it is the ranking tie-break
// and the authoring order of the threshold rules.
var riasecDimensions = []string{
	"realistic",
	"investigative",
	"artistic",
	"social",
	"enterprising",
	"conventional",
}

// riasecLetters maps each dimension to its Holland code letter.
var riasecLetters = map[string]string{
	"realistic":     "R",
	"investigative": "I",
	"artistic":      "A",
	"social":        "S",
	"enterprising":  "E",
	"conventional":  "C",
}

// riasecLabels carries the human-readable name for each dimension.
var riasecLabels = map[string]string{
	"realistic":     "Realistic",
	"investigative": "Investigative",
	"artistic":      "Artistic",
	"social":        "Social",
	"enterprising":  "Enterprising",
	"conventional":  "Conventional",
}

// RIASEC threshold constants.
const (
	riasecStrengthThreshold = 70
	riasecWeaknessThreshold = 30
	riasecDominantCount     = 3
)

func analyzeRIASEC(scores ScoreVector) Bundle {
	b := newBundle()

	dominant := topDimensions(scores, riasecDimensions, riasecDominantCount)
	letters := make([]string, len(dominant))
	labels := make([]string, len(dominant))
	for i, dim := range dominant {
		letters[i] = riasecLetters[dim]
		labels[i] = riasecLabels[dim]
	}

	b.PersonalityInsights = append(b.PersonalityInsights, fmt.Sprintf(
		"Your dominant interest types are %s, giving you the Holland code %s.",
		strings.Join(labels, ", "), strings.Join(letters, "")))

	// Combination rules for co-dominant pairs, checked in fixed authoring order.
	if bothIn(dominant, "realistic", "investigative") {
		b.PersonalityInsights = append(b.PersonalityInsights,
			"You show a technical and analytical profile, combining hands-on problem solving with scientific curiosity.")
		b.CareerRecommendations = append(b.CareerRecommendations,
			"Engineering, laboratory work, and technical field roles suit a technical and analytical profile.")
	}
	if bothIn(dominant, "investigative", "artistic") {
		b.PersonalityInsights = append(b.PersonalityInsights,
			"You pair analytical thinking with creative imagination, a profile common among researchers who design as well as discover.")
		b.CareerRecommendations = append(b.CareerRecommendations,
			"Consider design engineering, scientific communication, or product research roles.")
	}
	if bothIn(dominant, "social", "enterprising") {
		b.PersonalityInsights = append(b.PersonalityInsights,
			"You combine people orientation with drive and initiative, a natural leadership profile.")
		b.CareerRecommendations = append(b.CareerRecommendations,
			"Team management, training, sales leadership, and community coordination fit this combination.")
	}
	if bothIn(dominant, "conventional", "investigative") {
		b.PersonalityInsights = append(b.PersonalityInsights,
			"You bring methodical rigor to analytical work, thriving where data and structure meet.")
		b.CareerRecommendations = append(b.CareerRecommendations,
			"Data analysis, auditing, quality assurance, and actuarial work reward this combination.")
	}
	if bothIn(dominant, "artistic", "social") {
		b.PersonalityInsights = append(b.PersonalityInsights,
			"You express creativity through and for people, drawn to work that communicates and connects.")
		b.CareerRecommendations = append(b.CareerRecommendations,
			"Teaching creative disciplines, art therapy, and media production fit this combination.")
	}
	if bothIn(dominant, "realistic", "conventional") {
		b.PersonalityInsights = append(b.PersonalityInsights,
			"You favor concrete, well-ordered work and deliver reliably within established procedures.")
		b.CareerRecommendations = append(b.CareerRecommendations,
			"Logistics, equipment operation, and maintenance planning reward this combination.")
	}

	// Primary-type recommendation and learning pathway.
	switch dominant[0] {
	case "realistic":
		b.CareerRecommendations = append(b.CareerRecommendations,
			"Your strongest pull is toward practical, hands-on work: skilled trades, agriculture, mechanics, or construction.")
		b.LearningPathways = append(b.LearningPathways,
			"Favor apprenticeships, workshops, and technical certifications where you learn by doing.")
	case "investigative":
		b.CareerRecommendations = append(b.CareerRecommendations,
			"Your strongest pull is toward inquiry: sciences, medicine, data work, or technical research.")
		b.LearningPathways = append(b.LearningPathways,
			"Favor study programs with a strong research component and independent projects.")
	case "artistic":
		b.CareerRecommendations = append(b.CareerRecommendations,
			"Your strongest pull is toward creative expression: design, writing, music, or visual arts.")
		b.LearningPathways = append(b.LearningPathways,
			"Favor portfolio-driven programs and studio practice over lecture-heavy formats.")
	case "social":
		b.CareerRecommendations = append(b.CareerRecommendations,
			"Your strongest pull is toward helping others: education, health care, counseling, or social work.")
		b.LearningPathways = append(b.LearningPathways,
			"Favor programs with supervised practice, internships, and group work.")
	case "enterprising":
		b.CareerRecommendations = append(b.CareerRecommendations,
			"Your strongest pull is toward persuading and leading: business, entrepreneurship, or public affairs.")
		b.LearningPathways = append(b.LearningPathways,
			"Favor case-based programs, student ventures, and leadership roles in associations.")
	case "conventional":
		b.CareerRecommendations = append(b.CareerRecommendations,
			"Your strongest pull is toward organizing and administering: accounting, administration, or records management.")
		b.LearningPathways = append(b.LearningPathways,
			"Favor structured curricula with clear milestones and professional certifications.")
	}

	// Threshold rules in declared dimension order.
	for _, dim := range riasecDimensions {
		label := riasecLabels[dim]
		switch {
		case scores[dim] > riasecStrengthThreshold:
			b.StrengthWeaknessAnalysis = append(b.StrengthWeaknessAnalysis, fmt.Sprintf(
				"Strength: your %s score is high, a reliable anchor for career choices.", label))
		case scores[dim] < riasecWeaknessThreshold:
			b.StrengthWeaknessAnalysis = append(b.StrengthWeaknessAnalysis, fmt.Sprintf(
				"Weakness: your %s score is low; roles centered on it would likely feel draining.", label))
		}
	}

	// Development suggestions for low-scoring dimensions, capped at the two weakest.
	weakest := rankDimensions(scores, riasecDimensions)
	for i := len(weakest) - 1; i >= 0 && len(b.DevelopmentSuggestions) < 2; i-- {
		dim := weakest[i]
		if scores[dim] < riasecWeaknessThreshold {
			b.DevelopmentSuggestions = append(b.DevelopmentSuggestions, fmt.Sprintf(
				"If a target role demands %s activities, build exposure gradually through small, low-stakes projects.",
				strings.ToLower(riasecLabels[dim])))
		}
	}

	return b
}
