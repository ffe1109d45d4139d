package insight

import (
	"fmt"
	"strings"
)

// Declared multiple intelligence dimensions, ranking tie-break order.
var intelligenceDimensions = []string{
	"linguistic",
	"logicalMathematical",
	"spatial",
	"musical",
	"bodilyKinesthetic",
	"interpersonal",
	"intrapersonal",
	"naturalistic",
}

var intelligenceLabels = map[string]string{
	"linguistic":          "linguistic",
	"logicalMathematical": "logical-mathematical",
	"spatial":             "spatial",
	"musical":             "musical",
	"bodilyKinesthetic":   "bodily-kinesthetic",
	"interpersonal":       "interpersonal",
	"intrapersonal":       "intrapersonal",
	"naturalistic":        "naturalistic",
}

// intelligenceCareers maps each intelligence to its headline career families.
var intelligenceCareers = map[string]string{
	"linguistic":          "writing, teaching, translation, and law",
	"logicalMathematical": "engineering, finance, data science, and research",
	"spatial":             "architecture, design, surveying, and piloting",
	"musical":             "performance, production, sound engineering, and music teaching",
	"bodilyKinesthetic":   "physiotherapy, skilled trades, sports, and surgery",
	"interpersonal":       "management, counseling, sales, and diplomacy",
	"intrapersonal":       "research, writing, therapy, and independent consulting",
	"naturalistic":        "agronomy, environmental science, veterinary work, and park management",
}

// Multiple intelligence threshold constants.
const (
	intelligenceStrengthThreshold = 70
	intelligenceWeaknessThreshold = 30
	intelligenceDominantCount     = 3
)

func analyzeMultipleIntelligence(scores ScoreVector) Bundle {
	b := newBundle()

	dominant := topDimensions(scores, intelligenceDimensions, intelligenceDominantCount)
	labels := make([]string, len(dominant))
	for i, dim := range dominant {
		labels[i] = intelligenceLabels[dim]
	}

	b.PersonalityInsights = append(b.PersonalityInsights, fmt.Sprintf(
		"Your dominant intelligences are %s.", strings.Join(labels, ", ")))

	// Combination rules for co-dominant pairs, checked in fixed authoring order.
	if bothIn(dominant, "linguistic", "interpersonal") {
		b.PersonalityInsights = append(b.PersonalityInsights,
			"Words plus people: you explain, persuade, and teach naturally.")
		b.CareerRecommendations = append(b.CareerRecommendations,
			"Teaching, journalism, training, and communications combine your two leading intelligences.")
	}
	if bothIn(dominant, "logicalMathematical", "spatial") {
		b.PersonalityInsights = append(b.PersonalityInsights,
			"Logic plus space: you reason about systems you can picture, a hallmark of engineers and architects.")
		b.CareerRecommendations = append(b.CareerRecommendations,
			"Engineering, architecture, game development, and robotics combine your two leading intelligences.")
	}
	if bothIn(dominant, "intrapersonal", "naturalistic") {
		b.PersonalityInsights = append(b.PersonalityInsights,
			"Reflection plus nature: you do deep, patient work in observational fields.")
		b.CareerRecommendations = append(b.CareerRecommendations,
			"Field research, conservation, and environmental writing combine your two leading intelligences.")
	}
	if bothIn(dominant, "musical", "bodilyKinesthetic") {
		b.PersonalityInsights = append(b.PersonalityInsights,
			"Rhythm plus movement: you excel where timing and the body meet.")
		b.CareerRecommendations = append(b.CareerRecommendations,
			"Performance, dance, stage production, and coaching combine your two leading intelligences.")
	}

	// Per-dominant career families in rank order.
	for _, dim := range dominant {
		b.CareerRecommendations = append(b.CareerRecommendations, fmt.Sprintf(
			"Your %s intelligence opens doors in %s.", intelligenceLabels[dim], intelligenceCareers[dim]))
	}

	b.LearningPathways = append(b.LearningPathways, fmt.Sprintf(
		"Pick study formats that exercise your %s intelligence first; retention follows engagement.",
		intelligenceLabels[dominant[0]]))

	// Threshold rules in declared dimension order.
	for _, dim := range intelligenceDimensions {
		label := intelligenceLabels[dim]
		switch {
		case scores[dim] > intelligenceStrengthThreshold:
			b.StrengthWeaknessAnalysis = append(b.StrengthWeaknessAnalysis, fmt.Sprintf(
				"Strength: %s intelligence is a standout; build your positioning around it.", label))
		case scores[dim] < intelligenceWeaknessThreshold:
			b.StrengthWeaknessAnalysis = append(b.StrengthWeaknessAnalysis, fmt.Sprintf(
				"Weakness: %s intelligence scores low; avoid roles that lean on it daily.", label))
		}
	}

	b.DevelopmentSuggestions = append(b.DevelopmentSuggestions,
		"Intelligences develop with use: schedule regular practice in your top two rather than patching every gap.")

	return b
}
