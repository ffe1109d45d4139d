// Package insight maps psychometric test score vectors to structured
// natural-language insight bundles.
//
// Every analysis routine is a pure function: derived rankings over the
// score vector, threshold rules selecting pre-authored sentences, and
// combination rules for co-dominant dimensions. No I/O, no randomness.
package insight

import (
	"fmt"
	"strings"
)

// Recognized test type tags. Hyphenated spellings are normalized before dispatch.
const (
	TypeRIASEC               = "riasec"
	TypeEmotional            = "emotional"
	TypeLearningStyle        = "learning_style"
	TypeMultipleIntelligence = "multiple_intelligence"
	TypeCareerTransition     = "career_transition"
	TypeRetirementReadiness  = "retirement_readiness"
	TypeSeniorEmployment     = "senior_employment"
	TypeNoDiplomaCareer      = "no_diploma_career"
)

// Confidence defaults.
const (
	// DefaultConfidence is applied when the caller supplies no confidence score.
	DefaultConfidence = 85
	// FallbackConfidence is carried by the generic fallback bundle.
	FallbackConfidence = 50
)

// ScoreVector maps named sub-dimensions to raw 0-100 scores.
type ScoreVector map[string]float64

// Bundle is the structured set of natural-language result categories
// produced from a ScoreVector. Field order within each slice reflects
// authoring priority, not relevance ranking.
type Bundle struct {
	PersonalityInsights      []string `json:"personalityInsights"`
	CareerRecommendations    []string `json:"careerRecommendations"`
	LearningPathways         []string `json:"learningPathways"`
	StrengthWeaknessAnalysis []string `json:"strengthWeaknessAnalysis"`
	DevelopmentSuggestions   []string `json:"developmentSuggestions"`
	ConfidenceScore          float64  `json:"confidenceScore"`
}

// newBundle returns a Bundle with all slice fields initialized so a field
// with no matching rule serializes as an empty array, never null.
func newBundle() Bundle {
	return Bundle{
		PersonalityInsights:      []string{},
		CareerRecommendations:    []string{},
		LearningPathways:         []string{},
		StrengthWeaknessAnalysis: []string{},
		DevelopmentSuggestions:   []string{},
	}
}

// routine couples a test type's declared dimension set with its analysis function.
type routine struct {
	dimensions []string
	run        func(ScoreVector) Bundle
}

// routines is the closed dispatch table. Adding a test type means adding
// an entry here together with its declared dimensions.
var routines = map[string]routine{
	TypeRIASEC:               {dimensions: riasecDimensions, run: analyzeRIASEC},
	TypeEmotional:            {dimensions: emotionalDimensions, run: analyzeEmotional},
	TypeLearningStyle:        {dimensions: learningStyleDimensions, run: analyzeLearningStyle},
	TypeMultipleIntelligence: {dimensions: intelligenceDimensions, run: analyzeMultipleIntelligence},
	TypeCareerTransition:     {dimensions: transitionDimensions, run: analyzeCareerTransition},
	TypeRetirementReadiness:  {dimensions: retirementDimensions, run: analyzeRetirementReadiness},
	TypeSeniorEmployment:     {dimensions: seniorDimensions, run: analyzeSeniorEmployment},
	TypeNoDiplomaCareer:      {dimensions: noDiplomaDimensions, run: analyzeNoDiplomaCareer},
}

// Types returns the recognized test type tags in a fixed order.
func Types() []string {
	return []string{
		TypeRIASEC,
		TypeEmotional,
		TypeLearningStyle,
		TypeMultipleIntelligence,
		TypeCareerTransition,
		TypeRetirementReadiness,
		TypeSeniorEmployment,
		TypeNoDiplomaCareer,
	}
}

// Dimensions returns the declared dimension set for a test type, in the
// order used for ranking tie-breaks. The second return is false for
// unrecognized types.
func Dimensions(testType string) ([]string, bool) {
	rt, ok := routines[Normalize(testType)]
	if !ok {
		return nil, false
	}
	dims := make([]string, len(rt.dimensions))
	copy(dims, rt.dimensions)
	return dims, true
}

// Normalize canonicalizes a test type tag: lowercase, hyphens to underscores.
func Normalize(testType string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(testType)), "-", "_")
}

// Analyze produces an insight bundle for the given test type and scores.
//
// The confidence score is carried through from the caller; zero or negative
// selects DefaultConfidence. Unknown types fail with ErrUnsupportedTestType
// and absent dimensions fail with ErrMissingDimension; no partially
// populated bundle is ever returned.
func Analyze(testType string, scores ScoreVector, confidence float64) (Bundle, error) {
	rt, ok := routines[Normalize(testType)]
	if !ok {
		return Bundle{}, fmt.Errorf("analyze %q: %w", testType, ErrUnsupportedTestType)
	}
	if missing := missingDimensions(rt.dimensions, scores); len(missing) > 0 {
		return Bundle{}, fmt.Errorf("analyze %q: %w: %s",
			testType, ErrMissingDimension, strings.Join(missing, ", "))
	}

	b := rt.run(scores)
	if confidence > 0 {
		b.ConfidenceScore = confidence
	} else {
		b.ConfidenceScore = DefaultConfidence
	}
	return b, nil
}

// Fallback returns the generic bundle served when analysis fails.
func Fallback() Bundle {
	b := newBundle()
	b.PersonalityInsights = append(b.PersonalityInsights,
		"We are sorry, a detailed analysis of your results could not be completed at this time.")
	b.CareerRecommendations = append(b.CareerRecommendations,
		"Please try again shortly, or browse our career resources in the meantime.")
	b.ConfidenceScore = FallbackConfidence
	return b
}
