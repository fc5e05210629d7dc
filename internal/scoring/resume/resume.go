// Package resume produces the resume section scores shown after an upload.
// Only the file name is used: the seed is its length, so the same name
// always yields the same report.
package resume

import (
	"math"
	"unicode/utf16"
)

const (
	ProfileStandard  = "standard"
	ProfileAlternate = "alternate"

	standardATSMultiplier  = 1.08
	alternateATSMultiplier = 1.15
	seedATSBonus           = 3
)

type Section struct {
	Key         string   `json:"key"`
	Label       string   `json:"label"`
	Score       int      `json:"score"`
	MaxScore    int      `json:"maxScore"`
	Suggestions []string `json:"suggestions"`
}

type Result struct {
	Seed               int       `json:"seed"`
	OverallScore       int       `json:"overallScore"`
	ATSScore           int       `json:"atsScore"`
	Sections           []Section `json:"sections"`
	GeneralSuggestions []string  `json:"generalSuggestions"`
	Strengths          []string  `json:"strengths"`
}

type sectionRule struct {
	key, label      string
	base, mult, max int
	threshold       int
	below, atOrOver []string
}

// Seed is the name length in UTF-16 code units, modulo 5.
func Seed(fileName string) int {
	return len(utf16.Encode([]rune(fileName))) % 5
}

// Analyze scores fileName with the standard ATS profile.
func Analyze(fileName string) Result {
	return AnalyzeWithProfile(fileName, ProfileStandard)
}

// AnalyzeWithProfile is Analyze with a selectable ATS multiplier. Unknown
// profiles use the standard one.
func AnalyzeWithProfile(fileName, profile string) Result {
	seed := Seed(fileName)

	sections := make([]Section, 0, len(sectionRules))
	total := 0
	for _, r := range sectionRules {
		score := r.base + seed*r.mult
		if score > r.max {
			score = r.max
		}
		suggestions := r.atOrOver
		if seed < r.threshold {
			suggestions = r.below
		}
		sections = append(sections, Section{
			Key:         r.key,
			Label:       r.label,
			Score:       score,
			MaxScore:    r.max,
			Suggestions: append([]string(nil), suggestions...),
		})
		total += score
	}

	mult := standardATSMultiplier
	if profile == ProfileAlternate {
		mult = alternateATSMultiplier
	}
	ats := int(math.Round(float64(total)*mult + float64(seed*seedATSBonus)))
	if ats > 100 {
		ats = 100
	}

	return Result{
		Seed:               seed,
		OverallScore:       total,
		ATSScore:           ats,
		Sections:           sections,
		GeneralSuggestions: append([]string(nil), generalSuggestions...),
		Strengths:          strengths(total),
	}
}

func strengths(total int) []string {
	switch {
	case total >= 65:
		return []string{"Strong quantified impact statements", "Clear MBA specialisation positioning", "Good use of domain keywords"}
	case total >= 45:
		return []string{"Decent internship descriptions", "Relevant skill listing"}
	default:
		return []string{"Resume has all standard sections", "Readable formatting"}
	}
}
