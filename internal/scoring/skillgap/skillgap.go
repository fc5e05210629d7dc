// Package skillgap compares a student's skills with an employer's required
// skill table and groups what is missing by priority.
package skillgap

import (
	"math"

	"placement-workers/internal/match"
	"placement-workers/internal/models"
)

type EmployerRequirements struct {
	RoleContext    string                 `json:"roleContext"`
	RequiredSkills []models.RequiredSkill `json:"requiredSkills"`
}

type Gap struct {
	models.RequiredSkill
	Resources []models.LearningResource `json:"resources"`
}

type Report struct {
	Matched    []models.RequiredSkill `json:"matched"`
	Critical   []Gap                  `json:"critical"`
	Important  []Gap                  `json:"important"`
	GoodToHave []Gap                  `json:"goodToHave"`
	Total      int                    `json:"total"`
	Coverage   int                    `json:"coverage"`
	Label      string                 `json:"label"`
}

// GapCount is the number of required skills the student is missing.
func (r Report) GapCount() int {
	return len(r.Critical) + len(r.Important) + len(r.GoodToHave)
}

// Requirements returns the required-skill table for a campus employer id.
func Requirements(employerID string) (EmployerRequirements, bool) {
	req, ok := requirements[employerID]
	return req, ok
}

// Resources returns learning resources for a skill. Unknown skills get an empty slice.
func Resources(skill string) []models.LearningResource {
	rs := resources[skill]
	out := make([]models.LearningResource, len(rs))
	copy(out, rs)
	return out
}

// Analyze splits required into matched skills and gaps. A required skill is
// matched when any user skill matches it under m.
func Analyze(m match.Matcher, required []models.RequiredSkill, userSkills []string) Report {
	r := Report{
		Matched:    []models.RequiredSkill{},
		Critical:   []Gap{},
		Important:  []Gap{},
		GoodToHave: []Gap{},
		Total:      len(required),
	}

	for _, req := range required {
		if matchesAny(m, req.Skill, userSkills) {
			r.Matched = append(r.Matched, req)
			continue
		}
		g := Gap{RequiredSkill: req, Resources: Resources(req.Skill)}
		switch req.Priority {
		case models.PriorityCritical:
			r.Critical = append(r.Critical, g)
		case models.PriorityImportant:
			r.Important = append(r.Important, g)
		case models.PriorityGoodToHave:
			r.GoodToHave = append(r.GoodToHave, g)
		}
	}

	if r.Total > 0 {
		r.Coverage = int(math.Round(float64(len(r.Matched)) / float64(r.Total) * 100))
	}
	r.Label = CoverageLabel(r.Coverage)
	return r
}

func matchesAny(m match.Matcher, required string, userSkills []string) bool {
	for _, s := range userSkills {
		if m.Match(s, required) {
			return true
		}
	}
	return false
}

func CoverageLabel(score int) string {
	switch {
	case score >= 75:
		return "Strong Match"
	case score >= 50:
		return "Good Match"
	case score >= 25:
		return "Partial Match"
	default:
		return "Significant Gaps"
	}
}
