// Package careerpath ranks the static career-path profiles against a
// student's skills, projects and interests.
package careerpath

import (
	"errors"
	"sort"

	"placement-workers/internal/match"
)

const (
	skillWeight    = 9
	projectWeight  = 7
	interestWeight = 5

	maxScore = 100
	// TopN is how many paths Predict returns.
	TopN = 4
)

var ErrNoSignals = errors.New("at least one skill or interest is required")

type Company struct {
	Name   string `json:"name"`
	Tier   string `json:"tier"`
	Domain string `json:"domain"`
}

type Profile struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	KeySkills        []string  `json:"keySkills"`
	RoleKeywords     []string  `json:"roleKeywords"`
	InterestKeywords []string  `json:"interestKeywords"`
	Companies        []Company `json:"companies"`
	Roles            []string  `json:"roles"`
	Roadmap          []string  `json:"roadmap"`
}

type Input struct {
	Skills    []string `json:"skills"`
	Projects  []string `json:"projects"`
	Interests []string `json:"interests"`
}

type Result struct {
	Profile
	Match int    `json:"match"`
	Label string `json:"label"`
}

// Profiles returns the reference profiles in their canonical order.
func Profiles() []Profile {
	out := make([]Profile, len(profiles))
	copy(out, profiles)
	return out
}

// Score awards 9 per matching skill, 7 per matching project and 5 per
// matching interest, capped at 100. Each tag counts at most once.
func Score(m match.Matcher, p Profile, in Input) int {
	score := skillWeight*match.Count(m, in.Skills, p.KeySkills) +
		projectWeight*match.Count(m, in.Projects, p.RoleKeywords) +
		interestWeight*match.Count(m, in.Interests, p.InterestKeywords)
	if score > maxScore {
		return maxScore
	}
	return score
}

// Predict scores every profile and returns the best TopN, highest first.
// Equal scores keep canonical profile order.
func Predict(m match.Matcher, in Input) ([]Result, error) {
	if len(match.Clean(in.Skills)) == 0 && len(match.Clean(in.Interests)) == 0 {
		return nil, ErrNoSignals
	}

	results := make([]Result, len(profiles))
	for i, p := range profiles {
		s := Score(m, p, in)
		results[i] = Result{Profile: p, Match: s, Label: MatchLabel(s)}
	}
	sort.SliceStable(results, func(i, j int) bool { return results[i].Match > results[j].Match })

	if len(results) > TopN {
		results = results[:TopN]
	}
	return results, nil
}

func MatchLabel(score int) string {
	switch {
	case score >= 70:
		return "Strong Match"
	case score >= 45:
		return "Good Match"
	case score > 0:
		return "Partial Match"
	default:
		return "Explore Path"
	}
}
