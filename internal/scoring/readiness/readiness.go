// Package readiness aggregates seven weighted dimensions into a single
// placement-readiness score with a grade and an action plan.
package readiness

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"placement-workers/internal/match"
)

const (
	WeightResume       = 20
	WeightSkills       = 20
	WeightMock         = 25
	WeightAcademic     = 15
	WeightPrep         = 10
	WeightApplications = 5
	WeightExtra        = 5

	// Slider starting values when the student has not set them.
	DefaultResumeScore = 60
	DefaultMockScore   = 55
	DefaultExtraScore  = 50

	defaultCGPA      = 70
	skillTarget      = 12
	sliderStep       = 5
	actionPlanLength = 5
)

type Impact string

const (
	ImpactHigh   Impact = "High"
	ImpactMedium Impact = "Medium"
	ImpactLow    Impact = "Low"
)

// Input is everything Evaluate needs. Resume, Mock and Extra are slider
// values; the rest come from the student's session.
type Input struct {
	ResumeScore  int      `json:"resumeScore"`
	MockScore    int      `json:"mockScore"`
	ExtraScore   int      `json:"extraScore"`
	Skills       []string `json:"skills"`
	CGPA         string   `json:"cgpa"`
	TasksDone    int      `json:"tasksDone"`
	TasksTotal   int      `json:"tasksTotal"`
	Applications int      `json:"applications"`
}

type Dimension struct {
	Key         string   `json:"key"`
	Label       string   `json:"label"`
	Weight      int      `json:"weight"`
	Score       int      `json:"score"`
	Grade       string   `json:"grade"`
	Description string   `json:"description"`
	HowScored   string   `json:"howScored"`
	Tips        []string `json:"tips"`
}

type ActionItem struct {
	Title  string `json:"title"`
	Why    string `json:"why"`
	Impact Impact `json:"impact"`
}

type Report struct {
	Overall    int          `json:"overall"`
	Grade      string       `json:"grade"`
	Percentile string       `json:"percentile"`
	Dimensions []Dimension  `json:"dimensions"`
	ActionPlan []ActionItem `json:"actionPlan"`
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// SnapSlider clamps v to 0..100 and rounds it to the nearest step of 5.
func SnapSlider(v int) int {
	v = clamp(v)
	return int(math.Round(float64(v)/sliderStep)) * sliderStep
}

// SkillsCoverage counts pool skills matched by any profile skill, against a
// target breadth of 12.
func SkillsCoverage(m match.Matcher, skills []string) int {
	matched := 0
	for _, p := range skillPool {
		for _, s := range skills {
			if m.Match(s, p) {
				matched++
				break
			}
		}
	}
	return clamp(int(math.Round(float64(matched) / skillTarget * 100)))
}

// ParseCGPA normalises a "value/max" grade to 0..100. Anything it cannot
// read gives 70.
func ParseCGPA(cgpa string) int {
	parts := strings.Split(cgpa, "/")
	if len(parts) != 2 {
		return defaultCGPA
	}
	val, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return defaultCGPA
	}
	maxVal, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil || maxVal <= 0 {
		return defaultCGPA
	}
	return int(math.Round(val / maxVal * 100))
}

func AcademicScore(normalised int) int {
	switch {
	case normalised >= 90:
		return 100
	case normalised >= 80:
		return 88
	case normalised >= 70:
		return 72
	case normalised >= 60:
		return 55
	default:
		return 35
	}
}

func PrepScore(done, total int) int {
	if total == 0 {
		return 0
	}
	return clamp(int(math.Round(float64(done) / float64(total) * 100)))
}

func ApplicationScore(n int) int {
	switch {
	case n <= 0:
		return 10
	case n == 1:
		return 40
	case n == 2:
		return 65
	default:
		return 85
	}
}

func Grade(score int) string {
	switch {
	case score >= 85:
		return "Placement Ready"
	case score >= 70:
		return "Almost There"
	case score >= 50:
		return "On Track"
	default:
		return "Needs Focus"
	}
}

func Percentile(score int) string {
	switch {
	case score >= 85:
		return "top 10%"
	case score >= 70:
		return "top 25%"
	case score >= 55:
		return "top 40%"
	default:
		return "bottom 50%"
	}
}

// Overall is the weight-averaged score of dims, rounded.
func Overall(dims []Dimension) int {
	total := 0.0
	for _, d := range dims {
		total += float64(d.Score*d.Weight) / 100
	}
	return int(math.Round(total))
}

// Evaluate builds every dimension from in and scores the whole report.
func Evaluate(m match.Matcher, in Input) Report {
	dims := Dimensions(m, in)
	overall := Overall(dims)
	return Report{
		Overall:    overall,
		Grade:      Grade(overall),
		Percentile: Percentile(overall),
		Dimensions: dims,
		ActionPlan: ActionPlan(dims),
	}
}

// ActionPlan picks the five dimensions contributing least to the total.
func ActionPlan(dims []Dimension) []ActionItem {
	sorted := make([]Dimension, len(dims))
	copy(sorted, dims)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score*sorted[i].Weight < sorted[j].Score*sorted[j].Weight
	})
	if len(sorted) > actionPlanLength {
		sorted = sorted[:actionPlanLength]
	}

	plan := make([]ActionItem, 0, len(sorted))
	for _, d := range sorted {
		plan = append(plan, ActionItem{Title: d.Label, Why: why(d), Impact: impact(d.Score)})
	}
	return plan
}

func impact(score int) Impact {
	switch {
	case score < 40:
		return ImpactHigh
	case score < 65:
		return ImpactMedium
	default:
		return ImpactLow
	}
}

func why(d Dimension) string {
	switch impact(d.Score) {
	case ImpactHigh:
		return fmt.Sprintf("Critical bottleneck: currently only %d%%. This has a %d%% weight in your overall score.", d.Score, d.Weight)
	case ImpactMedium:
		return fmt.Sprintf("Room for improvement at %d%%. Improving by 20pts here adds ~%d to your total score.", d.Score, roundInt(float64(d.Weight)*0.2))
	default:
		return fmt.Sprintf("Solid at %d%%. Small gains here (10pts) still add ~%d to your total.", d.Score, roundInt(float64(d.Weight)*0.1))
	}
}

func roundInt(f float64) int { return int(math.Round(f)) }
