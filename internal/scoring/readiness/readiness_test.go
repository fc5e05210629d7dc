package readiness

import (
	"testing"

	"placement-workers/internal/match"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultInput() Input {
	return Input{
		ResumeScore:  DefaultResumeScore,
		MockScore:    DefaultMockScore,
		ExtraScore:   DefaultExtraScore,
		Skills:       []string{"Financial Modelling", "Excel", "Brand Management", "Case Analysis", "Market Research", "Power BI"},
		CGPA:         "8.3/10",
		TasksDone:    5,
		TasksTotal:   18,
		Applications: 3,
	}
}

func TestWeightsSumTo100(t *testing.T) {
	total := 0
	for _, d := range Dimensions(match.Substring{}, defaultInput()) {
		total += d.Weight
	}
	assert.Equal(t, 100, total)
}

func TestEvaluate_DefaultStudent(t *testing.T) {
	r := Evaluate(match.Substring{}, defaultInput())

	scores := map[string]int{}
	for _, d := range r.Dimensions {
		scores[d.Key] = d.Score
	}
	assert.Equal(t, map[string]int{
		"resume":       60,
		"skills":       83,
		"mock":         55,
		"academic":     88,
		"prep":         28,
		"applications": 85,
		"extra":        50,
	}, scores)

	assert.Equal(t, 65, r.Overall)
	assert.Equal(t, "On Track", r.Grade)
	assert.Equal(t, "top 40%", r.Percentile)
}

func TestActionPlan_DefaultStudent(t *testing.T) {
	r := Evaluate(match.Substring{}, defaultInput())
	require.Len(t, r.ActionPlan, 5)

	titles := make([]string, len(r.ActionPlan))
	for i, a := range r.ActionPlan {
		titles[i] = a.Title
	}
	assert.Equal(t, []string{
		"Leadership & Extra-curriculars",
		"Prep Progress",
		"Application Activity",
		"Resume Strength",
		"Academic Performance",
	}, titles)

	assert.Equal(t, ImpactMedium, r.ActionPlan[0].Impact)
	assert.Equal(t, "Room for improvement at 50%. Improving by 20pts here adds ~1 to your total score.", r.ActionPlan[0].Why)
	assert.Equal(t, ImpactHigh, r.ActionPlan[1].Impact)
	assert.Equal(t, "Critical bottleneck: currently only 28%. This has a 10% weight in your overall score.", r.ActionPlan[1].Why)
	assert.Equal(t, ImpactLow, r.ActionPlan[2].Impact)
	assert.Equal(t, "Solid at 85%. Small gains here (10pts) still add ~1 to your total.", r.ActionPlan[2].Why)
	assert.Equal(t, "Solid at 88%. Small gains here (10pts) still add ~2 to your total.", r.ActionPlan[4].Why)
}

func TestParseCGPA(t *testing.T) {
	tests := map[string]int{
		"8.3/10":   83,
		"3.5/4.0":  88,
		"9.5 / 10": 95,
		"8.3":      70,
		"a/10":     70,
		"8/0":      70,
		"":         70,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseCGPA(in), in)
	}
}

func TestAcademicScore(t *testing.T) {
	assert.Equal(t, 100, AcademicScore(90))
	assert.Equal(t, 88, AcademicScore(83))
	assert.Equal(t, 72, AcademicScore(70))
	assert.Equal(t, 55, AcademicScore(69))
	assert.Equal(t, 35, AcademicScore(10))
}

func TestApplicationScore(t *testing.T) {
	assert.Equal(t, 10, ApplicationScore(0))
	assert.Equal(t, 40, ApplicationScore(1))
	assert.Equal(t, 65, ApplicationScore(2))
	assert.Equal(t, 85, ApplicationScore(3))
	assert.Equal(t, 85, ApplicationScore(12))
}

func TestPrepScore(t *testing.T) {
	assert.Equal(t, 0, PrepScore(0, 0))
	assert.Equal(t, 28, PrepScore(5, 18))
	assert.Equal(t, 100, PrepScore(18, 18))
}

func TestSkillsCoverage(t *testing.T) {
	m := match.Substring{}
	assert.Equal(t, 0, SkillsCoverage(m, nil))
	assert.Equal(t, 0, SkillsCoverage(m, []string{"  "}))
	// "Excel" alone hits both Excel entries
	assert.Equal(t, 17, SkillsCoverage(m, []string{"Excel"}))
	assert.Equal(t, 100, SkillsCoverage(m, SkillPool()))
}

func TestSnapSlider(t *testing.T) {
	assert.Equal(t, 0, SnapSlider(-20))
	assert.Equal(t, 60, SnapSlider(62))
	assert.Equal(t, 65, SnapSlider(63))
	assert.Equal(t, 100, SnapSlider(140))
}

func TestGradeAndPercentile(t *testing.T) {
	assert.Equal(t, "Placement Ready", Grade(85))
	assert.Equal(t, "Almost There", Grade(70))
	assert.Equal(t, "On Track", Grade(50))
	assert.Equal(t, "Needs Focus", Grade(49))

	assert.Equal(t, "top 10%", Percentile(90))
	assert.Equal(t, "top 25%", Percentile(72))
	assert.Equal(t, "top 40%", Percentile(55))
	assert.Equal(t, "bottom 50%", Percentile(54))
}

func TestOverall_StaysInRange(t *testing.T) {
	hi := Evaluate(match.Substring{}, Input{
		ResumeScore: 100, MockScore: 100, ExtraScore: 100,
		Skills: SkillPool(), CGPA: "10/10", TasksDone: 4, TasksTotal: 4, Applications: 9,
	})
	assert.LessOrEqual(t, hi.Overall, 100)

	lo := Evaluate(match.Substring{}, Input{})
	assert.GreaterOrEqual(t, lo.Overall, 0)
	assert.Equal(t, "Needs Focus", lo.Grade)
}
