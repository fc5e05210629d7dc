package resume

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeed(t *testing.T) {
	tests := []struct {
		name string
		file string
		want int
	}{
		{"ascii", "resume.pdf", 0},
		{"thirteen chars", "my_resume.pdf", 3},
		{"accents count once", "résumé.pdf", 0},
		{"astral rune counts twice", "📄.pdf", 1},
		{"empty", "", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Seed(tt.file))
		})
	}
}

func TestAnalyze(t *testing.T) {
	tests := []struct {
		file          string
		wantOverall   int
		wantATS       int
		wantStrengths int
	}{
		{"resume.pdf", 51, 55, 2},      // seed 0
		{"resume1.pdf", 59, 67, 2},     // seed 1
		{"resume12.pdf", 67, 78, 3},    // seed 2
		{"my_resume.pdf", 75, 90, 3},   // seed 3
		{"my_resume1.pdf", 83, 100, 3}, // seed 4, capped
	}
	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			r := Analyze(tt.file)
			assert.Equal(t, tt.wantOverall, r.OverallScore)
			assert.Equal(t, tt.wantATS, r.ATSScore)
			assert.Len(t, r.Strengths, tt.wantStrengths)
			assert.Len(t, r.GeneralSuggestions, 5)
		})
	}
}

func TestAnalyze_SectionsAndSuggestions(t *testing.T) {
	r := Analyze("my_resume.pdf")
	require.Len(t, r.Sections, 5)

	work := r.Sections[0]
	assert.Equal(t, "work-experience", work.Key)
	assert.Equal(t, 20, work.Score)
	assert.Equal(t, 25, work.MaxScore)
	assert.Len(t, work.Suggestions, 2)

	// skills switches list one seed later than the others
	skills := r.Sections[3]
	assert.Equal(t, "skills", skills.Key)
	assert.Equal(t, 11, skills.Score)
	assert.Len(t, skills.Suggestions, 3)

	for _, s := range r.Sections {
		assert.LessOrEqual(t, s.Score, s.MaxScore, s.Key)
	}
}

func TestAnalyzeWithProfile_Alternate(t *testing.T) {
	r := AnalyzeWithProfile("resume12.pdf", ProfileAlternate)
	assert.Equal(t, 67, r.OverallScore)
	assert.Equal(t, 83, r.ATSScore)

	assert.Equal(t, Analyze("resume.pdf"), AnalyzeWithProfile("resume.pdf", "unknown"))
}

func TestAnalyze_Deterministic(t *testing.T) {
	assert.Equal(t, Analyze("offer_letter.pdf"), Analyze("offer_letter.pdf"))
}
