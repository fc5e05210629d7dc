package chat

import (
	"strings"
	"testing"

	"placement-workers/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		input string
		want  Intent
	}{
		{"Which companies are visiting?", IntentCompanies},
		{"what finance companies are coming", IntentCompanies},
		{"What is the CGPA cutoff", IntentEligibility},
		{"Tell me about eligibility criteria", IntentEligibility},
		{"tips for DCF valuation", IntentFinance},
		{"brand manager interview", IntentMarketing},
		{"how do I solve a case", IntentCase},
		{"review my CV", IntentResume},
		{"resume and how to prepare", IntentResume},
		{"How to study for aptitude", IntentPrepare},
		{"check application status", IntentStatus},
		{"Hello!", IntentHelp},
		{"this", IntentHelp},
		{"xyz", IntentFallback},
		{"", IntentFallback},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.input))
		})
	}
}

func TestRespond_Companies(t *testing.T) {
	employers := []models.Employer{
		{Name: "Goldman Sachs", Role: "Investment Banking Analyst", Package: "₹28 LPA", Deadline: "2026-03-10"},
		{Name: "McKinsey & Company", Role: "Business Analyst", Package: "₹32 LPA", Deadline: "2026-03-15"},
	}

	got := Respond("upcoming companies?", employers)
	assert.True(t, strings.HasPrefix(got, "Here are the upcoming companies visiting campus:"))
	assert.Contains(t, got, "• **Goldman Sachs**: Investment Banking Analyst (₹28 LPA), Deadline: 2026-03-10")
	assert.Less(t, strings.Index(got, "Goldman"), strings.Index(got, "McKinsey"))
}

func TestRespond_NoCompanies(t *testing.T) {
	assert.Contains(t, Respond("companies", nil), "No companies")
}

func TestRespond_EveryIntentHasText(t *testing.T) {
	for _, r := range rules {
		if r.intent == IntentCompanies {
			continue
		}
		assert.NotEmpty(t, responses[r.intent], string(r.intent))
	}
	assert.Equal(t, responses[IntentFallback], Respond("xyz", nil))
}
