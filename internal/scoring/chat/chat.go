// Package chat answers placement questions from a fixed set of canned
// responses. The first intent whose keywords appear in the message wins.
package chat

import (
	"fmt"
	"strings"

	"placement-workers/internal/models"
)

type Intent string

const (
	IntentCompanies   Intent = "companies"
	IntentEligibility Intent = "eligibility"
	IntentFinance     Intent = "finance"
	IntentMarketing   Intent = "marketing"
	IntentCase        Intent = "case"
	IntentResume      Intent = "resume"
	IntentPrepare     Intent = "prepare"
	IntentStatus      Intent = "status"
	IntentHelp        Intent = "help"
	IntentFallback    Intent = "fallback"
)

type rule struct {
	intent   Intent
	keywords []string
}

// Order matters: "which finance companies" is a companies question.
var rules = []rule{
	{IntentCompanies, []string{"compan", "upcoming", "visiting", "recruit"}},
	{IntentEligibility, []string{"eligib", "criteria", "cgpa"}},
	{IntentFinance, []string{"financ", "banking", "valuation", "dcf", "equity"}},
	{IntentMarketing, []string{"marketing", "brand", "fmcg"}},
	{IntentCase, []string{"case", "consult", "guesstimate"}},
	{IntentResume, []string{"resume", "cv"}},
	{IntentPrepare, []string{"prepar", "study", "practice", "how to"}},
	{IntentStatus, []string{"status", "application", "applied"}},
	// "hi" also fires inside words like "this"; kept for parity with the widget.
	{IntentHelp, []string{"help", "hi", "hello", "hey"}},
}

// Classify returns the first intent whose keywords occur in input.
func Classify(input string) Intent {
	lower := strings.ToLower(input)
	for _, r := range rules {
		for _, k := range r.keywords {
			if strings.Contains(lower, k) {
				return r.intent
			}
		}
	}
	return IntentFallback
}

// Respond returns the canned answer for input. The companies answer lists
// employers in the order given.
func Respond(input string, employers []models.Employer) string {
	intent := Classify(input)
	if intent == IntentCompanies {
		return companiesResponse(employers)
	}
	return responses[intent]
}

func companiesResponse(employers []models.Employer) string {
	if len(employers) == 0 {
		return "No companies are scheduled to visit campus right now. Check back soon!"
	}
	var b strings.Builder
	b.WriteString("Here are the upcoming companies visiting campus:\n")
	for _, e := range employers {
		fmt.Fprintf(&b, "\n• **%s**: %s (%s), Deadline: %s", e.Name, e.Role, e.Package, e.Deadline)
	}
	return b.String()
}

var responses = map[Intent]string{
	IntentEligibility: "Eligibility varies by recruiter. Investment banks and top consulting firms usually shortlist at CGPA ≥ 7.5/10 (or ≥ 3.3/4.0), while most FMCG and banking roles accept ≥ 6.5/10 with no active backlogs. Check the Opportunities page for each company's exact criteria!",
	IntentFinance: "For finance roles (IB, equity research, corporate banking):\n\n" +
		"1. **Modelling**: Build a 3-statement model and a DCF from scratch\n" +
		"2. **Technicals**: Know EV vs equity value, WACC, and accretion/dilution cold\n" +
		"3. **Markets**: Track Mint / ET daily and be ready to pitch one stock\n" +
		"4. **Tools**: Advanced Excel and Bloomberg Market Concepts (BMC)",
	IntentMarketing: "For marketing and brand roles (FMCG, digital):\n\n" +
		"1. **Frameworks**: STP, 4Ps and brand audits\n" +
		"2. **Consumer insight**: Be ready to discuss a brand you admire and why\n" +
		"3. **Live projects**: Quantify campaign or GTM outcomes\n" +
		"4. **Digital**: Basics of Google Analytics and performance marketing",
	IntentCase: "Cracking case interviews:\n\n" +
		"1. **Structure**: Use MECE issue trees for profitability, market entry and growth cases\n" +
		"2. **Guesstimates**: Practise market sizing out loud with clear assumptions\n" +
		"3. **Volume**: Aim for 30+ live cases with batch-mates before shortlists\n" +
		"4. **Synthesis**: Always close with a crisp recommendation",
	IntentResume: "Resume tips for MBA placements:\n\n" +
		"• Keep it to one page with action-verb bullets and quantified impact (₹ or %)\n" +
		"• Put internships and PORs above academics\n" +
		"• Mirror keywords from the JD\n\n" +
		"Upload your resume in the **Resume Analyzer** for a section-wise score.",
	IntentPrepare: "Here's a preparation plan:\n\n" +
		"1. **Domain**: Finish the Preparation checklist for your target sector\n" +
		"2. **Cases**: Solve 3 mock cases a week\n" +
		"3. **Interview**: Do HR mocks using the STAR method\n" +
		"4. **Resume**: One page, every bullet quantified\n" +
		"5. **Current affairs**: 15 minutes of business news daily",
	IntentStatus: "You can track your application status on the **Dashboard**. Your applications show statuses like Applied, Interview Scheduled, Selected, or Rejected. Keep checking for updates!",
	IntentHelp: "I can help you with:\n\n" +
		"• 📋 **Upcoming companies**: type 'companies'\n" +
		"• ✅ **Eligibility criteria**: type 'eligibility'\n" +
		"• 💰 **Finance prep**: type 'finance'\n" +
		"• 📣 **Marketing prep**: type 'marketing'\n" +
		"• 🧩 **Case interviews**: type 'case'\n" +
		"• 📄 **Resume tips**: type 'resume'\n" +
		"• 📚 **How to prepare**: type 'prepare'\n" +
		"• 📊 **Application status**: type 'status'\n\n" +
		"Just ask me anything about placements!",
	IntentFallback: "I'm not sure about that, but I can help with upcoming companies, eligibility, finance or marketing prep, case interviews, resumes, or application status. Type **help** to see what I can do! 😊",
}
