package readiness

import (
	"fmt"

	"placement-workers/internal/match"
)

var skillPool = []string{
	"Financial Modelling", "DCF Valuation", "Excel", "Excel (Advanced)",
	"PowerPoint", "PowerPoint (Pitch Decks)", "Bloomberg Terminal",
	"Credit Analysis", "Case Analysis", "Case Analysis (MECE)",
	"Brand Management", "Brand Management (STP / 4P)", "Consumer Insights",
	"Market Research", "Digital Marketing", "P&L Management",
	"SQL", "SQL / Data Analysis", "Power BI", "Power BI / Tableau",
	"Tableau", "Negotiation", "Macroeconomics", "Risk Management",
	"Portfolio Management", "Wealth Management", "Due Diligence",
	"Channel Sales & Distribution", "Supply Chain", "SAP",
	"Market Sizing", "Hypothesis-Driven Thinking",
}

// SkillPool returns the skills the coverage dimension is measured against.
func SkillPool() []string {
	return append([]string(nil), skillPool...)
}

// Dimensions returns the seven dimensions in display order. Slider inputs
// are snapped before use.
func Dimensions(m match.Matcher, in Input) []Dimension {
	dims := []Dimension{
		{
			Key: "resume", Label: "Resume Strength", Weight: WeightResume,
			Score:       SnapSlider(in.ResumeScore),
			Description: "Quality & impact of your MBA resume.",
			HowScored:   "Based on your self-assessment (use the Resume Analyzer tool for an objective score). Considers quantified impact bullets, format, ATS compatibility, and section completeness.",
			Tips: []string{
				"Lead every bullet with an action verb + quantified result (₹ or %).",
				"Run your resume through the Resume Analyzer in the sidebar for an objective ATS score.",
				"Tailor your resume to each job description and mirror their keywords.",
				"Get a senior friend or placement cell coordinator to review your draft.",
			},
		},
		{
			Key: "skills", Label: "Skills Coverage", Weight: WeightSkills,
			Score:       SkillsCoverage(m, in.Skills),
			Description: "Breadth of MBA-relevant skills you've declared.",
			HowScored: fmt.Sprintf("Auto-calculated: %d skills in your profile are matched against a pool of %d in-demand MBA skills. Add more skills in your profile to improve this score.",
				len(in.Skills), len(skillPool)),
			Tips: []string{
				"Add skills to your Profile page; the score updates automatically.",
				"Prioritise depth over breadth: 'Advanced Excel' beats 'MS Office'.",
				"Add certifications (CFA L1, Google Analytics, NISM) as skills.",
				"Use the Skill Gap Detector to see which skills matter most for your target companies.",
			},
		},
		{
			Key: "mock", Label: "Mock Interview", Weight: WeightMock,
			Score:       SnapSlider(in.MockScore),
			Description: "Your self-assessed mock interview performance.",
			HowScored:   "Enter your average score across case and HR mock interviews you've done. 0 = haven't practised, 100 = consistently cracking interviews with strong feedback.",
			Tips: []string{
				"Practise at least 3 mock cases per week on PrepLounge or with a batch-mate.",
				"Record yourself answering HR questions; body language matters as much as content.",
				"Join case interview prep clubs on campus and sign up for mock sessions.",
				"Use the STAR method for behavioural questions: Situation, Task, Action, Result.",
			},
		},
		{
			Key: "academic", Label: "Academic Performance", Weight: WeightAcademic,
			Score:       AcademicScore(ParseCGPA(in.CGPA)),
			Description: fmt.Sprintf("Auto-loaded from profile CGPA: %s", in.CGPA),
			HowScored:   "Your normalised CGPA (vs max) is converted to a placement-readiness scale. Top-tier recruiters like Goldman Sachs and McKinsey typically filter at ≥3.3/4.0 or ≥7.5/10.",
			Tips: []string{
				"If CGPA is borderline, build exceptional extra-curricular and project credentials to compensate.",
				"Highlight a strong upward CGPA trend if early semesters were weaker.",
				"Focus on domain-specific electives that are valued by your target sector (e.g. Derivatives for IB, CRM for Marketing).",
			},
		},
		{
			Key: "prep", Label: "Prep Progress", Weight: WeightPrep,
			Score:       PrepScore(in.TasksDone, in.TasksTotal),
			Description: fmt.Sprintf("%d of %d tasks done on the Preparation page.", in.TasksDone, in.TasksTotal),
			HowScored:   "Automatically computed from how many Preparation checklist tasks you've marked complete. Each completed task across Finance, Marketing, Consulting, and other domains contributes to this score.",
			Tips: []string{
				"Open the Preparation page and tick off tasks as you complete them.",
				"Focus on domain-specific tasks first; quality beats quantity.",
				"Set a weekly target: 2 tasks per domain per week leading up to placement season.",
			},
		},
		{
			Key: "applications", Label: "Application Activity", Weight: WeightApplications,
			Score:       ApplicationScore(in.Applications),
			Description: fmt.Sprintf("%d companies applied/tracked in the system.", in.Applications),
			HowScored:   "Based on how actively you're applying to placement opportunities. 0 applications = 10%, 1 = 40%, 2 = 65%, 3+ = 85%+. Tracking companies you're interested in also counts.",
			Tips: []string{
				"Apply to at least 5-6 companies across sectors to keep your options open.",
				"Don't wait for 'perfect' readiness; apply and prepare simultaneously.",
				"Track every company in the Opportunities page to monitor deadlines.",
			},
		},
		{
			Key: "extra", Label: "Leadership & Extra-curriculars", Weight: WeightExtra,
			Score:       SnapSlider(in.ExtraScore),
			Description: "Clubs, PORs, competitions, and case contests.",
			HowScored:   "Self-assessed score for positions of responsibility, case competition wins, club leadership, and campus initiatives. These are critical differentiators at the shortlisting stage.",
			Tips: []string{
				"Hold a POR (club head, fest coordinator, committee lead) and document the scale (e.g. team of 20, 500 attendees).",
				"Participate in national case competitions; wins and even participation boost your profile.",
				"Add leadership stories to your resume bullets with measurable outcomes.",
				"Volunteering and CSR roles at scale (district/national) also count strongly.",
			},
		},
	}

	for i := range dims {
		dims[i].Grade = Grade(dims[i].Score)
	}
	return dims
}
