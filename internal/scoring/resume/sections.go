package resume

var sectionRules = []sectionRule{
	{
		key: "work-experience", label: "Work Experience",
		base: 14, mult: 2, max: 25, threshold: 3,
		below: []string{
			"Lead each bullet with a strong action verb: 'Managed', 'Drove', 'Delivered', 'Restructured'.",
			"Quantify every impact, e.g. '₹12 Cr revenue generated', 'Cost reduced by 18%'.",
			"Mention cross-functional leadership, team size, and stakeholder levels.",
		},
		atOrOver: []string{
			"Highlight P&L responsibility or budget ownership explicitly.",
			"Show progression: promotions, expanded scope, or additional responsibilities.",
		},
	},
	{
		key: "internships", label: "MBA Internships",
		base: 11, mult: 2, max: 25, threshold: 3,
		below: []string{
			"State the company, role, duration, and the business problem you solved.",
			"Include your key deliverable and the outcome in one line: 'Built a GTM strategy → 25% faster launch'.",
			"Mention tools/frameworks used: DCF, STP, MECE, SAP, Excel, Power BI.",
		},
		atOrOver: []string{
			"Distinguish your individual contribution from team output.",
			"Add a one-line recommendation or award if received.",
		},
	},
	{
		key: "academic-projects", label: "Academic Projects",
		base: 10, mult: 2, max: 20, threshold: 3,
		below: []string{
			"Frame every project as: Problem → Approach → Outcome.",
			"Mention the dataset or company studied (e.g. 'HUL brand equity study, sample n=200').",
			"Include relevant tools: R, SPSS, Tableau, Excel, Python for analytics projects.",
		},
		atOrOver: []string{
			"Highlight any publication, competition win, or faculty recognition.",
			"Add a GitHub / report link if the project is publicly accessible.",
		},
	},
	{
		key: "skills", label: "Skills & Certifications",
		base: 8, mult: 1, max: 15, threshold: 4,
		below: []string{
			"Group skills: Finance Tools (Excel, Bloomberg, Tally), Analytics (Power BI, Tableau, SQL), Soft (Negotiation, Facilitation).",
			"Add certifications: CFA Level 1, Google Analytics, Bloomberg Market Concepts (BMC), Six Sigma.",
			"Remove generic skills like 'MS Office' unless they are advanced (e.g. Advanced Excel / VBA).",
		},
		atOrOver: []string{
			"List language proficiency (IELTS / TOEFL score if applicable for global roles).",
		},
	},
	{
		key: "leadership", label: "Leadership & Achievements",
		base: 8, mult: 1, max: 15, threshold: 3,
		below: []string{
			"Include positions of responsibility: Club president, Fest coordinator, Committee head.",
			"Add case competition wins, scholarships, national-level ranks, or paper presentations.",
			"Format: 'Position, Organisation | Outcome or scale (e.g. 500 participants managed)'.",
		},
		atOrOver: []string{
			"Add volunteer work or CSR initiatives with measurable impact.",
			"Mention star ratings, Dean's List, or merit scholarships.",
		},
	},
}

var generalSuggestions = []string{
	"Use a clean, single-column layout and avoid tables, text boxes, and graphics for ATS compatibility.",
	"Tailor your resume to each JD: mirror keywords like 'P&L ownership', 'GTM strategy', 'credit analysis'.",
	"Keep it to one page for under 5 years of experience; two pages max for 5+ years.",
	"Use a consistent date format throughout (e.g. Jun 2023 - Aug 2023).",
	"Have a crisp Profile Summary (3-4 lines) at the top highlighting your specialisation, sector preference, and top achievement.",
}
