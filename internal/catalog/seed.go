package catalog

import "placement-workers/internal/models"

// SeedEmployers returns the campus employers a fresh catalog starts with.
func SeedEmployers() []models.Employer {
	return []models.Employer{
		{
			ID: "1", Name: "Goldman Sachs", Logo: "GS", Role: "Investment Banking Analyst", Package: "₹28 LPA",
			Eligibility: "MBA Finance, CGPA ≥ 3.5/4.0", Deadline: "2026-03-05", Type: "Investment Bank",
			Location: "Mumbai", Description: "Work on M&A deals, IPOs, and capital market transactions for Fortune 500 clients.",
		},
		{
			ID: "2", Name: "McKinsey & Company", Logo: "MC", Role: "Business Analyst", Package: "₹32 LPA",
			Eligibility: "MBA (Any Specialisation), CGPA ≥ 3.3/4.0", Deadline: "2026-03-10", Type: "Consulting",
			Location: "Delhi / Mumbai", Description: "Drive strategic transformations for leading corporations and governments.",
		},
		{
			ID: "3", Name: "Hindustan Unilever", Logo: "HU", Role: "Brand Manager Trainee", Package: "₹24 LPA",
			Eligibility: "MBA Marketing / Finance, CGPA ≥ 3.0/4.0", Deadline: "2026-03-02", Type: "FMCG",
			Location: "Mumbai", Description: "Lead brand strategy, consumer insights, and go-to-market plans for iconic HUL brands.",
		},
		{
			ID: "4", Name: "HDFC Bank", Logo: "HD", Role: "Management Trainee – Corporate Banking", Package: "₹14 LPA",
			Eligibility: "MBA Finance, CGPA ≥ 3.0/4.0", Deadline: "2026-03-20", Type: "Banking",
			Location: "Pan India", Description: "Manage corporate client relationships, credit analysis, and treasury operations.",
		},
		{
			ID: "5", Name: "Deloitte", Logo: "DL", Role: "Consultant – Financial Advisory", Package: "₹18 LPA",
			Eligibility: "MBA Finance / Strategy, All Specialisations", Deadline: "2026-03-15", Type: "Consulting",
			Location: "Bangalore / Hyderabad", Description: "Deliver financial due diligence, restructuring, and risk advisory services.",
		},
		{
			ID: "6", Name: "P&G India", Logo: "PG", Role: "Assistant Brand Manager", Package: "₹22 LPA",
			Eligibility: "MBA Marketing, CGPA ≥ 3.2/4.0", Deadline: "2026-03-08", Type: "FMCG",
			Location: "Mumbai", Description: "Own the P&L of a brand, drive digital marketing, and lead cross-functional teams.",
		},
		{
			ID: "7", Name: "Kotak Mahindra Bank", Logo: "KM", Role: "Associate – Wealth Management", Package: "₹16 LPA",
			Eligibility: "MBA Finance, CGPA ≥ 3.0/4.0", Deadline: "2026-03-12", Type: "Banking",
			Location: "Mumbai / Pune", Description: "Manage HNI portfolios, conduct financial planning, and grow assets under management.",
		},
		{
			ID: "8", Name: "Nestlé India", Logo: "NE", Role: "Area Sales Manager", Package: "₹15 LPA",
			Eligibility: "MBA Marketing / Rural Management", Deadline: "2026-03-18", Type: "FMCG",
			Location: "Pan India", Description: "Drive channel sales, distributor networks, and market penetration for Nestlé products.",
		},
	}
}
