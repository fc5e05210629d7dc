package placement

import "placement-workers/internal/models"

func SeedProfile() models.StudentProfile {
	return models.StudentProfile{
		Name:           "Bhawna Vig",
		Email:          "bhawna.vig@mba.edu",
		Branch:         "MBA – Finance & Marketing",
		Year:           "2nd Year",
		CGPA:           "8.3/10",
		Phone:          "+91 98765 43210",
		Skills:         []string{"Financial Modelling", "Excel", "Brand Management", "Case Analysis", "Market Research", "Power BI"},
		ResumeUploaded: true,
	}
}

func SeedApplications() []models.Application {
	return []models.Application{
		{ID: "a1", EmployerID: "1", EmployerName: "Goldman Sachs", Role: "Investment Banking Analyst", Status: models.StatusInterview, AppliedDate: "2026-02-15"},
		{ID: "a2", EmployerID: "4", EmployerName: "HDFC Bank", Role: "Management Trainee – Corporate Banking", Status: models.StatusApplied, AppliedDate: "2026-02-18"},
		{ID: "a3", EmployerID: "3", EmployerName: "Hindustan Unilever", Role: "Brand Manager Trainee", Status: models.StatusInterested, AppliedDate: "2026-02-20"},
	}
}

func SeedPrepTasks() []models.PrepTask {
	return []models.PrepTask{
		{ID: "t1", Title: "Build a 3-statement financial model in Excel (Income → Balance Sheet → Cash Flow)", Category: "Finance", Completed: true},
		{ID: "t2", Title: "Complete a DCF valuation for a listed mid-cap company", Category: "Finance"},
		{ID: "t3", Title: "Solve 10 financial ratio analysis questions (ROE, ROCE, EV/EBITDA)", Category: "Finance"},
		{ID: "t4", Title: "Read one company's Annual Report end-to-end and write a 1-page brief", Category: "Finance"},
		{ID: "t5", Title: "Design a Brand Plan: Audit → STP → 4Ps → KPIs for any FMCG brand", Category: "Marketing", Completed: true},
		{ID: "t6", Title: "Solve 5 FMCG case studies (declining sales, new product launch, pricing)", Category: "Marketing"},
		{ID: "t7", Title: "Study HUL & P&G Annual Reports and understand brand-wise revenue contribution", Category: "Marketing"},
		{ID: "t8", Title: "Learn consumer segmentation models: Psychographic, Behavioural, Demographic", Category: "Marketing"},
		{ID: "t9", Title: "Practice 20 consulting cases using MECE frameworks (McKinsey / BCG style)", Category: "Consulting", Completed: true},
		{ID: "t10", Title: "Complete Preplounge Beginner Case Level and get feedback", Category: "Consulting"},
		{ID: "t11", Title: "Prepare 6 STAR behavioural stories for leadership & impact questions", Category: "Consulting"},
		{ID: "t12", Title: "Develop a Business Model Canvas (BMC) for a startup idea", Category: "Entrepreneurship"},
		{ID: "t13", Title: "Conduct 10 customer discovery interviews and write key insights", Category: "Entrepreneurship"},
		{ID: "t14", Title: "Earn Google Analytics 4 (GA4) Certification from Skillshop", Category: "Digital Marketing"},
		{ID: "t15", Title: "Run a real Meta Ads or Google Ads campaign with even a ₹500 budget", Category: "Digital Marketing"},
		{ID: "t16", Title: "Read Economic Times or Mint for 15 minutes daily and track for 30 days", Category: "General", Completed: true},
		{ID: "t17", Title: "Update resume and quantify every bullet with an impact metric", Category: "General", Completed: true},
		{ID: "t18", Title: "Attend 2 alumni interaction sessions and follow up with LinkedIn notes", Category: "General"},
	}
}
