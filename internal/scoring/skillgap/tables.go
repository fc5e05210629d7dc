package skillgap

import "placement-workers/internal/models"

var resources = map[string][]models.LearningResource{
	"Financial Modelling": {
		{Title: "Financial Modelling & Valuation Analyst (FMVA)", Platform: "CFI", URL: "https://corporatefinanceinstitute.com", Free: false, Duration: "6–8 weeks"},
		{Title: "Excel Financial Modelling Bootcamp", Platform: "Udemy", URL: "https://udemy.com", Free: false, Duration: "12 hrs"},
		{Title: "WSP Financial Modelling Course", Platform: "Wall Street Prep", URL: "https://wallstreetprep.com", Free: false, Duration: "8 weeks"},
	},
	"DCF Valuation": {
		{Title: "DCF Valuation – Step by Step", Platform: "Aswath Damodaran (NYU)", URL: "https://pages.stern.nyu.edu/~adamodar", Free: true, Duration: "Self-paced"},
		{Title: "Equity Valuation & Analysis", Platform: "Coursera", URL: "https://coursera.org", Free: false, Duration: "4 weeks"},
	},
	"Excel (Advanced)": {
		{Title: "Excel Skills for Business Specialization", Platform: "Coursera / Macquarie", URL: "https://coursera.org", Free: false, Duration: "6 weeks"},
		{Title: "Advanced Excel – Pivot, VBA, Power Query", Platform: "Udemy", URL: "https://udemy.com", Free: false, Duration: "10 hrs"},
	},
	"Bloomberg Terminal": {
		{Title: "Bloomberg Market Concepts (BMC)", Platform: "Bloomberg", URL: "https://learn.bloomberg.com/online/course/bloomberg-market-concepts", Free: false, Duration: "8 hrs"},
		{Title: "BMC Free Trial via College Portal", Platform: "Bloomberg", URL: "https://learn.bloomberg.com", Free: true, Duration: "Self-paced"},
	},
	"Credit Analysis": {
		{Title: "Credit Analysis & Lending – Certificate", Platform: "IIBF", URL: "https://iibf.org.in", Free: false, Duration: "3 months"},
		{Title: "Credit Risk Modelling", Platform: "CFI", URL: "https://corporatefinanceinstitute.com", Free: false, Duration: "4 weeks"},
	},
	"PowerPoint (Pitch Decks)": {
		{Title: "Business Communication & Presentations", Platform: "LinkedIn Learning", URL: "https://linkedin.com/learning", Free: false, Duration: "5 hrs"},
		{Title: "McKinsey Presentation Techniques", Platform: "YouTube – Ex-McKinsey Explains", URL: "https://youtube.com", Free: true, Duration: "2 hrs"},
	},
	"Case Analysis (MECE)": {
		{Title: "Case Interview Secrets – Victor Cheng", Platform: "CaseInterview.com", URL: "https://caseinterview.com", Free: false, Duration: "Self-paced"},
		{Title: "PrepLounge – 1600+ Practice Cases", Platform: "PrepLounge", URL: "https://preplounge.com", Free: false, Duration: "Ongoing"},
		{Title: "Case in Point (8th Ed.) – Book", Platform: "Amazon / Flipkart", URL: "https://amazon.in", Free: false, Duration: "Self-paced"},
	},
	"Hypothesis-Driven Thinking": {
		{Title: "Structured Thinking for Consultants", Platform: "Coursera / Duke", URL: "https://coursera.org", Free: false, Duration: "3 weeks"},
		{Title: "MECE Framework Deep Dive", Platform: "YouTube – McKinsey Alumni", URL: "https://youtube.com", Free: true, Duration: "3 hrs"},
	},
	"Market Sizing": {
		{Title: "Market Sizing Masterclass", Platform: "PrepLounge", URL: "https://preplounge.com", Free: false, Duration: "2 hrs"},
		{Title: "Guesstimate Practice Problems", Platform: "CaseInterviewMath.com", URL: "https://caseinterviewmath.com", Free: true, Duration: "Self-paced"},
	},
	"Brand Management (STP / 4P)": {
		{Title: "Marketing Management – Kotler (Book)", Platform: "Pearson", URL: "https://pearson.com", Free: false, Duration: "Self-paced"},
		{Title: "Brand Management – HSM Certification", Platform: "IIMA / MICA", URL: "https://iima.ac.in", Free: false, Duration: "8 weeks"},
	},
	"Consumer Insights": {
		{Title: "Consumer Behaviour – IIM Bangalore", Platform: "edX", URL: "https://edx.org", Free: false, Duration: "6 weeks"},
		{Title: "Nielsen / KANTAR Market Reports", Platform: "Nielsen IQ", URL: "https://nielseniq.com", Free: true, Duration: "Self-paced"},
	},
	"Digital Marketing": {
		{Title: "Google Digital Garage – Fundamentals", Platform: "Google", URL: "https://learndigital.withgoogle.com", Free: true, Duration: "40 hrs"},
		{Title: "Meta Blueprint – Facebook Ads", Platform: "Meta", URL: "https://facebook.com/business/learn", Free: true, Duration: "Self-paced"},
	},
	"Market Research": {
		{Title: "Marketing Analytics Specialization", Platform: "Coursera / UVA", URL: "https://coursera.org", Free: false, Duration: "5 weeks"},
		{Title: "SPSS / R for Market Research", Platform: "Udemy", URL: "https://udemy.com", Free: false, Duration: "8 hrs"},
	},
	"Channel Sales & Distribution": {
		{Title: "Sales Management Certification", Platform: "XLRI Online", URL: "https://xlri.ac.in", Free: false, Duration: "6 weeks"},
		{Title: "Trade Marketing & Distribution", Platform: "LinkedIn Learning", URL: "https://linkedin.com/learning", Free: false, Duration: "4 hrs"},
	},
	"Wealth Management": {
		{Title: "NISM Series V-A – Mutual Fund Distributor", Platform: "NISM", URL: "https://www.nism.ac.in", Free: false, Duration: "40 hrs"},
		{Title: "CFA Level 1 – Portfolio Management", Platform: "CFA Institute", URL: "https://cfainstitute.org", Free: false, Duration: "6 months"},
	},
	"Portfolio Management": {
		{Title: "Investment Management – Wharton", Platform: "Coursera", URL: "https://coursera.org", Free: false, Duration: "5 weeks"},
		{Title: "CFA Institute Free eBooks", Platform: "CFA Institute", URL: "https://cfainstitute.org", Free: true, Duration: "Self-paced"},
	},
	"Financial Statement Analysis": {
		{Title: "Financial Accounting – HarvardX", Platform: "edX", URL: "https://edx.org", Free: false, Duration: "10 weeks"},
		{Title: "Understanding Financial Statements", Platform: "CFI (Free)", URL: "https://corporatefinanceinstitute.com", Free: true, Duration: "3 hrs"},
	},
	"Due Diligence": {
		{Title: "M&A and Deal Structuring", Platform: "CFI", URL: "https://corporatefinanceinstitute.com", Free: false, Duration: "4 weeks"},
		{Title: "Financial Due Diligence – Deloitte Guide", Platform: "Deloitte Insights", URL: "https://deloitte.com", Free: true, Duration: "Self-paced"},
	},
	"Risk Management": {
		{Title: "FRM Part 1 Prep", Platform: "Bionic Turtle", URL: "https://bionicturtle.com", Free: false, Duration: "3 months"},
		{Title: "Risk Management Essentials", Platform: "Coursera / NYU", URL: "https://coursera.org", Free: false, Duration: "4 weeks"},
	},
	"P&L Management": {
		{Title: "Finance for Non-Finance Managers", Platform: "LinkedIn Learning", URL: "https://linkedin.com/learning", Free: false, Duration: "6 hrs"},
		{Title: "Business Finance – Khan Academy", Platform: "Khan Academy", URL: "https://khanacademy.org", Free: true, Duration: "Self-paced"},
	},
	"SQL / Data Analysis": {
		{Title: "SQL for Data Analysis", Platform: "Mode / free online", URL: "https://mode.com/sql-tutorial", Free: true, Duration: "10 hrs"},
		{Title: "Google Data Analytics Certificate", Platform: "Coursera / Google", URL: "https://coursera.org", Free: false, Duration: "6 months"},
	},
	"Power BI / Tableau": {
		{Title: "Power BI – Microsoft Learn", Platform: "Microsoft", URL: "https://learn.microsoft.com", Free: true, Duration: "8 hrs"},
		{Title: "Tableau Desktop Specialist", Platform: "Tableau / Udemy", URL: "https://udemy.com", Free: false, Duration: "10 hrs"},
	},
	"Negotiation": {
		{Title: "Successful Negotiation – Coursera / Michigan", Platform: "Coursera", URL: "https://coursera.org", Free: false, Duration: "4 weeks"},
		{Title: "Negotiation Masterclass – Chris Voss", Platform: "MasterClass", URL: "https://masterclass.com", Free: false, Duration: "3 hrs"},
	},
	"Macroeconomics": {
		{Title: "Principles of Macroeconomics – Khan Academy", Platform: "Khan Academy", URL: "https://khanacademy.org", Free: true, Duration: "Self-paced"},
		{Title: "Economic Policy & Current Affairs – ET", Platform: "Economic Times", URL: "https://economictimes.com", Free: true, Duration: "Daily"},
	},
}

var requirements = map[string]EmployerRequirements{
	"1": {
		RoleContext: "You'll work on live M&A deals, IPOs, and debt capital markets. Technical finance skills and Excel fluency are non-negotiable.",
		RequiredSkills: []models.RequiredSkill{
			{Skill: "Financial Modelling", Priority: models.PriorityCritical, Description: "Build 3-statement models, LBO, and M&A merger models from scratch."},
			{Skill: "DCF Valuation", Priority: models.PriorityCritical, Description: "Discounted Cash Flow analysis for company valuation in pitches and live deals."},
			{Skill: "Excel (Advanced)", Priority: models.PriorityCritical, Description: "Advanced Excel — shortcuts, formulas, model auditing, and sensitivity tables."},
			{Skill: "Bloomberg Terminal", Priority: models.PriorityImportant, Description: "Pulling market data, comps, and bond pricing for deals and presentations."},
			{Skill: "PowerPoint (Pitch Decks)", Priority: models.PriorityImportant, Description: "Build boardroom-ready pitch books and management presentations."},
			{Skill: "Financial Statement Analysis", Priority: models.PriorityImportant, Description: "Analysing P&L, Balance Sheet, and Cash Flow for target companies."},
			{Skill: "Macroeconomics", Priority: models.PriorityGoodToHave, Description: "Awareness of interest rates, monetary policy, and macro indicators affecting deals."},
			{Skill: "Negotiation", Priority: models.PriorityGoodToHave, Description: "Effective negotiation in client interactions and deal team dynamics."},
		},
	},
	"2": {
		RoleContext: "You'll solve complex business problems for C-suite clients. Structured thinking, communication, and data-driven storytelling are the core competencies.",
		RequiredSkills: []models.RequiredSkill{
			{Skill: "Case Analysis (MECE)", Priority: models.PriorityCritical, Description: "Mutually exclusive, collectively exhaustive problem structuring for client case interviews."},
			{Skill: "Hypothesis-Driven Thinking", Priority: models.PriorityCritical, Description: "Start with a hypothesis, test it with data, and synthesise insights."},
			{Skill: "Market Sizing", Priority: models.PriorityCritical, Description: "Estimate market size and business metrics through structured guesstimates."},
			{Skill: "PowerPoint (Pitch Decks)", Priority: models.PriorityImportant, Description: "Consulting decks follow the Pyramid Principle — top-down, insight-led."},
			{Skill: "Excel (Advanced)", Priority: models.PriorityImportant, Description: "Build financial and operations models to back up strategic recommendations."},
			{Skill: "SQL / Data Analysis", Priority: models.PriorityImportant, Description: "Query and analyse large datasets to extract business insights."},
			{Skill: "Macroeconomics", Priority: models.PriorityGoodToHave, Description: "Macro context informs strategy recommendations in economic consulting cases."},
		},
	},
	"3": {
		RoleContext: "You'll own a brand's P&L, lead consumer insights, and execute GTM campaigns. Brand thinking and consumer empathy are your most important tools.",
		RequiredSkills: []models.RequiredSkill{
			{Skill: "Brand Management (STP / 4P)", Priority: models.PriorityCritical, Description: "Segmentation, targeting, positioning, and the 4P marketing mix for brand strategy."},
			{Skill: "Consumer Insights", Priority: models.PriorityCritical, Description: "Primary research, focus groups, NPS, and translating data into brand decisions."},
			{Skill: "P&L Management", Priority: models.PriorityCritical, Description: "Manage a brand's profit & loss — revenue, COGS, A&P spend, and margins."},
			{Skill: "Market Research", Priority: models.PriorityImportant, Description: "Quantitative & qualitative research to size opportunities and validate campaigns."},
			{Skill: "Digital Marketing", Priority: models.PriorityImportant, Description: "Plan and execute brand campaigns across digital channels with measurable ROI."},
			{Skill: "Case Analysis (MECE)", Priority: models.PriorityImportant, Description: "Structured approach to FMCG case interviews: declining sales, pricing, launches."},
			{Skill: "Power BI / Tableau", Priority: models.PriorityGoodToHave, Description: "Dashboard-driven tracking of brand KPIs, market share, and campaign ROI."},
		},
	},
	"4": {
		RoleContext: "You'll manage corporate client relationships, assess credit proposals, and oversee working capital solutions. Financial acumen and relationship skills are key.",
		RequiredSkills: []models.RequiredSkill{
			{Skill: "Credit Analysis", Priority: models.PriorityCritical, Description: "Assess creditworthiness through financial ratio analysis and cash flow projections."},
			{Skill: "Financial Statement Analysis", Priority: models.PriorityCritical, Description: "Read and interpret P&L, Balance Sheet, and Cash Flow for lending decisions."},
			{Skill: "Excel (Advanced)", Priority: models.PriorityImportant, Description: "Build credit models, cash flow projections, and loan repayment schedules."},
			{Skill: "Risk Management", Priority: models.PriorityImportant, Description: "Identify, quantify, and mitigate credit, market, and operational risks."},
			{Skill: "Macroeconomics", Priority: models.PriorityImportant, Description: "RBI policy changes, inflation, and liquidity directly impact corporate banking decisions."},
			{Skill: "Negotiation", Priority: models.PriorityImportant, Description: "Structure loan terms and pricing with corporate treasury and finance heads."},
			{Skill: "PowerPoint (Pitch Decks)", Priority: models.PriorityGoodToHave, Description: "Present credit proposals and relationship reviews to internal credit committees."},
		},
	},
	"5": {
		RoleContext: "You'll advise on M&A transactions, financial restructuring, and risk. Both consulting thinking and financial depth are valued.",
		RequiredSkills: []models.RequiredSkill{
			{Skill: "Due Diligence", Priority: models.PriorityCritical, Description: "Financial, tax, and commercial due diligence for M&A and restructuring mandates."},
			{Skill: "Financial Modelling", Priority: models.PriorityCritical, Description: "Build deal models, synergy assessments, and integration financial models."},
			{Skill: "Case Analysis (MECE)", Priority: models.PriorityImportant, Description: "Structured problem-solving for client advisory — same as consulting case approach."},
			{Skill: "Risk Management", Priority: models.PriorityImportant, Description: "Identify financial, operational, and compliance risks in target companies."},
			{Skill: "Financial Statement Analysis", Priority: models.PriorityImportant, Description: "Deep-dive into target company financials to identify red flags and value drivers."},
			{Skill: "PowerPoint (Pitch Decks)", Priority: models.PriorityImportant, Description: "Build client-ready reports, findings decks, and proposal presentations."},
			{Skill: "Excel (Advanced)", Priority: models.PriorityImportant, Description: "Audit financial models, build trackers, and analyse large datasets."},
			{Skill: "SQL / Data Analysis", Priority: models.PriorityGoodToHave, Description: "Extract and analyse financial data from ERP systems during due diligence."},
		},
	},
	"6": {
		RoleContext: "You'll own a brand's P&L from day one. P&G values leaders who think like owners — consumer-first, data-driven, and execution-focused.",
		RequiredSkills: []models.RequiredSkill{
			{Skill: "Brand Management (STP / 4P)", Priority: models.PriorityCritical, Description: "Define brand strategy, target segments, and execute multi-channel brand plans."},
			{Skill: "P&L Management", Priority: models.PriorityCritical, Description: "Own trade spends, A&P budgets, and top/bottom line performance."},
			{Skill: "Consumer Insights", Priority: models.PriorityCritical, Description: "Develop deep consumer understanding through qual and quant research."},
			{Skill: "Digital Marketing", Priority: models.PriorityImportant, Description: "Lead brand's digital presence — social, search, influencer, and performance marketing."},
			{Skill: "Market Research", Priority: models.PriorityImportant, Description: "Syndicate research, brand health trackers, and usage & attitude studies."},
			{Skill: "Case Analysis (MECE)", Priority: models.PriorityImportant, Description: "Structured case interviews are central to P&G's assessment centre process."},
			{Skill: "Negotiation", Priority: models.PriorityGoodToHave, Description: "Trade and channel negotiations with key accounts and modern trade partners."},
		},
	},
	"7": {
		RoleContext: "You'll manage HNI and ultra-HNI wealth portfolios. Investment knowledge, client communication, and regulatory awareness are essential.",
		RequiredSkills: []models.RequiredSkill{
			{Skill: "Wealth Management", Priority: models.PriorityCritical, Description: "Construct and manage multi-asset portfolios for high-net-worth clients."},
			{Skill: "Portfolio Management", Priority: models.PriorityCritical, Description: "Asset allocation, risk-return optimisation, and rebalancing strategies."},
			{Skill: "Financial Statement Analysis", Priority: models.PriorityImportant, Description: "Evaluate equity and fixed-income instruments through fundamentals."},
			{Skill: "DCF Valuation", Priority: models.PriorityImportant, Description: "Intrinsic value estimation for equity recommendations to clients."},
			{Skill: "Risk Management", Priority: models.PriorityImportant, Description: "Understand client risk profiles and manage downside exposure."},
			{Skill: "Macroeconomics", Priority: models.PriorityImportant, Description: "Macro indicators shape asset class calls and portfolio tilt decisions."},
			{Skill: "Negotiation", Priority: models.PriorityGoodToHave, Description: "Retain and grow client AUM through effective relationship management."},
		},
	},
	"8": {
		RoleContext: "You'll manage a region's P&L, drive distributor ROI, and lead a team of sales representatives. Execution and field leadership are prized.",
		RequiredSkills: []models.RequiredSkill{
			{Skill: "Channel Sales & Distribution", Priority: models.PriorityCritical, Description: "Manage GT/MT channels, distributor networks, and last-mile penetration."},
			{Skill: "P&L Management", Priority: models.PriorityCritical, Description: "Responsible for territory revenue, volume targets, and trade spend efficiency."},
			{Skill: "Market Research", Priority: models.PriorityImportant, Description: "Conduct market visits, outlet surveys, and share-of-shelf analysis."},
			{Skill: "Negotiation", Priority: models.PriorityImportant, Description: "Negotiate shelf space, promotions, and margins with key accounts and distributors."},
			{Skill: "Brand Management (STP / 4P)", Priority: models.PriorityImportant, Description: "Translate national brand strategy into local market execution plans."},
			{Skill: "Excel (Advanced)", Priority: models.PriorityGoodToHave, Description: "MIS reporting, territory performance dashboards, and distributor claim management."},
			{Skill: "Power BI / Tableau", Priority: models.PriorityGoodToHave, Description: "Build regional sales dashboards for area review meetings."},
		},
	},
}
