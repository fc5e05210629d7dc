package careerpath

var profiles = []Profile{
	{
		ID:          "investment-banking",
		Title:       "Investment Banking",
		Description: "Advise corporations and governments on M&A deals, IPOs, capital raising, and financial restructuring.",
		KeySkills: []string{
			"financial modelling", "dcf", "valuation", "excel", "powerpoint", "m&a", "lbo", "ipo",
			"capital markets", "equity research", "accounting", "balance sheet", "p&l", "cash flow",
			"ratios", "bloomberg", "pitch deck",
		},
		RoleKeywords: []string{
			"investment banking", "ib", "m&a", "deal", "capital", "equity", "debt", "restructuring", "ipo",
			"underwriting", "leveraged buyout",
		},
		InterestKeywords: []string{
			"finance", "deals", "mergers", "investment banking", "capital markets", "wall street",
			"stock market", "financial analysis", "corporate finance",
		},
		Companies: []Company{
			{Name: "Goldman Sachs", Tier: "Tier 1", Domain: "Bulge Bracket Bank"},
			{Name: "Morgan Stanley", Tier: "Tier 1", Domain: "Bulge Bracket Bank"},
			{Name: "JPMorgan Chase", Tier: "Tier 1", Domain: "Bulge Bracket Bank"},
			{Name: "Kotak Investment Banking", Tier: "Tier 2", Domain: "Indian IB"},
			{Name: "IIFL Capital", Tier: "Tier 2", Domain: "Indian IB"},
			{Name: "Axis Capital", Tier: "Tier 2", Domain: "Indian IB"},
			{Name: "SBI Capital Markets", Tier: "Tier 3", Domain: "PSU/ Mid-Market"},
		},
		Roles: []string{
			"Investment Banking Analyst", "M&A Associate", "Capital Markets Analyst", "ECM/DCM Analyst",
			"Coverage Banker",
		},
		Roadmap: []string{
			"Master 3-statement financial modelling (Excel)",
			"Learn DCF, Comparable Companies, Precedent Transactions",
			"Complete a live deal internship at a bank or boutique",
			"Build a deal tracker portfolio with real transaction tearsheets",
			"Nail technical IB interviews: accounting, valuation, M&A math",
		},
	},
	{
		ID:          "consulting",
		Title:       "Management Consulting",
		Description: "Help top executives solve complex strategic, operational, and organisational problems.",
		KeySkills: []string{
			"case analysis", "case interview", "problem solving", "strategy", "mece", "frameworks",
			"data analysis", "excel", "powerpoint", "communication", "market entry", "profitability",
			"bcg matrix", "porter", "swot", "hypothesis", "guesstimate", "market sizing",
		},
		RoleKeywords: []string{
			"consulting", "strategy", "case", "advisory", "management", "operations", "transformation",
			"restructuring", "due diligence",
		},
		InterestKeywords: []string{
			"consulting", "strategy", "business problem solving", "management consulting", "case studies",
			"mckinsey", "bcg", "bain", "leadership", "organisational change",
		},
		Companies: []Company{
			{Name: "McKinsey & Company", Tier: "Tier 1", Domain: "MBB Consulting"},
			{Name: "Boston Consulting Group", Tier: "Tier 1", Domain: "MBB Consulting"},
			{Name: "Bain & Company", Tier: "Tier 1", Domain: "MBB Consulting"},
			{Name: "Deloitte Consulting", Tier: "Tier 2", Domain: "Big 4 Consulting"},
			{Name: "EY-Parthenon", Tier: "Tier 2", Domain: "Big 4 Strategy"},
			{Name: "Kearney", Tier: "Tier 2", Domain: "Strategy Consulting"},
			{Name: "KPMG Advisory", Tier: "Tier 3", Domain: "Big 4 Advisory"},
		},
		Roles: []string{
			"Business Analyst", "Strategy Consultant", "Associate Consultant", "Operations Consultant",
			"Digital Transformation Advisor",
		},
		Roadmap: []string{
			"Solve 50+ consulting cases using MECE frameworks",
			"Practice guesstimates & market sizing daily",
			"Read Case in Point (Cosentino) and Victor Cheng LOMS",
			"Develop 5–6 strong leadership & STAR stories",
			"Apply early for off-campus & PPO consulting internships",
		},
	},
	{
		ID:          "brand-management",
		Title:       "Brand & Marketing Management",
		Description: "Drive brand strategy, consumer insights, product launches, and P&L ownership for top consumer brands.",
		KeySkills: []string{
			"brand management", "stp", "4p", "7p", "consumer behaviour", "market research",
			"digital marketing", "gtm", "go-to-market", "p&l", "advertising", "campaign", "fmcg",
			"media planning", "nps", "brand equity", "product launch", "pricing strategy",
		},
		RoleKeywords: []string{
			"brand", "marketing", "fmcg", "consumer", "campaign", "product launch", "category management",
			"trade marketing", "digital", "social media",
		},
		InterestKeywords: []string{
			"marketing", "brand building", "advertising", "consumer behaviour", "fmcg", "digital marketing",
			"social media", "product launch", "brand strategy",
		},
		Companies: []Company{
			{Name: "Hindustan Unilever", Tier: "Tier 1", Domain: "FMCG Giant"},
			{Name: "Procter & Gamble", Tier: "Tier 1", Domain: "FMCG Giant"},
			{Name: "Nestlé India", Tier: "Tier 1", Domain: "FMCG / Food"},
			{Name: "ITC Limited", Tier: "Tier 2", Domain: "Diversified FMCG"},
			{Name: "Marico", Tier: "Tier 2", Domain: "FMCG / Personal Care"},
			{Name: "Dabur India", Tier: "Tier 2", Domain: "FMCG / Ayurveda"},
			{Name: "Emami", Tier: "Tier 3", Domain: "FMCG / Healthcare"},
		},
		Roles: []string{
			"Assistant Brand Manager", "Brand Manager", "Category Manager", "Product Manager",
			"Trade Marketing Manager",
		},
		Roadmap: []string{
			"Study STP, 4Ps, brand equity frameworks deeply",
			"Complete a brand management or marketing analytics course",
			"Build a mock brand plan for a real brand (as a project)",
			"Develop skills in Google Analytics, social listening tools",
			"Ace marketing case interviews: declining sales, new launch, pricing",
		},
	},
	{
		ID:          "banking-finance",
		Title:       "Corporate & Retail Banking",
		Description: "Manage corporate credit, retail lending, treasury, and wealth management for top Indian and global banks.",
		KeySkills: []string{
			"credit analysis", "banking", "loans", "risk management", "treasury", "npa", "balance sheet",
			"ratio analysis", "working capital", "trade finance", "wealth management",
			"portfolio management", "aum", "regulatory", "rbi guidelines", "excel", "financial statements",
		},
		RoleKeywords: []string{
			"banking", "credit", "treasury", "wealth management", "retail banking", "corporate banking",
			"relationship management", "lending", "npa", "risk",
		},
		InterestKeywords: []string{
			"banking", "finance", "credit", "lending", "wealth management", "treasury", "financial markets",
			"risk", "insurance", "corporate finance",
		},
		Companies: []Company{
			{Name: "HDFC Bank", Tier: "Tier 1", Domain: "Private Bank"},
			{Name: "ICICI Bank", Tier: "Tier 1", Domain: "Private Bank"},
			{Name: "Axis Bank", Tier: "Tier 2", Domain: "Private Bank"},
			{Name: "Kotak Mahindra Bank", Tier: "Tier 2", Domain: "Private Bank"},
			{Name: "Yes Bank", Tier: "Tier 2", Domain: "Private Bank"},
			{Name: "State Bank of India", Tier: "Tier 3", Domain: "PSU Bank"},
			{Name: "Bank of Baroda", Tier: "Tier 3", Domain: "PSU Bank"},
		},
		Roles: []string{
			"Management Trainee – Credit", "Relationship Manager", "Treasury Analyst", "Wealth Manager",
			"Credit Analyst",
		},
		Roadmap: []string{
			"Revise financial ratios, NPA norms, and RBI guidelines",
			"Learn credit appraisal and working capital assessment",
			"Build a mock credit memo for a mid-size company",
			"Prepare for GD/PI on current economic topics (RBI policy, inflation)",
			"Study NISM / CFA Level 1 for Wealth Management track",
		},
	},
	{
		ID:          "equity-research",
		Title:       "Equity Research & Asset Management",
		Description: "Analyse listed companies, build investment theses, and manage equity/debt portfolios for investors.",
		KeySkills: []string{
			"equity research", "stock analysis", "fundamental analysis", "technical analysis",
			"financial modelling", "dcf", "bloomberg", "screener", "sector research", "portfolio management",
			"mutual fund", "aum", "pe", "ev/ebitda", "buy-side", "sell-side", "cfa", "excel",
		},
		RoleKeywords: []string{
			"equity research", "research analyst", "portfolio", "investment", "buy-side", "sell-side",
			"fund management", "asset management", "mutual fund",
		},
		InterestKeywords: []string{
			"stock market", "equity research", "investing", "financial markets", "portfolio", "mutual funds",
			"cfa", "fundamental analysis", "asset management",
		},
		Companies: []Company{
			{Name: "Motilal Oswal", Tier: "Tier 1", Domain: "Broking / Research"},
			{Name: "ICICI Direct", Tier: "Tier 2", Domain: "Broking / Research"},
			{Name: "HDFC Securities", Tier: "Tier 2", Domain: "Broking / Research"},
			{Name: "Edelweiss", Tier: "Tier 2", Domain: "Financial Services"},
			{Name: "Mirae Asset", Tier: "Tier 2", Domain: "Asset Management"},
			{Name: "UTI AMC", Tier: "Tier 3", Domain: "Mutual Fund"},
			{Name: "Franklin Templeton", Tier: "Tier 2", Domain: "Asset Management"},
		},
		Roles: []string{
			"Equity Research Analyst", "Portfolio Analyst", "Fund Analyst", "Investment Analyst",
			"Research Associate",
		},
		Roadmap: []string{
			"Write a 2-page initiating coverage report on a listed mid-cap",
			"Build a sector comparison model in Excel", "Clear CFA Level 1 (highly valued in this track)",
			"Follow SEBI circulars and RBI monetary policy regularly",
			"Practice stock pitches: thesis, valuation, risks, catalysts",
		},
	},
	{
		ID:          "digital-marketing",
		Title:       "Digital Marketing & Growth",
		Description: "Lead performance marketing, SEO/SEM, content strategy, and data-driven growth for brands and startups.",
		KeySkills: []string{
			"digital marketing", "seo", "sem", "google ads", "meta ads", "social media", "content marketing",
			"email marketing", "analytics", "google analytics", "funnel", "roi", "cac", "ltv",
			"growth hacking", "a/b testing", "crm", "email", "conversion rate", "social listening",
		},
		RoleKeywords: []string{
			"digital", "seo", "sem", "social media", "growth", "performance marketing", "content", "email",
			"analytics", "brand digital", "e-commerce",
		},
		InterestKeywords: []string{
			"digital marketing", "social media", "content creation", "seo", "growth hacking",
			"influencer marketing", "e-commerce", "d2c brands", "performance marketing",
		},
		Companies: []Company{
			{Name: "Nykaa", Tier: "Tier 2", Domain: "D2C / E-Commerce"},
			{Name: "Zomato", Tier: "Tier 2", Domain: "Food Tech"},
			{Name: "boAt", Tier: "Tier 2", Domain: "D2C Consumer Electronics"},
			{Name: "Meesho", Tier: "Tier 2", Domain: "Social Commerce"},
			{Name: "MakeMyTrip", Tier: "Tier 2", Domain: "Travel / OTA"},
			{Name: "WATConsult", Tier: "Tier 3", Domain: "Digital Agency"},
			{Name: "iProspect", Tier: "Tier 3", Domain: "Digital Agency"},
		},
		Roles: []string{
			"Digital Marketing Manager", "Growth Manager", "SEO/SEM Analyst", "Performance Marketing Lead",
			"Content Strategist",
		},
		Roadmap: []string{
			"Earn Google Ads & Google Analytics certifications",
			"Run real ad campaigns with a small budget (Meta / Google)",
			"Learn attribution modeling and multi-channel funnels",
			"Build a case study: improved ROAS / CAC for a brand",
			"Master tools: HubSpot, Semrush, Hotjar, Mailchimp",
		},
	},
	{
		ID:          "sales-bd",
		Title:       "Sales & Business Development",
		Description: "Drive revenue growth through B2B/B2C sales, partnerships, and market expansion strategies.",
		KeySkills: []string{
			"sales", "business development", "bd", "crm", "negotiation", "b2b", "b2c",
			"key account management", "channel sales", "revenue", "cold calling", "pipeline", "conversion",
			"salesforce", "leadership", "territory management",
		},
		RoleKeywords: []string{
			"sales", "business development", "account management", "b2b", "b2c", "channel", "territory",
			"kam", "enterprise sales", "revenue",
		},
		InterestKeywords: []string{
			"sales", "business development", "entrepreneurship", "negotiation", "client relationships",
			"b2b sales", "revenue growth", "partnerships", "business strategy",
		},
		Companies: []Company{
			{Name: "Asian Paints", Tier: "Tier 2", Domain: "Paints / FMCG"},
			{Name: "Berger Paints", Tier: "Tier 2", Domain: "Paints / FMCG"},
			{Name: "Bajaj Allianz", Tier: "Tier 2", Domain: "BFSI / Insurance"},
			{Name: "Tata Motors", Tier: "Tier 2", Domain: "Automotive"},
			{Name: "Cipla", Tier: "Tier 2", Domain: "Pharma"},
			{Name: "Max Life Insurance", Tier: "Tier 3", Domain: "Insurance"},
			{Name: "HDFC Life", Tier: "Tier 2", Domain: "Insurance / BFSI"},
		},
		Roles: []string{
			"Area Sales Manager", "Key Account Manager", "Business Development Manager",
			"Territory Sales Manager", "National Sales Trainer",
		},
		Roadmap: []string{
			"Master solution selling & consultative sales techniques",
			"Learn CRM tools: Salesforce, Zoho, HubSpot",
			"Build negotiation skills through role-plays and simulations",
			"Study channel & distribution management frameworks",
			"Practice GD/PI on market entry, sales turnaround cases",
		},
	},
	{
		ID:          "supply-chain",
		Title:       "Supply Chain & Operations",
		Description: "Optimise end-to-end supply chains — procurement, inventory, logistics, and demand planning — for global firms.",
		KeySkills: []string{
			"supply chain", "operations", "logistics", "procurement", "inventory management",
			"demand planning", "scm", "erp", "sap", "six sigma", "lean", "kaizen", "vendor management",
			"warehousing", "3pl", "forecast", "kpi",
		},
		RoleKeywords: []string{
			"supply chain", "operations", "logistics", "procurement", "inventory", "demand planning", "erp",
			"sap", "manufacturing", "plant operations",
		},
		InterestKeywords: []string{
			"supply chain", "operations management", "logistics", "lean manufacturing", "six sigma",
			"procurement", "erp", "warehousing", "global trade",
		},
		Companies: []Company{
			{Name: "Amazon Logistics", Tier: "Tier 1", Domain: "E-Commerce Logistics"},
			{Name: "Maersk", Tier: "Tier 1", Domain: "Global Shipping"},
			{Name: "Flipkart Supply Chain", Tier: "Tier 2", Domain: "E-Commerce"},
			{Name: "DHL India", Tier: "Tier 2", Domain: "Logistics"},
			{Name: "Mahindra Logistics", Tier: "Tier 2", Domain: "3PL Logistics"},
			{Name: "Blue Dart", Tier: "Tier 3", Domain: "Express Logistics"},
			{Name: "TVS Supply Chain", Tier: "Tier 3", Domain: "Automotive Logistics"},
		},
		Roles: []string{
			"Supply Chain Analyst", "Operations Manager", "Procurement Manager", "Demand Planner",
			"Logistics Manager",
		},
		Roadmap: []string{
			"Earn Six Sigma Green Belt or APICS CPIM certification",
			"Learn SAP MM / SD modules (widely used in SCM)",
			"Build a supply chain optimisation project with data",
			"Understand Incoterms, customs, and import/export process",
			"Practice SCM case studies: bullwhip effect, network design",
		},
	},
}

// QuickSkills and QuickInterests are one-click suggestions for clients.
var (
	QuickSkills = []string{
		"Financial Modelling", "Excel", "Case Analysis", "Brand Management", "Market Research",
		"DCF Valuation", "SQL", "Power BI", "SAP", "Digital Marketing", "Six Sigma", "CRM",
	}
	QuickInterests = []string{
		"Investment Banking", "Consulting", "FMCG Marketing", "Stock Market", "Digital Marketing",
		"Supply Chain", "Corporate Banking", "Entrepreneurship",
	}
)
