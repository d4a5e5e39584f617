package catalog

import "bizmatch/internal/model"

// Businesses returns the embedded business-type catalog
func Businesses() []model.BusinessRecommendation {
	return []model.BusinessRecommendation{
		{
			ID:                "mei-services",
			Name:              "Local services micro-business",
			Description:       "Freelancing or a small local service operation",
			InitialInvestment: [2]int{500, 5000},
			TimeCommitment:    "20-40h/week",
			RiskLevel:         model.RiskLow,
			SkillsRequired:    []string{"customer", "sales"},
			PotentialReturn:   "R$ 2,000 - R$ 8,000/month",
			Pros:              []string{"Low initial investment", "Flexible hours", "Fast payback"},
			Cons:              []string{"Limited income", "Depends on your own hours", "Limited growth"},
			Examples:          []string{"Consulting", "Private tutoring", "Beauty services", "Maintenance"},
		},
		{
			ID:                "digital-products",
			Name:              "Digital products",
			Description:       "Creating and selling online courses, e-books, apps",
			InitialInvestment: [2]int{1000, 10000},
			TimeCommitment:    "30-50h/week",
			RiskLevel:         model.RiskMedium,
			SkillsRequired:    []string{"marketing", "creative", "tech"},
			PotentialReturn:   "R$ 3,000 - R$ 50,000/month",
			Pros:              []string{"Highly scalable", "High margins", "Remote work"},
			Cons:              []string{"Intense competition", "Constant marketing needed", "Learning curve"},
			Examples:          []string{"Online courses", "E-books", "Mobile apps", "SaaS software"},
		},
		{
			ID:                "ecommerce",
			Name:              "E-commerce",
			Description:       "An online store selling your own or resold products",
			InitialInvestment: [2]int{5000, 30000},
			TimeCommitment:    "40-60h/week",
			RiskLevel:         model.RiskMedium,
			SkillsRequired:    []string{"marketing", "operations", "customer"},
			PotentialReturn:   "R$ 5,000 - R$ 100,000/month",
			Pros:              []string{"Growing market", "Nationwide reach", "Automation possible"},
			Cons:              []string{"Complex logistics", "High competition", "Working capital needed"},
			Examples:          []string{"Clothing store", "Electronics", "Home and decor", "Cosmetics"},
		},
		{
			ID:                "micro-franchise",
			Name:              "Micro-franchise",
			Description:       "Low-investment franchises with a validated model",
			InitialInvestment: [2]int{15000, 50000},
			TimeCommitment:    "40-60h/week",
			RiskLevel:         model.RiskLow,
			SkillsRequired:    []string{"management", "sales", "operations"},
			PotentialReturn:   "R$ 5,000 - R$ 25,000/month",
			Pros:              []string{"Validated model", "Franchisor support", "Recognized brand"},
			Cons:              []string{"Monthly royalties", "Mandatory standardization", "Brand dependence"},
			Examples:          []string{"Fast food", "Cleaning services", "Early education"},
		},
		{
			ID:                "medium-franchise",
			Name:              "Mid-size franchise",
			Description:       "Established franchises with higher return potential",
			InitialInvestment: [2]int{50000, 200000},
			TimeCommitment:    "50-70h/week",
			RiskLevel:         model.RiskMedium,
			SkillsRequired:    []string{"management", "finance", "operations"},
			PotentialReturn:   "R$ 15,000 - R$ 80,000/month",
			Pros:              []string{"Higher returns", "Structured support", "Territorial exclusivity"},
			Cons:              []string{"High investment", "Long contracts", "Less flexibility"},
			Examples:          []string{"Gyms", "Language schools", "Pharmacies", "Restaurants"},
		},
		{
			ID:                "tech-startup",
			Name:              "Technology startup",
			Description:       "An innovative technology business built to scale",
			InitialInvestment: [2]int{10000, 100000},
			TimeCommitment:    "60-80h/week",
			RiskLevel:         model.RiskHigh,
			SkillsRequired:    []string{"tech", "marketing", "management"},
			PotentialReturn:   "R$ 0 - R$ 500,000+/month",
			Pros:              []string{"Exponential growth potential", "High valuation upside", "Scalable impact"},
			Cons:              []string{"Very high risk", "Needs ongoing investment", "Competitive market"},
			Examples:          []string{"Fintech", "Edtech", "Healthtech", "Agtech"},
		},
		{
			ID:                "consulting",
			Name:              "Specialized consulting",
			Description:       "High-complexity services built on personal expertise",
			InitialInvestment: [2]int{5000, 25000},
			TimeCommitment:    "30-50h/week",
			RiskLevel:         model.RiskMedium,
			SkillsRequired:    []string{"management", "sales", "finance"},
			PotentialReturn:   "R$ 8,000 - R$ 50,000/month",
			Pros:              []string{"High margins", "Knowledge-based", "Flexibility"},
			Cons:              []string{"Depends on your own hours", "Credibility required", "Seasonality"},
			Examples:          []string{"Business consulting", "Legal advisory", "Digital marketing"},
		},
		{
			ID:                "local-commerce",
			Name:              "Local commerce",
			Description:       "A physical store serving the local community",
			InitialInvestment: [2]int{20000, 80000},
			TimeCommitment:    "50-70h/week",
			RiskLevel:         model.RiskMedium,
			SkillsRequired:    []string{"sales", "operations", "customer"},
			PotentialReturn:   "R$ 8,000 - R$ 40,000/month",
			Pros:              []string{"Close customer relationships", "Easy loyalty", "Less online competition"},
			Cons:              []string{"Limited geographic area", "High fixed costs", "Restricted hours"},
			Examples:          []string{"Bakery", "Pharmacy", "Stationery", "Pet shop"},
		},
	}
}
