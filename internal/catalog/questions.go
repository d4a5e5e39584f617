package catalog

import "bizmatch/internal/model"

// Questions returns the embedded quiz questionnaire in presentation order
func Questions() []model.Question {
	return []model.Question{
		{
			ID:          "capital",
			Prompt:      "How much capital do you have available to invest?",
			Description: "Count only what you can invest without compromising your basic needs.",
			Kind:        model.QuestionKindSingle,
			Category:    model.CategoryCapital,
			Options: []model.Option{
				{ID: "low", Label: "Up to R$ 5,000", Value: 1, Description: "Fits solo trades and basic services"},
				{ID: "medium-low", Label: "R$ 5,000 - R$ 25,000", Value: 2, Description: "Small shops and local services"},
				{ID: "medium", Label: "R$ 25,000 - R$ 50,000", Value: 3, Description: "Small franchises and digital businesses"},
				{ID: "medium-high", Label: "R$ 50,000 - R$ 100,000", Value: 4, Description: "Mid-size franchises and technology"},
				{ID: "high", Label: "More than R$ 100,000", Value: 5, Description: "Scalable businesses and premium franchises"},
			},
		},
		{
			ID:          "time",
			Prompt:      "How many hours per week can you dedicate to the business?",
			Description: "Be realistic about your current availability.",
			Kind:        model.QuestionKindSingle,
			Category:    model.CategoryTime,
			Options: []model.Option{
				{ID: "part-time", Label: "10-20 hours/week", Value: 1, Description: "Business as extra income"},
				{ID: "medium", Label: "20-40 hours/week", Value: 2, Description: "Gradual transition"},
				{ID: "full-time", Label: "40+ hours/week", Value: 3, Description: "Full dedication"},
			},
		},
		{
			ID:          "risk",
			Prompt:      "How do you feel about financial risk?",
			Description: "Over half of aspiring founders report fear of failure as their main blocker.",
			Kind:        model.QuestionKindScale,
			Category:    model.CategoryRisk,
			ScaleMin:    1,
			ScaleMax:    5,
		},
		{
			ID:          "skills",
			Prompt:      "Which skills do you already have?",
			Description: "Select every one that applies to you today.",
			Kind:        model.QuestionKindMulti,
			Category:    model.CategorySkills,
			Options: []model.Option{
				{ID: "sales", Label: "Sales", Value: 2, Description: "Persuasion and negotiation"},
				{ID: "marketing", Label: "Digital marketing", Value: 2, Description: "Social media, online advertising"},
				{ID: "tech", Label: "Technology", Value: 3, Description: "Programming, systems, automation"},
				{ID: "management", Label: "Management", Value: 2, Description: "Leadership, organization, planning"},
				{ID: "finance", Label: "Finance", Value: 2, Description: "Financial control, accounting"},
				{ID: "customer", Label: "Customer service", Value: 1, Description: "Client relationships"},
				{ID: "operations", Label: "Operations", Value: 1, Description: "Logistics, processes, quality"},
				{ID: "creative", Label: "Creativity", Value: 2, Description: "Design, content, innovation"},
			},
		},
		{
			ID:          "motivation",
			Prompt:      "What motivates you most to start a business?",
			Description: "Pick the motivations that best describe you.",
			Kind:        model.QuestionKindMulti,
			Category:    model.CategoryMotivation,
			Options: []model.Option{
				{ID: "opportunity", Label: "Market opportunity", Value: 3, Description: "The main trigger for growth-minded founders"},
				{ID: "autonomy", Label: "Professional fulfillment", Value: 2, Description: "Autonomy and satisfaction"},
				{ID: "independence", Label: "Financial independence", Value: 2, Description: "Owning your own business"},
				{ID: "necessity", Label: "Need for income", Value: 1, Description: "Financial return as the priority"},
				{ID: "impact", Label: "Social impact", Value: 2, Description: "Creating value for society"},
				{ID: "lifestyle", Label: "Schedule flexibility", Value: 1, Description: "Balancing personal and professional life"},
			},
		},
		{
			ID:          "experience",
			Prompt:      "What is your prior experience?",
			Description: "Sector experience significantly raises the odds of success.",
			Kind:        model.QuestionKindSingle,
			Category:    model.CategoryExperience,
			Options: []model.Option{
				{ID: "none", Label: "No business experience", Value: 0, Description: "First venture"},
				{ID: "employee", Label: "Worked in the sector I want to enter", Value: 2, Description: "Market knowledge"},
				{ID: "side", Label: "Ran side businesses before", Value: 1, Description: "Basic experience"},
				{ID: "failed", Label: "Started a business that did not work out", Value: 1, Description: "Learned from mistakes"},
				{ID: "successful", Label: "Ran successful businesses", Value: 3, Description: "Proven experience"},
			},
		},
		{
			ID:          "sector",
			Prompt:      "Which sector interests you most or do you know best?",
			Description: "Services and commerce account for most small businesses.",
			Kind:        model.QuestionKindSingle,
			Category:    model.CategoryExperience,
			Options: []model.Option{
				{ID: "services", Label: "Services", Value: 1, Description: "Consulting, education, health, beauty"},
				{ID: "commerce", Label: "Commerce", Value: 1, Description: "Retail, e-commerce, food"},
				{ID: "technology", Label: "Technology", Value: 3, Description: "Apps, software, automation"},
				{ID: "industry", Label: "Industry", Value: 2, Description: "Production, manufacturing"},
				{ID: "agriculture", Label: "Agribusiness", Value: 2, Description: "Farming, livestock"},
				{ID: "creative", Label: "Creative economy", Value: 2, Description: "Art, design, entertainment"},
			},
		},
	}
}
