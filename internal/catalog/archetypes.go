package catalog

import "bizmatch/internal/model"

// Archetype ids, also used by the classifier rule table
const (
	ArchetypePragmatic   = "pragmatic"
	ArchetypeVocational  = "vocational"
	ArchetypeOpportunist = "opportunist"
	ArchetypeDigital     = "digital-flexible"
)

// Archetypes returns the embedded archetype catalog. Recommendation pools
// reference businesses by id and are resolved by catalog.New.
func Archetypes() []ArchetypeEntry {
	return []ArchetypeEntry{
		{
			ID:          ArchetypePragmatic,
			Name:        "Cash-flow pragmatist",
			Description: "Seeks income and financial stability with controlled risk",
			Characteristics: []string{
				"Focused on immediate income",
				"Averse to high risk",
				"Prefers validated models",
				"Wants a fast return on investment",
			},
			IdealCapitalRange: [2]int{5000, 25000},
			RiskLevel:         model.RiskLow,
			BusinessIDs:       []string{"mei-services", "micro-franchise", "local-commerce"},
		},
		{
			ID:          ArchetypeVocational,
			Name:        "Vocational",
			Description: "Seeks personal fulfillment and impact, driven by purpose",
			Characteristics: []string{
				"Motivated by personal fulfillment",
				"Values social impact",
				"Accepts moderate risk",
				"Quality over quantity",
			},
			IdealCapitalRange: [2]int{10000, 50000},
			RiskLevel:         model.RiskMedium,
			BusinessIDs:       []string{"consulting", "digital-products", "medium-franchise"},
		},
		{
			ID:          ArchetypeOpportunist,
			Name:        "Scalable opportunist",
			Description: "Chases high-growth, high-return opportunities",
			Characteristics: []string{
				"Seeks market opportunities",
				"High risk tolerance",
				"Focused on scalability",
				"Driven by high financial returns",
			},
			IdealCapitalRange: [2]int{25000, 200000},
			RiskLevel:         model.RiskHigh,
			BusinessIDs:       []string{"tech-startup", "medium-franchise", "ecommerce"},
		},
		{
			ID:          ArchetypeDigital,
			Name:        "Digital for flexibility",
			Description: "Prioritizes flexibility and remote work through technology",
			Characteristics: []string{
				"Values schedule flexibility",
				"Prefers digital businesses",
				"Moderate to high risk",
				"Focused on automation and scale",
			},
			IdealCapitalRange: [2]int{2000, 50000},
			RiskLevel:         model.RiskMedium,
			BusinessIDs:       []string{"digital-products", "ecommerce", "consulting"},
		},
	}
}
