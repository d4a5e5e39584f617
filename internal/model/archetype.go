package model

// Archetype is one of the four fixed entrepreneur classes. The catalog
// resolves RecommendedBusinesses from business ids at build time, so every
// entry points into the shared business catalog.
type Archetype struct {
	ID                    string                    `json:"id"`
	Name                  string                    `json:"name"`
	Description           string                    `json:"description"`
	Characteristics       []string                  `json:"characteristics"`
	IdealCapitalRange     [2]int                    `json:"idealCapitalRange"`
	RiskLevel             RiskLevel                 `json:"riskLevel"`
	RecommendedBusinesses []*BusinessRecommendation `json:"recommendedBusinesses"`
}
