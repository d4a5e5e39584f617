package model

// RiskLevel grades how risky a business or archetype is
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// BusinessRecommendation is a catalog business type that can be recommended.
// Records are static and shared by reference across archetype pools.
type BusinessRecommendation struct {
	ID                string    `json:"id" bson:"_id"`
	Name              string    `json:"name" bson:"name"`
	Description       string    `json:"description" bson:"description"`
	InitialInvestment [2]int    `json:"initialInvestment" bson:"initialInvestment"` // [min, max] in currency units
	TimeCommitment    string    `json:"timeCommitment" bson:"timeCommitment"`
	RiskLevel         RiskLevel `json:"riskLevel" bson:"riskLevel"`
	SkillsRequired    []string  `json:"skillsRequired" bson:"skillsRequired"`
	PotentialReturn   string    `json:"potentialReturn" bson:"potentialReturn"`
	Pros              []string  `json:"pros" bson:"pros"`
	Cons              []string  `json:"cons" bson:"cons"`
	Examples          []string  `json:"examples" bson:"examples"`
}
