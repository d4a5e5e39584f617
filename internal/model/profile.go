package model

// Profile is the derived result of a completed quiz. It is built once per
// session and never mutated afterwards.
type Profile struct {
	Capital       int        `json:"capital"` // coarse bucket, 1..5
	TimeAvailable int        `json:"timeAvailable"`
	RiskTolerance int        `json:"riskTolerance"`
	Skills        []string   `json:"skills"`
	Motivations   []string   `json:"motivations"`
	Experience    string     `json:"experience"`
	TotalScore    float64    `json:"totalScore"`
	Archetype     *Archetype `json:"archetype"`
}
