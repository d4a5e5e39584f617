package scoring

import (
	"bizmatch/internal/catalog"
	"bizmatch/internal/model"
)

// Factors are the derived inputs the classifier scores
type Factors struct {
	CapitalScore  int // currency-scale representative, not the 1..5 bucket
	TimeAvailable int
	RiskTolerance int
	SkillsCount   int
	Motivations   []string
	Experience    int
}

func (f Factors) motivatedBy(id string) bool {
	for _, m := range f.Motivations {
		if m == id {
			return true
		}
	}
	return false
}

// rule adds weight to one archetype's score when its predicate holds. Rules
// are independent and additive; several may fire for the same archetype.
type rule struct {
	archetype string
	weight    int
	applies   func(Factors) bool
}

var rules = []rule{
	// pragmatic: low risk, necessity-driven
	{catalog.ArchetypePragmatic, 3, func(f Factors) bool { return f.CapitalScore <= 25000 }},
	{catalog.ArchetypePragmatic, 3, func(f Factors) bool { return f.RiskTolerance <= 2 }},
	{catalog.ArchetypePragmatic, 2, func(f Factors) bool { return f.motivatedBy("necessity") }},
	{catalog.ArchetypePragmatic, 1, func(f Factors) bool { return f.Experience <= 1 }},
	{catalog.ArchetypePragmatic, 1, func(f Factors) bool { return f.TimeAvailable <= 2 }},

	// vocational: purpose-driven, moderate risk
	{catalog.ArchetypeVocational, 3, func(f Factors) bool { return f.motivatedBy("autonomy") }},
	{catalog.ArchetypeVocational, 3, func(f Factors) bool { return f.motivatedBy("impact") }},
	{catalog.ArchetypeVocational, 2, func(f Factors) bool { return f.RiskTolerance >= 2 && f.RiskTolerance <= 4 }},
	{catalog.ArchetypeVocational, 2, func(f Factors) bool { return f.CapitalScore >= 10000 && f.CapitalScore <= 50000 }},
	{catalog.ArchetypeVocational, 1, func(f Factors) bool { return f.SkillsCount >= 3 }},

	// opportunist: high growth, high risk
	{catalog.ArchetypeOpportunist, 3, func(f Factors) bool { return f.motivatedBy("opportunity") }},
	{catalog.ArchetypeOpportunist, 3, func(f Factors) bool { return f.RiskTolerance >= 4 }},
	{catalog.ArchetypeOpportunist, 2, func(f Factors) bool { return f.CapitalScore >= 50000 }},
	{catalog.ArchetypeOpportunist, 2, func(f Factors) bool { return f.TimeAvailable >= 3 }},
	{catalog.ArchetypeOpportunist, 1, func(f Factors) bool { return f.Experience >= 2 }},

	// digital-flexible: tech-oriented, flexible
	{catalog.ArchetypeDigital, 3, func(f Factors) bool { return f.motivatedBy("lifestyle") }},
	{catalog.ArchetypeDigital, 2, func(f Factors) bool { return f.SkillsCount >= 4 }},
	{catalog.ArchetypeDigital, 2, func(f Factors) bool { return f.CapitalScore <= 50000 }},
	{catalog.ArchetypeDigital, 1, func(f Factors) bool { return f.RiskTolerance >= 3 }},
	{catalog.ArchetypeDigital, 1, func(f Factors) bool { return f.TimeAvailable <= 2 }},
}

// classifierOrder fixes the scan order of the selection step
var classifierOrder = []string{
	catalog.ArchetypePragmatic,
	catalog.ArchetypeVocational,
	catalog.ArchetypeOpportunist,
	catalog.ArchetypeDigital,
}

// Classify scores the factors against every archetype's rules and returns
// the catalog record of the best match
func (e *Engine) Classify(f Factors) *model.Archetype {
	return e.catalog.Archetype(bestArchetype(scoreArchetypes(f)))
}

func scoreArchetypes(f Factors) map[string]int {
	scores := make(map[string]int, len(classifierOrder))
	for _, r := range rules {
		if r.applies(f) {
			scores[r.archetype] += r.weight
		}
	}
	return scores
}

// bestArchetype starts pre-seeded with {pragmatic, 0} and only replaces the
// running best on a strictly greater score, so pragmatic wins an all-zero
// tie and the earlier-scanned archetype wins any equal score.
func bestArchetype(scores map[string]int) string {
	best := classifierOrder[0]
	bestScore := 0
	for _, id := range classifierOrder {
		if scores[id] > bestScore {
			best = id
			bestScore = scores[id]
		}
	}
	return best
}
