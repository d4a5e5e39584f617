package scoring

import (
	"sort"

	"bizmatch/internal/model"
)

const maxRecommendations = 3

// Recommend filters the profile archetype's candidate pool by affordability,
// ranks the survivors by suitability, and returns at most the top 3. An
// empty pool yields an empty list, never an error, and no business outside
// the archetype's pool is ever returned.
func (e *Engine) Recommend(p *model.Profile) []*model.BusinessRecommendation {
	if p.Archetype == nil {
		return nil
	}

	budget := p.Capital * 1000
	type ranked struct {
		business *model.BusinessRecommendation
		score    int
	}
	var pool []ranked
	for _, b := range p.Archetype.RecommendedBusinesses {
		if b.InitialInvestment[0] <= budget {
			pool = append(pool, ranked{b, suitability(b, p)})
		}
	}

	// stable: candidates with equal scores keep their pool order
	sort.SliceStable(pool, func(i, j int) bool {
		return pool[i].score > pool[j].score
	})

	out := make([]*model.BusinessRecommendation, 0, maxRecommendations)
	for _, r := range pool {
		if len(out) == maxRecommendations {
			break
		}
		out = append(out, r.business)
	}
	return out
}

// suitability scores one candidate against the profile: an affordability
// bonus (always satisfied after the filter, kept as a constant term), risk
// alignment, and one point per overlapping skill.
func suitability(b *model.BusinessRecommendation, p *model.Profile) int {
	score := 0

	if b.InitialInvestment[0] <= p.Capital*1000 {
		score += 3
	}

	switch b.RiskLevel {
	case model.RiskLow:
		if p.RiskTolerance <= 2 {
			score += 3
		}
	case model.RiskMedium:
		if p.RiskTolerance >= 2 && p.RiskTolerance <= 4 {
			score += 3
		} else {
			score += 1
		}
	case model.RiskHigh:
		if p.RiskTolerance >= 4 {
			score += 3
		}
	}

	for _, required := range b.SkillsRequired {
		for _, have := range p.Skills {
			if required == have {
				score++
				break
			}
		}
	}

	return score
}
