package scoring

import (
	"bizmatch/internal/model"
)

// Factor weights of the total score
const (
	weightCapital    = 0.30
	weightTime       = 0.20
	weightRisk       = 0.20
	weightSkills     = 0.15
	weightMotivation = 0.10
	weightExperience = 0.05
)

// BuildProfile reduces an answer list into a profile. A later answer for the
// same question overrides an earlier one, and every missing answer has a
// defined default, so the function is total over any input including an
// empty list.
func (e *Engine) BuildProfile(answers []model.Answer) *model.Profile {
	byQuestion := make(map[string]model.Answer, len(answers))
	for _, a := range answers {
		byQuestion[a.QuestionID] = a
	}

	capitalScore := capitalRepresentative(numberOr(byQuestion, "capital", 0))
	timeAvailable := numberOr(byQuestion, "time", 1)
	riskTolerance := numberOr(byQuestion, "risk", 3)
	experience := numberOr(byQuestion, "experience", 0)
	skills := byQuestion["skills"].Value.Choices
	motivations := byQuestion["motivation"].Value.Choices

	total := float64(capitalScore)*weightCapital +
		float64(timeAvailable)*weightTime +
		float64(riskTolerance)*weightRisk +
		float64(len(skills))*weightSkills +
		float64(len(motivations))*weightMotivation +
		float64(experience)*weightExperience

	archetype := e.Classify(Factors{
		CapitalScore:  capitalScore,
		TimeAvailable: timeAvailable,
		RiskTolerance: riskTolerance,
		SkillsCount:   len(skills),
		Motivations:   motivations,
		Experience:    experience,
	})

	if skills == nil {
		skills = []string{}
	}
	if motivations == nil {
		motivations = []string{}
	}

	return &model.Profile{
		Capital:       capitalBucket(capitalScore),
		TimeAvailable: timeAvailable,
		RiskTolerance: riskTolerance,
		Skills:        skills,
		Motivations:   motivations,
		Experience:    experienceLabel(experience),
		TotalScore:    total,
		Archetype:     archetype,
	}
}

// numberOr reads an answer's numeric value, falling back to def when the
// answer is missing or its value is zero
func numberOr(byQuestion map[string]model.Answer, questionID string, def int) int {
	a, ok := byQuestion[questionID]
	if !ok || a.Value.Number == 0 {
		return def
	}
	return int(a.Value.Number)
}

// capitalRepresentative maps the 1..5 capital answer to the midpoint of its
// currency range. Unknown values fall back to the bucket-2 midpoint.
func capitalRepresentative(v int) int {
	switch v {
	case 1:
		return 2500
	case 2:
		return 15000
	case 3:
		return 37500
	case 4:
		return 75000
	case 5:
		return 150000
	default:
		return 15000
	}
}

// capitalBucket re-buckets a currency-scale capital score into the 1..5 tier
// stored on the profile. The two-step mapping is deliberate: the ranker's
// affordability filter works off bucket*1000, not the representative score.
func capitalBucket(score int) int {
	switch {
	case score <= 5000:
		return 1
	case score <= 25000:
		return 2
	case score <= 50000:
		return 3
	case score <= 100000:
		return 4
	default:
		return 5
	}
}

func experienceLabel(v int) string {
	switch v {
	case 1:
		return "basic experience"
	case 2:
		return "sector experience"
	case 3:
		return "proven experience"
	default:
		return "no experience"
	}
}
