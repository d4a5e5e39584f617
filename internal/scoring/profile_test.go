package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bizmatch/internal/catalog"
	"bizmatch/internal/model"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	cat, err := catalog.Default()
	require.NoError(t, err)
	return NewEngine(cat)
}

func numAnswer(questionID string, n float64) model.Answer {
	return model.Answer{QuestionID: questionID, Value: model.ResponseValue{Number: n}}
}

func choiceAnswer(questionID string, choices ...string) model.Answer {
	return model.Answer{QuestionID: questionID, Value: model.ResponseValue{Choices: choices}}
}

func TestBuildProfileDefaults(t *testing.T) {
	e := newTestEngine(t)

	p := e.BuildProfile(nil)

	assert.Equal(t, 2, p.Capital)
	assert.Equal(t, 1, p.TimeAvailable)
	assert.Equal(t, 3, p.RiskTolerance)
	assert.Empty(t, p.Skills)
	assert.Empty(t, p.Motivations)
	assert.Equal(t, "no experience", p.Experience)
	require.NotNil(t, p.Archetype)
	assert.Equal(t, catalog.ArchetypePragmatic, p.Archetype.ID)
	// 15000*.30 + 1*.20 + 3*.20
	assert.InDelta(t, 4500.8, p.TotalScore, 1e-9)
}

func TestCapitalRoundTrip(t *testing.T) {
	reps := map[int]int{1: 2500, 2: 15000, 3: 37500, 4: 75000, 5: 150000}
	for v := 1; v <= 5; v++ {
		score := capitalRepresentative(v)
		assert.Equal(t, reps[v], score)
		assert.Equal(t, v, capitalBucket(score), "bucket must be stable for value %d", v)
	}
	assert.Equal(t, 15000, capitalRepresentative(0))
	assert.Equal(t, 15000, capitalRepresentative(9))
}

func TestBuildProfileLastWriteWins(t *testing.T) {
	e := newTestEngine(t)

	p := e.BuildProfile([]model.Answer{
		numAnswer("risk", 2),
		numAnswer("risk", 5),
	})

	assert.Equal(t, 5, p.RiskTolerance)
}

func TestExperienceLabels(t *testing.T) {
	assert.Equal(t, "no experience", experienceLabel(0))
	assert.Equal(t, "basic experience", experienceLabel(1))
	assert.Equal(t, "sector experience", experienceLabel(2))
	assert.Equal(t, "proven experience", experienceLabel(3))
	assert.Equal(t, "no experience", experienceLabel(7))
}

func TestBuildProfileWeightedScoreUsesUnbucketedCapital(t *testing.T) {
	e := newTestEngine(t)

	p := e.BuildProfile([]model.Answer{
		numAnswer("capital", 5),
		numAnswer("time", 2),
	})

	// 150000*.30 + 2*.20 + 3*.20 (risk default)
	assert.InDelta(t, 45001.0, p.TotalScore, 1e-9)
	assert.Equal(t, 5, p.Capital)
}

func TestEndToEndOpportunist(t *testing.T) {
	e := newTestEngine(t)

	p := e.BuildProfile([]model.Answer{
		numAnswer("capital", 5),
		numAnswer("time", 3),
		numAnswer("risk", 5),
		choiceAnswer("skills", "tech", "marketing", "management", "finance"),
		choiceAnswer("motivation", "opportunity"),
		numAnswer("experience", 3),
	})

	assert.Equal(t, 5, p.Capital)
	require.NotNil(t, p.Archetype)
	assert.Equal(t, catalog.ArchetypeOpportunist, p.Archetype.ID)

	recs := e.Recommend(p)
	// budget is bucket*1000 = 5000, so only ecommerce (min 5000) survives
	// from the opportunist pool of tech-startup, medium-franchise, ecommerce
	require.Len(t, recs, 1)
	assert.Equal(t, "ecommerce", recs[0].ID)
}
