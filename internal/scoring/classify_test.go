package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bizmatch/internal/catalog"
)

func TestBestArchetypeAllZeroFallsBackToPragmatic(t *testing.T) {
	assert.Equal(t, catalog.ArchetypePragmatic, bestArchetype(map[string]int{}))
	assert.Equal(t, catalog.ArchetypePragmatic, bestArchetype(map[string]int{
		catalog.ArchetypePragmatic:   0,
		catalog.ArchetypeVocational:  0,
		catalog.ArchetypeOpportunist: 0,
		catalog.ArchetypeDigital:     0,
	}))
}

func TestBestArchetypeTieKeepsEarlierScanned(t *testing.T) {
	assert.Equal(t, catalog.ArchetypeVocational, bestArchetype(map[string]int{
		catalog.ArchetypePragmatic:   0,
		catalog.ArchetypeVocational:  5,
		catalog.ArchetypeOpportunist: 5,
		catalog.ArchetypeDigital:     5,
	}))
	// pragmatic holds the seed, so it also wins outright ties
	assert.Equal(t, catalog.ArchetypePragmatic, bestArchetype(map[string]int{
		catalog.ArchetypePragmatic: 4,
		catalog.ArchetypeDigital:   4,
	}))
}

func TestScoreArchetypesNeutralFactors(t *testing.T) {
	scores := scoreArchetypes(Factors{
		CapitalScore:  15000,
		TimeAvailable: 2,
		RiskTolerance: 3,
	})

	// capital<=25000 +3, experience<=1 +1, time<=2 +1
	assert.Equal(t, 5, scores[catalog.ArchetypePragmatic])
	// risk 2..4 +2, capital 10000..50000 +2
	assert.Equal(t, 4, scores[catalog.ArchetypeVocational])
	assert.Equal(t, 0, scores[catalog.ArchetypeOpportunist])
	// capital<=50000 +2, risk>=3 +1, time<=2 +1
	assert.Equal(t, 4, scores[catalog.ArchetypeDigital])
}

func TestClassifyNeutralFactorsIsPragmatic(t *testing.T) {
	e := newTestEngine(t)

	a := e.Classify(Factors{CapitalScore: 15000, TimeAvailable: 2, RiskTolerance: 3})

	require.NotNil(t, a)
	assert.Equal(t, catalog.ArchetypePragmatic, a.ID)
	assert.Len(t, a.RecommendedBusinesses, 3)
}

func TestClassifyDigitalFlexible(t *testing.T) {
	e := newTestEngine(t)

	a := e.Classify(Factors{
		CapitalScore:  2500,
		TimeAvailable: 2,
		RiskTolerance: 3,
		SkillsCount:   4,
		Motivations:   []string{"lifestyle"},
	})

	require.NotNil(t, a)
	// digital 3+2+2+1+1 = 9 beats pragmatic's 5
	assert.Equal(t, catalog.ArchetypeDigital, a.ID)
}

func TestClassifyRulesAreAdditive(t *testing.T) {
	// every opportunist rule fires at once
	scores := scoreArchetypes(Factors{
		CapitalScore:  150000,
		TimeAvailable: 3,
		RiskTolerance: 5,
		Motivations:   []string{"opportunity"},
		Experience:    3,
	})
	assert.Equal(t, 11, scores[catalog.ArchetypeOpportunist])
}
