package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bizmatch/internal/model"
)

func TestDefaultCatalogIsValid(t *testing.T) {
	cat, err := Default()
	require.NoError(t, err)

	assert.Equal(t, 7, cat.QuestionCount())
	assert.Len(t, cat.Archetypes(), 4)

	// questionnaire order drives the quiz flow
	ids := make([]string, 0, cat.QuestionCount())
	for _, q := range cat.Questions() {
		ids = append(ids, q.ID)
	}
	assert.Equal(t, []string{"capital", "time", "risk", "skills", "motivation", "experience", "sector"}, ids)
}

func TestEveryArchetypePoolResolves(t *testing.T) {
	cat, err := Default()
	require.NoError(t, err)

	for _, a := range cat.Archetypes() {
		require.NotEmpty(t, a.RecommendedBusinesses, "archetype %s has an empty pool", a.ID)
		for _, b := range a.RecommendedBusinesses {
			assert.Same(t, cat.Business(b.ID), b, "pool entry %s of %s must reference the catalog record", b.ID, a.ID)
		}
	}
}

func TestNewRejectsDanglingBusinessReference(t *testing.T) {
	_, err := New(Questions(), Businesses(), []ArchetypeEntry{{
		ID:          "broken",
		RiskLevel:   model.RiskLow,
		BusinessIDs: []string{"no-such-business"},
	}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no-such-business")
}

func TestNewRejectsDuplicateQuestionIDs(t *testing.T) {
	qs := append(Questions(), Questions()[0])
	_, err := New(qs, Businesses(), Archetypes())
	require.Error(t, err)
}

func TestNewRejectsChoiceQuestionWithoutOptions(t *testing.T) {
	_, err := New([]model.Question{{ID: "q", Kind: model.QuestionKindSingle}}, nil, nil)
	require.Error(t, err)
}

func TestNewRejectsScaleWithoutBounds(t *testing.T) {
	_, err := New([]model.Question{{ID: "q", Kind: model.QuestionKindScale}}, nil, nil)
	require.Error(t, err)
}

func TestQuestionLookup(t *testing.T) {
	cat, err := Default()
	require.NoError(t, err)

	q := cat.Question("skills")
	require.NotNil(t, q)
	assert.Equal(t, model.QuestionKindMulti, q.Kind)
	assert.NotNil(t, q.Option("tech"))
	assert.Nil(t, q.Option("nope"))
	assert.Nil(t, cat.Question("nope"))
}
