package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bizmatch/internal/catalog"
	"bizmatch/internal/scoring"
)

func newTestResultService(t *testing.T) (*QuizService, *ResultService) {
	t.Helper()
	cat, err := catalog.Default()
	require.NoError(t, err)
	sessions := newMemSessionCache()
	quizSvc := NewQuizService(cat, sessions, NewAuthService("test-secret"))
	return quizSvc, NewResultService(scoring.NewEngine(cat), sessions)
}

func TestResultsForCompletedQuiz(t *testing.T) {
	quizSvc, resultSvc := newTestResultService(t)
	sessionID := startSession(t, quizSvc)
	answerAll(t, quizSvc, sessionID)

	result, err := resultSvc.Results(context.Background(), sessionID)
	require.NoError(t, err)

	require.NotNil(t, result.Profile)
	assert.Equal(t, 5, result.Profile.Capital)
	assert.Equal(t, "proven experience", result.Profile.Experience)
	require.NotNil(t, result.Profile.Archetype)
	assert.Equal(t, catalog.ArchetypeOpportunist, result.Profile.Archetype.ID)

	// budget 5000 leaves only ecommerce from the opportunist pool
	require.Len(t, result.Recommendations, 1)
	assert.Equal(t, "ecommerce", result.Recommendations[0].ID)
}

func TestResultsForPartialQuizUsesDefaults(t *testing.T) {
	quizSvc, resultSvc := newTestResultService(t)
	sessionID := startSession(t, quizSvc)

	result, err := resultSvc.Results(context.Background(), sessionID)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Profile.Capital)
	assert.Equal(t, catalog.ArchetypePragmatic, result.Profile.Archetype.ID)
}

func TestResultsUnknownSession(t *testing.T) {
	_, resultSvc := newTestResultService(t)

	_, err := resultSvc.Results(context.Background(), "quiz_missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
