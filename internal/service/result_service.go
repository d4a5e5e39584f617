package service

import (
	"context"
	"fmt"

	"bizmatch/internal/cache"
	"bizmatch/internal/model"
	"bizmatch/internal/scoring"
)

// ResultService turns a session's answers into the final quiz result. The
// computation is pure and cheap, so results are recomputed on every call
// rather than stored.
type ResultService struct {
	engine   *scoring.Engine
	sessions cache.SessionCache
}

// NewResultService creates a new result service
func NewResultService(engine *scoring.Engine, sessions cache.SessionCache) *ResultService {
	return &ResultService{
		engine:   engine,
		sessions: sessions,
	}
}

// Results builds the profile from the session's answers and ranks the
// archetype's candidate businesses against it. Missing answers fall back to
// the profile builder's defaults, so a partial session still yields a result.
func (s *ResultService) Results(ctx context.Context, sessionID string) (*model.QuizResult, error) {
	session, err := s.sessions.GetSession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}

	answers, err := s.sessions.GetAnswers(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get answers: %w", err)
	}

	profile := s.engine.BuildProfile(answers)
	return &model.QuizResult{
		Profile:         profile,
		Recommendations: s.engine.Recommend(profile),
	}, nil
}
