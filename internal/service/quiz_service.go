package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bizmatch/internal/cache"
	"bizmatch/internal/catalog"
	"bizmatch/internal/model"
)

var (
	ErrSessionNotFound = errors.New("session not found or expired")
	ErrUnknownQuestion = errors.New("unknown question")
	ErrUnknownOption   = errors.New("unknown option")
	ErrInvalidValue    = errors.New("value does not match question kind")
)

// QuizService drives a session through the questionnaire: it hands out the
// ordered questions, validates and records answers, and tracks progress.
type QuizService struct {
	catalog  *catalog.Catalog
	sessions cache.SessionCache
	auth     *AuthService
}

// NewQuizService creates a new quiz service
func NewQuizService(cat *catalog.Catalog, sessions cache.SessionCache, auth *AuthService) *QuizService {
	return &QuizService{
		catalog:  cat,
		sessions: sessions,
		auth:     auth,
	}
}

// StartSession opens a new anonymous quiz session and returns its token
func (s *QuizService) StartSession(ctx context.Context) (*model.StartQuizResponse, error) {
	session := &model.QuizSession{
		ID:        s.auth.NewSessionID(),
		StartedAt: time.Now(),
	}
	if err := s.sessions.SetSession(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}

	token, err := s.auth.IssueSessionToken(session.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue session token: %w", err)
	}

	return &model.StartQuizResponse{
		SessionID:     session.ID,
		Token:         token,
		QuestionCount: s.catalog.QuestionCount(),
	}, nil
}

// Questions returns the questionnaire in presentation order
func (s *QuizService) Questions() []model.Question {
	return s.catalog.Questions()
}

// SubmitAnswer validates the submitted value against the question kind,
// computes its points, and records it. A second answer for the same question
// replaces the first.
func (s *QuizService) SubmitAnswer(ctx context.Context, sessionID string, req *model.SubmitAnswerRequest) (*model.SubmitAnswerResponse, error) {
	session, err := s.sessions.GetSession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}

	question := s.catalog.Question(req.QuestionID)
	if question == nil {
		return nil, ErrUnknownQuestion
	}

	answer, err := buildAnswer(question, req)
	if err != nil {
		return nil, err
	}

	if err := s.sessions.SetAnswer(ctx, sessionID, answer); err != nil {
		return nil, fmt.Errorf("failed to store answer: %w", err)
	}

	progress, err := s.progress(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if progress.Complete && !session.Completed {
		session.Completed = true
		if err := s.sessions.SetSession(ctx, session); err != nil {
			return nil, fmt.Errorf("failed to update session: %w", err)
		}
	}

	return &model.SubmitAnswerResponse{Answer: answer, Progress: progress}, nil
}

// Progress reports how many questions the session has answered
func (s *QuizService) Progress(ctx context.Context, sessionID string) (*model.Progress, error) {
	session, err := s.sessions.GetSession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}
	return s.progress(ctx, sessionID)
}

// Answers returns the session's recorded answers
func (s *QuizService) Answers(ctx context.Context, sessionID string) ([]model.Answer, error) {
	session, err := s.sessions.GetSession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}
	return s.sessions.GetAnswers(ctx, sessionID)
}

func (s *QuizService) progress(ctx context.Context, sessionID string) (*model.Progress, error) {
	answers, err := s.sessions.GetAnswers(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get answers: %w", err)
	}
	total := s.catalog.QuestionCount()
	return &model.Progress{
		Answered: len(answers),
		Total:    total,
		Complete: len(answers) >= total,
	}, nil
}

// buildAnswer resolves a request into an Answer according to the question
// kind. Points come from the selected options' values, or the raw value for
// scale and slider questions.
func buildAnswer(q *model.Question, req *model.SubmitAnswerRequest) (*model.Answer, error) {
	switch q.Kind {
	case model.QuestionKindSingle:
		opt := q.Option(req.OptionID)
		if opt == nil {
			return nil, ErrUnknownOption
		}
		return &model.Answer{
			QuestionID: q.ID,
			Value:      model.ResponseValue{Number: float64(opt.Value)},
			Points:     opt.Value,
		}, nil

	case model.QuestionKindMulti:
		if len(req.OptionIDs) == 0 {
			return nil, ErrInvalidValue
		}
		seen := make(map[string]bool, len(req.OptionIDs))
		choices := make([]string, 0, len(req.OptionIDs))
		points := 0
		for _, id := range req.OptionIDs {
			opt := q.Option(id)
			if opt == nil {
				return nil, ErrUnknownOption
			}
			if seen[id] {
				return nil, ErrInvalidValue
			}
			seen[id] = true
			choices = append(choices, id)
			points += opt.Value
		}
		return &model.Answer{
			QuestionID: q.ID,
			Value:      model.ResponseValue{Choices: choices},
			Points:     points,
		}, nil

	case model.QuestionKindScale, model.QuestionKindSlider:
		if req.Value == nil {
			return nil, ErrInvalidValue
		}
		v := *req.Value
		if v < float64(q.ScaleMin) || v > float64(q.ScaleMax) {
			return nil, ErrInvalidValue
		}
		return &model.Answer{
			QuestionID: q.ID,
			Value:      model.ResponseValue{Number: v},
			Points:     int(v),
		}, nil
	}
	return nil, ErrInvalidValue
}
