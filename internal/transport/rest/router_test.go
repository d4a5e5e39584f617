package rest_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bizmatch/internal/catalog"
	"bizmatch/internal/model"
	"bizmatch/internal/scoring"
	"bizmatch/internal/service"
	"bizmatch/internal/transport/rest"
)

type memSessionCache struct {
	sessions map[string]*model.QuizSession
	answers  map[string]map[string]model.Answer
}

func (m *memSessionCache) SetSession(_ context.Context, s *model.QuizSession) error {
	m.sessions[s.ID] = s
	return nil
}

func (m *memSessionCache) GetSession(_ context.Context, id string) (*model.QuizSession, error) {
	return m.sessions[id], nil
}

func (m *memSessionCache) SetAnswer(_ context.Context, sessionID string, a *model.Answer) error {
	if m.answers[sessionID] == nil {
		m.answers[sessionID] = make(map[string]model.Answer)
	}
	m.answers[sessionID][a.QuestionID] = *a
	return nil
}

func (m *memSessionCache) GetAnswers(_ context.Context, sessionID string) ([]model.Answer, error) {
	out := make([]model.Answer, 0, len(m.answers[sessionID]))
	for _, a := range m.answers[sessionID] {
		out = append(out, a)
	}
	return out, nil
}

func (m *memSessionCache) Delete(_ context.Context, sessionID string) error {
	delete(m.sessions, sessionID)
	delete(m.answers, sessionID)
	return nil
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	cat, err := catalog.Default()
	require.NoError(t, err)
	sessions := &memSessionCache{
		sessions: make(map[string]*model.QuizSession),
		answers:  make(map[string]map[string]model.Answer),
	}
	authSvc := service.NewAuthService("test-secret")
	return rest.NewRouter(&rest.Container{
		AuthService:   authSvc,
		QuizService:   service.NewQuizService(cat, sessions, authSvc),
		ResultService: service.NewResultService(scoring.NewEngine(cat), sessions),
	})
}

func doJSON(t *testing.T, router http.Handler, method, path, token string, body interface{}, out interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if out != nil && rec.Code < 400 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
	}
	return rec
}

func TestHealth(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/health", "", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestQuestionsEndpointIsPublic(t *testing.T) {
	router := newTestRouter(t)

	var resp struct {
		Questions []model.Question `json:"questions"`
	}
	rec := doJSON(t, router, http.MethodGet, "/v1/questions", "", nil, &resp)
	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, resp.Questions, 7)
	assert.Equal(t, "capital", resp.Questions[0].ID)
}

func TestSessionRoutesRequireToken(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/v1/quiz/progress", "", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/v1/quiz/progress", "bogus", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestQuizFlowOverHTTP(t *testing.T) {
	router := newTestRouter(t)

	var started model.StartQuizResponse
	rec := doJSON(t, router, http.MethodPost, "/v1/quiz", "", nil, &started)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotEmpty(t, started.Token)

	answers := []model.SubmitAnswerRequest{
		{QuestionID: "capital", OptionID: "high"},
		{QuestionID: "time", OptionID: "full-time"},
		{QuestionID: "risk", Value: floatPtr(5)},
		{QuestionID: "skills", OptionIDs: []string{"tech", "marketing", "management", "finance"}},
		{QuestionID: "motivation", OptionIDs: []string{"opportunity"}},
		{QuestionID: "experience", OptionID: "successful"},
		{QuestionID: "sector", OptionID: "technology"},
	}
	for _, a := range answers {
		rec := doJSON(t, router, http.MethodPost, "/v1/quiz/answers", started.Token, a, nil)
		require.Equal(t, http.StatusOK, rec.Code, "answer to %s", a.QuestionID)
	}

	var progress model.Progress
	rec = doJSON(t, router, http.MethodGet, "/v1/quiz/progress", started.Token, nil, &progress)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, progress.Complete)

	var result model.QuizResult
	rec = doJSON(t, router, http.MethodGet, "/v1/quiz/results", started.Token, nil, &result)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, result.Profile)
	assert.Equal(t, "opportunist", result.Profile.Archetype.ID)
	require.Len(t, result.Recommendations, 1)
	assert.Equal(t, "ecommerce", result.Recommendations[0].ID)
}

func TestSubmitAnswerRejectsBadInput(t *testing.T) {
	router := newTestRouter(t)

	var started model.StartQuizResponse
	doJSON(t, router, http.MethodPost, "/v1/quiz", "", nil, &started)

	rec := doJSON(t, router, http.MethodPost, "/v1/quiz/answers", started.Token,
		model.SubmitAnswerRequest{QuestionID: "nope", OptionID: "x"}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/v1/quiz/answers", started.Token,
		model.SubmitAnswerRequest{QuestionID: "risk", Value: floatPtr(42)}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func floatPtr(v float64) *float64 { return &v }
