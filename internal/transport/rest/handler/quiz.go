package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"bizmatch/internal/model"
	"bizmatch/internal/service"
	"bizmatch/internal/transport/rest/middleware"
)

// QuizHandler handles the quiz endpoints
type QuizHandler struct {
	quizSvc   *service.QuizService
	resultSvc *service.ResultService
}

// NewQuizHandler creates a new quiz handler
func NewQuizHandler(quizSvc *service.QuizService, resultSvc *service.ResultService) *QuizHandler {
	return &QuizHandler{
		quizSvc:   quizSvc,
		resultSvc: resultSvc,
	}
}

// Start handles POST /v1/quiz
func (h *QuizHandler) Start(w http.ResponseWriter, r *http.Request) {
	resp, err := h.quizSvc.StartSession(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

// Questions handles GET /v1/questions
func (h *QuizHandler) Questions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"questions": h.quizSvc.Questions(),
	})
}

// SubmitAnswer handles POST /v1/quiz/answers
func (h *QuizHandler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.GetSessionID(r.Context())
	if sessionID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req model.SubmitAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.quizSvc.SubmitAnswer(r.Context(), sessionID, &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// Progress handles GET /v1/quiz/progress
func (h *QuizHandler) Progress(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.GetSessionID(r.Context())
	if sessionID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	progress, err := h.quizSvc.Progress(r.Context(), sessionID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, progress)
}

// Results handles GET /v1/quiz/results
func (h *QuizHandler) Results(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.GetSessionID(r.Context())
	if sessionID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	result, err := h.resultSvc.Results(r.Context(), sessionID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrUnknownQuestion),
		errors.Is(err, service.ErrUnknownOption),
		errors.Is(err, service.ErrInvalidValue):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
