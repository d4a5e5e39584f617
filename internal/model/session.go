package model

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// QuizSession is the per-respondent state kept in Redis while a quiz runs
type QuizSession struct {
	ID        string    `json:"id"`
	StartedAt time.Time `json:"startedAt"`
	Completed bool      `json:"completed"`
}

// SessionClaims is the JWT payload of an anonymous quiz session token
type SessionClaims struct {
	SessionID string `json:"sessionId"`
	jwt.RegisteredClaims
}

// StartQuizResponse is returned when a new session is opened
type StartQuizResponse struct {
	SessionID     string `json:"sessionId"`
	Token         string `json:"token"`
	QuestionCount int    `json:"questionCount"`
}

// SubmitAnswerRequest is the request body for answering one question.
// Exactly one of OptionID, OptionIDs, Value is meaningful, depending on the
// question kind.
type SubmitAnswerRequest struct {
	QuestionID string   `json:"questionId"`
	OptionID   string   `json:"optionId,omitempty"`
	OptionIDs  []string `json:"optionIds,omitempty"`
	Value      *float64 `json:"value,omitempty"`
}

// SubmitAnswerResponse echoes the recorded answer plus progress
type SubmitAnswerResponse struct {
	Answer   *Answer   `json:"answer"`
	Progress *Progress `json:"progress"`
}

// Progress reports how far a session has advanced through the questionnaire
type Progress struct {
	Answered int  `json:"answered"`
	Total    int  `json:"total"`
	Complete bool `json:"complete"`
}

// QuizResult is the final payload: the derived profile plus the ranked
// business recommendations
type QuizResult struct {
	Profile         *Profile                  `json:"profile"`
	Recommendations []*BusinessRecommendation `json:"recommendations"`
}
