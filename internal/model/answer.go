package model

// ResponseValue carries the answered value; which field is set depends on
// the question kind (Number for SINGLE/SCALE/SLIDER, Choices for MULTI).
type ResponseValue struct {
	Number  float64  `json:"number,omitempty" bson:"number,omitempty"`
	Text    string   `json:"text,omitempty" bson:"text,omitempty"`
	Choices []string `json:"choices,omitempty" bson:"choices,omitempty"`
}

// Answer is a respondent's recorded value for one question. A session keeps
// at most one Answer per question id; re-answering replaces the old one.
type Answer struct {
	QuestionID string        `json:"questionId" bson:"questionId"`
	Value      ResponseValue `json:"value" bson:"value"`
	Points     int           `json:"points" bson:"points"`
}
