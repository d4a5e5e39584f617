package model

// QuestionKind defines how a question is presented and answered
type QuestionKind string

const (
	QuestionKindSingle QuestionKind = "SINGLE" // One option from a fixed list
	QuestionKindMulti  QuestionKind = "MULTI"  // Any subset of the options
	QuestionKindScale  QuestionKind = "SCALE"  // Integer rating between ScaleMin and ScaleMax
	QuestionKindSlider QuestionKind = "SLIDER" // Numeric value between ScaleMin and ScaleMax
)

// QuestionCategory tags which profile factor a question feeds
type QuestionCategory string

const (
	CategoryCapital    QuestionCategory = "capital"
	CategoryTime       QuestionCategory = "time"
	CategorySkills     QuestionCategory = "skills"
	CategoryRisk       QuestionCategory = "risk"
	CategoryMotivation QuestionCategory = "motivation"
	CategoryExperience QuestionCategory = "experience"
)

// Option is one selectable choice of a SINGLE or MULTI question
type Option struct {
	ID          string `json:"id" bson:"id"`
	Label       string `json:"label" bson:"label"`
	Value       int    `json:"value" bson:"value"` // points contributed when selected
	Description string `json:"description,omitempty" bson:"description,omitempty"`
}

// Question is an entry of the ordered quiz questionnaire
type Question struct {
	ID          string           `json:"id" bson:"_id"`
	Prompt      string           `json:"prompt" bson:"prompt"`
	Description string           `json:"description,omitempty" bson:"description,omitempty"`
	Kind        QuestionKind     `json:"kind" bson:"kind"`
	Category    QuestionCategory `json:"category" bson:"category"`
	Options     []Option         `json:"options,omitempty" bson:"options,omitempty"` // SINGLE/MULTI only
	ScaleMin    int              `json:"scaleMin,omitempty" bson:"scaleMin,omitempty"`
	ScaleMax    int              `json:"scaleMax,omitempty" bson:"scaleMax,omitempty"`
	ScaleStep   int              `json:"scaleStep,omitempty" bson:"scaleStep,omitempty"`
}

// Option returns the option with the given id, or nil
func (q *Question) Option(id string) *Option {
	for i := range q.Options {
		if q.Options[i].ID == id {
			return &q.Options[i]
		}
	}
	return nil
}
