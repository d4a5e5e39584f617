package catalog

import (
	"fmt"

	"bizmatch/internal/model"
)

// ArchetypeEntry is the storable form of an archetype: it references its
// recommended businesses by id. Catalog resolution turns entries into
// model.Archetype records with resolved pools, keeping the business catalog
// the single source of truth.
type ArchetypeEntry struct {
	ID                string          `json:"id" bson:"_id"`
	Name              string          `json:"name" bson:"name"`
	Description       string          `json:"description" bson:"description"`
	Characteristics   []string        `json:"characteristics" bson:"characteristics"`
	IdealCapitalRange [2]int          `json:"idealCapitalRange" bson:"idealCapitalRange"`
	RiskLevel         model.RiskLevel `json:"riskLevel" bson:"riskLevel"`
	BusinessIDs       []string        `json:"businessIds" bson:"businessIds"`
}

// Catalog holds the static reference data: the ordered questionnaire, the
// business types, and the archetypes with resolved recommendation pools.
// Built once at startup and read-only afterwards, so it is safe to share
// across handlers without locking.
type Catalog struct {
	questions  []model.Question
	businesses map[string]*model.BusinessRecommendation
	archetypes map[string]*model.Archetype
	order      []string // archetype ids in catalog order
}

// New builds a catalog from raw data and validates it: unique question ids,
// options present where the kind demands them, sane scale bounds, and every
// archetype business id resolving to a cataloged business.
func New(questions []model.Question, businesses []model.BusinessRecommendation, archetypes []ArchetypeEntry) (*Catalog, error) {
	c := &Catalog{
		questions:  questions,
		businesses: make(map[string]*model.BusinessRecommendation, len(businesses)),
		archetypes: make(map[string]*model.Archetype, len(archetypes)),
	}

	seen := make(map[string]bool, len(questions))
	for i := range questions {
		q := &questions[i]
		if seen[q.ID] {
			return nil, fmt.Errorf("duplicate question id %q", q.ID)
		}
		seen[q.ID] = true

		switch q.Kind {
		case model.QuestionKindSingle, model.QuestionKindMulti:
			if len(q.Options) == 0 {
				return nil, fmt.Errorf("question %q: kind %s requires options", q.ID, q.Kind)
			}
			opts := make(map[string]bool, len(q.Options))
			for _, o := range q.Options {
				if opts[o.ID] {
					return nil, fmt.Errorf("question %q: duplicate option id %q", q.ID, o.ID)
				}
				opts[o.ID] = true
			}
		case model.QuestionKindScale, model.QuestionKindSlider:
			if q.ScaleMin >= q.ScaleMax {
				return nil, fmt.Errorf("question %q: kind %s requires scaleMin < scaleMax", q.ID, q.Kind)
			}
		default:
			return nil, fmt.Errorf("question %q: unknown kind %q", q.ID, q.Kind)
		}
	}

	for i := range businesses {
		b := &businesses[i]
		if _, ok := c.businesses[b.ID]; ok {
			return nil, fmt.Errorf("duplicate business id %q", b.ID)
		}
		c.businesses[b.ID] = b
	}

	for _, e := range archetypes {
		if _, ok := c.archetypes[e.ID]; ok {
			return nil, fmt.Errorf("duplicate archetype id %q", e.ID)
		}
		a := &model.Archetype{
			ID:                e.ID,
			Name:              e.Name,
			Description:       e.Description,
			Characteristics:   e.Characteristics,
			IdealCapitalRange: e.IdealCapitalRange,
			RiskLevel:         e.RiskLevel,
		}
		for _, id := range e.BusinessIDs {
			b, ok := c.businesses[id]
			if !ok {
				return nil, fmt.Errorf("archetype %q references unknown business %q", e.ID, id)
			}
			a.RecommendedBusinesses = append(a.RecommendedBusinesses, b)
		}
		c.archetypes[e.ID] = a
		c.order = append(c.order, e.ID)
	}

	return c, nil
}

// Default builds the catalog from the embedded reference data
func Default() (*Catalog, error) {
	return New(Questions(), Businesses(), Archetypes())
}

// Questions returns the questionnaire in presentation order
func (c *Catalog) Questions() []model.Question {
	return c.questions
}

// Question returns the question with the given id, or nil
func (c *Catalog) Question(id string) *model.Question {
	for i := range c.questions {
		if c.questions[i].ID == id {
			return &c.questions[i]
		}
	}
	return nil
}

// QuestionCount returns the questionnaire length
func (c *Catalog) QuestionCount() int {
	return len(c.questions)
}

// Business returns the business with the given id, or nil
func (c *Catalog) Business(id string) *model.BusinessRecommendation {
	return c.businesses[id]
}

// Archetype returns the archetype with the given id, or nil
func (c *Catalog) Archetype(id string) *model.Archetype {
	return c.archetypes[id]
}

// Archetypes returns all archetypes in catalog order
func (c *Catalog) Archetypes() []*model.Archetype {
	out := make([]*model.Archetype, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.archetypes[id])
	}
	return out
}
