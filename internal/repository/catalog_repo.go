package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"bizmatch/internal/catalog"
	"bizmatch/internal/model"
)

// CatalogRepo handles MongoDB storage of the static reference catalogs
type CatalogRepo interface {
	Seed(ctx context.Context, questions []model.Question, businesses []model.BusinessRecommendation, archetypes []catalog.ArchetypeEntry) error
	Load(ctx context.Context) (*catalog.Catalog, error)
}

type catalogRepo struct {
	questions  *mongo.Collection
	businesses *mongo.Collection
	archetypes *mongo.Collection
}

// NewCatalogRepo creates a new catalog repository
func NewCatalogRepo(db *mongo.Database) CatalogRepo {
	return &catalogRepo{
		questions:  db.Collection("questions"),
		businesses: db.Collection("businesses"),
		archetypes: db.Collection("archetypes"),
	}
}

// questionDoc carries the questionnaire position; the quiz consumes
// questions in order
type questionDoc struct {
	Order    int            `bson:"order"`
	Question model.Question `bson:",inline"`
}

// Seed replaces the stored catalogs with the given data
func (r *catalogRepo) Seed(ctx context.Context, questions []model.Question, businesses []model.BusinessRecommendation, archetypes []catalog.ArchetypeEntry) error {
	if _, err := r.questions.DeleteMany(ctx, bson.M{}); err != nil {
		return err
	}
	qdocs := make([]interface{}, 0, len(questions))
	for i, q := range questions {
		qdocs = append(qdocs, questionDoc{Order: i, Question: q})
	}
	if _, err := r.questions.InsertMany(ctx, qdocs); err != nil {
		return err
	}

	if _, err := r.businesses.DeleteMany(ctx, bson.M{}); err != nil {
		return err
	}
	bdocs := make([]interface{}, 0, len(businesses))
	for _, b := range businesses {
		bdocs = append(bdocs, b)
	}
	if _, err := r.businesses.InsertMany(ctx, bdocs); err != nil {
		return err
	}

	if _, err := r.archetypes.DeleteMany(ctx, bson.M{}); err != nil {
		return err
	}
	adocs := make([]interface{}, 0, len(archetypes))
	for _, a := range archetypes {
		adocs = append(adocs, a)
	}
	_, err := r.archetypes.InsertMany(ctx, adocs)
	return err
}

// Load reads the stored catalogs and builds a validated catalog from them.
// Returns nil when the collections have not been seeded yet.
func (r *catalogRepo) Load(ctx context.Context) (*catalog.Catalog, error) {
	cursor, err := r.questions.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "order", Value: 1}}))
	if err != nil {
		return nil, err
	}
	var qdocs []questionDoc
	if err := cursor.All(ctx, &qdocs); err != nil {
		return nil, err
	}
	if len(qdocs) == 0 {
		return nil, nil
	}
	questions := make([]model.Question, 0, len(qdocs))
	for _, d := range qdocs {
		questions = append(questions, d.Question)
	}

	cursor, err = r.businesses.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var businesses []model.BusinessRecommendation
	if err := cursor.All(ctx, &businesses); err != nil {
		return nil, err
	}

	cursor, err = r.archetypes.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var archetypes []catalog.ArchetypeEntry
	if err := cursor.All(ctx, &archetypes); err != nil {
		return nil, err
	}
	if len(businesses) == 0 || len(archetypes) == 0 {
		return nil, nil
	}

	return catalog.New(questions, businesses, archetypes)
}
