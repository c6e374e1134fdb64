package repository

import (
	"context"

	"lingo-backend/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// FAQRepository defines read operations on the FAQ catalog.
type FAQRepository interface {
	FindAll(ctx context.Context) ([]models.FAQ, error)
}

type faqRepository struct {
	collection *mongo.Collection
}

// NewFAQRepository creates a new FAQRepository
func NewFAQRepository(db *mongo.Database) FAQRepository {
	return &faqRepository{
		collection: db.Collection("faqs"),
	}
}

// FindAll returns every FAQ entry.
func (r *faqRepository) FindAll(ctx context.Context) ([]models.FAQ, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var faqs []models.FAQ
	if err := cursor.All(ctx, &faqs); err != nil {
		return nil, err
	}

	if faqs == nil {
		faqs = []models.FAQ{}
	}

	return faqs, nil
}
