package repository

import (
	"context"

	"lingo-backend/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// BundleRepository defines read operations on the bundle catalog.
type BundleRepository interface {
	FindAll(ctx context.Context) ([]models.Bundle, error)
}

type bundleRepository struct {
	collection *mongo.Collection
}

// NewBundleRepository creates a new BundleRepository
func NewBundleRepository(db *mongo.Database) BundleRepository {
	return &bundleRepository{
		collection: db.Collection("bundles"),
	}
}

// FindAll returns the full bundle catalog.
func (r *bundleRepository) FindAll(ctx context.Context) ([]models.Bundle, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var bundles []models.Bundle
	if err := cursor.All(ctx, &bundles); err != nil {
		return nil, err
	}

	if bundles == nil {
		bundles = []models.Bundle{}
	}

	return bundles, nil
}
