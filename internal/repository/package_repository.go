package repository

import (
	"context"

	apperrors "lingo-backend/internal/errors"
	"lingo-backend/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// PackageRepository defines data operations on the package container.
type PackageRepository interface {
	FindAll(ctx context.Context) ([]models.PackageDocument, error)
	AppendPackage(ctx context.Context, pkg models.LearningPackage) error
}

// packageRepository implements PackageRepository using MongoDB
type packageRepository struct {
	collection *mongo.Collection
}

// NewPackageRepository creates a new PackageRepository
func NewPackageRepository(db *mongo.Database) PackageRepository {
	return &packageRepository{
		collection: db.Collection("packages"),
	}
}

// FindAll returns every package container document.
func (r *packageRepository) FindAll(ctx context.Context) ([]models.PackageDocument, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []models.PackageDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	// Return empty slice instead of nil
	if docs == nil {
		docs = []models.PackageDocument{}
	}

	return docs, nil
}

// AppendPackage atomically pushes a new package onto the container document.
// A missing container is reported rather than created; seeding owns creation.
func (r *packageRepository) AppendPackage(ctx context.Context, pkg models.LearningPackage) error {
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{},
		bson.M{"$push": bson.M{"packages": pkg}},
	)
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return apperrors.ErrPackageStoreNotFound
	}

	return nil
}
