// Package repository provides data access operations for the application.
package repository

import (
	"context"
	"errors"
	"time"

	apperrors "lingo-backend/internal/errors"
	"lingo-backend/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateByEmail(ctx context.Context, email string, fields bson.M) (modified int64, err error)
	UpdatePassword(ctx context.Context, email, passwordHash string) (modified int64, err error)
}

// userRepository implements UserRepository using MongoDB
type userRepository struct {
	collection *mongo.Collection
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *mongo.Database) UserRepository {
	return &userRepository{
		collection: db.Collection("users"),
	}
}

// Create inserts a new user. The friendly pre-check catches most duplicates;
// the unique index on email is the authoritative guard, so a racing insert
// surfaces as a duplicate-key error rather than a second user.
func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	existing, _ := r.FindByEmail(ctx, user.Email)
	if existing != nil {
		return apperrors.ErrUserAlreadyExists
	}

	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.ErrUserAlreadyExists
		}
		return err
	}

	user.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// FindByID finds a user by their ID
func (r *userRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var user models.User

	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	return &user, nil
}

// FindByEmail finds a user by their email
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User

	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	return &user, nil
}

// UpdateByEmail applies a partial $set update keyed by email and reports the
// modified count. The _id field is never part of the update document; callers
// build it from a whitelist of profile fields. Only the caller's fields go
// into the change-detecting $set: a payload that writes every field to its
// stored value reports zero modified documents, and updatedAt is bumped in a
// follow-up write only when something actually changed.
func (r *userRepository) UpdateByEmail(ctx context.Context, email string, fields bson.M) (int64, error) {
	delete(fields, "_id")

	if len(fields) == 0 {
		if _, err := r.FindByEmail(ctx, email); err != nil {
			return 0, err
		}
		return 0, nil
	}

	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"email": email},
		bson.M{"$set": fields},
	)
	if err != nil {
		return 0, err
	}

	if result.MatchedCount == 0 {
		return 0, apperrors.ErrUserNotFound
	}

	if result.ModifiedCount > 0 {
		_, err = r.collection.UpdateOne(
			ctx,
			bson.M{"email": email},
			bson.M{"$set": bson.M{"updatedAt": time.Now()}},
		)
		if err != nil {
			return 0, err
		}
	}

	return result.ModifiedCount, nil
}

// UpdatePassword overwrites the stored password hash for a user.
func (r *userRepository) UpdatePassword(ctx context.Context, email, passwordHash string) (int64, error) {
	return r.UpdateByEmail(ctx, email, bson.M{"password": passwordHash})
}
