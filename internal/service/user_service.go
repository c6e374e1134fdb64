package service

import (
	"context"
	"time"

	"lingo-backend/internal/cache"
	apperrors "lingo-backend/internal/errors"
	"lingo-backend/internal/models"
	"lingo-backend/internal/repository"
	"lingo-backend/internal/storage"
	"lingo-backend/pkg/auth"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const profileCacheTTL = 15 * time.Minute

// UserService handles business logic for profile operations.
type UserService struct {
	repo  repository.UserRepository
	store storage.Storage
	cache cache.Cache
}

// NewUserService creates a new UserService.
func NewUserService(repo repository.UserRepository, store storage.Storage, cache cache.Cache) *UserService {
	return &UserService{
		repo:  repo,
		store: store,
		cache: cache,
	}
}

// GetProfile returns the projected profile for an email (with caching).
func (s *UserService) GetProfile(ctx context.Context, email string) (*models.Profile, error) {
	cacheKey := cache.ProfileCacheKey(email)
	var cached models.Profile
	found, err := s.cache.Get(ctx, cacheKey, &cached)
	if err == nil && found {
		return &cached, nil // Cache hit
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	profile := models.ProfileFromUser(user)

	// Store in cache (ignore errors - cache is best effort)
	_ = s.cache.Set(ctx, cacheKey, profile, profileCacheTTL)

	return profile, nil
}

// GetProfileByID returns the profile for a user ID (token subject).
func (s *UserService) GetProfileByID(ctx context.Context, id string) (*models.Profile, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}

	user, err := s.repo.FindByID(ctx, objectID)
	if err != nil {
		return nil, err
	}

	return models.ProfileFromUser(user), nil
}

// UpdateProfile applies a partial-field merge update keyed by email. Fields
// are whitelisted here, so identity fields can never be overwritten. An
// unknown email is reported as not-found; an update that changes nothing is
// reported as ErrNoChanges.
func (s *UserService) UpdateProfile(ctx context.Context, req *models.UpdateProfileRequest, photo *FileUpload) error {
	fields := bson.M{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Phone != nil {
		fields["phone"] = *req.Phone
	}
	if req.DateOfBirth != nil {
		fields["dateOfBirth"] = *req.DateOfBirth
	}
	if req.Address != nil {
		fields["address"] = *req.Address
	}
	if req.Gender != nil {
		fields["gender"] = *req.Gender
	}

	if photo != nil {
		ref, err := s.store.UploadFile(ctx, photoFolder, photo.Name, photo.Body, photo.ContentType)
		if err != nil {
			return err
		}
		fields["photoURL"] = ref
	}

	modified, err := s.repo.UpdateByEmail(ctx, req.Email, fields)
	if err != nil {
		return err
	}
	if modified == 0 {
		return apperrors.ErrNoChanges
	}

	// Invalidate cache
	_ = s.cache.Delete(ctx, cache.ProfileCacheKey(req.Email))

	return nil
}

// UpdatePassword overwrites the user's password with a fresh hash.
func (s *UserService) UpdatePassword(ctx context.Context, req *models.UpdatePasswordRequest) error {
	hashed, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}

	// A fresh bcrypt hash never equals the stored one, so a zero modified
	// count here means the write was lost, not that nothing changed.
	modified, err := s.repo.UpdatePassword(ctx, req.Email, hashed)
	if err != nil {
		return err
	}
	if modified == 0 {
		return apperrors.ErrNoChanges
	}

	return nil
}
