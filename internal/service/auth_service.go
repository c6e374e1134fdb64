package service

import (
	"context"

	apperrors "lingo-backend/internal/errors"
	"lingo-backend/internal/models"
	"lingo-backend/internal/repository"
	"lingo-backend/internal/storage"
	"lingo-backend/pkg/auth"
)

// photoFolder is the upload subfolder for profile photos.
const photoFolder = "photos"

// AdminCredentials holds the out-of-band configured admin login.
type AdminCredentials struct {
	Email    string
	Password string
}

// AuthService handles registration and login business logic.
type AuthService struct {
	userRepo   repository.UserRepository
	store      storage.Storage
	jwtManager *auth.JWTManager
	admin      AdminCredentials
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository, store storage.Storage, jwtManager *auth.JWTManager, admin AdminCredentials) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		store:      store,
		jwtManager: jwtManager,
		admin:      admin,
	}
}

// Register creates a new user account. The optional photo is persisted to
// the blob store first; a store failure after a successful upload leaves an
// orphaned object with no compensating cleanup.
func (s *AuthService) Register(ctx context.Context, req *models.RegisterRequest, photo *FileUpload) (string, error) {
	if req.Password != req.ConfirmPassword {
		return "", apperrors.ErrPasswordMismatch
	}

	var photoURL *string
	if photo != nil {
		ref, err := s.store.UploadFile(ctx, photoFolder, photo.Name, photo.Body, photo.ContentType)
		if err != nil {
			return "", err
		}
		photoURL = &ref
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return "", err
	}

	user := &models.User{
		Name:        req.Name,
		Phone:       req.Phone,
		Email:       req.Email,
		DateOfBirth: req.DateOfBirth,
		Address:     req.Address,
		Gender:      req.Gender,
		Password:    hashed,
		PhotoURL:    photoURL,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return "", err
	}

	return user.ID.Hex(), nil
}

// Login authenticates a learner and returns a signed token with the profile.
func (s *AuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if err := auth.CheckPassword(req.Password, user.Password); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtManager.GenerateToken(user.ID.Hex(), auth.RoleUser)
	if err != nil {
		return nil, err
	}

	return &models.LoginResponse{
		Token: token,
		User:  *models.ProfileFromUser(user),
	}, nil
}

// AdminLogin authenticates against the configured admin credentials. There
// is no admin document in the store; the credentials come from the
// environment.
func (s *AuthService) AdminLogin(ctx context.Context, req *models.LoginRequest) (*models.AdminLoginResponse, error) {
	if req.Email != s.admin.Email || req.Password != s.admin.Password {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtManager.GenerateToken(s.admin.Email, auth.RoleAdmin)
	if err != nil {
		return nil, err
	}

	return &models.AdminLoginResponse{Token: token}, nil
}
