// Package service contains business logic for the application.
package service

import (
	"context"
	"io"

	"lingo-backend/internal/models"
)

// FileUpload describes one uploaded file handed down from the HTTP layer.
type FileUpload struct {
	Name        string
	ContentType string
	Body        io.Reader
}

// AuthServicer defines the interface for registration and login operations.
type AuthServicer interface {
	Register(ctx context.Context, req *models.RegisterRequest, photo *FileUpload) (userID string, err error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error)
	AdminLogin(ctx context.Context, req *models.LoginRequest) (*models.AdminLoginResponse, error)
}

// UserServicer defines the interface for profile operations.
type UserServicer interface {
	GetProfile(ctx context.Context, email string) (*models.Profile, error)
	GetProfileByID(ctx context.Context, id string) (*models.Profile, error)
	UpdateProfile(ctx context.Context, req *models.UpdateProfileRequest, photo *FileUpload) error
	UpdatePassword(ctx context.Context, req *models.UpdatePasswordRequest) error
}

// PackageServicer defines the interface for package catalog operations.
type PackageServicer interface {
	ListPackages(ctx context.Context) ([]models.PackageDocument, error)
	AddPackage(ctx context.Context, req *models.AddPackageRequest, files map[string]*FileUpload) (*models.LearningPackage, error)
}

// ExamServicer defines the interface for exam history operations.
type ExamServicer interface {
	GetHistory(ctx context.Context, studentID string) (*models.ExamHistory, error)
	SubmitExam(ctx context.Context, req *models.SubmitExamRequest) (*models.ExamResult, error)
}

// CatalogServicer defines the interface for read-only catalog operations.
type CatalogServicer interface {
	ListBundles(ctx context.Context) ([]models.Bundle, error)
	ListFAQs(ctx context.Context) ([]models.FAQ, error)
}

// Ensure concrete types implement interfaces
var (
	_ AuthServicer    = (*AuthService)(nil)
	_ UserServicer    = (*UserService)(nil)
	_ PackageServicer = (*PackageService)(nil)
	_ ExamServicer    = (*ExamService)(nil)
	_ CatalogServicer = (*CatalogService)(nil)
)
