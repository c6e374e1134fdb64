// Package mocks provides mock implementations of service interfaces for testing.
package mocks

import (
	"context"

	"lingo-backend/internal/models"
	"lingo-backend/internal/service"
)

// MockAuthService is a mock implementation of AuthServicer.
type MockAuthService struct {
	RegisterFunc   func(ctx context.Context, req *models.RegisterRequest, photo *service.FileUpload) (string, error)
	LoginFunc      func(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error)
	AdminLoginFunc func(ctx context.Context, req *models.LoginRequest) (*models.AdminLoginResponse, error)
}

func (m *MockAuthService) Register(ctx context.Context, req *models.RegisterRequest, photo *service.FileUpload) (string, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, req, photo)
	}
	return "", nil
}

func (m *MockAuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockAuthService) AdminLogin(ctx context.Context, req *models.LoginRequest) (*models.AdminLoginResponse, error) {
	if m.AdminLoginFunc != nil {
		return m.AdminLoginFunc(ctx, req)
	}
	return nil, nil
}

// MockUserService is a mock implementation of UserServicer.
type MockUserService struct {
	GetProfileFunc     func(ctx context.Context, email string) (*models.Profile, error)
	GetProfileByIDFunc func(ctx context.Context, id string) (*models.Profile, error)
	UpdateProfileFunc  func(ctx context.Context, req *models.UpdateProfileRequest, photo *service.FileUpload) error
	UpdatePasswordFunc func(ctx context.Context, req *models.UpdatePasswordRequest) error
}

func (m *MockUserService) GetProfile(ctx context.Context, email string) (*models.Profile, error) {
	if m.GetProfileFunc != nil {
		return m.GetProfileFunc(ctx, email)
	}
	return nil, nil
}

func (m *MockUserService) GetProfileByID(ctx context.Context, id string) (*models.Profile, error) {
	if m.GetProfileByIDFunc != nil {
		return m.GetProfileByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockUserService) UpdateProfile(ctx context.Context, req *models.UpdateProfileRequest, photo *service.FileUpload) error {
	if m.UpdateProfileFunc != nil {
		return m.UpdateProfileFunc(ctx, req, photo)
	}
	return nil
}

func (m *MockUserService) UpdatePassword(ctx context.Context, req *models.UpdatePasswordRequest) error {
	if m.UpdatePasswordFunc != nil {
		return m.UpdatePasswordFunc(ctx, req)
	}
	return nil
}

// MockPackageService is a mock implementation of PackageServicer.
type MockPackageService struct {
	ListPackagesFunc func(ctx context.Context) ([]models.PackageDocument, error)
	AddPackageFunc   func(ctx context.Context, req *models.AddPackageRequest, files map[string]*service.FileUpload) (*models.LearningPackage, error)
}

func (m *MockPackageService) ListPackages(ctx context.Context) ([]models.PackageDocument, error) {
	if m.ListPackagesFunc != nil {
		return m.ListPackagesFunc(ctx)
	}
	return nil, nil
}

func (m *MockPackageService) AddPackage(ctx context.Context, req *models.AddPackageRequest, files map[string]*service.FileUpload) (*models.LearningPackage, error) {
	if m.AddPackageFunc != nil {
		return m.AddPackageFunc(ctx, req, files)
	}
	return nil, nil
}

// MockExamService is a mock implementation of ExamServicer.
type MockExamService struct {
	GetHistoryFunc func(ctx context.Context, studentID string) (*models.ExamHistory, error)
	SubmitExamFunc func(ctx context.Context, req *models.SubmitExamRequest) (*models.ExamResult, error)
}

func (m *MockExamService) GetHistory(ctx context.Context, studentID string) (*models.ExamHistory, error) {
	if m.GetHistoryFunc != nil {
		return m.GetHistoryFunc(ctx, studentID)
	}
	return nil, nil
}

func (m *MockExamService) SubmitExam(ctx context.Context, req *models.SubmitExamRequest) (*models.ExamResult, error) {
	if m.SubmitExamFunc != nil {
		return m.SubmitExamFunc(ctx, req)
	}
	return nil, nil
}

// MockCatalogService is a mock implementation of CatalogServicer.
type MockCatalogService struct {
	ListBundlesFunc func(ctx context.Context) ([]models.Bundle, error)
	ListFAQsFunc    func(ctx context.Context) ([]models.FAQ, error)
}

func (m *MockCatalogService) ListBundles(ctx context.Context) ([]models.Bundle, error) {
	if m.ListBundlesFunc != nil {
		return m.ListBundlesFunc(ctx)
	}
	return nil, nil
}

func (m *MockCatalogService) ListFAQs(ctx context.Context) ([]models.FAQ, error) {
	if m.ListFAQsFunc != nil {
		return m.ListFAQsFunc(ctx)
	}
	return nil, nil
}
