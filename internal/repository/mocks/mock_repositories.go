// Package mocks provides mock implementations of repository interfaces for testing.
package mocks

import (
	"context"

	"lingo-backend/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	CreateFunc         func(ctx context.Context, user *models.User) error
	FindByIDFunc       func(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindByEmailFunc    func(ctx context.Context, email string) (*models.User, error)
	UpdateByEmailFunc  func(ctx context.Context, email string, fields bson.M) (int64, error)
	UpdatePasswordFunc func(ctx context.Context, email, passwordHash string) (int64, error)
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil
}

func (m *MockUserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *MockUserRepository) UpdateByEmail(ctx context.Context, email string, fields bson.M) (int64, error) {
	if m.UpdateByEmailFunc != nil {
		return m.UpdateByEmailFunc(ctx, email, fields)
	}
	return 0, nil
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, email, passwordHash string) (int64, error) {
	if m.UpdatePasswordFunc != nil {
		return m.UpdatePasswordFunc(ctx, email, passwordHash)
	}
	return 0, nil
}

// MockPackageRepository is a mock implementation of PackageRepository.
type MockPackageRepository struct {
	FindAllFunc       func(ctx context.Context) ([]models.PackageDocument, error)
	AppendPackageFunc func(ctx context.Context, pkg models.LearningPackage) error
}

func (m *MockPackageRepository) FindAll(ctx context.Context) ([]models.PackageDocument, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockPackageRepository) AppendPackage(ctx context.Context, pkg models.LearningPackage) error {
	if m.AppendPackageFunc != nil {
		return m.AppendPackageFunc(ctx, pkg)
	}
	return nil
}

// MockBundleRepository is a mock implementation of BundleRepository.
type MockBundleRepository struct {
	FindAllFunc func(ctx context.Context) ([]models.Bundle, error)
}

func (m *MockBundleRepository) FindAll(ctx context.Context) ([]models.Bundle, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

// MockFAQRepository is a mock implementation of FAQRepository.
type MockFAQRepository struct {
	FindAllFunc func(ctx context.Context) ([]models.FAQ, error)
}

func (m *MockFAQRepository) FindAll(ctx context.Context) ([]models.FAQ, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

// MockExamHistoryRepository is a mock implementation of ExamHistoryRepository.
type MockExamHistoryRepository struct {
	FindByStudentIDFunc func(ctx context.Context, studentID string) (*models.ExamHistory, error)
	AppendExamFunc      func(ctx context.Context, studentID string, exam models.ExamResult) error
}

func (m *MockExamHistoryRepository) FindByStudentID(ctx context.Context, studentID string) (*models.ExamHistory, error) {
	if m.FindByStudentIDFunc != nil {
		return m.FindByStudentIDFunc(ctx, studentID)
	}
	return nil, nil
}

func (m *MockExamHistoryRepository) AppendExam(ctx context.Context, studentID string, exam models.ExamResult) error {
	if m.AppendExamFunc != nil {
		return m.AppendExamFunc(ctx, studentID, exam)
	}
	return nil
}
