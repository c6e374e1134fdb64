// Package mocks provides a mock implementation of the Storage interface for testing.
package mocks

import (
	"context"
	"io"
	"time"
)

// MockStorage is a mock implementation of storage.Storage.
type MockStorage struct {
	UploadFileFunc      func(ctx context.Context, folder, originalName string, body io.Reader, contentType string) (string, error)
	PutObjectFunc       func(ctx context.Context, key string, body io.Reader, contentType string) error
	GetPresignedURLFunc func(ctx context.Context, key string, expiry time.Duration) (string, error)
}

func (m *MockStorage) UploadFile(ctx context.Context, folder, originalName string, body io.Reader, contentType string) (string, error) {
	if m.UploadFileFunc != nil {
		return m.UploadFileFunc(ctx, folder, originalName, body, contentType)
	}
	return "/uploads/" + folder + "/" + originalName, nil
}

func (m *MockStorage) PutObject(ctx context.Context, key string, body io.Reader, contentType string) error {
	if m.PutObjectFunc != nil {
		return m.PutObjectFunc(ctx, key, body, contentType)
	}
	return nil
}

func (m *MockStorage) GetPresignedURL(ctx context.Context, key string, expiry time.Duration) (string, error) {
	if m.GetPresignedURLFunc != nil {
		return m.GetPresignedURLFunc(ctx, key, expiry)
	}
	return "", nil
}
