package storage

import (
	"context"
	"io"
	"time"
)

// UploadPrefix is the fixed URL prefix under which stored objects are exposed.
// Reference strings saved in documents look like /uploads/<folder>/<generated-name>.
const UploadPrefix = "/uploads"

// Storage defines the interface for object storage operations.
type Storage interface {
	// UploadFile stores the body under a generated key inside the given
	// folder and returns the public reference string for the object.
	UploadFile(ctx context.Context, folder, originalName string, body io.Reader, contentType string) (string, error)
	// PutObject uploads an object to storage under an exact key.
	PutObject(ctx context.Context, key string, body io.Reader, contentType string) error
	// GetPresignedURL generates a pre-signed URL for downloading an object.
	GetPresignedURL(ctx context.Context, key string, expiry time.Duration) (string, error)
}

// Ensure S3Client implements Storage interface
var _ Storage = (*S3Client)(nil)
