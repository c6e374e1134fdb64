package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	storagemocks "lingo-backend/internal/storage/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func serveUpload(h *UploadHandler, target string) *httptest.ResponseRecorder {
	router := gin.New()
	router.GET("/uploads/*filepath", h.Serve)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestUploadHandler_Serve(t *testing.T) {
	t.Run("redirects to a pre-signed url", func(t *testing.T) {
		var gotKey string
		var gotExpiry time.Duration
		store := &storagemocks.MockStorage{
			GetPresignedURLFunc: func(ctx context.Context, key string, expiry time.Duration) (string, error) {
				gotKey = key
				gotExpiry = expiry
				return "https://minio.example.com/bucket/" + key + "?signature=abc", nil
			},
		}
		h := NewUploadHandler(store)

		rec := serveUpload(h, "/uploads/photos/1756600000000-me.png")

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "uploads/photos/1756600000000-me.png", gotKey)
		assert.Equal(t, downloadURLExpiry, gotExpiry)
		assert.Equal(t, "https://minio.example.com/bucket/uploads/photos/1756600000000-me.png?signature=abc", rec.Header().Get("Location"))
	})

	t.Run("rejects path traversal", func(t *testing.T) {
		signCalled := false
		store := &storagemocks.MockStorage{
			GetPresignedURLFunc: func(ctx context.Context, key string, expiry time.Duration) (string, error) {
				signCalled = true
				return "", nil
			},
		}
		h := NewUploadHandler(store)

		rec := serveUpload(h, "/uploads/photos/../secrets")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.False(t, signCalled)
	})

	t.Run("returns 404 when signing fails", func(t *testing.T) {
		store := &storagemocks.MockStorage{
			GetPresignedURLFunc: func(ctx context.Context, key string, expiry time.Duration) (string, error) {
				return "", assert.AnError
			},
		}
		h := NewUploadHandler(store)

		rec := serveUpload(h, "/uploads/photos/missing.png")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
