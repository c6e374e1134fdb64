package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "lingo-backend/internal/errors"
	"lingo-backend/internal/middleware"
	"lingo-backend/internal/models"
	"lingo-backend/internal/service"
	"lingo-backend/internal/service/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileHandler_GetProfile(t *testing.T) {
	t.Run("requires the email query parameter", func(t *testing.T) {
		h := NewProfileHandler(&mocks.MockUserService{})

		req := httptest.NewRequest(http.MethodGet, "/profile", nil)
		rec := serve(http.MethodGet, "/profile", h.GetProfile, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("returns 404 for an unknown email", func(t *testing.T) {
		mockService := &mocks.MockUserService{
			GetProfileFunc: func(ctx context.Context, email string) (*models.Profile, error) {
				return nil, apperrors.ErrUserNotFound
			},
		}
		h := NewProfileHandler(mockService)

		req := httptest.NewRequest(http.MethodGet, "/profile?email=nobody@example.com", nil)
		rec := serve(http.MethodGet, "/profile", h.GetProfile, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("returns the profile without any password field", func(t *testing.T) {
		photo := "/uploads/photos/me.png"
		mockService := &mocks.MockUserService{
			GetProfileFunc: func(ctx context.Context, email string) (*models.Profile, error) {
				return &models.Profile{
					Name:     "Ayesha Rahman",
					Email:    email,
					PhotoURL: &photo,
				}, nil
			},
		}
		h := NewProfileHandler(mockService)

		req := httptest.NewRequest(http.MethodGet, "/profile?email=ayesha@example.com", nil)
		rec := serve(http.MethodGet, "/profile", h.GetProfile, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		data := dataMap(t, decodeResponse(t, rec))
		assert.Equal(t, "Ayesha Rahman", data["name"])
		assert.Equal(t, photo, data["photoURL"])
		assert.NotContains(t, rec.Body.String(), "password")
	})
}

func TestProfileHandler_UpdateProfile(t *testing.T) {
	t.Run("forwards only the submitted fields", func(t *testing.T) {
		var gotReq *models.UpdateProfileRequest
		mockService := &mocks.MockUserService{
			UpdateProfileFunc: func(ctx context.Context, req *models.UpdateProfileRequest, photo *service.FileUpload) error {
				gotReq = req
				return nil
			},
		}
		h := NewProfileHandler(mockService)

		fields := map[string]string{
			"email":   "ayesha@example.com",
			"name":    "Ayesha R.",
			"address": "Chattogram",
		}
		req := multipartRequest(t, http.MethodPut, "/profile/update", fields, nil)
		rec := serve(http.MethodPut, "/profile/update", h.UpdateProfile, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, gotReq)
		require.NotNil(t, gotReq.Name)
		assert.Equal(t, "Ayesha R.", *gotReq.Name)
		require.NotNil(t, gotReq.Address)
		assert.Equal(t, "Chattogram", *gotReq.Address)
		assert.Nil(t, gotReq.Phone)
		assert.Nil(t, gotReq.Gender)
	})

	t.Run("forwards a new photo", func(t *testing.T) {
		var gotPhoto *service.FileUpload
		mockService := &mocks.MockUserService{
			UpdateProfileFunc: func(ctx context.Context, req *models.UpdateProfileRequest, photo *service.FileUpload) error {
				gotPhoto = photo
				return nil
			},
		}
		h := NewProfileHandler(mockService)

		fields := map[string]string{"email": "ayesha@example.com"}
		files := []filePart{{field: "photo", name: "new.png", contentType: "image/png", content: "png"}}
		req := multipartRequest(t, http.MethodPut, "/profile/update", fields, files)
		rec := serve(http.MethodPut, "/profile/update", h.UpdateProfile, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, gotPhoto)
		assert.Equal(t, "new.png", gotPhoto.Name)
	})

	t.Run("returns 404 for an unknown email", func(t *testing.T) {
		mockService := &mocks.MockUserService{
			UpdateProfileFunc: func(ctx context.Context, req *models.UpdateProfileRequest, photo *service.FileUpload) error {
				return apperrors.ErrUserNotFound
			},
		}
		h := NewProfileHandler(mockService)

		fields := map[string]string{"email": "nobody@example.com", "name": "X"}
		req := multipartRequest(t, http.MethodPut, "/profile/update", fields, nil)
		rec := serve(http.MethodPut, "/profile/update", h.UpdateProfile, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("returns 400 when nothing changed", func(t *testing.T) {
		mockService := &mocks.MockUserService{
			UpdateProfileFunc: func(ctx context.Context, req *models.UpdateProfileRequest, photo *service.FileUpload) error {
				return apperrors.ErrNoChanges
			},
		}
		h := NewProfileHandler(mockService)

		fields := map[string]string{"email": "ayesha@example.com", "name": "Ayesha Rahman"}
		req := multipartRequest(t, http.MethodPut, "/profile/update", fields, nil)
		rec := serve(http.MethodPut, "/profile/update", h.UpdateProfile, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("rejects a missing email", func(t *testing.T) {
		h := NewProfileHandler(&mocks.MockUserService{})

		req := multipartRequest(t, http.MethodPut, "/profile/update", map[string]string{"name": "X"}, nil)
		rec := serve(http.MethodPut, "/profile/update", h.UpdateProfile, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestProfileHandler_UpdatePassword(t *testing.T) {
	t.Run("updates the password", func(t *testing.T) {
		var gotReq *models.UpdatePasswordRequest
		mockService := &mocks.MockUserService{
			UpdatePasswordFunc: func(ctx context.Context, req *models.UpdatePasswordRequest) error {
				gotReq = req
				return nil
			},
		}
		h := NewProfileHandler(mockService)

		req := jsonRequest(t, http.MethodPut, "/update-password", models.UpdatePasswordRequest{
			Email:       "ayesha@example.com",
			NewPassword: "fresh-secret",
		})
		rec := serve(http.MethodPut, "/update-password", h.UpdatePassword, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, gotReq)
		assert.Equal(t, "fresh-secret", gotReq.NewPassword)
	})

	t.Run("rejects a short password", func(t *testing.T) {
		h := NewProfileHandler(&mocks.MockUserService{})

		req := jsonRequest(t, http.MethodPut, "/update-password", models.UpdatePasswordRequest{
			Email:       "ayesha@example.com",
			NewPassword: "abc",
		})
		rec := serve(http.MethodPut, "/update-password", h.UpdatePassword, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("returns 404 for an unknown email", func(t *testing.T) {
		mockService := &mocks.MockUserService{
			UpdatePasswordFunc: func(ctx context.Context, req *models.UpdatePasswordRequest) error {
				return apperrors.ErrUserNotFound
			},
		}
		h := NewProfileHandler(mockService)

		req := jsonRequest(t, http.MethodPut, "/update-password", models.UpdatePasswordRequest{
			Email:       "nobody@example.com",
			NewPassword: "fresh-secret",
		})
		rec := serve(http.MethodPut, "/update-password", h.UpdatePassword, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestProfileHandler_Me(t *testing.T) {
	t.Run("returns the profile of the token subject", func(t *testing.T) {
		mockService := &mocks.MockUserService{
			GetProfileByIDFunc: func(ctx context.Context, id string) (*models.Profile, error) {
				assert.Equal(t, "507f1f77bcf86cd799439011", id)
				return &models.Profile{Email: "ayesha@example.com"}, nil
			},
		}
		h := NewProfileHandler(mockService)

		router := gin.New()
		router.GET("/me", func(c *gin.Context) {
			c.Set(middleware.UserIDKey, "507f1f77bcf86cd799439011")
		}, h.Me)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/me", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		data := dataMap(t, decodeResponse(t, rec))
		assert.Equal(t, "ayesha@example.com", data["email"])
	})

	t.Run("returns 401 without an authenticated identity", func(t *testing.T) {
		h := NewProfileHandler(&mocks.MockUserService{})

		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		rec := serve(http.MethodGet, "/me", h.Me, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
