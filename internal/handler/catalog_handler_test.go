package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"lingo-backend/internal/models"
	"lingo-backend/internal/service/mocks"

	"github.com/stretchr/testify/assert"
)

func TestCatalogHandler_ListBundles(t *testing.T) {
	t.Run("returns the bundle catalog", func(t *testing.T) {
		mockService := &mocks.MockCatalogService{
			ListBundlesFunc: func(ctx context.Context) ([]models.Bundle, error) {
				return []models.Bundle{{Name: "Premium", Price: 49.99, Currency: "BDT"}}, nil
			},
		}
		h := NewCatalogHandler(mockService)

		req := httptest.NewRequest(http.MethodGet, "/get-all-bundles", nil)
		rec := serve(http.MethodGet, "/get-all-bundles", h.ListBundles, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Premium")
	})

	t.Run("maps failures to 500", func(t *testing.T) {
		mockService := &mocks.MockCatalogService{
			ListBundlesFunc: func(ctx context.Context) ([]models.Bundle, error) {
				return nil, assert.AnError
			},
		}
		h := NewCatalogHandler(mockService)

		req := httptest.NewRequest(http.MethodGet, "/get-all-bundles", nil)
		rec := serve(http.MethodGet, "/get-all-bundles", h.ListBundles, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestCatalogHandler_ListFAQs(t *testing.T) {
	t.Run("returns the FAQ list", func(t *testing.T) {
		mockService := &mocks.MockCatalogService{
			ListFAQsFunc: func(ctx context.Context) ([]models.FAQ, error) {
				return []models.FAQ{{Question: "How do I reset my password?", Answer: "Use the update-password endpoint."}}, nil
			},
		}
		h := NewCatalogHandler(mockService)

		req := httptest.NewRequest(http.MethodGet, "/get-faqs", nil)
		rec := serve(http.MethodGet, "/get-faqs", h.ListFAQs, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "How do I reset my password?")
	})

	t.Run("maps failures to 500", func(t *testing.T) {
		mockService := &mocks.MockCatalogService{
			ListFAQsFunc: func(ctx context.Context) ([]models.FAQ, error) {
				return nil, assert.AnError
			},
		}
		h := NewCatalogHandler(mockService)

		req := httptest.NewRequest(http.MethodGet, "/get-faqs", nil)
		rec := serve(http.MethodGet, "/get-faqs", h.ListFAQs, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
