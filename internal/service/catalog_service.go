package service

import (
	"context"

	"lingo-backend/internal/models"
	"lingo-backend/internal/repository"
)

// CatalogService serves the read-only bundle and FAQ catalogs.
type CatalogService struct {
	bundleRepo repository.BundleRepository
	faqRepo    repository.FAQRepository
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(bundleRepo repository.BundleRepository, faqRepo repository.FAQRepository) *CatalogService {
	return &CatalogService{
		bundleRepo: bundleRepo,
		faqRepo:    faqRepo,
	}
}

// ListBundles returns the full bundle catalog.
func (s *CatalogService) ListBundles(ctx context.Context) ([]models.Bundle, error) {
	return s.bundleRepo.FindAll(ctx)
}

// ListFAQs returns every FAQ entry.
func (s *CatalogService) ListFAQs(ctx context.Context) ([]models.FAQ, error) {
	return s.faqRepo.FindAll(ctx)
}
