package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/shopfront/storefront-api/internal/core/domain"
	"github.com/shopfront/storefront-api/internal/core/ports"
)

// CatalogService reads pages and products from the record store. Unpublished
// pages are only visible when the caller passed an authenticated staff check.
type CatalogService struct {
	repo   ports.CatalogRepository
	logger zerolog.Logger
}

func NewCatalogService(repo ports.CatalogRepository, logger zerolog.Logger) *CatalogService {
	return &CatalogService{repo: repo, logger: logger}
}

func (s *CatalogService) GetPage(ctx context.Context, slug string, includeUnpublished bool) (*domain.Page, error) {
	page, err := s.repo.GetPageBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !page.Published && !includeUnpublished {
		return nil, domain.ErrPageNotFound
	}
	return page, nil
}

func (s *CatalogService) GetProduct(ctx context.Context, slug string) (*domain.Product, error) {
	return s.repo.GetProductBySlug(ctx, slug)
}

func (s *CatalogService) ListPages(ctx context.Context, includeUnpublished bool) ([]domain.Page, error) {
	pages, err := s.repo.ListPages(ctx, !includeUnpublished)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list pages")
		return nil, err
	}
	return pages, nil
}
