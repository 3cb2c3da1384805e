package ports

import (
	"context"

	"github.com/shopfront/storefront-api/internal/core/domain"
)

type CatalogService interface {
	GetPage(ctx context.Context, slug string, includeUnpublished bool) (*domain.Page, error)
	GetProduct(ctx context.Context, slug string) (*domain.Product, error)
	ListPages(ctx context.Context, includeUnpublished bool) ([]domain.Page, error)
}
