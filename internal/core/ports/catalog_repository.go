package ports

import (
	"context"

	"github.com/shopfront/storefront-api/internal/core/domain"
)

// CatalogRepository exposes the record-store lookups the storefront reads.
type CatalogRepository interface {
	GetPageBySlug(ctx context.Context, slug string) (*domain.Page, error)
	GetProductBySlug(ctx context.Context, slug string) (*domain.Product, error)
	ListPages(ctx context.Context, publishedOnly bool) ([]domain.Page, error)
}
