package service

import (
	"context"
	"sort"

	"github.com/rs/zerolog"

	"github.com/shopfront/storefront-api/internal/core/ports"
)

// CartService implements the addItemToCart contract on top of the cart store.
// A product must exist in the catalog before it can be added.
type CartService struct {
	catalog ports.CatalogRepository
	carts   ports.CartRepository
	logger  zerolog.Logger
}

func NewCartService(catalog ports.CatalogRepository, carts ports.CartRepository, logger zerolog.Logger) *CartService {
	return &CartService{catalog: catalog, carts: carts, logger: logger}
}

func (s *CartService) AddItem(ctx context.Context, cartID, productSlug string, quantity int) error {
	if _, err := s.catalog.GetProductBySlug(ctx, productSlug); err != nil {
		return err
	}
	if err := s.carts.AddItem(ctx, cartID, productSlug, quantity); err != nil {
		s.logger.Error().Err(err).Str("cart_id", cartID).Msg("failed to add cart item")
		return err
	}
	return nil
}

func (s *CartService) Items(ctx context.Context, cartID string) ([]ports.CartItem, error) {
	raw, err := s.carts.Items(ctx, cartID)
	if err != nil {
		return nil, err
	}

	items := make([]ports.CartItem, 0, len(raw))
	for slug, qty := range raw {
		items = append(items, ports.CartItem{ProductSlug: slug, Quantity: qty})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ProductSlug < items[j].ProductSlug })
	return items, nil
}
