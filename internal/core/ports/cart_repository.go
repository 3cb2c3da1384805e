package ports

import "context"

// CartRepository stores cart contents keyed by cart ID.
type CartRepository interface {
	AddItem(ctx context.Context, cartID, productSlug string, quantity int) error
	Items(ctx context.Context, cartID string) (map[string]int, error)
	Clear(ctx context.Context, cartID string) error
}
