package ports

import "context"

// CartItem is one line of a cart as returned to the transport layer.
type CartItem struct {
	ProductSlug string `json:"product_slug"`
	Quantity    int    `json:"quantity"`
}

type CartService interface {
	AddItem(ctx context.Context, cartID, productSlug string, quantity int) error
	Items(ctx context.Context, cartID string) ([]CartItem, error)
}
