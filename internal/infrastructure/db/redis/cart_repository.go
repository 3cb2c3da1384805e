package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const cartTTL = 30 * 24 * time.Hour

// CartRepository stores cart contents as a Redis hash per cart:
// cart:<id> → {product_slug: quantity}. The hash expires after cartTTL of
// inactivity.
type CartRepository struct {
	client *redis.Client
}

func NewCartRepository(client *redis.Client) *CartRepository {
	return &CartRepository{client: client}
}

func (r *CartRepository) AddItem(ctx context.Context, cartID, productSlug string, quantity int) error {
	key := r.key(cartID)
	pipe := r.client.TxPipeline()
	pipe.HIncrBy(ctx, key, productSlug, int64(quantity))
	pipe.Expire(ctx, key, cartTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("add cart item: %w", err)
	}
	return nil
}

func (r *CartRepository) Items(ctx context.Context, cartID string) (map[string]int, error) {
	raw, err := r.client.HGetAll(ctx, r.key(cartID)).Result()
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}

	items := make(map[string]int, len(raw))
	for slug, qty := range raw {
		n, err := strconv.Atoi(qty)
		if err != nil {
			return nil, fmt.Errorf("decode cart quantity: %w", err)
		}
		items[slug] = n
	}
	return items, nil
}

func (r *CartRepository) Clear(ctx context.Context, cartID string) error {
	if err := r.client.Del(ctx, r.key(cartID)).Err(); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}

func (r *CartRepository) key(cartID string) string {
	return "cart:" + cartID
}
