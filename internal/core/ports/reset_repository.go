package ports

import (
	"context"

	"github.com/shopfront/storefront-api/internal/core/domain"
)

// ResetTokenRepository persists password-reset tokens, one per account.
type ResetTokenRepository interface {
	// Replace stores the token for its account, atomically invalidating any
	// previously issued token. There is no window where two tokens are
	// simultaneously live for the same account.
	Replace(ctx context.Context, token *domain.ResetToken) error
	// FindLive returns the unconsumed token for the identifier, or
	// domain.ErrResetInvalid when none exists.
	FindLive(ctx context.Context, identifier string) (*domain.ResetToken, error)
	// Consume marks the exact (identifier, token) pair consumed. It returns
	// domain.ErrResetInvalid unless this call is the one that flipped the
	// flag — concurrent redeemers observe exactly one winner.
	Consume(ctx context.Context, identifier, token string) error
}
