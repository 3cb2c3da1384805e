package ports

import (
	"context"

	"github.com/shopfront/storefront-api/internal/core/domain"
)

// ResetRequestResult is the issuer's internal outcome. Found and Token must
// never reach a production response body; the boundary collapses both cases
// into one indistinguishable reply.
type ResetRequestResult struct {
	Found bool
	Token *domain.ResetToken
}

type PasswordResetService interface {
	Request(ctx context.Context, identifier string) (ResetRequestResult, error)
	// Redeem validates the presented token and commits the new password.
	// Every failure category surfaces as domain.ErrResetInvalid.
	Redeem(ctx context.Context, identifier, token, newPassword string) error
}
