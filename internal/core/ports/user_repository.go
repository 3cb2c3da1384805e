package ports

import (
	"context"

	"github.com/shopfront/storefront-api/internal/core/domain"
)

// UserRepository defines the credential-store lookups the identity core needs.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	// FindByIdentifier matches a username or an email address.
	FindByIdentifier(ctx context.Context, identifier string) (*domain.User, error)
	UpdatePassword(ctx context.Context, username, passwordHash string) error
}
