package ports

import (
	"context"

	"github.com/shopfront/storefront-api/internal/core/domain"
)

// SessionStore holds server-side session records. A session exists only while
// its record does; deleting the record revokes the login immediately.
type SessionStore interface {
	Put(ctx context.Context, session *domain.Session) error
	Get(ctx context.Context, id string) (*domain.Session, error)
	Delete(ctx context.Context, id string) error
}
