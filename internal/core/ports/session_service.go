package ports

import (
	"context"

	"github.com/shopfront/storefront-api/internal/core/domain"
)

type SessionService interface {
	// Login verifies credentials and establishes a session. The returned
	// string is the signed cookie token for the new session.
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	// Read derives a session assertion from the presented cookie token.
	// It never fails: any invalid, revoked, or dangling session yields an
	// unauthenticated assertion.
	Read(ctx context.Context, cookieToken string) domain.SessionAssertion
	// Logout revokes the session behind the cookie token, if any.
	Logout(ctx context.Context, cookieToken string)
}
