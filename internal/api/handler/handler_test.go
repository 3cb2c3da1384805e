package handler_test

import (
	"context"
	"sync"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/shopfront/storefront-api/internal/api"
	"github.com/shopfront/storefront-api/internal/api/handler"
	"github.com/shopfront/storefront-api/internal/core/domain"
	"github.com/shopfront/storefront-api/internal/core/ports"
)

// newEcho builds an Echo instance wired the same way the router wires the
// real one: request validation plus the central error handler.
func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = api.NewHTTPErrorHandler(zerolog.Nop())
	return e
}

type stubSessionService struct {
	loginFn func(ctx context.Context, username, password string) (string, *domain.User, error)
	readFn  func(ctx context.Context, cookieToken string) domain.SessionAssertion
	mu      sync.Mutex
	logouts []string
}

func (s *stubSessionService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	return s.loginFn(ctx, username, password)
}

func (s *stubSessionService) Read(ctx context.Context, cookieToken string) domain.SessionAssertion {
	if s.readFn == nil {
		return domain.SessionAssertion{Authenticated: false}
	}
	return s.readFn(ctx, cookieToken)
}

func (s *stubSessionService) Logout(_ context.Context, cookieToken string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logouts = append(s.logouts, cookieToken)
}

type stubResetService struct {
	requestFn func(ctx context.Context, identifier string) (ports.ResetRequestResult, error)
	redeemFn  func(ctx context.Context, identifier, token, newPassword string) error
}

func (s *stubResetService) Request(ctx context.Context, identifier string) (ports.ResetRequestResult, error) {
	return s.requestFn(ctx, identifier)
}

func (s *stubResetService) Redeem(ctx context.Context, identifier, token, newPassword string) error {
	return s.redeemFn(ctx, identifier, token, newPassword)
}

// --- minimal in-memory collaborators for end-to-end handler tests ---

type memUserRepo struct {
	users map[string]*domain.User
}

func newMemUserRepo(users ...*domain.User) *memUserRepo {
	r := &memUserRepo{users: make(map[string]*domain.User)}
	for _, u := range users {
		clone := *u
		r.users[u.Username] = &clone
	}
	return r
}

func (r *memUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *memUserRepo) FindByIdentifier(_ context.Context, identifier string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == identifier || u.Email == identifier {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *memUserRepo) UpdatePassword(_ context.Context, username, passwordHash string) error {
	u, ok := r.users[username]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.PasswordHash = passwordHash
	return nil
}

type memResetRepo struct {
	mu     sync.Mutex
	tokens map[string]*domain.ResetToken
}

func newMemResetRepo() *memResetRepo {
	return &memResetRepo{tokens: make(map[string]*domain.ResetToken)}
}

func (r *memResetRepo) Replace(_ context.Context, token *domain.ResetToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *token
	r.tokens[token.Identifier] = &clone
	return nil
}

func (r *memResetRepo) FindLive(_ context.Context, identifier string) (*domain.ResetToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tokens[identifier]
	if !ok || t.Consumed {
		return nil, domain.ErrResetInvalid
	}
	clone := *t
	return &clone, nil
}

func (r *memResetRepo) Consume(_ context.Context, identifier, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tokens[identifier]
	if !ok || t.Consumed || t.Token != token {
		return domain.ErrResetInvalid
	}
	t.Consumed = true
	return nil
}
