package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/shopfront/storefront-api/internal/core/domain"
	"github.com/shopfront/storefront-api/internal/core/ports"
)

// SessionService establishes and reads cookie-based sessions. Each login gets
// an unpredictable session ID stored server-side; the cookie carries an HS256
// signed claim naming that ID. A session is valid only when the signature
// verifies AND the record still exists, so logout revokes immediately.
type SessionService struct {
	users      ports.UserRepository
	store      ports.SessionStore
	signingKey []byte
	ttl        time.Duration
	logger     zerolog.Logger
}

func NewSessionService(users ports.UserRepository, store ports.SessionStore, signingKey string, ttl time.Duration, logger zerolog.Logger) *SessionService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &SessionService{
		users:      users,
		store:      store,
		signingKey: []byte(signingKey),
		ttl:        ttl,
		logger:     logger,
	}
}

func (s *SessionService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// Unknown account and wrong password are indistinguishable.
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	id, err := randomID(24)
	if err != nil {
		return "", nil, err
	}

	session := &domain.Session{
		ID:       id,
		Username: user.Username,
		Role:     domain.ParseRole(string(user.Role)),
		IssuedAt: time.Now().UTC(),
	}
	if err := s.store.Put(ctx, session); err != nil {
		return "", nil, err
	}

	token, err := s.signSessionID(id)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info().Str("username", user.Username).Str("role", session.Role.String()).Msg("session established")
	return token, user, nil
}

// Read derives a session assertion from the presented cookie token. It is
// total and read-only: a missing cookie, a bad signature, a revoked session,
// or a session pointing at a deleted account all yield the same
// unauthenticated assertion.
func (s *SessionService) Read(ctx context.Context, cookieToken string) domain.SessionAssertion {
	unauthenticated := domain.SessionAssertion{Authenticated: false}

	id, err := s.verifySessionID(cookieToken)
	if err != nil {
		return unauthenticated
	}

	session, err := s.store.Get(ctx, id)
	if err != nil {
		return unauthenticated
	}

	username := strings.TrimSpace(session.Username)
	if username == "" {
		return unauthenticated
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		// A session whose account no longer exists is an invalid session,
		// not an error.
		return unauthenticated
	}

	return domain.SessionAssertion{
		Authenticated: true,
		Role:          domain.ParseRole(string(session.Role)),
		User:          user,
	}
}

func (s *SessionService) Logout(ctx context.Context, cookieToken string) {
	id, err := s.verifySessionID(cookieToken)
	if err != nil {
		return
	}
	if err := s.store.Delete(ctx, id); err != nil {
		s.logger.Warn().Err(err).Msg("session delete failed")
	}
}

func (s *SessionService) signSessionID(id string) (string, error) {
	claims := jwt.MapClaims{
		"sid": id,
		"exp": time.Now().Add(s.ttl).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.signingKey)
}

func (s *SessionService) verifySessionID(cookieToken string) (string, error) {
	if cookieToken == "" {
		return "", domain.ErrInvalidCredentials
	}

	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(cookieToken, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.signingKey, nil
	})
	if err != nil || !tkn.Valid {
		return "", domain.ErrInvalidCredentials
	}

	id, _ := claims["sid"].(string)
	if id == "" {
		return "", domain.ErrInvalidCredentials
	}
	return id, nil
}

// randomID returns n bytes of cryptographic randomness, base64url encoded.
func randomID(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate session id: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
