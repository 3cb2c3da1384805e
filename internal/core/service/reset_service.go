package service

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/shopfront/storefront-api/internal/core/domain"
	"github.com/shopfront/storefront-api/internal/core/ports"
)

// MinPasswordLength is the shortest password accepted on redemption.
const MinPasswordLength = 6

const defaultResetTTL = 30 * time.Minute

const resetTokenBytes = 32

// PasswordResetService issues and redeems single-use, time-bound reset
// tokens. Tokens are keyed by canonical username, so at most one is live per
// account; issuing a new one replaces the previous one atomically.
type PasswordResetService struct {
	users  ports.UserRepository
	tokens ports.ResetTokenRepository
	notify ports.ResetNotifier
	ttl    time.Duration
	logger zerolog.Logger
}

// NewPasswordResetService wires the issuer/redeemer. notify may be nil when
// no out-of-band delivery is configured (tests, one-off tooling).
func NewPasswordResetService(users ports.UserRepository, tokens ports.ResetTokenRepository, notify ports.ResetNotifier, ttl time.Duration, logger zerolog.Logger) *PasswordResetService {
	if ttl <= 0 {
		ttl = defaultResetTTL
	}
	return &PasswordResetService{users: users, tokens: tokens, notify: notify, ttl: ttl, logger: logger}
}

// Request issues a reset token for the account matching identifier (username
// or email). When no account matches, the same token-generation work is
// performed and discarded so the two paths have flat timing; the caller's
// boundary response must not distinguish them either way.
func (s *PasswordResetService) Request(ctx context.Context, identifier string) (ports.ResetRequestResult, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return ports.ResetRequestResult{}, domain.ErrResetInvalid
	}

	raw, err := randomToken(resetTokenBytes)
	if err != nil {
		return ports.ResetRequestResult{}, err
	}

	user, err := s.users.FindByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return ports.ResetRequestResult{Found: false}, nil
		}
		return ports.ResetRequestResult{}, err
	}

	now := time.Now().UTC()
	token := &domain.ResetToken{
		Identifier: user.Username,
		Token:      raw,
		IssuedAt:   now,
		ExpiresAt:  now.Add(s.ttl),
	}
	if err := s.tokens.Replace(ctx, token); err != nil {
		return ports.ResetRequestResult{}, err
	}

	// The token value itself is delivered out-of-band and never logged.
	s.logger.Info().Str("username", user.Username).Time("expires_at", token.ExpiresAt).Msg("reset token issued")

	if s.notify != nil {
		s.notify.Enqueue(ports.ResetNotification{
			Username:  user.Username,
			Email:     user.Email,
			Token:     raw,
			ExpiresAt: token.ExpiresAt,
		})
	}

	return ports.ResetRequestResult{Found: true, Token: token}, nil
}

// Redeem validates the presented token and, on success, commits the new
// password and burns the token. All failure categories — unknown account,
// missing token, mismatch, expiry, already consumed — collapse into
// domain.ErrResetInvalid.
func (s *PasswordResetService) Redeem(ctx context.Context, identifier, token, newPassword string) error {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" || token == "" || len(newPassword) < MinPasswordLength {
		return domain.ErrResetInvalid
	}

	user, err := s.users.FindByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.ErrResetInvalid
		}
		return err
	}

	stored, err := s.tokens.FindLive(ctx, user.Username)
	if err != nil {
		return err
	}

	if subtle.ConstantTimeCompare([]byte(stored.Token), []byte(token)) != 1 {
		return domain.ErrResetInvalid
	}
	if !stored.Live(time.Now().UTC()) {
		return domain.ErrResetInvalid
	}

	// Burn the token before touching the credential: if the update below
	// fails the token is already spent and the user must request a new one.
	if err := s.tokens.Consume(ctx, user.Username, stored.Token); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := s.users.UpdatePassword(ctx, user.Username, string(hash)); err != nil {
		return err
	}

	s.logger.Info().Str("username", user.Username).Msg("password reset")
	return nil
}

// randomToken returns n bytes of cryptographic randomness, base64url encoded.
// There is no fallback source: a reset token must never be predictable.
func randomToken(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate reset token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
