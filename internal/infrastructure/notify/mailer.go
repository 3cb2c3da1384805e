package notify

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/shopfront/storefront-api/internal/core/ports"
)

// LogMailer is the development stand-in for a real mail provider. It records
// that a reset message was sent — the token value itself is never written to
// the log.
type LogMailer struct {
	log zerolog.Logger
}

func NewLogMailer(log zerolog.Logger) *LogMailer {
	return &LogMailer{log: log}
}

func (m *LogMailer) SendPasswordReset(_ context.Context, n ports.ResetNotification) error {
	m.log.Info().
		Str("username", n.Username).
		Str("email", n.Email).
		Time("expires_at", n.ExpiresAt).
		Msg("password reset message dispatched")
	return nil
}
