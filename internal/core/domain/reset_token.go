package domain

import (
	"errors"
	"time"
)

// ErrResetInvalid covers every redemption failure: unknown account, missing
// token, expired token, consumed token, or a token mismatch. Callers must not
// be able to tell these apart.
var ErrResetInvalid = errors.New("invalid or expired reset token")

// ResetToken is a single-use, time-bound password recovery capability.
// At most one live token exists per account: issuing a new one replaces the
// previous one atomically.
type ResetToken struct {
	Identifier string    `json:"identifier"`
	Token      string    `json:"token"`
	IssuedAt   time.Time `json:"issued_at"`
	ExpiresAt  time.Time `json:"expires_at"`
	Consumed   bool      `json:"consumed"`
}

// Live reports whether the token is still redeemable at the given instant.
func (t *ResetToken) Live(now time.Time) bool {
	return !t.Consumed && !now.After(t.ExpiresAt)
}
