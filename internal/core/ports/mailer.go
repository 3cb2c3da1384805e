package ports

import (
	"context"
	"time"
)

// ResetNotification carries a freshly issued reset token to the messaging
// collaborator. This is the only sanctioned path for the raw token value to
// leave the service.
type ResetNotification struct {
	Username  string
	Email     string
	Token     string
	ExpiresAt time.Time
}

// Mailer delivers account messages out-of-band.
type Mailer interface {
	SendPasswordReset(ctx context.Context, n ResetNotification) error
}

// ResetNotifier accepts notifications for asynchronous delivery. Enqueue must
// not block the request path.
type ResetNotifier interface {
	Enqueue(n ResetNotification)
}
