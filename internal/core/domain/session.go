package domain

import (
	"errors"
	"time"
)

var ErrSessionNotFound = errors.New("session not found")

// Session is the server-side record behind a login cookie. The cookie itself
// carries only a signed claim naming the session ID; a session is valid only
// while this record exists in the store.
type Session struct {
	ID       string    `json:"id"`
	Username string    `json:"username"`
	Role     Role      `json:"role"`
	IssuedAt time.Time `json:"issued_at"`
}

// SessionAssertion is what the session reader derives from a cookie bundle on
// every request. When Authenticated is false no other field is populated.
type SessionAssertion struct {
	Authenticated bool  `json:"authenticated"`
	Role          Role  `json:"role,omitempty"`
	User          *User `json:"user,omitempty"`
}
