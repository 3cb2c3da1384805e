package service

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/shopfront/storefront-api/internal/core/domain"
)

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return string(hash)
}

func aliceUser(t *testing.T) *domain.User {
	t.Helper()
	return &domain.User{
		ID:           "u1",
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: mustHash(t, "s3cret"),
		Role:         domain.RoleOwner,
	}
}

func TestSessionService_Login_Success(t *testing.T) {
	users := newStubUserRepo(aliceUser(t))
	store := newStubSessionStore()
	svc := NewSessionService(users, store, "signing-key", time.Hour, zerolog.Nop())

	token, user, err := svc.Login(context.Background(), "alice", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected cookie token")
	}
	if user == nil || user.Username != "alice" {
		t.Fatalf("unexpected user: %+v", user)
	}
	if store.len() != 1 {
		t.Fatalf("expected 1 stored session, got %d", store.len())
	}
}

func TestSessionService_Login_WrongPassword(t *testing.T) {
	users := newStubUserRepo(aliceUser(t))
	svc := NewSessionService(users, newStubSessionStore(), "signing-key", time.Hour, zerolog.Nop())

	if _, _, err := svc.Login(context.Background(), "alice", "wrong"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestSessionService_Login_UnknownUserIndistinguishable(t *testing.T) {
	users := newStubUserRepo(aliceUser(t))
	svc := NewSessionService(users, newStubSessionStore(), "signing-key", time.Hour, zerolog.Nop())

	_, _, errUnknown := svc.Login(context.Background(), "ghost", "s3cret")
	_, _, errWrongPass := svc.Login(context.Background(), "alice", "wrong")

	if errUnknown != domain.ErrInvalidCredentials || errWrongPass != domain.ErrInvalidCredentials {
		t.Fatalf("unknown user and wrong password must yield the same error, got %v / %v", errUnknown, errWrongPass)
	}
}

func TestSessionService_Read_Success(t *testing.T) {
	users := newStubUserRepo(aliceUser(t))
	store := newStubSessionStore()
	svc := NewSessionService(users, store, "signing-key", time.Hour, zerolog.Nop())

	token, _, err := svc.Login(context.Background(), "alice", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	assertion := svc.Read(context.Background(), token)
	if !assertion.Authenticated {
		t.Fatalf("expected authenticated assertion")
	}
	if assertion.Role != domain.RoleOwner {
		t.Fatalf("unexpected role: %s", assertion.Role)
	}
	if assertion.User == nil || assertion.User.Username != "alice" {
		t.Fatalf("unexpected user: %+v", assertion.User)
	}
}

func TestSessionService_Read_UnauthenticatedShapesIdentical(t *testing.T) {
	users := newStubUserRepo(aliceUser(t))
	store := newStubSessionStore()
	svc := NewSessionService(users, store, "signing-key", time.Hour, zerolog.Nop())

	token, _, err := svc.Login(context.Background(), "alice", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	// Forged token: signed with a different key.
	other := NewSessionService(users, store, "other-key", time.Hour, zerolog.Nop())
	forged, _, err := other.Login(context.Background(), "alice", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	// Dangling session: valid cookie, account deleted afterwards.
	users.delete("alice")
	dangling := svc.Read(context.Background(), token)

	missing := svc.Read(context.Background(), "")
	garbage := svc.Read(context.Background(), "not-a-jwt")
	badSignature := svc.Read(context.Background(), forged)

	want := domain.SessionAssertion{Authenticated: false}
	for name, got := range map[string]domain.SessionAssertion{
		"missing":       missing,
		"garbage":       garbage,
		"bad signature": badSignature,
		"dangling":      dangling,
	} {
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("%s cookie: assertion = %+v, want bare unauthenticated", name, got)
		}
	}
}

func TestSessionService_Read_RevokedSession(t *testing.T) {
	users := newStubUserRepo(aliceUser(t))
	store := newStubSessionStore()
	svc := NewSessionService(users, store, "signing-key", time.Hour, zerolog.Nop())

	token, _, err := svc.Login(context.Background(), "alice", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	svc.Logout(context.Background(), token)

	if assertion := svc.Read(context.Background(), token); assertion.Authenticated {
		t.Fatalf("revoked session must not authenticate")
	}
	if store.len() != 0 {
		t.Fatalf("expected empty session store after logout, got %d", store.len())
	}
}
