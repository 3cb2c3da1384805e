package redis

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/shopfront/storefront-api/internal/core/domain"
)

func newTestClient(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return client, mr
}

func TestSessionStore_PutGetDelete(t *testing.T) {
	client, _ := newTestClient(t)
	store := NewSessionStore(client, time.Hour)
	ctx := context.Background()

	session := &domain.Session{
		ID:       "abc123",
		Username: "alice",
		Role:     domain.RoleOwner,
		IssuedAt: time.Now().UTC().Truncate(time.Second),
	}
	if err := store.Put(ctx, session); err != nil {
		t.Fatalf("put failed: %v", err)
	}

	got, err := store.Get(ctx, "abc123")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Username != "alice" || got.Role != domain.RoleOwner {
		t.Fatalf("unexpected session: %+v", got)
	}

	if err := store.Delete(ctx, "abc123"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := store.Get(ctx, "abc123"); err != domain.ErrSessionNotFound {
		t.Fatalf("expected ErrSessionNotFound after delete, got %v", err)
	}
}

func TestSessionStore_GetUnknown(t *testing.T) {
	client, _ := newTestClient(t)
	store := NewSessionStore(client, time.Hour)

	if _, err := store.Get(context.Background(), "nope"); err != domain.ErrSessionNotFound {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestSessionStore_RecordExpires(t *testing.T) {
	client, mr := newTestClient(t)
	store := NewSessionStore(client, time.Minute)
	ctx := context.Background()

	if err := store.Put(ctx, &domain.Session{ID: "s1", Username: "alice", Role: domain.RoleCustomer}); err != nil {
		t.Fatalf("put failed: %v", err)
	}

	mr.FastForward(2 * time.Minute)

	if _, err := store.Get(ctx, "s1"); err != domain.ErrSessionNotFound {
		t.Fatalf("expected expired session to be gone, got %v", err)
	}
}

func TestSessionStore_DeleteIsIdempotent(t *testing.T) {
	client, _ := newTestClient(t)
	store := NewSessionStore(client, time.Hour)

	if err := store.Delete(context.Background(), "never-existed"); err != nil {
		t.Fatalf("deleting a missing session should not fail: %v", err)
	}
}
