package session

import (
	"context"
	"errors"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func TestMemoryStoreLifecycle(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	ctx := context.Background()

	token, err := store.Issue(ctx, "08011111111")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	phone, err := store.Resolve(ctx, token)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if phone != "08011111111" {
		t.Fatalf("expected phone, got %q", phone)
	}

	if _, err := store.Resolve(ctx, "forged-token"); !errors.Is(err, ErrNoSession) {
		t.Fatalf("expected ErrNoSession for unknown token, got %v", err)
	}
	if _, err := store.Resolve(ctx, ""); !errors.Is(err, ErrNoSession) {
		t.Fatalf("expected ErrNoSession for empty token, got %v", err)
	}

	if err := store.Clear(ctx, token); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, err := store.Resolve(ctx, token); !errors.Is(err, ErrNoSession) {
		t.Fatalf("expected ErrNoSession after clear, got %v", err)
	}
}

func TestMemoryStoreExpiry(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	ctx := context.Background()

	current := time.Now()
	store.now = func() time.Time { return current }

	token, err := store.Issue(ctx, "080")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	current = current.Add(time.Hour + time.Minute)
	if _, err := store.Resolve(ctx, token); !errors.Is(err, ErrNoSession) {
		t.Fatalf("expected ErrNoSession after expiry, got %v", err)
	}
}

func TestRedisStoreLifecycle(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}
	defer mr.Close()

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	store := NewRedisStore(client, time.Hour)
	ctx := context.Background()

	token, err := store.Issue(ctx, "08011111111")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	phone, err := store.Resolve(ctx, token)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if phone != "08011111111" {
		t.Fatalf("expected phone, got %q", phone)
	}

	mr.FastForward(time.Hour + time.Minute)
	if _, err := store.Resolve(ctx, token); !errors.Is(err, ErrNoSession) {
		t.Fatalf("expected ErrNoSession after TTL, got %v", err)
	}

	token, err = store.Issue(ctx, "080")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if err := store.Clear(ctx, token); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, err := store.Resolve(ctx, token); !errors.Is(err, ErrNoSession) {
		t.Fatalf("expected ErrNoSession after clear, got %v", err)
	}
}
