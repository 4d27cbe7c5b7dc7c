package docstore

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
)

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "users.json")
	store := NewFileStore(path)
	ctx := context.Background()

	if _, err := store.Get(ctx); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing file, got %v", err)
	}

	payload := []byte(`[{"fullName":"Ada","phone":"080","pin":"1234","balance":90000,"transactions":[]}]`)
	if err := store.Put(ctx, payload); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, err := store.Get(ctx)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(got) != string(payload) {
		t.Fatalf("round trip mismatch: %s", got)
	}

	// Overwrite with a shorter document; no tail of the old one may
	// survive.
	if err := store.Put(ctx, []byte(`[]`)); err != nil {
		t.Fatalf("second put: %v", err)
	}
	got, err = store.Get(ctx)
	if err != nil {
		t.Fatalf("second get: %v", err)
	}
	if string(got) != "[]" {
		t.Fatalf("expected [], got %s", got)
	}

	if err := store.Ping(ctx); err != nil {
		t.Fatalf("ping: %v", err)
	}
}
