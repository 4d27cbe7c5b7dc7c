package account

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/minibank/minibank/internal/docstore"
	"github.com/minibank/minibank/internal/logging"
)

func TestRepositoryRoundTrip(t *testing.T) {
	store := docstore.NewMemoryStore()
	repo := NewRepository(store, logging.Discard())
	ctx := context.Background()

	users := []User{
		{
			FullName: "Ada",
			Phone:    "08011111111",
			PIN:      "1234",
			Balance:  350000,
			Transactions: []Transaction{
				{
					Type:         "debit",
					Amount:       150000,
					Receiver:     "Grace Hopper",
					Bank:         "GTBank",
					Account:      "0123456789",
					Date:         "12/19/2025, 10:30:45 AM",
					Timestamp:    "2025-12-19T10:30:45.123Z",
					BalanceAfter: 350000,
				},
			},
		},
		{FullName: "Eve", Phone: "08022222222", PIN: "9999", Balance: 90000, Transactions: []Transaction{}},
	}

	if err := repo.Save(ctx, users); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(users, loaded) {
		t.Fatalf("round trip mismatch:\nsaved:  %+v\nloaded: %+v", users, loaded)
	}
}

func TestRepositoryLoadEmptyStore(t *testing.T) {
	repo := NewRepository(docstore.NewMemoryStore(), logging.Discard())

	users, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if users == nil || len(users) != 0 {
		t.Fatalf("expected empty non-nil collection, got %#v", users)
	}
}

func TestRepositoryFailsClosedOnStoreErrors(t *testing.T) {
	store := docstore.NewMemoryStore()
	repo := NewRepository(store, logging.Discard())
	ctx := context.Background()
	store.SetError(docstore.ErrUnavailable)

	if _, err := repo.Load(ctx); !errors.Is(err, docstore.ErrUnavailable) {
		t.Fatalf("load: expected ErrUnavailable, got %v", err)
	}
	if err := repo.Save(ctx, []User{}); !errors.Is(err, docstore.ErrUnavailable) {
		t.Fatalf("save: expected ErrUnavailable, got %v", err)
	}
}

func TestRepositoryBootstrapInitializesEmptyCollection(t *testing.T) {
	store := docstore.NewMemoryStore()
	repo := NewRepository(store, logging.Discard())
	ctx := context.Background()

	if err := repo.Bootstrap(ctx); err != nil {
		t.Fatalf("bootstrap: %v", err)
	}

	payload, err := store.Get(ctx)
	if err != nil {
		t.Fatalf("expected document written during bootstrap: %v", err)
	}
	if string(payload) != "[]" {
		t.Fatalf("expected empty array, got %s", payload)
	}

	// Bootstrap over existing data must not rewrite it.
	if err := repo.Save(ctx, []User{{FullName: "Ada", Phone: "080", PIN: "1", Balance: 90000, Transactions: []Transaction{}}}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := repo.Bootstrap(ctx); err != nil {
		t.Fatalf("bootstrap: %v", err)
	}
	users, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(users) != 1 {
		t.Fatalf("bootstrap clobbered existing collection: %d users", len(users))
	}
}
