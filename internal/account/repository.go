package account

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/minibank/minibank/internal/docstore"
)

// Repository loads and saves the full user collection against a document
// store. There is no caching and no partial write: every Load re-fetches
// the stored document and every Save re-uploads the whole collection.
type Repository struct {
	store  docstore.Store
	logger *slog.Logger
}

// NewRepository builds a repository over the given store.
func NewRepository(store docstore.Store, logger *slog.Logger) *Repository {
	return &Repository{store: store, logger: logger}
}

// Load fetches the whole collection. A store that holds no document yet
// yields an empty collection; a store failure surfaces as
// docstore.ErrUnavailable rather than degrading to an empty result.
func (r *Repository) Load(ctx context.Context) ([]User, error) {
	payload, err := r.store.Get(ctx)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return []User{}, nil
		}
		return nil, fmt.Errorf("load users: %w", err)
	}

	var users []User
	if err := json.Unmarshal(payload, &users); err != nil {
		return nil, fmt.Errorf("load users: %w: decode collection: %v", docstore.ErrUnavailable, err)
	}
	if users == nil {
		users = []User{}
	}
	return users, nil
}

// Save uploads the whole collection, replacing the stored document.
func (r *Repository) Save(ctx context.Context, users []User) error {
	if users == nil {
		users = []User{}
	}
	payload, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("save users: %w", err)
	}
	if err := r.store.Put(ctx, payload); err != nil {
		return fmt.Errorf("save users: %w", err)
	}
	return nil
}

// Bootstrap initializes the store on process start: when no collection
// exists yet an empty one is written back, which is idempotent. The
// outcome is logged either way.
func (r *Repository) Bootstrap(ctx context.Context) error {
	users, err := r.Load(ctx)
	if err != nil {
		return fmt.Errorf("bootstrap: %w", err)
	}
	if len(users) == 0 {
		if err := r.Save(ctx, []User{}); err != nil {
			return fmt.Errorf("bootstrap: %w", err)
		}
		r.logger.Info("initialized empty user collection")
		return nil
	}
	r.logger.Info("user collection loaded", "users", len(users))
	return nil
}
