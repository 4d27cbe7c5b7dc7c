package docstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore keeps each named document in a single JSONB row, preserving
// the whole-document read/replace contract on top of PostgreSQL.
//
// Expected schema:
//
//	CREATE TABLE documents (
//	    name       text PRIMARY KEY,
//	    payload    jsonb NOT NULL,
//	    updated_at timestamptz NOT NULL DEFAULT now()
//	);
type PostgresStore struct {
	db   *pgxpool.Pool
	name string
}

// NewPostgresStore builds a store for the document identified by name.
func NewPostgresStore(db *pgxpool.Pool, name string) *PostgresStore {
	return &PostgresStore{db: db, name: name}
}

// Get fetches the document payload.
func (s *PostgresStore) Get(ctx context.Context) ([]byte, error) {
	var payload []byte
	row := s.db.QueryRow(ctx, `SELECT payload FROM documents WHERE name = $1`, s.name)
	if err := row.Scan(&payload); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return payload, nil
}

// Put upserts the document payload.
func (s *PostgresStore) Put(ctx context.Context, payload []byte) error {
	_, err := s.db.Exec(ctx, `INSERT INTO documents (name, payload, updated_at)
        VALUES ($1, $2, now())
        ON CONFLICT (name) DO UPDATE SET payload = EXCLUDED.payload, updated_at = now()`, s.name, payload)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

// Ping verifies database connectivity.
func (s *PostgresStore) Ping(ctx context.Context) error {
	if err := s.db.Ping(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}
