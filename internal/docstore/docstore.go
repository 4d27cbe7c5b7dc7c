// Package docstore provides whole-document storage: every read returns the
// complete stored document and every write replaces it. There are no partial
// updates; the document is the unit of persistence.
package docstore

import (
	"context"
	"errors"
)

var (
	// ErrNotFound indicates the backend holds no document yet. Callers
	// typically treat this as an empty collection and bootstrap one.
	ErrNotFound = errors.New("document not found")

	// ErrUnavailable indicates the backend could not complete the request
	// (transport failure, non-success HTTP status, SQL error). It is never
	// silently converted to an empty document.
	ErrUnavailable = errors.New("document store unavailable")
)

// Store is the contract implemented by document store backends.
type Store interface {
	// Get fetches the entire document.
	Get(ctx context.Context) ([]byte, error)
	// Put replaces the entire document.
	Put(ctx context.Context, payload []byte) error
	// Ping probes backend reachability. A missing document is healthy.
	Ping(ctx context.Context) error
}
