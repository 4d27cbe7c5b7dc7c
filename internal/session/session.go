// Package session maps opaque bearer tokens to a user's phone
// identifier. Tokens are random UUIDs with a fixed lifetime; the phone
// number itself never leaves the server, so a stolen cookie reveals
// nothing and a forged one resolves to no session.
package session

import (
	"context"
	"errors"
)

// ErrNoSession indicates the token is unknown or expired.
var ErrNoSession = errors.New("no active session")

// Resolver issues, resolves, and clears sessions.
type Resolver interface {
	// Issue creates a session bound to phone and returns its token.
	Issue(ctx context.Context, phone string) (string, error)
	// Resolve maps a token to the phone it was issued for, or
	// ErrNoSession.
	Resolve(ctx context.Context, token string) (string, error)
	// Clear removes the session for token. Clearing an unknown token
	// is not an error.
	Clear(ctx context.Context, token string) error
}
