package docstore

import (
	"context"
	"sync"
)

// MemoryStore holds the document in memory. Useful for tests, which can
// also force failures via SetError.
type MemoryStore struct {
	mu      sync.RWMutex
	payload []byte
	err     error
}

// NewMemoryStore builds an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// SetError makes every subsequent call fail with err until reset with nil.
func (s *MemoryStore) SetError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

func (s *MemoryStore) Get(_ context.Context) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.err != nil {
		return nil, s.err
	}
	if s.payload == nil {
		return nil, ErrNotFound
	}
	payload := make([]byte, len(s.payload))
	copy(payload, s.payload)
	return payload, nil
}

func (s *MemoryStore) Put(_ context.Context, payload []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.payload = make([]byte, len(payload))
	copy(s.payload, payload)
	return nil
}

func (s *MemoryStore) Ping(_ context.Context) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}
