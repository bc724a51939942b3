package memory

import (
	"context"
	"sync"

	"ideaindex/internal/ports"
)

// Store implements ports.KVStore in process memory. Nothing survives a
// restart; it backs tests and throwaway demo sessions.
type Store struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// Ensure Store implements KVStore
var _ ports.KVStore = (*Store)(nil)

// NewStore creates an empty in-memory store
func NewStore() *Store {
	return &Store{data: make(map[string][]byte)}
}

// Get returns a copy of the value for key
func (s *Store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.data[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

// Put stores a copy of value under key
func (s *Store) Put(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = append([]byte(nil), value...)
	return nil
}

// Close is a no-op
func (s *Store) Close() error {
	return nil
}
