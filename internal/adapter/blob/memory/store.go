// Package memory is an in-process blob store, used in tests and for
// ephemeral local mode.
package memory

import (
	"context"
	"sync"

	"github.com/heartmarshall/fairway-backend/internal/adapter/blob"
)

var _ blob.Store = (*Store)(nil)

// Store keeps blobs in a map.
type Store struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

// New creates an empty Store.
func New() *Store {
	return &Store{blobs: make(map[string][]byte)}
}

func (s *Store) Read(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.blobs[key]
	if !ok {
		return nil, blob.ErrNotFound
	}
	return append([]byte(nil), data...), nil
}

func (s *Store) Write(_ context.Context, key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blobs[key] = append([]byte(nil), data...)
	return nil
}

// Put stores raw bytes under key. Tests use it to plant corrupt data.
func (s *Store) Put(key string, data []byte) {
	s.mu.Lock()
	s.blobs[key] = data
	s.mu.Unlock()
}
