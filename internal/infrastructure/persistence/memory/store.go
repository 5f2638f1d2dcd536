// Package memory provides the in-memory collection store, used by tests
// and when no storage driver is configured. Contents vanish with the
// process.
package memory

import (
	"context"
	"sync"
)

// Store implements the collection store on a plain map
type Store struct {
	data  map[string][]byte
	mutex sync.RWMutex
}

// NewStore creates an empty in-memory store
func NewStore() *Store {
	return &Store{
		data: make(map[string][]byte),
	}
}

// Get returns the stored snapshot. A collection that was never written
// reads as nil with no error.
func (s *Store) Get(ctx context.Context, collection string) ([]byte, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	data, ok := s.data[collection]
	if !ok {
		return nil, nil
	}

	// hand out a copy, callers may retain the slice
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// Set replaces the collection snapshot
func (s *Store) Set(ctx context.Context, collection string, data []byte) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	stored := make([]byte, len(data))
	copy(stored, data)
	s.data[collection] = stored
	return nil
}

// Delete drops the collection entirely
func (s *Store) Delete(ctx context.Context, collection string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	delete(s.data, collection)
	return nil
}
