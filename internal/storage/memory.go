package storage

import (
	"context"
	"sync"
)

// memoryStore implements the KeyValue interface in process memory; state
// is lost on exit, which suits tests and throwaway runs
type memoryStore struct {
	mu     sync.Mutex
	values map[string][]byte
}

// NewMemory returns an empty in-memory store
func NewMemory() *memoryStore {
	return &memoryStore{
		values: make(map[string][]byte),
	}
}

// Get returns the value stored under key
func (s *memoryStore) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	value, ok := s.values[key]
	if !ok {
		return nil, ErrNotFound
	}

	cp := make([]byte, len(value))
	copy(cp, value)
	return cp, nil
}

// Set stores value under key
func (s *memoryStore) Set(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := make([]byte, len(value))
	copy(cp, value)
	s.values[key] = cp
	return nil
}

// Remove deletes key
func (s *memoryStore) Remove(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.values, key)
	return nil
}
