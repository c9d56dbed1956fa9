// Package storage provides the durable key-value stores the session
// registry persists into. Callers pick an implementation (Redis for a
// shared deployment, SQLite for a single machine, memory for tests); the
// persistence layer above only sees KeyValue.
package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a key has no stored value
var ErrNotFound = errors.New("key not found")

// KeyValue is a minimal byte-oriented durable store
type KeyValue interface {
	// Get returns the value stored under key, or ErrNotFound
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous value
	Set(ctx context.Context, key string, value []byte) error

	// Remove deletes key; removing an absent key is not an error
	Remove(ctx context.Context, key string) error
}
