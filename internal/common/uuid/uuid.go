package uuid

import "github.com/google/uuid"

//go:generate mockgen -package=mocks -destination=mocks/mock_uuid.go github.com/simmerhq/simmer/internal/common/uuid Generator

// Generator hands out unique identifiers. Injected so tests can assert
// on predictable IDs.
type Generator interface {
	NewID() string
}

// DefaultGenerator implements Generator using random UUIDv4 strings
type DefaultGenerator struct{}

// New returns a Generator backed by github.com/google/uuid
func New() *DefaultGenerator {
	return &DefaultGenerator{}
}

// NewID returns a new random UUID string
func (g *DefaultGenerator) NewID() string {
	return uuid.New().String()
}
