package sessionstate

import (
	"log/slog"
	"time"

	"github.com/simmerhq/simmer/internal/common/clock"
	"github.com/simmerhq/simmer/internal/models"
	"github.com/simmerhq/simmer/internal/storage"
)

// Config holds configuration for the session state repository
type Config struct {
	// Store is the durable key-value backend
	Store storage.KeyValue

	// Clock supplies the wall-clock time used for staleness eviction
	// and timer drift correction on load
	Clock clock.Clock

	// Logger receives repair warnings; defaults to a discarding logger
	Logger *slog.Logger

	// Retention is how long an untouched session survives before being
	// evicted on load; defaults to 24 hours
	Retention time.Duration

	// Key is the storage key the snapshot lives under; defaults to
	// "cooking:sessions"
	Key string
}

// SaveInput contains parameters for saving the registry snapshot
type SaveInput struct {
	// Snapshot is the full registry state to persist
	Snapshot *models.RegistrySnapshot
}

// LoadInput contains parameters for loading the registry snapshot
type LoadInput struct{}

// LoadOutput contains the repaired registry snapshot
type LoadOutput struct {
	// Snapshot is never nil; an absent or unreadable record loads as an
	// empty snapshot
	Snapshot *models.RegistrySnapshot
}
