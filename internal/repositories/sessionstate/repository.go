// Package sessionstate stores the cooking-session registry as one JSON
// record in durable key-value storage. The write path is a plain
// marshal-and-set; the read path runs the snapshot through a migration
// pass (migrate.go) so stale, malformed, or old-schema sessions are
// repaired or dropped instead of poisoning the registry.
package sessionstate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/simmerhq/simmer/internal/common/clock"
	"github.com/simmerhq/simmer/internal/models"
	"github.com/simmerhq/simmer/internal/storage"
)

const (
	// defaultKey is where the snapshot lives in the key-value store
	defaultKey = "cooking:sessions"

	// defaultRetention is how long an untouched session survives
	defaultRetention = 24 * time.Hour
)

// repository implements the Repository interface over a KeyValue store
type repository struct {
	store     storage.KeyValue
	clock     clock.Clock
	logger    *slog.Logger
	retention time.Duration
	key       string
}

// New creates a session state repository
func New(cfg *Config) (*repository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Store == nil {
		return nil, errors.New("store cannot be nil")
	}

	if cfg.Clock == nil {
		return nil, errors.New("clock cannot be nil")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	retention := cfg.Retention
	if retention <= 0 {
		retention = defaultRetention
	}

	key := cfg.Key
	if key == "" {
		key = defaultKey
	}

	return &repository{
		store:     cfg.Store,
		clock:     cfg.Clock,
		logger:    logger,
		retention: retention,
		key:       key,
	}, nil
}

// Save writes the snapshot unconditionally
func (r *repository) Save(ctx context.Context, input *SaveInput) error {
	if input == nil || input.Snapshot == nil {
		return errors.New("input and snapshot cannot be nil")
	}

	data, err := json.Marshal(input.Snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	if err := r.store.Set(ctx, r.key, data); err != nil {
		return fmt.Errorf("failed to store snapshot: %w", err)
	}

	return nil
}

// Load reads and repairs the stored snapshot. A missing or unreadable
// record is not an error; the caller gets an empty snapshot and the
// corruption is logged.
func (r *repository) Load(ctx context.Context, input *LoadInput) (*LoadOutput, error) {
	data, err := r.store.Get(ctx, r.key)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return &LoadOutput{Snapshot: models.EmptySnapshot()}, nil
		}
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	var snapshot models.RegistrySnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		r.logger.Warn("discarding unreadable session snapshot",
			slog.String("key", r.key),
			slog.String("error", err.Error()))
		return &LoadOutput{Snapshot: models.EmptySnapshot()}, nil
	}

	repaired := migrateSnapshot(&snapshot, r.clock.Now(), r.retention, r.logger)

	return &LoadOutput{Snapshot: repaired}, nil
}
