package sessionstate

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/simmerhq/simmer/internal/repositories/sessionstate Repository

import (
	"context"
)

// Repository persists the session registry as a single snapshot record
type Repository interface {
	// Save writes the snapshot, replacing whatever was stored before
	Save(ctx context.Context, input *SaveInput) error

	// Load reads the stored snapshot and repairs it session by session:
	// stale sessions are evicted, unknown statuses dropped, missing
	// fields back-filled, and running timers have their accumulated
	// decay committed. A corrupt or absent record yields an empty
	// snapshot, never an error.
	Load(ctx context.Context, input *LoadInput) (*LoadOutput, error)
}
