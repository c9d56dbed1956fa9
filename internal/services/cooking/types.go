package cooking

import (
	"log/slog"

	"github.com/simmerhq/simmer/internal/common/clock"
	"github.com/simmerhq/simmer/internal/common/uuid"
	"github.com/simmerhq/simmer/internal/models"
	"github.com/simmerhq/simmer/internal/repositories/sessionstate"
)

// Config holds configuration for the cooking session service
type Config struct {
	// Store persists the registry snapshot after every mutation
	Store sessionstate.Repository

	// Clock supplies the wall-clock time all countdown arithmetic and
	// activity stamps derive from
	Clock clock.Clock

	// IDGenerator hands out timer IDs
	IDGenerator uuid.Generator

	// Logger receives persistence warnings; defaults to a discarding
	// logger
	Logger *slog.Logger
}

// StartSessionInput contains parameters for starting a session
type StartSessionInput struct {
	// RecipeID identifies the recipe being cooked
	RecipeID string
}

// StartSessionOutput contains the newly created session
type StartSessionOutput struct {
	Session *models.CookingSession
}

// ResumeSessionInput contains parameters for resuming a session
type ResumeSessionInput struct {
	RecipeID string
}

// PauseSessionInput contains parameters for pausing a session
type PauseSessionInput struct {
	RecipeID string
}

// EndSessionInput contains parameters for ending a session
type EndSessionInput struct {
	RecipeID string
}

// EndSessionOutput reports how the session ended
type EndSessionOutput struct {
	// Completed is true when the session made progress and was removed
	// from the registry
	Completed bool

	// Abandoned is true when the session never advanced past the first
	// step and was retained for the record
	Abandoned bool
}

// SetCurrentStepInput contains parameters for moving the step cursor
type SetCurrentStepInput struct {
	RecipeID string

	// Step is the new zero-based cursor; negative values clamp to 0
	Step int
}

// AddNoteInput contains parameters for attaching a note to a step
type AddNoteInput struct {
	RecipeID string
	Step     int
	Text     string
}

// RateStepInput contains parameters for rating a step
type RateStepInput struct {
	RecipeID string
	Step     int
	Rating   models.StepRating
}

// ToggleIngredientInput contains parameters for flipping an
// ingredient's checked flag
type ToggleIngredientInput struct {
	RecipeID string

	// Index is the position in the recipe's ingredient list
	Index int
}

// AddTimerInput contains parameters for creating a timer
type AddTimerInput struct {
	RecipeID string
	Name     string

	// DurationSeconds must be positive
	DurationSeconds int
}

// AddTimerOutput contains the created timer, or nil when the recipe has
// no session
type AddTimerOutput struct {
	Timer *models.Timer
}

// StartTimerInput contains parameters for starting a timer
type StartTimerInput struct {
	RecipeID string
	TimerID  string
}

// PauseTimerInput contains parameters for pausing a timer
type PauseTimerInput struct {
	RecipeID string
	TimerID  string
}

// ResetTimerInput contains parameters for resetting a timer
type ResetTimerInput struct {
	RecipeID string
	TimerID  string
}

// RenameTimerInput contains parameters for renaming a timer
type RenameTimerInput struct {
	RecipeID string
	TimerID  string
	Name     string
}

// DeleteTimerInput contains parameters for deleting a timer
type DeleteTimerInput struct {
	RecipeID string
	TimerID  string
}

// GetSessionInput contains parameters for reading one session
type GetSessionInput struct {
	RecipeID string
}

// GetSessionOutput contains a copy of the session, or nil when the
// recipe has no session
type GetSessionOutput struct {
	Session *models.CookingSession

	// IsForeground is true when this session is the active one
	IsForeground bool
}

// ListSessionsInput contains parameters for listing sessions
type ListSessionsInput struct{}

// ListSessionsOutput contains copies of every session in the registry
type ListSessionsOutput struct {
	Sessions map[string]*models.CookingSession

	// ActiveSessionID is the recipe ID of the foreground session, or
	// empty
	ActiveSessionID string
}

// TickTimersInput contains parameters for a tick pass
type TickTimersInput struct{}

// CompletedTimer pairs a finished timer with the session it belongs to
type CompletedTimer struct {
	RecipeID string
	Timer    models.Timer
}

// TickTimersOutput reports the result of one tick pass
type TickTimersOutput struct {
	// Completed holds timers that reached zero on this pass; each is
	// reported exactly once
	Completed []CompletedTimer

	// ActiveTimers is how many timers are still counting down after
	// the pass, so the driver can idle at zero
	ActiveTimers int
}
