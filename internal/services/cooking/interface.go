package cooking

import "context"

// Service is the session registry: every cooking session keyed by
// recipe, the single foreground session, and all the operations the UI
// layer calls. Mutations addressed at a recipe with no session are
// silent no-ops so calls racing against session teardown never fail.
type Service interface {
	// StartSession creates a session for a recipe that has none
	StartSession(ctx context.Context, input *StartSessionInput) (*StartSessionOutput, error)

	// ResumeSession brings an existing session back to the foreground
	ResumeSession(ctx context.Context, input *ResumeSessionInput) error

	// PauseSession parks the session in the background
	PauseSession(ctx context.Context, input *PauseSessionInput) error

	// EndSession finishes a session: removed outright when the cook
	// made progress, retained as abandoned when they never did
	EndSession(ctx context.Context, input *EndSessionInput) (*EndSessionOutput, error)

	// SetCurrentStep moves the instruction cursor
	SetCurrentStep(ctx context.Context, input *SetCurrentStepInput) error

	// AddNote attaches free-form text to a step
	AddNote(ctx context.Context, input *AddNoteInput) error

	// RateStep records a thumbs up or down for a step
	RateStep(ctx context.Context, input *RateStepInput) error

	// ToggleIngredient flips an ingredient's checked-off flag
	ToggleIngredient(ctx context.Context, input *ToggleIngredientInput) error

	// AddTimer creates a countdown on a session
	AddTimer(ctx context.Context, input *AddTimerInput) (*AddTimerOutput, error)

	// StartTimer begins a timer's countdown
	StartTimer(ctx context.Context, input *StartTimerInput) error

	// PauseTimer stops a timer's countdown, committing elapsed time
	PauseTimer(ctx context.Context, input *PauseTimerInput) error

	// ResetTimer restores a timer to its full duration, stopped
	ResetTimer(ctx context.Context, input *ResetTimerInput) error

	// RenameTimer relabels a timer without touching its countdown
	RenameTimer(ctx context.Context, input *RenameTimerInput) error

	// DeleteTimer removes a timer from its session
	DeleteTimer(ctx context.Context, input *DeleteTimerInput) error

	// GetSession returns a copy of one session, or nil if none exists
	GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error)

	// ListSessions returns a copy of every session in the registry
	ListSessions(ctx context.Context, input *ListSessionsInput) (*ListSessionsOutput, error)

	// TickTimers commits pause-at-zero on every expired timer and
	// reports completions; the tick driver calls this once a second
	TickTimers(ctx context.Context, input *TickTimersInput) (*TickTimersOutput, error)
}
