// Package cooking implements the session registry: the single source of
// truth for every in-progress cooking session, its step cursor, notes,
// ratings, checked ingredients, and countdown timers. A mutex serializes
// all operations, and every mutation is written through to the session
// state repository before the call returns.
package cooking

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/simmerhq/simmer/internal/common/clock"
	"github.com/simmerhq/simmer/internal/common/uuid"
	"github.com/simmerhq/simmer/internal/models"
	"github.com/simmerhq/simmer/internal/repositories/sessionstate"
)

// service implements the Service interface
type service struct {
	store  sessionstate.Repository
	clock  clock.Clock
	idGen  uuid.Generator
	logger *slog.Logger

	mu              sync.Mutex
	sessions        map[string]*models.CookingSession
	activeSessionID string
}

// New creates a cooking session service, seeding the registry from the
// persisted snapshot. The repository performs staleness eviction and
// schema repair during that load.
func New(ctx context.Context, cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Store == nil {
		return nil, ErrNilStore
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.IDGenerator == nil {
		return nil, ErrNilIDGenerator
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	loaded, err := cfg.Store.Load(ctx, &sessionstate.LoadInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to load session snapshot: %w", err)
	}

	return &service{
		store:           cfg.Store,
		clock:           cfg.Clock,
		idGen:           cfg.IDGenerator,
		logger:          logger,
		sessions:        loaded.Snapshot.Sessions,
		activeSessionID: loaded.Snapshot.ActiveSessionID,
	}, nil
}

// StartSession creates a session for a recipe that has none
func (s *service) StartSession(ctx context.Context, input *StartSessionInput) (*StartSessionOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.RecipeID == "" {
		return nil, ErrEmptyRecipeID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.sessions[input.RecipeID]; exists {
		return nil, ErrSessionExists
	}

	now := s.clock.Now()
	session := &models.CookingSession{
		RecipeID:           input.RecipeID,
		CurrentStep:        0,
		Notes:              make(map[int]string),
		StepRatings:        make(map[int]models.StepRating),
		CheckedIngredients: make(map[int]bool),
		Timers:             []models.Timer{},
		StartedAt:          now,
		LastActiveAt:       now,
		Status:             models.SessionStatusActive,
	}

	s.sessions[input.RecipeID] = session
	s.activeSessionID = input.RecipeID

	if err := s.persist(ctx); err != nil {
		return nil, err
	}

	return &StartSessionOutput{
		Session: session.Clone(),
	}, nil
}

// ResumeSession brings an existing session back to the foreground. Any
// other active session is left untouched; callers are expected to pause
// it first.
func (s *service) ResumeSession(ctx context.Context, input *ResumeSessionInput) error {
	if input == nil {
		return ErrNilInput
	}

	return s.mutateSession(ctx, input.RecipeID, func(session *models.CookingSession) {
		session.Status = models.SessionStatusActive
		s.activeSessionID = session.RecipeID
	})
}

// PauseSession parks the session in the background
func (s *service) PauseSession(ctx context.Context, input *PauseSessionInput) error {
	if input == nil {
		return ErrNilInput
	}

	return s.mutateSession(ctx, input.RecipeID, func(session *models.CookingSession) {
		if session.Status == models.SessionStatusActive {
			session.Status = models.SessionStatusPaused
		}
		if s.activeSessionID == session.RecipeID {
			s.activeSessionID = ""
		}
	})
}

// EndSession finishes a session. A cook who advanced past the first
// step is done with it: the session and everything it held (notes,
// ratings, timers) is removed outright. One who never progressed gets
// an abandoned session kept for the record.
func (s *service) EndSession(ctx context.Context, input *EndSessionInput) (*EndSessionOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[input.RecipeID]
	if !ok {
		return &EndSessionOutput{}, nil
	}

	out := &EndSessionOutput{}
	if session.CurrentStep > 0 {
		delete(s.sessions, input.RecipeID)
		out.Completed = true
	} else {
		session.Status = models.SessionStatusAbandoned
		session.LastActiveAt = s.clock.Now()
		out.Abandoned = true
	}

	if s.activeSessionID == input.RecipeID {
		s.activeSessionID = ""
	}

	if err := s.persist(ctx); err != nil {
		return nil, err
	}

	return out, nil
}

// SetCurrentStep moves the instruction cursor. Upper-bound validation
// is the caller's job; the registry only refuses to go negative.
func (s *service) SetCurrentStep(ctx context.Context, input *SetCurrentStepInput) error {
	if input == nil {
		return ErrNilInput
	}

	return s.mutateSession(ctx, input.RecipeID, func(session *models.CookingSession) {
		step := input.Step
		if step < 0 {
			step = 0
		}
		session.CurrentStep = step
	})
}

// AddNote attaches free-form text to a step
func (s *service) AddNote(ctx context.Context, input *AddNoteInput) error {
	if input == nil {
		return ErrNilInput
	}

	return s.mutateSession(ctx, input.RecipeID, func(session *models.CookingSession) {
		session.Notes[input.Step] = input.Text
	})
}

// RateStep records a thumbs up or down for a step
func (s *service) RateStep(ctx context.Context, input *RateStepInput) error {
	if input == nil {
		return ErrNilInput
	}

	return s.mutateSession(ctx, input.RecipeID, func(session *models.CookingSession) {
		session.StepRatings[input.Step] = input.Rating
	})
}

// ToggleIngredient flips an ingredient's checked flag. Unchecked
// entries are removed rather than stored as false, keeping the map
// sparse.
func (s *service) ToggleIngredient(ctx context.Context, input *ToggleIngredientInput) error {
	if input == nil {
		return ErrNilInput
	}

	return s.mutateSession(ctx, input.RecipeID, func(session *models.CookingSession) {
		if session.CheckedIngredients[input.Index] {
			delete(session.CheckedIngredients, input.Index)
		} else {
			session.CheckedIngredients[input.Index] = true
		}
	})
}

// GetSession returns a copy of one session, or nil if none exists.
// Never an error; absence is an ordinary answer.
func (s *service) GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[input.RecipeID]
	if !ok {
		return &GetSessionOutput{}, nil
	}

	return &GetSessionOutput{
		Session:      session.Clone(),
		IsForeground: s.activeSessionID == input.RecipeID,
	}, nil
}

// ListSessions returns a copy of every session in the registry
func (s *service) ListSessions(ctx context.Context, input *ListSessionsInput) (*ListSessionsOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sessions := make(map[string]*models.CookingSession, len(s.sessions))
	for recipeID, session := range s.sessions {
		sessions[recipeID] = session.Clone()
	}

	return &ListSessionsOutput{
		Sessions:        sessions,
		ActiveSessionID: s.activeSessionID,
	}, nil
}

// mutateSession applies fn to the session for recipeID under the lock,
// refreshes its activity stamp, and persists. Absent sessions are a
// silent no-op so UI calls racing teardown never fail.
func (s *service) mutateSession(ctx context.Context, recipeID string, fn func(session *models.CookingSession)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[recipeID]
	if !ok {
		return nil
	}

	fn(session)
	session.LastActiveAt = s.clock.Now()

	return s.persist(ctx)
}

// persist writes the full snapshot through to storage. Callers must
// hold the lock. The in-memory mutation stands even when the write
// fails; the caller gets the wrapped error.
func (s *service) persist(ctx context.Context) error {
	snapshot := &models.RegistrySnapshot{
		Sessions:        s.sessions,
		ActiveSessionID: s.activeSessionID,
	}

	if err := s.store.Save(ctx, &sessionstate.SaveInput{Snapshot: snapshot}); err != nil {
		s.logger.Warn("failed to persist session snapshot",
			slog.String("error", err.Error()))
		return fmt.Errorf("failed to persist session snapshot: %w", err)
	}

	return nil
}
