package cooking

import (
	"context"

	"github.com/simmerhq/simmer/internal/models"
	"github.com/simmerhq/simmer/internal/timers"
)

// AddTimer creates a countdown on a session. A non-positive duration is
// a hard error; a missing session is the usual silent no-op and yields
// a nil Timer in the output.
func (s *service) AddTimer(ctx context.Context, input *AddTimerInput) (*AddTimerOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	timer, err := timers.New(s.idGen.NewID(), input.Name, input.DurationSeconds)
	if err != nil {
		return nil, err
	}

	out := &AddTimerOutput{}
	err = s.mutateSession(ctx, input.RecipeID, func(session *models.CookingSession) {
		session.Timers = append(session.Timers, timer)
		out.Timer = &timer
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// StartTimer begins a timer's countdown
func (s *service) StartTimer(ctx context.Context, input *StartTimerInput) error {
	if input == nil {
		return ErrNilInput
	}

	return s.mutateTimer(ctx, input.RecipeID, input.TimerID, func(t models.Timer) models.Timer {
		return timers.Start(t, s.clock.Now())
	})
}

// PauseTimer stops a timer's countdown, committing elapsed time
func (s *service) PauseTimer(ctx context.Context, input *PauseTimerInput) error {
	if input == nil {
		return ErrNilInput
	}

	return s.mutateTimer(ctx, input.RecipeID, input.TimerID, func(t models.Timer) models.Timer {
		return timers.Pause(t, s.clock.Now())
	})
}

// ResetTimer restores a timer to its full duration, stopped
func (s *service) ResetTimer(ctx context.Context, input *ResetTimerInput) error {
	if input == nil {
		return ErrNilInput
	}

	return s.mutateTimer(ctx, input.RecipeID, input.TimerID, func(t models.Timer) models.Timer {
		return timers.Reset(t, s.clock.Now())
	})
}

// RenameTimer relabels a timer without touching its countdown
func (s *service) RenameTimer(ctx context.Context, input *RenameTimerInput) error {
	if input == nil {
		return ErrNilInput
	}

	return s.mutateTimer(ctx, input.RecipeID, input.TimerID, func(t models.Timer) models.Timer {
		return timers.Rename(t, input.Name)
	})
}

// DeleteTimer removes a timer from its session
func (s *service) DeleteTimer(ctx context.Context, input *DeleteTimerInput) error {
	if input == nil {
		return ErrNilInput
	}

	return s.mutateSession(ctx, input.RecipeID, func(session *models.CookingSession) {
		idx := session.FindTimer(input.TimerID)
		if idx < 0 {
			return
		}
		session.Timers = append(session.Timers[:idx], session.Timers[idx+1:]...)
	})
}

// TickTimers walks every session and commits pause-at-zero on timers
// whose derived remaining has reached zero. Each completion is reported
// exactly once: the commit flips the timer inactive, so the next pass
// skips it. The snapshot is persisted only when something changed.
func (s *service) TickTimers(ctx context.Context, input *TickTimersInput) (*TickTimersOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	out := &TickTimersOutput{}
	changed := false

	for recipeID, session := range s.sessions {
		for i, t := range session.Timers {
			if !t.IsActive {
				continue
			}

			if !timers.Expired(t, now) {
				out.ActiveTimers++
				continue
			}

			committed := timers.Pause(t, now)
			session.Timers[i] = committed
			session.LastActiveAt = now
			changed = true

			out.Completed = append(out.Completed, CompletedTimer{
				RecipeID: recipeID,
				Timer:    committed,
			})
		}
	}

	if changed {
		if err := s.persist(ctx); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// mutateTimer locates a timer inside a session and writes back the
// transformed value. Missing session or timer is a silent no-op.
func (s *service) mutateTimer(ctx context.Context, recipeID, timerID string, fn func(t models.Timer) models.Timer) error {
	return s.mutateSession(ctx, recipeID, func(session *models.CookingSession) {
		idx := session.FindTimer(timerID)
		if idx < 0 {
			return
		}
		session.Timers[idx] = fn(session.Timers[idx])
	})
}
