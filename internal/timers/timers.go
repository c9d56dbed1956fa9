// Package timers holds the pure countdown arithmetic for session timers.
//
// A timer stores a remaining-seconds checkpoint plus the wall-clock time
// the checkpoint was taken. Live values are derived from the checkpoint on
// demand rather than accumulated tick by tick, so missed ticks, suspended
// processes, and scheduling jitter cannot skew the count.
package timers

import (
	"errors"
	"time"

	"github.com/simmerhq/simmer/internal/models"
)

// ErrInvalidDuration is returned when a timer is created with a
// non-positive duration
var ErrInvalidDuration = errors.New("timer duration must be positive")

// New builds a paused timer with the full duration remaining
func New(id, name string, durationSeconds int) (models.Timer, error) {
	if durationSeconds <= 0 {
		return models.Timer{}, ErrInvalidDuration
	}

	return models.Timer{
		ID:        id,
		Name:      name,
		Duration:  durationSeconds,
		Remaining: durationSeconds,
		IsActive:  false,
	}, nil
}

// Start marks the timer as counting down from now. Starting an already
// active timer is a no-op.
func Start(t models.Timer, now time.Time) models.Timer {
	if t.IsActive {
		return t
	}

	t.IsActive = true
	t.LastUpdatedAt = now
	return t
}

// Pause commits the decay since the last checkpoint and stops the
// countdown. Pausing an already paused timer is a no-op.
func Pause(t models.Timer, now time.Time) models.Timer {
	if !t.IsActive {
		return t
	}

	t.Remaining = Remaining(t, now)
	t.IsActive = false
	t.LastUpdatedAt = now
	return t
}

// Reset restores the full duration and stops the countdown, regardless of
// prior state.
func Reset(t models.Timer, now time.Time) models.Timer {
	t.Remaining = t.Duration
	t.IsActive = false
	t.LastUpdatedAt = now
	return t
}

// Rename replaces the label without touching any timing field
func Rename(t models.Timer, name string) models.Timer {
	t.Name = name
	return t
}

// Remaining derives the seconds left at the given wall-clock time without
// mutating the checkpoint. For a paused timer that is simply the stored
// value; for an active one it is max(0, remaining - (now - checkpoint)).
func Remaining(t models.Timer, now time.Time) int {
	if !t.IsActive {
		return t.Remaining
	}

	elapsed := int(now.Sub(t.LastUpdatedAt).Seconds())
	if elapsed < 0 {
		// Wall clock moved backwards; never credit time back.
		elapsed = 0
	}

	remaining := t.Remaining - elapsed
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Expired reports whether an active timer has counted all the way down
func Expired(t models.Timer, now time.Time) bool {
	return t.IsActive && Remaining(t, now) == 0
}
