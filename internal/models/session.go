package models

import (
	"strings"
	"time"
)

// SessionStatus represents the lifecycle state of a cooking session
type SessionStatus string

const (
	// SessionStatusActive indicates the session is in the foreground
	// being cooked right now
	SessionStatusActive SessionStatus = "active"

	// SessionStatusPaused indicates the session is parked in the
	// background; several sessions may be paused at once
	SessionStatusPaused SessionStatus = "paused"

	// SessionStatusCompleted indicates the session ended after making
	// progress; completed sessions are removed from the registry
	SessionStatusCompleted SessionStatus = "completed"

	// SessionStatusAbandoned indicates the session ended without ever
	// advancing past the first step; kept around as a record
	SessionStatusAbandoned SessionStatus = "abandoned"
)

var sessionStatusSet = map[SessionStatus]struct{}{
	SessionStatusActive:    {},
	SessionStatusPaused:    {},
	SessionStatusCompleted: {},
	SessionStatusAbandoned: {},
}

// ParseSessionStatus converts a stored string into a known SessionStatus
func ParseSessionStatus(value string) (SessionStatus, bool) {
	normalized := SessionStatus(strings.ToLower(strings.TrimSpace(value)))
	if normalized == "" {
		return "", false
	}
	_, ok := sessionStatusSet[normalized]
	return normalized, ok
}

// StepRating is a thumbs up or down verdict on a single recipe step
type StepRating string

const (
	// StepRatingUp marks a step that worked well
	StepRatingUp StepRating = "up"

	// StepRatingDown marks a step that needs rework
	StepRatingDown StepRating = "down"
)

// CookingSession tracks one user's pass through one recipe: a step
// cursor, per-step notes and ratings, checked-off ingredients, and any
// countdown timers started along the way
type CookingSession struct {
	// RecipeID identifies the recipe being cooked; there is at most one
	// session per recipe at a time
	RecipeID string `json:"recipeId"`

	// CurrentStep is the zero-based cursor into the recipe's
	// instruction list
	CurrentStep int `json:"currentStep"`

	// Notes maps a step index to free-form text; absent means no note
	Notes map[int]string `json:"notes"`

	// StepRatings maps a step index to a thumbs verdict
	StepRatings map[int]StepRating `json:"stepRatings"`

	// CheckedIngredients maps an ingredient index to its checked flag;
	// absent means unchecked
	CheckedIngredients map[int]bool `json:"checkedIngredients"`

	// Timers holds the session's countdowns in insertion order
	Timers []Timer `json:"timers"`

	// StartedAt is when the session was created
	StartedAt time.Time `json:"startedAt"`

	// LastActiveAt is refreshed by every mutating operation and drives
	// staleness eviction on load
	LastActiveAt time.Time `json:"lastActiveAt"`

	// Status is the current lifecycle state
	Status SessionStatus `json:"status"`
}

// Clone returns a deep copy so callers can hold session state without
// racing the registry's own mutations.
func (s *CookingSession) Clone() *CookingSession {
	if s == nil {
		return nil
	}

	cp := *s

	if s.Notes != nil {
		cp.Notes = make(map[int]string, len(s.Notes))
		for k, v := range s.Notes {
			cp.Notes[k] = v
		}
	}

	if s.StepRatings != nil {
		cp.StepRatings = make(map[int]StepRating, len(s.StepRatings))
		for k, v := range s.StepRatings {
			cp.StepRatings[k] = v
		}
	}

	if s.CheckedIngredients != nil {
		cp.CheckedIngredients = make(map[int]bool, len(s.CheckedIngredients))
		for k, v := range s.CheckedIngredients {
			cp.CheckedIngredients[k] = v
		}
	}

	if s.Timers != nil {
		cp.Timers = make([]Timer, len(s.Timers))
		copy(cp.Timers, s.Timers)
	}

	return &cp
}

// FindTimer returns the index of the timer with the given ID, or -1
func (s *CookingSession) FindTimer(timerID string) int {
	for i := range s.Timers {
		if s.Timers[i].ID == timerID {
			return i
		}
	}
	return -1
}
