package models

import (
	"time"
)

// Timer is a named countdown attached to a cooking session.
//
// Elapsed time is never accumulated tick by tick. Remaining holds the
// seconds left as of LastUpdatedAt; while the timer is active, the true
// remaining value at wall-clock time t is
// max(0, Remaining - (t - LastUpdatedAt)). Pausing commits that value and
// refreshes the checkpoint, so a suspended process cannot double-count
// elapsed time.
type Timer struct {
	// ID is the unique identifier for the timer, generated at creation
	ID string `json:"id"`

	// Name is the free-text label shown next to the countdown
	Name string `json:"name"`

	// Duration is the total length in seconds, fixed at creation and
	// used by reset
	Duration int `json:"duration"`

	// Remaining is the number of seconds left as of LastUpdatedAt,
	// always within [0, Duration]
	Remaining int `json:"remaining"`

	// IsActive reports whether the timer is currently counting down
	IsActive bool `json:"isActive"`

	// LastUpdatedAt is when Remaining and IsActive were last committed
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}
