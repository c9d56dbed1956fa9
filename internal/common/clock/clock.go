package clock

import "time"

//go:generate mockgen -package=mocks -destination=mocks/mock_clock.go github.com/simmerhq/simmer/internal/common/clock Clock

// Clock provides the current time. Every component that reasons about
// elapsed time takes a Clock so tests can pin the wall clock.
type Clock interface {
	Now() time.Time
}

// DefaultClock implements the Clock interface using the system clock
type DefaultClock struct{}

// New returns a Clock backed by the system clock
func New() *DefaultClock {
	return &DefaultClock{}
}

// Now returns the current time
func (c *DefaultClock) Now() time.Time {
	return time.Now()
}
