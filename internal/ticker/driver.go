// Package ticker drives the countdown display refresh: a once-a-second
// pass over the registry that commits expired timers and forwards their
// completions to the notifier. The driver holds no timer state of its
// own; every pass re-reads the registry, so a session ending between
// passes simply stops being iterated. When no timers are counting down
// the loop parks itself until Kick wakes it.
package ticker

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/simmerhq/simmer/internal/notifications"
	"github.com/simmerhq/simmer/internal/repositories/recipes"
	"github.com/simmerhq/simmer/internal/services/cooking"
)

// defaultInterval is how often the driver ticks while timers are active
const defaultInterval = time.Second

// Config holds configuration for the tick driver
type Config struct {
	// Service is the session registry ticked on every pass
	Service cooking.Service

	// Notifier receives timer completions
	Notifier notifications.Service

	// Recipes resolves recipe titles for notifications; optional, the
	// recipe ID is used when nil or the recipe is gone
	Recipes recipes.Repository

	// Logger receives tick failures; defaults to a discarding logger
	Logger *slog.Logger

	// Interval overrides the 1-second tick, mainly for tests
	Interval time.Duration
}

// Driver runs the periodic tick loop
type Driver struct {
	svc      cooking.Service
	notifier notifications.Service
	recipes  recipes.Repository
	logger   *slog.Logger
	interval time.Duration
	kick     chan struct{}
}

// New creates a tick driver
func New(cfg *Config) (*Driver, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Service == nil {
		return nil, errors.New("cooking service cannot be nil")
	}

	if cfg.Notifier == nil {
		return nil, errors.New("notifier cannot be nil")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	interval := cfg.Interval
	if interval <= 0 {
		interval = defaultInterval
	}

	return &Driver{
		svc:      cfg.Service,
		notifier: cfg.Notifier,
		recipes:  cfg.Recipes,
		logger:   logger,
		interval: interval,
		kick:     make(chan struct{}, 1),
	}, nil
}

// Kick wakes an idle driver. Call it after any mutation that may have
// started a timer; kicking a running driver just forces an early pass.
func (d *Driver) Kick() {
	select {
	case d.kick <- struct{}{}:
	default:
	}
}

// Run ticks until the context is cancelled. The decay arithmetic lives
// in the registry and derives from real timestamps, so missed or bursty
// ticks only affect display latency, never correctness.
func (d *Driver) Run(ctx context.Context) {
	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	idle := false

	for {
		if idle {
			select {
			case <-ctx.Done():
				return
			case <-d.kick:
				idle = false
				ticker.Reset(d.interval)
			}
			continue
		}

		select {
		case <-ctx.Done():
			return
		case <-d.kick:
			// An early pass; fall through.
		case <-ticker.C:
		}

		out, err := d.svc.TickTimers(ctx, &cooking.TickTimersInput{})
		if err != nil {
			d.logger.Warn("tick pass failed",
				slog.String("error", err.Error()))
			continue
		}

		for _, completed := range out.Completed {
			d.notify(ctx, completed)
		}

		if out.ActiveTimers == 0 {
			ticker.Stop()
			idle = true
		}
	}
}

// notify pushes one completion; failures are logged, never propagated,
// the countdown already did its job
func (d *Driver) notify(ctx context.Context, completed cooking.CompletedTimer) {
	title := completed.RecipeID
	if d.recipes != nil {
		out, err := d.recipes.GetRecipe(ctx, &recipes.GetRecipeInput{RecipeID: completed.RecipeID})
		if err == nil {
			title = out.Recipe.Title
		}
	}

	if err := d.notifier.NotifyTimerDone(ctx, title, completed.Timer.Name); err != nil {
		d.logger.Warn("failed to deliver timer notification",
			slog.String("recipeId", completed.RecipeID),
			slog.String("timer", completed.Timer.Name),
			slog.String("error", err.Error()))
	}
}
