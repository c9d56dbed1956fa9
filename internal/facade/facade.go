// Package facade projects registry state into the read-only view one
// recipe screen needs and exposes intention-revealing actions that
// delegate to the session registry. It carries no state of its own.
package facade

import (
	"context"
	"errors"
	"fmt"

	"github.com/simmerhq/simmer/internal/common/clock"
	"github.com/simmerhq/simmer/internal/models"
	"github.com/simmerhq/simmer/internal/repositories/recipes"
	"github.com/simmerhq/simmer/internal/services/cooking"
	"github.com/simmerhq/simmer/internal/timers"
)

// Config holds configuration for a recipe facade
type Config struct {
	// Service is the session registry all actions delegate to
	Service cooking.Service

	// Recipes is the read side of the recipe store, used for step
	// clamping and instruction text
	Recipes recipes.Repository

	// Clock derives live timer countdowns for the view
	Clock clock.Clock

	// RecipeID binds the facade to one recipe
	RecipeID string
}

// RecipeFacade binds the action surface and view derivation to a single
// recipe
type RecipeFacade struct {
	svc      cooking.Service
	recipes  recipes.Repository
	clock    clock.Clock
	recipeID string
}

// New creates a facade bound to one recipe
func New(cfg *Config) (*RecipeFacade, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Service == nil {
		return nil, errors.New("cooking service cannot be nil")
	}

	if cfg.Recipes == nil {
		return nil, errors.New("recipe repository cannot be nil")
	}

	if cfg.Clock == nil {
		return nil, errors.New("clock cannot be nil")
	}

	if cfg.RecipeID == "" {
		return nil, errors.New("recipe ID cannot be empty")
	}

	return &RecipeFacade{
		svc:      cfg.Service,
		recipes:  cfg.Recipes,
		clock:    cfg.Clock,
		recipeID: cfg.RecipeID,
	}, nil
}

// TimerView is a timer with its countdown derived at view time
type TimerView struct {
	ID   string
	Name string

	// Duration is the full length in seconds
	Duration int

	// Remaining is the live derived seconds left
	Remaining int

	IsActive bool

	// Done is true once the countdown has reached zero
	Done bool
}

// View is everything a recipe screen renders for its cooking session
type View struct {
	// Recipe is the underlying record, or nil when it no longer exists
	Recipe *models.Recipe

	// Session is a copy of the session, or nil when none exists
	Session *models.CookingSession

	// HasSession is true when a session exists for this recipe
	HasSession bool

	// IsForeground is true when this recipe's session is the active one
	IsForeground bool

	// CurrentStep is the instruction cursor, 0 when no session exists
	CurrentStep int

	// CurrentInstruction is the text of the current step, empty when
	// out of range or no recipe
	CurrentInstruction string

	// StepCount is how many instructions the recipe has
	StepCount int

	// Timers holds the session's countdowns with live remaining values
	Timers []TimerView
}

// View derives the current screen state for the bound recipe
func (f *RecipeFacade) View(ctx context.Context) (*View, error) {
	view := &View{}

	recipeOut, err := f.recipes.GetRecipe(ctx, &recipes.GetRecipeInput{RecipeID: f.recipeID})
	if err != nil {
		if !errors.Is(err, recipes.ErrRecipeNotFound) {
			return nil, fmt.Errorf("failed to read recipe: %w", err)
		}
		// A deleted recipe still renders its session.
	} else {
		view.Recipe = recipeOut.Recipe
		view.StepCount = len(recipeOut.Recipe.Instructions)
	}

	sessionOut, err := f.svc.GetSession(ctx, &cooking.GetSessionInput{RecipeID: f.recipeID})
	if err != nil {
		return nil, err
	}

	if sessionOut.Session == nil {
		return view, nil
	}

	view.Session = sessionOut.Session
	view.HasSession = true
	view.IsForeground = sessionOut.IsForeground
	view.CurrentStep = sessionOut.Session.CurrentStep

	if view.Recipe != nil && view.CurrentStep < view.StepCount {
		view.CurrentInstruction = view.Recipe.Instructions[view.CurrentStep]
	}

	now := f.clock.Now()
	view.Timers = make([]TimerView, 0, len(sessionOut.Session.Timers))
	for _, t := range sessionOut.Session.Timers {
		remaining := timers.Remaining(t, now)
		view.Timers = append(view.Timers, TimerView{
			ID:        t.ID,
			Name:      t.Name,
			Duration:  t.Duration,
			Remaining: remaining,
			IsActive:  t.IsActive,
			Done:      remaining == 0,
		})
	}

	return view, nil
}

// Start begins a cooking session for the bound recipe
func (f *RecipeFacade) Start(ctx context.Context) error {
	_, err := f.svc.StartSession(ctx, &cooking.StartSessionInput{RecipeID: f.recipeID})
	return err
}

// Resume brings the session back to the foreground
func (f *RecipeFacade) Resume(ctx context.Context) error {
	return f.svc.ResumeSession(ctx, &cooking.ResumeSessionInput{RecipeID: f.recipeID})
}

// Pause parks the session in the background
func (f *RecipeFacade) Pause(ctx context.Context) error {
	return f.svc.PauseSession(ctx, &cooking.PauseSessionInput{RecipeID: f.recipeID})
}

// End finishes the session
func (f *RecipeFacade) End(ctx context.Context) error {
	_, err := f.svc.EndSession(ctx, &cooking.EndSessionInput{RecipeID: f.recipeID})
	return err
}

// NextStep advances the cursor, clamped to the recipe's last
// instruction. The registry never bounds the cursor itself; that is
// this caller's job.
func (f *RecipeFacade) NextStep(ctx context.Context) error {
	view, err := f.View(ctx)
	if err != nil {
		return err
	}

	if !view.HasSession || view.Recipe == nil {
		return nil
	}

	next := view.CurrentStep + 1
	if next > view.StepCount-1 {
		return nil
	}

	return f.SetStep(ctx, next)
}

// PrevStep moves the cursor back, clamped at the first instruction
func (f *RecipeFacade) PrevStep(ctx context.Context) error {
	view, err := f.View(ctx)
	if err != nil {
		return err
	}

	if !view.HasSession || view.CurrentStep == 0 {
		return nil
	}

	return f.SetStep(ctx, view.CurrentStep-1)
}

// SetStep moves the cursor to an absolute position
func (f *RecipeFacade) SetStep(ctx context.Context, step int) error {
	return f.svc.SetCurrentStep(ctx, &cooking.SetCurrentStepInput{RecipeID: f.recipeID, Step: step})
}

// SaveNote attaches free-form text to a step
func (f *RecipeFacade) SaveNote(ctx context.Context, step int, text string) error {
	return f.svc.AddNote(ctx, &cooking.AddNoteInput{RecipeID: f.recipeID, Step: step, Text: text})
}

// RateStep records a thumbs verdict for a step
func (f *RecipeFacade) RateStep(ctx context.Context, step int, rating models.StepRating) error {
	return f.svc.RateStep(ctx, &cooking.RateStepInput{RecipeID: f.recipeID, Step: step, Rating: rating})
}

// ToggleIngredient flips an ingredient's checked flag
func (f *RecipeFacade) ToggleIngredient(ctx context.Context, index int) error {
	return f.svc.ToggleIngredient(ctx, &cooking.ToggleIngredientInput{RecipeID: f.recipeID, Index: index})
}

// AddTimer creates a countdown on the session
func (f *RecipeFacade) AddTimer(ctx context.Context, name string, durationSeconds int) error {
	_, err := f.svc.AddTimer(ctx, &cooking.AddTimerInput{
		RecipeID:        f.recipeID,
		Name:            name,
		DurationSeconds: durationSeconds,
	})
	return err
}

// StartTimer begins a timer's countdown
func (f *RecipeFacade) StartTimer(ctx context.Context, timerID string) error {
	return f.svc.StartTimer(ctx, &cooking.StartTimerInput{RecipeID: f.recipeID, TimerID: timerID})
}

// PauseTimer stops a timer's countdown
func (f *RecipeFacade) PauseTimer(ctx context.Context, timerID string) error {
	return f.svc.PauseTimer(ctx, &cooking.PauseTimerInput{RecipeID: f.recipeID, TimerID: timerID})
}

// ResetTimer restores a timer to its full duration
func (f *RecipeFacade) ResetTimer(ctx context.Context, timerID string) error {
	return f.svc.ResetTimer(ctx, &cooking.ResetTimerInput{RecipeID: f.recipeID, TimerID: timerID})
}

// RenameTimer relabels a timer
func (f *RecipeFacade) RenameTimer(ctx context.Context, timerID, name string) error {
	return f.svc.RenameTimer(ctx, &cooking.RenameTimerInput{RecipeID: f.recipeID, TimerID: timerID, Name: name})
}

// DeleteTimer removes a timer from the session
func (f *RecipeFacade) DeleteTimer(ctx context.Context, timerID string) error {
	return f.svc.DeleteTimer(ctx, &cooking.DeleteTimerInput{RecipeID: f.recipeID, TimerID: timerID})
}
