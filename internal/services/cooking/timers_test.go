package cooking

import (
	"time"

	"github.com/simmerhq/simmer/internal/timers"
)

func (s *CookingServiceTestSuite) TestAddTimerRejectsNonPositiveDuration() {
	s.startSession("recipe-1")

	_, err := s.svc.AddTimer(s.ctx, &AddTimerInput{
		RecipeID:        "recipe-1",
		Name:            "Boil",
		DurationSeconds: 0,
	})
	s.Require().ErrorIs(err, timers.ErrInvalidDuration)
}

func (s *CookingServiceTestSuite) TestAddTimerOnMissingSessionIsNoOp() {
	out, err := s.svc.AddTimer(s.ctx, &AddTimerInput{
		RecipeID:        "ghost",
		Name:            "Boil",
		DurationSeconds: 300,
	})
	s.Require().NoError(err)
	s.Nil(out.Timer)
}

func (s *CookingServiceTestSuite) TestBoilTimerScenario() {
	s.startSession("recipe-1")

	added, err := s.svc.AddTimer(s.ctx, &AddTimerInput{
		RecipeID:        "recipe-1",
		Name:            "Boil",
		DurationSeconds: 300,
	})
	s.Require().NoError(err)
	s.Require().NotNil(added.Timer)

	err = s.svc.StartTimer(s.ctx, &StartTimerInput{
		RecipeID: "recipe-1",
		TimerID:  added.Timer.ID,
	})
	s.Require().NoError(err)

	// Two minutes pass; the stored checkpoint is untouched but the
	// derived remaining has decayed.
	s.advance(120 * time.Second)

	got := s.getSession("recipe-1").Session.Timers[0]
	s.True(got.IsActive)
	s.Equal(180, timers.Remaining(got, s.now))

	err = s.svc.PauseTimer(s.ctx, &PauseTimerInput{
		RecipeID: "recipe-1",
		TimerID:  added.Timer.ID,
	})
	s.Require().NoError(err)

	got = s.getSession("recipe-1").Session.Timers[0]
	s.False(got.IsActive)
	s.Equal(180, got.Remaining)

	// Paused timers do not decay.
	s.advance(50 * time.Second)

	got = s.getSession("recipe-1").Session.Timers[0]
	s.Equal(180, timers.Remaining(got, s.now))
}

func (s *CookingServiceTestSuite) TestResetTimerRestoresDuration() {
	s.startSession("recipe-1")

	added, err := s.svc.AddTimer(s.ctx, &AddTimerInput{
		RecipeID:        "recipe-1",
		Name:            "Proof dough",
		DurationSeconds: 600,
	})
	s.Require().NoError(err)

	err = s.svc.StartTimer(s.ctx, &StartTimerInput{RecipeID: "recipe-1", TimerID: added.Timer.ID})
	s.Require().NoError(err)

	s.advance(4 * time.Minute)

	err = s.svc.ResetTimer(s.ctx, &ResetTimerInput{RecipeID: "recipe-1", TimerID: added.Timer.ID})
	s.Require().NoError(err)

	got := s.getSession("recipe-1").Session.Timers[0]
	s.Equal(600, got.Remaining)
	s.False(got.IsActive)
}

func (s *CookingServiceTestSuite) TestRenameTimerKeepsCountdown() {
	s.startSession("recipe-1")

	added, err := s.svc.AddTimer(s.ctx, &AddTimerInput{
		RecipeID:        "recipe-1",
		Name:            "Timer",
		DurationSeconds: 300,
	})
	s.Require().NoError(err)

	err = s.svc.StartTimer(s.ctx, &StartTimerInput{RecipeID: "recipe-1", TimerID: added.Timer.ID})
	s.Require().NoError(err)

	s.advance(30 * time.Second)

	err = s.svc.RenameTimer(s.ctx, &RenameTimerInput{
		RecipeID: "recipe-1",
		TimerID:  added.Timer.ID,
		Name:     "Blanch greens",
	})
	s.Require().NoError(err)

	got := s.getSession("recipe-1").Session.Timers[0]
	s.Equal("Blanch greens", got.Name)
	s.True(got.IsActive)
	s.Equal(270, timers.Remaining(got, s.now))
}

func (s *CookingServiceTestSuite) TestDeleteTimer() {
	s.startSession("recipe-1")

	first, err := s.svc.AddTimer(s.ctx, &AddTimerInput{RecipeID: "recipe-1", Name: "One", DurationSeconds: 60})
	s.Require().NoError(err)
	second, err := s.svc.AddTimer(s.ctx, &AddTimerInput{RecipeID: "recipe-1", Name: "Two", DurationSeconds: 120})
	s.Require().NoError(err)

	err = s.svc.DeleteTimer(s.ctx, &DeleteTimerInput{RecipeID: "recipe-1", TimerID: first.Timer.ID})
	s.Require().NoError(err)

	got := s.getSession("recipe-1").Session.Timers
	s.Require().Len(got, 1)
	s.Equal(second.Timer.ID, got[0].ID)
}

func (s *CookingServiceTestSuite) TestTickReportsCompletionExactlyOnce() {
	s.startSession("recipe-1")

	short, err := s.svc.AddTimer(s.ctx, &AddTimerInput{RecipeID: "recipe-1", Name: "Blanch", DurationSeconds: 60})
	s.Require().NoError(err)
	long, err := s.svc.AddTimer(s.ctx, &AddTimerInput{RecipeID: "recipe-1", Name: "Braise", DurationSeconds: 3600})
	s.Require().NoError(err)

	s.Require().NoError(s.svc.StartTimer(s.ctx, &StartTimerInput{RecipeID: "recipe-1", TimerID: short.Timer.ID}))
	s.Require().NoError(s.svc.StartTimer(s.ctx, &StartTimerInput{RecipeID: "recipe-1", TimerID: long.Timer.ID}))

	s.advance(90 * time.Second)

	out, err := s.svc.TickTimers(s.ctx, &TickTimersInput{})
	s.Require().NoError(err)
	s.Require().Len(out.Completed, 1)
	s.Equal("recipe-1", out.Completed[0].RecipeID)
	s.Equal(short.Timer.ID, out.Completed[0].Timer.ID)
	s.Equal(0, out.Completed[0].Timer.Remaining)
	s.Equal(1, out.ActiveTimers)

	// The expired timer was committed at zero and stopped, so the next
	// pass has nothing new to report.
	out, err = s.svc.TickTimers(s.ctx, &TickTimersInput{})
	s.Require().NoError(err)
	s.Empty(out.Completed)
	s.Equal(1, out.ActiveTimers)

	got := s.getSession("recipe-1").Session.Timers
	s.Equal(0, got[0].Remaining)
	s.False(got[0].IsActive)
	s.True(got[1].IsActive)
}

func (s *CookingServiceTestSuite) TestTickWithNoActiveTimersReportsIdle() {
	s.startSession("recipe-1")

	_, err := s.svc.AddTimer(s.ctx, &AddTimerInput{RecipeID: "recipe-1", Name: "Rest meat", DurationSeconds: 600})
	s.Require().NoError(err)

	out, err := s.svc.TickTimers(s.ctx, &TickTimersInput{})
	s.Require().NoError(err)
	s.Empty(out.Completed)
	s.Equal(0, out.ActiveTimers)
}
