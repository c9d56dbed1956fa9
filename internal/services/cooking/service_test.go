package cooking

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	clockMocks "github.com/simmerhq/simmer/internal/common/clock/mocks"
	uuidMocks "github.com/simmerhq/simmer/internal/common/uuid/mocks"
	"github.com/simmerhq/simmer/internal/models"
	"github.com/simmerhq/simmer/internal/repositories/sessionstate"
	"github.com/simmerhq/simmer/internal/storage"
)

type CookingServiceTestSuite struct {
	suite.Suite
	mockCtrl  *gomock.Controller
	mockClock *clockMocks.MockClock
	mockUUID  *uuidMocks.MockGenerator
	store     sessionstate.Repository
	svc       Service
	ctx       context.Context

	// now is what the mock clock reports; tests advance it to simulate
	// wall-clock time passing
	now    time.Time
	nextID int
}

func (s *CookingServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockGenerator(s.mockCtrl)
	s.ctx = context.Background()
	s.now = time.Date(2025, 7, 2, 19, 0, 0, 0, time.UTC)
	s.nextID = 0

	s.mockClock.EXPECT().Now().DoAndReturn(func() time.Time {
		return s.now
	}).AnyTimes()

	s.mockUUID.EXPECT().NewID().DoAndReturn(func() string {
		s.nextID++
		return fmt.Sprintf("timer-%d", s.nextID)
	}).AnyTimes()

	store, err := sessionstate.New(&sessionstate.Config{
		Store: storage.NewMemory(),
		Clock: s.mockClock,
	})
	s.Require().NoError(err)
	s.store = store

	svc, err := New(s.ctx, &Config{
		Store:       s.store,
		Clock:       s.mockClock,
		IDGenerator: s.mockUUID,
	})
	s.Require().NoError(err)
	s.svc = svc
}

func (s *CookingServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCookingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CookingServiceTestSuite))
}

func (s *CookingServiceTestSuite) advance(d time.Duration) {
	s.now = s.now.Add(d)
}

func (s *CookingServiceTestSuite) startSession(recipeID string) {
	_, err := s.svc.StartSession(s.ctx, &StartSessionInput{RecipeID: recipeID})
	s.Require().NoError(err)
}

func (s *CookingServiceTestSuite) getSession(recipeID string) *GetSessionOutput {
	out, err := s.svc.GetSession(s.ctx, &GetSessionInput{RecipeID: recipeID})
	s.Require().NoError(err)
	return out
}

func (s *CookingServiceTestSuite) TestNewValidatesConfig() {
	_, err := New(s.ctx, nil)
	s.Require().ErrorIs(err, ErrNilConfig)

	_, err = New(s.ctx, &Config{Clock: s.mockClock, IDGenerator: s.mockUUID})
	s.Require().ErrorIs(err, ErrNilStore)

	_, err = New(s.ctx, &Config{Store: s.store, IDGenerator: s.mockUUID})
	s.Require().ErrorIs(err, ErrNilClock)

	_, err = New(s.ctx, &Config{Store: s.store, Clock: s.mockClock})
	s.Require().ErrorIs(err, ErrNilIDGenerator)
}

func (s *CookingServiceTestSuite) TestStartSessionCreatesForegroundSession() {
	out, err := s.svc.StartSession(s.ctx, &StartSessionInput{RecipeID: "recipe-1"})
	s.Require().NoError(err)

	s.Equal("recipe-1", out.Session.RecipeID)
	s.Equal(0, out.Session.CurrentStep)
	s.Equal(models.SessionStatusActive, out.Session.Status)
	s.True(out.Session.StartedAt.Equal(s.now))

	got := s.getSession("recipe-1")
	s.Require().NotNil(got.Session)
	s.True(got.IsForeground)
}

func (s *CookingServiceTestSuite) TestStartSessionTwiceFails() {
	s.startSession("recipe-1")

	_, err := s.svc.StartSession(s.ctx, &StartSessionInput{RecipeID: "recipe-1"})
	s.Require().ErrorIs(err, ErrSessionExists)
}

func (s *CookingServiceTestSuite) TestPauseSessionClearsForeground() {
	s.startSession("recipe-1")

	err := s.svc.PauseSession(s.ctx, &PauseSessionInput{RecipeID: "recipe-1"})
	s.Require().NoError(err)

	got := s.getSession("recipe-1")
	s.Equal(models.SessionStatusPaused, got.Session.Status)
	s.False(got.IsForeground)

	list, err := s.svc.ListSessions(s.ctx, &ListSessionsInput{})
	s.Require().NoError(err)
	s.Empty(list.ActiveSessionID)
}

func (s *CookingServiceTestSuite) TestResumeDoesNotPauseOtherActiveSession() {
	// A resumes while B is still active. The registry deliberately
	// leaves B alone: callers own pausing the old foreground session.
	s.startSession("recipe-a")
	s.startSession("recipe-b")

	err := s.svc.PauseSession(s.ctx, &PauseSessionInput{RecipeID: "recipe-b"})
	s.Require().NoError(err)

	err = s.svc.ResumeSession(s.ctx, &ResumeSessionInput{RecipeID: "recipe-b"})
	s.Require().NoError(err)

	gotA := s.getSession("recipe-a")
	s.Equal(models.SessionStatusActive, gotA.Session.Status)
	s.False(gotA.IsForeground)

	gotB := s.getSession("recipe-b")
	s.Equal(models.SessionStatusActive, gotB.Session.Status)
	s.True(gotB.IsForeground)
}

func (s *CookingServiceTestSuite) TestEndAtStepZeroRetainsAbandonedSession() {
	s.startSession("recipe-1")

	out, err := s.svc.EndSession(s.ctx, &EndSessionInput{RecipeID: "recipe-1"})
	s.Require().NoError(err)
	s.True(out.Abandoned)
	s.False(out.Completed)

	got := s.getSession("recipe-1")
	s.Require().NotNil(got.Session)
	s.Equal(models.SessionStatusAbandoned, got.Session.Status)
	s.False(got.IsForeground)
}

func (s *CookingServiceTestSuite) TestEndWithProgressRemovesSessionAndNotes() {
	s.startSession("recipe-1")

	err := s.svc.AddNote(s.ctx, &AddNoteInput{RecipeID: "recipe-1", Step: 2, Text: "reduce heat"})
	s.Require().NoError(err)

	err = s.svc.SetCurrentStep(s.ctx, &SetCurrentStepInput{RecipeID: "recipe-1", Step: 3})
	s.Require().NoError(err)

	out, err := s.svc.EndSession(s.ctx, &EndSessionInput{RecipeID: "recipe-1"})
	s.Require().NoError(err)
	s.True(out.Completed)
	s.False(out.Abandoned)

	// The session is gone, and the note went with it.
	got := s.getSession("recipe-1")
	s.Nil(got.Session)

	list, err := s.svc.ListSessions(s.ctx, &ListSessionsInput{})
	s.Require().NoError(err)
	s.Empty(list.Sessions)
}

func (s *CookingServiceTestSuite) TestEndMissingSessionIsNoOp() {
	out, err := s.svc.EndSession(s.ctx, &EndSessionInput{RecipeID: "recipe-gone"})
	s.Require().NoError(err)
	s.False(out.Completed)
	s.False(out.Abandoned)
}

func (s *CookingServiceTestSuite) TestMutationsOnMissingSessionAreNoOps() {
	s.Require().NoError(s.svc.ResumeSession(s.ctx, &ResumeSessionInput{RecipeID: "ghost"}))
	s.Require().NoError(s.svc.PauseSession(s.ctx, &PauseSessionInput{RecipeID: "ghost"}))
	s.Require().NoError(s.svc.SetCurrentStep(s.ctx, &SetCurrentStepInput{RecipeID: "ghost", Step: 4}))
	s.Require().NoError(s.svc.AddNote(s.ctx, &AddNoteInput{RecipeID: "ghost", Step: 0, Text: "x"}))
	s.Require().NoError(s.svc.RateStep(s.ctx, &RateStepInput{RecipeID: "ghost", Step: 0, Rating: models.StepRatingUp}))
	s.Require().NoError(s.svc.ToggleIngredient(s.ctx, &ToggleIngredientInput{RecipeID: "ghost", Index: 0}))
	s.Require().NoError(s.svc.StartTimer(s.ctx, &StartTimerInput{RecipeID: "ghost", TimerID: "t"}))

	list, err := s.svc.ListSessions(s.ctx, &ListSessionsInput{})
	s.Require().NoError(err)
	s.Empty(list.Sessions)
}

func (s *CookingServiceTestSuite) TestToggleIngredientIsSelfInverse() {
	s.startSession("recipe-1")

	err := s.svc.ToggleIngredient(s.ctx, &ToggleIngredientInput{RecipeID: "recipe-1", Index: 0})
	s.Require().NoError(err)
	s.True(s.getSession("recipe-1").Session.CheckedIngredients[0])

	err = s.svc.ToggleIngredient(s.ctx, &ToggleIngredientInput{RecipeID: "recipe-1", Index: 0})
	s.Require().NoError(err)
	s.False(s.getSession("recipe-1").Session.CheckedIngredients[0])
}

func (s *CookingServiceTestSuite) TestSetCurrentStepClampsNegative() {
	s.startSession("recipe-1")

	err := s.svc.SetCurrentStep(s.ctx, &SetCurrentStepInput{RecipeID: "recipe-1", Step: -3})
	s.Require().NoError(err)
	s.Equal(0, s.getSession("recipe-1").Session.CurrentStep)
}

func (s *CookingServiceTestSuite) TestNotesAndRatingsAccumulate() {
	s.startSession("recipe-1")

	err := s.svc.AddNote(s.ctx, &AddNoteInput{RecipeID: "recipe-1", Step: 1, Text: "more salt"})
	s.Require().NoError(err)

	err = s.svc.RateStep(s.ctx, &RateStepInput{RecipeID: "recipe-1", Step: 1, Rating: models.StepRatingDown})
	s.Require().NoError(err)

	got := s.getSession("recipe-1").Session
	s.Equal("more salt", got.Notes[1])
	s.Equal(models.StepRatingDown, got.StepRatings[1])
}

func (s *CookingServiceTestSuite) TestMutationsRefreshLastActiveAt() {
	s.startSession("recipe-1")
	started := s.getSession("recipe-1").Session.LastActiveAt

	s.advance(10 * time.Minute)

	err := s.svc.AddNote(s.ctx, &AddNoteInput{RecipeID: "recipe-1", Step: 0, Text: "preheat first"})
	s.Require().NoError(err)

	refreshed := s.getSession("recipe-1").Session.LastActiveAt
	s.True(refreshed.After(started))
	s.True(refreshed.Equal(s.now))
}

func (s *CookingServiceTestSuite) TestRegistrySurvivesRestart() {
	s.startSession("recipe-1")

	err := s.svc.SetCurrentStep(s.ctx, &SetCurrentStepInput{RecipeID: "recipe-1", Step: 2})
	s.Require().NoError(err)

	// A second service over the same store plays the role of the
	// process coming back up.
	restarted, err := New(s.ctx, &Config{
		Store:       s.store,
		Clock:       s.mockClock,
		IDGenerator: s.mockUUID,
	})
	s.Require().NoError(err)

	got, err := restarted.GetSession(s.ctx, &GetSessionInput{RecipeID: "recipe-1"})
	s.Require().NoError(err)
	s.Require().NotNil(got.Session)
	s.Equal(2, got.Session.CurrentStep)
	s.True(got.IsForeground)
}
