package notifications

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
)

type NotificationsTestSuite struct {
	suite.Suite
	ctx context.Context
}

func (s *NotificationsTestSuite) SetupTest() {
	s.ctx = context.Background()
}

func TestNotificationsTestSuite(t *testing.T) {
	suite.Run(t, new(NotificationsTestSuite))
}

func (s *NotificationsTestSuite) TestNoopWhenUnconfigured() {
	svc := New(nil)
	s.Require().NoError(svc.NotifyTimerDone(s.ctx, "Carbonara", "Boil"))

	svc = New(&Config{Endpoint: "   "})
	s.Require().NoError(svc.TestNotification(s.ctx))
}

func (s *NotificationsTestSuite) TestNotifyTimerDonePostsToEndpoint() {
	var gotBody, gotTitle, gotPriority string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		gotTitle = r.Header.Get("Title")
		gotPriority = r.Header.Get("Priority")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	svc := New(&Config{Endpoint: server.URL})
	err := svc.NotifyTimerDone(s.ctx, "Weeknight Carbonara", "Boil pasta")
	s.Require().NoError(err)

	s.Equal("Simmer - Timer Done", gotTitle)
	s.Equal("high", gotPriority)
	s.Contains(gotBody, "Boil pasta")
	s.Contains(gotBody, "Weeknight Carbonara")
}

func (s *NotificationsTestSuite) TestServerErrorIsReturned() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "topic over quota", http.StatusTooManyRequests)
	}))
	defer server.Close()

	svc := New(&Config{Endpoint: server.URL})
	err := svc.NotifyTimerDone(s.ctx, "Carbonara", "Boil")
	s.Require().Error(err)
	s.Contains(err.Error(), "429")
}

func (s *NotificationsTestSuite) TestTimerDoneMessageMentionsTimer() {
	for i := 0; i < 20; i++ {
		message := timerDoneMessage("Shakshuka", "Simmer sauce")
		s.Contains(message, "Simmer sauce")
		s.Contains(message, "Shakshuka")
	}

	bare := timerDoneMessage("", "Rest meat")
	s.Contains(bare, "Rest meat")
	s.False(strings.Contains(bare, "()"))
}
