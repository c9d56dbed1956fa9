// Package notifications pushes timer completions to the cook's phone
// via ntfy. When no topic is configured every call is a cheap no-op, so
// the tick driver never has to care whether push is wired up.
package notifications

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const userAgent = "Simmer/0.1.0"

// Service is the notification surface the tick driver talks to
type Service interface {
	// NotifyTimerDone announces that a named timer on a recipe has
	// finished counting down
	NotifyTimerDone(ctx context.Context, recipeTitle, timerName string) error

	// TestNotification sends a throwaway message to verify delivery
	TestNotification(ctx context.Context) error
}

// Config holds configuration for the notification service
type Config struct {
	// Endpoint is the full ntfy topic URL, e.g. https://ntfy.sh/my-kitchen.
	// Empty disables push entirely.
	Endpoint string

	// Timeout bounds each push request; defaults to 10 seconds
	Timeout time.Duration
}

// New builds a notification service backed by ntfy when configured.
// When no endpoint is configured, a noop implementation is returned.
func New(cfg *Config) Service {
	if cfg == nil {
		return noopService{}
	}

	endpoint := strings.TrimSpace(cfg.Endpoint)
	if endpoint == "" {
		return noopService{}
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &ntfyService{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

type payload struct {
	title    string
	message  string
	tags     []string
	priority string
}

type ntfyService struct {
	endpoint string
	client   *http.Client
}

func (n *ntfyService) NotifyTimerDone(ctx context.Context, recipeTitle, timerName string) error {
	recipeTitle = strings.TrimSpace(recipeTitle)
	timerName = strings.TrimSpace(timerName)
	if timerName == "" {
		timerName = "Timer"
	}

	data := payload{
		title:    "Simmer - Timer Done",
		message:  timerDoneMessage(recipeTitle, timerName),
		tags:     []string{"simmer", "timer", "done"},
		priority: "high",
	}
	return n.send(ctx, data)
}

func (n *ntfyService) TestNotification(ctx context.Context) error {
	data := payload{
		title:    "Simmer - Test",
		message:  "Notification system test",
		tags:     []string{"simmer", "test"},
		priority: "low",
	}
	return n.send(ctx, data)
}

func (n *ntfyService) send(ctx context.Context, data payload) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.endpoint, strings.NewReader(data.message))
	if err != nil {
		return fmt.Errorf("build ntfy request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Content-Type", "text/plain; charset=utf-8")
	if data.title != "" {
		req.Header.Set("Title", data.title)
	}
	if len(data.tags) > 0 {
		req.Header.Set("Tags", strings.Join(data.tags, ","))
	}
	if data.priority != "" && data.priority != "default" {
		req.Header.Set("Priority", data.priority)
	}

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("send ntfy notification: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("ntfy returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

type noopService struct{}

func (noopService) NotifyTimerDone(ctx context.Context, recipeTitle, timerName string) error {
	return nil
}

func (noopService) TestNotification(ctx context.Context) error {
	return nil
}
