package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/simmerhq/simmer/internal/common/clock"
	"github.com/simmerhq/simmer/internal/common/uuid"
	"github.com/simmerhq/simmer/internal/notifications"
	"github.com/simmerhq/simmer/internal/repositories/recipes"
	"github.com/simmerhq/simmer/internal/repositories/sessionstate"
	"github.com/simmerhq/simmer/internal/services/cooking"
	"github.com/simmerhq/simmer/internal/storage"
	"github.com/simmerhq/simmer/internal/ticker"
)

func main() {
	// Load .env if present; real env vars win
	_ = godotenv.Load()

	logger := newLogger(getEnv("SIMMER_LOG_LEVEL", "info"))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	clk := clock.New()

	var (
		kv         storage.KeyValue
		recipeRepo recipes.Repository
		err        error
	)

	switch backend := getEnv("SIMMER_STORAGE", "redis"); backend {
	case "redis":
		redisClient := redis.NewClient(&redis.Options{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       0,
		})

		pingCtx, pingCancel := context.WithTimeout(ctx, 5*time.Second)
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			pingCancel()
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		pingCancel()

		kv, err = storage.NewRedis(&storage.RedisConfig{
			RedisClient: redisClient,
		})
		if err != nil {
			log.Fatalf("Failed to create Redis store: %v", err)
		}

		recipeRepo, err = recipes.NewRedis(&recipes.Config{
			RedisClient: redisClient,
			Clock:       clk,
		})
		if err != nil {
			log.Fatalf("Failed to create recipe repository: %v", err)
		}

	case "sqlite":
		kv, err = storage.NewSQLite(getEnv("SIMMER_DB_PATH", "simmer.db"))
		if err != nil {
			log.Fatalf("Failed to open SQLite store: %v", err)
		}

	case "memory":
		kv = storage.NewMemory()

	default:
		log.Fatalf("Unknown SIMMER_STORAGE value %q (want redis, sqlite, or memory)", backend)
	}

	stateRepo, err := sessionstate.New(&sessionstate.Config{
		Store:  kv,
		Clock:  clk,
		Logger: logger,
	})
	if err != nil {
		log.Fatalf("Failed to create session state repository: %v", err)
	}

	// Loading the snapshot here runs eviction and drift correction, so
	// timers that kept counting while we were down come back honest.
	cookingSvc, err := cooking.New(ctx, &cooking.Config{
		Store:       stateRepo,
		Clock:       clk,
		IDGenerator: uuid.New(),
		Logger:      logger,
	})
	if err != nil {
		log.Fatalf("Failed to create cooking service: %v", err)
	}

	restored, err := cookingSvc.ListSessions(ctx, &cooking.ListSessionsInput{})
	if err != nil {
		log.Fatalf("Failed to list restored sessions: %v", err)
	}
	logger.Info("restored cooking sessions",
		slog.Int("sessions", len(restored.Sessions)),
		slog.String("activeSessionId", restored.ActiveSessionID))

	notifier := notifications.New(&notifications.Config{
		Endpoint: getEnv("SIMMER_NTFY_TOPIC", ""),
	})

	driver, err := ticker.New(&ticker.Config{
		Service:  cookingSvc,
		Notifier: notifier,
		Recipes:  recipeRepo,
		Logger:   logger,
	})
	if err != nil {
		log.Fatalf("Failed to create tick driver: %v", err)
	}

	done := make(chan struct{})
	go func() {
		driver.Run(ctx)
		close(done)
	}()

	// The restored snapshot may carry running timers.
	driver.Kick()

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	cancel()
	<-done

	logger.Info("simmerd has shut down")
}

// newLogger builds a text slog logger at the requested level
func newLogger(level string) *slog.Logger {
	var l slog.Level
	switch strings.ToLower(level) {
	case "debug":
		l = slog.LevelDebug
	case "warn":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelInfo
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l}))
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
