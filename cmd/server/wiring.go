package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"

	"github.com/KirkDiggler/rpg-narrative/internal/config"
	"github.com/KirkDiggler/rpg-narrative/internal/content"
	"github.com/KirkDiggler/rpg-narrative/internal/errors"
	"github.com/KirkDiggler/rpg-narrative/internal/metrics"
	"github.com/KirkDiggler/rpg-narrative/internal/orchestrators/session"
	"github.com/KirkDiggler/rpg-narrative/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-narrative/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-narrative/internal/redis"
	"github.com/KirkDiggler/rpg-narrative/internal/repositories/progress"
	"github.com/KirkDiggler/rpg-narrative/internal/repositories/story"
	"github.com/KirkDiggler/rpg-narrative/internal/sqlite"
)

// app is the assembled session service and the resources behind it
type app struct {
	service session.Service
	metrics *metrics.Metrics
	closers []func() error
}

func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		_ = a.closers[i]() // nolint:errcheck // best effort on shutdown
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
}

func newApp(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*app, error) {
	a := &app{metrics: metrics.New()}
	clk := clock.New()

	storyRepo, err := a.storyRepository(cfg)
	if err != nil {
		a.Close()
		return nil, err
	}

	progressRepo, err := a.progressRepository(ctx, cfg, clk)
	if err != nil {
		a.Close()
		return nil, err
	}

	svc, err := session.NewOrchestrator(&session.Config{
		StoryRepo:    storyRepo,
		ProgressRepo: progressRepo,
		IDGenerator:  idgen.NewUUID("session"),
		Clock:        clk,
		IdleTTL:      cfg.IdleTTL,
		Metrics:      a.metrics,
		Logger:       logger,
	})
	if err != nil {
		a.Close()
		return nil, errors.Wrap(err, "failed to create session orchestrator")
	}
	a.service = svc

	logger.InfoContext(ctx, "service assembled",
		"content_path", cfg.ContentPath,
		"content_db", cfg.ContentDB,
		"progress_backend", cfg.ProgressBackend)

	return a, nil
}

func (a *app) storyRepository(cfg *config.Config) (story.Repository, error) {
	if cfg.ContentDB != "" {
		db, err := a.openSQLite(cfg.ContentDB)
		if err != nil {
			return nil, err
		}
		return story.NewSQLite(&story.SQLiteConfig{DB: db})
	}

	doc, err := loadContent(cfg.ContentPath)
	if err != nil {
		return nil, err
	}
	return story.NewInMemory(&story.InMemoryConfig{Story: doc})
}

func (a *app) progressRepository(ctx context.Context, cfg *config.Config, clk clock.Clock) (progress.Repository, error) {
	switch cfg.ProgressBackend {
	case config.BackendRedis:
		client, err := redis.NewClient(cfg.RedisAddr, cfg.RedisOptions())
		if err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to create redis client")
		}
		a.closers = append(a.closers, client.Close)
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "redis is unreachable")
		}
		return progress.NewRedis(&progress.RedisConfig{Client: client, Clock: clk})
	case config.BackendSQLite:
		db, err := a.openSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return progress.NewSQLite(&progress.SQLiteConfig{DB: db, Clock: clk})
	default:
		return progress.NewMemory(&progress.MemoryConfig{Clock: clk}), nil
	}
}

// openSQLite opens a migrated database that is closed with the app
func (a *app) openSQLite(path string) (*sql.DB, error) {
	db, err := sqlite.Open(path)
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, db.Close)
	return db, nil
}

func loadContent(path string) (*content.Story, error) {
	if path == "" {
		return content.Default()
	}
	return content.Load(path)
}
