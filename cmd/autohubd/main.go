package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/autohub/automation-hub/internal/config"
	"github.com/autohub/automation-hub/internal/export"
	"github.com/autohub/automation-hub/internal/extraction"
	"github.com/autohub/automation-hub/internal/hub"
	"github.com/autohub/automation-hub/internal/repository"
	"github.com/autohub/automation-hub/internal/scheduler"
)

func main() {
	// .env is optional; real deployments use environment variables.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLevel(cfg.LogLevel),
	}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, db, err := repository.Open(ctx, repository.Config{Path: cfg.DBPath}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err, "db_path", cfg.DBPath)
		os.Exit(1)
	}
	defer repository.Close(entc, db, logger)

	if err := repository.HealthCheck(ctx, db, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	templatesRepo := repository.NewTemplateRepository(entc, logger)
	jobsRepo := repository.NewJobRepository(entc, logger)

	launcher := scheduler.NewShellLauncher(logger)
	sched := scheduler.New(jobsRepo, launcher, logger)

	engine := extraction.NewEngine(logger)
	exporter := export.NewService(logger)

	svc := hub.NewService(templatesRepo, jobsRepo, engine, exporter, sched,
		int(cfg.MisfireGrace.Seconds()), logger)

	// Rebuild triggers from the durable job records before the clock
	// starts ticking, so missed fires are handled exactly once.
	if err := svc.ReconcileOnStartup(ctx); err != nil {
		logger.Error("startup reconciliation failed", "error", err)
		os.Exit(1)
	}
	svc.StartScheduler()
	logger.Info("automation hub running", "db_path", cfg.DBPath)

	<-ctx.Done()
	logger.Info("shutting down")
	svc.StopScheduler()
}

func parseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
