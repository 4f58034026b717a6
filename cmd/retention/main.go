// Package main provides the retention sweeper entry point. It archives time
// entries inside the cleanup window and exits; run it from cron or a
// scheduled job.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/webfirst/hoursboard/internal/config"
	"github.com/webfirst/hoursboard/internal/database/database"
	"github.com/webfirst/hoursboard/internal/retention"
	"github.com/webfirst/hoursboard/pkg/logger"
)

func main() {
	cfg := config.LoadFromEnv()
	if err := cfg.Retention.Validate(); err != nil {
		log.Fatalf("invalid retention configuration: %v", err)
	}

	zl, err := logger.NewWithConfig(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	db, err := database.New()
	if err != nil {
		zl.Fatalw("failed to connect to database", "error", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			zl.Errorw("failed to close database", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sweeper := retention.NewSweeper(cfg.Retention, db, zl)
	if err := sweeper.Sweep(ctx); err != nil {
		zl.Fatalw("retention sweep failed", "error", err)
	}
}
