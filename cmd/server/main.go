// Package main provides the entry point for the hoursboard server: the CSV
// import pipeline plus the HTTP read API.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/webfirst/hoursboard/internal/config"
	"github.com/webfirst/hoursboard/internal/database/database"
	"github.com/webfirst/hoursboard/internal/database/migrate"
	"github.com/webfirst/hoursboard/internal/health"
	importerRepo "github.com/webfirst/hoursboard/internal/importer/repository"
	importerService "github.com/webfirst/hoursboard/internal/importer/service"
	ledgerRepo "github.com/webfirst/hoursboard/internal/ledger/repository"
	"github.com/webfirst/hoursboard/internal/middleware"
	projectRepo "github.com/webfirst/hoursboard/internal/project/repository"
	reportRouter "github.com/webfirst/hoursboard/internal/report/router"
	rosterRepo "github.com/webfirst/hoursboard/internal/roster/repository"
	summaryRepo "github.com/webfirst/hoursboard/internal/summary/repository"
	"github.com/webfirst/hoursboard/internal/watcher"
	"github.com/webfirst/hoursboard/pkg/logger"
)

func main() {
	cfg := config.LoadFromEnv()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
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

	if err := migrate.Migrate(db); err != nil {
		// AutoMigrate in the import pass covers a missing migrations dir,
		// so a failed SQL migration is not fatal in development setups.
		zl.Warnw("migrations not applied", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	orch := buildOrchestrator(cfg, db, zl)

	// One full pass at startup so files dropped while the server was down
	// are picked up without waiting for a filesystem event.
	if err := orch.Run(ctx); err != nil {
		zl.Errorw("initial import pass failed", "error", err)
	}

	w := watcher.New(cfg.Importer.DropRoot, cfg.Importer.QuietPeriod, func() {
		if err := orch.Run(ctx); err != nil {
			zl.Errorw("import pass failed", "error", err)
		}
	}, zl)
	if err := w.Start(); err != nil {
		zl.Fatalw("failed to start drop folder watcher", "error", err, "drop_root", cfg.Importer.DropRoot)
	}
	defer func() { _ = w.Close() }()

	gin.SetMode(cfg.GinMode)
	r := gin.New()
	r.Use(middleware.Recovery(zl))
	r.Use(middleware.Logger(zl, "/health"))

	healthHandler := health.New(db, zl)
	r.GET("/health", healthHandler.Check)
	reportRouter.RegisterRoutes(r, db, zl)

	srv := &http.Server{
		Addr:         cfg.Server.GetAddress(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		zl.Infow("starting server", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatalw("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	zl.Infow("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zl.Errorw("server shutdown failed", "error", err)
	}
}

// buildOrchestrator wires the repositories and services of the import pipeline.
func buildOrchestrator(cfg config.Config, db *gorm.DB, zl *zap.SugaredLogger) *importerService.Orchestrator {
	folder := importerService.NewFolderImporter(
		cfg.Importer,
		rosterRepo.New(db, zl),
		projectRepo.New(db, zl),
		summaryRepo.New(db, zl),
		ledgerRepo.New(db, zl),
		zl,
	)
	return importerService.NewOrchestrator(cfg.Importer, folder, importerRepo.New(db, zl), zl)
}
