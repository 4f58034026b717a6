package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/webfirst/hoursboard/internal/config"
	"github.com/webfirst/hoursboard/internal/importer/model"
	"github.com/webfirst/hoursboard/internal/importer/repository"
)

// Orchestrator runs one full import pass: schema/index provisioning, then one
// folder import per immediate subdirectory of the drop root, each bracketed by
// an import-log row.
type Orchestrator struct {
	cfg    config.ImporterConfig
	folder *FolderImporter
	runs   repository.Repository
	logger *zap.SugaredLogger
}

// NewOrchestrator creates a new batch import orchestrator instance.
func NewOrchestrator(
	cfg config.ImporterConfig,
	folder *FolderImporter,
	runs repository.Repository,
	logger *zap.SugaredLogger,
) *Orchestrator {
	return &Orchestrator{
		cfg:    cfg,
		folder: folder,
		runs:   runs,
		logger: logger,
	}
}

// Run executes one import pass over the whole drop root. One folder failing is
// logged and recorded but never stops the others; only infrastructure errors
// (schema provisioning, unreadable drop root) are returned.
func (o *Orchestrator) Run(ctx context.Context) error {
	o.logger.Infow("starting import pass", "drop_root", o.cfg.DropRoot)

	if err := o.runs.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}

	entries, err := os.ReadDir(o.cfg.DropRoot)
	if err != nil {
		return fmt.Errorf("read drop root %s: %w", o.cfg.DropRoot, err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.cfg.Parallelism)

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		folderName := entry.Name()
		folderPath := filepath.Join(o.cfg.DropRoot, folderName)
		g.Go(func() error {
			o.importFolder(gctx, folderName, folderPath)
			return nil
		})
	}

	_ = g.Wait()
	o.logger.Infow("import pass completed", "drop_root", o.cfg.DropRoot)
	return nil
}

// importFolder imports one folder and appends its audit row. The log row is
// written even when the folder produced errors so the run is still auditable.
func (o *Orchestrator) importFolder(ctx context.Context, folderName, folderPath string) {
	start := time.Now()
	if err := o.folder.Import(ctx, folderName, folderPath); err != nil {
		o.logger.Errorw("folder import finished with errors", "folder", folderName, "error", err)
	}
	end := time.Now()

	err := o.runs.AppendLog(ctx, &model.ImportLog{
		FolderName: folderName,
		StartTime:  start,
		EndTime:    end,
	})
	if err != nil {
		o.logger.Errorw("failed to record import log", "folder", folderName, "error", err)
	}
}
