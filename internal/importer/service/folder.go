// Package service implements the folder importer and the batch orchestrator.
package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/webfirst/hoursboard/internal/config"
	"github.com/webfirst/hoursboard/internal/ledger"
	ledgerRepo "github.com/webfirst/hoursboard/internal/ledger/repository"
	projectMapper "github.com/webfirst/hoursboard/internal/project/mapper"
	projectRepo "github.com/webfirst/hoursboard/internal/project/repository"
	rosterMapper "github.com/webfirst/hoursboard/internal/roster/mapper"
	rosterRepo "github.com/webfirst/hoursboard/internal/roster/repository"
	summaryMapper "github.com/webfirst/hoursboard/internal/summary/mapper"
	summaryRepo "github.com/webfirst/hoursboard/internal/summary/repository"
)

// FolderImporter imports one dated drop folder: the roster file first, then
// every other CSV gated by the content-digest ledger.
type FolderImporter struct {
	cfg       config.ImporterConfig
	users     rosterRepo.Repository
	projects  projectRepo.Repository
	summaries summaryRepo.Repository
	ledger    ledgerRepo.Repository
	logger    *zap.SugaredLogger
}

// NewFolderImporter creates a new folder importer instance.
func NewFolderImporter(
	cfg config.ImporterConfig,
	users rosterRepo.Repository,
	projects projectRepo.Repository,
	summaries summaryRepo.Repository,
	ledgerRepository ledgerRepo.Repository,
	logger *zap.SugaredLogger,
) *FolderImporter {
	return &FolderImporter{
		cfg:       cfg,
		users:     users,
		projects:  projects,
		summaries: summaries,
		ledger:    ledgerRepository,
		logger:    logger,
	}
}

// Import processes one dated subfolder. Per-file failures are collected and
// joined; a failing file never stops its siblings. The returned error is the
// join of everything that went wrong in this folder.
func (f *FolderImporter) Import(ctx context.Context, folderName, folderPath string) error {
	var (
		mu   sync.Mutex
		errs []error
	)
	collect := func(err error) {
		mu.Lock()
		defer mu.Unlock()
		errs = append(errs, err)
	}

	// The roster file is applied on every pass and is deliberately exempt from
	// the digest ledger: the upsert is idempotent and re-applying it refreshes
	// the roster even when nothing else in the folder changed.
	if err := f.importRoster(ctx, folderPath); err != nil {
		collect(err)
	}

	files, err := os.ReadDir(folderPath)
	if err != nil {
		collect(fmt.Errorf("read folder %s: %w", folderPath, err))
		return errors.Join(errs...)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(f.cfg.Parallelism)

	for _, entry := range files {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".csv") {
			continue
		}
		if entry.Name() == f.cfg.EmployeesFile {
			continue
		}

		name := entry.Name()
		path := filepath.Join(folderPath, name)
		g.Go(func() error {
			if err := f.importFile(gctx, folderName, name, path); err != nil {
				f.logger.Errorw("file import failed", "folder", folderName, "file", name, "error", err)
				collect(fmt.Errorf("import %s: %w", name, err))
			}
			// Error already collected: returning nil keeps siblings running.
			return nil
		})
	}

	_ = g.Wait()
	return errors.Join(errs...)
}

// importRoster applies the employees file when present.
func (f *FolderImporter) importRoster(ctx context.Context, folderPath string) error {
	path := filepath.Join(folderPath, f.cfg.EmployeesFile)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		f.logger.Infow("roster file absent, skipping", "path", path)
		return nil
	}

	f.logger.Infow("importing users", "path", path)

	users, err := rosterMapper.File(path)
	if err != nil {
		return fmt.Errorf("map roster: %w", err)
	}
	if err := f.users.BulkUpsert(ctx, users); err != nil {
		return fmt.Errorf("upsert roster: %w", err)
	}
	return nil
}

// importFile digests, dedups, dispatches and finally marks one CSV file.
func (f *FolderImporter) importFile(ctx context.Context, folderName, fileName, path string) error {
	digest, err := ledger.ComputeFileDigest(path)
	if err != nil {
		return err
	}

	processed, err := f.ledger.IsProcessed(ctx, digest)
	if err != nil {
		return err
	}
	if processed {
		f.logger.Infow("file already processed, skipping", "file", path)
		return nil
	}

	if fileName == f.cfg.SummaryFile {
		err = f.importSummary(ctx, folderName, path)
	} else {
		err = f.importProject(ctx, fileName, path)
	}
	if err != nil {
		// Not marked processed: the next pass retries this file.
		return err
	}

	if _, err := f.ledger.MarkProcessed(ctx, digest); err != nil {
		return err
	}
	return nil
}

func (f *FolderImporter) importSummary(ctx context.Context, folderName, path string) error {
	f.logger.Infow("importing summary data", "path", path)

	rows, err := summaryMapper.File(path, folderName)
	if err != nil {
		return fmt.Errorf("map summary: %w", err)
	}
	if err := f.summaries.IncrementAll(ctx, rows); err != nil {
		return fmt.Errorf("increment summaries: %w", err)
	}
	return nil
}

func (f *FolderImporter) importProject(ctx context.Context, fileName, path string) error {
	projectName := strings.SplitN(fileName, ".", 2)[0]
	f.logger.Infow("importing project data", "path", path, "project", projectName)

	patch, entries, err := projectMapper.File(path, projectName)
	if err != nil {
		return fmt.Errorf("map project: %w", err)
	}
	if len(entries) == 0 && patch.Empty() {
		f.logger.Infow("project file has no rows", "path", path)
		return nil
	}

	if err := f.projects.UpsertProject(ctx, projectName, patch); err != nil {
		return fmt.Errorf("upsert project: %w", err)
	}
	if err := f.projects.InsertTimeEntries(ctx, entries); err != nil {
		return fmt.Errorf("insert time entries: %w", err)
	}
	return nil
}
