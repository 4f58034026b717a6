// Package repository provides data access for import runs.
package repository

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	importerModel "github.com/webfirst/hoursboard/internal/importer/model"
	ledgerModel "github.com/webfirst/hoursboard/internal/ledger/model"
	projectModel "github.com/webfirst/hoursboard/internal/project/model"
	rosterModel "github.com/webfirst/hoursboard/internal/roster/model"
	summaryModel "github.com/webfirst/hoursboard/internal/summary/model"
)

// Repository defines the interface for import bookkeeping operations.
type Repository interface {
	// EnsureSchema creates any missing tables and unique indexes for all
	// import targets. Idempotent; called before every batch run.
	EnsureSchema(ctx context.Context) error

	// AppendLog records one folder-import run.
	AppendLog(ctx context.Context, log *importerModel.ImportLog) error
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new importer repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

// EnsureSchema creates any missing tables and unique indexes.
func (r *repository) EnsureSchema(ctx context.Context) error {
	err := r.db.WithContext(ctx).AutoMigrate(
		&rosterModel.User{},
		&projectModel.Project{},
		&projectModel.TimeEntry{},
		&projectModel.ArchiveTimeEntry{},
		&summaryModel.Summary{},
		&ledgerModel.ProcessedFile{},
		&importerModel.ImportLog{},
	)
	if err != nil {
		r.logger.Errorw("EnsureSchema database error", "error", err)
		return err
	}
	return nil
}

// AppendLog records one folder-import run.
func (r *repository) AppendLog(ctx context.Context, log *importerModel.ImportLog) error {
	if err := r.db.WithContext(ctx).Create(log).Error; err != nil {
		r.logger.Errorw("AppendLog database error", "folder", log.FolderName, "error", err)
		return err
	}
	return nil
}
