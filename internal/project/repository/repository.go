// Package repository provides data access for projects and time entries.
package repository

import (
	"context"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/webfirst/hoursboard/internal/project/mapper"
	"github.com/webfirst/hoursboard/internal/project/model"
)

// Repository defines the interface for project data access operations.
type Repository interface {
	// UpsertProject upserts one project by name, overwriting only the columns
	// present in the patch. CreatedAt is set on first insert only.
	UpsertProject(ctx context.Context, name string, patch mapper.ProjectPatch) error

	// InsertTimeEntries batch-inserts time entries. Entries are never updated.
	InsertTimeEntries(ctx context.Context, entries []model.TimeEntry) error
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new project repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

// UpsertProject upserts one project by name with sparse column merge.
func (r *repository) UpsertProject(ctx context.Context, name string, patch mapper.ProjectPatch) error {
	now := time.Now()

	row := model.Project{
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	assignments := map[string]interface{}{
		"updated_at": now,
	}

	if patch.Status != nil {
		row.Status = *patch.Status
		assignments["status"] = *patch.Status
	}
	if patch.ContractType != nil {
		row.ContractType = *patch.ContractType
		assignments["contract_type"] = *patch.ContractType
	}
	if patch.BudgetHours != nil {
		row.BudgetHours = *patch.BudgetHours
		assignments["budget_hours"] = *patch.BudgetHours
	}
	if patch.Description != nil {
		row.Description = *patch.Description
		assignments["description"] = *patch.Description
	}
	if patch.PM != nil {
		row.PM = *patch.PM
		assignments["pm"] = *patch.PM
	}
	if patch.PeriodOfPerformance != nil {
		row.PeriodOfPerformance = *patch.PeriodOfPerformance
		assignments["pop_start_date"] = patch.PeriodOfPerformance.StartDate
		assignments["pop_end_date"] = patch.PeriodOfPerformance.EndDate
	}

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.Assignments(assignments),
		}).
		Create(&row).Error

	if err != nil {
		r.logger.Errorw("UpsertProject database error", "project", name, "error", err)
		return err
	}

	r.logger.Infow("project upserted", "project", name)
	return nil
}

// InsertTimeEntries batch-inserts time entries.
func (r *repository) InsertTimeEntries(ctx context.Context, entries []model.TimeEntry) error {
	if len(entries) == 0 {
		return nil
	}

	err := r.db.WithContext(ctx).CreateInBatches(&entries, 500).Error
	if err != nil {
		r.logger.Errorw("InsertTimeEntries database error", "entry_count", len(entries), "error", err)
		return err
	}

	r.logger.Infow("time entries imported", "entry_count", len(entries))
	return nil
}
