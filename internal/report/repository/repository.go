// Package repository provides read-only data access for the report API.
package repository

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	importerModel "github.com/webfirst/hoursboard/internal/importer/model"
	projectModel "github.com/webfirst/hoursboard/internal/project/model"
	reportModel "github.com/webfirst/hoursboard/internal/report/model"
	rosterModel "github.com/webfirst/hoursboard/internal/roster/model"
)

// Repository defines the interface for report data access operations.
type Repository interface {
	// ListProjects returns all projects ordered by name.
	ListProjects(ctx context.Context) ([]projectModel.Project, error)

	// GetProjectByName returns one project.
	GetProjectByName(ctx context.Context, name string) (*projectModel.Project, error)

	// ListUsers returns the roster ordered by username.
	ListUsers(ctx context.Context) ([]rosterModel.User, error)

	// ListTimeEntriesByProject returns a project's live time entries with the
	// NaN-safe hour total.
	ListTimeEntriesByProject(ctx context.Context, projectName string) ([]projectModel.TimeEntry, float64, error)

	// NewestImportLog returns the most recently finished import run.
	NewestImportLog(ctx context.Context) (*importerModel.ImportLog, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new report repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

// ListProjects returns all projects ordered by name.
func (r *repository) ListProjects(ctx context.Context) ([]projectModel.Project, error) {
	var projects []projectModel.Project
	err := r.db.WithContext(ctx).Order("name").Find(&projects).Error
	if err != nil {
		r.logger.Errorw("ListProjects database error", "error", err)
		return nil, err
	}
	if projects == nil {
		projects = []projectModel.Project{}
	}
	return projects, nil
}

// GetProjectByName returns one project.
func (r *repository) GetProjectByName(ctx context.Context, name string) (*projectModel.Project, error) {
	var project projectModel.Project
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&project).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, reportModel.ErrProjectNotFound
		}
		r.logger.Errorw("GetProjectByName database error", "project", name, "error", err)
		return nil, err
	}
	return &project, nil
}

// ListUsers returns the roster ordered by username.
func (r *repository) ListUsers(ctx context.Context) ([]rosterModel.User, error) {
	var users []rosterModel.User
	err := r.db.WithContext(ctx).Order("username").Find(&users).Error
	if err != nil {
		r.logger.Errorw("ListUsers database error", "error", err)
		return nil, err
	}
	if users == nil {
		users = []rosterModel.User{}
	}
	return users, nil
}

// ListTimeEntriesByProject returns a project's live time entries and hour total.
func (r *repository) ListTimeEntriesByProject(
	ctx context.Context,
	projectName string,
) ([]projectModel.TimeEntry, float64, error) {
	var entries []projectModel.TimeEntry
	err := r.db.WithContext(ctx).
		Where("project_name = ?", projectName).
		Order("date").
		Find(&entries).Error
	if err != nil {
		r.logger.Errorw("ListTimeEntriesByProject database error", "project", projectName, "error", err)
		return nil, 0, err
	}

	var total float64
	for _, entry := range entries {
		total += entry.Hours
	}
	if entries == nil {
		entries = []projectModel.TimeEntry{}
	}
	return entries, total, nil
}

// NewestImportLog returns the most recently finished import run.
func (r *repository) NewestImportLog(ctx context.Context) (*importerModel.ImportLog, error) {
	var log importerModel.ImportLog
	err := r.db.WithContext(ctx).Order("end_time DESC").First(&log).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, reportModel.ErrNoImportLogs
		}
		r.logger.Errorw("NewestImportLog database error", "error", err)
		return nil, err
	}
	return &log, nil
}
