// Package service provides business logic for the report read API.
package service

import (
	"context"

	"go.uber.org/zap"

	projectModel "github.com/webfirst/hoursboard/internal/project/model"
	"github.com/webfirst/hoursboard/internal/report/model"
	"github.com/webfirst/hoursboard/internal/report/repository"
)

// Service defines the interface for report operations. All operations are
// read-only pass-throughs; the importer owns every write path.
type Service interface {
	// GetProjects returns all projects.
	GetProjects(ctx context.Context) (*model.ProjectsResponse, error)

	// GetProject returns one project by name.
	GetProject(ctx context.Context, name string) (*model.ProjectsResponse, error)

	// GetUsers returns the roster.
	GetUsers(ctx context.Context) (*model.UsersResponse, error)

	// GetTimeEntries returns a project's entries and hour total.
	GetTimeEntries(ctx context.Context, projectName string) (*model.TimeEntriesResponse, error)

	// GetNewestImportLog returns the latest import run.
	GetNewestImportLog(ctx context.Context) (*model.NewestImportLogResponse, error)
}

type service struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
}

// New creates a new report service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, logger: logger}
}

// GetProjects returns all projects.
func (s *service) GetProjects(ctx context.Context) (*model.ProjectsResponse, error) {
	projects, err := s.repo.ListProjects(ctx)
	if err != nil {
		return nil, err
	}
	return &model.ProjectsResponse{Projects: projects}, nil
}

// GetProject returns one project by name.
func (s *service) GetProject(ctx context.Context, name string) (*model.ProjectsResponse, error) {
	if name == "" {
		return nil, model.ErrInvalidProjectName
	}

	project, err := s.repo.GetProjectByName(ctx, name)
	if err != nil {
		return nil, err
	}
	return &model.ProjectsResponse{Projects: []projectModel.Project{*project}}, nil
}

// GetUsers returns the roster.
func (s *service) GetUsers(ctx context.Context) (*model.UsersResponse, error) {
	users, err := s.repo.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	return &model.UsersResponse{Users: users}, nil
}

// GetTimeEntries returns a project's entries and hour total.
func (s *service) GetTimeEntries(ctx context.Context, projectName string) (*model.TimeEntriesResponse, error) {
	if projectName == "" {
		return nil, model.ErrInvalidProjectName
	}

	entries, total, err := s.repo.ListTimeEntriesByProject(ctx, projectName)
	if err != nil {
		return nil, err
	}
	return &model.TimeEntriesResponse{
		ProjectName: projectName,
		TotalHours:  total,
		TimeEntries: entries,
	}, nil
}

// GetNewestImportLog returns the latest import run.
func (s *service) GetNewestImportLog(ctx context.Context) (*model.NewestImportLogResponse, error) {
	log, err := s.repo.NewestImportLog(ctx)
	if err != nil {
		return nil, err
	}
	return &model.NewestImportLogResponse{ImportLog: *log}, nil
}
