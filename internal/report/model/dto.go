// Package model defines DTOs and sentinel errors for the report read API.
package model

import (
	importerModel "github.com/webfirst/hoursboard/internal/importer/model"
	projectModel "github.com/webfirst/hoursboard/internal/project/model"
	rosterModel "github.com/webfirst/hoursboard/internal/roster/model"
)

// ProjectsResponse lists all known projects.
type ProjectsResponse struct {
	Projects []projectModel.Project `json:"projects"`
}

// UsersResponse lists the current roster.
type UsersResponse struct {
	Users []rosterModel.User `json:"users"`
}

// TimeEntriesResponse carries a project's entries and their hour total.
type TimeEntriesResponse struct {
	ProjectName string                   `json:"projectName"`
	TotalHours  float64                  `json:"totalHours"`
	TimeEntries []projectModel.TimeEntry `json:"timeEntries"`
}

// NewestImportLogResponse is the most recent import run, shown as "data as of".
type NewestImportLogResponse struct {
	ImportLog importerModel.ImportLog `json:"importLog"`
}
