package model

import "errors"

var (
	// ErrProjectNotFound indicates that the requested project does not exist.
	ErrProjectNotFound = errors.New("project not found")
	// ErrNoImportLogs indicates that no import run has been recorded yet.
	ErrNoImportLogs = errors.New("no import logs recorded")
	// ErrInvalidProjectName indicates a missing or empty project name parameter.
	ErrInvalidProjectName = errors.New("invalid project name")
)
