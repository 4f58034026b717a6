// Package handler provides HTTP handlers for report endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/webfirst/hoursboard/internal/report/model"
	"github.com/webfirst/hoursboard/internal/report/service"
)

// Handler handles HTTP requests for report endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new report handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// GetProjects handles GET /api/projects request.
func (h *Handler) GetProjects(c *gin.Context) {
	resp, err := h.service.GetProjects(c.Request.Context())
	if err != nil {
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetProject handles GET /api/projects/:name request.
func (h *Handler) GetProject(c *gin.Context) {
	name := c.Param("name")

	resp, err := h.service.GetProject(c.Request.Context(), name)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrProjectNotFound):
			notFoundResponse(c, "project not found")
		case errors.Is(err, model.ErrInvalidProjectName):
			errorResponse(c, "INVALID_REQUEST", "project name is required", http.StatusBadRequest)
		default:
			errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetUsers handles GET /api/users request.
func (h *Handler) GetUsers(c *gin.Context) {
	resp, err := h.service.GetUsers(c.Request.Context())
	if err != nil {
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetTimeEntries handles GET /api/time-entries?projectName= request.
func (h *Handler) GetTimeEntries(c *gin.Context) {
	projectName := c.Query("projectName")

	resp, err := h.service.GetTimeEntries(c.Request.Context(), projectName)
	if err != nil {
		if errors.Is(err, model.ErrInvalidProjectName) {
			errorResponse(c, "INVALID_REQUEST", "projectName parameter is required", http.StatusBadRequest)
			return
		}
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetNewestImportLog handles GET /api/newest-import-log request.
// Returns 404 until the first import pass has been recorded.
func (h *Handler) GetNewestImportLog(c *gin.Context) {
	resp, err := h.service.GetNewestImportLog(c.Request.Context())
	if err != nil {
		if errors.Is(err, model.ErrNoImportLogs) {
			notFoundResponse(c, "no import has run yet")
			return
		}
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}
