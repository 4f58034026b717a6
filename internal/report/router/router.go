// Package router provides report module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/webfirst/hoursboard/internal/report/handler"
	"github.com/webfirst/hoursboard/internal/report/repository"
	"github.com/webfirst/hoursboard/internal/report/service"
)

// RegisterRoutes registers report module routes.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *zap.SugaredLogger) {
	repo := repository.New(db, logger)
	svc := service.New(repo, logger)
	h := handler.New(svc, logger)

	r.GET("/api/projects", h.GetProjects)
	r.GET("/api/projects/:name", h.GetProject)
	r.GET("/api/users", h.GetUsers)
	r.GET("/api/time-entries", h.GetTimeEntries)
	r.GET("/api/newest-import-log", h.GetNewestImportLog)
}
