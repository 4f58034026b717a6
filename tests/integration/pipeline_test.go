//go:build integration
// +build integration

package integration

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/webfirst/hoursboard/internal/config"
	importerRepo "github.com/webfirst/hoursboard/internal/importer/repository"
	importerService "github.com/webfirst/hoursboard/internal/importer/service"
	ledgerRepo "github.com/webfirst/hoursboard/internal/ledger/repository"
	projectModel "github.com/webfirst/hoursboard/internal/project/model"
	projectRepo "github.com/webfirst/hoursboard/internal/project/repository"
	reportModel "github.com/webfirst/hoursboard/internal/report/model"
	reportRouter "github.com/webfirst/hoursboard/internal/report/router"
	"github.com/webfirst/hoursboard/internal/retention"
	rosterRepo "github.com/webfirst/hoursboard/internal/roster/repository"
	summaryModel "github.com/webfirst/hoursboard/internal/summary/model"
	summaryRepo "github.com/webfirst/hoursboard/internal/summary/repository"
)

const employeesCSV = `User,First name,Last name,Employee Type,Title,Supervisor,Status,Email
adoe,Alice,Doe,Full-Time,Engineer,bsmith,Active,adoe@example.com
bsmith,Bob,Smith,Full-Time,Manager,cjones,Active,bsmith@example.com
`

const projectCSV = `User,Period Of Performance,Status,Contract Type,Budget Hours,Description,PM,Date,Time (decimal)
adoe,01-Jan-2024 to 31-Dec-2024,Active,T&M,1200,implementation,bsmith,03/12/2024,7.5
bsmith,,,,,review,,03/13/2024,6
`

const summaryCSV = `User,Time (decimal),Time Off (decimal)
adoe,100,8
bsmith,52.5,0
`

func setupPipeline(t *testing.T) (*gorm.DB, *importerService.Orchestrator, config.ImporterConfig) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	cfg := config.ImporterConfig{
		DropRoot:      t.TempDir(),
		QuietPeriod:   40 * time.Second,
		Parallelism:   4,
		EmployeesFile: "WEBFIRST_EMPLOYEES.csv",
		SummaryFile:   "WEBFIRST_SUMMARY.csv",
	}

	zl := zap.NewNop().Sugar()
	folder := importerService.NewFolderImporter(
		cfg,
		rosterRepo.New(db, zl),
		projectRepo.New(db, zl),
		summaryRepo.New(db, zl),
		ledgerRepo.New(db, zl),
		zl,
	)
	orch := importerService.NewOrchestrator(cfg, folder, importerRepo.New(db, zl), zl)
	return db, orch, cfg
}

func writeDropFolder(t *testing.T, root, folderName string) {
	t.Helper()
	dir := filepath.Join(root, folderName)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "WEBFIRST_EMPLOYEES.csv"), []byte(employeesCSV), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ProjectX.Hours.csv"), []byte(projectCSV), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "WEBFIRST_SUMMARY.csv"), []byte(summaryCSV), 0o644))
}

func TestPipeline_ImportThenServe(t *testing.T) {
	ctx := context.Background()
	db, orch, cfg := setupPipeline(t)
	writeDropFolder(t, cfg.DropRoot, "2024_03_Timesheets")

	require.NoError(t, orch.Run(ctx))

	gin.SetMode(gin.TestMode)
	r := gin.New()
	reportRouter.RegisterRoutes(r, db, zap.NewNop().Sugar())

	t.Run("projects", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/projects", nil))

		require.Equal(t, http.StatusOK, w.Code)
		var resp reportModel.ProjectsResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Projects, 1)
		assert.Equal(t, "ProjectX", resp.Projects[0].Name)
		assert.Equal(t, 1200, resp.Projects[0].BudgetHours)
	})

	t.Run("users", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/users", nil))

		require.Equal(t, http.StatusOK, w.Code)
		var resp reportModel.UsersResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Len(t, resp.Users, 2)
	})

	t.Run("time entries with total", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/time-entries?projectName=ProjectX", nil))

		require.Equal(t, http.StatusOK, w.Code)
		var resp reportModel.TimeEntriesResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Len(t, resp.TimeEntries, 2)
		assert.InDelta(t, 13.5, resp.TotalHours, 1e-9)
	})

	t.Run("newest import log", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/newest-import-log", nil))

		require.Equal(t, http.StatusOK, w.Code)
		var resp reportModel.NewestImportLogResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "2024_03_Timesheets", resp.ImportLog.FolderName)
	})
}

func TestPipeline_RerunIsIdempotent(t *testing.T) {
	ctx := context.Background()
	db, orch, cfg := setupPipeline(t)
	writeDropFolder(t, cfg.DropRoot, "2024_03_Timesheets")

	require.NoError(t, orch.Run(ctx))
	require.NoError(t, orch.Run(ctx))

	var entryCount int64
	require.NoError(t, db.Model(&projectModel.TimeEntry{}).Count(&entryCount).Error)
	assert.Equal(t, int64(2), entryCount)

	var summary summaryModel.Summary
	require.NoError(t, db.Where("username = ? AND month = ?", "adoe", "2024_03").First(&summary).Error)
	assert.InDelta(t, 100, summary.Time, 1e-9)
	assert.InDelta(t, 8, summary.TimeOff, 1e-9)
}

func TestPipeline_RetentionSweepAfterImport(t *testing.T) {
	ctx := context.Background()
	db, orch, cfg := setupPipeline(t)
	writeDropFolder(t, cfg.DropRoot, "2024_03_Timesheets")
	require.NoError(t, orch.Run(ctx))

	retCfg := config.RetentionConfig{MonthsBack: 2, CutoffWeekday: time.Friday}
	sweeper := retention.NewSweeper(retCfg, db, zap.NewNop().Sugar())
	// Entries are dated 2024-03-12/13; pin now so both fall inside the window.
	sweeper.SetNow(func() time.Time {
		return time.Date(2024, 5, 4, 12, 0, 0, 0, time.UTC)
	})

	require.NoError(t, sweeper.Sweep(ctx))

	var live, archived int64
	require.NoError(t, db.Model(&projectModel.TimeEntry{}).Count(&live).Error)
	require.NoError(t, db.Model(&projectModel.ArchiveTimeEntry{}).Count(&archived).Error)
	assert.Equal(t, int64(0), live)
	assert.Equal(t, int64(2), archived)
}
