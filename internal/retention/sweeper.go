// Package retention archives time entries that have aged out of the live window.
package retention

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/webfirst/hoursboard/internal/config"
	"github.com/webfirst/hoursboard/internal/project/model"
)

// Sweeper moves time entries whose date falls inside the rolling archival
// window from time_entries to archive_time_entries. The copy fully precedes
// the delete and both use the identical deterministic filter; a crash between
// the two steps can leave a row in both tables (at-least-once archives), which
// is documented rather than masked.
type Sweeper struct {
	cfg    config.RetentionConfig
	db     *gorm.DB
	logger *zap.SugaredLogger
	// now is injectable for boundary tests.
	now func() time.Time
}

// NewSweeper creates a new retention sweeper instance.
func NewSweeper(cfg config.RetentionConfig, db *gorm.DB, logger *zap.SugaredLogger) *Sweeper {
	return &Sweeper{
		cfg:    cfg,
		db:     db,
		logger: logger,
		now:    time.Now,
	}
}

// SetNow overrides the sweeper's clock. Useful for tests and for replaying
// a sweep as of a past date.
func (s *Sweeper) SetNow(now func() time.Time) {
	s.now = now
}

// Bounds returns the half-open archival window [lower, upper) for a given
// moment: lower is MonthsBack months before that day at midnight, upper is the
// most recent CutoffWeekday on or before that day at midnight. When the target
// month is too short for the day of month, lower clamps to that month's last
// day instead of normalizing into the next month.
func Bounds(now time.Time, cfg config.RetentionConfig) (lower, upper time.Time) {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	lower = day.AddDate(0, -cfg.MonthsBack, 0)
	if lower.Day() != day.Day() {
		lower = lower.AddDate(0, 0, -lower.Day())
	}

	daysSince := (int(day.Weekday()) - int(cfg.CutoffWeekday) + 7) % 7
	upper = day.AddDate(0, 0, -daysSince)

	return lower, upper
}

// Sweep copies entries inside the window into the archive, then deletes the
// same selection from the live table. An empty selection issues no writes.
func (s *Sweeper) Sweep(ctx context.Context) error {
	lower, upper := Bounds(s.now(), s.cfg)
	s.logger.Infow("starting retention sweep", "lower", lower, "upper", upper)

	var entries []model.TimeEntry
	err := s.db.WithContext(ctx).
		Where("date >= ? AND date < ?", lower, upper).
		Find(&entries).Error
	if err != nil {
		return fmt.Errorf("select archivable entries: %w", err)
	}

	if len(entries) == 0 {
		s.logger.Infow("no entries to archive")
		return nil
	}

	archived := make([]model.ArchiveTimeEntry, 0, len(entries))
	for _, entry := range entries {
		archived = append(archived, model.ArchiveTimeEntry{
			Username:    entry.Username,
			ProjectName: entry.ProjectName,
			Date:        entry.Date,
			Hours:       entry.Hours,
			Description: entry.Description,
			CreatedAt:   entry.CreatedAt,
			UpdatedAt:   entry.UpdatedAt,
		})
	}

	if err := s.db.WithContext(ctx).CreateInBatches(&archived, 500).Error; err != nil {
		return fmt.Errorf("copy entries to archive: %w", err)
	}

	// Same filter, not an ID list: the selection is deterministic and the copy
	// above completed, so re-applying the filter deletes exactly what was copied.
	err = s.db.WithContext(ctx).
		Where("date >= ? AND date < ?", lower, upper).
		Delete(&model.TimeEntry{}).Error
	if err != nil {
		return fmt.Errorf("delete archived entries: %w", err)
	}

	s.logger.Infow("archived old time entries", "entry_count", len(archived), "upper", upper)
	return nil
}
