// Package repository provides data access for monthly summaries.
package repository

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/webfirst/hoursboard/internal/summary/model"
)

// Repository defines the interface for summary data access operations.
type Repository interface {
	// IncrementAll applies every row as an additive upsert on
	// (username, month): first occurrence inserts the row, later occurrences
	// add to the stored counters. Rows are applied in slice order inside one
	// transaction.
	IncrementAll(ctx context.Context, rows []model.Summary) error
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new summary repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

// IncrementAll applies every row as an additive upsert on (username, month).
func (r *repository) IncrementAll(ctx context.Context, rows []model.Summary) error {
	if len(rows) == 0 {
		return nil
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range rows {
			// Per-row statements keep accumulation correct when one file holds
			// several rows for the same (username, month) pair.
			err := tx.Clauses(clause.OnConflict{
				Columns: []clause.Column{{Name: "username"}, {Name: "month"}},
				DoUpdates: clause.Assignments(map[string]interface{}{
					"time":       gorm.Expr("summaries.time + excluded.time"),
					"time_off":   gorm.Expr("summaries.time_off + excluded.time_off"),
					"updated_at": rows[i].UpdatedAt,
				}),
			}).Create(&rows[i]).Error
			if err != nil {
				return err
			}
		}
		return nil
	})

	if err != nil {
		r.logger.Errorw("IncrementAll database error", "row_count", len(rows), "error", err)
		return err
	}

	r.logger.Infow("summary rows imported", "row_count", len(rows), "month", rows[0].Month)
	return nil
}
