// Package repository provides data access for the user roster.
package repository

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/webfirst/hoursboard/internal/roster/model"
)

// Repository defines the interface for roster data access operations.
type Repository interface {
	// BulkUpsert writes all users in one bulk operation, keyed by username.
	// Every column, including createdAt/updatedAt, is overwritten on conflict;
	// the roster export is authoritative for these fields.
	BulkUpsert(ctx context.Context, users []model.User) error
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new roster repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

// BulkUpsert writes all users in one bulk operation, keyed by username.
func (r *repository) BulkUpsert(ctx context.Context, users []model.User) error {
	if len(users) == 0 {
		return nil
	}

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "username"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"first_name", "last_name", "employee_type", "title",
				"supervisor", "status", "email", "created_at", "updated_at",
			}),
		}).
		Create(&users).Error

	if err != nil {
		r.logger.Errorw("BulkUpsert database error", "user_count", len(users), "error", err)
		return err
	}

	r.logger.Infow("users imported", "user_count", len(users))
	return nil
}
