// Package repository provides data access for the processed-file ledger.
package repository

import (
	"context"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/webfirst/hoursboard/internal/ledger/model"
)

// Repository defines the interface for ledger data access operations.
type Repository interface {
	// IsProcessed reports whether a file digest is already in the ledger.
	IsProcessed(ctx context.Context, digest string) (bool, error)

	// MarkProcessed records a digest in the ledger. Returns true when this call
	// inserted the record and false when the digest was already present; the
	// duplicate case is not an error.
	MarkProcessed(ctx context.Context, digest string) (bool, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new ledger repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

// IsProcessed reports whether a file digest is already in the ledger.
func (r *repository) IsProcessed(ctx context.Context, digest string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.ProcessedFile{}).
		Where("hash = ?", digest).
		Count(&count).Error

	if err != nil {
		r.logger.Errorw("IsProcessed database error", "hash", digest, "error", err)
		return false, err
	}

	return count > 0, nil
}

// MarkProcessed records a digest, treating an existing record as success.
// Insert-if-absent via ON CONFLICT DO NOTHING keeps the mark idempotent under
// concurrent or retried imports of the same file.
func (r *repository) MarkProcessed(ctx context.Context, digest string) (bool, error) {
	record := model.ProcessedFile{
		Hash:      digest,
		CreatedAt: time.Now(),
	}

	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "hash"}},
			DoNothing: true,
		}).
		Create(&record)

	if result.Error != nil {
		r.logger.Errorw("MarkProcessed database error", "hash", digest, "error", result.Error)
		return false, result.Error
	}

	if result.RowsAffected == 0 {
		r.logger.Infow("file already marked as processed", "hash", digest)
		return false, nil
	}

	return true, nil
}
