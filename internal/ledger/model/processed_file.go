// Package model defines the processed-file ledger entity.
package model

import "time"

// ProcessedFile records the content digest of an already-imported CSV file.
// Existence of a hash means the file contents must never be parsed again.
type ProcessedFile struct {
	ID        uint      `gorm:"primaryKey;column:id;autoIncrement"                          json:"-"`
	Hash      string    `gorm:"column:hash;type:varchar(64);not null;uniqueIndex:idx_processed_files_hash" json:"hash"`
	CreatedAt time.Time `gorm:"column:created_at;not null"                                  json:"-"`
}

// TableName specifies the table name for GORM.
func (ProcessedFile) TableName() string {
	return "processed_files"
}
