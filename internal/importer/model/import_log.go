// Package model defines the import audit log entity.
package model

import "time"

// ImportLog records one folder-import run. Append-only; the newest row is what
// the dashboard shows as "data as of".
type ImportLog struct {
	ID         uint      `gorm:"primaryKey;column:id;autoIncrement" json:"-"`
	FolderName string    `gorm:"column:folder_name;type:varchar(255);not null" json:"folderName"`
	StartTime  time.Time `gorm:"column:start_time;not null"         json:"startTime"`
	EndTime    time.Time `gorm:"column:end_time;not null"           json:"endTime"`
}

// TableName specifies the table name for GORM.
func (ImportLog) TableName() string {
	return "import_logs"
}
