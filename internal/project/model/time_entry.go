package model

import "time"

// TimeEntry is one worked-hours row from a project CSV. Entries are always
// inserted, never upserted; duplicates are prevented upstream by the
// processed-file ledger, not by an entry-level key.
type TimeEntry struct {
	ID          uint       `gorm:"primaryKey;column:id;autoIncrement"              json:"-"`
	Username    string     `gorm:"column:username;type:varchar(255);index:idx_time_entries_username" json:"username"`
	ProjectName string     `gorm:"column:project_name;type:varchar(255);index:idx_time_entries_project_name" json:"projectName"`
	Date        *time.Time `gorm:"column:date;index:idx_time_entries_date"         json:"date"`
	Hours       float64    `gorm:"column:hours"                                    json:"hours"`
	Description string     `gorm:"column:description;type:text"                    json:"description"`
	CreatedAt   time.Time  `gorm:"column:created_at;not null"                      json:"createdAt"`
	UpdatedAt   time.Time  `gorm:"column:updated_at;not null"                      json:"updatedAt"`
}

// TableName specifies the table name for GORM.
func (TimeEntry) TableName() string {
	return "time_entries"
}

// ArchiveTimeEntry mirrors TimeEntry and receives entries older than the
// retention window. Archival is a relocation: once copied here, the original
// row is deleted from time_entries.
type ArchiveTimeEntry struct {
	ID          uint       `gorm:"primaryKey;column:id;autoIncrement"   json:"-"`
	Username    string     `gorm:"column:username;type:varchar(255)"    json:"username"`
	ProjectName string     `gorm:"column:project_name;type:varchar(255)" json:"projectName"`
	Date        *time.Time `gorm:"column:date"                          json:"date"`
	Hours       float64    `gorm:"column:hours"                         json:"hours"`
	Description string     `gorm:"column:description;type:text"         json:"description"`
	CreatedAt   time.Time  `gorm:"column:created_at"                    json:"createdAt"`
	UpdatedAt   time.Time  `gorm:"column:updated_at"                    json:"updatedAt"`
}

// TableName specifies the table name for GORM.
func (ArchiveTimeEntry) TableName() string {
	return "archive_time_entries"
}
