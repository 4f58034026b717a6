// Package model defines the per-user monthly summary entity.
package model

import "time"

// Summary accumulates worked and time-off hours for one user in one month.
// The (username, month) pair is unique; repeated imports of distinct files for
// the same month add to the counters, they never overwrite them.
type Summary struct {
	ID        uint      `gorm:"primaryKey;column:id;autoIncrement"                                                        json:"-"`
	Username  string    `gorm:"column:username;type:varchar(255);not null;uniqueIndex:idx_summaries_month_username"       json:"username"`
	Month     string    `gorm:"column:month;type:varchar(32);not null;uniqueIndex:idx_summaries_month_username"           json:"month"`
	Time      float64   `gorm:"column:time"                                                                               json:"time"`
	TimeOff   float64   `gorm:"column:time_off"                                                                           json:"timeOff"`
	CreatedAt time.Time `gorm:"column:created_at;not null"                                                                json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"                                                                json:"updatedAt"`
}

// TableName specifies the table name for GORM.
func (Summary) TableName() string {
	return "summaries"
}
