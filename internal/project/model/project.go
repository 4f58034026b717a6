// Package model defines project and time-entry entities.
package model

import "time"

// PeriodOfPerformance is the contractual start/end date range of a project.
// Either bound may be null when the source CSV segment does not parse.
type PeriodOfPerformance struct {
	StartDate *time.Time `gorm:"column:pop_start_date" json:"startDate"`
	EndDate   *time.Time `gorm:"column:pop_end_date"   json:"endDate"`
}

// Project represents one contract/project, upserted by name.
// Fields are sparse-merged: only columns present in the source CSV overwrite,
// and CreatedAt is set on first insert only.
type Project struct {
	ID                  uint                `gorm:"primaryKey;column:id;autoIncrement"                                   json:"-"`
	Name                string              `gorm:"column:name;type:varchar(255);not null;uniqueIndex:idx_projects_name" json:"name"`
	Status              string              `gorm:"column:status;type:varchar(255)"                                      json:"status"`
	ContractType        string              `gorm:"column:contract_type;type:varchar(255)"                               json:"contractType"`
	BudgetHours         int                 `gorm:"column:budget_hours"                                                  json:"budgetHours"`
	Description         string              `gorm:"column:description;type:text"                                         json:"description"`
	PM                  string              `gorm:"column:pm;type:varchar(255)"                                          json:"pm"`
	PeriodOfPerformance PeriodOfPerformance `gorm:"embedded"                                                             json:"periodOfPerformance"`
	CreatedAt           time.Time           `gorm:"column:created_at;not null"                                           json:"createdAt"`
	UpdatedAt           time.Time           `gorm:"column:updated_at;not null"                                           json:"updatedAt"`
}

// TableName specifies the table name for GORM.
func (Project) TableName() string {
	return "projects"
}
