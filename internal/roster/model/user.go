// Package model defines the user roster entity.
package model

import "time"

// User represents one employee from the payroll roster export.
// Upserted by username on every import pass; never deleted by the importer.
type User struct {
	ID           uint      `gorm:"primaryKey;column:id;autoIncrement"                                     json:"-"`
	Username     string    `gorm:"column:username;type:varchar(255);not null;uniqueIndex:idx_users_username" json:"username"`
	FirstName    string    `gorm:"column:first_name;type:varchar(255)"                                    json:"firstName"`
	LastName     string    `gorm:"column:last_name;type:varchar(255)"                                     json:"lastName"`
	EmployeeType string    `gorm:"column:employee_type;type:varchar(255)"                                 json:"employeeType"`
	Title        string    `gorm:"column:title;type:varchar(255)"                                         json:"title"`
	Supervisor   string    `gorm:"column:supervisor;type:varchar(255)"                                    json:"supervisor"`
	Status       string    `gorm:"column:status;type:varchar(255)"                                        json:"status"`
	Email        string    `gorm:"column:email;type:varchar(255)"                                         json:"email"`
	CreatedAt    time.Time `gorm:"column:created_at;not null"                                             json:"createdAt"`
	UpdatedAt    time.Time `gorm:"column:updated_at;not null"                                             json:"updatedAt"`
}

// TableName specifies the table name for GORM.
func (User) TableName() string {
	return "users"
}
