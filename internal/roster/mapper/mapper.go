// Package mapper turns employee roster CSV rows into user records.
package mapper

import (
	"time"

	"github.com/webfirst/hoursboard/internal/roster/model"
	"github.com/webfirst/hoursboard/pkg/csvx"
)

// File reads the employees CSV at path and returns one user per row, in file
// order. Expected columns: User, First name, Last name, Employee Type, Title,
// Supervisor, Status, Email.
func File(path string) ([]model.User, error) {
	now := time.Now()

	var users []model.User
	err := csvx.ForEach(path, func(row csvx.Row) error {
		users = append(users, model.User{
			Username:     row.Get("User"),
			FirstName:    row.Get("First name"),
			LastName:     row.Get("Last name"),
			EmployeeType: row.Get("Employee Type"),
			Title:        row.Get("Title"),
			Supervisor:   row.Get("Supervisor"),
			Status:       row.Get("Status"),
			Email:        row.Get("Email"),
			CreatedAt:    now,
			UpdatedAt:    now,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return users, nil
}
