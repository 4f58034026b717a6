// Package mapper turns project CSV rows into a project patch and time entries.
package mapper

import (
	"strconv"
	"strings"
	"time"

	"github.com/webfirst/hoursboard/internal/project/model"
	"github.com/webfirst/hoursboard/pkg/csvx"
)

// Layouts of the two date formats used by the payroll export.
const (
	entryDateLayout = "01/02/2006" // MM/DD/YYYY
	popDateLayout   = "02-Jan-2006"
)

// ProjectPatch carries the project-level columns observed in one file.
// A nil field means the column never appeared and must not overwrite the
// stored value (sparse merge). When the same column appears on multiple rows
// the last row wins, matching the per-row upsert the export format implies.
type ProjectPatch struct {
	Status              *string
	ContractType        *string
	BudgetHours         *int
	Description         *string
	PM                  *string
	PeriodOfPerformance *model.PeriodOfPerformance
}

// Empty reports whether no project-level column was observed.
func (p ProjectPatch) Empty() bool {
	return p.Status == nil && p.ContractType == nil && p.BudgetHours == nil &&
		p.Description == nil && p.PM == nil && p.PeriodOfPerformance == nil
}

// File reads the project CSV at path and returns the accumulated project patch
// plus one time entry per row, in file order. projectName comes from the
// filename stem and is not present in the CSV itself.
func File(path, projectName string) (ProjectPatch, []model.TimeEntry, error) {
	now := time.Now()

	var patch ProjectPatch
	var entries []model.TimeEntry

	err := csvx.ForEach(path, func(row csvx.Row) error {
		if v := row.Get("Period Of Performance"); v != "" {
			patch.PeriodOfPerformance = parsePeriodOfPerformance(v)
		}
		if v := row.Get("Status"); v != "" {
			patch.Status = &v
		}
		if v := row.Get("Contract Type"); v != "" {
			patch.ContractType = &v
		}
		if v := row.Get("Budget Hours"); v != "" {
			if hours, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
				patch.BudgetHours = &hours
			}
		}
		if v := row.Get("Description"); v != "" {
			patch.Description = &v
		}
		if v := row.Get("PM"); v != "" {
			patch.PM = &v
		}

		entries = append(entries, model.TimeEntry{
			Username:    row.Get("User"),
			ProjectName: projectName,
			Date:        parseDate(row.Get("Date"), entryDateLayout),
			Hours:       parseHours(row.Get("Time (decimal)")),
			Description: row.Get("Description"),
			CreatedAt:   now,
			UpdatedAt:   now,
		})
		return nil
	})
	if err != nil {
		return ProjectPatch{}, nil, err
	}

	return patch, entries, nil
}

// parsePeriodOfPerformance splits a "<start> to <end>" range. Invalid or
// missing segments become null bounds rather than errors.
func parsePeriodOfPerformance(value string) *model.PeriodOfPerformance {
	pop := &model.PeriodOfPerformance{}

	parts := strings.SplitN(value, " to ", 2)
	pop.StartDate = parseDate(parts[0], popDateLayout)
	if len(parts) == 2 {
		pop.EndDate = parseDate(parts[1], popDateLayout)
	}

	return pop
}

func parseDate(value, layout string) *time.Time {
	parsed, err := time.Parse(layout, strings.TrimSpace(value))
	if err != nil {
		return nil
	}
	return &parsed
}

func parseHours(value string) float64 {
	hours, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0
	}
	return hours
}
