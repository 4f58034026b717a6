// Package mapper turns summary CSV rows into monthly accumulator increments.
package mapper

import (
	"strconv"
	"strings"
	"time"

	"github.com/webfirst/hoursboard/internal/summary/model"
	"github.com/webfirst/hoursboard/pkg/csvx"
)

// MonthKey derives the summary month label from a dated folder name by taking
// its first two underscore-delimited tokens: "2024_03_Batch" yields "2024_03".
func MonthKey(folderName string) string {
	tokens := strings.Split(folderName, "_")
	if len(tokens) < 2 {
		return folderName
	}
	return tokens[0] + "_" + tokens[1]
}

// File reads the summary CSV at path and returns one increment row per CSV
// row, in file order, all labeled with the month derived from folderName.
// Expected columns: User, Time (decimal), Time Off (decimal).
func File(path, folderName string) ([]model.Summary, error) {
	month := MonthKey(folderName)
	now := time.Now()

	var rows []model.Summary
	err := csvx.ForEach(path, func(row csvx.Row) error {
		rows = append(rows, model.Summary{
			Username:  row.Get("User"),
			Month:     month,
			Time:      parseDecimal(row.Get("Time (decimal)")),
			TimeOff:   parseDecimal(row.Get("Time Off (decimal)")),
			CreatedAt: now,
			UpdatedAt: now,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return rows, nil
}

func parseDecimal(value string) float64 {
	parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0
	}
	return parsed
}
