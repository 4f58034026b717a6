package config

import (
	"fmt"
	"time"
)

// ImporterConfig holds CSV import pipeline configuration.
type ImporterConfig struct {
	// DropRoot is the directory tree producers deposit dated CSV folders into.
	DropRoot string
	// QuietPeriod is the debounce duration after the last file event before an
	// import pass is triggered.
	QuietPeriod time.Duration
	// Parallelism bounds how many files or folders are imported concurrently.
	Parallelism int
	// EmployeesFile is the fixed roster filename inside each dated folder.
	EmployeesFile string
	// SummaryFile is the fixed per-month summary filename inside each dated folder.
	SummaryFile string
}

// LoadImporterConfigFromEnv loads importer configuration from environment variables.
func LoadImporterConfigFromEnv() ImporterConfig {
	return ImporterConfig{
		DropRoot:      GetEnv("IMPORT_DROP_ROOT", "Data"),
		QuietPeriod:   GetEnvDuration("IMPORT_QUIET_PERIOD", 40*time.Second),
		Parallelism:   GetEnvInt("IMPORT_PARALLELISM", 4),
		EmployeesFile: GetEnv("IMPORT_EMPLOYEES_FILE", "WEBFIRST_EMPLOYEES.csv"),
		SummaryFile:   GetEnv("IMPORT_SUMMARY_FILE", "WEBFIRST_SUMMARY.csv"),
	}
}

// Validate validates importer configuration.
func (c ImporterConfig) Validate() error {
	if c.DropRoot == "" {
		return fmt.Errorf("DropRoot must not be empty")
	}
	if c.QuietPeriod <= 0 {
		return fmt.Errorf("QuietPeriod must be greater than 0")
	}
	if c.Parallelism <= 0 {
		return fmt.Errorf("Parallelism must be greater than 0")
	}
	if c.EmployeesFile == "" {
		return fmt.Errorf("EmployeesFile must not be empty")
	}
	if c.SummaryFile == "" {
		return fmt.Errorf("SummaryFile must not be empty")
	}
	return nil
}
