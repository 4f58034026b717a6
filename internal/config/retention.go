package config

import (
	"fmt"
	"strings"
	"time"
)

// RetentionConfig holds time-entry archival configuration.
type RetentionConfig struct {
	// MonthsBack is how many months before today the archival window opens.
	MonthsBack int
	// CutoffWeekday is the weekday whose most recent occurrence on/before today
	// closes the archival window.
	CutoffWeekday time.Weekday
}

// LoadRetentionConfigFromEnv loads retention configuration from environment variables.
func LoadRetentionConfigFromEnv() RetentionConfig {
	return RetentionConfig{
		MonthsBack:    GetEnvInt("RETENTION_MONTHS_BACK", 2),
		CutoffWeekday: parseWeekday(GetEnv("RETENTION_CUTOFF_WEEKDAY", "Friday")),
	}
}

func parseWeekday(value string) time.Weekday {
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		if strings.EqualFold(wd.String(), value) {
			return wd
		}
	}
	return time.Friday
}

// Validate validates retention configuration.
func (c RetentionConfig) Validate() error {
	if c.MonthsBack <= 0 {
		return fmt.Errorf("MonthsBack must be greater than 0")
	}
	if c.CutoffWeekday < time.Sunday || c.CutoffWeekday > time.Saturday {
		return fmt.Errorf("invalid CutoffWeekday: %d", c.CutoffWeekday)
	}
	return nil
}
