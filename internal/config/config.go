package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
	"github.com/username/work-hours-report/pkg/dateutil"
)

// DefaultFileName is the default configuration file name.
const DefaultFileName = "time_report_config.json"

// requiredKeys are the configuration keys that must be present in the file.
// A missing key is a fatal load error.
var requiredKeys = []string{
	"report_language",
	"country",
	"continent",
	"start_hour",
	"end_hour",
	"work_days",
	"holiday",
	"vacation",
}

// Config represents application configuration
type Config struct {
	ReportLanguage string `mapstructure:"report_language" json:"report_language"`
	Country        string `mapstructure:"country" json:"country"`
	Continent      string `mapstructure:"continent" json:"continent"`
	StartHour      string `mapstructure:"start_hour" json:"start_hour"`
	EndHour        string `mapstructure:"end_hour" json:"end_hour"`
	WorkDays       []int  `mapstructure:"work_days" json:"work_days"`
	HolidayLabel   string `mapstructure:"holiday" json:"holiday"`
	VacationLabel  string `mapstructure:"vacation" json:"vacation"`

	// Optional keys.
	ExtraHolidaysFile string `mapstructure:"extra_holidays_file" json:"extra_holidays_file,omitempty"`
	LogFile           string `mapstructure:"log_file" json:"log_file,omitempty"`
	LogLevel          string `mapstructure:"log_level" json:"log_level,omitempty"`
}

// Load loads configuration from a JSON file and validates it.
// Missing file, missing required keys and malformed values are all fatal.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigFile(DefaultFileName)
	}
	v.SetConfigType("json")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to load configuration file: %w", err)
	}

	for _, key := range requiredKeys {
		if !v.IsSet(key) {
			return nil, fmt.Errorf("failed to access configuration parameter: %q is missing", key)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.ReportLanguage == "" {
		return fmt.Errorf("report_language must not be empty")
	}
	if c.Country == "" {
		return fmt.Errorf("country must not be empty")
	}
	if c.Continent == "" {
		return fmt.Errorf("continent must not be empty")
	}
	if c.HolidayLabel == "" {
		return fmt.Errorf("holiday label must not be empty")
	}
	if c.VacationLabel == "" {
		return fmt.Errorf("vacation label must not be empty")
	}

	if _, _, err := ParseHour(c.StartHour); err != nil {
		return fmt.Errorf("invalid start_hour: %w", err)
	}
	if _, _, err := ParseHour(c.EndHour); err != nil {
		return fmt.Errorf("invalid end_hour: %w", err)
	}

	if len(c.WorkDays) == 0 {
		return fmt.Errorf("work_days must not be empty")
	}
	seen := make(map[int]bool, len(c.WorkDays))
	for _, day := range c.WorkDays {
		if day < 1 || day > dateutil.DaysInAWeek {
			return fmt.Errorf("work_days entry %d out of range 1-%d", day, dateutil.DaysInAWeek)
		}
		if seen[day] {
			return fmt.Errorf("work_days entry %d is duplicated", day)
		}
		seen[day] = true
	}

	return nil
}

// ParseHour parses a clock value in "H:MM" or "HH:MM" form.
func ParseHour(value string) (hour, minute int, err error) {
	var h, m int
	if _, err := fmt.Sscanf(value, "%d:%d", &h, &m); err != nil {
		return 0, 0, fmt.Errorf("%q is not in H:MM form: %w", value, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, 0, fmt.Errorf("%q is not a valid time of day", value)
	}
	return h, m, nil
}

// IsWorkday reports whether the given date falls on a configured work day.
func (c *Config) IsWorkday(date time.Time) bool {
	weekday := dateutil.ISOWeekday(date)
	for _, day := range c.WorkDays {
		if day == weekday {
			return true
		}
	}
	return false
}

// IsVacation reports whether the given date is part of a vacation.
// Vacation tracking is not implemented; the check always fails.
func (c *Config) IsVacation(date time.Time) bool {
	return false
}

// Default returns the companion default configuration:
// an English report for Poland with a Monday-Friday 8:00-17:00 schedule.
func Default() *Config {
	return &Config{
		ReportLanguage: "English",
		Country:        "Poland",
		Continent:      "Europe",
		StartHour:      "8:00",
		EndHour:        "17:00",
		WorkDays:       []int{1, 2, 3, 4, 5},
		HolidayLabel:   "Holiday",
		VacationLabel:  "Vacation",
	}
}

// Write writes the configuration to the given path as indented JSON.
func (c *Config) Write(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
