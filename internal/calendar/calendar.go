package calendar

import "time"

// Calendar interface for checking public holidays
type Calendar interface {
	// IsHoliday reports whether the given date is a public holiday
	IsHoliday(date time.Time) bool
}
