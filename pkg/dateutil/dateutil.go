package dateutil

import "time"

// DaysInAWeek is the number of calendar days in an ISO week.
const DaysInAWeek = 7

// StartOfDay returns the start of the day (00:00:00) for the given date
func StartOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}

// StartOfWeek returns the Monday of the week for the given date
func StartOfWeek(date time.Time) time.Time {
	weekday := int(date.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday = 7
	}
	daysFromMonday := weekday - 1
	return StartOfDay(date.AddDate(0, 0, -daysFromMonday))
}

// WeekNumber returns the ISO week number for the given date
func WeekNumber(date time.Time) (year int, week int) {
	year, week = date.ISOWeek()
	return
}

// ISOWeekday returns the ISO 8601 weekday number for the given date,
// Monday=1 .. Sunday=7.
func ISOWeekday(date time.Time) int {
	weekday := int(date.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	return weekday
}

// FromISOWeek returns the date of the given ISO weekday (Monday=1 .. Sunday=7)
// in the given ISO week of the given ISO year. Week 1 is the week containing
// the year's first Thursday, which is always the week containing January 4th.
//
// Week and weekday values outside the normal ranges resolve by plain date
// arithmetic from week 1's Monday, so week 0 is the last week of the previous
// year and week 54 rolls into the next year.
func FromISOWeek(year, week, weekday int) time.Time {
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, time.Local)
	week1Monday := StartOfWeek(jan4)
	return week1Monday.AddDate(0, 0, (week-1)*DaysInAWeek+(weekday-1))
}

// WeekDates returns the 7 calendar dates of the given ISO week,
// Monday through Sunday.
func WeekDates(year, week int) []time.Time {
	dates := make([]time.Time, 0, DaysInAWeek)
	for weekday := 1; weekday <= DaysInAWeek; weekday++ {
		dates = append(dates, FromISOWeek(year, week, weekday))
	}
	return dates
}
