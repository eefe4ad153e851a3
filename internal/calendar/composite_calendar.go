package calendar

import "time"

// CompositeCalendar implements Calendar as the union of several calendars.
// It combines the national calendar with extra holidays from a local file.
type CompositeCalendar struct {
	members []Calendar
}

// NewCompositeCalendar creates a new CompositeCalendar
func NewCompositeCalendar(members ...Calendar) *CompositeCalendar {
	return &CompositeCalendar{members: members}
}

// IsHoliday reports whether any member calendar marks the date as a holiday.
func (cc *CompositeCalendar) IsHoliday(date time.Time) bool {
	for _, member := range cc.members {
		if member.IsHoliday(date) {
			return true
		}
	}
	return false
}
