package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/username/work-hours-report/internal/calendar"
	"github.com/username/work-hours-report/internal/config"
	"github.com/username/work-hours-report/internal/i18n"
	"github.com/username/work-hours-report/pkg/dateutil"
	"go.uber.org/zap"
)

// Day is a single calendar date with its derived classification.
type Day struct {
	Date       time.Time
	IsHoliday  bool
	IsVacation bool
}

// DayGroup is an ordered run of working days sharing one calendar month.
type DayGroup struct {
	Month time.Month
	Days  []Day
}

// SubReport is one titled block of formatted day lines.
type SubReport struct {
	Title string
	Lines []string
}

// Builder assembles weekly work-hours reports.
type Builder struct {
	cfg    *config.Config
	cal    calendar.Calendar
	clock  dateutil.Clock
	tr     *i18n.Translator
	logger *zap.Logger
}

// NewBuilder creates a new Builder
func NewBuilder(cfg *config.Config, cal calendar.Calendar, clock dateutil.Clock, tr *i18n.Translator, logger *zap.Logger) *Builder {
	return &Builder{
		cfg:    cfg,
		cal:    cal,
		clock:  clock,
		tr:     tr,
		logger: logger,
	}
}

// CurrentWeek returns the ISO week number of the clock's current date.
func (b *Builder) CurrentWeek() int {
	_, week := dateutil.WeekNumber(b.clock.Now())
	return week
}

// WorkingDays returns the working days of the given ISO week, anchored at the
// clock's current ISO year, grouped by calendar month. A week spanning a month
// boundary yields two groups; a week with no working days yields none.
func (b *Builder) WorkingDays(week int) []DayGroup {
	year, _ := dateutil.WeekNumber(b.clock.Now())

	var days []Day
	for _, date := range dateutil.WeekDates(year, week) {
		if !b.cfg.IsWorkday(date) {
			continue
		}
		days = append(days, Day{
			Date:       date,
			IsHoliday:  b.cal.IsHoliday(date),
			IsVacation: b.cfg.IsVacation(date),
		})
	}

	if len(days) == 0 {
		b.logger.Warn("No working days in requested week",
			zap.Int("year", year),
			zap.Int("week", week))
		return nil
	}

	firstMonth := days[0].Date.Month()
	lastMonth := days[len(days)-1].Date.Month()
	if firstMonth == lastMonth {
		return []DayGroup{{Month: firstMonth, Days: days}}
	}

	// A week covers at most one month boundary, so a single split suffices.
	split := len(days)
	for i, day := range days {
		if day.Date.Month() != firstMonth {
			split = i
			break
		}
	}

	return []DayGroup{
		{Month: firstMonth, Days: days[:split]},
		{Month: lastMonth, Days: days[split:]},
	}
}

// FormatDay formats one day line. The description is the holiday label, else
// the vacation label, else the configured working hours.
func (b *Builder) FormatDay(day Day) string {
	var description string
	switch {
	case day.IsHoliday:
		description = b.cfg.HolidayLabel
	case day.IsVacation:
		description = b.cfg.VacationLabel
	default:
		description = b.tr.WorkingHours(b.cfg.StartHour, b.cfg.EndHour)
	}

	return fmt.Sprintf("%s-%s.: %s",
		b.tr.WeekdayAbbrev(day.Date.Weekday()),
		day.Date.Format("02:01"),
		description)
}

// BuildReport builds the titled sub-reports for the given ISO week.
func (b *Builder) BuildReport(week int) []SubReport {
	var reports []SubReport
	for _, group := range b.WorkingDays(week) {
		first := group.Days[0].Date
		last := group.Days[len(group.Days)-1].Date

		sub := SubReport{
			Title: b.tr.Title(first.Format("02"), last.Format("02"), group.Month),
			Lines: make([]string, 0, len(group.Days)),
		}
		for _, day := range group.Days {
			sub.Lines = append(sub.Lines, b.FormatDay(day))
		}
		reports = append(reports, sub)
	}
	return reports
}

// Fprint renders the report for the given week to w: each group's title and
// day lines, with a blank line after each group. A week without working days
// produces no output.
func (b *Builder) Fprint(w io.Writer, week int) error {
	var sb strings.Builder
	for _, sub := range b.BuildReport(week) {
		sb.WriteString(sub.Title)
		sb.WriteByte('\n')
		for _, line := range sub.Lines {
			sb.WriteString(line)
			sb.WriteByte('\n')
		}
		sb.WriteByte('\n')
	}

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
