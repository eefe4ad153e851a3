package calendar

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
)

const fileDateLayout = "2006-01-02"

// FileCalendar implements Calendar using a local text file of extra holidays.
// One date per line in "YYYY-MM-DD" form, optionally followed by a note.
// Blank lines and lines starting with '#' are ignored.
type FileCalendar struct {
	filePath string
	logger   *zap.Logger
	days     map[string]string // key: "YYYY-MM-DD", value: note
}

// NewFileCalendar creates a new FileCalendar instance
func NewFileCalendar(filePath string, logger *zap.Logger) *FileCalendar {
	return &FileCalendar{
		filePath: filePath,
		logger:   logger,
		days:     make(map[string]string),
	}
}

// Load loads holiday dates from the file.
// Unparseable lines are logged and skipped.
func (fc *FileCalendar) Load() error {
	file, err := os.Open(fc.filePath)
	if err != nil {
		return fmt.Errorf("failed to open holidays file: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Format: YYYY-MM-DD [note]
		// Example: 2025-05-02 Company bridge day
		parts := strings.SplitN(line, " ", 2)
		dateStr := parts[0]
		note := ""
		if len(parts) == 2 {
			note = strings.TrimSpace(parts[1])
		}

		date, err := time.Parse(fileDateLayout, dateStr)
		if err != nil {
			fc.logger.Warn("Failed to parse holiday date",
				zap.String("line", line),
				zap.Error(err))
			continue
		}

		fc.days[date.Format(fileDateLayout)] = note
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading holidays file: %w", err)
	}

	fc.logger.Info("Extra holidays loaded",
		zap.String("file", fc.filePath),
		zap.Int("days", len(fc.days)))

	return nil
}

// IsHoliday reports whether the given date is listed in the file.
func (fc *FileCalendar) IsHoliday(date time.Time) bool {
	note, ok := fc.days[date.Format(fileDateLayout)]
	if ok && note != "" {
		fc.logger.Debug("Extra holiday matched",
			zap.String("date", date.Format(fileDateLayout)),
			zap.String("note", note))
	}
	return ok
}

// note returns the note recorded for the given date, if any.
func (fc *FileCalendar) note(date time.Time) (string, bool) {
	note, ok := fc.days[date.Format(fileDateLayout)]
	return note, ok
}
