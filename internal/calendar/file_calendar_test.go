package calendar

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"
)

func writeHolidaysFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "extra_holidays.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write holidays file: %v", err)
	}
	return path
}

func TestFileCalendar_Load(t *testing.T) {
	path := writeHolidaysFile(t, `# company holidays
2025-05-02 Bridge day

2025-12-24 Christmas Eve
not-a-date this line is skipped
2025-12-31
`)

	fc := NewFileCalendar(path, zap.NewNop())
	if err := fc.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	tests := []struct {
		name string
		date time.Time
		want bool
	}{
		{"listed with note", time.Date(2025, 5, 2, 0, 0, 0, 0, time.Local), true},
		{"listed without note", time.Date(2025, 12, 31, 0, 0, 0, 0, time.Local), true},
		{"not listed", time.Date(2025, 5, 3, 0, 0, 0, 0, time.Local), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fc.IsHoliday(tt.date); got != tt.want {
				t.Errorf("IsHoliday(%v) = %v, want %v",
					tt.date.Format("2006-01-02"), got, tt.want)
			}
		})
	}

	note, ok := fc.note(time.Date(2025, 5, 2, 0, 0, 0, 0, time.Local))
	if !ok || note != "Bridge day" {
		t.Errorf("note() = (%q, %v), want (\"Bridge day\", true)", note, ok)
	}
}

func TestFileCalendar_LoadMissingFile(t *testing.T) {
	fc := NewFileCalendar(filepath.Join(t.TempDir(), "nonexistent.txt"), zap.NewNop())

	if err := fc.Load(); err == nil {
		t.Error("Load() expected error for missing file, got nil")
	}
}

// fixedCalendar marks a fixed set of dates as holidays.
type fixedCalendar map[string]bool

func (f fixedCalendar) IsHoliday(date time.Time) bool {
	return f[date.Format("2006-01-02")]
}

func TestCompositeCalendar_IsHoliday(t *testing.T) {
	first := fixedCalendar{"2025-01-01": true}
	second := fixedCalendar{"2025-05-02": true}

	composite := NewCompositeCalendar(first, second)

	tests := []struct {
		name string
		date time.Time
		want bool
	}{
		{"holiday in first member", time.Date(2025, 1, 1, 0, 0, 0, 0, time.Local), true},
		{"holiday in second member", time.Date(2025, 5, 2, 0, 0, 0, 0, time.Local), true},
		{"holiday in neither", time.Date(2025, 3, 4, 0, 0, 0, 0, time.Local), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := composite.IsHoliday(tt.date); got != tt.want {
				t.Errorf("IsHoliday(%v) = %v, want %v",
					tt.date.Format("2006-01-02"), got, tt.want)
			}
		})
	}
}
