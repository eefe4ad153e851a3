package i18n

import (
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestTranslator_English(t *testing.T) {
	tr := New("English", zap.NewNop())

	if got := tr.Title("28", "31", time.July); got != "Working hours 28-31 Of July" {
		t.Errorf("Title() = %q, want %q", got, "Working hours 28-31 Of July")
	}
	if got := tr.WorkingHours("8:00", "17:00"); got != "Start: 8:00; End: 17:00" {
		t.Errorf("WorkingHours() = %q, want %q", got, "Start: 8:00; End: 17:00")
	}
	if got := tr.WeekdayAbbrev(time.Tuesday); got != "Tue" {
		t.Errorf("WeekdayAbbrev(Tuesday) = %q, want %q", got, "Tue")
	}
	if got := tr.MonthName(time.August); got != "August" {
		t.Errorf("MonthName(August) = %q, want %q", got, "August")
	}
}

func TestTranslator_Polish(t *testing.T) {
	tests := []struct {
		name string
		lang string
	}{
		{"config-style name", "Polish"},
		{"native name", "polski"},
		{"BCP 47 tag", "pl"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := New(tt.lang, zap.NewNop())

			if got := tr.MonthName(time.May); got != "Maj" {
				t.Errorf("MonthName(May) = %q, want %q", got, "Maj")
			}
			if got := tr.WeekdayAbbrev(time.Monday); got != "Pon" {
				t.Errorf("WeekdayAbbrev(Monday) = %q, want %q", got, "Pon")
			}
			if got := tr.WorkingHours("8:00", "17:00"); got != "Początek: 8:00; Koniec: 17:00" {
				t.Errorf("WorkingHours() = %q, want %q", got, "Początek: 8:00; Koniec: 17:00")
			}
		})
	}
}

func TestTranslator_UnknownLanguageFallsBackToEnglish(t *testing.T) {
	tr := New("Klingon", zap.NewNop())

	if got := tr.Title("01", "05", time.May); got != "Working hours 01-05 Of May" {
		t.Errorf("Title() = %q, want English fallback", got)
	}
}
