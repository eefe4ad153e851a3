// Package i18n localizes the fixed report strings (title, working hours,
// month names, weekday abbreviations) based on the configured report language.
package i18n

import (
	"embed"
	"encoding/json"
	"strings"
	"time"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

var localeFiles = []string{
	"locales/active.en.json",
	"locales/active.pl.json",
}

// languageNames maps config-style language names to BCP 47 tags.
var languageNames = map[string]string{
	"english": "en",
	"polish":  "pl",
	"polski":  "pl",
}

// Translator resolves report strings for one language.
type Translator struct {
	localizer *goi18n.Localizer
	logger    *zap.Logger
}

// New creates a Translator for the given language. The language may be a
// config-style name ("English", "Polish") or a BCP 47 tag. Unknown values
// fall back to English with a warning.
func New(lang string, logger *zap.Logger) *Translator {
	bundle := goi18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	for _, name := range localeFiles {
		if _, err := bundle.LoadMessageFileFS(localeFS, name); err != nil {
			logger.Warn("Failed to load locale file",
				zap.String("file", name),
				zap.Error(err))
		}
	}

	return &Translator{
		localizer: goi18n.NewLocalizer(bundle, resolveTag(lang, logger)),
		logger:    logger,
	}
}

func resolveTag(lang string, logger *zap.Logger) string {
	key := strings.ToLower(strings.TrimSpace(lang))
	if tag, ok := languageNames[key]; ok {
		return tag
	}
	if _, err := language.Parse(key); err == nil {
		return key
	}

	logger.Warn("Unknown report language, falling back to English",
		zap.String("language", lang))
	return language.English.String()
}

// Title renders the sub-report title line for a day range within one month.
func (t *Translator) Title(firstDay, lastDay string, month time.Month) string {
	return t.msg("ReportTitle", "Working hours {{.First}}-{{.Last}} Of {{.Month}}",
		map[string]any{
			"First": firstDay,
			"Last":  lastDay,
			"Month": t.MonthName(month),
		})
}

// WorkingHours renders the start/end description of a regular working day.
func (t *Translator) WorkingHours(start, end string) string {
	return t.msg("WorkingHours", "Start: {{.Start}}; End: {{.End}}",
		map[string]any{
			"Start": start,
			"End":   end,
		})
}

// MonthName returns the localized full month name.
func (t *Translator) MonthName(m time.Month) string {
	return t.msg("Month."+m.String(), m.String(), nil)
}

// WeekdayAbbrev returns the localized three-letter style weekday abbreviation.
func (t *Translator) WeekdayAbbrev(d time.Weekday) string {
	return t.msg("Weekday."+d.String(), d.String()[:3], nil)
}

func (t *Translator) msg(id, fallback string, data map[string]any) string {
	out, err := t.localizer.Localize(&goi18n.LocalizeConfig{
		DefaultMessage: &goi18n.Message{ID: id, Other: fallback},
		TemplateData:   data,
	})
	if err != nil {
		t.logger.Warn("Failed to localize message",
			zap.String("id", id),
			zap.Error(err))
		return fallback
	}
	return out
}
