package calendar

import (
	"fmt"
	"sort"
	"strings"
	"time"

	cal "github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/at"
	"github.com/rickar/cal/v2/au"
	"github.com/rickar/cal/v2/be"
	"github.com/rickar/cal/v2/br"
	"github.com/rickar/cal/v2/ca"
	"github.com/rickar/cal/v2/ch"
	"github.com/rickar/cal/v2/cz"
	"github.com/rickar/cal/v2/de"
	"github.com/rickar/cal/v2/dk"
	"github.com/rickar/cal/v2/es"
	"github.com/rickar/cal/v2/fi"
	"github.com/rickar/cal/v2/fr"
	"github.com/rickar/cal/v2/gb"
	"github.com/rickar/cal/v2/ie"
	"github.com/rickar/cal/v2/it"
	"github.com/rickar/cal/v2/jp"
	"github.com/rickar/cal/v2/mx"
	"github.com/rickar/cal/v2/nl"
	"github.com/rickar/cal/v2/no"
	"github.com/rickar/cal/v2/nz"
	"github.com/rickar/cal/v2/pl"
	"github.com/rickar/cal/v2/pt"
	"github.com/rickar/cal/v2/ru"
	"github.com/rickar/cal/v2/se"
	"github.com/rickar/cal/v2/us"
	"github.com/rickar/cal/v2/za"
	"go.uber.org/zap"
)

// countries maps continent -> country -> national holiday definitions.
// Keys are normalized (lower case, separators stripped).
var countries = map[string]map[string][]*cal.Holiday{
	"europe": {
		"austria":       at.Holidays,
		"belgium":       be.Holidays,
		"czechrepublic": cz.Holidays,
		"denmark":       dk.Holidays,
		"finland":       fi.Holidays,
		"france":        fr.Holidays,
		"germany":       de.Holidays,
		"ireland":       ie.Holidays,
		"italy":         it.Holidays,
		"netherlands":   nl.Holidays,
		"norway":        no.Holidays,
		"poland":        pl.Holidays,
		"portugal":      pt.Holidays,
		"russia":        ru.Holidays,
		"spain":         es.Holidays,
		"sweden":        se.Holidays,
		"switzerland":   ch.Holidays,
		"unitedkingdom": gb.Holidays,
	},
	"america": {
		"brazil":       br.Holidays,
		"canada":       ca.Holidays,
		"mexico":       mx.Holidays,
		"unitedstates": us.Holidays,
	},
	"asia": {
		"japan": jp.Holidays,
	},
	"oceania": {
		// The au package only exports per-state slices; NSW carries the
		// national holidays plus its own regional days.
		"australia":  au.HolidaysNSW,
		"newzealand": nz.Holidays,
	},
	"africa": {
		"southafrica": za.Holidays,
	},
}

// countryAliases maps ISO 3166 alpha-2 codes and common short names
// to canonical registry keys.
var countryAliases = map[string]string{
	"at": "austria",
	"au": "australia",
	"be": "belgium",
	"br": "brazil",
	"ca": "canada",
	"ch": "switzerland",
	"cz": "czechrepublic",
	"de": "germany",
	"dk": "denmark",
	"es": "spain",
	"fi": "finland",
	"fr": "france",
	"gb": "unitedkingdom",
	"ie": "ireland",
	"it": "italy",
	"jp": "japan",
	"mx": "mexico",
	"nl": "netherlands",
	"no": "norway",
	"nz": "newzealand",
	"pl": "poland",
	"pt": "portugal",
	"ru": "russia",
	"se": "sweden",
	"us": "unitedstates",
	"za": "southafrica",

	"czechia":      "czechrepublic",
	"greatbritain": "unitedkingdom",
	"uk":           "unitedkingdom",
	"usa":          "unitedstates",
}

var continentAliases = map[string]string{
	"northamerica": "america",
	"southamerica": "america",
}

// CountryCalendar implements Calendar using national holiday definitions.
type CountryCalendar struct {
	country  string
	calendar *cal.BusinessCalendar
}

// ResolveCountry resolves the holiday calendar for the given continent and
// country names. Names are case-insensitive and ignore spaces, hyphens,
// underscores and dots; ISO country codes are accepted as aliases.
func ResolveCountry(continent, country string, logger *zap.Logger) (*CountryCalendar, error) {
	continentKey := normalizeName(continent)
	if canonical, ok := continentAliases[continentKey]; ok {
		continentKey = canonical
	}

	byCountry, ok := countries[continentKey]
	if !ok {
		return nil, fmt.Errorf("unknown continent %q: supported continents are %s",
			continent, strings.Join(sortedKeys(countries), ", "))
	}

	countryKey := normalizeName(country)
	if canonical, ok := countryAliases[countryKey]; ok {
		countryKey = canonical
	}

	holidays, ok := byCountry[countryKey]
	if !ok {
		return nil, fmt.Errorf("unknown country %q in continent %q: supported countries are %s (example: continent \"Europe\", country \"Poland\")",
			country, continent, strings.Join(sortedKeys(byCountry), ", "))
	}

	businessCal := cal.NewBusinessCalendar()
	businessCal.AddHoliday(holidays...)

	logger.Info("Holiday calendar resolved",
		zap.String("continent", continentKey),
		zap.String("country", countryKey),
		zap.Int("holidays", len(holidays)))

	return &CountryCalendar{
		country:  countryKey,
		calendar: businessCal,
	}, nil
}

// IsHoliday reports whether the given date is a public holiday.
// Observed substitute days count as holidays.
func (c *CountryCalendar) IsHoliday(date time.Time) bool {
	actual, observed, _ := c.calendar.IsHoliday(date)
	return actual || observed
}

// Country returns the canonical name of the resolved country.
func (c *CountryCalendar) Country() string {
	return c.country
}

func normalizeName(name string) string {
	lower := strings.ToLower(strings.TrimSpace(name))
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_', '.':
			return -1
		}
		return r
	}, lower)
}

func sortedKeys[M ~map[string]V, V any](m M) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
