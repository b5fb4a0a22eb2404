package engine

import (
	"regexp"
	"strings"

	"github.com/kailas-cloud/dateformat/internal/domain/locale"
	"github.com/kailas-cloud/dateformat/internal/domain/pattern"
)

// matchers recognise numeric and offset fields. All are anchored at the cursor.
var matchers = map[pattern.Symbol]*regexp.Regexp{
	pattern.DayOfMonth:  regexp.MustCompile(`^\d{1,2}`),
	pattern.DayOfMonth2: regexp.MustCompile(`^\d{2}`),

	pattern.Fraction1:    regexp.MustCompile(`^\d`),
	pattern.Fraction2:    regexp.MustCompile(`^\d{2}`),
	pattern.Fraction3:    regexp.MustCompile(`^\d{3}`),
	pattern.OptFraction1: regexp.MustCompile(`^(?:\.\d)?`),
	pattern.OptFraction2: regexp.MustCompile(`^(?:\.\d{2})?`),
	pattern.OptFraction3: regexp.MustCompile(`^(?:\.\d{3})?`),

	pattern.Hour12:  regexp.MustCompile(`^\d{1,2}`),
	pattern.Hour12p: regexp.MustCompile(`^\d{2}`),
	pattern.Hour24:  regexp.MustCompile(`^\d{1,2}`),
	pattern.Hour24p: regexp.MustCompile(`^\d{2}`),

	pattern.DayOfYear: regexp.MustCompile(`^\d{1,3}`),
	pattern.ZoneMode:  regexp.MustCompile(`^(?:UTC|Local)`),

	pattern.Minute:  regexp.MustCompile(`^\d{1,2}`),
	pattern.Minute2: regexp.MustCompile(`^\d{2}`),
	pattern.Month:   regexp.MustCompile(`^\d{1,2}`),
	pattern.Month2:  regexp.MustCompile(`^\d{2}`),
	pattern.Second:  regexp.MustCompile(`^\d{1,2}`),
	pattern.Second2: regexp.MustCompile(`^\d{2}`),

	pattern.Year1: regexp.MustCompile(`^\d`),
	pattern.Year2: regexp.MustCompile(`^\d{2}`),
	pattern.Year3: regexp.MustCompile(`^\d{3,4}`),
	pattern.Year4: regexp.MustCompile(`^\d{4}`),
	pattern.Year5: regexp.MustCompile(`^\d{5}`),

	pattern.OffsetH:         regexp.MustCompile(`^(?:Z|[-+]\d{1,2})`),
	pattern.OffsetHH:        regexp.MustCompile(`^(?:Z|[-+]\d{2})`),
	pattern.OffsetHHMM:      regexp.MustCompile(`^(?:Z|[-+]\d{4})`),
	pattern.OffsetHHColonMM: regexp.MustCompile(`^(?:Z|[-+]\d{2}:\d{2})`),
}

// names returns the locale list a name symbol is looked up in.
func names(sym pattern.Symbol, loc locale.Locale) []string {
	switch sym {
	case pattern.DayNameAbbr:
		return loc.Day.Abbr
	case pattern.DayNameFull:
		return loc.Day.Full
	case pattern.EraAbbr:
		return loc.Era.Abbr
	case pattern.EraFull:
		return loc.Era.Full
	case pattern.MonthNameAbbr:
		return loc.Month.Abbr
	case pattern.MonthNameFull:
		return loc.Month.Full
	case pattern.AmPmAbbr:
		return loc.AmPm.Abbr
	case pattern.AmPmFull:
		return loc.AmPm.Full
	}
	return nil
}

// recognize matches sym at the start of rest. Name lists are scanned in index
// order and the first entry that prefixes rest wins. The match may be empty
// only for optional fractions.
func recognize(sym pattern.Symbol, loc locale.Locale, rest string) (string, bool) {
	if sym.IsName() {
		for _, name := range names(sym, loc) {
			if name != "" && strings.HasPrefix(rest, name) {
				return name, true
			}
		}
		return "", false
	}

	re, ok := matchers[sym]
	if !ok {
		return "", false
	}
	m := re.FindStringIndex(rest)
	if m == nil {
		return "", false
	}
	return rest[:m[1]], true
}
