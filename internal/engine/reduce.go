package engine

import (
	"strconv"
	"strings"
	"time"

	"github.com/kailas-cloud/dateformat/internal/domain/locale"
	"github.com/kailas-cloud/dateformat/internal/domain/pattern"
)

// reduce resolves captured fields into one time. For each calendar component
// the first present field in precedence order wins; absent components are 0.
func reduce(f *fields, loc locale.Locale, opts ParseOptions) time.Time {
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	year := reduceYear(f, now.UTC().Year())
	if eraOf(f, loc) == 0 {
		year = -year
	}

	month := 0
	switch {
	case f[pattern.MonthNameFull] != "":
		month = locale.Index(loc.Month.Full, f[pattern.MonthNameFull])
	case f[pattern.MonthNameAbbr] != "":
		month = locale.Index(loc.Month.Abbr, f[pattern.MonthNameAbbr])
	default:
		if v := f.first(pattern.Month2, pattern.Month); v != "" {
			month = atoi(v) - 1
		}
	}

	// A day-of-year capture replaces month and day: it is applied as a day
	// offset into January and time.Date normalises it into the real date.
	// Any month field in the same pattern is ignored.
	day := 0
	if v := f[pattern.DayOfYear]; v != "" {
		day = atoi(v)
		month = 0
	} else if v := f.first(pattern.DayOfMonth2, pattern.DayOfMonth); v != "" {
		day = atoi(v)
	}

	hour := reduceHour(f, loc)
	minute := atoi(f.first(pattern.Minute2, pattern.Minute))
	second := atoi(f.first(pattern.Second2, pattern.Second))
	millis := reduceMillis(f)

	zone := opts.location()
	if z := f.first(pattern.OffsetHHColonMM, pattern.OffsetHHMM, pattern.OffsetHH, pattern.OffsetH); z != "" {
		zone = zoneOf(z)
	}

	// Date first, then time of day, both normalised by time.Date.
	date := time.Date(year, time.Month(month+1), day, 0, 0, 0, 0, zone)
	t := time.Date(date.Year(), date.Month(), date.Day(),
		hour, minute, second, millis*int(time.Millisecond), zone)

	return t.In(opts.location())
}

func reduceYear(f *fields, nowYear int) int {
	if v := f.first(pattern.Year5, pattern.Year4, pattern.Year3); v != "" {
		return atoi(v)
	}
	if v := f[pattern.Year2]; v != "" {
		y := nowYear/100*100 + atoi(v)
		if y > nowYear {
			y -= 100
		}
		return y
	}
	if v := f[pattern.Year1]; v != "" {
		y := nowYear/10*10 + atoi(v)
		if y > nowYear {
			y -= 10
		}
		return y
	}
	return 0
}

// eraOf returns the captured era index, defaulting to 1 (AD).
func eraOf(f *fields, loc locale.Locale) int {
	if v := f[pattern.EraFull]; v != "" {
		return locale.Index(loc.Era.Full, v)
	}
	if v := f[pattern.EraAbbr]; v != "" {
		return locale.Index(loc.Era.Abbr, v)
	}
	return 1
}

// reduceHour prefers the 24-hour field. A 12-hour value without an am/pm
// capture yields 0.
func reduceHour(f *fields, loc locale.Locale) int {
	if v := f.first(pattern.Hour24p, pattern.Hour24); v != "" {
		return atoi(v)
	}
	h := f.first(pattern.Hour12p, pattern.Hour12)
	if h == "" {
		return 0
	}
	if t := f[pattern.AmPmFull]; t != "" {
		return atoi(h) + 12*locale.Index(loc.AmPm.Full, t)
	}
	if t := f[pattern.AmPmAbbr]; t != "" {
		return atoi(h) + 12*locale.Index(loc.AmPm.Abbr, t)
	}
	return 0
}

// reduceMillis scales a captured fraction back to milliseconds:
// "5" is 500ms, "05" is 50ms, "005" is 5ms.
func reduceMillis(f *fields) int {
	v := f.first(
		pattern.Fraction3, pattern.Fraction2, pattern.Fraction1,
		pattern.OptFraction3, pattern.OptFraction2, pattern.OptFraction1,
	)
	v = strings.TrimPrefix(v, ".")
	if v == "" {
		return 0
	}
	ms := atoi(v)
	for n := len(v); n < 3; n++ {
		ms *= 10
	}
	return ms
}

// zoneOf turns "Z", "+9", "-05", "+0930" or "+09:30" into a fixed zone.
func zoneOf(z string) *time.Location {
	if z == "Z" {
		return time.UTC
	}
	sign := 1
	if z[0] == '-' {
		sign = -1
	}
	digits := strings.ReplaceAll(z[1:], ":", "")
	hours, minutes := digits, ""
	if len(digits) > 2 {
		hours, minutes = digits[:len(digits)-2], digits[len(digits)-2:]
	}
	offset := sign * (atoi(hours)*60 + atoi(minutes))
	return time.FixedZone("", offset*60)
}

// atoi parses recogniser output, which is always ASCII digits or empty.
func atoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
