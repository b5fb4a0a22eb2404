// Package engine renders and parses date/time values over compiled patterns.
//
// Format and Parse walk the same token sequence, so every field a pattern can
// render is also recognised on the way back.
package engine

import (
	"strconv"
	"strings"
	"time"

	"github.com/kailas-cloud/dateformat/internal/domain/locale"
	"github.com/kailas-cloud/dateformat/internal/domain/pattern"
)

// calendar holds the components of one instant as seen by a pattern.
type calendar struct {
	year      int
	month     int // 0-based
	day       int
	weekday   int // Sunday = 0
	yearDay   int
	hour      int
	minute    int
	second    int
	millis    int
	offsetMin int // east of UTC
	utc       bool
}

func calendarOf(t time.Time, utc bool) calendar {
	if utc {
		t = t.UTC()
	}
	_, offset := t.Zone()
	if utc {
		offset = 0
	}
	return calendar{
		year:      t.Year(),
		month:     int(t.Month()) - 1,
		day:       t.Day(),
		weekday:   int(t.Weekday()),
		yearDay:   t.YearDay(),
		hour:      t.Hour(),
		minute:    t.Minute(),
		second:    t.Second(),
		millis:    t.Nanosecond() / int(time.Millisecond),
		offsetMin: offset / 60,
		utc:       utc,
	}
}

// Format renders t through seq. In UTC mode t is converted to UTC and the
// offset fields render as +00; otherwise t is rendered in its own location.
func Format(seq pattern.Sequence, loc locale.Locale, t time.Time, utc bool) string {
	c := calendarOf(t, utc)

	var b strings.Builder
	for i := 0; i < seq.Len(); i++ {
		tok := seq.At(i)
		if tok.Kind == pattern.Literal {
			b.WriteString(tok.Text)
			continue
		}
		b.WriteString(render(tok.Symbol, &c, loc))
	}
	return b.String()
}

//nolint:gocyclo // one case per grammar symbol
func render(sym pattern.Symbol, c *calendar, loc locale.Locale) string {
	switch sym {
	case pattern.DayOfMonth:
		return strconv.Itoa(c.day)
	case pattern.DayOfMonth2:
		return pad(c.day, 2)
	case pattern.DayNameAbbr:
		return loc.Day.Abbr[c.weekday]
	case pattern.DayNameFull:
		return loc.Day.Full[c.weekday]

	case pattern.Fraction1, pattern.Fraction2, pattern.Fraction3:
		return fraction(c.millis, fractionDigits(sym))
	case pattern.OptFraction1, pattern.OptFraction2, pattern.OptFraction3:
		f := fraction(c.millis, fractionDigits(sym))
		if strings.Trim(f, "0") == "" {
			return ""
		}
		return "." + f

	case pattern.EraAbbr:
		return loc.Era.Abbr[eraIndex(c.year)]
	case pattern.EraFull:
		return loc.Era.Full[eraIndex(c.year)]

	case pattern.Hour12:
		return strconv.Itoa(c.hour % 12)
	case pattern.Hour12p:
		return pad(c.hour%12, 2)
	case pattern.Hour24:
		return strconv.Itoa(c.hour)
	case pattern.Hour24p:
		return pad(c.hour, 2)

	case pattern.DayOfYear:
		return pad(c.yearDay, 3)
	case pattern.ZoneMode:
		if c.utc {
			return "UTC"
		}
		return "Local"

	case pattern.Minute:
		return strconv.Itoa(c.minute)
	case pattern.Minute2:
		return pad(c.minute, 2)

	case pattern.Month:
		return strconv.Itoa(c.month + 1)
	case pattern.Month2:
		return pad(c.month+1, 2)
	case pattern.MonthNameAbbr:
		return loc.Month.Abbr[c.month]
	case pattern.MonthNameFull:
		return loc.Month.Full[c.month]

	case pattern.Second:
		return strconv.Itoa(c.second)
	case pattern.Second2:
		return pad(c.second, 2)

	case pattern.AmPmAbbr:
		return loc.AmPm.Abbr[amPmIndex(c.hour)]
	case pattern.AmPmFull:
		return loc.AmPm.Full[amPmIndex(c.hour)]

	case pattern.Year1, pattern.Year2, pattern.Year3, pattern.Year4, pattern.Year5:
		return year(c.year, sym)

	case pattern.OffsetH, pattern.OffsetHH, pattern.OffsetHHMM, pattern.OffsetHHColonMM:
		return offset(c.offsetMin, sym)
	}
	return ""
}

func eraIndex(year int) int {
	if year < 0 {
		return 0
	}
	return 1
}

func amPmIndex(hour int) int {
	if hour < 12 {
		return 0
	}
	return 1
}

func fractionDigits(sym pattern.Symbol) int {
	switch sym {
	case pattern.Fraction1, pattern.OptFraction1:
		return 1
	case pattern.Fraction2, pattern.OptFraction2:
		return 2
	}
	return 3
}

// fraction truncates milliseconds to the leading n of their three digits.
func fraction(millis, n int) string {
	return pad(millis, 3)[:n]
}

// year trims a five-digit zero-padded buffer from the right.
// The sign is carried by the era field.
func year(y int, sym pattern.Symbol) string {
	abs := y
	if abs < 0 {
		abs = -abs
	}
	s := pad(abs, 5)
	switch sym {
	case pattern.Year1:
		return s[len(s)-1:]
	case pattern.Year2:
		return s[len(s)-2:]
	case pattern.Year3:
		if y < 1000 {
			return s[len(s)-3:]
		}
		return strconv.Itoa(y)
	case pattern.Year4:
		return s[len(s)-4:]
	}
	return s
}

func offset(minutes int, sym pattern.Symbol) string {
	sign := "+"
	if minutes < 0 {
		sign = "-"
		minutes = -minutes
	}
	h, m := minutes/60, minutes%60
	switch sym {
	case pattern.OffsetH:
		return sign + strconv.Itoa(h)
	case pattern.OffsetHH:
		return sign + pad(h, 2)
	case pattern.OffsetHHMM:
		return sign + pad(h, 2) + pad(m, 2)
	}
	return sign + pad(h, 2) + ":" + pad(m, 2)
}

// pad left-pads the decimal form of v with zeros to width.
func pad(v, width int) string {
	s := strconv.Itoa(v)
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}
