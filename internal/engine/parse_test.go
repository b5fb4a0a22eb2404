package engine

import (
	"errors"
	"testing"
	"time"

	"github.com/kailas-cloud/dateformat/internal/domain"
	"github.com/kailas-cloud/dateformat/internal/domain/locale"
	"github.com/kailas-cloud/dateformat/internal/domain/pattern"
)

var ref2024 = time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)

func parse(t *testing.T, p, input string, opts ParseOptions) time.Time {
	t.Helper()
	if opts.Now.IsZero() {
		opts.Now = ref2024
	}
	got, err := Parse(pattern.Compile(p), locale.English, input, opts)
	if err != nil {
		t.Fatalf("Parse(%q, %q) unexpected error: %v", p, input, err)
	}
	return got
}

func TestParse_RoundTrip(t *testing.T) {
	patterns := []string{
		"yyyy-MM-ddTHH:mm:sszzz",
		"ddd, dd MMM yyyy HH:mm:ss zzz",
		"dddd, dd-MMM-yy HH:mm:ss zzz",
		"ddd MMM d HH:mm:ss yyyy",
		"yyyy-MM-dd HH:mm:ss",
		"yyyy-MM-ddTHH:mm:ss.fffzzzz",
		"dd MMMM yyyy hh:mm:ss tt FFF",
		"yyyy'_'j HH:mm:ss",
	}
	values := []time.Time{
		time.Date(2021, time.March, 14, 15, 9, 26, 0, time.UTC),
		time.Date(2003, time.December, 31, 23, 59, 59, 0, time.UTC),
		time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC),
	}
	zones := []*time.Location{time.UTC, ist, brt}

	for _, p := range patterns {
		seq := pattern.Compile(p)
		for _, v := range values {
			for _, utc := range []bool{true, false} {
				for _, zone := range zones {
					opts := ParseOptions{UTC: utc, Location: zone, Now: ref2024}
					in := v.In(opts.location())
					text := Format(seq, locale.English, in, utc)
					got, err := Parse(seq, locale.English, text, opts)
					if err != nil {
						t.Fatalf("Parse(%q, %q): %v", p, text, err)
					}
					if !got.Equal(v) {
						t.Errorf("round trip %q utc=%v zone=%s: %q parsed to %v, want %v",
							p, utc, zone, text, got, v)
					}
				}
			}
		}
	}
}

func TestParse_TwoDigitYearWindow(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"99", 1999},
		{"24", 2024},
		{"25", 1925},
		{"00", 2000},
	}
	for _, tc := range tests {
		got := parse(t, "yy-MM-dd", tc.in+"-06-15", ParseOptions{UTC: true})
		if got.Year() != tc.want {
			t.Errorf("yy %q -> %d, want %d", tc.in, got.Year(), tc.want)
		}
	}
}

func TestParse_OneDigitYearWindow(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"3", 2023},
		{"4", 2024},
		{"5", 2015},
	}
	for _, tc := range tests {
		got := parse(t, "y-MM-dd", tc.in+"-06-15", ParseOptions{UTC: true})
		if got.Year() != tc.want {
			t.Errorf("y %q -> %d, want %d", tc.in, got.Year(), tc.want)
		}
	}
}

func TestParse_ZuluSuffix(t *testing.T) {
	got := parse(t, "yyyy-MM-ddTHH:mm:sszzz", "2024-01-01T00:00:00Z", ParseOptions{UTC: true})
	want := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) || got.Hour() != 0 || got.Location() != time.UTC {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestParse_OffsetWithMinutes(t *testing.T) {
	tests := []struct {
		pattern, in string
	}{
		{"yyyy-MM-dd HH:mm zzzz", "2024-01-01 12:00 +05:30"},
		{"yyyy-MM-dd HH:mm zzz", "2024-01-01 12:00 +0530"},
	}
	want := time.Date(2024, 1, 1, 6, 30, 0, 0, time.UTC)
	for _, tc := range tests {
		got := parse(t, tc.pattern, tc.in, ParseOptions{UTC: true})
		if !got.Equal(want) {
			t.Errorf("Parse(%q) = %v, want %v", tc.in, got, want)
		}
	}

	got := parse(t, "HH zz", "12 -03", ParseOptions{UTC: true})
	if got.Hour() != 15 {
		t.Errorf("-03 offset: hour = %d, want 15", got.Hour())
	}
}

func TestParse_LocalInterpretation(t *testing.T) {
	got := parse(t, "yyyy-MM-dd HH:mm", "2024-01-01 12:00", ParseOptions{Location: ist})
	want := time.Date(2024, 1, 1, 6, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got.Location() != ist {
		t.Errorf("location = %v, want %v", got.Location(), ist)
	}
}

func TestParse_Hour12(t *testing.T) {
	tests := []struct {
		pattern, in string
		want        int
	}{
		{"hh t", "03 PM", 15},
		{"hh t", "03 AM", 3},
		{"h tt", "0 P.M.", 12},
		{"h:mm tt", "11:30 A.M.", 11},
		// no indicator: the 12-hour value is dropped
		{"hh", "03", 0},
		// 24-hour field wins over 12-hour
		{"HH hh t", "18 03 AM", 18},
	}
	for _, tc := range tests {
		got := parse(t, tc.pattern, tc.in, ParseOptions{UTC: true})
		if got.Hour() != tc.want {
			t.Errorf("Parse(%q, %q) hour = %d, want %d", tc.pattern, tc.in, got.Hour(), tc.want)
		}
	}
}

func TestParse_MonthPrecedence(t *testing.T) {
	got := parse(t, "MMMM MMM MM yyyy-dd", "March Jan 07 2024-10", ParseOptions{UTC: true})
	if got.Month() != time.March {
		t.Errorf("month = %v, want March", got.Month())
	}
	got = parse(t, "MMM MM yyyy-dd", "Jan 07 2024-10", ParseOptions{UTC: true})
	if got.Month() != time.January {
		t.Errorf("month = %v, want January", got.Month())
	}
}

func TestParse_DayOfYear(t *testing.T) {
	got := parse(t, "yyyy'_'j", "2024_060", ParseOptions{UTC: true})
	want := time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}

	// month fields are ignored once a day of year is present
	got = parse(t, "yyyy-MM j", "2024-07 005", ParseOptions{UTC: true})
	want = time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("with month field: got %v, want %v", got, want)
	}
}

func TestParse_Era(t *testing.T) {
	got := parse(t, "yyyy-MM-dd g", "0044-03-15 BC", ParseOptions{UTC: true})
	if got.Year() != -44 {
		t.Errorf("year = %d, want -44", got.Year())
	}
	got = parse(t, "yyyy-MM-dd gg", "0044-03-15 A.D.", ParseOptions{UTC: true})
	if got.Year() != 44 {
		t.Errorf("year = %d, want 44", got.Year())
	}
}

func TestParse_Fractions(t *testing.T) {
	tests := []struct {
		pattern, in string
		want        int
	}{
		{"ss.fff", "07.120", 120},
		{"ss.ff", "07.12", 120},
		{"ss.f", "07.5", 500},
		{"ssFFF", "07.005", 5},
		{"ssFFF", "07", 0},
		{"ssFF", "07.25", 250},
		{"ssF", "07.9", 900},
	}
	for _, tc := range tests {
		got := parse(t, tc.pattern, tc.in, ParseOptions{UTC: true})
		if ms := got.Nanosecond() / int(time.Millisecond); ms != tc.want {
			t.Errorf("Parse(%q, %q) ms = %d, want %d", tc.pattern, tc.in, ms, tc.want)
		}
	}
}

func TestParse_MissingFieldsDefault(t *testing.T) {
	// year 2024, month index 0, day 0 normalise to 2023-12-31
	got := parse(t, "yyyy", "2024", ParseOptions{UTC: true})
	want := time.Date(2023, time.December, 31, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestParse_LenientMismatch(t *testing.T) {
	got, err := Parse(pattern.Compile("yyyy-MM-dd"), locale.English, "2024-xx-01",
		ParseOptions{UTC: true, Now: ref2024})
	if err != nil {
		t.Fatalf("lenient parse returned error: %v", err)
	}
	// MM fails without advancing, so dd is tried against "x-01" and fails too.
	want := time.Date(2023, time.December, 31, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestParse_LenientStopsAtEndOfInput(t *testing.T) {
	got := parse(t, "yyyy-MM-dd HH:mm", "2024-05-06", ParseOptions{UTC: true})
	want := time.Date(2024, time.May, 6, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestParse_Strict(t *testing.T) {
	tests := []struct {
		name, pattern, in string
		offset            int
	}{
		{"literal mismatch", "yyyy-MM-dd", "2024/05/06", 4},
		{"field mismatch", "yyyy-MM-dd", "2024-xx-06", 5},
		{"trailing text", "yyyy-MM-dd", "2024-05-06 junk", 10},
		{"short input", "yyyy-MM-dd", "2024-05", 7},
		{"unknown name", "ddd yyyy", "Foo 2024", 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(pattern.Compile(tc.pattern), locale.English, tc.in,
				ParseOptions{UTC: true, Mode: Strict, Now: ref2024})
			if !errors.Is(err, domain.ErrMalformedInput) {
				t.Fatalf("expected ErrMalformedInput, got %v", err)
			}
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("expected *ParseError, got %T", err)
			}
			if pe.Offset != tc.offset {
				t.Errorf("offset = %d, want %d", pe.Offset, tc.offset)
			}
		})
	}
}

func TestParse_StrictAcceptsWellFormed(t *testing.T) {
	got, err := Parse(pattern.Compile("yyyy-MM-dd HH:mm:ssFFF"), locale.English, "2024-05-06 07:08:09",
		ParseOptions{UTC: true, Mode: Strict, Now: ref2024})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2024, time.May, 6, 7, 8, 9, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestRecognize_NamesFirstPrefixWins(t *testing.T) {
	loc := locale.English
	loc.Month = locale.Names{
		Abbr: append([]string{"Ma"}, loc.Month.Abbr[1:]...),
		Full: loc.Month.Full,
	}
	m, ok := recognize(pattern.MonthNameAbbr, loc, "Mar 1")
	if !ok || m != "Ma" {
		t.Errorf("recognize = (%q, %v), want (\"Ma\", true)", m, ok)
	}
}

func TestZoneOf(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"Z", 0},
		{"+9", 9 * 3600},
		{"-05", -5 * 3600},
		{"+0930", 9*3600 + 30*60},
		{"-03:30", -(3*3600 + 30*60)},
	}
	ref := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for _, tc := range tests {
		_, off := ref.In(zoneOf(tc.in)).Zone()
		if off != tc.want {
			t.Errorf("zoneOf(%q) offset = %d, want %d", tc.in, off, tc.want)
		}
	}
}
