package pattern

import "strconv"

// Symbol is a field code of the pattern grammar.
type Symbol uint8

// Field symbols, grouped by leading character.
const (
	Invalid Symbol = iota

	DayOfMonth  // d
	DayOfMonth2 // dd
	DayNameAbbr // ddd
	DayNameFull // dddd

	Fraction1 // f
	Fraction2 // ff
	Fraction3 // fff

	// OptFraction1..3 render nothing when the truncated value is zero.
	OptFraction1 // F
	OptFraction2 // FF
	OptFraction3 // FFF

	EraAbbr // g
	EraFull // gg

	Hour12  // h
	Hour12p // hh
	Hour24  // H
	Hour24p // HH

	DayOfYear // j
	ZoneMode  // K

	Minute  // m
	Minute2 // mm

	Month         // M
	Month2        // MM
	MonthNameAbbr // MMM
	MonthNameFull // MMMM

	Second  // s
	Second2 // ss

	AmPmAbbr // t
	AmPmFull // tt

	Year1 // y
	Year2 // yy
	Year3 // yyy
	Year4 // yyyy
	Year5 // yyyyy

	OffsetH         // z
	OffsetHH        // zz
	OffsetHHMM      // zzz
	OffsetHHColonMM // zzzz

	symbolCount
)

// NumSymbols is the size of a table indexed by Symbol.
const NumSymbols = int(symbolCount)

var codes = [symbolCount]string{
	Invalid:         "",
	DayOfMonth:      "d",
	DayOfMonth2:     "dd",
	DayNameAbbr:     "ddd",
	DayNameFull:     "dddd",
	Fraction1:       "f",
	Fraction2:       "ff",
	Fraction3:       "fff",
	OptFraction1:    "F",
	OptFraction2:    "FF",
	OptFraction3:    "FFF",
	EraAbbr:         "g",
	EraFull:         "gg",
	Hour12:          "h",
	Hour12p:         "hh",
	Hour24:          "H",
	Hour24p:         "HH",
	DayOfYear:       "j",
	ZoneMode:        "K",
	Minute:          "m",
	Minute2:         "mm",
	Month:           "M",
	Month2:          "MM",
	MonthNameAbbr:   "MMM",
	MonthNameFull:   "MMMM",
	Second:          "s",
	Second2:         "ss",
	AmPmAbbr:        "t",
	AmPmFull:        "tt",
	Year1:           "y",
	Year2:           "yy",
	Year3:           "yyy",
	Year4:           "yyyy",
	Year5:           "yyyyy",
	OffsetH:         "z",
	OffsetHH:        "zz",
	OffsetHHMM:      "zzz",
	OffsetHHColonMM: "zzzz",
}

// runs maps a field-leading character to its symbols, indexed by run length - 1.
var runs = map[byte][]Symbol{
	'd': {DayOfMonth, DayOfMonth2, DayNameAbbr, DayNameFull},
	'f': {Fraction1, Fraction2, Fraction3},
	'F': {OptFraction1, OptFraction2, OptFraction3},
	'g': {EraAbbr, EraFull},
	'h': {Hour12, Hour12p},
	'H': {Hour24, Hour24p},
	'j': {DayOfYear},
	'K': {ZoneMode},
	'm': {Minute, Minute2},
	'M': {Month, Month2, MonthNameAbbr, MonthNameFull},
	's': {Second, Second2},
	't': {AmPmAbbr, AmPmFull},
	'y': {Year1, Year2, Year3, Year4, Year5},
	'z': {OffsetH, OffsetHH, OffsetHHMM, OffsetHHColonMM},
}

// IsFieldChar reports whether c starts a field outside quoted text.
func IsFieldChar(c byte) bool {
	_, ok := runs[c]
	return ok
}

// MaxRun returns the longest run of c that still forms a single symbol, or 0.
func MaxRun(c byte) int {
	return len(runs[c])
}

// symbolFor returns the symbol formed by n repetitions of c.
func symbolFor(c byte, n int) Symbol {
	set := runs[c]
	if n < 1 || n > len(set) {
		return Invalid
	}
	return set[n-1]
}

// Lookup resolves a field code such as "MMM" to its symbol.
func Lookup(code string) (Symbol, bool) {
	if code == "" {
		return Invalid, false
	}
	for i := 1; i < len(code); i++ {
		if code[i] != code[0] {
			return Invalid, false
		}
	}
	s := symbolFor(code[0], len(code))
	return s, s != Invalid
}

// Code returns the pattern code of s.
func (s Symbol) Code() string {
	if s < symbolCount {
		return codes[s]
	}
	return ""
}

func (s Symbol) String() string {
	if s == Invalid || s >= symbolCount {
		return "Symbol(" + strconv.Itoa(int(s)) + ")"
	}
	return codes[s]
}

// IsName reports whether s is matched against a locale list on parse.
func (s Symbol) IsName() bool {
	switch s {
	case DayNameAbbr, DayNameFull, EraAbbr, EraFull,
		MonthNameAbbr, MonthNameFull, AmPmAbbr, AmPmFull:
		return true
	}
	return false
}

// IsOptional reports whether s may legitimately render and parse as empty text.
func (s Symbol) IsOptional() bool {
	return s == OptFraction1 || s == OptFraction2 || s == OptFraction3
}
