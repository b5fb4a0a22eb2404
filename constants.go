package dateformat

import "sort"

// Predefined patterns.
const (
	ISO8601 = "yyyy-MM-ddTHH:mm:sszzz"
	W3C     = ISO8601
	ATOM    = ISO8601
	JSON    = ISO8601

	RFC822  = "ddd, dd MMM yyyy HH:mm:ss zzz"
	RFC1123 = RFC822
	RFC2822 = RFC822
	RSS     = RFC822

	RFC850  = "dddd, dd-MMM-yy HH:mm:ss zzz"
	RFC1036 = RFC850
	COOKIE  = RFC850

	CTIME = "ddd MMM d HH:mm:ss yyyy"

	// DateTime is used when New is given an empty pattern.
	DateTime = "yyyy-MM-dd HH:mm:ss"
)

var named = map[string]string{
	"ISO8601":   ISO8601,
	"W3C":       W3C,
	"ATOM":      ATOM,
	"JSON":      JSON,
	"RFC822":    RFC822,
	"RFC1123":   RFC1123,
	"RFC2822":   RFC2822,
	"RSS":       RSS,
	"RFC850":    RFC850,
	"RFC1036":   RFC1036,
	"COOKIE":    COOKIE,
	"CTIME":     CTIME,
	"DATE_TIME": DateTime,
}

// NamedPattern is a predefined pattern and the name it is published under.
type NamedPattern struct {
	Name    string `json:"name"`
	Pattern string `json:"pattern"`
}

// NamedPatterns returns the predefined patterns sorted by name.
func NamedPatterns() []NamedPattern {
	out := make([]NamedPattern, 0, len(named))
	for name, p := range named {
		out = append(out, NamedPattern{Name: name, Pattern: p})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// LookupNamed returns the predefined pattern published under name.
func LookupNamed(name string) (string, bool) {
	p, ok := named[name]
	return p, ok
}
