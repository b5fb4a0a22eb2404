// Package dateformat renders and parses times with compact, locale-aware
// patterns such as "yyyy-MM-ddTHH:mm:sszzz".
//
// A pattern is compiled once by New. The resulting *Format is immutable and
// safe for concurrent use:
//
//	f := dateformat.New(dateformat.RFC822, dateformat.WithUTC())
//	s := f.Format(time.Now())
//	t, err := f.Parse(s)
package dateformat

import (
	"time"

	"github.com/kailas-cloud/dateformat/internal/domain/locale"
	"github.com/kailas-cloud/dateformat/internal/domain/pattern"
	"github.com/kailas-cloud/dateformat/internal/engine"
)

// Format is a compiled pattern with its rendering options.
type Format struct {
	pattern  string
	seq      pattern.Sequence
	utc      bool
	locale   string
	registry *Registry
	location *time.Location
	mode     Mode
	now      func() time.Time
}

// New compiles p. Compilation never fails: characters that are not field
// codes are literal text. An empty pattern means DateTime.
func New(p string, opts ...Option) *Format {
	if p == "" {
		p = DateTime
	}
	f := &Format{
		pattern:  p,
		seq:      pattern.Compile(p),
		locale:   locale.DefaultName,
		registry: locale.Default(),
		location: time.Local,
		now:      time.Now,
	}
	for _, o := range opts {
		o.apply(f)
	}
	return f
}

// Format renders t. A zero t renders the current time.
func (f *Format) Format(t time.Time) string {
	if t.IsZero() {
		t = f.now()
	}
	if !f.utc {
		t = t.In(f.location)
	}
	return engine.Format(f.seq, f.table(), t, f.utc)
}

// Parse reads s back into a time. In the default lenient mode it never
// fails; fields that cannot be found default to zero. With WithStrict any
// mismatch returns a *ParseError wrapping ErrMalformedInput.
func (f *Format) Parse(s string) (time.Time, error) {
	return engine.Parse(f.seq, f.table(), s, engine.ParseOptions{
		UTC:      f.utc,
		Location: f.location,
		Mode:     f.mode,
		Now:      f.now(),
	})
}

// String returns the compiled form, e.g. "[DateFormat {yyyy}-{MM}]".
func (f *Format) String() string {
	return "[DateFormat " + f.seq.String() + "]"
}

// Pattern returns the source pattern.
func (f *Format) Pattern() string { return f.pattern }

// UTC reports whether the format works in UTC.
func (f *Format) UTC() bool { return f.utc }

// Locale returns the selected locale name.
func (f *Format) Locale() string { return f.locale }

// Mode returns the parse mode.
func (f *Format) Mode() Mode { return f.mode }

// Tokens returns a copy of the compiled token sequence.
func (f *Format) Tokens() []Token { return f.seq.Tokens() }

// InLocale returns a copy of f using the named locale. The compiled
// sequence is shared. It fails with ErrUnknownLocale when the registry has
// no table for name or its base language.
func (f *Format) InLocale(name string) (*Format, error) {
	l, err := f.registry.Lookup(name)
	if err != nil {
		return nil, err
	}
	cp := *f
	cp.locale = l.Name
	return &cp, nil
}

// table resolves the locale, falling back to the registry default.
func (f *Format) table() Locale {
	l, err := f.registry.Lookup(f.locale)
	if err != nil {
		l, _ = f.registry.Lookup("")
	}
	return l
}
