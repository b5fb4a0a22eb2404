package dateformat

import "time"

// Option configures a Format.
type Option interface {
	apply(*Format)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*Format)

func (f optionFunc) apply(c *Format) { f(c) }

// WithUTC renders and parses in UTC regardless of the input's location.
func WithUTC() Option {
	return optionFunc(func(f *Format) {
		f.utc = true
	})
}

// WithLocale selects the name table. Unknown names fall back to the
// registry default when formatting or parsing; use InLocale to get an error.
func WithLocale(name string) Option {
	return optionFunc(func(f *Format) {
		f.locale = name
	})
}

// WithRegistry resolves locales from r instead of DefaultRegistry().
func WithRegistry(r *Registry) Option {
	return optionFunc(func(f *Format) {
		if r != nil {
			f.registry = r
		}
	})
}

// WithLocation sets the zone used in local mode. Defaults to time.Local.
func WithLocation(loc *time.Location) Option {
	return optionFunc(func(f *Format) {
		if loc != nil {
			f.location = loc
		}
	})
}

// WithStrict makes Parse fail with ErrMalformedInput instead of skipping
// text that does not fit the pattern.
func WithStrict() Option {
	return optionFunc(func(f *Format) {
		f.mode = Strict
	})
}

// WithClock replaces time.Now. The clock supplies the value formatted for a
// zero time and anchors two- and one-digit years when parsing.
func WithClock(now func() time.Time) Option {
	return optionFunc(func(f *Format) {
		if now != nil {
			f.now = now
		}
	})
}
