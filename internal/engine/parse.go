package engine

import (
	"fmt"
	"strings"
	"time"

	"github.com/kailas-cloud/dateformat/internal/domain"
	"github.com/kailas-cloud/dateformat/internal/domain/locale"
	"github.com/kailas-cloud/dateformat/internal/domain/pattern"
)

// Mode selects how Parse treats input that does not fit the pattern.
type Mode uint8

const (
	// Lenient never fails: a mismatched literal is skipped by its length and
	// a field without a match is left unset without advancing the cursor.
	Lenient Mode = iota
	// Strict fails with ErrMalformedInput on the first mismatch or on
	// unconsumed trailing input.
	Strict
)

func (m Mode) String() string {
	if m == Strict {
		return "strict"
	}
	return "lenient"
}

// ParseOptions controls the reduction of extracted fields into a time.
type ParseOptions struct {
	// UTC interprets zone-less input as UTC and returns UTC times.
	UTC bool
	// Location interprets zone-less input when UTC is false. Nil means time.Local.
	Location *time.Location
	Mode     Mode
	// Now anchors two- and one-digit years. Zero means time.Now().
	Now time.Time
}

func (o ParseOptions) location() *time.Location {
	if o.UTC {
		return time.UTC
	}
	if o.Location == nil {
		return time.Local
	}
	return o.Location
}

// ParseError reports where strict parsing stopped.
type ParseError struct {
	Offset int
	Token  pattern.Token
	Reason string
}

func (e *ParseError) Error() string {
	if e.Token.Kind == pattern.Field || e.Token.Text != "" {
		return fmt.Sprintf("%s at offset %d (token %s): %s", domain.ErrMalformedInput, e.Offset, e.Token, e.Reason)
	}
	return fmt.Sprintf("%s at offset %d: %s", domain.ErrMalformedInput, e.Offset, e.Reason)
}

func (e *ParseError) Unwrap() error { return domain.ErrMalformedInput }

// fields holds the raw text captured per symbol; "" means absent.
type fields [pattern.NumSymbols]string

// first returns the first non-empty capture among syms.
func (f *fields) first(syms ...pattern.Symbol) string {
	for _, s := range syms {
		if v := f[s]; v != "" {
			return v
		}
	}
	return ""
}

// Parse extracts fields from input along seq and reduces them into a time.
// In Lenient mode the error is always nil.
func Parse(seq pattern.Sequence, loc locale.Locale, input string, opts ParseOptions) (time.Time, error) {
	f, err := extract(seq, loc, input, opts.Mode)
	if err != nil {
		return time.Time{}, err
	}
	return reduce(&f, loc, opts), nil
}

func extract(seq pattern.Sequence, loc locale.Locale, input string, mode Mode) (fields, error) {
	var f fields
	pos := 0

	for i := 0; i < seq.Len(); i++ {
		if mode == Lenient && pos >= len(input) {
			break
		}
		tok := seq.At(i)
		rest := ""
		if pos < len(input) {
			rest = input[pos:]
		}

		if tok.Kind == pattern.Literal {
			if mode == Strict && !strings.HasPrefix(rest, tok.Text) {
				return f, &ParseError{Offset: pos, Token: tok, Reason: "literal text does not match"}
			}
			pos += len(tok.Text)
			continue
		}

		m, ok := recognize(tok.Symbol, loc, rest)
		if !ok {
			if mode == Strict {
				return f, &ParseError{Offset: pos, Token: tok, Reason: "no match for field"}
			}
			continue
		}
		f[tok.Symbol] = m
		pos += len(m)
	}

	if mode == Strict && pos < len(input) {
		return f, &ParseError{Offset: pos, Reason: fmt.Sprintf("unexpected trailing text %q", input[pos:])}
	}
	return f, nil
}
