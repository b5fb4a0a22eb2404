package sdk

import (
	"time"

	"github.com/kailas-cloud/dateformat"
	dompreset "github.com/kailas-cloud/dateformat/internal/domain/preset"
	datetimeuc "github.com/kailas-cloud/dateformat/internal/usecase/datetime"
	presetuc "github.com/kailas-cloud/dateformat/internal/usecase/preset"
)

// Locale is a name table for eras, months, weekdays and am/pm.
type Locale = dateformat.Locale

// Names pairs abbreviated and full names.
type Names = dateformat.Names

// ParseError reports where a strict parse stopped.
type ParseError = dateformat.ParseError

// Request selects how a time is rendered or read. Exactly one of Pattern and
// Name must be set. Nil UTC and Strict fall back to the preset, then the
// client defaults.
type Request struct {
	Pattern string
	Name    string
	Locale  string
	UTC     *bool
	Strict  *bool
}

// Result is a rendered time and the pattern that produced it.
type Result struct {
	Text    string
	Pattern string
}

// Pattern is a named pattern in the catalogue.
type Pattern struct {
	Name        string
	Pattern     string
	Description string
	UTC         bool
	Locale      string
	Builtin     bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (r Request) toInternal() datetimeuc.Request {
	return datetimeuc.Request{
		Pattern: r.Pattern,
		Name:    r.Name,
		UTC:     r.UTC,
		Locale:  r.Locale,
		Strict:  r.Strict,
	}
}

func (p Pattern) toDefinition() presetuc.Definition {
	return presetuc.Definition{
		Name:        p.Name,
		Pattern:     p.Pattern,
		Description: p.Description,
		UTC:         p.UTC,
		Locale:      p.Locale,
	}
}

func fromInternalPreset(p dompreset.Preset, builtin bool) Pattern {
	out := Pattern{
		Name:        p.Name(),
		Pattern:     p.Pattern(),
		Description: p.Description(),
		UTC:         p.UTC(),
		Locale:      p.Locale(),
		Builtin:     builtin,
	}
	if p.CreatedAt() > 0 {
		out.CreatedAt = time.UnixMilli(p.CreatedAt())
	}
	if p.UpdatedAt() > 0 {
		out.UpdatedAt = time.UnixMilli(p.UpdatedAt())
	}
	return out
}

// Bool returns a pointer to v, for Request.UTC and Request.Strict.
func Bool(v bool) *bool { return &v }
