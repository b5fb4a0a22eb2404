package dateformat

import (
	"github.com/kailas-cloud/dateformat/internal/domain/locale"
	"github.com/kailas-cloud/dateformat/internal/domain/pattern"
	"github.com/kailas-cloud/dateformat/internal/engine"
)

type (
	// Locale is a name table for eras, months, weekdays and am/pm.
	Locale = locale.Locale
	// Names pairs abbreviated and full names.
	Names = locale.Names
	// Registry maps locale names to tables.
	Registry = locale.Registry
	// Token is one element of a compiled pattern.
	Token = pattern.Token
	// Symbol identifies a field kind such as "yyyy" or "MMM".
	Symbol = pattern.Symbol
	// ParseError reports where a strict parse stopped.
	ParseError = engine.ParseError
	// Mode selects lenient or strict parsing.
	Mode = engine.Mode
)

const (
	Lenient = engine.Lenient
	Strict  = engine.Strict
)

// English is the built-in default locale.
var English = locale.English

// NewRegistry returns a registry holding only English.
func NewRegistry() *Registry { return locale.NewRegistry() }

// DefaultRegistry returns the process-wide registry used when no
// WithRegistry option is given.
func DefaultRegistry() *Registry { return locale.Default() }
