package sdk

import "github.com/kailas-cloud/dateformat/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrMalformedInput     = domain.ErrMalformedInput
	ErrUnknownLocale      = domain.ErrUnknownLocale
	ErrInvalidLocale      = domain.ErrInvalidLocale
	ErrPatternNotFound    = domain.ErrPatternNotFound
	ErrInvalidPattern     = domain.ErrInvalidPattern
	ErrInvalidPatternName = domain.ErrInvalidPatternName
	ErrBuiltinPattern     = domain.ErrBuiltinPattern
	ErrBuiltinLocale      = domain.ErrBuiltinLocale
)
