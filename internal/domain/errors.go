package domain

import "errors"

var (
	// ErrMalformedInput signals text that does not match a pattern in strict mode.
	ErrMalformedInput = errors.New("malformed input")
	// ErrUnknownLocale signals a locale missing from the registry.
	ErrUnknownLocale = errors.New("unknown locale")
	// ErrInvalidLocale signals a locale table with missing or mis-sized name lists.
	ErrInvalidLocale = errors.New("invalid locale")
	// ErrPatternNotFound signals a missing named pattern.
	ErrPatternNotFound = errors.New("pattern not found")
	// ErrInvalidPattern signals a pattern rejected for storage.
	ErrInvalidPattern = errors.New("invalid pattern")
	// ErrInvalidPatternName signals a malformed pattern name.
	ErrInvalidPatternName = errors.New("invalid pattern name")
	// ErrBuiltinPattern signals an attempt to overwrite or delete a predefined pattern.
	ErrBuiltinPattern = errors.New("builtin pattern is read-only")
	// ErrBuiltinLocale signals an attempt to replace or remove the default locale.
	ErrBuiltinLocale = errors.New("builtin locale is read-only")
)
