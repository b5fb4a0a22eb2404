// Package preset models user-defined named patterns.
package preset

import (
	"fmt"
	"regexp"
	"time"

	"github.com/kailas-cloud/dateformat/internal/domain"
	"github.com/kailas-cloud/dateformat/internal/domain/pattern"
)

var nameRegex = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)

const (
	maxNameLen        = 64
	maxPatternLen     = 256
	maxDescriptionLen = 512
)

// Preset is a stored pattern with its default rendering options (immutable value object).
type Preset struct {
	name        string
	pattern     string
	description string
	utc         bool
	locale      string
	createdAt   int64
	updatedAt   int64
}

// ValidateName checks a preset name: ^[a-zA-Z0-9_.-]+$, 1-64 chars.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: name is required", domain.ErrInvalidPatternName)
	}
	if len(name) > maxNameLen {
		return fmt.Errorf("%w: name too long (max %d)", domain.ErrInvalidPatternName, maxNameLen)
	}
	if !nameRegex.MatchString(name) {
		return fmt.Errorf("%w: name must be alphanumeric with dots, underscores and hyphens", domain.ErrInvalidPatternName)
	}
	return nil
}

// New validates and creates a Preset. The pattern must contain at least one
// field; a pattern of pure literal text would render the same string for
// every time.
func New(name, p, description string, utc bool, locale string) (Preset, error) {
	if err := ValidateName(name); err != nil {
		return Preset{}, err
	}
	if p == "" {
		return Preset{}, fmt.Errorf("%w: pattern is required", domain.ErrInvalidPattern)
	}
	if len(p) > maxPatternLen {
		return Preset{}, fmt.Errorf("%w: pattern too long (max %d)", domain.ErrInvalidPattern, maxPatternLen)
	}
	if len(pattern.Compile(p).Fields()) == 0 {
		return Preset{}, fmt.Errorf("%w: pattern %q has no fields", domain.ErrInvalidPattern, p)
	}
	if len(description) > maxDescriptionLen {
		return Preset{}, fmt.Errorf("%w: description too long (max %d)", domain.ErrInvalidPattern, maxDescriptionLen)
	}

	now := time.Now().UnixMilli()
	return Preset{
		name:        name,
		pattern:     p,
		description: description,
		utc:         utc,
		locale:      locale,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// Reconstruct creates a Preset without validation (storage hydration).
func Reconstruct(name, p, description string, utc bool, locale string, createdAt, updatedAt int64) Preset {
	return Preset{
		name:        name,
		pattern:     p,
		description: description,
		utc:         utc,
		locale:      locale,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// Name returns the preset name.
func (p Preset) Name() string { return p.name }

// Pattern returns the pattern source.
func (p Preset) Pattern() string { return p.pattern }

// Description returns the free-form description.
func (p Preset) Description() string { return p.description }

// UTC reports whether the preset renders in UTC by default.
func (p Preset) UTC() bool { return p.utc }

// Locale returns the default locale name; empty means the server default.
func (p Preset) Locale() string { return p.locale }

// CreatedAt returns the creation timestamp (unix millis).
func (p Preset) CreatedAt() int64 { return p.createdAt }

// UpdatedAt returns the last update timestamp (unix millis).
func (p Preset) UpdatedAt() int64 { return p.updatedAt }

// Replacing returns p carrying the creation time of prev, for overwrites.
func (p Preset) Replacing(prev Preset) Preset {
	p.createdAt = prev.createdAt
	return p
}
