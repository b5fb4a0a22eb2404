// Package preset manages the catalogue of named patterns: the predefined
// constants plus user presets kept in the store.
package preset

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/kailas-cloud/dateformat"
	"github.com/kailas-cloud/dateformat/internal/domain"
	dompreset "github.com/kailas-cloud/dateformat/internal/domain/preset"
	"github.com/kailas-cloud/dateformat/internal/logger"
)

// Definition is the input for creating or replacing a preset.
type Definition struct {
	Name        string
	Pattern     string
	Description string
	UTC         bool
	Locale      string
}

// Entry is a catalogue item.
type Entry struct {
	Preset  dompreset.Preset
	Builtin bool
}

// Service handles preset CRUD and name resolution.
type Service struct {
	repo    Repository
	locales LocaleLookup
}

// New creates a preset service.
func New(repo Repository, locales LocaleLookup) *Service {
	return &Service{repo: repo, locales: locales}
}

// Define validates and stores a preset. Predefined names are read-only.
// created reports whether the name was new.
func (s *Service) Define(ctx context.Context, d Definition) (p dompreset.Preset, created bool, err error) {
	if _, ok := dateformat.LookupNamed(d.Name); ok {
		return dompreset.Preset{}, false, fmt.Errorf("define pattern %q: %w", d.Name, domain.ErrBuiltinPattern)
	}
	if d.Locale != "" {
		if _, err := s.locales.Lookup(d.Locale); err != nil {
			return dompreset.Preset{}, false, fmt.Errorf("define pattern %q: %w", d.Name, err)
		}
	}

	p, err = dompreset.New(d.Name, d.Pattern, d.Description, d.UTC, d.Locale)
	if err != nil {
		return dompreset.Preset{}, false, fmt.Errorf("validate pattern: %w", err)
	}

	p, created, err = s.repo.Save(ctx, p)
	if err != nil {
		return dompreset.Preset{}, false, fmt.Errorf("save pattern: %w", err)
	}

	logger.FromContext(ctx).Info("pattern defined",
		zap.String("name", p.Name()),
		zap.String("pattern", p.Pattern()),
		zap.Bool("created", created),
	)
	return p, created, nil
}

// Resolve returns the preset published under name, predefined names first.
func (s *Service) Resolve(ctx context.Context, name string) (dompreset.Preset, error) {
	if p, ok := builtin(name); ok {
		return p, nil
	}
	if err := dompreset.ValidateName(name); err != nil {
		return dompreset.Preset{}, err
	}
	p, err := s.repo.Get(ctx, name)
	if err != nil {
		return dompreset.Preset{}, fmt.Errorf("get pattern %q: %w", name, err)
	}
	return p, nil
}

// List returns the predefined patterns followed by the stored presets.
func (s *Service) List(ctx context.Context) ([]Entry, error) {
	stored, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list patterns: %w", err)
	}

	named := dateformat.NamedPatterns()
	out := make([]Entry, 0, len(named)+len(stored))
	for _, np := range named {
		p, _ := builtin(np.Name)
		out = append(out, Entry{Preset: p, Builtin: true})
	}
	for _, p := range stored {
		out = append(out, Entry{Preset: p})
	}
	return out, nil
}

// Delete removes a stored preset. Predefined names are read-only.
func (s *Service) Delete(ctx context.Context, name string) error {
	if _, ok := dateformat.LookupNamed(name); ok {
		return fmt.Errorf("delete pattern %q: %w", name, domain.ErrBuiltinPattern)
	}
	if err := s.repo.Delete(ctx, name); err != nil {
		return fmt.Errorf("delete pattern %q: %w", name, err)
	}
	logger.FromContext(ctx).Info("pattern deleted", zap.String("name", name))
	return nil
}

// Seed stores defs at boot. Existing presets with the same name are replaced.
func (s *Service) Seed(ctx context.Context, defs []Definition) error {
	ctx = logger.WithFields(ctx, zap.String("source", "config"))
	for _, d := range defs {
		if _, _, err := s.Define(ctx, d); err != nil {
			return fmt.Errorf("seed pattern %q: %w", d.Name, err)
		}
	}
	return nil
}

func builtin(name string) (dompreset.Preset, bool) {
	p, ok := dateformat.LookupNamed(name)
	if !ok {
		return dompreset.Preset{}, false
	}
	return dompreset.Reconstruct(name, p, "predefined", false, "", 0, 0), true
}
