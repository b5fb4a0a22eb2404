package sdk

import (
	"context"
	"fmt"
	"time"

	"github.com/kailas-cloud/dateformat"
)

// PatternService manages named patterns. The predefined names (ISO8601,
// RFC822, ...) are always listed and cannot be replaced or deleted.
type PatternService struct {
	svc presetUseCase
	obs *observer
}

// Define stores p under p.Name, replacing any stored pattern with that name.
// created reports whether the name was new.
func (s *PatternService) Define(ctx context.Context, p Pattern) (_ Pattern, created bool, err error) {
	start := time.Now()
	defer func() { s.obs.observe("pattern.define", start, err) }()

	stored, created, err := s.svc.Define(ctx, p.toDefinition())
	if err != nil {
		return Pattern{}, false, fmt.Errorf("define pattern: %w", err)
	}
	return fromInternalPreset(stored, false), created, nil
}

// Get returns the pattern published under name.
func (s *PatternService) Get(ctx context.Context, name string) (_ Pattern, err error) {
	start := time.Now()
	defer func() { s.obs.observe("pattern.get", start, err) }()

	p, err := s.svc.Resolve(ctx, name)
	if err != nil {
		return Pattern{}, fmt.Errorf("get pattern: %w", err)
	}
	_, builtin := dateformat.LookupNamed(name)
	return fromInternalPreset(p, builtin), nil
}

// List returns the predefined patterns followed by the stored ones.
func (s *PatternService) List(ctx context.Context) (_ []Pattern, err error) {
	start := time.Now()
	defer func() { s.obs.observe("pattern.list", start, err) }()

	entries, err := s.svc.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list patterns: %w", err)
	}
	out := make([]Pattern, 0, len(entries))
	for _, e := range entries {
		out = append(out, fromInternalPreset(e.Preset, e.Builtin))
	}
	return out, nil
}

// Delete removes a stored pattern.
func (s *PatternService) Delete(ctx context.Context, name string) (err error) {
	start := time.Now()
	defer func() { s.obs.observe("pattern.delete", start, err) }()

	if err = s.svc.Delete(ctx, name); err != nil {
		return fmt.Errorf("delete pattern: %w", err)
	}
	return nil
}
