package sdk

import (
	"context"
	"fmt"
	"time"
)

// LocaleService manages locale tables. Registered tables are persisted and
// reloaded by every client sharing the store.
type LocaleService struct {
	svc localeUseCase
	obs *observer
}

// Register validates and stores l. The returned table carries the canonical
// name ("EN-gb" becomes "en-GB"). The default "en" table is read-only.
func (s *LocaleService) Register(ctx context.Context, l Locale) (_ Locale, err error) {
	start := time.Now()
	defer func() { s.obs.observe("locale.register", start, err) }()

	registered, err := s.svc.Register(ctx, l)
	if err != nil {
		return Locale{}, fmt.Errorf("register locale: %w", err)
	}
	return registered, nil
}

// Get returns the table for name, falling back to the base language.
func (s *LocaleService) Get(name string) (Locale, error) {
	l, err := s.svc.Get(name)
	if err != nil {
		return Locale{}, fmt.Errorf("get locale: %w", err)
	}
	return l, nil
}

// Names returns the registered locale names, sorted.
func (s *LocaleService) Names() []string {
	return s.svc.Names()
}

// Delete removes a registered table.
func (s *LocaleService) Delete(ctx context.Context, name string) (err error) {
	start := time.Now()
	defer func() { s.obs.observe("locale.delete", start, err) }()

	if err = s.svc.Delete(ctx, name); err != nil {
		return fmt.Errorf("delete locale: %w", err)
	}
	return nil
}
