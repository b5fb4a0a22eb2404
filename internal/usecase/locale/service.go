// Package locale manages locale tables: the registry used for rendering plus
// the copies persisted so that runtime registrations survive restarts.
package locale

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/kailas-cloud/dateformat/internal/domain"
	domlocale "github.com/kailas-cloud/dateformat/internal/domain/locale"
	"github.com/kailas-cloud/dateformat/internal/logger"
	"github.com/kailas-cloud/dateformat/internal/metrics"
)

// Service registers, lists and removes locale tables.
type Service struct {
	repo         Repository
	registry     Registry
	invalidators []Invalidator
}

// New creates a locale service. invalidators are notified after every
// registry change.
func New(repo Repository, registry Registry, invalidators ...Invalidator) *Service {
	return &Service{repo: repo, registry: registry, invalidators: invalidators}
}

// Register validates l, adds it to the registry and persists it.
// The stored name is the canonical tag.
func (s *Service) Register(ctx context.Context, l domlocale.Locale) (domlocale.Locale, error) {
	name, err := domlocale.Canonical(l.Name)
	if err != nil {
		return domlocale.Locale{}, fmt.Errorf("register locale: %w", err)
	}
	if name == domlocale.DefaultName {
		return domlocale.Locale{}, fmt.Errorf("register locale: %w: %q is built in", domain.ErrBuiltinLocale, name)
	}
	l.Name = name
	if err := l.Validate(); err != nil {
		return domlocale.Locale{}, fmt.Errorf("register locale: %w", err)
	}
	if err := s.repo.Save(ctx, l); err != nil {
		return domlocale.Locale{}, fmt.Errorf("register locale: %w", err)
	}
	if err := s.registry.Register(l); err != nil {
		return domlocale.Locale{}, fmt.Errorf("register locale: %w", err)
	}
	s.changed()

	logger.FromContext(ctx).Info("locale registered", zap.String("locale", name))
	return l, nil
}

// Get returns the table for name, falling back to the base language.
func (s *Service) Get(name string) (domlocale.Locale, error) {
	l, err := s.registry.Lookup(name)
	if err != nil {
		return domlocale.Locale{}, fmt.Errorf("get locale: %w", err)
	}
	return l, nil
}

// Names returns the registered locale names, sorted.
func (s *Service) Names() []string {
	return s.registry.Names()
}

// Delete removes a runtime locale from the registry and the store.
func (s *Service) Delete(ctx context.Context, name string) error {
	if err := s.registry.Unregister(name); err != nil {
		return fmt.Errorf("delete locale: %w", err)
	}
	canonical, _ := domlocale.Canonical(name)
	if err := s.repo.Delete(ctx, canonical); err != nil {
		return fmt.Errorf("delete locale: %w", err)
	}
	s.changed()

	logger.FromContext(ctx).Info("locale deleted", zap.String("locale", canonical))
	return nil
}

// Load registers static tables (from configuration) and then every
// persisted table. Persisted tables win on name clashes.
func (s *Service) Load(ctx context.Context, static []domlocale.Locale) error {
	for _, l := range static {
		if err := s.registry.Register(l); err != nil {
			return fmt.Errorf("load locale %q: %w", l.Name, err)
		}
	}

	stored, err := s.repo.List(ctx)
	if err != nil {
		return fmt.Errorf("load locales: %w", err)
	}
	log := logger.FromContext(ctx)
	for _, l := range stored {
		if err := s.registry.Register(l); err != nil {
			log.Warn("skipping stored locale", zap.String("locale", l.Name), zap.Error(err))
			continue
		}
	}
	s.changed()

	log.Info("locales loaded",
		zap.Int("static", len(static)),
		zap.Int("stored", len(stored)),
		zap.Strings("names", s.registry.Names()),
	)
	return nil
}

func (s *Service) changed() {
	metrics.LocalesRegistered.Set(float64(s.registry.Len()))
	for _, i := range s.invalidators {
		i.Invalidate()
	}
}
