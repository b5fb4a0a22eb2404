// Package datetime renders and parses times for API callers, resolving
// named patterns and caching compiled formats.
package datetime

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/dateformat"
	"github.com/kailas-cloud/dateformat/internal/domain"
	"github.com/kailas-cloud/dateformat/internal/logger"
	"github.com/kailas-cloud/dateformat/internal/metrics"
)

// Defaults apply when a request leaves an option unset.
type Defaults struct {
	Locale   string
	UTC      bool
	Strict   bool
	Location *time.Location
}

// Request selects a pattern and its options. Exactly one of Pattern and
// Name is set. Nil pointers take the preset's value, then the defaults.
type Request struct {
	Pattern string
	Name    string
	UTC     *bool
	Locale  string
	Strict  *bool
}

// Result is the outcome of Format.
type Result struct {
	Text    string
	Pattern string
}

// Parsed is the outcome of Parse.
type Parsed struct {
	Time    time.Time
	Pattern string
}

// Service formats and parses with cached compiled patterns.
type Service struct {
	presets  PresetResolver
	registry *dateformat.Registry
	defaults Defaults
	now      func() time.Time

	cache sync.Map // cacheKey -> *dateformat.Format
}

// Option configures the Service.
type Option func(*Service)

// WithClock replaces time.Now for zero times and two-digit year windows.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// New creates a datetime service.
func New(presets PresetResolver, registry *dateformat.Registry, defaults Defaults, opts ...Option) *Service {
	if defaults.Location == nil {
		defaults.Location = time.Local
	}
	s := &Service{presets: presets, registry: registry, defaults: defaults, now: time.Now}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Format renders t. A zero t renders the current time.
func (s *Service) Format(ctx context.Context, req Request, t time.Time) (Result, error) {
	start := time.Now()
	f, err := s.compiled(ctx, req)
	if err != nil {
		observe("format", start, err)
		return Result{}, fmt.Errorf("format: %w", err)
	}
	text := f.Format(t)
	observe("format", start, nil)
	return Result{Text: text, Pattern: f.Pattern()}, nil
}

// Parse reads text with the requested pattern.
func (s *Service) Parse(ctx context.Context, req Request, text string) (Parsed, error) {
	start := time.Now()
	f, err := s.compiled(ctx, req)
	if err != nil {
		observe("parse", start, err)
		return Parsed{}, fmt.Errorf("parse: %w", err)
	}
	t, err := f.Parse(text)
	observe("parse", start, err)
	if err != nil {
		logger.FromContext(ctx).Debug("strict parse rejected input",
			zap.String("pattern", f.Pattern()),
			zap.Error(err),
		)
		return Parsed{}, fmt.Errorf("parse: %w", err)
	}
	return Parsed{Time: t, Pattern: f.Pattern()}, nil
}

// HealthCheck round-trips a fixed time through every predefined pattern.
func (s *Service) HealthCheck(_ context.Context) error {
	ref := time.Date(2001, time.February, 3, 4, 5, 6, 0, time.UTC)
	clock := func() time.Time { return ref }
	for _, np := range dateformat.NamedPatterns() {
		f := dateformat.New(np.Pattern, dateformat.WithUTC(), dateformat.WithClock(clock))
		got, err := f.Parse(f.Format(ref))
		if err != nil {
			return fmt.Errorf("self-check %s: %w", np.Name, err)
		}
		if !got.Equal(ref) {
			return fmt.Errorf("self-check %s: round trip gave %s", np.Name, got)
		}
	}
	return nil
}

// Invalidate drops every compiled format. Call it after the locale
// registry changes.
func (s *Service) Invalidate() {
	s.cache.Range(func(k, _ any) bool {
		s.cache.Delete(k)
		metrics.CompileCacheEntries.Dec()
		return true
	})
}

type cacheKey struct {
	pattern string
	utc     bool
	locale  string
	strict  bool
}

// compiled resolves req to a Format, reusing a cached one when possible.
func (s *Service) compiled(ctx context.Context, req Request) (*dateformat.Format, error) {
	key, err := s.resolve(ctx, req)
	if err != nil {
		return nil, err
	}

	if v, ok := s.cache.Load(key); ok {
		metrics.CompileCacheTotal.WithLabelValues("hit").Inc()
		return v.(*dateformat.Format), nil
	}
	metrics.CompileCacheTotal.WithLabelValues("miss").Inc()

	opts := []dateformat.Option{
		dateformat.WithRegistry(s.registry),
		dateformat.WithLocation(s.defaults.Location),
		dateformat.WithClock(s.now),
	}
	if key.utc {
		opts = append(opts, dateformat.WithUTC())
	}
	if key.strict {
		opts = append(opts, dateformat.WithStrict())
	}
	f, err := dateformat.New(key.pattern, opts...).InLocale(key.locale)
	if err != nil {
		return nil, err
	}

	v, loaded := s.cache.LoadOrStore(key, f)
	if !loaded {
		metrics.CompileCacheEntries.Inc()
		logger.FromContext(ctx).Debug("pattern compiled",
			zap.String("pattern", key.pattern),
			zap.String("locale", key.locale),
			zap.Bool("utc", key.utc),
			zap.Bool("strict", key.strict),
		)
	}
	return v.(*dateformat.Format), nil
}

// resolve merges the request with its preset and the defaults.
func (s *Service) resolve(ctx context.Context, req Request) (cacheKey, error) {
	key := cacheKey{
		pattern: req.Pattern,
		utc:     s.defaults.UTC,
		locale:  s.defaults.Locale,
		strict:  s.defaults.Strict,
	}

	switch {
	case req.Pattern != "" && req.Name != "":
		return cacheKey{}, fmt.Errorf("%w: pattern and name are mutually exclusive", domain.ErrInvalidPattern)
	case req.Name != "":
		p, err := s.presets.Resolve(ctx, req.Name)
		if err != nil {
			return cacheKey{}, err
		}
		key.pattern = p.Pattern()
		if p.UTC() {
			key.utc = true
		}
		if p.Locale() != "" {
			key.locale = p.Locale()
		}
	case req.Pattern == "":
		return cacheKey{}, fmt.Errorf("%w: pattern or name is required", domain.ErrInvalidPattern)
	}

	if req.UTC != nil {
		key.utc = *req.UTC
	}
	if req.Locale != "" {
		key.locale = req.Locale
	}
	if req.Strict != nil {
		key.strict = *req.Strict
	}
	return key, nil
}

func observe(op string, start time.Time, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	metrics.OperationsTotal.WithLabelValues(op, status).Inc()
	metrics.OperationDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}
