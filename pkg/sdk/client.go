package sdk

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kailas-cloud/dateformat"
	"github.com/kailas-cloud/dateformat/internal/db"
	"github.com/kailas-cloud/dateformat/internal/db/memory"
	dbRedis "github.com/kailas-cloud/dateformat/internal/db/redis"
	domlocale "github.com/kailas-cloud/dateformat/internal/domain/locale"
	dompreset "github.com/kailas-cloud/dateformat/internal/domain/preset"
	localerepo "github.com/kailas-cloud/dateformat/internal/repository/locale"
	presetrepo "github.com/kailas-cloud/dateformat/internal/repository/preset"
	datetimeuc "github.com/kailas-cloud/dateformat/internal/usecase/datetime"
	healthuc "github.com/kailas-cloud/dateformat/internal/usecase/health"
	localeuc "github.com/kailas-cloud/dateformat/internal/usecase/locale"
	presetuc "github.com/kailas-cloud/dateformat/internal/usecase/preset"
)

const (
	defaultReadinessTimeout = 10 * time.Second
	defaultKeyPrefix        = "dateformat:"
)

// Internal interfaces, swapped for mocks in tests.
type datetimeUseCase interface {
	Format(ctx context.Context, req datetimeuc.Request, t time.Time) (datetimeuc.Result, error)
	Parse(ctx context.Context, req datetimeuc.Request, text string) (datetimeuc.Parsed, error)
}

type presetUseCase interface {
	Define(ctx context.Context, d presetuc.Definition) (dompreset.Preset, bool, error)
	Resolve(ctx context.Context, name string) (dompreset.Preset, error)
	List(ctx context.Context) ([]presetuc.Entry, error)
	Delete(ctx context.Context, name string) error
}

type localeUseCase interface {
	Register(ctx context.Context, l domlocale.Locale) (domlocale.Locale, error)
	Get(name string) (domlocale.Locale, error)
	Names() []string
	Delete(ctx context.Context, name string) error
}

// Client is the dateformat SDK entry point. It is safe for concurrent use.
type Client struct {
	store       db.Store
	datetimeSvc datetimeUseCase
	presetSvc   presetUseCase
	localeSvc   localeUseCase
	healthSvc   healthUseCase
	obs         *observer
}

// New creates a Client, connects to the store and loads stored locales.
// The provided context is used for the initial readiness check.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		keyPrefix: defaultKeyPrefix,
		locale:    domlocale.DefaultName,
		location:  time.Local,
	}
	for _, o := range opts {
		o.apply(cfg)
	}

	if cfg.driver == "" {
		return nil, errors.New("dateformat: storage required (use WithValkey, WithRedis or WithMemory)")
	}

	store, err := createStore(cfg)
	if err != nil {
		return nil, err
	}

	if err := store.WaitForReady(ctx, defaultReadinessTimeout); err != nil {
		store.Close()
		return nil, fmt.Errorf("dateformat: database not ready: %w", err)
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		store.Close()
		return nil, err
	}

	c, err := wireClient(ctx, store, cfg, obs)
	if err != nil {
		store.Close()
		return nil, err
	}
	return c, nil
}

func createStore(cfg *clientConfig) (db.Store, error) {
	switch cfg.driver {
	case "valkey", "redis":
		s, err := dbRedis.NewStore(dbRedis.Config{
			Addrs:      cfg.addrs,
			Username:   cfg.username,
			Password:   cfg.password,
			DB:         cfg.db,
			ClientName: "dateformat-sdk",
		})
		if err != nil {
			return nil, fmt.Errorf("dateformat: create %s store: %w", cfg.driver, err)
		}
		return s, nil
	case "memory":
		return memory.NewStore(), nil
	default:
		return nil, fmt.Errorf("dateformat: unknown driver %q", cfg.driver)
	}
}

func wireClient(ctx context.Context, store db.Store, cfg *clientConfig, obs *observer) (*Client, error) {
	// Each client owns its registry so that locales registered through one
	// client never leak into another in the same process.
	registry := dateformat.NewRegistry()

	presetSvc := presetuc.New(presetrepo.New(store, cfg.keyPrefix), registry)

	var dtOpts []datetimeuc.Option
	if cfg.clock != nil {
		dtOpts = append(dtOpts, datetimeuc.WithClock(cfg.clock))
	}
	datetimeSvc := datetimeuc.New(presetSvc, registry, datetimeuc.Defaults{
		Locale:   cfg.locale,
		UTC:      cfg.utc,
		Strict:   cfg.strict,
		Location: cfg.location,
	}, dtOpts...)

	localeSvc := localeuc.New(localerepo.New(store, cfg.keyPrefix), registry, datetimeSvc)
	if err := localeSvc.Load(ctx, cfg.locales); err != nil {
		return nil, fmt.Errorf("dateformat: %w", err)
	}

	return &Client{
		store:       store,
		datetimeSvc: datetimeSvc,
		presetSvc:   presetSvc,
		localeSvc:   localeSvc,
		healthSvc:   healthuc.New(store, datetimeSvc),
		obs:         obs,
	}, nil
}

// Close releases all resources.
func (c *Client) Close() {
	if c.store != nil {
		c.store.Close()
	}
}

// Ping checks database connectivity.
func (c *Client) Ping(ctx context.Context) (err error) {
	start := time.Now()
	defer func() { c.obs.observe("ping", start, err) }()

	if err = c.store.Ping(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// Format renders t. A zero t renders the current time.
func (c *Client) Format(ctx context.Context, req Request, t time.Time) (_ Result, err error) {
	start := time.Now()
	defer func() { c.obs.observe("format", start, err) }()

	res, err := c.datetimeSvc.Format(ctx, req.toInternal(), t)
	if err != nil {
		return Result{}, err
	}
	return Result{Text: res.Text, Pattern: res.Pattern}, nil
}

// Parse reads text. In strict mode a mismatch returns an error wrapping
// ErrMalformedInput and a *dateformat.ParseError.
func (c *Client) Parse(ctx context.Context, req Request, text string) (_ time.Time, err error) {
	start := time.Now()
	defer func() { c.obs.observe("parse", start, err) }()

	res, err := c.datetimeSvc.Parse(ctx, req.toInternal(), text)
	if err != nil {
		return time.Time{}, err
	}
	return res.Time, nil
}

// Patterns returns the named-pattern catalogue.
func (c *Client) Patterns() *PatternService {
	return &PatternService{svc: c.presetSvc, obs: c.obs}
}

// Locales returns the locale registry.
func (c *Client) Locales() *LocaleService {
	return &LocaleService{svc: c.localeSvc, obs: c.obs}
}
