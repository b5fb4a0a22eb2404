package sdk

import (
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

type clientConfig struct {
	driver   string // "valkey", "redis" or "memory"
	addrs    []string
	username string
	password string
	db       int

	keyPrefix string

	locale   string
	utc      bool
	strict   bool
	location *time.Location
	locales  []Locale
	clock    func() time.Time

	logger     *slog.Logger
	metricsReg prometheus.Registerer
}

// WithValkey configures the client to connect to a Valkey instance.
func WithValkey(addr, password string) Option {
	return optionFunc(func(c *clientConfig) {
		c.driver = "valkey"
		c.addrs = []string{addr}
		c.password = password
	})
}

// WithRedis configures the client to connect to a Redis instance.
func WithRedis(addr, password string) Option {
	return optionFunc(func(c *clientConfig) {
		c.driver = "redis"
		c.addrs = []string{addr}
		c.password = password
	})
}

// WithMemory keeps patterns and locales in process memory.
// Nothing is shared with other clients.
func WithMemory() Option {
	return optionFunc(func(c *clientConfig) {
		c.driver = "memory"
		c.addrs = nil
	})
}

// WithACL sets the username and logical database for Valkey or Redis.
func WithACL(username string, db int) Option {
	return optionFunc(func(c *clientConfig) {
		c.username = username
		c.db = db
	})
}

// WithKeyPrefix sets the prefix of every stored key. Default: "dateformat:",
// the same as the server.
func WithKeyPrefix(prefix string) Option {
	return optionFunc(func(c *clientConfig) {
		c.keyPrefix = prefix
	})
}

// WithDefaultLocale sets the locale used when a request names none.
func WithDefaultLocale(name string) Option {
	return optionFunc(func(c *clientConfig) {
		c.locale = name
	})
}

// WithUTC renders and parses in UTC unless a request or preset says otherwise.
func WithUTC() Option {
	return optionFunc(func(c *clientConfig) {
		c.utc = true
	})
}

// WithStrict rejects input that does not match the pattern unless a request
// says otherwise.
func WithStrict() Option {
	return optionFunc(func(c *clientConfig) {
		c.strict = true
	})
}

// WithLocation sets the location used outside UTC mode. Default: time.Local.
func WithLocation(loc *time.Location) Option {
	return optionFunc(func(c *clientConfig) {
		c.location = loc
	})
}

// WithLocales registers extra locale tables at startup without persisting them.
func WithLocales(locales ...Locale) Option {
	return optionFunc(func(c *clientConfig) {
		c.locales = append(c.locales, locales...)
	})
}

// WithClock replaces time.Now as the source of the current time.
func WithClock(now func() time.Time) Option {
	return optionFunc(func(c *clientConfig) {
		c.clock = now
	})
}

// WithLogger enables structured logging for SDK operations.
// Pass nil to disable (default). Uses standard library slog.
func WithLogger(l *slog.Logger) Option {
	return optionFunc(func(c *clientConfig) {
		c.logger = l
	})
}

// WithPrometheus registers SDK metrics (operation counts and durations)
// on the given registerer. Pass nil to disable (default).
func WithPrometheus(reg prometheus.Registerer) Option {
	return optionFunc(func(c *clientConfig) {
		c.metricsReg = reg
	})
}
