package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/kailas-cloud/dateformat/internal/config"
	"github.com/kailas-cloud/dateformat/internal/db"
	"github.com/kailas-cloud/dateformat/internal/db/memory"
	dbRedis "github.com/kailas-cloud/dateformat/internal/db/redis"
	domlocale "github.com/kailas-cloud/dateformat/internal/domain/locale"
	logpkg "github.com/kailas-cloud/dateformat/internal/logger"
	"github.com/kailas-cloud/dateformat/internal/metrics"
	localerepo "github.com/kailas-cloud/dateformat/internal/repository/locale"
	presetrepo "github.com/kailas-cloud/dateformat/internal/repository/preset"
	chiTransport "github.com/kailas-cloud/dateformat/internal/transport/chi"
	datetimeuc "github.com/kailas-cloud/dateformat/internal/usecase/datetime"
	healthuc "github.com/kailas-cloud/dateformat/internal/usecase/health"
	localeuc "github.com/kailas-cloud/dateformat/internal/usecase/locale"
	presetuc "github.com/kailas-cloud/dateformat/internal/usecase/preset"
	"github.com/kailas-cloud/dateformat/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting dateformat API server",
		zap.String("version", version.String()),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("db_driver", cfg.Database.Driver),
		zap.Strings("db_addrs", cfg.Database.Addrs),
	)

	store, err := newStore(cfg.Database)
	if err != nil {
		logger.Fatal("Failed to create database store", zap.Error(err))
	}
	defer store.Close()

	// Wait for database to be ready
	ctx := logpkg.ContextWithLogger(context.Background(), logger)
	if err := store.WaitForReady(ctx, time.Duration(cfg.Database.ReadinessTimeout)*time.Second); err != nil {
		logger.Fatal("Database not ready", zap.Error(err))
	}
	logger.Info("Connected to database")

	// Register engine metrics explicitly (no init())
	metrics.RegisterEngineMetrics()

	location, err := cfg.Formats.LoadLocation()
	if err != nil {
		logger.Fatal("Invalid location", zap.Error(err))
	}

	// Repositories
	presetRepo := presetrepo.New(store, cfg.Storage.KeyPrefix)
	localeRepo := localerepo.New(store, cfg.Storage.KeyPrefix)

	// Use case services. The locale service invalidates the compiled-format
	// cache of the datetime service on every registry change.
	registry := domlocale.Default()
	presetSvc := presetuc.New(presetRepo, registry)
	datetimeSvc := datetimeuc.New(presetSvc, registry, datetimeuc.Defaults{
		Locale:   cfg.Formats.DefaultLocale,
		UTC:      cfg.Formats.UTC,
		Strict:   cfg.Formats.Strict,
		Location: location,
	})
	localeSvc := localeuc.New(localeRepo, registry, datetimeSvc)

	if err := localeSvc.Load(ctx, cfg.Locales); err != nil {
		logger.Fatal("Failed to load locales", zap.Error(err))
	}
	if err := presetSvc.Seed(ctx, patternDefinitions(cfg.Formats.Patterns)); err != nil {
		logger.Fatal("Failed to seed patterns", zap.Error(err))
	}

	healthSvc := healthuc.New(store, datetimeSvc)

	// Create chi server
	server := chiTransport.NewServer(datetimeSvc, presetSvc, localeSvc, healthSvc, logger)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(chiTransport.BearerAuthMiddleware(cfg.Auth.APIKeys))
	r.Use(metrics.Middleware())
	server.Routes(r)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// newStore creates the database store for the configured driver.
// Valkey and Redis share the rueidis store.
func newStore(cfg config.DatabaseConfig) (db.Store, error) {
	switch cfg.Driver {
	case config.DriverValkey, config.DriverRedis:
		return dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.Addrs,
			Username: cfg.Username,
			Password: cfg.Password,
			DB:       cfg.DB,
		})
	case config.DriverMemory:
		return memory.NewStore(), nil
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.Driver)
	}
}

func patternDefinitions(patterns []config.PatternConfig) []presetuc.Definition {
	defs := make([]presetuc.Definition, 0, len(patterns))
	for _, p := range patterns {
		defs = append(defs, presetuc.Definition{
			Name:        p.Name,
			Pattern:     p.Pattern,
			Description: p.Description,
			UTC:         p.UTC,
			Locale:      p.Locale,
		})
	}
	return defs
}
