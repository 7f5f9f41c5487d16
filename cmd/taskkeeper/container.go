package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/dig"
	"go.uber.org/zap"

	httphandler "github.com/ruudy-sib/taskkeeper/internal/adapter/primary/http"
	"github.com/ruudy-sib/taskkeeper/internal/adapter/secondary/kafkapublisher"
	"github.com/ruudy-sib/taskkeeper/internal/adapter/secondary/memstore"
	"github.com/ruudy-sib/taskkeeper/internal/adapter/secondary/postgresstore"
	"github.com/ruudy-sib/taskkeeper/internal/adapter/secondary/publisherfanout"
	"github.com/ruudy-sib/taskkeeper/internal/adapter/secondary/rediscache"
	"github.com/ruudy-sib/taskkeeper/internal/adapter/secondary/sqlitestore"
	"github.com/ruudy-sib/taskkeeper/internal/adapter/secondary/webhookpublisher"
	"github.com/ruudy-sib/taskkeeper/internal/config"
	"github.com/ruudy-sib/taskkeeper/internal/domain/service"
	"github.com/ruudy-sib/taskkeeper/internal/observability"
	"github.com/ruudy-sib/taskkeeper/internal/port/primary"
	"github.com/ruudy-sib/taskkeeper/internal/port/secondary"
)

// storage is the assembled task store together with the health checks and
// close hooks of everything it was built on.
type storage struct {
	store   secondary.TaskStore
	checks  []secondary.HealthChecker
	closers []func() error
}

func (s *storage) Close() error {
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func buildContainer(ctx context.Context) (*dig.Container, error) {
	c := dig.New()

	// --- Configuration ---
	if err := c.Provide(func() (*config.Config, error) {
		cfg := config.New()
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("invalid configuration: %w", err)
		}
		return cfg, nil
	}); err != nil {
		return nil, err
	}

	// --- Logger ---
	if err := c.Provide(newLogger); err != nil {
		return nil, err
	}

	// --- Metrics ---
	if err := c.Provide(func() *prometheus.Registry {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		return reg
	}); err != nil {
		return nil, err
	}

	if err := c.Provide(func(cfg *config.Config, reg *prometheus.Registry) *observability.Metrics {
		return observability.NewMetrics(cfg.MetricsNamespace, reg)
	}); err != nil {
		return nil, err
	}

	// --- Secondary Adapters (infrastructure) ---

	// Task store, optionally wrapped by the Redis lookup cache
	if err := c.Provide(func(cfg *config.Config, metrics *observability.Metrics, logger *zap.Logger) (*storage, error) {
		return newStorage(ctx, cfg, metrics, logger)
	}); err != nil {
		return nil, err
	}

	if err := c.Provide(func(s *storage) secondary.TaskStore {
		return s.store
	}); err != nil {
		return nil, err
	}

	// Collect all health checks
	if err := c.Provide(func(s *storage) []secondary.HealthChecker {
		return s.checks
	}); err != nil {
		return nil, err
	}

	// Event publishers behind a single fan-out
	if err := c.Provide(func(cfg *config.Config, metrics *observability.Metrics, logger *zap.Logger) *publisherfanout.Fanout {
		var targets []publisherfanout.Target
		if len(cfg.KafkaBrokers) > 0 {
			targets = append(targets, publisherfanout.Target{
				Name:      "kafka",
				Publisher: kafkapublisher.NewPublisher(cfg, logger),
			})
		}
		if cfg.WebhookURL != "" {
			targets = append(targets, publisherfanout.Target{
				Name:      "webhook",
				Publisher: webhookpublisher.NewPublisher(cfg.WebhookURL, logger),
			})
		}
		return publisherfanout.NewFanout(targets, metrics, logger)
	}); err != nil {
		return nil, err
	}

	if err := c.Provide(func(f *publisherfanout.Fanout) secondary.TaskEventPublisher {
		return f
	}); err != nil {
		return nil, err
	}

	// --- Domain Services ---

	if err := c.Provide(service.NewTaskService); err != nil {
		return nil, err
	}

	// Bind concrete TaskService to the primary port interface
	if err := c.Provide(func(s *service.TaskService) primary.TaskService {
		return s
	}); err != nil {
		return nil, err
	}

	// --- Primary Adapters ---

	// HTTP router
	if err := c.Provide(func(
		taskSvc primary.TaskService,
		checks []secondary.HealthChecker,
		metrics *observability.Metrics,
		reg *prometheus.Registry,
		logger *zap.Logger,
	) http.Handler {
		return httphandler.NewRouter(taskSvc, checks, metrics, reg, logger)
	}); err != nil {
		return nil, err
	}

	return c, nil
}

func newStorage(ctx context.Context, cfg *config.Config, metrics *observability.Metrics, logger *zap.Logger) (*storage, error) {
	s := &storage{}

	switch cfg.StoreDriver {
	case config.StoreDriverSQLite:
		db, err := sqlitestore.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		store := sqlitestore.NewStore(db, logger)
		s.store = store
		s.checks = append(s.checks, sqlitestore.NewHealthCheck(db))
		s.closers = append(s.closers, store.Close)
		logger.Info("using sqlite task store", zap.String("path", cfg.SQLitePath))

	case config.StoreDriverPostgres:
		pool, err := postgresstore.NewPool(ctx, cfg.DatabaseURL, logger)
		if err != nil {
			return nil, err
		}
		store := postgresstore.NewStore(pool, logger)
		s.store = store
		s.checks = append(s.checks, postgresstore.NewHealthCheck(pool))
		s.closers = append(s.closers, store.Close)
		logger.Info("using postgres task store")

	default:
		s.store = memstore.NewStore(logger)
		logger.Info("using in-memory task store")
	}

	if !cfg.CacheEnabled {
		return s, nil
	}

	client, err := rediscache.NewClient(ctx, cfg, logger)
	if err != nil {
		_ = s.Close()
		return nil, err
	}
	s.store = rediscache.NewStore(s.store, client, cfg.CacheTTL, metrics, logger)
	s.checks = append(s.checks, rediscache.NewHealthCheck(client))
	s.closers = append(s.closers, client.Close)
	logger.Info("redis lookup cache enabled", zap.Duration("ttl", cfg.CacheTTL))

	return s, nil
}
