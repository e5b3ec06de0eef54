package cmd

import (
	"fmt"

	"domain-checker/core/config"
	"domain-checker/core/grid"
	"domain-checker/core/history"
	"domain-checker/core/logger"
	"domain-checker/core/metrics"
	"domain-checker/core/probe"
	"domain-checker/core/storage"
	"domain-checker/feature/domains"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// runtime holds everything a command needs, built from configuration.
type runtime struct {
	cfg      *config.Config
	logger   *zap.Logger
	metrics  *metrics.Metrics
	registry *prometheus.Registry
	db       *gorm.DB
	objects  *grid.ObjectStore
	service  *domains.Service
}

// newRuntime loads configuration and wires the service. History is optional:
// when the database cannot be opened the run continues without it.
func newRuntime(withHistory bool) (*runtime, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	checker, err := probe.New(cfg.Probe, m)
	if err != nil {
		return nil, err
	}

	var objects *grid.ObjectStore
	if cfg.Storage.Endpoint != "" {
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			l.Warn("Object storage unavailable, s3:// locations disabled", zap.Error(err))
		} else {
			objects = grid.NewObjectStore(client)
		}
	}

	// A nil *ObjectStore must not reach the router as a non-nil Store.
	var router *grid.Router
	if objects != nil {
		router = grid.NewRouter(objects)
	} else {
		router = grid.NewRouter(nil)
	}

	var db *gorm.DB
	if withHistory && cfg.History.Enabled {
		if conn, err := history.Open(cfg.Database, cfg.History); err != nil {
			l.Warn("Optional history database unavailable", zap.Error(err))
		} else {
			db = conn
			l.Debug("History enabled", zap.String("driver", cfg.Database.Driver))
		}
	}

	svc := domains.NewService(router, checker, db, m, cfg.Reconcile, cfg.History, l)

	return &runtime{
		cfg:      cfg,
		logger:   l,
		metrics:  m,
		registry: reg,
		db:       db,
		objects:  objects,
		service:  svc,
	}, nil
}

// Close releases the database connection and flushes the logger.
func (r *runtime) Close() {
	if r.db != nil {
		if sqlDB, err := r.db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	_ = r.logger.Sync()
}
