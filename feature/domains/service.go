package domains

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"domain-checker/core/grid"
	"domain-checker/core/history"
	"domain-checker/core/logger"
	"domain-checker/core/metrics"
	"domain-checker/core/probe"
	"domain-checker/core/reconcile"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrHistoryDisabled is returned by History when no database is available.
var ErrHistoryDisabled = errors.New("history is not available")

// Service runs reconciliations: load, parse, probe, render, save.
type Service struct {
	store   grid.Store
	checker probe.Checker
	db      *gorm.DB
	metrics *metrics.Metrics
	cfg     reconcile.Config
	history history.Config
	logger  *zap.Logger
	now     func() time.Time
}

// NewService creates a new domains service. db and m may be nil.
func NewService(store grid.Store, checker probe.Checker, db *gorm.DB, m *metrics.Metrics, cfg reconcile.Config, hcfg history.Config, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		store:   store,
		checker: checker,
		db:      db,
		metrics: m,
		cfg:     cfg,
		history: hcfg,
		logger:  logger,
		now:     time.Now,
	}
}

// Check reconciles the table at location and writes it back in place.
func (s *Service) Check(ctx context.Context, location string, opts Options) (*Report, error) {
	format, err := grid.FormatOf(location)
	if err != nil {
		return nil, err
	}

	data, err := s.store.Load(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", location, err)
	}

	report := &Report{Location: location, Format: format, RunID: uuid.NewString()}
	l := logger.WithRunID(s.logger, report.RunID).With(zap.String("location", location))

	out, err := s.run(ctx, l, format, data, opts, report)
	if err != nil {
		return report, err
	}

	if opts.DryRun {
		l.Info("Dry run, table not written")
		return report, nil
	}

	policy := grid.RetryPolicy{
		Attempts: s.cfg.SaveAttempts,
		Backoff:  time.Duration(s.cfg.SaveBackoffMillis) * time.Millisecond,
	}
	if err := grid.SaveWithRetry(ctx, s.store, location, out, policy, l); err != nil {
		return report, err
	}
	report.Saved = true
	return report, nil
}

// ReconcileBytes runs the same pipeline over an uploaded table and returns
// the updated file instead of saving it.
func (s *Service) ReconcileBytes(ctx context.Context, format grid.Format, data []byte, opts Options) ([]byte, *Report, error) {
	report := &Report{Location: "upload", Format: format, RunID: uuid.NewString()}
	l := logger.WithRunID(s.logger, report.RunID)

	out, err := s.run(ctx, l, format, data, opts, report)
	if err != nil {
		return nil, report, err
	}
	return out, report, nil
}

// Probe checks a single name.
func (s *Service) Probe(ctx context.Context, name string) ProbeReport {
	res := probe.Guard(s.checker).Check(ctx, strings.TrimSpace(name))

	rep := ProbeReport{Name: strings.TrimSpace(name), Outcome: res.Outcome.String()}
	if status, ok := reconcile.StatusFor(res.Outcome); ok && res.OK() {
		rep.Status = string(status)
	}
	if res.Err != nil {
		rep.Error = res.Err.Error()
	}
	return rep
}

// History lists the most recent checks of name.
func (s *Service) History(ctx context.Context, name string, limit int) ([]history.CheckRecord, error) {
	if s.db == nil {
		return nil, ErrHistoryDisabled
	}
	if limit <= 0 {
		limit = s.history.RecentLimit
	}
	return history.Recent(ctx, s.db, name, limit)
}

func (s *Service) run(ctx context.Context, l *zap.Logger, format grid.Format, data []byte, opts Options, report *Report) ([]byte, error) {
	codec, err := grid.CodecFor(format)
	if err != nil {
		return nil, err
	}

	g, err := codec.Decode(data)
	if err != nil {
		return nil, err
	}

	m, err := grid.Load(g)
	if err != nil {
		return nil, err
	}

	workers := s.cfg.WorkerLimit(opts.Workers)
	delay := s.cfg.DelayPolicy()
	if opts.Delay != nil {
		delay = *opts.Delay
	}

	var recorder *history.Recorder
	observers := append([]reconcile.Observer(nil), opts.Observers...)
	if s.db != nil && s.history.Enabled && !opts.NoHistory {
		recorder = history.NewRecorder(s.db, report.RunID, s.history.BatchSize)
		observers = append(observers, recorder)
	}

	engine := reconcile.NewEngine(s.checker,
		reconcile.WithWorkers(workers),
		reconcile.WithDelay(delay),
		reconcile.WithComposer(grid.ComposeName),
		reconcile.WithObserver(observers...),
		reconcile.WithLogger(l),
	)

	summary, runErr := engine.Reconcile(ctx, m)
	report.Summary = summary
	report.Finished = s.now()

	if s.metrics != nil {
		s.metrics.ObserveRun(summary, runErr)
	}

	if recorder != nil {
		// Observations made before a failure are still real answers.
		n, err := recorder.Flush(context.WithoutCancel(ctx))
		if err != nil {
			l.Warn("Failed to record history", zap.Error(err))
		}
		report.Recorded = n
	}

	if runErr != nil {
		return nil, runErr
	}

	l.Info("Reconciliation finished",
		zap.Int("tracked", summary.Tracked),
		zap.Int("checked", summary.Checked),
		zap.Int("registered", summary.Registered),
		zap.Int("available", summary.Available),
		zap.Int("errors", summary.Errors),
		zap.Duration("duration", summary.Duration),
	)

	return codec.Encode(data, grid.Render(g, m))
}
