package reconcile

import (
	"context"
	"fmt"
	"sync"
	"time"

	"domain-checker/core/probe"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Engine resolves the Empty cells of a Matrix through a probe.Checker.
type Engine struct {
	checker   probe.Checker
	compose   Composer
	delay     DelayPolicy
	workers   int
	observers []Observer
	logger    *zap.Logger

	// mu serializes summary updates and observer calls.
	mu sync.Mutex
}

// Option configures an Engine.
type Option func(*Engine)

// WithWorkers sets the number of probes in flight. Values below one mean one.
func WithWorkers(n int) Option {
	return func(e *Engine) {
		if n < 1 {
			n = 1
		}
		e.workers = n
	}
}

// WithDelay sets the pause taken before each probe.
func WithDelay(p DelayPolicy) Option {
	return func(e *Engine) { e.delay = p }
}

// WithComposer sets how domain and extension are joined.
func WithComposer(c Composer) Option {
	return func(e *Engine) {
		if c != nil {
			e.compose = c
		}
	}
}

// WithObserver registers observers for processed cells.
func WithObserver(o ...Observer) Option {
	return func(e *Engine) {
		for _, obs := range o {
			if obs != nil {
				e.observers = append(e.observers, obs)
			}
		}
	}
}

// WithLogger sets the engine logger.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// NewEngine creates an engine. Defaults: one worker, the default delay policy,
// plain concatenation of domain and extension, no observers.
func NewEngine(checker probe.Checker, opts ...Option) *Engine {
	e := &Engine{
		checker: probe.Guard(checker),
		compose: Concat,
		delay:   DefaultDelayPolicy(),
		workers: 1,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Reconcile probes every unresolved cell of m and merges the answers in place.
//
// Probe failures leave the cell Empty and are counted in Summary.Errors; the run
// continues. A failed merge (ErrInvariantViolation) aborts the run. If ctx is
// cancelled no new probes start and ctx.Err() is returned; the caller must not
// persist the matrix in that case.
func (e *Engine) Reconcile(ctx context.Context, m *Matrix) (Summary, error) {
	start := time.Now()

	resolved, unresolved := m.Counts()
	summary := Summary{Tracked: resolved + unresolved, Preserved: resolved}

	if unresolved == 0 {
		e.logger.Debug("Nothing to reconcile", zap.Int("tracked", summary.Tracked))
		return summary, nil
	}

	e.logger.Debug("Reconciling matrix",
		zap.Int("unresolved", unresolved),
		zap.Int("workers", e.workers),
	)

	var err error
	if e.workers == 1 {
		err = e.runSequential(ctx, m, &summary)
	} else {
		err = e.runConcurrent(ctx, m, &summary)
	}

	summary.Duration = time.Since(start)
	return summary, err
}

func (e *Engine) runSequential(ctx context.Context, m *Matrix, summary *Summary) error {
	for cell := range m.Unresolved() {
		if err := e.delay.Wait(ctx); err != nil {
			return err
		}
		if err := e.process(ctx, m, cell, summary); err != nil {
			return err
		}
	}
	return ctx.Err()
}

func (e *Engine) runConcurrent(ctx context.Context, m *Matrix, summary *Summary) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)

	for cell := range m.Unresolved() {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := e.delay.Wait(gctx); err != nil {
				return err
			}
			return e.process(gctx, m, cell, summary)
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

// process probes one cell, merges the answer and emits its observation.
func (e *Engine) process(ctx context.Context, m *Matrix, cell Cell, summary *Summary) error {
	name := e.compose(cell.Domain, cell.Extension)

	begin := time.Now()
	res := e.checker.Check(ctx, name)
	elapsed := time.Since(begin)

	obs := Observation{
		Row:       cell.Row,
		Column:    cell.Column,
		Domain:    cell.Domain,
		Extension: cell.Extension,
		Name:      name,
		Outcome:   res.Outcome,
		Err:       res.Err,
		Elapsed:   elapsed,
	}

	status, ok := StatusFor(res.Outcome)
	if res.Err != nil || !ok {
		if obs.Err == nil {
			obs.Err = probe.ErrNoOutcome
		}
		obs.Outcome = probe.OutcomeUnknown
		e.logger.Warn("Probe failed, cell left unresolved",
			zap.String("name", name),
			zap.Error(obs.Err),
		)
		e.emit(obs, summary)
		return nil
	}

	if err := m.SetStatus(cell.Row, cell.Column, status); err != nil {
		e.logger.Error("Refusing to overwrite cell", zap.String("name", name), zap.Error(err))
		return fmt.Errorf("merge %s: %w", name, err)
	}

	e.logger.Debug("Cell resolved",
		zap.String("name", name),
		zap.String("status", string(status)),
		zap.Duration("elapsed", elapsed),
	)
	e.emit(obs, summary)
	return nil
}

func (e *Engine) emit(obs Observation, summary *Summary) {
	e.mu.Lock()
	defer e.mu.Unlock()

	summary.Checked++
	switch {
	case obs.Err != nil:
		summary.Errors++
	case obs.Outcome == probe.OutcomeRegistered:
		summary.Registered++
	case obs.Outcome == probe.OutcomeAvailable:
		summary.Available++
	}

	for _, o := range e.observers {
		o.Observe(obs)
	}
}
