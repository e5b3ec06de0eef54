package domains

import (
	"time"

	"domain-checker/core/grid"
	"domain-checker/core/reconcile"
)

// Report describes one reconciliation run.
type Report struct {
	Location string            `json:"location" yaml:"location"`
	Format   grid.Format       `json:"format" yaml:"format"`
	RunID    string            `json:"runId" yaml:"run_id"`
	Summary  reconcile.Summary `json:"summary" yaml:"summary"`
	// Saved is false for dry runs and failed runs.
	Saved bool `json:"saved" yaml:"saved"`
	// Recorded is the number of history rows written.
	Recorded int       `json:"recorded" yaml:"recorded"`
	Finished time.Time `json:"finishedAt" yaml:"finished_at"`
}

// ProbeReport is the answer for a single name.
type ProbeReport struct {
	Name    string `json:"name" yaml:"name"`
	Outcome string `json:"outcome" yaml:"outcome"`
	// Status is the text a table cell would receive, empty on error.
	Status string `json:"status,omitempty" yaml:"status,omitempty"`
	Error  string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Options adjust a single run on top of the configured defaults.
type Options struct {
	// Workers overrides reconcile.workers when positive, capped at
	// reconcile.max_workers.
	Workers int
	// Delay overrides the configured courtesy delay.
	Delay *reconcile.DelayPolicy
	// DryRun reconciles without writing the table back.
	DryRun bool
	// NoHistory skips the history ledger for this run.
	NoHistory bool
	// Observers receive every observation in addition to history.
	Observers []reconcile.Observer
}
