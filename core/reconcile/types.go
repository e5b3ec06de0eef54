package reconcile

import (
	"time"

	"domain-checker/core/probe"
)

// Status is the persisted value of one table cell.
// Any non-empty text found in the input is authoritative, even if it is not one
// of the constants below.
type Status string

const (
	// StatusEmpty marks a cell that still needs checking.
	StatusEmpty Status = ""
	// StatusRegistered is written when the probe reports the name as taken.
	StatusRegistered Status = "Registered"
	// StatusNotRegistered is written when the probe reports the name as available.
	StatusNotRegistered Status = "Not Registered"
)

// IsEmpty reports whether the cell is still unresolved.
func (s Status) IsEmpty() bool { return s == StatusEmpty }

// StatusFor maps a probe outcome to the status persisted for it.
// ok is false for OutcomeUnknown, which must leave the cell Empty.
func StatusFor(outcome probe.Outcome) (status Status, ok bool) {
	switch outcome {
	case probe.OutcomeAvailable:
		return StatusNotRegistered, true
	case probe.OutcomeRegistered:
		return StatusRegistered, true
	default:
		return StatusEmpty, false
	}
}

// Column is a tracked extension column of the input table.
type Column struct {
	// Index is the position of the column in the source grid.
	Index int `json:"index"`
	// Extension is the suffix tracked by this column.
	Extension string `json:"extension"`
}

// Row is one domain row of the input table.
type Row struct {
	// Index is the position of the row in the source grid.
	Index int
	// Domain is the registrable name of the row.
	Domain string
	// Cells maps a column index to the raw text found there.
	Cells map[int]string
}

// Cell identifies one unresolved (row, column) pair.
type Cell struct {
	Row       int
	Column    int
	Domain    string
	Extension string
}

// RowSnapshot is the final state of a tracked row. Statuses is aligned with
// Matrix.Columns.
type RowSnapshot struct {
	Index    int      `json:"index"`
	Domain   string   `json:"domain"`
	Statuses []Status `json:"statuses"`
}

// Observation describes one processed cell.
type Observation struct {
	Row       int
	Column    int
	Domain    string
	Extension string
	// Name is the fully-qualified name that was probed.
	Name    string
	Outcome probe.Outcome
	// Err is set when the probe could not decide; the cell stays Empty.
	Err error
	// Elapsed is the probe latency, excluding the courtesy delay.
	Elapsed time.Duration
}

// Observer receives observations. Calls are serialized by the engine.
type Observer interface {
	Observe(Observation)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(Observation)

// Observe calls f(o).
func (f ObserverFunc) Observe(o Observation) { f(o) }

// Summary provides aggregate counts for a reconciliation run.
type Summary struct {
	// Tracked is the number of cells in the matrix.
	Tracked int `json:"tracked" yaml:"tracked"`
	// Preserved counts cells that already held a status before the run.
	Preserved int `json:"preserved" yaml:"preserved"`
	// Checked counts probe invocations.
	Checked int `json:"checked" yaml:"checked"`
	// Registered counts cells resolved to "Registered".
	Registered int `json:"registered" yaml:"registered"`
	// Available counts cells resolved to "Not Registered".
	Available int `json:"available" yaml:"available"`
	// Errors counts probe failures; those cells stay Empty.
	Errors int `json:"errors" yaml:"errors"`
	// Duration is the wall time of the run.
	Duration time.Duration `json:"duration" yaml:"duration"`
}

// Resolved returns the number of cells that received a status in this run.
func (s Summary) Resolved() int { return s.Registered + s.Available }

// Config holds reconciliation tuning.
type Config struct {
	// Workers is the number of probes in flight. One keeps the run sequential.
	Workers int `mapstructure:"workers" default:"1"`
	// MaxWorkers caps Workers and any per-run override of it.
	MaxWorkers int `mapstructure:"max_workers" default:"8"`
	// MinDelayMillis is the lower bound of the delay before each probe.
	MinDelayMillis int `mapstructure:"min_delay_ms" default:"30"`
	// MaxDelayMillis is the upper bound of the delay before each probe.
	MaxDelayMillis int `mapstructure:"max_delay_ms" default:"500"`
	// SaveAttempts is how many times persistence is tried before giving up.
	SaveAttempts int `mapstructure:"save_attempts" default:"3"`
	// SaveBackoffMillis is the pause between persistence attempts.
	SaveBackoffMillis int `mapstructure:"save_backoff_ms" default:"500"`
}

// WorkerLimit returns requested clamped to [1, MaxWorkers]. A non-positive
// request means the configured Workers; a non-positive MaxWorkers means 1.
func (c Config) WorkerLimit(requested int) int {
	n := requested
	if n <= 0 {
		n = c.Workers
	}
	limit := c.MaxWorkers
	if limit <= 0 {
		limit = 1
	}
	return max(1, min(n, limit))
}

// DelayPolicy returns the delay policy described by the configuration.
func (c Config) DelayPolicy() DelayPolicy {
	return NewDelayPolicy(
		time.Duration(c.MinDelayMillis)*time.Millisecond,
		time.Duration(c.MaxDelayMillis)*time.Millisecond,
	)
}
