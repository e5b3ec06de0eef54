package history

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"domain-checker/core/reconcile"

	"gorm.io/gorm"
)

// Recorder buffers engine observations and writes them in batches.
type Recorder struct {
	db        *gorm.DB
	runID     string
	batchSize int
	now       func() time.Time

	mu      sync.Mutex
	pending []CheckRecord
}

// NewRecorder creates a recorder tagging every row with runID.
func NewRecorder(db *gorm.DB, runID string, batchSize int) *Recorder {
	if batchSize <= 0 {
		batchSize = 100
	}
	return &Recorder{
		db:        db,
		runID:     runID,
		batchSize: batchSize,
		now:       time.Now,
	}
}

// RunID returns the run identifier stamped on recorded rows.
func (r *Recorder) RunID() string {
	return r.runID
}

// Observe implements reconcile.Observer.
func (r *Recorder) Observe(o reconcile.Observation) {
	rec := CheckRecord{
		RunID:         r.runID,
		Row:           o.Row,
		Column:        o.Column,
		Domain:        truncate(o.Domain, 253),
		Extension:     truncate(o.Extension, 63),
		Name:          truncate(strings.ToLower(o.Name), 255),
		Outcome:       o.Outcome.String(),
		ElapsedMillis: o.Elapsed.Milliseconds(),
		CheckedAt:     r.now().UTC(),
	}
	if o.Err != nil {
		rec.Error = truncate(o.Err.Error(), 1024)
	}

	r.mu.Lock()
	r.pending = append(r.pending, rec)
	r.mu.Unlock()
}

// Pending returns the number of buffered records.
func (r *Recorder) Pending() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.pending)
}

// Flush writes buffered records and returns how many were written.
// On failure the records stay buffered so Flush can be retried.
func (r *Recorder) Flush(ctx context.Context) (int, error) {
	r.mu.Lock()
	batch := r.pending
	r.pending = nil
	r.mu.Unlock()

	if len(batch) == 0 {
		return 0, nil
	}

	if err := r.db.WithContext(ctx).CreateInBatches(&batch, r.batchSize).Error; err != nil {
		for i := range batch {
			batch[i].ID = 0
		}
		r.mu.Lock()
		r.pending = append(batch, r.pending...)
		r.mu.Unlock()
		return 0, fmt.Errorf("failed to write history: %w", err)
	}
	return len(batch), nil
}

// truncate keeps at most n characters of s, matching varchar(n) semantics,
// and never splits a multi-byte rune.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
