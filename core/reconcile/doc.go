// Package reconcile fills the unknown cells of a domain/extension status table
// with fresh probe results while leaving recorded results untouched.
//
// # Architecture
//
//  1. Matrix: the in-memory status table. Rows are domains, columns are tracked
//     extensions, cells are Empty or a terminal status. A cell can only move from
//     Empty to a terminal status, once; any attempt to overwrite recorded data
//     fails with ErrInvariantViolation.
//
//  2. Engine: walks Matrix.Unresolved in row-then-column order, asks a
//     probe.Checker about each composed name, and merges the answer back. Probe
//     failures leave the cell Empty so a later run retries it.
//
//  3. Observers: side channel receiving exactly one Observation per processed
//     cell (console output, history ledger, metrics).
//
// # Invariants
//
//   - Idempotence: a second run over the output of a successful run probes nothing.
//   - No data loss: cells that were non-empty on input are never modified.
//   - Determinism: with one worker, observation order equals Unresolved order.
//
// # Usage Example
//
//	m, err := reconcile.Build(rows, columns)
//	if err != nil {
//	    return err // ErrMalformedInput
//	}
//
//	engine := reconcile.NewEngine(checker,
//	    reconcile.WithDelay(reconcile.DefaultDelayPolicy()),
//	    reconcile.WithObserver(printer),
//	)
//	summary, err := engine.Reconcile(ctx, m)
package reconcile
