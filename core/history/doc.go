// Package history keeps a ledger of every probe the reconciliation engine
// performs.
//
// A Recorder is registered as a reconcile.Observer. It buffers observations
// in memory during the run and writes them to the domain_checks table when
// Flush is called, so a slow database never delays probing. Recent answers
// "when was this name last checked and what did we see".
//
// History is optional: the CLI and server carry on without it when the
// database cannot be reached.
//
//	db, err := history.Open(cfg.Database, cfg.History)
//	rec := history.NewRecorder(db, runID, cfg.History.BatchSize)
//	engine := reconcile.NewEngine(checker, reconcile.WithObserver(rec))
//	...
//	n, err := rec.Flush(ctx)
package history
