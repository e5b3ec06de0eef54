package probe

import (
	"context"
	"time"
)

// Metrics receives one observation per completed check.
type Metrics interface {
	ObserveCheck(outcome string, elapsed time.Duration)
}

type instrumented struct {
	next    Checker
	metrics Metrics
}

// Instrument reports the outcome and latency of every check to m.
func Instrument(next Checker, m Metrics) Checker {
	if m == nil {
		return next
	}
	return &instrumented{next: next, metrics: m}
}

func (i *instrumented) Check(ctx context.Context, name string) Result {
	start := time.Now()
	res := i.next.Check(ctx, name)
	i.metrics.ObserveCheck(res.Outcome.String(), time.Since(start))
	return res
}
