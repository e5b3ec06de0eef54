package reconcile

import (
	"context"
	"math/rand/v2"
	"time"
)

// DelayPolicy is the courtesy pause taken before each probe so the lookup
// service is not hit in bursts. The pause is drawn uniformly from [Min, Max].
type DelayPolicy struct {
	Min time.Duration
	Max time.Duration

	// jitter returns a value in [0, n). Defaults to math/rand/v2.Int64N.
	jitter func(n int64) int64
}

// NewDelayPolicy creates a policy with the given bounds. Bounds are swapped if
// given in the wrong order and clamped at zero.
func NewDelayPolicy(min, max time.Duration) DelayPolicy {
	if min < 0 {
		min = 0
	}
	if max < 0 {
		max = 0
	}
	if max < min {
		min, max = max, min
	}
	return DelayPolicy{Min: min, Max: max}
}

// DefaultDelayPolicy waits between 30 and 500 milliseconds.
func DefaultDelayPolicy() DelayPolicy {
	return NewDelayPolicy(30*time.Millisecond, 500*time.Millisecond)
}

// NoDelay disables the pause.
func NoDelay() DelayPolicy {
	return DelayPolicy{}
}

// WithJitter returns a copy of p drawing randomness from fn.
func (p DelayPolicy) WithJitter(fn func(n int64) int64) DelayPolicy {
	p.jitter = fn
	return p
}

// Next returns the next pause.
func (p DelayPolicy) Next() time.Duration {
	span := int64(p.Max - p.Min)
	if span <= 0 {
		return p.Min
	}
	jitter := p.jitter
	if jitter == nil {
		jitter = rand.Int64N
	}
	return p.Min + time.Duration(jitter(span+1))
}

// Wait sleeps for the next pause or until ctx is done.
func (p DelayPolicy) Wait(ctx context.Context) error {
	d := p.Next()
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
