package probe

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"
)

type rateLimited struct {
	next    Checker
	limiter *rate.Limiter
}

// RateLimited puts a token bucket of perSecond checks (burst size burst) in
// front of next. A non-positive rate disables limiting.
func RateLimited(next Checker, perSecond float64, burst int) Checker {
	if perSecond <= 0 {
		return next
	}
	if burst < 1 {
		burst = 1
	}
	return &rateLimited{
		next:    next,
		limiter: rate.NewLimiter(rate.Limit(perSecond), burst),
	}
}

func (r *rateLimited) Check(ctx context.Context, name string) Result {
	if err := r.limiter.Wait(ctx); err != nil {
		return Failed(fmt.Errorf("rate limiter: %w", err))
	}
	return r.next.Check(ctx, name)
}
