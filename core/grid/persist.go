package grid

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// ErrPersistence matches every *PersistenceError.
var ErrPersistence = errors.New("persistence failed")

// PersistenceError reports a save that failed on every attempt.
type PersistenceError struct {
	Location string
	// Attempts holds the error of each attempt, in order.
	Attempts []error
}

func (e *PersistenceError) Error() string {
	last := "unknown error"
	if n := len(e.Attempts); n > 0 && e.Attempts[n-1] != nil {
		last = e.Attempts[n-1].Error()
	}
	return fmt.Sprintf("failed to save %s after %d attempts: %s", e.Location, len(e.Attempts), last)
}

// Unwrap exposes ErrPersistence and every attempt error to errors.Is/As.
func (e *PersistenceError) Unwrap() []error {
	return append([]error{ErrPersistence}, e.Attempts...)
}

// RetryPolicy bounds persistence retries.
type RetryPolicy struct {
	// Attempts is the total number of tries. Values below two mean two.
	Attempts int
	// Backoff is the pause before the second try; it grows linearly.
	Backoff time.Duration
}

// DefaultRetryPolicy tries three times, half a second apart.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{Attempts: 3, Backoff: 500 * time.Millisecond}
}

// SaveWithRetry writes data to location, retrying failed attempts. It returns
// a *PersistenceError when every attempt failed, or ctx.Err() if the context
// ends while waiting between attempts.
func SaveWithRetry(ctx context.Context, store Store, location string, data []byte, policy RetryPolicy, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	attempts := policy.Attempts
	if attempts < 2 {
		attempts = 2
	}

	perr := &PersistenceError{Location: location}
	for i := 1; i <= attempts; i++ {
		err := store.Save(ctx, location, data)
		if err == nil {
			if i > 1 {
				logger.Info("Save succeeded after retry", zap.String("location", location), zap.Int("attempt", i))
			}
			return nil
		}

		perr.Attempts = append(perr.Attempts, fmt.Errorf("attempt %d: %w", i, err))
		logger.Warn("Save attempt failed",
			zap.String("location", location),
			zap.Int("attempt", i),
			zap.Int("max_attempts", attempts),
			zap.Error(err),
		)

		if i == attempts {
			break
		}
		if wait := policy.Backoff * time.Duration(i); wait > 0 {
			timer := time.NewTimer(wait)
			select {
			case <-ctx.Done():
				timer.Stop()
				return ctx.Err()
			case <-timer.C:
			}
		}
	}
	return perr
}
