package probe

import (
	"context"
	"errors"
)

// Outcome is the answer a Checker gives for a name.
type Outcome int

const (
	// OutcomeUnknown means the check failed; Result.Err carries the cause.
	OutcomeUnknown Outcome = iota
	// OutcomeAvailable means nobody holds the name.
	OutcomeAvailable
	// OutcomeRegistered means the name is taken.
	OutcomeRegistered
)

// String returns the lower-case label used in logs and metrics.
func (o Outcome) String() string {
	switch o {
	case OutcomeAvailable:
		return "available"
	case OutcomeRegistered:
		return "registered"
	default:
		return "unknown"
	}
}

// ErrNoOutcome is reported when a checker returns neither an outcome nor an error.
var ErrNoOutcome = errors.New("probe returned no outcome")

// Result is the tri-state answer of a single check.
type Result struct {
	Outcome Outcome
	Err     error
}

// Available builds a successful "not registered" result.
func Available() Result { return Result{Outcome: OutcomeAvailable} }

// Registered builds a successful "registered" result.
func Registered() Result { return Result{Outcome: OutcomeRegistered} }

// Failed builds an error result.
func Failed(err error) Result {
	if err == nil {
		err = ErrNoOutcome
	}
	return Result{Outcome: OutcomeUnknown, Err: err}
}

// OK reports whether the result carries a definitive answer.
func (r Result) OK() bool {
	return r.Err == nil && r.Outcome != OutcomeUnknown
}

// Checker determines the registration status of a fully-qualified name.
// Implementations must not panic and must report every failure via Result.Err.
type Checker interface {
	Check(ctx context.Context, name string) Result
}

// CheckerFunc adapts a plain function to the Checker interface.
type CheckerFunc func(ctx context.Context, name string) Result

// Check calls f(ctx, name).
func (f CheckerFunc) Check(ctx context.Context, name string) Result {
	return f(ctx, name)
}
