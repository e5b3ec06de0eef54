package probe

import (
	"context"
	"fmt"
)

type guarded struct {
	next Checker
}

// Guard wraps a checker so that a panic inside it becomes an error result.
func Guard(next Checker) Checker {
	if _, ok := next.(*guarded); ok {
		return next
	}
	return &guarded{next: next}
}

func (g *guarded) Check(ctx context.Context, name string) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			res = Failed(fmt.Errorf("probe panicked: %v", r))
		}
	}()

	res = g.next.Check(ctx, name)
	if res.Err == nil && res.Outcome == OutcomeUnknown {
		res = Failed(ErrNoOutcome)
	}
	return res
}
