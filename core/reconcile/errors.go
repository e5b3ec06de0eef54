package reconcile

import "errors"

var (
	// ErrMalformedInput is returned when the table has no trackable extension
	// columns or is structurally empty. No probing happens.
	ErrMalformedInput = errors.New("malformed input")

	// ErrInvariantViolation is returned when something tries to overwrite a cell
	// that already holds a status. It indicates a defect in the caller.
	ErrInvariantViolation = errors.New("invariant violation")
)
