package list

import (
	"errors"
	"fmt"
)

var (
	ErrIndexOutOfRange    = errors.New("index out of range")
	ErrInvariantViolation = errors.New("list invariant violated")
)

// IndexError reports an index outside the range an operation accepts:
// [0, Len) normally, [0, Len] when Inclusive is set.
type IndexError struct {
	Op        string
	Index     int
	Len       int
	Inclusive bool
}

func (e *IndexError) Error() string {
	bound := ")"
	if e.Inclusive {
		bound = "]"
	}
	return fmt.Sprintf("list: %s: index %d is not in [0..%d%s", e.Op, e.Index, e.Len, bound)
}

func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}

// InvariantError describes a broken link structure or misuse of a node handle.
type InvariantError struct {
	Op     string
	Reason string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("list: %s: %s", e.Op, e.Reason)
}

func (e *InvariantError) Unwrap() error {
	return ErrInvariantViolation
}
