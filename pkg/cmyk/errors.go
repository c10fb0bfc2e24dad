package cmyk

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by this package wraps exactly one of them.
var (
	ErrValidation  = errors.New("invalid cmyk value")
	ErrType        = errors.New("wrong operand type")
	ErrRange       = errors.New("component out of range")
	ErrArithmetic  = errors.New("division by zero")
	ErrUnsupported = errors.New("unsupported operation")
)

// Error describes a failed operation on a color.
type Error struct {
	Op         string // operation that failed, e.g. "times"
	Value      any    // the offending value
	Constraint string // what the value was expected to satisfy
	Kind       error  // one of the Err* sentinels
}

func (e *Error) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("cmyk %s: %v: %s", e.Op, e.Kind, e.Constraint)
	}
	return fmt.Sprintf("cmyk %s: %v: %v: %s", e.Op, e.Kind, e.Value, e.Constraint)
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func newError(kind error, op string, value any, constraint string) *Error {
	return &Error{Op: op, Value: value, Constraint: constraint, Kind: kind}
}
