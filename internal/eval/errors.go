package eval

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidOperation is returned for operator symbols missing from the registry.
	ErrInvalidOperation = errors.New("invalid operation")
	// ErrDivideByZero is returned when the divisor is zero.
	ErrDivideByZero = errors.New("divide by zero")
	// ErrExponentRange is returned when an exponent cannot be represented
	// as the exponent type of the numeric mode.
	ErrExponentRange = errors.New("exponent out of range")
	// ErrOverflow is returned when an integer result does not fit in 64 bits.
	ErrOverflow = errors.New("arithmetic overflow")
	// ErrNegativeRoot is returned for the integer square root of a negative number.
	ErrNegativeRoot = errors.New("square root of negative number")
)

// OperationError records the operator that failed together with the cause.
type OperationError struct {
	Op  string
	Err error
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("%v (operator %q)", e.Err, e.Op)
}

func (e *OperationError) Unwrap() error {
	return e.Err
}
