package result

import (
	"errors"
	"fmt"
)

const (
	opUnwrap    = "Unwrap"
	opUnwrapErr = "UnwrapErr"
)

// UnwrapError is the panic value of [Result.Unwrap] and [Result.UnwrapErr]
// when they are called on the wrong variant.
type UnwrapError struct {
	// Op is the name of the called method.
	Op string
	// Payload is what the Result actually held.
	Payload any
}

func (e *UnwrapError) Error() string {
	if e.Op == opUnwrapErr {
		return fmt.Sprintf("result: called %s on a success value: %v", e.Op, e.Payload)
	}

	return fmt.Sprintf("result: called %s on an error value: %v", e.Op, e.Payload)
}

// Unwrap returns the payload if it is an error.
func (e *UnwrapError) Unwrap() error {
	err, _ := e.Payload.(error)
	return err
}

// PanicError is a panic recovered at a wrap boundary.
type PanicError struct {
	// Value is the argument passed to panic.
	Value any
	// Stack is the goroutine stack at the moment of recovery.
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// Unwrap returns Value if it is an error.
func (e *PanicError) Unwrap() error {
	err, _ := e.Value.(error)
	return err
}

// AsPanic reports whether err carries a recovered panic and returns it.
func AsPanic(err error) (*PanicError, bool) {
	var pe *PanicError
	if errors.As(err, &pe) {
		return pe, true
	}

	return nil, false
}
