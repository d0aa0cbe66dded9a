// Package result provides Result, a value that is either a success holding T
// or a failure holding E.
//
// Operations that change a type parameter, such as [Map] and [AndThen], are
// free functions:
//
//	r := result.AndThen(
//		result.TryCatch(func() (string, error) { return os.Getenv("PORT"), nil }),
//		parsePort,
//	)
//	port := r.UnwrapOr(8080)
package result

import "fmt"

// Result is either Ok holding a value of type T or Err holding an error of type E.
//
// The zero Result is an Err holding the zero E. Use [Ok] and [Err] to build one.
type Result[T, E any] struct {
	value T
	err   E
	ok    bool
}

// Ok returns a successful Result holding value.
func Ok[T, E any](value T) Result[T, E] {
	//nolint:exhaustruct
	return Result[T, E]{
		value: value,
		ok:    true,
	}
}

// Err returns a failed Result holding err.
func Err[T, E any](err E) Result[T, E] {
	//nolint:exhaustruct
	return Result[T, E]{
		err: err,
	}
}

// IsOk reports whether r holds a value.
func (r Result[T, E]) IsOk() bool {
	return r.ok
}

// IsErr reports whether r holds an error.
func (r Result[T, E]) IsErr() bool {
	return !r.ok
}

// Unwrap returns the held value.
// It panics with *[UnwrapError] if r is an Err.
func (r Result[T, E]) Unwrap() T {
	if !r.ok {
		panic(&UnwrapError{Op: opUnwrap, Payload: r.err})
	}

	return r.value
}

// UnwrapOr returns the held value, or fallback if r is an Err.
func (r Result[T, E]) UnwrapOr(fallback T) T {
	if !r.ok {
		return fallback
	}

	return r.value
}

// UnwrapErr returns the held error.
// It panics with *[UnwrapError] if r is an Ok.
func (r Result[T, E]) UnwrapErr() E {
	if r.ok {
		panic(&UnwrapError{Op: opUnwrapErr, Payload: r.value})
	}

	return r.err
}

// Value returns the held value and true, or the zero T and false.
func (r Result[T, E]) Value() (T, bool) {
	return r.value, r.ok
}

// Failure returns the held error and true, or the zero E and false.
func (r Result[T, E]) Failure() (E, bool) {
	return r.err, !r.ok
}

func (r Result[T, E]) String() string {
	if r.ok {
		return fmt.Sprintf("Ok(%v)", r.value)
	}

	return fmt.Sprintf("Err(%v)", r.err)
}

// IsOk reports whether r holds a value.
func IsOk[T, E any](r Result[T, E]) bool {
	return r.IsOk()
}

// IsErr reports whether r holds an error.
func IsErr[T, E any](r Result[T, E]) bool {
	return r.IsErr()
}
