package result

import "runtime/debug"

// TryCatch calls fn once and converts its outcome into a Result.
//
// A returned non-nil error becomes the Err payload. A panic inside fn is
// recovered and becomes an Err holding *[PanicError].
func TryCatch[T any](fn func() (T, error)) Result[T, error] {
	v, err := call(fn)
	if err != nil {
		return Err[T](err)
	}

	return Ok[T, error](v)
}

// TryCatchMap is like [TryCatch] but passes the caught error through mapErr.
// mapErr is called only on failure.
func TryCatchMap[T, E any](fn func() (T, error), mapErr func(error) E) Result[T, E] {
	v, err := call(fn)
	if err != nil {
		return Err[T](mapErr(err))
	}

	return Ok[T, E](v)
}

// FromPair converts the usual (value, error) pair into a Result.
func FromPair[T any](v T, err error) Result[T, error] {
	if err != nil {
		return Err[T](err)
	}

	return Ok[T, error](v)
}

// Pair is the inverse of [FromPair]. The value is zero when r is an Err.
func Pair[T any](r Result[T, error]) (T, error) {
	if !r.ok {
		var zero T
		return zero, r.err
	}

	return r.value, nil
}

func call[T any](fn func() (T, error)) (v T, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			var zero T

			v = zero
			err = &PanicError{
				Value: rec,
				Stack: debug.Stack(),
			}
		}
	}()

	return fn()
}
