package result

type Result[T, E any] struct {
	value T
	err   E
	ok    bool
}

func Ok[T, E any](v T) Result[T, E] { return Result[T, E]{value: v, ok: true} }

func Err[T, E any](err E) Result[T, E] { return Result[T, E]{err: err} }

func (r Result[T, E]) IsOk() bool  { return r.ok }
func (r Result[T, E]) IsErr() bool { return !r.ok }

func (r Result[T, E]) Unwrap() T {
	if !r.ok {
		panic("unwrap")
	}
	return r.value
}

func (r Result[T, E]) UnwrapErr() E {
	if r.ok {
		panic("unwrap err")
	}
	return r.err
}

func (r Result[T, E]) UnwrapOr(fallback T) T {
	if !r.ok {
		return fallback
	}
	return r.value
}

func IsOk[T, E any](r Result[T, E]) bool  { return r.ok }
func IsErr[T, E any](r Result[T, E]) bool { return !r.ok }
