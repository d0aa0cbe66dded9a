package result

// Map returns Ok(f(v)) if r is Ok(v). An Err is returned unchanged and f is not called.
func Map[T, U, E any](r Result[T, E], f func(T) U) Result[U, E] {
	if !r.ok {
		return Err[U](r.err)
	}

	return Ok[U, E](f(r.value))
}

// MapErr returns Err(f(e)) if r is Err(e). An Ok is returned unchanged and f is not called.
func MapErr[T, E, F any](r Result[T, E], f func(E) F) Result[T, F] {
	if r.ok {
		return Ok[T, F](r.value)
	}

	return Err[T](f(r.err))
}

// AndThen returns f(v) if r is Ok(v), and r's error otherwise.
// A chain of AndThen calls stops at the first Err.
func AndThen[T, U, E any](r Result[T, E], f func(T) Result[U, E]) Result[U, E] {
	if !r.ok {
		return Err[U](r.err)
	}

	return f(r.value)
}

// OrElse returns f(e) if r is Err(e), and r's value otherwise.
func OrElse[T, E, F any](r Result[T, E], f func(E) Result[T, F]) Result[T, F] {
	if r.ok {
		return Ok[T, F](r.value)
	}

	return f(r.err)
}

// Match calls exactly one of the handlers with the held payload and returns its result.
func Match[T, E, U any](r Result[T, E], onOk func(T) U, onErr func(E) U) U {
	if r.ok {
		return onOk(r.value)
	}

	return onErr(r.err)
}
