package result

import (
	"context"
	"fmt"
)

// Future is a Result that settles once, when the computation behind it returns.
type Future[T, E any] struct {
	done chan struct{}
	res  Result[T, E]
}

// FromPromise starts fn on its own goroutine and returns a Future of its outcome.
// The outcome is converted the same way [TryCatch] converts it.
func FromPromise[T any](fn func() (T, error)) *Future[T, error] {
	return FromPromiseMap(fn, func(err error) error { return err })
}

// FromPromiseMap is like [FromPromise] but passes the caught error through mapErr.
func FromPromiseMap[T, E any](fn func() (T, error), mapErr func(error) E) *Future[T, E] {
	//nolint:exhaustruct
	f := &Future[T, E]{
		done: make(chan struct{}),
	}

	go func() {
		defer close(f.done)

		f.res = TryCatchMap(fn, mapErr)
	}()

	return f
}

// Done returns a channel that is closed once the Future has settled.
func (f *Future[T, E]) Done() <-chan struct{} {
	return f.done
}

// Wait blocks until the Future settles and returns its Result.
// It never returns if the computation never does.
func (f *Future[T, E]) Wait() Result[T, E] {
	<-f.done
	return f.res
}

// Await is like [Future.Wait] but gives up waiting when ctx is done.
// The computation itself keeps running; a later Wait still observes its Result.
func (f *Future[T, E]) Await(ctx context.Context) (Result[T, E], error) {
	select {
	case <-f.done:
		return f.res, nil
	case <-ctx.Done():
		var zero Result[T, E]
		return zero, fmt.Errorf("context is done: %w", ctx.Err())
	}
}
