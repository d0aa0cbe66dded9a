package result

import (
	"context"
	"fmt"
	"runtime"

	"github.com/meeghele/tiny-result/internal/xslices"
	"golang.org/x/sync/errgroup"
)

// RunAll calls every fn with at most jobs of them running at once and
// returns their outcomes in the order of fns.
//
// If jobs is 0 or less the number of CPU cores is used. A failing fn never
// stops the others. Functions not yet started when ctx is done are skipped
// and their slot holds the context error.
func RunAll[T any](ctx context.Context, jobs int, fns ...func(context.Context) (T, error)) []Result[T, error] {
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}

	results := make([]Result[T, error], len(fns))

	var eg errgroup.Group

	for start, end := range xslices.Ranges(len(fns), jobs) {
		eg.Go(func() error {
			wrkr := runWorker[T]{
				fns:     fns[start:end:end],
				results: results[start:end:end],
			}

			wrkr.run(ctx)

			return nil
		})
	}

	_ = eg.Wait()

	return results
}

type runWorker[T any] struct {
	fns     []func(context.Context) (T, error)
	results []Result[T, error]
}

func (rw *runWorker[T]) run(ctx context.Context) {
	for i, fn := range rw.fns {
		if err := ctx.Err(); err != nil {
			rw.results[i] = Err[T](fmt.Errorf("context is done: %w", err))
			continue
		}

		rw.results[i] = TryCatch(func() (T, error) {
			return fn(ctx)
		})
	}
}
