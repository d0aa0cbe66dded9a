package result

import "iter"

// Partitioned holds the payloads of a slice of Results, split by variant.
type Partitioned[T, E any] struct {
	Successes []T
	Failures  []E
}

// All returns Ok of every value in order if all results are Ok.
// Otherwise it returns the first Err and looks no further.
func All[T, E any](results []Result[T, E]) Result[[]T, E] {
	values := make([]T, 0, len(results))

	for _, r := range results {
		if !r.ok {
			return Err[[]T](r.err)
		}

		values = append(values, r.value)
	}

	return Ok[[]T, E](values)
}

// AllSeq is like [All] but pulls results from seq and stops at the first Err.
func AllSeq[T, E any](seq iter.Seq[Result[T, E]]) Result[[]T, E] {
	values := []T{}

	for r := range seq {
		if !r.ok {
			return Err[[]T](r.err)
		}

		values = append(values, r.value)
	}

	return Ok[[]T, E](values)
}

// Partition splits results into values and errors, keeping the input order
// inside each group. Unlike [All] it always reads the whole input.
func Partition[T, E any](results []Result[T, E]) Partitioned[T, E] {
	p := Partitioned[T, E]{
		Successes: []T{},
		Failures:  []E{},
	}

	for _, r := range results {
		if r.ok {
			p.Successes = append(p.Successes, r.value)
		} else {
			p.Failures = append(p.Failures, r.err)
		}
	}

	return p
}
