package xslices

import (
	"iter"
	"math"
)

// Ranges splits the index range [0, n) into at most parts contiguous half-open
// ranges of nearly equal length and yields their bounds.
//
// It is the index form of splitting a slice into uniformly filled parts: every
// range but the last has length n/parts rounded to the nearest integer (at
// least 1), the last one takes what is left. Fewer ranges are yielded when the
// rounded length runs out of indexes early.
func Ranges(n, parts int) iter.Seq2[int, int] {
	if parts < 1 {
		panic("cannot be less than 1")
	}

	return func(yield func(start, end int) bool) {
		k := max(1, int(math.Round(float64(n)/float64(parts))))

		for i := range parts {
			start := i * k
			end := min((i+1)*k, n)

			if i == parts-1 {
				end = n
			}

			if end-start <= 0 {
				return
			}

			if !yield(start, end) {
				return
			}
		}
	}
}
