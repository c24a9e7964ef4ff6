// Package permute generates the orderings of a slice with Heap's
// algorithm, eagerly through All or lazily through Seq.
package permute

import (
	"iter"
	"slices"
)

// All returns every ordering of xs, n! results for n elements. The
// first result is the input order and each result is an independent
// copy. xs itself is the working buffer and is left in one of its
// orderings.
func All[T any](xs []T) [][]T {
	var out [][]T
	for p := range Seq(xs) {
		out = append(out, slices.Clone(p))
	}
	return out
}

// Seq yields the orderings of xs one swap at a time, permuting xs in
// place. The yielded slice is the live working buffer: callers that
// retain a result past one iteration must copy it.
func Seq[T any](xs []T) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		if !yield(xs) {
			return
		}

		counts := make([]int, len(xs))
		for i := 1; i < len(xs); {
			if counts[i] < i {
				j := 0
				if i%2 != 0 {
					j = counts[i]
				}
				xs[j], xs[i] = xs[i], xs[j]
				if !yield(xs) {
					return
				}
				counts[i]++
				i = 1
			} else {
				counts[i] = 0
				i++
			}
		}
	}
}
