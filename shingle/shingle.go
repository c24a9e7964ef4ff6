// Package shingle slides fixed-size windows over a slice, optionally
// gated by a predicate on the window's first element. Shingling feeds
// similarity pipelines: the windows of two documents, counted into
// multisets, are what the Jaccard index compares.
package shingle

import (
	"fmt"
	"iter"
)

// Slide returns the sliding windows of xs with the given size, advanced
// one element at a time. A window is yielded only when isStart accepts
// its first element; a nil isStart accepts every window. The yielded
// slices alias xs.
//
// Slide panics when size < 1.
func Slide[T any](xs []T, size int, isStart func(T) bool) iter.Seq[[]T] {
	if size < 1 {
		panic(fmt.Sprintf("shingle: window size %d must be positive", size))
	}
	return func(yield func([]T) bool) {
		for i := 0; i+size <= len(xs); i++ {
			if isStart != nil && !isStart(xs[i]) {
				continue
			}
			if !yield(xs[i : i+size]) {
				return
			}
		}
	}
}
