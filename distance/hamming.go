package distance

import (
	"fmt"
	"iter"
	"math/bits"
)

// HammingSeq returns the number of pairs in the sequence whose two
// sides differ.
func HammingSeq[T comparable](pairs iter.Seq2[T, T]) int {
	var n int
	for x, y := range pairs {
		if x != y {
			n++
		}
	}
	return n
}

// Hamming returns the Hamming distance between two equal-length slices,
// the count of positions holding different elements. It returns
// ErrLengthMismatch when the lengths differ.
func Hamming[T comparable](a, b []T) (int, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(a), len(b))
	}

	var n int
	for i := range a {
		if a[i] != b[i] {
			n++
		}
	}
	return n, nil
}

// HammingBytes returns the number of differing bits between two
// equal-length packed byte strings, one popcount per byte. It returns
// ErrLengthMismatch when the lengths differ.
func HammingBytes(a, b []byte) (int, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(a), len(b))
	}

	var n int
	for i := range a {
		n += bits.OnesCount8(a[i] ^ b[i])
	}
	return n, nil
}
