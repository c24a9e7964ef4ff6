package distance

import (
	"errors"
	"fmt"
	"iter"
	"math"
)

// ErrLengthMismatch is returned when two vectors that must be compared
// coordinate by coordinate have different lengths.
var ErrLengthMismatch = errors.New("length mismatch")

// Pairs zips two slices into a sequence of coordinate pairs, the form
// the Seq metrics consume, stopping at the end of the shorter slice.
func Pairs[T any](a, b []T) iter.Seq2[T, T] {
	return func(yield func(T, T) bool) {
		n := min(len(a), len(b))
		for i := 0; i < n; i++ {
			if !yield(a[i], b[i]) {
				return
			}
		}
	}
}

// EuclidSeq returns the Euclidean distance over a sequence of
// coordinate pairs, the square root of the summed squared differences.
func EuclidSeq(pairs iter.Seq2[float32, float32]) float32 {
	var sum float32
	for x, y := range pairs {
		d := x - y
		sum += d * d
	}
	return float32(math.Sqrt(float64(sum)))
}

// Euclid returns the Euclidean distance between two equal-length
// vectors. It returns ErrLengthMismatch when the lengths differ; two
// empty vectors are at distance 0.
func Euclid(a, b []float32) (float32, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(a), len(b))
	}
	return EuclidSeq(Pairs(a, b)), nil
}

// ManhattanSeq returns the Manhattan distance over a sequence of
// coordinate pairs, the sum of the absolute differences.
func ManhattanSeq(pairs iter.Seq2[float32, float32]) float32 {
	var sum float32
	for x, y := range pairs {
		d := x - y
		if d < 0 {
			d = -d
		}
		sum += d
	}
	return sum
}

// Manhattan returns the Manhattan distance between two equal-length
// vectors. It returns ErrLengthMismatch when the lengths differ.
func Manhattan(a, b []float32) (float32, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(a), len(b))
	}
	return ManhattanSeq(Pairs(a, b)), nil
}

// DotSeq returns the dot product over a sequence of coordinate pairs.
func DotSeq(pairs iter.Seq2[float32, float32]) float32 {
	var sum float32
	for x, y := range pairs {
		sum += x * y
	}
	return sum
}

// Dot returns the dot product of two equal-length vectors.
// It returns ErrLengthMismatch when the lengths differ.
func Dot(a, b []float32) (float32, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(a), len(b))
	}
	return DotSeq(Pairs(a, b)), nil
}

// CosineSeq returns the cosine similarity over a sequence of coordinate
// pairs, accumulating the dot product and both squared magnitudes in a
// single pass. A zero magnitude on either side yields 0.
func CosineSeq(pairs iter.Seq2[float32, float32]) float32 {
	var dot, xx, yy float32
	for x, y := range pairs {
		dot += x * y
		xx += x * x
		yy += y * y
	}

	denom := float32(math.Sqrt(float64(xx))) * float32(math.Sqrt(float64(yy)))
	if denom == 0 {
		return 0
	}
	return dot / denom
}

// Cosine returns the cosine similarity of two equal-length vectors.
// It returns ErrLengthMismatch when the lengths differ.
func Cosine(a, b []float32) (float32, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(a), len(b))
	}
	return CosineSeq(Pairs(a, b)), nil
}

// Metric represents the distance metric used for vector comparison.
type Metric int

const (
	MetricEuclid Metric = iota
	MetricManhattan
	MetricCosine
	MetricDot
)

func (m Metric) String() string {
	switch m {
	case MetricEuclid:
		return "Euclid"
	case MetricManhattan:
		return "Manhattan"
	case MetricCosine:
		return "Cosine"
	case MetricDot:
		return "Dot"
	default:
		return fmt.Sprintf("Unknown(%d)", int(m))
	}
}

// Func is a function type for distance calculation between two float
// vectors.
type Func func(a, b []float32) (float32, error)

// Provider returns the distance function for the given metric.
func Provider(m Metric) (Func, error) {
	switch m {
	case MetricEuclid:
		return Euclid, nil
	case MetricManhattan:
		return Manhattan, nil
	case MetricCosine:
		return Cosine, nil
	case MetricDot:
		return Dot, nil
	default:
		return nil, fmt.Errorf("unsupported metric: %v", m)
	}
}
