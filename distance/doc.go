// Package distance provides the distance and similarity functions of
// the library: Euclidean, Manhattan, cosine and dot product over float
// vectors, Hamming over comparable elements and packed bytes, and the
// Jaccard family over multisets and roaring bitmaps.
//
// # Supported Metrics
//
//   - MetricEuclid: Euclidean (L2) distance
//   - MetricManhattan: Manhattan (taxicab) distance
//   - MetricCosine: cosine similarity
//   - MetricDot: dot product (inner product)
//
// # Usage
//
//	d, err := distance.Euclid(a, b)
//	if err != nil {
//		// lengths differ
//	}
//
// Every float metric also has a sequence form consuming an iter.Seq2 of
// coordinate pairs, for callers that stream coordinates instead of
// materializing slices:
//
//	d := distance.EuclidSeq(pairs)
//
// The slice forms return ErrLengthMismatch when the two vectors differ
// in length; the sequence forms place pairing in the caller's hands and
// cannot fail.
package distance
