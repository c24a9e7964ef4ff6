// Package aabel provides packed bit vectors and the similarity
// primitives built on top of them.
//
// The module is a collection of small, independent packages:
//
//   - bitvec: Bit, Byte, Position and the growable packed Vector
//   - distance: Euclidean, Manhattan, cosine, dot, Hamming and Jaccard
//   - multiset: counting sets backing the Jaccard index
//   - permute: orderings of a slice via Heap's algorithm
//   - shingle: predicate-gated sliding windows over slices
//   - quantization: binary quantization of float vectors into bit codes
//
// # Quick Start
//
// Pack bits and read them back:
//
//	v := bitvec.New(10)
//	v.SetBit(4)
//	v.SetBit(6)
//	v.Bit(4)  // One
//	v.Ones()  // roaring bitmap {4, 6}
//
// Compare documents by their shingles:
//
//	xs := shingle.Slide(wordsX, 3, nil)
//	ys := shingle.Slide(wordsY, 3, nil)
//	// count windows into multisets, then
//	j := distance.JaccardMultisets(mx, my)
//
// Compress float vectors into Hamming-comparable codes:
//
//	bq := quantization.NewBinaryQuantizer(128)
//	code, _ := bq.Encode(vec)
//	d, _ := bq.Distance(code, other)
//
// # Key Features
//
//   - Single-bit addressing over byte-packed storage, MSB-first offsets
//   - Amortized growth, no shrink, no hidden sharing
//   - Distance metrics over slices or streamed coordinate pairs
//   - Multiset Jaccard with exact occurrence accounting
//   - Roaring bitmaps as the sparse view of a bit vector
package aabel
