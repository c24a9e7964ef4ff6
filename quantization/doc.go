// Package quantization compresses float vectors into compact binary
// codes for memory reduction.
//
// Binary quantization keeps 1 bit per dimension, packed into a bit
// vector: values at or above a threshold encode as One, the rest as
// Zero. The threshold defaults to 0 (sign quantization) and can be set
// explicitly or calibrated to the mean of a training set:
//
//	bq := quantization.NewBinaryQuantizer(128)
//	if err := bq.Train(vectors); err != nil { ... }
//
//	code, err := bq.Encode(vec) // 128 floats -> 128 bits
//
// Distance between codes is the Hamming distance, the number of
// dimensions falling on opposite sides of the threshold:
//
//	d, err := bq.Distance(code1, code2)
//
// Compression is 32x versus float32 storage. Recall loss is
// significant, so binary codes suit coarse filtering ahead of an exact
// metric rather than final ranking.
package quantization
