package quantization

import (
	"errors"
	"fmt"

	"github.com/veminovici/aabel-go/bitvec"
	"github.com/veminovici/aabel-go/distance"
)

// BinaryQuantizer implements binary quantization (1-bit per dimension).
// It compresses float32 vectors (4 bytes/dim) to bit vectors
// (0.125 bytes/dim) for 32x memory savings.
//
// Binary quantization uses a simple threshold: values >= threshold become
// One, otherwise Zero. Distance between codes is Hamming distance, which
// is far cheaper than float arithmetic at a real accuracy cost.
//
// Trade-offs:
//   - 32x compression ratio (vs float32)
//   - Very fast distance computation (popcount over packed bytes)
//   - Significant accuracy loss for fine-grained similarity
//   - Best used for coarse filtering ahead of an exact metric
type BinaryQuantizer struct {
	dimension int     // Expected vector dimension
	threshold float32 // Value threshold for binary encoding
	trained   bool    // Whether threshold has been calibrated
}

// NewBinaryQuantizer creates a new binary quantizer for the given dimension.
// The default threshold is 0.0 (sign-based quantization).
func NewBinaryQuantizer(dimension int) *BinaryQuantizer {
	return &BinaryQuantizer{
		dimension: dimension,
		threshold: 0.0,
		trained:   false,
	}
}

// WithThreshold sets a custom threshold for binary encoding.
// Values >= threshold become One, values < threshold become Zero.
func (bq *BinaryQuantizer) WithThreshold(threshold float32) *BinaryQuantizer {
	bq.threshold = threshold
	bq.trained = true
	return bq
}

// Train calibrates the quantizer by computing the mean value across all
// vectors. The mean is used as the threshold for binary encoding.
func (bq *BinaryQuantizer) Train(vectors [][]float32) error {
	if len(vectors) == 0 {
		return errors.New("no vectors provided for training")
	}

	var sum float64
	var count int
	for _, vec := range vectors {
		for _, val := range vec {
			sum += float64(val)
			count++
		}
	}

	if count > 0 {
		bq.threshold = float32(sum / float64(count))
	}
	bq.trained = true

	return nil
}

// Encode quantizes a float32 vector to a binary code of exactly
// Dimension() bits, one bit per dimension in order. It fails when the
// vector is not Dimension() long.
func (bq *BinaryQuantizer) Encode(v []float32) (*bitvec.Vector, error) {
	if len(v) != bq.dimension {
		return nil, fmt.Errorf("quantization: vector has %d dimensions, want %d", len(v), bq.dimension)
	}

	code := bitvec.New(bq.dimension)
	for i, val := range v {
		if val >= bq.threshold {
			code.SetBit(i)
		}
	}
	return code, nil
}

// Decode reconstructs a float32 vector from a binary code.
// The reconstruction is lossy: values are either threshold-0.5 or
// threshold+0.5.
func (bq *BinaryQuantizer) Decode(code *bitvec.Vector) ([]float32, error) {
	if code.Len() != bq.dimension {
		return nil, fmt.Errorf("quantization: code has %d bits, want %d", code.Len(), bq.dimension)
	}

	decoded := make([]float32, bq.dimension)
	for i := range decoded {
		if code.Bit(i) == bitvec.One {
			decoded[i] = bq.threshold + 0.5
		} else {
			decoded[i] = bq.threshold - 0.5
		}
	}
	return decoded, nil
}

// Distance returns the Hamming distance between two binary codes, the
// count of dimensions sitting on opposite sides of the threshold.
func (bq *BinaryQuantizer) Distance(a, b *bitvec.Vector) (int, error) {
	if a.Len() != b.Len() {
		return 0, fmt.Errorf("%w: %d vs %d", distance.ErrLengthMismatch, a.Len(), b.Len())
	}
	return distance.HammingBytes(a.Bytes(), b.Bytes())
}

// BytesTotal returns the packed storage size of one code.
func (bq *BinaryQuantizer) BytesTotal() int {
	return (bq.dimension + 7) / 8
}

// Dimension returns the expected vector dimension.
func (bq *BinaryQuantizer) Dimension() int {
	return bq.dimension
}

// Threshold returns the current threshold value.
func (bq *BinaryQuantizer) Threshold() float32 {
	return bq.threshold
}

// IsTrained returns whether the quantizer has been trained.
func (bq *BinaryQuantizer) IsTrained() bool {
	return bq.trained
}

// CompressionRatio returns the compression ratio vs float32 storage.
// For binary quantization, this is always 32x.
func (bq *BinaryQuantizer) CompressionRatio() float32 {
	return 32.0
}
