package testutil

import (
	"math/rand"
	"sync"

	"github.com/veminovici/aabel-go/bitvec"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float32 returns, as a float32, a pseudo-random number in [0.0,1.0).
func (r *RNG) Float32() float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float32()
}

// Bools returns n pseudo-random booleans.
func (r *RNG) Bools(n int) []bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	vals := make([]bool, n)
	for i := range vals {
		vals[i] = r.rand.Intn(2) == 1
	}
	return vals
}

// Bits returns n pseudo-random bits.
func (r *RNG) Bits(n int) []bitvec.Bit {
	r.mu.Lock()
	defer r.mu.Unlock()

	bits := make([]bitvec.Bit, n)
	for i := range bits {
		bits[i] = bitvec.BitOfBool(r.rand.Intn(2) == 1)
	}
	return bits
}

// Bytes returns n pseudo-random bytes.
func (r *RNG) Bytes(n int) []byte {
	r.mu.Lock()
	defer r.mu.Unlock()

	bs := make([]byte, n)
	r.rand.Read(bs) //nolint:errcheck // never fails
	return bs
}

// UniformRangeVectors generates random vectors with values in range [-1, 1).
// Uses a single backing array for efficiency.
func (r *RNG) UniformRangeVectors(num int, dimensions int) [][]float32 {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float32, num*dimensions)
	vectors := make([][]float32, num)

	for i := range num {
		vec := data[i*dimensions : (i+1)*dimensions]
		for j := range vec {
			vec[j] = r.rand.Float32()*2 - 1
		}
		vectors[i] = vec
	}

	return vectors
}
