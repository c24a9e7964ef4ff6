package bitvec

import (
	"fmt"
	"iter"
	"math"
	"slices"
	"strings"

	"github.com/RoaringBitmap/roaring/v2"
)

// growthBurst is the number of zeroed storage bytes appended whenever
// Extend exhausts the current bit capacity. Growing in bursts trades a
// little slack for fewer reallocations; the exact size is a tuning
// knob, not part of the contract.
const growthBurst = 8

// Vector is a growable sequence of bits packed into byte-granular
// storage.
//
// Every operation takes a flat bit index, routes it through Position to
// the storage byte holding the bit, and delegates the single-bit work
// to Byte. A Vector only grows; there is no removal or shrink.
type Vector struct {
	data   []byte
	length int
}

// New creates a vector of n bits, all Zero, backed by ceil(n/8) zeroed
// storage bytes. It panics when n is negative.
func New(n int) *Vector {
	if n < 0 {
		panic(fmt.Sprintf("bitvec: negative vector length %d", n))
	}
	return &Vector{
		data:   make([]byte, (n+7)/8),
		length: n,
	}
}

// Len returns the number of bits in the vector.
func (v *Vector) Len() int {
	return v.length
}

// position bounds-checks a flat index and translates it.
func (v *Vector) position(i int) Position {
	if i < 0 || i >= v.length {
		panic(fmt.Sprintf("bitvec: bit index %d out of range [0,%d)", i, v.length))
	}
	return PositionOf(i)
}

// Bit returns the bit at index i.
// It panics unless 0 <= i < Len().
func (v *Vector) Bit(i int) Bit {
	p := v.position(i)
	return Byte(v.data[p.Index]).Bit(p.Offset)
}

// SetBit forces the bit at index i to One.
// It panics unless 0 <= i < Len().
func (v *Vector) SetBit(i int) {
	p := v.position(i)
	v.data[p.Index] = uint8(Byte(v.data[p.Index]).SetBit(p.Offset))
}

// ResetBit forces the bit at index i to Zero.
// It panics unless 0 <= i < Len().
func (v *Vector) ResetBit(i int) {
	p := v.position(i)
	v.data[p.Index] = uint8(Byte(v.data[p.Index]).ResetBit(p.Offset))
}

// ToggleBit flips the bit at index i.
// It panics unless 0 <= i < Len().
func (v *Vector) ToggleBit(i int) {
	p := v.position(i)
	v.data[p.Index] = uint8(Byte(v.data[p.Index]).ToggleBit(p.Offset))
}

// Extend appends every bit of seq in order, growing the vector by one
// bit per element. Storage grows by zeroed bursts whenever the bit
// capacity runs out, so newly addressed bytes are always zeroed before
// any bit in them is written.
func (v *Vector) Extend(seq iter.Seq[Bit]) {
	for bit := range seq {
		if v.length == len(v.data)*8 {
			v.data = append(v.data, make([]byte, growthBurst)...)
		}
		v.length++
		if bit != Zero {
			v.SetBit(v.length - 1)
		}
	}
}

// Append appends the given bits in order.
func (v *Vector) Append(bits ...Bit) {
	v.Extend(slices.Values(bits))
}

// AppendBools appends one bit per boolean.
func (v *Vector) AppendBools(vs ...bool) {
	v.Extend(BitsOfBools(vs...))
}

// Bits returns the bits of the vector in index order 0..Len()-1.
// The sequence reads through to live storage, so mutations made while
// ranging are observed by later elements.
func (v *Vector) Bits() iter.Seq[Bit] {
	return func(yield func(Bit) bool) {
		for i := 0; i < v.length; i++ {
			if !yield(v.Bit(i)) {
				return
			}
		}
	}
}

// Ones returns the indices of the set bits as a roaring bitmap, the
// sparse rendition of the vector. It panics when the vector is too long
// for 32-bit indices.
func (v *Vector) Ones() *roaring.Bitmap {
	if uint64(v.length) > math.MaxUint32 {
		panic(fmt.Sprintf("bitvec: vector length %d exceeds 32-bit index space", v.length))
	}
	rb := roaring.New()
	for i := 0; i < v.length; i++ {
		if v.Bit(i) != Zero {
			rb.Add(uint32(i))
		}
	}
	return rb
}

// Bytes returns a copy of the packed storage, exactly ceil(Len()/8)
// bytes with offset 0 of byte k holding bit 8*k. Bits past Len() in the
// final byte are Zero.
func (v *Vector) Bytes() []byte {
	return slices.Clone(v.data[:(v.length+7)/8])
}

// Clone returns an independent copy of the vector.
func (v *Vector) Clone() *Vector {
	return &Vector{
		data:   slices.Clone(v.data),
		length: v.length,
	}
}

// Equal reports whether the two vectors hold the same bits in the same
// order. Storage slack is ignored, so vectors built along different
// growth paths compare equal when their contents match.
func (v *Vector) Equal(o *Vector) bool {
	if v.length != o.length {
		return false
	}
	n := (v.length + 7) / 8
	return slices.Equal(v.data[:n], o.data[:n])
}

// String renders the bits in index order, "1010" for a four-bit vector
// holding One, Zero, One, Zero.
func (v *Vector) String() string {
	var sb strings.Builder
	sb.Grow(v.length)
	for bit := range v.Bits() {
		sb.WriteString(bit.String())
	}
	return sb.String()
}
