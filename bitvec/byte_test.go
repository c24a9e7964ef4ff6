package bitvec

import (
	"fmt"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByte_Bit(t *testing.T) {
	// 10 is 00001010: offsets 4 and 6 hold One.
	b := Byte(10)

	expected := []Bit{Zero, Zero, Zero, Zero, One, Zero, One, Zero}
	for offset, want := range expected {
		assert.Equal(t, want, b.Bit(offset), "offset %d", offset)
	}
}

func TestByte_SetBit(t *testing.T) {
	tests := []struct {
		name     string
		b        Byte
		offset   int
		expected Byte
	}{
		{"LeastSignificant", Byte(10), 7, Byte(11)},
		{"AlreadySet", Byte(10), 4, Byte(10)},
		{"MostSignificant", Byte(0), 0, Byte(128)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.b.SetBit(tt.offset))
		})
	}
}

func TestByte_ResetBit(t *testing.T) {
	tests := []struct {
		name     string
		b        Byte
		offset   int
		expected Byte
	}{
		{"SetOffset", Byte(10), 6, Byte(8)},
		{"ClearOffset", Byte(10), 0, Byte(10)},
		{"LeastSignificant", Byte(0xFF), 7, Byte(0xFE)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.b.ResetBit(tt.offset))
		})
	}
}

func TestByte_ToggleBit(t *testing.T) {
	assert.Equal(t, Byte(8), Byte(10).ToggleBit(6))
	assert.Equal(t, Byte(10), Byte(8).ToggleBit(6))
	assert.Equal(t, Byte(138), Byte(10).ToggleBit(0))
}

func TestByte_BitAlgebra(t *testing.T) {
	samples := []Byte{0, 1, 10, 0x55, 0xAA, 0xFF}

	for _, b := range samples {
		for offset := 0; offset < 8; offset++ {
			assert.Equal(t, One, b.SetBit(offset).Bit(offset))
			assert.Equal(t, Zero, b.ResetBit(offset).Bit(offset))
			assert.Equal(t, b, b.ToggleBit(offset).ToggleBit(offset))
			assert.NotEqual(t, b.Bit(offset), b.ToggleBit(offset).Bit(offset))

			// Siblings stay untouched.
			set := b.SetBit(offset)
			for other := 0; other < 8; other++ {
				if other == offset {
					continue
				}
				assert.Equal(t, b.Bit(other), set.Bit(other), "byte %d offset %d sibling %d", b, offset, other)
			}
		}
	}
}

func TestByte_IsZeroIsOne(t *testing.T) {
	assert.True(t, Byte(0).IsZero())
	assert.False(t, Byte(0).IsOne())
	assert.True(t, Byte(1).IsOne())
	assert.False(t, Byte(1).IsZero())

	// Literal value equality, not "any bit set".
	assert.False(t, Byte(2).IsOne())
	assert.False(t, Byte(2).IsZero())
}

func TestByte_Bits(t *testing.T) {
	got := slices.Collect(Byte(10).Bits())
	assert.Equal(t, []Bit{Zero, Zero, Zero, Zero, One, Zero, One, Zero}, got)

	// Restartable: a second range starts over at offset 0.
	seq := Byte(10).Bits()
	assert.Equal(t, slices.Collect(seq), slices.Collect(seq))

	// An early break stops the walk.
	var n int
	for range Byte(0xFF).Bits() {
		n++
		if n == 3 {
			break
		}
	}
	assert.Equal(t, 3, n)
}

func TestByteOf(t *testing.T) {
	tests := []struct {
		name     string
		vs       []uint8
		expected Byte
	}{
		{"Exact", []uint8{0, 0, 0, 0, 1, 0, 1, 0}, Byte(10)},
		{"Truthy", []uint8{0, 0, 0, 0, 9, 0, 4, 0}, Byte(10)},
		{"Shortfall", []uint8{1}, Byte(128)},
		{"Excess", []uint8{0, 0, 0, 0, 1, 0, 1, 0, 1, 1}, Byte(10)},
		{"Empty", nil, Byte(0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ByteOf(tt.vs...))
		})
	}
}

func TestByteOfBools(t *testing.T) {
	got := ByteOfBools(false, false, false, false, true, false, true, false)
	assert.Equal(t, Byte(10), got)
}

func TestByteFromBits(t *testing.T) {
	require.Equal(t, Byte(10), ByteFromBits(BitsOf(0, 0, 0, 0, 1, 0, 1, 0)))

	// A byte rebuilt from its own bits is unchanged.
	for _, b := range []Byte{0, 1, 10, 0x55, 0xAA, 0xFF} {
		assert.Equal(t, b, ByteFromBits(b.Bits()))
	}
}

func TestByte_Ordering(t *testing.T) {
	assert.True(t, Byte(8) < Byte(10))
	assert.True(t, Byte(10) == ByteOf(0, 0, 0, 0, 1, 0, 1, 0))
	assert.Equal(t, uint8(10), Byte(10).Uint8())
}

func TestByte_Formatting(t *testing.T) {
	b := Byte(10)

	assert.Equal(t, "10", b.String())
	assert.Equal(t, "10", fmt.Sprintf("%d", b))
	assert.Equal(t, "00001010", fmt.Sprintf("%08b", b))
	assert.Equal(t, "0a", fmt.Sprintf("%02x", b))
	assert.Equal(t, "0A", fmt.Sprintf("%02X", b))
	assert.Equal(t, "10", fmt.Sprintf("%v", b))
}

func TestByte_OffsetOutOfRange(t *testing.T) {
	assert.Panics(t, func() { Byte(10).Bit(8) })
	assert.Panics(t, func() { Byte(10).Bit(-1) })
	assert.Panics(t, func() { Byte(10).SetBit(8) })
	assert.Panics(t, func() { Byte(10).ResetBit(-1) })
	assert.Panics(t, func() { Byte(10).ToggleBit(99) })
}
