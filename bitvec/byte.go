package bitvec

import (
	"fmt"
	"iter"
	"strconv"
)

// Byte is an 8-bit container of eight individually addressable bits.
//
// Offsets run from 0 at the most significant bit to 7 at the least
// significant one, so offset i addresses value bit 7-i. The raw value
// 10 is 00001010: offsets 4 and 6 hold One, every other offset holds
// Zero.
//
// A Byte converts to and from its raw value through ordinary Go
// conversions, Byte(10) and uint8(b), and orders by that value. All
// mutators return the updated value instead of writing in place.
type Byte uint8

// offsetMask returns the single-bit mask addressing offset.
// It panics when offset is outside 0..7.
func offsetMask(offset int) uint8 {
	if offset < 0 || offset > 7 {
		panic(fmt.Sprintf("bitvec: bit offset %d out of range [0,7]", offset))
	}
	return 1 << (7 - offset)
}

// Uint8 returns the raw value of the byte.
func (b Byte) Uint8() uint8 {
	return uint8(b)
}

// IsZero reports whether the byte holds the literal value 0.
func (b Byte) IsZero() bool {
	return b == 0
}

// IsOne reports whether the byte holds the literal value 1, not whether
// any bit is set.
func (b Byte) IsOne() bool {
	return b == 1
}

// Bit returns the bit stored at the given offset.
// It panics when offset is outside 0..7.
func (b Byte) Bit(offset int) Bit {
	if uint8(b)&offsetMask(offset) == 0 {
		return Zero
	}
	return One
}

// SetBit returns a copy of the byte with the bit at offset forced to
// One. It panics when offset is outside 0..7.
func (b Byte) SetBit(offset int) Byte {
	return b | Byte(offsetMask(offset))
}

// ResetBit returns a copy of the byte with the bit at offset forced to
// Zero. It panics when offset is outside 0..7.
func (b Byte) ResetBit(offset int) Byte {
	return b &^ Byte(offsetMask(offset))
}

// ToggleBit returns a copy of the byte with the bit at offset flipped.
// It panics when offset is outside 0..7.
func (b Byte) ToggleBit(offset int) Byte {
	return b ^ Byte(offsetMask(offset))
}

// Bits returns the eight bits of the byte in offset order 0..7.
// The sequence is restartable: every range over it starts again at
// offset 0.
func (b Byte) Bits() iter.Seq[Bit] {
	return func(yield func(Bit) bool) {
		for offset := 0; offset < 8; offset++ {
			if !yield(b.Bit(offset)) {
				return
			}
		}
	}
}

// ByteFromBits folds a sequence of bits into a Byte, assigning the k-th
// element to offset k. A short sequence leaves the remaining offsets at
// Zero; elements beyond the eighth are ignored.
func ByteFromBits(seq iter.Seq[Bit]) Byte {
	var b Byte
	offset := 0
	for bit := range seq {
		if offset == 8 {
			break
		}
		if bit != Zero {
			b = b.SetBit(offset)
		}
		offset++
	}
	return b
}

// ByteOf builds a Byte from raw integers, assigning element k to offset
// k with BitOf truthiness: ByteOf(0, 0, 0, 0, 1, 0, 1, 0) == Byte(10).
func ByteOf(vs ...uint8) Byte {
	return ByteFromBits(BitsOf(vs...))
}

// ByteOfBools builds a Byte from booleans, assigning element k to
// offset k.
func ByteOfBools(vs ...bool) Byte {
	return ByteFromBits(BitsOfBools(vs...))
}

// String returns the decimal rendition of the byte.
func (b Byte) String() string {
	return strconv.Itoa(int(b))
}

// Format implements fmt.Formatter: %v and %s render the decimal String
// form, and every other verb applies to the raw value with flags and
// width intact, so %08b, %02x and %02X are the zero-padded binary and
// hexadecimal renditions. The Stringer rule would otherwise hex-dump
// the String form under %x and %X.
func (b Byte) Format(f fmt.State, verb rune) {
	switch verb {
	case 'v':
		if f.Flag('#') {
			fmt.Fprintf(f, fmt.FormatString(f, verb), uint8(b))
			return
		}
		fmt.Fprint(f, b.String())
	case 's':
		fmt.Fprint(f, b.String())
	default:
		fmt.Fprintf(f, fmt.FormatString(f, verb), uint8(b))
	}
}
