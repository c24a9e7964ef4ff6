package bitvec

import "iter"

// Bit is a single binary digit, either Zero or One.
//
// Constructors normalize arbitrary input onto the two constants, and
// every operation treats its operands as zero versus non-zero, so a
// value forged through a raw conversion still behaves like One.
type Bit uint8

const (
	// Zero is the unset bit.
	Zero Bit = 0
	// One is the set bit.
	One Bit = 1
)

// BitOf converts a raw integer to a Bit. Zero maps to Zero and any
// non-zero value maps to One.
func BitOf(v uint8) Bit {
	if v == 0 {
		return Zero
	}
	return One
}

// BitOfBool converts a boolean to a Bit, false to Zero and true to One.
func BitOfBool(b bool) Bit {
	if b {
		return One
	}
	return Zero
}

// BitsOf returns the given raw integers as a sequence of bits, each
// converted with BitOf. The sequence is restartable.
func BitsOf(vs ...uint8) iter.Seq[Bit] {
	return func(yield func(Bit) bool) {
		for _, v := range vs {
			if !yield(BitOf(v)) {
				return
			}
		}
	}
}

// BitsOfBools returns the given booleans as a sequence of bits, each
// converted with BitOfBool. The sequence is restartable.
func BitsOfBools(vs ...bool) iter.Seq[Bit] {
	return func(yield func(Bit) bool) {
		for _, v := range vs {
			if !yield(BitOfBool(v)) {
				return
			}
		}
	}
}

// Uint8 returns the numeric value of the bit, 0 or 1.
func (b Bit) Uint8() uint8 {
	if b == Zero {
		return 0
	}
	return 1
}

// Bool reports whether the bit is set.
func (b Bit) Bool() bool {
	return b != Zero
}

// And returns the logical AND of the two bits.
func (b Bit) And(o Bit) Bit {
	if b == Zero || o == Zero {
		return Zero
	}
	return One
}

// AndUint8 returns the logical AND of the bit and a raw integer.
//
// The integer operand is reinterpreted as a truth value, zero is false
// and anything else is true, not as a bit pattern: One.AndUint8(4) is
// One even though 1&4 == 0.
func (b Bit) AndUint8(v uint8) Bit {
	if b == Zero || v == 0 {
		return Zero
	}
	return One
}

// Or returns the logical OR of the two bits.
func (b Bit) Or(o Bit) Bit {
	if b != Zero || o != Zero {
		return One
	}
	return Zero
}

// OrUint8 returns the logical OR of the bit and a raw integer, with the
// integer reinterpreted as a truth value exactly as in AndUint8.
func (b Bit) OrUint8(v uint8) Bit {
	if b != Zero || v != 0 {
		return One
	}
	return Zero
}

// String returns "0" for Zero and "1" for everything else.
func (b Bit) String() string {
	if b == Zero {
		return "0"
	}
	return "1"
}
