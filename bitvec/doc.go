// Package bitvec implements a packed bit vector: a growable sequence of
// individually addressable binary values backed by byte-granular storage.
//
// The package is built from four small value types, leaf first:
//
//   - Bit: a two-valued logical unit, Zero or One.
//   - Byte: an 8-bit container of eight bits addressed by offset 0..7.
//   - Position: the translation between a flat bit index and a
//     (byte index, in-byte offset) pair.
//   - Vector: the growable bit sequence that routes every logical index
//     through Position and delegates single-bit work to Byte.
//
// # Bit Ordering
//
// Within a Byte, offset 0 addresses the MOST significant bit and offset 7
// the least significant one. The raw value 10 is 00001010, so offsets 4
// and 6 hold One and everything else holds Zero:
//
//	b := bitvec.Byte(10)
//	b.Bit(4) // One
//	b.Bit(0) // Zero
//
// This ordering is part of the contract and is relied upon by the packed
// Bytes form of a Vector.
//
// # Usage
//
//	v := bitvec.New(10)
//	v.SetBit(4)
//	v.SetBit(6)
//
//	for bit := range v.Bits() {
//		fmt.Print(bit)
//	}
//
//	ones := v.Ones() // roaring bitmap of the set indices
//
// # Growth
//
// A Vector never shrinks. New allocates exactly ceil(n/8) zeroed bytes;
// Extend and Append grow storage by fixed zeroed bursts whenever the bit
// capacity is exhausted, so capacity is always sufficient before a bit is
// written.
//
// # Errors
//
// Operations on this package cannot fail on valid input. Violating a
// documented precondition, an offset outside 0..7 or a vector index
// outside [0, Len()), panics immediately at the call site rather than
// corrupting sibling bits or reading out of bounds.
//
// The package is not safe for concurrent use. A Vector is owned by one
// goroutine at a time; callers that share one must add their own
// synchronization.
package bitvec
