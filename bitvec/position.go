package bitvec

import "fmt"

// Position locates a single bit inside byte-granular storage as a
// (storage index, in-byte offset) pair.
//
// The mapping to and from flat bit indices is bijective, for every
// i >= 0 PositionOf(i).FlatIndex() == i. Keeping the division, modulo
// and carry arithmetic here gives Vector one tested seam to route
// indices through instead of recomputing byte and offset math inline.
type Position struct {
	// Index is the index of the storage byte holding the bit.
	Index int
	// Offset is the bit's offset within that byte, 0 through 7.
	Offset int
}

// PositionOf maps a flat bit index onto its storage position.
// It panics when i is negative.
func PositionOf(i int) Position {
	if i < 0 {
		panic(fmt.Sprintf("bitvec: negative bit index %d", i))
	}
	return Position{Index: i / 8, Offset: i % 8}
}

// FlatIndex returns the flat bit index the position addresses.
func (p Position) FlatIndex() int {
	return p.Index*8 + p.Offset
}

// Next returns the position of the immediately following bit, carrying
// into the next storage byte past offset 7.
func (p Position) Next() Position {
	if p.Offset >= 7 {
		return Position{Index: p.Index + 1}
	}
	return Position{Index: p.Index, Offset: p.Offset + 1}
}

// String returns the position as "Pos(index:offset)".
func (p Position) String() string {
	return fmt.Sprintf("Pos(%d:%d)", p.Index, p.Offset)
}
