package bitvec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veminovici/aabel-go/bitvec"
	"github.com/veminovici/aabel-go/testutil"
)

func TestVector_RandomMirror(t *testing.T) {
	rng := testutil.NewRNG(42)

	vals := rng.Bools(1000)
	v := bitvec.New(0)
	v.AppendBools(vals...)

	require.Equal(t, len(vals), v.Len())
	for i, want := range vals {
		assert.Equal(t, bitvec.BitOfBool(want), v.Bit(i), "bit %d", i)
	}

	// Flipping every set bit zeroes the vector out.
	for i, want := range vals {
		if want {
			v.ToggleBit(i)
		}
	}
	assert.True(t, v.Equal(bitvec.New(len(vals))))
}

func TestVector_RandomBytesRoundTrip(t *testing.T) {
	rng := testutil.NewRNG(7)

	bits := rng.Bits(128)
	v := bitvec.New(0)
	v.Append(bits...)

	// Each packed storage byte, read back through Byte offsets, agrees
	// with the vector's own bit addressing.
	packed := v.Bytes()
	require.Len(t, packed, 16)

	for k, raw := range packed {
		b := bitvec.Byte(raw)
		for off := 0; off < 8; off++ {
			assert.Equal(t, v.Bit(k*8+off), b.Bit(off), "byte %d offset %d", k, off)
		}
	}
}
