package bitio_test

import (
	"testing"

	"github.com/satisfactorytools/graphtoken/bitio"
	"github.com/satisfactorytools/graphtoken/errs"
	"github.com/stretchr/testify/require"
)

func TestWriterReader_BitsRoundTrip(t *testing.T) {
	w := bitio.NewWriterSize(16)

	w.WriteBits(0b101, 3)
	w.WriteBits(0b1, 1)
	w.WriteBits(0b11111111, 8)
	w.WriteBits(0, 0)
	w.WriteBits(0b11, 2)
	w.FinishByte()

	r := bitio.NewReader(w.Bytes())

	v, err := r.ReadBits(3)
	require.NoError(t, err)
	require.Equal(t, uint64(0b101), v)

	v, err = r.ReadBits(1)
	require.NoError(t, err)
	require.Equal(t, uint64(0b1), v)

	v, err = r.ReadBits(8)
	require.NoError(t, err)
	require.Equal(t, uint64(0b11111111), v)

	v, err = r.ReadBits(2)
	require.NoError(t, err)
	require.Equal(t, uint64(0b11), v)
}

func TestWriterReader_WideBits(t *testing.T) {
	w := bitio.NewWriterSize(16)
	w.WriteBits((1<<57)-1, 57)
	w.FinishByte()
	r := bitio.NewReader(w.Bytes())

	v, err := r.ReadBits(57)
	require.NoError(t, err)
	require.Equal(t, uint64((1<<57)-1), v)
}

func TestReader_TruncatedRead(t *testing.T) {
	w := bitio.NewWriterSize(4)
	w.WriteBits(0b1010, 4)
	w.FinishByte()

	// The written nibble plus FinishByte's zero padding: the whole buffer.
	r := bitio.NewReader(w.Bytes())
	_, err := r.ReadBits(8)
	require.NoError(t, err)

	_, err = r.ReadBits(1)
	require.ErrorIs(t, err, errs.ErrTruncatedRead)
}

func TestWriteLen_ReadLen(t *testing.T) {
	cases := []int{0, 1, 0x7F, 0x80, 0x81, 300, 0x7FFF}

	for _, n := range cases {
		w := bitio.NewWriterSize(4)
		w.WriteLen(n)

		r := bitio.NewReader(w.Bytes())
		got, err := r.ReadLen()
		require.NoError(t, err)
		require.Equal(t, n, got)
	}
}

func TestWriteLen_PanicsOffByteBoundary(t *testing.T) {
	w := bitio.NewWriterSize(4)
	w.WriteBits(1, 1)

	require.Panics(t, func() { w.WriteLen(5) })
}

func TestWriteLen_PanicsOutOfRange(t *testing.T) {
	w := bitio.NewWriterSize(4)
	require.Panics(t, func() { w.WriteLen(-1) })
	require.Panics(t, func() { w.WriteLen(0x8000) })
}

func TestWriteBits_PanicsOnValueWithHighBitsSet(t *testing.T) {
	w := bitio.NewWriterSize(4)
	require.Panics(t, func() { w.WriteBits(0b100, 2) })
}

func TestFinishByte_PadsWithZeroBits(t *testing.T) {
	w := bitio.NewWriterSize(4)
	w.WriteBits(0b1, 1)
	w.FinishByte()

	require.Equal(t, []byte{0b10000000}, w.Bytes())
}

func TestRequiredBits(t *testing.T) {
	cases := map[uint64]int{
		1: 0,
		2: 1,
		3: 2,
		4: 2,
		5: 3,
		8: 3,
		9: 4,
	}

	for c, want := range cases {
		require.Equal(t, want, bitio.RequiredBits(c), "RequiredBits(%d)", c)
	}
}

func TestRequiredBits_PanicsOnZero(t *testing.T) {
	require.Panics(t, func() { bitio.RequiredBits(0) })
}
