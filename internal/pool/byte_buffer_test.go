package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByteBuffer_AppendByteGrows(t *testing.T) {
	bb := NewByteBuffer(0)
	for i := 0; i < 10; i++ {
		bb.AppendByte(byte(i))
	}

	require.Equal(t, 10, bb.Len())
	require.Equal(t, []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, bb.Bytes())
}

func TestByteBuffer_Reset(t *testing.T) {
	bb := NewByteBuffer(4)
	bb.AppendByte(1)
	bb.AppendByte(2)
	bb.Reset()

	require.Equal(t, 0, bb.Len())
	require.Equal(t, []byte{}, bb.Bytes())
}

func TestByteBufferPool_GetPutRoundTrip(t *testing.T) {
	p := NewByteBufferPool(8, 64)

	bb := p.Get()
	bb.AppendByte(0xFF)
	p.Put(bb)

	bb2 := p.Get()
	require.Equal(t, 0, bb2.Len(), "pooled buffer must come back reset")
}

func TestByteBufferPool_DiscardsOversizedBuffers(t *testing.T) {
	p := NewByteBufferPool(4, 8)

	bb := NewByteBuffer(100)
	p.Put(bb) // over maxThreshold, should be discarded rather than pooled

	bb2 := p.Get()
	require.Less(t, cap(bb2.Bytes()), 100, "a fresh buffer from New should not alias the discarded one")
}

func TestDigestBufferPool_RoundTrip(t *testing.T) {
	bb := GetDigestBuffer()
	bb.AppendByte(1)
	PutDigestBuffer(bb)

	bb2 := GetDigestBuffer()
	require.Equal(t, 0, bb2.Len())
	PutDigestBuffer(bb2)
}
