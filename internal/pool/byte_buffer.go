// Package pool provides a pooled, growable byte buffer used by the bit
// writer to accumulate an encoded digest without repeated reallocation.
package pool

import "sync"

// DigestBufferDefaultSize is the default capacity handed out by the digest
// pool. Typical factory-graph digests are well under 1KiB, far smaller than
// mebo's multi-metric blobs, so the default is sized accordingly.
const (
	DigestBufferDefaultSize  = 256
	DigestBufferMaxThreshold = 1024 * 8 // 8KiB
)

// ByteBuffer is a growable byte slice wrapper, reused across Encode calls via
// a sync.Pool to avoid repeated allocation for the common small-digest case.
type ByteBuffer struct {
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the specified default size.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{B: make([]byte, 0, defaultSize)}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Reset resets the buffer to be empty, but retains the allocated memory for reuse.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Grow ensures the buffer can hold requiredBytes more bytes without reallocating.
func (bb *ByteBuffer) Grow(requiredBytes int) {
	available := cap(bb.B) - len(bb.B)
	if available >= requiredBytes {
		return
	}

	growBy := DigestBufferDefaultSize
	if cap(bb.B) > 4*DigestBufferDefaultSize {
		growBy = cap(bb.B) / 4
	}
	if growBy < requiredBytes {
		growBy = requiredBytes
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// AppendByte appends a single byte, growing the buffer if necessary.
func (bb *ByteBuffer) AppendByte(b byte) {
	bb.Grow(1)
	bb.B = append(bb.B, b)
}

// ByteBufferPool pools ByteBuffers to minimize allocations across repeated
// graphcodec.Encode (via bitio.Writer) and envelope.Wrap calls.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a new ByteBufferPool with buffers of the specified default size.
func NewByteBufferPool(defaultSize, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewByteBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves a ByteBuffer from the pool.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns a ByteBuffer to the pool for reuse.
func (bbp *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}
	if bbp.maxThreshold > 0 && cap(bb.B) > bbp.maxThreshold {
		return
	}
	bb.Reset()
	bbp.pool.Put(bb)
}

var digestPool = NewByteBufferPool(DigestBufferDefaultSize, DigestBufferMaxThreshold)

// GetDigestBuffer retrieves a ByteBuffer from the default digest pool.
func GetDigestBuffer() *ByteBuffer {
	return digestPool.Get()
}

// PutDigestBuffer returns a ByteBuffer to the default digest pool.
func PutDigestBuffer(bb *ByteBuffer) {
	digestPool.Put(bb)
}
