package envelope

import (
	"errors"
	"sync"

	"github.com/pierrec/lz4/v4"
)

// lz4CompressorPool pools lz4.Compressor instances, adapted from
// compress/lz4.go; the compressor holds a reusable hash table that
// benefits from not being reallocated per call.
var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// LZ4Codec favors fast decompression over ratio — the teacher's rationale
// for shipping it alongside zstd/s2 applies equally to tokens that get
// decoded far more often than they are generated.
type LZ4Codec struct{}

var _ Codec = LZ4Codec{}

func (LZ4Codec) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	dst := make([]byte, lz4.CompressBlockBound(len(data)))

	c, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(c)

	n, err := c.CompressBlock(data, dst)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		// Incompressible block: lz4 reports this by returning n == 0.
		return nil, errLZ4Incompressible
	}

	return dst[:n], nil
}

func (LZ4Codec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	bufSize := len(data) * 4
	const maxSize = 128 * 1024 * 1024

	for bufSize <= maxSize {
		buf := make([]byte, bufSize)

		n, err := lz4.UncompressBlock(data, buf)
		if err != nil {
			if errors.Is(err, lz4.ErrInvalidSourceShortBuffer) && bufSize < maxSize {
				bufSize *= 2
				continue
			}

			return nil, err
		}

		return buf[:n], nil
	}

	return nil, lz4.ErrInvalidSourceShortBuffer
}

var errLZ4Incompressible = errors.New("envelope: lz4 block did not compress")
