package envelope

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// zstdDecoderPool and zstdEncoderPool pool klauspost/compress/zstd
// encoders/decoders across calls, adapted from compress/zstd_pure.go
// (itself the cgo-free build of the teacher's zstd codec, which is what
// this repository standardizes on, see DESIGN.md).
var zstdDecoderPool = sync.Pool{
	New: func() any {
		d, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(1))
		if err != nil {
			panic(fmt.Sprintf("envelope: failed to create zstd decoder: %v", err))
		}

		return d
	},
}

var zstdEncoderPool = sync.Pool{
	New: func() any {
		e, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault), zstd.WithEncoderCRC(false))
		if err != nil {
			panic(fmt.Sprintf("envelope: failed to create zstd encoder: %v", err))
		}

		return e
	},
}

// ZstdCodec compresses with Zstandard, favored for larger multi-node
// digests where its ratio advantage outweighs per-call setup cost.
type ZstdCodec struct{}

var _ Codec = ZstdCodec{}

func (ZstdCodec) Compress(data []byte) ([]byte, error) {
	enc := zstdEncoderPool.Get().(*zstd.Encoder)
	defer zstdEncoderPool.Put(enc)

	return enc.EncodeAll(data, nil), nil
}

func (ZstdCodec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	dec := zstdDecoderPool.Get().(*zstd.Decoder)
	defer zstdDecoderPool.Put(dec)

	out, err := dec.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("zstd decompress: %w", err)
	}

	return out, nil
}
