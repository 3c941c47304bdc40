package envelope

import (
	"fmt"

	"github.com/satisfactorytools/graphtoken/errs"
)

// Algorithm identifies one of the envelope's candidate compressors. The
// on-wire tag is the first byte of every base64-decoded token, ahead of the
// (possibly compressed) digest, and must not be reordered once tokens exist
// in the wild.
type Algorithm uint8

const (
	AlgorithmNone Algorithm = 0
	AlgorithmZstd Algorithm = 1
	AlgorithmS2   Algorithm = 2
	AlgorithmLZ4  Algorithm = 3
)

func (a Algorithm) String() string {
	switch a {
	case AlgorithmNone:
		return "none"
	case AlgorithmZstd:
		return "zstd"
	case AlgorithmS2:
		return "s2"
	case AlgorithmLZ4:
		return "lz4"
	default:
		return "unknown"
	}
}

// Compressor compresses a digest for storage in a token.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses Compressor.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions for one algorithm.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[Algorithm]Codec{
	AlgorithmNone: NoOpCodec{},
	AlgorithmZstd: ZstdCodec{},
	AlgorithmS2:   S2Codec{},
	AlgorithmLZ4:  LZ4Codec{},
}

// allAlgorithms fixes the trial order Wrap uses; AlgorithmNone is listed
// first so a tie against the uncompressed digest favors skipping
// compression entirely.
var allAlgorithms = []Algorithm{AlgorithmNone, AlgorithmZstd, AlgorithmS2, AlgorithmLZ4}

// codecFor returns the registered Codec for id.
func codecFor(id Algorithm) (Codec, error) {
	c, ok := builtinCodecs[id]
	if !ok {
		return nil, fmt.Errorf("algorithm %d: %w", id, errs.ErrUnknownAlgorithm)
	}

	return c, nil
}
