package envelope

import "github.com/klauspost/compress/s2"

// S2Codec is klauspost's Snappy-compatible S2 codec, adapted verbatim from
// compress/s2.go — a fast, moderate-ratio middle ground between
// AlgorithmNone and AlgorithmZstd.
type S2Codec struct{}

var _ Codec = S2Codec{}

func (S2Codec) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Encode(nil, data), nil
}

func (S2Codec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Decode(nil, data)
}
