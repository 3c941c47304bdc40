package envelope

import (
	"encoding/base64"
	"fmt"

	"github.com/satisfactorytools/graphtoken/errs"
	"github.com/satisfactorytools/graphtoken/internal/pool"
)

// Wrap compresses digest with every registered Algorithm, keeps the
// smallest result (ties favor AlgorithmNone, then trial order), prefixes
// it with a one-byte algorithm tag, and returns the URL-safe, unpadded
// base64 encoding suitable for embedding in a link.
func Wrap(digest []byte, opts ...WrapOption) string {
	cfg := newWrapConfig(opts)

	best := pool.GetDigestBuffer()
	defer pool.PutDigestBuffer(best)

	best.AppendByte(byte(AlgorithmNone))
	for _, b := range digest {
		best.AppendByte(b)
	}

	candidate := pool.GetDigestBuffer()
	defer pool.PutDigestBuffer(candidate)

	for _, id := range cfg.candidates {
		if id == AlgorithmNone {
			continue
		}

		codec := builtinCodecs[id]

		compressed, err := codec.Compress(digest)
		if err != nil {
			continue
		}

		candidate.Reset()
		candidate.AppendByte(byte(id))
		for _, b := range compressed {
			candidate.AppendByte(b)
		}

		if candidate.Len() < best.Len() {
			best, candidate = candidate, best
		}
	}

	return base64.RawURLEncoding.EncodeToString(best.Bytes())
}

// Unwrap reverses Wrap: base64-decodes token, reads the algorithm tag, and
// decompresses the remainder back into the original digest.
func Unwrap(token string) ([]byte, error) {
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("base64 decode: %w", err)
	}
	if len(raw) == 0 {
		return nil, errs.ErrEmptyToken
	}

	codec, err := codecFor(Algorithm(raw[0]))
	if err != nil {
		return nil, err
	}

	out, err := codec.Decompress(raw[1:])
	if err != nil {
		return nil, fmt.Errorf("decompress: %w", err)
	}

	return out, nil
}
