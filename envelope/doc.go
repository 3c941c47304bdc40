// Package envelope wraps a graphcodec digest for transport: it tries a
// small set of general-purpose compressors, keeps whichever produces the
// fewest bytes (including the digest as-is), and wraps the result in
// URL-safe, unpadded base64 so it can live in a shareable link.
//
// The codec selection mirrors compress.Codec/compress.CreateCodec from the
// teacher's compression package, trimmed to the algorithms this corpus
// ships (zstd, s2, lz4) plus a no-op baseline, and adapted from a
// configuration-time choice (the teacher picks a codec once, at encoder
// construction) to a per-call "try everything, keep the smallest" choice,
// since a shareable token has no reuse across many payloads to amortize a
// fixed compressor selection over.
package envelope
