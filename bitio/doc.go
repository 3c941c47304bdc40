// Package bitio implements the big-endian sequential bit buffer that every
// other codec package in graphtoken is built on.
//
// A Writer appends bits MSB-first into a growable byte slice; a Reader
// consumes bits from a byte slice in the same order. Bit 0 of the stream is
// the most significant bit of byte 0; bit 8 is the most significant bit of
// byte 1. Both sides additionally support byte alignment and a 1-or-2-byte
// varint for small lengths, used to frame the node and edge blocks.
//
// This mirrors the bit-accumulator idiom the teacher's Gorilla encoder uses
// internally (internal/encoding/numeric_gorilla.go's writeBits/flushBits),
// generalized here into a standalone, directly testable package since the
// graph codec needs arbitrary-width reads on the decode side too, not just
// writes.
package bitio
