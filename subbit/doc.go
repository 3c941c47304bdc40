// Package subbit implements the sub-bit arithmetic packer described in spec
// §4.6: a mixed-radix accumulator that packs a sequence of bounded integers
// (v_i, bound_i), 0 <= v_i < bound_i, into roughly ceil(log2(prod bound_i))
// bits total, rather than the sum of each value's own ceil(log2(bound_i)).
//
// This is the one component of graphtoken with no direct ancestor in the
// teacher corpus — mebo's own bit-level code (the Gorilla encoder) packs
// independently-sized fields but never multiplies several small bounds into
// one shared chunk. The accumulate-then-flush shape, though, is lifted
// straight from that encoder: an acc/prod pair plays the role of mebo's
// bitBuf/bitCount, and Flush plays the role of flushBits, writing exactly
// as many bits as are needed and resetting the accumulator to its zero
// state. See DESIGN.md for the grounding note on this package.
package subbit
