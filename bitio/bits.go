package bitio

import "math/bits"

// RequiredBits returns ceil(log2(c)), the number of bits needed to
// represent any value in [0, c). RequiredBits(1) is 0: a single-option
// field carries no information.
func RequiredBits(c uint64) int {
	if c == 0 {
		panic("bitio: RequiredBits of zero")
	}

	return bits.Len64(c - 1)
}
