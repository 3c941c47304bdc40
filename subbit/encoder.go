package subbit

import (
	"math"

	"github.com/satisfactorytools/graphtoken/bitio"
)

// Encoder accumulates (value, bound) pairs into shared 64-bit chunks and
// writes each chunk to a bitio.Writer once it would otherwise overflow.
//
// The zero value is ready to use.
type Encoder struct {
	acc  uint64
	prod uint64
}

// NewEncoder creates a ready-to-use Encoder.
func NewEncoder() *Encoder {
	return &Encoder{prod: 1}
}

// Encode packs v (0 <= v < bound) into the accumulator, flushing the
// current chunk to w first if prod*bound would overflow 64 bits. A bound
// of 1 contributes zero bits and is a no-op beyond validating v == 0.
//
// Panics if bound is zero or v is not in [0, bound).
func (e *Encoder) Encode(w *bitio.Writer, v, bound uint64) {
	if bound == 0 {
		panic("subbit: bound must be positive")
	}
	if v >= bound {
		panic("subbit: value out of bound")
	}
	if e.prod == 0 {
		e.prod = 1
	}

	if bound == 1 {
		return
	}

	if wouldOverflow(e.prod, bound) {
		e.Flush(w)
	}

	e.acc = e.acc*bound + v
	e.prod *= bound
}

// Flush writes the accumulated chunk using exactly bitio.RequiredBits(prod)
// bits, then resets the accumulator. Flushing an empty accumulator (no
// pending values) writes nothing.
func (e *Encoder) Flush(w *bitio.Writer) {
	if e.prod <= 1 {
		e.acc = 0
		e.prod = 1

		return
	}

	w.WriteBits(e.acc, bitio.RequiredBits(e.prod))
	e.acc = 0
	e.prod = 1
}

func wouldOverflow(prod, bound uint64) bool {
	return prod > math.MaxUint64/bound
}
