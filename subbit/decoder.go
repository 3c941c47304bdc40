package subbit

import "github.com/satisfactorytools/graphtoken/bitio"

// Decoder reconstructs a sequence of values from the chunks an Encoder
// produced, given the exact bound sequence the encoder used.
//
// The zero value is ready to use.
type Decoder struct{}

// NewDecoder creates a ready-to-use Decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// DecodeAll reads len(bounds) values, regrouping them into chunks using the
// identical overflow rule Encoder.Encode used, and returns them in the same
// order they were originally encoded.
func (d *Decoder) DecodeAll(r *bitio.Reader, bounds []uint64) ([]uint64, error) {
	values := make([]uint64, len(bounds))

	var (
		prod    uint64 = 1
		pending []int         // indices into bounds/values for the current chunk
	)

	flush := func() error {
		if prod <= 1 {
			prod = 1
			pending = pending[:0]

			return nil
		}

		acc, err := r.ReadBits(bitio.RequiredBits(prod))
		if err != nil {
			return err
		}

		for i := len(pending) - 1; i >= 0; i-- {
			idx := pending[i]
			bound := bounds[idx]
			values[idx] = acc % bound
			acc /= bound
		}

		prod = 1
		pending = pending[:0]

		return nil
	}

	for i, bound := range bounds {
		if bound == 0 {
			panic("subbit: bound must be positive")
		}
		if bound == 1 {
			values[i] = 0
			continue
		}

		if wouldOverflow(prod, bound) {
			if err := flush(); err != nil {
				return nil, err
			}
		}

		pending = append(pending, i)
		prod *= bound
	}

	if err := flush(); err != nil {
		return nil, err
	}

	return values, nil
}
