package fields

import "github.com/satisfactorytools/graphtoken/bitio"

// Overclock values are represented internally as an integer count of
// 10^-6 units, covering the closed range [0.01, 2.50].
const (
	OverclockMicroMin = 10_000
	OverclockMicroMax = 2_500_000

	overclockRawBits = 22

	ocCommon     = 1_000_000
	ocHalf       = 500_000
	ocOneHalf    = 1_500_000
	ocDouble     = 2_000_000
	ocDoubleHalf = 2_500_000
)

// WriteOverclock writes micro (an overclock value in micro-units) using the
// shortest applicable prefix: a single 0 bit for the most common value
// (1.000000), a 4-bit code for four other common values, or a 2-bit escape
// followed by 22 raw bits for anything else.
func WriteOverclock(w *bitio.Writer, micro uint32) {
	switch micro {
	case ocCommon:
		w.WriteBits(0, 1)
	case ocHalf:
		w.WriteBits(0b1000, 4)
	case ocOneHalf:
		w.WriteBits(0b1001, 4)
	case ocDouble:
		w.WriteBits(0b1010, 4)
	case ocDoubleHalf:
		w.WriteBits(0b1011, 4)
	default:
		if micro < OverclockMicroMin || micro > OverclockMicroMax {
			panic("fields: overclock out of range")
		}
		w.WriteBits(0b11, 2)
		w.WriteBits(uint64(micro), overclockRawBits)
	}
}

// ReadOverclock reads an overclock value in micro-units.
func ReadOverclock(r *bitio.Reader) (uint32, error) {
	b0, err := r.ReadBits(1)
	if err != nil {
		return 0, err
	}
	if b0 == 0 {
		return ocCommon, nil
	}

	b1, err := r.ReadBits(1)
	if err != nil {
		return 0, err
	}

	if b1 == 0 {
		rest, err := r.ReadBits(2)
		if err != nil {
			return 0, err
		}

		switch rest {
		case 0b00:
			return ocHalf, nil
		case 0b01:
			return ocOneHalf, nil
		case 0b10:
			return ocDouble, nil
		default:
			return ocDoubleHalf, nil
		}
	}

	raw, err := r.ReadBits(overclockRawBits)
	if err != nil {
		return 0, err
	}

	return uint32(raw), nil
}
