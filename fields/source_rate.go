package fields

import "github.com/satisfactorytools/graphtoken/bitio"

// canonicalRates are the twelve source rates observed often enough in
// practice to warrant a dedicated 4-bit code, in on-wire code order.
var canonicalRates = [12]uint32{30, 60, 120, 240, 300, 480, 600, 960, 1200, 1920, 2400, 4800}

const (
	sourceRateScaledBits = 9   // body width for the "x30" class
	sourceRateScaledMax  = 512 // body < this
	sourceRateRawBits    = 17  // body width for the raw class
	sourceRateRawMax     = 1 << sourceRateRawBits

	// MaxSourceRate is the largest representable source rate.
	MaxSourceRate = sourceRateRawMax - 1
)

func canonicalRateIndex(rate uint32) (int, bool) {
	for i, v := range canonicalRates {
		if v == rate {
			return i, true
		}
	}

	return 0, false
}

// WriteSourceRate writes rate using the shortest applicable class: a 4-bit
// code for one of the twelve canonical rates, a "110" prefix + 9 bits for
// any other multiple of 30 up to 511*30, or a "111" prefix + 17 raw bits
// otherwise. Panics if rate exceeds MaxSourceRate.
func WriteSourceRate(w *bitio.Writer, rate uint32) {
	if idx, ok := canonicalRateIndex(rate); ok {
		w.WriteBits(uint64(idx), 4)
		return
	}

	if rate%30 == 0 && rate/30 < sourceRateScaledMax {
		w.WriteBits(0b110, 3)
		w.WriteBits(uint64(rate/30), sourceRateScaledBits)
		return
	}

	if rate <= MaxSourceRate {
		w.WriteBits(0b111, 3)
		w.WriteBits(uint64(rate), sourceRateRawBits)
		return
	}

	panic("fields: source rate out of range")
}

// ReadSourceRate reads a source rate value.
func ReadSourceRate(r *bitio.Reader) (uint32, error) {
	lead, err := r.ReadBits(2)
	if err != nil {
		return 0, err
	}

	if lead != 0b11 {
		rest, err := r.ReadBits(2)
		if err != nil {
			return 0, err
		}

		return canonicalRates[(lead<<2)|rest], nil
	}

	class, err := r.ReadBits(1)
	if err != nil {
		return 0, err
	}

	if class == 0 {
		body, err := r.ReadBits(sourceRateScaledBits)
		if err != nil {
			return 0, err
		}

		return uint32(body) * 30, nil
	}

	body, err := r.ReadBits(sourceRateRawBits)
	if err != nil {
		return 0, err
	}

	return uint32(body), nil
}
