package fields

import "github.com/satisfactorytools/graphtoken/bitio"

// Building count ranges covered by each prefix class (spec §4.2).
const (
	buildingCountSmallMax  = 12
	buildingCountMediumMin = 13
	buildingCountMediumMax = 524
	buildingCountLargeMin  = 525

	// MaxBuildingCount is the largest representable building count: the
	// large-class base plus the full 24-bit body range.
	MaxBuildingCount = buildingCountLargeMin + 1<<24 - 1
)

// WriteBuildingCount writes a non-zero building count using the shortest
// applicable class: 4 bits for 1..12, a "110" prefix + 9 bits for 13..524,
// or a "111" prefix + 24 bits for 525..MaxBuildingCount. Panics if v is
// zero or exceeds MaxBuildingCount.
func WriteBuildingCount(w *bitio.Writer, v uint32) {
	switch {
	case v == 0 || v > MaxBuildingCount:
		panic("fields: building count out of range")
	case v <= buildingCountSmallMax:
		w.WriteBits(uint64(v-1), 4)
	case v <= buildingCountMediumMax:
		w.WriteBits(0b110, 3)
		w.WriteBits(uint64(v-buildingCountMediumMin), 9)
	default:
		w.WriteBits(0b111, 3)
		w.WriteBits(uint64(v-buildingCountLargeMin), 24)
	}
}

// ReadBuildingCount reads a non-zero building count. The small class is
// distinguished from the two prefixed classes by its leading two bits,
// which the encoder guarantees are never both 1 (the small class tops out
// at v-1 == 11 == 0b1011).
func ReadBuildingCount(r *bitio.Reader) (uint32, error) {
	lead, err := r.ReadBits(2)
	if err != nil {
		return 0, err
	}

	if lead != 0b11 {
		rest, err := r.ReadBits(2)
		if err != nil {
			return 0, err
		}

		return uint32((lead<<2)|rest) + 1, nil
	}

	class, err := r.ReadBits(1)
	if err != nil {
		return 0, err
	}

	if class == 0 {
		body, err := r.ReadBits(9)
		if err != nil {
			return 0, err
		}

		return uint32(body) + buildingCountMediumMin, nil
	}

	body, err := r.ReadBits(24)
	if err != nil {
		return 0, err
	}

	return uint32(body) + buildingCountLargeMin, nil
}
