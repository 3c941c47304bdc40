package transport

import (
	"fmt"
	"math"

	"github.com/satisfactorytools/graphtoken/errs"
	"github.com/satisfactorytools/graphtoken/fields"
)

// decimalToMicro scales a JSON overclock decimal into the codec's
// micro-unit integer (spec §6 "Overclock is exchanged as a decimal...
// scaled by 10^6 and rounded to the nearest integer"; §9 "Integer scaling
// for overclock").
func decimalToMicro(dec float64) (uint32, error) {
	micro := math.Round(dec * 1_000_000)
	if micro < fields.OverclockMicroMin || micro > fields.OverclockMicroMax {
		return 0, fmt.Errorf("overclock %v: %w", dec, errs.ErrOverclockOutOfRange)
	}

	return uint32(micro), nil
}

// microToDecimal is the inverse of decimalToMicro, used when rendering a
// decoded graph.Input back to the JSON schema.
func microToDecimal(micro uint32) float64 {
	return float64(micro) / 1_000_000
}
