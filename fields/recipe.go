package fields

import "github.com/satisfactorytools/graphtoken/bitio"

// RecipeIDBits is the fixed width of the on-wire recipe identifier field.
// The lookup table (graph.RecipeTable) must be sized to accept 0..511.
const RecipeIDBits = 9

// MaxRecipeID is the largest representable recipe identifier.
const MaxRecipeID = 1<<RecipeIDBits - 1

// WriteRecipeID writes id using a fixed 9-bit unsigned field. Panics if id
// exceeds MaxRecipeID.
func WriteRecipeID(w *bitio.Writer, id uint32) {
	if id > MaxRecipeID {
		panic("fields: recipe id out of range")
	}
	w.WriteBits(uint64(id), RecipeIDBits)
}

// ReadRecipeID reads a 9-bit recipe identifier. Callers are responsible for
// validating the id against the active recipe table.
func ReadRecipeID(r *bitio.Reader) (uint32, error) {
	v, err := r.ReadBits(RecipeIDBits)
	if err != nil {
		return 0, err
	}

	return uint32(v), nil
}
