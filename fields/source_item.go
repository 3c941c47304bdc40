package fields

import "github.com/satisfactorytools/graphtoken/bitio"

// SourceItemBits is the fixed width of the source item kind field, covering
// an alphabet of up to 16 distinct source items.
const SourceItemBits = 4

// MaxSourceItemID is the largest representable source item identifier.
const MaxSourceItemID = 1<<SourceItemBits - 1

// WriteSourceItem writes id using a fixed 4-bit field. Panics if id exceeds
// MaxSourceItemID.
func WriteSourceItem(w *bitio.Writer, id uint32) {
	if id > MaxSourceItemID {
		panic("fields: source item id out of range")
	}
	w.WriteBits(uint64(id), SourceItemBits)
}

// ReadSourceItem reads a 4-bit source item identifier. Callers are
// responsible for validating the id against the active item table.
func ReadSourceItem(r *bitio.Reader) (uint32, error) {
	v, err := r.ReadBits(SourceItemBits)
	if err != nil {
		return 0, err
	}

	return uint32(v), nil
}
