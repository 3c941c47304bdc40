package graph

// Kind discriminates the four closed Node variants. The on-wire tag values
// are stable and must not be reordered (spec §4.3, §9).
type Kind uint8

const (
	KindRecipe   Kind = 0
	KindMerger   Kind = 1
	KindSplitter Kind = 2
	KindSource   Kind = 3
)

func (k Kind) String() string {
	switch k {
	case KindRecipe:
		return "Recipe"
	case KindMerger:
		return "Merger"
	case KindSplitter:
		return "Splitter"
	case KindSource:
		return "Source"
	default:
		return "Unknown"
	}
}

// GridStep is the grid constant every Pos coordinate must be a multiple of.
const GridStep = 25

// Pos is a grid-aligned 2D position. Encode requires X%25==0 && Y%25==0.
type Pos struct {
	X int32
	Y int32
}

// Node is a tagged variant over the four node kinds. Only the fields
// relevant to Kind are meaningful; the rest are left at their zero value.
//
// Recipe carries Recipe/BuildingsCount/Overclock. Source carries
// Item/Rate. Merger and Splitter carry only Pos.
type Node struct {
	Kind Kind
	Pos  Pos

	// Recipe fields.
	Recipe         RecipeID
	BuildingsCount uint32 // non-zero
	Overclock      uint32 // micro-units, [10_000, 2_500_000]

	// Source fields.
	Item SourceItemID
	Rate uint32
}

// RecipeID identifies a recipe in the external recipe table, 0..511.
type RecipeID uint32

// SourceItemID identifies a fixed-rate source item, 0..15.
type SourceItemID uint32

// InputHandleCount returns the number of input handles this node exposes.
func (n Node) InputHandleCount(rt RecipeTable) int {
	switch n.Kind {
	case KindRecipe:
		return len(rt.Inputs(n.Recipe))
	case KindMerger:
		return 3
	case KindSplitter:
		return 1
	case KindSource:
		return 0
	default:
		return 0
	}
}

// OutputHandleCount returns the number of output handles this node exposes.
func (n Node) OutputHandleCount(rt RecipeTable) int {
	switch n.Kind {
	case KindRecipe:
		return len(rt.Outputs(n.Recipe))
	case KindMerger:
		return 1
	case KindSplitter:
		return 3
	case KindSource:
		return 1
	default:
		return 0
	}
}

// RecipeTable is the external, read-only recipe metadata lookup the codec
// needs: a bijection between RecipeID and an ordered input/output item list
// (each at most 4 entries), per spec §3 "Recipe metadata" and §6.
type RecipeTable interface {
	// Inputs returns the ordered input item kinds for id, or nil if id is
	// not a valid recipe.
	Inputs(id RecipeID) []ItemKind
	// Outputs returns the ordered output item kinds for id, or nil if id is
	// not a valid recipe.
	Outputs(id RecipeID) []ItemKind
	// Valid reports whether id names a recipe in the table.
	Valid(id RecipeID) bool
}

// ItemTable is the external, read-only source-item metadata lookup: a
// bijection between SourceItemID and an ItemKind.
type ItemTable interface {
	// Kind returns the item kind for id, or ok=false if id is not valid.
	Kind(id SourceItemID) (ItemKind, bool)
}

// ItemKind identifies an item type for edge-compatibility checks. Its zero
// value never equals a valid item kind (see gamedata for the concrete
// alphabet).
type ItemKind string
