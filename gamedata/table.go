package gamedata

import "github.com/satisfactorytools/graphtoken/graph"

// Item kinds used by the reference recipe table. Never the empty string,
// since graph.ItemKind's zero value must never name a valid item.
const (
	IronOre       graph.ItemKind = "iron-ore"
	IronIngot     graph.ItemKind = "iron-ingot"
	CopperOre     graph.ItemKind = "copper-ore"
	CopperIngot   graph.ItemKind = "copper-ingot"
	Coal          graph.ItemKind = "coal"
	Limestone     graph.ItemKind = "limestone"
	Water         graph.ItemKind = "water"
	Bauxite       graph.ItemKind = "bauxite"
	Silica        graph.ItemKind = "silica"
	AluminaSoln   graph.ItemKind = "alumina-solution"
	AluminumScrap graph.ItemKind = "aluminum-scrap"
	AluminumIngot graph.ItemKind = "aluminum-ingot"
	SulfuricAcid  graph.ItemKind = "sulfuric-acid"
)

type recipeEntry struct {
	Name    string
	Inputs  []graph.ItemKind
	Outputs []graph.ItemKind
}

// recipes is keyed by graph.RecipeID. IDs are stable once assigned; never
// reorder or reassign an existing entry.
var recipes = map[graph.RecipeID]recipeEntry{
	0: {Name: "iron-ingot", Inputs: []graph.ItemKind{IronOre}, Outputs: []graph.ItemKind{IronIngot}},
	1: {Name: "copper-ingot", Inputs: []graph.ItemKind{CopperOre}, Outputs: []graph.ItemKind{CopperIngot}},
	2: {Name: "alumina-solution", Inputs: []graph.ItemKind{Bauxite, Water}, Outputs: []graph.ItemKind{AluminaSoln, Silica}},
	3: {Name: "aluminum-scrap", Inputs: []graph.ItemKind{AluminaSoln, Coal}, Outputs: []graph.ItemKind{AluminumScrap, Water}},
	4: {Name: "aluminum-ingot", Inputs: []graph.ItemKind{AluminumScrap, Silica}, Outputs: []graph.ItemKind{AluminumIngot}},
	5: {Name: "sulfuric-acid", Inputs: []graph.ItemKind{Coal, Water}, Outputs: []graph.ItemKind{SulfuricAcid}},
	6: {Name: "pure-iron-ingot", Inputs: []graph.ItemKind{IronOre, Water}, Outputs: []graph.ItemKind{IronIngot}},
	7: {Name: "steel-ingot", Inputs: []graph.ItemKind{IronOre, Coal}, Outputs: []graph.ItemKind{IronIngot}},
}

// sourceItems is keyed by graph.SourceItemID, 0..15 (spec §3).
var sourceItems = map[graph.SourceItemID]graph.ItemKind{
	0: IronOre,
	1: CopperOre,
	2: Coal,
	3: Limestone,
	4: Water,
	5: Bauxite,
}

// Table is the reference in-memory RecipeTable/ItemTable implementation.
// The zero value is ready to use; all lookups are backed by package-level
// static maps, so Table carries no state of its own.
type Table struct{}

var (
	_ graph.RecipeTable = Table{}
	_ graph.ItemTable   = Table{}
)

// Inputs implements graph.RecipeTable.
func (Table) Inputs(id graph.RecipeID) []graph.ItemKind {
	e, ok := recipes[id]
	if !ok {
		return nil
	}

	return e.Inputs
}

// Outputs implements graph.RecipeTable.
func (Table) Outputs(id graph.RecipeID) []graph.ItemKind {
	e, ok := recipes[id]
	if !ok {
		return nil
	}

	return e.Outputs
}

// Valid implements graph.RecipeTable.
func (Table) Valid(id graph.RecipeID) bool {
	_, ok := recipes[id]

	return ok
}

// Kind implements graph.ItemTable.
func (Table) Kind(id graph.SourceItemID) (graph.ItemKind, bool) {
	k, ok := sourceItems[id]

	return k, ok
}

// Name returns the human-readable recipe name, or "" if id is not valid.
func (Table) Name(id graph.RecipeID) string {
	return recipes[id].Name
}
