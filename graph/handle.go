package graph

// recipeOutputBase is the first output handle id on a Recipe node; input
// handle ids for a Recipe start at 0, so outputs are offset past the
// maximum possible input count (spec §3 table: "Recipe" row).
const recipeOutputBase = 4

// IsWildcard reports whether k's handles are untyped (Merger, Splitter).
func (k Kind) IsWildcard() bool {
	return k == KindMerger || k == KindSplitter
}

// IsInputHandle reports whether handle is an input handle of a node of
// kind k, given its recipe input/output counts (ignored for non-Recipe
// kinds).
func IsInputHandle(k Kind, handle, numInputs int) bool {
	switch k {
	case KindRecipe:
		return handle >= 0 && handle < numInputs
	case KindMerger:
		return handle >= 0 && handle <= 2
	case KindSplitter:
		return handle == 0
	case KindSource:
		return false
	default:
		return false
	}
}

// IsOutputHandle reports whether handle is an output handle of a node of
// kind k, given its recipe output count (ignored for non-Recipe kinds).
func IsOutputHandle(k Kind, handle, numOutputs int) bool {
	switch k {
	case KindRecipe:
		return handle >= recipeOutputBase && handle < recipeOutputBase+numOutputs
	case KindMerger:
		return handle == 3
	case KindSplitter:
		return handle >= 1 && handle <= 3
	case KindSource:
		return handle == 0
	default:
		return false
	}
}

// InputItem returns the item kind a Recipe node's input handle expects, or
// ok=false if the node kind is wildcard (Merger/Splitter) or the node has
// no typed input at that handle.
func InputItem(n Node, handle int, rt RecipeTable) (ItemKind, bool) {
	if n.Kind != KindRecipe {
		return "", false
	}

	inputs := rt.Inputs(n.Recipe)
	if handle < 0 || handle >= len(inputs) {
		return "", false
	}

	return inputs[handle], true
}

// OutputItem returns the item kind an output handle produces, or ok=false
// if the node kind is wildcard (Merger/Splitter) or the handle is invalid.
func OutputItem(n Node, handle int, rt RecipeTable, it ItemTable) (ItemKind, bool) {
	switch n.Kind {
	case KindRecipe:
		outputs := rt.Outputs(n.Recipe)
		idx := handle - recipeOutputBase
		if idx < 0 || idx >= len(outputs) {
			return "", false
		}

		return outputs[idx], true
	case KindSource:
		if handle != 0 {
			return "", false
		}

		return it.Kind(n.Item)
	default:
		return "", false
	}
}
