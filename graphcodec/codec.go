package graphcodec

import (
	"fmt"

	"github.com/satisfactorytools/graphtoken/bitio"
	"github.com/satisfactorytools/graphtoken/graph"
)

// Tables bundles the external, read-only metadata the codec needs to
// validate and interpret recipe and source-item identifiers (spec §1, §6).
type Tables struct {
	Recipes graph.RecipeTable
	Items   graph.ItemTable
}

// Encode serializes input into its compact binary representation (spec
// §6). Encode panics on malformed input — a position off the grid, an
// overclock or building count out of range, an edge referencing the wrong
// handle kind, or two edges sharing an endpoint — since these are
// programmer/precondition errors a caller should never be able to trigger
// with a previously-validated graph, not decode-time failures.
func Encode(input graph.Input, tables Tables) []byte {
	w := bitio.NewWriter()
	defer w.Release()

	w.WriteU8(uint8(input.Version))
	encodeNodes(w, input.Graph.Nodes, tables.Recipes, tables.Items)
	encodeEdges(w, input.Graph.Nodes, input.Graph.Edges, tables.Recipes, tables.Items)
	w.FinishByte()

	return append([]byte(nil), w.Bytes()...)
}

// Decode parses data into a graph.Input. Decode never panics: any
// malformed or truncated input is reported as an error wrapping one of the
// errs sentinels (spec §7).
func Decode(data []byte, tables Tables) (graph.Input, error) {
	r := bitio.NewReader(data)

	version, err := r.ReadU8()
	if err != nil {
		return graph.Input{}, fmt.Errorf("version: %w", err)
	}

	nodes, err := decodeNodes(r, tables.Recipes, tables.Items)
	if err != nil {
		return graph.Input{}, fmt.Errorf("nodes: %w", err)
	}

	edges, err := decodeEdges(r, nodes, tables.Recipes, tables.Items)
	if err != nil {
		return graph.Input{}, fmt.Errorf("edges: %w", err)
	}

	return graph.Input{
		Version: uint32(version),
		Graph: graph.Graph{
			Nodes: nodes,
			Edges: edges,
		},
	}, nil
}
