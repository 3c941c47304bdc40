package graph

// Endpoint names a single (node, handle) pair.
type Endpoint struct {
	NodeIndex int
	HandleID  int
}

// Edge connects an output handle to an input handle. Source.HandleID must
// be an output handle of the source node; Target.HandleID must be an input
// handle of the target node; no two edges may share an endpoint.
type Edge struct {
	Source Endpoint
	Target Endpoint
}

// Graph is an ordered sequence of nodes and edges. Neither order is
// semantically meaningful: encode/decode is free to permute both as long
// as the edge set (after remapping indices) is preserved (spec §1, §8).
type Graph struct {
	Nodes []Node
	Edges []Edge
}

// Input is the top-level value the codec encodes/decodes: a format version
// tag plus the graph state. Only the low 8 bits of Version survive a
// roundtrip (spec §3, §9).
type Input struct {
	Version uint32
	Graph   Graph
}
