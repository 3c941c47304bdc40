package transport

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/satisfactorytools/graphtoken/errs"
	"github.com/satisfactorytools/graphtoken/graph"
	"github.com/satisfactorytools/graphtoken/graphcodec"
	"github.com/satisfactorytools/graphtoken/internal/hash"
)

// Encode parses a JSON document matching the public schema, maps it to a
// graph.Input, and returns the codec's compact digest. Unlike
// graphcodec.Encode, this never panics: encode-time contract violations
// (spec §7) are recovered and surfaced as an error, since the JSON payload
// is untrusted external input rather than a programmer-controlled value.
func Encode(jsonData []byte, tables graphcodec.Tables) (digest []byte, err error) {
	var doc jsonInput
	if err := json.Unmarshal(jsonData, &doc); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}

	input, err := toGraphInput(doc)
	if err != nil {
		return nil, err
	}

	return safeEncode(input, tables)
}

// Decode reverses Encode: it decodes the digest and renders a JSON document
// in the public schema. Node identifiers are synthesized positionally
// (spec §3 "Identifier remapping" — the originals are never recovered).
func Decode(digest []byte, tables graphcodec.Tables) ([]byte, error) {
	input, err := graphcodec.Decode(digest, tables)
	if err != nil {
		return nil, err
	}

	doc := fromGraphInput(input)

	out, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("render json: %w", err)
	}

	return out, nil
}

// safeEncode converts a graphcodec.Encode precondition panic into an error.
func safeEncode(input graph.Input, tables graphcodec.Tables) (digest []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = fmt.Errorf("encode: %w", e)
			} else {
				err = fmt.Errorf("encode: %v", r)
			}
		}
	}()

	return graphcodec.Encode(input, tables), nil
}

// nodeIndex assigns each JSON NodeId a deterministic positional index by
// sorting on its xxHash64 value (ties broken lexically), independent of
// map iteration order or the order keys appeared in the source document.
func nodeIndex(nodes map[string]jsonNode) (order []string, idx map[string]int) {
	order = make([]string, 0, len(nodes))
	for k := range nodes {
		order = append(order, k)
	}

	sort.Slice(order, func(i, j int) bool {
		hi, hj := hash.ID(order[i]), hash.ID(order[j])
		if hi != hj {
			return hi < hj
		}

		return order[i] < order[j]
	})

	idx = make(map[string]int, len(order))
	for i, k := range order {
		idx[k] = i
	}

	return order, idx
}

func toGraphInput(doc jsonInput) (graph.Input, error) {
	order, idx := nodeIndex(doc.State.Graph.Nodes)

	nodes := make([]graph.Node, len(order))
	for i, key := range order {
		n, err := convertNode(doc.State.Graph.Nodes[key])
		if err != nil {
			return graph.Input{}, fmt.Errorf("node %q: %w", key, err)
		}
		nodes[i] = n
	}

	edges := make([]graph.Edge, len(doc.State.Graph.Edges))
	for i, e := range doc.State.Graph.Edges {
		srcIdx, ok := idx[e.Source.NodeID]
		if !ok {
			return graph.Input{}, fmt.Errorf("edge %d source %q: %w", i, e.Source.NodeID, errs.ErrUnknownNodeID)
		}
		tgtIdx, ok := idx[e.Target.NodeID]
		if !ok {
			return graph.Input{}, fmt.Errorf("edge %d target %q: %w", i, e.Target.NodeID, errs.ErrUnknownNodeID)
		}

		edges[i] = graph.Edge{
			Source: graph.Endpoint{NodeIndex: srcIdx, HandleID: e.Source.HandleID},
			Target: graph.Endpoint{NodeIndex: tgtIdx, HandleID: e.Target.HandleID},
		}
	}

	return graph.Input{
		Version: doc.Version & 0xFF,
		Graph:   graph.Graph{Nodes: nodes, Edges: edges},
	}, nil
}

func convertNode(n jsonNode) (graph.Node, error) {
	pos := graph.Pos{X: n.Pos.X, Y: n.Pos.Y}

	switch n.Type {
	case typeRecipe:
		micro, err := decimalToMicro(derefFloat(n.Overclock))
		if err != nil {
			return graph.Node{}, err
		}

		return graph.Node{
			Kind:           graph.KindRecipe,
			Pos:            pos,
			Recipe:         graph.RecipeID(derefUint32(n.Recipe)),
			BuildingsCount: derefUint32(n.BuildingsCount),
			Overclock:      micro,
		}, nil
	case typeMerger:
		return graph.Node{Kind: graph.KindMerger, Pos: pos}, nil
	case typeSplitter:
		return graph.Node{Kind: graph.KindSplitter, Pos: pos}, nil
	case typeSource:
		return graph.Node{
			Kind: graph.KindSource,
			Pos:  pos,
			Item: graph.SourceItemID(derefUint32(n.Item)),
			Rate: derefUint32(n.Rate),
		}, nil
	default:
		return graph.Node{}, fmt.Errorf("%q: %w", n.Type, errs.ErrUnknownNodeType)
	}
}

func fromGraphInput(input graph.Input) jsonInput {
	nodes := make(map[string]jsonNode, len(input.Graph.Nodes))
	for i, n := range input.Graph.Nodes {
		key := fmt.Sprintf("n%d", i)
		nodes[key] = convertNodeToJSON(n)
	}

	edges := make([]jsonEdge, len(input.Graph.Edges))
	for i, e := range input.Graph.Edges {
		edges[i] = jsonEdge{
			Source: jsonEndpoint{NodeID: fmt.Sprintf("n%d", e.Source.NodeIndex), HandleID: e.Source.HandleID},
			Target: jsonEndpoint{NodeID: fmt.Sprintf("n%d", e.Target.NodeIndex), HandleID: e.Target.HandleID},
		}
	}

	return jsonInput{
		Version: input.Version,
		State: jsonState{
			Graph: jsonGraph{Nodes: nodes, Edges: edges},
		},
	}
}

func convertNodeToJSON(n graph.Node) jsonNode {
	out := jsonNode{Pos: jsonPos{X: n.Pos.X, Y: n.Pos.Y}}

	switch n.Kind {
	case graph.KindRecipe:
		out.Type = typeRecipe
		out.Recipe = ptrUint32(uint32(n.Recipe))
		out.BuildingsCount = ptrUint32(n.BuildingsCount)
		out.Overclock = ptrFloat(microToDecimal(n.Overclock))
	case graph.KindMerger:
		out.Type = typeMerger
	case graph.KindSplitter:
		out.Type = typeSplitter
	case graph.KindSource:
		out.Type = typeSource
		out.Item = ptrUint32(uint32(n.Item))
		out.Rate = ptrUint32(n.Rate)
	}

	return out
}

func derefUint32(p *uint32) uint32 {
	if p == nil {
		return 0
	}

	return *p
}

func derefFloat(p *float64) float64 {
	if p == nil {
		return 0
	}

	return *p
}

func ptrUint32(v uint32) *uint32 {
	return &v
}

func ptrFloat(v float64) *float64 {
	return &v
}
