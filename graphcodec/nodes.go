package graphcodec

import (
	"fmt"

	"github.com/satisfactorytools/graphtoken/bitio"
	"github.com/satisfactorytools/graphtoken/errs"
	"github.com/satisfactorytools/graphtoken/fields"
	"github.com/satisfactorytools/graphtoken/graph"
)

// minPosHeaderBits is the floor on bits_x/bits_y: even a single-node or
// perfectly-aligned graph still reserves 4 bits per axis (spec §4.3 step
// 3), so the header nibbles never need a fifth bit to represent "0".
const minPosHeaderBits = 4

// encodeNodes writes the version-independent node block: a length varint,
// a position header, then every node's quantized position, then every
// node's tag and variant payload, in the same node order.
func encodeNodes(w *bitio.Writer, nodes []graph.Node, rt graph.RecipeTable, it graph.ItemTable) {
	w.WriteLen(len(nodes))
	if len(nodes) == 0 {
		return
	}

	minX, minY := nodes[0].Pos.X, nodes[0].Pos.Y
	maxX, maxY := minX, minY

	for _, n := range nodes {
		if n.Pos.X%graph.GridStep != 0 || n.Pos.Y%graph.GridStep != 0 {
			panic(errs.ErrPositionMisaligned)
		}
		if n.Pos.X < minX {
			minX = n.Pos.X
		}
		if n.Pos.X > maxX {
			maxX = n.Pos.X
		}
		if n.Pos.Y < minY {
			minY = n.Pos.Y
		}
		if n.Pos.Y > maxY {
			maxY = n.Pos.Y
		}
	}

	rangeX := uint64((maxX-minX)/graph.GridStep) + 1
	rangeY := uint64((maxY-minY)/graph.GridStep) + 1

	bitsX := bitio.RequiredBits(rangeX)
	if bitsX < minPosHeaderBits {
		bitsX = minPosHeaderBits
	}
	bitsY := bitio.RequiredBits(rangeY)
	if bitsY < minPosHeaderBits {
		bitsY = minPosHeaderBits
	}

	w.WriteBits(uint64(bitsX-minPosHeaderBits), minPosHeaderBits)
	w.WriteBits(uint64(bitsY-minPosHeaderBits), minPosHeaderBits)

	for _, n := range nodes {
		w.WriteBits(uint64((n.Pos.X-minX)/graph.GridStep), bitsX)
		w.WriteBits(uint64((n.Pos.Y-minY)/graph.GridStep), bitsY)
	}

	for _, n := range nodes {
		w.WriteBits(uint64(n.Kind), 3)

		switch n.Kind {
		case graph.KindRecipe:
			if !rt.Valid(n.Recipe) {
				panic(errs.ErrRecipeOutOfRange)
			}
			fields.WriteRecipeID(w, uint32(n.Recipe))
			fields.WriteOverclock(w, n.Overclock)
			fields.WriteBuildingCount(w, n.BuildingsCount)
		case graph.KindSource:
			if _, ok := it.Kind(n.Item); !ok {
				panic(errs.ErrSourceItemOutOfRange)
			}
			fields.WriteSourceItem(w, uint32(n.Item))
			fields.WriteSourceRate(w, n.Rate)
		case graph.KindMerger, graph.KindSplitter:
			// tag only
		default:
			panic(fmt.Sprintf("graphcodec: unknown node kind %d", n.Kind))
		}
	}
}

// decodeNodes reads the node block written by encodeNodes. Decoded
// positions are relative to an arbitrary zero, not the original absolute
// coordinates — preserving the translation is explicitly out of scope
// (spec §3 Non-goals).
func decodeNodes(r *bitio.Reader, rt graph.RecipeTable, it graph.ItemTable) ([]graph.Node, error) {
	count, err := r.ReadLen()
	if err != nil {
		return nil, fmt.Errorf("node count: %w", err)
	}
	if count == 0 {
		return nil, nil
	}

	bxRaw, err := r.ReadBits(minPosHeaderBits)
	if err != nil {
		return nil, fmt.Errorf("position header bits_x: %w", err)
	}
	byRaw, err := r.ReadBits(minPosHeaderBits)
	if err != nil {
		return nil, fmt.Errorf("position header bits_y: %w", err)
	}
	bitsX := int(bxRaw) + minPosHeaderBits
	bitsY := int(byRaw) + minPosHeaderBits

	nodes := make([]graph.Node, count)
	for i := range nodes {
		x, err := r.ReadBits(bitsX)
		if err != nil {
			return nil, fmt.Errorf("node %d position x: %w", i, err)
		}
		y, err := r.ReadBits(bitsY)
		if err != nil {
			return nil, fmt.Errorf("node %d position y: %w", i, err)
		}
		nodes[i].Pos = graph.Pos{
			X: int32(x) * graph.GridStep,
			Y: int32(y) * graph.GridStep,
		}
	}

	for i := range nodes {
		tag, err := r.ReadBits(3)
		if err != nil {
			return nil, fmt.Errorf("node %d tag: %w", i, err)
		}

		switch graph.Kind(tag) {
		case graph.KindRecipe:
			id, err := fields.ReadRecipeID(r)
			if err != nil {
				return nil, fmt.Errorf("node %d recipe id: %w", i, err)
			}
			if !rt.Valid(graph.RecipeID(id)) {
				return nil, fmt.Errorf("node %d recipe %d: %w", i, id, errs.ErrRecipeOutOfRange)
			}

			oc, err := fields.ReadOverclock(r)
			if err != nil {
				return nil, fmt.Errorf("node %d overclock: %w", i, err)
			}

			bc, err := fields.ReadBuildingCount(r)
			if err != nil {
				return nil, fmt.Errorf("node %d building count: %w", i, err)
			}

			nodes[i].Kind = graph.KindRecipe
			nodes[i].Recipe = graph.RecipeID(id)
			nodes[i].Overclock = oc
			nodes[i].BuildingsCount = bc
		case graph.KindMerger:
			nodes[i].Kind = graph.KindMerger
		case graph.KindSplitter:
			nodes[i].Kind = graph.KindSplitter
		case graph.KindSource:
			item, err := fields.ReadSourceItem(r)
			if err != nil {
				return nil, fmt.Errorf("node %d source item: %w", i, err)
			}
			if _, ok := it.Kind(graph.SourceItemID(item)); !ok {
				return nil, fmt.Errorf("node %d source item %d: %w", i, item, errs.ErrSourceItemOutOfRange)
			}

			rate, err := fields.ReadSourceRate(r)
			if err != nil {
				return nil, fmt.Errorf("node %d source rate: %w", i, err)
			}

			nodes[i].Kind = graph.KindSource
			nodes[i].Item = graph.SourceItemID(item)
			nodes[i].Rate = rate
		default:
			return nil, fmt.Errorf("node %d: %w", i, errs.ErrInvalidTag)
		}
	}

	return nodes, nil
}
