package graphcodec

import (
	"fmt"
	"sort"

	"github.com/satisfactorytools/graphtoken/bitio"
	"github.com/satisfactorytools/graphtoken/errs"
	"github.com/satisfactorytools/graphtoken/graph"
	"github.com/satisfactorytools/graphtoken/subbit"
)

// recipeOutputBase mirrors graph's unexported constant of the same value:
// a Recipe node's output handle ids start at 4, past any possible input id.
const recipeOutputBase = 4

// handleRef names one handle slot in the flattened outputs/inputs pool: the
// node and handle it belongs to, the item it carries (if typed), and
// whether the coder has already assigned an edge to it.
type handleRef struct {
	NodeIndex int
	HandleID  int
	Item      graph.ItemKind
	HasItem   bool
	Used      bool
}

// itemExpectation records, for one edge, the item its source is known to
// carry — established during the source phase, consulted by the target
// phase before any target rank is read (spec §4.5 step 2/3).
type itemExpectation struct {
	Item graph.ItemKind
	Has  bool
}

func isSM(nodes []graph.Node, nodeIndex int) bool {
	return nodes[nodeIndex].Kind.IsWildcard()
}

func predSM(nodes []graph.Node) func(handleRef) bool {
	return func(e handleRef) bool { return isSM(nodes, e.NodeIndex) }
}

func predNonSMAny(nodes []graph.Node) func(handleRef) bool {
	return func(e handleRef) bool { return !isSM(nodes, e.NodeIndex) }
}

func predNonSMItem(nodes []graph.Node, item graph.ItemKind) func(handleRef) bool {
	return func(e handleRef) bool {
		return !isSM(nodes, e.NodeIndex) && e.HasItem && e.Item == item
	}
}

// buildOutputs flattens every node's output handles, in node-then-handle
// order, tagging each with the item it produces where known.
func buildOutputs(nodes []graph.Node, rt graph.RecipeTable, it graph.ItemTable) []handleRef {
	var out []handleRef
	for ni, n := range nodes {
		switch n.Kind {
		case graph.KindRecipe:
			outs := rt.Outputs(n.Recipe)
			for h := range outs {
				out = append(out, handleRef{NodeIndex: ni, HandleID: recipeOutputBase + h, Item: outs[h], HasItem: true})
			}
		case graph.KindMerger:
			out = append(out, handleRef{NodeIndex: ni, HandleID: 3})
		case graph.KindSplitter:
			for h := 1; h <= 3; h++ {
				out = append(out, handleRef{NodeIndex: ni, HandleID: h})
			}
		case graph.KindSource:
			kind, _ := it.Kind(n.Item)
			out = append(out, handleRef{NodeIndex: ni, HandleID: 0, Item: kind, HasItem: true})
		}
	}

	return out
}

// buildInputs flattens every node's input handles, in node-then-handle
// order.
func buildInputs(nodes []graph.Node, rt graph.RecipeTable) []handleRef {
	var in []handleRef
	for ni, n := range nodes {
		switch n.Kind {
		case graph.KindRecipe:
			ins := rt.Inputs(n.Recipe)
			for h := range ins {
				in = append(in, handleRef{NodeIndex: ni, HandleID: h, Item: ins[h], HasItem: true})
			}
		case graph.KindMerger:
			for h := 0; h <= 2; h++ {
				in = append(in, handleRef{NodeIndex: ni, HandleID: h})
			}
		case graph.KindSplitter:
			in = append(in, handleRef{NodeIndex: ni, HandleID: 0})
		}
	}

	return in
}

// countMatch counts unused pool entries matching pred (nil pred matches
// every unused entry).
func countMatch(pool []handleRef, pred func(handleRef) bool) int {
	c := 0
	for _, e := range pool {
		if e.Used || (pred != nil && !pred(e)) {
			continue
		}
		c++
	}

	return c
}

// rankAndMark scans pool for the unused, pred-matching entry at
// (nodeIndex, handleID), returning its 0-based rank among unused
// pred-matching entries and marking it used. ok is false if no such entry
// exists.
func rankAndMark(pool []handleRef, pred func(handleRef) bool, nodeIndex, handleID int) (rank int, item graph.ItemKind, hasItem bool, ok bool) {
	for i := range pool {
		e := &pool[i]
		if e.Used || (pred != nil && !pred(*e)) {
			continue
		}
		if e.NodeIndex == nodeIndex && e.HandleID == handleID {
			e.Used = true

			return rank, e.Item, e.HasItem, true
		}
		rank++
	}

	return 0, "", false, false
}

// markByRank finds the rank-th unused, pred-matching entry in pool, marks
// it used, and returns its endpoint. ok is false if rank is out of range.
func markByRank(pool []handleRef, pred func(handleRef) bool, rank int) (nodeIndex, handleID int, item graph.ItemKind, hasItem bool, ok bool) {
	count := 0
	for i := range pool {
		e := &pool[i]
		if e.Used || (pred != nil && !pred(*e)) {
			continue
		}
		if count == rank {
			e.Used = true

			return e.NodeIndex, e.HandleID, e.Item, e.HasItem, true
		}
		count++
	}

	return 0, 0, "", false, false
}

func sumInts(m map[graph.ItemKind]int) int {
	s := 0
	for _, v := range m {
		s += v
	}

	return s
}

// sortEdges returns a stable copy of edges ordered so that edges whose
// target is a splitter/merger come first, then by whether the source is a
// splitter/merger, then by target node index (spec §4.5 step 1).
func sortEdges(nodes []graph.Node, edges []graph.Edge) []graph.Edge {
	sorted := make([]graph.Edge, len(edges))
	copy(sorted, edges)

	key := func(e graph.Edge) [3]int {
		targetNotSM, sourceNotSM := 0, 0
		if !isSM(nodes, e.Target.NodeIndex) {
			targetNotSM = 1
		}
		if !isSM(nodes, e.Source.NodeIndex) {
			sourceNotSM = 1
		}

		return [3]int{targetNotSM, sourceNotSM, e.Target.NodeIndex}
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		ki, kj := key(sorted[i]), key(sorted[j])
		if ki[0] != kj[0] {
			return ki[0] < kj[0]
		}
		if ki[1] != kj[1] {
			return ki[1] < kj[1]
		}

		return ki[2] < kj[2]
	})

	return sorted
}

// encodeEdges writes the byte-aligned edge count, then the edge coder's
// three sub-bit streams: K, the source ranks, and the target ranks.
//
// A target-phase chunk is always flushed right after encoding a wildcard
// edge (a splitter/merger-sourced edge whose target is not itself a
// splitter/merger). This is what makes target-phase bounds for the
// remaining edges computable without first consulting an undecoded rank:
// once a wildcard's own rank is flushed, the decoder knows exactly which
// input it claimed before it needs the per-item tally that pick affects.
func encodeEdges(w *bitio.Writer, nodes []graph.Node, edges []graph.Edge, rt graph.RecipeTable, it graph.ItemTable) {
	w.FinishByte()
	w.WriteLen(len(edges))
	if len(edges) == 0 {
		return
	}

	sorted := sortEdges(nodes, edges)
	edgeCount := len(sorted)

	outputs := buildOutputs(nodes, rt, it)
	inputs := buildInputs(nodes, rt)

	K := 0
	for _, e := range sorted {
		if isSM(nodes, e.Target.NodeIndex) {
			K++
		}
	}

	kEnc := subbit.NewEncoder()
	kEnc.Encode(w, uint64(K), uint64(edgeCount)+1)
	kEnc.Flush(w)

	srcEnc := subbit.NewEncoder()
	expectedItems := make([]itemExpectation, edgeCount)
	for i, e := range sorted {
		bound := uint64(countMatch(outputs, nil))
		rank, item, hasItem, ok := rankAndMark(outputs, nil, e.Source.NodeIndex, e.Source.HandleID)
		if !ok {
			panic(errs.ErrEdgeEndpointKind)
		}
		srcEnc.Encode(w, uint64(rank), bound)
		expectedItems[i] = itemExpectation{Item: item, Has: hasItem}
	}
	srcEnc.Flush(w)

	tgtEnc := subbit.NewEncoder()
	for i, e := range sorted {
		var (
			pred      func(handleRef) bool
			wildcard  bool
		)

		switch {
		case i < K:
			pred = predSM(nodes)
		case expectedItems[i].Has:
			pred = predNonSMItem(nodes, expectedItems[i].Item)
		default:
			pred = predNonSMAny(nodes)
			wildcard = true
		}

		bound := uint64(countMatch(inputs, pred))
		if bound == 0 {
			panic(errs.ErrEdgeBoundZero)
		}

		rank, _, _, ok := rankAndMark(inputs, pred, e.Target.NodeIndex, e.Target.HandleID)
		if !ok {
			panic(errs.ErrEdgeEndpointKind)
		}

		tgtEnc.Encode(w, uint64(rank), bound)
		if wildcard {
			tgtEnc.Flush(w)
		}
	}
	tgtEnc.Flush(w)
}

// decodeEdges reads the edge block written by encodeEdges.
func decodeEdges(r *bitio.Reader, nodes []graph.Node, rt graph.RecipeTable, it graph.ItemTable) ([]graph.Edge, error) {
	r.FinishByte()
	edgeCount, err := r.ReadLen()
	if err != nil {
		return nil, fmt.Errorf("edge count: %w", err)
	}
	if edgeCount == 0 {
		return nil, nil
	}

	kDec := subbit.NewDecoder()
	kVals, err := kDec.DecodeAll(r, []uint64{uint64(edgeCount) + 1})
	if err != nil {
		return nil, fmt.Errorf("edge K: %w", err)
	}
	K := int(kVals[0])
	if K > edgeCount {
		return nil, fmt.Errorf("edge K %d exceeds edge count %d: %w", K, edgeCount, errs.ErrEdgeBoundZero)
	}

	outputs := buildOutputs(nodes, rt, it)
	inputs := buildInputs(nodes, rt)

	totalOutputs := len(outputs)
	srcBounds := make([]uint64, edgeCount)
	for i := range srcBounds {
		b := totalOutputs - i
		if b <= 0 {
			return nil, fmt.Errorf("edge %d source pool exhausted: %w", i, errs.ErrEdgeBoundZero)
		}
		srcBounds[i] = uint64(b)
	}

	srcDec := subbit.NewDecoder()
	srcRanks, err := srcDec.DecodeAll(r, srcBounds)
	if err != nil {
		return nil, fmt.Errorf("edge sources: %w", err)
	}

	sources := make([]graph.Endpoint, edgeCount)
	expectedItems := make([]itemExpectation, edgeCount)
	for i, rank := range srcRanks {
		ni, hid, item, hasItem, ok := markByRank(outputs, nil, int(rank))
		if !ok {
			return nil, fmt.Errorf("edge %d source rank %d: %w", i, rank, errs.ErrEdgeRankOutOfBounds)
		}
		sources[i] = graph.Endpoint{NodeIndex: ni, HandleID: hid}
		expectedItems[i] = itemExpectation{Item: item, Has: hasItem}
	}

	targets := make([]graph.Endpoint, edgeCount)
	tgtDec := subbit.NewDecoder()

	smUnused := countMatch(inputs, predSM(nodes))
	nonSMUnused := countMatch(inputs, predNonSMAny(nodes))

	const (
		kindSM = iota
		kindTyped
		kindWildcard
	)

	i := 0
	for i < edgeCount {
		j := i
		var (
			bounds []uint64
			kinds  []int
			items  []graph.ItemKind

			localSM      int
			localItem    = map[graph.ItemKind]int{}
			baselineItem = map[graph.ItemKind]int{}
		)

		for j < edgeCount {
			var (
				b    uint64
				kind int
				itm  graph.ItemKind
			)

			switch {
			case j < K:
				b = uint64(smUnused - localSM)
				kind = kindSM
				localSM++
			case expectedItems[j].Has:
				itm = expectedItems[j].Item
				base, seen := baselineItem[itm]
				if !seen {
					base = countMatch(inputs, predNonSMItem(nodes, itm))
					baselineItem[itm] = base
				}
				b = uint64(base - localItem[itm])
				kind = kindTyped
				localItem[itm]++
			default:
				b = uint64(nonSMUnused - sumInts(localItem))
				kind = kindWildcard
			}

			if b == 0 {
				return nil, fmt.Errorf("edge %d: %w", j, errs.ErrEdgeBoundZero)
			}

			bounds = append(bounds, b)
			kinds = append(kinds, kind)
			items = append(items, itm)
			j++

			if kind == kindWildcard {
				break
			}
		}

		ranks, err := tgtDec.DecodeAll(r, bounds)
		if err != nil {
			return nil, fmt.Errorf("edge targets %d-%d: %w", i, j, err)
		}

		for k, rank := range ranks {
			idx := i + k

			var pred func(handleRef) bool
			switch kinds[k] {
			case kindSM:
				pred = predSM(nodes)
			case kindTyped:
				pred = predNonSMItem(nodes, items[k])
			default:
				pred = predNonSMAny(nodes)
			}

			ni, hid, _, _, ok := markByRank(inputs, pred, int(rank))
			if !ok {
				return nil, fmt.Errorf("edge %d target rank %d: %w", idx, rank, errs.ErrEdgeRankOutOfBounds)
			}
			targets[idx] = graph.Endpoint{NodeIndex: ni, HandleID: hid}

			if kinds[k] == kindSM {
				smUnused--
			} else {
				nonSMUnused--
			}
		}

		i = j
	}

	edges := make([]graph.Edge, edgeCount)
	for i := range edges {
		edges[i] = graph.Edge{Source: sources[i], Target: targets[i]}
	}

	return edges, nil
}
