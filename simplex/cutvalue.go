package simplex

import "github.com/nodesketch/dotlayout/graph"

// cutValue computes the net weight crossing the partition a tree edge
// creates: positive when more weight flows in the tree edge's own
// direction than against it, negative when the optimum would prefer to
// route more length through the opposite side.
func cutValue[L any](g *graph.DirectedGraph[L], t *tightTree, eid graph.EdgeID) int32 {
	childRoot, lo, hi := partition(g, t, eid)
	inToSide := toSidePredicate(g, t, eid, childRoot, lo, hi)

	cv := int32(0)
	for _, f := range g.IterEdges() {
		fe := g.Edge(f)
		fFromIn, fToIn := inToSide(fe.From), inToSide(fe.To)
		if fFromIn == fToIn {
			continue
		}
		if !fFromIn && fToIn {
			cv += fe.Weight
		} else {
			cv -= fe.Weight
		}
	}

	return cv
}

// findNegativeCutEdge scans all current tree edges for one with a
// negative cut value, returning the first found.
func findNegativeCutEdge[L any](g *graph.DirectedGraph[L], t *tightTree) (graph.EdgeID, bool) {
	for _, eid := range g.IterEdges() {
		if !t.inEdge.Get(eid) {
			continue
		}
		if cutValue(g, t, eid) < 0 {
			return eid, true
		}
	}

	return -1, false
}
