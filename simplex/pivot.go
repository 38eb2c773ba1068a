package simplex

import "github.com/nodesketch/dotlayout/graph"

// maxPivots bounds the pivot loop defensively; a correct feasible tree
// over V nodes converges in far fewer steps than this in practice.
const maxPivots = 100000

// pivotLoop repeatedly replaces a negative-cut tree edge with the
// minimum-slack non-tree edge that reconnects the two components it
// separates, until every tree edge has a non-negative cut value.
func pivotLoop[L any](g *graph.DirectedGraph[L], ranks *graph.NodeMap[int32], t *tightTree) {
	for i := 0; i < maxPivots; i++ {
		leaving, found := findNegativeCutEdge(g, t)
		if !found {
			return
		}
		if !pivot(g, ranks, t, leaving) {
			return // no valid replacement edge; nothing more to improve
		}
	}
}

// findReplacementEdge finds the minimum-slack non-tree edge crossing
// the same cut as tree edge eid, in the direction that could take
// eid's place: pivot uses it to repair a negative-cut tree edge,
// center uses it to measure how much slack is available to balance a
// zero-cut one against.
func findReplacementEdge[L any](g *graph.DirectedGraph[L], ranks *graph.NodeMap[int32], t *tightTree, eid graph.EdgeID) (graph.EdgeID, bool) {
	childRoot, lo, hi := partition(g, t, eid)
	inToSide := toSidePredicate(g, t, eid, childRoot, lo, hi)

	entering := graph.EdgeID(-1)
	var bestSlack int32
	for _, f := range g.IterEdges() {
		if f == eid || t.inEdge.Get(f) {
			continue
		}
		fe := g.Edge(f)
		if inToSide(fe.From) && !inToSide(fe.To) {
			s := slack(g, ranks, f)
			if entering == -1 || s < bestSlack {
				entering, bestSlack = f, s
			}
		}
	}

	return entering, entering != -1
}

// pivot swaps leaving out of the tree for the minimum-slack edge that
// crosses the same cut in the opposite direction, shifting ranks so
// the new tree edge becomes tight. Returns false if no such edge
// exists (should not happen for a connected, correctly built tree).
func pivot[L any](g *graph.DirectedGraph[L], ranks *graph.NodeMap[int32], t *tightTree, leaving graph.EdgeID) bool {
	entering, found := findReplacementEdge(g, ranks, t, leaving)
	if !found {
		return false
	}

	childRoot, lo, hi := partition(g, t, leaving)
	inToSide := toSidePredicate(g, t, leaving, childRoot, lo, hi)

	e := g.Edge(leaving)
	delta := slack(g, ranks, entering)
	for i := 0; i < ranks.Len(); i++ {
		x := graph.NodeID(i)
		if inToSide(x) {
			ranks.Set(x, ranks.Get(x)+delta)
		}
	}

	t.inEdge.Set(leaving, false)
	t.inEdge.Set(entering, true)
	removeAdj(t, e.From, leaving)
	removeAdj(t, e.To, leaving)
	fe := g.Edge(entering)
	t.adj.Set(fe.From, append(t.adj.Get(fe.From), entering))
	t.adj.Set(fe.To, append(t.adj.Get(fe.To), entering))

	labelSubtrees(g, t)

	return true
}

func removeAdj(t *tightTree, node graph.NodeID, eid graph.EdgeID) {
	list := t.adj.Get(node)
	for i, id := range list {
		if id == eid {
			t.adj.Set(node, append(list[:i], list[i+1:]...))
			return
		}
	}
}
