package simplex

import "github.com/nodesketch/dotlayout/graph"

// normalize shifts every rank so the minimum becomes 0.
func normalize(ranks *graph.NodeMap[int32]) {
	if ranks.Len() == 0 {
		return
	}
	min := ranks.Get(0)
	for i := 1; i < ranks.Len(); i++ {
		if v := ranks.Get(graph.NodeID(i)); v < min {
			min = v
		}
	}
	if min == 0 {
		return
	}
	for i := 0; i < ranks.Len(); i++ {
		id := graph.NodeID(i)
		ranks.Set(id, ranks.Get(id)-min)
	}
}

// center balances every zero-cut-value tree edge against the
// minimum-slack edge that would replace it: shifting the subtree on
// one side of the tree edge by half that replacement's slack splits
// the slack evenly between the two, without disturbing the ranking's
// optimality (a zero cut value means either direction costs the same).
// Ported from the `Postprocess::Center` branch of the original
// network-simplex implementation.
func center[L any](g *graph.DirectedGraph[L], ranks *graph.NodeMap[int32], t *tightTree) {
	for _, eid := range g.IterEdges() {
		if !t.inEdge.Get(eid) {
			continue
		}
		if cutValue(g, t, eid) != 0 {
			continue
		}

		replacement, found := findReplacementEdge(g, ranks, t, eid)
		if !found {
			continue
		}

		shiftAmount := slack(g, ranks, replacement) / 2
		if shiftAmount == 0 {
			continue
		}

		shiftSubtree(g, ranks, t, eid, shiftAmount)
	}
}

// shiftSubtree moves every node inside tree edge eid's child subtree
// by amount, directed so as to increase the distance between eid's two
// endpoints (away from whichever side the subtree isn't on).
func shiftSubtree[L any](g *graph.DirectedGraph[L], ranks *graph.NodeMap[int32], t *tightTree, eid graph.EdgeID, amount int32) {
	e := g.Edge(eid)
	childRoot, lo, hi := partition(g, t, eid)
	other := e.To
	if childRoot == e.To {
		other = e.From
	}

	delta := amount
	if ranks.Get(childRoot) <= ranks.Get(other) {
		delta = -amount
	}

	for i := 0; i < ranks.Len(); i++ {
		x := graph.NodeID(i)
		if t.inRange(x, lo, hi) {
			ranks.Set(x, ranks.Get(x)+delta)
		}
	}
}
