package simplex

import "github.com/nodesketch/dotlayout/graph"

// tightTree tracks which nodes/edges currently belong to the feasible
// spanning tree, plus each tree node's incident tree edges (tree edges
// are undirected for traversal purposes even though the underlying
// graph.Edge keeps its directed From/To).
type tightTree struct {
	inNode  *graph.NodeMap[bool]
	inEdge  *graph.EdgeMap[bool]
	adj     *graph.NodeMap[[]graph.EdgeID]
	parentE *graph.NodeMap[graph.EdgeID] // -1 for the traversal root
	root    graph.NodeID
	nodeMin *graph.NodeMap[int32]
	nodeMax *graph.NodeMap[int32]
}

func slack[L any](g *graph.DirectedGraph[L], ranks *graph.NodeMap[int32], eid graph.EdgeID) int32 {
	e := g.Edge(eid)
	return ranks.Get(e.To) - ranks.Get(e.From) - int32(e.MinLength)
}

// buildTightTree grows a spanning tree of zero-slack edges, shifting
// ranks (Gansner et al.'s feasible_tree procedure) whenever no more
// zero-slack edges connect the tree to the rest of the graph.
func buildTightTree[L any](g *graph.DirectedGraph[L], ranks *graph.NodeMap[int32]) *tightTree {
	n := g.NodesCount()
	t := &tightTree{
		inNode: graph.NewNodeMap[bool](n),
		inEdge: graph.NewEdgeMap[bool](g.EdgesCount()),
		adj:    graph.NewNodeMap[[]graph.EdgeID](n),
		root:   0,
	}
	if n == 0 {
		return t
	}
	t.inNode.Set(0, true)
	count := 1

	for count < n {
		grown := growZeroSlack(g, ranks, t)
		count += grown
		if count >= n {
			break
		}

		// no more zero-slack growth possible: find the minimal-slack
		// edge connecting the tree to the rest of the graph and shift.
		var bestEdge graph.EdgeID = -1
		bestSlack := int32(0)
		var treeNode graph.NodeID
		var treeNodeIsTo bool
		for _, eid := range g.IterEdges() {
			e := g.Edge(eid)
			fromIn, toIn := t.inNode.Get(e.From), t.inNode.Get(e.To)
			if fromIn == toIn {
				continue
			}
			s := slack(g, ranks, eid)
			if bestEdge == -1 || s < bestSlack {
				bestEdge, bestSlack = eid, s
				if fromIn {
					treeNode, treeNodeIsTo = e.From, false
				} else {
					treeNode, treeNodeIsTo = e.To, true
				}
			}
		}
		if bestEdge == -1 {
			break // disconnected graph; nothing more to tighten
		}
		_ = treeNode

		delta := bestSlack
		if treeNodeIsTo {
			delta = -delta
		}
		for i := 0; i < n; i++ {
			if t.inNode.Get(graph.NodeID(i)) {
				ranks.Set(graph.NodeID(i), ranks.Get(graph.NodeID(i))+delta)
			}
		}
	}

	labelSubtrees(g, t)

	return t
}

// growZeroSlack BFS-extends the tree using only currently-tight edges,
// returning how many new nodes were absorbed.
func growZeroSlack[L any](g *graph.DirectedGraph[L], ranks *graph.NodeMap[int32], t *tightTree) int {
	var frontier []graph.NodeID
	for i := 0; i < t.inNode.Len(); i++ {
		if t.inNode.Get(graph.NodeID(i)) {
			frontier = append(frontier, graph.NodeID(i))
		}
	}

	added := 0
	for len(frontier) > 0 {
		v := frontier[0]
		frontier = frontier[1:]
		for _, ew := range g.Node(v).Edges() {
			if t.inEdge.Get(ew.ID) {
				continue
			}
			if slack(g, ranks, ew.ID) != 0 {
				continue
			}
			other := g.Edge(ew.ID).OtherSide(ew.Dir)
			if t.inNode.Get(other) {
				// both endpoints already in tree: would create a
				// cycle in the tree graph, skip.
				continue
			}
			t.inEdge.Set(ew.ID, true)
			t.inNode.Set(other, true)
			t.adj.Set(v, append(t.adj.Get(v), ew.ID))
			t.adj.Set(other, append(t.adj.Get(other), ew.ID))
			added++
			frontier = append(frontier, other)
		}
	}

	return added
}

// labelSubtrees runs a postorder DFS over the tree (rooted at t.root)
// and assigns each node the [min,max] range of postorder indices
// spanned by its subtree - the standard trick that lets a tree edge's
// cut be tested with a single range-containment check.
func labelSubtrees[L any](g *graph.DirectedGraph[L], t *tightTree) {
	n := g.NodesCount()
	t.nodeMin = graph.NewNodeMap[int32](n)
	t.nodeMax = graph.NewNodeMap[int32](n)
	t.parentE = graph.NewNodeMap[graph.EdgeID](n)
	for i := 0; i < n; i++ {
		t.parentE.Set(graph.NodeID(i), -1)
	}

	visited := graph.NewNodeMap[bool](n)
	counter := int32(0)

	var dfs func(v graph.NodeID, parentE graph.EdgeID)
	dfs = func(v graph.NodeID, parentE graph.EdgeID) {
		visited.Set(v, true)
		t.parentE.Set(v, parentE)
		first := true
		myMin := counter
		for _, eid := range t.adj.Get(v) {
			if eid == parentE {
				continue
			}
			e := g.Edge(eid)
			other := e.From
			if other == v {
				other = e.To
			}
			if visited.Get(other) {
				continue
			}
			dfs(other, eid)
			if first {
				myMin = t.nodeMin.Get(other)
				first = false
			} else if m := t.nodeMin.Get(other); m < myMin {
				myMin = m
			}
		}
		if first {
			myMin = counter
		}
		t.nodeMin.Set(v, myMin)
		t.nodeMax.Set(v, counter)
		counter++
	}

	// the graph may be disconnected in the undirected sense only if
	// buildTightTree gave up early (bestEdge==-1); walk every
	// remaining unvisited node as its own root to label it anyway.
	dfs(t.root, -1)
	for i := 0; i < n; i++ {
		if !visited.Get(graph.NodeID(i)) {
			dfs(graph.NodeID(i), -1)
		}
	}
}

// inRange reports whether x's postorder index falls within the
// [lo,hi] range of the subtree rooted where some tree edge attaches.
func (t *tightTree) inRange(x graph.NodeID, lo, hi int32) bool {
	m := t.nodeMax.Get(x)

	return lo <= m && m <= hi
}

// partition identifies which endpoint of tree edge eid is the child in
// the rooted tree, and the postorder range its subtree spans - the cut
// this tree edge induces separates exactly the nodes in [lo,hi] from
// everything else.
func partition[L any](g *graph.DirectedGraph[L], t *tightTree, eid graph.EdgeID) (childRoot graph.NodeID, lo, hi int32) {
	e := g.Edge(eid)
	if t.parentE.Get(e.From) == eid {
		childRoot = e.From
	} else {
		childRoot = e.To
	}

	return childRoot, t.nodeMin.Get(childRoot), t.nodeMax.Get(childRoot)
}

// toSidePredicate returns a predicate over node ids that is true for
// whichever side of eid's cut contains e.To - the orientation cutValue
// and the replacement-edge search need to tell "same direction as eid"
// from "opposite direction".
func toSidePredicate[L any](g *graph.DirectedGraph[L], t *tightTree, eid graph.EdgeID, childRoot graph.NodeID, lo, hi int32) func(graph.NodeID) bool {
	e := g.Edge(eid)
	subtreeIsToSide := e.To == childRoot

	return func(x graph.NodeID) bool {
		within := t.inRange(x, lo, hi)
		if subtreeIsToSide {
			return within
		}

		return !within
	}
}
