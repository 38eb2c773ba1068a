package simplex

import "github.com/nodesketch/dotlayout/graph"

// Run computes an integer rank for every node of g minimizing total
// weighted edge length subject to each edge's minimum length. g must
// be acyclic; cycle removal (package todag) is expected to have run
// first.
func Run[L any](g *graph.DirectedGraph[L], opts ...Option) *graph.NodeMap[int32] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := g.NodesCount()
	if n == 0 {
		return graph.NewNodeMap[int32](0)
	}

	var ranks *graph.NodeMap[int32]
	if o.initialRanks != nil {
		ranks = o.initialRanks
	} else {
		ranks = initialRanks(g)
	}

	tree := buildTightTree(g, ranks)
	pivotLoop(g, ranks, tree)
	normalize(ranks)

	if o.postprocess == PostprocessCenter {
		center(g, ranks, tree)
		normalize(ranks)
	}

	if o.dumpPrefix != "" {
		_ = g.Dump(o.dumpPrefix, nil, nil)
	}

	return ranks
}

// initialRanks walks g in topological order and gives each node the
// largest (rank[from] + minLength) over its in-edges, or 0 if it has
// none - the smallest rank each node can feasibly take.
func initialRanks[L any](g *graph.DirectedGraph[L]) *graph.NodeMap[int32] {
	n := g.NodesCount()
	ranks := graph.NewNodeMap[int32](n)
	order := topologicalOrder(g)
	for _, v := range order {
		best := int32(0)
		for _, eid := range g.Node(v).Inputs {
			e := g.Edge(eid)
			if cand := ranks.Get(e.From) + int32(e.MinLength); cand > best {
				best = cand
			}
		}
		ranks.Set(v, best)
	}

	return ranks
}

// topologicalOrder returns a Kahn's-algorithm ordering of g's nodes.
// g is assumed acyclic; nodes unreachable from any edge are emitted in
// index order interleaved as their in-degree reaches zero.
func topologicalOrder[L any](g *graph.DirectedGraph[L]) []graph.NodeID {
	n := g.NodesCount()
	indeg := make([]int, n)
	for _, eid := range g.IterEdges() {
		e := g.Edge(eid)
		indeg[e.To]++
	}

	queue := make([]graph.NodeID, 0, n)
	for i := 0; i < n; i++ {
		if indeg[i] == 0 {
			queue = append(queue, graph.NodeID(i))
		}
	}

	order := make([]graph.NodeID, 0, n)
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		order = append(order, v)
		for _, child := range g.Children(v) {
			indeg[child]--
			if indeg[child] == 0 {
				queue = append(queue, child)
			}
		}
	}
	// any remaining nodes indicate a cycle slipped through; append them
	// in index order rather than panic.
	if len(order) < n {
		seen := make([]bool, n)
		for _, v := range order {
			seen[v] = true
		}
		for i := 0; i < n; i++ {
			if !seen[i] {
				order = append(order, graph.NodeID(i))
			}
		}
	}

	return order
}
