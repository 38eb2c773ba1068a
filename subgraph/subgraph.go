package subgraph

import "github.com/nodesketch/dotlayout/graph"

// Extract returns the induced subgraph reachable by breadth-first
// search from start (or, if start is nil, from g's first root, or
// node 0 if g has no roots), bounded by maxNodes and maxEdges, plus
// the per-node Overflow counts for edges that did not make it in.
func Extract[L any](g *graph.DirectedGraph[L], start *graph.NodeID, maxNodes, maxEdges uint32) (*graph.DirectedGraph[L], *graph.NodeMap[Overflow], error) {
	startID, err := resolveStart(g, start)
	if err != nil {
		return nil, nil, err
	}

	n := g.NodesCount()
	if n == 0 {
		return graph.Empty[L](), graph.NewNodeMap[Overflow](0), nil
	}

	selected := bfsSelect(g, startID, maxNodes)

	inSet := graph.NewNodeMap[bool](n)
	orig2new := graph.NewNodeMap[int](n)
	for i := 0; i < n; i++ {
		orig2new.Set(graph.NodeID(i), -1)
	}

	sub := graph.Empty[L]()
	for _, id := range selected {
		isVirtual := g.Node(id).IsVirtual
		var newID graph.NodeID
		if label, ok := g.OriginalLabel(id); ok {
			newID = sub.AddLabeledNode(label)
		} else {
			newID = sub.AddNode(isVirtual)
		}
		inSet.Set(id, true)
		orig2new.Set(id, int(newID))
	}

	overflow := graph.NewNodeMap[Overflow](len(selected))
	edgesCopied := uint32(0)
	for _, eid := range g.IterEdges() {
		e := g.Edge(eid)
		fromIn, toIn := inSet.Get(e.From), inSet.Get(e.To)
		switch {
		case fromIn && toIn && edgesCopied < maxEdges:
			sub.AddEdge(graph.Edge{
				From:      graph.NodeID(orig2new.Get(e.From)),
				To:        graph.NodeID(orig2new.Get(e.To)),
				Kind:      e.Kind,
				MinLength: e.MinLength,
				Weight:    e.Weight,
			})
			edgesCopied++
		case fromIn && toIn:
			// both endpoints present, but the edge budget ran out.
			bumpOut(overflow, graph.NodeID(orig2new.Get(e.From)))
			bumpIn(overflow, graph.NodeID(orig2new.Get(e.To)))
		case fromIn:
			bumpOut(overflow, graph.NodeID(orig2new.Get(e.From)))
		case toIn:
			bumpIn(overflow, graph.NodeID(orig2new.Get(e.To)))
		}
	}

	if newStart := orig2new.Get(startID); newStart >= 0 {
		sub.AddRoot(graph.NodeID(newStart))
	}

	return sub, overflow, nil
}

func bumpIn(overflow *graph.NodeMap[Overflow], id graph.NodeID) {
	p := overflow.GetPtr(id)
	p.In++
}

func bumpOut(overflow *graph.NodeMap[Overflow], id graph.NodeID) {
	p := overflow.GetPtr(id)
	p.Out++
}

// resolveStart validates an explicit start, or falls back to g's first
// root, or node 0 if g has no roots and at least one node.
func resolveStart[L any](g *graph.DirectedGraph[L], start *graph.NodeID) (graph.NodeID, error) {
	if start != nil {
		if int(*start) < 0 || int(*start) >= g.NodesCount() {
			return 0, ErrStartNotFound
		}

		return *start, nil
	}
	if roots := g.Roots(); len(roots) > 0 {
		return roots[0], nil
	}

	return 0, nil
}

// bfsSelect returns, in BFS-layer order, up to maxNodes node ids
// reachable from start over the graph's undirected shadow (both
// Children and Parents), so the extracted neighborhood grows outward
// regardless of edge direction.
func bfsSelect[L any](g *graph.DirectedGraph[L], start graph.NodeID, maxNodes uint32) []graph.NodeID {
	n := g.NodesCount()
	visited := graph.NewNodeMap[bool](n)
	visited.Set(start, true)

	selected := []graph.NodeID{start}
	current := []graph.NodeID{start}
	for len(current) > 0 && uint32(len(selected)) < maxNodes {
		var next []graph.NodeID
		for _, id := range current {
			neighbors := append(append([]graph.NodeID(nil), g.Children(id)...), g.Parents(id)...)
			for _, nb := range neighbors {
				if visited.Get(nb) {
					continue
				}
				if uint32(len(selected)) >= maxNodes {
					break
				}
				visited.Set(nb, true)
				selected = append(selected, nb)
				next = append(next, nb)
			}
		}
		current = next
	}

	return selected
}
