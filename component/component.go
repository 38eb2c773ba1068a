package component

import "github.com/nodesketch/dotlayout/graph"

// Split partitions g into one DirectedGraph per weakly-connected
// component. The returned Placement maps every original NodeID to the
// component index and node id it was copied to. Self-loops are not
// copied into any component subgraph.
func Split[L any](g *graph.DirectedGraph[L]) ([]*graph.DirectedGraph[struct{}], *graph.NodeMap[Placement]) {
	n := g.NodesCount()
	componentOf := graph.NewNodeMap[int](n)
	for i := 0; i < n; i++ {
		componentOf.Set(graph.NodeID(i), -1)
	}

	var components [][]graph.NodeID
	for i := 0; i < n; i++ {
		start := graph.NodeID(i)
		if componentOf.Get(start) != -1 {
			continue
		}
		idx := len(components)
		var member []graph.NodeID
		queue := []graph.NodeID{start}
		componentOf.Set(start, idx)
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			member = append(member, cur)
			for _, nb := range g.Children(cur) {
				if componentOf.Get(nb) == -1 {
					componentOf.Set(nb, idx)
					queue = append(queue, nb)
				}
			}
			for _, nb := range g.Parents(cur) {
				if componentOf.Get(nb) == -1 {
					componentOf.Set(nb, idx)
					queue = append(queue, nb)
				}
			}
		}
		components = append(components, member)
	}

	placement := graph.NewNodeMap[Placement](n)
	subgraphs := make([]*graph.DirectedGraph[struct{}], len(components))
	for idx, member := range components {
		sub := graph.Empty[struct{}]()
		for _, original := range member {
			isVirtual := g.Node(original).IsVirtual
			newID := sub.AddNode(isVirtual)
			placement.Set(original, Placement{Component: idx, NewID: newID})
		}
		subgraphs[idx] = sub
	}

	for _, eid := range g.IterEdges() {
		e := g.Edge(eid)
		if e.From == e.To {
			continue // self-loops are not copied
		}
		fromP := placement.Get(e.From)
		toP := placement.Get(e.To)
		if fromP.Component != toP.Component {
			continue // impossible for a weakly-connected split, defensive only
		}
		subgraphs[fromP.Component].AddEdge(graph.Edge{
			From: fromP.NewID, To: toP.NewID,
			Kind: e.Kind, MinLength: e.MinLength, Weight: e.Weight,
		})
	}

	for _, r := range g.Roots() {
		p := placement.Get(r)
		subgraphs[p.Component].AddRoot(p.NewID)
	}
	// every component must have at least one root for network simplex's
	// initial ranking walk; if none of its nodes were original roots
	// (e.g. the whole component was inside a cycle that to_dag
	// resolved by picking a root elsewhere after this split would have
	// run), fall back to its first node.
	for idx, sub := range subgraphs {
		if len(sub.Roots()) == 0 && sub.NodesCount() > 0 {
			sub.AddRoot(0)
		}
		_ = idx
	}

	return subgraphs, placement
}

// Merge combines per-component rank results into a single NodeMap over
// the original node ids, using the Placement produced by Split.
func Merge(placement *graph.NodeMap[Placement], componentRanks []*graph.NodeMap[int32]) (*graph.NodeMap[int32], error) {
	out := graph.NewNodeMap[int32](placement.Len())
	for _, id := range placement.IterIDs() {
		p := placement.Get(id)
		if p.Component < 0 || p.Component >= len(componentRanks) {
			return nil, ErrUnknownComponent
		}
		out.Set(id, componentRanks[p.Component].Get(p.NewID))
	}

	return out, nil
}
