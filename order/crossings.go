package order

import "github.com/nodesketch/dotlayout/graph"

// countTotalCrossings sums, over every pair of adjacent layers, the
// number of edge pairs whose endpoints appear in opposite relative
// order - the standard definition of a layered-drawing crossing.
func countTotalCrossings[L any](g *graph.DirectedGraph[L], layers [][]graph.NodeID) int {
	if len(layers) < 2 {
		return 0
	}

	n := g.NodesCount()
	pos := graph.NewNodeMap[int](n)
	for _, layer := range layers {
		for p, id := range layer {
			pos.Set(id, p)
		}
	}

	total := 0
	for li := 0; li+1 < len(layers); li++ {
		total += crossingsBetween(g, pos, layers[li])
	}

	return total
}

// crossingsBetween counts crossings among the downward edges leaving
// upperLayer, ordered left to right.
func crossingsBetween[L any](g *graph.DirectedGraph[L], pos *graph.NodeMap[int], upperLayer []graph.NodeID) int {
	type span struct{ upper, lower int }
	var edges []span
	for _, v := range upperLayer {
		up := pos.Get(v)
		for _, eid := range g.Node(v).Outputs {
			to := g.Edge(eid).To
			edges = append(edges, span{upper: up, lower: pos.Get(to)})
		}
	}

	count := 0
	for i := 0; i < len(edges); i++ {
		for j := i + 1; j < len(edges); j++ {
			if (edges[i].upper-edges[j].upper)*(edges[i].lower-edges[j].lower) < 0 {
				count++
			}
		}
	}

	return count
}
