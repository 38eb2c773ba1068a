package order

import "github.com/nodesketch/dotlayout/graph"

// Places returns each node's 0-based position within its rank's
// left-to-right order, after DefaultIterations (or WithIterations)
// rounds of median-sweep plus transpose.
func Places[L any](g *graph.DirectedGraph[L], ranks *graph.NodeMap[int32], opts ...Option) *graph.NodeMap[int] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	layers := seedLayers(g, ranks)
	best := copyLayers(layers)
	bestCrossings := countTotalCrossings(g, best)

	for i := 0; i < o.iterations; i++ {
		candidate := wmedian(g, best, i%2 == 0)
		transpose(g, candidate)
		if c := countTotalCrossings(g, candidate); c <= bestCrossings {
			best = candidate
			bestCrossings = c
		}
	}

	return positionsFromLayers(g, best)
}

// seedLayers groups nodes by rank, in node-id order, into one slice per
// rank from 0 to the maximum rank present.
func seedLayers[L any](g *graph.DirectedGraph[L], ranks *graph.NodeMap[int32]) [][]graph.NodeID {
	maxRank := int32(-1)
	for _, id := range g.IterNodes() {
		if r := ranks.Get(id); r > maxRank {
			maxRank = r
		}
	}
	if maxRank < 0 {
		return nil
	}

	layers := make([][]graph.NodeID, maxRank+1)
	for _, id := range g.IterNodes() {
		r := ranks.Get(id)
		layers[r] = append(layers[r], id)
	}

	return layers
}

func copyLayers(layers [][]graph.NodeID) [][]graph.NodeID {
	out := make([][]graph.NodeID, len(layers))
	for i, l := range layers {
		out[i] = append([]graph.NodeID(nil), l...)
	}

	return out
}

func positionsFromLayers[L any](g *graph.DirectedGraph[L], layers [][]graph.NodeID) *graph.NodeMap[int] {
	pos := graph.NewNodeMap[int](g.NodesCount())
	for _, layer := range layers {
		for i, id := range layer {
			pos.Set(id, i)
		}
	}

	return pos
}
