package xcoord

import (
	"sort"

	"github.com/nodesketch/dotlayout/graph"
	"github.com/nodesketch/dotlayout/simplex"
)

// Compute assigns each node an x-coordinate, given its rank and its
// left-to-right position within that rank (as produced by
// package order), by building an auxiliary graph and running network
// simplex over it.
func Compute[L any](g *graph.DirectedGraph[L], ranks *graph.NodeMap[int32], positions *graph.NodeMap[int], opts ...Option) *graph.NodeMap[int32] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := g.NodesCount()
	if n == 0 {
		return graph.NewNodeMap[int32](0)
	}

	aux := graph.Empty[struct{}]()
	// The first n aux nodes are added in original-node order, so an
	// original NodeID and its aux counterpart share the same index.
	for i := 0; i < n; i++ {
		aux.AddNode(false)
	}

	// hint seeds the solver: each node starts at its slot within its rank
	// times NodeWidth, each helper one unit left of its leftmost endpoint.
	hint := graph.NewNodeMap[int32](n)
	for _, layer := range layersByRankAndPosition(g, ranks, positions) {
		for i, id := range layer {
			hint.Set(id, int32(i*NodeWidth))
		}
		for i := 0; i+1 < len(layer); i++ {
			left, right := layer[i], layer[i+1]
			aux.AddEdge(graph.Edge{From: left, To: right, Kind: graph.Normal, MinLength: NodeWidth, Weight: 0})
		}
	}

	for _, eid := range g.IterEdges() {
		e := g.Edge(eid)

		helper := aux.AddNode(true)
		left := hint.Get(e.From)
		if r := hint.Get(e.To); r < left {
			left = r
		}
		hint.Set(helper, left-1)
		aux.AddEdge(graph.Edge{From: helper, To: e.From, Kind: graph.Normal, MinLength: 1, Weight: e.Weight})
		aux.AddEdge(graph.Edge{From: helper, To: e.To, Kind: graph.Normal, MinLength: 1, Weight: e.Weight})
	}

	opts2 := []simplex.Option{simplex.WithPostprocess(simplex.PostprocessCenter), simplex.WithInitialRanks(hint)}
	if o.dumpPrefix != "" {
		opts2 = append(opts2, simplex.WithDumpPrefix(o.dumpPrefix))
	}
	auxRanks := simplex.Run(aux, opts2...)

	// Re-baseline against only the original nodes' coordinates: simplex's
	// own normalization anchors on the minimum over every aux node,
	// including the per-edge helper nodes, which can sit to the left of
	// every real node and otherwise leave the reported x-coordinates
	// offset from zero.
	min := auxRanks.Get(0)
	for i := 1; i < n; i++ {
		if v := auxRanks.Get(graph.NodeID(i)); v < min {
			min = v
		}
	}

	xs := graph.NewNodeMap[int32](n)
	for i := 0; i < n; i++ {
		xs.Set(graph.NodeID(i), auxRanks.Get(graph.NodeID(i))-min)
	}

	return xs
}

// layersByRankAndPosition groups original nodes by rank, each layer
// sorted left to right per positions, mirroring order.seedLayers.
func layersByRankAndPosition[L any](g *graph.DirectedGraph[L], ranks *graph.NodeMap[int32], positions *graph.NodeMap[int]) [][]graph.NodeID {
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
	for _, layer := range layers {
		sort.Slice(layer, func(i, j int) bool {
			return positions.Get(layer[i]) < positions.Get(layer[j])
		})
	}

	return layers
}
