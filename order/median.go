package order

import (
	"sort"

	"github.com/nodesketch/dotlayout/graph"
)

// wmedian performs one alternating top-down (downward=true) or
// bottom-up (downward=false) median sweep over layers, returning a new
// arrangement. The first layer in the sweep direction is left
// unchanged; every later layer is reordered by the median position of
// each node's neighbors in the layer just fixed.
func wmedian[L any](g *graph.DirectedGraph[L], layers [][]graph.NodeID, downward bool) [][]graph.NodeID {
	out := make([][]graph.NodeID, len(layers))
	if len(layers) == 0 {
		return out
	}

	n := g.NodesCount()
	pos := graph.NewNodeMap[int](n)

	setLayer := func(i int, layer []graph.NodeID) {
		out[i] = layer
		for p, id := range layer {
			pos.Set(id, p)
		}
	}

	if downward {
		setLayer(0, append([]graph.NodeID(nil), layers[0]...))
		for li := 1; li < len(layers); li++ {
			setLayer(li, reorderByMedian(g, layers[li], pos, graph.Input))
		}
	} else {
		last := len(layers) - 1
		setLayer(last, append([]graph.NodeID(nil), layers[last]...))
		for li := last - 1; li >= 0; li-- {
			setLayer(li, reorderByMedian(g, layers[li], pos, graph.Output))
		}
	}

	return out
}

// reorderByMedian sorts layer by the median position (per pos) of each
// node's neighbors reached via dir (Input edges for a downward sweep,
// Output edges for an upward one), leaving nodes with no such neighbor
// in their current slot.
func reorderByMedian[L any](g *graph.DirectedGraph[L], layer []graph.NodeID, pos *graph.NodeMap[int], dir graph.Direction) []graph.NodeID {
	type movable struct {
		node   graph.NodeID
		median float64
	}

	fixed := make([]bool, len(layer))
	var moving []movable

	for i, v := range layer {
		m, ok := medianNeighborPos(g, v, pos, dir)
		if !ok {
			fixed[i] = true
			continue
		}
		moving = append(moving, movable{node: v, median: m})
	}

	sort.SliceStable(moving, func(a, b int) bool { return moving[a].median < moving[b].median })

	out := make([]graph.NodeID, len(layer))
	mi := 0
	for i := range layer {
		if fixed[i] {
			out[i] = layer[i]
		} else {
			out[i] = moving[mi].node
			mi++
		}
	}

	return out
}

func medianNeighborPos[L any](g *graph.DirectedGraph[L], v graph.NodeID, pos *graph.NodeMap[int], dir graph.Direction) (float64, bool) {
	var edges []graph.EdgeID
	if dir == graph.Input {
		edges = g.Node(v).Inputs
	} else {
		edges = g.Node(v).Outputs
	}
	if len(edges) == 0 {
		return 0, false
	}

	positions := make([]int, 0, len(edges))
	for _, eid := range edges {
		positions = append(positions, pos.Get(g.Edge(eid).OtherSide(dir)))
	}
	sort.Ints(positions)

	m := len(positions)
	mid := m / 2
	if m%2 == 1 {
		return float64(positions[mid]), true
	}

	return float64(positions[mid-1]+positions[mid]) / 2.0, true
}
