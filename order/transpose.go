package order

import "github.com/nodesketch/dotlayout/graph"

// transpose repeatedly swaps adjacent nodes within each layer whenever
// doing so strictly reduces the crossings their edges contribute
// against the layers immediately above and below, until no layer
// admits an improving swap.
func transpose[L any](g *graph.DirectedGraph[L], layers [][]graph.NodeID) {
	n := g.NodesCount()
	pos := graph.NewNodeMap[int](n)
	for _, layer := range layers {
		for p, id := range layer {
			pos.Set(id, p)
		}
	}

	improved := true
	for improved {
		improved = false
		for li, layer := range layers {
			for i := 0; i+1 < len(layer); i++ {
				a, b := layer[i], layer[i+1]
				before := pairCrossings(g, pos, li, len(layers), a, b, true)
				pos.Set(a, i+1)
				pos.Set(b, i)
				after := pairCrossings(g, pos, li, len(layers), a, b, false)
				if after < before {
					layer[i], layer[i+1] = b, a
					improved = true
				} else {
					pos.Set(a, i)
					pos.Set(b, i+1)
				}
			}
		}
	}
}

// pairCrossings counts crossings contributed, against the layer above
// li and the layer below li, by the edge sets of nodes a and b (at
// adjacent positions), given aLeftOfB's claimed left-to-right order.
func pairCrossings[L any](g *graph.DirectedGraph[L], pos *graph.NodeMap[int], li, numLayers int, a, b graph.NodeID, aLeftOfB bool) int {
	total := 0
	if li > 0 {
		total += crossCount(positionsOf(g, pos, a, graph.Input), positionsOf(g, pos, b, graph.Input), aLeftOfB)
	}
	if li+1 < numLayers {
		total += crossCount(positionsOf(g, pos, a, graph.Output), positionsOf(g, pos, b, graph.Output), aLeftOfB)
	}

	return total
}

func positionsOf[L any](g *graph.DirectedGraph[L], pos *graph.NodeMap[int], v graph.NodeID, dir graph.Direction) []int {
	var edges []graph.EdgeID
	if dir == graph.Input {
		edges = g.Node(v).Inputs
	} else {
		edges = g.Node(v).Outputs
	}
	out := make([]int, 0, len(edges))
	for _, eid := range edges {
		out = append(out, pos.Get(g.Edge(eid).OtherSide(dir)))
	}

	return out
}

func crossCount(aPos, bPos []int, aLeftOfB bool) int {
	count := 0
	for _, x := range aPos {
		for _, y := range bPos {
			if aLeftOfB {
				if x > y {
					count++
				}
			} else if x < y {
				count++
			}
		}
	}

	return count
}
