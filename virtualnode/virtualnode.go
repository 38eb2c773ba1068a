package virtualnode

import "github.com/nodesketch/dotlayout/graph"

// Insert rewrites every edge of g that spans more than one rank into a
// chain of single-rank edges through newly added virtual nodes. ranks
// is extended (via NodeMap's auto-grow) to cover the new nodes.
func Insert[L any](g *graph.DirectedGraph[L], ranks *graph.NodeMap[int32]) {
	g.ForEachEdge(func(eid graph.EdgeID) {
		e := g.Edge(eid)
		fromRank := ranks.Get(e.From)
		toRank := ranks.Get(e.To)
		if toRank-fromRank <= 1 {
			return
		}

		kind, weight, minLength := e.Kind, e.Weight, e.MinLength
		finalTo := e.To
		destSlot := indexOf(g.Node(finalTo).Inputs, eid)

		curRank := fromRank
		curEdgeID := eid
		for curRank+1 < toRank {
			vNode := g.AddNode(true)
			ranks.Set(vNode, curRank+1)
			redirectTo(g, curEdgeID, vNode)

			curEdgeID = g.AddEdge(graph.Edge{From: vNode, To: finalTo, Kind: kind, MinLength: minLength, Weight: weight})
			curRank++
		}

		spliceIntoSlot(g, finalTo, curEdgeID, destSlot)
	})
}

// redirectTo changes eid's destination to newTo, moving its id out of
// the old destination's Inputs slice and onto newTo's.
func redirectTo[L any](g *graph.DirectedGraph[L], eid graph.EdgeID, newTo graph.NodeID) {
	e := g.Edge(eid)
	oldTo := e.To
	oldToNode := g.Node(oldTo)
	oldToNode.Inputs = removeID(oldToNode.Inputs, eid)
	e.To = newTo
	newToNode := g.Node(newTo)
	newToNode.Inputs = append(newToNode.Inputs, eid)
}

// spliceIntoSlot moves eid (assumed to currently be the last entry of
// node's Inputs, as freshly appended by AddEdge) to position slot.
func spliceIntoSlot[L any](g *graph.DirectedGraph[L], node graph.NodeID, eid graph.EdgeID, slot int) {
	n := g.Node(node)
	inputs := removeID(n.Inputs, eid)
	if slot < 0 || slot > len(inputs) {
		slot = len(inputs)
	}
	out := make([]graph.EdgeID, 0, len(inputs)+1)
	out = append(out, inputs[:slot]...)
	out = append(out, eid)
	out = append(out, inputs[slot:]...)
	n.Inputs = out
}

func indexOf(s []graph.EdgeID, id graph.EdgeID) int {
	for i, v := range s {
		if v == id {
			return i
		}
	}

	return len(s)
}

func removeID(s []graph.EdgeID, id graph.EdgeID) []graph.EdgeID {
	out := make([]graph.EdgeID, 0, len(s))
	for _, v := range s {
		if v != id {
			out = append(out, v)
		}
	}

	return out
}
