package todag

import "github.com/nodesketch/dotlayout/graph"

type actionKind int

const (
	enterRoot actionKind = iota
	enter
	leave
)

// action is the explicit-stack analogue of a DFS call frame: enterRoot
// and enter both mean "visit this node," leave means "pop it off the
// current path after all its descendants have been explored." Enter
// additionally carries the edge that is being followed, so a back-edge
// can be inverted without re-deriving it.
type action struct {
	kind   actionKind
	id     graph.NodeID
	edgeID graph.EdgeID
}

// ToDag mutates g in place so that, following current From/To
// orientation, it contains no directed cycle. Edges identified as
// back-edges are flipped via g.InvertEdge; nodes unreachable from any
// existing root become new roots with all of their in-edges flipped.
func ToDag[L any](g *graph.DirectedGraph[L]) {
	n := g.NodesCount()
	visited := graph.NewNodeMap[bool](n)
	onPath := graph.NewNodeMap[bool](n)

	var stack []action
	push := func(id graph.NodeID) {
		stack = append(stack, action{kind: enterRoot, id: id})
	}

	run := func() {
		for len(stack) > 0 {
			a := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			switch a.kind {
			case leave:
				onPath.Set(a.id, false)
				continue
			case enter:
				if onPath.Get(a.id) {
					g.InvertEdge(a.edgeID)
					continue
				}
				if visited.Get(a.id) {
					continue
				}
			case enterRoot:
				if visited.Get(a.id) {
					continue
				}
			}

			id := a.id
			visited.Set(id, true)
			onPath.Set(id, true)
			stack = append(stack, action{kind: leave, id: id})

			outs := g.Node(id).Outputs
			for i := len(outs) - 1; i >= 0; i-- {
				eid := outs[i]
				stack = append(stack, action{kind: enter, id: g.Edge(eid).To, edgeID: eid})
			}
		}
	}

	for _, r := range g.Roots() {
		push(r)
	}
	run()

	for {
		next := graph.NodeID(-1)
		for i := 0; i < n; i++ {
			if !visited.Get(graph.NodeID(i)) {
				next = graph.NodeID(i)
				break
			}
		}
		if next == -1 {
			return
		}

		invertAllInputs(g, next)
		g.AddRoot(next)
		push(next)
		run()
	}
}

// invertAllInputs flips every current in-edge of id, making id a root.
// The input slice is snapshotted first since InvertEdge mutates it.
func invertAllInputs[L any](g *graph.DirectedGraph[L], id graph.NodeID) {
	ins := append([]graph.EdgeID(nil), g.Node(id).Inputs...)
	for _, eid := range ins {
		g.InvertEdge(eid)
	}
}
