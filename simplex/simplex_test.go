package simplex_test

import (
	"testing"

	"github.com/nodesketch/dotlayout/graph"
	"github.com/nodesketch/dotlayout/simplex"
	"github.com/nodesketch/dotlayout/todag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func feasible[L any](t *testing.T, g *graph.DirectedGraph[L], ranks *graph.NodeMap[int32]) {
	t.Helper()
	for _, eid := range g.IterEdges() {
		e := g.Edge(eid)
		diff := ranks.Get(e.To) - ranks.Get(e.From)
		assert.GreaterOrEqual(t, diff, int32(e.MinLength), "edge %d->%d violates min length", e.From, e.To)
	}
}

func TestRun_Chain(t *testing.T) {
	g := graph.Empty[string]()
	a, b, c := g.AddLabeledNode("a"), g.AddLabeledNode("b"), g.AddLabeledNode("c")
	g.AddEdge(graph.NewEdge(a, b))
	g.AddEdge(graph.NewEdge(b, c))
	g.AddRoot(a)

	ranks := simplex.Run(g)

	feasible(t, g, ranks)
	assert.Equal(t, int32(0), ranks.Get(a))
	assert.Equal(t, int32(1), ranks.Get(b))
	assert.Equal(t, int32(2), ranks.Get(c))
}

func TestRun_Diamond(t *testing.T) {
	g := graph.Empty[string]()
	a, b, c, d := g.AddLabeledNode("a"), g.AddLabeledNode("b"), g.AddLabeledNode("c"), g.AddLabeledNode("d")
	g.AddEdge(graph.NewEdge(a, b))
	g.AddEdge(graph.NewEdge(a, c))
	g.AddEdge(graph.NewEdge(b, d))
	g.AddEdge(graph.NewEdge(c, d))
	g.AddRoot(a)

	ranks := simplex.Run(g)

	feasible(t, g, ranks)
	assert.Equal(t, int32(0), ranks.Get(a))
	assert.Equal(t, int32(1), ranks.Get(b))
	assert.Equal(t, int32(1), ranks.Get(c))
	assert.Equal(t, int32(2), ranks.Get(d))
}

func TestRun_MinLengthHonored(t *testing.T) {
	g := graph.Empty[string]()
	a, b := g.AddLabeledNode("a"), g.AddLabeledNode("b")
	g.AddEdge(graph.Edge{From: a, To: b, MinLength: 3, Weight: 1})
	g.AddRoot(a)

	ranks := simplex.Run(g)

	feasible(t, g, ranks)
	assert.Equal(t, int32(0), ranks.Get(a))
	assert.Equal(t, int32(3), ranks.Get(b))
}

func TestRun_NegativeCutTriggersPivot(t *testing.T) {
	// a -> b -> d (weight 1, long way) and a -> c -> d (weight 10, short way)
	// the heavy path should end up minimal length, which forces a pivot
	// away from whichever spanning tree the initial walk happens to pick.
	g := graph.Empty[string]()
	a, b, c, d := g.AddLabeledNode("a"), g.AddLabeledNode("b"), g.AddLabeledNode("c"), g.AddLabeledNode("d")
	g.AddEdge(graph.Edge{From: a, To: b, MinLength: 1, Weight: 1})
	g.AddEdge(graph.Edge{From: b, To: d, MinLength: 1, Weight: 1})
	g.AddEdge(graph.Edge{From: a, To: c, MinLength: 1, Weight: 10})
	g.AddEdge(graph.Edge{From: c, To: d, MinLength: 1, Weight: 10})
	g.AddRoot(a)

	ranks := simplex.Run(g)

	feasible(t, g, ranks)
	// both paths are forced to length 2 by the min-length constraints
	// regardless of weight, so the optimum is unique: b and c both at
	// rank 1, d at rank 2.
	assert.Equal(t, int32(1), ranks.Get(b))
	assert.Equal(t, int32(1), ranks.Get(c))
	assert.Equal(t, int32(2), ranks.Get(d))
}

func TestRun_PostprocessCenterStaysFeasible(t *testing.T) {
	g := graph.Empty[string]()
	a, b, c, d, e := g.AddLabeledNode("a"), g.AddLabeledNode("b"), g.AddLabeledNode("c"), g.AddLabeledNode("d"), g.AddLabeledNode("e")
	g.AddEdge(graph.NewEdge(a, b))
	g.AddEdge(graph.NewEdge(b, c))
	g.AddEdge(graph.NewEdge(a, d))
	g.AddEdge(graph.NewEdge(d, e))
	g.AddEdge(graph.NewEdge(e, c))
	g.AddRoot(a)

	ranks := simplex.Run(g, simplex.WithPostprocess(simplex.PostprocessCenter))

	feasible(t, g, ranks)
	require.Equal(t, int32(0), ranks.Get(a))
}

func TestRun_EmptyGraph(t *testing.T) {
	g := graph.Empty[string]()
	ranks := simplex.Run(g)
	assert.Equal(t, 0, ranks.Len())
}

func TestRun_SingleEdge(t *testing.T) {
	g := graph.Empty[string]()
	a, b := g.AddLabeledNode("a"), g.AddLabeledNode("b")
	g.AddEdge(graph.NewEdge(a, b))
	g.AddRoot(a)

	ranks := simplex.Run(g)

	feasible(t, g, ranks)
	assert.Equal(t, int32(0), ranks.Get(a))
	assert.Equal(t, int32(1), ranks.Get(b))
}

func TestRun_TwoDisjointChainsRankIndependently(t *testing.T) {
	g := graph.Empty[string]()
	a, b, c, d := g.AddLabeledNode("a"), g.AddLabeledNode("b"), g.AddLabeledNode("c"), g.AddLabeledNode("d")
	g.AddEdge(graph.NewEdge(a, b))
	g.AddEdge(graph.NewEdge(c, d))
	g.AddRoot(a)
	g.AddRoot(c)

	ranks := simplex.Run(g)

	feasible(t, g, ranks)
	assert.Equal(t, int32(0), ranks.Get(a))
	assert.Equal(t, int32(1), ranks.Get(b))
	assert.Equal(t, int32(0), ranks.Get(c))
	assert.Equal(t, int32(1), ranks.Get(d))
}

func TestRun_ThreeCycleAfterToDagRanksSequentially(t *testing.T) {
	// 0->1->2->0: todag inverts exactly one edge, leaving a chain that
	// network simplex ranks 0, 1, 2 in order.
	g := graph.Empty[string]()
	n0, n1, n2 := g.AddLabeledNode("0"), g.AddLabeledNode("1"), g.AddLabeledNode("2")
	g.AddEdge(graph.NewEdge(n0, n1))
	g.AddEdge(graph.NewEdge(n1, n2))
	g.AddEdge(graph.NewEdge(n2, n0))
	g.AddRoot(n0)

	todag.ToDag(g)
	ranks := simplex.Run(g)

	feasible(t, g, ranks)
	assert.Equal(t, int32(0), ranks.Get(n0))
	assert.Equal(t, int32(1), ranks.Get(n1))
	assert.Equal(t, int32(2), ranks.Get(n2))
}

func TestRun_TwoCycleAfterToDagRanksWithOneInvertedEdge(t *testing.T) {
	// a->b; b->a: todag must invert exactly one of the two edges,
	// leaving a single Normal edge and a single Inverted edge, and
	// network simplex then ranks a before b.
	g := graph.Empty[string]()
	a, b := g.AddLabeledNode("a"), g.AddLabeledNode("b")
	g.AddEdge(graph.NewEdge(a, b))
	g.AddEdge(graph.NewEdge(b, a))
	g.AddRoot(a)

	todag.ToDag(g)
	ranks := simplex.Run(g)

	feasible(t, g, ranks)
	assert.Equal(t, int32(0), ranks.Get(a))
	assert.Equal(t, int32(1), ranks.Get(b))

	require.Equal(t, 2, g.EdgesCount())
	normal, inverted := 0, 0
	for _, eid := range g.IterEdges() {
		if g.Edge(eid).IsInverted() {
			inverted++
		} else {
			normal++
		}
	}
	assert.Equal(t, 1, normal)
	assert.Equal(t, 1, inverted)
}

func TestRun_ZeroWeightEdgesAreLegalAndDoNotBreakRanking(t *testing.T) {
	// 0->3; 0->6; 1->3; 1->5; 2->3; 2->4; 4->5; 5->6, with (4->5) and
	// (5->6) given weight 0 to de-prioritize them in the layout
	// objective - weight 0 is a legal, spec-supported edge weight and
	// must be honored verbatim, not clamped to 1.
	g := graph.Empty[string]()
	ids := make([]graph.NodeID, 7)
	for i := range ids {
		ids[i] = g.AddLabeledNode(string(rune('0' + i)))
	}
	g.AddEdge(graph.NewEdge(ids[0], ids[3]))
	g.AddEdge(graph.NewEdge(ids[0], ids[6]))
	g.AddEdge(graph.NewEdge(ids[1], ids[3]))
	g.AddEdge(graph.NewEdge(ids[1], ids[5]))
	g.AddEdge(graph.NewEdge(ids[2], ids[3]))
	g.AddEdge(graph.NewEdge(ids[2], ids[4]))
	g.AddEdge(graph.Edge{From: ids[4], To: ids[5], Kind: graph.Normal, MinLength: 1, Weight: 0})
	g.AddEdge(graph.Edge{From: ids[5], To: ids[6], Kind: graph.Normal, MinLength: 1, Weight: 0})
	g.AddRoot(ids[0])
	g.AddRoot(ids[1])
	g.AddRoot(ids[2])

	ranks := simplex.Run(g)

	feasible(t, g, ranks)
	want := []int32{1, 1, 0, 2, 1, 2, 3}
	for i, w := range want {
		assert.Equal(t, w, ranks.Get(ids[i]), "rank of node %d", i)
	}
}
