package xcoord_test

import (
	"testing"

	"github.com/nodesketch/dotlayout/graph"
	"github.com/nodesketch/dotlayout/order"
	"github.com/nodesketch/dotlayout/simplex"
	"github.com/nodesketch/dotlayout/xcoord"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompute_EmptyGraph(t *testing.T) {
	g := graph.Empty[string]()
	ranks := graph.NewNodeMap[int32](0)
	positions := graph.NewNodeMap[int](0)
	xs := xcoord.Compute(g, ranks, positions)
	assert.Equal(t, 0, xs.Len())
}

func TestCompute_SameRankNodesAreSeparated(t *testing.T) {
	// a, b, c on one rank, no edges between them; left-to-right order
	// from positions must come out strictly increasing by at least
	// NodeWidth.
	g := graph.Empty[string]()
	a, b, c := g.AddLabeledNode("a"), g.AddLabeledNode("b"), g.AddLabeledNode("c")

	ranks := graph.NewNodeMap[int32](3)
	ranks.Set(a, 0)
	ranks.Set(b, 0)
	ranks.Set(c, 0)

	positions := graph.NewNodeMap[int](3)
	positions.Set(a, 0)
	positions.Set(b, 1)
	positions.Set(c, 2)

	xs := xcoord.Compute(g, ranks, positions)
	require.LessOrEqual(t, xs.Get(a)+int32(xcoord.NodeWidth), xs.Get(b))
	require.LessOrEqual(t, xs.Get(b)+int32(xcoord.NodeWidth), xs.Get(c))
}

func TestCompute_StraightensSimpleChain(t *testing.T) {
	// a single chain a->b->c on three distinct ranks should come out
	// perfectly vertical: all three share the same x.
	g := graph.Empty[string]()
	a, b, c := g.AddLabeledNode("a"), g.AddLabeledNode("b"), g.AddLabeledNode("c")
	g.AddEdge(graph.NewEdge(a, b))
	g.AddEdge(graph.NewEdge(b, c))

	ranks := simplex.Run(g)
	positions := order.Places(g, ranks)

	xs := xcoord.Compute(g, ranks, positions)
	assert.Equal(t, xs.Get(a), xs.Get(b))
	assert.Equal(t, xs.Get(b), xs.Get(c))
}

func TestCompute_SingleEdgeBothXCoordsAreZero(t *testing.T) {
	g := graph.Empty[string]()
	a, b := g.AddLabeledNode("a"), g.AddLabeledNode("b")
	g.AddEdge(graph.NewEdge(a, b))
	g.AddRoot(a)

	ranks := simplex.Run(g)
	positions := order.Places(g, ranks)

	xs := xcoord.Compute(g, ranks, positions)
	assert.Equal(t, int32(0), xs.Get(a))
	assert.Equal(t, int32(0), xs.Get(b))
}

func TestCompute_PullsMiddleNodeTowardWeightedNeighbor(t *testing.T) {
	// a and c sit on rank 0 and rank 2 respectively, each connected to
	// b on rank 1; the a-b edge is heavily weighted, so b should end up
	// closer to a's x-coordinate than to a neutral midpoint.
	g := graph.Empty[string]()
	a := g.AddLabeledNode("a")
	b := g.AddLabeledNode("b")
	c := g.AddLabeledNode("c")
	d := g.AddLabeledNode("d")
	eHeavy := graph.NewEdge(a, b)
	eHeavy.Weight = 100
	g.AddEdge(eHeavy)
	g.AddEdge(graph.NewEdge(b, c))
	g.AddEdge(graph.NewEdge(d, c))

	ranks := graph.NewNodeMap[int32](4)
	ranks.Set(a, 0)
	ranks.Set(d, 0)
	ranks.Set(b, 1)
	ranks.Set(c, 2)

	positions := graph.NewNodeMap[int](4)
	positions.Set(a, 0)
	positions.Set(d, 1)
	positions.Set(b, 0)
	positions.Set(c, 0)

	xs := xcoord.Compute(g, ranks, positions)
	assert.Equal(t, xs.Get(a), xs.Get(b))
}
