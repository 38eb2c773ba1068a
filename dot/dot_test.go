package dot_test

import (
	"testing"

	"github.com/nodesketch/dotlayout/dot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_SimpleGraph(t *testing.T) {
	src := `digraph test { 0->2; 1->2; 0->3; 3->4; }`
	g, err := dot.Parse(src)
	require.NoError(t, err)
	assert.Equal(t, 5, g.G.NodesCount())
	assert.Equal(t, 4, g.G.EdgesCount())
}

func TestParse_LabelAttribute(t *testing.T) {
	src := `digraph g { a [label="Hello World"]; a -> b; }`
	g, err := dot.Parse(src)
	require.NoError(t, err)

	var aID = -1
	for _, id := range g.G.IterNodes() {
		if label := g.Labels.Get(id); label == "Hello World" {
			aID = int(id)
		}
	}
	assert.NotEqual(t, -1, aID)
}

func TestParse_IgnoresUnknownAttributes(t *testing.T) {
	src := `digraph g { a [shape=box, color=red]; a -> b [style=dashed]; }`
	_, err := dot.Parse(src)
	require.NoError(t, err)
}

func TestParse_DefaultLabelIsIdentifier(t *testing.T) {
	src := `digraph g { a -> b; }`
	g, err := dot.Parse(src)
	require.NoError(t, err)
	for _, id := range g.G.IterNodes() {
		label := g.Labels.Get(id)
		assert.Contains(t, []string{"a", "b"}, label)
	}
}

func TestParse_MissingClosingBraceIsSyntaxError(t *testing.T) {
	src := `digraph g { a -> b;`
	_, err := dot.Parse(src)
	require.Error(t, err)
	var syn *dot.SyntaxError
	assert.ErrorAs(t, err, &syn)
}

func TestParse_QuotedIdentifiers(t *testing.T) {
	src := `digraph g { "node one" -> "node two"; }`
	g, err := dot.Parse(src)
	require.NoError(t, err)
	assert.Equal(t, 2, g.G.NodesCount())
}

func TestParse_IDsMapsIdentifierToNode(t *testing.T) {
	src := `digraph g { start -> end; }`
	g, err := dot.Parse(src)
	require.NoError(t, err)
	id, ok := g.IDs["start"]
	require.True(t, ok)
	assert.Equal(t, "start", g.Labels.Get(id))
}
