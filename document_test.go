package layout_test

import (
	"strings"
	"testing"

	layout "github.com/nodesketch/dotlayout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocument_ParseError(t *testing.T) {
	d := layout.Parse(`digraph { a -> b`)
	assert.True(t, d.IsError())
	assert.Equal(t, 0, d.NodeCount())
	out := d.Render("", 200, 200)
	assert.True(t, strings.HasPrefix(out, "<pre>"))
}

func TestDocument_NodeCountAndRender(t *testing.T) {
	d := layout.Parse(`digraph g { a -> b; b -> c; a -> c; }`)
	require.False(t, d.IsError())
	assert.Equal(t, 3, d.NodeCount())

	out := d.Render("", 200, 200)
	assert.True(t, strings.HasPrefix(out, "<svg"))
	assert.Contains(t, out, "<ellipse")
}

func TestDocument_RenderIsOneShot(t *testing.T) {
	d := layout.Parse(`digraph g { a -> b; }`)
	first := d.Render("", 200, 200)
	second := d.Render("", 200, 200)
	assert.True(t, strings.HasPrefix(first, "<svg"))
	assert.Equal(t, "<pre>Done</pre>", second)
}

func TestDocument_RenderUnknownAroundID(t *testing.T) {
	d := layout.Parse(`digraph g { a -> b; }`)
	out := d.Render("nope", 200, 200)
	assert.Contains(t, out, "unknown node")
}

func TestDocument_FindNodesMatchesLabelOrIdentifier(t *testing.T) {
	d := layout.Parse(`digraph g { a [label="Hello"]; a -> b; }`)
	matches := d.FindNodes("hello")
	require.Len(t, matches, 1)
	assert.Equal(t, "a", matches[0].ID)

	matches = d.FindNodes("b")
	require.Len(t, matches, 1)
	assert.Equal(t, "b", matches[0].ID)
}

func TestDocument_EmptyGraphRendersPlaceholder(t *testing.T) {
	d := layout.Parse(`digraph g {}`)
	assert.Equal(t, 0, d.NodeCount())
	out := d.Render("", 200, 200)
	assert.Equal(t, `<svg viewBox="0 0 1 1" xmlns="http://www.w3.org/2000/svg"></svg>`, out)
}
