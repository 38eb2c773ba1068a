package layout

import (
	"fmt"
	"strings"

	"github.com/nodesketch/dotlayout/component"
	"github.com/nodesketch/dotlayout/dot"
	"github.com/nodesketch/dotlayout/graph"
	"github.com/nodesketch/dotlayout/order"
	"github.com/nodesketch/dotlayout/render"
	"github.com/nodesketch/dotlayout/simplex"
	"github.com/nodesketch/dotlayout/subgraph"
	"github.com/nodesketch/dotlayout/todag"
	"github.com/nodesketch/dotlayout/virtualnode"
	"github.com/nodesketch/dotlayout/xcoord"
)

// Match is one search hit from Document.FindNodes.
type Match struct {
	ID    string
	Label string
}

// Document holds one parsed DOT source, or the parse error in its
// place, and drives the layout pipeline on demand.
type Document struct {
	parsed *dot.Graph
	err    error
	done   bool
}

// Parse parses src and returns a Document. A parse error does not
// panic; it is kept on the Document and reported by IsError/Render.
func Parse(src string) *Document {
	g, err := dot.Parse(src)

	return &Document{parsed: g, err: err}
}

// NodeCount returns the number of nodes in the parsed graph, or 0 if
// parsing failed.
func (d *Document) NodeCount() int {
	if d.err != nil {
		return 0
	}

	return d.parsed.G.NodesCount()
}

// IsError reports whether parsing src failed.
func (d *Document) IsError() bool { return d.err != nil }

// FindNodes returns every node whose identifier or display label
// contains query, case-insensitively.
func (d *Document) FindNodes(query string) []Match {
	if d.err != nil {
		return nil
	}

	q := strings.ToLower(query)
	var out []Match
	for _, id := range d.parsed.G.IterNodes() {
		ident, _ := d.parsed.G.OriginalLabel(id)
		label := d.parsed.Labels.Get(id)
		if strings.Contains(strings.ToLower(ident), q) || strings.Contains(strings.ToLower(label), q) {
			out = append(out, Match{ID: ident, Label: label})
		}
	}

	return out
}

// Render lays out the graph and returns it as an SVG document. When
// aroundID is non-empty, the drawing is bounded to the neighborhood of
// that node within maxNodes/maxEdges (see package subgraph); an empty
// aroundID still applies the same budget starting from the graph's
// first root.
//
// Render is one-shot per Document, mirroring the original
// ownership-transferring host binding this surface replaces: a second
// call returns a fixed "Done" placeholder rather than re-running the
// pipeline.
func (d *Document) Render(aroundID string, maxNodes, maxEdges int) string {
	if d.err != nil {
		return errorSVG(d.err.Error())
	}
	if d.done {
		return errorSVG("Done")
	}
	d.done = true

	if d.parsed.G.NodesCount() == 0 {
		return render.EmptyPlaceholder
	}

	var start *graph.NodeID
	if aroundID != "" {
		id, ok := d.parsed.IDs[aroundID]
		if !ok {
			return errorSVG(fmt.Sprintf("unknown node %q", aroundID))
		}
		start = &id
	}

	sub, overflow, err := subgraph.Extract(d.parsed.G, start, uint32(maxNodes), uint32(maxEdges))
	if err != nil {
		return errorSVG(err.Error())
	}
	subDoc := &dot.Graph{G: sub, Labels: labelsFor(d.parsed, sub)}

	ranks := rankGraph(sub)
	virtualnode.Insert(sub, ranks)
	positions := order.Places(sub, ranks)
	xs := xcoord.Compute(sub, ranks, positions)

	return render.SVG(subDoc, ranks, xs, overflow)
}

// rankGraph orients sub as a DAG, splits it into weakly-connected
// components, ranks each independently, and merges the results back
// into one NodeMap over sub's node ids.
func rankGraph(sub *graph.DirectedGraph[string]) *graph.NodeMap[int32] {
	todag.ToDag(sub)

	parts, placement := component.Split(sub)
	partRanks := make([]*graph.NodeMap[int32], len(parts))
	for i, part := range parts {
		partRanks[i] = simplex.Run(part)
	}

	ranks, err := component.Merge(placement, partRanks)
	if err != nil {
		// Merge only fails if placement names a component index Split
		// didn't produce, which cannot happen since placement is
		// Split's own output.
		panic(err)
	}

	return ranks
}

// labelsFor rebuilds a display-label NodeMap for sub's node ids by
// looking each one's DOT identifier back up in the full document, so
// a bounded render still shows label="..." overrides rather than
// falling back to the identifier.
func labelsFor(full *dot.Graph, sub *graph.DirectedGraph[string]) *graph.NodeMap[string] {
	labels := graph.NewNodeMap[string](sub.NodesCount())
	for _, id := range sub.IterNodes() {
		ident, _ := sub.OriginalLabel(id)
		if origID, ok := full.IDs[ident]; ok {
			labels.Set(id, full.Labels.Get(origID))
		} else {
			labels.Set(id, ident)
		}
	}

	return labels
}

func errorSVG(message string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

	return "<pre>" + r.Replace(message) + "</pre>"
}
