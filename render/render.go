package render

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/nodesketch/dotlayout/dot"
	"github.com/nodesketch/dotlayout/graph"
	"github.com/nodesketch/dotlayout/subgraph"
	"github.com/nodesketch/dotlayout/xcoord"
)

var markerDefs = `<marker id="arrow" viewBox="0,0,7,4" refX="5" refY="2" markerUnits="strokeWidth" markerWidth="7" markerHeight="4" orient="auto"><path d="M 0 0 L 7 2 L 0 4 z"/></marker>` +
	`<marker id="arrow-inverted" viewBox="0,0,7,4" refX="2" refY="2" markerUnits="strokeWidth" markerWidth="7" markerHeight="4" orient="auto"><path d="M 7 0 L 0 2 L 7 4 z"/></marker>`

var documentTmpl = template.Must(template.New("svg").Parse(
	`<svg viewBox="0 0 {{.MaxX}} {{.MaxY}}" xmlns="http://www.w3.org/2000/svg"><defs>` + markerDefs + `</defs>{{.Body}}</svg>`,
))

type documentData struct {
	MaxX, MaxY float64
	Body       string
}

// SVG renders g, positioned by ranks and xs (as produced by package
// xcoord), into a standalone SVG document. overflow may be nil; when
// non-nil, nodes with truncated edges get a small "+N" badge.
func SVG(g *dot.Graph, ranks *graph.NodeMap[int32], xs *graph.NodeMap[int32], overflow *graph.NodeMap[subgraph.Overflow]) string {
	if g.G.NodesCount() == 0 {
		return EmptyPlaceholder
	}

	var body strings.Builder
	maxX, maxY := 0.0, 0.0

	xPos := func(id graph.NodeID) float64 {
		return float64(xs.Get(id)) / float64(xcoord.NodeWidth) * xStep
	}
	yPos := func(id graph.NodeID) float64 {
		return float64(ranks.Get(id)) * yStep
	}

	for _, id := range g.G.IterNodes() {
		node := g.G.Node(id)
		for _, eid := range node.Outputs {
			writeEdge(&body, g.G, eid, xPos, yPos)
		}

		x, y := xPos(id), yPos(id)
		if x > maxX {
			maxX = x
		}
		if y > maxY {
			maxY = y
		}

		if !node.IsVirtual {
			writeNode(&body, g, id, x, y, overflow)
		}
	}

	data := documentData{MaxX: maxX + rx*2, MaxY: maxY + rx, Body: body.String()}
	var out strings.Builder
	_ = documentTmpl.Execute(&out, data)

	return out.String()
}

func writeEdge(b *strings.Builder, g *graph.DirectedGraph[string], eid graph.EdgeID, xPos, yPos func(graph.NodeID) float64) {
	e := g.Edge(eid)
	u, v := e.From, e.To
	uVirtual, vVirtual := g.Node(u).IsVirtual, g.Node(v).IsVirtual

	markerStart, markerEnd := "", ""
	if e.IsInverted() {
		if !uVirtual {
			markerStart = "url(#arrow-inverted)"
		}
	} else if !vVirtual {
		markerEnd = "url(#arrow)"
	}

	yStart := yPos(u)
	if !uVirtual {
		offset := -0.2
		if markerStart != "" {
			offset = 1
		}
		yStart += ry + offset
	}

	yEnd := yPos(v)
	if !vVirtual {
		offset := -0.2
		if markerEnd != "" {
			offset = 1
		}
		yEnd -= ry + offset
	}

	x1, x2 := rx+xPos(u), rx+xPos(v)
	d := fmt.Sprintf("M%g,%g C%g,%g,%g,%g %g,%g", x1, ry+yStart, x1, ry+yStart+ry+ry, x2, yEnd-ry, x2, ry+yEnd)

	fmt.Fprintf(b, `<path stroke="black" fill="none" marker-start="%s" marker-end="%s" d="%s"/>`,
		markerStart, markerEnd, d)
}

func writeNode(b *strings.Builder, g *dot.Graph, id graph.NodeID, x, y float64, overflow *graph.NodeMap[subgraph.Overflow]) {
	svgID := fmt.Sprintf("svg_%d", id)
	label := escapeXML(g.Labels.Get(id))

	fmt.Fprintf(b, `<svg id="%s" x="%g" y="%g" width="%g" height="%g" overflow="visible">`,
		svgID, x, y, rx*2, ry*2)
	b.WriteString(`<ellipse cx="50%" cy="50%" rx="48%" ry="47%" fill="silver" stroke="black" stroke-width="1"/>`)
	fmt.Fprintf(b,
		`<text x="50%%" y="50%%" dominant-baseline="middle" text-anchor="middle" font-size="4">%s</text>`,
		label)

	if overflow != nil {
		of := overflow.Get(id)
		if n := of.In + of.Out; n > 0 {
			fmt.Fprintf(b, `<circle cx="%g" cy="0" r="4" fill="orange" stroke="black" stroke-width="0.5"/>`, rx*2)
			fmt.Fprintf(b, `<text x="%g" y="0" dominant-baseline="middle" text-anchor="middle" font-size="4">+%d</text>`, rx*2, n)
		}
	}

	b.WriteString(`</svg>`)
}

func escapeXML(s string) string {
	r := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
	)

	return r.Replace(s)
}
