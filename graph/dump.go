package graph

import (
	"fmt"
	"os"
	"strings"
)

// dumpSuffixEnv is the environment variable that turns on intermediate
// graph dumping. When set, Dump writes "<pass>_<value>.dot" files so a
// pipeline run can be replayed step by step with an external DOT viewer.
const dumpSuffixEnv = "GS_DUMP_STEPS"

// Dump writes the graph as a DOT file named "<pass>_<suffix>.dot" in
// the current directory, where suffix is GS_DUMP_STEPS's value. It is
// a no-op if that variable is unset. nodeLabel/edgeLabel may be nil,
// in which case nodes are labelled by their numeric id and edges carry
// no label.
func (g *DirectedGraph[L]) Dump(pass string, nodeLabel func(NodeID) string, edgeLabel func(EdgeID) string) error {
	suffix, ok := os.LookupEnv(dumpSuffixEnv)
	if !ok {
		return nil
	}

	var b strings.Builder
	b.WriteString("digraph {\n")
	for i := range g.nodes {
		id := NodeID(i)
		label := fmt.Sprintf("%d", id)
		if nodeLabel != nil {
			label = nodeLabel(id)
		}
		shape := "ellipse"
		if g.nodes[i].IsVirtual {
			shape = "point"
		}
		fmt.Fprintf(&b, "  n%d [label=%q shape=%s];\n", id, label, shape)
	}
	for i := range g.edges {
		id := EdgeID(i)
		e := g.edges[i]
		label := ""
		if edgeLabel != nil {
			label = edgeLabel(id)
		}
		style := "solid"
		if e.Kind == Inverted {
			style = "dashed"
		}
		fmt.Fprintf(&b, "  n%d -> n%d [label=%q style=%s];\n", e.From, e.To, label, style)
	}
	b.WriteString("}\n")

	name := fmt.Sprintf("%s_%s.dot", pass, suffix)

	return os.WriteFile(name, []byte(b.String()), 0o644)
}
