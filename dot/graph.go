package dot

import "github.com/nodesketch/dotlayout/graph"

// Graph is the result of parsing one DOT source document: the node
// and edge structure, keyed by each node's DOT identifier, plus the
// display label for every node (the identifier itself, unless
// overridden by a `label="..."` attribute).
type Graph struct {
	G      *graph.DirectedGraph[string]
	Labels *graph.NodeMap[string]
	// IDs maps each node's DOT identifier to its NodeID, for callers
	// that need to locate a node by the name it was declared under.
	IDs map[string]graph.NodeID
}

// Parse parses src as a `digraph` document and returns its Graph, or a
// *SyntaxError describing the first malformed token.
func Parse(src string) (*Graph, error) {
	p := &parser{sc: NewScanner(src), g: graph.Empty[string](), ids: make(map[string]graph.NodeID)}
	if err := p.advance(); err != nil {
		return nil, err
	}
	if err := p.parseGraph(); err != nil {
		return nil, err
	}
	// nodes with no in-edges become the graph's roots, as in graph.New.
	for _, id := range p.g.IterNodes() {
		if len(p.g.Node(id).Inputs) == 0 {
			p.g.AddRoot(id)
		}
	}

	return &Graph{G: p.g, Labels: p.labels, IDs: p.ids}, nil
}
