package subgraph

import "errors"

// ErrStartNotFound indicates an explicitly requested start NodeID does
// not exist in the base graph.
var ErrStartNotFound = errors.New("subgraph: start node not found")

// Overflow counts, for one copied node, how many of its input and
// output edges in the base graph did not make it into the extracted
// subgraph.
type Overflow struct {
	In  uint32
	Out uint32
}
