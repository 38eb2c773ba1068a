package graph

import "errors"

// Sentinel errors for graph package operations.
var (
	// ErrNodeNotFound indicates an operation referenced an out-of-range NodeID.
	ErrNodeNotFound = errors.New("graph: node not found")

	// ErrEdgeNotFound indicates an operation referenced an out-of-range EdgeID.
	ErrEdgeNotFound = errors.New("graph: edge not found")

	// ErrLabelNotFound indicates the requested node has no original label
	// (it is virtual, or the graph was built without labels).
	ErrLabelNotFound = errors.New("graph: node has no original label")

	// ErrEdgeNotIncident indicates an edge id was not found among the
	// expected node's incident edge slice during a slot-preserving move.
	ErrEdgeNotIncident = errors.New("graph: edge not incident to node")
)
