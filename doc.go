// Package layout is the host-embedding surface for this project's
// hierarchical graph-layout pipeline: parse DOT source into a
// Document, then render it (in full or as a bounded neighborhood
// around one node) to SVG, or search its nodes by name.
//
// Under the hood, the pipeline runs through:
//
//	dot/         — DOT scanner and recursive-descent parser
//	todag/       — cycle removal (orient the graph as a DAG)
//	component/   — weakly-connected component splitting
//	simplex/     — network-simplex rank assignment
//	virtualnode/ — long-edge splitting via virtual nodes
//	order/       — within-layer crossing minimization
//	xcoord/      — x-coordinate assignment (network simplex again)
//	subgraph/    — bounded-neighborhood extraction
//	render/      — SVG emission
//	generate/    — random DOT source for exercising the above
//
// A Document never panics on malformed input: a parse error is kept on
// the Document and reported through IsError/Render instead, mirroring
// the original browser-hosted binding's "graph: Result<...>" handling.
package layout
