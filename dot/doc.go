// Package dot implements a small hand-written scanner and
// recursive-descent parser for the subset of the Graphviz DOT language
// this project's layout pipeline needs: a single `digraph` statement
// list of node declarations, `label="..."` attributes, and `->` edges.
//
// What:
//
//   - Scanner turns DOT source text into a stream of Tokens.
//   - Parse drives a Scanner through a recursive-descent grammar and
//     builds a Graph: a graph.DirectedGraph[string] keyed by each
//     node's DOT identifier, plus a parallel NodeMap of display
//     labels (the identifier itself, unless a label attribute
//     overrides it).
//
// Why:
//
//   - A hand-rolled scanner/parser pair is the idiomatic Go way to
//     front a small fixed grammar - no parser-generator or grammar
//     file, just a Scanner type and a Parser type that calls it.
//
// Grammar (informal):
//
//	graph      = "digraph" ID "{" stmt* "}"
//	stmt       = edgeStmt | nodeStmt
//	edgeStmt   = ID "->" ID attrList? ";"?
//	nodeStmt   = ID attrList? ";"?
//	attrList   = "[" (attr ("," attr)*)? "]"
//	attr       = ID "=" (ID | STRING)
//
// Any bracketed attribute other than label is tokenized and discarded
// rather than rejected, so source files using attributes outside this
// project's scope still parse.
//
// Errors: a malformed statement returns a *SyntaxError identifying the
// offending token's position; parsing stops at the first error.
package dot
