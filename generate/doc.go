// Package generate synthesizes random DOT source text for exercising
// the rest of the pipeline without a hand-written input file.
//
// What:
//
//   - Random builds a `digraph` with the requested node count, then
//     adds the requested edge count, preferring to first connect
//     every as-yet-unconnected node before wiring arbitrary pairs, so
//     a generated graph of any size tends to come out as one
//     connected component rather than a pile of disjoint edges.
//
// Why:
//
//   - Generated input gives the CLI's `generate` subcommand and this
//     package's own tests a cheap source of graphs at any requested
//     scale.
package generate
