// Package subgraph extracts a bounded neighborhood of a graph by
// breadth-first search from a start node, stopping once either a node
// budget or an edge budget would be exceeded.
//
// What:
//
//   - Extract walks outward from a start node in BFS layers, copying
//     each visited node into a fresh graph and, once both of an
//     edge's endpoints are copied, copying the edge too (so every
//     copied edge runs between two already-present nodes -
//     "backward-linking").
//   - Edges that never make it into the result - because one endpoint
//     fell outside the node budget, or because the edge budget ran
//     out before this particular edge's turn - are tallied per node
//     as an Overflow{In, Out}, so a renderer can show "+N more" badges
//     instead of silently dropping data.
//
// Why:
//
//   - Large graphs need a way to show a readable slice of themselves;
//     bounding by both node and edge count (rather than node count
//     alone) keeps dense hubs from producing an unreadably tangled
//     partial drawing.
//
// Errors: ErrStartNotFound if an explicitly requested start node is
// out of range.
package subgraph
