// Package virtualnode splits every edge that spans more than one rank
// into a chain of rank-adjacent edges through newly inserted virtual
// nodes, so that later passes (ordering, x-coordinate assignment,
// rendering) only ever need to reason about edges one rank long.
//
// What:
//
//   - Insert walks every edge (including ones appended to the graph
//     during its own run, so a long edge's freshly created segments are
//     never missed) and, for each edge spanning more than one rank,
//     replaces it with a chain of IsVirtual nodes at every intermediate
//     rank, linked by new edges inheriting the original edge's Kind.
//   - The destination node's original input slot is preserved: the
//     final segment of the chain lands in the same position within the
//     destination's Inputs slice that the original edge occupied, so
//     passes indexing by position (crossing minimization) see a
//     seamless replacement rather than an edge appended at the end.
//
// Why:
//
//   - Crossing minimization and x-coordinate assignment both operate
//     rank by rank; an edge spanning several ranks would otherwise have
//     to be special-cased in both, whereas a chain of one-rank hops
//     lets every pass treat every edge identically.
//
// Complexity: Time O(V+E) amortized - each inserted virtual node and
// edge is visited exactly once by the same ForEachEdge pass that
// creates it.
package virtualnode
