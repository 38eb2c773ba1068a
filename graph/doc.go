// Package graph defines the dense, append-only directed graph used
// throughout the layout pipeline: nodes and edges are addressed by
// small integer IDs rather than by string key, and each node keeps an
// explicitly ordered list of its incoming and outgoing edges.
//
// What:
//
//   - DirectedGraph[L]: nodes indexed 0..N-1, edges indexed 0..M-1.
//     Every node carries ordered Inputs/Outputs edge-id slices; the
//     order within those slices is meaningful to later passes (it is
//     the crossing-minimization and x-coordinate machinery's notion of
//     "position"), so algorithms that touch them must preserve or
//     deliberately permute that order rather than resorting it.
//   - NodeMap[V]/EdgeMap[V]: dense slices addressed by NodeID/EdgeID,
//     growing and zero-filling on an out-of-range Set.
//   - Edge inversion (swapping From/To and flipping Kind) is the
//     primitive cycle removal builds on; it keeps
//     the Inputs/Outputs slices of both endpoints consistent.
//
// Why:
//
//   - Hierarchical layout algorithms (rank assignment, ordering,
//     x-coordinate placement) all run many tight passes over every
//     node and edge; integer-indexed dense storage keeps those passes
//     allocation-free and cache-friendly, at the cost of giving up the
//     ability to remove a node or edge once added.
//
// Complexity:
//
//   - AddNode, AddEdge: O(1) amortized.
//   - InvertEdge: O(deg) to relocate the edge id within the two
//     adjacency slices it touches.
//   - NodeMap.Set/EdgeMap.Set: O(1) when id is in range, O(n) when the
//     map has to grow (it grows to exactly id+1 entries).
//
// Errors:
//
//   - Lookups do not return errors: Node and Edge return nil for an
//     out-of-range id, and OriginalLabel reports false for a virtual or
//     otherwise unlabeled node. The sentinel errors in errors.go are
//     not returned by any function of this package.
package graph
