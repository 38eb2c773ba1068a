// Package xcoord assigns a horizontal coordinate to every node, given
// its rank (vertical layer) and its position within that rank, by
// building an auxiliary graph and running package simplex over it a
// second time.
//
// What:
//
//   - Compute builds one auxiliary node per original node, plus:
//     same-rank "spacing" edges between left-to-right neighbors
//     (MinLength=NodeWidth, Weight=0) that keep nodes at least one
//     node-width apart and fix their left-to-right order, and, for
//     every original edge, a helper auxiliary node with two outgoing
//     edges (MinLength=1, Weight=edge weight) to the edge's two
//     endpoints.
//   - Running network simplex (with PostprocessCenter) over this
//     auxiliary graph and minimizing its weighted length is equivalent
//     to minimizing the total horizontal deviation of every original
//     edge while respecting the spacing/ordering constraints - the
//     helper node construction is a standard trick: since both of its
//     edges point away from it, network simplex pushes the helper as
//     close to both endpoints as the spacing constraints allow, making
//     the pair's combined length track |x(to) - x(from)|.
//
// Why:
//
//   - Reusing the rank-assignment machinery for x-coordinates keeps
//     the pipeline to a single hard algorithm (package simplex)
//     applied twice, rather than a second bespoke optimizer.
//
// Complexity: the auxiliary graph has O(V+E) nodes and O(V+E) edges,
// so this pass costs one more simplex run at the same asymptotic size
// as the original graph.
package xcoord
