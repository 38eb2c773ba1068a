// Package simplex assigns an integer rank to every node of a DAG so as
// to minimize the total weighted edge length, subject to each edge's
// minimum length constraint. This is the classic network-simplex
// method for graph layout (Gansner et al.), and is reused twice in the
// pipeline: once directly for vertical ranks, and again over an
// auxiliary graph to balance horizontal x-coordinates.
//
// What:
//
//   - Run computes Rank: NodeID -> int32 minimizing
//     sum(weight(e) * (Rank[e.To] - Rank[e.From])) over all edges e,
//     subject to Rank[e.To] - Rank[e.From] >= e.MinLength.
//   - The method: build an initial feasible ranking by a topological
//     walk, grow a tight spanning tree (every tree edge has zero
//     slack), label every node with a postorder subtree range so any
//     tree edge's removal partitions the tree into two known node
//     sets, compute each tree edge's cut value (the net weight flowing
//     across that partition), and repeatedly replace a negative-cut
//     tree edge with the minimum-slack non-tree edge that re-joins the
//     two sides, shifting ranks as needed, until every cut value is
//     non-negative (a standard LP optimality certificate for this
//     transportation-like problem).
//   - PostprocessCenter additionally takes every tree edge whose cut
//     value is zero, finds the minimum-slack non-tree edge that could
//     replace it, and shifts the tree edge's child subtree by half that
//     slack, splitting the slack between the two; this is what turns a
//     merely-optimal ranking into a visually centered horizontal
//     placement when this package is reused for x-coordinates.
//
// Why:
//
//   - Minimizing total weighted length is what keeps edges short and
//     mostly straight; it is the same objective Graphviz's dot layout
//     engine and most Sugiyama-style tools optimize for rank assignment.
//
// Complexity: the pivot loop is, in the worst case, exponential in
// theory but runs in low-order-polynomial time in practice for graphs
// of the size this package is used on; each pivot here is O(V*E) since
// every tree edge's cut value is recomputed over all edges rather than
// updated incrementally.
//
// Errors: Run does not check that g is acyclic and does not panic on a
// cyclic input; the ranking it returns for one is not guaranteed to be
// feasible. Otherwise it is a pure function of its input.
package simplex
