// Package component splits a directed graph into its weakly-connected
// components, so that rank assignment can run network simplex once
// per component instead of once over the whole disconnected graph
// (network simplex assumes a connected feasible tree spans every
// node it's given).
//
// What:
//
//   - Split partitions a DirectedGraph into one DirectedGraph per
//     weakly-connected component (ignoring edge direction for
//     connectivity purposes, since "weakly connected" is what matters
//     for a layout - two nodes joined only by a reversed edge still
//     belong on the same drawing), returning a Placement for every
//     original node id recording which component it landed in and its
//     new id there.
//   - Self-loops are not copied into any component subgraph: they
//     contribute nothing to vertical rank separation, so carrying them
//     through a second time would only complicate bookkeeping for no
//     layout benefit. See the package-level invariant test for the
//     resulting node/edge count bookkeeping this implies.
//   - Merge takes per-component rank results (NodeMap[int32] each) and
//     a Placement and produces a single NodeMap[int32] over the
//     original node ids.
//
// Why:
//
//   - Most real input graphs are not weakly connected (multiple
//     disjoint subsystems in one DOT file); running one simplex
//     instance per component is both correct (each component gets its
//     own independent vertical ranking, which is all a disconnected
//     component can sensibly have) and faster (network simplex's
//     spanning-tree step is otherwise undefined across disconnected
//     nodes).
//
// Complexity: Time O(V+E) for the BFS partition, O(V+E) to rebuild the
// component subgraphs.
package component
