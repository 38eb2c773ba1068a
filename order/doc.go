// Package order chooses, for every node within its rank, a position
// that approximately minimizes the number of edge crossings between
// adjacent ranks - the classic Sugiyama "crossing minimization" step.
//
// What:
//
//   - Places returns a NodeMap giving each node's 0-based position
//     within its rank's left-to-right order. It seeds an initial order
//     from node-id insertion order, then repeats a fixed number of
//     iterations (DefaultIterations) alternating a weighted-median
//     sweep with an adjacent-swap transpose pass, and after each
//     iteration keeps the new arrangement if its total crossing count
//     is no higher than the best so far.
//   - The weighted-median sweep (wmedian) reorders one rank at a time,
//     sorting each node by the median position of its neighbors in the
//     rank just fixed by the sweep; nodes with no neighbors in that
//     rank keep their current slot rather than being sorted at all.
//   - The transpose pass repeatedly swaps adjacent nodes within a rank
//     whenever doing so strictly reduces the crossings their edges
//     contribute, until no such swap remains.
//
// Why:
//
//   - Minimizing crossings is what makes a layered drawing readable;
//     the exact minimum is NP-hard, so this package implements the
//     standard median+transpose heuristic instead (Gansner et al.;
//     Jünger & Mutzel), which in practice gets close to optimal in a
//     small, fixed number of passes.
//
// Complexity: each sweep is O(V+E); transpose is O(V+E) per pass to a
// local fixed point, repeated DefaultIterations times by Places.
package order
