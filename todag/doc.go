// Package todag removes cycles from a directed graph by inverting
// back-edges discovered during a depth-first walk, so that downstream
// rank assignment always receives an acyclic graph.
//
// What:
//
//   - ToDag walks the graph from its registered roots using an
//     iterative, explicit-stack DFS (no native recursion, so arbitrarily
//     deep graphs do not risk a goroutine stack overflow). Any edge
//     found to point back at a node currently on the DFS path is
//     inverted in place.
//   - If nodes remain unvisited once every root's reachable set has
//     been walked (isolated cycles with no existing root, or graphs
//     built without Roots populated), the first such node has all of
//     its in-edges inverted, is registered as a new root, and DFS
//     resumes from it. This repeats until every node has been visited.
//
// Why:
//
//   - Network simplex rank assignment requires a DAG: it walks a
//     topological order to seed initial ranks and its tight-tree
//     construction assumes no cycles. Real input graphs are not
//     guaranteed acyclic, so this pass makes that guarantee explicit
//     and local to one well-tested place in the pipeline.
//
// Complexity: Time O(V+E), Memory O(V) for the visited/path bitmaps
// plus an explicit stack of O(V+E) entries (every out-edge of every
// node on the current path can be pending at once).
package todag
