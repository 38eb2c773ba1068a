// Package render draws a laid-out graph as SVG.
//
// What:
//
//   - SVG consumes a parsed dot.Graph together with the rank and
//     x-coordinate NodeMaps package simplex/xcoord produced for it
//     (plus an optional subgraph.Overflow map, when the graph being
//     drawn is a bounded extraction), and emits a self-contained SVG
//     document: one labelled ellipse per non-virtual node, one cubic
//     Bezier curve per edge with an arrowhead on its non-virtual
//     endpoint (an inverted arrowhead for edges package todag flipped
//     to break a cycle), and, when overflow counts are supplied, a
//     small numeric badge near any node whose edges were truncated.
//   - An empty input graph renders as a fixed 1x1 placeholder rather
//     than an empty-but-valid document, matching the original
//     browser-hosted renderer's behavior for an empty graph.
//
// Why:
//
//   - text/template plus strings.Builder keeps the emitted markup
//     exactly as intended (including the marker/path definitions SVG
//     arrowheads require) without depending on a general-purpose
//     canvas-drawing library whose API does not expose raw marker
//     definitions - see DESIGN.md for the full justification.
package render
