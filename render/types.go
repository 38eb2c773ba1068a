package render

// Layout constants controlling the geometry of the emitted SVG,
// carried over from the original renderer's hand-tuned values.
const (
	xStep = 70.0 / 50.0
	yStep = 70.0
	rx    = 20.0
	ry    = 10.0
)

// EmptyPlaceholder is returned by SVG for a graph with no nodes.
const EmptyPlaceholder = `<svg viewBox="0 0 1 1" xmlns="http://www.w3.org/2000/svg"></svg>`
