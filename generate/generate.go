package generate

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// Random returns DOT source for a `digraph` with nodesCount nodes,
// named N0..N{nodesCount-1}, and edgesCount random directed edges
// between them. Edges preferentially connect nodes that have not yet
// appeared in any edge, so the result tends toward one connected
// component rather than scattered disjoint pairs.
func Random(nodesCount, edgesCount uint32) string {
	var b strings.Builder
	b.WriteString("digraph x {")
	for i := uint32(0); i < nodesCount; i++ {
		fmt.Fprintf(&b, "N%d;", i)
	}

	if nodesCount > 0 {
		unconnected := make([]bool, nodesCount)
		for i := range unconnected {
			unconnected[i] = true
		}
		unconnectedCount := nodesCount

		for e := uint32(0); e < edgesCount; e++ {
			from, to := pickEdge(nodesCount, unconnected, &unconnectedCount)
			fmt.Fprintf(&b, "N%d -> N%d;", from, to)
		}
	}

	b.WriteString("}")

	return b.String()
}

func pickEdge(nodesCount uint32, unconnected []bool, unconnectedCount *uint32) (from, to uint32) {
	if *unconnectedCount == 0 {
		return uint32(rand.IntN(int(nodesCount))), uint32(rand.IntN(int(nodesCount)))
	}

	start := rand.IntN(int(nodesCount))
	fromIdx := -1
	for i := 0; i < int(nodesCount); i++ {
		v := (start + i) % int(nodesCount)
		if unconnected[v] {
			fromIdx = v
			break
		}
	}
	unconnected[fromIdx] = false
	*unconnectedCount--

	toIdx := rand.IntN(int(nodesCount))
	for toIdx == fromIdx && nodesCount > 1 {
		toIdx = rand.IntN(int(nodesCount))
	}
	if unconnected[toIdx] {
		unconnected[toIdx] = false
		*unconnectedCount--
	}

	from, to = uint32(fromIdx), uint32(toIdx)
	if rand.Float64() < 0.5 {
		from, to = to, from
	}

	return from, to
}
