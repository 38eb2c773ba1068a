package component

import (
	"errors"

	"github.com/nodesketch/dotlayout/graph"
)

// ErrUnknownComponent is returned by Merge when a Placement names a
// component index outside the supplied per-component rank slice.
var ErrUnknownComponent = errors.New("component: placement names unknown component")

// Placement records, for one original node id, which component it was
// assigned to during Split and what id it was given there.
type Placement struct {
	Component int
	NewID     graph.NodeID
}
