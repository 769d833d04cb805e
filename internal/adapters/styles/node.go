package styles

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pack/internal/core/ports"
)

// NodeID is the unique identifier for the style substituter Graft node.
const NodeID graft.ID = "adapter.styles"

func init() {
	graft.Register(graft.Node[ports.StyleSubstituter]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.StyleSubstituter, error) {
			return NewSubstituter(), nil
		},
	})
}
