package features

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pack/internal/core/ports"
)

// NodeID is the unique identifier for the feature detector Graft node.
const NodeID graft.ID = "adapter.features"

func init() {
	graft.Register(graft.Node[ports.FeatureDetector]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.FeatureDetector, error) {
			return NewDetector(), nil
		},
	})
}
