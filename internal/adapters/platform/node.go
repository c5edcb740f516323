package platform

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/vtrg/internal/core/ports"
)

// NodeID is the unique identifier for the platform resolver Graft node.
const NodeID graft.ID = "adapter.platform"

func init() {
	graft.Register(graft.Node[ports.PlatformResolver]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.PlatformResolver, error) {
			return NewResolver(), nil
		},
	})
}
