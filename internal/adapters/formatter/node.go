package formatter

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/vtrg/internal/adapters/logger"
	"go.trai.ch/vtrg/internal/adapters/shell"
	"go.trai.ch/vtrg/internal/core/ports"
)

// NodeID is the unique identifier for the formatter Graft node.
const NodeID graft.ID = "adapter.formatter"

func init() {
	graft.Register(graft.Node[ports.Formatter]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.Formatter, error) {
			runner, err := graft.Dep[ports.ProcessRunner](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewClangFormat(runner, log), nil
		},
	})
}
