package orchestrator

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/vtrg/internal/adapters/logger"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/vtrg/internal/adapters/platform" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/vtrg/internal/adapters/progress" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/vtrg/internal/adapters/shell"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/vtrg/internal/core/ports"
)

// NodeID is the unique identifier for the orchestrator Graft node.
const NodeID graft.ID = "engine.orchestrator"

func init() {
	graft.Register(graft.Node[*Orchestrator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			shell.NodeID,
			progress.NodeID,
			platform.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Orchestrator, error) {
			runner, err := graft.Dep[ports.ProcessRunner](ctx)
			if err != nil {
				return nil, err
			}

			indicator, err := graft.Dep[ports.ProgressIndicator](ctx)
			if err != nil {
				return nil, err
			}

			platforms, err := graft.Dep[ports.PlatformResolver](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(runner, indicator, platforms, log), nil
		},
	})
}
