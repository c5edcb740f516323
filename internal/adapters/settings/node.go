package settings

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/vtrg/internal/adapters/logger"
	"go.trai.ch/vtrg/internal/core/domain"
	"go.trai.ch/vtrg/internal/core/ports"
)

// NodeID is the unique identifier for the settings store Graft node.
const NodeID graft.ID = "adapter.settings"

func init() {
	graft.Register(graft.Node[ports.SettingsStore]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.SettingsStore, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewStore(domain.DefaultSettingsPath(), log), nil
		},
	})
}
