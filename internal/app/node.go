package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/vtrg/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/vtrg/internal/adapters/formatter" //nolint:depguard // Wired in app layer
	"go.trai.ch/vtrg/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/vtrg/internal/adapters/platform"  //nolint:depguard // Wired in app layer
	"go.trai.ch/vtrg/internal/adapters/settings"  //nolint:depguard // Wired in app layer
	"go.trai.ch/vtrg/internal/core/ports"
	"go.trai.ch/vtrg/internal/engine/orchestrator"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components holds the objects main needs to run the CLI.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			settings.NodeID,
			platform.NodeID,
			orchestrator.NodeID,
			formatter.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	projects, err := graft.Dep[ports.ProjectLoader](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.SettingsStore](ctx)
	if err != nil {
		return nil, err
	}

	platforms, err := graft.Dep[ports.PlatformResolver](ctx)
	if err != nil {
		return nil, err
	}

	engine, err := graft.Dep[*orchestrator.Orchestrator](ctx)
	if err != nil {
		return nil, err
	}

	format, err := graft.Dep[ports.Formatter](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(projects, store, platforms, engine, format, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    app,
		Logger: log,
	}, nil
}
