// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/vtrg/internal/adapters/config"
	_ "go.trai.ch/vtrg/internal/adapters/formatter"
	_ "go.trai.ch/vtrg/internal/adapters/logger"
	_ "go.trai.ch/vtrg/internal/adapters/platform"
	_ "go.trai.ch/vtrg/internal/adapters/progress"
	_ "go.trai.ch/vtrg/internal/adapters/settings"
	_ "go.trai.ch/vtrg/internal/adapters/shell"
	// Register app and engine nodes.
	_ "go.trai.ch/vtrg/internal/app"
	_ "go.trai.ch/vtrg/internal/engine/orchestrator"
)
