// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/stage/internal/adapters/fs"
	_ "go.trai.ch/stage/internal/adapters/host"
	_ "go.trai.ch/stage/internal/adapters/logger"
	_ "go.trai.ch/stage/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.trai.ch/stage/internal/app"
	_ "go.trai.ch/stage/internal/engine/scene"
)
