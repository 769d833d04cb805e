// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/pack/internal/adapters/cas"
	_ "go.trai.ch/pack/internal/adapters/codegen"
	_ "go.trai.ch/pack/internal/adapters/config"
	_ "go.trai.ch/pack/internal/adapters/features"
	_ "go.trai.ch/pack/internal/adapters/fs"
	_ "go.trai.ch/pack/internal/adapters/logger"
	_ "go.trai.ch/pack/internal/adapters/styles"
	_ "go.trai.ch/pack/internal/adapters/telemetry"
	_ "go.trai.ch/pack/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/pack/internal/app"
	_ "go.trai.ch/pack/internal/engine/emitter"
)
