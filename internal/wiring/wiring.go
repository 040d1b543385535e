// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/varcss/internal/adapters/config"
	_ "go.trai.ch/varcss/internal/adapters/document"
	_ "go.trai.ch/varcss/internal/adapters/logger"
	_ "go.trai.ch/varcss/internal/adapters/shell"
	_ "go.trai.ch/varcss/internal/adapters/telemetry"
	_ "go.trai.ch/varcss/internal/adapters/telemetry/progrock"
	_ "go.trai.ch/varcss/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/varcss/internal/app"
	_ "go.trai.ch/varcss/internal/engine/export"
	_ "go.trai.ch/varcss/internal/engine/materialize"
)
