// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/roam/internal/adapters/config"
	_ "go.trai.ch/roam/internal/adapters/jsonstore"
	_ "go.trai.ch/roam/internal/adapters/logger"
	_ "go.trai.ch/roam/internal/adapters/metrics"
	_ "go.trai.ch/roam/internal/adapters/telemetry"
	_ "go.trai.ch/roam/internal/adapters/watcher"
	// Register app nodes.
	_ "go.trai.ch/roam/internal/app"
)
