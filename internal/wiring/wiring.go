// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.velt.ch/jplaunch/internal/adapters/console"
	_ "go.velt.ch/jplaunch/internal/adapters/logger"
	_ "go.velt.ch/jplaunch/internal/adapters/manifest"
	_ "go.velt.ch/jplaunch/internal/adapters/modscan"
	_ "go.velt.ch/jplaunch/internal/adapters/telemetry"
	// Register app nodes.
	_ "go.velt.ch/jplaunch/internal/app"
)
