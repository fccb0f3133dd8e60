package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.velt.ch/jplaunch/internal/adapters/console"
	"go.velt.ch/jplaunch/internal/adapters/logger"
	"go.velt.ch/jplaunch/internal/adapters/manifest"
	"go.velt.ch/jplaunch/internal/adapters/modscan"
	"go.velt.ch/jplaunch/internal/adapters/telemetry"
	"go.velt.ch/jplaunch/internal/core/ports"
	"go.velt.ch/jplaunch/internal/engine/launcher"
)

// Components contains all the initialized application components. It provides
// controlled access to the components needed by the CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
}

// NodeID is the unique identifier for the application components node.
const NodeID graft.ID = "app.components"

func init() {
	graft.Register(graft.Node[*Components]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			logger.NodeID,
			manifest.NodeID,
			manifest.ResolverNodeID,
			modscan.NodeID,
			console.NodeID,
			console.PipeNodeID,
			telemetry.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			manifests, err := graft.Dep[ports.ManifestLoader](ctx)
			if err != nil {
				return nil, err
			}
			resolver, err := graft.Dep[ports.DependencyResolver](ctx)
			if err != nil {
				return nil, err
			}
			classifier, err := graft.Dep[ports.ModuleClassifier](ctx)
			if err != nil {
				return nil, err
			}
			runner, err := graft.Dep[*console.Runner](ctx)
			if err != nil {
				return nil, err
			}
			pipes, err := graft.Dep[launcher.ProcessRunner](ctx)
			if err != nil {
				return nil, err
			}
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{
				App:    New(manifests, classifier, resolver, runner, pipes, log, tracer),
				Logger: log,
			}, nil
		},
	})
}
