package manifest

import (
	"context"

	"github.com/grindlemire/graft"
	"go.velt.ch/jplaunch/internal/adapters/logger"
	"go.velt.ch/jplaunch/internal/core/ports"
)

// NodeID is the unique identifier for the manifest loader Graft node.
const NodeID graft.ID = "adapter.manifest"

// ResolverNodeID is the unique identifier for the dependency resolver node.
const ResolverNodeID graft.ID = "adapter.resolver"

func init() {
	graft.Register(graft.Node[ports.DependencyResolver]{
		ID:        ResolverNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.DependencyResolver, error) {
			return NewResolver(), nil
		},
	})
	graft.Register(graft.Node[ports.ManifestLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ManifestLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(log), nil
		},
	})
}
