package modscan

import (
	"context"

	"github.com/grindlemire/graft"
	"go.velt.ch/jplaunch/internal/adapters/logger"
	"go.velt.ch/jplaunch/internal/core/ports"
)

// NodeID is the unique identifier for the module classifier Graft node.
const NodeID graft.ID = "adapter.modscan"

func init() {
	graft.Register(graft.Node[ports.ModuleClassifier]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ModuleClassifier, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewScanner(log), nil
		},
	})
}
