package console

import (
	"context"

	"github.com/grindlemire/graft"
	"go.velt.ch/jplaunch/internal/adapters/logger"
	"go.velt.ch/jplaunch/internal/core/ports"
	"go.velt.ch/jplaunch/internal/engine/launcher"
)

// NodeID is the unique identifier for the console runner node.
const NodeID graft.ID = "adapter.console"

// PipeNodeID is the unique identifier for the pipe runner node.
const PipeNodeID graft.ID = "adapter.console.pipes"

func init() {
	graft.Register(graft.Node[launcher.ProcessRunner]{
		ID:        PipeNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (launcher.ProcessRunner, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewPipeRunner(log), nil
		},
	})
	graft.Register(graft.Node[*Runner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (*Runner, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewRunner(log), nil
		},
	})
}
