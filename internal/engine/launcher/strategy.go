package launcher

import (
	"context"
	"io"

	"go.trai.ch/zerr"
	"go.velt.ch/jplaunch/internal/core/domain"
	"go.velt.ch/jplaunch/internal/core/ports"
)

// ExecutionStrategy runs one prepared launch under the configured global
// timeout and returns the launch result.
type ExecutionStrategy interface {
	Execute(ctx context.Context, cfg *domain.Configuration, driver *Driver) (int, error)
}

// ProcessRunner runs an external command with separated output streams and
// reports its exit code.
type ProcessRunner interface {
	Run(ctx context.Context, argv []string, dir string, env []string, stdout, stderr io.Writer) (int, error)
}

// Dependencies bundles the collaborators a strategy may need.
type Dependencies struct {
	Engine         ports.TestEngine
	Runner         ProcessRunner
	JavaExecutable string
	Java           domain.JavaOptions
	Modules        domain.Modules
	Logger         ports.Logger
}

// NewStrategy selects the execution strategy for the given executor kind.
func NewStrategy(kind domain.ExecutorKind, deps Dependencies) (ExecutionStrategy, error) {
	switch kind {
	case domain.ExecutorDirect:
		return NewDirect(NewIsolator(deps.Engine, deps.Logger), deps.Logger), nil
	case domain.ExecutorJava:
		return NewJava(deps.Runner, deps.JavaExecutable, deps.Java, deps.Modules, deps.Logger), nil
	default:
		return nil, zerr.With(domain.ErrUnsupportedExecutor, "executor", string(kind))
	}
}
