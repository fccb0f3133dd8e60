package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"

	"go.trai.ch/zerr"
	"go.velt.ch/jplaunch/internal/core/ports"
	"go.velt.ch/jplaunch/internal/engine/launcher"
	"golang.org/x/sync/errgroup"
)

// PipeRunner runs a command with stdout and stderr kept apart, for callers
// that persist the two streams separately.
type PipeRunner struct {
	logger ports.Logger
}

// NewPipeRunner creates a new PipeRunner.
func NewPipeRunner(logger ports.Logger) *PipeRunner {
	return &PipeRunner{logger: logger}
}

var _ launcher.ProcessRunner = (*PipeRunner)(nil)

// Run starts argv and pumps both output streams until the child exits. The
// exit code is returned; err is non-nil only when the child could not be run.
func (r *PipeRunner) Run(ctx context.Context, argv []string, dir string, env []string, stdout, stderr io.Writer) (int, error) {
	if len(argv) == 0 {
		return 0, zerr.New("empty command")
	}
	if stdout == nil {
		stdout = io.Discard
	}
	if stderr == nil {
		stderr = io.Discard
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...) //nolint:gosec // argv assembled from the launch configuration
	cmd.Dir = dir
	cmd.Env = env

	outPipe, err := cmd.StdoutPipe()
	if err != nil {
		return 0, zerr.Wrap(err, "failed to open stdout pipe")
	}
	errPipe, err := cmd.StderrPipe()
	if err != nil {
		return 0, zerr.Wrap(err, "failed to open stderr pipe")
	}

	if err := cmd.Start(); err != nil {
		return 0, zerr.Wrap(err, "failed to start command")
	}

	var group errgroup.Group
	group.Go(func() error {
		_, err := io.Copy(stdout, outPipe)
		return err
	})
	group.Go(func() error {
		_, err := io.Copy(stderr, errPipe)
		return err
	})

	pumpErr := group.Wait()
	waitErr := cmd.Wait()

	if waitErr != nil {
		var exitErr *exec.ExitError
		if errors.As(waitErr, &exitErr) {
			if r.logger.DebugEnabled() {
				r.logger.Debug(fmt.Sprintf("child exited with code %d", exitErr.ExitCode()))
			}
			return exitErr.ExitCode(), nil
		}
		return 0, zerr.Wrap(waitErr, "command failed")
	}
	if pumpErr != nil {
		return 0, zerr.Wrap(pumpErr, "failed to drain command output")
	}
	return 0, nil
}
