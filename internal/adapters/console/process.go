// Package console drives the test platform's console front end as a child
// process.
package console

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/creack/pty"
	"go.trai.ch/zerr"
	"go.velt.ch/jplaunch/internal/core/domain"
	"go.velt.ch/jplaunch/internal/core/ports"
)

// Runner launches a command under a pty and tees its output line-by-line into
// the logger and an optional extra writer.
type Runner struct {
	logger ports.Logger
}

// NewRunner creates a new Runner.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{logger: logger}
}

// Run starts argv in dir with the given environment and waits for it to
// complete. The exit code of the child is returned; err is non-nil only when
// the child could not be run at all.
func (r *Runner) Run(ctx context.Context, argv []string, dir string, env []string, out io.Writer) (int, error) {
	if len(argv) == 0 {
		return 0, zerr.New("empty command")
	}

	log := &logWriter{logger: r.logger}
	sink := io.Writer(log)
	if out != nil {
		sink = io.MultiWriter(log, out)
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...) //nolint:gosec // argv assembled from the launch configuration
	cmd.Dir = dir
	cmd.Env = env

	ptmx, err := pty.Start(cmd)
	if err != nil {
		return 0, zerr.Wrap(err, "failed to start pty")
	}

	ioDone := make(chan struct{})
	go func() {
		defer close(ioDone)
		defer func() { _ = ptmx.Close() }()
		defer func() { _ = log.Close() }()

		// The pty merges stdout and stderr into a single stream.
		_, _ = io.Copy(sink, ptmx)
	}()

	err = cmd.Wait()
	<-ioDone

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return 0, zerr.Wrap(err, "command failed")
	}
	return 0, nil
}

// logWriter buffers child output and forwards complete lines to the logger.
type logWriter struct {
	logger ports.Logger
	buf    []byte
}

func (w *logWriter) Write(p []byte) (n int, err error) {
	w.buf = append(w.buf, p...)

	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}
		w.logLine(w.buf[:i])
		w.buf = w.buf[i+1:]
	}

	return len(p), nil
}

func (w *logWriter) Close() error {
	if len(w.buf) > 0 {
		w.logLine(w.buf)
		w.buf = nil
	}
	return nil
}

func (w *logWriter) logLine(line []byte) {
	// PTYs may introduce \r. Remove it.
	w.logger.Info(strings.TrimSuffix(string(line), "\r"))
}

// JavaExecutable locates the java binary: an explicit override wins, then
// JAVA_HOME, then the PATH.
func JavaExecutable(override string) (string, error) {
	if override != "" {
		return override, nil
	}

	name := "java"
	if runtime.GOOS == "windows" {
		name += ".exe"
	}

	if home := os.Getenv("JAVA_HOME"); home != "" {
		candidate := filepath.Join(home, "bin", name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}

	if path, err := exec.LookPath(name); err == nil {
		return path, nil
	}
	return "", domain.ErrJavaExecutableNotFound
}
