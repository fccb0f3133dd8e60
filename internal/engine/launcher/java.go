package launcher

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/zerr"
	"go.velt.ch/jplaunch/internal/core/domain"
	"go.velt.ch/jplaunch/internal/core/ports"
)

// Java launches a second java runtime as an external process and reads the
// launch result off its exit code. Stdout and stderr are persisted as
// per-launch console logs in the target directory.
type Java struct {
	runner     ProcessRunner
	executable string
	java       domain.JavaOptions
	modules    domain.Modules
	logger     ports.Logger
}

// NewJava creates the external-process execution strategy.
func NewJava(runner ProcessRunner, executable string, java domain.JavaOptions, modules domain.Modules, logger ports.Logger) *Java {
	return &Java{
		runner:     runner,
		executable: executable,
		java:       java,
		modules:    modules,
		logger:     logger,
	}
}

var _ ExecutionStrategy = (*Java)(nil)

// Execute runs the launch in a child runtime, killing it when the global
// timeout elapses.
func (s *Java) Execute(ctx context.Context, cfg *domain.Configuration, driver *Driver) (int, error) {
	argv := s.commandLine(cfg, driver)
	if s.logger.DebugEnabled() {
		s.logger.Debug("child command line:")
		for _, arg := range argv {
			s.logger.Debug("  " + arg)
		}
	}

	stdout, stderr, closeLogs, err := s.openLogs(cfg.TargetDirectory(), driver.Fingerprint())
	if err != nil {
		return 0, err
	}
	defer closeLogs()

	timeout := time.Duration(cfg.TimeoutSeconds()) * time.Second
	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	code, err := s.runner.Run(runCtx, argv, "", ChildEnvironment(nil), stdout, stderr)
	if errors.Is(runCtx.Err(), context.DeadlineExceeded) {
		s.logger.Warn(fmt.Sprintf("Global timeout of %d second(s) reached.", cfg.TimeoutSeconds()))
		return 0, domain.ErrGlobalTimeout
	}
	if err != nil {
		return 0, errors.Join(domain.ErrExecutionSetup, err)
	}
	if cfg.DryRun() {
		return 0, nil
	}
	return code, nil
}

// commandLine assembles the full child command line, addressing the compiled
// output directories the way the test mode demands.
func (s *Java) commandLine(cfg *domain.Configuration, driver *Driver) []string {
	argv := []string{s.executable}
	argv = append(argv, s.java.Options...)
	if s.java.EnableAssertions {
		argv = append(argv, "-ea")
	}

	argv = append(argv, RuntimeArguments(s.modules, driver.Paths())...)

	subcommand := "execute"
	if cfg.DryRun() {
		subcommand = "discover"
	}
	return append(argv, ConsoleArguments(subcommand, launchRequest(cfg, driver))...)
}

// openLogs creates the per-launch console log files in the target directory.
func (s *Java) openLogs(targetDir, runID string) (stdout, stderr *os.File, closeLogs func(), err error) {
	outPath := filepath.Join(targetDir, fmt.Sprintf("console-%s.out.log", runID))
	errPath := filepath.Join(targetDir, fmt.Sprintf("console-%s.err.log", runID))

	stdout, err = os.OpenFile(outPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, domain.FilePerm)
	if err != nil {
		return nil, nil, nil, zerr.With(zerr.Wrap(err, "failed to create console log"), "path", outPath)
	}
	stderr, err = os.OpenFile(errPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, domain.FilePerm)
	if err != nil {
		_ = stdout.Close()
		return nil, nil, nil, zerr.With(zerr.Wrap(err, "failed to create console log"), "path", errPath)
	}

	if s.logger.DebugEnabled() {
		s.logger.Debug("console output: " + outPath)
		s.logger.Debug("console errors: " + errPath)
	}
	return stdout, stderr, func() {
		_ = stdout.Close()
		_ = stderr.Close()
	}, nil
}
