package console

import (
	"bytes"
	"context"
	"regexp"
	"strconv"
	"strings"

	"go.trai.ch/zerr"
	"go.velt.ch/jplaunch/internal/core/domain"
	"go.velt.ch/jplaunch/internal/core/ports"
	"go.velt.ch/jplaunch/internal/engine/launcher"
)

// Engine implements the test engine port on top of the platform's console
// front end, launched as a child runtime.
type Engine struct {
	runner  *Runner
	java    domain.JavaOptions
	modules domain.Modules
	logger  ports.Logger
}

// NewEngine creates a new console-backed Engine.
func NewEngine(runner *Runner, java domain.JavaOptions, modules domain.Modules, logger ports.Logger) *Engine {
	return &Engine{runner: runner, java: java, modules: modules, logger: logger}
}

var _ ports.TestEngine = (*Engine)(nil)

// Discover runs test discovery without executing anything.
func (e *Engine) Discover(ctx context.Context, req ports.LaunchRequest) (ports.Summary, error) {
	return e.run(ctx, "discover", req)
}

// Execute discovers and executes the selected tests.
func (e *Engine) Execute(ctx context.Context, req ports.LaunchRequest) (ports.Summary, error) {
	return e.run(ctx, "execute", req)
}

func (e *Engine) run(ctx context.Context, subcommand string, req ports.LaunchRequest) (ports.Summary, error) {
	executable, err := JavaExecutable(e.java.Executable)
	if err != nil {
		return ports.Summary{}, err
	}

	argv := commandLine(executable, subcommand, e.java, e.modules, req)
	if e.logger.DebugEnabled() {
		e.logger.Debug("console command line:")
		for _, arg := range argv {
			e.logger.Debug("  " + arg)
		}
	}

	scanner := &summaryScanner{}
	code, err := e.runner.Run(ctx, argv, "", launcher.ChildEnvironment(nil), scanner)
	if err != nil {
		return ports.Summary{}, zerr.Wrap(err, "console launch failed")
	}

	return applyExitCode(scanner.Summary(), code), nil
}

// applyExitCode folds a nonzero child exit code into a summary that carries
// no parsed failure counts. The exit code only signals that something
// failed, not how often, so the resulting count is a floor rather than an
// exact tally. Parsed counts always win.
func applyExitCode(summary ports.Summary, code int) ports.Summary {
	if code != 0 && summary.FailureCount() == 0 {
		summary.TestsFailed = code
	}
	return summary
}

// commandLine assembles the full child command line for a launch request,
// addressing the runtime path the way the test mode demands.
func commandLine(executable, subcommand string, java domain.JavaOptions, modules domain.Modules, req ports.LaunchRequest) []string {
	argv := []string{executable}
	argv = append(argv, java.Options...)
	if java.EnableAssertions {
		argv = append(argv, "-ea")
	}

	argv = append(argv, launcher.RuntimeArguments(modules, req.Paths)...)
	return append(argv, launcher.ConsoleArguments(subcommand, req)...)
}

// summaryScanner extracts run counts from the console front end's closing
// summary block, e.g. "[         3 tests found          ]".
type summaryScanner struct {
	buf     []byte
	summary ports.Summary
}

var summaryLine = regexp.MustCompile(`^\[\s*(\d+) (tests found|tests failed|containers failed)\s*\]`)

func (s *summaryScanner) Write(p []byte) (int, error) {
	s.buf = append(s.buf, p...)
	for {
		i := bytes.IndexByte(s.buf, '\n')
		if i < 0 {
			break
		}
		s.scanLine(strings.TrimSpace(string(s.buf[:i])))
		s.buf = s.buf[i+1:]
	}
	return len(p), nil
}

func (s *summaryScanner) scanLine(line string) {
	match := summaryLine.FindStringSubmatch(line)
	if match == nil {
		return
	}
	count, err := strconv.Atoi(match[1])
	if err != nil {
		return
	}
	switch match[2] {
	case "tests found":
		s.summary.TestsFound = count
	case "tests failed":
		s.summary.TestsFailed = count
	case "containers failed":
		s.summary.ContainersFailed = count
	}
}

// Summary returns the counts gathered so far.
func (s *summaryScanner) Summary() ports.Summary {
	s.scanLine(strings.TrimSpace(string(s.buf)))
	s.buf = nil
	return s.summary
}
