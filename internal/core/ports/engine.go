// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.velt.ch/jplaunch/internal/core/domain"
)

// LaunchRequest is the plain-data request handed to the discovery/execution
// engine: selectors, filters, opaque parameters and the resolved runtime path.
type LaunchRequest struct {
	// ClasspathRoots selects classpath-based discovery. Mutually exclusive
	// with Modules.
	ClasspathRoots []string
	// Modules selects module-based discovery.
	Modules []string
	// IncludedTagExpressions are OR-combined tag filters.
	IncludedTagExpressions []string
	// Parameters are opaque engine configuration parameters.
	Parameters map[string]string
	// Paths is the ordered, isolation-aware runtime path.
	Paths []domain.ResolvedPathEntry
	// ReportsDirectory receives the engine's report artifacts.
	ReportsDirectory string
}

// Summary is the pass/fail outcome reported by the engine.
type Summary struct {
	TestsFound       int
	TestsFailed      int
	ContainersFailed int
}

// FailureCount collapses the summary into the launch result value.
func (s Summary) FailureCount() int {
	return s.TestsFailed + s.ContainersFailed
}

// TestEngine is the opaque discovery-and-execution collaborator. Given a
// request it selects and runs test cases and returns a summary; it never
// enforces a timeout of its own.
//
//go:generate mockgen -source=engine.go -destination=mocks/mock_engine.go -package=mocks
type TestEngine interface {
	// Discover selects tests without running them.
	Discover(ctx context.Context, req LaunchRequest) (Summary, error)

	// Execute selects and runs tests.
	Execute(ctx context.Context, req LaunchRequest) (Summary, error)
}
