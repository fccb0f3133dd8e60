package domain

// PathOrigin tells which part of the project a runtime path entry comes from.
type PathOrigin string

const (
	// OriginMain marks the main output directory.
	OriginMain PathOrigin = "MAIN"
	// OriginTest marks the test output directory.
	OriginTest PathOrigin = "TEST"
	// OriginDependency marks a resolved dependency artifact.
	OriginDependency PathOrigin = "DEPENDENCY"
)

// IsolationGroup identifies a classloading boundary. Symbols are invisible
// across groups unless explicitly exposed.
type IsolationGroup string

// ResolvedPathEntry is one element of the ordered, isolation-aware runtime
// path produced by the driver.
type ResolvedPathEntry struct {
	Location string
	Origin   PathOrigin
	Group    IsolationGroup
}
