// Package launcher plans the isolation-aware runtime path for a launch and
// executes it under one of the available execution strategies.
package launcher

import (
	"fmt"
	"os"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"
	"go.velt.ch/jplaunch/internal/core/domain"
	"go.velt.ch/jplaunch/internal/core/ports"
)

// Isolation group names for the project's own output directories. Dependency
// groups are derived from the artifact's top-level coordinates.
const (
	groupRuntime      domain.IsolationGroup = "runtime"
	groupMain         domain.IsolationGroup = "main"
	groupTest         domain.IsolationGroup = "test"
	groupDependencies domain.IsolationGroup = "deps"
)

// Policies controls how the driver distributes path entries over isolation
// groups.
type Policies struct {
	// Isolate gives every top-level dependency its own group instead of one
	// shared group.
	Isolate bool
	// Reunite merges the main and test output directories into a single
	// runtime group.
	Reunite bool
}

// Driver owns the ordered runtime path for exactly one launch. It is built
// fresh per launch and never reused.
type Driver struct {
	entries []domain.ResolvedPathEntry
	logger  ports.Logger
}

// NewDriver validates the project's dependency artifacts and lays out the
// runtime path: main output, test output, then dependencies in resolver order.
func NewDriver(project *domain.Project, artifacts []domain.Artifact, policies Policies, logger ports.Logger) (*Driver, error) {
	d := &Driver{logger: logger}

	mainGroup, testGroup := groupMain, groupTest
	if policies.Reunite {
		mainGroup, testGroup = groupRuntime, groupRuntime
	}

	if dirExists(project.MainOutputDirectory) {
		d.entries = append(d.entries, domain.ResolvedPathEntry{
			Location: project.MainOutputDirectory,
			Origin:   domain.OriginMain,
			Group:    mainGroup,
		})
	}
	if dirExists(project.TestOutputDirectory) {
		d.entries = append(d.entries, domain.ResolvedPathEntry{
			Location: project.TestOutputDirectory,
			Origin:   domain.OriginTest,
			Group:    testGroup,
		})
	}

	for _, artifact := range artifacts {
		if _, err := os.Stat(artifact.Path); err != nil {
			return nil, zerr.With(zerr.With(domain.ErrDependencyPathMissing,
				"coordinates", artifact.Coordinates),
				"path", artifact.Path)
		}
		group := groupDependencies
		if policies.Isolate {
			group = domain.IsolationGroup("dep:" + artifact.TopLevel())
		}
		d.entries = append(d.entries, domain.ResolvedPathEntry{
			Location: artifact.Path,
			Origin:   domain.OriginDependency,
			Group:    group,
		})
	}

	return d, nil
}

// Paths returns the ordered runtime path.
func (d *Driver) Paths() []domain.ResolvedPathEntry {
	entries := make([]domain.ResolvedPathEntry, len(d.entries))
	copy(entries, d.entries)
	return entries
}

// Locations returns the locations of all entries matching one of the given
// origins, in path order.
func (d *Driver) Locations(origins ...domain.PathOrigin) []string {
	var locations []string
	for _, entry := range d.entries {
		for _, origin := range origins {
			if entry.Origin == origin {
				locations = append(locations, entry.Location)
				break
			}
		}
	}
	return locations
}

// Fingerprint hashes the runtime path into a stable run identifier, used to
// name per-launch log files.
func (d *Driver) Fingerprint() string {
	digest := xxhash.New()
	for _, entry := range d.entries {
		_, _ = digest.WriteString(entry.Location)
		_, _ = digest.WriteString("|")
		_, _ = digest.WriteString(string(entry.Group))
		_, _ = digest.WriteString("\n")
	}
	return fmt.Sprintf("%016x", digest.Sum64())
}

// DebugPaths lists the runtime path and its group assignment.
func (d *Driver) DebugPaths() {
	if !d.logger.DebugEnabled() {
		return
	}
	d.logger.Debug("runtime path:")
	for _, entry := range d.entries {
		d.logger.Debug(fmt.Sprintf("%-50s -> %s", entry.Location, entry.Group))
	}
}

func dirExists(dir string) bool {
	if dir == "" {
		return false
	}
	info, err := os.Stat(dir)
	return err == nil && info.IsDir()
}
