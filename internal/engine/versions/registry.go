// Package versions resolves component versions for a launch: explicit
// overrides win over versions auto-detected from the resolved dependencies,
// which win over built-in fallbacks.
package versions

import (
	"fmt"
	"maps"

	"go.velt.ch/jplaunch/internal/core/domain"
	"go.velt.ch/jplaunch/internal/core/ports"
)

// Fallback versions used when a component is neither overridden nor present
// among the resolved dependencies.
const (
	FallbackPlatformVersion = "1.10.2"
	FallbackJupiterVersion  = "5.10.2"
	FallbackVintageVersion  = "5.10.2"
)

// Registry holds the version lookup state for exactly one launch.
type Registry struct {
	detected  map[domain.VersionKey]string
	overrides map[domain.VersionKey]string
	logger    ports.Logger
}

// NewRegistry scans the resolved artifacts for the curated version keys and
// records the caller's overrides.
func NewRegistry(artifacts []domain.Artifact, overrides map[domain.VersionKey]string, logger ports.Logger) *Registry {
	detected := make(map[domain.VersionKey]string)
	for _, key := range domain.KnownVersionKeys() {
		coordinates := key.Coordinates()
		for _, artifact := range artifacts {
			if artifact.Coordinates == coordinates && artifact.Version != "" {
				detected[key] = artifact.Version
				break
			}
		}
	}
	return &Registry{
		detected:  detected,
		overrides: maps.Clone(overrides),
		logger:    logger,
	}
}

// Resolve returns the version for key: override first, then the auto-detected
// version, then fallback.
func (r *Registry) Resolve(key domain.VersionKey, fallback string) string {
	if version, ok := r.overrides[key]; ok && version != "" {
		return version
	}
	if version, ok := r.detected[key]; ok {
		return version
	}
	if r.logger.DebugEnabled() {
		r.logger.Debug(fmt.Sprintf("no version detected for %s, falling back to %s", key, fallback))
	}
	return fallback
}

// Detected returns the versions found among the resolved dependencies.
func (r *Registry) Detected() map[domain.VersionKey]string {
	return maps.Clone(r.detected)
}
