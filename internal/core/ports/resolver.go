package ports

import (
	"context"

	"go.velt.ch/jplaunch/internal/core/domain"
)

// DependencyResolver supplies the pre-resolved test-scope dependency
// artifacts. Resolution itself happens outside this system.
//
//go:generate mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type DependencyResolver interface {
	// Resolve returns the project's artifacts in deterministic order.
	Resolve(ctx context.Context, project *domain.Project) ([]domain.Artifact, error)
}
