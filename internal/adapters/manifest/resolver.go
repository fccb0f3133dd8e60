package manifest

import (
	"context"

	"go.velt.ch/jplaunch/internal/core/domain"
	"go.velt.ch/jplaunch/internal/core/ports"
)

// Resolver implements ports.DependencyResolver over the manifest's
// pre-resolved artifact list. Resolution proper happened in the build tool;
// this adapter only hands the list over in manifest order.
type Resolver struct{}

// NewResolver creates a new Resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Resolve returns the project's artifacts in manifest order.
func (r *Resolver) Resolve(_ context.Context, project *domain.Project) ([]domain.Artifact, error) {
	artifacts := make([]domain.Artifact, len(project.Dependencies))
	copy(artifacts, project.Dependencies)
	return artifacts, nil
}

var _ ports.DependencyResolver = (*Resolver)(nil)
