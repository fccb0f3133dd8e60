package ports

import "go.velt.ch/jplaunch/internal/core/domain"

// ManifestLoader loads the project manifest.
//
//go:generate mockgen -source=manifest.go -destination=mocks/mock_manifest.go -package=mocks
type ManifestLoader interface {
	// Load walks up from cwd to find the manifest and returns the project it
	// describes, with directories resolved to absolute paths.
	Load(cwd string) (*domain.Project, error)
}
