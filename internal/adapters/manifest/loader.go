// Package manifest loads the jplaunch project manifest.
package manifest

import (
	"errors"
	"os"
	"path/filepath"

	"go.trai.ch/zerr"
	"go.velt.ch/jplaunch/internal/core/domain"
	"go.velt.ch/jplaunch/internal/core/ports"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ManifestLoader over a YAML file.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load walks up from cwd until it finds a manifest and returns the project it
// describes. All directories are resolved against the manifest's directory.
func (l *Loader) Load(cwd string) (*domain.Project, error) {
	path, err := l.findManifest(cwd)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path) //nolint:gosec // path discovered from cwd
	if err != nil {
		return nil, zerr.With(errors.Join(domain.ErrManifestReadFailed, err), "path", path)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, zerr.With(errors.Join(domain.ErrManifestParseFailed, err), "path", path)
	}

	return l.toProject(filepath.Dir(path), &m)
}

func (l *Loader) findManifest(cwd string) (string, error) {
	currentDir, err := filepath.Abs(cwd)
	if err != nil {
		return "", zerr.Wrap(err, "failed to resolve working directory")
	}

	for {
		candidate := filepath.Join(currentDir, domain.ManifestFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			break
		}
		currentDir = parentDir
	}

	return "", zerr.With(domain.ErrManifestNotFound, "cwd", cwd)
}

func (l *Loader) toProject(baseDir string, m *Manifest) (*domain.Project, error) {
	p := &domain.Project{
		Name:    m.Project,
		BaseDir: baseDir,
		Java: domain.JavaOptions{
			Executable:       m.Java.Executable,
			Options:          m.Java.Options,
			EnableAssertions: m.Java.EnableAssertions,
		},
	}

	p.MainOutputDirectory = p.ResolveDir(defaulted(m.MainOutputDirectory, filepath.Join("target", "classes")))
	p.TestOutputDirectory = p.ResolveDir(defaulted(m.TestOutputDirectory, filepath.Join("target", "test-classes")))
	p.TargetDirectory = p.ResolveDir(defaulted(m.TargetDirectory, "target"))

	for _, dep := range m.Dependencies {
		if dep.Coordinates == "" || dep.Path == "" {
			return nil, zerr.With(domain.ErrManifestParseFailed, "dependency", dep.Coordinates)
		}
		p.Dependencies = append(p.Dependencies, domain.Artifact{
			Coordinates: dep.Coordinates,
			Version:     dep.Version,
			Path:        p.ResolveDir(dep.Path),
			Root:        dep.Root,
		})
	}

	return p, nil
}

func defaulted(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

var _ ports.ManifestLoader = (*Loader)(nil)
