package manifest_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.velt.ch/jplaunch/internal/adapters/manifest"
	"go.velt.ch/jplaunch/internal/core/domain"
	"go.velt.ch/jplaunch/internal/core/ports/mocks"
)

func newLoader(t *testing.T) *manifest.Loader {
	t.Helper()
	ctrl := gomock.NewController(t)
	return manifest.NewLoader(mocks.NewMockLogger(ctrl))
}

func writeManifest(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, domain.ManifestFileName), []byte(content), 0o644))
}

func TestLoader_Load(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `
version: "1"
project: demo
mainOutputDirectory: build/classes
testOutputDirectory: build/test-classes
targetDirectory: build
java:
  options: ["-Xmx512m"]
  enableAssertions: true
dependencies:
  - coordinates: org.junit.jupiter:junit-jupiter-api
    version: 5.11.0
    path: libs/junit-jupiter-api-5.11.0.jar
  - coordinates: org.opentest4j:opentest4j
    version: 1.3.0
    path: libs/opentest4j-1.3.0.jar
    root: org.junit.jupiter:junit-jupiter-api
`)

	p, err := newLoader(t).Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "demo", p.Name)
	assert.Equal(t, dir, p.BaseDir)
	assert.Equal(t, filepath.Join(dir, "build", "classes"), p.MainOutputDirectory)
	assert.Equal(t, filepath.Join(dir, "build", "test-classes"), p.TestOutputDirectory)
	assert.Equal(t, filepath.Join(dir, "build"), p.TargetDirectory)
	assert.True(t, p.Java.EnableAssertions)
	assert.Equal(t, []string{"-Xmx512m"}, p.Java.Options)

	require.Len(t, p.Dependencies, 2)
	assert.Equal(t, filepath.Join(dir, "libs", "junit-jupiter-api-5.11.0.jar"), p.Dependencies[0].Path)
	assert.Equal(t, "org.junit.jupiter:junit-jupiter-api", p.Dependencies[1].Root)
}

func TestLoader_Defaults(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "project: defaults\n")

	p, err := newLoader(t).Load(dir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "target", "classes"), p.MainOutputDirectory)
	assert.Equal(t, filepath.Join(dir, "target", "test-classes"), p.TestOutputDirectory)
	assert.Equal(t, filepath.Join(dir, "target"), p.TargetDirectory)
}

func TestLoader_WalksUp(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "project: nested\n")

	nested := filepath.Join(root, "src", "test", "java")
	require.NoError(t, os.MkdirAll(nested, 0o750))

	p, err := newLoader(t).Load(nested)
	require.NoError(t, err)
	assert.Equal(t, "nested", p.Name)
	assert.Equal(t, root, p.BaseDir)
}

func TestLoader_NotFound(t *testing.T) {
	_, err := newLoader(t).Load(t.TempDir())
	require.ErrorIs(t, err, domain.ErrManifestNotFound)
}

func TestLoader_ParseFailure(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "dependencies: {broken\n")

	_, err := newLoader(t).Load(dir)
	require.ErrorIs(t, err, domain.ErrManifestParseFailed)
}

func TestLoader_DependencyMissingPath(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `
project: demo
dependencies:
  - coordinates: org.junit.jupiter:junit-jupiter-api
`)

	_, err := newLoader(t).Load(dir)
	require.ErrorIs(t, err, domain.ErrManifestParseFailed)
}

func TestResolver_ManifestOrder(t *testing.T) {
	p := &domain.Project{
		Dependencies: []domain.Artifact{
			{Coordinates: "a:a", Path: "/tmp/a.jar"},
			{Coordinates: "b:b", Path: "/tmp/b.jar"},
		},
	}

	artifacts, err := manifest.NewResolver().Resolve(t.Context(), p)
	require.NoError(t, err)
	require.Len(t, artifacts, 2)
	assert.Equal(t, "a:a", artifacts[0].Coordinates)

	// Mutating the result must not touch the project.
	artifacts[0].Coordinates = "mutated"
	assert.Equal(t, "a:a", p.Dependencies[0].Coordinates)
}
