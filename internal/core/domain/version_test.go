package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.velt.ch/jplaunch/internal/core/domain"
)

func TestKnownVersionKeys(t *testing.T) {
	keys := domain.KnownVersionKeys()
	assert.Contains(t, keys, domain.VersionKeyPlatform)
	assert.Contains(t, keys, domain.VersionKeyJupiter)
	assert.Contains(t, keys, domain.VersionKeyVintage)

	// Stable order across calls.
	assert.Equal(t, keys, domain.KnownVersionKeys())
}

func TestVersionKey_Coordinates(t *testing.T) {
	assert.Equal(t, "org.junit.platform:junit-platform-commons", domain.VersionKeyPlatform.Coordinates())
	assert.Empty(t, domain.VersionKey("nonsense.version").Coordinates())
}

func TestArtifact_TopLevel(t *testing.T) {
	top := domain.Artifact{Coordinates: "org.junit.jupiter:junit-jupiter"}
	assert.Equal(t, "org.junit.jupiter:junit-jupiter", top.TopLevel())

	transitive := domain.Artifact{
		Coordinates: "org.opentest4j:opentest4j",
		Root:        "org.junit.jupiter:junit-jupiter",
	}
	assert.Equal(t, "org.junit.jupiter:junit-jupiter", transitive.TopLevel())
}
