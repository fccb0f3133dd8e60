package domain

import "slices"

// VersionKey names one component whose version the registry resolves.
type VersionKey string

const (
	// VersionKeyPlatform is the test platform itself.
	VersionKeyPlatform VersionKey = "junit.platform.version"
	// VersionKeyJupiter is the Jupiter programming and extension model.
	VersionKeyJupiter VersionKey = "junit.jupiter.version"
	// VersionKeyVintage is the engine running JUnit 3/4 tests on the platform.
	VersionKeyVintage VersionKey = "junit.vintage.version"
	// VersionKeyOpenTest4J is the common assertion/exception library.
	VersionKeyOpenTest4J VersionKey = "opentest4j.version"
	// VersionKeyAPIGuardian is the API status annotation library.
	VersionKeyAPIGuardian VersionKey = "apiguardian.version"
)

// knownVersionCoordinates maps each key to the group:artifact whose resolved
// version supplies auto-detection.
var knownVersionCoordinates = map[VersionKey]string{
	VersionKeyPlatform:    "org.junit.platform:junit-platform-commons",
	VersionKeyJupiter:     "org.junit.jupiter:junit-jupiter-api",
	VersionKeyVintage:     "org.junit.vintage:junit-vintage-engine",
	VersionKeyOpenTest4J:  "org.opentest4j:opentest4j",
	VersionKeyAPIGuardian: "org.apiguardian:apiguardian-api",
}

// Coordinates returns the group:artifact scanned for this key, or empty for
// unknown keys.
func (k VersionKey) Coordinates() string {
	return knownVersionCoordinates[k]
}

// KnownVersionKeys returns the curated key set in stable order.
func KnownVersionKeys() []VersionKey {
	keys := make([]VersionKey, 0, len(knownVersionCoordinates))
	for k := range knownVersionCoordinates {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
