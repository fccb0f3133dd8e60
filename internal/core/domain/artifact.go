package domain

// Artifact is one pre-resolved test-scope dependency, handed to the driver as
// plain data by the dependency resolver.
type Artifact struct {
	// Coordinates in group:artifact form.
	Coordinates string
	// Version is the resolved base version.
	Version string
	// Path is the location of the artifact on disk.
	Path string
	// Root holds the coordinates of the top-level dependency this artifact was
	// resolved through. Empty means the artifact is itself top-level.
	Root string
}

// TopLevel returns the coordinates of the top-level dependency that pulled
// this artifact in.
func (a Artifact) TopLevel() string {
	if a.Root == "" {
		return a.Coordinates
	}
	return a.Root
}
