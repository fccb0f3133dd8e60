package manifest

// Manifest represents the structure of the jplaunch.yaml file a build tool
// writes next to the project it wants tested.
type Manifest struct {
	Version             string          `yaml:"version"`
	Project             string          `yaml:"project"`
	MainOutputDirectory string          `yaml:"mainOutputDirectory"`
	TestOutputDirectory string          `yaml:"testOutputDirectory"`
	TargetDirectory     string          `yaml:"targetDirectory"`
	Java                JavaDTO         `yaml:"java"`
	Dependencies        []DependencyDTO `yaml:"dependencies"`
}

// JavaDTO configures the external java runtime.
type JavaDTO struct {
	Executable       string   `yaml:"executable"`
	Options          []string `yaml:"options"`
	EnableAssertions bool     `yaml:"enableAssertions"`
}

// DependencyDTO is one pre-resolved test-scope artifact.
type DependencyDTO struct {
	Coordinates string `yaml:"coordinates"`
	Version     string `yaml:"version"`
	Path        string `yaml:"path"`
	// Root names the top-level dependency this artifact was resolved through.
	// Empty means the artifact is itself top-level.
	Root string `yaml:"root"`
}
