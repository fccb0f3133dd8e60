package domain

import "go.trai.ch/zerr"

var (
	// ErrSelectorConflict is returned when a configuration is built with both or
	// neither selector kind populated. This signals a defect in the caller, not
	// a user-facing condition.
	ErrSelectorConflict = zerr.New("exactly one selector kind must be populated")

	// ErrInvalidTimeout is returned when the configured timeout is not positive.
	ErrInvalidTimeout = zerr.New("timeout must be a positive number of seconds")

	// ErrMissingModuleName is returned when the test mode demands a module name
	// that the module scan did not produce.
	ErrMissingModuleName = zerr.New("module name required but not present")

	// ErrUnsupportedExecutor is returned when an unknown executor kind is requested.
	ErrUnsupportedExecutor = zerr.New("unsupported executor kind")

	// ErrDependencyPathMissing is returned when a resolved dependency artifact
	// points at a path that does not exist on disk.
	ErrDependencyPathMissing = zerr.New("dependency path does not exist")

	// ErrDescriptorParseFailed is returned when a module descriptor cannot be read.
	ErrDescriptorParseFailed = zerr.New("failed to parse module descriptor")

	// ErrManifestNotFound is returned when no jplaunch manifest can be located.
	ErrManifestNotFound = zerr.New("could not find jplaunch manifest")

	// ErrManifestReadFailed is returned when the manifest file cannot be read.
	ErrManifestReadFailed = zerr.New("failed to read manifest file")

	// ErrManifestParseFailed is returned when the manifest file cannot be parsed.
	ErrManifestParseFailed = zerr.New("failed to parse manifest file")

	// ErrTargetDirCreateFailed is returned when the target directory cannot be created.
	ErrTargetDirCreateFailed = zerr.New("failed to create target directory")

	// ErrJavaExecutableNotFound is returned when no java executable can be located.
	ErrJavaExecutableNotFound = zerr.New("java executable not found")

	// ErrGlobalTimeout is returned when the wall-clock budget for a launch is
	// exceeded. The in-flight worker state afterwards is unspecified.
	ErrGlobalTimeout = zerr.New("global timeout reached")

	// ErrExecutionSetup is returned when the strategy layer itself fails
	// unexpectedly, as opposed to the engine reporting test failures.
	ErrExecutionSetup = zerr.New("execution setup failed")

	// ErrTestFailure is returned when the discovery/execution engine reports a
	// non-zero failure count. This is the ordinary build-failure path.
	ErrTestFailure = zerr.New("test run reported failures")
)
