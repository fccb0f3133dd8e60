package domain

import "path/filepath"

const (
	// ManifestFileName is the name of the project manifest file.
	ManifestFileName = "jplaunch.yaml"

	// LaunchDirName is the subdirectory of the build target directory that
	// holds reports and console logs for a launch.
	LaunchDirName = "jplaunch"

	// ModuleDescriptorName is the compiled module descriptor looked for in
	// output directories.
	ModuleDescriptorName = "module-info.class"

	// ConsoleLauncherClass is the entry point of the console front end of the
	// test platform.
	ConsoleLauncherClass = "org.junit.platform.console.ConsoleLauncher"

	// ConsoleLauncherModule is the console front end's module name, used when
	// the child runtime boots from the module path.
	ConsoleLauncherModule = "org.junit.platform.console"

	// DefaultTimeoutSeconds is the default wall-clock budget for a launch.
	DefaultTimeoutSeconds = 300

	// DirPerm is the default permission for created directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for created files (rw-r--r--).
	FilePerm = 0o644
)

// LaunchPath returns the launch working directory beneath the given build
// target directory.
func LaunchPath(targetDir string) string {
	return filepath.Join(targetDir, LaunchDirName)
}
