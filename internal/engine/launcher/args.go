package launcher

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"go.velt.ch/jplaunch/internal/core/domain"
	"go.velt.ch/jplaunch/internal/core/ports"
)

// ConsoleArguments assembles the console front end's own arguments for a
// launch request: subcommand, selectors, tag filters, configuration
// parameters and the reports directory.
func ConsoleArguments(subcommand string, req ports.LaunchRequest) []string {
	args := []string{subcommand, "--disable-banner"}

	if len(req.Modules) > 0 {
		for _, module := range req.Modules {
			args = append(args, "--select-module", module)
		}
	} else {
		args = append(args, "--scan-classpath")
		if len(req.ClasspathRoots) > 0 {
			args = append(args, "--class-path", strings.Join(req.ClasspathRoots, string(os.PathListSeparator)))
		}
	}

	for _, tag := range req.IncludedTagExpressions {
		args = append(args, "--include-tag", tag)
	}

	keys := make([]string, 0, len(req.Parameters))
	for key := range req.Parameters {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		args = append(args, "--config", fmt.Sprintf("%s=%s", key, req.Parameters[key]))
	}

	if subcommand == "execute" && req.ReportsDirectory != "" {
		args = append(args, "--reports-dir", req.ReportsDirectory)
	}
	return args
}

// RuntimeArguments assembles the child runtime's path and launcher target
// arguments the way the test mode demands: module path plus the console
// module for modular runtimes, class path plus the launcher class otherwise.
func RuntimeArguments(modules domain.Modules, paths []domain.ResolvedPathEntry) []string {
	var argv []string
	switch modules.Mode {
	case domain.ModeModularPatchedTestRuntime:
		// Patch the test output into the main module.
		if tests := locations(paths, domain.OriginTest); len(tests) > 0 {
			argv = append(argv, "--patch-module", modules.MainModuleName+"="+strings.Join(tests, string(os.PathListSeparator)))
		}
		argv = append(argv, "--add-modules", modules.MainModuleName)
		argv = append(argv, "--module-path", JoinLocations(paths))
		argv = append(argv, "--module", domain.ConsoleLauncherModule)
	case domain.ModeModular:
		argv = append(argv, "--add-modules", modules.TestModuleName)
		argv = append(argv, "--module-path", JoinLocations(paths))
		argv = append(argv, "--module", domain.ConsoleLauncherModule)
	default:
		argv = append(argv, "--class-path", JoinLocations(paths))
		argv = append(argv, domain.ConsoleLauncherClass)
	}
	return argv
}

func locations(entries []domain.ResolvedPathEntry, origin domain.PathOrigin) []string {
	var out []string
	for _, entry := range entries {
		if entry.Origin == origin {
			out = append(out, entry.Location)
		}
	}
	return out
}

// JoinLocations renders resolved path entries as a platform path list.
func JoinLocations(entries []domain.ResolvedPathEntry) string {
	locations := make([]string, 0, len(entries))
	for _, entry := range entries {
		locations = append(locations, entry.Location)
	}
	return strings.Join(locations, string(os.PathListSeparator))
}

// allowListedEnvVars are the host environment variables a launched runtime
// may inherit. Everything else, the host's CLASSPATH included, stays
// invisible so the child only sees the paths the driver assembled.
var allowListedEnvVars = map[string]struct{}{
	"HOME":      {},
	"TERM":      {},
	"USER":      {},
	"PATH":      {},
	"JAVA_HOME": {},
	"LANG":      {},
}

// ChildEnvironment builds the hermetic environment for a launched runtime.
func ChildEnvironment(extra map[string]string) []string {
	envMap := make(map[string]string)
	for _, entry := range os.Environ() {
		k, v, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		if _, allowed := allowListedEnvVars[k]; allowed {
			envMap[k] = v
		}
	}
	for k, v := range extra {
		envMap[k] = v
	}

	result := make([]string, 0, len(envMap))
	for k, v := range envMap {
		result = append(result, k+"="+v)
	}
	return result
}
