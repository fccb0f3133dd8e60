package launcher

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.velt.ch/jplaunch/internal/core/domain"
	"go.velt.ch/jplaunch/internal/core/ports/mocks"
)

type stubRunner struct {
	argv []string
	env  []string
	code int
	wait bool
}

func (r *stubRunner) Run(ctx context.Context, argv []string, _ string, env []string, stdout, _ io.Writer) (int, error) {
	r.argv = argv
	r.env = env
	if r.wait {
		<-ctx.Done()
		return 0, ctx.Err()
	}
	_, _ = stdout.Write([]byte("test run finished\n"))
	return r.code, nil
}

func silentLogger(t *testing.T) *mocks.MockLogger {
	t.Helper()
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().DebugEnabled().Return(false).AnyTimes()
	logger.EXPECT().Debug(gomock.Any()).AnyTimes()
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()
	return logger
}

func buildConfiguration(t *testing.T, timeoutSeconds int, dryRun bool, targetDir string) *domain.Configuration {
	t.Helper()
	cfg, err := domain.NewConfigurationBuilder().
		DryRun(dryRun).
		TargetDirectory(targetDir).
		TimeoutSeconds(timeoutSeconds).
		Executor(domain.ExecutorJava).
		Discovery().
		ClasspathRoots([]string{"/work/target/test-classes"}).
		End().
		Build()
	require.NoError(t, err)
	return cfg
}

func buildDriver(t *testing.T) *Driver {
	t.Helper()
	base := t.TempDir()
	mainDir := filepath.Join(base, "classes")
	testDir := filepath.Join(base, "test-classes")
	require.NoError(t, os.MkdirAll(mainDir, 0o750))
	require.NoError(t, os.MkdirAll(testDir, 0o750))

	project := &domain.Project{
		BaseDir:             base,
		MainOutputDirectory: mainDir,
		TestOutputDirectory: testDir,
	}
	driver, err := NewDriver(project, nil, Policies{}, silentLogger(t))
	require.NoError(t, err)
	return driver
}

func TestJava_Execute_ChildExitCodeIsResult(t *testing.T) {
	runner := &stubRunner{code: 2}
	targetDir := t.TempDir()

	strategy := NewJava(runner, "/opt/jdk/bin/java", domain.JavaOptions{}, domain.Modules{Mode: domain.ModeClassic}, silentLogger(t))
	result, err := strategy.Execute(t.Context(), buildConfiguration(t, 300, false, targetDir), buildDriver(t))

	require.NoError(t, err)
	assert.Equal(t, 2, result)
	assert.Equal(t, "/opt/jdk/bin/java", runner.argv[0])

	// Console output lands in per-launch log files.
	logs, err := filepath.Glob(filepath.Join(targetDir, "console-*.out.log"))
	require.NoError(t, err)
	require.Len(t, logs, 1)
	content, err := os.ReadFile(logs[0])
	require.NoError(t, err)
	assert.Contains(t, string(content), "test run finished")
}

func TestJava_Execute_DryRunDiscovers(t *testing.T) {
	runner := &stubRunner{code: 1}

	strategy := NewJava(runner, "java", domain.JavaOptions{}, domain.Modules{Mode: domain.ModeClassic}, silentLogger(t))
	result, err := strategy.Execute(t.Context(), buildConfiguration(t, 300, true, t.TempDir()), buildDriver(t))

	require.NoError(t, err)
	assert.Equal(t, 0, result)
	assert.Contains(t, runner.argv, "discover")
	assert.NotContains(t, runner.argv, "execute")
}

func TestJava_Execute_GlobalTimeout(t *testing.T) {
	runner := &stubRunner{wait: true}

	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().DebugEnabled().Return(false).AnyTimes()
	logger.EXPECT().Warn("Global timeout of 1 second(s) reached.")

	strategy := NewJava(runner, "java", domain.JavaOptions{}, domain.Modules{Mode: domain.ModeClassic}, logger)
	_, err := strategy.Execute(t.Context(), buildConfiguration(t, 1, false, t.TempDir()), buildDriver(t))

	require.ErrorIs(t, err, domain.ErrGlobalTimeout)
}

func TestJava_CommandLine_Classic(t *testing.T) {
	java := domain.JavaOptions{Options: []string{"-Xmx512m"}, EnableAssertions: true}

	strategy := NewJava(&stubRunner{}, "java", java, domain.Modules{Mode: domain.ModeClassic}, silentLogger(t))
	argv := strategy.commandLine(buildConfiguration(t, 300, false, t.TempDir()), buildDriver(t))

	assert.Contains(t, argv, "-Xmx512m")
	assert.Contains(t, argv, "-ea")
	assert.Contains(t, argv, "--class-path")
	assert.NotContains(t, argv, "--module-path")
	assert.Contains(t, argv, domain.ConsoleLauncherClass)
	assert.Contains(t, argv, "execute")
}

func TestJava_CommandLine_Modular(t *testing.T) {
	modules := domain.Modules{TestModuleName: "com.example.tests", Mode: domain.ModeModular}

	strategy := NewJava(&stubRunner{}, "java", domain.JavaOptions{}, modules, silentLogger(t))
	argv := strategy.commandLine(buildConfiguration(t, 300, false, t.TempDir()), buildDriver(t))

	assert.Contains(t, argv, "--module-path")
	assert.Contains(t, argv, "--add-modules")
	assert.Contains(t, argv, "com.example.tests")
	assert.Contains(t, argv, "--module")
	assert.Contains(t, argv, domain.ConsoleLauncherModule)
	assert.NotContains(t, argv, "--patch-module")
	assert.NotContains(t, argv, domain.ConsoleLauncherClass)
}

func TestJava_CommandLine_Patched(t *testing.T) {
	modules := domain.Modules{MainModuleName: "com.example.app", Mode: domain.ModeModularPatchedTestRuntime}
	driver := buildDriver(t)

	strategy := NewJava(&stubRunner{}, "java", domain.JavaOptions{}, modules, silentLogger(t))
	argv := strategy.commandLine(buildConfiguration(t, 300, false, t.TempDir()), driver)

	require.Contains(t, argv, "--patch-module")
	for i, arg := range argv {
		if arg == "--patch-module" {
			assert.Contains(t, argv[i+1], "com.example.app=")
			assert.Contains(t, argv[i+1], driver.Locations(domain.OriginTest)[0])
		}
	}
	assert.Contains(t, argv, "--add-modules")
	assert.Contains(t, argv, "com.example.app")
	assert.Contains(t, argv, "--module")
	assert.Contains(t, argv, domain.ConsoleLauncherModule)
}

func TestNewStrategy(t *testing.T) {
	deps := Dependencies{Logger: silentLogger(t)}

	direct, err := NewStrategy(domain.ExecutorDirect, deps)
	require.NoError(t, err)
	assert.IsType(t, &Direct{}, direct)

	java, err := NewStrategy(domain.ExecutorJava, deps)
	require.NoError(t, err)
	assert.IsType(t, &Java{}, java)

	_, err = NewStrategy(domain.ExecutorKind("MAGIC"), deps)
	require.ErrorIs(t, err, domain.ErrUnsupportedExecutor)
}
