package launcher_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.velt.ch/jplaunch/internal/core/domain"
	"go.velt.ch/jplaunch/internal/core/ports"
	"go.velt.ch/jplaunch/internal/core/ports/mocks"
	"go.velt.ch/jplaunch/internal/engine/launcher"
)

func classpathConfiguration(t *testing.T, timeoutSeconds int, dryRun bool) *domain.Configuration {
	t.Helper()
	cfg, err := domain.NewConfigurationBuilder().
		DryRun(dryRun).
		TargetDirectory(t.TempDir()).
		TimeoutSeconds(timeoutSeconds).
		Discovery().
		ClasspathRoots([]string{"/work/target/test-classes"}).
		End().
		Build()
	require.NoError(t, err)
	return cfg
}

func emptyDriver(t *testing.T) *launcher.Driver {
	t.Helper()
	project := &domain.Project{BaseDir: t.TempDir()}
	driver, err := launcher.NewDriver(project, nil, launcher.Policies{}, quietLogger(t))
	require.NoError(t, err)
	return driver
}

func TestDirect_Execute_ReportsFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	engine := mocks.NewMockTestEngine(ctrl)
	engine.EXPECT().
		Execute(gomock.Any(), gomock.Any()).
		Return(ports.Summary{TestsFound: 5, TestsFailed: 2, ContainersFailed: 1}, nil)

	strategy := launcher.NewDirect(launcher.NewIsolator(engine, quietLogger(t)), quietLogger(t))
	result, err := strategy.Execute(t.Context(), classpathConfiguration(t, 300, false), emptyDriver(t))

	require.NoError(t, err)
	assert.Equal(t, 3, result)
}

func TestDirect_Execute_DryRunDiscoversOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	engine := mocks.NewMockTestEngine(ctrl)
	engine.EXPECT().
		Discover(gomock.Any(), gomock.Any()).
		Return(ports.Summary{TestsFound: 9}, nil)

	strategy := launcher.NewDirect(launcher.NewIsolator(engine, quietLogger(t)), quietLogger(t))
	result, err := strategy.Execute(t.Context(), classpathConfiguration(t, 300, true), emptyDriver(t))

	require.NoError(t, err)
	assert.Equal(t, 0, result)
}

func TestDirect_Execute_GlobalTimeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	engine := mocks.NewMockTestEngine(ctrl)
	engine.EXPECT().
		Execute(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ ports.LaunchRequest) (ports.Summary, error) {
			<-ctx.Done()
			return ports.Summary{}, ctx.Err()
		}).
		AnyTimes()

	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().DebugEnabled().Return(false).AnyTimes()
	logger.EXPECT().Warn("Global timeout of 1 second(s) reached.")

	strategy := launcher.NewDirect(launcher.NewIsolator(engine, logger), logger)
	_, err := strategy.Execute(t.Context(), classpathConfiguration(t, 1, false), emptyDriver(t))

	require.ErrorIs(t, err, domain.ErrGlobalTimeout)
}

func TestDirect_Execute_EnginePanic(t *testing.T) {
	ctrl := gomock.NewController(t)
	engine := mocks.NewMockTestEngine(ctrl)
	engine.EXPECT().
		Execute(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, ports.LaunchRequest) (ports.Summary, error) {
			panic("engine exploded")
		})

	strategy := launcher.NewDirect(launcher.NewIsolator(engine, quietLogger(t)), quietLogger(t))
	_, err := strategy.Execute(t.Context(), classpathConfiguration(t, 300, false), emptyDriver(t))

	require.ErrorIs(t, err, domain.ErrExecutionSetup)
}

func TestIsolator_Evaluate_ForwardsRequest(t *testing.T) {
	ctrl := gomock.NewController(t)

	cfg, err := domain.NewConfigurationBuilder().
		TargetDirectory("/work/target/jplaunch").
		Discovery().
		SelectModules([]string{"com.example.app"}).
		IncludedTagExpressions([]string{"fast"}).
		Parameters(map[string]string{"key": "value"}).
		End().
		Build()
	require.NoError(t, err)

	engine := mocks.NewMockTestEngine(ctrl)
	engine.EXPECT().
		Execute(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req ports.LaunchRequest) (ports.Summary, error) {
			assert.Equal(t, []string{"com.example.app"}, req.Modules)
			assert.Empty(t, req.ClasspathRoots)
			assert.Equal(t, []string{"fast"}, req.IncludedTagExpressions)
			assert.Equal(t, map[string]string{"key": "value"}, req.Parameters)
			assert.Equal(t, "/work/target/jplaunch", req.ReportsDirectory)
			return ports.Summary{}, nil
		})

	isolator := launcher.NewIsolator(engine, quietLogger(t))
	result, err := isolator.Evaluate(t.Context(), cfg, emptyDriver(t))

	require.NoError(t, err)
	assert.Equal(t, 0, result)
}
