// Package app implements the application layer for jplaunch.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"go.trai.ch/zerr"
	"go.velt.ch/jplaunch/internal/adapters/console"
	"go.velt.ch/jplaunch/internal/core/domain"
	"go.velt.ch/jplaunch/internal/core/ports"
	"go.velt.ch/jplaunch/internal/engine/launcher"
	"go.velt.ch/jplaunch/internal/engine/versions"
)

// EngineFactory builds the discovery/execution engine for one launch.
type EngineFactory func(java domain.JavaOptions, modules domain.Modules) ports.TestEngine

// App represents the main application logic.
type App struct {
	manifests     ports.ManifestLoader
	classifier    ports.ModuleClassifier
	resolver      ports.DependencyResolver
	pipes         launcher.ProcessRunner
	logger        ports.Logger
	tracer        ports.Tracer
	engineFactory EngineFactory
}

// New creates a new App instance.
func New(
	manifests ports.ManifestLoader,
	classifier ports.ModuleClassifier,
	resolver ports.DependencyResolver,
	runner *console.Runner,
	pipes launcher.ProcessRunner,
	log ports.Logger,
	tracer ports.Tracer,
) *App {
	return &App{
		manifests:  manifests,
		classifier: classifier,
		resolver:   resolver,
		pipes:      pipes,
		logger:     log,
		tracer:     tracer,
		engineFactory: func(java domain.JavaOptions, modules domain.Modules) ports.TestEngine {
			return console.NewEngine(runner, java, modules, log)
		},
	}
}

// WithEngineFactory replaces how the discovery/execution engine is built.
// This is primarily used for testing.
func (a *App) WithEngineFactory(factory EngineFactory) *App {
	a.engineFactory = factory
	return a
}

// LaunchOptions configuration for the Launch method.
type LaunchOptions struct {
	WorkingDir       string
	Skip             bool
	DryRun           bool
	Isolate          bool
	Reunite          bool
	TimeoutSeconds   int
	Executor         string
	Tags             []string
	Parameters       map[string]string
	VersionOverrides map[string]string
	JavaOptions      []string
	EnableAssertions bool
}

// Launch discovers and executes the project's tests.
//
//nolint:cyclop // orchestration function
func (a *App) Launch(ctx context.Context, opts LaunchOptions) error {
	if opts.Skip {
		a.logger.Info("Test platform launch skipped.")
		return nil
	}

	ctx, span := a.tracer.Start(ctx, "launch")
	defer span.End()

	// 1. Load the project manifest
	project, err := a.manifests.Load(opts.WorkingDir)
	if err != nil {
		span.RecordError(err)
		return err
	}

	if !dirExists(project.TestOutputDirectory) {
		a.logger.Info("Test output directory does not exist, nothing to launch.")
		return nil
	}

	// 2. Classify the test mode
	modules, err := a.classifier.Scan(project.MainOutputDirectory, project.TestOutputDirectory)
	if err != nil {
		span.RecordError(err)
		return err
	}
	span.SetAttribute("test.mode", string(modules.Mode))

	// 3. Resolve dependencies and component versions
	artifacts, err := a.resolver.Resolve(ctx, project)
	if err != nil {
		span.RecordError(err)
		return zerr.Wrap(err, "failed to resolve dependencies")
	}

	registry := versions.NewRegistry(artifacts, versionOverrides(opts.VersionOverrides), a.logger)
	platformVersion := registry.Resolve(domain.VersionKeyPlatform, versions.FallbackPlatformVersion)
	a.logger.Info(fmt.Sprintf("Launching JUnit Platform %s...", platformVersion))

	a.debugDiagnostics(project, modules, registry, artifacts)

	// 4. Prepare the launch directory
	launchDir := domain.LaunchPath(project.TargetDirectory)
	if err := os.MkdirAll(launchDir, domain.DirPerm); err != nil {
		err = zerr.With(errors.Join(domain.ErrTargetDirCreateFailed, err), "path", launchDir)
		span.RecordError(err)
		return err
	}

	// 5. Build the launch configuration
	cfg, err := a.buildConfiguration(opts, modules, project, launchDir)
	if err != nil {
		span.RecordError(err)
		return err
	}
	span.SetAttribute("executor", string(cfg.Executor()))

	// 6. Lay out the runtime path
	driver, err := launcher.NewDriver(project, artifacts, launcher.Policies{
		Isolate: opts.Isolate,
		Reunite: opts.Reunite,
	}, a.logger)
	if err != nil {
		span.RecordError(err)
		return err
	}
	driver.DebugPaths()

	// 7. Select the execution strategy and run
	java := javaOptions(project, opts)
	deps := launcher.Dependencies{
		Engine:  a.engineFactory(java, modules),
		Runner:  a.pipes,
		Java:    java,
		Modules: modules,
		Logger:  a.logger,
	}
	if cfg.Executor() == domain.ExecutorJava {
		deps.JavaExecutable, err = console.JavaExecutable(java.Executable)
		if err != nil {
			span.RecordError(err)
			return err
		}
	}

	strategy, err := launcher.NewStrategy(cfg.Executor(), deps)
	if err != nil {
		span.RecordError(err)
		return err
	}

	result, err := strategy.Execute(ctx, cfg, driver)
	if err != nil {
		span.RecordError(err)
		return err
	}
	if result > 0 {
		err := zerr.With(domain.ErrTestFailure, "failures", result)
		span.RecordError(err)
		return err
	}

	if !cfg.DryRun() {
		a.logger.Info("Test run finished successfully.")
	}
	return nil
}

func (a *App) buildConfiguration(
	opts LaunchOptions,
	modules domain.Modules,
	project *domain.Project,
	launchDir string,
) (*domain.Configuration, error) {
	timeout := opts.TimeoutSeconds
	if timeout == 0 {
		timeout = domain.DefaultTimeoutSeconds
	}

	executor := domain.ExecutorDirect
	if opts.Executor != "" {
		var err error
		executor, err = domain.ParseExecutorKind(opts.Executor)
		if err != nil {
			return nil, err
		}
	}

	builder := domain.NewConfigurationBuilder().
		DryRun(opts.DryRun).
		TargetDirectory(launchDir).
		TimeoutSeconds(timeout).
		Executor(executor)

	discovery := builder.Discovery().
		IncludedTagExpressions(opts.Tags).
		Parameters(opts.Parameters)

	if modules.Mode == domain.ModeClassic {
		discovery.ClasspathRoots([]string{project.TestOutputDirectory})
	} else {
		name, err := modules.SelectorModuleName()
		if err != nil {
			return nil, err
		}
		discovery.SelectModules([]string{name})
	}

	return discovery.End().Build()
}

func (a *App) debugDiagnostics(project *domain.Project, modules domain.Modules, registry *versions.Registry, artifacts []domain.Artifact) {
	if !a.logger.DebugEnabled() {
		return
	}
	a.logger.Debug("launch diagnostics:")
	a.logger.Debug(fmt.Sprintf("%-50s -> %s", "project", project.Name))
	a.logger.Debug(fmt.Sprintf("%-50s -> %s", "base directory", project.BaseDir))
	a.logger.Debug(fmt.Sprintf("%-50s -> %s", "JAVA_HOME", os.Getenv("JAVA_HOME")))
	a.logger.Debug(fmt.Sprintf("%-50s -> %s", "test mode", modules.Mode))
	a.logger.Debug(fmt.Sprintf("%-50s -> %s", "main output", modules.DescribeMain()))
	a.logger.Debug(fmt.Sprintf("%-50s -> %s", "test output", modules.DescribeTest()))

	sorted := slices.Clone(artifacts)
	slices.SortFunc(sorted, func(a, b domain.Artifact) int {
		return strings.Compare(a.Coordinates, b.Coordinates)
	})
	for _, artifact := range sorted {
		a.logger.Debug(fmt.Sprintf("%-50s -> %s", artifact.Coordinates, artifact.Path))
	}

	detected := registry.Detected()
	for _, key := range domain.KnownVersionKeys() {
		if version, ok := detected[key]; ok {
			a.logger.Debug(fmt.Sprintf("%-50s -> %s", key, version))
		}
	}
}

func javaOptions(project *domain.Project, opts LaunchOptions) domain.JavaOptions {
	java := project.Java
	java.Options = append(slices.Clone(java.Options), opts.JavaOptions...)
	java.EnableAssertions = java.EnableAssertions || opts.EnableAssertions
	return java
}

func versionOverrides(raw map[string]string) map[domain.VersionKey]string {
	if len(raw) == 0 {
		return nil
	}
	overrides := make(map[domain.VersionKey]string, len(raw))
	for key, version := range raw {
		overrides[domain.VersionKey(key)] = version
	}
	return overrides
}

func dirExists(dir string) bool {
	if dir == "" {
		return false
	}
	info, err := os.Stat(dir)
	return err == nil && info.IsDir()
}
