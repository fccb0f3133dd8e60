package domain

import (
	"maps"
	"slices"

	"go.trai.ch/zerr"
)

// ExecutorKind selects the execution strategy driving the isolated run.
type ExecutorKind string

const (
	// ExecutorDirect runs the engine in-process on a single bounded worker.
	ExecutorDirect ExecutorKind = "DIRECT"

	// ExecutorJava launches a second java runtime as an external process.
	ExecutorJava ExecutorKind = "JAVA"
)

// ParseExecutorKind validates a user-supplied executor name.
func ParseExecutorKind(s string) (ExecutorKind, error) {
	switch ExecutorKind(s) {
	case ExecutorDirect:
		return ExecutorDirect, nil
	case ExecutorJava:
		return ExecutorJava, nil
	default:
		return "", zerr.With(ErrUnsupportedExecutor, "executor", s)
	}
}

// Discovery holds the parameters forwarded to the discovery/execution engine.
// Tag expressions and parameters are opaque strings, forwarded unvalidated.
// Exactly one of the selector kinds is populated.
type Discovery struct {
	includedTagExpressions []string
	parameters             map[string]string
	classpathRoots         []string
	modules                []string
}

// IncludedTagExpressions returns the OR-combined tag expressions.
func (d Discovery) IncludedTagExpressions() []string {
	return slices.Clone(d.includedTagExpressions)
}

// Parameters returns the opaque engine configuration parameters.
func (d Discovery) Parameters() map[string]string {
	return maps.Clone(d.parameters)
}

// ClasspathRoots returns the classpath-root selectors, empty in modular modes.
func (d Discovery) ClasspathRoots() []string {
	return slices.Clone(d.classpathRoots)
}

// Modules returns the module selectors, empty in classic mode.
func (d Discovery) Modules() []string {
	return slices.Clone(d.modules)
}

// Configuration is the immutable snapshot of all execution parameters for one
// launch. It is owned exclusively by the invocation that built it.
type Configuration struct {
	dryRun          bool
	targetDirectory string
	timeoutSeconds  int
	executor        ExecutorKind
	discovery       Discovery
}

// DryRun reports whether tests are discovered but not executed.
func (c *Configuration) DryRun() bool { return c.dryRun }

// TargetDirectory returns the writable directory for logs and reports.
func (c *Configuration) TargetDirectory() string { return c.targetDirectory }

// TimeoutSeconds returns the global wall-clock budget.
func (c *Configuration) TimeoutSeconds() int { return c.timeoutSeconds }

// Executor returns the execution strategy kind.
func (c *Configuration) Executor() ExecutorKind { return c.executor }

// Discovery returns the discovery request parameters.
func (c *Configuration) Discovery() Discovery { return c.discovery }

// ConfigurationBuilder assembles a Configuration. Build validates the
// exactly-one-selector invariant; violating it signals a defect in the caller.
type ConfigurationBuilder struct {
	cfg       Configuration
	discovery *DiscoveryBuilder
}

// NewConfigurationBuilder returns a builder with defaults applied.
func NewConfigurationBuilder() *ConfigurationBuilder {
	b := &ConfigurationBuilder{
		cfg: Configuration{
			timeoutSeconds: DefaultTimeoutSeconds,
			executor:       ExecutorDirect,
		},
	}
	b.discovery = &DiscoveryBuilder{parent: b}
	return b
}

// DryRun toggles discovery-only mode.
func (b *ConfigurationBuilder) DryRun(dryRun bool) *ConfigurationBuilder {
	b.cfg.dryRun = dryRun
	return b
}

// TargetDirectory sets the directory for logs and reports.
func (b *ConfigurationBuilder) TargetDirectory(dir string) *ConfigurationBuilder {
	b.cfg.targetDirectory = dir
	return b
}

// TimeoutSeconds sets the global wall-clock budget.
func (b *ConfigurationBuilder) TimeoutSeconds(seconds int) *ConfigurationBuilder {
	b.cfg.timeoutSeconds = seconds
	return b
}

// Executor sets the execution strategy kind.
func (b *ConfigurationBuilder) Executor(kind ExecutorKind) *ConfigurationBuilder {
	b.cfg.executor = kind
	return b
}

// Discovery enters the nested discovery sub-builder.
func (b *ConfigurationBuilder) Discovery() *DiscoveryBuilder {
	return b.discovery
}

// Build validates and returns the immutable Configuration.
func (b *ConfigurationBuilder) Build() (*Configuration, error) {
	if b.cfg.timeoutSeconds <= 0 {
		return nil, zerr.With(ErrInvalidTimeout, "timeout_seconds", b.cfg.timeoutSeconds)
	}

	d := &b.discovery.d
	hasRoots := len(d.classpathRoots) > 0
	hasModules := len(d.modules) > 0
	if hasRoots == hasModules {
		return nil, zerr.With(zerr.With(ErrSelectorConflict,
			"classpath_roots", len(d.classpathRoots)),
			"modules", len(d.modules))
	}

	cfg := b.cfg
	cfg.discovery = Discovery{
		includedTagExpressions: slices.Clone(d.includedTagExpressions),
		parameters:             maps.Clone(d.parameters),
		classpathRoots:         slices.Clone(d.classpathRoots),
		modules:                slices.Clone(d.modules),
	}
	return &cfg, nil
}

// DiscoveryBuilder collects the discovery parameters for a Configuration.
type DiscoveryBuilder struct {
	parent *ConfigurationBuilder
	d      Discovery
}

// IncludedTagExpressions sets the tag expressions to include (OR semantics).
func (b *DiscoveryBuilder) IncludedTagExpressions(tags []string) *DiscoveryBuilder {
	b.d.includedTagExpressions = slices.Clone(tags)
	return b
}

// Parameters sets the opaque engine configuration parameters.
func (b *DiscoveryBuilder) Parameters(params map[string]string) *DiscoveryBuilder {
	b.d.parameters = maps.Clone(params)
	return b
}

// ClasspathRoots selects classpath-based discovery.
func (b *DiscoveryBuilder) ClasspathRoots(roots []string) *DiscoveryBuilder {
	b.d.classpathRoots = slices.Clone(roots)
	return b
}

// SelectModules selects module-based discovery.
func (b *DiscoveryBuilder) SelectModules(modules []string) *DiscoveryBuilder {
	b.d.modules = slices.Clone(modules)
	return b
}

// End returns to the parent builder.
func (b *DiscoveryBuilder) End() *ConfigurationBuilder {
	return b.parent
}
