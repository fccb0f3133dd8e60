package launcher

import (
	"context"
	"fmt"

	"go.velt.ch/jplaunch/internal/core/domain"
	"go.velt.ch/jplaunch/internal/core/ports"
)

// Isolator brokers between the prepared launch and the discovery/execution
// engine. The engine stays opaque: the isolator hands it plain data and maps
// its summary onto the launch result.
type Isolator struct {
	engine ports.TestEngine
	logger ports.Logger
}

// NewIsolator creates a new Isolator.
func NewIsolator(engine ports.TestEngine, logger ports.Logger) *Isolator {
	return &Isolator{engine: engine, logger: logger}
}

// Evaluate runs one launch. In dry-run mode tests are discovered but not
// executed and the result is always zero. Otherwise the result is the number
// of failed tests and containers.
func (i *Isolator) Evaluate(ctx context.Context, cfg *domain.Configuration, driver *Driver) (int, error) {
	req := launchRequest(cfg, driver)

	if cfg.DryRun() {
		summary, err := i.engine.Discover(ctx, req)
		if err != nil {
			return 0, err
		}
		i.logger.Info(fmt.Sprintf("Dry-run: discovered %d test(s), nothing executed.", summary.TestsFound))
		return 0, nil
	}

	summary, err := i.engine.Execute(ctx, req)
	if err != nil {
		return 0, err
	}
	return summary.FailureCount(), nil
}

func launchRequest(cfg *domain.Configuration, driver *Driver) ports.LaunchRequest {
	discovery := cfg.Discovery()
	return ports.LaunchRequest{
		ClasspathRoots:         discovery.ClasspathRoots(),
		Modules:                discovery.Modules(),
		IncludedTagExpressions: discovery.IncludedTagExpressions(),
		Parameters:             discovery.Parameters(),
		Paths:                  driver.Paths(),
		ReportsDirectory:       cfg.TargetDirectory(),
	}
}
