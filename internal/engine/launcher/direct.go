package launcher

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.trai.ch/zerr"
	"go.velt.ch/jplaunch/internal/core/domain"
	"go.velt.ch/jplaunch/internal/core/ports"
)

// Direct runs the engine in-process on a single bounded worker. The worker is
// asked to stop when the global timeout fires, but a non-cooperating engine
// may keep its goroutine alive until the process exits.
type Direct struct {
	isolator *Isolator
	logger   ports.Logger
}

// NewDirect creates the in-process execution strategy.
func NewDirect(isolator *Isolator, logger ports.Logger) *Direct {
	return &Direct{isolator: isolator, logger: logger}
}

var _ ExecutionStrategy = (*Direct)(nil)

type outcome struct {
	result int
	err    error
}

// Execute runs the launch on a worker goroutine and waits at most the
// configured number of seconds for it to finish.
func (s *Direct) Execute(ctx context.Context, cfg *domain.Configuration, driver *Driver) (int, error) {
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	done := make(chan outcome, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- outcome{err: zerr.With(
					errors.Join(domain.ErrExecutionSetup, fmt.Errorf("engine panic: %v", r)),
					"panic", fmt.Sprint(r))}
			}
		}()
		result, err := s.isolator.Evaluate(runCtx, cfg, driver)
		done <- outcome{result: result, err: err}
	}()

	timer := time.NewTimer(time.Duration(cfg.TimeoutSeconds()) * time.Second)
	defer timer.Stop()

	select {
	case o := <-done:
		return o.result, o.err
	case <-ctx.Done():
		return 0, ctx.Err()
	case <-timer.C:
		s.logger.Warn(fmt.Sprintf("Global timeout of %d second(s) reached.", cfg.TimeoutSeconds()))
		return 0, domain.ErrGlobalTimeout
	}
}
