package telemetry

import (
	"context"

	"go.velt.ch/jplaunch/internal/core/ports"
)

// NoopTracer discards all spans.
type NoopTracer struct{}

// NewNoopTracer creates a tracer that records nothing.
func NewNoopTracer() *NoopTracer {
	return &NoopTracer{}
}

// Start returns the context unchanged and a span that does nothing.
func (t *NoopTracer) Start(ctx context.Context, _ string) (context.Context, ports.Span) {
	return ctx, noopSpan{}
}

type noopSpan struct{}

func (noopSpan) SetAttribute(_, _ string) {}
func (noopSpan) RecordError(_ error)      {}
func (noopSpan) End()                     {}

var _ ports.Tracer = (*NoopTracer)(nil)
