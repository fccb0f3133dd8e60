// Package telemetry implements the tracer port on OpenTelemetry.
package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.velt.ch/jplaunch/internal/core/ports"
)

// OTelTracer implements ports.Tracer using OpenTelemetry.
type OTelTracer struct {
	tracer trace.Tracer
}

// NewOTelTracer creates a tracer with the given instrumentation name.
func NewOTelTracer(name string) *OTelTracer {
	return &OTelTracer{tracer: otel.Tracer(name)}
}

// Setup installs an SDK tracer provider as the global provider so spans are
// recorded even when no exporter is configured.
func Setup() {
	otel.SetTracerProvider(sdktrace.NewTracerProvider())
}

// Start begins a span for one launch phase.
func (t *OTelTracer) Start(ctx context.Context, name string) (context.Context, ports.Span) {
	ctx, span := t.tracer.Start(ctx, name)
	return ctx, &otelSpan{span: span}
}

type otelSpan struct {
	span trace.Span
}

func (s *otelSpan) SetAttribute(key, value string) {
	s.span.SetAttributes(attribute.String(key, value))
}

func (s *otelSpan) RecordError(err error) {
	if err == nil {
		return
	}
	s.span.RecordError(err)
	s.span.SetStatus(codes.Error, err.Error())
}

func (s *otelSpan) End() {
	s.span.End()
}

var _ ports.Tracer = (*OTelTracer)(nil)
