package telemetry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/zerr"
	"go.velt.ch/jplaunch/internal/adapters/telemetry"
)

func TestOTelTracer_SpanLifecycle(t *testing.T) {
	telemetry.Setup()
	tracer := telemetry.NewOTelTracer("jplaunch-test")

	ctx, span := tracer.Start(t.Context(), "launch.execute")
	require.NotNil(t, ctx)
	require.NotNil(t, span)

	span.SetAttribute("executor", "DIRECT")
	span.RecordError(zerr.New("boom"))
	span.RecordError(nil)
	span.End()
}

func TestNoopTracer(t *testing.T) {
	tracer := telemetry.NewNoopTracer()

	ctx, span := tracer.Start(t.Context(), "launch.classify")
	assert.Equal(t, t.Context(), ctx)

	span.SetAttribute("mode", "CLASSIC")
	span.RecordError(nil)
	span.End()
}
