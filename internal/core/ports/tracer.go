package ports

import "context"

// Span is one traced phase of a launch.
//
//go:generate mockgen -source=tracer.go -destination=mocks/mock_tracer.go -package=mocks
type Span interface {
	// SetAttribute attaches a key/value pair to the span.
	SetAttribute(key, value string)
	// RecordError records err on the span. A nil err is ignored.
	RecordError(err error)
	// End completes the span.
	End()
}

// Tracer creates spans around the launch phases.
type Tracer interface {
	Start(ctx context.Context, name string) (context.Context, Span)
}
