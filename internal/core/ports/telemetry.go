package ports

import (
	"context"
	"io"

	"go.trai.ch/varcss/internal/core/domain"
)

//go:generate mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Telemetry records the stages of a long-running operation as vertices.
type Telemetry interface {
	// Record starts a new vertex with the given name.
	Record(ctx context.Context, name string) (context.Context, Vertex)
	// Close flushes the recording.
	Close() error
}

// Vertex is a single recorded stage.
type Vertex interface {
	// Stdout returns a writer for regular stage output.
	Stdout() io.Writer
	// Stderr returns a writer for stage diagnostics.
	Stderr() io.Writer
	// Log writes a leveled message to the stage output.
	Log(level domain.LogLevel, msg string)
	// Complete marks the stage as finished, failed if err is non-nil.
	Complete(err error)
}

// Tracer is the entry point for creating spans around whole operations.
type Tracer interface {
	// Start creates a new span.
	Start(ctx context.Context, name string) (context.Context, Span)
}

// Span represents a unit of work.
type Span interface {
	// End completes the span.
	End()
	// RecordError records an error for the span.
	RecordError(err error)
	// SetAttribute adds a key-value pair to the span.
	SetAttribute(key string, value any)
}
