package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/varcss/internal/adapters/telemetry"
)

func TestOTelTracer_Span(t *testing.T) {
	tracer := telemetry.NewOTelTracer("varcss-test")

	ctx, span := tracer.Start(context.Background(), "export")
	assert.NotNil(t, ctx)

	assert.NotPanics(t, func() {
		span.SetAttribute("collection", "Primitives")
		span.SetAttribute("variables", 12)
		span.SetAttribute("override", true)
		span.SetAttribute("ratio", 0.5)
		span.SetAttribute("modes", []string{"Light", "Dark"})
		span.SetAttribute("other", struct{ A int }{1})
		span.RecordError(nil)
		span.RecordError(errors.New("boom"))
		span.End()
	})
}

func TestNoOpTracer(t *testing.T) {
	ctx := context.Background()
	got, span := telemetry.NewNoOpTracer().Start(ctx, "noop")

	assert.Equal(t, ctx, got)
	assert.NotPanics(t, func() {
		span.SetAttribute("k", "v")
		span.RecordError(errors.New("boom"))
		span.End()
	})
}
