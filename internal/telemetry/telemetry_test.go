package telemetry

import (
	"context"
	"testing"
)

func TestEnabled(t *testing.T) {
	t.Setenv(EndpointEnv, "")
	if Enabled() {
		t.Error("Enabled() = true with no endpoint")
	}

	t.Setenv(EndpointEnv, "http://localhost:4318")
	if !Enabled() {
		t.Error("Enabled() = false with endpoint set")
	}
}

func TestNoopTracerRecordsNothing(t *testing.T) {
	_, span := NoopTracer().Start(context.Background(), "test")
	defer span.End()

	if span.IsRecording() {
		t.Error("noop span should not record")
	}
	if span.SpanContext().IsValid() {
		t.Error("noop span should not have a valid span context")
	}
}
