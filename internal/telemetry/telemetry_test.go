package telemetry

import (
	"context"
	"testing"

	"github.com/samdwyer/horizon/internal/config"
)

func TestSetupDisabledIsNoop(t *testing.T) {
	shutdown, err := Setup(context.Background(), config.TelemetryConfig{Enabled: false})
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	defer shutdown(context.Background())

	_, span := Tracer("test").Start(context.Background(), "turn.resolve")
	defer span.End()
	if span.SpanContext().IsValid() {
		t.Error("disabled telemetry produced a recording span")
	}
}
