package telemetry

import (
	"context"
	"os"
	"strings"
	"testing"
)

func TestConfigureEnvWithoutKey(t *testing.T) {
	t.Setenv(EnvAPIKey, "")
	if ConfigureEnv() {
		t.Error("ConfigureEnv() = true without an API key")
	}
}

func TestConfigureEnvBuildsHeaders(t *testing.T) {
	t.Setenv(EnvAPIKey, "secret")
	t.Setenv(EnvDataset, "")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")

	if !ConfigureEnv() {
		t.Fatal("ConfigureEnv() = false with an API key")
	}
	headers := os.Getenv("OTEL_EXPORTER_OTLP_HEADERS")
	if !strings.Contains(headers, "x-honeycomb-team=secret") {
		t.Errorf("headers = %q, missing team", headers)
	}
	if !strings.Contains(headers, "x-honeycomb-dataset="+serviceName) {
		t.Errorf("headers = %q, missing default dataset", headers)
	}
	if got := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"); got != honeycombEndpoint {
		t.Errorf("endpoint = %q, want %q", got, honeycombEndpoint)
	}
}

func TestTracerWithoutSetup(t *testing.T) {
	_, span := Tracer("test").Start(context.Background(), "noop")
	defer span.End()
	if span.SpanContext().IsValid() {
		t.Error("span should be a no-op before Setup")
	}
}
