package exporters

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// TestNewTracingExporter_ByName verifies each supported tracing exporter name.
func TestNewTracingExporter_ByName(t *testing.T) {
	// Endpoint-free exporters only; otlp and jaeger need env config.
	for _, name := range []string{"stdout", "none", ""} {
		exp, err := NewTracingExporter(context.Background(), name)
		if err != nil {
			t.Fatalf("NewTracingExporter(%q) error = %v", name, err)
		}
		if exp == nil {
			t.Fatalf("NewTracingExporter(%q) returned nil exporter", name)
		}
	}
}

// TestNewMetricsReader_ByName verifies each supported metrics exporter name.
func TestNewMetricsReader_ByName(t *testing.T) {
	for _, name := range []string{"stdout", "prometheus", "none", ""} {
		reader, err := NewMetricsReader(context.Background(), name)
		if err != nil {
			t.Fatalf("NewMetricsReader(%q) error = %v", name, err)
		}
		if reader == nil {
			t.Fatalf("NewMetricsReader(%q) returned nil reader", name)
		}
	}
}

// TestUnknownNamesRejected verifies both factories reject unknown names.
func TestUnknownNamesRejected(t *testing.T) {
	if _, err := NewTracingExporter(context.Background(), "zipkin"); err == nil {
		t.Error("expected error for unknown tracing exporter name")
	} else if !strings.Contains(strings.ToLower(err.Error()), "unknown") {
		t.Errorf("expected error to mention 'unknown', got: %v", err)
	}

	if _, err := NewMetricsReader(context.Background(), "statsd"); err == nil {
		t.Error("expected error for unknown metrics exporter name")
	} else if !strings.Contains(strings.ToLower(err.Error()), "unknown") {
		t.Errorf("expected error to mention 'unknown', got: %v", err)
	}
}

// TestOtlp_RequiresEndpoint verifies OTLP fails without an endpoint env var.
func TestOtlp_RequiresEndpoint(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	t.Setenv("OTEL_EXPORTER_OTLP_TRACES_ENDPOINT", "")
	t.Setenv("OTEL_EXPORTER_OTLP_METRICS_ENDPOINT", "")

	_, err := NewTracingExporter(context.Background(), "otlp")
	if !errors.Is(err, ErrEndpointNotConfigured) {
		t.Errorf("NewTracingExporter(otlp) error = %v, want %v", err, ErrEndpointNotConfigured)
	}

	_, err = NewMetricsReader(context.Background(), "otlp")
	if !errors.Is(err, ErrEndpointNotConfigured) {
		t.Errorf("NewMetricsReader(otlp) error = %v, want %v", err, ErrEndpointNotConfigured)
	}
}

// TestOtlp_SignalSpecificEndpoint verifies per-signal endpoint vars are honored.
func TestOtlp_SignalSpecificEndpoint(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	t.Setenv("OTEL_EXPORTER_OTLP_TRACES_ENDPOINT", "http://localhost:4317")

	exp, err := NewTracingExporter(context.Background(), "otlp")
	if err != nil {
		t.Fatalf("NewTracingExporter(otlp) error = %v", err)
	}
	if exp == nil {
		t.Fatal("expected non-nil exporter")
	}
}

// TestOtlp_SharedEndpoint verifies the shared endpoint var is honored.
func TestOtlp_SharedEndpoint(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "http://localhost:4317")

	exp, err := NewTracingExporter(context.Background(), "otlp")
	if err != nil {
		t.Fatalf("NewTracingExporter(otlp) error = %v", err)
	}
	if exp == nil {
		t.Fatal("expected non-nil exporter")
	}

	reader, err := NewMetricsReader(context.Background(), "otlp")
	if err != nil {
		t.Fatalf("NewMetricsReader(otlp) error = %v", err)
	}
	if reader == nil {
		t.Fatal("expected non-nil reader")
	}
}

// TestJaeger_RequiresEndpoint verifies Jaeger fails without an endpoint env var.
func TestJaeger_RequiresEndpoint(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_JAEGER_ENDPOINT", "")

	_, err := NewTracingExporter(context.Background(), "jaeger")
	if !errors.Is(err, ErrEndpointNotConfigured) {
		t.Errorf("NewTracingExporter(jaeger) error = %v, want %v", err, ErrEndpointNotConfigured)
	}
}

// TestJaeger_WithEndpoint verifies Jaeger with endpoint env succeeds.
func TestJaeger_WithEndpoint(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_JAEGER_ENDPOINT", "http://localhost:4317")

	exp, err := NewTracingExporter(context.Background(), "jaeger")
	if err != nil {
		t.Fatalf("NewTracingExporter(jaeger) error = %v", err)
	}
	if exp == nil {
		t.Fatal("expected non-nil exporter")
	}
}
