// Package obs sets up tracing for layout operations. Export is opt-in: with
// no OTLP endpoint configured the rest of the program sees a nil *Tracing
// and pays nothing.
package obs

import (
	"context"
	"os"

	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// Tracing owns the tracer provider for the process.
type Tracing struct {
	provider *sdktrace.TracerProvider
	tracer   oteltrace.Tracer
}

// Setup creates an OTLP trace exporter if OTEL_EXPORTER_OTLP_ENDPOINT is
// set. Returns (nil, nil) when the endpoint is not configured.
func Setup(ctx context.Context) (*Tracing, error) {
	endpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if endpoint == "" {
		return nil, nil
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}

	serviceName := os.Getenv("OTEL_SERVICE_NAME")
	if serviceName == "" {
		serviceName = "voxview"
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String(serviceName),
		)),
	)

	return &Tracing{
		provider: provider,
		tracer:   provider.Tracer("voxview/layout"),
	}, nil
}

// Tracer returns the layout tracer, or nil when tracing is disabled. A nil
// tracer is accepted by apply.New, which substitutes a no-op.
func (t *Tracing) Tracer() oteltrace.Tracer {
	if t == nil {
		return nil
	}
	return t.tracer
}

// Shutdown flushes and closes the exporter. Safe on nil.
func (t *Tracing) Shutdown(ctx context.Context) error {
	if t == nil {
		return nil
	}
	return t.provider.Shutdown(ctx)
}
