// Package otel wires optional OpenTelemetry tracing for portal processes.
package otel

import (
	"context"
	"os"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

const (
	endpointEnv = "TRADELANE_OTEL_ENDPOINT"
	enabledEnv  = "TRADELANE_OTEL_ENABLED"
)

func noopShutdown(context.Context) error { return nil }

// collectorEndpoint returns the configured OTLP endpoint, or "" when tracing
// is disabled. Tracing is opt-in: it requires an endpoint and can be vetoed
// with TRADELANE_OTEL_ENABLED=false.
func collectorEndpoint() string {
	if strings.EqualFold(os.Getenv(enabledEnv), "false") {
		return ""
	}
	return strings.TrimSpace(os.Getenv(endpointEnv))
}

// Setup initialises tracing for the given service and registers the global
// provider. When tracing is not configured it returns a no-op shutdown and
// registers nothing. The returned shutdown flushes pending spans and should
// be deferred by the caller.
func Setup(ctx context.Context, serviceName string) (shutdown func(context.Context) error, err error) {
	endpoint := collectorEndpoint()
	if endpoint == "" {
		return noopShutdown, nil
	}

	exporter, err := otlptracehttp.New(ctx, otlptracehttp.WithEndpointURL(endpoint))
	if err != nil {
		return noopShutdown, err
	}

	res, err := resource.New(ctx, resource.WithAttributes(semconv.ServiceName(serviceName)))
	if err != nil {
		return noopShutdown, err
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)

	otel.SetTracerProvider(provider)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return provider.Shutdown, nil
}
