// Package telemetry wires OpenTelemetry tracing for analysis runs.
package telemetry

import (
	"context"
	"os"
	"runtime"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const (
	serviceName    = "lorcana"
	serviceVersion = "0.1.0"

	// EndpointEnv enables export when set. The exporter reads the rest of the OTEL_* variables itself.
	EndpointEnv = "OTEL_EXPORTER_OTLP_ENDPOINT"
)

// Enabled reports whether an OTLP endpoint is configured.
func Enabled() bool {
	return os.Getenv(EndpointEnv) != ""
}

// Setup installs a global tracer provider exporting over OTLP HTTP. Extra
// attributes describe the analysis (strategy, mode, seed) on every exported span.
func Setup(ctx context.Context, extra ...attribute.KeyValue) (shutdown func(context.Context) error, err error) {
	exporter, err := otlptracehttp.New(ctx)
	if err != nil {
		return nil, err
	}

	res, err := resource.New(ctx, resource.WithAttributes(Resource(extra...)...))
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}

// Resource lists the process attributes followed by extra.
func Resource(extra ...attribute.KeyValue) []attribute.KeyValue {
	attrs := []attribute.KeyValue{
		attribute.String("service.name", serviceName),
		attribute.String("service.version", serviceVersion),
		attribute.String("host.name", hostname()),
		attribute.String("os.type", runtime.GOOS),
		attribute.String("process.runtime.version", runtime.Version()),
	}
	return append(attrs, extra...)
}

// AnalysisAttributes tag a process with the configuration it analyses.
func AnalysisAttributes(strategy, mode string, seed uint64) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String("lorcana.strategy", strategy),
		attribute.String("lorcana.mode", mode),
		attribute.Int64("lorcana.seed", int64(seed)),
	}
}

func RunAttributes(runID, strategy, mode string) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String("run_id", runID),
		attribute.String("strategy", strategy),
		attribute.String("mode", mode),
	}
}

func TurnAttributes(turn int, player string, generated, score, anomalies int) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.Int("turn", turn),
		attribute.String("player", player),
		attribute.Int("paths_generated", generated),
		attribute.Int("score", score),
		attribute.Int("anomalies", anomalies),
	}
}

// Tracer returns a named tracer for a component.
func Tracer(name string) trace.Tracer {
	return otel.GetTracerProvider().Tracer(serviceName + "/" + name)
}

func NoopTracer() trace.Tracer {
	return noop.NewTracerProvider().Tracer(serviceName + "/noop")
}

func hostname() string {
	name, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return name
}
