package observability

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	promclient "github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/exporters/prometheus"
	otelmetric "go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "placement-workers"

// active is the instance RecordJob reports to. It is set by New.
var active atomic.Pointer[Observability]

type Config struct {
	ServiceName    string
	JaegerEndpoint string
	// Registerer defaults to the global Prometheus registry.
	Registerer promclient.Registerer
}

type Observability struct {
	meterProvider  *metric.MeterProvider
	tracerProvider *sdktrace.TracerProvider
	jobCounter     otelmetric.Int64Counter
	jobDuration    otelmetric.Float64Histogram
}

// New wires an OTel meter provider onto Prometheus and, when a Jaeger endpoint
// is configured, a batching tracer provider. Both are installed globally.
func New(cfg Config) (*Observability, error) {
	if cfg.Registerer == nil {
		cfg.Registerer = promclient.DefaultRegisterer
	}
	res := resource.NewSchemaless(attribute.String("service.name", cfg.ServiceName))

	exporter, err := prometheus.New(prometheus.WithRegisterer(cfg.Registerer))
	if err != nil {
		return nil, fmt.Errorf("prometheus exporter: %w", err)
	}
	mp := metric.NewMeterProvider(metric.WithReader(exporter), metric.WithResource(res))
	otel.SetMeterProvider(mp)

	tpOpts := []sdktrace.TracerProviderOption{sdktrace.WithResource(res)}
	if cfg.JaegerEndpoint != "" {
		jexp, err := jaeger.New(jaeger.WithCollectorEndpoint(jaeger.WithEndpoint(cfg.JaegerEndpoint)))
		if err != nil {
			return nil, fmt.Errorf("jaeger exporter: %w", err)
		}
		tpOpts = append(tpOpts, sdktrace.WithBatcher(jexp))
	}
	tp := sdktrace.NewTracerProvider(tpOpts...)
	otel.SetTracerProvider(tp)

	meter := mp.Meter(instrumentationName)
	jobCounter, _ := meter.Int64Counter(
		"jobs.processed",
		otelmetric.WithDescription("Number of jobs processed"),
	)
	jobDuration, _ := meter.Float64Histogram(
		"jobs.duration",
		otelmetric.WithDescription("Job processing duration"),
		otelmetric.WithUnit("ms"),
	)

	o := &Observability{
		meterProvider:  mp,
		tracerProvider: tp,
		jobCounter:     jobCounter,
		jobDuration:    jobDuration,
	}
	active.Store(o)
	return o, nil
}

// StartSpan starts a span on the global tracer. It is a no-op until New has run.
func StartSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return otel.Tracer(instrumentationName).Start(ctx, name, trace.WithAttributes(attrs...))
}

// RecordJob counts one finished job on the OTel instruments. status is
// "completed" or the error code the job failed with. It does nothing before New.
func RecordJob(ctx context.Context, taskType, status string, duration time.Duration) {
	if o := active.Load(); o != nil {
		o.recordJob(ctx, taskType, status, duration)
	}
}

func (o *Observability) recordJob(ctx context.Context, taskType, status string, duration time.Duration) {
	attrs := otelmetric.WithAttributes(
		attribute.String("task_type", taskType),
		attribute.String("status", status),
	)
	if o.jobCounter != nil {
		o.jobCounter.Add(ctx, 1, attrs)
	}
	if o.jobDuration != nil {
		o.jobDuration.Record(ctx, float64(duration.Milliseconds()), attrs)
	}
}

func (o *Observability) Shutdown(ctx context.Context) error {
	active.CompareAndSwap(o, nil)
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var firstErr error
	if o.tracerProvider != nil {
		if err := o.tracerProvider.Shutdown(ctx); err != nil {
			firstErr = err
		}
	}
	if o.meterProvider != nil {
		if err := o.meterProvider.Shutdown(ctx); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
