package observability

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/comfforts/logger"
	promclient "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
)

const DEFAULT_METRICS_HANDLE = "/metrics"

type InitOptions struct {
	ServiceName   string
	MetricsAddr   string // e.g. ":9464", "" skips the metrics endpoint
	OTLPEndpoint  string // e.g. "otel-collector:4317", "" skips the trace exporter
	MetricsHandle string // defaults to /metrics
}

// Telemetry holds the providers set up by Init.
type Telemetry struct {
	MeterProvider  *sdkmetric.MeterProvider
	TracerProvider *sdktrace.TracerProvider
	Registry       *promclient.Registry

	// MetricsAddr is the bound address of the metrics endpoint, empty when not serving.
	MetricsAddr string

	server *http.Server
}

// Init installs a Prometheus backed meter provider and, when an OTLP endpoint is given,
// a batching tracer provider as the otel globals.
func Init(ctx context.Context, opt InitOptions) (*Telemetry, error) {
	l, err := logger.LoggerFromContext(ctx)
	if err != nil {
		l = logger.GetSlogLogger()
	}

	host, _ := os.Hostname()
	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceNameKey.String(opt.ServiceName),
			semconv.ServiceInstanceIDKey.String(host),
		),
	)
	if err != nil {
		l.Error("failed to build otel resource", "error", err.Error())
		return nil, err
	}

	// --- Metrics: Prometheus exporter on a private registry ---
	reg := promclient.NewRegistry()
	promExp, err := prometheus.New(prometheus.WithRegisterer(reg))
	if err != nil {
		l.Error("failed to create Prometheus exporter", "error", err.Error())
		return nil, err
	}
	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(promExp),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(mp)

	tel := &Telemetry{
		MeterProvider: mp,
		Registry:      reg,
	}

	if opt.MetricsAddr != "" {
		if err := tel.serveMetrics(opt, l); err != nil {
			_ = mp.Shutdown(ctx)
			return nil, err
		}
	}

	// --- Traces: OTLP (via collector or Jaeger OTLP) ---
	if opt.OTLPEndpoint != "" {
		exp, err := otlptracegrpc.New(ctx, otlptracegrpc.WithEndpoint(opt.OTLPEndpoint), otlptracegrpc.WithInsecure())
		if err != nil {
			l.Error("failed to create OTLP trace exporter", "error", err.Error())
			_ = tel.Shutdown(ctx)
			return nil, err
		}
		tel.TracerProvider = sdktrace.NewTracerProvider(
			sdktrace.WithBatcher(exp),
			sdktrace.WithResource(res),
		)
		otel.SetTracerProvider(tel.TracerProvider)
		otel.SetTextMapPropagator(propagation.TraceContext{})
	}

	return tel, nil
}

func (t *Telemetry) serveMetrics(opt InitOptions, l logger.Logger) error {
	handle := opt.MetricsHandle
	if handle == "" {
		handle = DEFAULT_METRICS_HANDLE
	}

	ln, err := net.Listen("tcp", opt.MetricsAddr)
	if err != nil {
		l.Error("failed to listen for metrics", "address", opt.MetricsAddr, "error", err.Error())
		return err
	}

	mux := http.NewServeMux()
	mux.Handle(handle, promhttp.HandlerFor(t.Registry, promhttp.HandlerOpts{Registry: t.Registry}))
	t.server = &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	t.MetricsAddr = ln.Addr().String()

	go func() {
		l.Info("Prometheus metrics", "address", t.MetricsAddr, "handle", handle)
		if err := t.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			l.Error("metrics server error", "error", err.Error())
		}
	}()
	return nil
}

// Shutdown flushes and stops everything Init started.
func (t *Telemetry) Shutdown(ctx context.Context) error {
	var errs []error
	if t.server != nil {
		errs = append(errs, t.server.Shutdown(ctx))
	}
	if t.TracerProvider != nil {
		errs = append(errs, t.TracerProvider.Shutdown(ctx))
	}
	errs = append(errs, t.MeterProvider.Shutdown(ctx))
	return errors.Join(errs...)
}
