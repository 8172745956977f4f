package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
)

var (
	promReaderFactory = prometheusComponents
	otlpReaderFactory = buildOTLPReader
	instrumentFactory = newOtelInstruments
)

// TelemetryConfig controls how metrics are exported.
type TelemetryConfig struct {
	Enabled      bool
	Port         string
	ServiceName  string
	OtlpEndpoint string
	OtlpInsecure bool
}

// Setup configures OpenTelemetry metrics with a Prometheus exporter and
// optional OTLP exporter. It returns a Recorder, the Prometheus HTTP
// handler, and a shutdown function.
func Setup(ctx context.Context, cfg TelemetryConfig) (*Recorder, http.Handler, func(context.Context) error, error) {
	if !cfg.Enabled {
		return NewRecorder(), nil, func(context.Context) error { return nil }, nil
	}

	if cfg.ServiceName == "" {
		cfg.ServiceName = "roto-auction-service"
	}

	promReader, promHandler, err := promReaderFactory()
	if err != nil {
		return nil, nil, nil, err
	}

	opts := []sdkmetric.Option{sdkmetric.WithReader(promReader)}

	if cfg.OtlpEndpoint != "" {
		otlpReader, err := otlpReaderFactory(ctx, cfg.OtlpEndpoint, cfg.OtlpInsecure)
		if err != nil {
			return nil, nil, nil, err
		}
		opts = append(opts, sdkmetric.WithReader(otlpReader))
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(semconv.ServiceName(cfg.ServiceName)),
	)
	if err != nil {
		return nil, nil, nil, err
	}

	opts = append(opts, sdkmetric.WithResource(res))

	provider := sdkmetric.NewMeterProvider(opts...)

	otelInst, err := instrumentFactory(provider)
	if err != nil {
		return nil, nil, nil, err
	}

	rec := newRecorder(otelInst)
	shutdown := func(c context.Context) error {
		return provider.Shutdown(c)
	}

	return rec, promHandler, shutdown, nil
}

func buildOTLPReader(ctx context.Context, endpoint string, insecure bool) (sdkmetric.Reader, error) {
	otlpOpts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(endpoint)}
	if insecure {
		otlpOpts = append(otlpOpts, otlpmetrichttp.WithInsecure())
	}
	otlpExp, err := otlpmetrichttp.New(ctx, otlpOpts...)
	if err != nil {
		return nil, err
	}
	return sdkmetric.NewPeriodicReader(otlpExp, sdkmetric.WithInterval(15*time.Second)), nil
}

func prometheusComponents() (sdkmetric.Reader, http.Handler, error) {
	reg := prometheus.NewRegistry()
	promExp, err := promexporter.New(promexporter.WithRegisterer(reg))
	if err != nil {
		return nil, nil, err
	}
	return promExp, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}), nil
}

type otelInstruments struct {
	ctx              context.Context
	meter            metric.Meter
	requests         metric.Int64Counter
	requestLatencyMs metric.Float64Histogram
	runs             metric.Int64Counter
	runErrors        metric.Int64Counter
	runLatencyMs     metric.Float64Histogram
	runPoolSize      metric.Int64Histogram
	draftPicks       metric.Int64Counter
	autosaveCycles   metric.Int64Counter
	autosaveErrors   metric.Int64Counter
	autosaveLatency  metric.Float64Histogram
}

func newOtelInstruments(provider metric.MeterProvider) (*otelInstruments, error) {
	meter := provider.Meter("roto-auction-service")
	ctx := context.Background()

	requests, err := meter.Int64Counter("http_requests_total")
	if err != nil {
		return nil, err
	}
	requestLatency, err := meter.Float64Histogram("http_request_duration_ms")
	if err != nil {
		return nil, err
	}
	runs, err := meter.Int64Counter("valuation_runs_total")
	if err != nil {
		return nil, err
	}
	runErrors, err := meter.Int64Counter("valuation_run_errors_total")
	if err != nil {
		return nil, err
	}
	runLatency, err := meter.Float64Histogram("valuation_run_duration_ms")
	if err != nil {
		return nil, err
	}
	runPoolSize, err := meter.Int64Histogram("valuation_pool_size")
	if err != nil {
		return nil, err
	}
	draftPicks, err := meter.Int64Counter("draft_picks_total")
	if err != nil {
		return nil, err
	}
	autosaveCycles, err := meter.Int64Counter("draft_autosave_cycles_total")
	if err != nil {
		return nil, err
	}
	autosaveErrors, err := meter.Int64Counter("draft_autosave_errors_total")
	if err != nil {
		return nil, err
	}
	autosaveLatency, err := meter.Float64Histogram("draft_autosave_duration_ms")
	if err != nil {
		return nil, err
	}

	return &otelInstruments{
		ctx:              ctx,
		meter:            meter,
		requests:         requests,
		requestLatencyMs: requestLatency,
		runs:             runs,
		runErrors:        runErrors,
		runLatencyMs:     runLatency,
		runPoolSize:      runPoolSize,
		draftPicks:       draftPicks,
		autosaveCycles:   autosaveCycles,
		autosaveErrors:   autosaveErrors,
		autosaveLatency:  autosaveLatency,
	}, nil
}

func (o *otelInstruments) recordHTTPRequest(method, path string, status int, duration time.Duration) {
	if o == nil {
		return
	}
	attrs := []attribute.KeyValue{
		attribute.String(AttrMethod, method),
		attribute.String(AttrPath, path),
		attribute.Int(AttrStatus, status),
	}
	o.addCounter(o.requests, 1, attrs...)
	o.recordFloat(o.requestLatencyMs, float64(duration.Milliseconds()), attrs...)
}

func (o *otelInstruments) recordValuationRun(duration time.Duration, poolSize int, err error) {
	if o == nil {
		return
	}
	o.addCounter(o.runs, 1)
	if err != nil {
		o.addCounter(o.runErrors, 1)
	}
	o.recordFloat(o.runLatencyMs, float64(duration.Milliseconds()))
	if o.runPoolSize != nil {
		o.runPoolSize.Record(o.ctx, int64(poolSize))
	}
}

func (o *otelInstruments) recordDraftPick(band string) {
	if o == nil {
		return
	}
	o.addCounter(o.draftPicks, 1, attribute.String(AttrBand, band))
}

func (o *otelInstruments) recordAutosave(duration time.Duration, err error) {
	if o == nil {
		return
	}
	o.addCounter(o.autosaveCycles, 1)
	if err != nil {
		o.addCounter(o.autosaveErrors, 1)
	}
	o.recordFloat(o.autosaveLatency, float64(duration.Milliseconds()))
}

func (o *otelInstruments) addCounter(c metric.Int64Counter, v int64, attrs ...attribute.KeyValue) {
	if c == nil {
		return
	}
	c.Add(o.ctx, v, metric.WithAttributes(attrs...))
}

func (o *otelInstruments) recordFloat(h metric.Float64Histogram, v float64, attrs ...attribute.KeyValue) {
	if h == nil {
		return
	}
	h.Record(o.ctx, v, metric.WithAttributes(attrs...))
}
