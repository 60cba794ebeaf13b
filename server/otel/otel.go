package otel

import (
	"context"
	"fmt"

	config "github.com/acearchive/files/server/config"
	otel "go.opentelemetry.io/otel"
	attribute "go.opentelemetry.io/otel/attribute"
	prometheus "go.opentelemetry.io/otel/exporters/prometheus"
	metric "go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	resource "go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.32.0"
	zap "go.uber.org/zap"
)

//go:generate counterfeiter -o ../mocks/fake_open_telemetry.go . OpenTelemetry

// OpenTelemetry defines the operations for telemetry
type OpenTelemetry interface {
	// Request level metrics
	RecordRequestCount(ctx context.Context, attrs TelemetryAttributes, requestMethod string)
	RecordResponseStatus(ctx context.Context, attrs TelemetryAttributes, requestMethod, requestPath string, statusCode int)
	RecordRequestDuration(ctx context.Context, attrs TelemetryAttributes, requestMethod, requestPath string, durationMs float64)

	// Delivery level metrics
	RecordStoreRead(ctx context.Context, store, operation, outcome string)
	RecordStoreFallback(ctx context.Context, from, to string)
	RecordRedirect(ctx context.Context, family string)

	// Shutdown the telemetry system
	ShutDown(ctx context.Context) error
}

type OpenTelemetryImpl struct {
	logger        *zap.Logger
	meterProvider *sdkmetric.MeterProvider
	meter         metric.Meter

	// Metrics
	requestCounter           metric.Int64Counter
	responseStatusCounter    metric.Int64Counter
	requestDurationHistogram metric.Float64Histogram
	storeReadCounter         metric.Int64Counter
	storeFallbackCounter     metric.Int64Counter
	redirectCounter          metric.Int64Counter
}

// TelemetryAttributes describe the route a request was matched to
type TelemetryAttributes struct {
	Route    string
	Endpoint string
}

// NewOpenTelemetry creates a new OpenTelemetry implementation with proper dependency injection
func NewOpenTelemetry(cfg *config.Config, logger *zap.Logger) (OpenTelemetry, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	o := &OpenTelemetryImpl{
		logger: logger,
	}

	if err := o.initialize(cfg); err != nil {
		return nil, fmt.Errorf("failed to initialize opentelemetry: %w", err)
	}

	return o, nil
}

func (o *OpenTelemetryImpl) initialize(cfg *config.Config) error {
	serviceName := cfg.ServiceName
	if serviceName == "" {
		serviceName = "files-server"
	}

	o.logger.Info("initializing opentelemetry",
		zap.String("service_name", serviceName),
		zap.String("version", cfg.ServiceVersion))

	exporter, err := prometheus.New()
	if err != nil {
		o.logger.Error("failed to create prometheus exporter", zap.Error(err))
		return err
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(serviceName),
		semconv.ServiceVersion(cfg.ServiceVersion),
	)

	histogramBoundaries := []float64{1, 5, 10, 25, 50, 75, 100, 250, 500, 750, 1000, 2500, 5000, 7500, 10000}

	latencyView := sdkmetric.NewView(
		sdkmetric.Instrument{
			Kind: sdkmetric.InstrumentKindHistogram,
		},
		sdkmetric.Stream{
			Aggregation: sdkmetric.AggregationExplicitBucketHistogram{
				Boundaries: histogramBoundaries,
			},
		},
	)

	o.meterProvider = sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(exporter),
		sdkmetric.WithView(latencyView),
	)
	otel.SetMeterProvider(o.meterProvider)

	o.meter = o.meterProvider.Meter(serviceName)

	if err := o.initializeMetrics(); err != nil {
		o.logger.Error("failed to initialize metrics", zap.Error(err))
		return err
	}

	o.logger.Info("opentelemetry initialized successfully")
	return nil
}

func (o *OpenTelemetryImpl) RecordRequestCount(ctx context.Context, attrs TelemetryAttributes, requestMethod string) {
	attributes := []attribute.KeyValue{
		attribute.String("route", attrs.Route),
		attribute.String("endpoint", attrs.Endpoint),
		attribute.String("request_method", requestMethod),
	}

	o.requestCounter.Add(ctx, 1, metric.WithAttributes(attributes...))
}

func (o *OpenTelemetryImpl) RecordResponseStatus(ctx context.Context, attrs TelemetryAttributes, requestMethod, requestPath string, statusCode int) {
	attributes := []attribute.KeyValue{
		attribute.String("route", attrs.Route),
		attribute.String("endpoint", attrs.Endpoint),
		attribute.String("request_method", requestMethod),
		attribute.String("request_path", requestPath),
		attribute.Int("status_code", statusCode),
	}

	o.responseStatusCounter.Add(ctx, 1, metric.WithAttributes(attributes...))
}

func (o *OpenTelemetryImpl) RecordRequestDuration(ctx context.Context, attrs TelemetryAttributes, requestMethod, requestPath string, durationMs float64) {
	attributes := []attribute.KeyValue{
		attribute.String("route", attrs.Route),
		attribute.String("endpoint", attrs.Endpoint),
		attribute.String("request_method", requestMethod),
		attribute.String("request_path", requestPath),
	}

	o.requestDurationHistogram.Record(ctx, durationMs, metric.WithAttributes(attributes...))
}

func (o *OpenTelemetryImpl) RecordStoreRead(ctx context.Context, store, operation, outcome string) {
	attributes := []attribute.KeyValue{
		attribute.String("store", store),
		attribute.String("operation", operation),
		attribute.String("outcome", outcome),
	}

	o.storeReadCounter.Add(ctx, 1, metric.WithAttributes(attributes...))
}

func (o *OpenTelemetryImpl) RecordStoreFallback(ctx context.Context, from, to string) {
	attributes := []attribute.KeyValue{
		attribute.String("from_store", from),
		attribute.String("to_store", to),
	}

	o.storeFallbackCounter.Add(ctx, 1, metric.WithAttributes(attributes...))
}

func (o *OpenTelemetryImpl) RecordRedirect(ctx context.Context, family string) {
	o.redirectCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("endpoint", family)))
}

func (o *OpenTelemetryImpl) ShutDown(ctx context.Context) error {
	return o.meterProvider.Shutdown(ctx)
}

// initializeMetrics initializes all the OpenTelemetry metrics
func (o *OpenTelemetryImpl) initializeMetrics() error {
	var err error

	o.requestCounter, err = o.meter.Int64Counter(
		"files.requests.total",
		metric.WithDescription("Total number of file requests processed"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return fmt.Errorf("failed to create request counter: %w", err)
	}

	o.responseStatusCounter, err = o.meter.Int64Counter(
		"files.response_status.total",
		metric.WithDescription("Total number of responses by status code"),
		metric.WithUnit("{response}"),
	)
	if err != nil {
		return fmt.Errorf("failed to create response status counter: %w", err)
	}

	o.requestDurationHistogram, err = o.meter.Float64Histogram(
		"files.request_duration",
		metric.WithDescription("Duration of file request processing"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return fmt.Errorf("failed to create request duration histogram: %w", err)
	}

	o.storeReadCounter, err = o.meter.Int64Counter(
		"files.store_reads.total",
		metric.WithDescription("Total number of object store reads by store and outcome"),
		metric.WithUnit("{read}"),
	)
	if err != nil {
		return fmt.Errorf("failed to create store read counter: %w", err)
	}

	o.storeFallbackCounter, err = o.meter.Int64Counter(
		"files.store_fallbacks.total",
		metric.WithDescription("Total number of reads that fell back to the next object store"),
		metric.WithUnit("{fallback}"),
	)
	if err != nil {
		return fmt.Errorf("failed to create store fallback counter: %w", err)
	}

	o.redirectCounter, err = o.meter.Int64Counter(
		"files.redirects.total",
		metric.WithDescription("Total number of redirects to canonical URLs"),
		metric.WithUnit("{redirect}"),
	)
	if err != nil {
		return fmt.Errorf("failed to create redirect counter: %w", err)
	}

	o.logger.Debug("all opentelemetry metrics initialized successfully")
	return nil
}
