package metrics

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/marcelsud/release-notify/delivery"
	promclient "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/prometheus/client_golang/prometheus/push"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

const meterName = "release-notify"

// OTelExporter records delivery metrics with OpenTelemetry and exposes them in Prometheus format
type OTelExporter struct {
	meterProvider *sdkmetric.MeterProvider
	registry      *promclient.Registry

	// OTel meters and instruments
	meter            metric.Meter
	deliveries       metric.Int64Counter
	deliveryDuration metric.Float64Histogram
}

// NewOTelExporter creates a new OpenTelemetry exporter backed by its own Prometheus registry
func NewOTelExporter() (*OTelExporter, error) {
	registry := promclient.NewRegistry()

	exporter, err := prometheus.New(prometheus.WithRegisterer(registry))
	if err != nil {
		return nil, fmt.Errorf("creating prometheus exporter: %w", err)
	}

	meterProvider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(exporter),
	)

	meter := meterProvider.Meter(
		meterName,
		metric.WithInstrumentationVersion("1.0.0"),
	)

	oe := &OTelExporter{
		meterProvider: meterProvider,
		registry:      registry,
		meter:         meter,
	}

	if err := oe.registerInstruments(); err != nil {
		return nil, fmt.Errorf("registering instruments: %w", err)
	}

	return oe, nil
}

// registerInstruments creates the delivery counter and duration histogram
func (oe *OTelExporter) registerInstruments() error {
	var err error

	oe.deliveries, err = oe.meter.Int64Counter(
		"release_notify.deliveries",
		metric.WithDescription("Number of release notification attempts by outcome"),
		metric.WithUnit("{deliveries}"),
	)
	if err != nil {
		return fmt.Errorf("creating deliveries counter: %w", err)
	}

	oe.deliveryDuration, err = oe.meter.Float64Histogram(
		"release_notify.delivery.duration",
		metric.WithDescription("Time spent resolving and sending a release notification"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return fmt.Errorf("creating delivery duration histogram: %w", err)
	}

	return nil
}

// RecordDelivery implements Recorder
func (oe *OTelExporter) RecordDelivery(ctx context.Context, outcome delivery.Outcome, duration time.Duration) {
	attrs := metric.WithAttributes(attribute.String("outcome", outcome.String()))

	oe.deliveries.Add(ctx, 1, attrs)
	oe.deliveryDuration.Record(ctx, duration.Seconds(), attrs)
}

// Gatherer exposes the private registry, mostly for tests
func (oe *OTelExporter) Gatherer() promclient.Gatherer {
	return oe.registry
}

// Handler serves the Prometheus-formatted metrics
func (oe *OTelExporter) Handler() http.Handler {
	return promhttp.HandlerFor(oe.registry, promhttp.HandlerOpts{})
}

// Push sends the current metrics to a Prometheus Pushgateway.
// A one-shot CLI run has no scrape window, so this is its only way out.
func (oe *OTelExporter) Push(ctx context.Context, url, job string) error {
	if err := push.New(url, job).Gatherer(oe.registry).PushContext(ctx); err != nil {
		return fmt.Errorf("pushing metrics to %s: %w", url, err)
	}
	return nil
}

// Shutdown gracefully shuts down the meter provider
func (oe *OTelExporter) Shutdown(ctx context.Context) error {
	if oe.meterProvider != nil {
		return oe.meterProvider.Shutdown(ctx)
	}
	return nil
}
