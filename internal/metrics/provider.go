// Package metrics provides OpenTelemetry metrics instrumentation with Prometheus export.
// It covers card engine operations (validate, generate, classify) and the HTTP layer in front of them.
package metrics

import (
	"context"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/attribute"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
)

// DurationBuckets are the histogram boundaries, in seconds, for every *_duration_seconds
// instrument. A Luhn check or a 16-digit generation finishes in microseconds, so the
// buckets start far below the SDK defaults.
var DurationBuckets = []float64{
	0.00001, 0.000025, 0.00005, 0.0001, 0.00025, 0.0005,
	0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.5, 1,
}

// Provider owns the meter provider and the Prometheus registry it exports into.
type Provider struct {
	meterProvider *metric.MeterProvider
	exporter      *promexporter.Exporter
	registry      *prometheus.Registry
}

// NewProvider creates a meter provider that exports into a private Prometheus registry.
// The namespace prefixes every card engine metric name (e.g., "cardengine") and names the
// service resource. The registry also carries Go runtime and process collectors.
func NewProvider(namespace string) (*Provider, error) {
	registry := prometheus.NewRegistry()
	if err := registry.Register(collectors.NewGoCollector()); err != nil {
		return nil, fmt.Errorf("failed to register go collector: %w", err)
	}
	if err := registry.Register(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{
		Namespace: namespace,
	})); err != nil {
		return nil, fmt.Errorf("failed to register process collector: %w", err)
	}

	exporter, err := promexporter.New(
		promexporter.WithRegisterer(registry),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create prometheus exporter: %w", err)
	}

	durationView := metric.NewView(
		metric.Instrument{Name: "*_duration_seconds"},
		metric.Stream{Aggregation: metric.AggregationExplicitBucketHistogram{Boundaries: DurationBuckets}},
	)

	meterProvider := metric.NewMeterProvider(
		metric.WithReader(exporter),
		metric.WithView(durationView),
		metric.WithResource(resource.NewSchemaless(attribute.String("service.name", serviceName(namespace)))),
	)

	return &Provider{
		meterProvider: meterProvider,
		exporter:      exporter,
		registry:      registry,
	}, nil
}

func serviceName(namespace string) string {
	if namespace == "" {
		return "cardengine"
	}
	return namespace
}

// Handler serves the registry in Prometheus exposition format, negotiating OpenMetrics
// when the scraper asks for it.
func (p *Provider) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}

// MeterProvider returns the meter provider that business and HTTP metrics are created from.
func (p *Provider) MeterProvider() *metric.MeterProvider {
	return p.meterProvider
}

// Shutdown flushes and stops the meter provider.
func (p *Provider) Shutdown(ctx context.Context) error {
	if p.meterProvider == nil {
		return nil
	}
	return p.meterProvider.Shutdown(ctx)
}
