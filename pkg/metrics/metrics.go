// Package metrics records sprite generation runs with OpenTelemetry
// instruments exported into a dedicated Prometheus registry. A batch process
// does not live long enough to be scraped, so the registry is published after
// the run: pushed to a Pushgateway or written for the node_exporter textfile
// collector.
package metrics

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

const meterName = "spritegen"

// Run outcomes.
const (
	OutcomeGenerated = "generated"
	OutcomeUpToDate  = "up_to_date"
	OutcomeFailed    = "failed"
)

// Recorder collects run metrics. The zero value is not usable; use New.
type Recorder struct {
	registry *prometheus.Registry
	provider *sdkmetric.MeterProvider

	runs         metric.Int64Counter
	icons        metric.Int64Counter
	filesWritten metric.Int64Counter
	runDuration  metric.Float64Histogram
	lastRunIcons metric.Int64Gauge
}

// New creates a Recorder with its own Prometheus registry.
func New() (*Recorder, error) {
	registry := prometheus.NewRegistry()

	exp, err := otelprom.New(otelprom.WithRegisterer(registry), otelprom.WithoutScopeInfo())
	if err != nil {
		return nil, fmt.Errorf("could not create otel exporter: %w", err)
	}
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp))
	meter := provider.Meter(meterName)

	r := &Recorder{registry: registry, provider: provider}

	var errs []error
	r.runs, err = meter.Int64Counter("spritegen_runs",
		metric.WithDescription("Sprite generation runs by outcome."))
	errs = append(errs, err)
	r.icons, err = meter.Int64Counter("spritegen_icons_processed",
		metric.WithDescription("Icons transformed into symbols."))
	errs = append(errs, err)
	r.filesWritten, err = meter.Int64Counter("spritegen_files_written",
		metric.WithDescription("Output files whose content changed."))
	errs = append(errs, err)
	r.runDuration, err = meter.Float64Histogram("spritegen_run_duration_seconds",
		metric.WithDescription("Wall time of a sprite generation run."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(DefaultBuckets...))
	errs = append(errs, err)
	r.lastRunIcons, err = meter.Int64Gauge("spritegen_last_run_icons",
		metric.WithDescription("Icons discovered by the last run."))
	errs = append(errs, err)

	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("could not create instruments: %w", err)
	}

	return r, nil
}

// RecordRun records the outcome of one run. icons is the number of discovered
// icons and processed reports whether they were transformed in this run.
func (r *Recorder) RecordRun(ctx context.Context, outcome string, icons int, processed bool, took time.Duration) {
	r.runs.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
	r.runDuration.Record(ctx, took.Seconds())
	r.lastRunIcons.Record(ctx, int64(icons))
	if processed {
		r.icons.Add(ctx, int64(icons))
	}
}

// RecordWrite records that file (sprite, manifest, fingerprint) was rewritten.
func (r *Recorder) RecordWrite(ctx context.Context, file string) {
	r.filesWritten.Add(ctx, 1, metric.WithAttributes(attribute.String("file", file)))
}

// Gatherer exposes the registry, e.g. for tests or an HTTP handler.
func (r *Recorder) Gatherer() prometheus.Gatherer {
	return r.registry
}

// Push replaces the metrics of job on the Pushgateway at url.
func (r *Recorder) Push(ctx context.Context, url, job string) error {
	if err := push.New(url, job).Gatherer(r.registry).PushContext(ctx); err != nil {
		return fmt.Errorf("could not push metrics to %s: %w", url, err)
	}

	return nil
}

// WriteTextfile writes the registry to path in the text exposition format.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("could not write metrics textfile: %w", err)
	}

	return nil
}

// Shutdown releases the meter provider.
func (r *Recorder) Shutdown(ctx context.Context) error {
	if err := r.provider.Shutdown(ctx); err != nil {
		return fmt.Errorf("could not shut down meter provider: %w", err)
	}

	return nil
}
