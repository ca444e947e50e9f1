package middleware

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/hyp3rd/numstats"
	"github.com/hyp3rd/numstats/freq"
	"github.com/hyp3rd/numstats/stats"
	"github.com/hyp3rd/numstats/types"
)

// OTelMetricsMiddleware emits OpenTelemetry metrics for service methods.
type OTelMetricsMiddleware[T types.Number] struct {
	next  numstats.Service[T]
	meter metric.Meter

	// instruments
	calls     metric.Int64Counter
	durations metric.Float64Histogram
}

// NewOTelMetricsMiddleware constructs a metrics middleware using the provided meter.
func NewOTelMetricsMiddleware[T types.Number](next numstats.Service[T], meter metric.Meter) (numstats.Service[T], error) {
	calls, err := meter.Int64Counter("numstats.calls")
	if err != nil {
		return nil, fmt.Errorf("create counter: %w", err)
	}

	durations, err := meter.Float64Histogram("numstats.duration.ms")
	if err != nil {
		return nil, fmt.Errorf("create histogram: %w", err)
	}

	return &OTelMetricsMiddleware[T]{next: next, meter: meter, calls: calls, durations: durations}, nil
}

// Record implements Service.Record with metrics.
func (mw *OTelMetricsMiddleware[T]) Record(ctx context.Context, series string, values ...T) {
	start := time.Now()
	mw.next.Record(ctx, series, values...)
	mw.rec(ctx, "Record", start, attribute.String("series", series), attribute.Int("values.count", len(values)))
}

// RecordFrequency implements Service.RecordFrequency with metrics.
func (mw *OTelMetricsMiddleware[T]) RecordFrequency(ctx context.Context, series string, count uint64, value T) {
	start := time.Now()
	mw.next.RecordFrequency(ctx, series, count, value)
	mw.rec(ctx, "RecordFrequency", start, attribute.String("series", series), attribute.Int64("weight", int64(count)))
}

// Summary implements Service.Summary with metrics.
func (mw *OTelMetricsMiddleware[T]) Summary(ctx context.Context, series string) (*stats.Summary[T], error) {
	start := time.Now()
	summary, err := mw.next.Summary(ctx, series)
	mw.rec(ctx, "Summary", start, attribute.String("series", series), attribute.Bool("failed", err != nil))

	return summary, err
}

// FrequencySummary implements Service.FrequencySummary with metrics.
func (mw *OTelMetricsMiddleware[T]) FrequencySummary(ctx context.Context, series string) (*freq.Summary[T], error) {
	start := time.Now()
	summary, err := mw.next.FrequencySummary(ctx, series)
	mw.rec(ctx, "FrequencySummary", start, attribute.String("series", series), attribute.Bool("failed", err != nil))

	return summary, err
}

// Snapshot implements Service.Snapshot with metrics.
func (mw *OTelMetricsMiddleware[T]) Snapshot(ctx context.Context) (*numstats.Report[T], error) {
	start := time.Now()
	report, err := mw.next.Snapshot(ctx)

	n := 0
	if report != nil {
		n = len(report.Series) + len(report.Frequency)
	}

	mw.rec(ctx, "Snapshot", start, attribute.Int("series.count", n), attribute.Bool("failed", err != nil))

	return report, err
}

// Export implements Service.Export with metrics.
func (mw *OTelMetricsMiddleware[T]) Export(ctx context.Context, format string) ([]byte, error) {
	start := time.Now()
	data, err := mw.next.Export(ctx, format)
	mw.rec(ctx, "Export", start, attribute.String("format", format), attribute.Int("bytes", len(data)))

	return data, err
}

// Clear implements Service.Clear with metrics.
func (mw *OTelMetricsMiddleware[T]) Clear(ctx context.Context) {
	start := time.Now()
	mw.next.Clear(ctx)
	mw.rec(ctx, "Clear", start)
}

// rec records call count and duration with attributes.
func (mw *OTelMetricsMiddleware[T]) rec(ctx context.Context, method string, start time.Time, attrs ...attribute.KeyValue) {
	base := []attribute.KeyValue{attribute.String("method", method)}
	if len(attrs) > 0 {
		base = append(base, attrs...)
	}

	mw.calls.Add(ctx, 1, metric.WithAttributes(base...))
	mw.durations.Record(ctx, float64(time.Since(start).Milliseconds()), metric.WithAttributes(base...))
}
