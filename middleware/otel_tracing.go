package middleware

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/hyp3rd/numstats"
	"github.com/hyp3rd/numstats/freq"
	"github.com/hyp3rd/numstats/stats"
	"github.com/hyp3rd/numstats/types"
)

// OTelTracingMiddleware wraps Service methods with OpenTelemetry spans.
type OTelTracingMiddleware[T types.Number] struct {
	next   numstats.Service[T]
	tracer trace.Tracer
	// static attributes applied to all spans
	commonAttrs []attribute.KeyValue
}

// OTelTracingOption allows configuring the tracing middleware.
type OTelTracingOption[T types.Number] func(*OTelTracingMiddleware[T])

// WithCommonAttributes sets attributes applied to all spans.
func WithCommonAttributes[T types.Number](attributes ...attribute.KeyValue) OTelTracingOption[T] {
	return func(m *OTelTracingMiddleware[T]) { m.commonAttrs = append(m.commonAttrs, attributes...) }
}

// NewOTelTracingMiddleware creates a tracing middleware.
func NewOTelTracingMiddleware[T types.Number](next numstats.Service[T], tracer trace.Tracer, opts ...OTelTracingOption[T]) numstats.Service[T] {
	mw := &OTelTracingMiddleware[T]{next: next, tracer: tracer}
	for _, o := range opts {
		o(mw)
	}

	return mw
}

// Record implements Service.Record with tracing.
func (mw *OTelTracingMiddleware[T]) Record(ctx context.Context, series string, values ...T) {
	ctx, span := mw.startSpan(ctx, "numstats.Record",
		attribute.String("series", series),
		attribute.Int("values.count", len(values)))
	defer span.End()

	mw.next.Record(ctx, series, values...)
}

// RecordFrequency implements Service.RecordFrequency with tracing.
func (mw *OTelTracingMiddleware[T]) RecordFrequency(ctx context.Context, series string, count uint64, value T) {
	ctx, span := mw.startSpan(ctx, "numstats.RecordFrequency",
		attribute.String("series", series),
		attribute.Int64("weight", int64(count)))
	defer span.End()

	mw.next.RecordFrequency(ctx, series, count, value)
}

// Summary implements Service.Summary with tracing.
func (mw *OTelTracingMiddleware[T]) Summary(ctx context.Context, series string) (*stats.Summary[T], error) {
	ctx, span := mw.startSpan(ctx, "numstats.Summary", attribute.String("series", series))
	defer span.End()

	summary, err := mw.next.Summary(ctx, series)
	if err != nil {
		span.RecordError(err)
	}

	return summary, err
}

// FrequencySummary implements Service.FrequencySummary with tracing.
func (mw *OTelTracingMiddleware[T]) FrequencySummary(ctx context.Context, series string) (*freq.Summary[T], error) {
	ctx, span := mw.startSpan(ctx, "numstats.FrequencySummary", attribute.String("series", series))
	defer span.End()

	summary, err := mw.next.FrequencySummary(ctx, series)
	if err != nil {
		span.RecordError(err)
	}

	return summary, err
}

// Snapshot implements Service.Snapshot with tracing.
func (mw *OTelTracingMiddleware[T]) Snapshot(ctx context.Context) (*numstats.Report[T], error) {
	ctx, span := mw.startSpan(ctx, "numstats.Snapshot")
	defer span.End()

	report, err := mw.next.Snapshot(ctx)
	if err != nil {
		span.RecordError(err)
	}

	return report, err
}

// Export implements Service.Export with tracing.
func (mw *OTelTracingMiddleware[T]) Export(ctx context.Context, format string) ([]byte, error) {
	ctx, span := mw.startSpan(ctx, "numstats.Export", attribute.String("format", format))
	defer span.End()

	data, err := mw.next.Export(ctx, format)
	if err != nil {
		span.RecordError(err)
	}

	return data, err
}

// Clear implements Service.Clear with tracing.
func (mw *OTelTracingMiddleware[T]) Clear(ctx context.Context) {
	ctx, span := mw.startSpan(ctx, "numstats.Clear")
	defer span.End()

	mw.next.Clear(ctx)
}

func (mw *OTelTracingMiddleware[T]) startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	all := make([]attribute.KeyValue, 0, len(mw.commonAttrs)+len(attrs))
	all = append(all, mw.commonAttrs...)
	all = append(all, attrs...)

	return mw.tracer.Start(ctx, name, trace.WithAttributes(all...))
}
