// Package middleware contains service middlewares for numstats collectors:
// logging, OpenTelemetry metrics and OpenTelemetry tracing. The statistics
// core itself never logs or instruments; observability is layered on the
// Service surface only.
package middleware

import (
	"context"
	"time"

	"github.com/hyp3rd/numstats"
	"github.com/hyp3rd/numstats/freq"
	"github.com/hyp3rd/numstats/stats"
	"github.com/hyp3rd/numstats/types"
)

// Logger describes a logging interface allowing to implement different
// external, or custom loggers. Tested with logrus and Uber's Zap, but should
// work with any other logger matching the interface.
type Logger interface {
	Infof(format string, v ...interface{})
	Errorf(format string, v ...interface{})
}

// LoggingMiddleware logs each service call and the time it took.
type LoggingMiddleware[T types.Number] struct {
	next   numstats.Service[T]
	logger Logger
}

// NewLoggingMiddleware returns a new LoggingMiddleware.
func NewLoggingMiddleware[T types.Number](next numstats.Service[T], logger Logger) numstats.Service[T] {
	return &LoggingMiddleware[T]{next: next, logger: logger}
}

// Record implements Service.Record with logging.
func (mw *LoggingMiddleware[T]) Record(ctx context.Context, series string, values ...T) {
	defer func(begin time.Time) {
		mw.logger.Infof("method Record took: %s", time.Since(begin))
	}(time.Now())

	mw.logger.Infof("Record method called with series: %s values: %d", series, len(values))
	mw.next.Record(ctx, series, values...)
}

// RecordFrequency implements Service.RecordFrequency with logging.
func (mw *LoggingMiddleware[T]) RecordFrequency(ctx context.Context, series string, count uint64, value T) {
	defer func(begin time.Time) {
		mw.logger.Infof("method RecordFrequency took: %s", time.Since(begin))
	}(time.Now())

	mw.logger.Infof("RecordFrequency method called with series: %s count: %d", series, count)
	mw.next.RecordFrequency(ctx, series, count, value)
}

// Summary implements Service.Summary with logging.
func (mw *LoggingMiddleware[T]) Summary(ctx context.Context, series string) (*stats.Summary[T], error) {
	defer func(begin time.Time) {
		mw.logger.Infof("method Summary took: %s", time.Since(begin))
	}(time.Now())

	summary, err := mw.next.Summary(ctx, series)
	if err != nil {
		mw.logger.Errorf("Summary method failed for series %s: %v", series, err)
	}

	return summary, err
}

// FrequencySummary implements Service.FrequencySummary with logging.
func (mw *LoggingMiddleware[T]) FrequencySummary(ctx context.Context, series string) (*freq.Summary[T], error) {
	defer func(begin time.Time) {
		mw.logger.Infof("method FrequencySummary took: %s", time.Since(begin))
	}(time.Now())

	summary, err := mw.next.FrequencySummary(ctx, series)
	if err != nil {
		mw.logger.Errorf("FrequencySummary method failed for series %s: %v", series, err)
	}

	return summary, err
}

// Snapshot implements Service.Snapshot with logging.
func (mw *LoggingMiddleware[T]) Snapshot(ctx context.Context) (*numstats.Report[T], error) {
	defer func(begin time.Time) {
		mw.logger.Infof("method Snapshot took: %s", time.Since(begin))
	}(time.Now())

	report, err := mw.next.Snapshot(ctx)
	if err != nil {
		mw.logger.Errorf("Snapshot method failed: %v", err)
	}

	return report, err
}

// Export implements Service.Export with logging.
func (mw *LoggingMiddleware[T]) Export(ctx context.Context, format string) ([]byte, error) {
	defer func(begin time.Time) {
		mw.logger.Infof("method Export took: %s", time.Since(begin))
	}(time.Now())

	data, err := mw.next.Export(ctx, format)
	if err != nil {
		mw.logger.Errorf("Export method failed for format %s: %v", format, err)
	}

	return data, err
}

// Clear implements Service.Clear with logging.
func (mw *LoggingMiddleware[T]) Clear(ctx context.Context) {
	defer func(begin time.Time) {
		mw.logger.Infof("method Clear took: %s", time.Since(begin))
	}(time.Now())

	mw.next.Clear(ctx)
}
