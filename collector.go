package numstats

import (
	"context"

	"github.com/hyp3rd/ewrap"

	"github.com/hyp3rd/numstats/freq"
	"github.com/hyp3rd/numstats/internal/cmap"
	"github.com/hyp3rd/numstats/internal/sentinel"
	"github.com/hyp3rd/numstats/serializer"
	"github.com/hyp3rd/numstats/stats"
	"github.com/hyp3rd/numstats/types"
)

// Collector accumulates named numeric series and answers statistics over
// them. Series storage is sharded, so independent series can be recorded
// concurrently without contending on one lock. Collector implements Service.
type Collector[T types.Number] struct {
	samples     *cmap.ConcurrentMap[types.Slice[T]]
	frequencies *cmap.ConcurrentMap[types.Pairs[T]]
	serializers *serializer.Registry
}

// NewCollector creates an empty collector with the default serializers
// registered for Export.
func NewCollector[T types.Number]() *Collector[T] {
	return &Collector[T]{
		samples:     cmap.New[types.Slice[T]](),
		frequencies: cmap.New[types.Pairs[T]](),
		serializers: serializer.NewSerializerRegistry(),
	}
}

// Record implements Service.Record.
func (c *Collector[T]) Record(_ context.Context, series string, values ...T) {
	if len(values) == 0 {
		return
	}

	c.samples.Upsert(series, func(current types.Slice[T], _ bool) types.Slice[T] {
		return append(current, values...)
	})
}

// RecordFrequency implements Service.RecordFrequency.
func (c *Collector[T]) RecordFrequency(_ context.Context, series string, count uint64, value T) {
	c.frequencies.Upsert(series, func(current types.Pairs[T], _ bool) types.Pairs[T] {
		return append(current, types.Frequency[T]{Count: count, Value: value})
	})
}

// Summary implements Service.Summary.
func (c *Collector[T]) Summary(_ context.Context, series string) (*stats.Summary[T], error) {
	samples, ok := c.samples.Get(series)
	if !ok {
		return nil, ewrap.Wrap(sentinel.ErrSeriesNotFound, series)
	}

	return stats.Describe[T](samples)
}

// FrequencySummary implements Service.FrequencySummary.
func (c *Collector[T]) FrequencySummary(_ context.Context, series string) (*freq.Summary[T], error) {
	pairs, ok := c.frequencies.Get(series)
	if !ok {
		return nil, ewrap.Wrap(sentinel.ErrSeriesNotFound, series)
	}

	return freq.Describe[T](pairs)
}

// Snapshot implements Service.Snapshot. It summarizes every series,
// returning the first failure encountered.
func (c *Collector[T]) Snapshot(_ context.Context) (*Report[T], error) {
	report := &Report[T]{
		Series:    make(map[string]*stats.Summary[T]),
		Frequency: make(map[string]*freq.Summary[T]),
	}

	for name, samples := range c.samples.Items() {
		summary, err := stats.Describe[T](samples)
		if err != nil {
			return nil, ewrap.Wrap(err, name)
		}

		report.Series[name] = summary
	}

	for name, pairs := range c.frequencies.Items() {
		summary, err := freq.Describe[T](pairs)
		if err != nil {
			return nil, ewrap.Wrap(err, name)
		}

		report.Frequency[name] = summary
	}

	return report, nil
}

// Export implements Service.Export.
func (c *Collector[T]) Export(ctx context.Context, format string) ([]byte, error) {
	report, err := c.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	ser, err := c.serializers.New(format)
	if err != nil {
		return nil, err
	}

	return ser.Marshal(report)
}

// Clear implements Service.Clear.
func (c *Collector[T]) Clear(_ context.Context) {
	c.samples.Clear()
	c.frequencies.Clear()
}
