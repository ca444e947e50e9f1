package numstats

import (
	"context"
	goerrors "errors"
	"sync"
	"testing"

	"github.com/hyp3rd/numstats/errors"
	"github.com/hyp3rd/numstats/internal/sentinel"
)

func TestCollector_RecordSummary(t *testing.T) {
	ctx := context.Background()
	collector := NewCollector[float64]()

	collector.Record(ctx, "latency", 1.0, 2.0, 3.0)

	summary, err := collector.Summary(ctx, "latency")
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	if summary.Count != 3 {
		t.Error("expected count to be 3, got", summary.Count)
	}

	if summary.Mean != 2.0 {
		t.Error("expected mean to be 2.0, got", summary.Mean)
	}

	if summary.Range != 2.0 {
		t.Error("expected range to be 2.0, got", summary.Range)
	}

	// Unknown series
	_, err = collector.Summary(ctx, "missing")
	if !goerrors.Is(err, sentinel.ErrSeriesNotFound) {
		t.Error("expected series not found, got", err)
	}
}

func TestCollector_RecordFrequency(t *testing.T) {
	ctx := context.Background()
	collector := NewCollector[int]()

	collector.RecordFrequency(ctx, "sizes", 1, 1)
	collector.RecordFrequency(ctx, "sizes", 2, 2)

	summary, err := collector.FrequencySummary(ctx, "sizes")
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	if summary.Count != 3 {
		t.Error("expected total weight to be 3, got", summary.Count)
	}

	if summary.Sum != 5 {
		t.Error("expected sum to be 5, got", summary.Sum)
	}

	if summary.Mode != 2 {
		t.Error("expected mode to be 2, got", summary.Mode)
	}
}

func TestCollector_SnapshotAndExport(t *testing.T) {
	ctx := context.Background()
	collector := NewCollector[float64]()

	collector.Record(ctx, "latency", 1.0, 2.0, 3.0)
	collector.RecordFrequency(ctx, "buckets", 4, 0.5)

	report, err := collector.Snapshot(ctx)
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	if len(report.Series) != 1 || len(report.Frequency) != 1 {
		t.Error("unexpected report shape:", report)
	}

	data, err := collector.Export(ctx, "default")
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	if len(data) == 0 {
		t.Error("expected exported data, got none")
	}

	_, err = collector.Export(ctx, "unknown")
	if !goerrors.Is(err, sentinel.ErrSerializerNotFound) {
		t.Error("expected serializer not found, got", err)
	}
}

func TestCollector_SnapshotPropagatesFailures(t *testing.T) {
	ctx := context.Background()
	collector := NewCollector[int8]()

	// 128 samples cannot be counted in int8
	for range 128 {
		collector.Record(ctx, "overflow", 1)
	}

	_, err := collector.Snapshot(ctx)
	if !goerrors.Is(err, errors.ErrCouldNotConvert) {
		t.Error("expected conversion failure, got", err)
	}
}

func TestCollector_Clear(t *testing.T) {
	ctx := context.Background()
	collector := NewCollector[float64]()

	collector.Record(ctx, "latency", 1.0)
	collector.Clear(ctx)

	_, err := collector.Summary(ctx, "latency")
	if !goerrors.Is(err, sentinel.ErrSeriesNotFound) {
		t.Error("expected series not found after clear, got", err)
	}
}

func TestCollector_ConcurrentRecord(t *testing.T) {
	ctx := context.Background()
	collector := NewCollector[int]()

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for range 500 {
				collector.Record(ctx, "shared", 1)
			}
		}()
	}

	wg.Wait()

	summary, err := collector.Summary(ctx, "shared")
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	if summary.Count != 4000 {
		t.Error("expected count to be 4000, got", summary.Count)
	}

	if summary.Sum != 4000 {
		t.Error("expected sum to be 4000, got", summary.Sum)
	}
}
