// Package numstats exposes a recording service on top of the pure statistics
// packages: a thread-safe collector of named numeric series (plain and
// frequency-weighted) that can summarize and export what it has seen. The
// computational core lives in the stats and freq packages and stays usable
// standalone.
package numstats

import (
	"context"

	"github.com/hyp3rd/numstats/freq"
	"github.com/hyp3rd/numstats/stats"
	"github.com/hyp3rd/numstats/types"
)

// Service is the recording interface for a collector of numeric series.
// It enables middleware to be added to the service.
type Service[T types.Number] interface {
	// Record appends values to the named plain series.
	Record(ctx context.Context, series string, values ...T)
	// RecordFrequency appends one (count, value) pair to the named
	// frequency series.
	RecordFrequency(ctx context.Context, series string, count uint64, value T)
	// Summary computes the descriptive statistics of the named plain series.
	Summary(ctx context.Context, series string) (*stats.Summary[T], error)
	// FrequencySummary computes the weighted statistics of the named
	// frequency series.
	FrequencySummary(ctx context.Context, series string) (*freq.Summary[T], error)
	// Snapshot summarizes every recorded series into a Report.
	Snapshot(ctx context.Context) (*Report[T], error)
	// Export serializes a Snapshot with the named serializer.
	Export(ctx context.Context, format string) ([]byte, error)
	// Clear drops every recorded series.
	Clear(ctx context.Context)
}

// Report is a point-in-time summary of every series a collector holds.
type Report[T types.Number] struct {
	Series    map[string]*stats.Summary[T] `json:"series"`
	Frequency map[string]*freq.Summary[T]  `json:"frequency"`
}

// Middleware describes a service middleware.
type Middleware[T types.Number] func(Service[T]) Service[T]

// ApplyMiddleware applies middlewares to a service.
func ApplyMiddleware[T types.Number](svc Service[T], mw ...Middleware[T]) Service[T] {
	for _, m := range mw {
		svc = m(svc)
	}

	return svc
}
