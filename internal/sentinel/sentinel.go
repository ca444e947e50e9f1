// Package sentinel provides standardized error definitions for the collector
// and serializer surfaces. The statistics core has its own closed taxonomy in
// the public errors package; the sentinels here cover the surrounding
// infrastructure (registries, named series).
package sentinel

import (
	"github.com/hyp3rd/ewrap"
)

var (
	// ErrParamCannotBeEmpty is returned when a parameter cannot be empty.
	ErrParamCannotBeEmpty = ewrap.New("param cannot be empty")

	// ErrSerializerNotFound is returned when a serializer is not registered
	// under the requested name.
	ErrSerializerNotFound = ewrap.New("serializer not found")

	// ErrSeriesNotFound is returned when a collector holds no series under
	// the requested name.
	ErrSeriesNotFound = ewrap.New("series not found")
)
