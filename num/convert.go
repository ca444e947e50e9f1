// Package num implements the fallible-arithmetic protocol underneath the
// statistics: checked conversions between the three representations a
// statistic moves through (unsigned count, element type, double-precision
// float), and the NaN-tolerant binary ordering. Conversions never truncate
// silently and never panic; a value that does not fit yields a
// ConversionError naming the two representations involved.
package num

import (
	"math"

	"github.com/hyp3rd/numstats/errors"
	"github.com/hyp3rd/numstats/types"
)

// maxExactInt is the largest integer magnitude float64 represents exactly.
const maxExactInt = 1 << 53

// FromCount converts an unsigned count into the element type T.
// Integer targets are range checked and fail with
// ConversionError{Usize, Item} when the count exceeds the target's range
// (for example a count of 128 into int8). Float targets always accept.
func FromCount[T types.Number](count uint64) (T, error) {
	var zero T

	var limit uint64
	switch any(zero).(type) {
	case float32, float64:
		return T(count), nil
	case int8:
		limit = math.MaxInt8
	case int16:
		limit = math.MaxInt16
	case int32:
		limit = math.MaxInt32
	case int:
		limit = math.MaxInt
	case int64:
		limit = math.MaxInt64
	case uint8:
		limit = math.MaxUint8
	case uint16:
		limit = math.MaxUint16
	case uint32:
		limit = math.MaxUint32
	case uint:
		limit = math.MaxUint
	case uint64:
		limit = math.MaxUint64
	}

	if count > limit {
		return zero, errors.NewConversionError(errors.DataTypeUsize, errors.DataTypeItem)
	}

	return T(count), nil
}

// ToFloat64 converts an element into float64 for square-root computation.
// Floats pass through unchanged, NaN included. Integer kinds of 32 bits or
// fewer always convert exactly; 64-bit kinds fail with
// ConversionError{Item, F64} outside the float64 exact-integer window.
func ToFloat64[T types.Number](value T) (float64, error) {
	switch v := any(value).(type) {
	case float32:
		return float64(v), nil
	case float64:
		return v, nil
	case int:
		if int64(v) > maxExactInt || int64(v) < -maxExactInt {
			return 0, errors.NewConversionError(errors.DataTypeItem, errors.DataTypeF64)
		}
	case int64:
		if v > maxExactInt || v < -maxExactInt {
			return 0, errors.NewConversionError(errors.DataTypeItem, errors.DataTypeF64)
		}
	case uint:
		if uint64(v) > maxExactInt {
			return 0, errors.NewConversionError(errors.DataTypeItem, errors.DataTypeF64)
		}
	case uint64:
		if v > maxExactInt {
			return 0, errors.NewConversionError(errors.DataTypeItem, errors.DataTypeF64)
		}
	}

	return float64(value), nil
}

// FromFloat64 converts a float64 back into the element type T.
// Float targets always accept (rounding allowed). Integer targets reject
// NaN, infinities and out-of-range magnitudes with
// ConversionError{F64, Item}, and truncate toward zero otherwise.
func FromFloat64[T types.Number](value float64) (T, error) {
	var zero T

	// Valid window for the truncated value: lo <= trunc(value) < hi.
	var lo, hi float64
	switch any(zero).(type) {
	case float32, float64:
		return T(value), nil
	case int8:
		lo, hi = math.MinInt8, math.MaxInt8+1
	case int16:
		lo, hi = math.MinInt16, math.MaxInt16+1
	case int32:
		lo, hi = math.MinInt32, math.MaxInt32+1
	case int:
		lo, hi = math.MinInt, math.MaxInt+1
	case int64:
		lo, hi = math.MinInt64, math.MaxInt64+1
	case uint8:
		lo, hi = 0, math.MaxUint8+1
	case uint16:
		lo, hi = 0, math.MaxUint16+1
	case uint32:
		lo, hi = 0, math.MaxUint32+1
	case uint:
		lo, hi = 0, math.MaxUint+1
	case uint64:
		lo, hi = 0, math.MaxUint64+1
	}

	truncated := math.Trunc(value)
	if math.IsNaN(value) || truncated < lo || truncated >= hi {
		return zero, errors.NewConversionError(errors.DataTypeF64, errors.DataTypeItem)
	}

	return T(truncated), nil
}
