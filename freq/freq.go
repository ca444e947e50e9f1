// Package freq computes descriptive statistics over frequency-weighted data:
// collections of (occurrence count, value) pairs such as histogram buckets.
// Every reduction scales each value's contribution by its occurrence count,
// and the dataset's size is its total weight (the sum of all counts), not the
// number of pairs. The operations share the purity and fail-fast contract of
// package stats.
package freq

import (
	"math"

	"github.com/hyp3rd/numstats/errors"
	"github.com/hyp3rd/numstats/num"
	"github.com/hyp3rd/numstats/types"
)

// Count returns the total weight of the dataset: the sum of every pair's
// occurrence count, not the number of pairs.
func Count[T types.Number](collection types.Collection[types.Frequency[T]]) uint64 {
	var weight uint64
	for it := collection.Iterator(); it.HasNext(); {
		weight += it.Next().Count
	}

	return weight
}

// NonZeroCount is Count, failing with ErrEmptyCollection when the total
// weight is zero.
func NonZeroCount[T types.Number](collection types.Collection[types.Frequency[T]]) (uint64, error) {
	weight := Count(collection)
	if weight == 0 {
		return 0, errors.ErrEmptyCollection
	}

	return weight, nil
}

// NonZeroCountAsItem converts the non-zero total weight into the element
// type, failing with ConversionError{Usize, Item} when it does not fit.
func NonZeroCountAsItem[T types.Number](collection types.Collection[types.Frequency[T]]) (T, error) {
	weight, err := NonZeroCount(collection)
	if err != nil {
		var zero T

		return zero, err
	}

	return num.FromCount[T](weight)
}

// Sum returns the weighted total: each value multiplied by its occurrence
// count converted into the element type. Fails with
// ConversionError{Usize, Item} at the first count the element type cannot
// represent.
func Sum[T types.Number](collection types.Collection[types.Frequency[T]]) (T, error) {
	var total T
	for it := collection.Iterator(); it.HasNext(); {
		pair := it.Next()

		weight, err := num.FromCount[T](pair.Count)
		if err != nil {
			var zero T

			return zero, err
		}

		total += pair.Value * weight
	}

	return total, nil
}

// Mean returns the weighted sum divided by the total weight. Integer element
// types perform truncating division.
func Mean[T types.Number](collection types.Collection[types.Frequency[T]]) (T, error) {
	var zero T

	total, err := Sum(collection)
	if err != nil {
		return zero, err
	}

	weight, err := NonZeroCountAsItem(collection)
	if err != nil {
		return zero, err
	}

	return total / weight, nil
}

// Variance returns the weighted population variance: each squared deviation
// from the mean scaled by its occurrence count, divided by the total weight.
func Variance[T types.Number](collection types.Collection[types.Frequency[T]]) (T, error) {
	var zero T

	mean, err := Mean(collection)
	if err != nil {
		return zero, err
	}

	var total T
	for it := collection.Iterator(); it.HasNext(); {
		pair := it.Next()

		weight, err := num.FromCount[T](pair.Count)
		if err != nil {
			return zero, err
		}

		diff := pair.Value - mean

		total += diff * diff * weight
	}

	weight, err := NonZeroCountAsItem(collection)
	if err != nil {
		return zero, err
	}

	return total / weight, nil
}

// StdDev returns the square root of the weighted variance, routed through
// float64 the same way as the plain statistic.
func StdDev[T types.Number](collection types.Collection[types.Frequency[T]]) (T, error) {
	var zero T

	variance, err := Variance(collection)
	if err != nil {
		return zero, err
	}

	root, err := num.ToFloat64(variance)
	if err != nil {
		return zero, err
	}

	return num.FromFloat64[T](math.Sqrt(root))
}

// Min returns the smallest distinct value present in the pair sequence;
// occurrence counts are irrelevant to extremes, and a zero-count pair's
// value still participates. Fails with ErrEmptyCollection only when the
// pair sequence itself is empty.
func Min[T types.Number](collection types.Collection[types.Frequency[T]]) (T, error) {
	it := collection.Iterator()
	if !it.HasNext() {
		var zero T

		return zero, errors.ErrEmptyCollection
	}

	best := it.Next().Value
	for it.HasNext() {
		best = num.Min(best, it.Next().Value)
	}

	return best, nil
}

// Max returns the largest distinct value present in the pair sequence, with
// the same emptiness rule as Min.
func Max[T types.Number](collection types.Collection[types.Frequency[T]]) (T, error) {
	it := collection.Iterator()
	if !it.HasNext() {
		var zero T

		return zero, errors.ErrEmptyCollection
	}

	best := it.Next().Value
	for it.HasNext() {
		best = num.Max(best, it.Next().Value)
	}

	return best, nil
}

// Range returns Max minus Min, observing Max's failure first.
func Range[T types.Number](collection types.Collection[types.Frequency[T]]) (T, error) {
	var zero T

	maxVal, err := Max(collection)
	if err != nil {
		return zero, err
	}

	minVal, err := Min(collection)
	if err != nil {
		return zero, err
	}

	return maxVal - minVal, nil
}

// Mode returns the value carrying the highest occurrence count. Pairs are
// scanned in iteration order and a later pair whose count is greater than OR
// EQUAL to the current best replaces it, so among pairs sharing the maximum
// count the last one encountered wins. An empty pair sequence fails with
// ErrEmptyCollection; a non-empty sequence whose pairs all carry a zero
// count is accepted and yields the last pair scanned.
func Mode[T types.Number](collection types.Collection[types.Frequency[T]]) (T, error) {
	var (
		seen      bool
		bestCount uint64
		bestValue T
	)

	for it := collection.Iterator(); it.HasNext(); {
		pair := it.Next()
		if !seen || pair.Count >= bestCount {
			seen = true
			bestCount = pair.Count
			bestValue = pair.Value
		}
	}

	if !seen {
		var zero T

		return zero, errors.ErrEmptyCollection
	}

	return bestValue, nil
}
