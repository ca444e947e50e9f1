// Package stats computes descriptive statistics over any finite, re-iterable
// collection of numeric elements. Every operation is a pure function of its
// input: each logical pass obtains a fresh iterator from the collection, so
// the caller's data is never consumed or mutated and repeated calls yield
// identical results. Failure is always an explicit error return, never a
// panic; the first failure in a dependency chain is propagated immediately.
package stats

import (
	"math"

	"github.com/hyp3rd/numstats/errors"
	"github.com/hyp3rd/numstats/num"
	"github.com/hyp3rd/numstats/types"
)

// Sum returns the total of all elements via an ordered left-fold addition.
func Sum[T types.Number](collection types.Collection[T]) T {
	var total T
	for it := collection.Iterator(); it.HasNext(); {
		total += it.Next()
	}

	return total
}

// Count returns the number of elements in the collection.
func Count[T types.Number](collection types.Collection[T]) uint64 {
	var n uint64
	for it := collection.Iterator(); it.HasNext(); {
		it.Next()
		n++
	}

	return n
}

// NonZeroCount is Count, failing with ErrEmptyCollection when the
// collection holds no elements.
func NonZeroCount[T types.Number](collection types.Collection[T]) (uint64, error) {
	n := Count(collection)
	if n == 0 {
		return 0, errors.ErrEmptyCollection
	}

	return n, nil
}

// NonZeroCountAsItem converts the non-zero count into the element type,
// failing with ConversionError{Usize, Item} when the element type cannot
// represent that magnitude.
func NonZeroCountAsItem[T types.Number](collection types.Collection[T]) (T, error) {
	n, err := NonZeroCount(collection)
	if err != nil {
		var zero T

		return zero, err
	}

	return num.FromCount[T](n)
}

// Mean returns Sum divided by the element count. Integer element types
// perform truncating division; [1 2 3 4] has a mean of 2.
func Mean[T types.Number](collection types.Collection[T]) (T, error) {
	n, err := NonZeroCountAsItem(collection)
	if err != nil {
		var zero T

		return zero, err
	}

	return Sum(collection) / n, nil
}

// Variance returns the population variance: the mean of squared deviations
// from the mean, divided by n (not n-1). Two naive passes over the input.
func Variance[T types.Number](collection types.Collection[T]) (T, error) {
	var zero T

	mean, err := Mean(collection)
	if err != nil {
		return zero, err
	}

	var total T
	for it := collection.Iterator(); it.HasNext(); {
		diff := it.Next() - mean

		total += diff * diff
	}

	n, err := NonZeroCountAsItem(collection)
	if err != nil {
		return zero, err
	}

	return total / n, nil
}

// StdDev returns the square root of the variance. The element type may not
// support square roots natively, so the variance is converted to float64
// (ConversionError{Item, F64} when not representable), rooted, and converted
// back (ConversionError{F64, Item} when the result does not fit).
func StdDev[T types.Number](collection types.Collection[T]) (T, error) {
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

// Min left-reduces the collection with the NaN-tolerant minimum, failing
// with ErrEmptyCollection on an empty collection.
func Min[T types.Number](collection types.Collection[T]) (T, error) {
	it := collection.Iterator()
	if !it.HasNext() {
		var zero T

		return zero, errors.ErrEmptyCollection
	}

	best := it.Next()
	for it.HasNext() {
		best = num.Min(best, it.Next())
	}

	return best, nil
}

// Max left-reduces the collection with the NaN-tolerant maximum, failing
// with ErrEmptyCollection on an empty collection.
func Max[T types.Number](collection types.Collection[T]) (T, error) {
	it := collection.Iterator()
	if !it.HasNext() {
		var zero T

		return zero, errors.ErrEmptyCollection
	}

	best := it.Next()
	for it.HasNext() {
		best = num.Max(best, it.Next())
	}

	return best, nil
}

// Range returns Max minus Min. Max is evaluated first, so its failure is
// observed before Min's.
func Range[T types.Number](collection types.Collection[T]) (T, error) {
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
