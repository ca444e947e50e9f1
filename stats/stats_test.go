package stats

import (
	"math"
	"testing"

	"github.com/longbridgeapp/assert"

	"github.com/hyp3rd/numstats/errors"
	"github.com/hyp3rd/numstats/types"
)

func TestSum(t *testing.T) {
	assert.Equal(t, 6, Sum[int](types.Slice[int]{1, 2, 3}))
	assert.Equal(t, 6.0, Sum[float64](types.Slice[float64]{1.0, 2.0, 3.0}))
	assert.Equal(t, 0, Sum[int](types.Slice[int]{}))
}

func TestCount(t *testing.T) {
	assert.Equal(t, uint64(3), Count[int](types.Slice[int]{1, 2, 3}))
	assert.Equal(t, uint64(0), Count[int64](types.Slice[int64]{}))
}

func TestNonZeroCount(t *testing.T) {
	n, err := NonZeroCount[int](types.Slice[int]{1, 2, 3})
	assert.Nil(t, err)
	assert.Equal(t, uint64(3), n)

	_, err = NonZeroCount[int64](types.Slice[int64]{})
	assert.Equal(t, errors.ErrEmptyCollection, err)
}

func TestNonZeroCountAsItem(t *testing.T) {
	n, err := NonZeroCountAsItem[int8](types.Slice[int8]{1, 2, 3})
	assert.Nil(t, err)
	assert.Equal(t, int8(3), n)

	// 128 elements exceed the int8 range.
	_, err = NonZeroCountAsItem[int8](types.Slice[int8](make([]int8, 128)))
	assert.Equal(t, &errors.ConversionError{From: errors.DataTypeUsize, To: errors.DataTypeItem}, err)
}

func TestMean(t *testing.T) {
	mean, err := Mean[int](types.Slice[int]{1, 2, 3})
	assert.Nil(t, err)
	assert.Equal(t, 2, mean)

	// Watch out for integer division.
	mean, err = Mean[int](types.Slice[int]{1, 2, 3, 4})
	assert.Nil(t, err)
	assert.Equal(t, 2, mean)

	meanF, err := Mean[float64](types.Slice[float64]{1.0, 2.0, 3.0})
	assert.Nil(t, err)
	assert.Equal(t, 2.0, meanF)

	_, err = Mean[int64](types.Slice[int64]{})
	assert.Equal(t, errors.ErrEmptyCollection, err)
}

func TestVariance(t *testing.T) {
	variance, err := Variance[float64](types.Slice[float64]{1.0, 2.0, 3.0})
	assert.Nil(t, err)
	assert.Equal(t, 2.0/3.0, variance)

	_, err = Variance[int64](types.Slice[int64]{})
	assert.Equal(t, errors.ErrEmptyCollection, err)
}

func TestStdDev(t *testing.T) {
	stdDev, err := StdDev[float64](types.Slice[float64]{1.0, 2.0, 3.0})
	assert.Nil(t, err)
	assert.Equal(t, math.Sqrt(2.0/3.0), stdDev)

	_, err = StdDev[int64](types.Slice[int64]{})
	assert.Equal(t, errors.ErrEmptyCollection, err)
}

func TestMinMax(t *testing.T) {
	minVal, err := Min[float64](types.Slice[float64]{2.0, 1.0, 3.0})
	assert.Nil(t, err)
	assert.Equal(t, 1.0, minVal)

	maxVal, err := Max[float64](types.Slice[float64]{2.0, 1.0, 3.0})
	assert.Nil(t, err)
	assert.Equal(t, 3.0, maxVal)

	_, err = Min[int64](types.Slice[int64]{})
	assert.Equal(t, errors.ErrEmptyCollection, err)

	_, err = Max[int64](types.Slice[int64]{})
	assert.Equal(t, errors.ErrEmptyCollection, err)
}

func TestMinMaxNaNTolerance(t *testing.T) {
	minVal, err := Min[float64](types.Slice[float64]{1.0, math.NaN()})
	assert.Nil(t, err)
	assert.Equal(t, 1.0, minVal)

	maxVal, err := Max[float64](types.Slice[float64]{math.NaN(), 1.0})
	assert.Nil(t, err)
	assert.Equal(t, 1.0, maxVal)
}

func TestRange(t *testing.T) {
	rng, err := Range[float64](types.Slice[float64]{1.0, 2.0, 3.0})
	assert.Nil(t, err)
	assert.Equal(t, 2.0, rng)

	_, err = Range[int64](types.Slice[int64]{})
	assert.Equal(t, errors.ErrEmptyCollection, err)
}

func TestIdempotence(t *testing.T) {
	input := types.Slice[float64]{3.0, 1.0, 2.0}

	first, err := Variance[float64](input)
	assert.Nil(t, err)

	second, err := Variance[float64](input)
	assert.Nil(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, types.Slice[float64]{3.0, 1.0, 2.0}, input)
}

func TestDescribe(t *testing.T) {
	summary, err := Describe[float64](types.Slice[float64]{1.0, 2.0, 3.0})
	assert.Nil(t, err)
	assert.Equal(t, &Summary[float64]{
		Count:    3,
		Sum:      6.0,
		Mean:     2.0,
		Variance: 2.0 / 3.0,
		StdDev:   math.Sqrt(2.0 / 3.0),
		Min:      1.0,
		Max:      3.0,
		Range:    2.0,
	}, summary)

	_, err = Describe[int64](types.Slice[int64]{})
	assert.Equal(t, errors.ErrEmptyCollection, err)
}
