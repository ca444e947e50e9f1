package num

import (
	goerrors "errors"
	"math"
	"testing"

	"github.com/longbridgeapp/assert"

	"github.com/hyp3rd/numstats/errors"
)

func TestFromCount(t *testing.T) {
	got, err := FromCount[int8](127)
	assert.Nil(t, err)
	assert.Equal(t, int8(127), got)

	// int8 holds [-128, 127]; a count of 128 does not fit.
	_, err = FromCount[int8](128)
	assert.Equal(t, &errors.ConversionError{From: errors.DataTypeUsize, To: errors.DataTypeItem}, err)

	_, err = FromCount[uint8](256)
	assert.Equal(t, &errors.ConversionError{From: errors.DataTypeUsize, To: errors.DataTypeItem}, err)

	gotU, err := FromCount[uint64](math.MaxUint64)
	assert.Nil(t, err)
	assert.Equal(t, uint64(math.MaxUint64), gotU)
}

func TestFromCountFloatAlwaysAccepts(t *testing.T) {
	gotF, err := FromCount[float64](1 << 62)
	assert.Nil(t, err)
	assert.Equal(t, float64(1<<62), gotF)

	gotF32, err := FromCount[float32](3)
	assert.Nil(t, err)
	assert.Equal(t, float32(3), gotF32)
}

func TestToFloat64(t *testing.T) {
	got, err := ToFloat64(int32(-42))
	assert.Nil(t, err)
	assert.Equal(t, -42.0, got)

	got, err = ToFloat64(2.5)
	assert.Nil(t, err)
	assert.Equal(t, 2.5, got)

	// 64-bit integers outside the float64 exact window must fail.
	_, err = ToFloat64(int64(1<<53) + 1)
	assert.Equal(t, &errors.ConversionError{From: errors.DataTypeItem, To: errors.DataTypeF64}, err)

	_, err = ToFloat64(uint64(math.MaxUint64))
	assert.Equal(t, &errors.ConversionError{From: errors.DataTypeItem, To: errors.DataTypeF64}, err)
}

func TestToFloat64NaNPassesThrough(t *testing.T) {
	got, err := ToFloat64(math.NaN())
	assert.Nil(t, err)
	assert.True(t, math.IsNaN(got))
}

func TestFromFloat64(t *testing.T) {
	got, err := FromFloat64[int8](127.9)
	assert.Nil(t, err)
	assert.Equal(t, int8(127), got) // truncates toward zero

	gotNeg, err := FromFloat64[int32](-1.9)
	assert.Nil(t, err)
	assert.Equal(t, int32(-1), gotNeg)

	_, err = FromFloat64[int8](128.0)
	assert.Equal(t, &errors.ConversionError{From: errors.DataTypeF64, To: errors.DataTypeItem}, err)

	_, err = FromFloat64[uint16](-1.0)
	assert.Equal(t, &errors.ConversionError{From: errors.DataTypeF64, To: errors.DataTypeItem}, err)

	_, err = FromFloat64[int64](math.Inf(1))
	assert.Equal(t, &errors.ConversionError{From: errors.DataTypeF64, To: errors.DataTypeItem}, err)

	_, err = FromFloat64[uint32](math.NaN())
	assert.Equal(t, &errors.ConversionError{From: errors.DataTypeF64, To: errors.DataTypeItem}, err)
}

func TestFromFloat64FloatAlwaysAccepts(t *testing.T) {
	got, err := FromFloat64[float32](2.5)
	assert.Nil(t, err)
	assert.Equal(t, float32(2.5), got)

	gotNaN, err := FromFloat64[float64](math.NaN())
	assert.Nil(t, err)
	assert.True(t, math.IsNaN(gotNaN))
}

func TestConversionErrorMatchesSentinel(t *testing.T) {
	_, err := FromCount[int8](128)
	assert.True(t, goerrors.Is(err, errors.ErrCouldNotConvert))
}
