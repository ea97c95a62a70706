//go:build !af_no_arithmetic && !af_no_data

package af

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBinary(t *testing.T) {
	a := vec(t, 1.0, 2.0, 3.0)
	b := vec(t, 4.0, 5.0, 6.0)

	tests := []struct {
		name string
		fn   func(x, y *Array, batch bool) (*Array, error)
		want []float64
	}{
		{"Add", Add, []float64{5, 7, 9}},
		{"Sub", Sub, []float64{-3, -3, -3}},
		{"Mul", Mul, []float64{4, 10, 18}},
		{"Div", Div, []float64{0.25, 0.4, 0.5}},
		{"MinOf", MinOf, []float64{1, 2, 3}},
		{"MaxOf", MaxOf, []float64{4, 5, 6}},
		{"Pow", Pow, []float64{1, 32, 729}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := keep(t)(tt.fn(a, b, false))
			assert.InDeltaSlice(t, tt.want, hostOf[float64](t, out), 1e-12)
		})
	}

	t.Run("Broadcast", func(t *testing.T) {
		hostOnly(t)
		ten := vec(t, 10.0)
		out := keep(t)(Add(a, ten, false))
		assert.Equal(t, []float64{11, 12, 13}, hostOf[float64](t, out))
	})

	t.Run("Compare", func(t *testing.T) {
		out := keep(t)(a.Lt(keep(t)(Constant(2.0, NewDim4(3)))))
		assert.Equal(t, B8, dtype(t, out))
		assert.Equal(t, []bool{true, false, false}, hostOf[bool](t, out))

		eq := keep(t)(a.Eq(a))
		assert.Equal(t, []bool{true, true, true}, hostOf[bool](t, eq))
	})

	t.Run("Promotion", func(t *testing.T) {
		f := vec(t, float32(1), 2, 3)
		out := keep(t)(Add(f, a, false))
		assert.Equal(t, F64, dtype(t, out))
	})

	t.Run("ShapeMismatch", func(t *testing.T) {
		short := vec(t, 1.0, 2.0)
		_, err := Add(a, short, false)
		assert.ErrorIs(t, err, ErrSize)
		var afErr *Error
		require.ErrorAs(t, err, &afErr)
		assert.Equal(t, "add", afErr.Op)
	})

	t.Run("Released", func(t *testing.T) {
		gone, err := NewArray([]float64{1}, NewDim4(1))
		require.NoError(t, err)
		require.NoError(t, gone.Release())
		_, err = Add(a, gone, false)
		assert.ErrorIs(t, err, ErrReleased)
	})
}

func TestUnary(t *testing.T) {
	x := vec(t, -4.0, 0.0, 9.0)

	abs := keep(t)(x.Abs())
	assert.Equal(t, []float64{4, 0, 9}, hostOf[float64](t, abs))

	root := keep(t)(Sqrt(abs))
	assert.Equal(t, []float64{2, 0, 3}, hostOf[float64](t, root))

	sign := keep(t)(Sign(x))
	assert.Equal(t, []float64{1, 0, 0}, hostOf[float64](t, sign))

	zero := keep(t)(IsZero(x))
	assert.Equal(t, []bool{false, true, false}, hostOf[bool](t, zero))

	e := keep(t)(keep(t)(Exp(vec(t, 0.0, 1.0))).Log())
	assert.InDeltaSlice(t, []float64{0, 1}, hostOf[float64](t, e), 1e-12)

	nan := keep(t)(IsNaN(vec(t, math.NaN(), 1.0)))
	assert.Equal(t, []bool{true, false}, hostOf[bool](t, nan))

	t.Run("Complex", func(t *testing.T) {
		z := vec(t, complex(3, 4))
		assert.Equal(t, []float64{5}, hostOf[float64](t, keep(t)(Abs(z))))
		assert.Equal(t, []float64{3}, hostOf[float64](t, keep(t)(Real(z))))
		assert.Equal(t, []float64{4}, hostOf[float64](t, keep(t)(Imag(z))))
		assert.Equal(t, []complex128{complex(3, -4)}, hostOf[complex128](t, keep(t)(Conjg(z))))
	})
}

func TestScalarOps(t *testing.T) {
	x := vec(t, float32(1), 2, 3)

	tests := []struct {
		name string
		out  *Array
		want []float32
	}{
		{"AddScalar", keep(t)(x.AddScalar(1)), []float32{2, 3, 4}},
		{"MulScalar", keep(t)(x.MulScalar(2)), []float32{2, 4, 6}},
		{"SubScalar", keep(t)(SubScalar(x, 1)), []float32{0, 1, 2}},
		{"DivScalar", keep(t)(DivScalar(x, 2)), []float32{0.5, 1, 1.5}},
		{"ScalarSub", keep(t)(ScalarSub(10, x)), []float32{9, 8, 7}},
		{"ScalarDiv", keep(t)(ScalarDiv(6, x)), []float32{6, 3, 2}},
		{"PowScalar", keep(t)(PowScalar(x, 2)), []float32{1, 4, 9}},
		{"Neg", keep(t)(x.Neg()), []float32{-1, -2, -3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, F32, dtype(t, tt.out))
			assert.Equal(t, tt.want, hostOf[float32](t, tt.out))
		})
	}

	t.Run("IntegerKeepsType", func(t *testing.T) {
		i := vec(t, int32(5), 7)
		out := keep(t)(AddScalar(i, 1))
		assert.Equal(t, []int32{6, 8}, hostOf[int32](t, out))
	})
}

func TestCastAndClamp(t *testing.T) {
	x := vec(t, -2.0, 0.5, 3.0)

	c := keep(t)(x.Cast(F32))
	assert.Equal(t, []float32{-2, 0.5, 3}, hostOf[float32](t, c))

	lo := keep(t)(Constant(0.0, NewDim4(3)))
	hi := keep(t)(Constant(1.0, NewDim4(3)))
	out := keep(t)(Clamp(x, lo, hi, false))
	assert.Equal(t, []float64{0, 0.5, 1}, hostOf[float64](t, out))

	b := keep(t)(Cast(vec(t, 0.0, 2.0), B8))
	assert.Equal(t, []bool{false, true}, hostOf[bool](t, b))
}
