package host

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/23skdu/arrayfire-go/internal/native"
)

func TestFFT(t *testing.T) {
	l := New()

	t.Run("Impulse", func(t *testing.T) {
		x := mk(t, l, native.F32, []float64{1, 0, 0, 0}, 4)
		out := ok(t, l)(l.FFT(native.Forward, 1, x, 1, [3]int64{}))
		assert.Equal(t, native.C32, typeOf(t, l, out))
		re, im := complexValues(t, l, out)
		assert.InDeltaSlice(t, []float64{1, 1, 1, 1}, re, tol)
		assert.InDeltaSlice(t, []float64{0, 0, 0, 0}, im, tol)
	})

	t.Run("Ramp", func(t *testing.T) {
		x := mk(t, l, native.F64, []float64{1, 2, 3, 4}, 4)
		out := ok(t, l)(l.FFT(native.Forward, 1, x, 1, [3]int64{}))
		re, im := complexValues(t, l, out)
		assert.InDeltaSlice(t, []float64{10, -2, -2, -2}, re, tol)
		assert.InDeltaSlice(t, []float64{0, 2, 0, -2}, im, tol)

		back := ok(t, l)(l.FFT(native.Inverse, 1, out, 0.25, [3]int64{}))
		re, im = complexValues(t, l, back)
		assert.InDeltaSlice(t, []float64{1, 2, 3, 4}, re, tol)
		assert.InDeltaSlice(t, []float64{0, 0, 0, 0}, im, tol)
	})

	t.Run("Padded", func(t *testing.T) {
		x := mk(t, l, native.F32, []float64{1, 1}, 2)
		out := ok(t, l)(l.FFT(native.Forward, 1, x, 1, [3]int64{4}))
		assert.Equal(t, [4]int64{4, 1, 1, 1}, shapeOf(t, l, out))
	})

	t.Run("TwoDimensional", func(t *testing.T) {
		x := mk(t, l, native.F64, []float64{1, 1, 1, 1}, 2, 2)
		out := ok(t, l)(l.FFT(native.Forward, 2, x, 1, [3]int64{}))
		re, _ := complexValues(t, l, out)
		assert.InDeltaSlice(t, []float64{4, 0, 0, 0}, re, tol)
	})

	t.Run("InplaceNeedsComplex", func(t *testing.T) {
		x := mk(t, l, native.F32, []float64{1, 2}, 2)
		assert.Equal(t, native.ErrType, l.FFTInplace(native.Forward, 1, x, 1))

		z := mkc(t, l, native.C64, []float64{1, 0}, []float64{0, 0}, 2)
		require.Equal(t, native.Success, l.FFTInplace(native.Forward, 1, z, 1))
		re, _ := complexValues(t, l, z)
		assert.InDeltaSlice(t, []float64{1, 1}, re, tol)
	})

	t.Run("IntegerInput", func(t *testing.T) {
		x := mk(t, l, native.S32, []float64{1, 2}, 2)
		_, c := l.FFT(native.Forward, 1, x, 1, [3]int64{})
		assert.Equal(t, native.ErrType, c)
	})

	t.Run("RealRoundTrip", func(t *testing.T) {
		x := mk(t, l, native.F32, []float64{1, 2, 3, 4}, 4)
		half := ok(t, l)(l.FFTR2C(1, x, 1, [3]int64{}))
		assert.Equal(t, [4]int64{3, 1, 1, 1}, shapeOf(t, l, half))
		re, im := complexValues(t, l, half)
		assert.InDeltaSlice(t, []float64{10, -2, -2}, re, tol)
		assert.InDeltaSlice(t, []float64{0, 2, 0}, im, tol)

		back := ok(t, l)(l.FFTC2R(1, half, 0.25, false))
		assert.Equal(t, native.F32, typeOf(t, l, back))
		assert.InDeltaSlice(t, []float64{1, 2, 3, 4}, values(t, l, back), 1e-6)
	})
}

func TestConvolve(t *testing.T) {
	l := New()
	x := mk(t, l, native.F32, []float64{1, 2, 3, 4, 5}, 5)
	box := mk(t, l, native.F32, []float64{1, 1, 1}, 3)

	t.Run("Default", func(t *testing.T) {
		out := ok(t, l)(l.Convolve(1, x, box, convDefault, domainAuto))
		assert.Equal(t, []float64{3, 6, 9, 12, 9}, values(t, l, out))
	})

	t.Run("Expand", func(t *testing.T) {
		a := mk(t, l, native.F32, []float64{1, 2}, 2)
		f := mk(t, l, native.F32, []float64{1, 1}, 2)
		out := ok(t, l)(l.Convolve(1, a, f, convExpand, domainSpatial))
		assert.Equal(t, []float64{1, 3, 2}, values(t, l, out))
	})

	t.Run("FrequencyDomainMatches", func(t *testing.T) {
		out := ok(t, l)(l.FFTConvolve(1, x, box, convDefault))
		assert.Equal(t, []float64{3, 6, 9, 12, 9}, values(t, l, out))
	})

	t.Run("Separable", func(t *testing.T) {
		img := mk(t, l, native.F32, []float64{0, 0, 0, 0, 1, 0, 0, 0, 0}, 3, 3)
		col := mk(t, l, native.F32, []float64{1, 2, 1}, 3)
		row := mk(t, l, native.F32, []float64{1, 0, -1}, 3)
		out := ok(t, l)(l.Convolve2Sep(col, row, img, convDefault))
		assert.Equal(t, [4]int64{3, 3, 1, 1}, shapeOf(t, l, out))
		assert.Equal(t, []float64{1, 2, 1, 0, 0, 0, -1, -2, -1}, values(t, l, out))
	})

	t.Run("InvalidMode", func(t *testing.T) {
		_, c := l.Convolve(1, x, box, 5, domainAuto)
		assert.Equal(t, native.ErrArg, c)
		_, c = l.Convolve(1, x, box, convDefault, 9)
		assert.Equal(t, native.ErrArg, c)
	})
}

func TestFilters(t *testing.T) {
	l := New()

	t.Run("FIR", func(t *testing.T) {
		b := mk(t, l, native.F32, []float64{1, 1}, 2)
		x := mk(t, l, native.F32, []float64{1, 2, 3}, 3)
		out := ok(t, l)(l.FIR(b, x))
		assert.Equal(t, []float64{1, 3, 5}, values(t, l, out))
	})

	t.Run("IIR", func(t *testing.T) {
		b := mk(t, l, native.F64, []float64{1}, 1)
		a := mk(t, l, native.F64, []float64{1, -0.5}, 2)
		x := mk(t, l, native.F64, []float64{1, 0, 0}, 3)
		out := ok(t, l)(l.IIR(b, a, x))
		assert.InDeltaSlice(t, []float64{1, 0.5, 0.25}, values(t, l, out), tol)

		zero := mk(t, l, native.F64, []float64{0}, 1)
		_, c := l.IIR(b, zero, x)
		assert.Equal(t, native.ErrArg, c)
	})

	t.Run("Medfilt1", func(t *testing.T) {
		x := mk(t, l, native.F32, []float64{1, 9, 2, 3}, 4)
		out := ok(t, l)(l.Medfilt1(x, 3, padZero))
		assert.Equal(t, []float64{1, 2, 3, 2}, values(t, l, out))

		_, c := l.Medfilt1(x, 2, padZero)
		assert.Equal(t, native.ErrArg, c)
	})

	t.Run("Approx1", func(t *testing.T) {
		in := mk(t, l, native.F32, []float64{0, 10, 20}, 3)
		pos := mk(t, l, native.F32, []float64{0.5, 2, 5}, 3)
		out := ok(t, l)(l.Approx1(in, pos, interpLinear, -1))
		assert.Equal(t, []float64{5, 20, -1}, values(t, l, out))

		out = ok(t, l)(l.Approx1(in, pos, interpNearest, 0))
		assert.Equal(t, []float64{10, 20, 0}, values(t, l, out))
	})

	t.Run("PlanCache", func(t *testing.T) {
		assert.Equal(t, native.Success, l.SetFFTPlanCacheSize(8))
	})
}
