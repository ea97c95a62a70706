//go:build !af_no_signal

package af

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parts(t *testing.T, a *Array) (re, im []float64) {
	t.Helper()
	for _, z := range hostOf[complex128](t, a) {
		re = append(re, real(z))
		im = append(im, imag(z))
	}
	return re, im
}

func TestFFT(t *testing.T) {
	x := vec(t, 1.0, 2.0, 3.0, 4.0)

	f := keep(t)(FFT(x, 1, 0))
	assert.Equal(t, C64, dtype(t, f))
	re, im := parts(t, f)
	assert.InDeltaSlice(t, []float64{10, -2, -2, -2}, re, tol)
	assert.InDeltaSlice(t, []float64{0, 2, 0, -2}, im, tol)

	t.Run("RoundTrip", func(t *testing.T) {
		back := keep(t)(IFFTNorm(f, 1))
		re, im := parts(t, back)
		assert.InDeltaSlice(t, []float64{1, 2, 3, 4}, re, tol)
		assert.InDeltaSlice(t, []float64{0, 0, 0, 0}, im, tol)

		scaled := keep(t)(IFFT(f, 0.25, 0))
		re, _ = parts(t, scaled)
		assert.InDeltaSlice(t, []float64{1, 2, 3, 4}, re, tol)
	})

	t.Run("Padded", func(t *testing.T) {
		p := keep(t)(FFT(vec(t, 1.0, 1.0), 1, 4))
		assert.Equal(t, NewDim4(4), dims(t, p))
	})

	t.Run("TwoDimensional", func(t *testing.T) {
		m := keep(t)(NewArray([]float64{1, 1, 1, 1}, NewDim4(2, 2)))
		f2 := keep(t)(FFT2(m, 1, 0, 0))
		re, _ := parts(t, f2)
		assert.InDeltaSlice(t, []float64{4, 0, 0, 0}, re, tol)
	})

	t.Run("Inplace", func(t *testing.T) {
		z := vec(t, complex(1.0, 0), complex(0.0, 0))
		require.NoError(t, FFTInplace(z, 1))
		re, _ := parts(t, z)
		assert.InDeltaSlice(t, []float64{1, 1}, re, tol)

		err := FFTInplace(vec(t, 1.0, 2.0), 1)
		assert.ErrorIs(t, err, ErrType)
	})

	t.Run("RealToComplex", func(t *testing.T) {
		half := keep(t)(FFTR2C(x, 1, 0))
		assert.Equal(t, NewDim4(3), dims(t, half))
		back := keep(t)(FFTC2R(half, 0.25, false))
		assert.Equal(t, F64, dtype(t, back))
		assert.InDeltaSlice(t, []float64{1, 2, 3, 4}, hostOf[float64](t, back), 1e-6)
	})
}

func TestConvolve(t *testing.T) {
	x := vec(t, float32(1), 2, 3, 4, 5)
	box := vec(t, float32(1), 1, 1)

	same := keep(t)(Convolve1(x, box, ConvDefault, ConvDomainAuto))
	assert.Equal(t, []float32{3, 6, 9, 12, 9}, hostOf[float32](t, same))

	full := keep(t)(Convolve1(vec(t, float32(1), 2), vec(t, float32(1), 1), ConvExpand, ConvDomainSpatial))
	assert.Equal(t, []float32{1, 3, 2}, hostOf[float32](t, full))

	freq := keep(t)(FFTConvolve1(x, box, ConvDefault))
	assert.InDeltaSlice(t, []float32{3, 6, 9, 12, 9}, hostOf[float32](t, freq), 1e-4)

	t.Run("Separable", func(t *testing.T) {
		img := keep(t)(NewArray([]float32{0, 0, 0, 0, 1, 0, 0, 0, 0}, NewDim4(3, 3)))
		out := keep(t)(Convolve2Sep(vec(t, float32(1), 2, 1), vec(t, float32(1), 0, -1), img, ConvDefault))
		assert.Equal(t, []float32{1, 2, 1, 0, 0, 0, -1, -2, -1}, hostOf[float32](t, out))
	})

	_, err := Convolve1(x, box, ConvMode(5), ConvDomainAuto)
	assert.ErrorIs(t, err, ErrArg)
}

func TestFilters(t *testing.T) {
	fir := keep(t)(FIR(vec(t, float32(1), 1), vec(t, float32(1), 2, 3)))
	assert.Equal(t, []float32{1, 3, 5}, hostOf[float32](t, fir))

	iir := keep(t)(IIR(vec(t, 1.0), vec(t, 1.0, -0.5), vec(t, 1.0, 0.0, 0.0)))
	assert.InDeltaSlice(t, []float64{1, 0.5, 0.25}, hostOf[float64](t, iir), tol)

	med := keep(t)(Medfilt1(vec(t, float32(1), 9, 2, 3), 3, PadZero))
	assert.Equal(t, []float32{1, 2, 3, 2}, hostOf[float32](t, med))

	in := vec(t, float32(0), 10, 20)
	pos := vec(t, float32(0.5), 2, 5)
	ap := keep(t)(Approx1(in, pos, InterpLinear, -1))
	assert.Equal(t, []float32{5, 20, -1}, hostOf[float32](t, ap))

	require.NoError(t, SetFFTPlanCacheSize(8))
}
