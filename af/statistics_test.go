//go:build !af_no_statistics

package af

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatistics(t *testing.T) {
	// columns [1 2 3 4] and [2 4 6 8]
	m := keep(t)(NewArray([]float64{1, 2, 3, 4, 2, 4, 6, 8}, NewDim4(4, 2)))

	t.Run("Mean", func(t *testing.T) {
		mu := keep(t)(Mean(m, 0))
		assert.Equal(t, NewDim4(1, 2), dims(t, mu))
		assert.InDeltaSlice(t, []float64{2.5, 5}, hostOf[float64](t, mu), tol)

		re, im, err := MeanAll(m)
		require.NoError(t, err)
		assert.InDelta(t, 3.75, re, tol)
		assert.Zero(t, im)
	})

	t.Run("Weighted", func(t *testing.T) {
		x := vec(t, 1.0, 3.0)
		w := vec(t, 3.0, 1.0)
		re, _, err := MeanAllWeighted(x, w)
		require.NoError(t, err)
		assert.InDelta(t, 1.5, re, tol)

		_, _, err = MeanAllWeighted(x, vec(t, 1.0))
		assert.ErrorIs(t, err, ErrSize)
	})

	t.Run("Variance", func(t *testing.T) {
		x := vec(t, 1.0, 2.0, 3.0, 4.0)
		pop, _, err := VarAll(x, VariancePopulation)
		require.NoError(t, err)
		assert.InDelta(t, 1.25, pop, tol)
		sample, _, err := VarAll(x, VarianceSample)
		require.NoError(t, err)
		assert.InDelta(t, 5.0/3, sample, tol)
		sd, _, err := StdevAll(x, VariancePopulation)
		require.NoError(t, err)
		assert.InDelta(t, math.Sqrt(1.25), sd, tol)

		v := keep(t)(Var(m, VariancePopulation, 0))
		assert.InDeltaSlice(t, []float64{1.25, 5}, hostOf[float64](t, v), tol)

		_, _, err = VarAll(x, VarianceBias(7))
		assert.ErrorIs(t, err, ErrArg)
	})

	t.Run("MeanVar", func(t *testing.T) {
		mu, v, err := MeanVar(m, nil, VarianceSample, 0)
		require.NoError(t, err)
		t.Cleanup(func() { _ = mu.Release(); _ = v.Release() })
		assert.InDeltaSlice(t, []float64{2.5, 5}, hostOf[float64](t, mu), tol)
		assert.InDeltaSlice(t, []float64{5.0 / 3, 20.0 / 3}, hostOf[float64](t, v), tol)
	})

	t.Run("Median", func(t *testing.T) {
		med := keep(t)(Median(m, 0))
		assert.InDeltaSlice(t, []float64{2.5, 5}, hostOf[float64](t, med), tol)
		re, _, err := MedianAll(vec(t, 5.0, 1.0, 3.0))
		require.NoError(t, err)
		assert.Equal(t, 3.0, re)
	})

	t.Run("CovAndCorrelation", func(t *testing.T) {
		x := vec(t, 1.0, 2.0, 3.0, 4.0)
		y := vec(t, 2.0, 4.0, 6.0, 8.0)
		c := keep(t)(Cov(x, y, VarianceSample))
		assert.InDeltaSlice(t, []float64{10.0 / 3}, hostOf[float64](t, c), tol)
		r, _, err := Corrcoef(x, y)
		require.NoError(t, err)
		assert.InDelta(t, 1, r, tol)
	})

	t.Run("TopK", func(t *testing.T) {
		v := vec(t, 4.0, 1.0, 7.0, 3.0)
		vals, idx, err := TopK(v, 2, 0, TopkMax)
		require.NoError(t, err)
		t.Cleanup(func() { _ = vals.Release(); _ = idx.Release() })
		assert.Equal(t, []float64{7, 4}, hostOf[float64](t, vals))
		assert.Equal(t, []uint32{2, 0}, hostOf[uint32](t, idx))

		lo, loIdx, err := TopK(v, 1, 0, TopkMin)
		require.NoError(t, err)
		t.Cleanup(func() { _ = lo.Release(); _ = loIdx.Release() })
		assert.Equal(t, []float64{1}, hostOf[float64](t, lo))

		_, _, err = TopK(v, 9, 0, TopkMax)
		assert.ErrorIs(t, err, ErrArg)
	})
}

func TestTopKReleasesPartialOutputs(t *testing.T) {
	l := newRefLib()
	useLib(t, l)
	l.alloc(20)
	in := newArray(20)
	defer in.Release()

	v, i, err := TopK(in, 1, 0, TopkDefault)
	assert.ErrorIs(t, err, ErrInternal)
	assert.Nil(t, v)
	assert.Nil(t, i)
	assert.Equal(t, 1, l.released(21))
	assert.Equal(t, 1, l.released(22))
	assert.Equal(t, 0, l.ref(21)+l.ref(22))
}
