package host

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/23skdu/arrayfire-go/internal/native"
)

func TestMeanAndVariance(t *testing.T) {
	l := New()
	m := mk(t, l, native.F32, []float64{1, 2, 3, 4}, 2, 2)
	v := mk(t, l, native.S32, []float64{1, 2, 3, 4}, 4)

	t.Run("MeanAlongDim", func(t *testing.T) {
		out := ok(t, l)(l.Mean(m, 0))
		assert.Equal(t, [4]int64{1, 2, 1, 1}, shapeOf(t, l, out))
		assert.Equal(t, []float64{1.5, 3.5}, values(t, l, out))
	})

	t.Run("MeanAllOfIntegers", func(t *testing.T) {
		re, im, c := l.MeanAll(v)
		require.Equal(t, native.Success, c)
		assert.Equal(t, 2.5, re)
		assert.Zero(t, im)
	})

	t.Run("IntegerMeanIsFloat", func(t *testing.T) {
		out := ok(t, l)(l.Mean(v, -1))
		assert.Equal(t, native.F32, typeOf(t, l, out))
	})

	t.Run("Weighted", func(t *testing.T) {
		x := mk(t, l, native.F64, []float64{1, 2}, 2)
		w := mk(t, l, native.F64, []float64{3, 1}, 2)
		re, _, c := l.MeanAllWeighted(x, w)
		require.Equal(t, native.Success, c)
		assert.InDelta(t, 1.25, re, tol)

		short := mk(t, l, native.F64, []float64{1}, 1)
		_, c = l.MeanWeighted(x, short, 0)
		assert.Equal(t, native.ErrSize, c)
	})

	t.Run("VarianceBias", func(t *testing.T) {
		pop, _, c := l.VarAll(v, biasDefault)
		require.Equal(t, native.Success, c)
		assert.InDelta(t, 1.25, pop, tol)

		sample, _, c := l.VarAll(v, biasSample)
		require.Equal(t, native.Success, c)
		assert.InDelta(t, 5.0/3, sample, tol)

		sd, _, c := l.StdevAll(v, biasPopulation)
		require.Equal(t, native.Success, c)
		assert.InDelta(t, 1.118033988749895, sd, tol)

		_, c = l.Var(v, 7, 0)
		assert.Equal(t, native.ErrArg, c)
	})

	t.Run("MeanVar", func(t *testing.T) {
		mean, variance, c := l.MeanVar(m, 0, biasPopulation, 0)
		require.Equal(t, native.Success, c)
		assert.Equal(t, []float64{1.5, 3.5}, values(t, l, mean))
		assert.Equal(t, []float64{0.25, 0.25}, values(t, l, variance))
	})

	t.Run("ComplexVariance", func(t *testing.T) {
		z := mkc(t, l, native.C32, []float64{1, 2}, []float64{0, 1}, 2)
		_, c := l.Var(z, biasDefault, 0)
		assert.Equal(t, native.ErrNotSupported, c)
	})
}

func TestMedian(t *testing.T) {
	l := New()
	even := mk(t, l, native.F64, []float64{4, 1, 3, 2}, 4)
	odd := mk(t, l, native.F64, []float64{3, 1, 2}, 3)

	re, _, c := l.MedianAll(even)
	require.Equal(t, native.Success, c)
	assert.Equal(t, 2.5, re)

	re, _, c = l.MedianAll(odd)
	require.Equal(t, native.Success, c)
	assert.Equal(t, 2.0, re)

	cols := mk(t, l, native.F64, []float64{1, 5, 9, 2, 8, 4}, 3, 2)
	out := ok(t, l)(l.Median(cols, 0))
	assert.Equal(t, []float64{5, 4}, values(t, l, out))
}

func TestCovariance(t *testing.T) {
	l := New()
	x := mk(t, l, native.F64, []float64{1, 2, 3}, 3)
	y := mk(t, l, native.F64, []float64{2, 4, 6}, 3)

	out := ok(t, l)(l.Cov(x, x, biasSample))
	assert.InDeltaSlice(t, []float64{1}, values(t, l, out), tol)

	out = ok(t, l)(l.Cov(x, x, biasPopulation))
	assert.InDeltaSlice(t, []float64{2.0 / 3}, values(t, l, out), tol)

	r, _, c := l.Corrcoef(x, y)
	require.Equal(t, native.Success, c)
	assert.InDelta(t, 1, r, tol)

	one := mk(t, l, native.F64, []float64{1}, 1)
	_, c = l.Cov(one, one, biasSample)
	assert.Equal(t, native.ErrSize, c)
}

func TestTopK(t *testing.T) {
	l := New()
	x := mk(t, l, native.F32, []float64{1, 5, 3, 4}, 4)

	t.Run("Max", func(t *testing.T) {
		vals, idx, c := l.TopK(x, 2, 0, topkDefault)
		require.Equal(t, native.Success, c)
		assert.Equal(t, []float64{5, 4}, values(t, l, vals))
		assert.Equal(t, []float64{1, 3}, values(t, l, idx))
		assert.Equal(t, native.U32, typeOf(t, l, idx))
	})

	t.Run("Min", func(t *testing.T) {
		vals, idx, c := l.TopK(x, 1, 0, topkMin)
		require.Equal(t, native.Success, c)
		assert.Equal(t, []float64{1}, values(t, l, vals))
		assert.Equal(t, []float64{0}, values(t, l, idx))
	})

	t.Run("KOutOfRange", func(t *testing.T) {
		_, _, c := l.TopK(x, 5, 0, topkDefault)
		assert.Equal(t, native.ErrArg, c)
	})
}
