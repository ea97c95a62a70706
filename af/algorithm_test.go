//go:build !af_no_algorithm

package af

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReductions(t *testing.T) {
	m := keep(t)(NewArray([]float64{1, 2, 3, 4}, NewDim4(2, 2)))

	t.Run("AlongDim", func(t *testing.T) {
		s := keep(t)(Sum(m, 0))
		assert.Equal(t, NewDim4(1, 2), dims(t, s))
		assert.Equal(t, []float64{3, 7}, hostOf[float64](t, s))

		p := keep(t)(Product(m, 1))
		assert.Equal(t, []float64{3, 8}, hostOf[float64](t, p))

		lo := keep(t)(Min(m, 0))
		assert.Equal(t, []float64{1, 3}, hostOf[float64](t, lo))
		hi := keep(t)(Max(m, 0))
		assert.Equal(t, []float64{2, 4}, hostOf[float64](t, hi))
	})

	t.Run("All", func(t *testing.T) {
		re, im, err := SumAll(m)
		require.NoError(t, err)
		assert.Equal(t, 10.0, re)
		assert.Zero(t, im)

		re, _, err = ProductAll(m)
		require.NoError(t, err)
		assert.Equal(t, 24.0, re)

		re, _, err = MaxAll(m)
		require.NoError(t, err)
		assert.Equal(t, 4.0, re)
	})

	t.Run("Boolean", func(t *testing.T) {
		b := vec(t, true, false, true)
		n := keep(t)(Count(b, 0))
		assert.Equal(t, U32, dtype(t, n))
		assert.Equal(t, []uint32{2}, hostOf[uint32](t, n))

		all := keep(t)(AllTrue(b, 0))
		assert.Equal(t, []bool{false}, hostOf[bool](t, all))
		anyv, _, err := AnyTrueAll(b)
		require.NoError(t, err)
		assert.Equal(t, 1.0, anyv)
	})

	t.Run("NaN", func(t *testing.T) {
		v := vec(t, 1.0, math.NaN(), 2.0)
		s := keep(t)(SumNaN(v, 0, 10))
		assert.Equal(t, []float64{13}, hostOf[float64](t, s))
		re, _, err := ProductNaNAll(v, 1)
		require.NoError(t, err)
		assert.Equal(t, 2.0, re)
	})

	t.Run("PromotesSmallIntegers", func(t *testing.T) {
		s := keep(t)(Sum(vec(t, uint8(200), uint8(100)), 0))
		assert.Equal(t, U32, dtype(t, s))
		assert.Equal(t, []uint32{300}, hostOf[uint32](t, s))
	})
}

func TestByKey(t *testing.T) {
	keys := vec(t, int32(0), int32(0), int32(1), int32(1), int32(1))
	vals := vec(t, 1.0, 2.0, 3.0, 4.0, 5.0)

	k, v, err := SumByKey(keys, vals, 0)
	require.NoError(t, err)
	t.Cleanup(func() { _ = k.Release(); _ = v.Release() })
	assert.Equal(t, []int32{0, 1}, hostOf[int32](t, k))
	assert.Equal(t, []float64{3, 12}, hostOf[float64](t, v))

	k2, v2, err := MaxByKey(keys, vals, 0)
	require.NoError(t, err)
	t.Cleanup(func() { _ = k2.Release(); _ = v2.Release() })
	assert.Equal(t, []float64{2, 5}, hostOf[float64](t, v2))

	_, _, err = SumByKey(vec(t, int32(0)), vals, 0)
	assert.ErrorIs(t, err, ErrSize)
}

func TestIndexedReductions(t *testing.T) {
	v := vec(t, 3.0, 9.0, 1.0, 9.0)

	val, idx, err := IMax(v, 0)
	require.NoError(t, err)
	t.Cleanup(func() { _ = val.Release(); _ = idx.Release() })
	assert.Equal(t, []float64{9}, hostOf[float64](t, val))
	assert.Equal(t, U32, dtype(t, idx))
	assert.Equal(t, []uint32{1}, hostOf[uint32](t, idx))

	re, _, at, err := IMinAll(v)
	require.NoError(t, err)
	assert.Equal(t, 1.0, re)
	assert.Equal(t, uint32(2), at)
}

func TestScans(t *testing.T) {
	v := vec(t, 1.0, 2.0, 3.0)

	acc := keep(t)(Accum(v, 0))
	assert.Equal(t, []float64{1, 3, 6}, hostOf[float64](t, acc))

	ex := keep(t)(Scan(v, 0, BinaryAdd, false))
	assert.Equal(t, []float64{0, 1, 3}, hostOf[float64](t, ex))

	mul := keep(t)(Scan(v, 0, BinaryMul, true))
	assert.Equal(t, []float64{1, 2, 6}, hostOf[float64](t, mul))

	keys := vec(t, int32(0), int32(1), int32(1))
	bk := keep(t)(ScanByKey(keys, v, 0, BinaryAdd, true))
	assert.Equal(t, []float64{1, 2, 5}, hostOf[float64](t, bk))

	_, err := Scan(v, 0, BinaryOp(42), true)
	assert.ErrorIs(t, err, ErrArg)
}

func TestWhereAndDiff(t *testing.T) {
	w := keep(t)(Where(vec(t, 0.0, 1.0, 0.0, 2.0)))
	assert.Equal(t, U32, dtype(t, w))
	assert.Equal(t, []uint32{1, 3}, hostOf[uint32](t, w))

	none := keep(t)(Where(vec(t, 0.0, 0.0)))
	assert.Equal(t, int64(0), dims(t, none).Elements())

	v := vec(t, 1.0, 4.0, 9.0, 16.0)
	d1 := keep(t)(Diff1(v, 0))
	assert.Equal(t, []float64{3, 5, 7}, hostOf[float64](t, d1))
	d2 := keep(t)(Diff2(v, 0))
	assert.Equal(t, []float64{2, 2}, hostOf[float64](t, d2))

	_, err := Diff2(vec(t, 1.0, 2.0), 0)
	assert.ErrorIs(t, err, ErrSize)
}

func TestSorting(t *testing.T) {
	v := vec(t, 3.0, 1.0, 2.0)

	asc := keep(t)(Sort(v, 0, true))
	assert.Equal(t, []float64{1, 2, 3}, hostOf[float64](t, asc))
	desc := keep(t)(Sort(v, 0, false))
	assert.Equal(t, []float64{3, 2, 1}, hostOf[float64](t, desc))

	sv, si, err := SortIndex(v, 0, true)
	require.NoError(t, err)
	t.Cleanup(func() { _ = sv.Release(); _ = si.Release() })
	assert.Equal(t, []uint32{1, 2, 0}, hostOf[uint32](t, si))

	sk, svals, err := SortByKey(v, vec(t, int32(30), int32(10), int32(20)), 0, true)
	require.NoError(t, err)
	t.Cleanup(func() { _ = sk.Release(); _ = svals.Release() })
	assert.Equal(t, []int32{10, 20, 30}, hostOf[int32](t, svals))
}

func TestSets(t *testing.T) {
	a := vec(t, 3.0, 1.0, 3.0, 2.0)
	b := vec(t, 2.0, 5.0)

	u := keep(t)(SetUnique(a, false))
	assert.Equal(t, []float64{1, 2, 3}, hostOf[float64](t, u))

	un := keep(t)(SetUnion(a, b, false))
	assert.Equal(t, []float64{1, 2, 3, 5}, hostOf[float64](t, un))

	in := keep(t)(SetIntersect(a, b, false))
	assert.Equal(t, []float64{2}, hostOf[float64](t, in))
}

func TestMaxRagged(t *testing.T) {
	m := keep(t)(NewArray([]float64{1, 5, 2, 7, 3, 4}, NewDim4(3, 2)))
	lens := keep(t)(NewArray([]uint32{2, 3}, NewDim4(1, 2)))

	v, idx, err := MaxRagged(m, lens, 0)
	require.NoError(t, err)
	t.Cleanup(func() { _ = v.Release(); _ = idx.Release() })
	assert.Equal(t, []float64{5, 7}, hostOf[float64](t, v))
	assert.Equal(t, []uint32{1, 0}, hostOf[uint32](t, idx))
}
