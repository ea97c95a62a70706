package host

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/23skdu/arrayfire-go/internal/native"
)

func TestRandomEngine(t *testing.T) {
	l := New()

	t.Run("Reproducible", func(t *testing.T) {
		e1 := ok(t, l)(l.CreateRandomEngine(enginePhilox, 42))
		e2 := ok(t, l)(l.CreateRandomEngine(enginePhilox, 42))
		a := values(t, l, ok(t, l)(l.RandomUniform([]int64{16}, native.F64, e1)))
		b := values(t, l, ok(t, l)(l.RandomUniform([]int64{16}, native.F64, e2)))
		assert.Equal(t, a, b)
		for _, v := range a {
			assert.GreaterOrEqual(t, v, 0.0)
			assert.Less(t, v, 1.0)
		}
	})

	t.Run("TypeChangesStream", func(t *testing.T) {
		e1 := ok(t, l)(l.CreateRandomEngine(enginePhilox, 7))
		e2 := ok(t, l)(l.CreateRandomEngine(engineMersenne, 7))
		a := values(t, l, ok(t, l)(l.RandomUniform([]int64{8}, native.F64, e1)))
		b := values(t, l, ok(t, l)(l.RandomUniform([]int64{8}, native.F64, e2)))
		assert.NotEqual(t, a, b)
	})

	t.Run("Properties", func(t *testing.T) {
		e := ok(t, l)(l.CreateRandomEngine(engineThreefry, 3))
		typ, c := l.RandomEngineType(e)
		require.Equal(t, native.Success, c)
		assert.Equal(t, engineThreefry, typ)

		require.Equal(t, native.Success, l.RandomEngineSetType(e, engineMersenne))
		typ, _ = l.RandomEngineType(e)
		assert.Equal(t, engineMersenne, typ)

		require.Equal(t, native.Success, l.RandomEngineSetSeed(e, 99))
		seed, c := l.RandomEngineSeed(e)
		require.Equal(t, native.Success, c)
		assert.Equal(t, uint64(99), seed)

		assert.Equal(t, native.ErrArg, l.RandomEngineSetType(e, 5))
		_, c = l.CreateRandomEngine(1, 0)
		assert.Equal(t, native.ErrArg, c)
	})

	t.Run("RetainShares", func(t *testing.T) {
		e := ok(t, l)(l.CreateRandomEngine(enginePhilox, 5))
		r := ok(t, l)(l.RetainRandomEngine(e))
		require.Equal(t, native.Success, l.RandomEngineSetSeed(r, 11))
		seed, _ := l.RandomEngineSeed(e)
		assert.Equal(t, uint64(11), seed)

		require.Equal(t, native.Success, l.ReleaseRandomEngine(e))
		_, c := l.RandomEngineSeed(e)
		assert.Equal(t, native.ErrArg, c)
		seed, c = l.RandomEngineSeed(r)
		require.Equal(t, native.Success, c)
		assert.Equal(t, uint64(11), seed)
	})

	t.Run("DefaultEngine", func(t *testing.T) {
		d, c := l.DefaultRandomEngine()
		require.Equal(t, native.Success, c)
		require.Equal(t, native.Success, l.ReleaseRandomEngine(d))
		_, c = l.RandomEngineType(d)
		assert.Equal(t, native.Success, c)

		require.Equal(t, native.Success, l.SetSeed(123))
		seed, _ := l.Seed()
		assert.Equal(t, uint64(123), seed)
		a := values(t, l, ok(t, l)(l.Randu([]int64{4}, native.F32)))
		require.Equal(t, native.Success, l.SetSeed(123))
		b := values(t, l, ok(t, l)(l.Randu([]int64{4}, native.F32)))
		assert.Equal(t, a, b)
	})
}

func TestRandomTypes(t *testing.T) {
	l := New()

	t.Run("NormalNeedsFloat", func(t *testing.T) {
		_, c := l.Randn([]int64{2}, native.S32)
		assert.Equal(t, native.ErrType, c)
	})

	t.Run("Complex", func(t *testing.T) {
		h := ok(t, l)(l.Randn([]int64{3}, native.C64))
		re, im := complexValues(t, l, h)
		assert.Len(t, re, 3)
		assert.Len(t, im, 3)
	})

	t.Run("Bool", func(t *testing.T) {
		h := ok(t, l)(l.Randu([]int64{32}, native.B8))
		for _, v := range values(t, l, h) {
			assert.Contains(t, []float64{0, 1}, v)
		}
	})

	t.Run("Bytes", func(t *testing.T) {
		h := ok(t, l)(l.Randu([]int64{32}, native.U8))
		for _, v := range values(t, l, h) {
			assert.GreaterOrEqual(t, v, 0.0)
			assert.LessOrEqual(t, v, 255.0)
		}
	})

	t.Run("Shape", func(t *testing.T) {
		h := ok(t, l)(l.Randu([]int64{2, 3}, native.F32))
		assert.Equal(t, [4]int64{2, 3, 1, 1}, shapeOf(t, l, h))
	})
}
