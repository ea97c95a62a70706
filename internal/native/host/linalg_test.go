package host

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/23skdu/arrayfire-go/internal/native"
)

const tol = 1e-9

func TestMatmul(t *testing.T) {
	l := New()
	// A = [1 2; 3 4], B = [5 6; 7 8], column-major.
	a := mk(t, l, native.F64, []float64{1, 3, 2, 4}, 2, 2)
	b := mk(t, l, native.F64, []float64{5, 7, 6, 8}, 2, 2)

	t.Run("Plain", func(t *testing.T) {
		out := ok(t, l)(l.Matmul(a, b, matNone, matNone))
		assert.Equal(t, []float64{19, 43, 22, 50}, values(t, l, out))
	})

	t.Run("TransposedLeft", func(t *testing.T) {
		out := ok(t, l)(l.Matmul(a, b, matTrans, matNone))
		assert.Equal(t, []float64{26, 38, 30, 44}, values(t, l, out))
	})

	t.Run("Batched", func(t *testing.T) {
		batch := mk(t, l, native.F64, []float64{1, 3, 2, 4, 1, 0, 0, 1}, 2, 2, 2)
		out := ok(t, l)(l.Matmul(batch, b, matNone, matNone))
		assert.Equal(t, [4]int64{2, 2, 2, 1}, shapeOf(t, l, out))
		assert.Equal(t, []float64{19, 43, 22, 50, 5, 7, 6, 8}, values(t, l, out))
	})

	t.Run("Complex", func(t *testing.T) {
		x := mkc(t, l, native.C64, []float64{0}, []float64{1}, 1, 1)
		out := ok(t, l)(l.Matmul(x, x, matNone, matNone))
		re, im := complexValues(t, l, out)
		assert.Equal(t, []float64{-1}, re)
		assert.Equal(t, []float64{0}, im)
	})

	t.Run("InnerMismatch", func(t *testing.T) {
		wide := mk(t, l, native.F64, []float64{1, 2, 3, 4, 5, 6}, 2, 3)
		_, c := l.Matmul(wide, b, matNone, matNone)
		assert.Equal(t, native.ErrSize, c)
	})

	t.Run("TypeMismatch", func(t *testing.T) {
		f := mk(t, l, native.F32, []float64{1, 2, 3, 4}, 2, 2)
		_, c := l.Matmul(a, f, matNone, matNone)
		assert.Equal(t, native.ErrDiffType, c)
	})
}

func TestDotAndTranspose(t *testing.T) {
	l := New()
	x := mk(t, l, native.F64, []float64{1, 2, 3}, 3)
	y := mk(t, l, native.F64, []float64{4, 5, 6}, 3)

	re, _, c := l.DotAll(x, y, matNone, matNone)
	require.Equal(t, native.Success, c)
	assert.Equal(t, 32.0, re)

	d := ok(t, l)(l.Dot(x, y, matNone, matNone))
	assert.Equal(t, [4]int64{1, 1, 1, 1}, shapeOf(t, l, d))

	m := mk(t, l, native.F64, []float64{1, 2, 3, 4, 5, 6}, 2, 3)
	tr := ok(t, l)(l.Transpose(m, false))
	assert.Equal(t, [4]int64{3, 2, 1, 1}, shapeOf(t, l, tr))
	assert.Equal(t, []float64{1, 3, 5, 2, 4, 6}, values(t, l, tr))

	assert.Equal(t, native.ErrSize, l.TransposeInplace(m, false))
	sq := mk(t, l, native.F64, []float64{1, 2, 3, 4}, 2, 2)
	require.Equal(t, native.Success, l.TransposeInplace(sq, false))
	assert.Equal(t, []float64{1, 3, 2, 4}, values(t, l, sq))
}

func TestFactorizations(t *testing.T) {
	l := New()

	t.Run("Det", func(t *testing.T) {
		a := mk(t, l, native.F64, []float64{1, 3, 2, 4}, 2, 2)
		re, _, c := l.Det(a)
		require.Equal(t, native.Success, c)
		assert.InDelta(t, -2, re, tol)
	})

	t.Run("Inverse", func(t *testing.T) {
		a := mk(t, l, native.F64, []float64{4, 2, 7, 6}, 2, 2)
		out := ok(t, l)(l.Inverse(a, matNone))
		assert.InDeltaSlice(t, []float64{0.6, -0.2, -0.7, 0.4}, values(t, l, out), tol)
	})

	t.Run("Solve", func(t *testing.T) {
		a := mk(t, l, native.F64, []float64{2, 0, 0, 4}, 2, 2)
		b := mk(t, l, native.F64, []float64{2, 8}, 2)
		out := ok(t, l)(l.Solve(a, b, matNone))
		assert.InDeltaSlice(t, []float64{1, 2}, values(t, l, out), tol)
		out = ok(t, l)(l.Solve(a, b, matUpper))
		assert.InDeltaSlice(t, []float64{1, 2}, values(t, l, out), tol)
	})

	t.Run("LU", func(t *testing.T) {
		a := mk(t, l, native.F64, []float64{1, 3, 2, 4}, 2, 2)
		lo, up, piv, c := l.LU(a)
		require.Equal(t, native.Success, c)
		assert.Equal(t, []float64{1, 0}, values(t, l, piv))
		assert.Equal(t, native.S32, typeOf(t, l, piv))
		assert.InDeltaSlice(t, []float64{1, 1.0 / 3, 0, 1}, values(t, l, lo), tol)
		assert.InDeltaSlice(t, []float64{3, 0, 4, 2.0 / 3}, values(t, l, up), tol)
	})

	t.Run("SolveLU", func(t *testing.T) {
		a := mk(t, l, native.F64, []float64{1, 3, 2, 4}, 2, 2)
		piv := ok(t, l)(l.LUInplace(a, true))
		assert.Equal(t, []float64{2, 2}, values(t, l, piv))
		// [1 2; 3 4] x = [5; 11] gives x = [1; 2].
		b := mk(t, l, native.F64, []float64{5, 11}, 2)
		x := ok(t, l)(l.SolveLU(a, piv, b, matNone))
		assert.InDeltaSlice(t, []float64{1, 2}, values(t, l, x), tol)
	})

	t.Run("QR", func(t *testing.T) {
		a := mk(t, l, native.F64, []float64{3, 4}, 2, 1)
		q, r, tau, c := l.QR(a)
		require.Equal(t, native.Success, c)
		assert.Equal(t, [4]int64{2, 2, 1, 1}, shapeOf(t, l, q))
		assert.Equal(t, [4]int64{1, 1, 1, 1}, shapeOf(t, l, tau))
		assert.InDelta(t, 5, math.Abs(values(t, l, r)[0]), tol)
		back := ok(t, l)(l.Matmul(q, r, matNone, matNone))
		assert.InDeltaSlice(t, []float64{3, 4}, values(t, l, back), tol)
	})

	t.Run("Cholesky", func(t *testing.T) {
		a := mk(t, l, native.F64, []float64{4, 2, 2, 3}, 2, 2)
		u, info, c := l.Cholesky(a, true)
		require.Equal(t, native.Success, c)
		assert.Zero(t, info)
		assert.InDeltaSlice(t, []float64{2, 0, 1, math.Sqrt2}, values(t, l, u), tol)
	})

	t.Run("CholeskyNotPositiveDefinite", func(t *testing.T) {
		a := mk(t, l, native.F64, []float64{1, 2, 2, 1}, 2, 2)
		info, c := l.CholeskyInplace(a, false)
		require.Equal(t, native.Success, c)
		assert.Equal(t, 2, info)
	})

	t.Run("SVD", func(t *testing.T) {
		a := mk(t, l, native.F64, []float64{2, 0, 0, 3}, 2, 2)
		u, s, vt, c := l.SVD(a)
		require.Equal(t, native.Success, c)
		assert.InDeltaSlice(t, []float64{3, 2}, values(t, l, s), tol)
		assert.Equal(t, [4]int64{2, 2, 1, 1}, shapeOf(t, l, u))
		assert.Equal(t, [4]int64{2, 2, 1, 1}, shapeOf(t, l, vt))
	})

	t.Run("RankAndPinverse", func(t *testing.T) {
		singular := mk(t, l, native.F64, []float64{1, 2, 2, 4}, 2, 2)
		r, c := l.Rank(singular, 1e-9)
		require.Equal(t, native.Success, c)
		assert.Equal(t, uint32(1), r)

		d := mk(t, l, native.F64, []float64{2, 0, 0, 4}, 2, 2)
		p := ok(t, l)(l.Pinverse(d, 1e-6, matNone))
		assert.InDeltaSlice(t, []float64{0.5, 0, 0, 0.25}, values(t, l, p), tol)
	})

	t.Run("ComplexNotSupported", func(t *testing.T) {
		x := mkc(t, l, native.C64, []float64{1}, []float64{1}, 1, 1)
		_, c := l.Inverse(x, matNone)
		assert.Equal(t, native.ErrNotSupported, c)
	})
}

func TestNorm(t *testing.T) {
	l := New()
	v := mk(t, l, native.F64, []float64{3, -4}, 2)
	// [1 -2; 3 4]
	m := mk(t, l, native.F64, []float64{1, 3, -2, 4}, 2, 2)
	tests := []struct {
		name string
		h    native.Handle
		typ  int
		p, q float64
		want float64
	}{
		{"Vector1", v, normVector1, 0, 0, 7},
		{"VectorInf", v, normVectorInf, 0, 0, 4},
		{"Vector2", v, normVector2, 0, 0, 5},
		{"VectorP", v, normVectorP, 1, 0, 7},
		{"Matrix1", m, normMatrix1, 0, 0, 6},
		{"MatrixInf", m, normMatrixInf, 0, 0, 7},
		{"MatrixLPQ", m, normMatrixLPQ, 1, 1, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, c := l.Norm(tt.h, tt.typ, tt.p, tt.q)
			require.Equal(t, native.Success, c)
			assert.InDelta(t, tt.want, got, tol)
		})
	}

	_, c := l.Norm(v, 99, 0, 0)
	assert.Equal(t, native.ErrArg, c)
	available, _ := l.LAPACKAvailable()
	assert.True(t, available)
}
