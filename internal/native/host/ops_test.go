package host

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/23skdu/arrayfire-go/internal/native"
)

func TestBinary(t *testing.T) {
	l := New()
	a := mk(t, l, native.F64, []float64{1, 2, 3, 4}, 2, 2)

	t.Run("BroadcastColumn", func(t *testing.T) {
		b := mk(t, l, native.F64, []float64{10, 20}, 2, 1)
		out := ok(t, l)(l.Binary(native.OpAdd, a, b, false))
		assert.Equal(t, [4]int64{2, 2, 1, 1}, shapeOf(t, l, out))
		assert.Equal(t, []float64{11, 22, 13, 24}, values(t, l, out))
	})

	t.Run("SameShapeSub", func(t *testing.T) {
		x := mk(t, l, native.F64, []float64{5, 7}, 2)
		y := mk(t, l, native.F64, []float64{1, 2}, 2)
		out := ok(t, l)(l.Binary(native.OpSub, x, y, false))
		assert.Equal(t, []float64{4, 5}, values(t, l, out))
	})

	t.Run("ComparisonIsBool", func(t *testing.T) {
		x := mk(t, l, native.F64, []float64{1, 5}, 2)
		y := mk(t, l, native.F64, []float64{3, 3}, 2)
		out := ok(t, l)(l.Binary(native.OpLt, x, y, false))
		assert.Equal(t, native.B8, typeOf(t, l, out))
		assert.Equal(t, []float64{1, 0}, values(t, l, out))
	})

	t.Run("IntegerDivisionTruncates", func(t *testing.T) {
		x := mk(t, l, native.S32, []float64{7, -7}, 2)
		y := mk(t, l, native.S32, []float64{2, 2}, 2)
		out := ok(t, l)(l.Binary(native.OpDiv, x, y, false))
		assert.Equal(t, native.S32, typeOf(t, l, out))
		assert.Equal(t, []float64{3, -3}, values(t, l, out))
	})

	t.Run("Promotion", func(t *testing.T) {
		x := mk(t, l, native.S32, []float64{1}, 1)
		y := mk(t, l, native.F32, []float64{0.5}, 1)
		out := ok(t, l)(l.Binary(native.OpMul, x, y, false))
		assert.Equal(t, native.F32, typeOf(t, l, out))
	})

	t.Run("ShapeMismatch", func(t *testing.T) {
		x := mk(t, l, native.F64, []float64{1, 2, 3}, 3)
		_, c := l.Binary(native.OpAdd, a, x, false)
		assert.Equal(t, native.ErrSize, c)
		assert.Contains(t, l.LastError(), "dimension mismatch")
	})

	t.Run("Clamp", func(t *testing.T) {
		x := mk(t, l, native.F64, []float64{-5, 0.5, 9}, 3)
		lo := mk(t, l, native.F64, []float64{0}, 1)
		hi := mk(t, l, native.F64, []float64{1}, 1)
		out := ok(t, l)(l.Clamp(x, lo, hi, false))
		assert.Equal(t, []float64{0, 0.5, 1}, values(t, l, out))
	})
}

func TestUnary(t *testing.T) {
	l := New()

	t.Run("Sqrt", func(t *testing.T) {
		x := mk(t, l, native.F64, []float64{4, 9}, 2)
		out := ok(t, l)(l.Unary(native.OpSqrt, x))
		assert.Equal(t, []float64{2, 3}, values(t, l, out))
	})

	t.Run("IntegerInputGivesFloat", func(t *testing.T) {
		x := mk(t, l, native.S32, []float64{1}, 1)
		out := ok(t, l)(l.Unary(native.OpExp, x))
		assert.Equal(t, native.F32, typeOf(t, l, out))
		assert.InDelta(t, math.E, values(t, l, out)[0], 1e-6)
	})

	t.Run("ComplexAbs", func(t *testing.T) {
		x := mkc(t, l, native.C64, []float64{3}, []float64{4}, 1)
		out := ok(t, l)(l.Unary(native.OpAbs, x))
		assert.Equal(t, native.F64, typeOf(t, l, out))
		assert.Equal(t, []float64{5}, values(t, l, out))
	})

	t.Run("BitNotRejectsFloat", func(t *testing.T) {
		x := mk(t, l, native.F32, []float64{1}, 1)
		_, c := l.Unary(native.OpBitNot, x)
		assert.Equal(t, native.ErrType, c)
	})

	t.Run("Cast", func(t *testing.T) {
		x := mk(t, l, native.F64, []float64{1.7, -2.2}, 2)
		out := ok(t, l)(l.Cast(x, native.S32))
		assert.Equal(t, []float64{1, -2}, values(t, l, out))
	})
}

func TestData(t *testing.T) {
	l := New()
	tests := []struct {
		name string
		make func() (native.Handle, native.Code)
		want []float64
	}{
		{"ConstantQuantized", func() (native.Handle, native.Code) {
			return l.Constant(2.5, []int64{2}, native.S32)
		}, []float64{2, 2}},
		{"RangeDim0", func() (native.Handle, native.Code) {
			return l.Range([]int64{3, 2}, 0, native.F32)
		}, []float64{0, 1, 2, 0, 1, 2}},
		{"RangeDim1", func() (native.Handle, native.Code) {
			return l.Range([]int64{3, 2}, 1, native.F32)
		}, []float64{0, 0, 0, 1, 1, 1}},
		{"Iota", func() (native.Handle, native.Code) {
			return l.Iota([]int64{2}, []int64{2}, native.F32)
		}, []float64{0, 1, 0, 1}},
		{"Identity", func() (native.Handle, native.Code) {
			return l.Identity([]int64{2, 2}, native.F64)
		}, []float64{1, 0, 0, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := ok(t, l)(tt.make())
			assert.Equal(t, tt.want, values(t, l, h))
		})
	}

	v := mk(t, l, native.F64, []float64{1, 2, 3}, 3)
	m := mk(t, l, native.F64, []float64{1, 2, 3, 4}, 2, 2)

	t.Run("Join", func(t *testing.T) {
		w := mk(t, l, native.F64, []float64{4}, 1)
		out := ok(t, l)(l.Join(0, []native.Handle{v, w}))
		assert.Equal(t, []float64{1, 2, 3, 4}, values(t, l, out))
	})

	t.Run("Tile", func(t *testing.T) {
		out := ok(t, l)(l.Tile(v, [4]uint32{2, 1, 1, 1}))
		assert.Equal(t, []float64{1, 2, 3, 1, 2, 3}, values(t, l, out))
	})

	t.Run("Flip", func(t *testing.T) {
		out := ok(t, l)(l.Flip(v, 0))
		assert.Equal(t, []float64{3, 2, 1}, values(t, l, out))
	})

	t.Run("Shift", func(t *testing.T) {
		out := ok(t, l)(l.Shift(v, [4]int32{1}))
		assert.Equal(t, []float64{3, 1, 2}, values(t, l, out))
	})

	t.Run("Reorder", func(t *testing.T) {
		out := ok(t, l)(l.Reorder(m, [4]uint32{1, 0, 2, 3}))
		assert.Equal(t, []float64{1, 3, 2, 4}, values(t, l, out))
	})

	t.Run("Moddims", func(t *testing.T) {
		out := ok(t, l)(l.Moddims(m, []int64{4}))
		assert.Equal(t, [4]int64{4, 1, 1, 1}, shapeOf(t, l, out))
		_, c := l.Moddims(m, []int64{3})
		assert.Equal(t, native.ErrSize, c)
	})

	t.Run("Lower", func(t *testing.T) {
		out := ok(t, l)(l.Lower(m, false))
		assert.Equal(t, []float64{1, 2, 0, 4}, values(t, l, out))
		out = ok(t, l)(l.Upper(m, true))
		assert.Equal(t, []float64{1, 0, 3, 1}, values(t, l, out))
	})

	t.Run("Diag", func(t *testing.T) {
		d := ok(t, l)(l.DiagCreate(v, 0))
		assert.Equal(t, [4]int64{3, 3, 1, 1}, shapeOf(t, l, d))
		back := ok(t, l)(l.DiagExtract(d, 0))
		assert.Equal(t, []float64{1, 2, 3}, values(t, l, back))
	})

	t.Run("Select", func(t *testing.T) {
		cond := mk(t, l, native.B8, []float64{1, 0, 1}, 3)
		other := mk(t, l, native.F64, []float64{9, 9, 9}, 3)
		out := ok(t, l)(l.Select(cond, v, other))
		assert.Equal(t, []float64{1, 9, 3}, values(t, l, out))
		out = ok(t, l)(l.SelectScalarR(cond, v, -1))
		assert.Equal(t, []float64{1, -1, 3}, values(t, l, out))
	})

	t.Run("ReplaceScalar", func(t *testing.T) {
		x := mk(t, l, native.F64, []float64{1, 2, 3}, 3)
		cond := mk(t, l, native.B8, []float64{1, 0, 0}, 3)
		require.Equal(t, native.Success, l.ReplaceScalar(x, cond, 0))
		assert.Equal(t, []float64{1, 0, 0}, values(t, l, x))
	})

	t.Run("Pad", func(t *testing.T) {
		x := mk(t, l, native.F64, []float64{1, 2}, 2)
		out := ok(t, l)(l.Pad(x, []int64{1}, []int64{1}, padZero))
		assert.Equal(t, []float64{0, 1, 2, 0}, values(t, l, out))
		out = ok(t, l)(l.Pad(x, []int64{1}, []int64{1}, padClamp))
		assert.Equal(t, []float64{1, 1, 2, 2}, values(t, l, out))
	})
}

func TestReductions(t *testing.T) {
	l := New()
	m := mk(t, l, native.F64, []float64{1, 2, 3, 4}, 2, 2)

	t.Run("SumAlongDim", func(t *testing.T) {
		out := ok(t, l)(l.Reduce(native.ReduceSum, m, 0))
		assert.Equal(t, [4]int64{1, 2, 1, 1}, shapeOf(t, l, out))
		assert.Equal(t, []float64{3, 7}, values(t, l, out))
		out = ok(t, l)(l.Reduce(native.ReduceSum, m, 1))
		assert.Equal(t, []float64{4, 6}, values(t, l, out))
	})

	t.Run("SumWidensSmallIntegers", func(t *testing.T) {
		x := mk(t, l, native.S16, []float64{1, 2}, 2)
		out := ok(t, l)(l.Reduce(native.ReduceSum, x, -1))
		assert.Equal(t, native.S32, typeOf(t, l, out))
	})

	t.Run("MaxSkipsNaN", func(t *testing.T) {
		x := mk(t, l, native.F64, []float64{1, math.NaN(), 3}, 3)
		re, _, c := l.ReduceAll(native.ReduceMax, x)
		require.Equal(t, native.Success, c)
		assert.Equal(t, 3.0, re)
	})

	t.Run("NaNSubstitution", func(t *testing.T) {
		x := mk(t, l, native.F64, []float64{1, math.NaN(), 2}, 3)
		re, _, c := l.ReduceAllNaN(native.ReduceSum, x, 0)
		require.Equal(t, native.Success, c)
		assert.Equal(t, 3.0, re)
		_, _, c = l.ReduceAllNaN(native.ReduceMin, x, 0)
		assert.Equal(t, native.ErrNotSupported, c)
	})

	t.Run("CountAndAny", func(t *testing.T) {
		x := mk(t, l, native.F64, []float64{0, 2, 0, 5}, 4)
		n, _, _ := l.ReduceAll(native.ReduceCount, x)
		assert.Equal(t, 2.0, n)
		anyTrue, _, _ := l.ReduceAll(native.ReduceAnyTrue, x)
		assert.Equal(t, 1.0, anyTrue)
		allTrue, _, _ := l.ReduceAll(native.ReduceAllTrue, x)
		assert.Equal(t, 0.0, allTrue)
	})

	t.Run("IndexedMax", func(t *testing.T) {
		x := mk(t, l, native.F64, []float64{3, 9, 2}, 3)
		re, _, idx, c := l.IReduceAll(native.IndexedMax, x)
		require.Equal(t, native.Success, c)
		assert.Equal(t, 9.0, re)
		assert.Equal(t, uint32(1), idx)
	})
}

func TestScanSortAndSets(t *testing.T) {
	l := New()

	t.Run("Accum", func(t *testing.T) {
		x := mk(t, l, native.F64, []float64{1, 2, 3}, 3)
		out := ok(t, l)(l.Accum(x, 0))
		assert.Equal(t, []float64{1, 3, 6}, values(t, l, out))
		out = ok(t, l)(l.Scan(x, 0, native.ScanAdd, false))
		assert.Equal(t, []float64{0, 1, 3}, values(t, l, out))
	})

	t.Run("Where", func(t *testing.T) {
		x := mk(t, l, native.F64, []float64{0, 1, 0, 1}, 4)
		out := ok(t, l)(l.Where(x))
		assert.Equal(t, native.U32, typeOf(t, l, out))
		assert.Equal(t, []float64{1, 3}, values(t, l, out))
	})

	t.Run("Diff1", func(t *testing.T) {
		x := mk(t, l, native.F64, []float64{1, 4, 9}, 3)
		out := ok(t, l)(l.Diff1(x, 0))
		assert.Equal(t, []float64{3, 5}, values(t, l, out))
	})

	t.Run("Sort", func(t *testing.T) {
		x := mk(t, l, native.F64, []float64{3, 1, 2}, 3)
		out := ok(t, l)(l.Sort(x, 0, false))
		assert.Equal(t, []float64{3, 2, 1}, values(t, l, out))
		vals, idx, c := l.SortIndex(x, 0, true)
		require.Equal(t, native.Success, c)
		assert.Equal(t, []float64{1, 2, 3}, values(t, l, vals))
		assert.Equal(t, []float64{1, 2, 0}, values(t, l, idx))
	})

	t.Run("Unique", func(t *testing.T) {
		x := mk(t, l, native.F64, []float64{3, 1, 3, 2}, 4)
		out := ok(t, l)(l.SetUnique(x, false))
		assert.Equal(t, []float64{1, 2, 3}, values(t, l, out))
	})

	t.Run("Union", func(t *testing.T) {
		x := mk(t, l, native.F64, []float64{1, 3}, 2)
		y := mk(t, l, native.F64, []float64{2, 3}, 2)
		out := ok(t, l)(l.SetOp(native.SetUnion, x, y, true))
		assert.Equal(t, []float64{1, 2, 3}, values(t, l, out))
		out = ok(t, l)(l.SetOp(native.SetIntersect, x, y, true))
		assert.Equal(t, []float64{3}, values(t, l, out))
	})
}
