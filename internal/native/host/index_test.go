package host

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/23skdu/arrayfire-go/internal/native"
)

var span = native.Seq{Begin: 1, End: 1, Step: 0}

func TestSeqIndices(t *testing.T) {
	tests := []struct {
		name string
		seq  native.Seq
		n    int64
		want []int64
		ok   bool
	}{
		{"Span", span, 3, []int64{0, 1, 2}, true},
		{"Range", native.Seq{Begin: 1, End: 3, Step: 1}, 5, []int64{1, 2, 3}, true},
		{"FromEnd", native.Seq{Begin: -2, End: -1, Step: 1}, 5, []int64{3, 4}, true},
		{"Stepped", native.Seq{Begin: 0, End: 4, Step: 2}, 5, []int64{0, 2, 4}, true},
		{"Reverse", native.Seq{Begin: 2, End: 0, Step: -1}, 3, []int64{2, 1, 0}, true},
		{"Single", native.Seq{Begin: 2, End: 2, Step: 0}, 3, []int64{2}, true},
		{"OutOfRange", native.Seq{Begin: 0, End: 5, Step: 1}, 3, nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := seqIndices(tt.seq, tt.n)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestIndex(t *testing.T) {
	l := New()
	// [1 3 5; 2 4 6]
	m := mk(t, l, native.F32, []float64{1, 2, 3, 4, 5, 6}, 2, 3)

	t.Run("Column", func(t *testing.T) {
		out := ok(t, l)(l.Index(m, []native.Seq{span, {Begin: 2, End: 2, Step: 1}}))
		assert.Equal(t, [4]int64{2, 1, 1, 1}, shapeOf(t, l, out))
		assert.Equal(t, []float64{5, 6}, values(t, l, out))
	})

	t.Run("Row", func(t *testing.T) {
		out := ok(t, l)(l.Index(m, []native.Seq{{Begin: 0, End: 0, Step: 1}}))
		assert.Equal(t, []float64{1, 3, 5}, values(t, l, out))
	})

	t.Run("OutOfRange", func(t *testing.T) {
		_, c := l.Index(m, []native.Seq{{Begin: 0, End: 9, Step: 1}})
		assert.Equal(t, native.ErrArg, c)
	})

	t.Run("Lookup", func(t *testing.T) {
		v := mk(t, l, native.F32, []float64{10, 20, 30}, 3)
		idx := mk(t, l, native.S32, []float64{2, 0}, 2)
		out := ok(t, l)(l.Lookup(v, idx, 0))
		assert.Equal(t, []float64{30, 10}, values(t, l, out))

		bad := mk(t, l, native.S32, []float64{3}, 1)
		_, c := l.Lookup(v, bad, 0)
		assert.Equal(t, native.ErrArg, c)
	})

	t.Run("IndexGen", func(t *testing.T) {
		v := mk(t, l, native.F32, []float64{10, 20, 30, 40}, 4)
		idx := mk(t, l, native.U32, []float64{3, 1}, 2)
		out := ok(t, l)(l.IndexGen(v, []native.Index{{Arr: idx}}))
		assert.Equal(t, []float64{40, 20}, values(t, l, out))

		cols := mk(t, l, native.S32, []float64{2, 0}, 2)
		out = ok(t, l)(l.IndexGen(m, []native.Index{{Seq: span, IsSeq: true}, {Arr: cols}}))
		assert.Equal(t, [4]int64{2, 2, 1, 1}, shapeOf(t, l, out))
		assert.Equal(t, []float64{5, 6, 1, 2}, values(t, l, out))
	})
}

func TestAssign(t *testing.T) {
	l := New()

	t.Run("Seq", func(t *testing.T) {
		lhs := mk(t, l, native.F32, []float64{0, 0, 0, 0}, 4)
		rhs := mk(t, l, native.F32, []float64{7, 8}, 2)
		out, c := l.AssignSeq(lhs, []native.Seq{{Begin: 1, End: 2, Step: 1}}, rhs)
		require.Equal(t, native.Success, c)
		assert.Equal(t, lhs, out)
		assert.Equal(t, []float64{0, 7, 8, 0}, values(t, l, lhs))
	})

	t.Run("ScalarBroadcast", func(t *testing.T) {
		lhs := mk(t, l, native.S32, []float64{1, 2, 3}, 3)
		rhs := mk(t, l, native.F64, []float64{9.7}, 1)
		_, c := l.AssignSeq(lhs, []native.Seq{span}, rhs)
		require.Equal(t, native.Success, c)
		assert.Equal(t, []float64{9, 9, 9}, values(t, l, lhs))
	})

	t.Run("SizeMismatch", func(t *testing.T) {
		lhs := mk(t, l, native.F32, []float64{0, 0, 0}, 3)
		rhs := mk(t, l, native.F32, []float64{1, 2}, 2)
		_, c := l.AssignSeq(lhs, []native.Seq{span}, rhs)
		assert.Equal(t, native.ErrSize, c)
	})

	t.Run("DetachesRetained", func(t *testing.T) {
		lhs := mk(t, l, native.F32, []float64{1, 2}, 2)
		kept := ok(t, l)(l.Retain(lhs))
		rhs := mk(t, l, native.F32, []float64{5}, 1)
		_, c := l.AssignSeq(lhs, []native.Seq{{Begin: 0, End: 0, Step: 1}}, rhs)
		require.Equal(t, native.Success, c)
		assert.Equal(t, []float64{5, 2}, values(t, l, lhs))
		assert.Equal(t, []float64{1, 2}, values(t, l, kept))
	})

	t.Run("Gen", func(t *testing.T) {
		lhs := mk(t, l, native.F64, []float64{0, 0, 0, 0}, 4)
		idx := mk(t, l, native.S32, []float64{3, 0}, 2)
		rhs := mk(t, l, native.F64, []float64{1, 2}, 2)
		out, c := l.AssignGen(lhs, []native.Index{{Arr: idx}}, rhs)
		require.Equal(t, native.Success, c)
		assert.Equal(t, lhs, out)
		assert.Equal(t, []float64{2, 0, 0, 1}, values(t, l, lhs))
	})
}
