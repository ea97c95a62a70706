//go:build !af_no_index

package af

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// grid is the 3x3 matrix [1 4 7; 2 5 8; 3 6 9].
func grid(t *testing.T) *Array {
	t.Helper()
	return keep(t)(NewArray([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9}, NewDim4(3, 3)))
}

func TestIndex(t *testing.T) {
	m := grid(t)

	tests := []struct {
		name string
		seqs []Seq
		dims Dim4
		want []float64
	}{
		{"Block", []Seq{NewSeq(0, 1), NewSeq(1, 2)}, NewDim4(2, 2), []float64{4, 5, 7, 8}},
		{"Strided", []Seq{{Begin: 0, End: -1, Step: 2}, Span}, NewDim4(2, 3), []float64{1, 3, 4, 6, 7, 9}},
		{"FromEnd", []Seq{NewSeq(-1, -1)}, NewDim4(1, 3), []float64{3, 6, 9}},
		{"Reversed", []Seq{{Begin: 2, End: 0, Step: -1}, NewSeq(0, 0)}, NewDim4(3), []float64{3, 2, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := keep(t)(Index(m, tt.seqs...))
			assert.Equal(t, tt.dims, dims(t, out))
			assert.Equal(t, tt.want, hostOf[float64](t, out))
		})
	}

	t.Run("RowsAndCols", func(t *testing.T) {
		r := keep(t)(Row(m, 1))
		assert.Equal(t, NewDim4(1, 3), dims(t, r))
		assert.Equal(t, []float64{2, 5, 8}, hostOf[float64](t, r))

		c := keep(t)(Col(m, -1))
		assert.Equal(t, []float64{7, 8, 9}, hostOf[float64](t, c))

		cs := keep(t)(Cols(m, 0, 1))
		assert.Equal(t, NewDim4(3, 2), dims(t, cs))

		s := keep(t)(Slice(m, 0))
		assert.Equal(t, NewDim4(3, 3), dims(t, s))
	})

	t.Run("Lookup", func(t *testing.T) {
		idx := vec(t, int32(2), int32(0))
		out := keep(t)(Lookup(m, idx, 1))
		assert.Equal(t, []float64{7, 8, 9, 1, 2, 3}, hostOf[float64](t, out))
	})

	t.Run("Invalid", func(t *testing.T) {
		_, err := Index(m)
		assert.ErrorIs(t, err, ErrArg)
		_, err = Index(m, Span, Span, Span, Span, Span)
		assert.ErrorIs(t, err, ErrArg)
		_, err = Row(m, 5)
		assert.ErrorIs(t, err, ErrArg)
	})
}

func TestAssign(t *testing.T) {
	t.Run("Broadcast", func(t *testing.T) {
		m := grid(t)
		zero := keep(t)(NewArray([]float64{0}, NewDim4(1)))
		require.NoError(t, AssignSeq(m, zero, NewSeq(0, 1), NewSeq(0, 1)))
		assert.Equal(t, []float64{0, 0, 3, 0, 0, 6, 7, 8, 9}, hostOf[float64](t, m))
	})

	t.Run("SetRow", func(t *testing.T) {
		m := grid(t)
		row := keep(t)(NewArray([]float64{-1, -2, -3}, NewDim4(1, 3)))
		require.NoError(t, SetRow(m, row, 0))
		assert.Equal(t, []float64{-1, 2, 3, -2, 5, 6, -3, 8, 9}, hostOf[float64](t, m))
	})

	t.Run("SetCol", func(t *testing.T) {
		m := grid(t)
		require.NoError(t, SetCol(m, vec(t, 0.0, 0.0, 0.0), 2))
		assert.Equal(t, []float64{1, 2, 3, 4, 5, 6, 0, 0, 0}, hostOf[float64](t, m))
	})

	t.Run("DetachesRetained", func(t *testing.T) {
		m := grid(t)
		alias := keep(t)(m.Retain())
		require.NoError(t, SetCol(m, vec(t, 0.0, 0.0, 0.0), 0))
		assert.Equal(t, []float64{1, 2, 3}, hostOf[float64](t, keep(t)(Col(alias, 0))))
		assert.Equal(t, []float64{0, 0, 0}, hostOf[float64](t, keep(t)(Col(m, 0))))
	})

	t.Run("SizeMismatch", func(t *testing.T) {
		m := grid(t)
		err := SetRow(m, vec(t, 1.0, 2.0), 0)
		assert.ErrorIs(t, err, ErrSize)
	})

	t.Run("Released", func(t *testing.T) {
		m, err := NewArray([]float64{1}, NewDim4(1))
		require.NoError(t, err)
		require.NoError(t, m.Release())
		assert.ErrorIs(t, AssignSeq(m, vec(t, 2.0), Span), ErrReleased)
	})
}

func TestIndexer(t *testing.T) {
	m := grid(t)
	rows := vec(t, int32(2), int32(0))

	ix := NewIndexer()
	require.NoError(t, ix.SetArray(0, rows, false))
	require.NoError(t, ix.SetSeq(1, NewSeq(0, 1), false))

	out := keep(t)(IndexGen(m, ix))
	assert.Equal(t, NewDim4(2, 2), dims(t, out))
	assert.Equal(t, []float64{3, 1, 6, 4}, hostOf[float64](t, out))

	t.Run("Assign", func(t *testing.T) {
		dst := grid(t)
		require.NoError(t, AssignGen(dst, ix, keep(t)(NewArray([]float64{0}, NewDim4(1)))))
		assert.Equal(t, []float64{0, 2, 0, 0, 5, 0, 7, 8, 9}, hostOf[float64](t, dst))
	})

	t.Run("Validation", func(t *testing.T) {
		assert.ErrorIs(t, NewIndexer().SetSeq(4, Span, false), ErrArg)
		_, err := IndexGen(m, NewIndexer())
		assert.ErrorIs(t, err, ErrArg)

		gone, err := NewArray([]int32{0}, NewDim4(1))
		require.NoError(t, err)
		stale := NewIndexer()
		require.NoError(t, stale.SetArray(0, gone, false))
		require.NoError(t, gone.Release())
		_, err = IndexGen(m, stale)
		assert.ErrorIs(t, err, ErrReleased)
	})
}
