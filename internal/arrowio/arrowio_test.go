package arrowio

import (
	"bytes"
	"testing"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/x448/float16"

	"github.com/23skdu/arrayfire-go/af"
)

func newArray[T af.HostType](t *testing.T, values []T, dims af.Dim4) *af.Array {
	t.Helper()
	a, err := af.NewArray(values, dims)
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Release() })
	return a
}

func TestRecord(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)
	c := NewConverter(mem)

	a := newArray(t, []float32{1, 2, 3, 4, 5, 6}, af.NewDim4(2, 3))
	rec, err := c.Record("weights", a)
	require.NoError(t, err)
	defer rec.Release()

	assert.Equal(t, int64(2), rec.NumRows())
	assert.Equal(t, int64(3), rec.NumCols())
	assert.Equal(t, "c1", rec.ColumnName(1))
	assert.Equal(t, []float32{3, 4}, rec.Column(1).(*array.Float32).Float32Values())

	name, typ, dims, err := Describe(rec.Schema())
	require.NoError(t, err)
	assert.Equal(t, "weights", name)
	assert.Equal(t, af.F32, typ)
	assert.Equal(t, af.NewDim4(2, 3), dims)

	t.Run("Complex", func(t *testing.T) {
		z := newArray(t, []complex128{complex(1, -1), complex(2, 0.5)}, af.NewDim4(2))
		rec, err := c.Record("", z)
		require.NoError(t, err)
		defer rec.Release()
		col := rec.Column(0).(*array.FixedSizeList)
		assert.Equal(t, []float64{1, -1, 2, 0.5}, col.ListValues().(*array.Float64).Float64Values())
	})

	t.Run("Released", func(t *testing.T) {
		gone, err := af.NewArray([]float32{1}, af.NewDim4(1))
		require.NoError(t, err)
		require.NoError(t, gone.Release())
		_, err = c.Record("", gone)
		assert.ErrorIs(t, err, af.ErrReleased)
	})
}

func roundTrip[T af.HostType](t *testing.T, c *Converter, values []T, dims af.Dim4) {
	t.Helper()
	a := newArray(t, values, dims)
	rec, err := c.Record("x", a)
	require.NoError(t, err)
	defer rec.Release()

	back, err := Array(rec)
	require.NoError(t, err)
	defer back.Release()
	got, err := af.Host[T](back)
	require.NoError(t, err)
	assert.Equal(t, values, got)
	d, err := back.Dims()
	require.NoError(t, err)
	assert.Equal(t, dims, d)
}

func TestArrayRoundTrip(t *testing.T) {
	c := NewConverter(nil)
	t.Run("f64", func(t *testing.T) { roundTrip(t, c, []float64{1.5, -2, 3}, af.NewDim4(3)) })
	t.Run("c32", func(t *testing.T) { roundTrip(t, c, []complex64{complex(1, 2), complex(3, 4)}, af.NewDim4(1, 2)) })
	t.Run("b8", func(t *testing.T) { roundTrip(t, c, []bool{true, false, true, true}, af.NewDim4(2, 2)) })
	t.Run("s32", func(t *testing.T) { roundTrip(t, c, []int32{-1, 0, 7, 9, 11, 13, 15, 17}, af.NewDim4(2, 2, 2)) })
	t.Run("u8", func(t *testing.T) { roundTrip(t, c, []uint8{0, 255}, af.NewDim4(2)) })
	t.Run("u64", func(t *testing.T) { roundTrip(t, c, []uint64{1 << 40, 3}, af.NewDim4(2)) })
	t.Run("f16", func(t *testing.T) {
		roundTrip(t, c, []af.Half{float16.Fromfloat32(0.5), float16.Fromfloat32(-2)}, af.NewDim4(2))
	})
}

func TestArrayRejects(t *testing.T) {
	mem := memory.NewGoAllocator()
	b := array.NewFloat32Builder(mem)
	defer b.Release()
	b.AppendValues([]float32{1, 2}, nil)
	col := b.NewArray()
	defer col.Release()
	fields := []arrow.Field{{Name: "c0", Type: arrow.PrimitiveTypes.Float32}}

	t.Run("NoMetadata", func(t *testing.T) {
		rec := array.NewRecordBatch(arrow.NewSchema(fields, nil), []arrow.Array{col}, 2)
		defer rec.Release()
		_, err := Array(rec)
		assert.ErrorIs(t, err, ErrSchema)
	})

	t.Run("WrongRows", func(t *testing.T) {
		md := arrow.NewMetadata([]string{metaType, metaDims}, []string{"f32", "3,1,1,1"})
		rec := array.NewRecordBatch(arrow.NewSchema(fields, &md), []arrow.Array{col}, 2)
		defer rec.Release()
		_, err := Array(rec)
		assert.ErrorIs(t, err, ErrSchema)
	})

	t.Run("WrongColumnType", func(t *testing.T) {
		md := arrow.NewMetadata([]string{metaType, metaDims}, []string{"s32", "2,1,1,1"})
		rec := array.NewRecordBatch(arrow.NewSchema(fields, &md), []arrow.Array{col}, 2)
		defer rec.Release()
		_, err := Array(rec)
		assert.ErrorIs(t, err, ErrSchema)
	})

	t.Run("UnknownType", func(t *testing.T) {
		md := arrow.NewMetadata([]string{metaType, metaDims}, []string{"q7", "2,1,1,1"})
		_, _, _, err := Describe(arrow.NewSchema(fields, &md))
		assert.ErrorIs(t, err, ErrType)
	})

	t.Run("BadDims", func(t *testing.T) {
		md := arrow.NewMetadata([]string{metaType, metaDims}, []string{"f32", "2,-1"})
		_, _, _, err := Describe(arrow.NewSchema(fields, &md))
		assert.ErrorIs(t, err, ErrSchema)
	})
}

func TestStream(t *testing.T) {
	c := NewConverter(nil)
	a := newArray(t, []float64{1, 2, 3, 4}, af.NewDim4(2, 2))

	var buf bytes.Buffer
	require.NoError(t, c.WriteStream(&buf, "grid", a))

	name, back, err := c.ReadStream(&buf)
	require.NoError(t, err)
	defer back.Release()
	assert.Equal(t, "grid", name)
	got, err := af.Host[float64](back)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3, 4}, got)

	_, _, err = c.ReadStream(bytes.NewReader(nil))
	assert.Error(t, err)
}
