// Package arrowio converts arrays to Apache Arrow records and back.
//
// A record holds one array in column-major order: dimension 0 runs down the
// rows and every remaining (d1, d2, d3) position is one column, named
// "c<j>". The element type and the full shape travel in the schema
// metadata so the array can be rebuilt exactly. Complex elements are
// stored as fixed-size lists of two values (real, imaginary).
package arrowio

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	arrowf16 "github.com/apache/arrow-go/v18/arrow/float16"
	"github.com/apache/arrow-go/v18/arrow/ipc"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/x448/float16"

	"github.com/23skdu/arrayfire-go/af"
)

const (
	metaType = "af.dtype"
	metaDims = "af.dims"
	metaName = "af.name"
)

var (
	ErrSchema = errors.New("arrowio: record is not an array export")
	ErrType   = errors.New("arrowio: unsupported element type")
)

// Converter builds records with one allocator.
type Converter struct {
	mem memory.Allocator
}

// NewConverter returns a Converter; a nil allocator selects the Go allocator.
func NewConverter(mem memory.Allocator) *Converter {
	if mem == nil {
		mem = memory.NewGoAllocator()
	}
	return &Converter{mem: mem}
}

func elemType(t af.DType) (arrow.DataType, error) {
	switch t {
	case af.F32:
		return arrow.PrimitiveTypes.Float32, nil
	case af.F64:
		return arrow.PrimitiveTypes.Float64, nil
	case af.C32:
		return arrow.FixedSizeListOf(2, arrow.PrimitiveTypes.Float32), nil
	case af.C64:
		return arrow.FixedSizeListOf(2, arrow.PrimitiveTypes.Float64), nil
	case af.B8:
		return arrow.FixedWidthTypes.Boolean, nil
	case af.S32:
		return arrow.PrimitiveTypes.Int32, nil
	case af.U32:
		return arrow.PrimitiveTypes.Uint32, nil
	case af.U8:
		return arrow.PrimitiveTypes.Uint8, nil
	case af.S64:
		return arrow.PrimitiveTypes.Int64, nil
	case af.U64:
		return arrow.PrimitiveTypes.Uint64, nil
	case af.S16:
		return arrow.PrimitiveTypes.Int16, nil
	case af.U16:
		return arrow.PrimitiveTypes.Uint16, nil
	case af.F16:
		return arrow.FixedWidthTypes.Float16, nil
	}
	return nil, fmt.Errorf("%w: %v", ErrType, t)
}

func formatDims(d af.Dim4) string {
	s := make([]string, len(d))
	for i, v := range d {
		s[i] = strconv.FormatInt(v, 10)
	}
	return strings.Join(s, ",")
}

func parseDims(s string) (af.Dim4, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return af.Dim4{}, fmt.Errorf("%w: dims %q", ErrSchema, s)
	}
	var d af.Dim4
	for i, p := range parts {
		v, err := strconv.ParseInt(p, 10, 64)
		if err != nil || v < 0 {
			return af.Dim4{}, fmt.Errorf("%w: dims %q", ErrSchema, s)
		}
		d[i] = v
	}
	return d, nil
}

func primitive[T af.HostType, B interface {
	array.Builder
	AppendValues([]T, []bool)
}](b array.Builder, v []T) {
	b.(B).AppendValues(v, nil)
}

func appendComplex64(b array.Builder, v []complex64) {
	lb := b.(*array.FixedSizeListBuilder)
	vb := lb.ValueBuilder().(*array.Float32Builder)
	for _, z := range v {
		lb.Append(true)
		vb.Append(real(z))
		vb.Append(imag(z))
	}
}

func appendComplex128(b array.Builder, v []complex128) {
	lb := b.(*array.FixedSizeListBuilder)
	vb := lb.ValueBuilder().(*array.Float64Builder)
	for _, z := range v {
		lb.Append(true)
		vb.Append(real(z))
		vb.Append(imag(z))
	}
}

func appendHalf(b array.Builder, v []af.Half) {
	hb := b.(*array.Float16Builder)
	for _, h := range v {
		hb.Append(arrowf16.FromBits(h.Bits()))
	}
}

// columns splits values into one Arrow array per column of rows elements.
func columns[T af.HostType](mem memory.Allocator, dt arrow.DataType, a *af.Array, rows int64, fn func(array.Builder, []T)) ([]arrow.Array, error) {
	vals, err := af.Host[T](a)
	if err != nil {
		return nil, err
	}
	var ncols int64
	if rows > 0 {
		ncols = int64(len(vals)) / rows
	}
	cols := make([]arrow.Array, 0, ncols)
	for j := int64(0); j < ncols; j++ {
		b := array.NewBuilder(mem, dt)
		fn(b, vals[j*rows:(j+1)*rows])
		cols = append(cols, b.NewArray())
		b.Release()
	}
	return cols, nil
}

func hostColumns(mem memory.Allocator, dt arrow.DataType, t af.DType, a *af.Array, rows int64) ([]arrow.Array, error) {
	switch t {
	case af.F32:
		return columns(mem, dt, a, rows, primitive[float32, *array.Float32Builder])
	case af.F64:
		return columns(mem, dt, a, rows, primitive[float64, *array.Float64Builder])
	case af.C32:
		return columns(mem, dt, a, rows, appendComplex64)
	case af.C64:
		return columns(mem, dt, a, rows, appendComplex128)
	case af.B8:
		return columns(mem, dt, a, rows, primitive[bool, *array.BooleanBuilder])
	case af.S32:
		return columns(mem, dt, a, rows, primitive[int32, *array.Int32Builder])
	case af.U32:
		return columns(mem, dt, a, rows, primitive[uint32, *array.Uint32Builder])
	case af.U8:
		return columns(mem, dt, a, rows, primitive[uint8, *array.Uint8Builder])
	case af.S64:
		return columns(mem, dt, a, rows, primitive[int64, *array.Int64Builder])
	case af.U64:
		return columns(mem, dt, a, rows, primitive[uint64, *array.Uint64Builder])
	case af.S16:
		return columns(mem, dt, a, rows, primitive[int16, *array.Int16Builder])
	case af.U16:
		return columns(mem, dt, a, rows, primitive[uint16, *array.Uint16Builder])
	case af.F16:
		return columns(mem, dt, a, rows, appendHalf)
	}
	return nil, fmt.Errorf("%w: %v", ErrType, t)
}

// Record exports a as a record. name is stored in the schema metadata and
// may be empty. The caller releases the record.
func (c *Converter) Record(name string, a *af.Array) (arrow.RecordBatch, error) {
	t, err := a.Type()
	if err != nil {
		return nil, err
	}
	d, err := a.Dims()
	if err != nil {
		return nil, err
	}
	dt, err := elemType(t)
	if err != nil {
		return nil, err
	}
	cols, err := hostColumns(c.mem, dt, t, a, d[0])
	if err != nil {
		return nil, err
	}
	defer func() {
		for _, col := range cols {
			col.Release()
		}
	}()
	fields := make([]arrow.Field, len(cols))
	for j := range fields {
		fields[j] = arrow.Field{Name: "c" + strconv.Itoa(j), Type: dt}
	}
	md := arrow.NewMetadata(
		[]string{metaType, metaDims, metaName},
		[]string{t.String(), formatDims(d), name},
	)
	return array.NewRecordBatch(arrow.NewSchema(fields, &md), cols, d[0]), nil
}

// Describe returns the name, element type and shape recorded in schema.
func Describe(schema *arrow.Schema) (name string, t af.DType, d af.Dim4, err error) {
	md := schema.Metadata()
	get := func(k string) (string, bool) {
		i := md.FindKey(k)
		if i < 0 {
			return "", false
		}
		return md.Values()[i], true
	}
	ts, ok := get(metaType)
	if !ok {
		return "", 0, d, fmt.Errorf("%w: missing %s", ErrSchema, metaType)
	}
	if t, ok = af.ParseDType(ts); !ok {
		return "", 0, d, fmt.Errorf("%w: %s", ErrType, ts)
	}
	ds, ok := get(metaDims)
	if !ok {
		return "", 0, d, fmt.Errorf("%w: missing %s", ErrSchema, metaDims)
	}
	if d, err = parseDims(ds); err != nil {
		return "", 0, d, err
	}
	name, _ = get(metaName)
	return name, t, d, nil
}

// gather concatenates the columns of rec through get, checking each column
// holds the expected Arrow array type.
func gather[T af.HostType, A arrow.Array](rec arrow.RecordBatch, get func(A) []T) ([]T, error) {
	var out []T
	for j := 0; j < int(rec.NumCols()); j++ {
		col, ok := rec.Column(j).(A)
		if !ok {
			return nil, fmt.Errorf("%w: column %d has type %s", ErrSchema, j, rec.Column(j).DataType())
		}
		out = append(out, get(col)...)
	}
	return out, nil
}

func complexPairs[F float32 | float64, A arrow.Array, Z complex64 | complex128](values func(A) []F, mk func(F, F) Z) func(*array.FixedSizeList) []Z {
	return func(l *array.FixedSizeList) []Z {
		v, ok := l.ListValues().(A)
		if !ok {
			return nil
		}
		flat := values(v)
		out := make([]Z, l.Len())
		for i := range out {
			out[i] = mk(flat[2*i], flat[2*i+1])
		}
		return out
	}
}

func bools(b *array.Boolean) []bool {
	out := make([]bool, b.Len())
	for i := range out {
		out[i] = b.Value(i)
	}
	return out
}

func halves(h *array.Float16) []af.Half {
	out := make([]af.Half, h.Len())
	for i, v := range h.Values() {
		out[i] = float16.Frombits(v.Uint16())
	}
	return out
}

func build[T af.HostType](d af.Dim4) func([]T, error) (*af.Array, error) {
	return func(vals []T, err error) (*af.Array, error) {
		if err != nil {
			return nil, err
		}
		if int64(len(vals)) != d.Elements() {
			return nil, fmt.Errorf("%w: %d values for shape %v", ErrSchema, len(vals), d)
		}
		return af.NewArray(vals, d)
	}
}

// Array rebuilds the array exported into rec.
func Array(rec arrow.RecordBatch) (*af.Array, error) {
	_, t, d, err := Describe(rec.Schema())
	if err != nil {
		return nil, err
	}
	if rec.NumRows() != d[0] {
		return nil, fmt.Errorf("%w: %d rows for shape %v", ErrSchema, rec.NumRows(), d)
	}
	switch t {
	case af.F32:
		return build[float32](d)(gather(rec, (*array.Float32).Float32Values))
	case af.F64:
		return build[float64](d)(gather(rec, (*array.Float64).Float64Values))
	case af.C32:
		return build[complex64](d)(gather(rec, complexPairs((*array.Float32).Float32Values, func(r, i float32) complex64 { return complex(r, i) })))
	case af.C64:
		return build[complex128](d)(gather(rec, complexPairs((*array.Float64).Float64Values, func(r, i float64) complex128 { return complex(r, i) })))
	case af.B8:
		return build[bool](d)(gather(rec, bools))
	case af.S32:
		return build[int32](d)(gather(rec, (*array.Int32).Int32Values))
	case af.U32:
		return build[uint32](d)(gather(rec, (*array.Uint32).Uint32Values))
	case af.U8:
		return build[uint8](d)(gather(rec, (*array.Uint8).Uint8Values))
	case af.S64:
		return build[int64](d)(gather(rec, (*array.Int64).Int64Values))
	case af.U64:
		return build[uint64](d)(gather(rec, (*array.Uint64).Uint64Values))
	case af.S16:
		return build[int16](d)(gather(rec, (*array.Int16).Int16Values))
	case af.U16:
		return build[uint16](d)(gather(rec, (*array.Uint16).Uint16Values))
	case af.F16:
		return build[af.Half](d)(gather(rec, halves))
	}
	return nil, fmt.Errorf("%w: %v", ErrType, t)
}

// WriteStream writes a as a single-record Arrow IPC stream.
func (c *Converter) WriteStream(w io.Writer, name string, a *af.Array) error {
	rec, err := c.Record(name, a)
	if err != nil {
		return err
	}
	defer rec.Release()
	writer := ipc.NewWriter(w, ipc.WithSchema(rec.Schema()), ipc.WithAllocator(c.mem))
	if err := writer.Write(rec); err != nil {
		_ = writer.Close()
		return err
	}
	return writer.Close()
}

// ReadStream reads the first record of an Arrow IPC stream back into an
// array and returns it with the name it was written under.
func (c *Converter) ReadStream(r io.Reader) (string, *af.Array, error) {
	reader, err := ipc.NewReader(r, ipc.WithAllocator(c.mem))
	if err != nil {
		return "", nil, err
	}
	defer reader.Release()
	if !reader.Next() {
		if err := reader.Err(); err != nil {
			return "", nil, err
		}
		return "", nil, fmt.Errorf("%w: empty stream", ErrSchema)
	}
	rec := reader.Record()
	name, _, _, err := Describe(rec.Schema())
	if err != nil {
		return "", nil, err
	}
	a, err := Array(rec)
	if err != nil {
		return "", nil, err
	}
	return name, a, nil
}
