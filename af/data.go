//go:build !af_no_data

package af

import (
	"runtime"

	"github.com/23skdu/arrayfire-go/internal/native"
)

func init() { registerFeature("data") }

// Constant fills a new array with v. The element type follows T; 64-bit
// integers and complex values use the native constructors that keep their
// full precision.
func Constant[T HostType](v T, dims Dim4) (*Array, error) {
	t := native.DType(DTypeOf[T]())
	var (
		h native.Handle
		c native.Code
	)
	switch x := any(v).(type) {
	case complex64:
		h, c = lib().ConstantComplex(float64(real(x)), float64(imag(x)), dims.slice(), t)
	case complex128:
		h, c = lib().ConstantComplex(real(x), imag(x), dims.slice(), t)
	case int64:
		h, c = lib().ConstantLong(x, dims.slice())
	case uint64:
		h, c = lib().ConstantULong(x, dims.slice())
	case bool:
		f := 0.0
		if x {
			f = 1
		}
		h, c = lib().Constant(f, dims.slice(), t)
	case Half:
		h, c = lib().Constant(float64(x.Float32()), dims.slice(), t)
	default:
		h, c = lib().Constant(toFloat64(v), dims.slice(), t)
	}
	return wrap("constant", h, c)
}

func toFloat64[T HostType](v T) float64 {
	switch x := any(v).(type) {
	case float32:
		return float64(x)
	case float64:
		return x
	case int32:
		return float64(x)
	case uint32:
		return float64(x)
	case uint8:
		return float64(x)
	case int16:
		return float64(x)
	case uint16:
		return float64(x)
	}
	return 0
}

// Range fills an array with the index along seqDim.
func Range(dims Dim4, seqDim int, t DType) (*Array, error) {
	h, c := lib().Range(dims.slice(), seqDim, native.DType(t))
	return wrap("range", h, c)
}

// Iota fills dims with 0..n-1 in column-major order and tiles the result.
func Iota(dims, tile Dim4, t DType) (*Array, error) {
	h, c := lib().Iota(dims.slice(), tile.slice(), native.DType(t))
	return wrap("iota", h, c)
}

func Identity(dims Dim4, t DType) (*Array, error) {
	h, c := lib().Identity(dims.slice(), native.DType(t))
	return wrap("identity", h, c)
}

// Diag builds a matrix with in on diagonal num (0 is the main diagonal,
// positive values lie above it).
func Diag(in *Array, num int) (*Array, error) {
	return op1("diag_create", in, func(h native.Handle) (native.Handle, native.Code) {
		return lib().DiagCreate(h, num)
	})
}

// DiagExtract returns diagonal num of in as a column.
func DiagExtract(in *Array, num int) (*Array, error) {
	return op1("diag_extract", in, func(h native.Handle) (native.Handle, native.Code) {
		return lib().DiagExtract(h, num)
	})
}

func Join(dim int, first, second *Array) (*Array, error) {
	return JoinMany(dim, first, second)
}

// JoinMany concatenates arrays along dim.
func JoinMany(dim int, arrs ...*Array) (*Array, error) {
	hs, err := handles(arrs...)
	if err != nil {
		return nil, err
	}
	defer runtime.KeepAlive(arrs)
	h, c := lib().Join(dim, hs)
	return wrap("join_many", h, c)
}

func Tile(in *Array, x, y, z, w uint32) (*Array, error) {
	return op1("tile", in, func(h native.Handle) (native.Handle, native.Code) {
		return lib().Tile(h, [4]uint32{x, y, z, w})
	})
}

// Reorder permutes the dimensions of in; dimension k of the result is
// dimension order[k] of in.
func Reorder(in *Array, x, y, z, w uint32) (*Array, error) {
	return op1("reorder", in, func(h native.Handle) (native.Handle, native.Code) {
		return lib().Reorder(h, [4]uint32{x, y, z, w})
	})
}

// Shift rotates in circularly by the given amount along each dimension.
func Shift(in *Array, x, y, z, w int32) (*Array, error) {
	return op1("shift", in, func(h native.Handle) (native.Handle, native.Code) {
		return lib().Shift(h, [4]int32{x, y, z, w})
	})
}

func Moddims(in *Array, dims Dim4) (*Array, error) {
	return op1("moddims", in, func(h native.Handle) (native.Handle, native.Code) {
		return lib().Moddims(h, dims.slice())
	})
}

func Flat(in *Array) (*Array, error) { return op1("flat", in, lib().Flat) }

func Flip(in *Array, dim uint32) (*Array, error) {
	return op1("flip", in, func(h native.Handle) (native.Handle, native.Code) {
		return lib().Flip(h, dim)
	})
}

// Lower keeps the lower triangle of in; unitDiag sets the diagonal to 1.
func Lower(in *Array, unitDiag bool) (*Array, error) {
	return op1("lower", in, func(h native.Handle) (native.Handle, native.Code) {
		return lib().Lower(h, unitDiag)
	})
}

func Upper(in *Array, unitDiag bool) (*Array, error) {
	return op1("upper", in, func(h native.Handle) (native.Handle, native.Code) {
		return lib().Upper(h, unitDiag)
	})
}

// Select picks a where cond is true and b elsewhere.
func Select(cond, a, b *Array) (*Array, error) {
	hs, err := handles(cond, a, b)
	if err != nil {
		return nil, err
	}
	defer runtime.KeepAlive([]*Array{cond, a, b})
	h, c := lib().Select(hs[0], hs[1], hs[2])
	return wrap("select", h, c)
}

func SelectScalarR(cond, a *Array, b float64) (*Array, error) {
	return op2("select_scalar_r", cond, a, func(x, y native.Handle) (native.Handle, native.Code) {
		return lib().SelectScalarR(x, y, b)
	})
}

func SelectScalarL(cond *Array, a float64, b *Array) (*Array, error) {
	return op2("select_scalar_l", cond, b, func(x, y native.Handle) (native.Handle, native.Code) {
		return lib().SelectScalarL(x, a, y)
	})
}

// Replace overwrites a with b wherever cond is false.
func Replace(a, cond, b *Array) error {
	hs, err := handles(a, cond, b)
	if err != nil {
		return err
	}
	defer runtime.KeepAlive([]*Array{a, cond, b})
	return check("replace", lib().Replace(hs[0], hs[1], hs[2]))
}

func ReplaceScalar(a, cond *Array, b float64) error {
	hs, err := handles(a, cond)
	if err != nil {
		return err
	}
	defer runtime.KeepAlive([]*Array{a, cond})
	return check("replace_scalar", lib().ReplaceScalar(hs[0], hs[1], b))
}

// Pad grows in by begin and end elements along the leading dimensions,
// filling according to border.
func Pad(in *Array, begin, end []int64, border BorderType) (*Array, error) {
	return op1("pad", in, func(h native.Handle) (native.Handle, native.Code) {
		return lib().Pad(h, begin, end, int(border))
	})
}
