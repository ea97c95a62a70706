//go:build !af_no_algorithm

package af

import (
	"runtime"

	"github.com/23skdu/arrayfire-go/internal/native"
)

func init() { registerFeature("algorithm") }

var reduceNames = map[native.ReduceOp]string{
	native.ReduceSum: "sum", native.ReduceProduct: "product", native.ReduceMin: "min",
	native.ReduceMax: "max", native.ReduceAllTrue: "all_true", native.ReduceAnyTrue: "any_true",
	native.ReduceCount: "count",
}

func reduce(op native.ReduceOp, in *Array, dim int) (*Array, error) {
	return op1(reduceNames[op], in, func(h native.Handle) (native.Handle, native.Code) {
		return lib().Reduce(op, h, dim)
	})
}

func reduceNaN(op native.ReduceOp, in *Array, dim int, nanval float64) (*Array, error) {
	return op1(reduceNames[op]+"_nan", in, func(h native.Handle) (native.Handle, native.Code) {
		return lib().ReduceNaN(op, h, dim, nanval)
	})
}

// reduceAll reduces every element to a single value, returned as its real
// and imaginary parts.
func reduceAll(op native.ReduceOp, in *Array) (float64, float64, error) {
	h, err := in.handle()
	if err != nil {
		return 0, 0, err
	}
	defer runtime.KeepAlive(in)
	re, im, c := lib().ReduceAll(op, h)
	return re, im, check(reduceNames[op]+"_all", c)
}

func reduceByKey(op native.ReduceOp, keys, vals *Array, dim int) (*Array, *Array, error) {
	hs, err := handles(keys, vals)
	if err != nil {
		return nil, nil, err
	}
	defer runtime.KeepAlive([]*Array{keys, vals})
	k, v, c := lib().ReduceByKey(op, hs[0], hs[1], dim)
	return wrap2(reduceNames[op]+"_by_key", k, v, c)
}

// Reductions along dim; dim -1 picks the first dimension that is not 1.

func Sum(in *Array, dim int) (*Array, error)     { return reduce(native.ReduceSum, in, dim) }
func Product(in *Array, dim int) (*Array, error) { return reduce(native.ReduceProduct, in, dim) }
func Min(in *Array, dim int) (*Array, error)     { return reduce(native.ReduceMin, in, dim) }
func Max(in *Array, dim int) (*Array, error)     { return reduce(native.ReduceMax, in, dim) }
func AllTrue(in *Array, dim int) (*Array, error) { return reduce(native.ReduceAllTrue, in, dim) }
func AnyTrue(in *Array, dim int) (*Array, error) { return reduce(native.ReduceAnyTrue, in, dim) }
func Count(in *Array, dim int) (*Array, error)   { return reduce(native.ReduceCount, in, dim) }

// SumNaN sums along dim with NaN elements replaced by nanval.
func SumNaN(in *Array, dim int, nanval float64) (*Array, error) {
	return reduceNaN(native.ReduceSum, in, dim, nanval)
}

func ProductNaN(in *Array, dim int, nanval float64) (*Array, error) {
	return reduceNaN(native.ReduceProduct, in, dim, nanval)
}

func SumAll(in *Array) (float64, float64, error)     { return reduceAll(native.ReduceSum, in) }
func ProductAll(in *Array) (float64, float64, error) { return reduceAll(native.ReduceProduct, in) }
func MinAll(in *Array) (float64, float64, error)     { return reduceAll(native.ReduceMin, in) }
func MaxAll(in *Array) (float64, float64, error)     { return reduceAll(native.ReduceMax, in) }
func AllTrueAll(in *Array) (float64, float64, error) { return reduceAll(native.ReduceAllTrue, in) }
func AnyTrueAll(in *Array) (float64, float64, error) { return reduceAll(native.ReduceAnyTrue, in) }
func CountAll(in *Array) (float64, float64, error)   { return reduceAll(native.ReduceCount, in) }

func SumNaNAll(in *Array, nanval float64) (float64, float64, error) {
	h, err := in.handle()
	if err != nil {
		return 0, 0, err
	}
	defer runtime.KeepAlive(in)
	re, im, c := lib().ReduceAllNaN(native.ReduceSum, h, nanval)
	return re, im, check("sum_nan_all", c)
}

func ProductNaNAll(in *Array, nanval float64) (float64, float64, error) {
	h, err := in.handle()
	if err != nil {
		return 0, 0, err
	}
	defer runtime.KeepAlive(in)
	re, im, c := lib().ReduceAllNaN(native.ReduceProduct, h, nanval)
	return re, im, check("product_nan_all", c)
}

// Reductions over runs of equal consecutive keys. They return the unique
// keys and the reduced values.

func SumByKey(keys, vals *Array, dim int) (*Array, *Array, error) {
	return reduceByKey(native.ReduceSum, keys, vals, dim)
}

func ProductByKey(keys, vals *Array, dim int) (*Array, *Array, error) {
	return reduceByKey(native.ReduceProduct, keys, vals, dim)
}

func MinByKey(keys, vals *Array, dim int) (*Array, *Array, error) {
	return reduceByKey(native.ReduceMin, keys, vals, dim)
}

func MaxByKey(keys, vals *Array, dim int) (*Array, *Array, error) {
	return reduceByKey(native.ReduceMax, keys, vals, dim)
}

func AllTrueByKey(keys, vals *Array, dim int) (*Array, *Array, error) {
	return reduceByKey(native.ReduceAllTrue, keys, vals, dim)
}

func AnyTrueByKey(keys, vals *Array, dim int) (*Array, *Array, error) {
	return reduceByKey(native.ReduceAnyTrue, keys, vals, dim)
}

func CountByKey(keys, vals *Array, dim int) (*Array, *Array, error) {
	return reduceByKey(native.ReduceCount, keys, vals, dim)
}

func ireduce(op native.IndexedOp, name string, in *Array, dim int) (*Array, *Array, error) {
	h, err := in.handle()
	if err != nil {
		return nil, nil, err
	}
	defer runtime.KeepAlive(in)
	v, idx, c := lib().IReduce(op, h, dim)
	return wrap2(name, v, idx, c)
}

func ireduceAll(op native.IndexedOp, name string, in *Array) (float64, float64, uint32, error) {
	h, err := in.handle()
	if err != nil {
		return 0, 0, 0, err
	}
	defer runtime.KeepAlive(in)
	re, im, idx, c := lib().IReduceAll(op, h)
	return re, im, idx, check(name, c)
}

// IMin returns the minimum along dim and its position.
func IMin(in *Array, dim int) (*Array, *Array, error) {
	return ireduce(native.IndexedMin, "imin", in, dim)
}

func IMax(in *Array, dim int) (*Array, *Array, error) {
	return ireduce(native.IndexedMax, "imax", in, dim)
}

// IMinAll returns the smallest element and its linear index.
func IMinAll(in *Array) (float64, float64, uint32, error) {
	return ireduceAll(native.IndexedMin, "imin_all", in)
}

func IMaxAll(in *Array) (float64, float64, uint32, error) {
	return ireduceAll(native.IndexedMax, "imax_all", in)
}

// Accum is the inclusive prefix sum along dim.
func Accum(in *Array, dim int) (*Array, error) {
	return op1("accum", in, func(h native.Handle) (native.Handle, native.Code) {
		return lib().Accum(h, dim)
	})
}

func Scan(in *Array, dim int, op BinaryOp, inclusive bool) (*Array, error) {
	return op1("scan", in, func(h native.Handle) (native.Handle, native.Code) {
		return lib().Scan(h, dim, int(op), inclusive)
	})
}

// ScanByKey restarts the scan wherever the key changes.
func ScanByKey(keys, in *Array, dim int, op BinaryOp, inclusive bool) (*Array, error) {
	return op2("scan_by_key", keys, in, func(k, v native.Handle) (native.Handle, native.Code) {
		return lib().ScanByKey(k, v, dim, int(op), inclusive)
	})
}

// Where returns the linear indices of the non-zero elements as u32.
func Where(in *Array) (*Array, error) { return op1("where", in, lib().Where) }

func Diff1(in *Array, dim int) (*Array, error) {
	return op1("diff1", in, func(h native.Handle) (native.Handle, native.Code) {
		return lib().Diff1(h, dim)
	})
}

func Diff2(in *Array, dim int) (*Array, error) {
	return op1("diff2", in, func(h native.Handle) (native.Handle, native.Code) {
		return lib().Diff2(h, dim)
	})
}

func Sort(in *Array, dim uint32, ascending bool) (*Array, error) {
	return op1("sort", in, func(h native.Handle) (native.Handle, native.Code) {
		return lib().Sort(h, dim, ascending)
	})
}

// SortIndex returns the sorted values and the original position of each.
func SortIndex(in *Array, dim uint32, ascending bool) (*Array, *Array, error) {
	h, err := in.handle()
	if err != nil {
		return nil, nil, err
	}
	defer runtime.KeepAlive(in)
	v, idx, c := lib().SortIndex(h, dim, ascending)
	return wrap2("sort_index", v, idx, c)
}

// SortByKey sorts keys and applies the same permutation to vals.
func SortByKey(keys, vals *Array, dim uint32, ascending bool) (*Array, *Array, error) {
	hs, err := handles(keys, vals)
	if err != nil {
		return nil, nil, err
	}
	defer runtime.KeepAlive([]*Array{keys, vals})
	k, v, c := lib().SortByKey(hs[0], hs[1], dim, ascending)
	return wrap2("sort_by_key", k, v, c)
}

// SetUnique returns the distinct values of in in ascending order.
func SetUnique(in *Array, isSorted bool) (*Array, error) {
	return op1("set_unique", in, func(h native.Handle) (native.Handle, native.Code) {
		return lib().SetUnique(h, isSorted)
	})
}

func SetUnion(a, b *Array, isUnique bool) (*Array, error) {
	return op2("set_union", a, b, func(x, y native.Handle) (native.Handle, native.Code) {
		return lib().SetOp(native.SetUnion, x, y, isUnique)
	})
}

func SetIntersect(a, b *Array, isUnique bool) (*Array, error) {
	return op2("set_intersect", a, b, func(x, y native.Handle) (native.Handle, native.Code) {
		return lib().SetOp(native.SetIntersect, x, y, isUnique)
	})
}

// MaxRagged finds the maximum of the first lens elements of each lane.
func MaxRagged(in, lens *Array, dim int) (*Array, *Array, error) {
	hs, err := handles(in, lens)
	if err != nil {
		return nil, nil, err
	}
	defer runtime.KeepAlive([]*Array{in, lens})
	v, idx, c := lib().MaxRagged(hs[0], hs[1], dim)
	return wrap2("max_ragged", v, idx, c)
}
