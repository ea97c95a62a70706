//go:build !af_no_statistics

package af

import (
	"runtime"

	"github.com/23skdu/arrayfire-go/internal/native"
)

func init() { registerFeature("statistics") }

// Mean averages along dim; dim -1 picks the first non-singleton dimension.
func Mean(in *Array, dim int64) (*Array, error) {
	return op1("mean", in, func(h native.Handle) (native.Handle, native.Code) {
		return lib().Mean(h, dim)
	})
}

// MeanWeighted is the weighted mean; weights must match the input shape.
func MeanWeighted(in, weights *Array, dim int64) (*Array, error) {
	return op2("mean_weighted", in, weights, func(x, w native.Handle) (native.Handle, native.Code) {
		return lib().MeanWeighted(x, w, dim)
	})
}

func Var(in *Array, bias VarianceBias, dim int64) (*Array, error) {
	return op1("var", in, func(h native.Handle) (native.Handle, native.Code) {
		return lib().Var(h, int(bias), dim)
	})
}

func VarWeighted(in, weights *Array, dim int64) (*Array, error) {
	return op2("var_weighted", in, weights, func(x, w native.Handle) (native.Handle, native.Code) {
		return lib().VarWeighted(x, w, dim)
	})
}

// MeanVar computes mean and variance in one call. weights may be nil.
func MeanVar(in, weights *Array, bias VarianceBias, dim int64) (mean, variance *Array, err error) {
	h, err := in.handle()
	if err != nil {
		return nil, nil, err
	}
	var w native.Handle
	if weights != nil {
		if w, err = weights.handle(); err != nil {
			return nil, nil, err
		}
	}
	defer runtime.KeepAlive(in)
	defer runtime.KeepAlive(weights)
	m, v, c := lib().MeanVar(h, w, int(bias), dim)
	return wrap2("meanvar", m, v, c)
}

func Stdev(in *Array, bias VarianceBias, dim int64) (*Array, error) {
	return op1("stdev", in, func(h native.Handle) (native.Handle, native.Code) {
		return lib().Stdev(h, int(bias), dim)
	})
}

// Cov is the covariance of two vectors of equal length.
func Cov(x, y *Array, bias VarianceBias) (*Array, error) {
	return op2("cov", x, y, func(a, b native.Handle) (native.Handle, native.Code) {
		return lib().Cov(a, b, int(bias))
	})
}

func Median(in *Array, dim int64) (*Array, error) {
	return op1("median", in, func(h native.Handle) (native.Handle, native.Code) {
		return lib().Median(h, dim)
	})
}

func statAll(op string, in *Array, f func(native.Handle) (float64, float64, native.Code)) (float64, float64, error) {
	h, err := in.handle()
	if err != nil {
		return 0, 0, err
	}
	defer runtime.KeepAlive(in)
	re, im, c := f(h)
	return re, im, check(op, c)
}

func statAll2(op string, x, y *Array, f func(a, b native.Handle) (float64, float64, native.Code)) (float64, float64, error) {
	hs, err := handles(x, y)
	if err != nil {
		return 0, 0, err
	}
	defer runtime.KeepAlive(x)
	defer runtime.KeepAlive(y)
	re, im, c := f(hs[0], hs[1])
	return re, im, check(op, c)
}

// MeanAll averages every element and returns the real and imaginary parts.
func MeanAll(in *Array) (float64, float64, error) {
	return statAll("mean_all", in, lib().MeanAll)
}

func MeanAllWeighted(in, weights *Array) (float64, float64, error) {
	return statAll2("mean_all_weighted", in, weights, lib().MeanAllWeighted)
}

func VarAll(in *Array, bias VarianceBias) (float64, float64, error) {
	return statAll("var_all", in, func(h native.Handle) (float64, float64, native.Code) {
		return lib().VarAll(h, int(bias))
	})
}

func VarAllWeighted(in, weights *Array) (float64, float64, error) {
	return statAll2("var_all_weighted", in, weights, lib().VarAllWeighted)
}

func StdevAll(in *Array, bias VarianceBias) (float64, float64, error) {
	return statAll("stdev_all", in, func(h native.Handle) (float64, float64, native.Code) {
		return lib().StdevAll(h, int(bias))
	})
}

func MedianAll(in *Array) (float64, float64, error) {
	return statAll("median_all", in, lib().MedianAll)
}

// Corrcoef is the Pearson correlation of two vectors.
func Corrcoef(x, y *Array) (float64, float64, error) {
	return statAll2("corrcoef", x, y, lib().Corrcoef)
}

// TopK returns the k largest (or smallest, with TopkMin) values along dim
// and their indices.
func TopK(in *Array, k, dim int, order TopkFn) (values, indices *Array, err error) {
	h, err := in.handle()
	if err != nil {
		return nil, nil, err
	}
	defer runtime.KeepAlive(in)
	v, i, c := lib().TopK(h, k, dim, int(order))
	return wrap2("topk", v, i, c)
}
