package host

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/23skdu/arrayfire-go/internal/native"
)

// Variance bias, matching af_var_bias. The default is the population variance.
const (
	biasDefault    = 0
	biasSample     = 1
	biasPopulation = 2
)

// Top-k order, matching af_topk_function.
const (
	topkDefault = 0
	topkMin     = 1
	topkMax     = 2
)

// laneFunc summarizes one lane. w is nil when no weights were given.
type laneFunc func(re, im, w []float64) (float64, float64)

func (l *Lib) statInput(a, w *array, complexOK bool) native.Code {
	if a.dtype.IsComplex() && !complexOK {
		return l.fail(native.ErrNotSupported, "complex statistics are not available on the host library")
	}
	if w != nil && w.dims != a.dims {
		return l.fail(native.ErrSize, "weights must match the input shape")
	}
	return native.Success
}

// statDim applies fn along dim of a. Integer input yields f32.
func (l *Lib) statDim(a, w *array, dim int64, fn laneFunc) (*array, native.Code) {
	d, c := l.resolveDim(a.dims, int(dim))
	if c != native.Success {
		return nil, c
	}
	t := toFloat(a.dtype)
	od := a.dims
	od[d] = 1
	re, im := planes(t, product(od))
	lanes(a.dims, d, func(k int, base, stride int64) {
		lr, li := lane(a, base, stride, a.dims[d])
		var lw []float64
		if w != nil {
			lw, _ = lane(w, base, stride, a.dims[d])
		}
		r, i := fn(lr, li, lw)
		re[k] = r
		if im != nil {
			im[k] = i
		}
	})
	return fromPlanes(od, t, re, im), native.Success
}

func (l *Lib) statOp(in, weights native.Handle, dim int64, complexOK bool, fn laneFunc) (native.Handle, native.Code) {
	l.mu.Lock()
	defer l.mu.Unlock()
	a, c := l.get(in)
	if c != native.Success {
		return 0, c
	}
	var w *array
	if weights != 0 {
		if w, c = l.get(weights); c != native.Success {
			return 0, c
		}
	}
	if c := l.statInput(a, w, complexOK); c != native.Success {
		return 0, c
	}
	out, c := l.statDim(a, w, dim, fn)
	if c != native.Success {
		return 0, c
	}
	return l.put(out), native.Success
}

func (l *Lib) statAll(in, weights native.Handle, complexOK bool, fn laneFunc) (float64, float64, native.Code) {
	l.mu.Lock()
	defer l.mu.Unlock()
	a, c := l.get(in)
	if c != native.Success {
		return 0, 0, c
	}
	var w *array
	if weights != 0 {
		if w, c = l.get(weights); c != native.Success {
			return 0, 0, c
		}
	}
	if c := l.statInput(a, w, complexOK); c != native.Success {
		return 0, 0, c
	}
	var ws []float64
	if w != nil {
		ws = w.buf.re
	}
	r, i := fn(a.buf.re, a.buf.im, ws)
	return r, i, native.Success
}

func mean(re, im, w []float64) (float64, float64) {
	if len(re) == 0 {
		return math.NaN(), 0
	}
	if im == nil {
		return stat.Mean(re, w), 0
	}
	return stat.Mean(re, w), stat.Mean(im, w)
}

func variance(bias int) laneFunc {
	return func(re, _, w []float64) (float64, float64) {
		if len(re) == 0 {
			return math.NaN(), 0
		}
		if bias == biasSample && w == nil {
			_, v := stat.MeanVariance(re, nil)
			return v, 0
		}
		_, v := stat.PopMeanVariance(re, w)
		return v, 0
	}
}

func stdev(bias int) laneFunc {
	v := variance(bias)
	return func(re, im, w []float64) (float64, float64) {
		r, _ := v(re, im, w)
		return math.Sqrt(r), 0
	}
}

func median(re, _, _ []float64) (float64, float64) {
	n := len(re)
	if n == 0 {
		return math.NaN(), 0
	}
	s := append([]float64(nil), re...)
	sort.Float64s(s)
	if n%2 == 1 {
		return s[n/2], 0
	}
	return (s[n/2-1] + s[n/2]) / 2, 0
}

func (l *Lib) checkBias(bias int) native.Code {
	if bias < biasDefault || bias > biasPopulation {
		return l.fail(native.ErrArg, "invalid variance bias %d", bias)
	}
	return native.Success
}

func (l *Lib) Mean(in native.Handle, dim int64) (native.Handle, native.Code) {
	return l.statOp(in, 0, dim, true, mean)
}

func (l *Lib) MeanWeighted(in, w native.Handle, dim int64) (native.Handle, native.Code) {
	return l.statOp(in, w, dim, true, mean)
}

func (l *Lib) Var(in native.Handle, bias int, dim int64) (native.Handle, native.Code) {
	if c := l.lockedCheck(l.checkBias, bias); c != native.Success {
		return 0, c
	}
	return l.statOp(in, 0, dim, false, variance(bias))
}

func (l *Lib) VarWeighted(in, w native.Handle, dim int64) (native.Handle, native.Code) {
	return l.statOp(in, w, dim, false, variance(biasPopulation))
}

func (l *Lib) MeanVar(in, w native.Handle, bias int, dim int64) (native.Handle, native.Handle, native.Code) {
	if c := l.lockedCheck(l.checkBias, bias); c != native.Success {
		return 0, 0, c
	}
	m, c := l.statOp(in, w, dim, false, mean)
	if c != native.Success {
		return 0, 0, c
	}
	v, c := l.statOp(in, w, dim, false, variance(bias))
	if c != native.Success {
		l.Release(m)
		return 0, 0, c
	}
	return m, v, native.Success
}

func (l *Lib) Stdev(in native.Handle, bias int, dim int64) (native.Handle, native.Code) {
	if c := l.lockedCheck(l.checkBias, bias); c != native.Success {
		return 0, c
	}
	return l.statOp(in, 0, dim, false, stdev(bias))
}

func (l *Lib) Median(in native.Handle, dim int64) (native.Handle, native.Code) {
	return l.statOp(in, 0, dim, false, median)
}

func (l *Lib) MeanAll(in native.Handle) (float64, float64, native.Code) {
	return l.statAll(in, 0, true, mean)
}

func (l *Lib) MeanAllWeighted(in, w native.Handle) (float64, float64, native.Code) {
	return l.statAll(in, w, true, mean)
}

func (l *Lib) VarAll(in native.Handle, bias int) (float64, float64, native.Code) {
	if c := l.lockedCheck(l.checkBias, bias); c != native.Success {
		return 0, 0, c
	}
	return l.statAll(in, 0, false, variance(bias))
}

func (l *Lib) VarAllWeighted(in, w native.Handle) (float64, float64, native.Code) {
	return l.statAll(in, w, false, variance(biasPopulation))
}

func (l *Lib) StdevAll(in native.Handle, bias int) (float64, float64, native.Code) {
	if c := l.lockedCheck(l.checkBias, bias); c != native.Success {
		return 0, 0, c
	}
	return l.statAll(in, 0, false, stdev(bias))
}

func (l *Lib) MedianAll(in native.Handle) (float64, float64, native.Code) {
	return l.statAll(in, 0, false, median)
}

// lockedCheck runs a validation that may record an error message.
func (l *Lib) lockedCheck(check func(int) native.Code, v int) native.Code {
	l.mu.Lock()
	defer l.mu.Unlock()
	return check(v)
}

// pair resolves two real vectors of equal length.
func (l *Lib) pair(x, y native.Handle) (*array, *array, native.Code) {
	a, c := l.get(x)
	if c != native.Success {
		return nil, nil, c
	}
	b, c := l.get(y)
	if c != native.Success {
		return nil, nil, c
	}
	if a.dtype.IsComplex() || b.dtype.IsComplex() {
		return nil, nil, l.fail(native.ErrNotSupported, "complex statistics are not available on the host library")
	}
	if a.elements() != b.elements() || a.elements() < 2 {
		return nil, nil, l.fail(native.ErrSize, "inputs need the same number of elements, at least two")
	}
	return a, b, native.Success
}

func (l *Lib) Cov(x, y native.Handle, bias int) (native.Handle, native.Code) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if c := l.checkBias(bias); c != native.Success {
		return 0, c
	}
	a, b, c := l.pair(x, y)
	if c != native.Success {
		return 0, c
	}
	v := stat.Covariance(a.buf.re, b.buf.re, nil)
	if bias != biasSample {
		n := float64(a.elements())
		v *= (n - 1) / n
	}
	t := toFloat(promote(a.dtype, b.dtype))
	return l.put(fromPlanes([4]int64{1, 1, 1, 1}, t, []float64{v}, nil)), native.Success
}

func (l *Lib) Corrcoef(x, y native.Handle) (float64, float64, native.Code) {
	l.mu.Lock()
	defer l.mu.Unlock()
	a, b, c := l.pair(x, y)
	if c != native.Success {
		return 0, 0, c
	}
	return stat.Correlation(a.buf.re, b.buf.re, nil), 0, native.Success
}

func (l *Lib) TopK(in native.Handle, k, dim int, order int) (native.Handle, native.Handle, native.Code) {
	l.mu.Lock()
	defer l.mu.Unlock()
	a, c := l.get(in)
	if c != native.Success {
		return 0, 0, c
	}
	if order < topkDefault || order > topkMax {
		return 0, 0, l.fail(native.ErrArg, "invalid top-k order %d", order)
	}
	d, c := l.resolveDim(a.dims, dim)
	if c != native.Success {
		return 0, 0, c
	}
	if k < 1 || int64(k) > a.dims[d] {
		return 0, 0, l.fail(native.ErrArg, "k must be in [1, %d], got %d", a.dims[d], k)
	}
	if a.dtype.IsComplex() {
		return 0, 0, l.fail(native.ErrType, "top-k needs a real array")
	}
	outs, idx, c := l.sortLanes(a, uint32(d), order == topkMin)
	if c != native.Success {
		return 0, 0, c
	}
	od := a.dims
	od[d] = int64(k)
	first := func(src *array) *array {
		return gather(src, od, func(cc [4]int64) int64 { return linear(src.dims, cc) })
	}
	return l.put(first(outs[0])), l.put(first(idx)), native.Success
}
