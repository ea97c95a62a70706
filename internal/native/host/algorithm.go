package host

import (
	"math"
	"math/cmplx"
	"sort"

	vecmath "github.com/cwbudde/algo-vecmath"

	"github.com/23skdu/arrayfire-go/internal/native"
)

func reduceType(op native.ReduceOp, t native.DType) native.DType {
	switch op {
	case native.ReduceSum, native.ReduceProduct:
		switch t {
		case native.B8, native.U8, native.U16:
			return native.U32
		case native.S16:
			return native.S32
		}
		return t
	case native.ReduceAllTrue, native.ReduceAnyTrue:
		return native.B8
	case native.ReduceCount:
		return native.U32
	}
	return t
}

// reduceSlice folds re/im with op. im is nil for real data. Min and max
// skip NaN and order complex values by magnitude.
func reduceSlice(op native.ReduceOp, re, im []float64) (float64, float64) {
	switch op {
	case native.ReduceSum:
		if im == nil {
			return vecmath.Sum(re), 0
		}
		return vecmath.Sum(re), vecmath.Sum(im)
	case native.ReduceProduct:
		p := complex(1, 0)
		for i := range re {
			p *= complex(re[i], imagAt(im, i))
		}
		return real(p), imag(p)
	case native.ReduceMin, native.ReduceMax:
		best, bi, found := 0.0, 0.0, false
		for i := range re {
			v := re[i]
			key := v
			if im != nil {
				key = cmplx.Abs(complex(v, im[i]))
			}
			if math.IsNaN(key) {
				continue
			}
			cur := best
			if im != nil {
				cur = cmplx.Abs(complex(best, bi))
			}
			if !found || (op == native.ReduceMin && key < cur) || (op == native.ReduceMax && key > cur) {
				best, bi, found = v, imagAt(im, i), true
			}
		}
		if !found {
			return math.NaN(), 0
		}
		return best, bi
	case native.ReduceAllTrue:
		for i := range re {
			if re[i] == 0 && imagAt(im, i) == 0 {
				return 0, 0
			}
		}
		return 1, 0
	case native.ReduceAnyTrue:
		for i := range re {
			if re[i] != 0 || imagAt(im, i) != 0 {
				return 1, 0
			}
		}
		return 0, 0
	case native.ReduceCount:
		n := 0
		for i := range re {
			if re[i] != 0 || imagAt(im, i) != 0 {
				n++
			}
		}
		return float64(n), 0
	}
	return math.NaN(), 0
}

// lane copies the n elements of a starting at base with the given stride.
func lane(a *array, base, stride, n int64) (re, im []float64) {
	re = make([]float64, n)
	if a.buf.im != nil {
		im = make([]float64, n)
	}
	for j := int64(0); j < n; j++ {
		re[j] = a.buf.re[base+j*stride]
		if im != nil {
			im[j] = a.buf.im[base+j*stride]
		}
	}
	return re, im
}

func substituteNaN(re, im []float64, v float64) {
	for i := range re {
		if math.IsNaN(re[i]) {
			re[i] = v
		}
	}
	for i := range im {
		if math.IsNaN(im[i]) {
			im[i] = v
		}
	}
}

func (l *Lib) resolveDim(d [4]int64, dim int) (int, native.Code) {
	if dim == -1 {
		return firstDim(d), native.Success
	}
	if !checkDim(dim) {
		return 0, l.fail(native.ErrArg, "invalid dimension %d", dim)
	}
	return dim, native.Success
}

func (l *Lib) reduce(op native.ReduceOp, in native.Handle, dim int, nan *float64) (native.Handle, native.Code) {
	return l.op1(in, func(a *array) (*array, native.Code) {
		dim, c := l.resolveDim(a.dims, dim)
		if c != native.Success {
			return nil, c
		}
		t := reduceType(op, a.dtype)
		od := a.dims
		od[dim] = 1
		re, im := planes(t, product(od))
		lanes(a.dims, dim, func(k int, base, stride int64) {
			lr, li := lane(a, base, stride, a.dims[dim])
			if nan != nil {
				substituteNaN(lr, li, *nan)
			}
			re[k], _ = reduceSlice(op, lr, li)
			if im != nil {
				_, im[k] = reduceSlice(op, lr, li)
			}
		})
		return fromPlanes(od, t, re, im), native.Success
	})
}

func (l *Lib) Reduce(op native.ReduceOp, in native.Handle, dim int) (native.Handle, native.Code) {
	return l.reduce(op, in, dim, nil)
}

func (l *Lib) ReduceNaN(op native.ReduceOp, in native.Handle, dim int, nanval float64) (native.Handle, native.Code) {
	if op != native.ReduceSum && op != native.ReduceProduct {
		l.mu.Lock()
		defer l.mu.Unlock()
		return 0, l.fail(native.ErrNotSupported, "NaN substitution is only defined for sum and product")
	}
	return l.reduce(op, in, dim, &nanval)
}

func (l *Lib) reduceAll(op native.ReduceOp, in native.Handle, nan *float64) (float64, float64, native.Code) {
	l.mu.Lock()
	defer l.mu.Unlock()
	a, c := l.get(in)
	if c != native.Success {
		return 0, 0, c
	}
	re := append([]float64(nil), a.buf.re...)
	var im []float64
	if a.buf.im != nil {
		im = append([]float64(nil), a.buf.im...)
	}
	if nan != nil {
		substituteNaN(re, im, *nan)
	}
	r, i := reduceSlice(op, re, im)
	return r, i, native.Success
}

func (l *Lib) ReduceAll(op native.ReduceOp, in native.Handle) (re, im float64, c native.Code) {
	return l.reduceAll(op, in, nil)
}

func (l *Lib) ReduceAllNaN(op native.ReduceOp, in native.Handle, nanval float64) (re, im float64, c native.Code) {
	if op != native.ReduceSum && op != native.ReduceProduct {
		l.mu.Lock()
		defer l.mu.Unlock()
		return 0, 0, l.fail(native.ErrNotSupported, "NaN substitution is only defined for sum and product")
	}
	return l.reduceAll(op, in, &nanval)
}

func (l *Lib) ReduceByKey(op native.ReduceOp, keys, vals native.Handle, dim int) (native.Handle, native.Handle, native.Code) {
	l.mu.Lock()
	defer l.mu.Unlock()
	k, c := l.get(keys)
	if c != native.Success {
		return 0, 0, c
	}
	v, c := l.get(vals)
	if c != native.Success {
		return 0, 0, c
	}
	if !checkDim(dim) || k.elements() != v.dims[dim] {
		return 0, 0, l.fail(native.ErrSize, "keys must have one entry per element along dimension %d", dim)
	}
	// runs of equal consecutive keys
	var starts []int64
	for i := int64(0); i < k.elements(); i++ {
		if i == 0 || k.buf.re[i] != k.buf.re[i-1] {
			starts = append(starts, i)
		}
	}
	starts = append(starts, k.elements())
	runs := int64(len(starts) - 1)

	okeys := newArray([4]int64{runs, 1, 1, 1}, k.dtype)
	for r := int64(0); r < runs; r++ {
		okeys.buf.re[r] = k.buf.re[starts[r]]
	}
	t := reduceType(op, v.dtype)
	od := v.dims
	od[dim] = runs
	re, im := planes(t, product(od))
	lanes(v.dims, dim, func(_ int, base, stride int64) {
		lr, li := lane(v, base, stride, v.dims[dim])
		for r := int64(0); r < runs; r++ {
			var sub []float64
			if li != nil {
				sub = li[starts[r]:starts[r+1]]
			}
			x, y := reduceSlice(op, lr[starts[r]:starts[r+1]], sub)
			oc := coords(v.dims, base)
			oc[dim] = r
			dst := linear(od, oc)
			re[dst] = x
			if im != nil {
				im[dst] = y
			}
		}
	})
	return l.put(okeys), l.put(fromPlanes(od, t, re, im)), native.Success
}

// argBest returns the index of the min or max of re/im, ignoring NaN.
func argBest(op native.IndexedOp, re, im []float64) int {
	best, found := 0, false
	key := func(i int) float64 {
		if im != nil {
			return cmplx.Abs(complex(re[i], im[i]))
		}
		return re[i]
	}
	for i := range re {
		v := key(i)
		if math.IsNaN(v) {
			continue
		}
		if !found || (op == native.IndexedMin && v < key(best)) || (op == native.IndexedMax && v > key(best)) {
			best, found = i, true
		}
	}
	return best
}

func (l *Lib) IReduce(op native.IndexedOp, in native.Handle, dim int) (native.Handle, native.Handle, native.Code) {
	l.mu.Lock()
	defer l.mu.Unlock()
	a, c := l.get(in)
	if c != native.Success {
		return 0, 0, c
	}
	dim, c = l.resolveDim(a.dims, dim)
	if c != native.Success {
		return 0, 0, c
	}
	od := a.dims
	od[dim] = 1
	vals := newArray(od, a.dtype)
	idx := newArray(od, native.U32)
	lanes(a.dims, dim, func(k int, base, stride int64) {
		lr, li := lane(a, base, stride, a.dims[dim])
		j := argBest(op, lr, li)
		if len(lr) == 0 {
			return
		}
		vals.buf.re[k] = lr[j]
		if li != nil {
			vals.buf.im[k] = li[j]
		}
		idx.buf.re[k] = float64(j)
	})
	return l.put(vals), l.put(idx), native.Success
}

func (l *Lib) IReduceAll(op native.IndexedOp, in native.Handle) (re, im float64, idx uint32, c native.Code) {
	l.mu.Lock()
	defer l.mu.Unlock()
	a, c := l.get(in)
	if c != native.Success {
		return 0, 0, 0, c
	}
	if a.elements() == 0 {
		return 0, 0, 0, l.fail(native.ErrSize, "empty array")
	}
	j := argBest(op, a.buf.re, a.buf.im)
	return a.buf.re[j], imagAt(a.buf.im, j), uint32(j), native.Success
}

// scanStep folds v into acc for the af_binary_op code op.
func scanStep(op int, acc, v float64) float64 {
	switch op {
	case native.ScanMul:
		return acc * v
	case native.ScanMin:
		return math.Min(acc, v)
	case native.ScanMax:
		return math.Max(acc, v)
	}
	return acc + v
}

func scanIdentity(op int) float64 {
	switch op {
	case native.ScanMul:
		return 1
	case native.ScanMin:
		return math.Inf(1)
	case native.ScanMax:
		return math.Inf(-1)
	}
	return 0
}

// scan runs an inclusive or exclusive prefix scan along dim. When keys is
// non-nil the accumulator restarts wherever the key changes.
func (l *Lib) scan(a, keys *array, dim, op int, inclusive bool) (*array, native.Code) {
	if op < native.ScanAdd || op > native.ScanMax {
		return nil, l.fail(native.ErrArg, "invalid scan operator %d", op)
	}
	if a.buf.im != nil {
		return nil, l.fail(native.ErrType, "scan does not support complex input")
	}
	dim, c := l.resolveDim(a.dims, dim)
	if c != native.Success {
		return nil, c
	}
	t := a.dtype
	if op == native.ScanAdd || op == native.ScanMul {
		t = reduceType(native.ReduceSum, t)
	}
	re := make([]float64, a.elements())
	lanes(a.dims, dim, func(_ int, base, stride int64) {
		acc := scanIdentity(op)
		for j := int64(0); j < a.dims[dim]; j++ {
			i := base + j*stride
			if keys != nil && j > 0 && keys.buf.re[i] != keys.buf.re[i-stride] {
				acc = scanIdentity(op)
			}
			if inclusive {
				acc = scanStep(op, acc, a.buf.re[i])
				re[i] = acc
			} else {
				re[i] = acc
				acc = scanStep(op, acc, a.buf.re[i])
			}
		}
	})
	return fromPlanes(a.dims, t, re, nil), native.Success
}

func (l *Lib) Accum(in native.Handle, dim int) (native.Handle, native.Code) {
	return l.Scan(in, dim, native.ScanAdd, true)
}

func (l *Lib) Scan(in native.Handle, dim int, op int, inclusive bool) (native.Handle, native.Code) {
	return l.op1(in, func(a *array) (*array, native.Code) {
		return l.scan(a, nil, dim, op, inclusive)
	})
}

func (l *Lib) ScanByKey(keys, in native.Handle, dim int, op int, inclusive bool) (native.Handle, native.Code) {
	return l.op2(keys, in, func(k, a *array) (*array, native.Code) {
		if !sameShape(k, a) {
			return nil, l.fail(native.ErrSize, "keys and values differ in shape")
		}
		return l.scan(a, k, dim, op, inclusive)
	})
}

func (l *Lib) Where(in native.Handle) (native.Handle, native.Code) {
	return l.op1(in, func(a *array) (*array, native.Code) {
		var idx []float64
		for i := range a.buf.re {
			if a.buf.re[i] != 0 || imagAt(a.buf.im, i) != 0 {
				idx = append(idx, float64(i))
			}
		}
		if idx == nil {
			idx = []float64{}
		}
		return fromPlanes([4]int64{int64(len(idx)), 1, 1, 1}, native.U32, idx, nil), native.Success
	})
}

func (l *Lib) diff(in native.Handle, dim, order int) (native.Handle, native.Code) {
	return l.op1(in, func(a *array) (*array, native.Code) {
		if !checkDim(dim) {
			return nil, l.fail(native.ErrArg, "invalid dimension %d", dim)
		}
		if a.dims[dim] <= int64(order) {
			return nil, l.fail(native.ErrSize, "dimension %d too short for difference of order %d", dim, order)
		}
		od := a.dims
		od[dim] -= int64(order)
		re, im := planes(a.dtype, product(od))
		for i := int64(0); i < product(od); i++ {
			c := coords(od, i)
			s := linear(a.dims, c)
			st := dimStride(a.dims, dim)
			if order == 1 {
				re[i] = a.buf.re[s+st] - a.buf.re[s]
				if im != nil {
					im[i] = a.buf.im[s+st] - a.buf.im[s]
				}
				continue
			}
			re[i] = a.buf.re[s+2*st] - 2*a.buf.re[s+st] + a.buf.re[s]
			if im != nil {
				im[i] = a.buf.im[s+2*st] - 2*a.buf.im[s+st] + a.buf.im[s]
			}
		}
		return fromPlanes(od, a.dtype, re, im), native.Success
	})
}

func (l *Lib) Diff1(in native.Handle, dim int) (native.Handle, native.Code) { return l.diff(in, dim, 1) }
func (l *Lib) Diff2(in native.Handle, dim int) (native.Handle, native.Code) { return l.diff(in, dim, 2) }

// sortLanes sorts every lane of keys along dim and applies the same
// permutation to each of the follower arrays. It returns the permutation
// indices as a u32 array.
func (l *Lib) sortLanes(keys *array, dim uint32, asc bool, followers ...*array) ([]*array, *array, native.Code) {
	if dim > 3 {
		return nil, nil, l.fail(native.ErrArg, "invalid dimension %d", dim)
	}
	if keys.buf.im != nil {
		return nil, nil, l.fail(native.ErrType, "sort does not support complex keys")
	}
	outs := []*array{newArray(keys.dims, keys.dtype)}
	for _, f := range followers {
		if !sameShape(f, keys) {
			return nil, nil, l.fail(native.ErrSize, "keys and values differ in shape")
		}
		outs = append(outs, newArray(f.dims, f.dtype))
	}
	idx := newArray(keys.dims, native.U32)
	d := int(dim)
	lanes(keys.dims, d, func(_ int, base, stride int64) {
		n := keys.dims[d]
		perm := make([]int64, n)
		for j := range perm {
			perm[j] = int64(j)
		}
		sort.SliceStable(perm, func(x, y int) bool {
			a, b := keys.buf.re[base+perm[x]*stride], keys.buf.re[base+perm[y]*stride]
			if asc {
				return a < b
			}
			return a > b
		})
		for j, p := range perm {
			dst, src := base+int64(j)*stride, base+p*stride
			idx.buf.re[dst] = float64(p)
			for o, arr := range append([]*array{keys}, followers...) {
				outs[o].buf.re[dst] = arr.buf.re[src]
				if arr.buf.im != nil {
					outs[o].buf.im[dst] = arr.buf.im[src]
				}
			}
		}
	})
	return outs, idx, native.Success
}

func (l *Lib) Sort(in native.Handle, dim uint32, asc bool) (native.Handle, native.Code) {
	return l.op1(in, func(a *array) (*array, native.Code) {
		outs, _, c := l.sortLanes(a, dim, asc)
		if c != native.Success {
			return nil, c
		}
		return outs[0], native.Success
	})
}

func (l *Lib) SortIndex(in native.Handle, dim uint32, asc bool) (native.Handle, native.Handle, native.Code) {
	l.mu.Lock()
	defer l.mu.Unlock()
	a, c := l.get(in)
	if c != native.Success {
		return 0, 0, c
	}
	outs, idx, c := l.sortLanes(a, dim, asc)
	if c != native.Success {
		return 0, 0, c
	}
	return l.put(outs[0]), l.put(idx), native.Success
}

func (l *Lib) SortByKey(keys, vals native.Handle, dim uint32, asc bool) (native.Handle, native.Handle, native.Code) {
	l.mu.Lock()
	defer l.mu.Unlock()
	k, c := l.get(keys)
	if c != native.Success {
		return 0, 0, c
	}
	v, c := l.get(vals)
	if c != native.Success {
		return 0, 0, c
	}
	outs, _, c := l.sortLanes(k, dim, asc, v)
	if c != native.Success {
		return 0, 0, c
	}
	return l.put(outs[0]), l.put(outs[1]), native.Success
}

func uniqueSorted(vs []float64) []float64 {
	s := append([]float64(nil), vs...)
	sort.Float64s(s)
	out := s[:0]
	for i, v := range s {
		if i == 0 || v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}

func vector(t native.DType, vs []float64) *array {
	return fromPlanes([4]int64{int64(len(vs)), 1, 1, 1}, t, vs, nil)
}

func (l *Lib) SetUnique(in native.Handle, isSorted bool) (native.Handle, native.Code) {
	return l.op1(in, func(a *array) (*array, native.Code) {
		if a.buf.im != nil {
			return nil, l.fail(native.ErrType, "set operations do not support complex input")
		}
		return vector(a.dtype, uniqueSorted(a.buf.re)), native.Success
	})
}

func (l *Lib) SetOp(op native.SetOp, a, b native.Handle, isUnique bool) (native.Handle, native.Code) {
	return l.op2(a, b, func(x, y *array) (*array, native.Code) {
		if x.buf.im != nil || y.buf.im != nil {
			return nil, l.fail(native.ErrType, "set operations do not support complex input")
		}
		t := promote(x.dtype, y.dtype)
		ux, uy := uniqueSorted(x.buf.re), uniqueSorted(y.buf.re)
		switch op {
		case native.SetUnion:
			return vector(t, uniqueSorted(append(ux, uy...))), native.Success
		case native.SetIntersect:
			out := []float64{}
			i, j := 0, 0
			for i < len(ux) && j < len(uy) {
				switch {
				case ux[i] < uy[j]:
					i++
				case ux[i] > uy[j]:
					j++
				default:
					out = append(out, ux[i])
					i++
					j++
				}
			}
			return vector(t, out), native.Success
		}
		return nil, l.fail(native.ErrArg, "invalid set operation %d", op)
	})
}

func (l *Lib) MaxRagged(in, lens native.Handle, dim int) (native.Handle, native.Handle, native.Code) {
	l.mu.Lock()
	defer l.mu.Unlock()
	a, c := l.get(in)
	if c != native.Success {
		return 0, 0, c
	}
	n, c := l.get(lens)
	if c != native.Success {
		return 0, 0, c
	}
	if !checkDim(dim) {
		return 0, 0, l.fail(native.ErrArg, "invalid dimension %d", dim)
	}
	od := a.dims
	od[dim] = 1
	if n.dims != od {
		return 0, 0, l.fail(native.ErrSize, "ragged lengths must match the reduced shape %v", od)
	}
	vals := newArray(od, a.dtype)
	idx := newArray(od, native.U32)
	lanes(a.dims, dim, func(k int, base, stride int64) {
		m := min(int64(n.buf.re[k]), a.dims[dim])
		if m <= 0 {
			return
		}
		lr, li := lane(a, base, stride, m)
		j := argBest(native.IndexedMax, lr, li)
		vals.buf.re[k] = lr[j]
		if li != nil {
			vals.buf.im[k] = li[j]
		}
		idx.buf.re[k] = float64(j)
	})
	return l.put(vals), l.put(idx), native.Success
}
