package host

import "github.com/23skdu/arrayfire-go/internal/native"

// op0 registers the array produced by f.
func (l *Lib) op0(f func() (*array, native.Code)) (native.Handle, native.Code) {
	l.mu.Lock()
	defer l.mu.Unlock()
	out, c := f()
	if c != native.Success {
		return 0, c
	}
	return l.put(out), native.Success
}

// op1 runs f on the array behind in and registers its result.
func (l *Lib) op1(in native.Handle, f func(a *array) (*array, native.Code)) (native.Handle, native.Code) {
	l.mu.Lock()
	defer l.mu.Unlock()
	a, c := l.get(in)
	if c != native.Success {
		return 0, c
	}
	out, c := f(a)
	if c != native.Success {
		return 0, c
	}
	return l.put(out), native.Success
}

func (l *Lib) op2(x, y native.Handle, f func(a, b *array) (*array, native.Code)) (native.Handle, native.Code) {
	l.mu.Lock()
	defer l.mu.Unlock()
	a, c := l.get(x)
	if c != native.Success {
		return 0, c
	}
	b, c := l.get(y)
	if c != native.Success {
		return 0, c
	}
	out, c := f(a, b)
	if c != native.Success {
		return 0, c
	}
	return l.put(out), native.Success
}

func (l *Lib) shape(dims []int64, t native.DType) ([4]int64, native.Code) {
	d, c := toDims(dims)
	if c != native.Success {
		return d, l.fail(c, "invalid dimensions %v", dims)
	}
	if !valid(t) {
		return d, l.fail(native.ErrType, "invalid type %d", t)
	}
	return d, native.Success
}

func (l *Lib) Constant(v float64, dims []int64, t native.DType) (native.Handle, native.Code) {
	return l.op0(func() (*array, native.Code) {
		d, c := l.shape(dims, t)
		if c != native.Success {
			return nil, c
		}
		a := newArray(d, t)
		q := quantize(t, v)
		for i := range a.buf.re {
			a.buf.re[i] = q
		}
		return a, native.Success
	})
}

func (l *Lib) ConstantComplex(re, im float64, dims []int64, t native.DType) (native.Handle, native.Code) {
	return l.op0(func() (*array, native.Code) {
		d, c := l.shape(dims, t)
		if c != native.Success {
			return nil, c
		}
		if !t.IsComplex() {
			return nil, l.fail(native.ErrType, "complex constant needs c32 or c64")
		}
		a := newArray(d, t)
		qr, qi := quantize(t, re), quantize(t, im)
		for i := range a.buf.re {
			a.buf.re[i], a.buf.im[i] = qr, qi
		}
		return a, native.Success
	})
}

func (l *Lib) ConstantLong(v int64, dims []int64) (native.Handle, native.Code) {
	return l.Constant(float64(v), dims, native.S64)
}

func (l *Lib) ConstantULong(v uint64, dims []int64) (native.Handle, native.Code) {
	return l.Constant(float64(v), dims, native.U64)
}

func (l *Lib) Range(dims []int64, seqDim int, t native.DType) (native.Handle, native.Code) {
	return l.op0(func() (*array, native.Code) {
		d, c := l.shape(dims, t)
		if c != native.Success {
			return nil, c
		}
		if seqDim == -1 {
			seqDim = 0
		}
		if !checkDim(seqDim) {
			return nil, l.fail(native.ErrArg, "invalid sequence dimension %d", seqDim)
		}
		a := newArray(d, t)
		for i := range a.buf.re {
			a.buf.re[i] = quantize(t, float64(coords(d, int64(i))[seqDim]))
		}
		return a, native.Success
	})
}

func (l *Lib) Iota(dims, tile []int64, t native.DType) (native.Handle, native.Code) {
	return l.op0(func() (*array, native.Code) {
		d, c := l.shape(dims, t)
		if c != native.Success {
			return nil, c
		}
		td, c := toDims(tile)
		if c != native.Success {
			return nil, l.fail(c, "invalid tile %v", tile)
		}
		var od [4]int64
		for i := range od {
			od[i] = d[i] * td[i]
		}
		a := newArray(od, t)
		for i := range a.buf.re {
			oc := coords(od, int64(i))
			for k := range oc {
				oc[k] %= d[k]
			}
			a.buf.re[i] = quantize(t, float64(linear(d, oc)))
		}
		return a, native.Success
	})
}

func (l *Lib) Identity(dims []int64, t native.DType) (native.Handle, native.Code) {
	return l.op0(func() (*array, native.Code) {
		d, c := l.shape(dims, t)
		if c != native.Success {
			return nil, c
		}
		a := newArray(d, t)
		for i := range a.buf.re {
			if cc := coords(d, int64(i)); cc[0] == cc[1] {
				a.buf.re[i] = 1
			}
		}
		return a, native.Success
	})
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

func (l *Lib) DiagCreate(in native.Handle, num int) (native.Handle, native.Code) {
	return l.op1(in, func(a *array) (*array, native.Code) {
		if a.dims[1] != 1 {
			return nil, l.fail(native.ErrSize, "diagonal source must be a vector")
		}
		n := a.dims[0]
		size := n + abs64(int64(num))
		od := [4]int64{size, size, a.dims[2], a.dims[3]}
		out := newArray(od, a.dtype)
		for b3 := int64(0); b3 < od[3]; b3++ {
			for b2 := int64(0); b2 < od[2]; b2++ {
				for i := int64(0); i < n; i++ {
					r, col := i, i+int64(num)
					if num < 0 {
						r, col = i-int64(num), i
					}
					src := linear(a.dims, [4]int64{i, 0, b2, b3})
					dst := linear(od, [4]int64{r, col, b2, b3})
					out.buf.re[dst] = valRe(a, src)
					if out.buf.im != nil {
						out.buf.im[dst] = valIm(a, src)
					}
				}
			}
		}
		return out, native.Success
	})
}

func (l *Lib) DiagExtract(in native.Handle, num int) (native.Handle, native.Code) {
	return l.op1(in, func(a *array) (*array, native.Code) {
		r0, c0 := int64(0), int64(num)
		if num < 0 {
			r0, c0 = int64(-num), 0
		}
		n := min(a.dims[0]-r0, a.dims[1]-c0)
		if n < 0 {
			n = 0
		}
		od := [4]int64{n, 1, a.dims[2], a.dims[3]}
		out := newArray(od, a.dtype)
		for b3 := int64(0); b3 < od[3]; b3++ {
			for b2 := int64(0); b2 < od[2]; b2++ {
				for i := int64(0); i < n; i++ {
					src := linear(a.dims, [4]int64{r0 + i, c0 + i, b2, b3})
					dst := linear(od, [4]int64{i, 0, b2, b3})
					out.buf.re[dst] = valRe(a, src)
					if out.buf.im != nil {
						out.buf.im[dst] = valIm(a, src)
					}
				}
			}
		}
		return out, native.Success
	})
}

func (l *Lib) Join(dim int, hs []native.Handle) (native.Handle, native.Code) {
	return l.op0(func() (*array, native.Code) {
		if !checkDim(dim) || len(hs) == 0 {
			return nil, l.fail(native.ErrArg, "invalid join of %d arrays along %d", len(hs), dim)
		}
		var parts []*array
		for _, h := range hs {
			a, c := l.get(h)
			if c != native.Success {
				return nil, c
			}
			if a.elements() > 0 {
				parts = append(parts, a)
			}
		}
		if len(parts) == 0 {
			a, _ := l.get(hs[0])
			return newArray(a.dims, a.dtype), native.Success
		}
		od := parts[0].dims
		od[dim] = 0
		t := parts[0].dtype
		for _, p := range parts {
			for k := range od {
				if k != dim && p.dims[k] != parts[0].dims[k] {
					return nil, l.fail(native.ErrSize, "join dimension %d mismatch", k)
				}
			}
			od[dim] += p.dims[dim]
			t = promote(t, p.dtype)
		}
		out := newArray(od, t)
		var off int64
		for _, p := range parts {
			for i := int64(0); i < p.elements(); i++ {
				c := coords(p.dims, i)
				c[dim] += off
				dst := linear(od, c)
				out.buf.re[dst] = quantize(t, valRe(p, i))
				if out.buf.im != nil {
					out.buf.im[dst] = quantize(t, valIm(p, i))
				}
			}
			off += p.dims[dim]
		}
		return out, native.Success
	})
}

// gather builds an array of shape od whose element at c is a's element at src(c).
// A negative source index yields zero.
func gather(a *array, od [4]int64, src func(c [4]int64) int64) *array {
	out := newArray(od, a.dtype)
	for i := int64(0); i < product(od); i++ {
		s := src(coords(od, i))
		if s < 0 {
			continue
		}
		out.buf.re[i] = valRe(a, s)
		if out.buf.im != nil {
			out.buf.im[i] = valIm(a, s)
		}
	}
	return out
}

func (l *Lib) Tile(in native.Handle, reps [4]uint32) (native.Handle, native.Code) {
	return l.op1(in, func(a *array) (*array, native.Code) {
		var od [4]int64
		for i := range od {
			if reps[i] == 0 {
				return nil, l.fail(native.ErrArg, "tile count must be positive")
			}
			od[i] = a.dims[i] * int64(reps[i])
		}
		return gather(a, od, func(c [4]int64) int64 {
			for k := range c {
				c[k] %= a.dims[k]
			}
			return linear(a.dims, c)
		}), native.Success
	})
}

func (l *Lib) Reorder(in native.Handle, order [4]uint32) (native.Handle, native.Code) {
	return l.op1(in, func(a *array) (*array, native.Code) {
		var seen [4]bool
		var od [4]int64
		for k, o := range order {
			if o > 3 || seen[o] {
				return nil, l.fail(native.ErrArg, "invalid reorder %v", order)
			}
			seen[o] = true
			od[k] = a.dims[o]
		}
		return gather(a, od, func(c [4]int64) int64 {
			var ic [4]int64
			for k, o := range order {
				ic[o] = c[k]
			}
			return linear(a.dims, ic)
		}), native.Success
	})
}

func mod(v, n int64) int64 {
	if n == 0 {
		return 0
	}
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

func (l *Lib) Shift(in native.Handle, shifts [4]int32) (native.Handle, native.Code) {
	return l.op1(in, func(a *array) (*array, native.Code) {
		return gather(a, a.dims, func(c [4]int64) int64 {
			for k := range c {
				c[k] = mod(c[k]-int64(shifts[k]), a.dims[k])
			}
			return linear(a.dims, c)
		}), native.Success
	})
}

// reshape returns a view of a's data with new dims.
func reshape(a *array, d [4]int64) *array {
	re := append([]float64(nil), a.buf.re...)
	var im []float64
	if a.buf.im != nil {
		im = append([]float64(nil), a.buf.im...)
	}
	return &array{dims: d, dtype: a.dtype, buf: &buffer{re: re, im: im}}
}

func (l *Lib) Moddims(in native.Handle, dims []int64) (native.Handle, native.Code) {
	return l.op1(in, func(a *array) (*array, native.Code) {
		d, c := toDims(dims)
		if c != native.Success {
			return nil, l.fail(c, "invalid dimensions %v", dims)
		}
		if product(d) != a.elements() {
			return nil, l.fail(native.ErrSize, "cannot reshape %v into %v", a.dims, d)
		}
		return reshape(a, d), native.Success
	})
}

func (l *Lib) Flat(in native.Handle) (native.Handle, native.Code) {
	return l.op1(in, func(a *array) (*array, native.Code) {
		return reshape(a, [4]int64{a.elements(), 1, 1, 1}), native.Success
	})
}

func (l *Lib) Flip(in native.Handle, dim uint32) (native.Handle, native.Code) {
	return l.op1(in, func(a *array) (*array, native.Code) {
		if dim > 3 {
			return nil, l.fail(native.ErrArg, "invalid dimension %d", dim)
		}
		return gather(a, a.dims, func(c [4]int64) int64 {
			c[dim] = a.dims[dim] - 1 - c[dim]
			return linear(a.dims, c)
		}), native.Success
	})
}

func (l *Lib) triangle(in native.Handle, unitDiag, upper bool) (native.Handle, native.Code) {
	return l.op1(in, func(a *array) (*array, native.Code) {
		out := gather(a, a.dims, func(c [4]int64) int64 {
			if (upper && c[0] > c[1]) || (!upper && c[0] < c[1]) {
				return -1
			}
			return linear(a.dims, c)
		})
		if unitDiag {
			for i := int64(0); i < out.elements(); i++ {
				if c := coords(out.dims, i); c[0] == c[1] {
					out.buf.re[i] = 1
					if out.buf.im != nil {
						out.buf.im[i] = 0
					}
				}
			}
		}
		return out, native.Success
	})
}

func (l *Lib) Lower(in native.Handle, unitDiag bool) (native.Handle, native.Code) {
	return l.triangle(in, unitDiag, false)
}

func (l *Lib) Upper(in native.Handle, unitDiag bool) (native.Handle, native.Code) {
	return l.triangle(in, unitDiag, true)
}

func (l *Lib) Select(cond, a, b native.Handle) (native.Handle, native.Code) {
	l.mu.Lock()
	defer l.mu.Unlock()
	ca, c := l.get(cond)
	if c != native.Success {
		return 0, c
	}
	x, c := l.get(a)
	if c != native.Success {
		return 0, c
	}
	y, c := l.get(b)
	if c != native.Success {
		return 0, c
	}
	if !sameShape(ca, x) || !sameShape(ca, y) {
		return 0, l.fail(native.ErrSize, "select operands differ in shape")
	}
	t := promote(x.dtype, y.dtype)
	re, im := planes(t, ca.elements())
	for i := range re {
		src := y
		if ca.buf.re[i] != 0 {
			src = x
		}
		re[i] = valRe(src, int64(i))
		if im != nil {
			im[i] = valIm(src, int64(i))
		}
	}
	return l.put(fromPlanes(ca.dims, t, re, im)), native.Success
}

func (l *Lib) selectScalar(cond, arr native.Handle, v float64, arrWhenTrue bool) (native.Handle, native.Code) {
	return l.op2(cond, arr, func(ca, x *array) (*array, native.Code) {
		if !sameShape(ca, x) {
			return nil, l.fail(native.ErrSize, "select operands differ in shape")
		}
		re, im := planes(x.dtype, x.elements())
		for i := range re {
			if (ca.buf.re[i] != 0) == arrWhenTrue {
				re[i] = valRe(x, int64(i))
				if im != nil {
					im[i] = valIm(x, int64(i))
				}
			} else {
				re[i] = v
			}
		}
		return fromPlanes(x.dims, x.dtype, re, im), native.Success
	})
}

func (l *Lib) SelectScalarR(cond, a native.Handle, b float64) (native.Handle, native.Code) {
	return l.selectScalar(cond, a, b, true)
}

func (l *Lib) SelectScalarL(cond native.Handle, a float64, b native.Handle) (native.Handle, native.Code) {
	return l.selectScalar(cond, b, a, false)
}

func (l *Lib) Replace(a, cond, b native.Handle) native.Code {
	l.mu.Lock()
	defer l.mu.Unlock()
	x, c := l.get(a)
	if c != native.Success {
		return c
	}
	ca, c := l.get(cond)
	if c != native.Success {
		return c
	}
	y, c := l.get(b)
	if c != native.Success {
		return c
	}
	if !sameShape(x, ca) || !sameShape(x, y) {
		return l.fail(native.ErrSize, "replace operands differ in shape")
	}
	for i := range x.buf.re {
		if ca.buf.re[i] == 0 {
			x.buf.re[i] = quantize(x.dtype, valRe(y, int64(i)))
			if x.buf.im != nil {
				x.buf.im[i] = quantize(x.dtype, valIm(y, int64(i)))
			}
		}
	}
	return native.Success
}

func (l *Lib) ReplaceScalar(a, cond native.Handle, b float64) native.Code {
	l.mu.Lock()
	defer l.mu.Unlock()
	x, c := l.get(a)
	if c != native.Success {
		return c
	}
	ca, c := l.get(cond)
	if c != native.Success {
		return c
	}
	if !sameShape(x, ca) {
		return l.fail(native.ErrSize, "replace operands differ in shape")
	}
	q := quantize(x.dtype, b)
	for i := range x.buf.re {
		if ca.buf.re[i] == 0 {
			x.buf.re[i] = q
			if x.buf.im != nil {
				x.buf.im[i] = 0
			}
		}
	}
	return native.Success
}

// Border types, matching af_border_type.
const (
	padZero = iota
	padSym
	padClamp
	padPeriodic
)

func padIndex(c, n int64, border int) int64 {
	if c >= 0 && c < n {
		return c
	}
	switch border {
	case padSym:
		p := mod(c, 2*n)
		if p >= n {
			p = 2*n - 1 - p
		}
		return p
	case padClamp:
		return min(max(c, 0), n-1)
	case padPeriodic:
		return mod(c, n)
	}
	return -1
}

func (l *Lib) Pad(in native.Handle, begin, end []int64, border int) (native.Handle, native.Code) {
	return l.op1(in, func(a *array) (*array, native.Code) {
		if len(begin) > 4 || len(end) > 4 || border < padZero || border > padPeriodic {
			return nil, l.fail(native.ErrArg, "invalid padding")
		}
		var b, e [4]int64
		copy(b[:], begin)
		copy(e[:], end)
		od := a.dims
		for i := range od {
			if b[i] < 0 || e[i] < 0 {
				return nil, l.fail(native.ErrArg, "negative padding")
			}
			od[i] += b[i] + e[i]
		}
		return gather(a, od, func(c [4]int64) int64 {
			for k := range c {
				p := padIndex(c[k]-b[k], a.dims[k], border)
				if p < 0 {
					return -1
				}
				c[k] = p
			}
			return linear(a.dims, c)
		}), native.Success
	})
}
