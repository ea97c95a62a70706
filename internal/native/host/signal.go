package host

import (
	"math/cmplx"
	"sort"

	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/23skdu/arrayfire-go/internal/native"
)

// Convolution modes and domains, matching af_conv_mode and af_conv_domain.
const (
	convDefault = 0
	convExpand  = 1

	domainAuto    = 0
	domainSpatial = 1
	domainFreq    = 2
)

// Interpolation methods, matching af_interp_type.
const (
	interpNearest = 0
	interpLinear  = 1
)

// spectrum is a complex working copy of an array.
type spectrum struct {
	dims [4]int64
	v    []complex128
}

func spectrumOf(a *array) *spectrum {
	s := &spectrum{dims: a.dims, v: make([]complex128, a.n())}
	for i := range s.v {
		s.v[i] = complex(valRe(a, int64(i)), valIm(a, int64(i)))
	}
	return s
}

// resize pads with zeros or truncates s along every dimension to d.
func (s *spectrum) resize(d [4]int64) *spectrum {
	if d == s.dims {
		return s
	}
	out := &spectrum{dims: d, v: make([]complex128, product(d))}
	for i := range out.v {
		c := coords(d, int64(i))
		inside := true
		for k := range c {
			if c[k] >= s.dims[k] {
				inside = false
				break
			}
		}
		if inside {
			out.v[i] = s.v[linear(s.dims, c)]
		}
	}
	return out
}

// transform runs a 1-D complex transform over every lane of s along dim.
func (s *spectrum) transform(dim int, inverse bool) {
	n := s.dims[dim]
	if n <= 1 || len(s.v) == 0 {
		return
	}
	plan := fourier.NewCmplxFFT(int(n))
	seq := make([]complex128, n)
	res := make([]complex128, n)
	lanes(s.dims, dim, func(_ int, base, stride int64) {
		for j := int64(0); j < n; j++ {
			seq[j] = s.v[base+j*stride]
		}
		if inverse {
			plan.Sequence(res, seq)
		} else {
			plan.Coefficients(res, seq)
		}
		for j := int64(0); j < n; j++ {
			s.v[base+j*stride] = res[j]
		}
	})
}

func (s *spectrum) scale(f float64) {
	if f == 1 {
		return
	}
	for i := range s.v {
		s.v[i] *= complex(f, 0)
	}
}

func (s *spectrum) array(t native.DType) *array {
	re, im := planes(t, int64(len(s.v)))
	for i, v := range s.v {
		re[i] = real(v)
		if im != nil {
			im[i] = imag(v)
		}
	}
	return fromPlanes(s.dims, t, re, im)
}

func (l *Lib) fftInput(a *array, rank int) native.Code {
	if rank < 1 || rank > 3 {
		return l.fail(native.ErrArg, "invalid transform rank %d", rank)
	}
	if !isFloat(a.dtype) || a.dtype == native.F16 {
		return l.fail(native.ErrType, "transform needs a floating point type")
	}
	return native.Success
}

func (l *Lib) FFT(kind native.FFTKind, rank int, in native.Handle, norm float64, odims [3]int64) (native.Handle, native.Code) {
	return l.op1(in, func(a *array) (*array, native.Code) {
		if c := l.fftInput(a, rank); c != native.Success {
			return nil, c
		}
		d := a.dims
		for k := 0; k < rank; k++ {
			if odims[k] < 0 {
				return nil, l.fail(native.ErrArg, "negative output dimension")
			}
			if odims[k] > 0 {
				d[k] = odims[k]
			}
		}
		s := spectrumOf(a).resize(d)
		for k := 0; k < rank; k++ {
			s.transform(k, kind == native.Inverse)
		}
		s.scale(norm)
		return s.array(toComplex(a.dtype)), native.Success
	})
}

func (l *Lib) FFTInplace(kind native.FFTKind, rank int, in native.Handle, norm float64) native.Code {
	l.mu.Lock()
	defer l.mu.Unlock()
	a, c := l.get(in)
	if c != native.Success {
		return c
	}
	if !a.dtype.IsComplex() {
		return l.fail(native.ErrType, "in-place transform needs a complex array")
	}
	if c := l.fftInput(a, rank); c != native.Success {
		return c
	}
	s := spectrumOf(a)
	for k := 0; k < rank; k++ {
		s.transform(k, kind == native.Inverse)
	}
	s.scale(norm)
	out := s.array(a.dtype)
	copy(a.buf.re, out.buf.re)
	copy(a.buf.im, out.buf.im)
	return native.Success
}

func (l *Lib) FFTR2C(rank int, in native.Handle, norm float64, pad [3]int64) (native.Handle, native.Code) {
	return l.op1(in, func(a *array) (*array, native.Code) {
		if c := l.fftInput(a, rank); c != native.Success {
			return nil, c
		}
		if a.dtype.IsComplex() {
			return nil, l.fail(native.ErrType, "real to complex transform needs a real array")
		}
		d := a.dims
		for k := 0; k < rank; k++ {
			if pad[k] > 0 {
				d[k] = pad[k]
			}
		}
		s := spectrumOf(a).resize(d)
		for k := 0; k < rank; k++ {
			s.transform(k, false)
		}
		s.scale(norm)
		half := d
		half[0] = d[0]/2 + 1
		return s.resize(half).array(toComplex(a.dtype)), native.Success
	})
}

func (l *Lib) FFTC2R(rank int, in native.Handle, norm float64, isOdd bool) (native.Handle, native.Code) {
	return l.op1(in, func(a *array) (*array, native.Code) {
		if c := l.fftInput(a, rank); c != native.Success {
			return nil, c
		}
		if !a.dtype.IsComplex() {
			return nil, l.fail(native.ErrType, "complex to real transform needs a complex array")
		}
		s := spectrumOf(a)
		for k := 1; k < rank; k++ {
			s.transform(k, true)
		}
		// Every lane along dim 0 now holds half of a Hermitian spectrum.
		h := a.dims[0]
		d := a.dims
		d[0] = 2 * (h - 1)
		if isOdd {
			d[0]++
		}
		full := s.resize(d)
		n := d[0]
		lanes(d, 0, func(_ int, base, _ int64) {
			for j := h; j < n; j++ {
				full.v[base+j] = cmplx.Conj(full.v[base+n-j])
			}
		})
		full.transform(0, true)
		full.scale(norm)
		return full.array(toReal(a.dtype)), native.Success
	})
}

// convolve computes the rank-dimensional convolution of a with filter f.
// Dimensions above rank are batched over a; f must not be batched.
func (l *Lib) convolve(rank int, a, f *array, mode int) (*array, native.Code) {
	if rank < 1 || rank > 3 {
		return nil, l.fail(native.ErrArg, "invalid convolution rank %d", rank)
	}
	if mode != convDefault && mode != convExpand {
		return nil, l.fail(native.ErrArg, "invalid convolution mode %d", mode)
	}
	for k := rank; k < 4; k++ {
		if f.dims[k] != 1 {
			return nil, l.fail(native.ErrNotSupported, "batched filters are not available on the host library")
		}
	}
	t := promote(a.dtype, f.dtype)
	if !isFloat(t) {
		t = native.F32
	}
	od := a.dims
	var start [4]int64
	for k := 0; k < rank; k++ {
		if mode == convExpand {
			od[k] = a.dims[k] + f.dims[k] - 1
		} else {
			start[k] = f.dims[k] / 2
		}
	}
	re, im := planes(t, product(od))
	for i := range re {
		oc := coords(od, int64(i))
		var sr, si float64
		for j := int64(0); j < f.elements(); j++ {
			fc := coords(f.dims, j)
			sc := oc
			inside := true
			for k := 0; k < rank; k++ {
				sc[k] = oc[k] + start[k] - fc[k]
				if sc[k] < 0 || sc[k] >= a.dims[k] {
					inside = false
					break
				}
			}
			if !inside {
				continue
			}
			s := linear(a.dims, sc)
			x := complex(valRe(a, s), valIm(a, s)) * complex(valRe(f, j), valIm(f, j))
			sr += real(x)
			si += imag(x)
		}
		re[i] = sr
		if im != nil {
			im[i] = si
		}
	}
	return fromPlanes(od, t, re, im), native.Success
}

func (l *Lib) Convolve(rank int, signal, filter native.Handle, mode, domain int) (native.Handle, native.Code) {
	return l.op2(signal, filter, func(a, f *array) (*array, native.Code) {
		if domain < domainAuto || domain > domainFreq {
			return nil, l.fail(native.ErrArg, "invalid convolution domain %d", domain)
		}
		return l.convolve(rank, a, f, mode)
	})
}

// FFTConvolve gives the same result as the spatial convolution.
func (l *Lib) FFTConvolve(rank int, signal, filter native.Handle, mode int) (native.Handle, native.Code) {
	return l.Convolve(rank, signal, filter, mode, domainFreq)
}

func (l *Lib) Convolve2Sep(colFilter, rowFilter, signal native.Handle, mode int) (native.Handle, native.Code) {
	l.mu.Lock()
	defer l.mu.Unlock()
	cf, c := l.get(colFilter)
	if c != native.Success {
		return 0, c
	}
	rf, c := l.get(rowFilter)
	if c != native.Success {
		return 0, c
	}
	a, c := l.get(signal)
	if c != native.Success {
		return 0, c
	}
	if cf.elements() != cf.dims[0] || rf.elements() != rf.dims[0] {
		return 0, l.fail(native.ErrSize, "separable filters must be column vectors")
	}
	row := reshape(rf, [4]int64{1, rf.dims[0], 1, 1})
	tmp, c := l.convolve(2, a, cf, mode)
	if c != native.Success {
		return 0, c
	}
	out, c := l.convolve(2, tmp, row, mode)
	if c != native.Success {
		return 0, c
	}
	return l.put(out), native.Success
}

func (l *Lib) FIR(b, x native.Handle) (native.Handle, native.Code) {
	return l.op2(b, x, func(bf, xs *array) (*array, native.Code) {
		full, c := l.convolve(1, xs, bf, convExpand)
		if c != native.Success {
			return nil, c
		}
		return gather(full, xs.dims, func(cc [4]int64) int64 {
			return linear(full.dims, cc)
		}), native.Success
	})
}

// IIR filters every column of x with feedforward b and feedback a.
// a[0] normalizes the output.
func (l *Lib) IIR(b, a, x native.Handle) (native.Handle, native.Code) {
	l.mu.Lock()
	defer l.mu.Unlock()
	bf, c := l.get(b)
	if c != native.Success {
		return 0, c
	}
	af, c := l.get(a)
	if c != native.Success {
		return 0, c
	}
	xs, c := l.get(x)
	if c != native.Success {
		return 0, c
	}
	if bf.elements() == 0 || af.elements() == 0 || af.buf.re[0] == 0 {
		return 0, l.fail(native.ErrArg, "iir needs non-empty coefficients with a[0] != 0")
	}
	if xs.dtype.IsComplex() || bf.dtype.IsComplex() || af.dtype.IsComplex() {
		return 0, l.fail(native.ErrNotSupported, "complex iir filters are not available on the host library")
	}
	t := toFloat(promote(xs.dtype, promote(bf.dtype, af.dtype)))
	re, _ := planes(t, xs.elements())
	n := xs.dims[0]
	a0 := af.buf.re[0]
	lanes(xs.dims, 0, func(_ int, base, _ int64) {
		for i := int64(0); i < n; i++ {
			var y float64
			for k := int64(0); k < bf.elements() && k <= i; k++ {
				y += bf.buf.re[k] * xs.buf.re[base+i-k]
			}
			for k := int64(1); k < af.elements() && k <= i; k++ {
				y -= af.buf.re[k] * re[base+i-k]
			}
			re[base+i] = y / a0
		}
	})
	return l.put(fromPlanes(xs.dims, t, re, nil)), native.Success
}

func (l *Lib) Approx1(in, pos native.Handle, method int, offGrid float32) (native.Handle, native.Code) {
	return l.op2(in, pos, func(a, p *array) (*array, native.Code) {
		if method != interpNearest && method != interpLinear {
			return nil, l.fail(native.ErrNotSupported, "interpolation method %d is not available on the host library", method)
		}
		if p.elements() != p.dims[0] {
			return nil, l.fail(native.ErrSize, "positions must be a column vector")
		}
		if !isFloat(a.dtype) {
			return nil, l.fail(native.ErrType, "interpolation needs a floating point type")
		}
		od := a.dims
		od[0] = p.dims[0]
		re, im := planes(a.dtype, product(od))
		n := a.dims[0]
		for i := range re {
			c := coords(od, int64(i))
			x := p.buf.re[c[0]]
			if x < 0 || x > float64(n-1) {
				re[i] = float64(offGrid)
				continue
			}
			lo := int64(x)
			frac := x - float64(lo)
			if method == interpNearest {
				if frac >= 0.5 {
					lo++
				}
				frac = 0
			}
			c[0] = lo
			s0 := linear(a.dims, c)
			re[i] = valRe(a, s0)
			if im != nil {
				im[i] = valIm(a, s0)
			}
			if frac > 0 && lo+1 < n {
				c[0] = lo + 1
				s1 := linear(a.dims, c)
				re[i] += frac * (valRe(a, s1) - valRe(a, s0))
				if im != nil {
					im[i] += frac * (valIm(a, s1) - valIm(a, s0))
				}
			}
		}
		return fromPlanes(od, a.dtype, re, im), native.Success
	})
}

func (l *Lib) Medfilt1(in native.Handle, width int64, border int) (native.Handle, native.Code) {
	return l.op1(in, func(a *array) (*array, native.Code) {
		if width < 1 || width%2 == 0 {
			return nil, l.fail(native.ErrArg, "median filter width must be odd, got %d", width)
		}
		if border != padZero && border != padSym {
			return nil, l.fail(native.ErrArg, "invalid border type %d", border)
		}
		if a.dtype.IsComplex() {
			return nil, l.fail(native.ErrType, "median filter needs a real array")
		}
		re, _ := planes(a.dtype, a.elements())
		n := a.dims[0]
		win := make([]float64, width)
		lanes(a.dims, 0, func(_ int, base, _ int64) {
			for i := int64(0); i < n; i++ {
				for j := int64(0); j < width; j++ {
					p := padIndex(i+j-width/2, n, border)
					if p < 0 {
						win[j] = 0
						continue
					}
					win[j] = a.buf.re[base+p]
				}
				sort.Float64s(win)
				re[base+i] = win[width/2]
			}
		})
		return fromPlanes(a.dims, a.dtype, re, nil), native.Success
	})
}

// SetFFTPlanCacheSize is accepted and ignored; plans are built per call.
func (l *Lib) SetFFTPlanCacheSize(n uint64) native.Code { return native.Success }
