package host

import (
	"math"

	"github.com/23skdu/arrayfire-go/internal/native"
)

func isSpan(s native.Seq) bool { return s.Begin == 1 && s.End == 1 && s.Step == 0 }

// seqIndices resolves s against a dimension of length n. Negative bounds
// count from the end and the end bound is inclusive.
func seqIndices(s native.Seq, n int64) ([]int64, bool) {
	if isSpan(s) {
		out := make([]int64, n)
		for i := range out {
			out[i] = int64(i)
		}
		return out, true
	}
	begin, end := s.Begin, s.End
	if math.Signbit(begin) {
		begin += float64(n)
	}
	if math.Signbit(end) {
		end += float64(n)
	}
	if s.Step == 0 {
		end = begin
	}
	step := s.Step
	if step == 0 {
		step = 1
	}
	count := int64(math.Floor((end-begin)/step)) + 1
	if count < 0 {
		return nil, false
	}
	out := make([]int64, count)
	for i := range out {
		v := int64(begin + float64(i)*step)
		if v < 0 || v >= n {
			return nil, false
		}
		out[i] = v
	}
	return out, true
}

// selection lists, per dimension, the source coordinates picked by an index.
type selection [4][]int64

func (s *selection) dims() [4]int64 {
	var d [4]int64
	for k := range s {
		d[k] = int64(len(s[k]))
	}
	return d
}

// source maps output coordinates to a linear index into src.
func (s *selection) source(src [4]int64, c [4]int64) int64 {
	var sc [4]int64
	for k := range c {
		sc[k] = s[k][c[k]]
	}
	return linear(src, sc)
}

func spanAll(d [4]int64) selection {
	var s selection
	for k := range s {
		s[k], _ = seqIndices(native.Seq{Begin: 1, End: 1}, d[k])
	}
	return s
}

func (l *Lib) selectSeqs(d [4]int64, seqs []native.Seq) (selection, native.Code) {
	if len(seqs) == 0 || len(seqs) > 4 {
		return selection{}, l.fail(native.ErrArg, "need 1 to 4 sequences, got %d", len(seqs))
	}
	s := spanAll(d)
	for k, q := range seqs {
		idx, ok := seqIndices(q, d[k])
		if !ok {
			return selection{}, l.fail(native.ErrArg, "sequence %v out of range for dimension %d of length %d", q, k, d[k])
		}
		s[k] = idx
	}
	return s, native.Success
}

func (l *Lib) selectGen(d [4]int64, idx []native.Index) (selection, native.Code) {
	if len(idx) == 0 || len(idx) > 4 {
		return selection{}, l.fail(native.ErrArg, "need 1 to 4 indices, got %d", len(idx))
	}
	s := spanAll(d)
	for k, ix := range idx {
		if ix.IsSeq {
			v, ok := seqIndices(ix.Seq, d[k])
			if !ok {
				return selection{}, l.fail(native.ErrArg, "sequence %v out of range for dimension %d of length %d", ix.Seq, k, d[k])
			}
			s[k] = v
			continue
		}
		a, c := l.get(ix.Arr)
		if c != native.Success {
			return selection{}, c
		}
		v, c := l.positions(a, d[k])
		if c != native.Success {
			return selection{}, c
		}
		s[k] = v
	}
	return s, native.Success
}

// positions reads an index array as coordinates along a dimension of length n.
func (l *Lib) positions(a *array, n int64) ([]int64, native.Code) {
	if a.dtype.IsComplex() {
		return nil, l.fail(native.ErrType, "index arrays must be real")
	}
	out := make([]int64, a.elements())
	for i, v := range a.buf.re {
		p := int64(v)
		if p < 0 || p >= n {
			return nil, l.fail(native.ErrArg, "index %d out of range for length %d", p, n)
		}
		out[i] = p
	}
	return out, native.Success
}

func gatherSel(a *array, s selection) *array {
	return gather(a, s.dims(), func(c [4]int64) int64 { return s.source(a.dims, c) })
}

func (l *Lib) Index(in native.Handle, seqs []native.Seq) (native.Handle, native.Code) {
	return l.op1(in, func(a *array) (*array, native.Code) {
		s, c := l.selectSeqs(a.dims, seqs)
		if c != native.Success {
			return nil, c
		}
		return gatherSel(a, s), native.Success
	})
}

func (l *Lib) Lookup(in, idx native.Handle, dim uint32) (native.Handle, native.Code) {
	return l.op2(in, idx, func(a, ix *array) (*array, native.Code) {
		if dim > 3 {
			return nil, l.fail(native.ErrArg, "invalid dimension %d", dim)
		}
		v, c := l.positions(ix, a.dims[dim])
		if c != native.Success {
			return nil, c
		}
		s := spanAll(a.dims)
		s[dim] = v
		return gatherSel(a, s), native.Success
	})
}

func (l *Lib) IndexGen(in native.Handle, idx []native.Index) (native.Handle, native.Code) {
	return l.op1(in, func(a *array) (*array, native.Code) {
		s, c := l.selectGen(a.dims, idx)
		if c != native.Success {
			return nil, c
		}
		return gatherSel(a, s), native.Success
	})
}

// scatter writes rhs into the elements of lhs picked by s. A one-element
// rhs is broadcast. Storage shared with retained handles is detached first.
func (l *Lib) scatter(lh native.Handle, s selection, rhs *array) native.Code {
	a := l.arrays[lh]
	od := s.dims()
	n := product(od)
	if rhs.elements() != n && rhs.elements() != 1 {
		return l.fail(native.ErrSize, "assigned array has %d elements, selection has %d", rhs.elements(), n)
	}
	if a.buf.refs > 1 {
		a.buf.refs--
		b := &buffer{re: append([]float64(nil), a.buf.re...), refs: 1}
		if a.buf.im != nil {
			b.im = append([]float64(nil), a.buf.im...)
		}
		a.buf = b
	}
	for i := int64(0); i < n; i++ {
		src := i
		if rhs.elements() == 1 {
			src = 0
		}
		dst := s.source(a.dims, coords(od, i))
		a.buf.re[dst] = quantize(a.dtype, valRe(rhs, src))
		if a.buf.im != nil {
			a.buf.im[dst] = quantize(a.dtype, valIm(rhs, src))
		}
	}
	return native.Success
}

// AssignSeq writes rhs into lhs in place and returns lhs.
func (l *Lib) AssignSeq(lhs native.Handle, seqs []native.Seq, rhs native.Handle) (native.Handle, native.Code) {
	l.mu.Lock()
	defer l.mu.Unlock()
	a, c := l.get(lhs)
	if c != native.Success {
		return 0, c
	}
	r, c := l.get(rhs)
	if c != native.Success {
		return 0, c
	}
	s, c := l.selectSeqs(a.dims, seqs)
	if c != native.Success {
		return 0, c
	}
	if c := l.scatter(lhs, s, r); c != native.Success {
		return 0, c
	}
	return lhs, native.Success
}

func (l *Lib) AssignGen(lhs native.Handle, idx []native.Index, rhs native.Handle) (native.Handle, native.Code) {
	l.mu.Lock()
	defer l.mu.Unlock()
	a, c := l.get(lhs)
	if c != native.Success {
		return 0, c
	}
	r, c := l.get(rhs)
	if c != native.Success {
		return 0, c
	}
	s, c := l.selectGen(a.dims, idx)
	if c != native.Success {
		return 0, c
	}
	if c := l.scatter(lhs, s, r); c != native.Success {
		return 0, c
	}
	return lhs, native.Success
}
