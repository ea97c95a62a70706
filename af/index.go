//go:build !af_no_index

package af

import (
	"runtime"

	"github.com/23skdu/arrayfire-go/internal/native"
)

func init() { registerFeature("index") }

// Seq selects begin..end (inclusive) with a step along one dimension.
// Negative bounds count from the end, so -1 is the last element.
type Seq struct {
	Begin, End, Step float64
}

// Span selects a whole dimension.
var Span = Seq{Begin: 1, End: 1, Step: 0}

// NewSeq returns the sequence begin..end with step 1.
func NewSeq(begin, end float64) Seq { return Seq{Begin: begin, End: end, Step: 1} }

func (s Seq) native() native.Seq {
	return native.Seq{Begin: s.Begin, End: s.End, Step: s.Step}
}

func nativeSeqs(seqs []Seq) []native.Seq {
	out := make([]native.Seq, len(seqs))
	for i, s := range seqs {
		out[i] = s.native()
	}
	return out
}

// Index selects a sub-array with one sequence per leading dimension.
func Index(in *Array, seqs ...Seq) (*Array, error) {
	if len(seqs) == 0 || len(seqs) > 4 {
		return nil, argError(CodeArg, "index", "need 1 to 4 sequences, got %d", len(seqs))
	}
	ns := nativeSeqs(seqs)
	return op1("index", in, func(h native.Handle) (native.Handle, native.Code) {
		return lib().Index(h, ns)
	})
}

func Row(in *Array, i int64) (*Array, error) { return Rows(in, i, i) }

// Rows selects rows first..last inclusive.
func Rows(in *Array, first, last int64) (*Array, error) {
	return Index(in, NewSeq(float64(first), float64(last)), Span)
}

func Col(in *Array, i int64) (*Array, error) { return Cols(in, i, i) }

func Cols(in *Array, first, last int64) (*Array, error) {
	return Index(in, Span, NewSeq(float64(first), float64(last)))
}

func Slice(in *Array, i int64) (*Array, error) { return Slices(in, i, i) }

func Slices(in *Array, first, last int64) (*Array, error) {
	return Index(in, Span, Span, NewSeq(float64(first), float64(last)))
}

// Lookup gathers the positions in idx along dim.
func Lookup(in, idx *Array, dim uint32) (*Array, error) {
	return op2("lookup", in, idx, func(x, i native.Handle) (native.Handle, native.Code) {
		return lib().Lookup(x, i, dim)
	})
}

// adopt points lhs at out after an assignment. The native library may
// write in place and hand back the same handle, or return a new array when
// lhs shared its data; the old handle is then released.
func adopt(op string, lhs *Array, old, out native.Handle) error {
	if out == old {
		return nil
	}
	if !lhs.h.CompareAndSwap(uintptr(old), uintptr(out)) {
		discard(out)
		return ErrReleased
	}
	arraysCreated.Inc()
	arraysReleased.WithLabelValues("explicit").Inc()
	return check(op, lib().Release(old))
}

// AssignSeq writes rhs into the region of lhs selected by seqs. A
// one-element rhs is broadcast over the region.
func AssignSeq(lhs *Array, rhs *Array, seqs ...Seq) error {
	if len(seqs) == 0 || len(seqs) > 4 {
		return argError(CodeArg, "assign_seq", "need 1 to 4 sequences, got %d", len(seqs))
	}
	hs, err := handles(lhs, rhs)
	if err != nil {
		return err
	}
	defer runtime.KeepAlive(rhs)
	out, c := lib().AssignSeq(hs[0], nativeSeqs(seqs), hs[1])
	if err := check("assign_seq", c); err != nil {
		return err
	}
	return adopt("assign_seq", lhs, hs[0], out)
}

func SetRow(lhs, rhs *Array, i int64) error {
	return AssignSeq(lhs, rhs, NewSeq(float64(i), float64(i)), Span)
}

func SetCol(lhs, rhs *Array, i int64) error {
	return AssignSeq(lhs, rhs, Span, NewSeq(float64(i), float64(i)))
}

func SetSlice(lhs, rhs *Array, i int64) error {
	return AssignSeq(lhs, rhs, Span, Span, NewSeq(float64(i), float64(i)))
}

// Indexer mixes sequences and index arrays across dimensions. Dimensions
// that are never set select everything. The arrays passed to SetArray
// must stay unreleased until the Indexer is last used.
type Indexer struct {
	idx  [4]native.Index
	arrs [4]*Array
	n    int
}

func NewIndexer() *Indexer {
	ix := &Indexer{}
	for k := range ix.idx {
		ix.idx[k] = native.Index{Seq: Span.native(), IsSeq: true}
	}
	return ix
}

func (ix *Indexer) mark(dim int) error {
	if dim < 0 || dim > 3 {
		return argError(CodeArg, "indexer", "dimension %d out of range", dim)
	}
	if dim+1 > ix.n {
		ix.n = dim + 1
	}
	return nil
}

// SetSeq selects s along dim.
func (ix *Indexer) SetSeq(dim int, s Seq, batch bool) error {
	if err := ix.mark(dim); err != nil {
		return err
	}
	ix.idx[dim] = native.Index{Seq: s.native(), IsSeq: true, IsBatch: batch}
	ix.arrs[dim] = nil
	return nil
}

// SetArray selects the positions held in a along dim.
func (ix *Indexer) SetArray(dim int, a *Array, batch bool) error {
	h, err := a.handle()
	if err != nil {
		return err
	}
	if err := ix.mark(dim); err != nil {
		return err
	}
	ix.idx[dim] = native.Index{Arr: h, IsBatch: batch}
	ix.arrs[dim] = a
	return nil
}

func (ix *Indexer) resolve(op string) ([]native.Index, error) {
	if ix == nil || ix.n == 0 {
		return nil, argError(CodeArg, op, "empty indexer")
	}
	for _, a := range ix.arrs[:ix.n] {
		if a != nil && a.Released() {
			return nil, ErrReleased
		}
	}
	return ix.idx[:ix.n], nil
}

// IndexGen selects a sub-array described by ix.
func IndexGen(in *Array, ix *Indexer) (*Array, error) {
	idx, err := ix.resolve("index_gen")
	if err != nil {
		return nil, err
	}
	defer runtime.KeepAlive(ix.arrs)
	return op1("index_gen", in, func(h native.Handle) (native.Handle, native.Code) {
		return lib().IndexGen(h, idx)
	})
}

// AssignGen writes rhs into the region of lhs described by ix.
func AssignGen(lhs *Array, ix *Indexer, rhs *Array) error {
	idx, err := ix.resolve("assign_gen")
	if err != nil {
		return err
	}
	hs, err := handles(lhs, rhs)
	if err != nil {
		return err
	}
	defer runtime.KeepAlive(ix.arrs)
	defer runtime.KeepAlive(rhs)
	out, c := lib().AssignGen(hs[0], idx, hs[1])
	if err := check("assign_gen", c); err != nil {
		return err
	}
	return adopt("assign_gen", lhs, hs[0], out)
}
