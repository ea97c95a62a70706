//go:build !af_no_blas

package af

import (
	"runtime"

	"github.com/23skdu/arrayfire-go/internal/native"
)

func init() { registerFeature("blas") }

// Matmul multiplies lhs by rhs, each optionally transposed per optL and
// optR. Batches along dimensions 2 and 3 broadcast.
func Matmul(lhs, rhs *Array, optL, optR MatProp) (*Array, error) {
	return op2("matmul", lhs, rhs, func(x, y native.Handle) (native.Handle, native.Code) {
		return lib().Matmul(x, y, int(optL), int(optR))
	})
}

// Dot is the inner product of two vectors. MatConj conjugates an operand.
func Dot(lhs, rhs *Array, optL, optR MatProp) (*Array, error) {
	return op2("dot", lhs, rhs, func(x, y native.Handle) (native.Handle, native.Code) {
		return lib().Dot(x, y, int(optL), int(optR))
	})
}

// DotAll is Dot returning the result on the host.
func DotAll(lhs, rhs *Array, optL, optR MatProp) (float64, float64, error) {
	hs, err := handles(lhs, rhs)
	if err != nil {
		return 0, 0, err
	}
	defer runtime.KeepAlive([]*Array{lhs, rhs})
	re, im, c := lib().DotAll(hs[0], hs[1], int(optL), int(optR))
	return re, im, check("dot_all", c)
}

func Transpose(in *Array, conj bool) (*Array, error) {
	return op1("transpose", in, func(h native.Handle) (native.Handle, native.Code) {
		return lib().Transpose(h, conj)
	})
}

// TransposeInplace transposes a square matrix in place.
func TransposeInplace(in *Array, conj bool) error {
	return do("transpose_inplace", in, func(h native.Handle) native.Code {
		return lib().TransposeInplace(h, conj)
	})
}

func (a *Array) Matmul(b *Array) (*Array, error) { return Matmul(a, b, MatNone, MatNone) }
func (a *Array) T() (*Array, error)              { return Transpose(a, false) }
func (a *Array) H() (*Array, error)              { return Transpose(a, true) }
