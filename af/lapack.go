//go:build !af_no_lapack

package af

import (
	"runtime"

	"github.com/23skdu/arrayfire-go/internal/native"
)

func init() { registerFeature("lapack") }

func factor3(op string, in *Array, f func(native.Handle) (native.Handle, native.Handle, native.Handle, native.Code)) (*Array, *Array, *Array, error) {
	h, err := in.handle()
	if err != nil {
		return nil, nil, nil, err
	}
	defer runtime.KeepAlive(in)
	a, b, c, code := f(h)
	return wrap3(op, a, b, c, code)
}

// SVD factors in as u * diag(s) * vt.
func SVD(in *Array) (u, s, vt *Array, err error) {
	return factor3("svd", in, lib().SVD)
}

// SVDInplace is SVD that may use in as scratch space.
func SVDInplace(in *Array) (u, s, vt *Array, err error) {
	return factor3("svd_inplace", in, lib().SVDInplace)
}

// LU factors in with partial pivoting. pivot holds the row order.
func LU(in *Array) (lower, upper, pivot *Array, err error) {
	return factor3("lu", in, lib().LU)
}

// LUInplace overwrites in with its packed LU factors and returns the
// pivots, LAPACK-style (1-based row swaps) when lapackPiv is set.
func LUInplace(in *Array, lapackPiv bool) (*Array, error) {
	return op1("lu_inplace", in, func(h native.Handle) (native.Handle, native.Code) {
		return lib().LUInplace(h, lapackPiv)
	})
}

// QR factors in into an orthogonal q and upper triangular r; tau holds the
// Householder scales.
func QR(in *Array) (q, r, tau *Array, err error) {
	return factor3("qr", in, lib().QR)
}

func QRInplace(in *Array) (*Array, error) {
	return op1("qr_inplace", in, lib().QRInplace)
}

// Cholesky factors a positive definite matrix. info is 0 on success and
// otherwise the order of the first leading minor that is not positive
// definite.
func Cholesky(in *Array, upper bool) (out *Array, info int, err error) {
	h, err := in.handle()
	if err != nil {
		return nil, 0, err
	}
	defer runtime.KeepAlive(in)
	o, info, c := lib().Cholesky(h, upper)
	out, err = wrap("cholesky", o, c)
	return out, info, err
}

func CholeskyInplace(in *Array, upper bool) (int, error) {
	h, err := in.handle()
	if err != nil {
		return 0, err
	}
	defer runtime.KeepAlive(in)
	info, c := lib().CholeskyInplace(h, upper)
	return info, check("cholesky_inplace", c)
}

// Solve solves a * x = b. opt may declare a triangular (MatLower, MatUpper).
func Solve(a, b *Array, opt MatProp) (*Array, error) {
	return op2("solve", a, b, func(x, y native.Handle) (native.Handle, native.Code) {
		return lib().Solve(x, y, int(opt))
	})
}

// SolveLU solves with the packed factors and LAPACK pivots of LUInplace.
func SolveLU(a, piv, b *Array, opt MatProp) (*Array, error) {
	hs, err := handles(a, piv, b)
	if err != nil {
		return nil, err
	}
	defer runtime.KeepAlive([]*Array{a, piv, b})
	h, c := lib().SolveLU(hs[0], hs[1], hs[2], int(opt))
	return wrap("solve_lu", h, c)
}

func Inverse(in *Array, opt MatProp) (*Array, error) {
	return op1("inverse", in, func(h native.Handle) (native.Handle, native.Code) {
		return lib().Inverse(h, int(opt))
	})
}

// Pinverse is the Moore-Penrose pseudo inverse; singular values below tol
// times the largest are treated as zero.
func Pinverse(in *Array, tol float64, opt MatProp) (*Array, error) {
	return op1("pinverse", in, func(h native.Handle) (native.Handle, native.Code) {
		return lib().Pinverse(h, tol, int(opt))
	})
}

func Rank(in *Array, tol float64) (uint32, error) {
	h, err := in.handle()
	if err != nil {
		return 0, err
	}
	defer runtime.KeepAlive(in)
	r, c := lib().Rank(h, tol)
	return r, check("rank", c)
}

// Det returns the determinant as real and imaginary parts.
func Det(in *Array) (float64, float64, error) {
	h, err := in.handle()
	if err != nil {
		return 0, 0, err
	}
	defer runtime.KeepAlive(in)
	re, im, c := lib().Det(h)
	return re, im, check("det", c)
}

// Norm computes a vector or matrix norm; p and q parametrize NormVectorP and
// NormMatrixLPQ.
func Norm(in *Array, typ NormType, p, q float64) (float64, error) {
	h, err := in.handle()
	if err != nil {
		return 0, err
	}
	defer runtime.KeepAlive(in)
	n, c := lib().Norm(h, int(typ), p, q)
	return n, check("norm", c)
}

func IsLAPACKAvailable() (bool, error) {
	ok, c := lib().LAPACKAvailable()
	return ok, check("is_lapack_available", c)
}
