package host

import (
	"math"
	"math/cmplx"
	"sort"

	vecmath "github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/blas/cblas128"
	"gonum.org/v1/gonum/lapack"
	"gonum.org/v1/gonum/lapack/lapack64"
	"gonum.org/v1/gonum/mat"

	"github.com/23skdu/arrayfire-go/internal/native"
)

// Matrix properties, matching af_mat_prop.
const (
	matNone   = 0
	matTrans  = 1
	matCTrans = 2
	matConj   = 4
	matUpper  = 32
	matLower  = 64
)

// Norm types, matching af_norm_type.
const (
	normVector1 = iota
	normVectorInf
	normVector2
	normVectorP
	normMatrix1
	normMatrixInf
	normMatrix2
	normMatrixLPQ
)

// general copies batch b of a, read as an m×n column-major matrix, into a
// row-major blas64.General.
func general(a *array, b int64) blas64.General {
	m, n := int(a.dims[0]), int(a.dims[1])
	g := blas64.General{Rows: m, Cols: n, Stride: max(1, n), Data: make([]float64, max(1, m*n))}
	off := int(b) * m * n
	for j := 0; j < n; j++ {
		for i := 0; i < m; i++ {
			g.Data[i*g.Stride+j] = a.buf.re[off+i+j*m]
		}
	}
	return g
}

func cgeneral(a *array, b int64) cblas128.General {
	m, n := int(a.dims[0]), int(a.dims[1])
	g := cblas128.General{Rows: m, Cols: n, Stride: max(1, n), Data: make([]complex128, max(1, m*n))}
	off := int(b) * m * n
	for j := 0; j < n; j++ {
		for i := 0; i < m; i++ {
			k := int64(off + i + j*m)
			g.Data[i*g.Stride+j] = complex(valRe(a, k), valIm(a, k))
		}
	}
	return g
}

// store writes g into the column-major plane re starting at element off.
func store(re []float64, off int, g blas64.General) {
	for i := 0; i < g.Rows; i++ {
		for j := 0; j < g.Cols; j++ {
			re[off+i+j*g.Rows] = g.Data[i*g.Stride+j]
		}
	}
}

func cstore(re, im []float64, off int, g cblas128.General) {
	for i := 0; i < g.Rows; i++ {
		for j := 0; j < g.Cols; j++ {
			v := g.Data[i*g.Stride+j]
			re[off+i+j*g.Rows] = real(v)
			im[off+i+j*g.Rows] = imag(v)
		}
	}
}

func fromGeneral(g blas64.General, t native.DType) *array {
	re := make([]float64, g.Rows*g.Cols)
	store(re, 0, g)
	return fromPlanes([4]int64{int64(g.Rows), int64(g.Cols), 1, 1}, t, re, nil)
}

func fromDense(m *mat.Dense, t native.DType) *array {
	return fromGeneral(m.RawMatrix(), t)
}

// denseOf reads a 2-D array into a mat.Dense.
func denseOf(a *array) *mat.Dense {
	g := general(a, 0)
	if a.elements() == 0 {
		return &mat.Dense{}
	}
	return mat.NewDense(g.Rows, g.Cols, g.Data[:g.Rows*g.Cols])
}

func transFlag(opt int, complexType bool) (blas.Transpose, bool) {
	switch opt {
	case matNone:
		return blas.NoTrans, true
	case matTrans:
		return blas.Trans, true
	case matCTrans:
		if complexType {
			return blas.ConjTrans, true
		}
		return blas.Trans, true
	}
	return blas.NoTrans, false
}

func blasType(t native.DType) bool {
	return t == native.F32 || t == native.F64 || t.IsComplex()
}

func (l *Lib) Matmul(lhs, rhs native.Handle, optL, optR int) (native.Handle, native.Code) {
	return l.op2(lhs, rhs, func(a, b *array) (*array, native.Code) {
		if a.dtype != b.dtype {
			return nil, l.fail(native.ErrDiffType, "matmul operands differ in type")
		}
		if !blasType(a.dtype) {
			return nil, l.fail(native.ErrType, "matmul needs a floating point type")
		}
		cplx := a.dtype.IsComplex()
		tA, okA := transFlag(optL, cplx)
		tB, okB := transFlag(optR, cplx)
		if !okA || !okB {
			return nil, l.fail(native.ErrArg, "unsupported matmul options %d, %d", optL, optR)
		}
		m, ka := a.dims[0], a.dims[1]
		if tA != blas.NoTrans {
			m, ka = ka, m
		}
		kb, n := b.dims[0], b.dims[1]
		if tB != blas.NoTrans {
			kb, n = n, kb
		}
		if ka != kb {
			return nil, l.fail(native.ErrSize, "inner dimensions differ: %d and %d", ka, kb)
		}
		bd, ok := broadcast([4]int64{1, 1, a.dims[2], a.dims[3]}, [4]int64{1, 1, b.dims[2], b.dims[3]})
		if !ok {
			return nil, l.fail(native.ErrSize, "batch dimensions differ")
		}
		od := [4]int64{m, n, bd[2], bd[3]}
		re, im := planes(a.dtype, product(od))
		ad := [4]int64{1, 1, a.dims[2], a.dims[3]}
		bdd := [4]int64{1, 1, b.dims[2], b.dims[3]}
		for i3 := int64(0); i3 < od[3]; i3++ {
			for i2 := int64(0); i2 < od[2]; i2++ {
				c := [4]int64{0, 0, i2, i3}
				ia, ib := at(ad, c), at(bdd, c)
				off := int(m * n * (i2 + od[2]*i3))
				if cplx {
					g := cblas128.General{Rows: int(m), Cols: int(n), Stride: max(1, int(n)), Data: make([]complex128, max(1, m*n))}
					cblas128.Gemm(tA, tB, 1, cgeneral(a, ia), cgeneral(b, ib), 0, g)
					cstore(re, im, off, g)
					continue
				}
				g := blas64.General{Rows: int(m), Cols: int(n), Stride: max(1, int(n)), Data: make([]float64, max(1, m*n))}
				blas64.Gemm(tA, tB, 1, general(a, ia), general(b, ib), 0, g)
				store(re, off, g)
			}
		}
		return fromPlanes(od, a.dtype, re, im), native.Success
	})
}

// dot is the inner product of two vectors with optional conjugation.
func (l *Lib) dot(a, b *array, optL, optR int) (complex128, native.Code) {
	if a.dtype != b.dtype {
		return 0, l.fail(native.ErrDiffType, "dot operands differ in type")
	}
	if !blasType(a.dtype) {
		return 0, l.fail(native.ErrType, "dot needs a floating point type")
	}
	if optL&^matConj != 0 || optR&^matConj != 0 {
		return 0, l.fail(native.ErrArg, "unsupported dot options %d, %d", optL, optR)
	}
	if a.elements() != b.elements() || a.elements() != max(a.dims[0], a.dims[1], a.dims[2], a.dims[3]) {
		return 0, l.fail(native.ErrSize, "dot needs two vectors of equal length")
	}
	if !a.dtype.IsComplex() {
		return complex(vecmath.DotProduct(a.buf.re, b.buf.re), 0), native.Success
	}
	var sum complex128
	for i := range a.buf.re {
		x := complex(a.buf.re[i], a.buf.im[i])
		y := complex(b.buf.re[i], b.buf.im[i])
		if optL&matConj != 0 {
			x = cmplx.Conj(x)
		}
		if optR&matConj != 0 {
			y = cmplx.Conj(y)
		}
		sum += x * y
	}
	return sum, native.Success
}

func (l *Lib) Dot(lhs, rhs native.Handle, optL, optR int) (native.Handle, native.Code) {
	return l.op2(lhs, rhs, func(a, b *array) (*array, native.Code) {
		v, c := l.dot(a, b, optL, optR)
		if c != native.Success {
			return nil, c
		}
		return fromPlanes([4]int64{1, 1, 1, 1}, a.dtype, []float64{real(v)}, []float64{imag(v)}), native.Success
	})
}

func (l *Lib) DotAll(lhs, rhs native.Handle, optL, optR int) (float64, float64, native.Code) {
	l.mu.Lock()
	defer l.mu.Unlock()
	a, c := l.get(lhs)
	if c != native.Success {
		return 0, 0, c
	}
	b, c := l.get(rhs)
	if c != native.Success {
		return 0, 0, c
	}
	v, c := l.dot(a, b, optL, optR)
	return real(v), imag(v), c
}

func transposed(a *array, conj bool) *array {
	od := [4]int64{a.dims[1], a.dims[0], a.dims[2], a.dims[3]}
	out := gather(a, od, func(c [4]int64) int64 {
		c[0], c[1] = c[1], c[0]
		return linear(a.dims, c)
	})
	if conj && out.buf.im != nil {
		vecmath.ScaleBlockInPlace(out.buf.im, -1)
	}
	return out
}

func (l *Lib) Transpose(in native.Handle, conj bool) (native.Handle, native.Code) {
	return l.op1(in, func(a *array) (*array, native.Code) {
		return transposed(a, conj), native.Success
	})
}

func (l *Lib) TransposeInplace(in native.Handle, conj bool) native.Code {
	l.mu.Lock()
	defer l.mu.Unlock()
	a, c := l.get(in)
	if c != native.Success {
		return c
	}
	if a.dims[0] != a.dims[1] {
		return l.fail(native.ErrSize, "in-place transpose needs a square matrix")
	}
	t := transposed(a, conj)
	copy(a.buf.re, t.buf.re)
	copy(a.buf.im, t.buf.im)
	return native.Success
}

// matrix validates a as a single real floating point matrix for LAPACK.
func (l *Lib) matrix(a *array) native.Code {
	if a.dims[2]*a.dims[3] != 1 {
		return l.fail(native.ErrSize, "batched matrices are not supported")
	}
	if a.dtype.IsComplex() {
		return l.fail(native.ErrNotSupported, "complex factorizations are not available on the host library")
	}
	if a.dtype != native.F32 && a.dtype != native.F64 {
		return l.fail(native.ErrType, "factorization needs f32 or f64, got type %d", a.dtype)
	}
	return native.Success
}

func (l *Lib) svd(a *array) (u, s, vt *array, c native.Code) {
	if c := l.matrix(a); c != native.Success {
		return nil, nil, nil, c
	}
	m, n := int(a.dims[0]), int(a.dims[1])
	if m == 0 || n == 0 {
		return newArray([4]int64{int64(m), int64(m), 1, 1}, a.dtype),
			newArray([4]int64{0, 1, 1, 1}, a.dtype),
			newArray([4]int64{int64(n), int64(n), 1, 1}, a.dtype), native.Success
	}
	var f mat.SVD
	if !f.Factorize(denseOf(a), mat.SVDFull) {
		return nil, nil, nil, l.fail(native.ErrRuntime, "svd did not converge")
	}
	var um, vm mat.Dense
	f.UTo(&um)
	f.VTo(&vm)
	sv := f.Values(nil)
	return fromDense(&um, a.dtype),
		fromPlanes([4]int64{int64(len(sv)), 1, 1, 1}, a.dtype, sv, nil),
		fromDense(mat.DenseCopyOf(vm.T()), a.dtype), native.Success
}

func (l *Lib) SVD(in native.Handle) (native.Handle, native.Handle, native.Handle, native.Code) {
	l.mu.Lock()
	defer l.mu.Unlock()
	a, c := l.get(in)
	if c != native.Success {
		return 0, 0, 0, c
	}
	u, s, vt, c := l.svd(a)
	if c != native.Success {
		return 0, 0, 0, c
	}
	return l.put(u), l.put(s), l.put(vt), native.Success
}

// SVDInplace leaves the input contents unspecified, as the native routine does;
// here they are left untouched.
func (l *Lib) SVDInplace(in native.Handle) (native.Handle, native.Handle, native.Handle, native.Code) {
	return l.SVD(in)
}

// lu factorizes a with partial pivoting. The packed factors are returned in
// row-major form with the zero-based row swaps.
func (l *Lib) lu(a *array) (blas64.General, []int, native.Code) {
	if c := l.matrix(a); c != native.Success {
		return blas64.General{}, nil, c
	}
	g := general(a, 0)
	ipiv := make([]int, min(g.Rows, g.Cols))
	lapack64.Getrf(g, ipiv)
	return g, ipiv, native.Success
}

// permutation expands row swaps into the row order p with A[p, :] = L*U.
func permutation(ipiv []int, m int) []float64 {
	p := make([]int, m)
	for i := range p {
		p[i] = i
	}
	for i, s := range ipiv {
		p[i], p[s] = p[s], p[i]
	}
	out := make([]float64, m)
	for i, v := range p {
		out[i] = float64(v)
	}
	return out
}

func (l *Lib) LU(in native.Handle) (native.Handle, native.Handle, native.Handle, native.Code) {
	l.mu.Lock()
	defer l.mu.Unlock()
	a, c := l.get(in)
	if c != native.Success {
		return 0, 0, 0, c
	}
	g, ipiv, c := l.lu(a)
	if c != native.Success {
		return 0, 0, 0, c
	}
	m, n := g.Rows, g.Cols
	k := min(m, n)
	lo := blas64.General{Rows: m, Cols: k, Stride: max(1, k), Data: make([]float64, max(1, m*k))}
	up := blas64.General{Rows: k, Cols: n, Stride: max(1, n), Data: make([]float64, max(1, k*n))}
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			v := g.Data[i*g.Stride+j]
			switch {
			case i > j && j < k:
				lo.Data[i*lo.Stride+j] = v
			case i <= j && i < k:
				up.Data[i*up.Stride+j] = v
			}
		}
		if i < k {
			lo.Data[i*lo.Stride+i] = 1
		}
	}
	piv := fromPlanes([4]int64{int64(m), 1, 1, 1}, native.S32, permutation(ipiv, m), nil)
	return l.put(fromGeneral(lo, a.dtype)), l.put(fromGeneral(up, a.dtype)), l.put(piv), native.Success
}

func (l *Lib) LUInplace(in native.Handle, lapackPiv bool) (native.Handle, native.Code) {
	l.mu.Lock()
	defer l.mu.Unlock()
	a, c := l.get(in)
	if c != native.Success {
		return 0, c
	}
	g, ipiv, c := l.lu(a)
	if c != native.Success {
		return 0, c
	}
	store(a.buf.re, 0, g)
	quantizeAll(a.dtype, a.buf.re, nil)
	if !lapackPiv {
		p := permutation(ipiv, g.Rows)
		return l.put(fromPlanes([4]int64{int64(len(p)), 1, 1, 1}, native.S32, p, nil)), native.Success
	}
	p := make([]float64, len(ipiv))
	for i, v := range ipiv {
		p[i] = float64(v + 1)
	}
	return l.put(fromPlanes([4]int64{int64(len(p)), 1, 1, 1}, native.S32, p, nil)), native.Success
}

// qr returns the packed Householder form of a and its reflector scales.
func (l *Lib) qr(a *array) (blas64.General, []float64, native.Code) {
	if c := l.matrix(a); c != native.Success {
		return blas64.General{}, nil, c
	}
	g := general(a, 0)
	tau := make([]float64, min(g.Rows, g.Cols))
	if len(tau) == 0 {
		return g, tau, native.Success
	}
	work := make([]float64, 1)
	lapack64.Geqrf(g, tau, work, -1)
	work = make([]float64, max(int(work[0]), g.Rows, g.Cols))
	lapack64.Geqrf(g, tau, work, len(work))
	return g, tau, native.Success
}

func (l *Lib) QR(in native.Handle) (native.Handle, native.Handle, native.Handle, native.Code) {
	l.mu.Lock()
	defer l.mu.Unlock()
	a, c := l.get(in)
	if c != native.Success {
		return 0, 0, 0, c
	}
	g, tau, c := l.qr(a)
	if c != native.Success {
		return 0, 0, 0, c
	}
	m, n := g.Rows, g.Cols
	r := blas64.General{Rows: m, Cols: n, Stride: max(1, n), Data: make([]float64, max(1, m*n))}
	q := blas64.General{Rows: m, Cols: m, Stride: max(1, m), Data: make([]float64, max(1, m*m))}
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			v := g.Data[i*g.Stride+j]
			if j >= i {
				r.Data[i*r.Stride+j] = v
			}
			if j < m {
				q.Data[i*q.Stride+j] = v
			}
		}
	}
	if m > 0 {
		work := make([]float64, 1)
		lapack64.Orgqr(q, tau, work, -1)
		work = make([]float64, max(int(work[0]), m, 1))
		lapack64.Orgqr(q, tau, work, len(work))
	}
	tv := fromPlanes([4]int64{int64(len(tau)), 1, 1, 1}, a.dtype, tau, nil)
	return l.put(fromGeneral(q, a.dtype)), l.put(fromGeneral(r, a.dtype)), l.put(tv), native.Success
}

func (l *Lib) QRInplace(in native.Handle) (native.Handle, native.Code) {
	l.mu.Lock()
	defer l.mu.Unlock()
	a, c := l.get(in)
	if c != native.Success {
		return 0, c
	}
	g, tau, c := l.qr(a)
	if c != native.Success {
		return 0, c
	}
	store(a.buf.re, 0, g)
	quantizeAll(a.dtype, a.buf.re, nil)
	return l.put(fromPlanes([4]int64{int64(len(tau)), 1, 1, 1}, a.dtype, tau, nil)), native.Success
}

func potrf(g blas64.General, upper bool) bool {
	uplo := blas.Lower
	if upper {
		uplo = blas.Upper
	}
	_, ok := lapack64.Potrf(blas64.Symmetric{Uplo: uplo, N: g.Rows, Stride: g.Stride, Data: g.Data})
	return ok
}

// cholesky factors a into its upper or lower triangle and reports the order
// of the first leading minor that is not positive definite, or 0.
func (l *Lib) cholesky(a *array, upper bool) (blas64.General, int, native.Code) {
	if c := l.matrix(a); c != native.Success {
		return blas64.General{}, 0, c
	}
	if a.dims[0] != a.dims[1] {
		return blas64.General{}, 0, l.fail(native.ErrSize, "cholesky needs a square matrix")
	}
	g := general(a, 0)
	n := g.Rows
	src := append([]float64(nil), g.Data...)
	info := 0
	if !potrf(g, upper) {
		info = sort.Search(n, func(k int) bool {
			sub := blas64.General{Rows: k + 1, Cols: k + 1, Stride: k + 1, Data: make([]float64, (k+1)*(k+1))}
			for i := 0; i <= k; i++ {
				copy(sub.Data[i*(k+1):(i+1)*(k+1)], src[i*n:i*n+k+1])
			}
			return !potrf(sub, upper)
		}) + 1
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if (upper && i > j) || (!upper && i < j) {
				g.Data[i*g.Stride+j] = 0
			}
		}
	}
	return g, info, native.Success
}

func (l *Lib) Cholesky(in native.Handle, upper bool) (native.Handle, int, native.Code) {
	l.mu.Lock()
	defer l.mu.Unlock()
	a, c := l.get(in)
	if c != native.Success {
		return 0, 0, c
	}
	g, info, c := l.cholesky(a, upper)
	if c != native.Success {
		return 0, 0, c
	}
	return l.put(fromGeneral(g, a.dtype)), info, native.Success
}

func (l *Lib) CholeskyInplace(in native.Handle, upper bool) (int, native.Code) {
	l.mu.Lock()
	defer l.mu.Unlock()
	a, c := l.get(in)
	if c != native.Success {
		return 0, c
	}
	g, info, c := l.cholesky(a, upper)
	if c != native.Success {
		return 0, c
	}
	store(a.buf.re, 0, g)
	quantizeAll(a.dtype, a.buf.re, nil)
	return info, native.Success
}

func (l *Lib) solveOperands(a, b *array) native.Code {
	if c := l.matrix(a); c != native.Success {
		return c
	}
	if c := l.matrix(b); c != native.Success {
		return c
	}
	if a.dtype != b.dtype {
		return l.fail(native.ErrDiffType, "solve operands differ in type")
	}
	if a.dims[0] != b.dims[0] {
		return l.fail(native.ErrSize, "solve needs %d rows in b, got %d", a.dims[0], b.dims[0])
	}
	return native.Success
}

func (l *Lib) Solve(ah, bh native.Handle, opt int) (native.Handle, native.Code) {
	return l.op2(ah, bh, func(a, b *array) (*array, native.Code) {
		if c := l.solveOperands(a, b); c != native.Success {
			return nil, c
		}
		if a.elements() == 0 || b.elements() == 0 {
			return newArray([4]int64{a.dims[1], b.dims[1], 1, 1}, a.dtype), native.Success
		}
		switch opt {
		case matNone:
			var x mat.Dense
			if err := x.Solve(denseOf(a), denseOf(b)); err != nil {
				if _, ok := err.(mat.Condition); !ok {
					return nil, l.fail(native.ErrRuntime, "solve: %v", err)
				}
			}
			return fromDense(&x, a.dtype), native.Success
		case matLower, matUpper:
			if a.dims[0] != a.dims[1] {
				return nil, l.fail(native.ErrSize, "triangular solve needs a square matrix")
			}
			uplo := blas.Lower
			if opt == matUpper {
				uplo = blas.Upper
			}
			g := general(a, 0)
			x := general(b, 0)
			tri := blas64.Triangular{Uplo: uplo, Diag: blas.NonUnit, N: g.Rows, Stride: g.Stride, Data: g.Data}
			blas64.Trsm(blas.Left, blas.NoTrans, 1, tri, x)
			return fromGeneral(x, a.dtype), native.Success
		}
		return nil, l.fail(native.ErrArg, "unsupported solve option %d", opt)
	})
}

func (l *Lib) SolveLU(ah, ph, bh native.Handle, opt int) (native.Handle, native.Code) {
	l.mu.Lock()
	defer l.mu.Unlock()
	a, c := l.get(ah)
	if c != native.Success {
		return 0, c
	}
	p, c := l.get(ph)
	if c != native.Success {
		return 0, c
	}
	b, c := l.get(bh)
	if c != native.Success {
		return 0, c
	}
	if opt != matNone {
		return 0, l.fail(native.ErrArg, "unsupported solve option %d", opt)
	}
	if c := l.solveOperands(a, b); c != native.Success {
		return 0, c
	}
	if a.dims[0] != a.dims[1] || p.elements() != a.dims[0] {
		return 0, l.fail(native.ErrSize, "solve with LU needs a square factorization")
	}
	ipiv := make([]int, p.n())
	for i, v := range p.buf.re {
		ipiv[i] = int(v) - 1
	}
	x := general(b, 0)
	lapack64.Getrs(blas.NoTrans, general(a, 0), x, ipiv)
	return l.put(fromGeneral(x, a.dtype)), native.Success
}

func (l *Lib) Inverse(in native.Handle, opt int) (native.Handle, native.Code) {
	return l.op1(in, func(a *array) (*array, native.Code) {
		if c := l.matrix(a); c != native.Success {
			return nil, c
		}
		if opt != matNone {
			return nil, l.fail(native.ErrArg, "unsupported inverse option %d", opt)
		}
		if a.dims[0] != a.dims[1] {
			return nil, l.fail(native.ErrSize, "inverse needs a square matrix")
		}
		if a.elements() == 0 {
			return newArray(a.dims, a.dtype), native.Success
		}
		var inv mat.Dense
		if err := inv.Inverse(denseOf(a)); err != nil {
			if _, ok := err.(mat.Condition); !ok {
				return nil, l.fail(native.ErrRuntime, "inverse: %v", err)
			}
		}
		return fromDense(&inv, a.dtype), native.Success
	})
}

// Pinverse zeroes singular values below tol times the largest one.
func (l *Lib) Pinverse(in native.Handle, tol float64, opt int) (native.Handle, native.Code) {
	return l.op1(in, func(a *array) (*array, native.Code) {
		if opt != matNone {
			return nil, l.fail(native.ErrArg, "unsupported pinverse option %d", opt)
		}
		if tol < 0 {
			return nil, l.fail(native.ErrArg, "negative tolerance")
		}
		if c := l.matrix(a); c != native.Success {
			return nil, c
		}
		m, n := int(a.dims[0]), int(a.dims[1])
		if m == 0 || n == 0 {
			return newArray([4]int64{int64(n), int64(m), 1, 1}, a.dtype), native.Success
		}
		var f mat.SVD
		if !f.Factorize(denseOf(a), mat.SVDThin) {
			return nil, l.fail(native.ErrRuntime, "svd did not converge")
		}
		var u, v mat.Dense
		f.UTo(&u)
		f.VTo(&v)
		s := f.Values(nil)
		cut := tol * s[0]
		for i := range s {
			if s[i] > cut && s[i] != 0 {
				s[i] = 1 / s[i]
			} else {
				s[i] = 0
			}
		}
		var vs mat.Dense
		vs.Mul(&v, mat.NewDiagDense(len(s), s))
		var out mat.Dense
		out.Mul(&vs, u.T())
		return fromDense(&out, a.dtype), native.Success
	})
}

func (l *Lib) Rank(in native.Handle, tol float64) (uint32, native.Code) {
	l.mu.Lock()
	defer l.mu.Unlock()
	a, c := l.get(in)
	if c != native.Success {
		return 0, c
	}
	if c := l.matrix(a); c != native.Success {
		return 0, c
	}
	if a.elements() == 0 {
		return 0, native.Success
	}
	var f mat.SVD
	if !f.Factorize(denseOf(a), mat.SVDNone) {
		return 0, l.fail(native.ErrRuntime, "svd did not converge")
	}
	var r uint32
	for _, s := range f.Values(nil) {
		if s > tol {
			r++
		}
	}
	return r, native.Success
}

func (l *Lib) Det(in native.Handle) (float64, float64, native.Code) {
	l.mu.Lock()
	defer l.mu.Unlock()
	a, c := l.get(in)
	if c != native.Success {
		return 0, 0, c
	}
	if c := l.matrix(a); c != native.Success {
		return 0, 0, c
	}
	if a.dims[0] != a.dims[1] {
		return 0, 0, l.fail(native.ErrSize, "determinant needs a square matrix")
	}
	if a.elements() == 0 {
		return 1, 0, native.Success
	}
	return mat.Det(denseOf(a)), 0, native.Success
}

func (l *Lib) Norm(in native.Handle, typ int, p, q float64) (float64, native.Code) {
	l.mu.Lock()
	defer l.mu.Unlock()
	a, c := l.get(in)
	if c != native.Success {
		return 0, c
	}
	if !isFloat(a.dtype) || a.dtype == native.F16 {
		return 0, l.fail(native.ErrType, "norm needs a floating point type")
	}
	if a.dims[2]*a.dims[3] != 1 {
		return 0, l.fail(native.ErrSize, "norm of a batched array is not defined")
	}
	abs := make([]float64, a.n())
	if a.buf.im != nil {
		vecmath.Magnitude(abs, a.buf.re, a.buf.im)
	} else {
		for i, v := range a.buf.re {
			abs[i] = math.Abs(v)
		}
	}
	if len(abs) == 0 {
		return 0, native.Success
	}
	m, n := int(a.dims[0]), int(a.dims[1])
	mag := blas64.General{Rows: n, Cols: m, Stride: m, Data: abs}
	switch typ {
	case normVector1:
		return vecmath.Sum(abs), native.Success
	case normVectorInf:
		return vecmath.MaxAbs(abs), native.Success
	case normVector2:
		return math.Sqrt(vecmath.DotProduct(abs, abs)), native.Success
	case normVectorP:
		return lpNorm(abs, p), native.Success
	case normMatrix1:
		// mag is the transpose of the column-major layout.
		return lapack64.Lange(lapack.MaxRowSum, mag, nil), native.Success
	case normMatrixInf:
		return lapack64.Lange(lapack.MaxColumnSum, mag, make([]float64, m)), native.Success
	case normMatrix2:
		if a.dtype.IsComplex() {
			return 0, l.fail(native.ErrNotSupported, "matrix 2-norm of complex input is not available on the host library")
		}
		var f mat.SVD
		if !f.Factorize(denseOf(a), mat.SVDNone) {
			return 0, l.fail(native.ErrRuntime, "svd did not converge")
		}
		return f.Values(nil)[0], native.Success
	case normMatrixLPQ:
		if p <= 0 || q <= 0 {
			return 0, l.fail(native.ErrArg, "L_pq norm needs positive p and q")
		}
		cols := make([]float64, n)
		for j := 0; j < n; j++ {
			cols[j] = lpNorm(abs[j*m:(j+1)*m], p)
		}
		return lpNorm(cols, q), native.Success
	}
	return 0, l.fail(native.ErrArg, "invalid norm type %d", typ)
}

func lpNorm(abs []float64, p float64) float64 {
	var s float64
	for _, v := range abs {
		s += math.Pow(v, p)
	}
	return math.Pow(s, 1/p)
}

func (l *Lib) LAPACKAvailable() (bool, native.Code) { return true, native.Success }
