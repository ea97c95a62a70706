package host

import (
	"math"
	"math/cmplx"

	vecmath "github.com/cwbudde/algo-vecmath"

	"github.com/23skdu/arrayfire-go/internal/native"
)

var realFuncs = map[native.UnaryOp]func(float64) float64{
	native.OpAbs:    math.Abs,
	native.OpRound:  math.Round,
	native.OpTrunc:  math.Trunc,
	native.OpFloor:  math.Floor,
	native.OpCeil:   math.Ceil,
	native.OpSin:    math.Sin,
	native.OpCos:    math.Cos,
	native.OpTan:    math.Tan,
	native.OpAsin:   math.Asin,
	native.OpAcos:   math.Acos,
	native.OpAtan:   math.Atan,
	native.OpSinh:   math.Sinh,
	native.OpCosh:   math.Cosh,
	native.OpTanh:   math.Tanh,
	native.OpAsinh:  math.Asinh,
	native.OpAcosh:  math.Acosh,
	native.OpAtanh:  math.Atanh,
	native.OpExp:    math.Exp,
	native.OpExpm1:  math.Expm1,
	native.OpErf:    math.Erf,
	native.OpErfc:   math.Erfc,
	native.OpLog:    math.Log,
	native.OpLog1p:  math.Log1p,
	native.OpLog10:  math.Log10,
	native.OpLog2:   math.Log2,
	native.OpSqrt:   math.Sqrt,
	native.OpCbrt:   math.Cbrt,
	native.OpTgamma: math.Gamma,
	native.OpPow2:   math.Exp2,
	native.OpRsqrt:  func(v float64) float64 { return 1 / math.Sqrt(v) },
	native.OpLgamma: func(v float64) float64 {
		r, _ := math.Lgamma(v)
		return r
	},
	native.OpFactorial: func(v float64) float64 { return math.Gamma(v + 1) },
	native.OpSigmoid:   func(v float64) float64 { return 1 / (1 + math.Exp(-v)) },
	// 1 for negative input, 0 otherwise.
	native.OpSign: func(v float64) float64 {
		if v < 0 {
			return 1
		}
		return 0
	},
}

var complexFuncs = map[native.UnaryOp]func(complex128) complex128{
	native.OpSin:   cmplx.Sin,
	native.OpCos:   cmplx.Cos,
	native.OpTan:   cmplx.Tan,
	native.OpAsin:  cmplx.Asin,
	native.OpAcos:  cmplx.Acos,
	native.OpAtan:  cmplx.Atan,
	native.OpSinh:  cmplx.Sinh,
	native.OpCosh:  cmplx.Cosh,
	native.OpTanh:  cmplx.Tanh,
	native.OpAsinh: cmplx.Asinh,
	native.OpAcosh: cmplx.Acosh,
	native.OpAtanh: cmplx.Atanh,
	native.OpExp:   cmplx.Exp,
	native.OpLog:   cmplx.Log,
	native.OpLog10: cmplx.Log10,
	native.OpSqrt:  cmplx.Sqrt,
	native.OpConjg: cmplx.Conj,
}

// unaryType is the result type of op applied to t. ok is false when op
// does not accept t.
func unaryType(op native.UnaryOp, t native.DType) (native.DType, bool) {
	switch op {
	case native.OpIsZero, native.OpIsInf, native.OpIsNaN, native.OpNot:
		return native.B8, true
	case native.OpBitNot:
		return t, isInteger(t)
	case native.OpAbs, native.OpArg, native.OpReal, native.OpImag:
		if op == native.OpArg {
			return toReal(toFloat(t)), true
		}
		return toReal(t), true
	case native.OpConjg:
		return t, true
	case native.OpCplx:
		return toComplex(toFloat(t)), !t.IsComplex()
	case native.OpRound, native.OpTrunc, native.OpFloor, native.OpCeil:
		if t.IsComplex() {
			return t, false
		}
		return t, true
	}
	if t.IsComplex() {
		_, ok := complexFuncs[op]
		return t, ok
	}
	return toFloat(t), true
}

func (l *Lib) Unary(op native.UnaryOp, in native.Handle) (native.Handle, native.Code) {
	return l.op1(in, func(a *array) (*array, native.Code) {
		t, ok := unaryType(op, a.dtype)
		if !ok {
			return nil, l.fail(native.ErrType, "unary op %d does not support type %d", op, a.dtype)
		}
		n := a.elements()
		re, im := planes(t, n)
		src, srcIm := a.buf.re, a.buf.im
		switch op {
		case native.OpIsZero, native.OpIsInf, native.OpIsNaN, native.OpNot:
			for i := range re {
				v, w := src[i], imagAt(srcIm, i)
				var b bool
				switch op {
				case native.OpIsZero:
					b = v == 0 && w == 0
				case native.OpIsInf:
					b = math.IsInf(v, 0) || math.IsInf(w, 0)
				case native.OpIsNaN:
					b = math.IsNaN(v) || math.IsNaN(w)
				case native.OpNot:
					b = v == 0 && w == 0
				}
				if b {
					re[i] = 1
				}
			}
		case native.OpBitNot:
			for i := range re {
				re[i] = float64(^toInt(src[i]))
			}
		case native.OpReal:
			copy(re, src)
		case native.OpImag:
			copy(re, srcIm)
		case native.OpCplx:
			copy(re, src)
		case native.OpAbs:
			if srcIm != nil {
				vecmath.Magnitude(re, src, srcIm)
				break
			}
			for i := range re {
				re[i] = math.Abs(src[i])
			}
		case native.OpArg:
			for i := range re {
				re[i] = math.Atan2(imagAt(srcIm, i), src[i])
			}
		case native.OpConjg:
			copy(re, src)
			for i := range im {
				im[i] = -srcIm[i]
			}
		default:
			if srcIm != nil {
				f := complexFuncs[op]
				for i := range re {
					z := f(complex(src[i], srcIm[i]))
					re[i], im[i] = real(z), imag(z)
				}
				break
			}
			f := realFuncs[op]
			for i := range re {
				re[i] = f(src[i])
			}
		}
		return fromPlanes(a.dims, t, re, im), native.Success
	})
}

func (l *Lib) Cast(in native.Handle, t native.DType) (native.Handle, native.Code) {
	return l.op1(in, func(a *array) (*array, native.Code) {
		if !valid(t) {
			return nil, l.fail(native.ErrType, "invalid type %d", t)
		}
		if a.dtype.IsComplex() && !t.IsComplex() {
			return nil, l.fail(native.ErrType, "cannot cast complex to real type %d", t)
		}
		re := append([]float64(nil), a.buf.re...)
		var im []float64
		if a.buf.im != nil {
			im = append([]float64(nil), a.buf.im...)
		}
		return fromPlanes(a.dims, t, re, im), native.Success
	})
}

// binaryType is the result type of op on operands of type a and b.
func binaryType(op native.BinaryOp, a, b native.DType) (native.DType, bool) {
	t := promote(a, b)
	switch op {
	case native.OpAdd, native.OpSub, native.OpMul, native.OpDiv, native.OpPow:
		return t, true
	case native.OpEq, native.OpNeq, native.OpAnd, native.OpOr:
		return native.B8, true
	case native.OpLt, native.OpGt, native.OpLe, native.OpGe:
		return native.B8, !t.IsComplex()
	case native.OpBitAnd, native.OpBitOr, native.OpBitXor, native.OpBitShiftL, native.OpBitShiftR:
		return t, isInteger(t) || t == native.B8
	case native.OpMinOf, native.OpMaxOf, native.OpRem, native.OpMod:
		return t, !t.IsComplex()
	case native.OpRoot, native.OpAtan2, native.OpHypot:
		return toFloat(t), !t.IsComplex()
	case native.OpCplx2:
		return toComplex(toFloat(t)), !t.IsComplex()
	}
	return t, false
}

func boolf(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

func realBinary(op native.BinaryOp, x, y float64) float64 {
	switch op {
	case native.OpAdd:
		return x + y
	case native.OpSub:
		return x - y
	case native.OpMul:
		return x * y
	case native.OpDiv:
		return x / y
	case native.OpLt:
		return boolf(x < y)
	case native.OpGt:
		return boolf(x > y)
	case native.OpLe:
		return boolf(x <= y)
	case native.OpGe:
		return boolf(x >= y)
	case native.OpEq:
		return boolf(x == y)
	case native.OpNeq:
		return boolf(x != y)
	case native.OpAnd:
		return boolf(x != 0 && y != 0)
	case native.OpOr:
		return boolf(x != 0 || y != 0)
	case native.OpBitAnd:
		return float64(toInt(x) & toInt(y))
	case native.OpBitOr:
		return float64(toInt(x) | toInt(y))
	case native.OpBitXor:
		return float64(toInt(x) ^ toInt(y))
	case native.OpBitShiftL:
		return float64(toInt(x) << uint64(toInt(y)))
	case native.OpBitShiftR:
		return float64(toInt(x) >> uint64(toInt(y)))
	case native.OpMinOf:
		return math.Min(x, y)
	case native.OpMaxOf:
		return math.Max(x, y)
	case native.OpRem:
		return math.Mod(x, y)
	case native.OpMod:
		return x - y*math.Floor(x/y)
	case native.OpPow:
		return math.Pow(x, y)
	case native.OpRoot:
		return math.Pow(y, 1/x)
	case native.OpAtan2:
		return math.Atan2(x, y)
	case native.OpHypot:
		return math.Hypot(x, y)
	}
	return math.NaN()
}

func complexBinary(op native.BinaryOp, x, y complex128) complex128 {
	switch op {
	case native.OpAdd:
		return x + y
	case native.OpSub:
		return x - y
	case native.OpMul:
		return x * y
	case native.OpDiv:
		return x / y
	case native.OpPow:
		return cmplx.Pow(x, y)
	case native.OpEq:
		return complex(boolf(x == y), 0)
	case native.OpNeq:
		return complex(boolf(x != y), 0)
	case native.OpAnd:
		return complex(boolf(x != 0 && y != 0), 0)
	case native.OpOr:
		return complex(boolf(x != 0 || y != 0), 0)
	}
	return cmplx.NaN()
}

// intDiv truncates quotients of integer operands.
func intDiv(t native.DType, op native.BinaryOp, v float64) float64 {
	if op == native.OpDiv && (isInteger(t) || t == native.B8) {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return 0
		}
		return math.Trunc(v)
	}
	return v
}

// binary evaluates op elementwise with singleton broadcasting. Same-shape
// real add, sub and mul run through the vecmath block kernels.
func (l *Lib) binary(op native.BinaryOp, a, b *array) (*array, native.Code) {
	t, ok := binaryType(op, a.dtype, b.dtype)
	if !ok {
		return nil, l.fail(native.ErrType, "binary op %d does not support types %d and %d", op, a.dtype, b.dtype)
	}
	od, ok := broadcast(a.dims, b.dims)
	if !ok {
		return nil, l.fail(native.ErrSize, "dimension mismatch %v vs %v", a.dims, b.dims)
	}
	n := product(od)
	re, im := planes(t, n)
	cplx := a.buf.im != nil || b.buf.im != nil
	if sameShape(a, b) && !cplx && isFloat(t) {
		switch op {
		case native.OpAdd:
			vecmath.AddBlock(re, a.buf.re, b.buf.re)
			return fromPlanes(od, t, re, im), native.Success
		case native.OpSub:
			vecmath.ScaleBlock(re, b.buf.re, -1)
			vecmath.AddBlockInPlace(re, a.buf.re)
			return fromPlanes(od, t, re, im), native.Success
		case native.OpMul:
			vecmath.MulBlock(re, a.buf.re, b.buf.re)
			return fromPlanes(od, t, re, im), native.Success
		}
	}
	for i := int64(0); i < n; i++ {
		c := coords(od, i)
		ia, ib := at(a.dims, c), at(b.dims, c)
		switch {
		case op == native.OpCplx2:
			re[i], im[i] = valRe(a, ia), valRe(b, ib)
		case cplx:
			z := complexBinary(op, complex(valRe(a, ia), valIm(a, ia)), complex(valRe(b, ib), valIm(b, ib)))
			re[i] = real(z)
			if im != nil {
				im[i] = imag(z)
			}
		default:
			re[i] = intDiv(t, op, realBinary(op, valRe(a, ia), valRe(b, ib)))
		}
	}
	return fromPlanes(od, t, re, im), native.Success
}

func (l *Lib) Binary(op native.BinaryOp, lhs, rhs native.Handle, batch bool) (native.Handle, native.Code) {
	return l.op2(lhs, rhs, func(a, b *array) (*array, native.Code) {
		return l.binary(op, a, b)
	})
}

func (l *Lib) Clamp(in, lo, hi native.Handle, batch bool) (native.Handle, native.Code) {
	l.mu.Lock()
	defer l.mu.Unlock()
	a, c := l.get(in)
	if c != native.Success {
		return 0, c
	}
	lower, c := l.get(lo)
	if c != native.Success {
		return 0, c
	}
	upper, c := l.get(hi)
	if c != native.Success {
		return 0, c
	}
	tmp, c := l.binary(native.OpMaxOf, a, lower)
	if c != native.Success {
		return 0, c
	}
	out, c := l.binary(native.OpMinOf, tmp, upper)
	if c != native.Success {
		return 0, c
	}
	return l.put(out), native.Success
}
