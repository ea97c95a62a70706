//go:build !af_no_arithmetic

package af

import (
	"runtime"

	"github.com/23skdu/arrayfire-go/internal/native"
)

func init() { registerFeature("arithmetic") }

func unary(op native.UnaryOp, name string, in *Array) (*Array, error) {
	return op1(name, in, func(h native.Handle) (native.Handle, native.Code) {
		return lib().Unary(op, h)
	})
}

// binary applies op elementwise. Singleton dimensions broadcast; batch
// enables the native batched mode used inside gfor-style loops.
func binary(op native.BinaryOp, name string, lhs, rhs *Array, batch bool) (*Array, error) {
	return op2(name, lhs, rhs, func(x, y native.Handle) (native.Handle, native.Code) {
		return lib().Binary(op, x, y, batch)
	})
}

// Abs returns the magnitude of each element.
func Abs(in *Array) (*Array, error) { return unary(native.OpAbs, "abs", in) }

// Arg returns the phase angle of each element.
func Arg(in *Array) (*Array, error) { return unary(native.OpArg, "arg", in) }

// Sign returns 1 where an element is negative and 0 elsewhere.
func Sign(in *Array) (*Array, error) { return unary(native.OpSign, "sign", in) }
func Round(in *Array) (*Array, error) { return unary(native.OpRound, "round", in) }
func Trunc(in *Array) (*Array, error) { return unary(native.OpTrunc, "trunc", in) }
func Floor(in *Array) (*Array, error) { return unary(native.OpFloor, "floor", in) }
func Ceil(in *Array) (*Array, error) { return unary(native.OpCeil, "ceil", in) }
func Sin(in *Array) (*Array, error) { return unary(native.OpSin, "sin", in) }
func Cos(in *Array) (*Array, error) { return unary(native.OpCos, "cos", in) }
func Tan(in *Array) (*Array, error) { return unary(native.OpTan, "tan", in) }
func Asin(in *Array) (*Array, error) { return unary(native.OpAsin, "asin", in) }
func Acos(in *Array) (*Array, error) { return unary(native.OpAcos, "acos", in) }
func Atan(in *Array) (*Array, error) { return unary(native.OpAtan, "atan", in) }
func Sinh(in *Array) (*Array, error) { return unary(native.OpSinh, "sinh", in) }
func Cosh(in *Array) (*Array, error) { return unary(native.OpCosh, "cosh", in) }
func Tanh(in *Array) (*Array, error) { return unary(native.OpTanh, "tanh", in) }
func Asinh(in *Array) (*Array, error) { return unary(native.OpAsinh, "asinh", in) }
func Acosh(in *Array) (*Array, error) { return unary(native.OpAcosh, "acosh", in) }
func Atanh(in *Array) (*Array, error) { return unary(native.OpAtanh, "atanh", in) }

// Cplx converts real values to complex with zero imaginary part.
func Cplx(in *Array) (*Array, error) { return unary(native.OpCplx, "cplx", in) }
func Real(in *Array) (*Array, error) { return unary(native.OpReal, "real", in) }
func Imag(in *Array) (*Array, error) { return unary(native.OpImag, "imag", in) }
func Conjg(in *Array) (*Array, error) { return unary(native.OpConjg, "conjg", in) }
func Exp(in *Array) (*Array, error) { return unary(native.OpExp, "exp", in) }
func Expm1(in *Array) (*Array, error) { return unary(native.OpExpm1, "expm1", in) }
func Erf(in *Array) (*Array, error) { return unary(native.OpErf, "erf", in) }
func Erfc(in *Array) (*Array, error) { return unary(native.OpErfc, "erfc", in) }
func Log(in *Array) (*Array, error) { return unary(native.OpLog, "log", in) }
func Log1p(in *Array) (*Array, error) { return unary(native.OpLog1p, "log1p", in) }
func Log10(in *Array) (*Array, error) { return unary(native.OpLog10, "log10", in) }
func Log2(in *Array) (*Array, error) { return unary(native.OpLog2, "log2", in) }
func Sqrt(in *Array) (*Array, error) { return unary(native.OpSqrt, "sqrt", in) }
func Rsqrt(in *Array) (*Array, error) { return unary(native.OpRsqrt, "rsqrt", in) }
func Cbrt(in *Array) (*Array, error) { return unary(native.OpCbrt, "cbrt", in) }
func Factorial(in *Array) (*Array, error) { return unary(native.OpFactorial, "factorial", in) }
func Tgamma(in *Array) (*Array, error) { return unary(native.OpTgamma, "tgamma", in) }
func Lgamma(in *Array) (*Array, error) { return unary(native.OpLgamma, "lgamma", in) }
func IsZero(in *Array) (*Array, error) { return unary(native.OpIsZero, "iszero", in) }
func IsInf(in *Array) (*Array, error) { return unary(native.OpIsInf, "isinf", in) }
func IsNaN(in *Array) (*Array, error) { return unary(native.OpIsNaN, "isnan", in) }

// Not is the logical negation; the result is b8.
func Not(in *Array) (*Array, error) { return unary(native.OpNot, "not", in) }

// BitNot complements the bits of integer elements.
func BitNot(in *Array) (*Array, error) { return unary(native.OpBitNot, "bitnot", in) }
func Sigmoid(in *Array) (*Array, error) { return unary(native.OpSigmoid, "sigmoid", in) }

// Pow2 raises 2 to each element.
func Pow2(in *Array) (*Array, error) { return unary(native.OpPow2, "pow2", in) }


func Add(lhs, rhs *Array, batch bool) (*Array, error) { return binary(native.OpAdd, "add", lhs, rhs, batch) }
func Sub(lhs, rhs *Array, batch bool) (*Array, error) { return binary(native.OpSub, "sub", lhs, rhs, batch) }
func Mul(lhs, rhs *Array, batch bool) (*Array, error) { return binary(native.OpMul, "mul", lhs, rhs, batch) }
func Div(lhs, rhs *Array, batch bool) (*Array, error) { return binary(native.OpDiv, "div", lhs, rhs, batch) }

// Comparisons and logical operators return b8 arrays.
func Lt(lhs, rhs *Array, batch bool) (*Array, error) { return binary(native.OpLt, "lt", lhs, rhs, batch) }
func Gt(lhs, rhs *Array, batch bool) (*Array, error) { return binary(native.OpGt, "gt", lhs, rhs, batch) }
func Le(lhs, rhs *Array, batch bool) (*Array, error) { return binary(native.OpLe, "le", lhs, rhs, batch) }
func Ge(lhs, rhs *Array, batch bool) (*Array, error) { return binary(native.OpGe, "ge", lhs, rhs, batch) }
func Eq(lhs, rhs *Array, batch bool) (*Array, error) { return binary(native.OpEq, "eq", lhs, rhs, batch) }
func Neq(lhs, rhs *Array, batch bool) (*Array, error) { return binary(native.OpNeq, "neq", lhs, rhs, batch) }
func And(lhs, rhs *Array, batch bool) (*Array, error) { return binary(native.OpAnd, "and", lhs, rhs, batch) }
func Or(lhs, rhs *Array, batch bool) (*Array, error) { return binary(native.OpOr, "or", lhs, rhs, batch) }
func BitAnd(lhs, rhs *Array, batch bool) (*Array, error) { return binary(native.OpBitAnd, "bitand", lhs, rhs, batch) }
func BitOr(lhs, rhs *Array, batch bool) (*Array, error) { return binary(native.OpBitOr, "bitor", lhs, rhs, batch) }
func BitXor(lhs, rhs *Array, batch bool) (*Array, error) { return binary(native.OpBitXor, "bitxor", lhs, rhs, batch) }
func BitShiftL(lhs, rhs *Array, batch bool) (*Array, error) { return binary(native.OpBitShiftL, "bitshiftl", lhs, rhs, batch) }
func BitShiftR(lhs, rhs *Array, batch bool) (*Array, error) { return binary(native.OpBitShiftR, "bitshiftr", lhs, rhs, batch) }
func MinOf(lhs, rhs *Array, batch bool) (*Array, error) { return binary(native.OpMinOf, "minof", lhs, rhs, batch) }
func MaxOf(lhs, rhs *Array, batch bool) (*Array, error) { return binary(native.OpMaxOf, "maxof", lhs, rhs, batch) }
func Rem(lhs, rhs *Array, batch bool) (*Array, error) { return binary(native.OpRem, "rem", lhs, rhs, batch) }
func Mod(lhs, rhs *Array, batch bool) (*Array, error) { return binary(native.OpMod, "mod", lhs, rhs, batch) }
func Pow(lhs, rhs *Array, batch bool) (*Array, error) { return binary(native.OpPow, "pow", lhs, rhs, batch) }
func Root(lhs, rhs *Array, batch bool) (*Array, error) { return binary(native.OpRoot, "root", lhs, rhs, batch) }
func Atan2(lhs, rhs *Array, batch bool) (*Array, error) { return binary(native.OpAtan2, "atan2", lhs, rhs, batch) }
func Hypot(lhs, rhs *Array, batch bool) (*Array, error) { return binary(native.OpHypot, "hypot", lhs, rhs, batch) }
func Cplx2(lhs, rhs *Array, batch bool) (*Array, error) { return binary(native.OpCplx2, "cplx2", lhs, rhs, batch) }

// Cast converts in to element type t.
func Cast(in *Array, t DType) (*Array, error) {
	return op1("cast", in, func(h native.Handle) (native.Handle, native.Code) {
		return lib().Cast(h, native.DType(t))
	})
}

// Clamp limits in to [lo, hi] elementwise.
func Clamp(in, lo, hi *Array, batch bool) (*Array, error) {
	hs, err := handles(in, lo, hi)
	if err != nil {
		return nil, err
	}
	defer runtime.KeepAlive([]*Array{in, lo, hi})
	out, c := lib().Clamp(hs[0], hs[1], hs[2], batch)
	return wrap("clamp", out, c)
}

// scalarLike builds a constant with the shape and type of a.
func scalarLike(a *Array, v float64) (*Array, error) {
	d, err := a.Dims()
	if err != nil {
		return nil, err
	}
	t, err := a.Type()
	if err != nil {
		return nil, err
	}
	return constant(v, d, t)
}

// withScalar applies op between a and the scalar v. With scalarLeft the
// scalar is the left operand.
func withScalar(op native.BinaryOp, name string, a *Array, v float64, scalarLeft bool) (*Array, error) {
	s, err := scalarLike(a, v)
	if err != nil {
		return nil, err
	}
	defer s.Release()
	if scalarLeft {
		return binary(op, name, s, a, false)
	}
	return binary(op, name, a, s, false)
}

func AddScalar(a *Array, v float64) (*Array, error) { return withScalar(native.OpAdd, "add", a, v, false) }
func SubScalar(a *Array, v float64) (*Array, error) { return withScalar(native.OpSub, "sub", a, v, false) }
func MulScalar(a *Array, v float64) (*Array, error) { return withScalar(native.OpMul, "mul", a, v, false) }
func DivScalar(a *Array, v float64) (*Array, error) { return withScalar(native.OpDiv, "div", a, v, false) }
func PowScalar(a *Array, v float64) (*Array, error) { return withScalar(native.OpPow, "pow", a, v, false) }

// ScalarSub computes v - a.
func ScalarSub(v float64, a *Array) (*Array, error) { return withScalar(native.OpSub, "sub", a, v, true) }

// ScalarDiv computes v / a.
func ScalarDiv(v float64, a *Array) (*Array, error) { return withScalar(native.OpDiv, "div", a, v, true) }

// Neg computes -a.
func Neg(a *Array) (*Array, error) { return ScalarSub(0, a) }

func (a *Array) Add(b *Array) (*Array, error) { return Add(a, b, false) }
func (a *Array) Sub(b *Array) (*Array, error) { return Sub(a, b, false) }
func (a *Array) Mul(b *Array) (*Array, error) { return Mul(a, b, false) }
func (a *Array) Div(b *Array) (*Array, error) { return Div(a, b, false) }
func (a *Array) Pow(b *Array) (*Array, error) { return Pow(a, b, false) }
func (a *Array) Lt(b *Array) (*Array, error)  { return Lt(a, b, false) }
func (a *Array) Gt(b *Array) (*Array, error)  { return Gt(a, b, false) }
func (a *Array) Le(b *Array) (*Array, error)  { return Le(a, b, false) }
func (a *Array) Ge(b *Array) (*Array, error)  { return Ge(a, b, false) }
func (a *Array) Eq(b *Array) (*Array, error)  { return Eq(a, b, false) }
func (a *Array) Neq(b *Array) (*Array, error) { return Neq(a, b, false) }

func (a *Array) AddScalar(v float64) (*Array, error) { return AddScalar(a, v) }
func (a *Array) MulScalar(v float64) (*Array, error) { return MulScalar(a, v) }
func (a *Array) Neg() (*Array, error)                { return Neg(a) }
func (a *Array) Abs() (*Array, error)                { return Abs(a) }
func (a *Array) Sqrt() (*Array, error)               { return Sqrt(a) }
func (a *Array) Exp() (*Array, error)                { return Exp(a) }
func (a *Array) Log() (*Array, error)                { return Log(a) }
func (a *Array) Not() (*Array, error)                { return Not(a) }
func (a *Array) Cast(t DType) (*Array, error)        { return Cast(a, t) }
