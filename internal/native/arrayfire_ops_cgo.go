//go:build arrayfire && cgo

package native

/*
#include <arrayfire.h>
*/
import "C"

func (afLib) Unary(op UnaryOp, in Handle) (Handle, Code) {
	var out C.af_array
	a := arr(in)
	var e C.af_err
	switch op {
	case OpAbs:
		e = C.af_abs(&out, a)
	case OpArg:
		e = C.af_arg(&out, a)
	case OpSign:
		e = C.af_sign(&out, a)
	case OpRound:
		e = C.af_round(&out, a)
	case OpTrunc:
		e = C.af_trunc(&out, a)
	case OpFloor:
		e = C.af_floor(&out, a)
	case OpCeil:
		e = C.af_ceil(&out, a)
	case OpSin:
		e = C.af_sin(&out, a)
	case OpCos:
		e = C.af_cos(&out, a)
	case OpTan:
		e = C.af_tan(&out, a)
	case OpAsin:
		e = C.af_asin(&out, a)
	case OpAcos:
		e = C.af_acos(&out, a)
	case OpAtan:
		e = C.af_atan(&out, a)
	case OpSinh:
		e = C.af_sinh(&out, a)
	case OpCosh:
		e = C.af_cosh(&out, a)
	case OpTanh:
		e = C.af_tanh(&out, a)
	case OpAsinh:
		e = C.af_asinh(&out, a)
	case OpAcosh:
		e = C.af_acosh(&out, a)
	case OpAtanh:
		e = C.af_atanh(&out, a)
	case OpCplx:
		e = C.af_cplx(&out, a)
	case OpReal:
		e = C.af_real(&out, a)
	case OpImag:
		e = C.af_imag(&out, a)
	case OpConjg:
		e = C.af_conjg(&out, a)
	case OpExp:
		e = C.af_exp(&out, a)
	case OpExpm1:
		e = C.af_expm1(&out, a)
	case OpErf:
		e = C.af_erf(&out, a)
	case OpErfc:
		e = C.af_erfc(&out, a)
	case OpLog:
		e = C.af_log(&out, a)
	case OpLog1p:
		e = C.af_log1p(&out, a)
	case OpLog10:
		e = C.af_log10(&out, a)
	case OpLog2:
		e = C.af_log2(&out, a)
	case OpSqrt:
		e = C.af_sqrt(&out, a)
	case OpRsqrt:
		e = C.af_rsqrt(&out, a)
	case OpCbrt:
		e = C.af_cbrt(&out, a)
	case OpFactorial:
		e = C.af_factorial(&out, a)
	case OpTgamma:
		e = C.af_tgamma(&out, a)
	case OpLgamma:
		e = C.af_lgamma(&out, a)
	case OpIsZero:
		e = C.af_iszero(&out, a)
	case OpIsInf:
		e = C.af_isinf(&out, a)
	case OpIsNaN:
		e = C.af_isnan(&out, a)
	case OpNot:
		e = C.af_not(&out, a)
	case OpBitNot:
		e = C.af_bitnot(&out, a)
	case OpSigmoid:
		e = C.af_sigmoid(&out, a)
	case OpPow2:
		e = C.af_pow2(&out, a)
	default:
		return 0, ErrArg
	}
	return hdl(out), code(e)
}

func (afLib) Binary(op BinaryOp, lhs, rhs Handle, batch bool) (Handle, Code) {
	var out C.af_array
	l, r, b := arr(lhs), arr(rhs), C.bool(batch)
	var e C.af_err
	switch op {
	case OpAdd:
		e = C.af_add(&out, l, r, b)
	case OpSub:
		e = C.af_sub(&out, l, r, b)
	case OpMul:
		e = C.af_mul(&out, l, r, b)
	case OpDiv:
		e = C.af_div(&out, l, r, b)
	case OpLt:
		e = C.af_lt(&out, l, r, b)
	case OpGt:
		e = C.af_gt(&out, l, r, b)
	case OpLe:
		e = C.af_le(&out, l, r, b)
	case OpGe:
		e = C.af_ge(&out, l, r, b)
	case OpEq:
		e = C.af_eq(&out, l, r, b)
	case OpNeq:
		e = C.af_neq(&out, l, r, b)
	case OpAnd:
		e = C.af_and(&out, l, r, b)
	case OpOr:
		e = C.af_or(&out, l, r, b)
	case OpBitAnd:
		e = C.af_bitand(&out, l, r, b)
	case OpBitOr:
		e = C.af_bitor(&out, l, r, b)
	case OpBitXor:
		e = C.af_bitxor(&out, l, r, b)
	case OpBitShiftL:
		e = C.af_bitshiftl(&out, l, r, b)
	case OpBitShiftR:
		e = C.af_bitshiftr(&out, l, r, b)
	case OpMinOf:
		e = C.af_minof(&out, l, r, b)
	case OpMaxOf:
		e = C.af_maxof(&out, l, r, b)
	case OpRem:
		e = C.af_rem(&out, l, r, b)
	case OpMod:
		e = C.af_mod(&out, l, r, b)
	case OpPow:
		e = C.af_pow(&out, l, r, b)
	case OpRoot:
		e = C.af_root(&out, l, r, b)
	case OpAtan2:
		e = C.af_atan2(&out, l, r, b)
	case OpHypot:
		e = C.af_hypot(&out, l, r, b)
	case OpCplx2:
		e = C.af_cplx2(&out, l, r, b)
	default:
		return 0, ErrArg
	}
	return hdl(out), code(e)
}

func (afLib) Cast(in Handle, t DType) (Handle, Code) {
	var out C.af_array
	e := C.af_cast(&out, arr(in), C.af_dtype(t))
	return hdl(out), code(e)
}

func (afLib) Clamp(in, lo, hi Handle, batch bool) (Handle, Code) {
	var out C.af_array
	e := C.af_clamp(&out, arr(in), arr(lo), arr(hi), C.bool(batch))
	return hdl(out), code(e)
}

func (afLib) Constant(v float64, dims []int64, t DType) (Handle, Code) {
	var out C.af_array
	e := C.af_constant(&out, C.double(v), C.uint(len(dims)), dimPtr(dims), C.af_dtype(t))
	return hdl(out), code(e)
}

func (afLib) ConstantComplex(re, im float64, dims []int64, t DType) (Handle, Code) {
	var out C.af_array
	e := C.af_constant_complex(&out, C.double(re), C.double(im), C.uint(len(dims)), dimPtr(dims), C.af_dtype(t))
	return hdl(out), code(e)
}

func (afLib) ConstantLong(v int64, dims []int64) (Handle, Code) {
	var out C.af_array
	e := C.af_constant_long(&out, C.longlong(v), C.uint(len(dims)), dimPtr(dims))
	return hdl(out), code(e)
}

func (afLib) ConstantULong(v uint64, dims []int64) (Handle, Code) {
	var out C.af_array
	e := C.af_constant_ulong(&out, C.ulonglong(v), C.uint(len(dims)), dimPtr(dims))
	return hdl(out), code(e)
}

func (afLib) Range(dims []int64, seqDim int, t DType) (Handle, Code) {
	var out C.af_array
	e := C.af_range(&out, C.uint(len(dims)), dimPtr(dims), C.int(seqDim), C.af_dtype(t))
	return hdl(out), code(e)
}

func (afLib) Iota(dims, tile []int64, t DType) (Handle, Code) {
	var out C.af_array
	e := C.af_iota(&out, C.uint(len(dims)), dimPtr(dims), C.uint(len(tile)), dimPtr(tile), C.af_dtype(t))
	return hdl(out), code(e)
}

func (afLib) Identity(dims []int64, t DType) (Handle, Code) {
	var out C.af_array
	e := C.af_identity(&out, C.uint(len(dims)), dimPtr(dims), C.af_dtype(t))
	return hdl(out), code(e)
}

func (afLib) DiagCreate(in Handle, num int) (Handle, Code) {
	var out C.af_array
	e := C.af_diag_create(&out, arr(in), C.int(num))
	return hdl(out), code(e)
}

func (afLib) DiagExtract(in Handle, num int) (Handle, Code) {
	var out C.af_array
	e := C.af_diag_extract(&out, arr(in), C.int(num))
	return hdl(out), code(e)
}

func (afLib) Join(dim int, hs []Handle) (Handle, Code) {
	if len(hs) == 0 {
		return 0, ErrArg
	}
	cs := make([]C.af_array, len(hs))
	for i, h := range hs {
		cs[i] = arr(h)
	}
	var out C.af_array
	e := C.af_join_many(&out, C.int(dim), C.uint(len(cs)), &cs[0])
	return hdl(out), code(e)
}

func (afLib) Tile(in Handle, reps [4]uint32) (Handle, Code) {
	var out C.af_array
	e := C.af_tile(&out, arr(in), C.uint(reps[0]), C.uint(reps[1]), C.uint(reps[2]), C.uint(reps[3]))
	return hdl(out), code(e)
}

func (afLib) Reorder(in Handle, order [4]uint32) (Handle, Code) {
	var out C.af_array
	e := C.af_reorder(&out, arr(in), C.uint(order[0]), C.uint(order[1]), C.uint(order[2]), C.uint(order[3]))
	return hdl(out), code(e)
}

func (afLib) Shift(in Handle, shifts [4]int32) (Handle, Code) {
	var out C.af_array
	e := C.af_shift(&out, arr(in), C.int(shifts[0]), C.int(shifts[1]), C.int(shifts[2]), C.int(shifts[3]))
	return hdl(out), code(e)
}

func (afLib) Moddims(in Handle, dims []int64) (Handle, Code) {
	var out C.af_array
	e := C.af_moddims(&out, arr(in), C.uint(len(dims)), dimPtr(dims))
	return hdl(out), code(e)
}

func (afLib) Flat(in Handle) (Handle, Code) {
	var out C.af_array
	e := C.af_flat(&out, arr(in))
	return hdl(out), code(e)
}

func (afLib) Flip(in Handle, dim uint32) (Handle, Code) {
	var out C.af_array
	e := C.af_flip(&out, arr(in), C.uint(dim))
	return hdl(out), code(e)
}

func (afLib) Lower(in Handle, unitDiag bool) (Handle, Code) {
	var out C.af_array
	e := C.af_lower(&out, arr(in), C.bool(unitDiag))
	return hdl(out), code(e)
}

func (afLib) Upper(in Handle, unitDiag bool) (Handle, Code) {
	var out C.af_array
	e := C.af_upper(&out, arr(in), C.bool(unitDiag))
	return hdl(out), code(e)
}

func (afLib) Select(cond, a, b Handle) (Handle, Code) {
	var out C.af_array
	e := C.af_select(&out, arr(cond), arr(a), arr(b))
	return hdl(out), code(e)
}

func (afLib) SelectScalarR(cond, a Handle, b float64) (Handle, Code) {
	var out C.af_array
	e := C.af_select_scalar_r(&out, arr(cond), arr(a), C.double(b))
	return hdl(out), code(e)
}

func (afLib) SelectScalarL(cond Handle, a float64, b Handle) (Handle, Code) {
	var out C.af_array
	e := C.af_select_scalar_l(&out, arr(cond), C.double(a), arr(b))
	return hdl(out), code(e)
}

func (afLib) Replace(a, cond, b Handle) Code {
	return code(C.af_replace(arr(a), arr(cond), arr(b)))
}

func (afLib) ReplaceScalar(a, cond Handle, b float64) Code {
	return code(C.af_replace_scalar(arr(a), arr(cond), C.double(b)))
}

func (afLib) Pad(in Handle, begin, end []int64, border int) (Handle, Code) {
	var out C.af_array
	e := C.af_pad(&out, arr(in), C.uint(len(begin)), dimPtr(begin), C.uint(len(end)), dimPtr(end),
		C.af_border_type(border))
	return hdl(out), code(e)
}

func (afLib) Reduce(op ReduceOp, in Handle, dim int) (Handle, Code) {
	var out C.af_array
	a, d := arr(in), C.int(dim)
	var e C.af_err
	switch op {
	case ReduceSum:
		e = C.af_sum(&out, a, d)
	case ReduceProduct:
		e = C.af_product(&out, a, d)
	case ReduceMin:
		e = C.af_min(&out, a, d)
	case ReduceMax:
		e = C.af_max(&out, a, d)
	case ReduceAllTrue:
		e = C.af_all_true(&out, a, d)
	case ReduceAnyTrue:
		e = C.af_any_true(&out, a, d)
	case ReduceCount:
		e = C.af_count(&out, a, d)
	default:
		return 0, ErrArg
	}
	return hdl(out), code(e)
}

func (afLib) ReduceNaN(op ReduceOp, in Handle, dim int, nanval float64) (Handle, Code) {
	var out C.af_array
	var e C.af_err
	switch op {
	case ReduceSum:
		e = C.af_sum_nan(&out, arr(in), C.int(dim), C.double(nanval))
	case ReduceProduct:
		e = C.af_product_nan(&out, arr(in), C.int(dim), C.double(nanval))
	default:
		return 0, ErrNotSupported
	}
	return hdl(out), code(e)
}

func (afLib) ReduceAll(op ReduceOp, in Handle) (re, im float64, c Code) {
	var r, i C.double
	a := arr(in)
	var e C.af_err
	switch op {
	case ReduceSum:
		e = C.af_sum_all(&r, &i, a)
	case ReduceProduct:
		e = C.af_product_all(&r, &i, a)
	case ReduceMin:
		e = C.af_min_all(&r, &i, a)
	case ReduceMax:
		e = C.af_max_all(&r, &i, a)
	case ReduceAllTrue:
		e = C.af_all_true_all(&r, &i, a)
	case ReduceAnyTrue:
		e = C.af_any_true_all(&r, &i, a)
	case ReduceCount:
		e = C.af_count_all(&r, &i, a)
	default:
		return 0, 0, ErrArg
	}
	return float64(r), float64(i), code(e)
}

func (afLib) ReduceAllNaN(op ReduceOp, in Handle, nanval float64) (re, im float64, c Code) {
	var r, i C.double
	var e C.af_err
	switch op {
	case ReduceSum:
		e = C.af_sum_nan_all(&r, &i, arr(in), C.double(nanval))
	case ReduceProduct:
		e = C.af_product_nan_all(&r, &i, arr(in), C.double(nanval))
	default:
		return 0, 0, ErrNotSupported
	}
	return float64(r), float64(i), code(e)
}

func (afLib) ReduceByKey(op ReduceOp, keys, vals Handle, dim int) (Handle, Handle, Code) {
	var ko, vo C.af_array
	k, v, d := arr(keys), arr(vals), C.int(dim)
	var e C.af_err
	switch op {
	case ReduceSum:
		e = C.af_sum_by_key(&ko, &vo, k, v, d)
	case ReduceProduct:
		e = C.af_product_by_key(&ko, &vo, k, v, d)
	case ReduceMin:
		e = C.af_min_by_key(&ko, &vo, k, v, d)
	case ReduceMax:
		e = C.af_max_by_key(&ko, &vo, k, v, d)
	case ReduceAllTrue:
		e = C.af_all_true_by_key(&ko, &vo, k, v, d)
	case ReduceAnyTrue:
		e = C.af_any_true_by_key(&ko, &vo, k, v, d)
	case ReduceCount:
		e = C.af_count_by_key(&ko, &vo, k, v, d)
	default:
		return 0, 0, ErrArg
	}
	return hdl(ko), hdl(vo), code(e)
}

func (afLib) IReduce(op IndexedOp, in Handle, dim int) (Handle, Handle, Code) {
	var out, idx C.af_array
	var e C.af_err
	switch op {
	case IndexedMin:
		e = C.af_imin(&out, &idx, arr(in), C.int(dim))
	case IndexedMax:
		e = C.af_imax(&out, &idx, arr(in), C.int(dim))
	default:
		return 0, 0, ErrArg
	}
	return hdl(out), hdl(idx), code(e)
}

func (afLib) IReduceAll(op IndexedOp, in Handle) (re, im float64, idx uint32, c Code) {
	var r, i C.double
	var ix C.uint
	var e C.af_err
	switch op {
	case IndexedMin:
		e = C.af_imin_all(&r, &i, &ix, arr(in))
	case IndexedMax:
		e = C.af_imax_all(&r, &i, &ix, arr(in))
	default:
		return 0, 0, 0, ErrArg
	}
	return float64(r), float64(i), uint32(ix), code(e)
}

func (afLib) Accum(in Handle, dim int) (Handle, Code) {
	var out C.af_array
	e := C.af_accum(&out, arr(in), C.int(dim))
	return hdl(out), code(e)
}

func (afLib) Scan(in Handle, dim int, op int, inclusive bool) (Handle, Code) {
	var out C.af_array
	e := C.af_scan(&out, arr(in), C.int(dim), C.af_binary_op(op), C.bool(inclusive))
	return hdl(out), code(e)
}

func (afLib) ScanByKey(keys, in Handle, dim int, op int, inclusive bool) (Handle, Code) {
	var out C.af_array
	e := C.af_scan_by_key(&out, arr(keys), arr(in), C.int(dim), C.af_binary_op(op), C.bool(inclusive))
	return hdl(out), code(e)
}

func (afLib) Where(in Handle) (Handle, Code) {
	var out C.af_array
	e := C.af_where(&out, arr(in))
	return hdl(out), code(e)
}

func (afLib) Diff1(in Handle, dim int) (Handle, Code) {
	var out C.af_array
	e := C.af_diff1(&out, arr(in), C.int(dim))
	return hdl(out), code(e)
}

func (afLib) Diff2(in Handle, dim int) (Handle, Code) {
	var out C.af_array
	e := C.af_diff2(&out, arr(in), C.int(dim))
	return hdl(out), code(e)
}

func (afLib) Sort(in Handle, dim uint32, asc bool) (Handle, Code) {
	var out C.af_array
	e := C.af_sort(&out, arr(in), C.uint(dim), C.bool(asc))
	return hdl(out), code(e)
}

func (afLib) SortIndex(in Handle, dim uint32, asc bool) (Handle, Handle, Code) {
	var out, idx C.af_array
	e := C.af_sort_index(&out, &idx, arr(in), C.uint(dim), C.bool(asc))
	return hdl(out), hdl(idx), code(e)
}

func (afLib) SortByKey(keys, vals Handle, dim uint32, asc bool) (Handle, Handle, Code) {
	var ko, vo C.af_array
	e := C.af_sort_by_key(&ko, &vo, arr(keys), arr(vals), C.uint(dim), C.bool(asc))
	return hdl(ko), hdl(vo), code(e)
}

func (afLib) SetUnique(in Handle, isSorted bool) (Handle, Code) {
	var out C.af_array
	e := C.af_set_unique(&out, arr(in), C.bool(isSorted))
	return hdl(out), code(e)
}

func (afLib) SetOp(op SetOp, a, b Handle, isUnique bool) (Handle, Code) {
	var out C.af_array
	var e C.af_err
	switch op {
	case SetUnion:
		e = C.af_set_union(&out, arr(a), arr(b), C.bool(isUnique))
	case SetIntersect:
		e = C.af_set_intersect(&out, arr(a), arr(b), C.bool(isUnique))
	default:
		return 0, ErrArg
	}
	return hdl(out), code(e)
}

func (afLib) MaxRagged(in, lens Handle, dim int) (Handle, Handle, Code) {
	var val, idx C.af_array
	e := C.af_max_ragged(&val, &idx, arr(in), arr(lens), C.int(dim))
	return hdl(val), hdl(idx), code(e)
}

func (afLib) Matmul(lhs, rhs Handle, optL, optR int) (Handle, Code) {
	var out C.af_array
	e := C.af_matmul(&out, arr(lhs), arr(rhs), C.af_mat_prop(optL), C.af_mat_prop(optR))
	return hdl(out), code(e)
}

func (afLib) Dot(lhs, rhs Handle, optL, optR int) (Handle, Code) {
	var out C.af_array
	e := C.af_dot(&out, arr(lhs), arr(rhs), C.af_mat_prop(optL), C.af_mat_prop(optR))
	return hdl(out), code(e)
}

func (afLib) DotAll(lhs, rhs Handle, optL, optR int) (re, im float64, c Code) {
	var r, i C.double
	e := C.af_dot_all(&r, &i, arr(lhs), arr(rhs), C.af_mat_prop(optL), C.af_mat_prop(optR))
	return float64(r), float64(i), code(e)
}

func (afLib) Transpose(in Handle, conj bool) (Handle, Code) {
	var out C.af_array
	e := C.af_transpose(&out, arr(in), C.bool(conj))
	return hdl(out), code(e)
}

func (afLib) TransposeInplace(in Handle, conj bool) Code {
	return code(C.af_transpose_inplace(arr(in), C.bool(conj)))
}

func (afLib) SVD(in Handle) (u, s, vt Handle, c Code) {
	var cu, cs, cvt C.af_array
	e := C.af_svd(&cu, &cs, &cvt, arr(in))
	return hdl(cu), hdl(cs), hdl(cvt), code(e)
}

func (afLib) SVDInplace(in Handle) (u, s, vt Handle, c Code) {
	var cu, cs, cvt C.af_array
	e := C.af_svd_inplace(&cu, &cs, &cvt, arr(in))
	return hdl(cu), hdl(cs), hdl(cvt), code(e)
}

func (afLib) LU(in Handle) (l, u, piv Handle, c Code) {
	var cl, cu, cp C.af_array
	e := C.af_lu(&cl, &cu, &cp, arr(in))
	return hdl(cl), hdl(cu), hdl(cp), code(e)
}

func (afLib) LUInplace(in Handle, lapackPiv bool) (Handle, Code) {
	var piv C.af_array
	e := C.af_lu_inplace(&piv, arr(in), C.bool(lapackPiv))
	return hdl(piv), code(e)
}

func (afLib) QR(in Handle) (q, r, tau Handle, c Code) {
	var cq, cr, ct C.af_array
	e := C.af_qr(&cq, &cr, &ct, arr(in))
	return hdl(cq), hdl(cr), hdl(ct), code(e)
}

func (afLib) QRInplace(in Handle) (Handle, Code) {
	var tau C.af_array
	e := C.af_qr_inplace(&tau, arr(in))
	return hdl(tau), code(e)
}

func (afLib) Cholesky(in Handle, upper bool) (Handle, int, Code) {
	var out C.af_array
	var info C.int
	e := C.af_cholesky(&out, &info, arr(in), C.bool(upper))
	return hdl(out), int(info), code(e)
}

func (afLib) CholeskyInplace(in Handle, upper bool) (int, Code) {
	var info C.int
	e := C.af_cholesky_inplace(&info, arr(in), C.bool(upper))
	return int(info), code(e)
}

func (afLib) Solve(a, b Handle, opt int) (Handle, Code) {
	var out C.af_array
	e := C.af_solve(&out, arr(a), arr(b), C.af_mat_prop(opt))
	return hdl(out), code(e)
}

func (afLib) SolveLU(a, piv, b Handle, opt int) (Handle, Code) {
	var out C.af_array
	e := C.af_solve_lu(&out, arr(a), arr(piv), arr(b), C.af_mat_prop(opt))
	return hdl(out), code(e)
}

func (afLib) Inverse(in Handle, opt int) (Handle, Code) {
	var out C.af_array
	e := C.af_inverse(&out, arr(in), C.af_mat_prop(opt))
	return hdl(out), code(e)
}

func (afLib) Pinverse(in Handle, tol float64, opt int) (Handle, Code) {
	var out C.af_array
	e := C.af_pinverse(&out, arr(in), C.double(tol), C.af_mat_prop(opt))
	return hdl(out), code(e)
}

func (afLib) Rank(in Handle, tol float64) (uint32, Code) {
	var r C.uint
	e := C.af_rank(&r, arr(in), C.double(tol))
	return uint32(r), code(e)
}

func (afLib) Det(in Handle) (re, im float64, c Code) {
	var r, i C.double
	e := C.af_det(&r, &i, arr(in))
	return float64(r), float64(i), code(e)
}

func (afLib) Norm(in Handle, typ int, p, q float64) (float64, Code) {
	var out C.double
	e := C.af_norm(&out, arr(in), C.af_norm_type(typ), C.double(p), C.double(q))
	return float64(out), code(e)
}

func (afLib) LAPACKAvailable() (bool, Code) {
	var b C.bool
	e := C.af_is_lapack_available(&b)
	return bool(b), code(e)
}
