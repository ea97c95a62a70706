package af

import (
	"fmt"
	"runtime"
	"sync/atomic"
	"unsafe"

	"github.com/rs/zerolog/log"

	"github.com/23skdu/arrayfire-go/internal/native"
)

// Array is a native array handle. The zero value is not usable; arrays come
// from constructors and operations. Release it when done; a finalizer
// releases arrays that are dropped without it.
type Array struct {
	h atomic.Uintptr
}

func newArray(h native.Handle) *Array {
	a := &Array{}
	a.h.Store(uintptr(h))
	runtime.SetFinalizer(a, (*Array).finalize)
	arraysCreated.Inc()
	arraysLive.Inc()
	return a
}

func (a *Array) finalize() {
	h := native.Handle(a.h.Swap(0))
	if h == 0 {
		return
	}
	arraysReleased.WithLabelValues("finalizer").Inc()
	arraysLive.Dec()
	if c := lib().Release(h); c != native.Success {
		log.Debug().Int32("code", int32(c)).Msg("af: finalizer release failed")
	}
}

// Release frees the native handle. Only the first call reaches the native
// library; later calls return nil.
func (a *Array) Release() error {
	if a == nil {
		return nil
	}
	h := native.Handle(a.h.Swap(0))
	if h == 0 {
		return nil
	}
	runtime.SetFinalizer(a, nil)
	arraysReleased.WithLabelValues("explicit").Inc()
	arraysLive.Dec()
	return check("release_array", lib().Release(h))
}

// Released reports whether Release has been called.
func (a *Array) Released() bool { return a == nil || a.h.Load() == 0 }

func (a *Array) handle() (native.Handle, error) {
	if a == nil {
		return 0, ErrReleased
	}
	h := native.Handle(a.h.Load())
	if h == 0 {
		return 0, ErrReleased
	}
	return h, nil
}

// handles resolves the handles of arrs in order.
func handles(arrs ...*Array) ([]native.Handle, error) {
	hs := make([]native.Handle, len(arrs))
	for i, a := range arrs {
		h, err := a.handle()
		if err != nil {
			return nil, err
		}
		hs[i] = h
	}
	return hs, nil
}

func wrap(op string, h native.Handle, c native.Code) (*Array, error) {
	if err := check(op, c); err != nil {
		discard(h)
		return nil, err
	}
	return newArray(h), nil
}

// wrap2 wraps a two-output call; on failure any handle it produced is released.
func wrap2(op string, h1, h2 native.Handle, c native.Code) (*Array, *Array, error) {
	if err := check(op, c); err != nil {
		discard(h1, h2)
		return nil, nil, err
	}
	return newArray(h1), newArray(h2), nil
}

func wrap3(op string, h1, h2, h3 native.Handle, c native.Code) (*Array, *Array, *Array, error) {
	if err := check(op, c); err != nil {
		discard(h1, h2, h3)
		return nil, nil, nil, err
	}
	return newArray(h1), newArray(h2), newArray(h3), nil
}

func discard(hs ...native.Handle) {
	for _, h := range hs {
		if h != 0 {
			lib().Release(h)
		}
	}
}

func op1(op string, in *Array, f func(native.Handle) (native.Handle, native.Code)) (*Array, error) {
	h, err := in.handle()
	if err != nil {
		return nil, err
	}
	defer runtime.KeepAlive(in)
	out, c := f(h)
	return wrap(op, out, c)
}

func op2(op string, a, b *Array, f func(x, y native.Handle) (native.Handle, native.Code)) (*Array, error) {
	hs, err := handles(a, b)
	if err != nil {
		return nil, err
	}
	defer runtime.KeepAlive(a)
	defer runtime.KeepAlive(b)
	out, c := f(hs[0], hs[1])
	return wrap(op, out, c)
}

// do runs a call that produces no array.
func do(op string, in *Array, f func(native.Handle) native.Code) error {
	h, err := in.handle()
	if err != nil {
		return err
	}
	defer runtime.KeepAlive(in)
	return check(op, f(h))
}

// NewArray copies values into a new array of shape dims.
func NewArray[T HostType](values []T, dims Dim4) (*Array, error) {
	if int64(len(values)) != dims.Elements() {
		return nil, argError(CodeSize, "create_array", "%d values for shape %v", len(values), dims)
	}
	h, c := lib().CreateArray(bytesOf(values), dims.slice(), native.DType(DTypeOf[T]()))
	return wrap("create_array", h, c)
}

// NewEmptyArray allocates an uninitialized array.
func NewEmptyArray(dims Dim4, t DType) (*Array, error) {
	h, c := lib().CreateHandle(dims.slice(), native.DType(t))
	return wrap("create_handle", h, c)
}

// NewStridedArray builds an array whose element (i0, i1, i2, i3) is
// values[offset + i0*strides[0] + ... + i3*strides[3]].
func NewStridedArray[T HostType](values []T, offset int64, dims, strides Dim4) (*Array, error) {
	if dims.Elements() > 0 {
		last := offset
		for k := range dims {
			last += (dims[k] - 1) * strides[k]
		}
		if offset < 0 || last >= int64(len(values)) {
			return nil, argError(CodeSize, "create_strided_array", "%d values cannot hold shape %v with strides %v at offset %d",
				len(values), dims, strides, offset)
		}
	}
	h, c := lib().CreateStridedArray(bytesOf(values), offset, dims.slice(), strides.slice(), native.DType(DTypeOf[T]()), false)
	return wrap("create_strided_array", h, c)
}

// NewArrayFromDevicePtr takes ownership of device memory allocated by the
// active backend.
func NewArrayFromDevicePtr(ptr unsafe.Pointer, dims Dim4, t DType) (*Array, error) {
	h, c := lib().DeviceArray(ptr, dims.slice(), native.DType(t))
	return wrap("device_array", h, c)
}

func (a *Array) Dims() (Dim4, error) {
	h, err := a.handle()
	if err != nil {
		return Dim4{}, err
	}
	defer runtime.KeepAlive(a)
	d, c := lib().Dims(h)
	return Dim4(d), check("get_dims", c)
}

func (a *Array) NumDims() (int, error) {
	h, err := a.handle()
	if err != nil {
		return 0, err
	}
	defer runtime.KeepAlive(a)
	n, c := lib().NumDims(h)
	return int(n), check("get_numdims", c)
}

func (a *Array) Elements() (int64, error) {
	h, err := a.handle()
	if err != nil {
		return 0, err
	}
	defer runtime.KeepAlive(a)
	n, c := lib().Elements(h)
	return n, check("get_elements", c)
}

func (a *Array) Type() (DType, error) {
	h, err := a.handle()
	if err != nil {
		return 0, err
	}
	defer runtime.KeepAlive(a)
	t, c := lib().Type(h)
	return DType(t), check("get_type", c)
}

func (a *Array) Strides() (Dim4, error) {
	h, err := a.handle()
	if err != nil {
		return Dim4{}, err
	}
	defer runtime.KeepAlive(a)
	s, c := lib().Strides(h)
	return Dim4(s), check("get_strides", c)
}

func (a *Array) Offset() (int64, error) {
	h, err := a.handle()
	if err != nil {
		return 0, err
	}
	defer runtime.KeepAlive(a)
	o, c := lib().Offset(h)
	return o, check("get_offset", c)
}

func (a *Array) AllocatedBytes() (uint64, error) {
	h, err := a.handle()
	if err != nil {
		return 0, err
	}
	defer runtime.KeepAlive(a)
	n, c := lib().AllocatedBytes(h)
	return n, check("get_allocated_bytes", c)
}

// Backend returns the backend the array was created on.
func (a *Array) Backend() (Backend, error) {
	h, err := a.handle()
	if err != nil {
		return 0, err
	}
	defer runtime.KeepAlive(a)
	b, c := lib().BackendID(h)
	return Backend(b), check("get_backend_id", c)
}

func (a *Array) DeviceID() (int, error) {
	h, err := a.handle()
	if err != nil {
		return 0, err
	}
	defer runtime.KeepAlive(a)
	d, c := lib().DeviceID(h)
	return d, check("get_device_id", c)
}

// RefCount returns how many handles share the array's data.
func (a *Array) RefCount() (int, error) {
	h, err := a.handle()
	if err != nil {
		return 0, err
	}
	defer runtime.KeepAlive(a)
	n, c := lib().RefCount(h)
	return n, check("get_data_ref_count", c)
}

func (a *Array) is(q native.Query, op string) (bool, error) {
	h, err := a.handle()
	if err != nil {
		return false, err
	}
	defer runtime.KeepAlive(a)
	v, c := lib().Is(q, h)
	return v, check(op, c)
}

func (a *Array) IsEmpty() (bool, error)    { return a.is(native.QueryEmpty, "is_empty") }
func (a *Array) IsScalar() (bool, error)   { return a.is(native.QueryScalar, "is_scalar") }
func (a *Array) IsRow() (bool, error)      { return a.is(native.QueryRow, "is_row") }
func (a *Array) IsColumn() (bool, error)   { return a.is(native.QueryColumn, "is_column") }
func (a *Array) IsVector() (bool, error)   { return a.is(native.QueryVector, "is_vector") }
func (a *Array) IsComplex() (bool, error)  { return a.is(native.QueryComplex, "is_complex") }
func (a *Array) IsReal() (bool, error)     { return a.is(native.QueryReal, "is_real") }
func (a *Array) IsDouble() (bool, error)   { return a.is(native.QueryDouble, "is_double") }
func (a *Array) IsSingle() (bool, error)   { return a.is(native.QuerySingle, "is_single") }
func (a *Array) IsHalf() (bool, error)     { return a.is(native.QueryHalf, "is_half") }
func (a *Array) IsInteger() (bool, error)  { return a.is(native.QueryInteger, "is_integer") }
func (a *Array) IsBool() (bool, error)     { return a.is(native.QueryBool, "is_bool") }
func (a *Array) IsSparse() (bool, error)   { return a.is(native.QuerySparse, "is_sparse") }
func (a *Array) IsLinear() (bool, error)   { return a.is(native.QueryLinear, "is_linear") }
func (a *Array) IsOwner() (bool, error)    { return a.is(native.QueryOwner, "is_owner") }
func (a *Array) IsLocked() (bool, error)   { return a.is(native.QueryLocked, "is_locked_array") }
func (a *Array) IsFloating() (bool, error) { return a.is(native.QueryFloating, "is_floating") }
func (a *Array) IsRealFloating() (bool, error) {
	return a.is(native.QueryRealFloating, "is_realfloating")
}

// HostBytes copies the array contents to host memory in element layout.
func (a *Array) HostBytes() ([]byte, error) {
	h, err := a.handle()
	if err != nil {
		return nil, err
	}
	defer runtime.KeepAlive(a)
	n, c := lib().Elements(h)
	if err := check("get_elements", c); err != nil {
		return nil, err
	}
	t, c := lib().Type(h)
	if err := check("get_type", c); err != nil {
		return nil, err
	}
	buf := make([]byte, n*int64(native.DType(t).Size()))
	if err := check("get_data_ptr", lib().GetData(h, buf)); err != nil {
		return nil, err
	}
	return buf, nil
}

func checkType[T HostType](a *Array, op string) (native.Handle, error) {
	h, err := a.handle()
	if err != nil {
		return 0, err
	}
	t, c := lib().Type(h)
	if err := check("get_type", c); err != nil {
		return 0, err
	}
	if want := DTypeOf[T](); DType(t) != want {
		return 0, argError(CodeType, op, "array holds %v, requested %v", DType(t), want)
	}
	return h, nil
}

// Host copies the contents of a into a new slice. T must match the
// array's element type.
func Host[T HostType](a *Array) ([]T, error) {
	h, err := checkType[T](a, "get_data_ptr")
	if err != nil {
		return nil, err
	}
	defer runtime.KeepAlive(a)
	n, c := lib().Elements(h)
	if err := check("get_elements", c); err != nil {
		return nil, err
	}
	out := make([]T, n)
	if n == 0 {
		return out, nil
	}
	if err := check("get_data_ptr", lib().GetData(h, bytesOf(out))); err != nil {
		return nil, err
	}
	return out, nil
}

// Scalar returns the first element of a.
func Scalar[T HostType](a *Array) (T, error) {
	var v [1]T
	h, err := checkType[T](a, "get_scalar")
	if err != nil {
		return v[0], err
	}
	defer runtime.KeepAlive(a)
	err = check("get_scalar", lib().GetScalar(h, bytesOf(v[:])))
	return v[0], err
}

// WriteArray overwrites the contents of a with values.
func WriteArray[T HostType](a *Array, values []T) error {
	h, err := checkType[T](a, "write_array")
	if err != nil {
		return err
	}
	defer runtime.KeepAlive(a)
	n, c := lib().Elements(h)
	if err := check("get_elements", c); err != nil {
		return err
	}
	if int64(len(values)) != n {
		return argError(CodeSize, "write_array", "%d values for %d elements", len(values), n)
	}
	return check("write_array", lib().WriteArray(h, bytesOf(values)))
}

// Copy returns a deep copy of a.
func (a *Array) Copy() (*Array, error) {
	return op1("copy_array", a, lib().CopyArray)
}

// Retain returns a new handle sharing a's data. Both handles must be
// released.
func (a *Array) Retain() (*Array, error) {
	return op1("retain_array", a, lib().Retain)
}

// Eval forces evaluation of pending operations on a.
func (a *Array) Eval() error {
	return do("eval", a, lib().Eval)
}

// EvalMultiple evaluates several arrays in one call.
func EvalMultiple(arrs ...*Array) error {
	hs, err := handles(arrs...)
	if err != nil {
		return err
	}
	defer runtime.KeepAlive(arrs)
	return check("eval_multiple", lib().EvalMultiple(hs))
}

func SetManualEval(on bool) error {
	return check("set_manual_eval_flag", lib().SetManualEval(on))
}

func ManualEval() (bool, error) {
	on, c := lib().ManualEval()
	return on, check("get_manual_eval_flag", c)
}

// Lock keeps the array's device memory out of the memory manager's reach.
func (a *Array) Lock() error {
	return do("lock_array", a, lib().LockArray)
}

func (a *Array) Unlock() error {
	return do("unlock_array", a, lib().UnlockArray)
}

// DevicePtr returns the device memory of a and locks it.
func (a *Array) DevicePtr() (unsafe.Pointer, error) {
	h, err := a.handle()
	if err != nil {
		return nil, err
	}
	defer runtime.KeepAlive(a)
	p, c := lib().DevicePtr(h)
	return p, check("get_device_ptr", c)
}

// ToString renders a with the given precision. transpose prints matrices in
// row order.
func (a *Array) ToString(name string, precision int, transpose bool) (string, error) {
	h, err := a.handle()
	if err != nil {
		return "", err
	}
	defer runtime.KeepAlive(a)
	s, c := lib().ArrayToString(name, h, precision, transpose)
	return s, check("array_to_string", c)
}

func (a *Array) String() string {
	s, err := a.ToString("", 4, true)
	if err != nil {
		return fmt.Sprintf("<af.Array: %v>", err)
	}
	return s
}

// Print writes a to standard output under name.
func (a *Array) Print(name string) error {
	return a.PrintPrecision(name, 4)
}

func (a *Array) PrintPrecision(name string, precision int) error {
	return do("print_array", a, func(h native.Handle) native.Code {
		return lib().PrintArray(h, name, precision)
	})
}

// constant fills a new array of shape d and type t with v, choosing the
// native constructor that preserves v for t.
func constant(v float64, d Dim4, t DType) (*Array, error) {
	var (
		h native.Handle
		c native.Code
	)
	switch t {
	case C32, C64:
		h, c = lib().ConstantComplex(v, 0, d.slice(), native.DType(t))
	case S64:
		h, c = lib().ConstantLong(int64(v), d.slice())
	case U64:
		h, c = lib().ConstantULong(uint64(v), d.slice())
	default:
		h, c = lib().Constant(v, d.slice(), native.DType(t))
	}
	return wrap("constant", h, c)
}
