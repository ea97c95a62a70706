//go:build arrayfire && cgo

package native

/*
#cgo LDFLAGS: -laf
#cgo linux CFLAGS: -I/opt/arrayfire/include
#cgo linux LDFLAGS: -L/opt/arrayfire/lib64 -L/opt/arrayfire/lib
#cgo darwin CFLAGS: -I/opt/arrayfire/include
#cgo darwin LDFLAGS: -L/opt/arrayfire/lib
#include <arrayfire.h>
#include <stdlib.h>
*/
import "C"
import (
	"unsafe"

	"github.com/rs/zerolog/log"
)

const linked = true

// Check interface compliance
var _ Lib = afLib{}

// afLib forwards every call to libaf.
type afLib struct{}

func init() {
	Use(afLib{})
	log.Debug().Msg("ArrayFire native library linked")
}

func arr(h Handle) C.af_array { return C.af_array(unsafe.Pointer(uintptr(h))) }

func hdl(a C.af_array) Handle { return Handle(uintptr(unsafe.Pointer(a))) }

func code(e C.af_err) Code { return Code(e) }

func dimPtr(d []int64) *C.dim_t {
	if len(d) == 0 {
		return nil
	}
	return (*C.dim_t)(unsafe.Pointer(&d[0]))
}

func bytePtr(b []byte) unsafe.Pointer {
	if len(b) == 0 {
		return nil
	}
	return unsafe.Pointer(&b[0])
}

func (afLib) Name() string { return "arrayfire" }

func (afLib) LastError() string {
	var msg *C.char
	var n C.dim_t
	C.af_get_last_error(&msg, &n)
	if msg == nil {
		return ""
	}
	defer C.af_free_host(unsafe.Pointer(msg))
	return C.GoStringN(msg, C.int(n))
}

func (afLib) ErrToString(c Code) string {
	return C.GoString(C.af_err_to_string(C.af_err(c)))
}

func (afLib) CreateArray(data []byte, dims []int64, t DType) (Handle, Code) {
	var out C.af_array
	e := C.af_create_array(&out, bytePtr(data), C.uint(len(dims)), dimPtr(dims), C.af_dtype(t))
	return hdl(out), code(e)
}

func (afLib) CreateHandle(dims []int64, t DType) (Handle, Code) {
	var out C.af_array
	e := C.af_create_handle(&out, C.uint(len(dims)), dimPtr(dims), C.af_dtype(t))
	return hdl(out), code(e)
}

func (afLib) CreateStridedArray(data []byte, offset int64, dims, strides []int64, t DType, onDevice bool) (Handle, Code) {
	var out C.af_array
	src := C.af_source(C.afHost)
	if onDevice {
		src = C.af_source(C.afDevice)
	}
	e := C.af_create_strided_array(&out, bytePtr(data), C.dim_t(offset), C.uint(len(dims)),
		dimPtr(dims), dimPtr(strides), C.af_dtype(t), src)
	return hdl(out), code(e)
}

func (afLib) DeviceArray(ptr unsafe.Pointer, dims []int64, t DType) (Handle, Code) {
	var out C.af_array
	e := C.af_device_array(&out, ptr, C.uint(len(dims)), dimPtr(dims), C.af_dtype(t))
	return hdl(out), code(e)
}

func (afLib) CopyArray(in Handle) (Handle, Code) {
	var out C.af_array
	e := C.af_copy_array(&out, arr(in))
	return hdl(out), code(e)
}

func (afLib) WriteArray(h Handle, data []byte) Code {
	return code(C.af_write_array(arr(h), bytePtr(data), C.size_t(len(data)), C.af_source(C.afHost)))
}

func (afLib) GetData(h Handle, dst []byte) Code {
	return code(C.af_get_data_ptr(bytePtr(dst), arr(h)))
}

func (afLib) GetScalar(h Handle, dst []byte) Code {
	return code(C.af_get_scalar(bytePtr(dst), arr(h)))
}

func (afLib) Release(h Handle) Code { return code(C.af_release_array(arr(h))) }

func (afLib) Retain(h Handle) (Handle, Code) {
	var out C.af_array
	e := C.af_retain_array(&out, arr(h))
	return hdl(out), code(e)
}

func (afLib) RefCount(h Handle) (int, Code) {
	var n C.int
	e := C.af_get_data_ref_count(&n, arr(h))
	return int(n), code(e)
}

func (afLib) Eval(h Handle) Code { return code(C.af_eval(arr(h))) }

func (afLib) EvalMultiple(hs []Handle) Code {
	if len(hs) == 0 {
		return Success
	}
	cs := make([]C.af_array, len(hs))
	for i, h := range hs {
		cs[i] = arr(h)
	}
	return code(C.af_eval_multiple(C.int(len(cs)), &cs[0]))
}

func (afLib) SetManualEval(on bool) Code { return code(C.af_set_manual_eval_flag(C.bool(on))) }

func (afLib) ManualEval() (bool, Code) {
	var b C.bool
	e := C.af_get_manual_eval_flag(&b)
	return bool(b), code(e)
}

func (afLib) Elements(h Handle) (int64, Code) {
	var n C.dim_t
	e := C.af_get_elements(&n, arr(h))
	return int64(n), code(e)
}

func (afLib) Type(h Handle) (DType, Code) {
	var t C.af_dtype
	e := C.af_get_type(&t, arr(h))
	return DType(t), code(e)
}

func (afLib) Dims(h Handle) ([4]int64, Code) {
	var d0, d1, d2, d3 C.dim_t
	e := C.af_get_dims(&d0, &d1, &d2, &d3, arr(h))
	return [4]int64{int64(d0), int64(d1), int64(d2), int64(d3)}, code(e)
}

func (afLib) NumDims(h Handle) (uint32, Code) {
	var n C.uint
	e := C.af_get_numdims(&n, arr(h))
	return uint32(n), code(e)
}

func (afLib) Is(q Query, h Handle) (bool, Code) {
	var b C.bool
	a := arr(h)
	var e C.af_err
	switch q {
	case QueryEmpty:
		e = C.af_is_empty(&b, a)
	case QueryScalar:
		e = C.af_is_scalar(&b, a)
	case QueryRow:
		e = C.af_is_row(&b, a)
	case QueryColumn:
		e = C.af_is_column(&b, a)
	case QueryVector:
		e = C.af_is_vector(&b, a)
	case QueryComplex:
		e = C.af_is_complex(&b, a)
	case QueryReal:
		e = C.af_is_real(&b, a)
	case QueryDouble:
		e = C.af_is_double(&b, a)
	case QuerySingle:
		e = C.af_is_single(&b, a)
	case QueryHalf:
		e = C.af_is_half(&b, a)
	case QueryRealFloating:
		e = C.af_is_realfloating(&b, a)
	case QueryFloating:
		e = C.af_is_floating(&b, a)
	case QueryInteger:
		e = C.af_is_integer(&b, a)
	case QueryBool:
		e = C.af_is_bool(&b, a)
	case QuerySparse:
		e = C.af_is_sparse(&b, a)
	case QueryLinear:
		e = C.af_is_linear(&b, a)
	case QueryOwner:
		e = C.af_is_owner(&b, a)
	case QueryLocked:
		e = C.af_is_locked_array(&b, a)
	default:
		return false, ErrArg
	}
	return bool(b), code(e)
}

func (afLib) Strides(h Handle) ([4]int64, Code) {
	var s0, s1, s2, s3 C.dim_t
	e := C.af_get_strides(&s0, &s1, &s2, &s3, arr(h))
	return [4]int64{int64(s0), int64(s1), int64(s2), int64(s3)}, code(e)
}

func (afLib) Offset(h Handle) (int64, Code) {
	var o C.dim_t
	e := C.af_get_offset(&o, arr(h))
	return int64(o), code(e)
}

func (afLib) AllocatedBytes(h Handle) (uint64, Code) {
	var n C.size_t
	e := C.af_get_allocated_bytes(&n, arr(h))
	return uint64(n), code(e)
}

func (afLib) DevicePtr(h Handle) (unsafe.Pointer, Code) {
	var p unsafe.Pointer
	e := C.af_get_device_ptr(&p, arr(h))
	return p, code(e)
}

func (afLib) LockArray(h Handle) Code   { return code(C.af_lock_array(arr(h))) }
func (afLib) UnlockArray(h Handle) Code { return code(C.af_unlock_array(arr(h))) }

func (afLib) SizeOf(t DType) (uint64, Code) {
	var n C.size_t
	e := C.af_get_size_of(&n, C.af_dtype(t))
	return uint64(n), code(e)
}

func (afLib) SetBackend(b int) Code { return code(C.af_set_backend(C.af_backend(b))) }

func (afLib) BackendCount() (uint32, Code) {
	var n C.uint
	e := C.af_get_backend_count(&n)
	return uint32(n), code(e)
}

func (afLib) AvailableBackends() (int, Code) {
	var n C.int
	e := C.af_get_available_backends(&n)
	return int(n), code(e)
}

func (afLib) ActiveBackend() (int, Code) {
	var b C.af_backend
	e := C.af_get_active_backend(&b)
	return int(b), code(e)
}

func (afLib) BackendID(h Handle) (int, Code) {
	var b C.af_backend
	e := C.af_get_backend_id(&b, arr(h))
	return int(b), code(e)
}

func (afLib) DeviceID(h Handle) (int, Code) {
	var d C.int
	e := C.af_get_device_id(&d, arr(h))
	return int(d), code(e)
}

func (afLib) Info() Code { return code(C.af_info()) }
func (afLib) Init() Code { return code(C.af_init()) }

func (afLib) InfoString(verbose bool) (string, Code) {
	var s *C.char
	e := C.af_info_string(&s, C.bool(verbose))
	if s == nil {
		return "", code(e)
	}
	defer C.af_free_host(unsafe.Pointer(s))
	return C.GoString(s), code(e)
}

func (afLib) DeviceInfo() (DeviceInfo, Code) {
	// af_device_info writes at most 64 bytes per field.
	var name, platform, toolkit, compute [64]C.char
	e := C.af_device_info(&name[0], &platform[0], &toolkit[0], &compute[0])
	return DeviceInfo{
		Name:     C.GoString(&name[0]),
		Platform: C.GoString(&platform[0]),
		Toolkit:  C.GoString(&toolkit[0]),
		Compute:  C.GoString(&compute[0]),
	}, code(e)
}

func (afLib) DeviceCount() (int, Code) {
	var n C.int
	e := C.af_get_device_count(&n)
	return int(n), code(e)
}

func (afLib) DoubleSupport(device int) (bool, Code) {
	var b C.bool
	e := C.af_get_dbl_support(&b, C.int(device))
	return bool(b), code(e)
}

func (afLib) HalfSupport(device int) (bool, Code) {
	var b C.bool
	e := C.af_get_half_support(&b, C.int(device))
	return bool(b), code(e)
}

func (afLib) SetDevice(device int) Code { return code(C.af_set_device(C.int(device))) }

func (afLib) Device() (int, Code) {
	var d C.int
	e := C.af_get_device(&d)
	return int(d), code(e)
}

func (afLib) Sync(device int) Code { return code(C.af_sync(C.int(device))) }

func (afLib) MemInfo() (MemInfo, Code) {
	var ab, abuf, lb, lbuf C.size_t
	e := C.af_device_mem_info(&ab, &abuf, &lb, &lbuf)
	return MemInfo{
		AllocBytes:   uint64(ab),
		AllocBuffers: uint64(abuf),
		LockBytes:    uint64(lb),
		LockBuffers:  uint64(lbuf),
	}, code(e)
}

func (afLib) PrintMemInfo(msg string, device int) Code {
	cmsg := C.CString(msg)
	defer C.free(unsafe.Pointer(cmsg))
	return code(C.af_print_mem_info(cmsg, C.int(device)))
}

func (afLib) DeviceGC() Code { return code(C.af_device_gc()) }

func (afLib) SetMemStepSize(bytes uint64) Code {
	return code(C.af_set_mem_step_size(C.size_t(bytes)))
}

func (afLib) MemStepSize() (uint64, Code) {
	var n C.size_t
	e := C.af_get_mem_step_size(&n)
	return uint64(n), code(e)
}

func (afLib) Version() (major, minor, patch int, c Code) {
	var ma, mi, pa C.int
	e := C.af_get_version(&ma, &mi, &pa)
	return int(ma), int(mi), int(pa), code(e)
}

func (afLib) Revision() string { return C.GoString(C.af_get_revision()) }

func (afLib) PrintArray(h Handle, name string, precision int) Code {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))
	return code(C.af_print_array_gen(cname, arr(h), C.int(precision)))
}

func (afLib) ArrayToString(name string, h Handle, precision int, transpose bool) (string, Code) {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))
	var out *C.char
	e := C.af_array_to_string(&out, cname, arr(h), C.int(precision), C.bool(transpose))
	if out == nil {
		return "", code(e)
	}
	defer C.af_free_host(unsafe.Pointer(out))
	return C.GoString(out), code(e)
}

func (afLib) SaveArray(key string, h Handle, file string, appendTo bool) (int, Code) {
	ckey := C.CString(key)
	defer C.free(unsafe.Pointer(ckey))
	cfile := C.CString(file)
	defer C.free(unsafe.Pointer(cfile))
	var idx C.int
	e := C.af_save_array(&idx, ckey, arr(h), cfile, C.bool(appendTo))
	return int(idx), code(e)
}

func (afLib) ReadArrayIndex(file string, index uint32) (Handle, Code) {
	cfile := C.CString(file)
	defer C.free(unsafe.Pointer(cfile))
	var out C.af_array
	e := C.af_read_array_index(&out, cfile, C.uint(index))
	return hdl(out), code(e)
}

func (afLib) ReadArrayKey(file, key string) (Handle, Code) {
	cfile := C.CString(file)
	defer C.free(unsafe.Pointer(cfile))
	ckey := C.CString(key)
	defer C.free(unsafe.Pointer(ckey))
	var out C.af_array
	e := C.af_read_array_key(&out, cfile, ckey)
	return hdl(out), code(e)
}

func (afLib) ReadArrayKeyCheck(file, key string) (int, Code) {
	cfile := C.CString(file)
	defer C.free(unsafe.Pointer(cfile))
	ckey := C.CString(key)
	defer C.free(unsafe.Pointer(ckey))
	var idx C.int
	e := C.af_read_array_key_check(&idx, cfile, ckey)
	return int(idx), code(e)
}
