package af

import (
	"fmt"
	"unsafe"

	"github.com/x448/float16"

	"github.com/23skdu/arrayfire-go/internal/native"
)

// DType is the element type of an array, matching af_dtype.
type DType int32

const (
	F32 DType = iota
	C32
	F64
	C64
	B8
	S32
	U32
	U8
	S64
	U64
	S16
	U16
	F16
)

var dtypeNames = [...]string{"f32", "c32", "f64", "c64", "b8", "s32", "u32", "u8", "s64", "u64", "s16", "u16", "f16"}

func (t DType) String() string {
	if t < 0 || int(t) >= len(dtypeNames) {
		return fmt.Sprintf("DType(%d)", int32(t))
	}
	return dtypeNames[t]
}

// ParseDType maps a short type name such as "f32" back to its DType.
func ParseDType(s string) (DType, bool) {
	for i, n := range dtypeNames {
		if n == s {
			return DType(i), true
		}
	}
	return 0, false
}

// Size returns the number of bytes of one element.
func (t DType) Size() int { return native.DType(t).Size() }

// IsComplex reports whether t is c32 or c64.
func (t DType) IsComplex() bool { return t == C32 || t == C64 }

// Half is an IEEE 754 binary16 value, the host type of F16 arrays.
type Half = float16.Float16

// HostType lists the Go types that map one-to-one onto an array element type.
type HostType interface {
	float32 | float64 | complex64 | complex128 | bool | int32 | uint32 | uint8 | int64 | uint64 | int16 | uint16 | Half
}

// DTypeOf returns the element type backing T.
func DTypeOf[T HostType]() DType {
	var zero T
	switch any(zero).(type) {
	case float32:
		return F32
	case complex64:
		return C32
	case float64:
		return F64
	case complex128:
		return C64
	case bool:
		return B8
	case int32:
		return S32
	case uint32:
		return U32
	case uint8:
		return U8
	case int64:
		return S64
	case uint64:
		return U64
	case int16:
		return S16
	case uint16:
		return U16
	}
	return F16
}

// bytesOf views the backing store of v as raw bytes in host layout.
func bytesOf[T HostType](v []T) []byte {
	if len(v) == 0 {
		return nil
	}
	var zero T
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(v))), len(v)*int(unsafe.Sizeof(zero)))
}
