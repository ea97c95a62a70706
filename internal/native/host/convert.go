package host

import (
	"encoding/binary"
	"math"

	"github.com/x448/float16"

	"github.com/23skdu/arrayfire-go/internal/native"
)

var le = binary.LittleEndian

// decode unpacks n elements of type t from b. im is nil for real types.
func decode(t native.DType, b []byte, n int) (re, im []float64) {
	re = make([]float64, n)
	if t.IsComplex() {
		im = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		switch t {
		case native.F32:
			re[i] = float64(math.Float32frombits(le.Uint32(b[4*i:])))
		case native.F64:
			re[i] = math.Float64frombits(le.Uint64(b[8*i:]))
		case native.C32:
			re[i] = float64(math.Float32frombits(le.Uint32(b[8*i:])))
			im[i] = float64(math.Float32frombits(le.Uint32(b[8*i+4:])))
		case native.C64:
			re[i] = math.Float64frombits(le.Uint64(b[16*i:]))
			im[i] = math.Float64frombits(le.Uint64(b[16*i+8:]))
		case native.B8, native.U8:
			re[i] = float64(b[i])
		case native.S32:
			re[i] = float64(int32(le.Uint32(b[4*i:])))
		case native.U32:
			re[i] = float64(le.Uint32(b[4*i:]))
		case native.S64:
			re[i] = float64(int64(le.Uint64(b[8*i:])))
		case native.U64:
			re[i] = float64(le.Uint64(b[8*i:]))
		case native.S16:
			re[i] = float64(int16(le.Uint16(b[2*i:])))
		case native.U16:
			re[i] = float64(le.Uint16(b[2*i:]))
		case native.F16:
			re[i] = float64(float16.Frombits(le.Uint16(b[2*i:])).Float32())
		}
	}
	return re, im
}

// encode packs the first n elements of re/im into dst as type t.
func encode(t native.DType, re, im []float64, dst []byte, n int) {
	for i := 0; i < n; i++ {
		v := re[i]
		switch t {
		case native.F32:
			le.PutUint32(dst[4*i:], math.Float32bits(float32(v)))
		case native.F64:
			le.PutUint64(dst[8*i:], math.Float64bits(v))
		case native.C32:
			le.PutUint32(dst[8*i:], math.Float32bits(float32(v)))
			le.PutUint32(dst[8*i+4:], math.Float32bits(float32(imagAt(im, i))))
		case native.C64:
			le.PutUint64(dst[16*i:], math.Float64bits(v))
			le.PutUint64(dst[16*i+8:], math.Float64bits(imagAt(im, i)))
		case native.B8:
			if v != 0 {
				dst[i] = 1
			} else {
				dst[i] = 0
			}
		case native.U8:
			dst[i] = uint8(toInt(v))
		case native.S32:
			le.PutUint32(dst[4*i:], uint32(int32(toInt(v))))
		case native.U32:
			le.PutUint32(dst[4*i:], uint32(toInt(v)))
		case native.S64:
			le.PutUint64(dst[8*i:], uint64(toInt(v)))
		case native.U64:
			le.PutUint64(dst[8*i:], toUint(v))
		case native.S16:
			le.PutUint16(dst[2*i:], uint16(int16(toInt(v))))
		case native.U16:
			le.PutUint16(dst[2*i:], uint16(toInt(v)))
		case native.F16:
			le.PutUint16(dst[2*i:], float16.Fromfloat32(float32(v)).Bits())
		}
	}
}

func imagAt(im []float64, i int) float64 {
	if im == nil {
		return 0
	}
	return im[i]
}

func toInt(v float64) int64 {
	switch {
	case math.IsNaN(v):
		return 0
	case v >= math.MaxInt64:
		return math.MaxInt64
	case v <= math.MinInt64:
		return math.MinInt64
	}
	return int64(v)
}

func toUint(v float64) uint64 {
	if v >= math.MaxUint64 {
		return math.MaxUint64
	}
	if v >= math.MaxInt64 {
		return uint64(v)
	}
	return uint64(toInt(v))
}

// quantize rounds v to the value range of t, the way a store of v into an
// element of type t would.
func quantize(t native.DType, v float64) float64 {
	switch t {
	case native.F32, native.C32:
		return float64(float32(v))
	case native.F16:
		return float64(float16.Fromfloat32(float32(v)).Float32())
	case native.B8:
		if v != 0 {
			return 1
		}
		return 0
	case native.U8:
		return float64(uint8(toInt(v)))
	case native.S16:
		return float64(int16(toInt(v)))
	case native.U16:
		return float64(uint16(toInt(v)))
	case native.S32:
		return float64(int32(toInt(v)))
	case native.U32:
		return float64(uint32(toInt(v)))
	case native.S64:
		return float64(toInt(v))
	case native.U64:
		return float64(toUint(v))
	}
	return v
}

func quantizeAll(t native.DType, re, im []float64) {
	for i := range re {
		re[i] = quantize(t, re[i])
	}
	for i := range im {
		im[i] = quantize(t, im[i])
	}
}

func valid(t native.DType) bool { return t >= native.F32 && t <= native.F16 }

func isFloat(t native.DType) bool {
	return t == native.F32 || t == native.F64 || t == native.F16 || t.IsComplex()
}

func isInteger(t native.DType) bool {
	switch t {
	case native.U8, native.S16, native.U16, native.S32, native.U32, native.S64, native.U64:
		return true
	}
	return false
}

func isDouble(t native.DType) bool { return t == native.F64 || t == native.C64 }

// intRank orders the integer types for promotion.
var intRank = map[native.DType]int{
	native.B8: 0, native.U8: 1, native.S16: 2, native.U16: 3,
	native.S32: 4, native.U32: 5, native.S64: 6, native.U64: 7,
}

// promote returns the result type of a binary operation on a and b.
func promote(a, b native.DType) native.DType {
	if a == b {
		return a
	}
	if a.IsComplex() || b.IsComplex() {
		if isDouble(a) || isDouble(b) {
			return native.C64
		}
		return native.C32
	}
	if a == native.F64 || b == native.F64 {
		return native.F64
	}
	if a == native.F32 || b == native.F32 {
		return native.F32
	}
	if a == native.F16 || b == native.F16 {
		return native.F16
	}
	if intRank[a] >= intRank[b] {
		return a
	}
	return b
}

// toComplex returns the complex type of matching precision.
func toComplex(t native.DType) native.DType {
	if isDouble(t) {
		return native.C64
	}
	return native.C32
}

// toReal returns the real type of matching precision.
func toReal(t native.DType) native.DType {
	switch t {
	case native.C32:
		return native.F32
	case native.C64:
		return native.F64
	}
	return t
}

// toFloat is the output type of a floating-point function applied to t.
func toFloat(t native.DType) native.DType {
	if isFloat(t) {
		return t
	}
	return native.F32
}
