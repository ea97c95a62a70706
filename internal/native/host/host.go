// Package host is a pure Go implementation of a subset of native.Lib.
//
// It stores every array as float64 planes on the Go heap and evaluates
// eagerly. It exists so that the af package and its callers can be
// exercised without the ArrayFire shared library; operations it does not
// provide fail with native.ErrNotSupported.
package host

import (
	"fmt"
	"os"
	"runtime"
	"strings"
	"sync"

	"github.com/23skdu/arrayfire-go/internal/cache"
	"github.com/23skdu/arrayfire-go/internal/codec"
	"github.com/23skdu/arrayfire-go/internal/native"
)

// Check interface compliance
var _ native.Lib = (*Lib)(nil)

const (
	versionMajor = 3
	versionMinor = 9
	versionPatch = 0

	backendCPU      = 1
	defaultStepSize = 1024
)

// buffer is the storage shared by retained handles.
type buffer struct {
	re, im []float64
	refs   int
	locked bool
}

type array struct {
	dims  [4]int64
	dtype native.DType
	buf   *buffer
}

func (a *array) elements() int64 { return a.dims[0] * a.dims[1] * a.dims[2] * a.dims[3] }

func (a *array) n() int { return int(a.elements()) }

func (a *array) bytes() uint64 { return uint64(a.elements()) * uint64(a.dtype.Size()) }

// Lib is the host reference library.
type Lib struct {
	native.Unimplemented

	mu       sync.Mutex
	arrays   map[native.Handle]*array
	engines  map[native.Handle]*engine
	next     native.Handle
	lastErr  string
	manual   bool
	stepSize uint64
	files    *cache.MapCache[[]codec.Snapshot]

	defaultEngine native.Handle
}

// New returns an empty host library.
func New() *Lib {
	l := &Lib{
		Unimplemented: native.Unimplemented{Code: native.ErrNotSupported, Label: "host"},
		arrays:        make(map[native.Handle]*array),
		engines:       make(map[native.Handle]*engine),
		stepSize:      defaultStepSize,
		files:         cache.NewMapCache[[]codec.Snapshot](),
	}
	l.defaultEngine = l.newEngine(enginePhilox, 0)
	return l
}

func (l *Lib) Name() string { return "host" }

// Live returns the number of unreleased array handles.
func (l *Lib) Live() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.arrays)
}

// fail records a message for LastError and returns c. Callers hold l.mu.
func (l *Lib) fail(c native.Code, format string, args ...any) native.Code {
	l.lastErr = fmt.Sprintf(format, args...)
	return c
}

func (l *Lib) handle() native.Handle {
	l.next++
	return l.next
}

// put registers a and returns its handle. Callers hold l.mu.
func (l *Lib) put(a *array) native.Handle {
	a.buf.refs++
	h := l.handle()
	l.arrays[h] = a
	return h
}

// get resolves h. Callers hold l.mu.
func (l *Lib) get(h native.Handle) (*array, native.Code) {
	a, ok := l.arrays[h]
	if !ok {
		return nil, l.fail(native.ErrInvalidArray, "invalid array handle %d", h)
	}
	return a, native.Success
}

func newArray(dims [4]int64, t native.DType) *array {
	n := dims[0] * dims[1] * dims[2] * dims[3]
	b := &buffer{re: make([]float64, n)}
	if t.IsComplex() {
		b.im = make([]float64, n)
	}
	return &array{dims: dims, dtype: t, buf: b}
}

// fromPlanes wraps computed planes; values are quantized to t.
func fromPlanes(dims [4]int64, t native.DType, re, im []float64) *array {
	if t.IsComplex() && im == nil {
		im = make([]float64, len(re))
	}
	if !t.IsComplex() {
		im = nil
	}
	quantizeAll(t, re, im)
	return &array{dims: dims, dtype: t, buf: &buffer{re: re, im: im}}
}

func toDims(d []int64) ([4]int64, native.Code) {
	out := [4]int64{1, 1, 1, 1}
	if len(d) == 0 || len(d) > 4 {
		return out, native.ErrArg
	}
	for i, v := range d {
		if v < 0 {
			return out, native.ErrSize
		}
		out[i] = v
	}
	return out, native.Success
}

func (l *Lib) LastError() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	msg := l.lastErr
	l.lastErr = ""
	return msg
}

func (l *Lib) ErrToString(c native.Code) string { return native.Describe(c) }

func (l *Lib) CreateArray(data []byte, dims []int64, t native.DType) (native.Handle, native.Code) {
	l.mu.Lock()
	defer l.mu.Unlock()
	d, c := toDims(dims)
	if c != native.Success {
		return 0, l.fail(c, "invalid dimensions %v", dims)
	}
	if !valid(t) {
		return 0, l.fail(native.ErrType, "invalid type %d", t)
	}
	a := newArray(d, t)
	if len(data) < a.n()*t.Size() {
		return 0, l.fail(native.ErrSize, "need %d bytes, got %d", a.n()*t.Size(), len(data))
	}
	a.buf.re, a.buf.im = decode(t, data, a.n())
	return l.put(a), native.Success
}

func (l *Lib) CreateHandle(dims []int64, t native.DType) (native.Handle, native.Code) {
	l.mu.Lock()
	defer l.mu.Unlock()
	d, c := toDims(dims)
	if c != native.Success {
		return 0, l.fail(c, "invalid dimensions %v", dims)
	}
	if !valid(t) {
		return 0, l.fail(native.ErrType, "invalid type %d", t)
	}
	return l.put(newArray(d, t)), native.Success
}

func (l *Lib) CreateStridedArray(data []byte, offset int64, dims, strides []int64, t native.DType, onDevice bool) (native.Handle, native.Code) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if onDevice {
		return 0, l.fail(native.ErrNotSupported, "host library has no device memory")
	}
	d, c := toDims(dims)
	if c != native.Success {
		return 0, l.fail(c, "invalid dimensions %v", dims)
	}
	s, c := toDims(strides)
	if c != native.Success || len(strides) != len(dims) {
		return 0, l.fail(native.ErrArg, "invalid strides %v", strides)
	}
	if !valid(t) {
		return 0, l.fail(native.ErrType, "invalid type %d", t)
	}
	last := offset
	for i := range d {
		if d[i] > 0 {
			last += (d[i] - 1) * s[i]
		}
	}
	if int(last+1)*t.Size() > len(data) {
		return 0, l.fail(native.ErrSize, "strided view exceeds %d bytes", len(data))
	}
	sre, sim := decode(t, data, int(last+1))
	a := newArray(d, t)
	i := 0
	for i3 := int64(0); i3 < d[3]; i3++ {
		for i2 := int64(0); i2 < d[2]; i2++ {
			for i1 := int64(0); i1 < d[1]; i1++ {
				for i0 := int64(0); i0 < d[0]; i0++ {
					src := offset + i0*s[0] + i1*s[1] + i2*s[2] + i3*s[3]
					a.buf.re[i] = sre[src]
					if sim != nil {
						a.buf.im[i] = sim[src]
					}
					i++
				}
			}
		}
	}
	return l.put(a), native.Success
}

func (l *Lib) CopyArray(in native.Handle) (native.Handle, native.Code) {
	l.mu.Lock()
	defer l.mu.Unlock()
	a, c := l.get(in)
	if c != native.Success {
		return 0, c
	}
	cp := newArray(a.dims, a.dtype)
	copy(cp.buf.re, a.buf.re)
	copy(cp.buf.im, a.buf.im)
	return l.put(cp), native.Success
}

func (l *Lib) WriteArray(h native.Handle, data []byte) native.Code {
	l.mu.Lock()
	defer l.mu.Unlock()
	a, c := l.get(h)
	if c != native.Success {
		return c
	}
	if uint64(len(data)) > a.bytes() {
		return l.fail(native.ErrSize, "write of %d bytes exceeds array size %d", len(data), a.bytes())
	}
	n := len(data) / a.dtype.Size()
	re, im := decode(a.dtype, data, n)
	copy(a.buf.re, re)
	copy(a.buf.im, im)
	return native.Success
}

func (l *Lib) GetData(h native.Handle, dst []byte) native.Code {
	l.mu.Lock()
	defer l.mu.Unlock()
	a, c := l.get(h)
	if c != native.Success {
		return c
	}
	if uint64(len(dst)) < a.bytes() {
		return l.fail(native.ErrSize, "destination holds %d bytes, need %d", len(dst), a.bytes())
	}
	encode(a.dtype, a.buf.re, a.buf.im, dst, a.n())
	return native.Success
}

func (l *Lib) GetScalar(h native.Handle, dst []byte) native.Code {
	l.mu.Lock()
	defer l.mu.Unlock()
	a, c := l.get(h)
	if c != native.Success {
		return c
	}
	if a.n() == 0 || len(dst) < a.dtype.Size() {
		return l.fail(native.ErrSize, "no scalar to read")
	}
	encode(a.dtype, a.buf.re, a.buf.im, dst, 1)
	return native.Success
}

func (l *Lib) Release(h native.Handle) native.Code {
	l.mu.Lock()
	defer l.mu.Unlock()
	a, c := l.get(h)
	if c != native.Success {
		return c
	}
	delete(l.arrays, h)
	a.buf.refs--
	return native.Success
}

func (l *Lib) Retain(h native.Handle) (native.Handle, native.Code) {
	l.mu.Lock()
	defer l.mu.Unlock()
	a, c := l.get(h)
	if c != native.Success {
		return 0, c
	}
	view := *a
	return l.put(&view), native.Success
}

func (l *Lib) RefCount(h native.Handle) (int, native.Code) {
	l.mu.Lock()
	defer l.mu.Unlock()
	a, c := l.get(h)
	if c != native.Success {
		return 0, c
	}
	return a.buf.refs, native.Success
}

func (l *Lib) Eval(h native.Handle) native.Code {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, c := l.get(h)
	return c
}

func (l *Lib) EvalMultiple(hs []native.Handle) native.Code {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, h := range hs {
		if _, c := l.get(h); c != native.Success {
			return c
		}
	}
	return native.Success
}

func (l *Lib) SetManualEval(on bool) native.Code {
	l.mu.Lock()
	l.manual = on
	l.mu.Unlock()
	return native.Success
}

func (l *Lib) ManualEval() (bool, native.Code) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.manual, native.Success
}

func (l *Lib) Elements(h native.Handle) (int64, native.Code) {
	l.mu.Lock()
	defer l.mu.Unlock()
	a, c := l.get(h)
	if c != native.Success {
		return 0, c
	}
	return a.elements(), native.Success
}

func (l *Lib) Type(h native.Handle) (native.DType, native.Code) {
	l.mu.Lock()
	defer l.mu.Unlock()
	a, c := l.get(h)
	if c != native.Success {
		return 0, c
	}
	return a.dtype, native.Success
}

func (l *Lib) Dims(h native.Handle) ([4]int64, native.Code) {
	l.mu.Lock()
	defer l.mu.Unlock()
	a, c := l.get(h)
	if c != native.Success {
		return [4]int64{}, c
	}
	return a.dims, native.Success
}

func numDims(d [4]int64) uint32 {
	if d[0]*d[1]*d[2]*d[3] == 0 {
		return 0
	}
	n := uint32(1)
	for i := 3; i > 0; i-- {
		if d[i] != 1 {
			n = uint32(i + 1)
			break
		}
	}
	return n
}

func (l *Lib) NumDims(h native.Handle) (uint32, native.Code) {
	l.mu.Lock()
	defer l.mu.Unlock()
	a, c := l.get(h)
	if c != native.Success {
		return 0, c
	}
	return numDims(a.dims), native.Success
}

func (l *Lib) Is(q native.Query, h native.Handle) (bool, native.Code) {
	l.mu.Lock()
	defer l.mu.Unlock()
	a, c := l.get(h)
	if c != native.Success {
		return false, c
	}
	d, t := a.dims, a.dtype
	switch q {
	case native.QueryEmpty:
		return a.elements() == 0, native.Success
	case native.QueryScalar:
		return a.elements() == 1, native.Success
	case native.QueryRow:
		return d[0] == 1 && d[1] >= 1 && d[2] == 1 && d[3] == 1, native.Success
	case native.QueryColumn:
		return d[0] >= 1 && d[1] == 1 && d[2] == 1 && d[3] == 1, native.Success
	case native.QueryVector:
		n := 0
		for _, v := range d {
			if v == 0 {
				return false, native.Success
			}
			if v != 1 {
				n++
			}
		}
		return n == 1, native.Success
	case native.QueryComplex:
		return t.IsComplex(), native.Success
	case native.QueryReal:
		return !t.IsComplex(), native.Success
	case native.QueryDouble:
		return isDouble(t), native.Success
	case native.QuerySingle:
		return t == native.F32 || t == native.C32, native.Success
	case native.QueryHalf:
		return t == native.F16, native.Success
	case native.QueryRealFloating:
		return t == native.F16 || t == native.F32 || t == native.F64, native.Success
	case native.QueryFloating:
		return isFloat(t), native.Success
	case native.QueryInteger:
		return isInteger(t), native.Success
	case native.QueryBool:
		return t == native.B8, native.Success
	case native.QuerySparse:
		return false, native.Success
	case native.QueryLinear, native.QueryOwner:
		return true, native.Success
	case native.QueryLocked:
		return a.buf.locked, native.Success
	}
	return false, l.fail(native.ErrArg, "unknown query %d", q)
}

func (l *Lib) Strides(h native.Handle) ([4]int64, native.Code) {
	l.mu.Lock()
	defer l.mu.Unlock()
	a, c := l.get(h)
	if c != native.Success {
		return [4]int64{}, c
	}
	d := a.dims
	return [4]int64{1, d[0], d[0] * d[1], d[0] * d[1] * d[2]}, native.Success
}

func (l *Lib) Offset(h native.Handle) (int64, native.Code) {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, c := l.get(h)
	return 0, c
}

func (l *Lib) AllocatedBytes(h native.Handle) (uint64, native.Code) {
	l.mu.Lock()
	defer l.mu.Unlock()
	a, c := l.get(h)
	if c != native.Success {
		return 0, c
	}
	return a.bytes(), native.Success
}

func (l *Lib) LockArray(h native.Handle) native.Code {
	l.mu.Lock()
	defer l.mu.Unlock()
	a, c := l.get(h)
	if c != native.Success {
		return c
	}
	a.buf.locked = true
	return native.Success
}

func (l *Lib) UnlockArray(h native.Handle) native.Code {
	l.mu.Lock()
	defer l.mu.Unlock()
	a, c := l.get(h)
	if c != native.Success {
		return c
	}
	a.buf.locked = false
	return native.Success
}

func (l *Lib) SizeOf(t native.DType) (uint64, native.Code) {
	if !valid(t) {
		l.mu.Lock()
		defer l.mu.Unlock()
		return 0, l.fail(native.ErrArg, "invalid type %d", t)
	}
	return uint64(t.Size()), native.Success
}

func (l *Lib) SetBackend(b int) native.Code {
	if b == 0 || b == backendCPU {
		return native.Success
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.fail(native.ErrLoadLib, "backend %d is not available in the host library", b)
}

func (l *Lib) BackendCount() (uint32, native.Code)    { return 1, native.Success }
func (l *Lib) AvailableBackends() (int, native.Code) { return backendCPU, native.Success }
func (l *Lib) ActiveBackend() (int, native.Code)     { return backendCPU, native.Success }

func (l *Lib) BackendID(h native.Handle) (int, native.Code) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, c := l.get(h); c != native.Success {
		return 0, c
	}
	return backendCPU, native.Success
}

func (l *Lib) DeviceID(h native.Handle) (int, native.Code) {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, c := l.get(h)
	return 0, c
}

func (l *Lib) Info() native.Code {
	s, _ := l.InfoString(false)
	fmt.Fprint(os.Stdout, s)
	return native.Success
}

func (l *Lib) Init() native.Code { return native.Success }

func (l *Lib) InfoString(verbose bool) (string, native.Code) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "ArrayFire v%d.%d.%d (host reference, %s/%s)\n",
		versionMajor, versionMinor, versionPatch, runtime.GOOS, runtime.GOARCH)
	fmt.Fprintf(&sb, "[0] %s: %d logical CPUs\n", runtime.Version(), runtime.NumCPU())
	if verbose {
		l.mu.Lock()
		fmt.Fprintf(&sb, "live arrays: %d\n", len(l.arrays))
		l.mu.Unlock()
	}
	return sb.String(), native.Success
}

func (l *Lib) DeviceInfo() (native.DeviceInfo, native.Code) {
	return native.DeviceInfo{
		Name:     "host",
		Platform: runtime.Version(),
		Toolkit:  "gonum",
		Compute:  runtime.GOARCH,
	}, native.Success
}

func (l *Lib) DeviceCount() (int, native.Code) { return 1, native.Success }

func (l *Lib) checkDevice(device int) native.Code {
	if device == 0 || device == -1 {
		return native.Success
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.fail(native.ErrDevice, "device %d does not exist", device)
}

func (l *Lib) DoubleSupport(device int) (bool, native.Code) {
	c := l.checkDevice(device)
	return c == native.Success, c
}

func (l *Lib) HalfSupport(device int) (bool, native.Code) {
	c := l.checkDevice(device)
	return c == native.Success, c
}

func (l *Lib) SetDevice(device int) native.Code {
	if device < 0 {
		l.mu.Lock()
		defer l.mu.Unlock()
		return l.fail(native.ErrDevice, "device %d does not exist", device)
	}
	return l.checkDevice(device)
}

func (l *Lib) Device() (int, native.Code) { return 0, native.Success }

func (l *Lib) Sync(device int) native.Code { return l.checkDevice(device) }

func (l *Lib) MemInfo() (native.MemInfo, native.Code) {
	l.mu.Lock()
	defer l.mu.Unlock()
	var m native.MemInfo
	seen := make(map[*buffer]bool)
	for _, a := range l.arrays {
		if seen[a.buf] {
			continue
		}
		seen[a.buf] = true
		m.AllocBytes += a.bytes()
		m.AllocBuffers++
		if a.buf.locked {
			m.LockBytes += a.bytes()
			m.LockBuffers++
		}
	}
	return m, native.Success
}

func (l *Lib) PrintMemInfo(msg string, device int) native.Code {
	if c := l.checkDevice(device); c != native.Success {
		return c
	}
	m, _ := l.MemInfo()
	fmt.Fprintf(os.Stdout, "%s\nallocated: %d bytes in %d buffers, locked: %d bytes in %d buffers\n",
		msg, m.AllocBytes, m.AllocBuffers, m.LockBytes, m.LockBuffers)
	return native.Success
}

func (l *Lib) DeviceGC() native.Code {
	runtime.GC()
	return native.Success
}

func (l *Lib) SetMemStepSize(bytes uint64) native.Code {
	l.mu.Lock()
	l.stepSize = bytes
	l.mu.Unlock()
	return native.Success
}

func (l *Lib) MemStepSize() (uint64, native.Code) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.stepSize, native.Success
}

func (l *Lib) Version() (major, minor, patch int, c native.Code) {
	return versionMajor, versionMinor, versionPatch, native.Success
}

func (l *Lib) Revision() string { return "host" }
