// Package native is the foreign-function surface of the ArrayFire C library.
//
// Every entry point of the C headers that the af package exposes is reachable
// through the Lib interface. The cgo implementation (build tag arrayfire) is
// a one-to-one forwarder; other implementations exist so the layer above can
// run without the shared library being present.
//
// Methods return the raw af_err status as a Code. Translating codes into Go
// errors is the caller's job.
package native

import (
	"sync"
	"unsafe"

	"github.com/rs/zerolog/log"
)

// Handle is an opaque native object: af_array, af_features,
// af_random_engine or af_window.
type Handle uintptr

// Code is an af_err status value.
type Code int32

// Status values of af_err.
const (
	Success         Code = 0
	ErrNoMem        Code = 101
	ErrDriver       Code = 102
	ErrRuntime      Code = 103
	ErrInvalidArray Code = 201
	ErrArg          Code = 202
	ErrSize         Code = 203
	ErrType         Code = 204
	ErrDiffType     Code = 205
	ErrBatch        Code = 207
	ErrDevice       Code = 208
	ErrNotSupported Code = 301
	ErrNotConfig    Code = 302
	ErrNonFree      Code = 303
	ErrNoDbl        Code = 401
	ErrNoGfx        Code = 402
	ErrNoHalf       Code = 403
	ErrLoadLib      Code = 501
	ErrLoadSym      Code = 502
	ErrBkndMismatch Code = 503
	ErrInternal     Code = 998
	ErrUnknown      Code = 999
)

// DType is an af_dtype value.
type DType int32

// Values of af_dtype.
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

// Size returns the number of bytes of one element of t.
func (t DType) Size() int {
	switch t {
	case B8, U8:
		return 1
	case S16, U16, F16:
		return 2
	case F32, S32, U32:
		return 4
	case F64, C32, S64, U64:
		return 8
	case C64:
		return 16
	}
	return 0
}

// IsComplex reports whether t is c32 or c64.
func (t DType) IsComplex() bool { return t == C32 || t == C64 }

// Query selects one of the af_is_* predicates.
type Query int

const (
	QueryEmpty Query = iota
	QueryScalar
	QueryRow
	QueryColumn
	QueryVector
	QueryComplex
	QueryReal
	QueryDouble
	QuerySingle
	QueryHalf
	QueryRealFloating
	QueryFloating
	QueryInteger
	QueryBool
	QuerySparse
	QueryLinear
	QueryOwner
	QueryLocked
)

// UnaryOp selects a single-input elementwise function.
type UnaryOp int

const (
	OpAbs UnaryOp = iota
	OpArg
	OpSign
	OpRound
	OpTrunc
	OpFloor
	OpCeil
	OpSin
	OpCos
	OpTan
	OpAsin
	OpAcos
	OpAtan
	OpSinh
	OpCosh
	OpTanh
	OpAsinh
	OpAcosh
	OpAtanh
	OpCplx
	OpReal
	OpImag
	OpConjg
	OpExp
	OpExpm1
	OpErf
	OpErfc
	OpLog
	OpLog1p
	OpLog10
	OpLog2
	OpSqrt
	OpRsqrt
	OpCbrt
	OpFactorial
	OpTgamma
	OpLgamma
	OpIsZero
	OpIsInf
	OpIsNaN
	OpNot
	OpBitNot
	OpSigmoid
	OpPow2
	numUnaryOps
)

// BinaryOp selects a two-input elementwise function.
type BinaryOp int

const (
	OpAdd BinaryOp = iota
	OpSub
	OpMul
	OpDiv
	OpLt
	OpGt
	OpLe
	OpGe
	OpEq
	OpNeq
	OpAnd
	OpOr
	OpBitAnd
	OpBitOr
	OpBitXor
	OpBitShiftL
	OpBitShiftR
	OpMinOf
	OpMaxOf
	OpRem
	OpMod
	OpPow
	OpRoot
	OpAtan2
	OpHypot
	OpCplx2
	numBinaryOps
)

// ReduceOp selects a reduction.
type ReduceOp int

const (
	ReduceSum ReduceOp = iota
	ReduceProduct
	ReduceMin
	ReduceMax
	ReduceAllTrue
	ReduceAnyTrue
	ReduceCount
)

// IndexedOp selects an index-returning reduction.
type IndexedOp int

const (
	IndexedMin IndexedOp = iota
	IndexedMax
)

// Scan operators, matching af_binary_op.
const (
	ScanAdd = 0
	ScanMul = 1
	ScanMin = 2
	ScanMax = 3
)

// SetOp selects a set operation on two arrays.
type SetOp int

const (
	SetUnion SetOp = iota
	SetIntersect
)

// FFTKind is the direction of a complex transform.
type FFTKind int

const (
	Forward FFTKind = iota
	Inverse
)

// MorphOp selects a morphological operator.
type MorphOp int

const (
	Dilate MorphOp = iota
	Erode
	Dilate3
	Erode3
)

// WindowFilter selects a sliding-window image filter.
type WindowFilter int

const (
	MinFilter WindowFilter = iota
	MaxFilter
	MedianFilter
)

// FeatureField selects one of the per-feature arrays of an af_features.
type FeatureField int

const (
	FieldX FeatureField = iota
	FieldY
	FieldScore
	FieldOrientation
	FieldSize
)

// SparseComponent selects one of the component arrays of a sparse array.
type SparseComponent int

const (
	SparseValues SparseComponent = iota
	SparseRowIdx
	SparseColIdx
)

// ColorConv selects a parameterless color conversion.
type ColorConv int

const (
	HSV2RGB ColorConv = iota
	RGB2HSV
)

// Seq mirrors af_seq.
type Seq struct {
	Begin, End, Step float64
}

// Index mirrors af_index_t: either a sequence or an index array.
type Index struct {
	Seq     Seq
	Arr     Handle
	IsSeq   bool
	IsBatch bool
}

// Cell mirrors af_cell.
type Cell struct {
	Row      int
	Col      int
	Title    string
	ColorMap int
}

// DeviceInfo is the result of af_device_info.
type DeviceInfo struct {
	Name     string
	Platform string
	Toolkit  string
	Compute  string
}

// MemInfo is the result of af_device_mem_info.
type MemInfo struct {
	AllocBytes   uint64
	AllocBuffers uint64
	LockBytes    uint64
	LockBuffers  uint64
}

// Lib is the native library surface.
type Lib interface {
	// Name identifies the implementation in logs.
	Name() string

	// errors
	LastError() string
	ErrToString(c Code) string

	// array lifecycle and metadata
	CreateArray(data []byte, dims []int64, t DType) (Handle, Code)
	CreateHandle(dims []int64, t DType) (Handle, Code)
	CreateStridedArray(data []byte, offset int64, dims, strides []int64, t DType, onDevice bool) (Handle, Code)
	DeviceArray(ptr unsafe.Pointer, dims []int64, t DType) (Handle, Code)
	CopyArray(in Handle) (Handle, Code)
	WriteArray(h Handle, data []byte) Code
	GetData(h Handle, dst []byte) Code
	GetScalar(h Handle, dst []byte) Code
	Release(h Handle) Code
	Retain(h Handle) (Handle, Code)
	RefCount(h Handle) (int, Code)
	Eval(h Handle) Code
	EvalMultiple(hs []Handle) Code
	SetManualEval(on bool) Code
	ManualEval() (bool, Code)
	Elements(h Handle) (int64, Code)
	Type(h Handle) (DType, Code)
	Dims(h Handle) ([4]int64, Code)
	NumDims(h Handle) (uint32, Code)
	Is(q Query, h Handle) (bool, Code)
	Strides(h Handle) ([4]int64, Code)
	Offset(h Handle) (int64, Code)
	AllocatedBytes(h Handle) (uint64, Code)
	DevicePtr(h Handle) (unsafe.Pointer, Code)
	LockArray(h Handle) Code
	UnlockArray(h Handle) Code
	SizeOf(t DType) (uint64, Code)

	// backend and device
	SetBackend(b int) Code
	BackendCount() (uint32, Code)
	AvailableBackends() (int, Code)
	ActiveBackend() (int, Code)
	BackendID(h Handle) (int, Code)
	DeviceID(h Handle) (int, Code)
	Info() Code
	Init() Code
	InfoString(verbose bool) (string, Code)
	DeviceInfo() (DeviceInfo, Code)
	DeviceCount() (int, Code)
	DoubleSupport(device int) (bool, Code)
	HalfSupport(device int) (bool, Code)
	SetDevice(device int) Code
	Device() (int, Code)
	Sync(device int) Code
	MemInfo() (MemInfo, Code)
	PrintMemInfo(msg string, device int) Code
	DeviceGC() Code
	SetMemStepSize(bytes uint64) Code
	MemStepSize() (uint64, Code)
	Version() (major, minor, patch int, c Code)
	Revision() string

	// arithmetic
	Unary(op UnaryOp, in Handle) (Handle, Code)
	Binary(op BinaryOp, lhs, rhs Handle, batch bool) (Handle, Code)
	Cast(in Handle, t DType) (Handle, Code)
	Clamp(in, lo, hi Handle, batch bool) (Handle, Code)

	// data
	Constant(v float64, dims []int64, t DType) (Handle, Code)
	ConstantComplex(re, im float64, dims []int64, t DType) (Handle, Code)
	ConstantLong(v int64, dims []int64) (Handle, Code)
	ConstantULong(v uint64, dims []int64) (Handle, Code)
	Range(dims []int64, seqDim int, t DType) (Handle, Code)
	Iota(dims, tile []int64, t DType) (Handle, Code)
	Identity(dims []int64, t DType) (Handle, Code)
	DiagCreate(in Handle, num int) (Handle, Code)
	DiagExtract(in Handle, num int) (Handle, Code)
	Join(dim int, hs []Handle) (Handle, Code)
	Tile(in Handle, reps [4]uint32) (Handle, Code)
	Reorder(in Handle, order [4]uint32) (Handle, Code)
	Shift(in Handle, shifts [4]int32) (Handle, Code)
	Moddims(in Handle, dims []int64) (Handle, Code)
	Flat(in Handle) (Handle, Code)
	Flip(in Handle, dim uint32) (Handle, Code)
	Lower(in Handle, unitDiag bool) (Handle, Code)
	Upper(in Handle, unitDiag bool) (Handle, Code)
	Select(cond, a, b Handle) (Handle, Code)
	SelectScalarR(cond, a Handle, b float64) (Handle, Code)
	SelectScalarL(cond Handle, a float64, b Handle) (Handle, Code)
	Replace(a, cond, b Handle) Code
	ReplaceScalar(a, cond Handle, b float64) Code
	Pad(in Handle, begin, end []int64, border int) (Handle, Code)

	// algorithm
	Reduce(op ReduceOp, in Handle, dim int) (Handle, Code)
	ReduceNaN(op ReduceOp, in Handle, dim int, nanval float64) (Handle, Code)
	ReduceAll(op ReduceOp, in Handle) (re, im float64, c Code)
	ReduceAllNaN(op ReduceOp, in Handle, nanval float64) (re, im float64, c Code)
	ReduceByKey(op ReduceOp, keys, vals Handle, dim int) (Handle, Handle, Code)
	IReduce(op IndexedOp, in Handle, dim int) (Handle, Handle, Code)
	IReduceAll(op IndexedOp, in Handle) (re, im float64, idx uint32, c Code)
	Accum(in Handle, dim int) (Handle, Code)
	Scan(in Handle, dim int, op int, inclusive bool) (Handle, Code)
	ScanByKey(keys, in Handle, dim int, op int, inclusive bool) (Handle, Code)
	Where(in Handle) (Handle, Code)
	Diff1(in Handle, dim int) (Handle, Code)
	Diff2(in Handle, dim int) (Handle, Code)
	Sort(in Handle, dim uint32, asc bool) (Handle, Code)
	SortIndex(in Handle, dim uint32, asc bool) (Handle, Handle, Code)
	SortByKey(keys, vals Handle, dim uint32, asc bool) (Handle, Handle, Code)
	SetUnique(in Handle, isSorted bool) (Handle, Code)
	SetOp(op SetOp, a, b Handle, isUnique bool) (Handle, Code)
	MaxRagged(in, lens Handle, dim int) (Handle, Handle, Code)

	// blas
	Matmul(lhs, rhs Handle, optL, optR int) (Handle, Code)
	Dot(lhs, rhs Handle, optL, optR int) (Handle, Code)
	DotAll(lhs, rhs Handle, optL, optR int) (re, im float64, c Code)
	Transpose(in Handle, conj bool) (Handle, Code)
	TransposeInplace(in Handle, conj bool) Code

	// lapack
	SVD(in Handle) (u, s, vt Handle, c Code)
	SVDInplace(in Handle) (u, s, vt Handle, c Code)
	LU(in Handle) (l, u, piv Handle, c Code)
	LUInplace(in Handle, lapackPiv bool) (Handle, Code)
	QR(in Handle) (q, r, tau Handle, c Code)
	QRInplace(in Handle) (Handle, Code)
	Cholesky(in Handle, upper bool) (Handle, int, Code)
	CholeskyInplace(in Handle, upper bool) (int, Code)
	Solve(a, b Handle, opt int) (Handle, Code)
	SolveLU(a, piv, b Handle, opt int) (Handle, Code)
	Inverse(in Handle, opt int) (Handle, Code)
	Pinverse(in Handle, tol float64, opt int) (Handle, Code)
	Rank(in Handle, tol float64) (uint32, Code)
	Det(in Handle) (re, im float64, c Code)
	Norm(in Handle, typ int, p, q float64) (float64, Code)
	LAPACKAvailable() (bool, Code)

	// signal
	FFT(kind FFTKind, rank int, in Handle, norm float64, odims [3]int64) (Handle, Code)
	FFTInplace(kind FFTKind, rank int, in Handle, norm float64) Code
	FFTR2C(rank int, in Handle, norm float64, pad [3]int64) (Handle, Code)
	FFTC2R(rank int, in Handle, norm float64, isOdd bool) (Handle, Code)
	Approx1(in, pos Handle, method int, offGrid float32) (Handle, Code)
	Approx2(in, pos0, pos1 Handle, method int, offGrid float32) (Handle, Code)
	Convolve(rank int, signal, filter Handle, mode, domain int) (Handle, Code)
	Convolve2Sep(colFilter, rowFilter, signal Handle, mode int) (Handle, Code)
	FFTConvolve(rank int, signal, filter Handle, mode int) (Handle, Code)
	FIR(b, x Handle) (Handle, Code)
	IIR(b, a, x Handle) (Handle, Code)
	Medfilt1(in Handle, width int64, border int) (Handle, Code)
	SetFFTPlanCacheSize(n uint64) Code

	// image
	Gradient(in Handle) (Handle, Handle, Code)
	LoadImage(path string, color bool) (Handle, Code)
	SaveImage(path string, in Handle) Code
	LoadImageNative(path string) (Handle, Code)
	SaveImageNative(path string, in Handle) Code
	ImageIOAvailable() (bool, Code)
	Resize(in Handle, odim0, odim1 int64, method int) (Handle, Code)
	Transform(in, tf Handle, odim0, odim1 int64, method int, inverse bool) (Handle, Code)
	Rotate(in Handle, theta float32, crop bool, method int) (Handle, Code)
	Translate(in Handle, t0, t1 float32, odim0, odim1 int64, method int) (Handle, Code)
	Scale(in Handle, s0, s1 float32, odim0, odim1 int64, method int) (Handle, Code)
	Skew(in Handle, s0, s1 float32, odim0, odim1 int64, method int, inverse bool) (Handle, Code)
	Histogram(in Handle, nbins uint32, min, max float64) (Handle, Code)
	Morph(op MorphOp, in, mask Handle) (Handle, Code)
	Bilateral(in Handle, spatial, chromatic float32, color bool) (Handle, Code)
	MeanShift(in Handle, spatial, chromatic float32, iter uint32, color bool) (Handle, Code)
	WindowFilter(f WindowFilter, in Handle, length, width int64, border int) (Handle, Code)
	Regions(in Handle, conn int, t DType) (Handle, Code)
	Sobel(in Handle, kerSize uint32) (Handle, Handle, Code)
	RGB2Gray(in Handle, r, g, b float32) (Handle, Code)
	Gray2RGB(in Handle, r, g, b float32) (Handle, Code)
	HistEqual(in, hist Handle) (Handle, Code)
	GaussianKernel(rows, cols int, sigmaR, sigmaC float64) (Handle, Code)
	ColorConvert(conv ColorConv, in Handle) (Handle, Code)
	ColorSpace(in Handle, to, from int) (Handle, Code)
	Unwrap(in Handle, wx, wy, sx, sy, px, py int64, isColumn bool) (Handle, Code)
	Wrap(in Handle, ox, oy, wx, wy, sx, sy, px, py int64, isColumn bool) (Handle, Code)
	SAT(in Handle) (Handle, Code)
	YCbCr2RGB(in Handle, std int) (Handle, Code)
	RGB2YCbCr(in Handle, std int) (Handle, Code)
	Moments(in Handle, moment int) (Handle, Code)
	MomentsAll(in Handle, moment int) ([]float64, Code)
	Canny(in Handle, thrType int, low, high float32, sobelWindow uint32, fast bool) (Handle, Code)
	AnisotropicDiffusion(in Handle, dt, k float32, iters uint32, flux, eq int) (Handle, Code)
	ConfidenceCC(in, seedx, seedy Handle, radius, multiplier uint32, iter int, segmented float64) (Handle, Code)
	IterativeDeconv(in, ker Handle, iters uint32, relax float32, algo int) (Handle, Code)
	InverseDeconv(in, psf Handle, gamma float32, algo int) (Handle, Code)

	// vision
	CreateFeatures(n int64) (Handle, Code)
	RetainFeatures(f Handle) (Handle, Code)
	ReleaseFeatures(f Handle) Code
	FeaturesNum(f Handle) (int64, Code)
	FeaturesField(f Handle, field FeatureField) (Handle, Code)
	FAST(in Handle, thr float32, arcLength uint32, nonMax bool, ratio float32, edge uint32) (Handle, Code)
	Harris(in Handle, maxCorners uint32, minResponse, sigma float32, blockSize uint32, k float32) (Handle, Code)
	ORB(in Handle, fastThr float32, maxFeat uint32, sclFctr float32, levels uint32, blur bool) (Handle, Handle, Code)
	SIFT(in Handle, layers uint32, contrast, edge, sigma float32, double bool, intensity, ratio float32) (Handle, Handle, Code)
	GLOH(in Handle, layers uint32, contrast, edge, sigma float32, double bool, intensity, ratio float32) (Handle, Handle, Code)
	HammingMatcher(query, train Handle, distDim int64, nDist uint32) (Handle, Handle, Code)
	NearestNeighbour(query, train Handle, distDim int64, nDist uint32, mt int) (Handle, Handle, Code)
	MatchTemplate(search, tmpl Handle, mt int) (Handle, Code)
	SUSAN(in Handle, radius uint32, diff, geom, ratio float32, edge uint32) (Handle, Code)
	DoG(in Handle, r1, r2 int) (Handle, Code)
	Homography(xs, ys, xd, yd Handle, htype int, inlierThr float32, iters uint32, t DType) (Handle, int, Code)

	// random
	CreateRandomEngine(typ int, seed uint64) (Handle, Code)
	RetainRandomEngine(e Handle) (Handle, Code)
	ReleaseRandomEngine(e Handle) Code
	RandomEngineSetType(e Handle, typ int) Code
	RandomEngineType(e Handle) (int, Code)
	RandomEngineSetSeed(e Handle, seed uint64) Code
	RandomEngineSeed(e Handle) (uint64, Code)
	DefaultRandomEngine() (Handle, Code)
	SetDefaultRandomEngineType(typ int) Code
	RandomUniform(dims []int64, t DType, e Handle) (Handle, Code)
	RandomNormal(dims []int64, t DType, e Handle) (Handle, Code)
	Randu(dims []int64, t DType) (Handle, Code)
	Randn(dims []int64, t DType) (Handle, Code)
	SetSeed(seed uint64) Code
	Seed() (uint64, Code)

	// sparse
	CreateSparse(rows, cols int64, vals, rowIdx, colIdx Handle, storage int) (Handle, Code)
	CreateSparseFromHost(rows, cols, nnz int64, vals []byte, rowIdx, colIdx []int32, t DType, storage int) (Handle, Code)
	SparseFromDense(dense Handle, storage int) (Handle, Code)
	SparseConvertTo(in Handle, storage int) (Handle, Code)
	SparseToDense(in Handle) (Handle, Code)
	SparseInfo(in Handle) (vals, rowIdx, colIdx Handle, storage int, c Code)
	SparseComponent(in Handle, comp SparseComponent) (Handle, Code)
	SparseNNZ(in Handle) (int64, Code)
	SparseStorage(in Handle) (int, Code)

	// statistics
	Mean(in Handle, dim int64) (Handle, Code)
	MeanWeighted(in, w Handle, dim int64) (Handle, Code)
	Var(in Handle, bias int, dim int64) (Handle, Code)
	VarWeighted(in, w Handle, dim int64) (Handle, Code)
	MeanVar(in, w Handle, bias int, dim int64) (Handle, Handle, Code)
	Stdev(in Handle, bias int, dim int64) (Handle, Code)
	Cov(x, y Handle, bias int) (Handle, Code)
	Median(in Handle, dim int64) (Handle, Code)
	MeanAll(in Handle) (re, im float64, c Code)
	MeanAllWeighted(in, w Handle) (re, im float64, c Code)
	VarAll(in Handle, bias int) (re, im float64, c Code)
	VarAllWeighted(in, w Handle) (re, im float64, c Code)
	StdevAll(in Handle, bias int) (re, im float64, c Code)
	MedianAll(in Handle) (re, im float64, c Code)
	Corrcoef(x, y Handle) (re, im float64, c Code)
	TopK(in Handle, k, dim int, order int) (Handle, Handle, Code)

	// indexing
	Index(in Handle, seqs []Seq) (Handle, Code)
	Lookup(in, idx Handle, dim uint32) (Handle, Code)
	AssignSeq(lhs Handle, seqs []Seq, rhs Handle) (Handle, Code)
	IndexGen(in Handle, idx []Index) (Handle, Code)
	AssignGen(lhs Handle, idx []Index, rhs Handle) (Handle, Code)

	// graphics
	CreateWindow(width, height int, title string) (Handle, Code)
	DestroyWindow(w Handle) Code
	SetPosition(w Handle, x, y uint32) Code
	SetTitle(w Handle, title string) Code
	SetSize(w Handle, width, height uint32) Code
	SetVisibility(w Handle, visible bool) Code
	Grid(w Handle, rows, cols int) Code
	Show(w Handle) Code
	IsWindowClosed(w Handle) (bool, Code)
	DrawImage(w, in Handle, cell *Cell) Code
	DrawPlot2(w, x, y Handle, cell *Cell) Code
	DrawPlot3(w, x, y, z Handle, cell *Cell) Code
	DrawPlotN(w, p Handle, cell *Cell) Code
	DrawScatter2(w, x, y Handle, marker int, cell *Cell) Code
	DrawScatter3(w, x, y, z Handle, marker int, cell *Cell) Code
	DrawScatterN(w, p Handle, marker int, cell *Cell) Code
	DrawHist(w, x Handle, min, max float64, cell *Cell) Code
	DrawSurface(w, xv, yv, s Handle, cell *Cell) Code
	DrawVectorField2(w, xp, yp, xd, yd Handle, cell *Cell) Code
	DrawVectorFieldN(w, points, dirs Handle, cell *Cell) Code
	SetAxesLimitsCompute(w, x, y, z Handle, exact bool, cell *Cell) Code
	SetAxesLimits2(w Handle, xmin, xmax, ymin, ymax float32, exact bool, cell *Cell) Code
	SetAxesLimits3(w Handle, xmin, xmax, ymin, ymax, zmin, zmax float32, exact bool, cell *Cell) Code
	SetAxesTitles(w Handle, x, y, z string, cell *Cell) Code
	SetAxesLabelFormat(w Handle, x, y, z string, cell *Cell) Code

	// util
	PrintArray(h Handle, name string, precision int) Code
	ArrayToString(name string, h Handle, precision int, transpose bool) (string, Code)
	SaveArray(key string, h Handle, file string, appendTo bool) (int, Code)
	ReadArrayIndex(file string, index uint32) (Handle, Code)
	ReadArrayKey(file, key string) (Handle, Code)
	ReadArrayKeyCheck(file, key string) (int, Code)
}

var (
	mu      sync.RWMutex
	current Lib = Unavailable()
)

// Use installs l as the process-wide library. A nil l restores the
// unavailable stub.
func Use(l Lib) {
	if l == nil {
		l = Unavailable()
	}
	mu.Lock()
	current = l
	mu.Unlock()
	log.Debug().Str("lib", l.Name()).Msg("native library registered")
}

// Current returns the registered library.
func Current() Lib {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// Linked reports whether the real ArrayFire library is compiled in.
func Linked() bool { return linked }
