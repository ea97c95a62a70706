package native

import "unsafe"

// Unimplemented answers every Lib method with Code. Embed it to provide a
// partial Lib; methods that are not overridden fail with Code.
type Unimplemented struct {
	Code  Code
	Label string
}

// Unavailable is the Lib used when the ArrayFire shared library is not
// linked into the binary.
func Unavailable() Lib {
	return Unimplemented{Code: ErrLoadLib, Label: "arrayfire not linked"}
}

func (un Unimplemented) Name() string {
	if un.Label == "" {
		return "unimplemented"
	}
	return un.Label
}

func (un Unimplemented) LastError() string {
	return un.Label + ": " + describe(un.Code)
}

func (un Unimplemented) ErrToString(c Code) string {
	return describe(c)
}

func (un Unimplemented) CreateArray(data []byte, dims []int64, t DType) (Handle, Code) {
	return 0, un.Code
}

func (un Unimplemented) CreateHandle(dims []int64, t DType) (Handle, Code) {
	return 0, un.Code
}

func (un Unimplemented) CreateStridedArray(data []byte, offset int64, dims, strides []int64, t DType, onDevice bool) (Handle, Code) {
	return 0, un.Code
}

func (un Unimplemented) DeviceArray(ptr unsafe.Pointer, dims []int64, t DType) (Handle, Code) {
	return 0, un.Code
}

func (un Unimplemented) CopyArray(in Handle) (Handle, Code) {
	return 0, un.Code
}

func (un Unimplemented) WriteArray(h Handle, data []byte) Code {
	return un.Code
}

func (un Unimplemented) GetData(h Handle, dst []byte) Code {
	return un.Code
}

func (un Unimplemented) GetScalar(h Handle, dst []byte) Code {
	return un.Code
}

func (un Unimplemented) Release(h Handle) Code {
	return un.Code
}

func (un Unimplemented) Retain(h Handle) (Handle, Code) {
	return 0, un.Code
}

func (un Unimplemented) RefCount(h Handle) (int, Code) {
	return 0, un.Code
}

func (un Unimplemented) Eval(h Handle) Code {
	return un.Code
}

func (un Unimplemented) EvalMultiple(hs []Handle) Code {
	return un.Code
}

func (un Unimplemented) SetManualEval(on bool) Code {
	return un.Code
}

func (un Unimplemented) ManualEval() (bool, Code) {
	return false, un.Code
}

func (un Unimplemented) Elements(h Handle) (int64, Code) {
	return 0, un.Code
}

func (un Unimplemented) Type(h Handle) (DType, Code) {
	return 0, un.Code
}

func (un Unimplemented) Dims(h Handle) ([4]int64, Code) {
	return [4]int64{}, un.Code
}

func (un Unimplemented) NumDims(h Handle) (uint32, Code) {
	return 0, un.Code
}

func (un Unimplemented) Is(q Query, h Handle) (bool, Code) {
	return false, un.Code
}

func (un Unimplemented) Strides(h Handle) ([4]int64, Code) {
	return [4]int64{}, un.Code
}

func (un Unimplemented) Offset(h Handle) (int64, Code) {
	return 0, un.Code
}

func (un Unimplemented) AllocatedBytes(h Handle) (uint64, Code) {
	return 0, un.Code
}

func (un Unimplemented) DevicePtr(h Handle) (unsafe.Pointer, Code) {
	return nil, un.Code
}

func (un Unimplemented) LockArray(h Handle) Code {
	return un.Code
}

func (un Unimplemented) UnlockArray(h Handle) Code {
	return un.Code
}

func (un Unimplemented) SizeOf(t DType) (uint64, Code) {
	return 0, un.Code
}

func (un Unimplemented) SetBackend(b int) Code {
	return un.Code
}

func (un Unimplemented) BackendCount() (uint32, Code) {
	return 0, un.Code
}

func (un Unimplemented) AvailableBackends() (int, Code) {
	return 0, un.Code
}

func (un Unimplemented) ActiveBackend() (int, Code) {
	return 0, un.Code
}

func (un Unimplemented) BackendID(h Handle) (int, Code) {
	return 0, un.Code
}

func (un Unimplemented) DeviceID(h Handle) (int, Code) {
	return 0, un.Code
}

func (un Unimplemented) Info() Code {
	return un.Code
}

func (un Unimplemented) Init() Code {
	return un.Code
}

func (un Unimplemented) InfoString(verbose bool) (string, Code) {
	return "", un.Code
}

func (un Unimplemented) DeviceInfo() (DeviceInfo, Code) {
	return DeviceInfo{}, un.Code
}

func (un Unimplemented) DeviceCount() (int, Code) {
	return 0, un.Code
}

func (un Unimplemented) DoubleSupport(device int) (bool, Code) {
	return false, un.Code
}

func (un Unimplemented) HalfSupport(device int) (bool, Code) {
	return false, un.Code
}

func (un Unimplemented) SetDevice(device int) Code {
	return un.Code
}

func (un Unimplemented) Device() (int, Code) {
	return 0, un.Code
}

func (un Unimplemented) Sync(device int) Code {
	return un.Code
}

func (un Unimplemented) MemInfo() (MemInfo, Code) {
	return MemInfo{}, un.Code
}

func (un Unimplemented) PrintMemInfo(msg string, device int) Code {
	return un.Code
}

func (un Unimplemented) DeviceGC() Code {
	return un.Code
}

func (un Unimplemented) SetMemStepSize(bytes uint64) Code {
	return un.Code
}

func (un Unimplemented) MemStepSize() (uint64, Code) {
	return 0, un.Code
}

func (un Unimplemented) Version() (major, minor, patch int, c Code) {
	return 0, 0, 0, un.Code
}

func (un Unimplemented) Revision() string {
	return ""
}

func (un Unimplemented) Unary(op UnaryOp, in Handle) (Handle, Code) {
	return 0, un.Code
}

func (un Unimplemented) Binary(op BinaryOp, lhs, rhs Handle, batch bool) (Handle, Code) {
	return 0, un.Code
}

func (un Unimplemented) Cast(in Handle, t DType) (Handle, Code) {
	return 0, un.Code
}

func (un Unimplemented) Clamp(in, lo, hi Handle, batch bool) (Handle, Code) {
	return 0, un.Code
}

func (un Unimplemented) Constant(v float64, dims []int64, t DType) (Handle, Code) {
	return 0, un.Code
}

func (un Unimplemented) ConstantComplex(re, im float64, dims []int64, t DType) (Handle, Code) {
	return 0, un.Code
}

func (un Unimplemented) ConstantLong(v int64, dims []int64) (Handle, Code) {
	return 0, un.Code
}

func (un Unimplemented) ConstantULong(v uint64, dims []int64) (Handle, Code) {
	return 0, un.Code
}

func (un Unimplemented) Range(dims []int64, seqDim int, t DType) (Handle, Code) {
	return 0, un.Code
}

func (un Unimplemented) Iota(dims, tile []int64, t DType) (Handle, Code) {
	return 0, un.Code
}

func (un Unimplemented) Identity(dims []int64, t DType) (Handle, Code) {
	return 0, un.Code
}

func (un Unimplemented) DiagCreate(in Handle, num int) (Handle, Code) {
	return 0, un.Code
}

func (un Unimplemented) DiagExtract(in Handle, num int) (Handle, Code) {
	return 0, un.Code
}

func (un Unimplemented) Join(dim int, hs []Handle) (Handle, Code) {
	return 0, un.Code
}

func (un Unimplemented) Tile(in Handle, reps [4]uint32) (Handle, Code) {
	return 0, un.Code
}

func (un Unimplemented) Reorder(in Handle, order [4]uint32) (Handle, Code) {
	return 0, un.Code
}

func (un Unimplemented) Shift(in Handle, shifts [4]int32) (Handle, Code) {
	return 0, un.Code
}

func (un Unimplemented) Moddims(in Handle, dims []int64) (Handle, Code) {
	return 0, un.Code
}

func (un Unimplemented) Flat(in Handle) (Handle, Code) {
	return 0, un.Code
}

func (un Unimplemented) Flip(in Handle, dim uint32) (Handle, Code) {
	return 0, un.Code
}

func (un Unimplemented) Lower(in Handle, unitDiag bool) (Handle, Code) {
	return 0, un.Code
}

func (un Unimplemented) Upper(in Handle, unitDiag bool) (Handle, Code) {
	return 0, un.Code
}

func (un Unimplemented) Select(cond, a, b Handle) (Handle, Code) {
	return 0, un.Code
}

func (un Unimplemented) SelectScalarR(cond, a Handle, b float64) (Handle, Code) {
	return 0, un.Code
}

func (un Unimplemented) SelectScalarL(cond Handle, a float64, b Handle) (Handle, Code) {
	return 0, un.Code
}

func (un Unimplemented) Replace(a, cond, b Handle) Code {
	return un.Code
}

func (un Unimplemented) ReplaceScalar(a, cond Handle, b float64) Code {
	return un.Code
}

func (un Unimplemented) Pad(in Handle, begin, end []int64, border int) (Handle, Code) {
	return 0, un.Code
}

func (un Unimplemented) Reduce(op ReduceOp, in Handle, dim int) (Handle, Code) {
	return 0, un.Code
}

func (un Unimplemented) ReduceNaN(op ReduceOp, in Handle, dim int, nanval float64) (Handle, Code) {
	return 0, un.Code
}

func (un Unimplemented) ReduceAll(op ReduceOp, in Handle) (re, im float64, c Code) {
	return 0, 0, un.Code
}

func (un Unimplemented) ReduceAllNaN(op ReduceOp, in Handle, nanval float64) (re, im float64, c Code) {
	return 0, 0, un.Code
}

func (un Unimplemented) ReduceByKey(op ReduceOp, keys, vals Handle, dim int) (Handle, Handle, Code) {
	return 0, 0, un.Code
}

func (un Unimplemented) IReduce(op IndexedOp, in Handle, dim int) (Handle, Handle, Code) {
	return 0, 0, un.Code
}

func (un Unimplemented) IReduceAll(op IndexedOp, in Handle) (re, im float64, idx uint32, c Code) {
	return 0, 0, 0, un.Code
}

func (un Unimplemented) Accum(in Handle, dim int) (Handle, Code) {
	return 0, un.Code
}

func (un Unimplemented) Scan(in Handle, dim int, op int, inclusive bool) (Handle, Code) {
	return 0, un.Code
}

func (un Unimplemented) ScanByKey(keys, in Handle, dim int, op int, inclusive bool) (Handle, Code) {
	return 0, un.Code
}

func (un Unimplemented) Where(in Handle) (Handle, Code) {
	return 0, un.Code
}

func (un Unimplemented) Diff1(in Handle, dim int) (Handle, Code) {
	return 0, un.Code
}

func (un Unimplemented) Diff2(in Handle, dim int) (Handle, Code) {
	return 0, un.Code
}

func (un Unimplemented) Sort(in Handle, dim uint32, asc bool) (Handle, Code) {
	return 0, un.Code
}

func (un Unimplemented) SortIndex(in Handle, dim uint32, asc bool) (Handle, Handle, Code) {
	return 0, 0, un.Code
}

func (un Unimplemented) SortByKey(keys, vals Handle, dim uint32, asc bool) (Handle, Handle, Code) {
	return 0, 0, un.Code
}

func (un Unimplemented) SetUnique(in Handle, isSorted bool) (Handle, Code) {
	return 0, un.Code
}

func (un Unimplemented) SetOp(op SetOp, a, b Handle, isUnique bool) (Handle, Code) {
	return 0, un.Code
}

func (un Unimplemented) MaxRagged(in, lens Handle, dim int) (Handle, Handle, Code) {
	return 0, 0, un.Code
}

func (un Unimplemented) Matmul(lhs, rhs Handle, optL, optR int) (Handle, Code) {
	return 0, un.Code
}

func (un Unimplemented) Dot(lhs, rhs Handle, optL, optR int) (Handle, Code) {
	return 0, un.Code
}

func (un Unimplemented) DotAll(lhs, rhs Handle, optL, optR int) (re, im float64, c Code) {
	return 0, 0, un.Code
}

func (un Unimplemented) Transpose(in Handle, conj bool) (Handle, Code) {
	return 0, un.Code
}

func (un Unimplemented) TransposeInplace(in Handle, conj bool) Code {
	return un.Code
}

func (un Unimplemented) SVD(in Handle) (u, s, vt Handle, c Code) {
	return 0, 0, 0, un.Code
}

func (un Unimplemented) SVDInplace(in Handle) (u, s, vt Handle, c Code) {
	return 0, 0, 0, un.Code
}

func (un Unimplemented) LU(in Handle) (l, u, piv Handle, c Code) {
	return 0, 0, 0, un.Code
}

func (un Unimplemented) LUInplace(in Handle, lapackPiv bool) (Handle, Code) {
	return 0, un.Code
}

func (un Unimplemented) QR(in Handle) (q, r, tau Handle, c Code) {
	return 0, 0, 0, un.Code
}

func (un Unimplemented) QRInplace(in Handle) (Handle, Code) {
	return 0, un.Code
}

func (un Unimplemented) Cholesky(in Handle, upper bool) (Handle, int, Code) {
	return 0, 0, un.Code
}

func (un Unimplemented) CholeskyInplace(in Handle, upper bool) (int, Code) {
	return 0, un.Code
}

func (un Unimplemented) Solve(a, b Handle, opt int) (Handle, Code) {
	return 0, un.Code
}

func (un Unimplemented) SolveLU(a, piv, b Handle, opt int) (Handle, Code) {
	return 0, un.Code
}

func (un Unimplemented) Inverse(in Handle, opt int) (Handle, Code) {
	return 0, un.Code
}

func (un Unimplemented) Pinverse(in Handle, tol float64, opt int) (Handle, Code) {
	return 0, un.Code
}

func (un Unimplemented) Rank(in Handle, tol float64) (uint32, Code) {
	return 0, un.Code
}

func (un Unimplemented) Det(in Handle) (re, im float64, c Code) {
	return 0, 0, un.Code
}

func (un Unimplemented) Norm(in Handle, typ int, p, q float64) (float64, Code) {
	return 0, un.Code
}

func (un Unimplemented) LAPACKAvailable() (bool, Code) {
	return false, un.Code
}

func (un Unimplemented) FFT(kind FFTKind, rank int, in Handle, norm float64, odims [3]int64) (Handle, Code) {
	return 0, un.Code
}

func (un Unimplemented) FFTInplace(kind FFTKind, rank int, in Handle, norm float64) Code {
	return un.Code
}

func (un Unimplemented) FFTR2C(rank int, in Handle, norm float64, pad [3]int64) (Handle, Code) {
	return 0, un.Code
}

func (un Unimplemented) FFTC2R(rank int, in Handle, norm float64, isOdd bool) (Handle, Code) {
	return 0, un.Code
}

func (un Unimplemented) Approx1(in, pos Handle, method int, offGrid float32) (Handle, Code) {
	return 0, un.Code
}

func (un Unimplemented) Approx2(in, pos0, pos1 Handle, method int, offGrid float32) (Handle, Code) {
	return 0, un.Code
}

func (un Unimplemented) Convolve(rank int, signal, filter Handle, mode, domain int) (Handle, Code) {
	return 0, un.Code
}

func (un Unimplemented) Convolve2Sep(colFilter, rowFilter, signal Handle, mode int) (Handle, Code) {
	return 0, un.Code
}

func (un Unimplemented) FFTConvolve(rank int, signal, filter Handle, mode int) (Handle, Code) {
	return 0, un.Code
}

func (un Unimplemented) FIR(b, x Handle) (Handle, Code) {
	return 0, un.Code
}

func (un Unimplemented) IIR(b, a, x Handle) (Handle, Code) {
	return 0, un.Code
}

func (un Unimplemented) Medfilt1(in Handle, width int64, border int) (Handle, Code) {
	return 0, un.Code
}

func (un Unimplemented) SetFFTPlanCacheSize(n uint64) Code {
	return un.Code
}

func (un Unimplemented) Gradient(in Handle) (Handle, Handle, Code) {
	return 0, 0, un.Code
}

func (un Unimplemented) LoadImage(path string, color bool) (Handle, Code) {
	return 0, un.Code
}

func (un Unimplemented) SaveImage(path string, in Handle) Code {
	return un.Code
}

func (un Unimplemented) LoadImageNative(path string) (Handle, Code) {
	return 0, un.Code
}

func (un Unimplemented) SaveImageNative(path string, in Handle) Code {
	return un.Code
}

func (un Unimplemented) ImageIOAvailable() (bool, Code) {
	return false, un.Code
}

func (un Unimplemented) Resize(in Handle, odim0, odim1 int64, method int) (Handle, Code) {
	return 0, un.Code
}

func (un Unimplemented) Transform(in, tf Handle, odim0, odim1 int64, method int, inverse bool) (Handle, Code) {
	return 0, un.Code
}

func (un Unimplemented) Rotate(in Handle, theta float32, crop bool, method int) (Handle, Code) {
	return 0, un.Code
}

func (un Unimplemented) Translate(in Handle, t0, t1 float32, odim0, odim1 int64, method int) (Handle, Code) {
	return 0, un.Code
}

func (un Unimplemented) Scale(in Handle, s0, s1 float32, odim0, odim1 int64, method int) (Handle, Code) {
	return 0, un.Code
}

func (un Unimplemented) Skew(in Handle, s0, s1 float32, odim0, odim1 int64, method int, inverse bool) (Handle, Code) {
	return 0, un.Code
}

func (un Unimplemented) Histogram(in Handle, nbins uint32, min, max float64) (Handle, Code) {
	return 0, un.Code
}

func (un Unimplemented) Morph(op MorphOp, in, mask Handle) (Handle, Code) {
	return 0, un.Code
}

func (un Unimplemented) Bilateral(in Handle, spatial, chromatic float32, color bool) (Handle, Code) {
	return 0, un.Code
}

func (un Unimplemented) MeanShift(in Handle, spatial, chromatic float32, iter uint32, color bool) (Handle, Code) {
	return 0, un.Code
}

func (un Unimplemented) WindowFilter(f WindowFilter, in Handle, length, width int64, border int) (Handle, Code) {
	return 0, un.Code
}

func (un Unimplemented) Regions(in Handle, conn int, t DType) (Handle, Code) {
	return 0, un.Code
}

func (un Unimplemented) Sobel(in Handle, kerSize uint32) (Handle, Handle, Code) {
	return 0, 0, un.Code
}

func (un Unimplemented) RGB2Gray(in Handle, r, g, b float32) (Handle, Code) {
	return 0, un.Code
}

func (un Unimplemented) Gray2RGB(in Handle, r, g, b float32) (Handle, Code) {
	return 0, un.Code
}

func (un Unimplemented) HistEqual(in, hist Handle) (Handle, Code) {
	return 0, un.Code
}

func (un Unimplemented) GaussianKernel(rows, cols int, sigmaR, sigmaC float64) (Handle, Code) {
	return 0, un.Code
}

func (un Unimplemented) ColorConvert(conv ColorConv, in Handle) (Handle, Code) {
	return 0, un.Code
}

func (un Unimplemented) ColorSpace(in Handle, to, from int) (Handle, Code) {
	return 0, un.Code
}

func (un Unimplemented) Unwrap(in Handle, wx, wy, sx, sy, px, py int64, isColumn bool) (Handle, Code) {
	return 0, un.Code
}

func (un Unimplemented) Wrap(in Handle, ox, oy, wx, wy, sx, sy, px, py int64, isColumn bool) (Handle, Code) {
	return 0, un.Code
}

func (un Unimplemented) SAT(in Handle) (Handle, Code) {
	return 0, un.Code
}

func (un Unimplemented) YCbCr2RGB(in Handle, std int) (Handle, Code) {
	return 0, un.Code
}

func (un Unimplemented) RGB2YCbCr(in Handle, std int) (Handle, Code) {
	return 0, un.Code
}

func (un Unimplemented) Moments(in Handle, moment int) (Handle, Code) {
	return 0, un.Code
}

func (un Unimplemented) MomentsAll(in Handle, moment int) ([]float64, Code) {
	return nil, un.Code
}

func (un Unimplemented) Canny(in Handle, thrType int, low, high float32, sobelWindow uint32, fast bool) (Handle, Code) {
	return 0, un.Code
}

func (un Unimplemented) AnisotropicDiffusion(in Handle, dt, k float32, iters uint32, flux, eq int) (Handle, Code) {
	return 0, un.Code
}

func (un Unimplemented) ConfidenceCC(in, seedx, seedy Handle, radius, multiplier uint32, iter int, segmented float64) (Handle, Code) {
	return 0, un.Code
}

func (un Unimplemented) IterativeDeconv(in, ker Handle, iters uint32, relax float32, algo int) (Handle, Code) {
	return 0, un.Code
}

func (un Unimplemented) InverseDeconv(in, psf Handle, gamma float32, algo int) (Handle, Code) {
	return 0, un.Code
}

func (un Unimplemented) CreateFeatures(n int64) (Handle, Code) {
	return 0, un.Code
}

func (un Unimplemented) RetainFeatures(f Handle) (Handle, Code) {
	return 0, un.Code
}

func (un Unimplemented) ReleaseFeatures(f Handle) Code {
	return un.Code
}

func (un Unimplemented) FeaturesNum(f Handle) (int64, Code) {
	return 0, un.Code
}

func (un Unimplemented) FeaturesField(f Handle, field FeatureField) (Handle, Code) {
	return 0, un.Code
}

func (un Unimplemented) FAST(in Handle, thr float32, arcLength uint32, nonMax bool, ratio float32, edge uint32) (Handle, Code) {
	return 0, un.Code
}

func (un Unimplemented) Harris(in Handle, maxCorners uint32, minResponse, sigma float32, blockSize uint32, k float32) (Handle, Code) {
	return 0, un.Code
}

func (un Unimplemented) ORB(in Handle, fastThr float32, maxFeat uint32, sclFctr float32, levels uint32, blur bool) (Handle, Handle, Code) {
	return 0, 0, un.Code
}

func (un Unimplemented) SIFT(in Handle, layers uint32, contrast, edge, sigma float32, double bool, intensity, ratio float32) (Handle, Handle, Code) {
	return 0, 0, un.Code
}

func (un Unimplemented) GLOH(in Handle, layers uint32, contrast, edge, sigma float32, double bool, intensity, ratio float32) (Handle, Handle, Code) {
	return 0, 0, un.Code
}

func (un Unimplemented) HammingMatcher(query, train Handle, distDim int64, nDist uint32) (Handle, Handle, Code) {
	return 0, 0, un.Code
}

func (un Unimplemented) NearestNeighbour(query, train Handle, distDim int64, nDist uint32, mt int) (Handle, Handle, Code) {
	return 0, 0, un.Code
}

func (un Unimplemented) MatchTemplate(search, tmpl Handle, mt int) (Handle, Code) {
	return 0, un.Code
}

func (un Unimplemented) SUSAN(in Handle, radius uint32, diff, geom, ratio float32, edge uint32) (Handle, Code) {
	return 0, un.Code
}

func (un Unimplemented) DoG(in Handle, r1, r2 int) (Handle, Code) {
	return 0, un.Code
}

func (un Unimplemented) Homography(xs, ys, xd, yd Handle, htype int, inlierThr float32, iters uint32, t DType) (Handle, int, Code) {
	return 0, 0, un.Code
}

func (un Unimplemented) CreateRandomEngine(typ int, seed uint64) (Handle, Code) {
	return 0, un.Code
}

func (un Unimplemented) RetainRandomEngine(e Handle) (Handle, Code) {
	return 0, un.Code
}

func (un Unimplemented) ReleaseRandomEngine(e Handle) Code {
	return un.Code
}

func (un Unimplemented) RandomEngineSetType(e Handle, typ int) Code {
	return un.Code
}

func (un Unimplemented) RandomEngineType(e Handle) (int, Code) {
	return 0, un.Code
}

func (un Unimplemented) RandomEngineSetSeed(e Handle, seed uint64) Code {
	return un.Code
}

func (un Unimplemented) RandomEngineSeed(e Handle) (uint64, Code) {
	return 0, un.Code
}

func (un Unimplemented) DefaultRandomEngine() (Handle, Code) {
	return 0, un.Code
}

func (un Unimplemented) SetDefaultRandomEngineType(typ int) Code {
	return un.Code
}

func (un Unimplemented) RandomUniform(dims []int64, t DType, e Handle) (Handle, Code) {
	return 0, un.Code
}

func (un Unimplemented) RandomNormal(dims []int64, t DType, e Handle) (Handle, Code) {
	return 0, un.Code
}

func (un Unimplemented) Randu(dims []int64, t DType) (Handle, Code) {
	return 0, un.Code
}

func (un Unimplemented) Randn(dims []int64, t DType) (Handle, Code) {
	return 0, un.Code
}

func (un Unimplemented) SetSeed(seed uint64) Code {
	return un.Code
}

func (un Unimplemented) Seed() (uint64, Code) {
	return 0, un.Code
}

func (un Unimplemented) CreateSparse(rows, cols int64, vals, rowIdx, colIdx Handle, storage int) (Handle, Code) {
	return 0, un.Code
}

func (un Unimplemented) CreateSparseFromHost(rows, cols, nnz int64, vals []byte, rowIdx, colIdx []int32, t DType, storage int) (Handle, Code) {
	return 0, un.Code
}

func (un Unimplemented) SparseFromDense(dense Handle, storage int) (Handle, Code) {
	return 0, un.Code
}

func (un Unimplemented) SparseConvertTo(in Handle, storage int) (Handle, Code) {
	return 0, un.Code
}

func (un Unimplemented) SparseToDense(in Handle) (Handle, Code) {
	return 0, un.Code
}

func (un Unimplemented) SparseInfo(in Handle) (vals, rowIdx, colIdx Handle, storage int, c Code) {
	return 0, 0, 0, 0, un.Code
}

func (un Unimplemented) SparseComponent(in Handle, comp SparseComponent) (Handle, Code) {
	return 0, un.Code
}

func (un Unimplemented) SparseNNZ(in Handle) (int64, Code) {
	return 0, un.Code
}

func (un Unimplemented) SparseStorage(in Handle) (int, Code) {
	return 0, un.Code
}

func (un Unimplemented) Mean(in Handle, dim int64) (Handle, Code) {
	return 0, un.Code
}

func (un Unimplemented) MeanWeighted(in, w Handle, dim int64) (Handle, Code) {
	return 0, un.Code
}

func (un Unimplemented) Var(in Handle, bias int, dim int64) (Handle, Code) {
	return 0, un.Code
}

func (un Unimplemented) VarWeighted(in, w Handle, dim int64) (Handle, Code) {
	return 0, un.Code
}

func (un Unimplemented) MeanVar(in, w Handle, bias int, dim int64) (Handle, Handle, Code) {
	return 0, 0, un.Code
}

func (un Unimplemented) Stdev(in Handle, bias int, dim int64) (Handle, Code) {
	return 0, un.Code
}

func (un Unimplemented) Cov(x, y Handle, bias int) (Handle, Code) {
	return 0, un.Code
}

func (un Unimplemented) Median(in Handle, dim int64) (Handle, Code) {
	return 0, un.Code
}

func (un Unimplemented) MeanAll(in Handle) (re, im float64, c Code) {
	return 0, 0, un.Code
}

func (un Unimplemented) MeanAllWeighted(in, w Handle) (re, im float64, c Code) {
	return 0, 0, un.Code
}

func (un Unimplemented) VarAll(in Handle, bias int) (re, im float64, c Code) {
	return 0, 0, un.Code
}

func (un Unimplemented) VarAllWeighted(in, w Handle) (re, im float64, c Code) {
	return 0, 0, un.Code
}

func (un Unimplemented) StdevAll(in Handle, bias int) (re, im float64, c Code) {
	return 0, 0, un.Code
}

func (un Unimplemented) MedianAll(in Handle) (re, im float64, c Code) {
	return 0, 0, un.Code
}

func (un Unimplemented) Corrcoef(x, y Handle) (re, im float64, c Code) {
	return 0, 0, un.Code
}

func (un Unimplemented) TopK(in Handle, k, dim int, order int) (Handle, Handle, Code) {
	return 0, 0, un.Code
}

func (un Unimplemented) Index(in Handle, seqs []Seq) (Handle, Code) {
	return 0, un.Code
}

func (un Unimplemented) Lookup(in, idx Handle, dim uint32) (Handle, Code) {
	return 0, un.Code
}

func (un Unimplemented) AssignSeq(lhs Handle, seqs []Seq, rhs Handle) (Handle, Code) {
	return 0, un.Code
}

func (un Unimplemented) IndexGen(in Handle, idx []Index) (Handle, Code) {
	return 0, un.Code
}

func (un Unimplemented) AssignGen(lhs Handle, idx []Index, rhs Handle) (Handle, Code) {
	return 0, un.Code
}

func (un Unimplemented) CreateWindow(width, height int, title string) (Handle, Code) {
	return 0, un.Code
}

func (un Unimplemented) DestroyWindow(w Handle) Code {
	return un.Code
}

func (un Unimplemented) SetPosition(w Handle, x, y uint32) Code {
	return un.Code
}

func (un Unimplemented) SetTitle(w Handle, title string) Code {
	return un.Code
}

func (un Unimplemented) SetSize(w Handle, width, height uint32) Code {
	return un.Code
}

func (un Unimplemented) SetVisibility(w Handle, visible bool) Code {
	return un.Code
}

func (un Unimplemented) Grid(w Handle, rows, cols int) Code {
	return un.Code
}

func (un Unimplemented) Show(w Handle) Code {
	return un.Code
}

func (un Unimplemented) IsWindowClosed(w Handle) (bool, Code) {
	return false, un.Code
}

func (un Unimplemented) DrawImage(w, in Handle, cell *Cell) Code {
	return un.Code
}

func (un Unimplemented) DrawPlot2(w, x, y Handle, cell *Cell) Code {
	return un.Code
}

func (un Unimplemented) DrawPlot3(w, x, y, z Handle, cell *Cell) Code {
	return un.Code
}

func (un Unimplemented) DrawPlotN(w, p Handle, cell *Cell) Code {
	return un.Code
}

func (un Unimplemented) DrawScatter2(w, x, y Handle, marker int, cell *Cell) Code {
	return un.Code
}

func (un Unimplemented) DrawScatter3(w, x, y, z Handle, marker int, cell *Cell) Code {
	return un.Code
}

func (un Unimplemented) DrawScatterN(w, p Handle, marker int, cell *Cell) Code {
	return un.Code
}

func (un Unimplemented) DrawHist(w, x Handle, min, max float64, cell *Cell) Code {
	return un.Code
}

func (un Unimplemented) DrawSurface(w, xv, yv, s Handle, cell *Cell) Code {
	return un.Code
}

func (un Unimplemented) DrawVectorField2(w, xp, yp, xd, yd Handle, cell *Cell) Code {
	return un.Code
}

func (un Unimplemented) DrawVectorFieldN(w, points, dirs Handle, cell *Cell) Code {
	return un.Code
}

func (un Unimplemented) SetAxesLimitsCompute(w, x, y, z Handle, exact bool, cell *Cell) Code {
	return un.Code
}

func (un Unimplemented) SetAxesLimits2(w Handle, xmin, xmax, ymin, ymax float32, exact bool, cell *Cell) Code {
	return un.Code
}

func (un Unimplemented) SetAxesLimits3(w Handle, xmin, xmax, ymin, ymax, zmin, zmax float32, exact bool, cell *Cell) Code {
	return un.Code
}

func (un Unimplemented) SetAxesTitles(w Handle, x, y, z string, cell *Cell) Code {
	return un.Code
}

func (un Unimplemented) SetAxesLabelFormat(w Handle, x, y, z string, cell *Cell) Code {
	return un.Code
}

func (un Unimplemented) PrintArray(h Handle, name string, precision int) Code {
	return un.Code
}

func (un Unimplemented) ArrayToString(name string, h Handle, precision int, transpose bool) (string, Code) {
	return "", un.Code
}

func (un Unimplemented) SaveArray(key string, h Handle, file string, appendTo bool) (int, Code) {
	return 0, un.Code
}

func (un Unimplemented) ReadArrayIndex(file string, index uint32) (Handle, Code) {
	return 0, un.Code
}

func (un Unimplemented) ReadArrayKey(file, key string) (Handle, Code) {
	return 0, un.Code
}

func (un Unimplemented) ReadArrayKeyCheck(file, key string) (int, Code) {
	return 0, un.Code
}
