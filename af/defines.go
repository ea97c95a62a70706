package af

import "fmt"

// Backend selects the compute backend, matching af_backend. Values are bit
// flags so AvailableBackends can report a set.
type Backend int

const (
	BackendDefault Backend = 0
	BackendCPU     Backend = 1
	BackendCUDA    Backend = 2
	BackendOpenCL  Backend = 4
	BackendOneAPI  Backend = 8
)

var backendNames = map[Backend]string{
	BackendDefault: "default", BackendCPU: "cpu", BackendCUDA: "cuda",
	BackendOpenCL: "opencl", BackendOneAPI: "oneapi",
}

func (b Backend) String() string { return enumName(backendNames, b, "Backend") }

// ParseBackend maps a backend name as printed by String back to its value.
func ParseBackend(s string) (Backend, bool) {
	for b, n := range backendNames {
		if n == s {
			return b, true
		}
	}
	return 0, false
}

// ErrorCode is a native status value, matching af_err.
type ErrorCode int32

const (
	CodeSuccess         ErrorCode = 0
	CodeNoMem           ErrorCode = 101
	CodeDriver          ErrorCode = 102
	CodeRuntime         ErrorCode = 103
	CodeInvalidArray    ErrorCode = 201
	CodeArg             ErrorCode = 202
	CodeSize            ErrorCode = 203
	CodeType            ErrorCode = 204
	CodeDiffType        ErrorCode = 205
	CodeBatch           ErrorCode = 207
	CodeDevice          ErrorCode = 208
	CodeNotSupported    ErrorCode = 301
	CodeNotConfigured   ErrorCode = 302
	CodeNonFree         ErrorCode = 303
	CodeNoDbl           ErrorCode = 401
	CodeNoGfx           ErrorCode = 402
	CodeNoHalf          ErrorCode = 403
	CodeLoadLib         ErrorCode = 501
	CodeLoadSym         ErrorCode = 502
	CodeArrBkndMismatch ErrorCode = 503
	CodeInternal        ErrorCode = 998
	CodeUnknown         ErrorCode = 999
)

var codeNames = map[ErrorCode]string{
	CodeSuccess: "AF_SUCCESS", CodeNoMem: "AF_ERR_NO_MEM", CodeDriver: "AF_ERR_DRIVER",
	CodeRuntime: "AF_ERR_RUNTIME", CodeInvalidArray: "AF_ERR_INVALID_ARRAY", CodeArg: "AF_ERR_ARG",
	CodeSize: "AF_ERR_SIZE", CodeType: "AF_ERR_TYPE", CodeDiffType: "AF_ERR_DIFF_TYPE",
	CodeBatch: "AF_ERR_BATCH", CodeDevice: "AF_ERR_DEVICE", CodeNotSupported: "AF_ERR_NOT_SUPPORTED",
	CodeNotConfigured: "AF_ERR_NOT_CONFIGURED", CodeNonFree: "AF_ERR_NONFREE", CodeNoDbl: "AF_ERR_NO_DBL",
	CodeNoGfx: "AF_ERR_NO_GFX", CodeNoHalf: "AF_ERR_NO_HALF", CodeLoadLib: "AF_ERR_LOAD_LIB",
	CodeLoadSym: "AF_ERR_LOAD_SYM", CodeArrBkndMismatch: "AF_ERR_ARR_BKND_MISMATCH",
	CodeInternal: "AF_ERR_INTERNAL", CodeUnknown: "AF_ERR_UNKNOWN",
}

func (c ErrorCode) String() string { return enumName(codeNames, c, "ErrorCode") }

// InterpType selects an interpolation method, matching af_interp_type.
type InterpType int

const (
	InterpNearest InterpType = iota
	InterpLinear
	InterpBilinear
	InterpCubic
	InterpLower
	InterpLinearCosine
	InterpBilinearCosine
	InterpBicubic
	InterpCubicSpline
	InterpBicubicSpline
)

var interpNames = map[InterpType]string{
	InterpNearest: "nearest", InterpLinear: "linear", InterpBilinear: "bilinear", InterpCubic: "cubic",
	InterpLower: "lower", InterpLinearCosine: "linear_cosine", InterpBilinearCosine: "bilinear_cosine",
	InterpBicubic: "bicubic", InterpCubicSpline: "cubic_spline", InterpBicubicSpline: "bicubic_spline",
}

func (t InterpType) String() string { return enumName(interpNames, t, "InterpType") }

// BorderType selects how borders are padded, matching af_border_type.
type BorderType int

const (
	PadZero BorderType = iota
	PadSym
	PadClampToEdge
	PadPeriodic
)

var borderNames = map[BorderType]string{
	PadZero: "zero", PadSym: "symmetric", PadClampToEdge: "clamp_to_edge", PadPeriodic: "periodic",
}

func (t BorderType) String() string { return enumName(borderNames, t, "BorderType") }

// Connectivity selects pixel neighbourhoods, matching af_connectivity.
type Connectivity int

const (
	Connectivity4 Connectivity = 4
	Connectivity8 Connectivity = 8
)

var connectivityNames = map[Connectivity]string{Connectivity4: "4", Connectivity8: "8"}

func (c Connectivity) String() string { return enumName(connectivityNames, c, "Connectivity") }

// ConvMode selects the output size of a convolution, matching af_conv_mode.
type ConvMode int

const (
	ConvDefault ConvMode = iota
	ConvExpand
)

var convModeNames = map[ConvMode]string{ConvDefault: "default", ConvExpand: "expand"}

func (m ConvMode) String() string { return enumName(convModeNames, m, "ConvMode") }

// ConvDomain selects where a convolution is computed, matching af_conv_domain.
type ConvDomain int

const (
	ConvDomainAuto ConvDomain = iota
	ConvDomainSpatial
	ConvDomainFreq
)

var convDomainNames = map[ConvDomain]string{
	ConvDomainAuto: "auto", ConvDomainSpatial: "spatial", ConvDomainFreq: "freq",
}

func (d ConvDomain) String() string { return enumName(convDomainNames, d, "ConvDomain") }

// MatchType selects a template matching metric, matching af_match_type.
type MatchType int

const (
	MatchSAD MatchType = iota
	MatchZSAD
	MatchLSAD
	MatchSSD
	MatchZSSD
	MatchLSSD
	MatchNCC
	MatchZNCC
	MatchSHD
)

var matchNames = map[MatchType]string{
	MatchSAD: "sad", MatchZSAD: "zsad", MatchLSAD: "lsad", MatchSSD: "ssd", MatchZSSD: "zssd",
	MatchLSSD: "lssd", MatchNCC: "ncc", MatchZNCC: "zncc", MatchSHD: "shd",
}

func (m MatchType) String() string { return enumName(matchNames, m, "MatchType") }

// ColorSpace names an image color space, matching af_cspace_t.
type ColorSpace int

const (
	SpaceGray ColorSpace = iota
	SpaceRGB
	SpaceHSV
	SpaceYCbCr
)

var spaceNames = map[ColorSpace]string{SpaceGray: "gray", SpaceRGB: "rgb", SpaceHSV: "hsv", SpaceYCbCr: "ycbcr"}

func (s ColorSpace) String() string { return enumName(spaceNames, s, "ColorSpace") }

// MatProp describes matrix properties and operand options, matching
// af_mat_prop. Values combine as bit flags.
type MatProp int

const (
	MatNone      MatProp = 0
	MatTrans     MatProp = 1
	MatCTrans    MatProp = 2
	MatConj      MatProp = 4
	MatUpper     MatProp = 32
	MatLower     MatProp = 64
	MatDiagUnit  MatProp = 128
	MatSym       MatProp = 512
	MatPosDef    MatProp = 1024
	MatOrthog    MatProp = 2048
	MatTriDiag   MatProp = 4096
	MatBlockDiag MatProp = 8192
)

var matPropNames = []struct {
	p    MatProp
	name string
}{
	{MatTrans, "trans"}, {MatCTrans, "ctrans"}, {MatConj, "conj"}, {MatUpper, "upper"},
	{MatLower, "lower"}, {MatDiagUnit, "diag_unit"}, {MatSym, "sym"}, {MatPosDef, "posdef"},
	{MatOrthog, "orthog"}, {MatTriDiag, "tri_diag"}, {MatBlockDiag, "block_diag"},
}

func (p MatProp) String() string {
	if p == MatNone {
		return "none"
	}
	var s string
	rest := p
	for _, n := range matPropNames {
		if p&n.p == 0 {
			continue
		}
		if s != "" {
			s += "|"
		}
		s += n.name
		rest &^= n.p
	}
	if rest != 0 {
		if s != "" {
			s += "|"
		}
		s += fmt.Sprintf("%#x", int(rest))
	}
	return s
}

// NormType selects a vector or matrix norm, matching af_norm_type.
type NormType int

const (
	NormVector1 NormType = iota
	NormVectorInf
	NormVector2
	NormVectorP
	NormMatrix1
	NormMatrixInf
	NormMatrix2
	NormMatrixLPQ
	NormEuclid = NormVector2
)

var normNames = map[NormType]string{
	NormVector1: "vector_1", NormVectorInf: "vector_inf", NormVector2: "vector_2", NormVectorP: "vector_p",
	NormMatrix1: "matrix_1", NormMatrixInf: "matrix_inf", NormMatrix2: "matrix_2", NormMatrixLPQ: "matrix_l_pq",
}

func (n NormType) String() string { return enumName(normNames, n, "NormType") }

// ColorMap selects a palette for image display, matching af_colormap.
type ColorMap int

const (
	ColorMapDefault ColorMap = iota
	ColorMapSpectrum
	ColorMapColors
	ColorMapRed
	ColorMapMood
	ColorMapHeat
	ColorMapBlue
	ColorMapInferno
	ColorMapMagma
	ColorMapPlasma
	ColorMapViridis
)

var colorMapNames = map[ColorMap]string{
	ColorMapDefault: "default", ColorMapSpectrum: "spectrum", ColorMapColors: "colors", ColorMapRed: "red",
	ColorMapMood: "mood", ColorMapHeat: "heat", ColorMapBlue: "blue", ColorMapInferno: "inferno",
	ColorMapMagma: "magma", ColorMapPlasma: "plasma", ColorMapViridis: "viridis",
}

func (m ColorMap) String() string { return enumName(colorMapNames, m, "ColorMap") }

// YCCStd selects the YCbCr conversion standard, matching af_ycc_std.
type YCCStd int

const (
	YCC601  YCCStd = 601
	YCC709  YCCStd = 709
	YCC2020 YCCStd = 2020
)

var yccNames = map[YCCStd]string{YCC601: "BT.601", YCC709: "BT.709", YCC2020: "BT.2020"}

func (s YCCStd) String() string { return enumName(yccNames, s, "YCCStd") }

// HomographyType selects the homography estimator, matching af_homography_type.
type HomographyType int

const (
	HomographyRANSAC HomographyType = iota
	HomographyLMedS
)

var homographyNames = map[HomographyType]string{HomographyRANSAC: "ransac", HomographyLMedS: "lmeds"}

func (h HomographyType) String() string { return enumName(homographyNames, h, "HomographyType") }

// RandomEngineType selects a counter-based generator, matching
// af_random_engine_type.
type RandomEngineType int

const (
	RandomPhilox   RandomEngineType = 100
	RandomThreefry RandomEngineType = 200
	RandomMersenne RandomEngineType = 300
	RandomDefault                   = RandomPhilox
)

var randomNames = map[RandomEngineType]string{
	RandomPhilox: "philox_4x32_10", RandomThreefry: "threefry_2x32_16", RandomMersenne: "mersenne_gp11213",
}

func (t RandomEngineType) String() string { return enumName(randomNames, t, "RandomEngineType") }

// CannyThresholdType selects how canny thresholds are chosen, matching
// af_canny_threshold.
type CannyThresholdType int

const (
	CannyManual CannyThresholdType = iota
	CannyAutoOtsu
)

var cannyNames = map[CannyThresholdType]string{CannyManual: "manual", CannyAutoOtsu: "auto_otsu"}

func (t CannyThresholdType) String() string { return enumName(cannyNames, t, "CannyThresholdType") }

// BinaryOp selects the operator of a scan, matching af_binary_op.
type BinaryOp int

const (
	BinaryAdd BinaryOp = iota
	BinaryMul
	BinaryMin
	BinaryMax
)

var binaryNames = map[BinaryOp]string{BinaryAdd: "add", BinaryMul: "mul", BinaryMin: "min", BinaryMax: "max"}

func (o BinaryOp) String() string { return enumName(binaryNames, o, "BinaryOp") }

// FluxFn selects the flux function of anisotropic diffusion, matching
// af_flux_function.
type FluxFn int

const (
	FluxDefault FluxFn = iota
	FluxQuadratic
	FluxExponential
)

var fluxNames = map[FluxFn]string{FluxDefault: "default", FluxQuadratic: "quadratic", FluxExponential: "exponential"}

func (f FluxFn) String() string { return enumName(fluxNames, f, "FluxFn") }

// DiffusionEq selects the diffusion equation, matching af_diffusion_eq.
type DiffusionEq int

const (
	DiffusionDefault DiffusionEq = iota
	DiffusionGrad
	DiffusionMCDE
)

var diffusionNames = map[DiffusionEq]string{DiffusionDefault: "default", DiffusionGrad: "grad", DiffusionMCDE: "mcde"}

func (e DiffusionEq) String() string { return enumName(diffusionNames, e, "DiffusionEq") }

// TopkFn selects which end of the order TopK returns, matching af_topk_function.
type TopkFn int

const (
	TopkDefault TopkFn = iota
	TopkMin
	TopkMax
)

var topkNames = map[TopkFn]string{TopkDefault: "default", TopkMin: "min", TopkMax: "max"}

func (f TopkFn) String() string { return enumName(topkNames, f, "TopkFn") }

// IterativeDeconvAlgo matches af_iterative_deconv_algo.
type IterativeDeconvAlgo int

const (
	IterativeDeconvDefault IterativeDeconvAlgo = iota
	IterativeDeconvLandweber
	IterativeDeconvRichardsonLucy
)

var iterDeconvNames = map[IterativeDeconvAlgo]string{
	IterativeDeconvDefault: "default", IterativeDeconvLandweber: "landweber",
	IterativeDeconvRichardsonLucy: "richardson_lucy",
}

func (a IterativeDeconvAlgo) String() string {
	return enumName(iterDeconvNames, a, "IterativeDeconvAlgo")
}

// InverseDeconvAlgo matches af_inverse_deconv_algo.
type InverseDeconvAlgo int

const (
	InverseDeconvDefault InverseDeconvAlgo = iota
	InverseDeconvTikhonov
)

var invDeconvNames = map[InverseDeconvAlgo]string{InverseDeconvDefault: "default", InverseDeconvTikhonov: "tikhonov"}

func (a InverseDeconvAlgo) String() string { return enumName(invDeconvNames, a, "InverseDeconvAlgo") }

// VarianceBias selects the variance estimator, matching af_var_bias.
type VarianceBias int

const (
	VarianceDefault VarianceBias = iota
	VarianceSample
	VariancePopulation
)

var biasNames = map[VarianceBias]string{VarianceDefault: "default", VarianceSample: "sample", VariancePopulation: "population"}

func (b VarianceBias) String() string { return enumName(biasNames, b, "VarianceBias") }

// SparseFormat selects a sparse storage layout, matching af_storage.
type SparseFormat int

const (
	StorageDense SparseFormat = iota
	StorageCSR
	StorageCSC
	StorageCOO
)

var storageNames = map[SparseFormat]string{StorageDense: "dense", StorageCSR: "csr", StorageCSC: "csc", StorageCOO: "coo"}

func (f SparseFormat) String() string { return enumName(storageNames, f, "SparseFormat") }

// MarkerType selects a scatter plot marker, matching af_marker_type.
type MarkerType int

const (
	MarkerNone MarkerType = iota
	MarkerPoint
	MarkerCircle
	MarkerSquare
	MarkerTriangle
	MarkerCross
	MarkerPlus
	MarkerStar
)

var markerNames = map[MarkerType]string{
	MarkerNone: "none", MarkerPoint: "point", MarkerCircle: "circle", MarkerSquare: "square",
	MarkerTriangle: "triangle", MarkerCross: "cross", MarkerPlus: "plus", MarkerStar: "star",
}

func (m MarkerType) String() string { return enumName(markerNames, m, "MarkerType") }

// MomentType selects image moments, matching af_moment_type. Values are bit
// flags; MomentFirstOrder requests all four.
type MomentType int

const (
	MomentM00        MomentType = 1
	MomentM01        MomentType = 2
	MomentM10        MomentType = 4
	MomentM11        MomentType = 8
	MomentFirstOrder            = MomentM00 | MomentM01 | MomentM10 | MomentM11
)

var momentNames = map[MomentType]string{
	MomentM00: "m00", MomentM01: "m01", MomentM10: "m10", MomentM11: "m11", MomentFirstOrder: "first_order",
}

func (m MomentType) String() string { return enumName(momentNames, m, "MomentType") }

func enumName[T ~int | ~int32](names map[T]string, v T, typ string) string {
	if n, ok := names[v]; ok {
		return n
	}
	return fmt.Sprintf("%s(%d)", typ, int64(v))
}
