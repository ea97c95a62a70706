//go:build !af_no_image

package af

import (
	"runtime"

	"github.com/23skdu/arrayfire-go/internal/native"
)

func init() { registerFeature("image") }

func arrays3(op string, a, b, c *Array, f func(x, y, z native.Handle) (native.Handle, native.Code)) (*Array, error) {
	hs, err := handles(a, b, c)
	if err != nil {
		return nil, err
	}
	defer runtime.KeepAlive([]*Array{a, b, c})
	h, code := f(hs[0], hs[1], hs[2])
	return wrap(op, h, code)
}

func pair1(op string, in *Array, f func(native.Handle) (native.Handle, native.Handle, native.Code)) (*Array, *Array, error) {
	h, err := in.handle()
	if err != nil {
		return nil, nil, err
	}
	defer runtime.KeepAlive(in)
	a, b, c := f(h)
	return wrap2(op, a, b, c)
}

// Gradient returns the row and column gradients of an image.
func Gradient(in *Array) (dx, dy *Array, err error) {
	return pair1("gradient", in, lib().Gradient)
}

// LoadImage reads an image file as f32, three channels when color is set.
func LoadImage(path string, color bool) (*Array, error) {
	h, c := lib().LoadImage(path, color)
	return wrap("load_image", h, c)
}

func SaveImage(path string, in *Array) error {
	return do("save_image", in, func(h native.Handle) native.Code {
		return lib().SaveImage(path, h)
	})
}

// LoadImageNative reads an image keeping the file's channel count and
// bit depth.
func LoadImageNative(path string) (*Array, error) {
	h, c := lib().LoadImageNative(path)
	return wrap("load_image_native", h, c)
}

func SaveImageNative(path string, in *Array) error {
	return do("save_image_native", in, func(h native.Handle) native.Code {
		return lib().SaveImageNative(path, h)
	})
}

// IsImageIOAvailable reports whether the library was built with FreeImage.
func IsImageIOAvailable() (bool, error) {
	ok, c := lib().ImageIOAvailable()
	return ok, check("is_image_io_available", c)
}

func Resize(in *Array, odim0, odim1 int64, method InterpType) (*Array, error) {
	return op1("resize", in, func(h native.Handle) (native.Handle, native.Code) {
		return lib().Resize(h, odim0, odim1, int(method))
	})
}

// Transform applies the 3x2 affine (or 3x3 perspective) matrix tf.
func Transform(in, tf *Array, odim0, odim1 int64, method InterpType, inverse bool) (*Array, error) {
	return op2("transform", in, tf, func(x, t native.Handle) (native.Handle, native.Code) {
		return lib().Transform(x, t, odim0, odim1, int(method), inverse)
	})
}

// Rotate turns an image by theta radians about its centre.
func Rotate(in *Array, theta float32, crop bool, method InterpType) (*Array, error) {
	return op1("rotate", in, func(h native.Handle) (native.Handle, native.Code) {
		return lib().Rotate(h, theta, crop, int(method))
	})
}

func Translate(in *Array, t0, t1 float32, odim0, odim1 int64, method InterpType) (*Array, error) {
	return op1("translate", in, func(h native.Handle) (native.Handle, native.Code) {
		return lib().Translate(h, t0, t1, odim0, odim1, int(method))
	})
}

func Scale(in *Array, s0, s1 float32, odim0, odim1 int64, method InterpType) (*Array, error) {
	return op1("scale", in, func(h native.Handle) (native.Handle, native.Code) {
		return lib().Scale(h, s0, s1, odim0, odim1, int(method))
	})
}

func Skew(in *Array, s0, s1 float32, odim0, odim1 int64, method InterpType, inverse bool) (*Array, error) {
	return op1("skew", in, func(h native.Handle) (native.Handle, native.Code) {
		return lib().Skew(h, s0, s1, odim0, odim1, int(method), inverse)
	})
}

// Histogram counts values of in into nbins equal bins over [min, max].
func Histogram(in *Array, nbins uint32, min, max float64) (*Array, error) {
	return op1("histogram", in, func(h native.Handle) (native.Handle, native.Code) {
		return lib().Histogram(h, nbins, min, max)
	})
}

func morph(op native.MorphOp, name string, in, mask *Array) (*Array, error) {
	return op2(name, in, mask, func(x, m native.Handle) (native.Handle, native.Code) {
		return lib().Morph(op, x, m)
	})
}

func Dilate(in, mask *Array) (*Array, error)  { return morph(native.Dilate, "dilate", in, mask) }
func Erode(in, mask *Array) (*Array, error)   { return morph(native.Erode, "erode", in, mask) }
func Dilate3(in, mask *Array) (*Array, error) { return morph(native.Dilate3, "dilate3", in, mask) }
func Erode3(in, mask *Array) (*Array, error)  { return morph(native.Erode3, "erode3", in, mask) }

func Bilateral(in *Array, spatialSigma, chromaticSigma float32, color bool) (*Array, error) {
	return op1("bilateral", in, func(h native.Handle) (native.Handle, native.Code) {
		return lib().Bilateral(h, spatialSigma, chromaticSigma, color)
	})
}

func MeanShift(in *Array, spatialSigma, chromaticSigma float32, iter uint32, color bool) (*Array, error) {
	return op1("mean_shift", in, func(h native.Handle) (native.Handle, native.Code) {
		return lib().MeanShift(h, spatialSigma, chromaticSigma, iter, color)
	})
}

func windowFilter(f native.WindowFilter, op string, in *Array, length, width int64, border BorderType) (*Array, error) {
	return op1(op, in, func(h native.Handle) (native.Handle, native.Code) {
		return lib().WindowFilter(f, h, length, width, int(border))
	})
}

func MinFilt(in *Array, length, width int64, border BorderType) (*Array, error) {
	return windowFilter(native.MinFilter, "minfilt", in, length, width, border)
}

func MaxFilt(in *Array, length, width int64, border BorderType) (*Array, error) {
	return windowFilter(native.MaxFilter, "maxfilt", in, length, width, border)
}

func MedFilt(in *Array, length, width int64, border BorderType) (*Array, error) {
	return windowFilter(native.MedianFilter, "medfilt", in, length, width, border)
}

// Regions labels the connected components of a binary image.
func Regions(in *Array, conn Connectivity, t DType) (*Array, error) {
	return op1("regions", in, func(h native.Handle) (native.Handle, native.Code) {
		return lib().Regions(h, int(conn), native.DType(t))
	})
}

func Sobel(in *Array, kerSize uint32) (dx, dy *Array, err error) {
	return pair1("sobel_operator", in, func(h native.Handle) (native.Handle, native.Handle, native.Code) {
		return lib().Sobel(h, kerSize)
	})
}

func RGB2Gray(in *Array, r, g, b float32) (*Array, error) {
	return op1("rgb2gray", in, func(h native.Handle) (native.Handle, native.Code) {
		return lib().RGB2Gray(h, r, g, b)
	})
}

func Gray2RGB(in *Array, r, g, b float32) (*Array, error) {
	return op1("gray2rgb", in, func(h native.Handle) (native.Handle, native.Code) {
		return lib().Gray2RGB(h, r, g, b)
	})
}

// HistEqual equalizes in using its histogram hist.
func HistEqual(in, hist *Array) (*Array, error) {
	return op2("hist_equal", in, hist, lib().HistEqual)
}

// GaussianKernel builds a rows x cols kernel; sigmas of 0 derive from the size.
func GaussianKernel(rows, cols int, sigmaR, sigmaC float64) (*Array, error) {
	h, c := lib().GaussianKernel(rows, cols, sigmaR, sigmaC)
	return wrap("gaussian_kernel", h, c)
}

func HSV2RGB(in *Array) (*Array, error) {
	return op1("hsv2rgb", in, func(h native.Handle) (native.Handle, native.Code) {
		return lib().ColorConvert(native.HSV2RGB, h)
	})
}

func RGB2HSV(in *Array) (*Array, error) {
	return op1("rgb2hsv", in, func(h native.Handle) (native.Handle, native.Code) {
		return lib().ColorConvert(native.RGB2HSV, h)
	})
}

// ConvertColorSpace converts between any two of the supported color spaces.
func ConvertColorSpace(in *Array, to, from ColorSpace) (*Array, error) {
	return op1("color_space", in, func(h native.Handle) (native.Handle, native.Code) {
		return lib().ColorSpace(h, int(to), int(from))
	})
}

// Unwrap rearranges wx x wy patches, taken with strides sx, sy after
// padding px, py, into columns (or rows when isColumn is false).
func Unwrap(in *Array, wx, wy, sx, sy, px, py int64, isColumn bool) (*Array, error) {
	return op1("unwrap", in, func(h native.Handle) (native.Handle, native.Code) {
		return lib().Unwrap(h, wx, wy, sx, sy, px, py, isColumn)
	})
}

// Wrap is the inverse of Unwrap for an ox x oy output.
func Wrap(in *Array, ox, oy, wx, wy, sx, sy, px, py int64, isColumn bool) (*Array, error) {
	return op1("wrap", in, func(h native.Handle) (native.Handle, native.Code) {
		return lib().Wrap(h, ox, oy, wx, wy, sx, sy, px, py, isColumn)
	})
}

// SAT is the summed area table of in.
func SAT(in *Array) (*Array, error) { return op1("sat", in, lib().SAT) }

func YCbCr2RGB(in *Array, std YCCStd) (*Array, error) {
	return op1("ycbcr2rgb", in, func(h native.Handle) (native.Handle, native.Code) {
		return lib().YCbCr2RGB(h, int(std))
	})
}

func RGB2YCbCr(in *Array, std YCCStd) (*Array, error) {
	return op1("rgb2ycbcr", in, func(h native.Handle) (native.Handle, native.Code) {
		return lib().RGB2YCbCr(h, int(std))
	})
}

// Moments computes the requested moments per image.
func Moments(in *Array, moment MomentType) (*Array, error) {
	return op1("moments", in, func(h native.Handle) (native.Handle, native.Code) {
		return lib().Moments(h, int(moment))
	})
}

// MomentsAll returns one value per moment flag set in moment, lowest first.
func MomentsAll(in *Array, moment MomentType) ([]float64, error) {
	h, err := in.handle()
	if err != nil {
		return nil, err
	}
	defer runtime.KeepAlive(in)
	m, c := lib().MomentsAll(h, int(moment))
	if err := check("moments_all", c); err != nil {
		return nil, err
	}
	return m, nil
}

func Canny(in *Array, thr CannyThresholdType, low, high float32, sobelWindow uint32, fast bool) (*Array, error) {
	return op1("canny", in, func(h native.Handle) (native.Handle, native.Code) {
		return lib().Canny(h, int(thr), low, high, sobelWindow, fast)
	})
}

func AnisotropicDiffusion(in *Array, dt, k float32, iters uint32, flux FluxFn, eq DiffusionEq) (*Array, error) {
	return op1("anisotropic_diffusion", in, func(h native.Handle) (native.Handle, native.Code) {
		return lib().AnisotropicDiffusion(h, dt, k, iters, int(flux), int(eq))
	})
}

// ConfidenceCC grows a segmentation from the seed points in seedx, seedy.
func ConfidenceCC(in, seedx, seedy *Array, radius, multiplier uint32, iter int, segmented float64) (*Array, error) {
	return arrays3("confidence_cc", in, seedx, seedy, func(x, sx, sy native.Handle) (native.Handle, native.Code) {
		return lib().ConfidenceCC(x, sx, sy, radius, multiplier, iter, segmented)
	})
}

func IterativeDeconv(in, ker *Array, iters uint32, relax float32, algo IterativeDeconvAlgo) (*Array, error) {
	return op2("iterative_deconv", in, ker, func(x, k native.Handle) (native.Handle, native.Code) {
		return lib().IterativeDeconv(x, k, iters, relax, int(algo))
	})
}

func InverseDeconv(in, psf *Array, gamma float32, algo InverseDeconvAlgo) (*Array, error) {
	return op2("inverse_deconv", in, psf, func(x, p native.Handle) (native.Handle, native.Code) {
		return lib().InverseDeconv(x, p, gamma, int(algo))
	})
}
