//go:build !af_no_vision

package af

import (
	"runtime"
	"sync/atomic"

	"github.com/rs/zerolog/log"

	"github.com/23skdu/arrayfire-go/internal/native"
)

func init() { registerFeature("vision") }

// Features holds detected keypoints: positions, score, orientation and size
// of each, one f32 array per field.
type Features struct {
	h atomic.Uintptr
}

func newFeatures(h native.Handle) *Features {
	f := &Features{}
	f.h.Store(uintptr(h))
	runtime.SetFinalizer(f, (*Features).finalize)
	return f
}

func (f *Features) finalize() {
	if h := native.Handle(f.h.Swap(0)); h != 0 {
		if c := lib().ReleaseFeatures(h); c != native.Success {
			log.Debug().Int32("code", int32(c)).Msg("af: features finalizer release failed")
		}
	}
}

func (f *Features) handle() (native.Handle, error) {
	if f == nil {
		return 0, ErrReleased
	}
	h := native.Handle(f.h.Load())
	if h == 0 {
		return 0, ErrReleased
	}
	return h, nil
}

// NewFeatures allocates room for n features.
func NewFeatures(n int64) (*Features, error) {
	h, c := lib().CreateFeatures(n)
	if err := check("create_features", c); err != nil {
		return nil, err
	}
	return newFeatures(h), nil
}

// Release frees the features once; later calls return nil.
func (f *Features) Release() error {
	if f == nil {
		return nil
	}
	h := native.Handle(f.h.Swap(0))
	if h == 0 {
		return nil
	}
	runtime.SetFinalizer(f, nil)
	return check("release_features", lib().ReleaseFeatures(h))
}

func (f *Features) Retain() (*Features, error) {
	h, err := f.handle()
	if err != nil {
		return nil, err
	}
	defer runtime.KeepAlive(f)
	out, c := lib().RetainFeatures(h)
	if err := check("retain_features", c); err != nil {
		return nil, err
	}
	return newFeatures(out), nil
}

func (f *Features) Num() (int64, error) {
	h, err := f.handle()
	if err != nil {
		return 0, err
	}
	defer runtime.KeepAlive(f)
	n, c := lib().FeaturesNum(h)
	return n, check("get_features_num", c)
}

// field returns a new reference to one per-feature array. The native getter
// lends the array owned by the features object, so it is retained before
// wrapping and stays valid after the features are released.
func (f *Features) field(op string, field native.FeatureField) (*Array, error) {
	h, err := f.handle()
	if err != nil {
		return nil, err
	}
	defer runtime.KeepAlive(f)
	borrowed, c := lib().FeaturesField(h, field)
	if err := check(op, c); err != nil {
		return nil, err
	}
	out, c := lib().Retain(borrowed)
	return wrap("retain_array", out, c)
}

func (f *Features) Xpos() (*Array, error) { return f.field("get_features_xpos", native.FieldX) }
func (f *Features) Ypos() (*Array, error) { return f.field("get_features_ypos", native.FieldY) }
func (f *Features) Score() (*Array, error) {
	return f.field("get_features_score", native.FieldScore)
}
func (f *Features) Orientation() (*Array, error) {
	return f.field("get_features_orientation", native.FieldOrientation)
}
func (f *Features) Size() (*Array, error) { return f.field("get_features_size", native.FieldSize) }

func detect(op string, in *Array, fn func(native.Handle) (native.Handle, native.Code)) (*Features, error) {
	h, err := in.handle()
	if err != nil {
		return nil, err
	}
	defer runtime.KeepAlive(in)
	out, c := fn(h)
	if err := check(op, c); err != nil {
		if out != 0 {
			lib().ReleaseFeatures(out)
		}
		return nil, err
	}
	return newFeatures(out), nil
}

// describe runs a detector that also returns one descriptor row per feature.
func describe(op string, in *Array, fn func(native.Handle) (native.Handle, native.Handle, native.Code)) (*Features, *Array, error) {
	h, err := in.handle()
	if err != nil {
		return nil, nil, err
	}
	defer runtime.KeepAlive(in)
	feat, desc, c := fn(h)
	if err := check(op, c); err != nil {
		if feat != 0 {
			lib().ReleaseFeatures(feat)
		}
		discard(desc)
		return nil, nil, err
	}
	return newFeatures(feat), newArray(desc), nil
}

// FAST detects corners whose arc of arcLength pixels differs from the
// centre by more than thr.
func FAST(in *Array, thr float32, arcLength uint32, nonMax bool, featureRatio float32, edge uint32) (*Features, error) {
	return detect("fast", in, func(h native.Handle) (native.Handle, native.Code) {
		return lib().FAST(h, thr, arcLength, nonMax, featureRatio, edge)
	})
}

func Harris(in *Array, maxCorners uint32, minResponse, sigma float32, blockSize uint32, k float32) (*Features, error) {
	return detect("harris", in, func(h native.Handle) (native.Handle, native.Code) {
		return lib().Harris(h, maxCorners, minResponse, sigma, blockSize, k)
	})
}

func ORB(in *Array, fastThr float32, maxFeatures uint32, scaleFactor float32, levels uint32, blur bool) (*Features, *Array, error) {
	return describe("orb", in, func(h native.Handle) (native.Handle, native.Handle, native.Code) {
		return lib().ORB(h, fastThr, maxFeatures, scaleFactor, levels, blur)
	})
}

func SIFT(in *Array, layers uint32, contrastThr, edgeThr, initSigma float32, doubleInput bool, intensityScale, featureRatio float32) (*Features, *Array, error) {
	return describe("sift", in, func(h native.Handle) (native.Handle, native.Handle, native.Code) {
		return lib().SIFT(h, layers, contrastThr, edgeThr, initSigma, doubleInput, intensityScale, featureRatio)
	})
}

func GLOH(in *Array, layers uint32, contrastThr, edgeThr, initSigma float32, doubleInput bool, intensityScale, featureRatio float32) (*Features, *Array, error) {
	return describe("gloh", in, func(h native.Handle) (native.Handle, native.Handle, native.Code) {
		return lib().GLOH(h, layers, contrastThr, edgeThr, initSigma, doubleInput, intensityScale, featureRatio)
	})
}

// HammingMatcher finds the nDist closest train descriptors for each query
// descriptor, returning their indices and distances.
func HammingMatcher(query, train *Array, distDim int64, nDist uint32) (idx, dist *Array, err error) {
	hs, err := handles(query, train)
	if err != nil {
		return nil, nil, err
	}
	defer runtime.KeepAlive(query)
	defer runtime.KeepAlive(train)
	i, d, c := lib().HammingMatcher(hs[0], hs[1], distDim, nDist)
	return wrap2("hamming_matcher", i, d, c)
}

func NearestNeighbour(query, train *Array, distDim int64, nDist uint32, metric MatchType) (idx, dist *Array, err error) {
	hs, err := handles(query, train)
	if err != nil {
		return nil, nil, err
	}
	defer runtime.KeepAlive(query)
	defer runtime.KeepAlive(train)
	i, d, c := lib().NearestNeighbour(hs[0], hs[1], distDim, nDist, int(metric))
	return wrap2("nearest_neighbour", i, d, c)
}

func MatchTemplate(search, tmpl *Array, metric MatchType) (*Array, error) {
	return op2("match_template", search, tmpl, func(s, t native.Handle) (native.Handle, native.Code) {
		return lib().MatchTemplate(s, t, int(metric))
	})
}

func SUSAN(in *Array, radius uint32, diffThr, geomThr, featureRatio float32, edge uint32) (*Features, error) {
	return detect("susan", in, func(h native.Handle) (native.Handle, native.Code) {
		return lib().SUSAN(h, radius, diffThr, geomThr, featureRatio, edge)
	})
}

// DoG is the difference of Gaussians with radii r1 and r2.
func DoG(in *Array, r1, r2 int) (*Array, error) {
	return op1("dog", in, func(h native.Handle) (native.Handle, native.Code) {
		return lib().DoG(h, r1, r2)
	})
}

// Homography estimates the 3x3 transform mapping source points (xs, ys) to
// destination points (xd, yd) and returns it with its inlier count.
func Homography(xs, ys, xd, yd *Array, htype HomographyType, inlierThr float32, iterations uint32, t DType) (*Array, int, error) {
	hs, err := handles(xs, ys, xd, yd)
	if err != nil {
		return nil, 0, err
	}
	defer runtime.KeepAlive([]*Array{xs, ys, xd, yd})
	h, inliers, c := lib().Homography(hs[0], hs[1], hs[2], hs[3], int(htype), inlierThr, iterations, native.DType(t))
	out, err := wrap("homography", h, c)
	if err != nil {
		return nil, 0, err
	}
	return out, inliers, nil
}
