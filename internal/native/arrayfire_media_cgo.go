//go:build arrayfire && cgo

package native

/*
#include <arrayfire.h>
#include <stdlib.h>
*/
import "C"
import "unsafe"

func feat(h Handle) C.af_features { return C.af_features(unsafe.Pointer(uintptr(h))) }

func fhdl(f C.af_features) Handle { return Handle(uintptr(unsafe.Pointer(f))) }

func (afLib) FFT(kind FFTKind, rank int, in Handle, norm float64, odims [3]int64) (Handle, Code) {
	var out C.af_array
	a, n := arr(in), C.double(norm)
	d0, d1, d2 := C.dim_t(odims[0]), C.dim_t(odims[1]), C.dim_t(odims[2])
	var e C.af_err
	switch {
	case kind == Forward && rank == 1:
		e = C.af_fft(&out, a, n, d0)
	case kind == Forward && rank == 2:
		e = C.af_fft2(&out, a, n, d0, d1)
	case kind == Forward && rank == 3:
		e = C.af_fft3(&out, a, n, d0, d1, d2)
	case kind == Inverse && rank == 1:
		e = C.af_ifft(&out, a, n, d0)
	case kind == Inverse && rank == 2:
		e = C.af_ifft2(&out, a, n, d0, d1)
	case kind == Inverse && rank == 3:
		e = C.af_ifft3(&out, a, n, d0, d1, d2)
	default:
		return 0, ErrArg
	}
	return hdl(out), code(e)
}

func (afLib) FFTInplace(kind FFTKind, rank int, in Handle, norm float64) Code {
	a, n := arr(in), C.double(norm)
	switch {
	case kind == Forward && rank == 1:
		return code(C.af_fft_inplace(a, n))
	case kind == Forward && rank == 2:
		return code(C.af_fft2_inplace(a, n))
	case kind == Forward && rank == 3:
		return code(C.af_fft3_inplace(a, n))
	case kind == Inverse && rank == 1:
		return code(C.af_ifft_inplace(a, n))
	case kind == Inverse && rank == 2:
		return code(C.af_ifft2_inplace(a, n))
	case kind == Inverse && rank == 3:
		return code(C.af_ifft3_inplace(a, n))
	}
	return ErrArg
}

func (afLib) FFTR2C(rank int, in Handle, norm float64, pad [3]int64) (Handle, Code) {
	var out C.af_array
	a, n := arr(in), C.double(norm)
	var e C.af_err
	switch rank {
	case 1:
		e = C.af_fft_r2c(&out, a, n, C.dim_t(pad[0]))
	case 2:
		e = C.af_fft2_r2c(&out, a, n, C.dim_t(pad[0]), C.dim_t(pad[1]))
	case 3:
		e = C.af_fft3_r2c(&out, a, n, C.dim_t(pad[0]), C.dim_t(pad[1]), C.dim_t(pad[2]))
	default:
		return 0, ErrArg
	}
	return hdl(out), code(e)
}

func (afLib) FFTC2R(rank int, in Handle, norm float64, isOdd bool) (Handle, Code) {
	var out C.af_array
	a, n, odd := arr(in), C.double(norm), C.bool(isOdd)
	var e C.af_err
	switch rank {
	case 1:
		e = C.af_fft_c2r(&out, a, n, odd)
	case 2:
		e = C.af_fft2_c2r(&out, a, n, odd)
	case 3:
		e = C.af_fft3_c2r(&out, a, n, odd)
	default:
		return 0, ErrArg
	}
	return hdl(out), code(e)
}

func (afLib) Approx1(in, pos Handle, method int, offGrid float32) (Handle, Code) {
	var out C.af_array
	e := C.af_approx1(&out, arr(in), arr(pos), C.af_interp_type(method), C.float(offGrid))
	return hdl(out), code(e)
}

func (afLib) Approx2(in, pos0, pos1 Handle, method int, offGrid float32) (Handle, Code) {
	var out C.af_array
	e := C.af_approx2(&out, arr(in), arr(pos0), arr(pos1), C.af_interp_type(method), C.float(offGrid))
	return hdl(out), code(e)
}

func (afLib) Convolve(rank int, signal, filter Handle, mode, domain int) (Handle, Code) {
	var out C.af_array
	s, f := arr(signal), arr(filter)
	m, d := C.af_conv_mode(mode), C.af_conv_domain(domain)
	var e C.af_err
	switch rank {
	case 1:
		e = C.af_convolve1(&out, s, f, m, d)
	case 2:
		e = C.af_convolve2(&out, s, f, m, d)
	case 3:
		e = C.af_convolve3(&out, s, f, m, d)
	default:
		return 0, ErrArg
	}
	return hdl(out), code(e)
}

func (afLib) Convolve2Sep(colFilter, rowFilter, signal Handle, mode int) (Handle, Code) {
	var out C.af_array
	e := C.af_convolve2_sep(&out, arr(colFilter), arr(rowFilter), arr(signal), C.af_conv_mode(mode))
	return hdl(out), code(e)
}

func (afLib) FFTConvolve(rank int, signal, filter Handle, mode int) (Handle, Code) {
	var out C.af_array
	s, f, m := arr(signal), arr(filter), C.af_conv_mode(mode)
	var e C.af_err
	switch rank {
	case 1:
		e = C.af_fft_convolve1(&out, s, f, m)
	case 2:
		e = C.af_fft_convolve2(&out, s, f, m)
	case 3:
		e = C.af_fft_convolve3(&out, s, f, m)
	default:
		return 0, ErrArg
	}
	return hdl(out), code(e)
}

func (afLib) FIR(b, x Handle) (Handle, Code) {
	var out C.af_array
	e := C.af_fir(&out, arr(b), arr(x))
	return hdl(out), code(e)
}

func (afLib) IIR(b, a, x Handle) (Handle, Code) {
	var out C.af_array
	e := C.af_iir(&out, arr(b), arr(a), arr(x))
	return hdl(out), code(e)
}

func (afLib) Medfilt1(in Handle, width int64, border int) (Handle, Code) {
	var out C.af_array
	e := C.af_medfilt1(&out, arr(in), C.dim_t(width), C.af_border_type(border))
	return hdl(out), code(e)
}

func (afLib) SetFFTPlanCacheSize(n uint64) Code {
	return code(C.af_set_fft_plan_cache_size(C.size_t(n)))
}

func (afLib) Gradient(in Handle) (Handle, Handle, Code) {
	var dx, dy C.af_array
	e := C.af_gradient(&dx, &dy, arr(in))
	return hdl(dx), hdl(dy), code(e)
}

func (afLib) LoadImage(path string, color bool) (Handle, Code) {
	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))
	var out C.af_array
	e := C.af_load_image(&out, cpath, C.bool(color))
	return hdl(out), code(e)
}

func (afLib) SaveImage(path string, in Handle) Code {
	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))
	return code(C.af_save_image(cpath, arr(in)))
}

func (afLib) LoadImageNative(path string) (Handle, Code) {
	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))
	var out C.af_array
	e := C.af_load_image_native(&out, cpath)
	return hdl(out), code(e)
}

func (afLib) SaveImageNative(path string, in Handle) Code {
	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))
	return code(C.af_save_image_native(cpath, arr(in)))
}

func (afLib) ImageIOAvailable() (bool, Code) {
	var b C.bool
	e := C.af_is_image_io_available(&b)
	return bool(b), code(e)
}

func (afLib) Resize(in Handle, odim0, odim1 int64, method int) (Handle, Code) {
	var out C.af_array
	e := C.af_resize(&out, arr(in), C.dim_t(odim0), C.dim_t(odim1), C.af_interp_type(method))
	return hdl(out), code(e)
}

func (afLib) Transform(in, tf Handle, odim0, odim1 int64, method int, inverse bool) (Handle, Code) {
	var out C.af_array
	e := C.af_transform(&out, arr(in), arr(tf), C.dim_t(odim0), C.dim_t(odim1),
		C.af_interp_type(method), C.bool(inverse))
	return hdl(out), code(e)
}

func (afLib) Rotate(in Handle, theta float32, crop bool, method int) (Handle, Code) {
	var out C.af_array
	e := C.af_rotate(&out, arr(in), C.float(theta), C.bool(crop), C.af_interp_type(method))
	return hdl(out), code(e)
}

func (afLib) Translate(in Handle, t0, t1 float32, odim0, odim1 int64, method int) (Handle, Code) {
	var out C.af_array
	e := C.af_translate(&out, arr(in), C.float(t0), C.float(t1), C.dim_t(odim0), C.dim_t(odim1),
		C.af_interp_type(method))
	return hdl(out), code(e)
}

func (afLib) Scale(in Handle, s0, s1 float32, odim0, odim1 int64, method int) (Handle, Code) {
	var out C.af_array
	e := C.af_scale(&out, arr(in), C.float(s0), C.float(s1), C.dim_t(odim0), C.dim_t(odim1),
		C.af_interp_type(method))
	return hdl(out), code(e)
}

func (afLib) Skew(in Handle, s0, s1 float32, odim0, odim1 int64, method int, inverse bool) (Handle, Code) {
	var out C.af_array
	e := C.af_skew(&out, arr(in), C.float(s0), C.float(s1), C.dim_t(odim0), C.dim_t(odim1),
		C.af_interp_type(method), C.bool(inverse))
	return hdl(out), code(e)
}

func (afLib) Histogram(in Handle, nbins uint32, min, max float64) (Handle, Code) {
	var out C.af_array
	e := C.af_histogram(&out, arr(in), C.uint(nbins), C.double(min), C.double(max))
	return hdl(out), code(e)
}

func (afLib) Morph(op MorphOp, in, mask Handle) (Handle, Code) {
	var out C.af_array
	a, m := arr(in), arr(mask)
	var e C.af_err
	switch op {
	case Dilate:
		e = C.af_dilate(&out, a, m)
	case Erode:
		e = C.af_erode(&out, a, m)
	case Dilate3:
		e = C.af_dilate3(&out, a, m)
	case Erode3:
		e = C.af_erode3(&out, a, m)
	default:
		return 0, ErrArg
	}
	return hdl(out), code(e)
}

func (afLib) Bilateral(in Handle, spatial, chromatic float32, color bool) (Handle, Code) {
	var out C.af_array
	e := C.af_bilateral(&out, arr(in), C.float(spatial), C.float(chromatic), C.bool(color))
	return hdl(out), code(e)
}

func (afLib) MeanShift(in Handle, spatial, chromatic float32, iter uint32, color bool) (Handle, Code) {
	var out C.af_array
	e := C.af_mean_shift(&out, arr(in), C.float(spatial), C.float(chromatic), C.uint(iter), C.bool(color))
	return hdl(out), code(e)
}

func (afLib) WindowFilter(f WindowFilter, in Handle, length, width int64, border int) (Handle, Code) {
	var out C.af_array
	a, l, w, b := arr(in), C.dim_t(length), C.dim_t(width), C.af_border_type(border)
	var e C.af_err
	switch f {
	case MinFilter:
		e = C.af_minfilt(&out, a, l, w, b)
	case MaxFilter:
		e = C.af_maxfilt(&out, a, l, w, b)
	case MedianFilter:
		e = C.af_medfilt(&out, a, l, w, b)
	default:
		return 0, ErrArg
	}
	return hdl(out), code(e)
}

func (afLib) Regions(in Handle, conn int, t DType) (Handle, Code) {
	var out C.af_array
	e := C.af_regions(&out, arr(in), C.af_connectivity(conn), C.af_dtype(t))
	return hdl(out), code(e)
}

func (afLib) Sobel(in Handle, kerSize uint32) (Handle, Handle, Code) {
	var dx, dy C.af_array
	e := C.af_sobel_operator(&dx, &dy, arr(in), C.uint(kerSize))
	return hdl(dx), hdl(dy), code(e)
}

func (afLib) RGB2Gray(in Handle, r, g, b float32) (Handle, Code) {
	var out C.af_array
	e := C.af_rgb2gray(&out, arr(in), C.float(r), C.float(g), C.float(b))
	return hdl(out), code(e)
}

func (afLib) Gray2RGB(in Handle, r, g, b float32) (Handle, Code) {
	var out C.af_array
	e := C.af_gray2rgb(&out, arr(in), C.float(r), C.float(g), C.float(b))
	return hdl(out), code(e)
}

func (afLib) HistEqual(in, hist Handle) (Handle, Code) {
	var out C.af_array
	e := C.af_hist_equal(&out, arr(in), arr(hist))
	return hdl(out), code(e)
}

func (afLib) GaussianKernel(rows, cols int, sigmaR, sigmaC float64) (Handle, Code) {
	var out C.af_array
	e := C.af_gaussian_kernel(&out, C.int(rows), C.int(cols), C.double(sigmaR), C.double(sigmaC))
	return hdl(out), code(e)
}

func (afLib) ColorConvert(conv ColorConv, in Handle) (Handle, Code) {
	var out C.af_array
	var e C.af_err
	switch conv {
	case HSV2RGB:
		e = C.af_hsv2rgb(&out, arr(in))
	case RGB2HSV:
		e = C.af_rgb2hsv(&out, arr(in))
	default:
		return 0, ErrArg
	}
	return hdl(out), code(e)
}

func (afLib) ColorSpace(in Handle, to, from int) (Handle, Code) {
	var out C.af_array
	e := C.af_color_space(&out, arr(in), C.af_cspace_t(to), C.af_cspace_t(from))
	return hdl(out), code(e)
}

func (afLib) Unwrap(in Handle, wx, wy, sx, sy, px, py int64, isColumn bool) (Handle, Code) {
	var out C.af_array
	e := C.af_unwrap(&out, arr(in), C.dim_t(wx), C.dim_t(wy), C.dim_t(sx), C.dim_t(sy),
		C.dim_t(px), C.dim_t(py), C.bool(isColumn))
	return hdl(out), code(e)
}

func (afLib) Wrap(in Handle, ox, oy, wx, wy, sx, sy, px, py int64, isColumn bool) (Handle, Code) {
	var out C.af_array
	e := C.af_wrap(&out, arr(in), C.dim_t(ox), C.dim_t(oy), C.dim_t(wx), C.dim_t(wy),
		C.dim_t(sx), C.dim_t(sy), C.dim_t(px), C.dim_t(py), C.bool(isColumn))
	return hdl(out), code(e)
}

func (afLib) SAT(in Handle) (Handle, Code) {
	var out C.af_array
	e := C.af_sat(&out, arr(in))
	return hdl(out), code(e)
}

func (afLib) YCbCr2RGB(in Handle, std int) (Handle, Code) {
	var out C.af_array
	e := C.af_ycbcr2rgb(&out, arr(in), C.af_ycc_std(std))
	return hdl(out), code(e)
}

func (afLib) RGB2YCbCr(in Handle, std int) (Handle, Code) {
	var out C.af_array
	e := C.af_rgb2ycbcr(&out, arr(in), C.af_ycc_std(std))
	return hdl(out), code(e)
}

func (afLib) Moments(in Handle, moment int) (Handle, Code) {
	var out C.af_array
	e := C.af_moments(&out, arr(in), C.af_moment_type(moment))
	return hdl(out), code(e)
}

func (afLib) MomentsAll(in Handle, moment int) ([]float64, Code) {
	// FIRST_ORDER fills four values, single moments fill one.
	var buf [4]C.double
	e := C.af_moments_all(&buf[0], arr(in), C.af_moment_type(moment))
	n := 1
	if moment == 15 {
		n = 4
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(buf[i])
	}
	return out, code(e)
}

func (afLib) Canny(in Handle, thrType int, low, high float32, sobelWindow uint32, fast bool) (Handle, Code) {
	var out C.af_array
	e := C.af_canny(&out, arr(in), C.af_canny_threshold(thrType), C.float(low), C.float(high),
		C.uint(sobelWindow), C.bool(fast))
	return hdl(out), code(e)
}

func (afLib) AnisotropicDiffusion(in Handle, dt, k float32, iters uint32, flux, eq int) (Handle, Code) {
	var out C.af_array
	e := C.af_anisotropic_diffusion(&out, arr(in), C.float(dt), C.float(k), C.uint(iters),
		C.af_flux_function(flux), C.af_diffusion_eq(eq))
	return hdl(out), code(e)
}

func (afLib) ConfidenceCC(in, seedx, seedy Handle, radius, multiplier uint32, iter int, segmented float64) (Handle, Code) {
	var out C.af_array
	e := C.af_confidence_cc(&out, arr(in), arr(seedx), arr(seedy), C.uint(radius), C.uint(multiplier),
		C.int(iter), C.double(segmented))
	return hdl(out), code(e)
}

func (afLib) IterativeDeconv(in, ker Handle, iters uint32, relax float32, algo int) (Handle, Code) {
	var out C.af_array
	e := C.af_iterative_deconv(&out, arr(in), arr(ker), C.uint(iters), C.float(relax),
		C.af_iterative_deconv_algo(algo))
	return hdl(out), code(e)
}

func (afLib) InverseDeconv(in, psf Handle, gamma float32, algo int) (Handle, Code) {
	var out C.af_array
	e := C.af_inverse_deconv(&out, arr(in), arr(psf), C.float(gamma), C.af_inverse_deconv_algo(algo))
	return hdl(out), code(e)
}

func (afLib) CreateFeatures(n int64) (Handle, Code) {
	var out C.af_features
	e := C.af_create_features(&out, C.dim_t(n))
	return fhdl(out), code(e)
}

func (afLib) RetainFeatures(f Handle) (Handle, Code) {
	var out C.af_features
	e := C.af_retain_features(&out, feat(f))
	return fhdl(out), code(e)
}

func (afLib) ReleaseFeatures(f Handle) Code { return code(C.af_release_features(feat(f))) }

func (afLib) FeaturesNum(f Handle) (int64, Code) {
	var n C.dim_t
	e := C.af_get_features_num(&n, feat(f))
	return int64(n), code(e)
}

func (afLib) FeaturesField(f Handle, field FeatureField) (Handle, Code) {
	var out C.af_array
	ft := feat(f)
	var e C.af_err
	switch field {
	case FieldX:
		e = C.af_get_features_xpos(&out, ft)
	case FieldY:
		e = C.af_get_features_ypos(&out, ft)
	case FieldScore:
		e = C.af_get_features_score(&out, ft)
	case FieldOrientation:
		e = C.af_get_features_orientation(&out, ft)
	case FieldSize:
		e = C.af_get_features_size(&out, ft)
	default:
		return 0, ErrArg
	}
	return hdl(out), code(e)
}

func (afLib) FAST(in Handle, thr float32, arcLength uint32, nonMax bool, ratio float32, edge uint32) (Handle, Code) {
	var out C.af_features
	e := C.af_fast(&out, arr(in), C.float(thr), C.uint(arcLength), C.bool(nonMax), C.float(ratio), C.uint(edge))
	return fhdl(out), code(e)
}

func (afLib) Harris(in Handle, maxCorners uint32, minResponse, sigma float32, blockSize uint32, k float32) (Handle, Code) {
	var out C.af_features
	e := C.af_harris(&out, arr(in), C.uint(maxCorners), C.float(minResponse), C.float(sigma),
		C.uint(blockSize), C.float(k))
	return fhdl(out), code(e)
}

func (afLib) ORB(in Handle, fastThr float32, maxFeat uint32, sclFctr float32, levels uint32, blur bool) (Handle, Handle, Code) {
	var out C.af_features
	var desc C.af_array
	e := C.af_orb(&out, &desc, arr(in), C.float(fastThr), C.uint(maxFeat), C.float(sclFctr),
		C.uint(levels), C.bool(blur))
	return fhdl(out), hdl(desc), code(e)
}

func (afLib) SIFT(in Handle, layers uint32, contrast, edge, sigma float32, double bool, intensity, ratio float32) (Handle, Handle, Code) {
	var out C.af_features
	var desc C.af_array
	e := C.af_sift(&out, &desc, arr(in), C.uint(layers), C.float(contrast), C.float(edge), C.float(sigma),
		C.bool(double), C.float(intensity), C.float(ratio))
	return fhdl(out), hdl(desc), code(e)
}

func (afLib) GLOH(in Handle, layers uint32, contrast, edge, sigma float32, double bool, intensity, ratio float32) (Handle, Handle, Code) {
	var out C.af_features
	var desc C.af_array
	e := C.af_gloh(&out, &desc, arr(in), C.uint(layers), C.float(contrast), C.float(edge), C.float(sigma),
		C.bool(double), C.float(intensity), C.float(ratio))
	return fhdl(out), hdl(desc), code(e)
}

func (afLib) HammingMatcher(query, train Handle, distDim int64, nDist uint32) (Handle, Handle, Code) {
	var idx, dist C.af_array
	e := C.af_hamming_matcher(&idx, &dist, arr(query), arr(train), C.dim_t(distDim), C.uint(nDist))
	return hdl(idx), hdl(dist), code(e)
}

func (afLib) NearestNeighbour(query, train Handle, distDim int64, nDist uint32, mt int) (Handle, Handle, Code) {
	var idx, dist C.af_array
	e := C.af_nearest_neighbour(&idx, &dist, arr(query), arr(train), C.dim_t(distDim), C.uint(nDist),
		C.af_match_type(mt))
	return hdl(idx), hdl(dist), code(e)
}

func (afLib) MatchTemplate(search, tmpl Handle, mt int) (Handle, Code) {
	var out C.af_array
	e := C.af_match_template(&out, arr(search), arr(tmpl), C.af_match_type(mt))
	return hdl(out), code(e)
}

func (afLib) SUSAN(in Handle, radius uint32, diff, geom, ratio float32, edge uint32) (Handle, Code) {
	var out C.af_features
	e := C.af_susan(&out, arr(in), C.uint(radius), C.float(diff), C.float(geom), C.float(ratio), C.uint(edge))
	return fhdl(out), code(e)
}

func (afLib) DoG(in Handle, r1, r2 int) (Handle, Code) {
	var out C.af_array
	e := C.af_dog(&out, arr(in), C.int(r1), C.int(r2))
	return hdl(out), code(e)
}

func (afLib) Homography(xs, ys, xd, yd Handle, htype int, inlierThr float32, iters uint32, t DType) (Handle, int, Code) {
	var out C.af_array
	var inliers C.int
	e := C.af_homography(&out, &inliers, arr(xs), arr(ys), arr(xd), arr(yd), C.af_homography_type(htype),
		C.float(inlierThr), C.uint(iters), C.af_dtype(t))
	return hdl(out), int(inliers), code(e)
}
