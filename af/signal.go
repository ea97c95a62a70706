//go:build !af_no_signal

package af

import (
	"runtime"

	"github.com/23skdu/arrayfire-go/internal/native"
)

func init() { registerFeature("signal") }

func fft(kind native.FFTKind, rank int, op string, in *Array, norm float64, odims [3]int64) (*Array, error) {
	return op1(op, in, func(h native.Handle) (native.Handle, native.Code) {
		return lib().FFT(kind, rank, h, norm, odims)
	})
}

// unitNorm is the normalization that makes an inverse transform undo the
// forward one: 1 / (d0 * ... * d(rank-1)), using the padded sizes.
func unitNorm(in *Array, rank int, odims [3]int64) (float64, error) {
	d, err := in.Dims()
	if err != nil {
		return 0, err
	}
	n := 1.0
	for k := 0; k < rank; k++ {
		if odims[k] > 0 {
			d[k] = odims[k]
		}
		n *= float64(d[k])
	}
	if n == 0 {
		return 1, nil
	}
	return 1 / n, nil
}

// FFT transforms along dimension 0. norm scales the result; odim0 pads or
// truncates the input first (0 keeps the size).
func FFT(in *Array, norm float64, odim0 int64) (*Array, error) {
	return fft(native.Forward, 1, "fft", in, norm, [3]int64{odim0})
}

func FFT2(in *Array, norm float64, odim0, odim1 int64) (*Array, error) {
	return fft(native.Forward, 2, "fft2", in, norm, [3]int64{odim0, odim1})
}

func FFT3(in *Array, norm float64, odim0, odim1, odim2 int64) (*Array, error) {
	return fft(native.Forward, 3, "fft3", in, norm, [3]int64{odim0, odim1, odim2})
}

func IFFT(in *Array, norm float64, odim0 int64) (*Array, error) {
	return fft(native.Inverse, 1, "ifft", in, norm, [3]int64{odim0})
}

func IFFT2(in *Array, norm float64, odim0, odim1 int64) (*Array, error) {
	return fft(native.Inverse, 2, "ifft2", in, norm, [3]int64{odim0, odim1})
}

func IFFT3(in *Array, norm float64, odim0, odim1, odim2 int64) (*Array, error) {
	return fft(native.Inverse, 3, "ifft3", in, norm, [3]int64{odim0, odim1, odim2})
}

// IFFTNorm is the inverse transform scaled so that IFFTNorm(FFT(x)) == x.
func IFFTNorm(in *Array, rank int) (*Array, error) {
	norm, err := unitNorm(in, rank, [3]int64{})
	if err != nil {
		return nil, err
	}
	return fft(native.Inverse, rank, "ifft", in, norm, [3]int64{})
}

func fftInplace(kind native.FFTKind, rank int, op string, in *Array, norm float64) error {
	return do(op, in, func(h native.Handle) native.Code {
		return lib().FFTInplace(kind, rank, h, norm)
	})
}

// FFTInplace transforms a complex array in place.
func FFTInplace(in *Array, norm float64) error {
	return fftInplace(native.Forward, 1, "fft_inplace", in, norm)
}

func FFT2Inplace(in *Array, norm float64) error {
	return fftInplace(native.Forward, 2, "fft2_inplace", in, norm)
}

func FFT3Inplace(in *Array, norm float64) error {
	return fftInplace(native.Forward, 3, "fft3_inplace", in, norm)
}

func IFFTInplace(in *Array, norm float64) error {
	return fftInplace(native.Inverse, 1, "ifft_inplace", in, norm)
}

func IFFT2Inplace(in *Array, norm float64) error {
	return fftInplace(native.Inverse, 2, "ifft2_inplace", in, norm)
}

func IFFT3Inplace(in *Array, norm float64) error {
	return fftInplace(native.Inverse, 3, "ifft3_inplace", in, norm)
}

func r2c(rank int, op string, in *Array, norm float64, pad [3]int64) (*Array, error) {
	return op1(op, in, func(h native.Handle) (native.Handle, native.Code) {
		return lib().FFTR2C(rank, h, norm, pad)
	})
}

// FFTR2C transforms a real signal and keeps the d0/2+1 non-redundant
// coefficients along dimension 0.
func FFTR2C(in *Array, norm float64, pad0 int64) (*Array, error) {
	return r2c(1, "fft_r2c", in, norm, [3]int64{pad0})
}

func FFT2R2C(in *Array, norm float64, pad0, pad1 int64) (*Array, error) {
	return r2c(2, "fft2_r2c", in, norm, [3]int64{pad0, pad1})
}

func FFT3R2C(in *Array, norm float64, pad0, pad1, pad2 int64) (*Array, error) {
	return r2c(3, "fft3_r2c", in, norm, [3]int64{pad0, pad1, pad2})
}

func c2r(rank int, op string, in *Array, norm float64, isOdd bool) (*Array, error) {
	return op1(op, in, func(h native.Handle) (native.Handle, native.Code) {
		return lib().FFTC2R(rank, h, norm, isOdd)
	})
}

// FFTC2R inverts FFTR2C. isOdd selects an odd output length along
// dimension 0.
func FFTC2R(in *Array, norm float64, isOdd bool) (*Array, error) {
	return c2r(1, "fft_c2r", in, norm, isOdd)
}

func FFT2C2R(in *Array, norm float64, isOdd bool) (*Array, error) {
	return c2r(2, "fft2_c2r", in, norm, isOdd)
}

func FFT3C2R(in *Array, norm float64, isOdd bool) (*Array, error) {
	return c2r(3, "fft3_c2r", in, norm, isOdd)
}

// Approx1 interpolates in at the positions pos along dimension 0. Positions
// outside the input yield offGrid.
func Approx1(in, pos *Array, method InterpType, offGrid float32) (*Array, error) {
	return op2("approx1", in, pos, func(x, p native.Handle) (native.Handle, native.Code) {
		return lib().Approx1(x, p, int(method), offGrid)
	})
}

func Approx2(in, pos0, pos1 *Array, method InterpType, offGrid float32) (*Array, error) {
	hs, err := handles(in, pos0, pos1)
	if err != nil {
		return nil, err
	}
	defer runtime.KeepAlive([]*Array{in, pos0, pos1})
	h, c := lib().Approx2(hs[0], hs[1], hs[2], int(method), offGrid)
	return wrap("approx2", h, c)
}

func convolve(rank int, op string, signal, filter *Array, mode ConvMode, domain ConvDomain) (*Array, error) {
	return op2(op, signal, filter, func(s, f native.Handle) (native.Handle, native.Code) {
		return lib().Convolve(rank, s, f, int(mode), int(domain))
	})
}

// Convolve1 convolves along dimension 0. ConvDefault keeps the signal size
// with the filter centred; ConvExpand returns the full convolution.
func Convolve1(signal, filter *Array, mode ConvMode, domain ConvDomain) (*Array, error) {
	return convolve(1, "convolve1", signal, filter, mode, domain)
}

func Convolve2(signal, filter *Array, mode ConvMode, domain ConvDomain) (*Array, error) {
	return convolve(2, "convolve2", signal, filter, mode, domain)
}

func Convolve3(signal, filter *Array, mode ConvMode, domain ConvDomain) (*Array, error) {
	return convolve(3, "convolve3", signal, filter, mode, domain)
}

// Convolve2Sep applies a column filter and then a row filter.
func Convolve2Sep(colFilter, rowFilter, signal *Array, mode ConvMode) (*Array, error) {
	hs, err := handles(colFilter, rowFilter, signal)
	if err != nil {
		return nil, err
	}
	defer runtime.KeepAlive([]*Array{colFilter, rowFilter, signal})
	h, c := lib().Convolve2Sep(hs[0], hs[1], hs[2], int(mode))
	return wrap("convolve2_sep", h, c)
}

func fftConvolve(rank int, op string, signal, filter *Array, mode ConvMode) (*Array, error) {
	return op2(op, signal, filter, func(s, f native.Handle) (native.Handle, native.Code) {
		return lib().FFTConvolve(rank, s, f, int(mode))
	})
}

func FFTConvolve1(signal, filter *Array, mode ConvMode) (*Array, error) {
	return fftConvolve(1, "fft_convolve1", signal, filter, mode)
}

func FFTConvolve2(signal, filter *Array, mode ConvMode) (*Array, error) {
	return fftConvolve(2, "fft_convolve2", signal, filter, mode)
}

func FFTConvolve3(signal, filter *Array, mode ConvMode) (*Array, error) {
	return fftConvolve(3, "fft_convolve3", signal, filter, mode)
}

// FIR filters x with the feedforward coefficients b.
func FIR(b, x *Array) (*Array, error) {
	return op2("fir", b, x, lib().FIR)
}

// IIR filters x with feedforward b and feedback a; a[0] normalizes.
func IIR(b, a, x *Array) (*Array, error) {
	hs, err := handles(b, a, x)
	if err != nil {
		return nil, err
	}
	defer runtime.KeepAlive([]*Array{b, a, x})
	h, c := lib().IIR(hs[0], hs[1], hs[2])
	return wrap("iir", h, c)
}

// Medfilt1 is a sliding median of odd width along dimension 0.
func Medfilt1(in *Array, width int64, border BorderType) (*Array, error) {
	return op1("medfilt1", in, func(h native.Handle) (native.Handle, native.Code) {
		return lib().Medfilt1(h, width, int(border))
	})
}

func SetFFTPlanCacheSize(n uint64) error {
	return check("set_fft_plan_cache_size", lib().SetFFTPlanCacheSize(n))
}
