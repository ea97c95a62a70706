package host

import "github.com/23skdu/arrayfire-go/internal/native"

// coords returns the column-major coordinates of linear index i in d.
func coords(d [4]int64, i int64) [4]int64 {
	var c [4]int64
	for k := 0; k < 4; k++ {
		if d[k] == 0 {
			return c
		}
		c[k] = i % d[k]
		i /= d[k]
	}
	return c
}

func linear(d [4]int64, c [4]int64) int64 {
	return c[0] + d[0]*(c[1]+d[1]*(c[2]+d[2]*c[3]))
}

func dimStride(d [4]int64, dim int) int64 {
	s := int64(1)
	for i := 0; i < dim; i++ {
		s *= d[i]
	}
	return s
}

// lanes calls fn once for every 1-D run of d along dim. k numbers the runs
// in the column-major order of d with d[dim] collapsed to 1, so it is also
// the linear index of the run's slot in a reduced output.
func lanes(d [4]int64, dim int, fn func(k int, base, stride int64)) {
	stride := dimStride(d, dim)
	od := d
	od[dim] = 1
	k := 0
	for i3 := int64(0); i3 < od[3]; i3++ {
		for i2 := int64(0); i2 < od[2]; i2++ {
			for i1 := int64(0); i1 < od[1]; i1++ {
				for i0 := int64(0); i0 < od[0]; i0++ {
					fn(k, linear(d, [4]int64{i0, i1, i2, i3}), stride)
					k++
				}
			}
		}
	}
}

// firstDim is the first non-singleton dimension, the default reduction axis.
func firstDim(d [4]int64) int {
	for i, v := range d {
		if v != 1 {
			return i
		}
	}
	return 0
}

func checkDim(dim int) bool { return dim >= 0 && dim < 4 }

// broadcast returns the output shape of an elementwise operation on a and b.
// Dimensions must match or one side must be 1.
func broadcast(a, b [4]int64) ([4]int64, bool) {
	var out [4]int64
	for i := range a {
		switch {
		case a[i] == b[i]:
			out[i] = a[i]
		case a[i] == 1:
			out[i] = b[i]
		case b[i] == 1:
			out[i] = a[i]
		default:
			return out, false
		}
	}
	return out, true
}

// at maps output coordinates onto an operand that may be broadcast.
func at(d [4]int64, c [4]int64) int64 {
	for i := range c {
		if d[i] == 1 {
			c[i] = 0
		}
	}
	return linear(d, c)
}

func product(d [4]int64) int64 { return d[0] * d[1] * d[2] * d[3] }

func sameShape(a, b *array) bool { return a.dims == b.dims }

func valRe(a *array, i int64) float64 { return a.buf.re[i] }

func valIm(a *array, i int64) float64 {
	if a.buf.im == nil {
		return 0
	}
	return a.buf.im[i]
}

// planes allocates output planes of n elements for type t.
func planes(t native.DType, n int64) (re, im []float64) {
	re = make([]float64, n)
	if t.IsComplex() {
		im = make([]float64, n)
	}
	return re, im
}
