package af

import "fmt"

// Dim4 is the shape of an array. Unused trailing dimensions are 1.
type Dim4 [4]int64

// NewDim4 builds a Dim4 from up to four sizes, padding the rest with 1.
func NewDim4(dims ...int64) Dim4 {
	d := Dim4{1, 1, 1, 1}
	copy(d[:], dims)
	return d
}

// Elements returns the product of all four dimensions.
func (d Dim4) Elements() int64 {
	return d[0] * d[1] * d[2] * d[3]
}

// NDims returns the number of significant dimensions: 0 for an empty shape,
// otherwise the position of the last dimension that is not 1, at least 1.
func (d Dim4) NDims() int {
	if d.Elements() == 0 {
		return 0
	}
	for i := 3; i > 0; i-- {
		if d[i] != 1 {
			return i + 1
		}
	}
	return 1
}

// Get returns dimension i, or 1 outside [0, 4).
func (d Dim4) Get(i int) int64 {
	if i < 0 || i > 3 {
		return 1
	}
	return d[i]
}

func (d Dim4) String() string {
	return fmt.Sprintf("[%d %d %d %d]", d[0], d[1], d[2], d[3])
}

func (d Dim4) slice() []int64 { return d[:] }
