package native

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLib struct {
	Unimplemented
	created int
}

func (f *fakeLib) Name() string { return "fake" }

func (f *fakeLib) CreateHandle(dims []int64, t DType) (Handle, Code) {
	f.created++
	return Handle(f.created), Success
}

func TestUseAndCurrent(t *testing.T) {
	prev := Current()
	t.Cleanup(func() { Use(prev) })

	f := &fakeLib{Unimplemented: Unimplemented{Code: ErrNotSupported, Label: "fake"}}
	Use(f)
	require.Same(t, f, Current())

	h, c := Current().CreateHandle([]int64{2, 2}, F32)
	assert.Equal(t, Success, c)
	assert.Equal(t, Handle(1), h)

	_, c = Current().Randu([]int64{2}, F32)
	assert.Equal(t, ErrNotSupported, c)

	t.Run("NilRestoresUnavailable", func(t *testing.T) {
		Use(nil)
		_, c := Current().CreateHandle([]int64{1}, F32)
		assert.Equal(t, ErrLoadLib, c)
		assert.Equal(t, "arrayfire not linked", Current().Name())
	})
}

func TestUnimplemented(t *testing.T) {
	un := Unimplemented{Code: ErrNotSupported, Label: "host"}

	u, s, vt, c := un.SVD(1)
	assert.Zero(t, u)
	assert.Zero(t, s)
	assert.Zero(t, vt)
	assert.Equal(t, ErrNotSupported, c)

	assert.Equal(t, "host", un.Name())
	assert.Equal(t, "unimplemented", Unimplemented{}.Name())
	assert.Equal(t, "host: Function not supported", un.LastError())
	assert.Equal(t, ErrNotSupported, un.Release(1))
	assert.Empty(t, un.Revision())
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{Success, "Success"},
		{ErrNoMem, "Device out of memory"},
		{ErrSize, "Invalid input size"},
		{ErrNoDbl, "Double precision not supported for this device"},
		{ErrBkndMismatch, "There was a mismatch between an array and the current backend"},
		{Code(12345), "Unknown error"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, Describe(tt.code))
		})
	}
}

func TestDTypeSize(t *testing.T) {
	assert.Equal(t, 4, F32.Size())
	assert.Equal(t, 8, C32.Size())
	assert.Equal(t, 16, C64.Size())
	assert.Equal(t, 2, F16.Size())
	assert.Equal(t, 1, B8.Size())
	assert.Equal(t, 8, U64.Size())
	assert.Zero(t, DType(99).Size())
	assert.True(t, C64.IsComplex())
	assert.False(t, F64.IsComplex())
}

func TestLinkedMatchesBuild(t *testing.T) {
	if Linked() {
		assert.Equal(t, "arrayfire", Current().Name())
	}
}
