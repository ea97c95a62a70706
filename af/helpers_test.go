package af

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// keep unwraps an array-returning call and releases the array when the
// test ends.
func keep(t *testing.T) func(*Array, error) *Array {
	return func(a *Array, err error) *Array {
		t.Helper()
		require.NoError(t, err)
		require.NotNil(t, a)
		t.Cleanup(func() { _ = a.Release() })
		return a
	}
}

func vec[T HostType](t *testing.T, values ...T) *Array {
	t.Helper()
	return keep(t)(NewArray(values, NewDim4(int64(len(values)))))
}

func hostOf[T HostType](t *testing.T, a *Array) []T {
	t.Helper()
	v, err := Host[T](a)
	require.NoError(t, err)
	return v
}

func dims(t *testing.T, a *Array) Dim4 {
	t.Helper()
	d, err := a.Dims()
	require.NoError(t, err)
	return d
}

func dtype(t *testing.T, a *Array) DType {
	t.Helper()
	d, err := a.Type()
	require.NoError(t, err)
	return d
}

// hostOnly skips tests that pin down behaviour of the pure Go library.
func hostOnly(t *testing.T) {
	t.Helper()
	if Linked() {
		t.Skip("asserts host library behaviour")
	}
}

const tol = 1e-9
