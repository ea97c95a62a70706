package host

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/23skdu/arrayfire-go/internal/native"
)

func mk(t *testing.T, l *Lib, dt native.DType, vals []float64, dims ...int64) native.Handle {
	t.Helper()
	b := make([]byte, len(vals)*dt.Size())
	encode(dt, vals, nil, b, len(vals))
	h, c := l.CreateArray(b, dims, dt)
	require.Equal(t, native.Success, c, l.LastError())
	return h
}

func mkc(t *testing.T, l *Lib, dt native.DType, re, im []float64, dims ...int64) native.Handle {
	t.Helper()
	b := make([]byte, len(re)*dt.Size())
	encode(dt, re, im, b, len(re))
	h, c := l.CreateArray(b, dims, dt)
	require.Equal(t, native.Success, c, l.LastError())
	return h
}

func complexValues(t *testing.T, l *Lib, h native.Handle) (re, im []float64) {
	t.Helper()
	dt, c := l.Type(h)
	require.Equal(t, native.Success, c)
	n, c := l.Elements(h)
	require.Equal(t, native.Success, c)
	b := make([]byte, int(n)*dt.Size())
	require.Equal(t, native.Success, l.GetData(h, b))
	return decode(dt, b, int(n))
}

func values(t *testing.T, l *Lib, h native.Handle) []float64 {
	t.Helper()
	re, _ := complexValues(t, l, h)
	return re
}

func shapeOf(t *testing.T, l *Lib, h native.Handle) [4]int64 {
	t.Helper()
	d, c := l.Dims(h)
	require.Equal(t, native.Success, c)
	return d
}

func typeOf(t *testing.T, l *Lib, h native.Handle) native.DType {
	t.Helper()
	dt, c := l.Type(h)
	require.Equal(t, native.Success, c)
	return dt
}

// ok unwraps a handle-returning call.
func ok(t *testing.T, l *Lib) func(native.Handle, native.Code) native.Handle {
	return func(h native.Handle, c native.Code) native.Handle {
		t.Helper()
		require.Equal(t, native.Success, c, l.LastError())
		return h
	}
}
