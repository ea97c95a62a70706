package main

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/23skdu/arrayfire-go/af"
	"github.com/23skdu/arrayfire-go/internal/arrowio"
)

var printer = message.NewPrinter(language.English)

func TestParseBytes(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"", 0},
		{"0", 0},
		{"1024", 1024},
		{"4GB", 4 << 30},
		{"512MB", 512 << 20},
		{"64k", 64 << 10},
		{"10B", 10},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseBytes(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("Invalid", func(t *testing.T) {
		for _, in := range []string{"lots", "-1GB", "1.5GB", "9999999999GB", "9223372036854775807K"} {
			_, err := parseBytes(in)
			assert.Error(t, err, in)
		}
	})
}

func TestHumanBytes(t *testing.T) {
	assert.Equal(t, "512 B", humanBytes(printer, 512))
	assert.Equal(t, "1.5 KiB", humanBytes(printer, 1536))
	assert.Equal(t, "3.0 GiB", humanBytes(printer, 3<<30))
}

func TestBench(t *testing.T) {
	ctx := context.Background()

	t.Run("Concurrent", func(t *testing.T) {
		res, err := bench(ctx, benchConfig{Size: 8, Iters: 5, Workers: 3, MaxMem: 1 << 20})
		require.NoError(t, err)
		defer res.Result.Release()

		d, err := res.Result.Dims()
		require.NoError(t, err)
		assert.Equal(t, af.NewDim4(8, 8), d)
		assert.Equal(t, 5, res.Iters)
		assert.Positive(t, res.GFLOPS)
		assert.LessOrEqual(t, res.Best, res.Elapsed)
	})

	t.Run("Validation", func(t *testing.T) {
		for name, cfg := range map[string]benchConfig{
			"size":    {Size: 0, Iters: 1, Workers: 1},
			"iters":   {Size: 4, Iters: 0, Workers: 1},
			"workers": {Size: 4, Iters: 1, Workers: 0},
			"budget":  {Size: 64, Iters: 1, Workers: 1, MaxMem: 1024},
		} {
			_, err := bench(ctx, cfg)
			assert.Error(t, err, name)
		}
	})

	t.Run("Cancelled", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := bench(cctx, benchConfig{Size: 4, Iters: 100, Workers: 2})
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestReport(t *testing.T) {
	rep, err := collect(false)
	require.NoError(t, err)
	assert.NotEmpty(t, rep.Library)
	assert.Equal(t, af.EnabledFeatures(), rep.Features)
	assert.GreaterOrEqual(t, rep.Devices, 1)

	var buf bytes.Buffer
	require.NoError(t, rep.render(&buf, printer))
	out := buf.String()
	for _, key := range []string{"library", "backend", "device", "allocated", "features"} {
		assert.Contains(t, out, key)
	}
	assert.Contains(t, out, rep.Backend.String())
}

func TestTarget(t *testing.T) {
	t.Run("Parse", func(t *testing.T) {
		tgt, err := parseTarget("", -1)
		require.NoError(t, err)
		assert.Equal(t, target{}, tgt)

		tgt, err = parseTarget("cpu", 0)
		require.NoError(t, err)
		assert.Equal(t, target{Backend: af.BackendCPU, HasBackend: true, Device: 0, HasDevice: true}, tgt)

		_, err = parseTarget("abacus", -1)
		assert.Error(t, err)
	})

	t.Run("ActiveInsideRun", func(t *testing.T) {
		tgt := target{Backend: af.BackendCPU, HasBackend: true, Device: 0, HasDevice: true}
		require.NoError(t, tgt.run(func() error {
			b, err := af.ActiveBackend()
			require.NoError(t, err)
			assert.Equal(t, af.BackendCPU, b)
			d, err := af.Device()
			require.NoError(t, err)
			assert.Equal(t, 0, d)
			return nil
		}))
	})

	t.Run("WorkersEnterTarget", func(t *testing.T) {
		if af.Linked() {
			t.Skip("needs a library without the CUDA backend")
		}
		cfg := benchConfig{Size: 4, Iters: 2, Workers: 2, Target: target{Backend: af.BackendCUDA, HasBackend: true}}
		_, err := bench(context.Background(), cfg)
		assert.ErrorIs(t, err, af.ErrLoadLib)
	})
}

func TestMetricsMux(t *testing.T) {
	rep, err := collect(false)
	require.NoError(t, err)
	srv := httptest.NewServer(metricsMux(rep, printer))
	defer srv.Close()

	for _, path := range []string{"/metrics", "/info"} {
		t.Run(path, func(t *testing.T) {
			resp, err := http.Get(srv.URL + path)
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, http.StatusOK, resp.StatusCode)
		})
	}
}

func TestWriteOutput(t *testing.T) {
	a, err := af.NewArray([]float32{1, 2, 3, 4}, af.NewDim4(2, 2))
	require.NoError(t, err)
	defer a.Release()

	path := filepath.Join(t.TempDir(), "out.arrow")
	require.NoError(t, writeOutput(path, "matmul", a))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	name, back, err := arrowio.NewConverter(nil).ReadStream(f)
	require.NoError(t, err)
	defer back.Release()
	assert.Equal(t, "matmul", name)
	got, err := af.Host[float32](back)
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 2, 3, 4}, got)

	assert.Error(t, writeOutput(filepath.Join(t.TempDir(), "missing", "out.arrow"), "x", a))
}

type mockPusher struct {
	mock.Mock
}

func (m *mockPusher) Push(ctx context.Context, name string, a *af.Array) error {
	return m.Called(ctx, name, a).Error(0)
}

func TestPush(t *testing.T) {
	a, err := af.NewArray([]float32{1}, af.NewDim4(1))
	require.NoError(t, err)
	defer a.Release()

	m := &mockPusher{}
	m.On("Push", mock.Anything, "ok", a).Return(nil)
	m.On("Push", mock.Anything, "bad", a).Return(errors.New("refused"))

	assert.NoError(t, push(context.Background(), m, "ok", a))
	assert.EqualError(t, push(context.Background(), m, "bad", a), "refused")
	m.AssertExpectations(t)
}
