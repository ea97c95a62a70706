package af

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnumValues(t *testing.T) {
	assert.Equal(t, 0, int(F32))
	assert.Equal(t, 12, int(F16))
	assert.Equal(t, 8, int(BackendOneAPI))
	assert.Equal(t, 207, int(CodeBatch))
	assert.Equal(t, 503, int(CodeArrBkndMismatch))
	assert.Equal(t, 300, int(RandomMersenne))
	assert.Equal(t, RandomPhilox, RandomDefault)
	assert.Equal(t, 2020, int(YCC2020))
	assert.Equal(t, 15, int(MomentFirstOrder))
}

func TestEnumStrings(t *testing.T) {
	tests := []struct {
		got  string
		want string
	}{
		{BackendCUDA.String(), "cuda"},
		{Backend(16).String(), "Backend(16)"},
		{CodeSize.String(), "AF_ERR_SIZE"},
		{InterpBicubicSpline.String(), "bicubic_spline"},
		{PadClampToEdge.String(), "clamp_to_edge"},
		{ConvDomainFreq.String(), "freq"},
		{MatchZNCC.String(), "zncc"},
		{NormMatrixLPQ.String(), "matrix_l_pq"},
		{ColorMapViridis.String(), "viridis"},
		{RandomThreefry.String(), "threefry_2x32_16"},
		{VarianceSample.String(), "sample"},
		{StorageCSR.String(), "csr"},
		{MarkerStar.String(), "star"},
		{MomentFirstOrder.String(), "first_order"},
		{TopkMax.String(), "max"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.got)
	}

	t.Run("MatProp", func(t *testing.T) {
		assert.Equal(t, "none", MatNone.String())
		assert.Equal(t, "trans", MatTrans.String())
		assert.Equal(t, "trans|lower", (MatTrans | MatLower).String())
	})
}

func TestParseBackend(t *testing.T) {
	for _, b := range []Backend{BackendDefault, BackendCPU, BackendCUDA, BackendOpenCL, BackendOneAPI} {
		got, ok := ParseBackend(b.String())
		assert.True(t, ok, b.String())
		assert.Equal(t, b, got)
	}
	_, ok := ParseBackend("metal")
	assert.False(t, ok)
}

func TestDType(t *testing.T) {
	assert.Equal(t, F32, DTypeOf[float32]())
	assert.Equal(t, C64, DTypeOf[complex128]())
	assert.Equal(t, B8, DTypeOf[bool]())
	assert.Equal(t, S64, DTypeOf[int64]())
	assert.Equal(t, U16, DTypeOf[uint16]())
	assert.Equal(t, F16, DTypeOf[Half]())

	assert.Equal(t, 16, C64.Size())
	assert.Equal(t, 2, F16.Size())
	assert.Equal(t, 1, B8.Size())
	assert.True(t, C32.IsComplex())
	assert.False(t, F64.IsComplex())
	assert.Equal(t, "f32", F32.String())
}
