package af

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/23skdu/arrayfire-go/internal/native"
)

func TestBackend(t *testing.T) {
	active, err := ActiveBackend()
	require.NoError(t, err)

	avail, err := AvailableBackends()
	require.NoError(t, err)
	assert.Contains(t, avail, active)

	n, err := BackendCount()
	require.NoError(t, err)
	assert.Equal(t, len(avail), n)

	t.Run("WithBackend", func(t *testing.T) {
		var inside Backend
		err := WithBackend(active, func() error {
			var err error
			inside, err = ActiveBackend()
			return err
		})
		require.NoError(t, err)
		assert.Equal(t, active, inside)
	})

	t.Run("Host", func(t *testing.T) {
		hostOnly(t)
		assert.Equal(t, BackendCPU, active)
		assert.ErrorIs(t, SetBackend(BackendCUDA), ErrLoadLib)
		assert.Equal(t, "host", LibraryName())
	})
}

func TestDevice(t *testing.T) {
	require.NoError(t, Init())

	n, err := DeviceCount()
	require.NoError(t, err)
	assert.GreaterOrEqual(t, n, 1)

	dev, err := Device()
	require.NoError(t, err)
	require.NoError(t, Sync(dev))

	info, err := GetDeviceInfo()
	require.NoError(t, err)
	assert.NotEmpty(t, info.Name)

	s, err := InfoString(false)
	require.NoError(t, err)
	assert.Contains(t, s, "ArrayFire")

	_, err = IsDoubleAvailable(dev)
	assert.NoError(t, err)
	_, err = IsHalfAvailable(dev)
	assert.NoError(t, err)

	major, _, _, err := Version()
	require.NoError(t, err)
	assert.GreaterOrEqual(t, major, 3)

	t.Run("WithDevice", func(t *testing.T) {
		called := false
		require.NoError(t, WithDevice(dev, func() error {
			called = true
			got, err := Device()
			require.NoError(t, err)
			assert.Equal(t, dev, got)
			return nil
		}))
		assert.True(t, called)

		err := WithDevice(n+5, func() error {
			t.Fatal("fn must not run on an invalid device")
			return nil
		})
		assert.ErrorIs(t, err, ErrDevice)
	})
}

func TestMemory(t *testing.T) {
	hostOnly(t)
	a := keep(t)(NewArray(make([]float64, 128), NewDim4(128)))
	info, err := GetMemInfo()
	require.NoError(t, err)
	assert.GreaterOrEqual(t, info.AllocBytes, uint64(1024))
	assert.GreaterOrEqual(t, info.AllocBuffers, uint64(1))

	require.NoError(t, a.Lock())
	locked, err := GetMemInfo()
	require.NoError(t, err)
	assert.GreaterOrEqual(t, locked.LockBytes, uint64(1024))
	assert.GreaterOrEqual(t, locked.LockBuffers, uint64(1))
	require.NoError(t, a.Unlock())

	require.NoError(t, SetMemStepSize(4096))
	step, err := MemStepSize()
	require.NoError(t, err)
	assert.Equal(t, uint64(4096), step)

	assert.NoError(t, DeviceGC())
}

func TestFeatureRegistry(t *testing.T) {
	got := EnabledFeatures()
	assert.IsNonDecreasing(t, got)
	for _, f := range got {
		assert.True(t, HasFeature(f), f)
	}
	assert.False(t, HasFeature("teleport"))

	got[0] = "mutated"
	assert.NotEqual(t, "mutated", EnabledFeatures()[0])
}

func TestSaveArray(t *testing.T) {
	hostOnly(t)
	path := filepath.Join(t.TempDir(), "arrays.af")
	a := keep(t)(NewArray([]float32{1, 2, 3, 4}, NewDim4(2, 2)))
	b := vec(t, int32(7), 8)

	idx, err := SaveArray("weights", a, path, false)
	require.NoError(t, err)
	assert.Equal(t, 0, idx)
	idx, err = SaveArray("bias", b, path, true)
	require.NoError(t, err)
	assert.Equal(t, 1, idx)

	got := keep(t)(ReadArrayByKey(path, "weights"))
	assert.Equal(t, NewDim4(2, 2), dims(t, got))
	assert.Equal(t, []float32{1, 2, 3, 4}, hostOf[float32](t, got))

	got = keep(t)(ReadArrayByIndex(path, 1))
	assert.Equal(t, []int32{7, 8}, hostOf[int32](t, got))

	i, err := ReadArrayKeyCheck(path, "bias")
	require.NoError(t, err)
	assert.Equal(t, 1, i)
	i, err = ReadArrayKeyCheck(path, "missing")
	require.NoError(t, err)
	assert.Equal(t, -1, i)

	_, err = ReadArrayByKey(path, "missing")
	assert.ErrorIs(t, err, ErrArg)

	n, err := SizeOf(C64)
	require.NoError(t, err)
	assert.Equal(t, uint64(16), n)
}

// stickyLib accepts the first selection and refuses every later one.
type stickyLib struct {
	native.Unimplemented
	sets int
}

func (l *stickyLib) ActiveBackend() (int, native.Code) { return int(BackendCPU), native.Success }
func (l *stickyLib) Device() (int, native.Code)        { return 0, native.Success }

func (l *stickyLib) set() native.Code {
	l.sets++
	if l.sets > 1 {
		return native.ErrRuntime
	}
	return native.Success
}

func (l *stickyLib) SetBackend(int) native.Code { return l.set() }
func (l *stickyLib) SetDevice(int) native.Code  { return l.set() }

func TestRestoreFailure(t *testing.T) {
	t.Run("Backend", func(t *testing.T) {
		l := &stickyLib{Unimplemented: native.Unimplemented{Code: native.ErrNotSupported}}
		useLib(t, l)
		err := WithBackend(BackendCUDA, func() error { return nil })
		assert.ErrorIs(t, err, ErrRuntime)
		assert.Equal(t, 2, l.sets)
	})

	t.Run("Device", func(t *testing.T) {
		l := &stickyLib{Unimplemented: native.Unimplemented{Code: native.ErrNotSupported}}
		useLib(t, l)
		err := WithDevice(1, func() error { return nil })
		assert.ErrorIs(t, err, ErrRuntime)
	})

	t.Run("CallbackErrorWins", func(t *testing.T) {
		l := &stickyLib{Unimplemented: native.Unimplemented{Code: native.ErrNotSupported}}
		useLib(t, l)
		err := WithDevice(1, func() error { return ErrArg })
		assert.ErrorIs(t, err, ErrArg)
	})
}
