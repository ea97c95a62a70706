//go:build !af_no_vision && !af_no_data

package af

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/23skdu/arrayfire-go/internal/native"
)

func TestFeaturesReleased(t *testing.T) {
	var f *Features
	_, err := f.Num()
	assert.ErrorIs(t, err, ErrReleased)
	assert.NoError(t, f.Release())
}

func TestVisionOnHost(t *testing.T) {
	hostOnly(t)
	img := keep(t)(Constant(float32(0.5), NewDim4(16, 16)))

	_, err := NewFeatures(4)
	assert.ErrorIs(t, err, ErrNotSupported)

	_, err = FAST(img, 20, 9, true, 0.05, 3)
	assert.ErrorIs(t, err, ErrNotSupported)

	_, _, err = ORB(img, 20, 400, 1.5, 4, false)
	assert.ErrorIs(t, err, ErrNotSupported)

	q := keep(t)(Constant(uint32(1), NewDim4(8, 2)))
	_, _, err = HammingMatcher(q, q, 0, 1)
	assert.ErrorIs(t, err, ErrNotSupported)

	x := vec(t, float32(0), 1, 2, 3)
	_, inliers, err := Homography(x, x, x, x, HomographyRANSAC, 3, 100, F32)
	assert.ErrorIs(t, err, ErrNotSupported)
	assert.Zero(t, inliers)

	_, err = DoG(img, 1, 2)
	require.Error(t, err)
}

func TestFeatureFieldsOwnTheirReference(t *testing.T) {
	l := newRefLib()
	useLib(t, l)

	t.Run("FieldOutlivesFeatures", func(t *testing.T) {
		f := newFeatures(l.features(50, 51, 52))
		x, err := f.Xpos()
		require.NoError(t, err)
		y, err := f.Ypos()
		require.NoError(t, err)
		assert.Equal(t, 2, l.ref(51))

		require.NoError(t, x.Release())
		require.NoError(t, f.Release())
		assert.Equal(t, 1, l.ref(52), "y still holds its reference")
		require.NoError(t, y.Release())

		for _, h := range []native.Handle{51, 52} {
			assert.Equal(t, 0, l.ref(h), "handle %d", h)
			assert.Equal(t, 2, l.released(h), "handle %d", h)
		}
	})

	t.Run("FailedGetterReleasesNothing", func(t *testing.T) {
		f := newFeatures(l.features(60, 61))
		defer f.Release()
		_, err := f.Score()
		assert.ErrorIs(t, err, ErrArg)
		assert.Equal(t, 1, l.ref(61))
		assert.Equal(t, 0, l.released(61))
	})

	t.Run("DescribeFailure", func(t *testing.T) {
		l.alloc(30)
		in := newArray(30)
		defer in.Release()
		feat, desc, err := ORB(in, 20, 100, 1.5, 4, false)
		assert.ErrorIs(t, err, ErrRuntime)
		assert.Nil(t, feat)
		assert.Nil(t, desc)
		assert.Equal(t, 1, l.released(41), "array owned by the features")
		assert.Equal(t, 1, l.released(32), "descriptor")
		assert.Equal(t, 0, l.ref(41)+l.ref(32))
	})
}
