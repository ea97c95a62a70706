package af

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/23skdu/arrayfire-go/internal/native"
)

// refLib counts references per handle. Operations it does not override fail
// with CodeNotSupported. The multi-output calls it does override produce
// handles and then report failure, the way a native call that dies midway can.
type refLib struct {
	native.Unimplemented
	mu       sync.Mutex
	refs     map[native.Handle]int
	releases map[native.Handle]int
	owned    map[native.Handle][]native.Handle
}

func newRefLib() *refLib {
	return &refLib{
		Unimplemented: native.Unimplemented{Code: native.ErrNotSupported, Label: "refcount"},
		refs:          map[native.Handle]int{},
		releases:      map[native.Handle]int{},
		owned:         map[native.Handle][]native.Handle{},
	}
}

// useLib installs l for the duration of the test.
func useLib(t *testing.T, l native.Lib) {
	t.Helper()
	prev := native.Current()
	native.Use(l)
	t.Cleanup(func() { native.Use(prev) })
}

func (l *refLib) alloc(hs ...native.Handle) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, h := range hs {
		l.refs[h]++
	}
}

// features registers a features handle owning one array per field.
func (l *refLib) features(f native.Handle, fields ...native.Handle) native.Handle {
	l.alloc(fields...)
	l.mu.Lock()
	defer l.mu.Unlock()
	l.owned[f] = fields
	return f
}

func (l *refLib) ref(h native.Handle) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.refs[h]
}

func (l *refLib) released(h native.Handle) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.releases[h]
}

func (l *refLib) Release(h native.Handle) native.Code {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.releases[h]++
	l.refs[h]--
	if l.refs[h] < 0 {
		return native.ErrInternal
	}
	return native.Success
}

func (l *refLib) Retain(h native.Handle) (native.Handle, native.Code) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.refs[h]++
	return h, native.Success
}

func (l *refLib) ReleaseFeatures(f native.Handle) native.Code {
	l.mu.Lock()
	fields := l.owned[f]
	delete(l.owned, f)
	l.mu.Unlock()
	for _, h := range fields {
		if c := l.Release(h); c != native.Success {
			return c
		}
	}
	return native.Success
}

func (l *refLib) FeaturesField(f native.Handle, field native.FeatureField) (native.Handle, native.Code) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fields := l.owned[f]
	if int(field) >= len(fields) {
		return 0, native.ErrArg
	}
	return fields[field], native.Success
}

func (l *refLib) LU(native.Handle) (native.Handle, native.Handle, native.Handle, native.Code) {
	l.alloc(11, 12)
	return 11, 12, 0, native.ErrRuntime
}

func (l *refLib) TopK(native.Handle, int, int, int) (native.Handle, native.Handle, native.Code) {
	l.alloc(21, 22)
	return 21, 22, native.ErrInternal
}

func (l *refLib) ORB(native.Handle, float32, uint32, float32, uint32, bool) (native.Handle, native.Handle, native.Code) {
	l.features(31, 41)
	l.alloc(32)
	return 31, 32, native.ErrRuntime
}

func TestReleaseReachesLibOnce(t *testing.T) {
	l := newRefLib()
	useLib(t, l)

	t.Run("ExplicitThenFinalizer", func(t *testing.T) {
		l.alloc(1)
		a := newArray(1)
		assert.NoError(t, a.Release())
		assert.NoError(t, a.Release())
		a.finalize()
		assert.Equal(t, 1, l.released(1))
		assert.Equal(t, 0, l.ref(1))
	})

	t.Run("FinalizerThenExplicit", func(t *testing.T) {
		l.alloc(2)
		a := newArray(2)
		a.finalize()
		a.finalize()
		assert.NoError(t, a.Release())
		assert.Equal(t, 1, l.released(2))
		assert.Equal(t, 0, l.ref(2))
	})

	t.Run("ErrorPathKeepsNothing", func(t *testing.T) {
		l.alloc(3)
		a := newArray(3)
		defer a.Release()
		_, err := a.Copy()
		assert.ErrorIs(t, err, ErrNotSupported)
		assert.Equal(t, 0, l.released(3))
	})
}
