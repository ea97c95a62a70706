//go:build !af_no_random

package af

import (
	"runtime"
	"sync/atomic"

	"github.com/rs/zerolog/log"

	"github.com/23skdu/arrayfire-go/internal/native"
)

func init() { registerFeature("random") }

// RandomEngine is a native random number generator. Engines from
// NewRandomEngine and Retain must be released; the engine returned by
// DefaultRandomEngine belongs to the library and Release on it is a no-op.
type RandomEngine struct {
	h        atomic.Uintptr
	borrowed bool
}

func newRandomEngine(h native.Handle) *RandomEngine {
	e := &RandomEngine{}
	e.h.Store(uintptr(h))
	runtime.SetFinalizer(e, (*RandomEngine).finalize)
	return e
}

func (e *RandomEngine) finalize() {
	if h := native.Handle(e.h.Swap(0)); h != 0 {
		if c := lib().ReleaseRandomEngine(h); c != native.Success {
			log.Debug().Int32("code", int32(c)).Msg("af: random engine finalizer release failed")
		}
	}
}

func (e *RandomEngine) handle() (native.Handle, error) {
	if e == nil {
		return 0, ErrReleased
	}
	h := native.Handle(e.h.Load())
	if h == 0 {
		return 0, ErrReleased
	}
	return h, nil
}

// NewRandomEngine creates an engine of the given type seeded with seed.
func NewRandomEngine(typ RandomEngineType, seed uint64) (*RandomEngine, error) {
	h, c := lib().CreateRandomEngine(int(typ), seed)
	if err := check("create_random_engine", c); err != nil {
		return nil, err
	}
	return newRandomEngine(h), nil
}

// Release frees the engine once; later calls return nil.
func (e *RandomEngine) Release() error {
	if e == nil {
		return nil
	}
	h := native.Handle(e.h.Swap(0))
	if h == 0 {
		return nil
	}
	runtime.SetFinalizer(e, nil)
	if e.borrowed {
		return nil
	}
	return check("release_random_engine", lib().ReleaseRandomEngine(h))
}

// Retain returns a second handle to the same generator state.
func (e *RandomEngine) Retain() (*RandomEngine, error) {
	h, err := e.handle()
	if err != nil {
		return nil, err
	}
	defer runtime.KeepAlive(e)
	out, c := lib().RetainRandomEngine(h)
	if err := check("retain_random_engine", c); err != nil {
		return nil, err
	}
	return newRandomEngine(out), nil
}

// SetType switches the generator; the stream restarts from the seed.
func (e *RandomEngine) SetType(typ RandomEngineType) error {
	h, err := e.handle()
	if err != nil {
		return err
	}
	defer runtime.KeepAlive(e)
	return check("random_engine_set_type", lib().RandomEngineSetType(h, int(typ)))
}

func (e *RandomEngine) Type() (RandomEngineType, error) {
	h, err := e.handle()
	if err != nil {
		return 0, err
	}
	defer runtime.KeepAlive(e)
	t, c := lib().RandomEngineType(h)
	return RandomEngineType(t), check("random_engine_get_type", c)
}

func (e *RandomEngine) SetSeed(seed uint64) error {
	h, err := e.handle()
	if err != nil {
		return err
	}
	defer runtime.KeepAlive(e)
	return check("random_engine_set_seed", lib().RandomEngineSetSeed(h, seed))
}

func (e *RandomEngine) Seed() (uint64, error) {
	h, err := e.handle()
	if err != nil {
		return 0, err
	}
	defer runtime.KeepAlive(e)
	s, c := lib().RandomEngineSeed(h)
	return s, check("random_engine_get_seed", c)
}

// DefaultRandomEngine returns the engine behind Randu and Randn.
func DefaultRandomEngine() (*RandomEngine, error) {
	h, c := lib().DefaultRandomEngine()
	if err := check("get_default_random_engine", c); err != nil {
		return nil, err
	}
	e := &RandomEngine{borrowed: true}
	e.h.Store(uintptr(h))
	return e, nil
}

func SetDefaultRandomEngineType(typ RandomEngineType) error {
	return check("set_default_random_engine_type", lib().SetDefaultRandomEngineType(int(typ)))
}

func draw(op string, dims Dim4, t DType, e *RandomEngine, f func([]int64, native.DType, native.Handle) (native.Handle, native.Code)) (*Array, error) {
	eh, err := e.handle()
	if err != nil {
		return nil, err
	}
	defer runtime.KeepAlive(e)
	h, c := f(dims.slice(), native.DType(t), eh)
	return wrap(op, h, c)
}

// RandomUniform draws from [0, 1) using e. Integer types take raw bits.
func RandomUniform(dims Dim4, t DType, e *RandomEngine) (*Array, error) {
	return draw("random_uniform", dims, t, e, lib().RandomUniform)
}

// RandomNormal draws from the standard normal distribution using e.
func RandomNormal(dims Dim4, t DType, e *RandomEngine) (*Array, error) {
	return draw("random_normal", dims, t, e, lib().RandomNormal)
}

// Randu is RandomUniform on the default engine.
func Randu(dims Dim4, t DType) (*Array, error) {
	h, c := lib().Randu(dims.slice(), native.DType(t))
	return wrap("randu", h, c)
}

func Randn(dims Dim4, t DType) (*Array, error) {
	h, c := lib().Randn(dims.slice(), native.DType(t))
	return wrap("randn", h, c)
}

// SetSeed reseeds the default engine.
func SetSeed(seed uint64) error {
	return check("set_seed", lib().SetSeed(seed))
}

func Seed() (uint64, error) {
	s, c := lib().Seed()
	return s, check("get_seed", c)
}
