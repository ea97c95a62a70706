package host

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/23skdu/arrayfire-go/internal/native"
)

// Random engine types, matching af_random_engine_type.
const (
	enginePhilox   = 100
	engineThreefry = 200
	engineMersenne = 300
)

// engine is a seeded generator shared by retained engine handles. The host
// library draws every engine type from a PCG stream keyed by seed and type,
// so sequences are reproducible but differ from the native generators.
type engine struct {
	typ  int
	seed uint64
	src  *rand.PCG
	refs int
}

func validEngine(typ int) bool {
	return typ == enginePhilox || typ == engineThreefry || typ == engineMersenne
}

func (e *engine) reset() { e.src = rand.NewPCG(e.seed, uint64(e.typ)) }

// newEngine registers a fresh engine. Callers hold l.mu or own l exclusively.
func (l *Lib) newEngine(typ int, seed uint64) native.Handle {
	e := &engine{typ: typ, seed: seed, refs: 1}
	e.reset()
	h := l.handle()
	l.engines[h] = e
	return h
}

func (l *Lib) getEngine(h native.Handle) (*engine, native.Code) {
	e, ok := l.engines[h]
	if !ok {
		return nil, l.fail(native.ErrArg, "invalid random engine handle %d", h)
	}
	return e, native.Success
}

func (l *Lib) CreateRandomEngine(typ int, seed uint64) (native.Handle, native.Code) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !validEngine(typ) {
		return 0, l.fail(native.ErrArg, "invalid random engine type %d", typ)
	}
	return l.newEngine(typ, seed), native.Success
}

func (l *Lib) RetainRandomEngine(h native.Handle) (native.Handle, native.Code) {
	l.mu.Lock()
	defer l.mu.Unlock()
	e, c := l.getEngine(h)
	if c != native.Success {
		return 0, c
	}
	e.refs++
	out := l.handle()
	l.engines[out] = e
	return out, native.Success
}

func (l *Lib) ReleaseRandomEngine(h native.Handle) native.Code {
	l.mu.Lock()
	defer l.mu.Unlock()
	e, c := l.getEngine(h)
	if c != native.Success {
		return c
	}
	if h == l.defaultEngine {
		return native.Success
	}
	e.refs--
	delete(l.engines, h)
	return native.Success
}

func (l *Lib) RandomEngineSetType(h native.Handle, typ int) native.Code {
	l.mu.Lock()
	defer l.mu.Unlock()
	e, c := l.getEngine(h)
	if c != native.Success {
		return c
	}
	if !validEngine(typ) {
		return l.fail(native.ErrArg, "invalid random engine type %d", typ)
	}
	e.typ = typ
	e.reset()
	return native.Success
}

func (l *Lib) RandomEngineType(h native.Handle) (int, native.Code) {
	l.mu.Lock()
	defer l.mu.Unlock()
	e, c := l.getEngine(h)
	if c != native.Success {
		return 0, c
	}
	return e.typ, native.Success
}

func (l *Lib) RandomEngineSetSeed(h native.Handle, seed uint64) native.Code {
	l.mu.Lock()
	defer l.mu.Unlock()
	e, c := l.getEngine(h)
	if c != native.Success {
		return c
	}
	e.seed = seed
	e.reset()
	return native.Success
}

func (l *Lib) RandomEngineSeed(h native.Handle) (uint64, native.Code) {
	l.mu.Lock()
	defer l.mu.Unlock()
	e, c := l.getEngine(h)
	if c != native.Success {
		return 0, c
	}
	return e.seed, native.Success
}

func (l *Lib) DefaultRandomEngine() (native.Handle, native.Code) {
	return l.defaultEngine, native.Success
}

func (l *Lib) SetDefaultRandomEngineType(typ int) native.Code {
	return l.RandomEngineSetType(l.defaultEngine, typ)
}

// draw fills an array of the given shape from e. Integer types take raw
// bits truncated to their width; floating types use dist.
func (l *Lib) draw(dims []int64, t native.DType, h native.Handle, normal bool) (native.Handle, native.Code) {
	return l.op0(func() (*array, native.Code) {
		d, c := l.shape(dims, t)
		if c != native.Success {
			return nil, c
		}
		e, c := l.getEngine(h)
		if c != native.Success {
			return nil, c
		}
		if normal && !isFloat(t) {
			return nil, l.fail(native.ErrType, "normal distribution needs a floating point type")
		}
		var sample func() float64
		if normal {
			sample = distuv.Normal{Mu: 0, Sigma: 1, Src: e.src}.Rand
		} else {
			sample = distuv.Uniform{Min: 0, Max: 1, Src: e.src}.Rand
		}
		re, im := planes(t, product(d))
		for i := range re {
			if !isFloat(t) {
				re[i] = bitsOf(t, e.src.Uint64())
				continue
			}
			re[i] = sample()
			if im != nil {
				im[i] = sample()
			}
		}
		return fromPlanes(d, t, re, im), native.Success
	})
}

func bitsOf(t native.DType, v uint64) float64 {
	switch t {
	case native.B8:
		return float64(v & 1)
	case native.U8:
		return float64(uint8(v))
	case native.S16:
		return float64(int16(v))
	case native.U16:
		return float64(uint16(v))
	case native.S32:
		return float64(int32(v))
	case native.U32:
		return float64(uint32(v))
	case native.S64:
		return float64(int64(v))
	}
	return float64(v)
}

func (l *Lib) RandomUniform(dims []int64, t native.DType, e native.Handle) (native.Handle, native.Code) {
	return l.draw(dims, t, e, false)
}

func (l *Lib) RandomNormal(dims []int64, t native.DType, e native.Handle) (native.Handle, native.Code) {
	return l.draw(dims, t, e, true)
}

func (l *Lib) Randu(dims []int64, t native.DType) (native.Handle, native.Code) {
	return l.draw(dims, t, l.defaultEngine, false)
}

func (l *Lib) Randn(dims []int64, t native.DType) (native.Handle, native.Code) {
	return l.draw(dims, t, l.defaultEngine, true)
}

func (l *Lib) SetSeed(seed uint64) native.Code {
	return l.RandomEngineSetSeed(l.defaultEngine, seed)
}

func (l *Lib) Seed() (uint64, native.Code) {
	return l.RandomEngineSeed(l.defaultEngine)
}
