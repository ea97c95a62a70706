package main

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
	"golang.org/x/text/message"

	"github.com/23skdu/arrayfire-go/af"
)

var (
	matmulDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "afinfo_matmul_duration_seconds",
		Help:    "Time spent in one benchmark matrix multiplication including sync",
		Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
	})
	matmulTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "afinfo_matmul_total",
		Help: "Benchmark matrix multiplications completed",
	})
)

type benchConfig struct {
	Size    int
	Iters   int
	Workers int
	// MaxMem bounds the bytes held by concurrent multiplications. Zero disables the bound.
	MaxMem int64
	// Target is entered by every worker goroutine.
	Target target
}

type benchResult struct {
	Result  *af.Array
	Elapsed time.Duration
	Best    time.Duration
	Iters   int
	GFLOPS  float64
}

// footprint is the memory one multiplication holds: two operands and a product.
func (c benchConfig) footprint() int64 {
	n := int64(c.Size)
	return 3 * n * n * int64(af.F32.Size())
}

func (c benchConfig) validate() error {
	switch {
	case c.Size < 1:
		return fmt.Errorf("benchmark size must be positive, got %d", c.Size)
	case c.Iters < 1:
		return fmt.Errorf("benchmark iterations must be positive, got %d", c.Iters)
	case c.Workers < 1:
		return fmt.Errorf("benchmark workers must be positive, got %d", c.Workers)
	case c.MaxMem > 0 && c.footprint() > c.MaxMem:
		return fmt.Errorf("one %dx%d multiplication needs %d bytes, above the %d byte budget", c.Size, c.Size, c.footprint(), c.MaxMem)
	}
	return nil
}

// bench multiplies two random square matrices cfg.Iters times across
// cfg.Workers goroutines. Callers run it inside cfg.Target.run and own the
// returned product.
func bench(ctx context.Context, cfg benchConfig) (*benchResult, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	ctx, span := tracer.Start(ctx, "bench", trace.WithAttributes(
		attribute.Int("size", cfg.Size),
		attribute.Int("iters", cfg.Iters),
		attribute.Int("workers", cfg.Workers),
	))
	defer span.End()

	dims := af.NewDim4(int64(cfg.Size), int64(cfg.Size))
	_, gen := tracer.Start(ctx, "randu")
	a, err := af.Randu(dims, af.F32)
	if err != nil {
		gen.End()
		return nil, err
	}
	defer a.Release()
	b, err := af.Randu(dims, af.F32)
	if err != nil {
		gen.End()
		return nil, err
	}
	defer b.Release()
	err = af.EvalMultiple(a, b)
	gen.End()
	if err != nil {
		return nil, err
	}

	var sem *semaphore.Weighted
	if cfg.MaxMem > 0 {
		sem = semaphore.NewWeighted(cfg.MaxMem)
	}

	var (
		mu   sync.Mutex
		last *af.Array
		best time.Duration
	)
	jobs := make(chan int)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(jobs)
		for i := 0; i < cfg.Iters; i++ {
			select {
			case jobs <- i:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
		return nil
	})

	start := time.Now()
	for w := 0; w < cfg.Workers; w++ {
		g.Go(func() error {
			return cfg.Target.run(func() error {
				return drain(jobs, func(i int) error {
					if sem != nil {
						if err := sem.Acquire(gctx, cfg.footprint()); err != nil {
							return err
						}
					}
					c, d, err := multiply(gctx, a, b, i)
					if sem != nil {
						sem.Release(cfg.footprint())
					}
					if err != nil {
						return err
					}
					matmulDuration.Observe(d.Seconds())
					matmulTotal.Inc()

					mu.Lock()
					if best == 0 || d < best {
						best = d
					}
					prev := last
					last = c
					mu.Unlock()
					if prev != nil {
						_ = prev.Release()
					}
					return nil
				})
			})
		})
	}
	if err := g.Wait(); err != nil {
		if last != nil {
			_ = last.Release()
		}
		span.RecordError(err)
		return nil, err
	}
	elapsed := time.Since(start)

	n := float64(cfg.Size)
	res := &benchResult{
		Result:  last,
		Elapsed: elapsed,
		Best:    best,
		Iters:   cfg.Iters,
		GFLOPS:  2 * n * n * n * float64(cfg.Iters) / elapsed.Seconds() / 1e9,
	}
	span.SetAttributes(attribute.Float64("gflops", res.GFLOPS))
	return res, nil
}

// drain calls fn for each job until jobs closes or fn fails.
func drain(jobs <-chan int, fn func(int) error) error {
	for i := range jobs {
		if err := fn(i); err != nil {
			return err
		}
	}
	return nil
}

func multiply(ctx context.Context, a, b *af.Array, iter int) (*af.Array, time.Duration, error) {
	_, span := tracer.Start(ctx, "matmul", trace.WithAttributes(attribute.Int("iter", iter)))
	defer span.End()

	start := time.Now()
	c, err := af.Matmul(a, b, af.MatNone, af.MatNone)
	if err != nil {
		span.RecordError(err)
		return nil, 0, err
	}
	if err := c.Eval(); err != nil {
		_ = c.Release()
		return nil, 0, err
	}
	if err := af.Sync(-1); err != nil {
		_ = c.Release()
		return nil, 0, err
	}
	return c, time.Since(start), nil
}

func (r *benchResult) log(p *message.Printer) {
	log.Info().
		Int("iters", r.Iters).
		Dur("elapsed", r.Elapsed).
		Dur("best", r.Best).
		Str("gflops", p.Sprintf("%.2f", r.GFLOPS)).
		Msg("Matmul benchmark")
}

// parseBytes reads sizes such as 4GB, 512MB, 64K or 1024.
func parseBytes(in string) (int64, error) {
	s := strings.TrimSpace(strings.ToUpper(in))
	if s == "" || s == "0" {
		return 0, nil
	}
	mult := int64(1)
	for _, u := range []struct {
		suffix string
		mult   int64
	}{
		{"GB", 1 << 30}, {"G", 1 << 30},
		{"MB", 1 << 20}, {"M", 1 << 20},
		{"KB", 1 << 10}, {"K", 1 << 10},
		{"B", 1},
	} {
		if strings.HasSuffix(s, u.suffix) {
			s = strings.TrimSuffix(s, u.suffix)
			mult = u.mult
			break
		}
	}
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("invalid byte size %q", in)
	}
	if v > math.MaxInt64/mult {
		return 0, fmt.Errorf("byte size %q overflows int64", in)
	}
	return v * mult, nil
}
