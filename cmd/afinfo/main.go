// Command afinfo reports the active ArrayFire backend and device, runs a
// matmul benchmark and exports its result as Arrow IPC or over Flight.
//
// The benchmark needs the random and blas feature groups, so afinfo does not
// build with the af_no_random or af_no_blas tags.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/23skdu/arrayfire-go/af"
	"github.com/23skdu/arrayfire-go/internal/client"
)

var (
	backendName = flag.String("backend", "", "Backend to activate (cpu, cuda, opencl, oneapi); empty keeps the default")
	deviceID    = flag.Int("device", -1, "Device to activate; -1 keeps the current one")
	runBench    = flag.Bool("bench", false, "Run the matmul benchmark")
	benchSize   = flag.Int("size", 256, "Square matrix size for the benchmark")
	benchIters  = flag.Int("iters", 10, "Benchmark iterations")
	workers     = flag.Int("workers", 1, "Concurrent benchmark multiplications")
	flagMaxMem  = flag.String("max-mem", "1GB", "Memory admitted to concurrent multiplications (e.g. 1GB, 512MB)")
	listenAddr  = flag.String("listen", "", "Serve /metrics on this address until interrupted (e.g. :9100)")
	enableOTel  = flag.Bool("otel", false, "Enable OpenTelemetry tracing (stdout)")
	outPath     = flag.String("out", "", "Write the result matrix as an Arrow IPC stream to this file (- for stdout)")
	pushAddr    = flag.String("push", "", "Arrow Flight address to push the result matrix to")
	datasetName = flag.String("dataset", "afinfo", "Target dataset name for -push")
	verbose     = flag.Bool("verbose", false, "Debug logging and the verbose library banner")
)

var tracer = otel.Tracer("afinfo")

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).With().Caller().Logger()

	flag.Parse()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if *enableOTel {
		shutdown, err := initTracer()
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize tracer")
		}
		defer func() { _ = shutdown(context.Background()) }()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		log.Error().Err(err).Msg("afinfo failed")
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	tgt, err := parseTarget(*backendName, *deviceID)
	if err != nil {
		return err
	}

	p := message.NewPrinter(language.English)
	var rep *report
	if err := tgt.run(func() (err error) {
		rep, err = collect(*verbose)
		return err
	}); err != nil {
		return err
	}
	if err := rep.render(os.Stderr, p); err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	if *listenAddr != "" {
		srv := &http.Server{Addr: *listenAddr, Handler: metricsMux(rep, p)}
		g.Go(func() error {
			log.Info().Str("addr", *listenAddr).Msg("Serving metrics")
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				return err
			}
			return nil
		})
		g.Go(func() error {
			<-gctx.Done()
			sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return srv.Shutdown(sctx)
		})
	}

	g.Go(func() error {
		err := tgt.run(func() error { return work(gctx, p, tgt) })
		if *listenAddr == "" || err != nil {
			return err
		}
		log.Info().Msg("Done; serving metrics until interrupted")
		<-gctx.Done()
		return nil
	})
	return g.Wait()
}

// work runs the benchmark and exports its result when asked to. It must run
// inside tgt.run since the product lives on the selected backend.
func work(ctx context.Context, p *message.Printer, tgt target) error {
	if !*runBench && *outPath == "" && *pushAddr == "" {
		return nil
	}
	maxMem, err := parseBytes(*flagMaxMem)
	if err != nil {
		return err
	}
	cfg := benchConfig{Size: *benchSize, Iters: *benchIters, Workers: *workers, MaxMem: maxMem, Target: tgt}
	if !*runBench {
		cfg.Iters = 1
	}
	res, err := bench(ctx, cfg)
	if err != nil {
		return err
	}
	defer res.Result.Release()
	if *runBench {
		res.log(p)
	}

	if *outPath != "" {
		if err := writeOutput(*outPath, "matmul", res.Result); err != nil {
			return err
		}
	}
	if *pushAddr != "" {
		fc, err := client.NewFlightClient(*pushAddr)
		if err != nil {
			return fmt.Errorf("connect %s: %w", *pushAddr, err)
		}
		pusher := client.NewPusher(fc, client.NewCircuitBreaker(3, 30*time.Second), *datasetName)
		defer func() {
			if err := pusher.Close(); err != nil {
				log.Warn().Err(err).Msg("Failed to close flight client")
			}
		}()
		pctx, cancel := context.WithTimeout(ctx, 60*time.Second)
		defer cancel()
		if err := push(pctx, pusher, "matmul", res.Result); err != nil {
			return err
		}
		log.Info().Str("server", *pushAddr).Str("dataset", *datasetName).Msg("Pushed result matrix")
	}
	return nil
}

func metricsMux(rep *report, p *message.Printer) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/info", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		if err := rep.render(w, p); err != nil {
			log.Warn().Err(err).Msg("Failed to write info")
		}
	})
	return mux
}

// target is the backend and device the CLI works on. Both selections are
// per OS thread in ArrayFire, so every goroutine touching arrays enters
// them through run.
type target struct {
	Backend    af.Backend
	HasBackend bool
	Device     int
	HasDevice  bool
}

func parseTarget(backend string, device int) (target, error) {
	var t target
	if backend != "" {
		b, ok := af.ParseBackend(backend)
		if !ok {
			return target{}, fmt.Errorf("unknown backend %q", backend)
		}
		t.Backend, t.HasBackend = b, true
	}
	if device >= 0 {
		t.Device, t.HasDevice = device, true
	}
	return t, nil
}

// run calls fn on a locked OS thread with the target backend and device
// active, restoring the previous selection afterwards.
func (t target) run(fn func() error) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	inner := fn
	if t.HasDevice {
		inner = func() error { return af.WithDevice(t.Device, fn) }
	}
	if t.HasBackend {
		return af.WithBackend(t.Backend, inner)
	}
	return inner()
}

func initTracer() (func(context.Context) error, error) {
	exporter, err := stdouttrace.New(stdouttrace.WithPrettyPrint())
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String("afinfo"),
		)),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	return tp.Shutdown, nil
}
