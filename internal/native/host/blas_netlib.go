//go:build cgo && netlib

package host

// Matrix products and factorizations of the host library go through system
// BLAS (Accelerate on macOS, OpenBLAS on Linux) when built with -tags netlib.

import (
	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/netlib/blas/netlib"
)

func init() {
	blas64.Use(netlib.Implementation{})
	log.Debug().Msg("host: netlib BLAS enabled")
}
