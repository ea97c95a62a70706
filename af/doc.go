// Package af binds the ArrayFire parallel array library.
//
// Arrays are proxies for native af_array handles. Every handle produced by
// this package is released exactly once: explicitly through Release, or by
// a finalizer when an Array is dropped without one. Operations on a released
// Array fail with ErrReleased instead of reaching the native library.
//
// Native status codes are translated into *Error values. A process-wide
// callback registered with RegisterErrorHandler observes every failure.
//
// Built with -tags arrayfire (and cgo), calls go to the ArrayFire shared
// library. Otherwise a pure-Go host library serves the core feature groups
// (data, arithmetic, algorithm, blas, lapack, signal, random, statistics,
// indexing) and the remaining groups fail with CodeNotSupported.
//
// Feature groups can be compiled out with af_no_<group> build tags, for
// example af_no_graphics. EnabledFeatures reports what was compiled in.
package af
