//go:build !arrayfire || !cgo

package native

const linked = false
