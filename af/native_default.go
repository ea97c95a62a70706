//go:build !arrayfire || !cgo

package af

import (
	"github.com/23skdu/arrayfire-go/internal/native"
	"github.com/23skdu/arrayfire-go/internal/native/host"
)

func init() {
	native.Use(host.New())
}
