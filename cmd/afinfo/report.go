package main

import (
	"fmt"
	"io"
	"runtime"
	"strings"
	"text/tabwriter"

	"golang.org/x/sys/cpu"
	"golang.org/x/text/message"

	"github.com/23skdu/arrayfire-go/af"
)

// report is a snapshot of the library, backend and device state.
type report struct {
	Library  string
	Linked   bool
	Version  string
	Backend  af.Backend
	Backends []af.Backend
	Device   int
	Devices  int
	Info     af.DeviceInfo
	Mem      af.MemInfo
	Double   bool
	Half     bool
	Features []string
	CPU      []string
	Banner   string
}

func collect(verbose bool) (*report, error) {
	r := &report{
		Library:  af.LibraryName(),
		Linked:   af.Linked(),
		Features: af.EnabledFeatures(),
		CPU:      cpuFeatures(),
	}
	major, minor, patch, err := af.Version()
	if err != nil {
		return nil, err
	}
	r.Version = fmt.Sprintf("%d.%d.%d", major, minor, patch)
	if rev := af.Revision(); rev != "" {
		r.Version += " (" + rev + ")"
	}
	if r.Backend, err = af.ActiveBackend(); err != nil {
		return nil, err
	}
	if r.Backends, err = af.AvailableBackends(); err != nil {
		return nil, err
	}
	if r.Device, err = af.Device(); err != nil {
		return nil, err
	}
	if r.Devices, err = af.DeviceCount(); err != nil {
		return nil, err
	}
	if r.Info, err = af.GetDeviceInfo(); err != nil {
		return nil, err
	}
	if r.Mem, err = af.GetMemInfo(); err != nil {
		return nil, err
	}
	if r.Double, err = af.IsDoubleAvailable(r.Device); err != nil {
		return nil, err
	}
	if r.Half, err = af.IsHalfAvailable(r.Device); err != nil {
		return nil, err
	}
	if r.Banner, err = af.InfoString(verbose); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *report) render(w io.Writer, p *message.Printer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	names := make([]string, len(r.Backends))
	for i, b := range r.Backends {
		names[i] = b.String()
	}
	rows := [][2]string{
		{"library", fmt.Sprintf("%s %s (linked=%t)", r.Library, r.Version, r.Linked)},
		{"backend", fmt.Sprintf("%s of [%s]", r.Backend, strings.Join(names, " "))},
		{"device", fmt.Sprintf("%d of %d: %s", r.Device, r.Devices, r.Info.Name)},
		{"platform", strings.TrimSpace(r.Info.Platform + " " + r.Info.Toolkit + " " + r.Info.Compute)},
		{"f64/f16", fmt.Sprintf("%t/%t", r.Double, r.Half)},
		{"allocated", fmt.Sprintf("%s in %s buffers", humanBytes(p, r.Mem.AllocBytes), p.Sprintf("%d", r.Mem.AllocBuffers))},
		{"locked", fmt.Sprintf("%s in %s buffers", humanBytes(p, r.Mem.LockBytes), p.Sprintf("%d", r.Mem.LockBuffers))},
		{"features", strings.Join(r.Features, " ")},
		{"cpu", runtime.GOARCH + " " + strings.Join(r.CPU, " ")},
	}
	for _, row := range rows {
		if _, err := fmt.Fprintf(tw, "%s\t%s\n", row[0], row[1]); err != nil {
			return err
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if r.Banner != "" {
		_, err := io.WriteString(w, strings.TrimRight(r.Banner, "\n")+"\n")
		return err
	}
	return nil
}

var byteUnits = []string{"B", "KiB", "MiB", "GiB", "TiB"}

// humanBytes formats n with a binary unit and locale digit grouping.
func humanBytes(p *message.Printer, n uint64) string {
	if n < 1024 {
		return p.Sprintf("%d B", n)
	}
	v := float64(n)
	u := 0
	for v >= 1024 && u < len(byteUnits)-1 {
		v /= 1024
		u++
	}
	return p.Sprintf("%.1f %s", v, byteUnits[u])
}

// cpuFeatures lists the SIMD extensions the host CPU reports.
func cpuFeatures() []string {
	var out []string
	add := func(ok bool, name string) {
		if ok {
			out = append(out, name)
		}
	}
	switch runtime.GOARCH {
	case "amd64", "386":
		add(cpu.X86.HasSSE41, "sse4.1")
		add(cpu.X86.HasAVX, "avx")
		add(cpu.X86.HasAVX2, "avx2")
		add(cpu.X86.HasFMA, "fma")
		add(cpu.X86.HasAVX512F, "avx512f")
	case "arm64":
		add(cpu.ARM64.HasASIMD, "asimd")
		add(cpu.ARM64.HasFPHP, "fphp")
		add(cpu.ARM64.HasSVE, "sve")
	}
	return out
}
