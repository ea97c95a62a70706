package af

import (
	"runtime"

	"github.com/23skdu/arrayfire-go/internal/native"
)

// DeviceInfo describes the active device.
type DeviceInfo struct {
	Name     string
	Platform string
	Toolkit  string
	Compute  string
}

// MemInfo reports the memory manager state of the active device.
type MemInfo struct {
	AllocBytes   uint64
	AllocBuffers uint64
	LockBytes    uint64
	LockBuffers  uint64
}

// Info prints the library and device summary to standard output.
func Info() error { return check("info", lib().Info()) }

func Init() error { return check("init", lib().Init()) }

func InfoString(verbose bool) (string, error) {
	s, c := lib().InfoString(verbose)
	return s, check("info_string", c)
}

func GetDeviceInfo() (DeviceInfo, error) {
	d, c := lib().DeviceInfo()
	return DeviceInfo(d), check("device_info", c)
}

func DeviceCount() (int, error) {
	n, c := lib().DeviceCount()
	return n, check("get_device_count", c)
}

func SetDevice(device int) error {
	return check("set_device", lib().SetDevice(device))
}

// Device returns the active device of the calling OS thread.
func Device() (int, error) {
	d, c := lib().Device()
	return d, check("get_device", c)
}

// Sync blocks until all queued work on device has finished. -1 selects the
// active device.
func Sync(device int) error {
	return check("sync", lib().Sync(device))
}

func IsDoubleAvailable(device int) (bool, error) {
	ok, c := lib().DoubleSupport(device)
	return ok, check("get_dbl_support", c)
}

func IsHalfAvailable(device int) (bool, error) {
	ok, c := lib().HalfSupport(device)
	return ok, check("get_half_support", c)
}

func GetMemInfo() (MemInfo, error) {
	m, c := lib().MemInfo()
	return MemInfo(m), check("device_mem_info", c)
}

func PrintMemInfo(msg string, device int) error {
	return check("print_mem_info", lib().PrintMemInfo(msg, device))
}

// DeviceGC returns unused buffers held by the memory manager to the device.
func DeviceGC() error { return check("device_gc", lib().DeviceGC()) }

func SetMemStepSize(bytes uint64) error {
	return check("set_mem_step_size", lib().SetMemStepSize(bytes))
}

func MemStepSize() (uint64, error) {
	n, c := lib().MemStepSize()
	return n, check("get_mem_step_size", c)
}

// Version returns the version of the loaded library.
func Version() (major, minor, patch int, err error) {
	major, minor, patch, c := lib().Version()
	return major, minor, patch, check("get_version", c)
}

// Revision returns the source revision of the loaded library.
func Revision() string { return lib().Revision() }

// Linked reports whether the binary calls the ArrayFire shared library
// rather than the host fallback.
func Linked() bool { return native.Linked() }

// LibraryName names the library serving calls.
func LibraryName() string { return lib().Name() }

// WithDevice runs fn with device active. The goroutine stays on its OS
// thread for the duration because device selection is thread-local; the
// previous device is restored afterwards.
func WithDevice(device int, fn func() error) (err error) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	prev, err := Device()
	if err != nil {
		return err
	}
	if err := SetDevice(device); err != nil {
		return err
	}
	defer func() {
		if rerr := SetDevice(prev); err == nil {
			err = rerr
		}
	}()
	return fn()
}
