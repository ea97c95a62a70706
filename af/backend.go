package af

import (
	"runtime"
)

var allBackends = []Backend{BackendCPU, BackendCUDA, BackendOpenCL, BackendOneAPI}

// SetBackend switches the active backend of the calling OS thread.
func SetBackend(b Backend) error {
	return check("set_backend", lib().SetBackend(int(b)))
}

func ActiveBackend() (Backend, error) {
	b, c := lib().ActiveBackend()
	return Backend(b), check("get_active_backend", c)
}

// AvailableBackends decodes the bit mask of backends that can be loaded.
func AvailableBackends() ([]Backend, error) {
	mask, c := lib().AvailableBackends()
	if err := check("get_available_backends", c); err != nil {
		return nil, err
	}
	var out []Backend
	for _, b := range allBackends {
		if mask&int(b) != 0 {
			out = append(out, b)
		}
	}
	return out, nil
}

func BackendCount() (int, error) {
	n, c := lib().BackendCount()
	return int(n), check("get_backend_count", c)
}

// WithBackend runs fn with b active, pinning the goroutine to its OS thread
// since the native backend selection is thread-local. The previous backend
// is restored afterwards.
func WithBackend(b Backend, fn func() error) (err error) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	prev, err := ActiveBackend()
	if err != nil {
		return err
	}
	if err := SetBackend(b); err != nil {
		return err
	}
	defer func() {
		if rerr := SetBackend(prev); err == nil {
			err = rerr
		}
	}()
	return fn()
}
