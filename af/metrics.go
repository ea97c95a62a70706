package af

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	arraysCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "arrayfire_arrays_created_total",
		Help: "Total number of array handles wrapped by the binding",
	})

	arraysReleased = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "arrayfire_arrays_released_total",
		Help: "Total number of array handles released, by path (explicit or finalizer)",
	}, []string{"path"})

	arraysLive = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "arrayfire_arrays_live",
		Help: "Current number of unreleased array handles",
	})

	errorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "arrayfire_errors_total",
		Help: "Total number of failed native calls, by error code",
	}, []string{"code"})
)
