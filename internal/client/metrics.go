package client

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	breakerState = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "arrayfire_push_breaker_state",
		Help: "Circuit breaker state of the Flight pusher (0 closed, 1 open, 2 half-open)",
	})
	pushTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "arrayfire_push_total",
		Help: "Arrays pushed over Arrow Flight by result",
	}, []string{"result"})
	pushBytes = promauto.NewCounter(prometheus.CounterOpts{
		Name: "arrayfire_push_bytes_total",
		Help: "Bytes of array data pushed over Arrow Flight",
	})
)
