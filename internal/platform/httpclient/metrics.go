package httpclient

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "vetclinic",
			Subsystem: "gateway",
			Name:      "requests_total",
			Help:      "Requests issued to the clinic API by outcome.",
		}, []string{"method", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "vetclinic",
			Subsystem: "gateway",
			Name:      "request_duration_seconds",
			Help:      "Latency of requests to the clinic API.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method"}),
	}
	if reg == nil {
		return m
	}
	m.requests = register(reg, m.requests)
	m.duration = register(reg, m.duration)
	return m
}

// register reutiliza el collector existente si ya estaba registrado
// (varios clients sobre el mismo registry).
func register[C prometheus.Collector](reg prometheus.Registerer, c C) C {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing
			}
		}
	}
	return c
}

func outcomeOf(err error) string {
	var (
		te *TimeoutError
		ce *ConnectionError
		ae *APIError
	)
	switch {
	case err == nil:
		return "ok"
	case errors.As(err, &te):
		return "timeout"
	case errors.As(err, &ce):
		return "connection_error"
	case errors.As(err, &ae):
		return "api_error"
	default:
		return "error"
	}
}
