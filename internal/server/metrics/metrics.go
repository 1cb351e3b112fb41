// Package metrics holds the server's Prometheus collectors on a private
// registry.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

type Metrics struct {
	Registry *prometheus.Registry

	RPCRequests      *prometheus.CounterVec
	RPCDuration      *prometheus.HistogramVec
	UploadedBytes    prometheus.Counter
	PurgedTokens     prometheus.Counter
	HousekeepingRuns *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		RPCRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gophforum",
			Name:      "rpc_requests_total",
			Help:      "gRPC requests by method and status code.",
		}, []string{"method", "code"}),
		RPCDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "gophforum",
			Name:      "rpc_duration_seconds",
			Help:      "gRPC request latency by method.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method"}),
		UploadedBytes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "gophforum",
			Name:      "uploaded_bytes_total",
			Help:      "Bytes written to object storage.",
		}),
		PurgedTokens: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "gophforum",
			Name:      "purged_refresh_tokens_total",
			Help:      "Expired refresh tokens removed by housekeeping.",
		}),
		HousekeepingRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gophforum",
			Name:      "housekeeping_runs_total",
			Help:      "Housekeeping job runs by result.",
		}, []string{"result"}),
	}

	m.Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.RPCRequests,
		m.RPCDuration,
		m.UploadedBytes,
		m.PurgedTokens,
		m.HousekeepingRuns,
	)
	return m
}

// ObserveRPC records one finished call.
func (m *Metrics) ObserveRPC(method, code string, elapsed time.Duration) {
	m.RPCRequests.WithLabelValues(method, code).Inc()
	m.RPCDuration.WithLabelValues(method).Observe(elapsed.Seconds())
}
