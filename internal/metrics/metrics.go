// Package metrics exposes the proxy's Prometheus instrumentation.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Set owns every proxy metric and the registry they live in.
type Set struct {
	ActiveConns        prometheus.Gauge
	PacketsClientbound prometheus.Counter
	PacketsServerbound prometheus.Counter
	PacketsDropped     prometheus.Counter
	AuthFailures       prometheus.Counter

	registry *prometheus.Registry
}

// New builds and registers the metric set.
func New() *Set {
	s := &Set{
		ActiveConns: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "gatewire_active_connections",
			Help: "Client connections currently open.",
		}),
		PacketsClientbound: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "gatewire_packets_clientbound_total",
			Help: "Legacy packets written to clients after translation.",
		}),
		PacketsServerbound: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "gatewire_packets_serverbound_total",
			Help: "Canonical packets forwarded to the backend.",
		}),
		PacketsDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "gatewire_packets_dropped_total",
			Help: "Packets with no representation for the peer's version.",
		}),
		AuthFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "gatewire_auth_failures_total",
			Help: "Logins rejected by the session server.",
		}),
		registry: prometheus.NewRegistry(),
	}
	s.registry.MustRegister(s.ActiveConns, s.PacketsClientbound, s.PacketsServerbound, s.PacketsDropped, s.AuthFailures)
	return s
}

// Serve exposes /metrics on addr. Blocks; run it on its own goroutine.
func (s *Set) Serve(addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	return http.ListenAndServe(addr, mux)
}
