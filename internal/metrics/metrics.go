// Package metrics owns the Prometheus collectors exported on GET /metrics.
// Collectors are registered on a private registry, not the global default one,
// so every test (and every server instance) gets its own independent set.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const namespace = "player_roster"

// Metrics bundles the registry with the collectors the HTTP layer updates.
type Metrics struct {
	Registry *prometheus.Registry

	Requests      *prometheus.CounterVec // http_requests_total{method,route,status}
	HealthProbeUp prometheus.Gauge       // 1 after a healthy probe, 0 after an unhealthy one
	PlayersListed prometheus.Gauge       // row count returned by the last successful listing
}

// New creates a registry with the service collectors plus the standard Go runtime
// and process collectors.
func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests handled, by method, matched route and status code.",
		}, []string{"method", "route", "status"}),
		HealthProbeUp: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "health_probe_up",
			Help:      "Result of the most recent database health probe (1 = connected).",
		}),
		PlayersListed: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "players_listed",
			Help:      "Number of players returned by the most recent successful listing.",
		}),
	}

	m.Registry.MustRegister(
		m.Requests,
		m.HealthProbeUp,
		m.PlayersListed,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// ObserveProbe records the outcome of one health probe.
func (m *Metrics) ObserveProbe(healthy bool) {
	if m == nil {
		return
	}
	if healthy {
		m.HealthProbeUp.Set(1)
		return
	}
	m.HealthProbeUp.Set(0)
}

// ObservePlayers records the size of a successful listing.
func (m *Metrics) ObservePlayers(n int) {
	if m == nil {
		return
	}
	m.PlayersListed.Set(float64(n))
}
