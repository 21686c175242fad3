package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveProbe(t *testing.T) {
	m := New()

	m.ObserveProbe(true)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HealthProbeUp))

	m.ObserveProbe(false)
	assert.Equal(t, 0.0, testutil.ToFloat64(m.HealthProbeUp))
}

func TestObservePlayers(t *testing.T) {
	m := New()

	m.ObservePlayers(3)
	assert.Equal(t, 3.0, testutil.ToFloat64(m.PlayersListed))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveProbe(true)
		m.ObservePlayers(1)
	})
}

func TestNewRegistriesAreIndependent(t *testing.T) {
	a, b := New(), New()

	a.Requests.WithLabelValues("GET", "/data", "200").Inc()

	assert.Equal(t, 1, testutil.CollectAndCount(a.Requests))
	assert.Equal(t, 0, testutil.CollectAndCount(b.Requests))
}
