package opencamera

import (
	"github.com/prometheus/client_golang/prometheus"
)

type outcome string

const (
	outcomeOpened    outcome = "opened"
	outcomeFallback  outcome = "fallback"
	outcomeNoCameras outcome = "no_cameras"
	outcomeNotFound  outcome = "not_found"
	outcomeError     outcome = "error"
)

// Metrics counts Open calls by strategy and outcome.
type Metrics struct {
	opens *prometheus.CounterVec
}

// NewMetrics creates Metrics and registers its collectors to reg. A nil reg
// leaves the collectors unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		opens: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "opencamera",
			Name:      "open_total",
			Help:      "Number of camera open attempts by strategy and outcome.",
		}, []string{"strategy", "outcome"}),
	}
	if reg != nil {
		reg.MustRegister(m.opens)
	}
	return m
}

func (m *Metrics) observe(strategy string, o outcome) {
	if m == nil {
		return
	}
	m.opens.WithLabelValues(strategy, string(o)).Inc()
}
