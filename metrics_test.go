package opencamera

import (
	"bytes"
	"testing"

	"github.com/pion/opencamera/pkg/driver"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	opts := []Option{WithMetrics(m), testLogger(&bytes.Buffer{})}

	Open(newFakePlatform(driver.FacingFront, driver.FacingBack), NoRequestedCamera, opts...)
	Open(newFakePlatform(driver.FacingFront), NoRequestedCamera, opts...)
	Open(newFakePlatform(driver.FacingFront), 3, opts...)
	Open(newFakePlatform(), NoRequestedCamera, opts...)

	legacy := newFakePlatform(driver.FacingFront)
	legacy.level = 3
	Open(legacy, NoRequestedCamera, opts...)

	cases := []struct {
		strategy string
		outcome  outcome
	}{
		{"enumerate", outcomeOpened},
		{"enumerate", outcomeFallback},
		{"enumerate", outcomeNotFound},
		{"enumerate", outcomeNoCameras},
		{"legacy", outcomeNoCameras},
	}
	for _, c := range cases {
		got := testutil.ToFloat64(m.opens.WithLabelValues(c.strategy, string(c.outcome)))
		if got != 1 {
			t.Errorf("%s/%s: expected 1, got %v", c.strategy, c.outcome, got)
		}
	}

	if n := testutil.CollectAndCount(m.opens); n != len(cases) {
		t.Errorf("expected %d series, got %d", len(cases), n)
	}
}

func TestMetricsNil(t *testing.T) {
	var m *Metrics
	m.observe("enumerate", outcomeOpened)
}
