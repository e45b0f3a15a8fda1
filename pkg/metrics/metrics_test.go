package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveHTTPRequest("GET", "/api/v1/calendar", 200, time.Millisecond)
		m.ObserveDBQuery("select", time.Millisecond, nil)
		m.SetDBConnections(1, 1, 0)
		m.AddNoShowTransitions(1, 0)
		m.IncNotification("appointment_created", nil)
	})
}

func TestMetrics_Counters(t *testing.T) {
	m := NewWithRegisterer("salon-test", prometheus.NewRegistry())

	m.AddNoShowTransitions(3, 1)
	m.IncNotification("appointment_created", nil)
	m.IncNotification("appointment_created", errors.New("boom"))
	m.ObserveDBQuery("update", time.Millisecond, errors.New("boom"))

	assert.Equal(t, 3.0, testutil.ToFloat64(m.noShowTransitions.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.noShowTransitions.WithLabelValues("failed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.notificationsSent.WithLabelValues("appointment_created", "failed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.dbQueryErrors.WithLabelValues("update")))
}
