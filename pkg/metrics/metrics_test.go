package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestNewMetricsRegistersWithRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg, "woundcare", "test")

	m.NotesGenerated.WithLabelValues("wound", "success").Inc()
	m.FormUpdates.WithLabelValues("device", "add", Status(nil)).Inc()
	m.SessionOperations.WithLabelValues("get", Status(errors.New("x"))).Inc()

	assert.Equal(t, 1.0, testutil.ToFloat64(m.NotesGenerated.WithLabelValues("wound", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SessionOperations.WithLabelValues("get", "error")))

	n, err := testutil.GatherAndCount(reg)
	assert.NoError(t, err)
	assert.Equal(t, 5, n)
}
