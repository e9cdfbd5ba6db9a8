package metrics

import (
	"testing"

	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func counterValue(t *testing.T, c interface{ Write(*dto.Metric) error }) float64 {
	t.Helper()
	m := &dto.Metric{}
	require.NoError(t, c.Write(m))
	return m.GetCounter().GetValue()
}

func TestNewManager(t *testing.T) {
	m, reg := NewTestManagerAndRegistry()
	require.NotNil(t, m)

	m.CounterWorkoutsResolved.WithLabelValues("ok").Inc()
	m.CounterWorkoutsResolved.WithLabelValues("ok").Inc()
	m.CounterWorkoutsResolved.WithLabelValues("no_routine").Inc()
	m.CounterWellnessAdaptations.Inc()

	assert.Equal(t, 2.0, counterValue(t, m.CounterWorkoutsResolved.WithLabelValues("ok")))
	assert.Equal(t, 1.0, counterValue(t, m.CounterWorkoutsResolved.WithLabelValues("no_routine")))
	assert.Equal(t, 1.0, counterValue(t, m.CounterWellnessAdaptations))

	families, err := reg.Gather()
	require.NoError(t, err)
	names := map[string]bool{}
	for _, f := range families {
		names[f.GetName()] = true
	}
	assert.True(t, names["club_test_server_workouts_resolved"])
	assert.True(t, names["club_test_server_wellness_adaptations"])
}

func TestSetupPrometheus(t *testing.T) {
	m := NewTestManager()
	reg := SetupPrometheus()
	require.NotNil(t, reg)

	m.GaugeLifeSignal.Set(1)
	families, err := reg.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)
}
