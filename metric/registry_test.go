package metric

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360/ringkit/errors"
)

func TestNewMetricsRegistry(t *testing.T) {
	registry := NewMetricsRegistry()

	require.NotNil(t, registry)
	require.NotNil(t, registry.PrometheusRegistry())
	require.NotNil(t, registry.CoreMetrics())
}

func TestRegisterCounter(t *testing.T) {
	registry := NewMetricsRegistry()

	counter := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "test_counter_total",
		Help: "Test counter",
	})

	require.NoError(t, registry.RegisterCounter("compA", "ops", counter))

	counter.Inc()
	assert.Equal(t, 1.0, testutil.ToFloat64(counter))
}

func TestRegisterDuplicateKey(t *testing.T) {
	registry := NewMetricsRegistry()

	first := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "dup_a_total", Help: "first",
	})
	second := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "dup_b_total", Help: "second",
	})

	require.NoError(t, registry.RegisterCounter("comp", "ops", first))

	err := registry.RegisterCounter("comp", "ops", second)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrDuplicateMetric)
	assert.True(t, errors.IsInvalid(err))
}

func TestRegisterPrometheusConflict(t *testing.T) {
	registry := NewMetricsRegistry()

	// Same metric name under different registry keys still collides inside
	// Prometheus itself
	makeCounter := func() prometheus.Counter {
		return prometheus.NewCounter(prometheus.CounterOpts{
			Name: "conflict_total", Help: "conflicting",
		})
	}

	require.NoError(t, registry.RegisterCounter("compA", "ops", makeCounter()))

	err := registry.RegisterCounter("compB", "ops", makeCounter())
	require.Error(t, err)
	assert.True(t, errors.IsInvalid(err))
}

func TestRegisterGaugeAndHistogram(t *testing.T) {
	registry := NewMetricsRegistry()

	gauge := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "test_gauge", Help: "Test gauge",
	})
	histogram := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name: "test_histogram_seconds", Help: "Test histogram",
	})

	require.NoError(t, registry.RegisterGauge("comp", "fill", gauge))
	require.NoError(t, registry.RegisterHistogram("comp", "latency", histogram))

	gauge.Set(42)
	assert.Equal(t, 42.0, testutil.ToFloat64(gauge))
}

func TestUnregister(t *testing.T) {
	registry := NewMetricsRegistry()

	counter := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "removable_total", Help: "removable",
	})

	require.NoError(t, registry.RegisterCounter("comp", "ops", counter))
	assert.True(t, registry.Unregister("comp", "ops"))
	assert.False(t, registry.Unregister("comp", "ops"), "second unregister finds nothing")

	// The key is free for reuse after unregistration
	replacement := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "removable_total", Help: "removable",
	})
	require.NoError(t, registry.RegisterCounter("comp", "ops", replacement))
}

func TestUnregisterUnknown(t *testing.T) {
	registry := NewMetricsRegistry()
	assert.False(t, registry.Unregister("ghost", "metric"))
}

func TestCoreMetrics(t *testing.T) {
	registry := NewMetricsRegistry()
	core := registry.CoreMetrics()

	core.RecordBufferOpened()
	core.RecordBufferOpened()
	core.RecordBufferClosed()

	assert.Equal(t, 1.0, testutil.ToFloat64(core.BuffersActive))
	assert.Equal(t, 2.0, testutil.ToFloat64(core.BuffersOpened))

	core.RecordAllocationFailure("q1")
	assert.Equal(t, 1.0, testutil.ToFloat64(core.AllocationFailures.WithLabelValues("q1")))

	// Histograms only need to accept observations here
	core.RecordResizeDuration("q1", 5*time.Millisecond)
}

func TestRegistryGather(t *testing.T) {
	registry := NewMetricsRegistry()
	registry.CoreMetrics().RecordBufferOpened()

	families, err := registry.PrometheusRegistry().Gather()
	require.NoError(t, err)

	var found bool
	for _, mf := range families {
		if mf.GetName() == "ringkit_containers_active" {
			found = true
		}
	}
	assert.True(t, found, "core metrics must be gatherable")
}

func TestRegistrarInterface(t *testing.T) {
	var _ MetricsRegistrar = NewMetricsRegistry()
}
