package ringbuffer

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/c360/ringkit/metric"
)

// bufferMetrics holds Prometheus metrics for one buffer instance.
type bufferMetrics struct {
	// Counter metrics - directly incremented without stats duplication
	pushesFront prometheus.Counter
	pushesBack  prometheus.Counter
	popsFront   prometheus.Counter
	popsBack    prometheus.Counter
	peeks       prometheus.Counter
	rejections  prometheus.Counter
	resizes     prometheus.Counter

	// Gauge metrics - updated on operations
	size        prometheus.Gauge
	capacity    prometheus.Gauge
	utilization prometheus.Gauge
}

func counterOpts(prefix, name, help string) prometheus.CounterOpts {
	return prometheus.CounterOpts{
		Namespace:   "ringkit",
		Subsystem:   "buffer",
		Name:        name,
		ConstLabels: prometheus.Labels{"component": prefix},
		Help:        help,
	}
}

func gaugeOpts(prefix, name, help string) prometheus.GaugeOpts {
	return prometheus.GaugeOpts{
		Namespace:   "ringkit",
		Subsystem:   "buffer",
		Name:        name,
		ConstLabels: prometheus.Labels{"component": prefix},
		Help:        help,
	}
}

// newBufferMetrics creates and registers buffer metrics with the provided registry.
func newBufferMetrics(registry *metric.MetricsRegistry, prefix string) (*bufferMetrics, error) {
	m := &bufferMetrics{
		pushesFront: prometheus.NewCounter(counterOpts(prefix, "pushes_front_total",
			"Total number of front insertions")),
		pushesBack: prometheus.NewCounter(counterOpts(prefix, "pushes_back_total",
			"Total number of back insertions")),
		popsFront: prometheus.NewCounter(counterOpts(prefix, "pops_front_total",
			"Total number of front removals")),
		popsBack: prometheus.NewCounter(counterOpts(prefix, "pops_back_total",
			"Total number of back removals")),
		peeks: prometheus.NewCounter(counterOpts(prefix, "peeks_total",
			"Total number of peek operations")),
		rejections: prometheus.NewCounter(counterOpts(prefix, "rejections_total",
			"Total number of pushes refused for lack of capacity")),
		resizes: prometheus.NewCounter(counterOpts(prefix, "resizes_total",
			"Total number of backing block replacements")),
		size: prometheus.NewGauge(gaugeOpts(prefix, "size",
			"Current number of elements in the buffer")),
		capacity: prometheus.NewGauge(gaugeOpts(prefix, "capacity",
			"Current number of slots in the backing block")),
		utilization: prometheus.NewGauge(gaugeOpts(prefix, "utilization",
			"Buffer fill level as a percentage (0.0 to 1.0)")),
	}

	registrations := []struct {
		name    string
		counter prometheus.Counter
	}{
		{"buffer_pushes_front", m.pushesFront},
		{"buffer_pushes_back", m.pushesBack},
		{"buffer_pops_front", m.popsFront},
		{"buffer_pops_back", m.popsBack},
		{"buffer_peeks", m.peeks},
		{"buffer_rejections", m.rejections},
		{"buffer_resizes", m.resizes},
	}
	for _, reg := range registrations {
		if err := registry.RegisterCounter(prefix, reg.name, reg.counter); err != nil {
			return nil, err
		}
	}

	if err := registry.RegisterGauge(prefix, "buffer_size", m.size); err != nil {
		return nil, err
	}
	if err := registry.RegisterGauge(prefix, "buffer_capacity", m.capacity); err != nil {
		return nil, err
	}
	if err := registry.RegisterGauge(prefix, "buffer_utilization", m.utilization); err != nil {
		return nil, err
	}

	return m, nil
}

// recordPush increments the matching push counter and updates size gauges.
func (m *bufferMetrics) recordPush(front bool, size, capacity int) {
	if front {
		m.pushesFront.Inc()
	} else {
		m.pushesBack.Inc()
	}
	m.updateSize(size, capacity)
}

// recordPop increments the matching pop counter and updates size gauges.
func (m *bufferMetrics) recordPop(front bool, size, capacity int) {
	if front {
		m.popsFront.Inc()
	} else {
		m.popsBack.Inc()
	}
	m.updateSize(size, capacity)
}

// recordPeek increments the peek counter.
func (m *bufferMetrics) recordPeek() {
	m.peeks.Inc()
}

// recordRejection increments the rejection counter.
func (m *bufferMetrics) recordRejection() {
	m.rejections.Inc()
}

// recordResize increments the resize counter and updates size gauges.
func (m *bufferMetrics) recordResize(size, capacity int) {
	m.resizes.Inc()
	m.updateSize(size, capacity)
}

// updateSize sets the size, capacity, and utilization gauges.
func (m *bufferMetrics) updateSize(size, capacity int) {
	m.size.Set(float64(size))
	m.capacity.Set(float64(capacity))
	if capacity > 0 {
		m.utilization.Set(float64(size) / float64(capacity))
	} else {
		m.utilization.Set(0)
	}
}
