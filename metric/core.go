package metric

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics contains library-level metrics shared by all containers on one
// registry (not per-buffer; those are registered by the containers themselves)
type Metrics struct {
	BuffersActive      prometheus.Gauge
	BuffersOpened      prometheus.Counter
	ResizeDuration     *prometheus.HistogramVec
	AllocationFailures *prometheus.CounterVec
}

// NewMetrics creates a new Metrics instance with all library metrics
func NewMetrics() *Metrics {
	return &Metrics{
		BuffersActive: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "ringkit",
				Subsystem: "containers",
				Name:      "active",
				Help:      "Number of buffers currently holding a backing block",
			},
		),

		BuffersOpened: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "ringkit",
				Subsystem: "containers",
				Name:      "opened_total",
				Help:      "Total number of buffers created",
			},
		),

		ResizeDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "ringkit",
				Subsystem: "containers",
				Name:      "resize_duration_seconds",
				Help:      "Backing block replacement duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"buffer"},
		),

		AllocationFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "ringkit",
				Subsystem: "containers",
				Name:      "allocation_failures_total",
				Help:      "Total number of allocator refusals",
			},
			[]string{"buffer"},
		),
	}
}

// RecordBufferOpened increments the created counter and the active gauge
func (c *Metrics) RecordBufferOpened() {
	c.BuffersOpened.Inc()
	c.BuffersActive.Inc()
}

// RecordBufferClosed decrements the active gauge
func (c *Metrics) RecordBufferClosed() {
	c.BuffersActive.Dec()
}

// RecordResizeDuration records how long a backing block replacement took
func (c *Metrics) RecordResizeDuration(buffer string, duration time.Duration) {
	c.ResizeDuration.WithLabelValues(buffer).Observe(duration.Seconds())
}

// RecordAllocationFailure increments the allocation failure counter
func (c *Metrics) RecordAllocationFailure(buffer string) {
	c.AllocationFailures.WithLabelValues(buffer).Inc()
}
