package ringbuffer

import (
	"github.com/c360/ringkit/alloc"
	"github.com/c360/ringkit/metric"
)

// Option configures buffer behavior using the functional options pattern.
type Option[T any] func(*bufferOptions[T])

// bufferOptions holds internal configuration for buffer instances.
// Stats are ALWAYS collected - they are not optional.
// Metrics are optional and exposed via WithMetrics().
type bufferOptions[T any] struct {
	allocator alloc.Allocator[T]
	name      string

	// stats may be injected to share one tracker across buffers
	stats *Statistics

	// metricsReg is optional - if provided, buffer stats are also exposed as Prometheus metrics
	metricsReg *metric.MetricsRegistry

	// metricsPrefix is used as the component label for Prometheus metrics
	metricsPrefix string
}

// WithAllocator sets the allocator supplying the backing block.
// Defaults to the garbage-collected heap allocator.
func WithAllocator[T any](a alloc.Allocator[T]) Option[T] {
	return func(opts *bufferOptions[T]) {
		if a != nil {
			opts.allocator = a
		}
	}
}

// WithName attaches a human-readable name used in metrics labels and
// statistics summaries. Unnamed buffers fall back to their instance ID.
func WithName[T any](name string) Option[T] {
	return func(opts *bufferOptions[T]) {
		opts.name = name
	}
}

// WithStatistics injects a shared statistics tracker. Useful when several
// buffers form one logical pipeline stage.
func WithStatistics[T any](stats *Statistics) Option[T] {
	return func(opts *bufferOptions[T]) {
		if stats != nil {
			opts.stats = stats
		}
	}
}

// WithMetrics enables Prometheus metrics export for buffer statistics.
// If registry is nil or prefix empty, this option is ignored.
func WithMetrics[T any](registry *metric.MetricsRegistry, prefix string) Option[T] {
	return func(opts *bufferOptions[T]) {
		if registry != nil && prefix != "" {
			opts.metricsReg = registry
			opts.metricsPrefix = prefix
		}
	}
}

// applyOptions applies functional options to create final buffer configuration.
// This is an internal helper used by buffer constructors.
func applyOptions[T any](options ...Option[T]) *bufferOptions[T] {
	opts := &bufferOptions[T]{
		allocator: alloc.NewHeap[T](),
	}

	for _, opt := range options {
		if opt != nil {
			opt(opts)
		}
	}

	return opts
}
