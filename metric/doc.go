// Package metric provides Prometheus metrics infrastructure for ringkit.
//
// # Overview
//
// The metric package wraps a dedicated Prometheus registry with
// component-scoped registration, duplicate detection, and a small HTTP server
// for scraping. Containers register their per-instance metrics through the
// registry; the registry itself carries the library-level metrics that are
// not tied to any single buffer.
//
// # Quick Start
//
//	registry := metric.NewMetricsRegistry()
//
//	buf, err := ringbuffer.New[int](1024,
//	    ringbuffer.WithMetrics[int](registry, "ingest_queue"),
//	)
//
//	server := metric.NewServer(9090, "/metrics", registry, nil, nil)
//	go server.Start()
//	defer server.Stop()
//
// # Registry
//
// MetricsRegistry keys every collector by "component.metric" and rejects
// duplicates before they reach Prometheus, so a second buffer registered
// under the same prefix fails fast with a classified error instead of
// panicking at scrape time. Go runtime and process collectors are registered
// automatically.
//
// # Core Metrics
//
// Library-level metrics registered with every registry:
//
//   - ringkit_containers_active: buffers currently holding a backing block
//   - ringkit_containers_opened_total: buffers created
//   - ringkit_containers_resize_duration_seconds: block replacement latency
//   - ringkit_containers_allocation_failures_total: allocator refusals
//
// Per-buffer metrics (pushes, pops, peeks, rejections, size, utilization)
// are registered by the ringbuffer package via WithMetrics.
//
// # Server
//
// NewServer exposes the registry over HTTP with OpenMetrics enabled, plus a
// /health endpoint. Pass a *tls.Config to serve HTTPS; pass a *slog.Logger
// to route lifecycle logs somewhere other than slog.Default().
package metric
