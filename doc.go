// Package ringkit is the root of the ringkit module, a container library
// built around a bounded double-ended circular buffer.
//
// # Layout
//
// The module is organized into focused packages:
//
//   - ringbuffer: the generic RingBuffer[T] container, its position iterator,
//     statistics, per-buffer Prometheus metrics, and declarative Config
//   - alloc: the allocator capability (heap, counting, bounded) that supplies
//     every backing block
//   - errors: classified errors and the standard sentinels shared by all
//     packages
//   - metric: the Prometheus registry wrapper, library-level metrics, and the
//     scrape server
//
// # Design
//
// Containers persist minimal positional state (head, count, capacity) and
// derive everything else, obtain memory only through the allocator
// capability, collect statistics unconditionally, and export Prometheus
// metrics only when asked. Failure results are classified errors or
// (value, ok) pairs; no operation fabricates data to hide a failure.
//
// See the package documentation of ringbuffer for the container semantics
// and the lifetime contract of slot handles and iterators.
package ringkit
