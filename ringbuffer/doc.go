// Package ringbuffer provides a generic, bounded double-ended circular buffer
// over a single contiguous block of slots, with always-on statistics and
// optional Prometheus metrics integration.
//
// # Overview
//
// RingBuffer is a deque over a fixed-size circular array: insertion and
// removal at both ends in O(1), random access by physical slot, explicit
// in-place growth, and cursor-based iteration. The backing block comes from
// an allocator capability (package alloc), so callers can meter or bound
// every allocation the container makes.
//
// # Quick Start
//
// Basic buffer creation:
//
//	buf, err := ringbuffer.New[int](1024)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	slot, err := buf.PushBack(42)  // slot is an opaque handle
//	v, err := buf.PopFront()
//
// With a bounded allocator and metrics:
//
//	buf, err := ringbuffer.New[[]byte](4096,
//	    ringbuffer.WithAllocator[[]byte](alloc.NewBounded(alloc.NewHeap[[]byte](), 1<<20)),
//	    ringbuffer.WithMetrics[[]byte](registry, "packet_queue"),
//	)
//
// # Geometry
//
// The container persists exactly three pieces of positional state: the head
// slot (front element), the element count, and the capacity. The tail is
// always derived from those three, which removes an entire class of
// head/tail drift bugs: there is no second index to forget to update. Empty
// and full both present as "head and tail coincide or are adjacent"; the
// element count is what tells them apart.
//
// Physical slots are stable between mutations: a push returns the slot it
// wrote, and At/SetAt accept it back until the next mutating call. Resize
// relabels every slot (the live run is unwrapped to the bottom of the new
// block), so handles do not survive it.
//
// # Failure Semantics
//
//   - Push on a full or unallocated buffer: ErrBufferFull /
//     ErrBufferUnallocated, no mutation.
//   - Pop or peek on empty: pops return ErrBufferEmpty, peeks return
//     ok == false. No zero value is ever fabricated for a pop.
//   - Lookup outside the live run: ok == false.
//   - Resize to zero or below the element count, or allocator refusal:
//     classified error, buffer unchanged.
//
// # Iteration
//
// Begin() and End() return cursors with four position tags: begin, in-range,
// end, and invalid. Stepping and arbitrary jumps are computed in logical
// space (offset from the front) and converted back to physical slots, so a
// jump can never land on a stale slot; it lands on a boundary tag instead.
//
//	for it := buf.Begin(); it.Next(); {
//	    v, _ := it.Value()
//	    process(v)
//	}
//
// # Observability
//
// Statistics are always collected with atomic counters and cost nanoseconds;
// Prometheus export is opt-in per buffer via WithMetrics. This is the same
// dual-tracking pattern as the rest of the c360 libraries: stats for
// programmatic access and tests, metrics for dashboards and alerting.
//
// # Thread Safety
//
// RingBuffer is NOT thread-safe. It assumes a single logical writer; wrap it
// in a mutex when sharing across goroutines. Statistics, in contrast, are
// safe to read from any goroutine at any time.
//
// # Lifetime Contract
//
// Peek, At, and iterator Value return copies, so there are no dangling
// references to container slots. Slot handles and iterators are borrows:
// any mutation invalidates them, and iterators detect staleness on their
// next step rather than dereferencing a dead slot.
package ringbuffer
