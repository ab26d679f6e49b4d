package ringbuffer

import (
	"time"

	"github.com/google/uuid"

	"github.com/c360/ringkit/alloc"
	"github.com/c360/ringkit/errors"
)

// RingBuffer is a bounded double-ended circular buffer over a single
// contiguous block of slots obtained from an allocator.
//
// Elements are addressed two ways: logically (front to back) and physically
// (slot positions in the backing block). Push operations return the physical
// slot they wrote as an opaque handle, valid until the next mutating call.
//
// A RingBuffer is not safe for concurrent use. Guard it externally when
// shared across goroutines.
type RingBuffer[T any] struct {
	id      string
	name    string
	slots   []T
	geo     geometry
	alloc   alloc.Allocator[T]
	stats   *Statistics // ALWAYS initialized for observability
	metrics *bufferMetrics
	opts    *bufferOptions[T]
}

// New creates a ring buffer with the given capacity. Capacity zero is legal
// and produces an unallocated buffer that rejects pushes until resized.
// Returns an error if the allocator cannot supply the block or metrics
// registration fails when requested.
func New[T any](capacity int, options ...Option[T]) (*RingBuffer[T], error) {
	if capacity < 0 {
		return nil, errors.WrapInvalid(errors.ErrInvalidCapacity,
			"RingBuffer", "New", "negative capacity")
	}

	opts := applyOptions(options...)

	// Stats are ALWAYS initialized - observability is not optional
	stats := opts.stats
	if stats == nil {
		stats = NewStatistics()
	}

	b := &RingBuffer[T]{
		id:    uuid.NewString(),
		name:  opts.name,
		alloc: opts.allocator,
		geo:   geometry{head: noSlot},
		stats: stats,
		opts:  opts,
	}

	if capacity > 0 {
		block, err := b.alloc.Allocate(capacity)
		if err != nil {
			if opts.metricsReg != nil {
				opts.metricsReg.CoreMetrics().RecordAllocationFailure(b.label())
			}
			return nil, errors.WrapTransient(err, "RingBuffer", "New", "allocate backing block")
		}
		b.slots = block
		b.geo.capacity = capacity
	}

	if opts.metricsReg != nil && opts.metricsPrefix != "" {
		m, err := newBufferMetrics(opts.metricsReg, opts.metricsPrefix)
		if err != nil {
			if b.slots != nil {
				_ = b.alloc.Deallocate(b.slots)
			}
			return nil, err
		}
		b.metrics = m
		m.updateSize(b.geo.count, b.geo.capacity)
	}
	if opts.metricsReg != nil {
		opts.metricsReg.CoreMetrics().RecordBufferOpened()
	}

	return b, nil
}

// ID returns the unique instance identifier of this buffer.
func (b *RingBuffer[T]) ID() string {
	return b.id
}

// Name returns the configured buffer name, or the empty string.
func (b *RingBuffer[T]) Name() string {
	return b.name
}

func (b *RingBuffer[T]) label() string {
	if b.name != "" {
		return b.name
	}
	return b.id
}

// Len returns the number of live elements.
func (b *RingBuffer[T]) Len() int {
	return b.geo.count
}

// Cap returns the number of slots in the backing block.
func (b *RingBuffer[T]) Cap() int {
	return b.geo.capacity
}

// IsEmpty reports whether the buffer holds no elements.
func (b *RingBuffer[T]) IsEmpty() bool {
	return b.geo.empty()
}

// IsFull reports whether every slot is live.
func (b *RingBuffer[T]) IsFull() bool {
	return b.geo.full()
}

// HeadSlot returns the physical slot of the front element.
func (b *RingBuffer[T]) HeadSlot() (int, bool) {
	if b.geo.head == noSlot {
		return 0, false
	}
	return b.geo.head, true
}

// TailSlot returns the physical slot of the back element.
func (b *RingBuffer[T]) TailSlot() (int, bool) {
	tail, ok := b.geo.tail()
	if !ok {
		return 0, false
	}
	return tail, true
}

// IsSlotLive reports whether the physical slot holds a live element.
func (b *RingBuffer[T]) IsSlotLive(slot int) bool {
	return b.geo.slotLive(slot)
}

// PushBack inserts a value at the back of the buffer and returns the physical
// slot written. Fails with ErrBufferFull when no slot is free and
// ErrBufferUnallocated when the buffer has no backing block; the buffer is
// unchanged on failure.
func (b *RingBuffer[T]) PushBack(value T) (int, error) {
	if b.slots == nil {
		b.recordRejection()
		return 0, errors.ErrBufferUnallocated
	}
	if b.geo.full() {
		b.recordRejection()
		return 0, errors.ErrBufferFull
	}

	slot, _ := b.geo.nextTail()
	b.slots[slot] = value
	b.geo.count++
	if b.geo.head == noSlot {
		// First element: head and tail coincide
		b.geo.head = slot
	}

	b.recordPush(false)
	return slot, nil
}

// PushFront inserts a value at the front of the buffer and returns the
// physical slot written. Failure behavior matches PushBack.
func (b *RingBuffer[T]) PushFront(value T) (int, error) {
	if b.slots == nil {
		b.recordRejection()
		return 0, errors.ErrBufferUnallocated
	}
	if b.geo.full() {
		b.recordRejection()
		return 0, errors.ErrBufferFull
	}

	slot, _ := b.geo.nextHead()
	b.slots[slot] = value
	b.geo.head = slot
	b.geo.count++

	b.recordPush(true)
	return slot, nil
}

// PopFront removes and returns the front element. Fails with ErrBufferEmpty
// instead of fabricating a zero value.
func (b *RingBuffer[T]) PopFront() (T, error) {
	var zero T

	if b.geo.empty() {
		b.stats.EmptyRejection()
		return zero, errors.ErrBufferEmpty
	}

	slot := b.geo.head
	value := b.slots[slot]
	b.slots[slot] = zero // Clear for GC

	if b.geo.count == 1 {
		b.geo.head = noSlot
		b.geo.count = 0
	} else {
		b.geo.count--
		b.geo.head = b.geo.prevHead()
	}

	b.recordPop(true)
	return value, nil
}

// PopBack removes and returns the back element. Fails with ErrBufferEmpty
// instead of fabricating a zero value.
func (b *RingBuffer[T]) PopBack() (T, error) {
	var zero T

	if b.geo.empty() {
		b.stats.EmptyRejection()
		return zero, errors.ErrBufferEmpty
	}

	slot, _ := b.geo.tail()
	value := b.slots[slot]
	b.slots[slot] = zero // Clear for GC

	if b.geo.count == 1 {
		b.geo.head = noSlot
	}
	b.geo.count--

	b.recordPop(false)
	return value, nil
}

// PeekFront returns a copy of the front element without removing it.
func (b *RingBuffer[T]) PeekFront() (T, bool) {
	var zero T
	if b.geo.empty() {
		return zero, false
	}

	b.recordPeek()
	return b.slots[b.geo.head], true
}

// PeekBack returns a copy of the back element without removing it.
func (b *RingBuffer[T]) PeekBack() (T, bool) {
	var zero T
	tail, ok := b.geo.tail()
	if !ok {
		return zero, false
	}

	b.recordPeek()
	return b.slots[tail], true
}

// At returns a copy of the element at the given physical slot. Slots outside
// the live run report ok == false.
func (b *RingBuffer[T]) At(slot int) (T, bool) {
	var zero T
	if !b.geo.slotLive(slot) {
		return zero, false
	}

	b.stats.Lookup()
	return b.slots[slot], true
}

// SetAt overwrites the element at the given physical slot. Slots outside the
// live run are rejected.
func (b *RingBuffer[T]) SetAt(slot int, value T) bool {
	if !b.geo.slotLive(slot) {
		return false
	}

	b.slots[slot] = value
	return true
}

// Resize replaces the backing block with one of newCapacity slots, unwrapping
// the live run into the new block front element last. Logical order is
// preserved; physical slots are relabeled so the head lands at count-1.
// Fails, leaving the buffer unchanged, when newCapacity is zero or smaller
// than the current element count, or when the allocator refuses the block.
func (b *RingBuffer[T]) Resize(newCapacity int) error {
	if newCapacity <= 0 {
		return errors.WrapInvalid(errors.ErrInvalidCapacity,
			"RingBuffer", "Resize", "non-positive capacity")
	}
	if newCapacity < b.geo.count {
		return errors.WrapInvalid(errors.ErrCapacityBelowCount,
			"RingBuffer", "Resize", "shrink below element count")
	}

	start := time.Now()

	block, err := b.alloc.Allocate(newCapacity)
	if err != nil {
		if b.opts.metricsReg != nil {
			b.opts.metricsReg.CoreMetrics().RecordAllocationFailure(b.label())
		}
		return errors.WrapTransient(err, "RingBuffer", "Resize", "allocate backing block")
	}

	if b.geo.count > 0 {
		tail, _ := b.geo.tail()
		if tail > b.geo.head {
			// Wrapped run: tail segment first, then the wrapped prefix
			n := copy(block, b.slots[tail:])
			copy(block[n:], b.slots[:b.geo.head+1])
		} else {
			copy(block, b.slots[tail:b.geo.head+1])
		}
		b.geo.head = b.geo.count - 1
	}

	old := b.slots
	b.slots = block
	b.geo.capacity = newCapacity

	b.recordResize(time.Since(start))

	if old != nil {
		if err := b.alloc.Deallocate(old); err != nil {
			// The buffer already runs on the new block; surface the leak
			return errors.WrapTransient(err, "RingBuffer", "Resize", "release old block")
		}
	}
	return nil
}

// Clear resets the buffer to empty in O(1). The backing block is retained and
// not zeroed, so stale values stay reachable until overwritten; use pops or
// Close when element release matters.
func (b *RingBuffer[T]) Clear() {
	b.geo.head = noSlot
	b.geo.count = 0

	b.stats.Clear()
	b.stats.UpdateSize(0)
	if b.metrics != nil {
		b.metrics.updateSize(0, b.geo.capacity)
	}
}

// Clone returns an independent copy of the buffer backed by a fresh block
// from the same allocator. The clone gets its own identity and statistics.
func (b *RingBuffer[T]) Clone() (*RingBuffer[T], error) {
	clone := &RingBuffer[T]{
		id:    uuid.NewString(),
		name:  b.name,
		alloc: b.alloc,
		geo:   geometry{head: noSlot},
		stats: NewStatistics(),
		opts:  b.opts,
	}

	if b.slots != nil {
		block, err := b.alloc.Allocate(b.geo.capacity)
		if err != nil {
			return nil, errors.WrapTransient(err, "RingBuffer", "Clone", "allocate backing block")
		}
		copy(block, b.slots)
		clone.slots = block
		clone.geo = b.geo
	}

	return clone, nil
}

// Close releases the backing block to the allocator and leaves the buffer
// unallocated. Safe to call on an already closed buffer.
func (b *RingBuffer[T]) Close() error {
	if b.slots == nil {
		return nil
	}

	old := b.slots
	b.slots = nil
	b.geo = geometry{head: noSlot}

	b.stats.UpdateSize(0)
	if b.metrics != nil {
		b.metrics.updateSize(0, 0)
	}
	if b.opts.metricsReg != nil {
		b.opts.metricsReg.CoreMetrics().RecordBufferClosed()
	}

	if err := b.alloc.Deallocate(old); err != nil {
		return errors.WrapTransient(err, "RingBuffer", "Close", "release backing block")
	}
	return nil
}

// Stats returns buffer statistics (always available for observability).
func (b *RingBuffer[T]) Stats() *Statistics {
	return b.stats
}

func (b *RingBuffer[T]) recordPush(front bool) {
	if front {
		b.stats.PushFront()
	} else {
		b.stats.PushBack()
	}
	b.stats.UpdateSize(int64(b.geo.count))

	if b.metrics != nil {
		b.metrics.recordPush(front, b.geo.count, b.geo.capacity)
	}
}

func (b *RingBuffer[T]) recordPop(front bool) {
	if front {
		b.stats.PopFront()
	} else {
		b.stats.PopBack()
	}
	b.stats.UpdateSize(int64(b.geo.count))

	if b.metrics != nil {
		b.metrics.recordPop(front, b.geo.count, b.geo.capacity)
	}
}

func (b *RingBuffer[T]) recordPeek() {
	b.stats.Peek()
	if b.metrics != nil {
		b.metrics.recordPeek()
	}
}

func (b *RingBuffer[T]) recordRejection() {
	b.stats.FullRejection()
	if b.metrics != nil {
		b.metrics.recordRejection()
	}
}

func (b *RingBuffer[T]) recordResize(elapsed time.Duration) {
	b.stats.Resize()
	b.stats.UpdateSize(int64(b.geo.count))

	if b.metrics != nil {
		b.metrics.recordResize(b.geo.count, b.geo.capacity)
	}
	if b.opts.metricsReg != nil {
		b.opts.metricsReg.CoreMetrics().RecordResizeDuration(b.label(), elapsed)
	}
}
