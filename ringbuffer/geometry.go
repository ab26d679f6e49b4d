package ringbuffer

// noSlot is the internal marker for "no physical slot". It never escapes the
// public API: exported methods return (slot, ok) pairs instead.
const noSlot = -1

// geometry is the index algebra of the container: pure computations over the
// persisted (head, count, capacity) triple. The tail is always derived from
// these three so there is no second index field to drift out of sync.
type geometry struct {
	head     int // physical slot of the front element, noSlot when empty
	count    int // live elements, 0..capacity
	capacity int // slots in the backing block
}

// empty reports whether no elements are live.
func (g geometry) empty() bool {
	return g.count == 0
}

// full reports whether every slot is live.
func (g geometry) full() bool {
	return g.capacity > 0 && g.count == g.capacity
}

// tail returns the physical slot of the back element.
//
// The single formula covers both layouts: when the live run wraps past slot 0
// the tail sits near the end of the block (capacity - (count-head-1)),
// otherwise it sits count-1 slots below the head.
func (g geometry) tail() (int, bool) {
	if g.capacity == 0 || g.count == 0 || g.head == noSlot {
		return noSlot, false
	}
	if g.count == 1 {
		return g.head, true
	}
	if g.head < g.count-1 {
		return g.capacity - (g.count - g.head - 1), true
	}
	return g.head - (g.count - 1), true
}

// nextHead returns the slot one step beyond the head in the front-growth
// direction. The first insertion into an empty buffer lands in slot 0.
func (g geometry) nextHead() (int, bool) {
	if g.capacity == 0 || g.count == g.capacity {
		return noSlot, false
	}
	if g.count == 0 {
		return 0, true
	}
	if g.head == g.capacity-1 {
		return 0, true
	}
	return g.head + 1, true
}

// nextTail returns the slot one step beyond the tail in the back-growth
// direction. The first insertion into an empty buffer lands in slot 0.
func (g geometry) nextTail() (int, bool) {
	if g.capacity == 0 || g.count == g.capacity {
		return noSlot, false
	}
	if g.count == 0 {
		return 0, true
	}
	tail, _ := g.tail()
	if tail == 0 {
		return g.capacity - 1, true
	}
	return tail - 1, true
}

// prevHead returns the slot the head retreats to when the front element is
// removed. Only meaningful when count > 1.
func (g geometry) prevHead() int {
	if g.head == 0 {
		return g.capacity - 1
	}
	return g.head - 1
}

// logicalOf converts a physical slot to its logical offset from the front
// (0 == head). Slots outside the live run report ok == false.
func (g geometry) logicalOf(slot int) (int, bool) {
	if g.capacity == 0 || g.count == 0 || slot < 0 || slot >= g.capacity {
		return 0, false
	}
	offset := (g.head - slot + g.capacity) % g.capacity
	if offset >= g.count {
		return 0, false
	}
	return offset, true
}

// physicalOf converts a logical offset from the front back to a physical
// slot. Offsets outside [0, count) report ok == false.
func (g geometry) physicalOf(logical int) (int, bool) {
	if g.capacity == 0 || logical < 0 || logical >= g.count {
		return noSlot, false
	}
	return (g.head - logical + g.capacity) % g.capacity, true
}

// slotLive reports whether a physical slot currently holds a live element.
func (g geometry) slotLive(slot int) bool {
	_, ok := g.logicalOf(slot)
	return ok
}
