package ringbuffer

// Position is the state tag of an Iterator.
type Position int

const (
	// PositionBegin sits conceptually before the first element.
	PositionBegin Position = iota
	// PositionInRange points at a live slot; dereference is legal.
	PositionInRange
	// PositionEnd sits one past the last element.
	PositionEnd
	// PositionInvalid is the terminal state reached by stepping past End or
	// before Begin. Only a seek recovers from it.
	PositionInvalid
)

// String returns the string representation of a Position.
func (p Position) String() string {
	switch p {
	case PositionBegin:
		return "begin"
	case PositionInRange:
		return "in-range"
	case PositionEnd:
		return "end"
	case PositionInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// Iterator is a cursor over the logical positions of a RingBuffer, front to
// back. It is a borrow: mutating the buffer invalidates the element the
// cursor points at, and the cursor must be re-seeked afterwards. The iterator
// never bypasses the buffer's own slot validation.
type Iterator[T any] struct {
	buf  *RingBuffer[T]
	pos  Position
	slot int // physical slot, meaningful only when pos == PositionInRange
}

// Begin returns an iterator positioned before the first element.
func (b *RingBuffer[T]) Begin() *Iterator[T] {
	return &Iterator[T]{buf: b, pos: PositionBegin, slot: noSlot}
}

// End returns an iterator positioned one past the last element.
func (b *RingBuffer[T]) End() *Iterator[T] {
	return &Iterator[T]{buf: b, pos: PositionEnd, slot: noSlot}
}

// Pos returns the iterator's position tag.
func (it *Iterator[T]) Pos() Position {
	return it.pos
}

// Slot returns the physical slot under the cursor when in range.
func (it *Iterator[T]) Slot() (int, bool) {
	if it.pos != PositionInRange {
		return 0, false
	}
	return it.slot, true
}

// Value returns a copy of the element under the cursor when in range.
func (it *Iterator[T]) Value() (T, bool) {
	var zero T
	if it.pos != PositionInRange {
		return zero, false
	}
	return it.buf.At(it.slot)
}

// Set overwrites the element under the cursor when in range.
func (it *Iterator[T]) Set(value T) bool {
	if it.pos != PositionInRange {
		return false
	}
	return it.buf.SetAt(it.slot, value)
}

// Next steps one position toward the back and reports whether the cursor
// landed on a live element.
func (it *Iterator[T]) Next() bool {
	return it.Advance(1) == PositionInRange
}

// Prev steps one position toward the front and reports whether the cursor
// landed on a live element.
func (it *Iterator[T]) Prev() bool {
	return it.Advance(-1) == PositionInRange
}

// Advance moves the cursor by n logical positions (negative n moves toward
// the front) and returns the resulting position tag.
//
// The jump is computed in logical space: the current position maps to an
// offset from the front (Begin is -1, End is count), the offset moves by n,
// and the result maps back to a physical slot. A jump that overshoots End or
// undershoots Begin lands on PositionInvalid, never on a stale slot.
func (it *Iterator[T]) Advance(n int) Position {
	if it.pos == PositionInvalid {
		return PositionInvalid
	}

	count := it.buf.geo.count

	var current int
	switch it.pos {
	case PositionBegin:
		current = -1
	case PositionEnd:
		current = count
	default:
		logical, ok := it.buf.geo.logicalOf(it.slot)
		if !ok {
			// The buffer shrank under the cursor; the slot is stale
			it.pos = PositionInvalid
			it.slot = noSlot
			return it.pos
		}
		current = logical
	}

	target := current + n
	switch {
	case target == -1:
		it.pos = PositionBegin
		it.slot = noSlot
	case target >= 0 && target < count:
		slot, _ := it.buf.geo.physicalOf(target)
		it.pos = PositionInRange
		it.slot = slot
	case target == count:
		it.pos = PositionEnd
		it.slot = noSlot
	default:
		it.pos = PositionInvalid
		it.slot = noSlot
	}

	return it.pos
}

// SeekBegin rewinds the cursor to before the first element.
func (it *Iterator[T]) SeekBegin() {
	it.pos = PositionBegin
	it.slot = noSlot
}

// SeekEnd places the cursor one past the last element.
func (it *Iterator[T]) SeekEnd() {
	it.pos = PositionEnd
	it.slot = noSlot
}

// Equal reports whether two iterators reference the same buffer instance,
// carry the same position tag, and (when in range) the same physical slot.
func (it *Iterator[T]) Equal(other *Iterator[T]) bool {
	if other == nil || it.buf.id != other.buf.id || it.pos != other.pos {
		return false
	}
	if it.pos == PositionInRange {
		return it.slot == other.slot
	}
	return true
}
