// Package alloc provides the allocator capability consumed by ringkit
// containers. An allocator hands out contiguous blocks of slots and takes
// them back; containers never obtain backing storage any other way, so
// callers can meter, bound, or instrument every allocation a container makes.
package alloc

import (
	"github.com/c360/ringkit/errors"
)

// Allocator hands out and reclaims contiguous blocks of T slots.
//
// Implementations must be safe to copy by value or be pointer types, so that
// containers holding an allocator remain copyable. Allocate returns a block
// with exactly n slots; Deallocate returns a block previously issued by the
// same allocator.
type Allocator[T any] interface {
	// Allocate returns a zeroed block of n slots.
	Allocate(n int) ([]T, error)

	// Deallocate releases a block obtained from Allocate.
	Deallocate(block []T) error
}

// Heap is the default allocator. Blocks come from the Go heap and are
// reclaimed by the garbage collector, so Deallocate only validates its input.
type Heap[T any] struct{}

// NewHeap returns the default garbage-collected allocator.
func NewHeap[T any]() Heap[T] {
	return Heap[T]{}
}

// Allocate returns a zeroed block of n slots.
func (Heap[T]) Allocate(n int) ([]T, error) {
	if n <= 0 {
		return nil, errors.WrapInvalid(errors.ErrInvalidCapacity,
			"Heap", "Allocate", "non-positive block size")
	}
	return make([]T, n), nil
}

// Deallocate releases a block. The garbage collector does the actual work.
func (Heap[T]) Deallocate(block []T) error {
	if block == nil {
		return errors.WrapInvalid(errors.ErrForeignBlock,
			"Heap", "Deallocate", "release nil block")
	}
	return nil
}
