package alloc

import (
	"sync"

	"github.com/c360/ringkit/errors"
)

// Bounded is an allocator with a fixed slot budget. Requests that would push
// the outstanding slot count past the budget fail instead of allocating,
// which turns a growable container into a statically bounded one and gives
// tests a deterministic way to exercise allocation-failure paths.
type Bounded[T any] struct {
	inner  Allocator[T]
	budget int

	mu   sync.Mutex
	used int
}

// NewBounded wraps inner with a slot budget. A non-positive budget refuses
// every allocation.
func NewBounded[T any](inner Allocator[T], budget int) *Bounded[T] {
	return &Bounded[T]{
		inner:  inner,
		budget: budget,
	}
}

// Allocate returns a block of n slots if the budget allows it.
func (b *Bounded[T]) Allocate(n int) ([]T, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if n <= 0 {
		return nil, errors.WrapInvalid(errors.ErrInvalidCapacity,
			"Bounded", "Allocate", "non-positive block size")
	}
	if b.used+n > b.budget {
		return nil, errors.WrapTransient(errors.ErrBudgetExceeded,
			"Bounded", "Allocate", "reserve slots")
	}

	block, err := b.inner.Allocate(n)
	if err != nil {
		return nil, err
	}

	b.used += n
	return block, nil
}

// Deallocate returns a block and frees its share of the budget.
func (b *Bounded[T]) Deallocate(block []T) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if block == nil {
		return errors.WrapInvalid(errors.ErrForeignBlock,
			"Bounded", "Deallocate", "release nil block")
	}
	if len(block) > b.used {
		return errors.WrapFatal(errors.ErrForeignBlock,
			"Bounded", "Deallocate", "release more slots than outstanding")
	}

	if err := b.inner.Deallocate(block); err != nil {
		return err
	}

	b.used -= len(block)
	return nil
}

// Budget returns the total slot budget.
func (b *Bounded[T]) Budget() int {
	return b.budget
}

// Used returns the number of slots currently outstanding.
func (b *Bounded[T]) Used() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.used
}

// Available returns the number of slots still allocatable.
func (b *Bounded[T]) Available() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.budget - b.used
}
