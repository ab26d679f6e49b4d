package alloc

import (
	"log/slog"
	"sync/atomic"

	"github.com/c360/ringkit/errors"
)

// Counting wraps another allocator and tracks outstanding blocks and slots.
// With a logger attached it reports every allocation and release at debug
// level, which makes it the drop-in diagnostic for leak hunts in tests.
type Counting[T any] struct {
	inner  Allocator[T]
	logger *slog.Logger

	allocations   atomic.Int64
	deallocations atomic.Int64
	liveSlots     atomic.Int64
}

// NewCounting wraps inner with allocation tracking. logger may be nil.
func NewCounting[T any](inner Allocator[T], logger *slog.Logger) *Counting[T] {
	return &Counting[T]{
		inner:  inner,
		logger: logger,
	}
}

// Allocate delegates to the wrapped allocator and records the block.
func (c *Counting[T]) Allocate(n int) ([]T, error) {
	block, err := c.inner.Allocate(n)
	if err != nil {
		return nil, err
	}

	c.allocations.Add(1)
	c.liveSlots.Add(int64(n))

	if c.logger != nil {
		c.logger.Debug("block allocated",
			"slots", n,
			"live_slots", c.liveSlots.Load())
	}

	return block, nil
}

// Deallocate delegates to the wrapped allocator and records the release.
func (c *Counting[T]) Deallocate(block []T) error {
	if block == nil {
		return errors.WrapInvalid(errors.ErrForeignBlock,
			"Counting", "Deallocate", "release nil block")
	}

	if err := c.inner.Deallocate(block); err != nil {
		return err
	}

	c.deallocations.Add(1)
	c.liveSlots.Add(-int64(len(block)))

	if c.logger != nil {
		c.logger.Debug("block released",
			"slots", len(block),
			"live_slots", c.liveSlots.Load())
	}

	return nil
}

// Allocations returns the total number of blocks handed out.
func (c *Counting[T]) Allocations() int64 {
	return c.allocations.Load()
}

// Deallocations returns the total number of blocks returned.
func (c *Counting[T]) Deallocations() int64 {
	return c.deallocations.Load()
}

// LiveSlots returns the number of slots currently outstanding.
func (c *Counting[T]) LiveSlots() int64 {
	return c.liveSlots.Load()
}

// Balanced reports whether every allocated block has been returned.
func (c *Counting[T]) Balanced() bool {
	return c.allocations.Load() == c.deallocations.Load()
}
