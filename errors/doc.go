// Package errors provides standardized error handling patterns for ringkit containers.
//
// # Overview
//
// The errors package implements a three-class error classification system for
// in-memory container operations: Transient (capacity pressure that clears when
// the caller frees space), Invalid (bad input or a request the current container
// state cannot satisfy), and Fatal (ownership violations and other unrecoverable
// states).
//
// This classification lets callers decide between backing off, fixing their
// input, or escalating, without matching on error strings.
//
// # Error Classification
//
//   - Transient: buffer full, allocation failure, allocator budget exceeded
//     (pop or resize, then retry)
//   - Invalid: pop on empty, slot outside the live range, capacity below the
//     current element count, bad configuration (do not retry)
//   - Fatal: returning a block to an allocator that never issued it
//
// The classification integrates with Go's standard error handling, supporting
// errors.Is(), errors.As(), and error wrapping chains.
//
// # Quick Start
//
// Return standard error variables for known conditions:
//
//	if buf.IsFull() {
//	    return errors.ErrBufferFull
//	}
//
// Wrap errors with context for debugging:
//
//	if err := buf.Resize(n); err != nil {
//	    return errors.Wrap(err, "RingBuffer", "Resize", "grow backing block")
//	}
//
// Check classification to drive handling:
//
//	if _, err := buf.PushBack(v); err != nil {
//	    if errors.IsFull(err) {
//	        // drop, pop, or resize
//	    }
//	}
//
// # Error Wrapping Pattern
//
// All error wrapping follows the standardized format:
//
//	"component.method: action failed: %w"
//
// Three wrapper functions provide classification-aware wrapping:
//
//	errors.WrapTransient(err, "Component", "Method", "action")
//	errors.WrapInvalid(err, "Component", "Method", "action")
//	errors.WrapFatal(err, "Component", "Method", "action")
//
// The generic Wrap() function adds context without forcing a class.
//
// # Containers and errors versus ok-booleans
//
// Operations whose absence case is routine (peek, lookup) return (value, ok)
// pairs; operations whose failure the caller must not confuse with data
// (pop, push, resize) return classified errors. Pop on an empty buffer is an
// explicit ErrBufferEmpty, never a fabricated zero value.
package errors
