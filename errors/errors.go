// Package errors provides standardized error handling for ringkit containers.
// It includes error classification, standard error variables, and helper
// functions for consistent error wrapping across the library.
package errors

import (
	"errors"
	"fmt"
)

// ErrorClass represents the classification of errors for handling purposes
type ErrorClass int

const (
	// ErrorTransient represents errors that may succeed on a later attempt,
	// typically after the caller frees capacity or retries with a smaller request
	ErrorTransient ErrorClass = iota
	// ErrorInvalid represents errors due to invalid input or container state
	ErrorInvalid
	// ErrorFatal represents unrecoverable errors that should stop processing
	ErrorFatal
)

// String returns the string representation of ErrorClass
func (ec ErrorClass) String() string {
	switch ec {
	case ErrorTransient:
		return "transient"
	case ErrorInvalid:
		return "invalid"
	case ErrorFatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// Standard error variables for common conditions
var (
	// Capacity and occupancy errors
	ErrBufferFull        = errors.New("buffer full")
	ErrBufferEmpty       = errors.New("buffer empty")
	ErrBufferUnallocated = errors.New("buffer has no backing storage")

	// Sizing errors
	ErrInvalidCapacity    = errors.New("invalid capacity")
	ErrCapacityBelowCount = errors.New("capacity smaller than element count")

	// Slot and cursor errors
	ErrInvalidSlot     = errors.New("slot outside live range")
	ErrIteratorInvalid = errors.New("iterator not in range")

	// Allocator errors
	ErrAllocationFailed = errors.New("allocation failed")
	ErrBudgetExceeded   = errors.New("allocator budget exceeded")
	ErrForeignBlock     = errors.New("block not owned by this allocator")

	// Configuration errors
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrMissingConfig = errors.New("missing required configuration")

	// Metrics errors
	ErrDuplicateMetric = errors.New("metric already registered")
)

// ClassifiedError wraps an error with its classification
type ClassifiedError struct {
	Class     ErrorClass
	Err       error
	Message   string
	Component string
	Operation string
}

// Error implements the error interface
func (ce *ClassifiedError) Error() string {
	if ce.Message != "" {
		return ce.Message
	}
	return ce.Err.Error()
}

// Unwrap returns the underlying error
func (ce *ClassifiedError) Unwrap() error {
	return ce.Err
}

// IsFull reports whether an error indicates capacity exhaustion
func IsFull(err error) bool {
	return errors.Is(err, ErrBufferFull)
}

// IsEmpty reports whether an error indicates a pop or peek on an empty buffer
func IsEmpty(err error) bool {
	return errors.Is(err, ErrBufferEmpty)
}

// IsAllocationFailure reports whether an error came from the allocator
func IsAllocationFailure(err error) bool {
	return errors.Is(err, ErrAllocationFailed) || errors.Is(err, ErrBudgetExceeded)
}

// IsTransient checks if an error may succeed on a later attempt
func IsTransient(err error) bool {
	if err == nil {
		return false
	}

	// Check for classified error
	var ce *ClassifiedError
	if errors.As(err, &ce) {
		return ce.Class == ErrorTransient
	}

	// Capacity pressure clears when the caller pops or resizes
	return errors.Is(err, ErrBufferFull) ||
		errors.Is(err, ErrAllocationFailed) ||
		errors.Is(err, ErrBudgetExceeded)
}

// IsFatal checks if an error is fatal and should stop processing
func IsFatal(err error) bool {
	if err == nil {
		return false
	}

	// Check for classified error
	var ce *ClassifiedError
	if errors.As(err, &ce) {
		return ce.Class == ErrorFatal
	}

	return errors.Is(err, ErrForeignBlock)
}

// IsInvalid checks if an error is due to invalid input or container state
func IsInvalid(err error) bool {
	if err == nil {
		return false
	}

	// Check for classified error
	var ce *ClassifiedError
	if errors.As(err, &ce) {
		return ce.Class == ErrorInvalid
	}

	return errors.Is(err, ErrBufferEmpty) ||
		errors.Is(err, ErrBufferUnallocated) ||
		errors.Is(err, ErrInvalidCapacity) ||
		errors.Is(err, ErrCapacityBelowCount) ||
		errors.Is(err, ErrInvalidSlot) ||
		errors.Is(err, ErrIteratorInvalid) ||
		errors.Is(err, ErrInvalidConfig) ||
		errors.Is(err, ErrMissingConfig) ||
		errors.Is(err, ErrDuplicateMetric)
}

// Classify returns the error class for an error
func Classify(err error) ErrorClass {
	if err == nil {
		return ErrorTransient // Default for nil
	}

	if IsFatal(err) {
		return ErrorFatal
	}
	if IsInvalid(err) {
		return ErrorInvalid
	}

	// Default to transient for unknown errors
	return ErrorTransient
}

// newClassified creates a new classified error
// This is an internal helper - use WrapTransient(), WrapFatal(), or WrapInvalid() instead.
func newClassified(class ErrorClass, err error, component, operation, message string) *ClassifiedError {
	return &ClassifiedError{
		Class:     class,
		Err:       err,
		Message:   message,
		Component: component,
		Operation: operation,
	}
}

// Wrap creates a standardized error with context following the pattern:
// "component.method: action failed: %w"
func Wrap(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s.%s: %s failed: %w", component, method, action, err)
}

// WrapTransient wraps an error as transient with context
func WrapTransient(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	wrappedErr := Wrap(err, component, method, action)
	return newClassified(ErrorTransient, wrappedErr, component, method, wrappedErr.Error())
}

// WrapFatal wraps an error as fatal with context
func WrapFatal(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	wrappedErr := Wrap(err, component, method, action)
	return newClassified(ErrorFatal, wrappedErr, component, method, wrappedErr.Error())
}

// WrapInvalid wraps an error as invalid with context
func WrapInvalid(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	wrappedErr := Wrap(err, component, method, action)
	return newClassified(ErrorInvalid, wrappedErr, component, method, wrappedErr.Error())
}
