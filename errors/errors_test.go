package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorClass_String(t *testing.T) {
	tests := []struct {
		class    ErrorClass
		expected string
	}{
		{ErrorTransient, "transient"},
		{ErrorInvalid, "invalid"},
		{ErrorFatal, "fatal"},
		{ErrorClass(999), "unknown"},
	}

	for _, test := range tests {
		t.Run(test.expected, func(t *testing.T) {
			result := test.class.String()
			if result != test.expected {
				t.Errorf("expected %s, got %s", test.expected, result)
			}
		})
	}
}

func TestIsTransient(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"nil error", nil, false},
		{"buffer full", ErrBufferFull, true},
		{"allocation failed", ErrAllocationFailed, true},
		{"budget exceeded", ErrBudgetExceeded, true},
		{"buffer empty", ErrBufferEmpty, false},
		{"invalid slot", ErrInvalidSlot, false},
		{"foreign block", ErrForeignBlock, false},
		{"wrapped full", fmt.Errorf("push: %w", ErrBufferFull), true},
		{"classified transient", &ClassifiedError{Class: ErrorTransient, Err: fmt.Errorf("test")}, true},
		{"classified fatal", &ClassifiedError{Class: ErrorFatal, Err: fmt.Errorf("test")}, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := IsTransient(test.err)
			if result != test.expected {
				t.Errorf("expected %v, got %v for error: %v", test.expected, result, test.err)
			}
		})
	}
}

func TestIsInvalid(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"nil error", nil, false},
		{"buffer empty", ErrBufferEmpty, true},
		{"unallocated", ErrBufferUnallocated, true},
		{"invalid capacity", ErrInvalidCapacity, true},
		{"capacity below count", ErrCapacityBelowCount, true},
		{"invalid slot", ErrInvalidSlot, true},
		{"iterator invalid", ErrIteratorInvalid, true},
		{"invalid config", ErrInvalidConfig, true},
		{"duplicate metric", ErrDuplicateMetric, true},
		{"buffer full", ErrBufferFull, false},
		{"classified invalid", &ClassifiedError{Class: ErrorInvalid, Err: fmt.Errorf("test")}, true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := IsInvalid(test.err)
			if result != test.expected {
				t.Errorf("expected %v, got %v for error: %v", test.expected, result, test.err)
			}
		})
	}
}

func TestIsFatal(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"nil error", nil, false},
		{"foreign block", ErrForeignBlock, true},
		{"buffer full", ErrBufferFull, false},
		{"buffer empty", ErrBufferEmpty, false},
		{"classified fatal", &ClassifiedError{Class: ErrorFatal, Err: fmt.Errorf("test")}, true},
		{"classified transient", &ClassifiedError{Class: ErrorTransient, Err: fmt.Errorf("test")}, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := IsFatal(test.err)
			if result != test.expected {
				t.Errorf("expected %v, got %v for error: %v", test.expected, result, test.err)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected ErrorClass
	}{
		{"nil error", nil, ErrorTransient},
		{"buffer full", ErrBufferFull, ErrorTransient},
		{"buffer empty", ErrBufferEmpty, ErrorInvalid},
		{"foreign block", ErrForeignBlock, ErrorFatal},
		{"unknown error", fmt.Errorf("something else"), ErrorTransient},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := Classify(test.err)
			if result != test.expected {
				t.Errorf("expected %v, got %v for error: %v", test.expected, result, test.err)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	base := fmt.Errorf("boom")

	wrapped := Wrap(base, "RingBuffer", "Resize", "grow backing block")
	if wrapped == nil {
		t.Fatal("expected non-nil wrapped error")
	}

	expected := "RingBuffer.Resize: grow backing block failed: boom"
	if wrapped.Error() != expected {
		t.Errorf("expected %q, got %q", expected, wrapped.Error())
	}

	if !errors.Is(wrapped, base) {
		t.Error("wrapped error should match base via errors.Is")
	}

	if Wrap(nil, "RingBuffer", "Resize", "grow backing block") != nil {
		t.Error("wrapping nil should return nil")
	}
}

func TestWrapClassified(t *testing.T) {
	base := ErrBufferFull

	tests := []struct {
		name     string
		wrap     func(error, string, string, string) error
		expected ErrorClass
	}{
		{"transient", WrapTransient, ErrorTransient},
		{"invalid", WrapInvalid, ErrorInvalid},
		{"fatal", WrapFatal, ErrorFatal},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := test.wrap(base, "RingBuffer", "PushBack", "insert at tail")

			var ce *ClassifiedError
			if !errors.As(err, &ce) {
				t.Fatal("expected a ClassifiedError")
			}
			if ce.Class != test.expected {
				t.Errorf("expected class %v, got %v", test.expected, ce.Class)
			}
			if ce.Component != "RingBuffer" || ce.Operation != "PushBack" {
				t.Errorf("unexpected context: %s.%s", ce.Component, ce.Operation)
			}
			if !errors.Is(err, ErrBufferFull) {
				t.Error("classification must preserve the sentinel chain")
			}
			if !strings.Contains(err.Error(), "insert at tail failed") {
				t.Errorf("unexpected message: %s", err.Error())
			}

			if test.wrap(nil, "RingBuffer", "PushBack", "insert at tail") != nil {
				t.Error("wrapping nil should return nil")
			}
		})
	}
}

func TestErrorHelpers(t *testing.T) {
	if !IsFull(fmt.Errorf("op: %w", ErrBufferFull)) {
		t.Error("IsFull should see through wrapping")
	}
	if !IsEmpty(WrapInvalid(ErrBufferEmpty, "RingBuffer", "PopFront", "remove head")) {
		t.Error("IsEmpty should see through classified wrapping")
	}
	if !IsAllocationFailure(ErrBudgetExceeded) {
		t.Error("IsAllocationFailure should cover budget errors")
	}
	if IsFull(ErrBufferEmpty) || IsEmpty(ErrBufferFull) {
		t.Error("helpers must not cross-match")
	}
}
