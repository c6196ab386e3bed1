// Package seq: sentinel errors and snapshot types for the linear containers.
package seq

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// Sentinel errors for linear container operations.
var (
	// ErrIndexOutOfRange is returned for any index outside the valid range.
	ErrIndexOutOfRange = errors.New("seq: index out of range")

	// ErrEmptyStack is returned by Pop/Peek on an empty stack.
	ErrEmptyStack = errors.New("seq: stack is empty")

	// ErrEmptyQueue is returned by Dequeue/Peek on an empty queue.
	ErrEmptyQueue = errors.New("seq: queue is empty")
)

// ArraySnapshot is the immutable view of an Array.
type ArraySnapshot[T constraints.Ordered] struct {
	Values []T
}

// Kind returns "array".
func (ArraySnapshot[T]) Kind() string { return "array" }

// Size returns the captured element count.
func (s ArraySnapshot[T]) Size() int { return len(s.Values) }

// ListSnapshot is the immutable view of a List, head first.
type ListSnapshot[T constraints.Ordered] struct {
	Values []T
}

// Kind returns "linked_list".
func (ListSnapshot[T]) Kind() string { return "linked_list" }

// Size returns the captured element count.
func (s ListSnapshot[T]) Size() int { return len(s.Values) }

// StackSnapshot is the immutable view of a Stack, bottom first.
type StackSnapshot[T constraints.Ordered] struct {
	Values []T
}

// Kind returns "stack".
func (StackSnapshot[T]) Kind() string { return "stack" }

// Size returns the captured element count.
func (s StackSnapshot[T]) Size() int { return len(s.Values) }

// QueueSnapshot is the immutable view of a Queue, front first.
type QueueSnapshot[T constraints.Ordered] struct {
	Values []T
}

// Kind returns "queue".
func (QueueSnapshot[T]) Kind() string { return "queue" }

// Size returns the captured element count.
func (s QueueSnapshot[T]) Size() int { return len(s.Values) }
