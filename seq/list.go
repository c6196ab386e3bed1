package seq

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/jpcunhadias/ds-algo-lab/trace"
)

// listNode is one link of a List. Nodes are owned by the list and never
// escape it.
type listNode[T constraints.Ordered] struct {
	value T
	next  *listNode[T]
}

// List is a singly linked list over ordered elements.
type List[T constraints.Ordered] struct {
	head *listNode[T]
	size int
	obs  trace.Observer
}

// NewList builds a List seeded with the given values, in order.
// Complexity: O(n)
func NewList[T constraints.Ordered](values ...T) *List[T] {
	l := &List[T]{}
	for _, v := range values {
		l.append(v)
	}

	return l
}

// Attach registers obs to receive mutation events. Passing nil detaches.
func (l *List[T]) Attach(obs trace.Observer) {
	l.obs = obs
	l.notify(trace.KindInit)
}

// Observer returns the currently attached observer, or nil.
func (l *List[T]) Observer() trace.Observer { return l.obs }

func (l *List[T]) notify(kind trace.Kind) {
	if l.obs != nil {
		l.obs.OnEvent(kind, l.Snapshot())
	}
}

func (l *List[T]) append(v T) {
	node := &listNode[T]{value: v}
	if l.head == nil {
		l.head = node
	} else {
		cur := l.head
		for cur.next != nil {
			cur = cur.next
		}
		cur.next = node
	}
	l.size++
}

// Append adds v at the tail.
// Complexity: O(n); the list keeps no tail pointer.
func (l *List[T]) Append(v T) {
	l.append(v)
	l.notify(trace.KindAppend)
}

// Insert places v at index i. Valid indices are [0, Len()].
// Complexity: O(n)
func (l *List[T]) Insert(i int, v T) error {
	if i < 0 || i > l.size {
		return fmt.Errorf("%w: insert at %d with size %d", ErrIndexOutOfRange, i, l.size)
	}

	node := &listNode[T]{value: v}
	if i == 0 {
		node.next = l.head
		l.head = node
	} else {
		cur := l.head
		for step := 0; step < i-1; step++ {
			cur = cur.next
		}
		node.next = cur.next
		cur.next = node
	}
	l.size++
	l.notify(trace.KindInsert)

	return nil
}

// Delete removes and returns the element at index i.
// Complexity: O(n)
func (l *List[T]) Delete(i int) (T, error) {
	var zero T
	if i < 0 || i >= l.size {
		return zero, fmt.Errorf("%w: delete at %d with size %d", ErrIndexOutOfRange, i, l.size)
	}

	var v T
	if i == 0 {
		v = l.head.value
		l.head = l.head.next
	} else {
		cur := l.head
		for step := 0; step < i-1; step++ {
			cur = cur.next
		}
		v = cur.next.value
		cur.next = cur.next.next
	}
	l.size--
	l.notify(trace.KindDelete)

	return v, nil
}

// Search returns the index of the first occurrence of v, or -1.
// Complexity: O(n)
func (l *List[T]) Search(v T) int {
	idx := 0
	for cur := l.head; cur != nil; cur = cur.next {
		if cur.value == v {
			l.notify(trace.KindSearch)

			return idx
		}
		idx++
	}
	l.notify(trace.KindSearch)

	return -1
}

// Get returns the element at index i.
// Complexity: O(n)
func (l *List[T]) Get(i int) (T, error) {
	var zero T
	if i < 0 || i >= l.size {
		return zero, fmt.Errorf("%w: get at %d with size %d", ErrIndexOutOfRange, i, l.size)
	}

	cur := l.head
	for step := 0; step < i; step++ {
		cur = cur.next
	}

	return cur.value, nil
}

// Len returns the element count.
func (l *List[T]) Len() int { return l.size }

// ToSlice returns the contents head-first as a fresh slice.
func (l *List[T]) ToSlice() []T {
	out := make([]T, 0, l.size)
	for cur := l.head; cur != nil; cur = cur.next {
		out = append(out, cur.value)
	}

	return out
}

// Snapshot returns an immutable copy of the current contents.
func (l *List[T]) Snapshot() trace.Snapshot {
	return ListSnapshot[T]{Values: l.ToSlice()}
}
