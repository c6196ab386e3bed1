package seq

import (
	"slices"

	"golang.org/x/exp/constraints"

	"github.com/jpcunhadias/ds-algo-lab/trace"
)

// Stack is a LIFO container over ordered elements.
type Stack[T constraints.Ordered] struct {
	data []T
	obs  trace.Observer
}

// NewStack builds a Stack with the given values pushed in order, so the
// last value ends up on top.
// Complexity: O(n)
func NewStack[T constraints.Ordered](values ...T) *Stack[T] {
	return &Stack[T]{data: slices.Clone(values)}
}

// Attach registers obs to receive mutation events. Passing nil detaches.
func (s *Stack[T]) Attach(obs trace.Observer) {
	s.obs = obs
	s.notify(trace.KindInit)
}

// Observer returns the currently attached observer, or nil.
func (s *Stack[T]) Observer() trace.Observer { return s.obs }

func (s *Stack[T]) notify(kind trace.Kind) {
	if s.obs != nil {
		s.obs.OnEvent(kind, s.Snapshot())
	}
}

// Push places v on top of the stack.
// Complexity: amortized O(1)
func (s *Stack[T]) Push(v T) {
	s.data = append(s.data, v)
	s.notify(trace.KindPush)
}

// Pop removes and returns the top value, or ErrEmptyStack.
// Complexity: O(1)
func (s *Stack[T]) Pop() (T, error) {
	var zero T
	if len(s.data) == 0 {
		return zero, ErrEmptyStack
	}
	v := s.data[len(s.data)-1]
	s.data = s.data[:len(s.data)-1]
	s.notify(trace.KindPop)

	return v, nil
}

// Peek returns the top value without removing it, or ErrEmptyStack.
// Complexity: O(1)
func (s *Stack[T]) Peek() (T, error) {
	var zero T
	if len(s.data) == 0 {
		return zero, ErrEmptyStack
	}

	return s.data[len(s.data)-1], nil
}

// IsEmpty reports whether the stack holds no elements.
func (s *Stack[T]) IsEmpty() bool { return len(s.data) == 0 }

// Len returns the element count.
func (s *Stack[T]) Len() int { return len(s.data) }

// ToSlice returns a bottom-first copy of the contents.
func (s *Stack[T]) ToSlice() []T { return slices.Clone(s.data) }

// Snapshot returns an immutable copy of the current contents.
func (s *Stack[T]) Snapshot() trace.Snapshot {
	return StackSnapshot[T]{Values: slices.Clone(s.data)}
}
