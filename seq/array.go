package seq

import (
	"fmt"
	"slices"

	"golang.org/x/exp/constraints"

	"github.com/jpcunhadias/ds-algo-lab/trace"
)

// Array is a dynamic array over ordered elements. It owns its storage;
// ToSlice and Snapshot hand out copies only.
type Array[T constraints.Ordered] struct {
	data []T
	obs  trace.Observer
}

// NewArray builds an Array seeded with the given values.
// Complexity: O(n)
func NewArray[T constraints.Ordered](values ...T) *Array[T] {
	return &Array[T]{data: slices.Clone(values)}
}

// Attach registers obs to receive mutation events. Passing nil detaches.
func (a *Array[T]) Attach(obs trace.Observer) {
	a.obs = obs
	a.notify(trace.KindInit)
}

// Observer returns the currently attached observer, or nil.
func (a *Array[T]) Observer() trace.Observer { return a.obs }

func (a *Array[T]) notify(kind trace.Kind) {
	if a.obs != nil {
		a.obs.OnEvent(kind, a.Snapshot())
	}
}

// Append adds v at the end.
// Complexity: amortized O(1)
func (a *Array[T]) Append(v T) {
	a.data = append(a.data, v)
	a.notify(trace.KindAppend)
}

// Insert places v at index i, shifting later elements right.
// Valid indices are [0, Len()]; out of range returns ErrIndexOutOfRange
// with no mutation.
// Complexity: O(n)
func (a *Array[T]) Insert(i int, v T) error {
	if i < 0 || i > len(a.data) {
		return fmt.Errorf("%w: insert at %d with size %d", ErrIndexOutOfRange, i, len(a.data))
	}
	a.data = slices.Insert(a.data, i, v)
	a.notify(trace.KindInsert)

	return nil
}

// Delete removes and returns the element at index i.
// Complexity: O(n)
func (a *Array[T]) Delete(i int) (T, error) {
	var zero T
	if i < 0 || i >= len(a.data) {
		return zero, fmt.Errorf("%w: delete at %d with size %d", ErrIndexOutOfRange, i, len(a.data))
	}
	v := a.data[i]
	a.data = slices.Delete(a.data, i, i+1)
	a.notify(trace.KindDelete)

	return v, nil
}

// Search returns the index of the first occurrence of v, or -1.
// Complexity: O(n)
func (a *Array[T]) Search(v T) int {
	idx := slices.Index(a.data, v)
	a.notify(trace.KindSearch)

	return idx
}

// Get returns the element at index i.
// Complexity: O(1)
func (a *Array[T]) Get(i int) (T, error) {
	var zero T
	if i < 0 || i >= len(a.data) {
		return zero, fmt.Errorf("%w: get at %d with size %d", ErrIndexOutOfRange, i, len(a.data))
	}

	return a.data[i], nil
}

// Set overwrites the element at index i.
// Complexity: O(1)
func (a *Array[T]) Set(i int, v T) error {
	if i < 0 || i >= len(a.data) {
		return fmt.Errorf("%w: set at %d with size %d", ErrIndexOutOfRange, i, len(a.data))
	}
	a.data[i] = v
	a.notify(trace.KindUpdate)

	return nil
}

// Len returns the element count.
func (a *Array[T]) Len() int { return len(a.data) }

// ToSlice returns a copy of the contents.
func (a *Array[T]) ToSlice() []T { return slices.Clone(a.data) }

// Snapshot returns an immutable copy of the current contents.
func (a *Array[T]) Snapshot() trace.Snapshot {
	return ArraySnapshot[T]{Values: slices.Clone(a.data)}
}
