package seq

import (
	"slices"

	"golang.org/x/exp/constraints"

	"github.com/jpcunhadias/ds-algo-lab/trace"
)

// Queue is a FIFO container over ordered elements.
type Queue[T constraints.Ordered] struct {
	data []T
	obs  trace.Observer
}

// NewQueue builds a Queue with the given values enqueued in order, so the
// first value is at the front.
// Complexity: O(n)
func NewQueue[T constraints.Ordered](values ...T) *Queue[T] {
	return &Queue[T]{data: slices.Clone(values)}
}

// Attach registers obs to receive mutation events. Passing nil detaches.
func (q *Queue[T]) Attach(obs trace.Observer) {
	q.obs = obs
	q.notify(trace.KindInit)
}

// Observer returns the currently attached observer, or nil.
func (q *Queue[T]) Observer() trace.Observer { return q.obs }

func (q *Queue[T]) notify(kind trace.Kind) {
	if q.obs != nil {
		q.obs.OnEvent(kind, q.Snapshot())
	}
}

// Enqueue places v at the back of the queue.
// Complexity: amortized O(1)
func (q *Queue[T]) Enqueue(v T) {
	q.data = append(q.data, v)
	q.notify(trace.KindEnqueue)
}

// Dequeue removes and returns the front value, or ErrEmptyQueue.
// Complexity: O(n); front removal shifts the backing slice.
func (q *Queue[T]) Dequeue() (T, error) {
	var zero T
	if len(q.data) == 0 {
		return zero, ErrEmptyQueue
	}
	v := q.data[0]
	q.data = q.data[1:]
	q.notify(trace.KindDequeue)

	return v, nil
}

// Peek returns the front value without removing it, or ErrEmptyQueue.
// Complexity: O(1)
func (q *Queue[T]) Peek() (T, error) {
	var zero T
	if len(q.data) == 0 {
		return zero, ErrEmptyQueue
	}

	return q.data[0], nil
}

// IsEmpty reports whether the queue holds no elements.
func (q *Queue[T]) IsEmpty() bool { return len(q.data) == 0 }

// Len returns the element count.
func (q *Queue[T]) Len() int { return len(q.data) }

// ToSlice returns a front-first copy of the contents.
func (q *Queue[T]) ToSlice() []T { return slices.Clone(q.data) }

// Snapshot returns an immutable copy of the current contents.
func (q *Queue[T]) Snapshot() trace.Snapshot {
	return QueueSnapshot[T]{Values: slices.Clone(q.data)}
}
