package seq_test

import (
	"fmt"

	"github.com/jpcunhadias/ds-algo-lab/seq"
	"github.com/jpcunhadias/ds-algo-lab/trace"
)

// ExampleArray_Attach shows live mutation events flowing to an observer.
func ExampleArray_Attach() {
	a := seq.NewArray(3, 1)
	a.Attach(trace.ObserverFunc(func(kind trace.Kind, payload any) {
		snap := payload.(seq.ArraySnapshot[int])
		fmt.Printf("%s -> %v\n", kind, snap.Values)
	}))

	a.Append(2)
	_ = a.Insert(0, 0)
	_, _ = a.Delete(3)
	// Output:
	// init -> [3 1]
	// append -> [3 1 2]
	// insert -> [0 3 1 2]
	// delete -> [0 3 1]
}

// ExampleStack demonstrates LIFO behavior.
func ExampleStack() {
	s := seq.NewStack[string]()
	s.Push("first")
	s.Push("second")

	top, _ := s.Pop()
	fmt.Println(top)
	// Output:
	// second
}

// ExampleQueue demonstrates FIFO behavior.
func ExampleQueue() {
	q := seq.NewQueue[string]()
	q.Enqueue("first")
	q.Enqueue("second")

	front, _ := q.Dequeue()
	fmt.Println(front)
	// Output:
	// first
}
