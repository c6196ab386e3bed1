package trace_test

import (
	"reflect"
	"testing"

	"github.com/jpcunhadias/ds-algo-lab/trace"
)

// fakeSnapshot is a minimal Snapshot for protocol-level tests.
type fakeSnapshot struct{ n int }

func (fakeSnapshot) Kind() string { return "fake" }
func (s fakeSnapshot) Size() int  { return s.n }

// threeSteps yields three numbered steps, honoring yield's stop signal.
func threeSteps() trace.Sequence[string] {
	return func(yield func(trace.Step[string]) bool) {
		for i := 1; i <= 3; i++ {
			step := trace.Step[string]{
				Algorithm:   "Fake",
				Number:      i,
				Description: "step",
				Structure:   fakeSnapshot{n: i},
				Detail:      "payload",
			}
			if !yield(step) {
				return
			}
		}
	}
}

// TestCollect_DrainsInOrder verifies the returned slice preserves emission order.
func TestCollect_DrainsInOrder(t *testing.T) {
	steps := trace.Collect(threeSteps(), nil)

	if len(steps) != 3 {
		t.Fatalf("len(steps) = %d; want 3", len(steps))
	}
	for i, s := range steps {
		if s.Number != i+1 {
			t.Errorf("steps[%d].Number = %d; want %d", i, s.Number, i+1)
		}
		if s.Structure.Size() != i+1 {
			t.Errorf("steps[%d].Structure.Size() = %d; want %d", i, s.Structure.Size(), i+1)
		}
	}
}

// TestCollect_ForwardsToObserver verifies each step reaches the observer as
// a KindStep event, in order.
func TestCollect_ForwardsToObserver(t *testing.T) {
	var kinds []trace.Kind
	var numbers []int
	obs := trace.ObserverFunc(func(kind trace.Kind, payload any) {
		kinds = append(kinds, kind)
		numbers = append(numbers, payload.(trace.Step[string]).Number)
	})

	trace.Collect(threeSteps(), obs)

	if want := []trace.Kind{trace.KindStep, trace.KindStep, trace.KindStep}; !reflect.DeepEqual(kinds, want) {
		t.Errorf("kinds = %v; want %v", kinds, want)
	}
	if want := []int{1, 2, 3}; !reflect.DeepEqual(numbers, want) {
		t.Errorf("numbers = %v; want %v", numbers, want)
	}
}

// TestCollect_NilObserver must not panic and still drain.
func TestCollect_NilObserver(t *testing.T) {
	if got := len(trace.Collect(threeSteps(), nil)); got != 3 {
		t.Errorf("drained %d steps; want 3", got)
	}
}

// TestCollect_LazySequence verifies the producer runs only when drained.
func TestCollect_LazySequence(t *testing.T) {
	ran := false
	seq := trace.Sequence[int](func(yield func(trace.Step[int]) bool) {
		ran = true
	})

	if ran {
		t.Fatal("sequence ran before draining")
	}
	trace.Collect(seq, nil)
	if !ran {
		t.Error("sequence did not run on drain")
	}
}

// TestCounter_Next starts at 1 and increases monotonically.
func TestCounter_Next(t *testing.T) {
	var c trace.Counter
	for want := 1; want <= 5; want++ {
		if got := c.Next(); got != want {
			t.Fatalf("Next() = %d; want %d", got, want)
		}
	}
}
