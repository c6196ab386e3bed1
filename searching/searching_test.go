package searching_test

import (
	"errors"
	"reflect"
	"testing"

	"golang.org/x/exp/constraints"

	"github.com/jpcunhadias/ds-algo-lab/searching"
	"github.com/jpcunhadias/ds-algo-lab/seq"
	"github.com/jpcunhadias/ds-algo-lab/trace"
)

// sortedArr is the canonical sorted fixture 10,20,...,90.
func sortedArr() *seq.Array[int] {
	return seq.NewArray(10, 20, 30, 40, 50, 60, 70, 80, 90)
}

// foundIndex returns the FoundIndex of the last step.
func foundIndex[T constraints.Ordered](steps []trace.Step[searching.Detail[T]]) int {
	return steps[len(steps)-1].Detail.FoundIndex
}

// TestAllSearches_FindEveryElement: each algorithm must locate every value
// present in the sorted fixture and miss every absent one.
func TestAllSearches_FindEveryElement(t *testing.T) {
	values := sortedArr().ToSlice()

	for _, name := range searching.Names() {
		alg, ok := searching.Lookup[int](name)
		if !ok {
			t.Fatalf("Lookup(%q) failed", name)
		}

		for i, v := range values {
			steps := trace.Collect(alg(sortedArr(), v), nil)
			if got := foundIndex(steps); got != i {
				t.Errorf("%s(%d): FoundIndex = %d; want %d", name, v, got, i)
			}
		}

		for _, v := range []int{5, 55, 95} {
			steps := trace.Collect(alg(sortedArr(), v), nil)
			if got := foundIndex(steps); got != searching.NoIndex {
				t.Errorf("%s(%d): FoundIndex = %d; want NoIndex", name, v, got)
			}
		}
	}
}

func TestAllSearches_StepInvariants(t *testing.T) {
	for _, name := range searching.Names() {
		alg, _ := searching.Lookup[int](name)
		steps := trace.Collect(alg(sortedArr(), 70), nil)

		for i, s := range steps {
			if s.Number != i+1 {
				t.Fatalf("%s: steps[%d].Number = %d; want %d", name, i, s.Number, i+1)
			}
			if s.Detail.Target != 70 {
				t.Fatalf("%s: steps[%d].Target = %d; want 70", name, i, s.Detail.Target)
			}
			if s.Structure == nil || s.Structure.Kind() != "array" {
				t.Fatalf("%s: steps[%d] missing array snapshot", name, i)
			}
		}

		// Searching never mutates the array.
		arr := sortedArr()
		trace.Collect(alg(arr, 70), nil)
		if want := sortedArr().ToSlice(); !reflect.DeepEqual(arr.ToSlice(), want) {
			t.Errorf("%s mutated its input: %v", name, arr.ToSlice())
		}
	}
}

// TestBinary_MidpointWalk pins the exact (left+right)/2 arithmetic: 50 sits
// at the first midpoint of [0..8], so one probe finds it.
func TestBinary_MidpointWalk(t *testing.T) {
	steps := trace.Collect(searching.Binary(sortedArr(), 50), nil)

	if want := "Initializing search for 50"; steps[0].Description != want {
		t.Errorf("first step = %q; want %q", steps[0].Description, want)
	}

	probe := steps[1]
	if probe.Detail.Mid != 4 || probe.Detail.Left != 0 || probe.Detail.Right != 8 {
		t.Errorf("first probe = mid %d in [%d..%d]; want 4 in [0..8]",
			probe.Detail.Mid, probe.Detail.Left, probe.Detail.Right)
	}

	last := steps[len(steps)-1]
	if last.Detail.FoundIndex != 4 {
		t.Errorf("FoundIndex = %d; want 4", last.Detail.FoundIndex)
	}
	// init, probe, found: a single comparison suffices here.
	if len(steps) != 3 {
		t.Errorf("len(steps) = %d; want 3", len(steps))
	}
}

// TestBinary_WindowNarrows: each direction step halves the search window.
func TestBinary_WindowNarrows(t *testing.T) {
	steps := trace.Collect(searching.Binary(sortedArr(), 70), nil)

	// mid=4 (50<70, go right), mid=6 (70 found).
	var mids []int
	for _, s := range steps {
		if s.Detail.Mid != searching.NoIndex && s.Detail.CurrentIndex == s.Detail.Mid && s.Detail.FoundIndex == searching.NoIndex {
			mids = append(mids, s.Detail.Mid)
		}
	}
	if len(mids) < 2 || mids[0] != 4 {
		t.Errorf("probe mids = %v; want first probe at 4", mids)
	}
}

func TestLinear_FirstOccurrenceUnsorted(t *testing.T) {
	arr := seq.NewArray(7, 3, 7, 1)
	steps := trace.Collect(searching.Linear(arr, 7), nil)

	if got := foundIndex(steps); got != 0 {
		t.Errorf("FoundIndex = %d; want 0", got)
	}
	// One probe step plus the found step.
	if len(steps) != 2 {
		t.Errorf("len(steps) = %d; want 2", len(steps))
	}
}

func TestTernary_CutPoints(t *testing.T) {
	steps := trace.Collect(searching.Ternary(sortedArr(), 90), nil)

	// First round over [0..8]: mid1 = 2, mid2 = 6.
	probe := steps[1]
	if probe.Detail.Mid != 2 || probe.Detail.Mid2 != 6 {
		t.Errorf("first cuts = (%d, %d); want (2, 6)", probe.Detail.Mid, probe.Detail.Mid2)
	}
	if got := foundIndex(steps); got != 8 {
		t.Errorf("FoundIndex = %d; want 8", got)
	}
}

// TestExponential_Phases: steps move from range finding into binary search
// and end in a found phase.
func TestExponential_Phases(t *testing.T) {
	steps := trace.Collect(searching.Exponential(sortedArr(), 70), nil)

	var phases []searching.Phase
	for _, s := range steps {
		phases = append(phases, s.Detail.Phase)
	}

	if phases[0] != searching.PhaseRangeFinding {
		t.Errorf("first phase = %s; want range finding", phases[0])
	}
	if phases[len(phases)-1] != searching.PhaseFound {
		t.Errorf("last phase = %s; want found", phases[len(phases)-1])
	}

	sawBinary := false
	for _, p := range phases {
		if p == searching.PhaseBinarySearch {
			sawBinary = true
		}
	}
	if !sawBinary {
		t.Error("no binary search phase for a target deep in the array")
	}
}

func TestExponential_FirstElement(t *testing.T) {
	steps := trace.Collect(searching.Exponential(sortedArr(), 10), nil)

	if got := foundIndex(steps); got != 0 {
		t.Errorf("FoundIndex = %d; want 0", got)
	}
	if last := steps[len(steps)-1]; last.Detail.Phase != searching.PhaseFound {
		t.Errorf("last phase = %s; want found", last.Detail.Phase)
	}
}

func TestExponential_EmptyArray(t *testing.T) {
	arr := seq.NewArray[int]()
	steps := trace.Collect(searching.Exponential(arr, 5), nil)

	if len(steps) == 0 {
		t.Fatal("no steps emitted")
	}
	last := steps[len(steps)-1]
	if last.Detail.Phase != searching.PhaseNotFound || last.Detail.FoundIndex != searching.NoIndex {
		t.Errorf("empty array: phase %s, found %d; want not_found, NoIndex", last.Detail.Phase, last.Detail.FoundIndex)
	}
}

func TestSearches_StringElements(t *testing.T) {
	arr := seq.NewArray("apple", "mango", "pear")
	steps := trace.Collect(searching.Binary(arr, "mango"), nil)

	if got := foundIndex(steps); got != 1 {
		t.Errorf("FoundIndex = %d; want 1", got)
	}
}

func TestExecute_Registry(t *testing.T) {
	steps, err := searching.Execute("binary_search", sortedArr(), 30, false)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if got := foundIndex(steps); got != 2 {
		t.Errorf("FoundIndex = %d; want 2", got)
	}

	if _, err := searching.Execute("quantum_search", sortedArr(), 30, false); !errors.Is(err, searching.ErrUnknownAlgorithm) {
		t.Errorf("unknown name: want ErrUnknownAlgorithm, got %v", err)
	}
}

// TestExecute_ObserveForwardsSteps mirrors each step to the array's
// observer as a KindStep event.
func TestExecute_ObserveForwardsSteps(t *testing.T) {
	arr := sortedArr()
	var stepEvents int
	arr.Attach(trace.ObserverFunc(func(kind trace.Kind, payload any) {
		if kind == trace.KindStep {
			stepEvents++
		}
	}))

	steps, err := searching.Execute("linear_search", arr, 40, true)
	if err != nil {
		t.Fatal(err)
	}
	if stepEvents != len(steps) {
		t.Errorf("observer saw %d step events; want %d", stepEvents, len(steps))
	}
}
