package tree_test

import (
	"reflect"
	"testing"

	"github.com/jpcunhadias/ds-algo-lab/trace"
	"github.com/jpcunhadias/ds-algo-lab/tree"
)

// recorder collects every (kind, payload) pair an observer receives.
type recorder struct {
	kinds    []trace.Kind
	payloads []any
}

func (r *recorder) OnEvent(kind trace.Kind, payload any) {
	r.kinds = append(r.kinds, kind)
	r.payloads = append(r.payloads, payload)
}

// TestBinary_LevelOrderInsert verifies new nodes fill the first free slot
// breadth-first, keeping the tree complete.
func TestBinary_LevelOrderInsert(t *testing.T) {
	b := tree.NewBinary(1, 2, 3, 4, 5)

	if want := []int{1, 2, 3, 4, 5}; !reflect.DeepEqual(b.LevelOrder(), want) {
		t.Errorf("LevelOrder() = %v; want %v", b.LevelOrder(), want)
	}
	if want := []int{4, 2, 5, 1, 3}; !reflect.DeepEqual(b.InOrder(), want) {
		t.Errorf("InOrder() = %v; want %v", b.InOrder(), want)
	}
	if b.Height() != 2 {
		t.Errorf("Height() = %d; want 2", b.Height())
	}
}

func TestBinary_Search(t *testing.T) {
	b := tree.NewBinary(1, 2, 3)

	if n := b.Search(3); n == nil || n.Value != 3 {
		t.Errorf("Search(3) = %v; want node 3", n)
	}
	if n := b.Search(42); n != nil {
		t.Errorf("Search(42) = %v; want nil", n)
	}
}

// TestBinary_DeleteSplicesDeepest verifies deletion copies the deepest
// rightmost value over the target, preserving completeness.
func TestBinary_DeleteSplicesDeepest(t *testing.T) {
	b := tree.NewBinary(1, 2, 3, 4, 5)

	if !b.Delete(2) {
		t.Fatal("Delete(2) = false; want true")
	}
	if want := []int{1, 5, 3, 4}; !reflect.DeepEqual(b.LevelOrder(), want) {
		t.Errorf("LevelOrder() = %v; want %v", b.LevelOrder(), want)
	}
	if b.Len() != 4 {
		t.Errorf("Len() = %d; want 4", b.Len())
	}

	if b.Delete(42) {
		t.Error("Delete(42) = true; want false")
	}
}

func TestBinary_DeleteDeepestItself(t *testing.T) {
	b := tree.NewBinary(1, 2, 3)

	if !b.Delete(3) {
		t.Fatal("Delete(3) = false; want true")
	}
	if want := []int{1, 2}; !reflect.DeepEqual(b.LevelOrder(), want) {
		t.Errorf("LevelOrder() = %v; want %v", b.LevelOrder(), want)
	}
}

func TestBinary_DeleteRoot(t *testing.T) {
	b := tree.NewBinary(7)

	if !b.Delete(7) {
		t.Fatal("Delete(7) = false; want true")
	}
	if b.Len() != 0 || b.Height() != -1 {
		t.Errorf("after delete: Len=%d Height=%d; want 0, -1", b.Len(), b.Height())
	}
}

func TestBinary_ObserverNotifications(t *testing.T) {
	rec := &recorder{}
	b := tree.NewBinary[int]()
	b.Attach(rec)

	b.Insert(1)
	b.Insert(2)
	b.Delete(1)

	want := []trace.Kind{trace.KindInit, trace.KindInsert, trace.KindInsert, trace.KindDelete}
	if !reflect.DeepEqual(rec.kinds, want) {
		t.Fatalf("kinds = %v; want %v", rec.kinds, want)
	}

	snap := rec.payloads[2].(tree.TreeSnapshot[int])
	if snap.Kind() != "binary_tree" || snap.Size() != 2 {
		t.Errorf("snapshot = (%s, %d); want (binary_tree, 2)", snap.Kind(), snap.Size())
	}
}
