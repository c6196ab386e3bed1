package tree

import (
	"golang.org/x/exp/constraints"

	"github.com/jpcunhadias/ds-algo-lab/trace"
)

// Binary is a plain binary tree filled in level order: Insert places the
// new node in the first free child slot found breadth-first, keeping the
// tree as complete as possible. No ordering invariant is maintained.
type Binary[T constraints.Ordered] struct {
	root *Node[T]
	size int
	obs  trace.Observer
}

// NewBinary builds a Binary tree seeded with the given values, inserted
// in order.
func NewBinary[T constraints.Ordered](values ...T) *Binary[T] {
	t := &Binary[T]{}
	for _, v := range values {
		t.Insert(v)
	}

	return t
}

// Attach registers obs to receive mutation events. Passing nil detaches.
func (t *Binary[T]) Attach(obs trace.Observer) {
	t.obs = obs
	t.notify(trace.KindInit)
}

// Observer returns the currently attached observer, or nil.
func (t *Binary[T]) Observer() trace.Observer { return t.obs }

func (t *Binary[T]) notify(kind trace.Kind) {
	if t.obs != nil {
		t.obs.OnEvent(kind, t.Snapshot())
	}
}

// Insert places v in the first free slot in level order.
// Complexity: O(n)
func (t *Binary[T]) Insert(v T) {
	node := &Node[T]{Value: v}
	if t.root == nil {
		t.root = node
	} else {
		queue := []*Node[T]{t.root}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			if cur.Left == nil {
				cur.Left = node
				break
			}
			if cur.Right == nil {
				cur.Right = node
				break
			}
			queue = append(queue, cur.Left, cur.Right)
		}
	}
	t.size++
	t.notify(trace.KindInsert)
}

// Search returns the first node holding v in pre-order, or nil.
// Complexity: O(n)
func (t *Binary[T]) Search(v T) *Node[T] {
	found := searchAny(t.root, v)
	t.notify(trace.KindSearch)

	return found
}

func searchAny[T constraints.Ordered](n *Node[T], v T) *Node[T] {
	if n == nil {
		return nil
	}
	if n.Value == v {
		return n
	}
	if found := searchAny(n.Left, v); found != nil {
		return found
	}

	return searchAny(n.Right, v)
}

// Delete removes one node holding v by copying the deepest rightmost
// node's value over it and unlinking that deepest node, preserving the
// tree's completeness. Returns false if v is absent.
// Complexity: O(n)
func (t *Binary[T]) Delete(v T) bool {
	if t.root == nil {
		return false
	}

	// 1. Locate the target node breadth-first.
	var target *Node[T]
	queue := []*Node[T]{t.root}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		if n.Value == v {
			target = n
		}
		if n.Left != nil {
			queue = append(queue, n.Left)
		}
		if n.Right != nil {
			queue = append(queue, n.Right)
		}
	}
	if target == nil {
		return false
	}

	// 2. Locate the deepest node and its parent.
	var deepest, parent *Node[T]
	queue = []*Node[T]{t.root}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		deepest = n
		if n.Left != nil {
			parent = n
			queue = append(queue, n.Left)
		}
		if n.Right != nil {
			parent = n
			queue = append(queue, n.Right)
		}
	}

	// 3. Splice: move the deepest value into the target, drop the deepest.
	if target != deepest {
		target.Value = deepest.Value
		if parent != nil {
			if parent.Left == deepest {
				parent.Left = nil
			} else {
				parent.Right = nil
			}
		}
	} else if parent != nil {
		if parent.Left == deepest {
			parent.Left = nil
		} else {
			parent.Right = nil
		}
	} else {
		t.root = nil
	}

	t.size--
	t.notify(trace.KindDelete)

	return true
}

// InOrder returns the values left-root-right.
func (t *Binary[T]) InOrder() []T { return inOrder(t.root, make([]T, 0, t.size)) }

// PreOrder returns the values root-left-right.
func (t *Binary[T]) PreOrder() []T { return preOrder(t.root, make([]T, 0, t.size)) }

// PostOrder returns the values left-right-root.
func (t *Binary[T]) PostOrder() []T { return postOrder(t.root, make([]T, 0, t.size)) }

// LevelOrder returns the values in breadth-first order.
func (t *Binary[T]) LevelOrder() []T { return levelOrder(t.root, t.size) }

// Height returns the tree height; -1 for an empty tree.
func (t *Binary[T]) Height() int { return height(t.root) }

// Len returns the node count.
func (t *Binary[T]) Len() int { return t.size }

// Snapshot returns an immutable deep copy of the tree.
func (t *Binary[T]) Snapshot() trace.Snapshot {
	return TreeSnapshot[T]{Type: "binary_tree", Count: t.size, Root: snapshotNode(t.root)}
}
