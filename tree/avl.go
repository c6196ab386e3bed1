package tree

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/jpcunhadias/ds-algo-lab/trace"
)

// AVL is a self-balancing binary search tree. Every insert and delete
// rebalances the ancestors of the touched node bottom-up, keeping
// |height(left) - height(right)| <= 1 at every node.
type AVL[T constraints.Ordered] struct {
	root *Node[T]
	size int
	obs  trace.Observer
}

// NewAVL builds an AVL tree seeded with the given values, inserted in order.
func NewAVL[T constraints.Ordered](values ...T) *AVL[T] {
	t := &AVL[T]{}
	for _, v := range values {
		t.Insert(v)
	}

	return t
}

// Attach registers obs to receive mutation and rotation events. Passing
// nil detaches.
func (t *AVL[T]) Attach(obs trace.Observer) {
	t.obs = obs
	t.notify(trace.KindInit)
}

// Observer returns the currently attached observer, or nil.
func (t *AVL[T]) Observer() trace.Observer { return t.obs }

func (t *AVL[T]) notify(kind trace.Kind) {
	if t.obs != nil {
		t.obs.OnEvent(kind, t.Snapshot())
	}
}

// rotateRight rebinds y.Left as the new subtree root.
//
//	    y              x
//	   / \            / \
//	  x   C   ==>    A   y
//	 / \                / \
//	A   T2            T2   C
func (t *AVL[T]) rotateRight(y *Node[T]) *Node[T] {
	x := y.Left
	t2 := x.Right

	x.Right = y
	y.Left = t2

	if t.obs != nil {
		t.obs.OnEvent(trace.KindRotate, Rotation[T]{Direction: "right", Pivot: y.Value, NewRoot: x.Value})
	}

	return x
}

// rotateLeft is the mirror of rotateRight.
func (t *AVL[T]) rotateLeft(x *Node[T]) *Node[T] {
	y := x.Right
	t2 := y.Left

	y.Left = x
	x.Right = t2

	if t.obs != nil {
		t.obs.OnEvent(trace.KindRotate, Rotation[T]{Direction: "left", Pivot: x.Value, NewRoot: y.Value})
	}

	return y
}

// rotateLeftRight rotates the left child left, then the node right.
func (t *AVL[T]) rotateLeftRight(z *Node[T]) *Node[T] {
	z.Left = t.rotateLeft(z.Left)

	return t.rotateRight(z)
}

// rotateRightLeft rotates the right child right, then the node left.
func (t *AVL[T]) rotateRightLeft(z *Node[T]) *Node[T] {
	z.Right = t.rotateRight(z.Right)

	return t.rotateLeft(z)
}

// Insert adds v unless already present (silent no-op on duplicates) and
// rebalances every ancestor on the insertion path.
// Complexity: O(h^2) with recursive heights; h = O(log n)
func (t *AVL[T]) Insert(v T) {
	var inserted bool
	t.root, inserted = t.insert(t.root, v)
	if inserted {
		t.size++
	}
	t.notify(trace.KindInsert)
}

func (t *AVL[T]) insert(n *Node[T], v T) (*Node[T], bool) {
	// 1. Standard BST insert
	if n == nil {
		return &Node[T]{Value: v}, true
	}

	var inserted bool
	switch {
	case v < n.Value:
		n.Left, inserted = t.insert(n.Left, v)
	case v > n.Value:
		n.Right, inserted = t.insert(n.Right, v)
	default:
		return n, false
	}
	if !inserted {
		return n, false
	}

	// 2. Rebalance this frame. Cases checked in order: LL, RR, LR, RL.
	balance := balanceFactor(n)

	switch {
	case balance > 1 && v < n.Left.Value:
		return t.check(t.rotateRight(n)), true
	case balance < -1 && v > n.Right.Value:
		return t.check(t.rotateLeft(n)), true
	case balance > 1:
		return t.check(t.rotateLeftRight(n)), true
	case balance < -1:
		return t.check(t.rotateRightLeft(n)), true
	}

	return n, true
}

// Delete removes v and rebalances every ancestor on the deletion path.
// Returns false if v is absent, with no mutation.
// Complexity: O(h^2) with recursive heights
func (t *AVL[T]) Delete(v T) bool {
	if searchBST(t.root, v) == nil {
		return false
	}
	t.root = t.delete(t.root, v)
	t.size--
	t.notify(trace.KindDelete)

	return true
}

func (t *AVL[T]) delete(n *Node[T], v T) *Node[T] {
	if n == nil {
		return nil
	}

	// 1. Standard BST delete
	switch {
	case v < n.Value:
		n.Left = t.delete(n.Left, v)
	case v > n.Value:
		n.Right = t.delete(n.Right, v)
	default:
		if n.Left == nil && n.Right == nil {
			return nil
		}
		if n.Left == nil {
			return n.Right
		}
		if n.Right == nil {
			return n.Left
		}
		succ := minNode(n.Right)
		n.Value = succ.Value
		n.Right = t.delete(n.Right, succ.Value)
	}

	// 2. Rebalance this frame. Deletion decides double vs single rotation
	// by the child's own balance, not by the deleted value's side.
	balance := balanceFactor(n)

	switch {
	case balance > 1 && balanceFactor(n.Left) >= 0:
		return t.check(t.rotateRight(n))
	case balance > 1:
		return t.check(t.rotateLeftRight(n))
	case balance < -1 && balanceFactor(n.Right) <= 0:
		return t.check(t.rotateLeft(n))
	case balance < -1:
		return t.check(t.rotateRightLeft(n))
	}

	return n
}

// check asserts the post-rotation balance invariant. A violation means a
// bug in the rotation logic itself; there is no recovery path.
func (t *AVL[T]) check(n *Node[T]) *Node[T] {
	if b := balanceFactor(n); b < -1 || b > 1 {
		panic(fmt.Sprintf("tree: avl balance invariant violated at %v (balance %d)", n.Value, b))
	}

	return n
}

// Search returns the node holding v, or nil if absent.
// Complexity: O(h)
func (t *AVL[T]) Search(v T) *Node[T] {
	found := searchBST(t.root, v)
	t.notify(trace.KindSearch)

	return found
}

// Min returns the smallest value, or false for an empty tree.
func (t *AVL[T]) Min() (T, bool) {
	var zero T
	if t.root == nil {
		return zero, false
	}

	return minNode(t.root).Value, true
}

// Max returns the largest value, or false for an empty tree.
func (t *AVL[T]) Max() (T, bool) {
	var zero T
	if t.root == nil {
		return zero, false
	}

	return maxNode(t.root).Value, true
}

// InOrder returns the values in increasing order.
func (t *AVL[T]) InOrder() []T { return inOrder(t.root, make([]T, 0, t.size)) }

// PreOrder returns the values root-left-right.
func (t *AVL[T]) PreOrder() []T { return preOrder(t.root, make([]T, 0, t.size)) }

// PostOrder returns the values left-right-root.
func (t *AVL[T]) PostOrder() []T { return postOrder(t.root, make([]T, 0, t.size)) }

// LevelOrder returns the values in breadth-first order.
func (t *AVL[T]) LevelOrder() []T { return levelOrder(t.root, t.size) }

// Height returns the tree height; -1 for an empty tree.
func (t *AVL[T]) Height() int { return height(t.root) }

// BalanceFactor returns the root's balance factor; 0 for an empty tree.
func (t *AVL[T]) BalanceFactor() int { return balanceFactor(t.root) }

// Len returns the node count.
func (t *AVL[T]) Len() int { return t.size }

// Snapshot returns an immutable deep copy of the tree.
func (t *AVL[T]) Snapshot() trace.Snapshot {
	return TreeSnapshot[T]{Type: "avl_tree", Count: t.size, Root: snapshotNode(t.root)}
}
