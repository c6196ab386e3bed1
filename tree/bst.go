package tree

import (
	"golang.org/x/exp/constraints"

	"github.com/jpcunhadias/ds-algo-lab/trace"
)

// BST is a binary search tree: left subtree strictly less, right subtree
// strictly greater, no duplicates.
type BST[T constraints.Ordered] struct {
	root *Node[T]
	size int
	obs  trace.Observer
}

// NewBST builds a BST seeded with the given values, inserted in order.
func NewBST[T constraints.Ordered](values ...T) *BST[T] {
	t := &BST[T]{}
	for _, v := range values {
		t.Insert(v)
	}

	return t
}

// Attach registers obs to receive mutation events. Passing nil detaches.
func (t *BST[T]) Attach(obs trace.Observer) {
	t.obs = obs
	t.notify(trace.KindInit)
}

// Observer returns the currently attached observer, or nil.
func (t *BST[T]) Observer() trace.Observer { return t.obs }

func (t *BST[T]) notify(kind trace.Kind) {
	if t.obs != nil {
		t.obs.OnEvent(kind, t.Snapshot())
	}
}

// Insert adds v unless it is already present; inserting a duplicate is a
// silent no-op.
// Complexity: O(h)
func (t *BST[T]) Insert(v T) {
	var inserted bool
	t.root, inserted = insertBST(t.root, v)
	if inserted {
		t.size++
	}
	t.notify(trace.KindInsert)
}

func insertBST[T constraints.Ordered](n *Node[T], v T) (*Node[T], bool) {
	if n == nil {
		return &Node[T]{Value: v}, true
	}

	var inserted bool
	switch {
	case v < n.Value:
		n.Left, inserted = insertBST(n.Left, v)
	case v > n.Value:
		n.Right, inserted = insertBST(n.Right, v)
	default:
		// duplicate: no-op
	}

	return n, inserted
}

// Search returns the node holding v, or nil if absent.
// Complexity: O(h)
func (t *BST[T]) Search(v T) *Node[T] {
	found := searchBST(t.root, v)
	t.notify(trace.KindSearch)

	return found
}

func searchBST[T constraints.Ordered](n *Node[T], v T) *Node[T] {
	if n == nil || n.Value == v {
		return n
	}
	if v < n.Value {
		return searchBST(n.Left, v)
	}

	return searchBST(n.Right, v)
}

// Delete removes v, handling the leaf, single-child, and two-children
// (in-order successor splice) cases. Returns false if v is absent, with
// no mutation.
// Complexity: O(h)
func (t *BST[T]) Delete(v T) bool {
	if searchBST(t.root, v) == nil {
		return false
	}
	t.root = deleteBST(t.root, v)
	t.size--
	t.notify(trace.KindDelete)

	return true
}

func deleteBST[T constraints.Ordered](n *Node[T], v T) *Node[T] {
	if n == nil {
		return nil
	}

	switch {
	case v < n.Value:
		n.Left = deleteBST(n.Left, v)
	case v > n.Value:
		n.Right = deleteBST(n.Right, v)
	default:
		// leaf
		if n.Left == nil && n.Right == nil {
			return nil
		}
		// single child
		if n.Left == nil {
			return n.Right
		}
		if n.Right == nil {
			return n.Left
		}
		// two children: splice in the in-order successor
		succ := minNode(n.Right)
		n.Value = succ.Value
		n.Right = deleteBST(n.Right, succ.Value)
	}

	return n
}

// minNode returns the leftmost node of a non-nil subtree.
func minNode[T constraints.Ordered](n *Node[T]) *Node[T] {
	for n.Left != nil {
		n = n.Left
	}

	return n
}

// maxNode returns the rightmost node of a non-nil subtree.
func maxNode[T constraints.Ordered](n *Node[T]) *Node[T] {
	for n.Right != nil {
		n = n.Right
	}

	return n
}

// Min returns the smallest value, or false for an empty tree.
// Complexity: O(h)
func (t *BST[T]) Min() (T, bool) {
	var zero T
	if t.root == nil {
		return zero, false
	}

	return minNode(t.root).Value, true
}

// Max returns the largest value, or false for an empty tree.
// Complexity: O(h)
func (t *BST[T]) Max() (T, bool) {
	var zero T
	if t.root == nil {
		return zero, false
	}

	return maxNode(t.root).Value, true
}

// Successor returns the smallest value strictly greater than v, or false
// when v is absent or has no successor.
// Complexity: O(h)
func (t *BST[T]) Successor(v T) (T, bool) {
	var zero T
	node := searchBST(t.root, v)
	if node == nil {
		return zero, false
	}

	// Successor in the right subtree, if any.
	if node.Right != nil {
		return minNode(node.Right).Value, true
	}

	// Otherwise the lowest ancestor whose left subtree contains v.
	var succ *Node[T]
	cur := t.root
	for cur != nil {
		switch {
		case v < cur.Value:
			succ = cur
			cur = cur.Left
		case v > cur.Value:
			cur = cur.Right
		default:
			cur = nil
		}
	}
	if succ == nil {
		return zero, false
	}

	return succ.Value, true
}

// Predecessor returns the largest value strictly less than v, or false
// when v is absent or has no predecessor.
// Complexity: O(h)
func (t *BST[T]) Predecessor(v T) (T, bool) {
	var zero T
	node := searchBST(t.root, v)
	if node == nil {
		return zero, false
	}

	if node.Left != nil {
		return maxNode(node.Left).Value, true
	}

	var pred *Node[T]
	cur := t.root
	for cur != nil {
		switch {
		case v > cur.Value:
			pred = cur
			cur = cur.Right
		case v < cur.Value:
			cur = cur.Left
		default:
			cur = nil
		}
	}
	if pred == nil {
		return zero, false
	}

	return pred.Value, true
}

// InOrder returns the values in increasing order.
func (t *BST[T]) InOrder() []T { return inOrder(t.root, make([]T, 0, t.size)) }

// PreOrder returns the values root-left-right.
func (t *BST[T]) PreOrder() []T { return preOrder(t.root, make([]T, 0, t.size)) }

// PostOrder returns the values left-right-root.
func (t *BST[T]) PostOrder() []T { return postOrder(t.root, make([]T, 0, t.size)) }

// LevelOrder returns the values in breadth-first order.
func (t *BST[T]) LevelOrder() []T { return levelOrder(t.root, t.size) }

// Height returns the tree height; -1 for an empty tree.
func (t *BST[T]) Height() int { return height(t.root) }

// Len returns the node count.
func (t *BST[T]) Len() int { return t.size }

// Snapshot returns an immutable deep copy of the tree.
func (t *BST[T]) Snapshot() trace.Snapshot {
	return TreeSnapshot[T]{Type: "binary_search_tree", Count: t.size, Root: snapshotNode(t.root)}
}
