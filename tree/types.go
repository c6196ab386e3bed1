// Package tree: shared node type, snapshots, rotation events, and the
// recursive height/balance helpers used by BST and AVL.
package tree

import (
	"golang.org/x/exp/constraints"
)

// Node is one vertex of a binary tree. A node is owned exclusively by its
// parent (or the tree's root holder); mutating a Node obtained from Search
// breaks the owning tree's invariants.
type Node[T constraints.Ordered] struct {
	Value T
	Left  *Node[T]
	Right *Node[T]
}

// NodeSnapshot is the immutable view of one node, with its height and
// balance factor captured at snapshot time.
type NodeSnapshot[T constraints.Ordered] struct {
	Value         T
	Height        int
	BalanceFactor int
	Left          *NodeSnapshot[T]
	Right         *NodeSnapshot[T]
}

// TreeSnapshot is the immutable view of a whole tree.
type TreeSnapshot[T constraints.Ordered] struct {
	Type  string
	Count int
	Root  *NodeSnapshot[T]
}

// Kind returns the structure tag ("binary_tree", "binary_search_tree",
// or "avl_tree").
func (s TreeSnapshot[T]) Kind() string { return s.Type }

// Size returns the captured node count.
func (s TreeSnapshot[T]) Size() int { return s.Count }

// Rotation describes a single AVL rotation, delivered to the observer as
// the payload of a trace.KindRotate event.
type Rotation[T constraints.Ordered] struct {
	// Direction is "left" or "right".
	Direction string

	// Pivot is the value of the subtree root before the rotation.
	Pivot T

	// NewRoot is the value of the subtree root after the rotation.
	NewRoot T
}

// height returns the height of the subtree rooted at n; an absent child
// has height -1.
func height[T constraints.Ordered](n *Node[T]) int {
	if n == nil {
		return -1
	}

	return 1 + max(height(n.Left), height(n.Right))
}

// balanceFactor returns height(left) - height(right) for n, 0 for nil.
func balanceFactor[T constraints.Ordered](n *Node[T]) int {
	if n == nil {
		return 0
	}

	return height(n.Left) - height(n.Right)
}

// snapshotNode deep-copies the subtree rooted at n into snapshot form.
func snapshotNode[T constraints.Ordered](n *Node[T]) *NodeSnapshot[T] {
	if n == nil {
		return nil
	}

	return &NodeSnapshot[T]{
		Value:         n.Value,
		Height:        height(n),
		BalanceFactor: balanceFactor(n),
		Left:          snapshotNode(n.Left),
		Right:         snapshotNode(n.Right),
	}
}

// inOrder appends the subtree's values left-root-right.
func inOrder[T constraints.Ordered](n *Node[T], out []T) []T {
	if n == nil {
		return out
	}
	out = inOrder(n.Left, out)
	out = append(out, n.Value)

	return inOrder(n.Right, out)
}

// preOrder appends the subtree's values root-left-right.
func preOrder[T constraints.Ordered](n *Node[T], out []T) []T {
	if n == nil {
		return out
	}
	out = append(out, n.Value)
	out = preOrder(n.Left, out)

	return preOrder(n.Right, out)
}

// postOrder appends the subtree's values left-right-root.
func postOrder[T constraints.Ordered](n *Node[T], out []T) []T {
	if n == nil {
		return out
	}
	out = postOrder(n.Left, out)
	out = postOrder(n.Right, out)

	return append(out, n.Value)
}

// levelOrder returns the subtree's values in breadth-first order.
func levelOrder[T constraints.Ordered](root *Node[T], size int) []T {
	out := make([]T, 0, size)
	if root == nil {
		return out
	}
	queue := []*Node[T]{root}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		out = append(out, n.Value)
		if n.Left != nil {
			queue = append(queue, n.Left)
		}
		if n.Right != nil {
			queue = append(queue, n.Right)
		}
	}

	return out
}
